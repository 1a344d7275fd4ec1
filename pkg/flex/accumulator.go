// Package flex accumulates gap geometry for flex containers and provides a
// simple line-breaking layout driver to feed it.
//
// Gaps are collected item by item, in layout order. The first item of a
// line pins the content edges and the main gap after the line; every later
// item contributes the cross gap before itself. Because flex lines don't
// align across the container, each main gap tracks which cross gaps fall
// before and after it.
package flex

import (
	"math"

	"github.com/gaprule/gaprule/pkg/gap"
)

// Edges holds the border, scrollbar, and padding extent on each side of a
// container, in flow-relative terms.
type Edges struct {
	InlineStart float64
	InlineEnd   float64
	BlockStart  float64
	BlockEnd    float64
}

// Container describes the flex container box the gaps live in.
type Container struct {
	InlineSize float64
	BlockSize  float64
	Padding    Edges
}

// Line is one flex line: the items on it and its cross-axis extent.
type Line struct {
	ItemIndices []int
	CrossOffset float64
	CrossSize   float64
}

// GapAccumulator builds a gap geometry incrementally as flex items are
// placed.
type GapAccumulator struct {
	gapBetweenItems float64
	gapBetweenLines float64
	container       Container
	isColumn        bool

	mainGaps  []gap.MainGap
	crossGaps []gap.CrossGap

	contentCrossStart float64
	contentCrossEnd   float64
	contentMainStart  float64
	contentMainEnd    float64
}

// NewGapAccumulator builds an accumulator for a container with the given
// gutters, line count, and item count.
func NewGapAccumulator(gapBetweenItems, gapBetweenLines float64, numLines, numItems int, container Container, isColumn bool) *GapAccumulator {
	acc := &GapAccumulator{
		gapBetweenItems: gapBetweenItems,
		gapBetweenLines: gapBetweenLines,
		container:       container,
		isColumn:        isColumn,
		crossGaps:       make([]gap.CrossGap, 0, numItems),
	}
	if numLines > 1 {
		acc.mainGaps = make([]gap.MainGap, 0, numLines-1)
	}
	return acc
}

// BuildGapsForCurrentItem folds one placed item into the geometry. Items
// must arrive line by line, in order within each line. lineCrossStart and
// lineCrossEnd bound the line's content in the cross axis.
func (acc *GapAccumulator) BuildGapsForCurrentItem(lines []Line, lineIndex, itemIndexInLine int, itemOffset gap.LogicalOffset, isFirstLine, isLastLine bool, lineCrossStart, lineCrossEnd float64) {
	line := &lines[lineIndex]

	// "first" and "last" refer to the main-axis order within the line.
	isFirstItem := itemIndexInLine == 0
	isLastItem := itemIndexInLine == len(line.ItemIndices)-1
	singleLine := isFirstLine && isLastLine

	if isFirstLine && isFirstItem {
		acc.contentCrossStart = lineCrossStart
		mainStart := acc.container.Padding.InlineStart
		if acc.isColumn {
			mainStart = acc.container.Padding.BlockStart
		}
		acc.contentMainStart = math.Min(mainStart, acc.itemMainOffset(itemOffset))
	}

	if isLastLine && isFirstItem {
		acc.contentCrossEnd = lineCrossEnd
	}

	// The first item in a line has no cross gap before it; it only opens
	// the main gap after its line. The last line has no main gap.
	if isFirstItem {
		if !singleLine && !isLastLine {
			acc.populateMainGapForFirstItem(lineCrossEnd)

			// A single-item line has no later item to extend the content
			// main end, so take the container edge now.
			if len(line.ItemIndices) == 1 {
				acc.contentMainEnd = acc.containerMainEnd()
			}
		}
		return
	}

	mainIntersectionOffset := acc.itemMainOffset(itemOffset) - acc.gapBetweenItems/2

	acc.populateCrossGapForCurrentItem(line, lineIndex, isFirstLine, isLastLine, singleLine, mainIntersectionOffset, lineCrossStart)

	if isLastItem {
		lastGap := acc.crossGaps[len(acc.crossGaps)-1]
		lastGapOffset := lastGap.Offset().Inline
		if acc.isColumn {
			lastGapOffset = lastGap.Offset().Block
		}
		acc.contentMainEnd = math.Max(lastGapOffset, acc.containerMainEnd())
	}
}

// BuildGapGeometry finalizes the geometry. Returns nil when neither axis
// has gaps worth decorating (no gaps, or zero-size gutters).
func (acc *GapAccumulator) BuildGapGeometry() *gap.Geometry {
	hasValidMainGaps := len(acc.mainGaps) > 0 && acc.gapBetweenLines > 0
	hasValidCrossGaps := len(acc.crossGaps) > 0 && acc.gapBetweenItems > 0
	if !hasValidMainGaps && !hasValidCrossGaps {
		return nil
	}

	g := gap.NewGeometry(gap.ContainerFlex)

	if acc.isColumn {
		// In a column container the line gaps run in the inline axis and
		// the item gaps in the block axis.
		if acc.gapBetweenLines > 0 {
			g.SetInlineGapSize(acc.gapBetweenLines)
		}
		if acc.gapBetweenItems > 0 {
			g.SetBlockGapSize(acc.gapBetweenItems)
		}
		g.SetMainDirection(gap.ForColumns)
	} else {
		if acc.gapBetweenLines > 0 {
			g.SetBlockGapSize(acc.gapBetweenLines)
		}
		if acc.gapBetweenItems > 0 {
			g.SetInlineGapSize(acc.gapBetweenItems)
		}
	}

	if len(acc.crossGaps) > 0 {
		g.SetCrossGaps(acc.crossGaps)
	}
	if len(acc.mainGaps) > 0 {
		g.SetMainGaps(acc.mainGaps)
	}

	if acc.isColumn {
		g.SetContentInlineOffsets(acc.contentCrossStart, acc.contentCrossEnd)
		g.SetContentBlockOffsets(acc.contentMainStart, acc.contentMainEnd)
	} else {
		g.SetContentInlineOffsets(acc.contentMainStart, acc.contentMainEnd)
		g.SetContentBlockOffsets(acc.contentCrossStart, acc.contentCrossEnd)
	}

	return g
}

func (acc *GapAccumulator) itemMainOffset(offset gap.LogicalOffset) float64 {
	if acc.isColumn {
		return offset.Block
	}
	return offset.Inline
}

func (acc *GapAccumulator) containerMainEnd() float64 {
	if acc.isColumn {
		return acc.container.BlockSize - acc.container.Padding.BlockEnd
	}
	return acc.container.InlineSize - acc.container.Padding.InlineEnd
}

// populateMainGapForFirstItem opens the main gap after the current line,
// centered in the line gutter.
func (acc *GapAccumulator) populateMainGapForFirstItem(crossEnd float64) {
	acc.mainGaps = append(acc.mainGaps, gap.NewMainGap(crossEnd+acc.gapBetweenLines/2))
}

// handleCrossGapRangesForCurrentItem records the new cross gap on the main
// gaps it touches: before the gap after this line, after the gap before it.
func (acc *GapAccumulator) handleCrossGapRangesForCurrentItem(lineIndex, crossGapIndex int) {
	if len(acc.mainGaps) == 0 {
		return
	}
	if lineIndex < len(acc.mainGaps) {
		acc.mainGaps[lineIndex].ExtendCrossGapsBefore(crossGapIndex)
	}
	if lineIndex > 0 {
		acc.mainGaps[lineIndex-1].ExtendCrossGapsAfter(crossGapIndex)
	}
}

func (acc *GapAccumulator) populateCrossGapForCurrentItem(line *Line, lineIndex int, isFirstLine, isLastLine, singleLine bool, mainIntersectionOffset, crossStart float64) {
	crossIntersectionOffset := crossStart
	edgeState := gap.EdgeNone

	switch {
	case singleLine:
		// The only line: the cross gap runs content edge to content edge.
		edgeState = gap.EdgeBoth
	case isFirstLine:
		edgeState = gap.EdgeStart
	case isLastLine:
		// The gap starts halfway into the gutter above the last line and
		// runs to the content end.
		crossIntersectionOffset -= acc.gapBetweenLines / 2
		edgeState = gap.EdgeEnd
	default:
		// Middle line: start at the midpoint between this line and the
		// previous one.
		crossIntersectionOffset = line.CrossOffset - acc.gapBetweenLines/2
	}

	offset := gap.LogicalOffset{Inline: mainIntersectionOffset, Block: crossIntersectionOffset}
	if acc.isColumn {
		offset = gap.LogicalOffset{Inline: crossIntersectionOffset, Block: mainIntersectionOffset}
	}

	acc.crossGaps = append(acc.crossGaps, gap.NewCrossGap(offset, edgeState))
	acc.handleCrossGapRangesForCurrentItem(lineIndex, len(acc.crossGaps)-1)
}
