package gap

import (
	"fmt"
	"sort"
	"strings"
)

// ContainerType identifies the layout model that produced a geometry. Grid
// gaps align across the container; flex gaps are per-line.
type ContainerType int

const (
	ContainerFlex ContainerType = iota
	ContainerGrid
)

func (c ContainerType) String() string {
	if c == ContainerGrid {
		return "grid"
	}
	return "flex"
}

// Geometry is the complete gap layout of one container: every main and
// cross gap, the gutter sizes, and the content edges. It is a plain value
// owned by the layout result that produced it.
type Geometry struct {
	containerType ContainerType
	mainDirection Direction

	inlineGapSize float64
	blockGapSize  float64

	contentInlineStart float64
	contentInlineEnd   float64
	contentBlockStart  float64
	contentBlockEnd    float64

	mainGaps  []MainGap
	crossGaps []CrossGap
}

// NewGeometry builds an empty geometry for the given container type. The
// main direction defaults to rows.
func NewGeometry(containerType ContainerType) *Geometry {
	return &Geometry{containerType: containerType, mainDirection: ForRows}
}

// ContainerType returns the layout model that produced this geometry.
func (g *Geometry) ContainerType() ContainerType { return g.containerType }

// MainDirection returns the track direction of the main gaps.
func (g *Geometry) MainDirection() Direction { return g.mainDirection }

// SetMainDirection overrides the main gap direction. Column flex containers
// set it to columns since their line gaps run in the inline axis.
func (g *Geometry) SetMainDirection(d Direction) { g.mainDirection = d }

// IsMainDirection reports whether the given direction is the main one.
func (g *Geometry) IsMainDirection(d Direction) bool { return d == g.mainDirection }

// InlineGapSize returns the gutter between inline-adjacent tracks.
func (g *Geometry) InlineGapSize() float64 { return g.inlineGapSize }

// SetInlineGapSize records the gutter between inline-adjacent tracks.
func (g *Geometry) SetInlineGapSize(size float64) { g.inlineGapSize = size }

// BlockGapSize returns the gutter between block-adjacent tracks.
func (g *Geometry) BlockGapSize() float64 { return g.blockGapSize }

// SetBlockGapSize records the gutter between block-adjacent tracks.
func (g *Geometry) SetBlockGapSize(size float64) { g.blockGapSize = size }

// SetContentInlineOffsets records the inline-axis content edges.
func (g *Geometry) SetContentInlineOffsets(start, end float64) {
	g.contentInlineStart = start
	g.contentInlineEnd = end
}

// SetContentBlockOffsets records the block-axis content edges.
func (g *Geometry) SetContentBlockOffsets(start, end float64) {
	g.contentBlockStart = start
	g.contentBlockEnd = end
}

// SetMainGaps installs the main gap list. Panics on an empty list; a
// geometry axis either has gaps or isn't set.
func (g *Geometry) SetMainGaps(gaps []MainGap) {
	if len(gaps) == 0 {
		panic("gap: SetMainGaps with empty list")
	}
	g.mainGaps = gaps
}

// SetCrossGaps installs the cross gap list. Panics on an empty list.
func (g *Geometry) SetCrossGaps(gaps []CrossGap) {
	if len(gaps) == 0 {
		panic("gap: SetCrossGaps with empty list")
	}
	g.crossGaps = gaps
}

// MainGaps returns the main gap list.
func (g *Geometry) MainGaps() []MainGap { return g.mainGaps }

// CrossGaps returns the cross gap list.
func (g *Geometry) CrossGaps() []CrossGap { return g.crossGaps }

// GapCount returns the number of gaps painted in the given direction.
func (g *Geometry) GapCount(direction Direction) int {
	if g.IsMainDirection(direction) {
		return len(g.mainGaps)
	}
	return len(g.crossGaps)
}

// GapCenterOffset returns the offset of a gap's centerline in the axis
// orthogonal to the gap.
func (g *Geometry) GapCenterOffset(direction Direction, gapIndex int) float64 {
	if g.IsMainDirection(direction) {
		return g.mainGaps[gapIndex].Offset()
	}
	if direction == ForColumns {
		return g.crossGaps[gapIndex].Offset().Inline
	}
	return g.crossGaps[gapIndex].Offset().Block
}

// IntersectionsForGap lists the offsets, along the gap, where it meets the
// content edges and any orthogonal gaps. The list is ascending and holds at
// least two entries (the gap's two endpoints).
func (g *Geometry) IntersectionsForGap(direction Direction, gapIndex int) []float64 {
	if g.IsMainDirection(direction) {
		return g.mainIntersections(direction, gapIndex)
	}
	return g.crossIntersections(direction, gapIndex)
}

func (g *Geometry) mainIntersections(direction Direction, gapIndex int) []float64 {
	contentStart := g.contentInlineStart
	contentEnd := g.contentInlineEnd
	if direction == ForColumns {
		contentStart = g.contentBlockStart
		contentEnd = g.contentBlockEnd
	}

	intersections := []float64{contentStart}

	switch g.containerType {
	case ContainerGrid:
		// Grid rows and columns align, so every cross gap crosses every
		// main gap at its inline offset.
		for i := range g.crossGaps {
			intersections = append(intersections, g.crossGaps[i].Offset().Inline)
		}

	case ContainerFlex:
		// A flex main gap is crossed by two disjoint sets of cross gaps:
		// those ending at it and those starting at it. Merge and sort them
		// along the gap.
		mainGap := &g.mainGaps[gapIndex]
		crossDirection := ForColumns
		if direction == ForColumns {
			crossDirection = ForRows
		}

		var offsets []float64
		appendRange := func(r CrossGapRange) {
			if !r.Valid() {
				return
			}
			for i := r.Start(); i <= r.End(); i++ {
				offset := g.crossGaps[i].Offset().Block
				if crossDirection == ForColumns {
					offset = g.crossGaps[i].Offset().Inline
				}
				offsets = append(offsets, offset)
			}
		}
		appendRange(mainGap.CrossGapsBefore())
		appendRange(mainGap.CrossGapsAfter())
		sort.Float64s(offsets)
		intersections = append(intersections, offsets...)
	}

	return append(intersections, contentEnd)
}

func (g *Geometry) crossIntersections(direction Direction, gapIndex int) []float64 {
	switch g.containerType {
	case ContainerGrid:
		// Grid cross gaps meet the content edges and every main gap.
		contentStart := g.contentInlineStart
		contentEnd := g.contentInlineEnd
		if direction == ForColumns {
			contentStart = g.contentBlockStart
			contentEnd = g.contentBlockEnd
		}
		intersections := make([]float64, 0, len(g.mainGaps)+2)
		intersections = append(intersections, contentStart)
		for i := range g.mainGaps {
			intersections = append(intersections, g.mainGaps[i].Offset())
		}
		return append(intersections, contentEnd)

	default:
		// A flex cross gap has exactly two intersections: its own start
		// offset and either the next main gap or the content end.
		crossGap := &g.crossGaps[gapIndex]
		offset := crossGap.Offset().Inline
		if direction == ForColumns {
			offset = crossGap.Offset().Block
		}
		end := g.flexCrossGapEndOffset(gapIndex, direction, crossGap.EndsAtEdge())
		return []float64{offset, end}
	}
}

// flexCrossGapEndOffset finds where a flex cross gap ends: the main gap it
// runs into, or the content end when it reaches the container edge.
func (g *Geometry) flexCrossGapEndOffset(gapIndex int, direction Direction, endsAtEdge bool) float64 {
	contentEnd := g.contentBlockEnd
	if direction == ForRows {
		contentEnd = g.contentInlineEnd
	}
	if endsAtEdge || len(g.mainGaps) == 0 {
		return contentEnd
	}
	// Cross gaps are appended line by line, so the first main gap whose
	// before-range reaches this index is the one the gap ends at.
	for i := range g.mainGaps {
		mg := &g.mainGaps[i]
		if mg.HasCrossGapsBefore() && gapIndex <= mg.CrossGapsBefore().End() {
			return mg.Offset()
		}
	}
	return contentEnd
}

// IsEdgeIntersection reports whether an intersection touches the container
// content edge. Main gaps and all grid gaps treat their first and last
// intersections as edges; flex cross gaps consult their edge state.
func (g *Geometry) IsEdgeIntersection(gapIndex, intersectionIndex, intersectionCount int, isMainGap bool) bool {
	last := intersectionCount - 1
	if isMainGap || g.containerType == ContainerGrid {
		return intersectionIndex == 0 || intersectionIndex == last
	}

	switch g.crossGaps[gapIndex].EdgeState() {
	case EdgeBoth:
		return intersectionIndex == 0 || intersectionIndex == last
	case EdgeStart:
		return intersectionIndex == 0
	case EdgeEnd:
		return intersectionIndex == last
	}
	return false
}

// segmentStateAt returns the state of the gap segment immediately after the
// given secondary cell index. Gaps with no recorded ranges are unblocked.
func (g *Geometry) segmentStateAt(direction Direction, primaryIndex, secondaryIndex int) SegmentState {
	var ranges []SegmentStateRange
	if g.IsMainDirection(direction) {
		ranges = g.mainGaps[primaryIndex].SegmentStateRanges()
	} else {
		ranges = g.crossGaps[primaryIndex].SegmentStateRanges()
	}
	for _, r := range ranges {
		if secondaryIndex >= r.Start && secondaryIndex < r.End {
			return r.State
		}
	}
	return SegmentNone
}

// isTrackCovered reports whether the gap segment at the given cell is
// blocked by spanning items.
func (g *Geometry) isTrackCovered(direction Direction, primaryIndex, secondaryIndex int) bool {
	return g.segmentStateAt(direction, primaryIndex, secondaryIndex).Has(SegmentBlocked)
}

// IntersectionBlockedStatus reports whether the gap segments before and
// after an intersection are blocked by spanning items.
func (g *Geometry) IntersectionBlockedStatus(direction Direction, primaryIndex, secondaryIndex int) BlockedStatus {
	var status BlockedStatus
	if secondaryIndex > 0 && g.isTrackCovered(direction, primaryIndex, secondaryIndex-1) {
		status |= BlockedBefore
	}
	if g.isTrackCovered(direction, primaryIndex, secondaryIndex) {
		status |= BlockedAfter
	}
	return status
}

// InkOverflow returns the content rect inflated by half the decoration
// thickness on each side, the area gap decorations may paint into.
func (g *Geometry) InkOverflow(inlineThickness, blockThickness float64) Rect {
	if len(g.mainGaps) == 0 && len(g.crossGaps) == 0 {
		panic("gap: ink overflow of empty geometry")
	}
	return Rect{
		InlineStart: g.contentInlineStart - inlineThickness/2,
		BlockStart:  g.contentBlockStart - blockThickness/2,
		InlineSize:  g.contentInlineEnd - g.contentInlineStart + inlineThickness,
		BlockSize:   g.contentBlockEnd - g.contentBlockStart + blockThickness,
	}
}

func (g *Geometry) String() string {
	var b strings.Builder
	b.WriteString("MainGaps: [")
	for i := range g.mainGaps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.mainGaps[i].String())
	}
	b.WriteString("] CrossGaps: [")
	for i := range g.crossGaps {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.crossGaps[i].String())
	}
	b.WriteString("]")
	return b.String()
}

var _ fmt.Stringer = (*Geometry)(nil)
