package flex

import "github.com/gaprule/gaprule/pkg/gap"

// Item is an unplaced flex item: its main and cross axis sizes, margins
// included.
type Item struct {
	MainSize  float64
	CrossSize float64
}

// PlacedItem is an item after layout, in flow-relative coordinates.
type PlacedItem struct {
	Offset     gap.LogicalOffset
	InlineSize float64
	BlockSize  float64
}

// Result is the outcome of a flex layout pass: the line structure, every
// item's position, and the container's gap geometry (nil when there is
// nothing to decorate).
type Result struct {
	Lines    []Line
	Items    []PlacedItem
	Geometry *gap.Geometry
}

// Layout runs a single-pass wrapping flex layout and accumulates gap
// geometry along the way. Items keep their given sizes; lines wrap when the
// next item would overflow the container's content main size.
func Layout(items []Item, container Container, gapBetweenItems, gapBetweenLines float64, isColumn bool) Result {
	if len(items) == 0 {
		return Result{}
	}

	lines := breakLines(items, container, gapBetweenItems, isColumn)

	crossStart := container.Padding.BlockStart
	mainStart := container.Padding.InlineStart
	if isColumn {
		crossStart = container.Padding.InlineStart
		mainStart = container.Padding.BlockStart
	}

	crossCursor := crossStart
	for i := range lines {
		lines[i].CrossOffset = crossCursor
		crossCursor += lines[i].CrossSize + gapBetweenLines
	}

	acc := NewGapAccumulator(gapBetweenItems, gapBetweenLines, len(lines), len(items), container, isColumn)
	placed := make([]PlacedItem, len(items))

	for lineIndex := range lines {
		line := &lines[lineIndex]
		isFirstLine := lineIndex == 0
		isLastLine := lineIndex == len(lines)-1

		lineCrossStart := line.CrossOffset
		lineCrossEnd := line.CrossOffset + line.CrossSize

		mainCursor := mainStart
		for itemIndexInLine, itemIndex := range line.ItemIndices {
			item := items[itemIndex]

			offset := gap.LogicalOffset{Inline: mainCursor, Block: line.CrossOffset}
			inlineSize, blockSize := item.MainSize, item.CrossSize
			if isColumn {
				offset = gap.LogicalOffset{Inline: line.CrossOffset, Block: mainCursor}
				inlineSize, blockSize = item.CrossSize, item.MainSize
			}
			placed[itemIndex] = PlacedItem{Offset: offset, InlineSize: inlineSize, BlockSize: blockSize}

			acc.BuildGapsForCurrentItem(lines, lineIndex, itemIndexInLine, offset, isFirstLine, isLastLine, lineCrossStart, lineCrossEnd)

			mainCursor += item.MainSize + gapBetweenItems
		}
	}

	return Result{
		Lines:    lines,
		Items:    placed,
		Geometry: acc.BuildGapGeometry(),
	}
}

// breakLines assigns items to lines greedily against the container's
// content main size. Every line holds at least one item.
func breakLines(items []Item, container Container, gapBetweenItems float64, isColumn bool) []Line {
	available := container.InlineSize - container.Padding.InlineStart - container.Padding.InlineEnd
	if isColumn {
		available = container.BlockSize - container.Padding.BlockStart - container.Padding.BlockEnd
	}

	var lines []Line
	current := Line{}
	used := 0.0

	for i, item := range items {
		needed := item.MainSize
		if len(current.ItemIndices) > 0 {
			needed += gapBetweenItems
		}
		if len(current.ItemIndices) > 0 && used+needed > available {
			lines = append(lines, current)
			current = Line{}
			used = 0
			needed = item.MainSize
		}
		current.ItemIndices = append(current.ItemIndices, i)
		used += needed
		if item.CrossSize > current.CrossSize {
			current.CrossSize = item.CrossSize
		}
	}
	return append(lines, current)
}
