// Package paint turns gap geometry into rule decoration segments: one
// rectangle per unbroken run of gap, positioned by the intersection pairing
// rules of CSS gap decorations.
package paint

import (
	"github.com/gaprule/gaprule/pkg/gap"
	"github.com/gaprule/gaprule/pkg/style"
)

// Segment is one paintable slice of a gap decoration.
type Segment struct {
	Rect      gap.Rect
	Direction gap.Direction
	GapIndex  int
	Color     style.Color
	Style     style.BorderStyle
	Thickness float64
}

// Paint emits the decoration segments for every gap running in the given
// direction. Rule color, width, and style cycle per gap; the rule break
// mode decides how each gap splits at intersections.
func Paint(g *gap.Geometry, direction gap.Direction, rules style.Rules) []Segment {
	if g == nil {
		return nil
	}

	isColumnGap := direction == gap.ForColumns
	isMain := g.IsMainDirection(direction)
	gapCount := g.GapCount(direction)

	// The crossing gap width at a non-edge intersection is the gutter of
	// the orthogonal direction.
	crossGutterWidth := g.BlockGapSize()
	if direction == gap.ForRows {
		crossGutterWidth = g.InlineGapSize()
	}

	colorIt := style.NewIterator(rules.Colors)
	widthIt := style.NewIterator(rules.Widths)
	styleIt := style.NewIterator(rules.Styles)

	var segments []Segment
	for gapIndex := 0; gapIndex < gapCount; gapIndex++ {
		ruleColor := colorIt.Next()
		ruleStyle := styleIt.Next()
		ruleThickness := widthIt.Next()

		if ruleThickness <= 0 || ruleStyle == style.BorderNone {
			continue
		}

		center := g.GapCenterOffset(direction, gapIndex)
		intersections := g.IntersectionsForGap(direction, gapIndex)
		if len(intersections) < 2 {
			continue
		}

		lastIndex := len(intersections) - 1
		start := 0
		for start < lastIndex {
			var end int
			start, end = adjustIntersectionIndexPair(g, direction, start, gapIndex, rules.Break, intersections)
			if start >= end {
				// Nothing left to paint in this gap.
				break
			}

			// The crossing gap width is zero at content edges and the
			// cross gutter elsewhere; outsets resolve against it.
			startWidth, endWidth := 0.0, 0.0
			if !g.IsEdgeIntersection(gapIndex, start, len(intersections), isMain) {
				startWidth = crossGutterWidth
			}
			if !g.IsEdgeIntersection(gapIndex, end, len(intersections), isMain) {
				endWidth = crossGutterWidth
			}

			startOutset := rules.Outset.Resolve(startWidth)
			endOutset := rules.Outset.Resolve(endWidth)

			// The decoration pulls in from each intersection by half the
			// crossing gap width minus the outset.
			decorationStartOffset := startWidth/2 - startOutset
			decorationEndOffset := endWidth/2 - endOutset

			primaryStart := center - ruleThickness/2
			primarySize := ruleThickness

			secondaryStart := intersections[start] + decorationStartOffset
			secondarySize := intersections[end] - secondaryStart - decorationEndOffset

			rect := gap.Rect{
				InlineStart: secondaryStart,
				BlockStart:  primaryStart,
				InlineSize:  secondarySize,
				BlockSize:   primarySize,
			}
			if isColumnGap {
				// Column gaps paint a vertical strip.
				rect = gap.Rect{
					InlineStart: primaryStart,
					BlockStart:  secondaryStart,
					InlineSize:  primarySize,
					BlockSize:   secondarySize,
				}
			}

			segments = append(segments, Segment{
				Rect:      rect,
				Direction: direction,
				GapIndex:  gapIndex,
				Color:     ruleColor,
				Style:     ruleStyle,
				Thickness: ruleThickness,
			})

			start = end
		}
	}
	return segments
}

// adjustIntersectionIndexPair moves the (start, end) pair to the next
// decoration segment of a gap. BreakNone covers the whole gap; otherwise
// start skips intersections blocked after, and end advances while the break
// mode allows.
func adjustIntersectionIndexPair(g *gap.Geometry, direction gap.Direction, start, gapIndex int, ruleBreak style.RuleBreak, intersections []float64) (int, int) {
	lastIndex := len(intersections) - 1
	if ruleBreak == style.BreakNone {
		return 0, lastIndex
	}

	// Find the first intersection the decoration can start at.
	for start < len(intersections) && g.IntersectionBlockedStatus(direction, gapIndex, start).Has(gap.BlockedAfter) {
		start++
	}
	if start >= lastIndex {
		return start, start
	}

	end := start + 1
	for end < lastIndex && shouldMoveIntersectionEndForward(g, direction, gapIndex, end, ruleBreak) {
		end++
	}
	return start, end
}

// shouldMoveIntersectionEndForward decides whether a decoration continues
// through the intersection at endIndex.
func shouldMoveIntersectionEndForward(g *gap.Geometry, direction gap.Direction, gapIndex, endIndex int, ruleBreak style.RuleBreak) bool {
	blocked := g.IntersectionBlockedStatus(direction, gapIndex, endIndex)

	// Spanning-item breaks stop only at "T" intersections: those blocked
	// after by a spanner.
	if ruleBreak == style.BreakSpanningItem {
		return !blocked.Has(gap.BlockedAfter)
	}

	// Intersection breaks stop at every crossing. Flex gaps never host
	// spanners, so every intersection is a real crossing.
	if g.ContainerType() == gap.ContainerFlex {
		return false
	}

	if blocked.Has(gap.BlockedAfter) {
		return false
	}

	// For grid, look at the same point from the orthogonal gap's
	// perspective: if spanners flank it on both sides there, it isn't a T
	// or cross intersection, and the decoration runs through.
	crossDirection := gap.ForRows
	if direction == gap.ForRows {
		crossDirection = gap.ForColumns
	}
	crossBlocked := g.IntersectionBlockedStatus(crossDirection, endIndex-1, gapIndex+1)
	return crossBlocked.Has(gap.BlockedAfter) && crossBlocked.Has(gap.BlockedBefore)
}
