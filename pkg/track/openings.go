package track

import "math"

// Opening is an unoccupied [Start, End) range in the stacking axis of a
// single track, left behind when a spanning item raised the frontier of a
// neighboring track past this one.
type Opening struct {
	Start float64
	End   float64
}

// Size returns the extent of the opening in the stacking axis.
func (o Opening) Size() float64 { return o.End - o.Start }

// Openings returns the current openings of a track, in stacking order.
// The returned slice must not be mutated.
func (rp *RunningPositions) Openings(trackIndex int) []Opening {
	if !rp.dense {
		return nil
	}
	return rp.openings[trackIndex]
}

// openingPath is a candidate backfill placement: one opening index per track
// of the span, starting at startTrack, with startPosition the offset the
// item would be placed at (the highest opening start along the path).
type openingPath struct {
	startTrack     int
	openingIndices []int
	startPosition  float64
}

// findOpeningPath searches the tracks [startTrack, startTrack+spanSize) for
// aligned openings whose overlap can hold an item of itemSize. The search is
// depth first over opening indices, driven by an explicit frame stack; the
// first complete path wins. The running overlap window only narrows as the
// path deepens, so the innermost overlap start is the placement offset.
func (rp *RunningPositions) findOpeningPath(itemSize float64, startTrack, spanSize int) (openingPath, bool) {
	type frame struct {
		openingIndex int
		overlapStart float64
		overlapEnd   float64
	}

	stack := make([]frame, 0, spanSize)
	next := 0
	for {
		depth := len(stack)
		prevStart, prevEnd := 0.0, math.Inf(1)
		if depth > 0 {
			prevStart = stack[depth-1].overlapStart
			prevEnd = stack[depth-1].overlapEnd
		}

		candidates := rp.openings[startTrack+depth]
		descended := false
		for i := next; i < len(candidates); i++ {
			overlapStart := math.Max(prevStart, candidates[i].Start)
			overlapEnd := math.Min(prevEnd, candidates[i].End)
			if overlapEnd-overlapStart >= itemSize {
				stack = append(stack, frame{openingIndex: i, overlapStart: overlapStart, overlapEnd: overlapEnd})
				next = 0
				descended = true
				break
			}
		}

		if descended {
			if len(stack) == spanSize {
				path := openingPath{
					startTrack:     startTrack,
					openingIndices: make([]int, spanSize),
					startPosition:  stack[spanSize-1].overlapStart,
				}
				for d, f := range stack {
					path.openingIndices[d] = f.openingIndex
				}
				return path, true
			}
			continue
		}

		// Exhausted this track's openings; backtrack.
		if len(stack) == 0 {
			return openingPath{}, false
		}
		next = stack[len(stack)-1].openingIndex + 1
		stack = stack[:len(stack)-1]
	}
}

// PlaceInOpening tries to backfill an item of itemSize (stacking axis,
// including the trailing gap) into earlier openings. For auto-placed items
// every span position with a matching used track size is a candidate; for
// author-positioned items only the given span is. The path with the lowest
// start position wins and its openings are consumed: an exact fill removes
// the opening, a partial fill shrinks it, and a placement below the opening
// start splits it.
//
// Returns the winning span, the placement offset, and whether a placement
// was found. A miss is normal control flow; callers fall back to frontier
// placement.
func (rp *RunningPositions) PlaceInOpening(span Span, autoPlaced bool, itemSize float64) (Span, float64, bool) {
	if !rp.dense {
		panic("track: opening placement on non-dense positions")
	}

	spanSize := span.Size()
	usedSize := rp.usedTrackSize(span)

	var best openingPath
	bestValid := false

	candidate := span
	if autoPlaced {
		candidate = Span{Start: 0, End: spanSize}
	}
	for candidate.End <= len(rp.positions) {
		if !autoPlaced && candidate != span {
			break
		}
		// Skip spans whose total track size differs from the one the item
		// was measured against.
		if rp.usedTrackSize(candidate) != usedSize {
			candidate = candidate.next()
			continue
		}
		first := rp.openings[candidate.Start]
		if len(first) == 0 || (bestValid && first[0].Start >= best.startPosition) {
			candidate = candidate.next()
			continue
		}
		if path, ok := rp.findOpeningPath(itemSize, candidate.Start, spanSize); ok {
			if !bestValid || path.startPosition < best.startPosition {
				best = path
				bestValid = true
			}
		}
		candidate = candidate.next()
	}

	if !bestValid {
		return Span{}, 0, false
	}

	for depth := spanSize - 1; depth >= 0; depth-- {
		rp.consumeOpening(best.startTrack+depth, best.openingIndices[depth], best.startPosition, itemSize)
	}

	return Span{Start: best.startTrack, End: best.startTrack + spanSize}, best.startPosition, true
}

// consumeOpening removes the [placement, placement+itemSize) slice from the
// opening at openingIndex of the given track, keeping any remainder above
// and below it.
func (rp *RunningPositions) consumeOpening(trackIndex, openingIndex int, placement, itemSize float64) {
	openings := rp.openings[trackIndex]
	opening := openings[openingIndex]

	replacement := make([]Opening, 0, 2)
	if opening.Start < placement {
		replacement = append(replacement, Opening{Start: opening.Start, End: placement})
	}
	if placement+itemSize < opening.End {
		replacement = append(replacement, Opening{Start: placement + itemSize, End: opening.End})
	}

	updated := make([]Opening, 0, len(openings)-1+len(replacement))
	updated = append(updated, openings[:openingIndex]...)
	updated = append(updated, replacement...)
	updated = append(updated, openings[openingIndex+1:]...)
	rp.openings[trackIndex] = updated
}
