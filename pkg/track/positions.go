package track

import (
	"fmt"
	"math"
)

// Config controls how a RunningPositions tracks occupancy.
type Config struct {
	// TieThreshold widens the set of eligible lines: any line whose
	// max-position is within TieThreshold of the global minimum qualifies.
	TieThreshold float64

	// DensePacking enables opening bookkeeping so later items can backfill
	// holes left by earlier, wider items.
	DensePacking bool

	// CollapsedTracks lists track indices nothing may be placed into.
	CollapsedTracks []int
}

// RunningPositions holds the occupied frontier of every track in the grid
// axis. The index is the track number, the value the offset in the stacking
// axis at which the next item on that track would start.
type RunningPositions struct {
	positions  []float64
	trackSizes []float64

	// openings[i] holds the ordered, non-overlapping openings of track i.
	// Only populated under dense packing.
	openings [][]Opening

	cursor       int
	tieThreshold float64
	dense        bool
}

// NewRunningPositions builds the frontier for the given track sizes, all
// tracks starting at zero. Collapsed tracks are pinned at +Inf so no line
// selection ever lands on them.
func NewRunningPositions(trackSizes []float64, cfg Config) *RunningPositions {
	rp := &RunningPositions{
		positions:    make([]float64, len(trackSizes)),
		trackSizes:   append([]float64(nil), trackSizes...),
		tieThreshold: cfg.TieThreshold,
		dense:        cfg.DensePacking,
	}
	for _, idx := range cfg.CollapsedTracks {
		rp.positions[idx] = math.Inf(1)
	}
	if rp.dense {
		rp.openings = make([][]Opening, len(trackSizes))
	}
	return rp
}

// NewRunningPositionsFromLines derives track sizes from line positions: the
// size of track i is the distance between lines i and i+1, minus the gutter
// for every track but the last.
func NewRunningPositionsFromLines(linePositions []float64, gutter float64, cfg Config) *RunningPositions {
	if len(linePositions) < 2 {
		panic("track: need at least two line positions")
	}
	trackCount := len(linePositions) - 1
	sizes := make([]float64, trackCount)
	for i := 0; i < trackCount; i++ {
		size := linePositions[i+1] - linePositions[i]
		if i < trackCount-1 {
			size -= gutter
		}
		sizes[i] = size
	}
	return NewRunningPositions(sizes, cfg)
}

// newFromPositions seeds the frontier directly. Test helper.
func newFromPositions(positions []float64, tieThreshold float64) *RunningPositions {
	return &RunningPositions{
		positions:    append([]float64(nil), positions...),
		tieThreshold: tieThreshold,
	}
}

// TrackCount returns the number of tracks in the grid axis.
func (rp *RunningPositions) TrackCount() int { return len(rp.positions) }

// MaxPositionForSpan returns the largest running position among the tracks
// the span covers.
func (rp *RunningPositions) MaxPositionForSpan(span Span) float64 {
	if span.End > len(rp.positions) {
		panic(fmt.Sprintf("track: span %v out of range for %d tracks", span, len(rp.positions)))
	}
	max := rp.positions[span.Start]
	for _, p := range rp.positions[span.Start+1 : span.End] {
		if p > max {
			max = p
		}
	}
	return max
}

// MaxFinitePosition returns the largest finite running position across all
// tracks. Collapsed tracks sit at +Inf and never contribute; with every
// track collapsed the result is zero.
func (rp *RunningPositions) MaxFinitePosition() float64 {
	max := 0.0
	for _, p := range rp.positions {
		if !math.IsInf(p, 1) && p > max {
			max = p
		}
	}
	return max
}

// UpdateForSpan overwrites the running position of every track in the span.
func (rp *RunningPositions) UpdateForSpan(span Span, newPosition float64) {
	if span.End > len(rp.positions) {
		panic(fmt.Sprintf("track: span %v out of range for %d tracks", span, len(rp.positions)))
	}
	for i := span.Start; i < span.End; i++ {
		rp.positions[i] = newPosition
	}
}

// UpdateForSpanDense overwrites the running positions like UpdateForSpan,
// but first records an opening on every track whose frontier sits strictly
// below maxForSpan, the span's max-position before placement. The placed
// item starts at maxForSpan, so the space between the old frontier and it
// becomes a backfill candidate.
func (rp *RunningPositions) UpdateForSpanDense(span Span, newPosition, maxForSpan float64) {
	if !rp.dense {
		panic("track: dense update on non-dense positions")
	}
	if span.End > len(rp.positions) {
		panic(fmt.Sprintf("track: span %v out of range for %d tracks", span, len(rp.positions)))
	}
	for i := span.Start; i < span.End; i++ {
		if cur := rp.positions[i]; cur < maxForSpan {
			rp.openings[i] = append(rp.openings[i], Opening{Start: cur, End: maxForSpan})
		}
		rp.positions[i] = newPosition
	}
}

// SetAutoPlacementCursor records the line the next auto-placed item should
// prefer. Callers set it to the end line of each placement.
func (rp *RunningPositions) SetAutoPlacementCursor(line int) {
	rp.cursor = line
}

// FirstEligibleLine picks the placement span for an auto-placed item of the
// given span size. Any start line whose max-position is within the tie
// threshold of the minimum qualifies; among those, the first at or after the
// auto-placement cursor wins, falling back to the first overall. Returns the
// chosen span and its max running position.
func (rp *RunningPositions) FirstEligibleLine(spanSize int) (Span, float64) {
	if spanSize < 1 || spanSize > len(rp.positions) {
		panic(fmt.Sprintf("track: span size %d out of range for %d tracks", spanSize, len(rp.positions)))
	}

	maxPositions := rp.maxPositionsForAllTracks(spanSize)
	allowed := math.Inf(1)
	for _, p := range maxPositions {
		if p < allowed {
			allowed = p
		}
	}
	allowed += rp.tieThreshold

	find := func(begin int) int {
		for i := begin; i < len(maxPositions); i++ {
			if maxPositions[i] <= allowed {
				return i
			}
		}
		return -1
	}

	line := -1
	if rp.cursor < len(maxPositions) {
		line = find(rp.cursor)
	}
	if line == -1 {
		line = find(0)
	}
	return Span{Start: line, End: line + spanSize}, maxPositions[line]
}

// maxPositionsForAllTracks computes, for every start line an item of the
// given span size fits at, the max-position across that window.
func (rp *RunningPositions) maxPositionsForAllTracks(spanSize int) []float64 {
	if spanSize == 1 {
		return rp.positions
	}
	windows := len(rp.positions) - spanSize + 1
	maxPositions := make([]float64, 0, windows)
	for start := 0; start < windows; start++ {
		maxPositions = append(maxPositions, rp.MaxPositionForSpan(Span{Start: start, End: start + spanSize}))
	}
	return maxPositions
}

// usedTrackSize sums the track sizes across the span.
func (rp *RunningPositions) usedTrackSize(span Span) float64 {
	var total float64
	for i := span.Start; i < span.End; i++ {
		total += rp.trackSizes[i]
	}
	return total
}
