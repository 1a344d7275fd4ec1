package gap

import "github.com/gaprule/gaprule/pkg/track"

// SegmentState describes what sits on either side of a slice of a gap.
type SegmentState uint8

const (
	SegmentNone        SegmentState = 0
	SegmentEmptyBefore SegmentState = 1 << 0
	SegmentEmptyAfter  SegmentState = 1 << 1
	SegmentBlocked     SegmentState = 1 << 2
)

// Has reports whether the state carries the given flag.
func (s SegmentState) Has(flag SegmentState) bool { return s&flag != 0 }

// SegmentStateRange is a contiguous [Start, End) run of gap segments
// sharing the same state. Indices count cells along the gap's secondary
// axis.
type SegmentStateRange struct {
	Start int
	End   int
	State SegmentState
}

// BlockedStatus describes an intersection point: whether the gap segment
// before it, after it, or both are blocked by spanning items.
type BlockedStatus uint8

const (
	BlockedBefore BlockedStatus = 1 << 0
	BlockedAfter  BlockedStatus = 1 << 1
)

// Has reports whether the status carries the given flag.
func (b BlockedStatus) Has(flag BlockedStatus) bool { return b&flag != 0 }

// CellState is the occupancy of one grid cell adjacent to a gap.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellOccupied
	CellSpanner
)

// segmentStateAdder lets the aggregator feed ranges to either gap kind.
type segmentStateAdder interface {
	AddSegmentStateRange(SegmentStateRange)
}

// SegmentStateAggregator collects per-cell occupancy along one axis of an
// aligned grid and turns it into blocked ranges per gap. An item spanning
// two or more primary tracks marks its cells as spanners; a gap slice
// flanked by spanner cells on both sides is blocked.
type SegmentStateAggregator struct {
	cellCount  int
	cellStates map[int][]CellState
}

// NewSegmentStateAggregator builds an aggregator for tracks whose secondary
// axis holds cellCount cells.
func NewSegmentStateAggregator(cellCount int) *SegmentStateAggregator {
	return &SegmentStateAggregator{
		cellCount:  cellCount,
		cellStates: make(map[int][]CellState),
	}
}

// ProcessItem records an item occupying primarySpan x secondarySpan. Only
// items spanning at least two primary tracks affect gap states.
func (a *SegmentStateAggregator) ProcessItem(primarySpan, secondarySpan track.Span) {
	if primarySpan.Size() < 2 {
		return
	}
	for t := primarySpan.Start; t < primarySpan.End; t++ {
		a.markCells(t, secondarySpan, CellSpanner)
	}
}

// FinalizeRangesFor emits the blocked ranges for the gap between primary
// tracks gapIndex and gapIndex+1. Tracks with no recorded state count as
// all-empty.
func (a *SegmentStateAggregator) FinalizeRangesFor(g segmentStateAdder, gapIndex int) {
	if a.cellCount == 0 {
		return
	}
	current := a.cellsFor(gapIndex)
	next := a.cellsFor(gapIndex + 1)

	mask := func(i int) SegmentState {
		if current[i] == CellSpanner && next[i] == CellSpanner {
			return SegmentBlocked
		}
		return SegmentNone
	}

	state := mask(0)
	start := 0
	for i := 1; i < a.cellCount; i++ {
		candidate := mask(i)
		if candidate != state {
			if state == SegmentBlocked {
				g.AddSegmentStateRange(SegmentStateRange{Start: start, End: i, State: state})
			}
			state = candidate
			start = i
		}
	}
	if state == SegmentBlocked {
		g.AddSegmentStateRange(SegmentStateRange{Start: start, End: a.cellCount, State: state})
	}
}

func (a *SegmentStateAggregator) cellsFor(trackIndex int) []CellState {
	if cells, ok := a.cellStates[trackIndex]; ok {
		return cells
	}
	return make([]CellState, a.cellCount)
}

func (a *SegmentStateAggregator) markCells(trackIndex int, secondarySpan track.Span, state CellState) {
	cells, ok := a.cellStates[trackIndex]
	if !ok {
		cells = make([]CellState, a.cellCount)
		a.cellStates[trackIndex] = cells
	}
	for i := secondarySpan.Start; i < secondarySpan.End; i++ {
		cells[i] = state
	}
}
