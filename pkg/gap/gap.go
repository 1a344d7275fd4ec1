// Package gap models the geometry of the gutters in a multi-track layout:
// where each gap sits, where gaps intersect each other and the content
// edges, and which slices of a gap are blocked by spanning items. The
// geometry is produced by the layout drivers (flex accumulation, grid
// alignment) and consumed by the decoration painter.
package gap

import "fmt"

// Direction identifies the track direction a gap runs between. A column gap
// separates column tracks and is painted as a vertical strip; a row gap the
// opposite.
type Direction int

const (
	ForRows Direction = iota
	ForColumns
)

func (d Direction) String() string {
	if d == ForColumns {
		return "columns"
	}
	return "rows"
}

// LogicalOffset is a flow-relative point: inline advances with text, block
// advances with lines.
type LogicalOffset struct {
	Inline float64
	Block  float64
}

// Rect is a flow-relative rectangle.
type Rect struct {
	InlineStart float64
	BlockStart  float64
	InlineSize  float64
	BlockSize   float64
}

// EdgeState describes whether a cross gap touches the container's content
// edge at its start, its end, both, or neither. The painter uses it to
// decide where the crossing gap width collapses to zero.
type EdgeState uint8

const (
	EdgeNone  EdgeState = 0
	EdgeStart EdgeState = 1
	EdgeEnd   EdgeState = 2
	EdgeBoth  EdgeState = EdgeStart | EdgeEnd
)

// CrossGapRange is an inclusive [start, end] index range into a geometry's
// cross gap list. A main gap keeps two of these: the cross gaps that end at
// it and the cross gaps that start at it.
type CrossGapRange struct {
	start int
	end   int
	valid bool
}

// Valid reports whether the range holds any indices.
func (r CrossGapRange) Valid() bool { return r.valid }

// Start returns the first index. Panics on an empty range.
func (r CrossGapRange) Start() int {
	if !r.valid {
		panic("gap: Start of empty cross gap range")
	}
	return r.start
}

// End returns the last index. Panics on an empty range.
func (r CrossGapRange) End() int {
	if !r.valid {
		panic("gap: End of empty cross gap range")
	}
	return r.end
}

// Extend grows the range to include index. Indices must arrive in
// increasing order.
func (r *CrossGapRange) Extend(index int) {
	if !r.valid {
		r.start = index
		r.end = index
		r.valid = true
		return
	}
	if index <= r.end {
		panic(fmt.Sprintf("gap: cross gap range extended out of order: %d after %d", index, r.end))
	}
	r.end = index
}

func (r CrossGapRange) String() string {
	if !r.valid {
		return "(none)"
	}
	return fmt.Sprintf("(%d --> %d)", r.start, r.end)
}

// MainGap is a gap in the primary axis: between flex lines in a row flex
// container, or between rows in a grid. Its offset is the midpoint of the
// gutter in the axis orthogonal to the gap.
type MainGap struct {
	offset float64

	// Flex lines don't align across the container, so each main gap tracks
	// which cross gaps fall immediately before and after it. Grid gaps
	// align and leave both ranges empty.
	before CrossGapRange
	after  CrossGapRange

	stateRanges []SegmentStateRange
}

// NewMainGap builds a main gap centered at offset.
func NewMainGap(offset float64) MainGap {
	return MainGap{offset: offset}
}

// Offset returns the gap's center offset.
func (m *MainGap) Offset() float64 { return m.offset }

// HasCrossGapsBefore reports whether any cross gaps end at this gap.
func (m *MainGap) HasCrossGapsBefore() bool { return m.before.Valid() }

// HasCrossGapsAfter reports whether any cross gaps start at this gap.
func (m *MainGap) HasCrossGapsAfter() bool { return m.after.Valid() }

// CrossGapsBefore returns the index range of cross gaps ending at this gap.
func (m *MainGap) CrossGapsBefore() CrossGapRange { return m.before }

// CrossGapsAfter returns the index range of cross gaps starting at this gap.
func (m *MainGap) CrossGapsAfter() CrossGapRange { return m.after }

// ExtendCrossGapsBefore records a cross gap ending at this main gap.
func (m *MainGap) ExtendCrossGapsBefore(crossGapIndex int) {
	m.before.Extend(crossGapIndex)
}

// ExtendCrossGapsAfter records a cross gap starting at this main gap.
func (m *MainGap) ExtendCrossGapsAfter(crossGapIndex int) {
	m.after.Extend(crossGapIndex)
}

// AddSegmentStateRange appends a state range covering part of this gap.
func (m *MainGap) AddSegmentStateRange(r SegmentStateRange) {
	m.stateRanges = append(m.stateRanges, r)
}

// SegmentStateRanges returns the recorded state ranges, possibly nil.
func (m *MainGap) SegmentStateRanges() []SegmentStateRange { return m.stateRanges }

func (m *MainGap) String() string {
	return fmt.Sprintf("MainOffset(%g); Before: %v; After: %v", m.offset, m.before, m.after)
}

// CrossGap is a gap that intersects main gaps: between items in a flex
// line, or between columns in a grid.
type CrossGap struct {
	offset      LogicalOffset
	edge        EdgeState
	stateRanges []SegmentStateRange
}

// NewCrossGap builds a cross gap starting at offset with the given edge
// state.
func NewCrossGap(offset LogicalOffset, edge EdgeState) CrossGap {
	return CrossGap{offset: offset, edge: edge}
}

// Offset returns the gap's start point.
func (c *CrossGap) Offset() LogicalOffset { return c.offset }

// EdgeState returns how the gap touches the container edges.
func (c *CrossGap) EdgeState() EdgeState { return c.edge }

// StartsAtEdge reports whether the gap begins at the content edge.
func (c *CrossGap) StartsAtEdge() bool { return c.edge&EdgeStart != 0 }

// EndsAtEdge reports whether the gap ends at the content edge.
func (c *CrossGap) EndsAtEdge() bool { return c.edge&EdgeEnd != 0 }

// AddSegmentStateRange appends a state range covering part of this gap.
func (c *CrossGap) AddSegmentStateRange(r SegmentStateRange) {
	c.stateRanges = append(c.stateRanges, r)
}

// SegmentStateRanges returns the recorded state ranges, possibly nil.
func (c *CrossGap) SegmentStateRanges() []SegmentStateRange { return c.stateRanges }

func (c *CrossGap) String() string {
	var edge string
	switch c.edge {
	case EdgeStart:
		edge = "start"
	case EdgeEnd:
		edge = "end"
	case EdgeBoth:
		edge = "both"
	default:
		edge = "none"
	}
	return fmt.Sprintf("CrossStartOffset(%g, %g); Edge: %s", c.offset.Inline, c.offset.Block, edge)
}
