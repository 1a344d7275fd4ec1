package gap

import "github.com/gaprule/gaprule/pkg/track"

// Extent is the content range of one grid track along its axis.
type Extent struct {
	Start float64
	End   float64
}

// GridConfig describes an aligned grid for gap geometry purposes: the
// content extents of every row and column, and the gutter sizes.
type GridConfig struct {
	Rows         []Extent
	Columns      []Extent
	RowGutter    float64
	ColumnGutter float64
}

// GridBuilder derives the gap geometry of an aligned grid. Row gaps are the
// main gaps, column gaps the cross gaps; items spanning multiple tracks
// feed the segment-state aggregation so the painter can break around them.
type GridBuilder struct {
	cfg    GridConfig
	rowAgg *SegmentStateAggregator
	colAgg *SegmentStateAggregator
}

// NewGridBuilder builds a builder for the given grid shape.
func NewGridBuilder(cfg GridConfig) *GridBuilder {
	return &GridBuilder{
		cfg:    cfg,
		rowAgg: NewSegmentStateAggregator(len(cfg.Columns)),
		colAgg: NewSegmentStateAggregator(len(cfg.Rows)),
	}
}

// ProcessItem records an item occupying the given row and column spans.
func (b *GridBuilder) ProcessItem(rowSpan, columnSpan track.Span) {
	b.rowAgg.ProcessItem(rowSpan, columnSpan)
	b.colAgg.ProcessItem(columnSpan, rowSpan)
}

// Build finalizes the geometry: row gaps centered between adjacent rows,
// column gaps centered between adjacent columns, blocked ranges attached.
// Returns nil when the grid has no gaps in either axis.
func (b *GridBuilder) Build() *Geometry {
	rows, cols := b.cfg.Rows, b.cfg.Columns

	hasRowGaps := len(rows) > 1 && b.cfg.RowGutter > 0
	hasColumnGaps := len(cols) > 1 && b.cfg.ColumnGutter > 0
	if !hasRowGaps && !hasColumnGaps {
		return nil
	}

	g := NewGeometry(ContainerGrid)
	g.SetBlockGapSize(b.cfg.RowGutter)
	g.SetInlineGapSize(b.cfg.ColumnGutter)
	g.SetContentInlineOffsets(cols[0].Start, cols[len(cols)-1].End)
	g.SetContentBlockOffsets(rows[0].Start, rows[len(rows)-1].End)

	if len(rows) > 1 {
		mainGaps := make([]MainGap, 0, len(rows)-1)
		for i := 0; i < len(rows)-1; i++ {
			mg := NewMainGap((rows[i].End + rows[i+1].Start) / 2)
			b.rowAgg.FinalizeRangesFor(&mg, i)
			mainGaps = append(mainGaps, mg)
		}
		g.SetMainGaps(mainGaps)
	}

	if len(cols) > 1 {
		crossGaps := make([]CrossGap, 0, len(cols)-1)
		for i := 0; i < len(cols)-1; i++ {
			offset := LogicalOffset{Inline: (cols[i].End + cols[i+1].Start) / 2, Block: rows[0].Start}
			cg := NewCrossGap(offset, EdgeBoth)
			b.colAgg.FinalizeRangesFor(&cg, i)
			crossGaps = append(crossGaps, cg)
		}
		g.SetCrossGaps(crossGaps)
	}

	return g
}

// UniformGridConfig lays out rowCount x columnCount tracks of equal size
// starting at the origin, a convenience for regular grids.
func UniformGridConfig(rowCount, columnCount int, rowSize, columnSize, rowGutter, columnGutter float64) GridConfig {
	rows := make([]Extent, rowCount)
	for i := range rows {
		start := float64(i) * (rowSize + rowGutter)
		rows[i] = Extent{Start: start, End: start + rowSize}
	}
	cols := make([]Extent, columnCount)
	for i := range cols {
		start := float64(i) * (columnSize + columnGutter)
		cols[i] = Extent{Start: start, End: start + columnSize}
	}
	return GridConfig{Rows: rows, Columns: cols, RowGutter: rowGutter, ColumnGutter: columnGutter}
}
