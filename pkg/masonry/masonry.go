// Package masonry places items into a masonry grid: fixed tracks in the
// grid axis, items stacked onto whichever eligible track is least filled,
// with optional dense backfilling of earlier openings.
package masonry

import (
	"fmt"

	"github.com/gaprule/gaprule/pkg/gap"
	"github.com/gaprule/gaprule/pkg/track"
)

// Item is one masonry item to place. Auto-placed items carry only a span
// size; pinned items name their grid-axis span outright.
type Item struct {
	// SpanSize is the number of tracks the item covers.
	SpanSize int

	// Start is the author-specified start track, or -1 for auto placement.
	Start int

	// StackingSize is the item's extent in the stacking axis, margins
	// included.
	StackingSize float64
}

// AutoPlaced reports whether the item has no author position.
func (it Item) AutoPlaced() bool { return it.Start < 0 }

// PlacedItem is an item after placement.
type PlacedItem struct {
	Span track.Span

	// GridOffset is where the item's first track starts in the grid axis.
	GridOffset float64

	// StackingOffset is where the item starts in the stacking axis.
	StackingOffset float64
}

// Config describes the masonry container.
type Config struct {
	// TrackSizes holds the grid-axis size of each track.
	TrackSizes []float64

	// GridGutter is the gap between adjacent tracks.
	GridGutter float64

	// StackingGutter is the gap between stacked items on the same track.
	StackingGutter float64

	// TieThreshold widens eligible-line selection; see track.Config.
	TieThreshold float64

	// DensePacking backfills items into earlier openings when they fit.
	DensePacking bool

	// CollapsedTracks lists tracks nothing may be placed into.
	CollapsedTracks []int
}

// Result is the outcome of placing all items.
type Result struct {
	Items []PlacedItem

	// StackingSize is the container's intrinsic size in the stacking axis:
	// the final max frontier minus the trailing gutter.
	StackingSize float64
}

// Place runs the placement loop over items in order. Each item lands at the
// max frontier of its span; under dense packing it may instead backfill an
// earlier opening, in which case the frontier is left untouched.
func Place(items []Item, cfg Config) (Result, error) {
	trackCount := len(cfg.TrackSizes)
	if trackCount == 0 {
		return Result{}, fmt.Errorf("masonry: no tracks")
	}
	for i, it := range items {
		if it.SpanSize < 1 || it.SpanSize > trackCount {
			return Result{}, fmt.Errorf("masonry: item %d spans %d of %d tracks", i, it.SpanSize, trackCount)
		}
		if !it.AutoPlaced() && it.Start+it.SpanSize > trackCount {
			return Result{}, fmt.Errorf("masonry: item %d starts at %d and overflows %d tracks", i, it.Start, trackCount)
		}
	}

	positions := track.NewRunningPositions(cfg.TrackSizes, track.Config{
		TieThreshold:    cfg.TieThreshold,
		DensePacking:    cfg.DensePacking,
		CollapsedTracks: cfg.CollapsedTracks,
	})

	gridOffsets := trackStartOffsets(cfg)
	placed := make([]PlacedItem, 0, len(items))

	for _, it := range items {
		var span track.Span
		var stackingOffset float64
		if it.AutoPlaced() {
			span, stackingOffset = positions.FirstEligibleLine(it.SpanSize)
		} else {
			span = track.NewSpan(it.Start, it.Start+it.SpanSize)
			stackingOffset = positions.MaxPositionForSpan(span)
		}

		// Under dense packing, see if the item fits into an earlier
		// opening. A hit reuses space below the frontier, so the running
		// positions stay as they are.
		movedToOpening := false
		if cfg.DensePacking {
			if openingSpan, openingOffset, ok := positions.PlaceInOpening(span, it.AutoPlaced(), it.StackingSize+cfg.StackingGutter); ok {
				span = openingSpan
				stackingOffset = openingOffset
				movedToOpening = true
			}
		}

		positions.SetAutoPlacementCursor(span.End)

		if !movedToOpening {
			newPosition := stackingOffset + cfg.StackingGutter + it.StackingSize
			if cfg.DensePacking {
				positions.UpdateForSpanDense(span, newPosition, stackingOffset)
			} else {
				positions.UpdateForSpan(span, newPosition)
			}
		}

		placed = append(placed, PlacedItem{
			Span:           span,
			GridOffset:     gridOffsets[span.Start],
			StackingOffset: stackingOffset,
		})
	}

	// The last gutter has no item after it. Collapsed tracks are pinned at
	// +Inf and must not leak into the intrinsic size.
	stackingSize := positions.MaxFinitePosition() - cfg.StackingGutter
	if len(items) == 0 {
		stackingSize = 0
	}

	return Result{Items: placed, StackingSize: stackingSize}, nil
}

// trackStartOffsets returns the grid-axis start offset of each track.
func trackStartOffsets(cfg Config) []float64 {
	offsets := make([]float64, len(cfg.TrackSizes))
	cursor := 0.0
	for i, size := range cfg.TrackSizes {
		offsets[i] = cursor
		cursor += size + cfg.GridGutter
	}
	return offsets
}

// BuildGapGeometry derives the gap geometry of a placed masonry container:
// cross gaps centered in each grid-axis gutter, running the full stacking
// extent. Returns nil when there is a single track or no gutter.
func BuildGapGeometry(cfg Config, result Result, isColumnGrid bool) *gap.Geometry {
	trackCount := len(cfg.TrackSizes)
	if trackCount < 2 || cfg.GridGutter <= 0 {
		return nil
	}

	offsets := trackStartOffsets(cfg)
	gridEnd := offsets[trackCount-1] + cfg.TrackSizes[trackCount-1]

	crossGaps := make([]gap.CrossGap, 0, trackCount-1)
	for i := 0; i < trackCount-1; i++ {
		center := offsets[i] + cfg.TrackSizes[i] + cfg.GridGutter/2
		offset := gap.LogicalOffset{Inline: center, Block: 0}
		if !isColumnGrid {
			offset = gap.LogicalOffset{Inline: 0, Block: center}
		}
		crossGaps = append(crossGaps, gap.NewCrossGap(offset, gap.EdgeBoth))
	}

	g := gap.NewGeometry(gap.ContainerGrid)
	g.SetCrossGaps(crossGaps)
	if isColumnGrid {
		// Column tracks: the gutters run in the inline axis, items stack
		// in the block axis.
		g.SetInlineGapSize(cfg.GridGutter)
		g.SetContentInlineOffsets(0, gridEnd)
		g.SetContentBlockOffsets(0, result.StackingSize)
	} else {
		g.SetMainDirection(gap.ForColumns)
		g.SetBlockGapSize(cfg.GridGutter)
		g.SetContentBlockOffsets(0, gridEnd)
		g.SetContentInlineOffsets(0, result.StackingSize)
	}
	return g
}
