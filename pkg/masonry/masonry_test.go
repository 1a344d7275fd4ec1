package masonry

import (
	"math"
	"testing"

	"github.com/gaprule/gaprule/pkg/gap"
	"github.com/gaprule/gaprule/pkg/track"
)

func auto(spanSize int, stackingSize float64) Item {
	return Item{SpanSize: spanSize, Start: -1, StackingSize: stackingSize}
}

func TestPlaceFillsLeastFilledTrack(t *testing.T) {
	cfg := Config{
		TrackSizes:     []float64{100, 100, 100},
		GridGutter:     10,
		StackingGutter: 10,
	}
	items := []Item{auto(1, 50), auto(1, 30), auto(1, 40), auto(1, 20)}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	wantSpans := []track.Span{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}, {Start: 1, End: 2}}
	wantOffsets := []float64{0, 0, 0, 40}
	for i, p := range result.Items {
		if p.Span != wantSpans[i] {
			t.Errorf("item %d span = %v, want %v", i, p.Span, wantSpans[i])
		}
		if p.StackingOffset != wantOffsets[i] {
			t.Errorf("item %d stacking offset = %v, want %v", i, p.StackingOffset, wantOffsets[i])
		}
	}

	// Track 1 frontier ends at 40 + 10 + 20 = 70; minus the trailing gutter.
	if result.StackingSize != 60 {
		t.Errorf("stacking size = %v, want 60", result.StackingSize)
	}
}

func TestPlaceGridOffsets(t *testing.T) {
	cfg := Config{
		TrackSizes: []float64{100, 50, 80},
		GridGutter: 10,
	}
	items := []Item{auto(1, 10), auto(1, 10), auto(1, 10)}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 110, 170}
	for i, p := range result.Items {
		if p.GridOffset != want[i] {
			t.Errorf("item %d grid offset = %v, want %v", i, p.GridOffset, want[i])
		}
	}
}

func TestPlacePinnedItem(t *testing.T) {
	cfg := Config{TrackSizes: []float64{100, 100, 100}, StackingGutter: 5}
	items := []Item{
		{SpanSize: 1, Start: 2, StackingSize: 40},
		{SpanSize: 1, Start: 2, StackingSize: 20},
	}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if result.Items[0].Span != (track.Span{Start: 2, End: 3}) || result.Items[0].StackingOffset != 0 {
		t.Errorf("first pinned item placed at %+v", result.Items[0])
	}
	if result.Items[1].StackingOffset != 45 {
		t.Errorf("second pinned item stacking offset = %v, want 45", result.Items[1].StackingOffset)
	}
}

func TestPlaceDenseBackfill(t *testing.T) {
	cfg := Config{
		TrackSizes:   []float64{100, 100},
		DensePacking: true,
	}
	items := []Item{
		auto(1, 60), // track 0, frontier 60
		auto(2, 20), // spans both, starts at 60, opens [0, 60) on track 1
		auto(1, 30), // backfills the opening on track 1
	}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	spanner := result.Items[1]
	if spanner.Span != (track.Span{Start: 0, End: 2}) || spanner.StackingOffset != 60 {
		t.Errorf("spanner placed at %+v, want span [0, 2) offset 60", spanner)
	}

	backfilled := result.Items[2]
	if backfilled.Span != (track.Span{Start: 1, End: 2}) {
		t.Errorf("backfilled item span = %v, want [1, 2)", backfilled.Span)
	}
	if backfilled.StackingOffset != 0 {
		t.Errorf("backfilled item stacking offset = %v, want 0", backfilled.StackingOffset)
	}

	// Backfilling must not move the frontier: 60 + 20 = 80.
	if result.StackingSize != 80 {
		t.Errorf("stacking size = %v, want 80", result.StackingSize)
	}
}

func TestPlaceDenseMissFallsThrough(t *testing.T) {
	cfg := Config{
		TrackSizes:   []float64{100, 100},
		DensePacking: true,
	}
	items := []Item{
		auto(1, 60),
		auto(2, 20),
		auto(1, 70), // too tall for the [0, 60) opening
	}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	tall := result.Items[2]
	if tall.StackingOffset != 80 {
		t.Errorf("tall item stacking offset = %v, want 80 (after the spanner)", tall.StackingOffset)
	}
}

func TestPlaceErrors(t *testing.T) {
	tests := []struct {
		name  string
		cfg   Config
		items []Item
	}{
		{"no tracks", Config{}, []Item{auto(1, 10)}},
		{"span too wide", Config{TrackSizes: []float64{100}}, []Item{auto(2, 10)}},
		{"pinned overflow", Config{TrackSizes: []float64{100, 100}}, []Item{{SpanSize: 2, Start: 1, StackingSize: 10}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Place(tt.items, tt.cfg); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBuildGapGeometry(t *testing.T) {
	cfg := Config{
		TrackSizes:     []float64{100, 100, 100},
		GridGutter:     10,
		StackingGutter: 10,
	}
	items := []Item{auto(1, 50), auto(1, 30), auto(1, 40)}
	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	g := BuildGapGeometry(cfg, result, true)
	if g == nil {
		t.Fatal("geometry is nil")
	}
	crossGaps := g.CrossGaps()
	if len(crossGaps) != 2 {
		t.Fatalf("cross gaps = %d, want 2", len(crossGaps))
	}
	if got := crossGaps[0].Offset().Inline; got != 105 {
		t.Errorf("first gap inline offset = %v, want 105", got)
	}
	if got := crossGaps[1].Offset().Inline; got != 215 {
		t.Errorf("second gap inline offset = %v, want 215", got)
	}

	// Column gaps run the full stacking extent.
	intersections := g.IntersectionsForGap(gap.ForColumns, 0)
	if len(intersections) != 2 || intersections[0] != 0 || intersections[1] != result.StackingSize {
		t.Errorf("intersections = %v, want [0 %v]", intersections, result.StackingSize)
	}
}

func TestBuildGapGeometrySingleTrack(t *testing.T) {
	cfg := Config{TrackSizes: []float64{100}, GridGutter: 10}
	if g := BuildGapGeometry(cfg, Result{}, true); g != nil {
		t.Errorf("geometry = %v, want nil", g)
	}
}

func TestPlaceCollapsedTracks(t *testing.T) {
	cfg := Config{
		TrackSizes:      []float64{100, 100, 100},
		GridGutter:      10,
		StackingGutter:  10,
		CollapsedTracks: []int{2},
	}
	items := []Item{auto(1, 50), auto(1, 70)}

	result, err := Place(items, cfg)
	if err != nil {
		t.Fatal(err)
	}

	wantSpans := []track.Span{{Start: 0, End: 1}, {Start: 1, End: 2}}
	for i, p := range result.Items {
		if p.Span != wantSpans[i] {
			t.Errorf("item %d span = %v, want %v", i, p.Span, wantSpans[i])
		}
		if p.StackingOffset != 0 {
			t.Errorf("item %d stacking offset = %v, want 0", i, p.StackingOffset)
		}
	}

	// Track 1 frontier ends at 70 + 10; the collapsed track's +Inf frontier
	// must not leak into the intrinsic size.
	if result.StackingSize != 70 {
		t.Errorf("stacking size = %v, want 70", result.StackingSize)
	}
	if math.IsInf(result.StackingSize, 1) {
		t.Fatal("stacking size is +Inf")
	}
}
