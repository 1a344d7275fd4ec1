package track

import "testing"

// checkOpeningInvariants verifies that every track's openings are ordered,
// non-overlapping, and non-empty.
func checkOpeningInvariants(t *testing.T, rp *RunningPositions) {
	t.Helper()
	for i := 0; i < rp.TrackCount(); i++ {
		openings := rp.Openings(i)
		for j, o := range openings {
			if o.Start >= o.End {
				t.Errorf("track %d opening %d is empty or inverted: %+v", i, j, o)
			}
			if j > 0 && openings[j-1].End > o.Start {
				t.Errorf("track %d openings %d and %d overlap: %+v, %+v", i, j-1, j, openings[j-1], o)
			}
		}
	}
}

func denseThreeTracks() *RunningPositions {
	return NewRunningPositions([]float64{100, 100, 100}, Config{DensePacking: true})
}

func TestUpdateForSpanDenseRecordsOpenings(t *testing.T) {
	rp := denseThreeTracks()

	// Item on track 1 raises its frontier to 30.
	rp.UpdateForSpan(Span{1, 2}, 30)
	// A spanning item across tracks 0-1 starts at the span max (30) and
	// leaves an opening [0, 30) on track 0.
	rp.UpdateForSpanDense(Span{0, 2}, 50, 30)

	checkOpeningInvariants(t, rp)
	if got := rp.Openings(0); len(got) != 1 || got[0] != (Opening{0, 30}) {
		t.Errorf("track 0 openings = %v, want [{0 30}]", got)
	}
	if got := rp.Openings(1); len(got) != 0 {
		t.Errorf("track 1 openings = %v, want none", got)
	}
}

func TestPlaceInOpeningExactFill(t *testing.T) {
	rp := denseThreeTracks()
	rp.UpdateForSpan(Span{1, 2}, 30)
	rp.UpdateForSpanDense(Span{0, 2}, 50, 30)

	span, offset, ok := rp.PlaceInOpening(Span{0, 1}, true, 30)
	if !ok {
		t.Fatal("expected a placement")
	}
	if span != (Span{0, 1}) || offset != 0 {
		t.Errorf("placed at %v offset %v, want [0, 1) offset 0", span, offset)
	}
	if got := rp.Openings(0); len(got) != 0 {
		t.Errorf("opening not removed after exact fill: %v", got)
	}
	checkOpeningInvariants(t, rp)
}

func TestPlaceInOpeningPartialFill(t *testing.T) {
	rp := denseThreeTracks()
	rp.UpdateForSpan(Span{1, 2}, 30)
	rp.UpdateForSpanDense(Span{0, 2}, 50, 30)

	span, offset, ok := rp.PlaceInOpening(Span{0, 1}, true, 10)
	if !ok {
		t.Fatal("expected a placement")
	}
	if span != (Span{0, 1}) || offset != 0 {
		t.Errorf("placed at %v offset %v, want [0, 1) offset 0", span, offset)
	}
	if got := rp.Openings(0); len(got) != 1 || got[0] != (Opening{10, 30}) {
		t.Errorf("track 0 openings = %v, want [{10 30}]", got)
	}
	checkOpeningInvariants(t, rp)
}

func TestPlaceInOpeningSplit(t *testing.T) {
	rp := denseThreeTracks()
	// Track 0 opens [0, 40), track 1 opens [20, 40): the only aligned window
	// for a two-track item is [20, 40), so placing a 20-unit item there
	// splits track 0's opening.
	rp.UpdateForSpan(Span{0, 1}, 0)
	rp.UpdateForSpan(Span{1, 2}, 20)
	rp.UpdateForSpanDense(Span{0, 2}, 60, 40)

	span, offset, ok := rp.PlaceInOpening(Span{0, 2}, true, 20)
	if !ok {
		t.Fatal("expected a placement")
	}
	if span != (Span{0, 2}) || offset != 20 {
		t.Errorf("placed at %v offset %v, want [0, 2) offset 20", span, offset)
	}
	if got := rp.Openings(0); len(got) != 1 || got[0] != (Opening{0, 20}) {
		t.Errorf("track 0 openings = %v, want [{0 20}]", got)
	}
	if got := rp.Openings(1); len(got) != 0 {
		t.Errorf("track 1 openings = %v, want none", got)
	}
	checkOpeningInvariants(t, rp)
}

func TestPlaceInOpeningMiss(t *testing.T) {
	rp := denseThreeTracks()
	rp.UpdateForSpan(Span{1, 2}, 10)
	rp.UpdateForSpanDense(Span{0, 2}, 40, 10)

	// The only opening is 10 units; a 20-unit item cannot backfill.
	if _, _, ok := rp.PlaceInOpening(Span{0, 1}, true, 20); ok {
		t.Error("expected no placement for oversized item")
	}
	checkOpeningInvariants(t, rp)
}

func TestPlaceInOpeningAuthorPositioned(t *testing.T) {
	rp := denseThreeTracks()
	rp.UpdateForSpan(Span{0, 1}, 25)
	rp.UpdateForSpanDense(Span{1, 3}, 60, 25)
	// Openings now exist on tracks 1 and 2, none on track 0.

	// An author-positioned item pinned to track 0 must not drift into them.
	if _, _, ok := rp.PlaceInOpening(Span{0, 1}, false, 10); ok {
		t.Error("author-positioned item drifted to a different span")
	}

	span, offset, ok := rp.PlaceInOpening(Span{1, 2}, false, 10)
	if !ok {
		t.Fatal("expected a placement on track 1")
	}
	if span != (Span{1, 2}) || offset != 0 {
		t.Errorf("placed at %v offset %v, want [1, 2) offset 0", span, offset)
	}
	checkOpeningInvariants(t, rp)
}

func TestPlaceInOpeningUsedSizeMismatch(t *testing.T) {
	rp := NewRunningPositions([]float64{100, 50, 100}, Config{DensePacking: true})
	rp.UpdateForSpan(Span{2, 3}, 30)
	rp.UpdateForSpanDense(Span{1, 3}, 60, 30)
	// Track 1 (size 50) has an opening, but an item measured against a
	// 100-wide span cannot take it.

	if _, _, ok := rp.PlaceInOpening(Span{0, 1}, true, 10); ok {
		t.Error("item backfilled into a span with a different used track size")
	}
}

func TestPlaceInOpeningPrefersLowestStart(t *testing.T) {
	rp := denseThreeTracks()
	rp.UpdateForSpan(Span{0, 1}, 40)
	rp.UpdateForSpanDense(Span{0, 2}, 70, 40) // track 1 opens [0, 40)
	rp.UpdateForSpan(Span{2, 3}, 50)
	rp.UpdateForSpanDense(Span{2, 3}, 80, 60) // track 2 opens [50, 60)

	span, offset, ok := rp.PlaceInOpening(Span{0, 1}, true, 10)
	if !ok {
		t.Fatal("expected a placement")
	}
	if span != (Span{1, 2}) || offset != 0 {
		t.Errorf("placed at %v offset %v, want [1, 2) offset 0", span, offset)
	}
}
