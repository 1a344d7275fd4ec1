// Package track models per-track occupancy for stacked (masonry style)
// layouts: a running-position frontier per track, and, under dense packing,
// the openings left behind when items of different span sizes interleave.
package track

import "fmt"

// Span is a half-open range [Start, End) of track indices.
type Span struct {
	Start int
	End   int
}

// NewSpan builds a span covering [start, end). Panics if the range is empty
// or inverted; span construction from bad indices is a programmer error.
func NewSpan(start, end int) Span {
	if start < 0 || end <= start {
		panic(fmt.Sprintf("track: invalid span [%d, %d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Size returns the number of tracks the span covers.
func (s Span) Size() int { return s.End - s.Start }

// Contains reports whether track index i falls inside the span.
func (s Span) Contains(i int) bool { return i >= s.Start && i < s.End }

// next returns the span shifted one track towards the end.
func (s Span) next() Span { return Span{Start: s.Start + 1, End: s.End + 1} }

func (s Span) String() string { return fmt.Sprintf("[%d, %d)", s.Start, s.End) }
