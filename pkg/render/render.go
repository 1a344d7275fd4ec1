// Package render defines the drawable model produced by the pipeline: item
// boxes and decoration segments on a physical canvas, ready for the sinks.
// Logical inline/block coordinates map to x/y (horizontal-tb, LTR).
package render

import (
	"github.com/gaprule/gaprule/pkg/flex"
	"github.com/gaprule/gaprule/pkg/masonry"
	"github.com/gaprule/gaprule/pkg/paint"
	"github.com/gaprule/gaprule/pkg/style"
)

// Box is one item rectangle on the canvas.
type Box struct {
	Index  int     `json:"index"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Rule is one decoration segment on the canvas.
type Rule struct {
	X         float64     `json:"x"`
	Y         float64     `json:"y"`
	Width     float64     `json:"width"`
	Height    float64     `json:"height"`
	Direction string      `json:"direction"`
	GapIndex  int         `json:"gap_index"`
	Color     style.Color `json:"color"`
	Style     string      `json:"style"`
	Thickness float64     `json:"thickness"`
}

// Layout is the complete render input for one scene.
type Layout struct {
	Name          string  `json:"name"`
	ContainerType string  `json:"container_type"`
	Width         float64 `json:"width"`
	Height        float64 `json:"height"`
	Items         []Box   `json:"items"`
	Rules         []Rule  `json:"rules,omitempty"`
}

// AddSegments appends paint segments as canvas rules.
func (l *Layout) AddSegments(segments []paint.Segment) {
	for _, s := range segments {
		l.Rules = append(l.Rules, Rule{
			X:         s.Rect.InlineStart,
			Y:         s.Rect.BlockStart,
			Width:     s.Rect.InlineSize,
			Height:    s.Rect.BlockSize,
			Direction: s.Direction.String(),
			GapIndex:  s.GapIndex,
			Color:     s.Color,
			Style:     s.Style.String(),
			Thickness: s.Thickness,
		})
	}
}

// FromFlex builds the canvas layout of a flex result.
func FromFlex(name string, container flex.Container, result flex.Result) Layout {
	l := Layout{
		Name:          name,
		ContainerType: "flex",
		Width:         container.InlineSize,
		Height:        container.BlockSize,
		Items:         make([]Box, 0, len(result.Items)),
	}
	for i, it := range result.Items {
		l.Items = append(l.Items, Box{
			Index:  i,
			X:      it.Offset.Inline,
			Y:      it.Offset.Block,
			Width:  it.InlineSize,
			Height: it.BlockSize,
		})
	}
	return l
}

// FromMasonry builds the canvas layout of a masonry result. Column grids put
// the tracks on the x axis and stack downward; row grids are transposed.
func FromMasonry(name string, cfg masonry.Config, items []masonry.Item, result masonry.Result, isColumn bool) Layout {
	gridEnd := 0.0
	for i, size := range cfg.TrackSizes {
		if i > 0 {
			gridEnd += cfg.GridGutter
		}
		gridEnd += size
	}

	l := Layout{
		Name:          name,
		ContainerType: "masonry",
		Width:         gridEnd,
		Height:        result.StackingSize,
		Items:         make([]Box, 0, len(result.Items)),
	}
	if !isColumn {
		l.Width, l.Height = l.Height, l.Width
	}

	for i, placed := range result.Items {
		gridSize := 0.0
		for t := placed.Span.Start; t < placed.Span.End; t++ {
			if t > placed.Span.Start {
				gridSize += cfg.GridGutter
			}
			gridSize += cfg.TrackSizes[t]
		}

		box := Box{
			Index:  i,
			X:      placed.GridOffset,
			Y:      placed.StackingOffset,
			Width:  gridSize,
			Height: items[i].StackingSize,
		}
		if !isColumn {
			box.X, box.Y = box.Y, box.X
			box.Width, box.Height = box.Height, box.Width
		}
		l.Items = append(l.Items, box)
	}
	return l
}
