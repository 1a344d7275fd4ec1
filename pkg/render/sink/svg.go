// Package sink turns a render layout into output artifacts: SVG for viewing
// and JSON for tooling.
package sink

import (
	"bytes"
	"fmt"

	"github.com/gaprule/gaprule/pkg/render"
)

// SVGOption configures SVG rendering via [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background   string
	itemFill     string
	itemStroke   string
	currentColor string
	padding      float64
}

// WithBackground sets the canvas background color.
func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// WithItemFill sets the fill color of item boxes.
func WithItemFill(color string) SVGOption {
	return func(r *svgRenderer) { r.itemFill = color }
}

// WithCurrentColor sets the color substituted for currentColor rules.
func WithCurrentColor(color string) SVGOption {
	return func(r *svgRenderer) { r.currentColor = color }
}

// WithPadding adds padding around the canvas so outset decorations stay
// inside the viewBox.
func WithPadding(p float64) SVGOption {
	return func(r *svgRenderer) { r.padding = p }
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		itemFill:     "#e8e8e8",
		itemStroke:   "#b0b0b0",
		currentColor: "#1a1a1a",
		padding:      8,
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG renders the layout as an SVG document: item boxes first, then
// the decoration rules on top.
func RenderSVG(l render.Layout, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	viewWidth := l.Width + 2*r.padding
	viewHeight := l.Height + 2*r.padding
	origin := 0.0
	if r.padding > 0 {
		origin = -r.padding
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.1f %.1f %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		origin, origin, viewWidth, viewHeight, viewWidth, viewHeight)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			origin, origin, viewWidth, viewHeight, r.background)
	}

	for _, box := range l.Items {
		fmt.Fprintf(&buf, `  <rect class="item" id="item-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>`+"\n",
			box.Index, box.X, box.Y, box.Width, box.Height, r.itemFill, r.itemStroke)
	}

	for _, rule := range l.Rules {
		r.renderRule(&buf, rule)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderRule(buf *bytes.Buffer, rule render.Rule) {
	color := string(rule.Color)
	if color == "currentColor" {
		color = r.currentColor
	}

	switch rule.Style {
	case "dotted", "dashed":
		// Stroked line along the rule's long axis, dash pattern from the
		// thickness.
		x1, y1 := rule.X, rule.Y+rule.Height/2
		x2, y2 := rule.X+rule.Width, y1
		if rule.Direction == "columns" {
			x1, y1 = rule.X+rule.Width/2, rule.Y
			x2, y2 = x1, rule.Y+rule.Height
		}
		dash := fmt.Sprintf("%.1f %.1f", rule.Thickness, rule.Thickness)
		if rule.Style == "dashed" {
			dash = fmt.Sprintf("%.1f %.1f", 3*rule.Thickness, 2*rule.Thickness)
		}
		fmt.Fprintf(buf, `  <line class="rule" x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="%s"/>`+"\n",
			x1, y1, x2, y2, color, rule.Thickness, dash)

	case "double":
		// Two strips of a third of the thickness at the rule edges.
		strip := rule.Thickness / 3
		if rule.Direction == "columns" {
			fmt.Fprintf(buf, `  <rect class="rule" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				rule.X, rule.Y, strip, rule.Height, color)
			fmt.Fprintf(buf, `  <rect class="rule" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				rule.X+rule.Width-strip, rule.Y, strip, rule.Height, color)
		} else {
			fmt.Fprintf(buf, `  <rect class="rule" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				rule.X, rule.Y, rule.Width, strip, color)
			fmt.Fprintf(buf, `  <rect class="rule" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
				rule.X, rule.Y+rule.Height-strip, rule.Width, strip, color)
		}

	default:
		fmt.Fprintf(buf, `  <rect class="rule" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			rule.X, rule.Y, rule.Width, rule.Height, color)
	}
}
