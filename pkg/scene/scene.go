// Package scene defines the declarative input format of gaprule: a container
// description (flex or masonry), its items, and the gap decoration rules per
// direction. Scenes load from TOML or JSON files.
package scene

import (
	"github.com/gaprule/gaprule/pkg/errors"
	"github.com/gaprule/gaprule/pkg/flex"
	"github.com/gaprule/gaprule/pkg/masonry"
	"github.com/gaprule/gaprule/pkg/style"
)

// Container types accepted in scene files.
const (
	TypeFlex    = "flex"
	TypeMasonry = "masonry"
)

// Scene is one complete input: a container, its items, and the decoration
// rules for each gap direction.
type Scene struct {
	Name      string    `toml:"name" json:"name"`
	Container Container `toml:"container" json:"container"`
	Items     []Item    `toml:"items" json:"items"`
	Rules     RuleSets  `toml:"rules" json:"rules"`
}

// Container describes the layout box. Flex containers use ItemGap/LineGap
// and the size fields; masonry containers add the track list.
type Container struct {
	Type      string `toml:"type" json:"type"`
	Direction string `toml:"direction" json:"direction"` // "row" (default) or "column"

	InlineSize float64 `toml:"inline_size" json:"inline_size"`
	BlockSize  float64 `toml:"block_size" json:"block_size"`
	Padding    Padding `toml:"padding" json:"padding"`

	// ItemGap separates adjacent items; LineGap separates lines. For
	// masonry, ItemGap is the stacking-axis gutter and the track gutter
	// comes from TrackGap.
	ItemGap float64 `toml:"item_gap" json:"item_gap"`
	LineGap float64 `toml:"line_gap" json:"line_gap"`

	// Masonry-only fields.
	Tracks          []float64 `toml:"tracks" json:"tracks,omitempty"`
	TrackGap        float64   `toml:"track_gap" json:"track_gap,omitempty"`
	TieThreshold    float64   `toml:"tie_threshold" json:"tie_threshold,omitempty"`
	Dense           bool      `toml:"dense" json:"dense,omitempty"`
	CollapsedTracks []int     `toml:"collapsed_tracks" json:"collapsed_tracks,omitempty"`
}

// Padding is the content inset on each logical edge.
type Padding struct {
	InlineStart float64 `toml:"inline_start" json:"inline_start"`
	InlineEnd   float64 `toml:"inline_end" json:"inline_end"`
	BlockStart  float64 `toml:"block_start" json:"block_start"`
	BlockEnd    float64 `toml:"block_end" json:"block_end"`
}

// Item is one child of the container. Flex items use MainSize/CrossSize;
// masonry items use Span, Start, and Size.
type Item struct {
	MainSize  float64 `toml:"main_size" json:"main_size,omitempty"`
	CrossSize float64 `toml:"cross_size" json:"cross_size,omitempty"`

	Span  int     `toml:"span" json:"span,omitempty"`   // track span, default 1
	Start *int    `toml:"start" json:"start,omitempty"` // pinned start track, nil = auto
	Size  float64 `toml:"size" json:"size,omitempty"`   // stacking-axis size
}

// RuleSets holds the decoration rules per gap direction.
type RuleSets struct {
	Row    *RuleSet `toml:"row" json:"row,omitempty"`
	Column *RuleSet `toml:"column" json:"column,omitempty"`
}

// RuleSet mirrors the row-rule-* / column-rule-* property group. Empty
// fields take CSS-like defaults: currentColor, width 3, solid, 50% outset,
// intersection breaks.
type RuleSet struct {
	Colors []string  `toml:"colors" json:"colors,omitempty"`
	Widths []float64 `toml:"widths" json:"widths,omitempty"`
	Styles []string  `toml:"styles" json:"styles,omitempty"`
	Outset string    `toml:"outset" json:"outset,omitempty"`
	Break  string    `toml:"break" json:"break,omitempty"`
}

// IsColumn reports whether the container's main axis is the block axis.
func (c Container) IsColumn() bool { return c.Direction == "column" }

// Validate checks the scene for structural problems. It returns a structured
// error with an INVALID_* code on the first problem found.
func (s *Scene) Validate() error {
	if s.Name != "" {
		if err := errors.ValidateSceneName(s.Name); err != nil {
			return err
		}
	}

	switch s.Container.Type {
	case TypeFlex:
		if err := s.validateFlex(); err != nil {
			return err
		}
	case TypeMasonry:
		if err := s.validateMasonry(); err != nil {
			return err
		}
	case "":
		return errors.New(errors.ErrCodeInvalidScene, "container type is required")
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown container type %q", s.Container.Type)
	}

	switch s.Container.Direction {
	case "", "row", "column":
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown direction %q", s.Container.Direction)
	}

	if s.Rules.Row != nil {
		if _, err := s.Rules.Row.Compile(); err != nil {
			return err
		}
	}
	if s.Rules.Column != nil {
		if _, err := s.Rules.Column.Compile(); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scene) validateFlex() error {
	c := s.Container
	if c.InlineSize <= 0 || c.BlockSize <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "flex container needs positive inline_size and block_size")
	}
	for i, it := range s.Items {
		if it.MainSize <= 0 || it.CrossSize <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "flex item %d needs positive main_size and cross_size", i)
		}
	}
	return nil
}

func (s *Scene) validateMasonry() error {
	c := s.Container
	if len(c.Tracks) == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "masonry container needs at least one track")
	}
	for i, size := range c.Tracks {
		if size <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "masonry track %d needs a positive size", i)
		}
	}
	for _, t := range c.CollapsedTracks {
		if t < 0 || t >= len(c.Tracks) {
			return errors.New(errors.ErrCodeInvalidScene, "collapsed track %d out of range", t)
		}
	}
	for i, it := range s.Items {
		span := it.Span
		if span == 0 {
			span = 1
		}
		if span < 1 || span > len(c.Tracks) {
			return errors.New(errors.ErrCodeInvalidScene, "masonry item %d spans %d of %d tracks", i, span, len(c.Tracks))
		}
		if it.Start != nil && (*it.Start < 0 || *it.Start+span > len(c.Tracks)) {
			return errors.New(errors.ErrCodeInvalidScene, "masonry item %d start %d out of range", i, *it.Start)
		}
		if it.Size <= 0 {
			return errors.New(errors.ErrCodeInvalidScene, "masonry item %d needs a positive size", i)
		}
	}
	return nil
}

// Compile turns the rule set into paint-ready rules, applying defaults for
// missing fields.
func (r *RuleSet) Compile() (style.Rules, error) {
	rules := style.Rules{}

	colors := r.Colors
	if len(colors) == 0 {
		colors = []string{"currentColor"}
	}
	parsedColors := make([]style.Color, len(colors))
	for i, c := range colors {
		if err := errors.ValidateColor(c); err != nil {
			return rules, err
		}
		parsedColors[i] = style.Color(c)
	}
	rules.Colors = style.NewDataList(parsedColors...)

	widths := r.Widths
	if len(widths) == 0 {
		widths = []float64{3}
	}
	for _, w := range widths {
		if w < 0 {
			return rules, errors.New(errors.ErrCodeInvalidStyle, "rule width cannot be negative: %g", w)
		}
	}
	rules.Widths = style.NewDataList(widths...)

	styleNames := r.Styles
	if len(styleNames) == 0 {
		styleNames = []string{"solid"}
	}
	parsedStyles := make([]style.BorderStyle, len(styleNames))
	for i, name := range styleNames {
		bs, err := style.ParseBorderStyle(name)
		if err != nil {
			return rules, errors.Wrap(errors.ErrCodeInvalidStyle, err, "rule style %d", i)
		}
		parsedStyles[i] = bs
	}
	rules.Styles = style.NewDataList(parsedStyles...)

	rules.Outset = style.Pct(50)
	if r.Outset != "" {
		outset, err := style.ParseLength(r.Outset)
		if err != nil {
			return rules, errors.Wrap(errors.ErrCodeInvalidStyle, err, "rule outset")
		}
		rules.Outset = outset
	}

	ruleBreak, err := style.ParseRuleBreak(r.Break)
	if err != nil {
		return rules, errors.Wrap(errors.ErrCodeInvalidStyle, err, "rule break")
	}
	rules.Break = ruleBreak

	return rules, nil
}

// CompiledRules returns the paint rules for one direction. A missing rule
// set paints nothing.
func (s *Scene) CompiledRules(row bool) (style.Rules, error) {
	var set *RuleSet
	if row {
		set = s.Rules.Row
	} else {
		set = s.Rules.Column
	}
	if set == nil {
		return style.DefaultRules(), nil
	}
	return set.Compile()
}

// FlexContainer converts the scene container for flex layout.
func (s *Scene) FlexContainer() flex.Container {
	c := s.Container
	return flex.Container{
		InlineSize: c.InlineSize,
		BlockSize:  c.BlockSize,
		Padding: flex.Edges{
			InlineStart: c.Padding.InlineStart,
			InlineEnd:   c.Padding.InlineEnd,
			BlockStart:  c.Padding.BlockStart,
			BlockEnd:    c.Padding.BlockEnd,
		},
	}
}

// FlexItems converts the scene items for flex layout.
func (s *Scene) FlexItems() []flex.Item {
	items := make([]flex.Item, len(s.Items))
	for i, it := range s.Items {
		items[i] = flex.Item{MainSize: it.MainSize, CrossSize: it.CrossSize}
	}
	return items
}

// MasonryConfig converts the scene container for masonry placement.
func (s *Scene) MasonryConfig() masonry.Config {
	c := s.Container
	return masonry.Config{
		TrackSizes:      c.Tracks,
		GridGutter:      c.TrackGap,
		StackingGutter:  c.ItemGap,
		TieThreshold:    c.TieThreshold,
		DensePacking:    c.Dense,
		CollapsedTracks: c.CollapsedTracks,
	}
}

// MasonryItems converts the scene items for masonry placement.
func (s *Scene) MasonryItems() []masonry.Item {
	items := make([]masonry.Item, len(s.Items))
	for i, it := range s.Items {
		span := it.Span
		if span == 0 {
			span = 1
		}
		start := -1
		if it.Start != nil {
			start = *it.Start
		}
		items[i] = masonry.Item{SpanSize: span, Start: start, StackingSize: it.Size}
	}
	return items
}
