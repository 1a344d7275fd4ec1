// Package style holds the declarative styling of gap decorations: repeating
// per-gap value lists, rule break behavior, and outset lengths.
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// RuleBreak controls where a gap decoration breaks into segments.
type RuleBreak int

const (
	// BreakNone paints one segment across the whole gap.
	BreakNone RuleBreak = iota
	// BreakSpanningItem breaks only where a spanning item interrupts the gap.
	BreakSpanningItem
	// BreakIntersection breaks at every gap intersection.
	BreakIntersection
)

func (b RuleBreak) String() string {
	switch b {
	case BreakSpanningItem:
		return "spanning-item"
	case BreakIntersection:
		return "intersection"
	default:
		return "none"
	}
}

// ParseRuleBreak parses the CSS rule-break keywords.
func ParseRuleBreak(s string) (RuleBreak, error) {
	switch s {
	case "", "intersection":
		return BreakIntersection, nil
	case "spanning-item":
		return BreakSpanningItem, nil
	case "none":
		return BreakNone, nil
	}
	return 0, fmt.Errorf("unknown rule-break %q", s)
}

// BorderStyle is the line style of a rule segment.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderSolid
	BorderDotted
	BorderDashed
	BorderDouble
)

func (s BorderStyle) String() string {
	switch s {
	case BorderSolid:
		return "solid"
	case BorderDotted:
		return "dotted"
	case BorderDashed:
		return "dashed"
	case BorderDouble:
		return "double"
	default:
		return "none"
	}
}

// ParseBorderStyle parses the supported rule-style keywords.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch s {
	case "", "solid":
		return BorderSolid, nil
	case "dotted":
		return BorderDotted, nil
	case "dashed":
		return BorderDashed, nil
	case "double":
		return BorderDouble, nil
	case "none":
		return BorderNone, nil
	}
	return 0, fmt.Errorf("unknown rule-style %q", s)
}

// Color is a CSS color string, passed through to the render sinks untouched.
type Color string

// Length is a fixed or percentage length. Percentages resolve against a
// reference size at paint time (the crossing gap width, for rule outsets).
type Length struct {
	Value   float64
	Percent bool
}

// Px builds a fixed length.
func Px(v float64) Length { return Length{Value: v} }

// Pct builds a percentage length.
func Pct(v float64) Length { return Length{Value: v, Percent: true} }

// Resolve returns the length against the given reference size.
func (l Length) Resolve(reference float64) float64 {
	if l.Percent {
		return reference * l.Value / 100
	}
	return l.Value
}

// ParseLength parses a length string: "4", "4px", or "50%".
func ParseLength(s string) (Length, error) {
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	if rest, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Length{}, fmt.Errorf("invalid length %q", s)
		}
		return Pct(v), nil
	}
	rest := strings.TrimSuffix(s, "px")
	v, err := strconv.ParseFloat(rest, 64)
	if err != nil {
		return Length{}, fmt.Errorf("invalid length %q", s)
	}
	return Px(v), nil
}

func (l Length) String() string {
	if l.Percent {
		return fmt.Sprintf("%g%%", l.Value)
	}
	return fmt.Sprintf("%g", l.Value)
}

// Rules bundles the decoration properties of one gap direction, the
// analogue of the column-rule-* / row-rule-* property group.
type Rules struct {
	Colors DataList[Color]
	Widths DataList[float64]
	Styles DataList[BorderStyle]
	Outset Length
	Break  RuleBreak
}

// DefaultRules paints nothing: zero-width rules.
func DefaultRules() Rules {
	return Rules{
		Colors: NewDataList(Color("currentColor")),
		Widths: NewDataList(0.0),
		Styles: NewDataList(BorderNone),
		Outset: Pct(50),
		Break:  BreakIntersection,
	}
}
