package scene

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gaprule/gaprule/pkg/errors"
	"github.com/gaprule/gaprule/pkg/style"
)

const masonryTOML = `
name = "gallery"

[container]
type = "masonry"
direction = "column"
tracks = [100.0, 100.0, 100.0]
track_gap = 10.0
item_gap = 10.0
dense = true

[[items]]
size = 50.0

[[items]]
span = 2
size = 30.0

[[items]]
start = 1
size = 40.0

[rules.column]
colors = ["#333", "tomato"]
widths = [2.0]
break = "spanning-item"
`

func TestDecodeTOML(t *testing.T) {
	s, err := Decode(strings.NewReader(masonryTOML), "toml")
	if err != nil {
		t.Fatal(err)
	}

	if s.Name != "gallery" {
		t.Errorf("Name = %q, want %q", s.Name, "gallery")
	}
	if s.Container.Type != TypeMasonry || !s.Container.IsColumn() {
		t.Errorf("container = %+v, want column masonry", s.Container)
	}

	items := s.MasonryItems()
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	if !items[0].AutoPlaced() || items[0].SpanSize != 1 {
		t.Errorf("item 0 = %+v, want auto single-track", items[0])
	}
	if items[1].SpanSize != 2 {
		t.Errorf("item 1 span = %d, want 2", items[1].SpanSize)
	}
	if items[2].AutoPlaced() || items[2].Start != 1 {
		t.Errorf("item 2 = %+v, want pinned to track 1", items[2])
	}

	cfg := s.MasonryConfig()
	if !cfg.DensePacking || cfg.GridGutter != 10 || cfg.StackingGutter != 10 {
		t.Errorf("config = %+v", cfg)
	}

	rules, err := s.CompiledRules(false)
	if err != nil {
		t.Fatal(err)
	}
	if rules.Break != style.BreakSpanningItem {
		t.Errorf("break = %v, want spanning-item", rules.Break)
	}
	if rules.Colors.At(1) != "tomato" || rules.Colors.At(2) != "#333" {
		t.Errorf("colors do not cycle: %v, %v", rules.Colors.At(1), rules.Colors.At(2))
	}
}

func TestDecodeJSON(t *testing.T) {
	const data = `{
		"container": {
			"type": "flex",
			"inline_size": 320,
			"block_size": 240,
			"item_gap": 10,
			"line_gap": 20
		},
		"items": [
			{"main_size": 100, "cross_size": 50},
			{"main_size": 100, "cross_size": 50}
		],
		"rules": {"row": {"widths": [1]}}
	}`

	s, err := Decode(strings.NewReader(data), "json")
	if err != nil {
		t.Fatal(err)
	}
	if s.Container.Type != TypeFlex {
		t.Errorf("type = %q, want flex", s.Container.Type)
	}
	if got := s.FlexItems(); len(got) != 2 || got[0].MainSize != 100 {
		t.Errorf("flex items = %+v", got)
	}
	if c := s.FlexContainer(); c.InlineSize != 320 || c.BlockSize != 240 {
		t.Errorf("flex container = %+v", c)
	}
}

func TestDecodeUnsupportedFormat(t *testing.T) {
	_, err := Decode(strings.NewReader(""), "yaml")
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error = %v, want INVALID_FORMAT", err)
	}
}

func TestValidateErrors(t *testing.T) {
	one := 1
	tests := []struct {
		name  string
		scene Scene
	}{
		{"missing type", Scene{}},
		{"unknown type", Scene{Container: Container{Type: "table"}}},
		{"flex without size", Scene{Container: Container{Type: TypeFlex}}},
		{"flex item without size", Scene{
			Container: Container{Type: TypeFlex, InlineSize: 100, BlockSize: 100},
			Items:     []Item{{MainSize: 10}},
		}},
		{"masonry without tracks", Scene{Container: Container{Type: TypeMasonry}}},
		{"masonry span too wide", Scene{
			Container: Container{Type: TypeMasonry, Tracks: []float64{100}},
			Items:     []Item{{Span: 2, Size: 10}},
		}},
		{"masonry pinned overflow", Scene{
			Container: Container{Type: TypeMasonry, Tracks: []float64{100, 100}},
			Items:     []Item{{Span: 2, Start: &one, Size: 10}},
		}},
		{"masonry collapsed out of range", Scene{
			Container: Container{Type: TypeMasonry, Tracks: []float64{100}, CollapsedTracks: []int{3}},
		}},
		{"bad direction", Scene{Container: Container{Type: TypeMasonry, Tracks: []float64{100}, Direction: "diagonal"}}},
		{"bad rule color", Scene{
			Container: Container{Type: TypeMasonry, Tracks: []float64{100}},
			Rules:     RuleSets{Row: &RuleSet{Colors: []string{"not a color"}}},
		}},
		{"bad rule break", Scene{
			Container: Container{Type: TypeMasonry, Tracks: []float64{100}},
			Rules:     RuleSets{Row: &RuleSet{Break: "sometimes"}},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scene.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			code := errors.GetCode(err)
			if code != errors.ErrCodeInvalidScene && code != errors.ErrCodeInvalidStyle {
				t.Errorf("error code = %v", code)
			}
		})
	}
}

func TestRuleSetDefaults(t *testing.T) {
	rules, err := (&RuleSet{}).Compile()
	if err != nil {
		t.Fatal(err)
	}
	if rules.Colors.At(0) != "currentColor" {
		t.Errorf("default color = %v", rules.Colors.At(0))
	}
	if rules.Widths.At(0) != 3 {
		t.Errorf("default width = %v", rules.Widths.At(0))
	}
	if rules.Styles.At(0) != style.BorderSolid {
		t.Errorf("default style = %v", rules.Styles.At(0))
	}
	if rules.Outset != style.Pct(50) {
		t.Errorf("default outset = %v", rules.Outset)
	}
	if rules.Break != style.BreakIntersection {
		t.Errorf("default break = %v", rules.Break)
	}
}

func TestLoadNamesSceneAfterFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wall.toml")
	content := strings.Replace(masonryTOML, `name = "gallery"`, "", 1)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Name != "wall" {
		t.Errorf("Name = %q, want %q", s.Name, "wall")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error = %v, want FILE_NOT_FOUND", err)
	}
}
