package sink

import (
	"encoding/json"

	"github.com/gaprule/gaprule/pkg/buildinfo"
	"github.com/gaprule/gaprule/pkg/render"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	indent bool
}

// WithJSONIndent pretty-prints the output.
func WithJSONIndent() JSONOption { return func(r *jsonRenderer) { r.indent = true } }

type jsonOutput struct {
	Version string `json:"version"`
	render.Layout
}

// RenderJSON renders the layout as a JSON document carrying the generator
// version for round-trip tooling.
func RenderJSON(l render.Layout, opts ...JSONOption) ([]byte, error) {
	var r jsonRenderer
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{Version: buildinfo.Version, Layout: l}
	if r.indent {
		return json.MarshalIndent(out, "", "  ")
	}
	return json.Marshal(out)
}
