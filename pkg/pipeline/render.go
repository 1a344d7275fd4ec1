package pipeline

import (
	"context"
	"time"

	"github.com/gaprule/gaprule/pkg/observability"
	"github.com/gaprule/gaprule/pkg/render"
	"github.com/gaprule/gaprule/pkg/render/sink"
)

// RenderFromLayout renders the layout into every requested format.
func RenderFromLayout(ctx context.Context, l render.Layout, opts Options) (map[string][]byte, error) {
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnRenderStart(ctx, opts.Formats)

	artifacts := make(map[string][]byte, len(opts.Formats))
	var err error
	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			artifacts[format] = sink.RenderSVG(l)

		case FormatJSON:
			var jsonOpts []sink.JSONOption
			if opts.Indent {
				jsonOpts = append(jsonOpts, sink.WithJSONIndent())
			}
			var data []byte
			if data, err = sink.RenderJSON(l, jsonOpts...); err == nil {
				artifacts[format] = data
			}

		default:
			err = ValidateFormat(format)
		}
		if err != nil {
			break
		}
	}

	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return artifacts, nil
}
