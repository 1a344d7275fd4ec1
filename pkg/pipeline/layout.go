package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/gaprule/gaprule/pkg/gap"
	"github.com/gaprule/gaprule/pkg/masonry"
	"github.com/gaprule/gaprule/pkg/observability"
	"github.com/gaprule/gaprule/pkg/paint"
	"github.com/gaprule/gaprule/pkg/render"
	"github.com/gaprule/gaprule/pkg/scene"

	flexlayout "github.com/gaprule/gaprule/pkg/flex"
)

// ComputeLayout places the scene's items, derives the gap geometry, and
// paints the decoration segments onto the canvas layout.
func ComputeLayout(ctx context.Context, sc *scene.Scene) (render.Layout, error) {
	hooks := observability.Pipeline()

	layoutStart := time.Now()
	hooks.OnLayoutStart(ctx, sc.Container.Type, len(sc.Items))
	l, geometry, err := placeScene(sc)
	hooks.OnLayoutComplete(ctx, sc.Container.Type, time.Since(layoutStart), err)
	if err != nil {
		return render.Layout{}, err
	}

	paintStart := time.Now()
	hooks.OnPaintStart(ctx, sc.Container.Type)
	segments, err := paintScene(sc, geometry)
	hooks.OnPaintComplete(ctx, sc.Container.Type, len(segments), time.Since(paintStart), err)
	if err != nil {
		return render.Layout{}, err
	}

	l.AddSegments(segments)
	return l, nil
}

// placeScene runs the container's layout model and returns the canvas
// layout plus the gap geometry. The geometry is nil when the container has
// no decorable gaps.
func placeScene(sc *scene.Scene) (render.Layout, *gap.Geometry, error) {
	c := sc.Container

	switch c.Type {
	case scene.TypeFlex:
		container := sc.FlexContainer()
		result := flexlayout.Layout(sc.FlexItems(), container, c.ItemGap, c.LineGap, c.IsColumn())
		return render.FromFlex(sc.Name, container, result), result.Geometry, nil

	case scene.TypeMasonry:
		cfg := sc.MasonryConfig()
		items := sc.MasonryItems()
		placed, err := masonry.Place(items, cfg)
		if err != nil {
			return render.Layout{}, nil, err
		}
		l := render.FromMasonry(sc.Name, cfg, items, placed, c.IsColumn())
		return l, masonry.BuildGapGeometry(cfg, placed, c.IsColumn()), nil

	default:
		return render.Layout{}, nil, fmt.Errorf("unknown container type %q", c.Type)
	}
}

// paintScene paints both gap directions with the scene's compiled rules.
func paintScene(sc *scene.Scene, geometry *gap.Geometry) ([]paint.Segment, error) {
	if geometry == nil {
		return nil, nil
	}

	rowRules, err := sc.CompiledRules(true)
	if err != nil {
		return nil, err
	}
	columnRules, err := sc.CompiledRules(false)
	if err != nil {
		return nil, err
	}

	segments := paint.Paint(geometry, gap.ForRows, rowRules)
	return append(segments, paint.Paint(geometry, gap.ForColumns, columnRules)...), nil
}
