package pipeline_test

import (
	"context"
	"fmt"
	"log"

	"github.com/gaprule/gaprule/pkg/pipeline"
	"github.com/gaprule/gaprule/pkg/scene"
)

// ExampleRunner_Execute renders a small masonry scene to SVG with caching
// disabled.
func ExampleRunner_Execute() {
	sc := &scene.Scene{
		Name: "example",
		Container: scene.Container{
			Type:      scene.TypeMasonry,
			Direction: "column",
			Tracks:    []float64{100, 100},
			TrackGap:  10,
			ItemGap:   10,
		},
		Items: []scene.Item{{Size: 80}, {Size: 60}, {Size: 90}},
		Rules: scene.RuleSets{
			Column: &scene.RuleSet{Widths: []float64{2}},
		},
	}

	runner := pipeline.NewRunner(nil, nil, nil)
	defer runner.Close()

	result, err := runner.Execute(context.Background(), pipeline.Options{
		Scene:   sc,
		Formats: []string{pipeline.FormatSVG},
	})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(result.Artifacts))
	// Output: 1
}
