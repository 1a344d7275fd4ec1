package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gaprule/gaprule/pkg/pipeline"
	"github.com/gaprule/gaprule/pkg/scene"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string // output file path (single format) or base path (multiple)
	formats []string
	indent  bool // pretty-print JSON artifacts
	refresh bool // bypass cache reads
	cache   cacheFlags
}

// renderCommand creates the render command for generating artifacts from a
// scene file.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [scene file]",
		Short: "Render a scene's gap decorations to SVG or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json (comma-separated)")
	cmd.Flags().BoolVar(&opts.indent, "indent", false, "pretty-print JSON output")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	opts.cache.register(cmd)

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, input string, opts *renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	sc, err := scene.Load(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene %q: %s container, %d items", sc.Name, sc.Container.Type, len(sc.Items))

	runner, err := c.newRunner(ctx, &opts.cache)
	if err != nil {
		return err
	}
	defer runner.Close()

	p := newProgress(logger)
	spinner := newSpinner(ctx, fmt.Sprintf("Rendering %s", sc.Name))
	spinner.Start()
	result, err := runner.Execute(ctx, pipeline.Options{
		Scene:   sc,
		Formats: opts.formats,
		Indent:  opts.indent,
		Refresh: opts.refresh,
	})
	spinner.Stop()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("Painted %d segments", result.Stats.SegmentCount))

	printSuccess("Rendered %s", sc.Name)
	printStats(result.Stats.ItemCount, result.Stats.SegmentCount, result.CacheInfo.LayoutHit)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := opts.output
		if path == "" || len(opts.formats) > 1 {
			path = base + "." + format
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output carries a
// format extension, that extension is stripped so per-format suffixes apply.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
