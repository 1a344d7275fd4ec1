// Package cli implements the gaprule command-line interface.
//
// This package provides commands for rendering gap decorations from scene
// files, serving the render API over HTTP, and inspecting masonry placement
// interactively. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - render: Compute layout and decoration rules, write SVG/JSON artifacts
//   - serve: Run the HTTP render API
//   - inspect: Step through masonry placement in an interactive TUI
//   - cache: Manage the local render cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gaprule/gaprule/pkg/buildinfo"
	"github.com/gaprule/gaprule/pkg/cache"
	"github.com/gaprule/gaprule/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "gaprule"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Gaprule paints decorations into container gaps",
		Long:         `Gaprule computes gap decoration geometry for flex and masonry containers and paints row and column rules into the gutters, rendering the result as SVG or JSON.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(log.DebugLevel)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// cacheFlags holds the cache backend selection shared by render and serve.
type cacheFlags struct {
	noCache  bool
	cacheDir string
	redisURL string
	mongoURI string
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable caching")
	cmd.Flags().StringVar(&f.cacheDir, "cache-dir", "", "file cache directory (default ~/.cache/gaprule)")
	cmd.Flags().StringVar(&f.redisURL, "redis", "", "redis URL for the cache backend")
	cmd.Flags().StringVar(&f.mongoURI, "mongo", "", "mongodb URI for the cache backend")
}

// open picks the cache backend: redis and mongo win over the file cache,
// and any failure to reach a backend degrades to no caching.
func (f *cacheFlags) open(ctx context.Context) (cache.Cache, error) {
	switch {
	case f.noCache:
		return cache.NewNullCache(), nil
	case f.redisURL != "":
		return cache.NewRedisCache(f.redisURL)
	case f.mongoURI != "":
		return cache.NewMongoCache(ctx, f.mongoURI, appName, "artifacts")
	}

	dir := f.cacheDir
	if dir == "" {
		var err error
		if dir, err = cacheDir(); err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, flags *cacheFlags) (*pipeline.Runner, error) {
	store, err := flags.open(ctx)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(store, nil, c.Logger), nil
}

// cacheDir returns the cache directory using XDG standard (~/.cache/gaprule/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}
