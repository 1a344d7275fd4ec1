package cli

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the local render cache",
	}

	cmd.AddCommand(c.cacheStatsCommand())
	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())

	return cmd
}

// cacheStats summarizes the on-disk cache contents. Layout and artifact
// entries share one namespace; keys are hashed into file names, so the stats
// count entries rather than distinguishing stages.
type cacheStats struct {
	entries int
	expired int
	bytes   int64
}

// collectCacheStats walks the cache directory and tallies every entry file.
// Entries whose expiry has passed still count toward entries and bytes; Get
// removes them lazily, so they sit on disk until the next lookup.
func collectCacheStats(dir string) (cacheStats, error) {
	var stats cacheStats
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || filepath.Ext(path) != ".json" {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		stats.entries++
		stats.bytes += info.Size()
		if expired, err := entryExpired(path); err == nil && expired {
			stats.expired++
		}
		return nil
	})
	if os.IsNotExist(err) {
		return cacheStats{}, nil
	}
	return stats, err
}

// entryExpired reads just the expiry stamp of one entry file.
func entryExpired(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	var entry struct {
		ExpiresAt time.Time `json:"expires_at"`
	}
	if err := json.Unmarshal(data, &entry); err != nil {
		return false, err
	}
	return !entry.ExpiresAt.IsZero() && time.Now().After(entry.ExpiresAt), nil
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Report cached layout and artifact entry counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			stats, err := collectCacheStats(dir)
			if err != nil {
				return fmt.Errorf("scan cache: %w", err)
			}
			if stats.entries == 0 {
				printInfo("Cache is empty")
				printDetail("Directory: %s", dir)
				return nil
			}

			printInfo("%d cached entries (%s)", stats.entries, humanBytes(stats.bytes))
			if stats.expired > 0 {
				printDetail("%d expired, reclaimed on next lookup", stats.expired)
			}
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached layouts and artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}

			count, err := clearCacheDir(dir)
			if err != nil {
				return err
			}
			if count == 0 {
				printInfo("Cache is empty")
				return nil
			}

			printSuccess("Cleared %d cached entries", count)
			printDetail("Directory: %s", dir)
			return nil
		},
	}
}

// clearCacheDir removes every entry file under dir and prunes the fan-out
// subdirectories, leaving dir itself in place.
func clearCacheDir(dir string) (int, error) {
	count := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir || d.IsDir() {
			return nil
		}
		if os.Remove(path) == nil {
			count++
		}
		return nil
	})
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return count, err
	}

	subdirs, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return count, nil
	}
	if err != nil {
		return count, err
	}
	for _, d := range subdirs {
		if d.IsDir() {
			_ = os.Remove(filepath.Join(dir, d.Name()))
		}
	}
	return count, nil
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the cache directory path",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			fmt.Println(dir)
			return nil
		},
	}
}

// humanBytes renders a byte count with a binary unit suffix.
func humanBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMG"[exp])
}
