package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gaprule/gaprule/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}

	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(dir, home) {
		t.Errorf("cacheDir() = %q, should be under home %q", dir, home)
	}
	if dir != filepath.Join(home, ".cache", appName) {
		t.Errorf("cacheDir() = %q, want %q", dir, filepath.Join(home, ".cache", appName))
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q, want XDG path", dir)
	}
}

func TestCollectCacheStats(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	defer fc.Close()

	ctx := context.Background()
	if err := fc.Set(ctx, "layout:abc", []byte("fresh"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "artifact:abc:svg", []byte("stale"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)

	stats, err := collectCacheStats(dir)
	if err != nil {
		t.Fatalf("collectCacheStats() error: %v", err)
	}
	if stats.entries != 2 {
		t.Errorf("entries = %d, want 2", stats.entries)
	}
	if stats.expired != 1 {
		t.Errorf("expired = %d, want 1", stats.expired)
	}
	if stats.bytes <= 0 {
		t.Errorf("bytes = %d, want > 0", stats.bytes)
	}
}

func TestCollectCacheStatsMissingDir(t *testing.T) {
	stats, err := collectCacheStats(filepath.Join(t.TempDir(), "never-created"))
	if err != nil {
		t.Fatalf("collectCacheStats() error: %v", err)
	}
	if stats.entries != 0 || stats.bytes != 0 {
		t.Errorf("stats = %+v, want zero", stats)
	}
}

func TestClearCacheDir(t *testing.T) {
	dir := t.TempDir()
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}
	defer fc.Close()

	ctx := context.Background()
	if err := fc.Set(ctx, "layout:abc", []byte("a"), 0); err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "artifact:abc:json", []byte("b"), 0); err != nil {
		t.Fatal(err)
	}

	count, err := clearCacheDir(dir)
	if err != nil {
		t.Fatalf("clearCacheDir() error: %v", err)
	}
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}

	stats, err := collectCacheStats(dir)
	if err != nil {
		t.Fatal(err)
	}
	if stats.entries != 0 {
		t.Errorf("entries after clear = %d, want 0", stats.entries)
	}
}

func TestHumanBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{512, "512 B"},
		{2048, "2.0 KiB"},
		{3 << 20, "3.0 MiB"},
	}
	for _, tt := range tests {
		if got := humanBytes(tt.n); got != tt.want {
			t.Errorf("humanBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
