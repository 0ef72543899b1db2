package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/sketchfit/pkg/cache"
	"github.com/matzehuels/sketchfit/pkg/errors"
)

func TestCacheClearCommand(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, k := range []string{"a", "b"} {
		if err := fc.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(ctx); err != nil {
		t.Fatalf("cache clear: %v", err)
	}

	if _, hit, _ := fc.Get(ctx, "a"); hit {
		t.Error("entries should be gone after cache clear")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("cache dir should survive: %v", err)
	}
}

func TestCacheClearCommandEmpty(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", filepath.Join(t.TempDir(), "never-created"))

	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Errorf("clearing a missing cache should succeed: %v", err)
	}
}

func TestNewCache(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	c, err := newCache(true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.NullCache); !ok {
		t.Errorf("newCache(true) = %T, want *cache.NullCache", c)
	}

	c, err = newCache(false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*cache.FileCache); !ok {
		t.Errorf("newCache(false) = %T, want *cache.FileCache", c)
	}
}

func TestCacheClearRedisRequiresPrefix(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetArgs([]string{"cache", "clear", "--redis", "127.0.0.1:1", "--redis-prefix", ""})
	err := root.ExecuteContext(context.Background())
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("cache clear with an empty prefix = %v, want INVALID_INPUT", err)
	}
}

func TestCacheClearRedisPrefixDefault(t *testing.T) {
	cmd := New(&bytes.Buffer{}, LogInfo).cacheClearCommand()
	if got := cmd.Flags().Lookup("redis-prefix").DefValue; got != defaultServePrefix {
		t.Errorf("--redis-prefix default = %q, want %q", got, defaultServePrefix)
	}
}
