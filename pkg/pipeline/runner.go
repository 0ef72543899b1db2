package pipeline

import (
	"context"
	"encoding/json"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sketchfit/pkg/cache"
)

// Runner executes the pipeline with caching.
// Both the CLI and the preview server use it so cached charts are shared.
//
// The Runner is stateless except for the cache and logger. Multiple
// goroutines can safely use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute renders data as a fitted chart, reusing a cached result when the
// same input was rendered with the same options before.
func (r *Runner) Execute(ctx context.Context, data []byte, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}

	dataHash := cache.Hash(data)
	key := r.Keyer.RenderKey(dataHash, opts.KeyOpts())

	if !opts.Refresh {
		if cached, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			var result Result
			if err := json.Unmarshal(cached, &result); err == nil {
				result.DataHash = dataHash
				result.CacheHit = true
				r.Logger.Debug("chart cache hit", "kind", opts.Kind, "key", key)
				return &result, nil
			}
			// Unreadable entries are re-rendered and overwritten.
		} else if err != nil {
			r.Logger.Warn("chart cache lookup failed", "err", err)
		}
	}

	result, err := Render(ctx, data, opts)
	if err != nil {
		return nil, err
	}
	result.DataHash = dataHash

	r.Logger.Info("rendered chart",
		"kind", opts.Kind,
		"canvas", formatSize(result.Geometry.CanvasWidth, result.Geometry.CanvasHeight),
		"plot", formatSize(result.Geometry.PlotWidth, result.Geometry.PlotHeight),
		"duration", result.RenderTime)

	if encoded, err := json.Marshal(result); err == nil {
		if err := r.Cache.Set(ctx, key, encoded, cache.TTLRender); err != nil {
			r.Logger.Warn("chart cache write failed", "err", err)
		}
	}
	return result, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
