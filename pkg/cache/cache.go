// Package cache stores rendered charts so unchanged inputs are not laid out
// and drawn twice.
//
// A [Cache] is a plain byte store with optional expiry. [FileCache] backs the
// CLI, [RedisCache] lets several preview servers share results, and
// [NullCache] disables caching. Keys come from a [Keyer], which hashes
// everything that can change the output.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store keyed by strings.
//
// Get reports a miss as (nil, false, nil); an error means the backend failed.
// A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TTLRender is how long rendered charts are kept.
const TTLRender = 7 * 24 * time.Hour

// RenderKeyOpts holds everything besides the input data that changes a
// rendered chart.
type RenderKeyOpts struct {
	Kind    string  `json:"kind"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	Options string  `json:"options"` // hash of the chart options
}

// Keyer derives cache keys.
type Keyer interface {
	// RenderKey is the key of a chart rendered from the input with the given
	// content hash.
	RenderKey(dataHash string, opts RenderKeyOpts) string
}

// DefaultKeyer produces unprefixed keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// RenderKey hashes the data hash together with opts.
func (DefaultKeyer) RenderKey(dataHash string, opts RenderKeyOpts) string {
	return hashKey("render", dataHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several tenants, such as
// preview servers sharing one Redis instance, get separate namespaces.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "serve:team-a:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// RenderKey generates a prefixed render key.
func (k *ScopedKeyer) RenderKey(dataHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(dataHash, opts)
}
