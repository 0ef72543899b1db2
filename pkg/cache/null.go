package cache

import (
	"context"
	"time"
)

// NullCache backs --no-cache: every lookup misses and writes are dropped.
type NullCache struct{}

var _ Cache = (*NullCache)(nil)

// NewNullCache returns a cache that stores nothing.
func NewNullCache() Cache { return &NullCache{} }

func (*NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (*NullCache) Delete(context.Context, string) error                     { return nil }
func (*NullCache) Close() error                                             { return nil }
