// Package kv adapts the shared key/value store used by the cache, the
// distributed lock and the id generator.
package kv

import (
	"context"
	"time"

	"gin-voucher-shop/internal/pkg/errs"
)

var (
	ErrKeyNotFound = errs.New("kv: key not found")
	ErrUnavailable = errs.New("kv: store unavailable")
)

// Store is the subset of redis semantics the core depends on. A ttl of zero
// means the key never expires. Values are opaque strings; the empty string
// is a legal value and is different from an absent key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	SetIfAbsent(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
	// CompareAndDelete removes key only while it still holds expected.
	CompareAndDelete(ctx context.Context, key, expected string) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	// IncrWithTTL increments key and, in the same atomic step, gives it ttl
	// if it has no expiry yet. A zero ttl leaves the expiry alone.
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Expire(ctx context.Context, key string, ttl time.Duration) error
}

func IsNotFound(err error) bool {
	return errs.Is(err, ErrKeyNotFound)
}
