// Package lock implements a lease-based mutual exclusion primitive on top
// of the shared KV store.
package lock

import (
	"context"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/pkg/errs"

	"github.com/google/uuid"
)

const keyPrefix = "lock:"

var (
	ErrNotAcquired = errs.New("lock: held by another owner")
	ErrNotHeld     = errs.New("lock: not held by this owner")
)

// Handle proves ownership of a resource key until Lease elapses.
type Handle struct {
	ResourceKey string
	Token       string
	Lease       time.Duration
}

func Key(resourceKey string) string {
	return keyPrefix + resourceKey
}

type Locker struct {
	store      kv.Store
	instanceID string
	seq        atomic.Uint64
	logger     *slog.Logger
}

func NewLocker(store kv.Store, logger *slog.Logger) *Locker {
	return &Locker{
		store:      store,
		instanceID: uuid.NewString(),
		logger:     logger,
	}
}

func (l *Locker) nextToken() string {
	return l.instanceID + ":" + strconv.FormatUint(l.seq.Add(1), 10)
}

// TryAcquire makes exactly one SET NX attempt. Callers that want to wait
// must retry themselves.
func (l *Locker) TryAcquire(ctx context.Context, resourceKey string, lease time.Duration) (*Handle, error) {
	if lease <= 0 {
		return nil, errs.New("lock: lease must be positive")
	}

	token := l.nextToken()
	ok, err := l.store.SetIfAbsent(ctx, Key(resourceKey), token, lease)
	if err != nil {
		return nil, errs.Wrapf(err, "lock: acquire %s", resourceKey)
	}
	if !ok {
		return nil, errs.Mark(ErrNotAcquired, errs.ErrLockContention)
	}

	return &Handle{ResourceKey: resourceKey, Token: token, Lease: lease}, nil
}

// Release deletes the lock key only while it still carries h.Token, so a
// holder whose lease ran out cannot remove a successor's lock.
func (l *Locker) Release(ctx context.Context, h *Handle) error {
	if h == nil {
		return nil
	}
	deleted, err := l.store.CompareAndDelete(ctx, Key(h.ResourceKey), h.Token)
	if err != nil {
		return errs.Wrapf(err, "lock: release %s", h.ResourceKey)
	}
	if !deleted {
		return ErrNotHeld
	}
	return nil
}

// ReleaseQuietly is meant for defer. It detaches from ctx cancellation so a
// cancelled request still frees its lock, and logs instead of returning.
func (l *Locker) ReleaseQuietly(ctx context.Context, h *Handle) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	if err := l.Release(ctx, h); err != nil {
		level := slog.LevelError
		if errs.Is(err, ErrNotHeld) {
			level = slog.LevelWarn
		}
		l.logger.Log(ctx, level, "lock release failed",
			slog.String("resource", h.ResourceKey),
			slog.Duration("lease", h.Lease),
			slog.String("error", err.Error()))
	}
}
