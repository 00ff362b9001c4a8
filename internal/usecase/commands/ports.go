package commands

import (
	"context"
	"time"

	"gin-voucher-shop/internal/infra/lock"
)

// Locker is the slice of the distributed lock the commands need.
type Locker interface {
	TryAcquire(ctx context.Context, resourceKey string, lease time.Duration) (*lock.Handle, error)
	ReleaseQuietly(ctx context.Context, h *lock.Handle)
}

type IDGenerator interface {
	NextID(ctx context.Context, sequenceKey string) (int64, error)
}

type PurchaseRecorder interface {
	PurchaseOutcome(outcome string)
}
