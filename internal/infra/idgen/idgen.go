// Package idgen mints 64-bit ids of the form
//
//	(seconds since epoch << 32) | daily counter
//
// The counter comes from an atomic INCR on the shared KV store, so ids are
// unique across processes without a central sequence. Ids minted by
// different processes within the same second may be ordered differently
// from wall-clock order when their clocks disagree.
package idgen

import (
	"context"
	"time"

	"gin-voucher-shop/internal/infra/kv"
	"gin-voucher-shop/internal/pkg/clock"
	"gin-voucher-shop/internal/pkg/errs"
)

const (
	CounterBits = 32
	// MaxCounter is the last counter value that fits; about 4.29e9 ids per
	// key per day, roughly 49k ids/s sustained.
	MaxCounter = 1<<CounterBits - 1
	// maxTimestamp keeps the id positive in a signed 64-bit column.
	maxTimestamp = 1<<(63-CounterBits) - 1

	keyPrefix = "icr:"
)

var (
	ErrSequenceExhausted = errs.New("idgen: counter exhausted for today")
	ErrClockBeforeEpoch  = errs.New("idgen: clock is before epoch")
)

type Generator struct {
	store      kv.Store
	clock      clock.Clock
	epoch      int64
	counterTTL time.Duration
}

func NewGenerator(store kv.Store, clk clock.Clock, epochSeconds int64, counterTTL time.Duration) *Generator {
	return &Generator{
		store:      store,
		clock:      clk,
		epoch:      epochSeconds,
		counterTTL: counterTTL,
	}
}

func CounterKey(sequenceKey string, day time.Time) string {
	return keyPrefix + sequenceKey + ":" + day.UTC().Format("2006:01:02")
}

func (g *Generator) NextID(ctx context.Context, sequenceKey string) (int64, error) {
	now := g.clock.Now().UTC()
	ts := now.Unix() - g.epoch
	if ts < 0 {
		return 0, ErrClockBeforeEpoch
	}
	if ts > maxTimestamp {
		return 0, errs.Newf("idgen: timestamp %d overflows %d bits", ts, 63-CounterBits)
	}

	key := CounterKey(sequenceKey, now)
	// yesterday's counters are never read again; the TTL is attached in the
	// same step as the first increment so no counter outlives it
	count, err := g.store.IncrWithTTL(ctx, key, g.counterTTL)
	if err != nil {
		return 0, errs.Wrapf(err, "idgen: increment %s", key)
	}
	if count > MaxCounter {
		return 0, errs.Wrapf(ErrSequenceExhausted, "key %s reached %d", key, count)
	}

	return ts<<CounterBits | count, nil
}

// Decompose splits an id back into its timestamp and counter parts.
func Decompose(id int64, epochSeconds int64) (time.Time, int64) {
	ts := id >> CounterBits
	return time.Unix(ts+epochSeconds, 0).UTC(), id & MaxCounter
}
