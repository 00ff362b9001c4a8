//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"gin-voucher-shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkAndIs(t *testing.T) {
	sentinel := errs.New("voucher sold out")

	testCases := []struct {
		name   string
		err    error
		target error
		want   bool
	}{
		{
			name:   "marked error matches category",
			err:    errs.Mark(sentinel, errs.ErrStockExhausted),
			target: errs.ErrStockExhausted,
			want:   true,
		},
		{
			name:   "marked error still matches itself",
			err:    errs.Mark(sentinel, errs.ErrStockExhausted),
			target: sentinel,
			want:   true,
		},
		{
			name:   "wrapped marked error matches category",
			err:    errs.Wrap(errs.Mark(sentinel, errs.ErrStockExhausted), "purchase"),
			target: errs.ErrStockExhausted,
			want:   true,
		},
		{
			name:   "different category does not match",
			err:    errs.Mark(sentinel, errs.ErrStockExhausted),
			target: errs.ErrWindowViolation,
			want:   false,
		},
		{
			name:   "mark on nil returns the mark",
			err:    errs.Mark(nil, errs.ErrNotFound),
			target: errs.ErrNotFound,
			want:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, errs.Is(tc.err, tc.target))
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, errs.Wrap(nil, "ignored"))
	assert.NoError(t, errs.Wrapf(nil, "ignored %d", 1))
}

func TestExtractStackLines(t *testing.T) {
	err := errs.Wrap(errors.New("boom"), "loading shop")

	lines := errs.ExtractStackLines(err, 3)

	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "loading shop")
	assert.Nil(t, errs.ExtractStackLines(nil, 3))
}
