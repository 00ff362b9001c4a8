//go:build unit

package authctx_test

import (
	"context"
	"testing"

	"gin-voucher-shop/internal/pkg/authctx"

	"github.com/stretchr/testify/assert"
)

func TestUserID(t *testing.T) {
	testCases := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{name: "anonymous", ctx: context.Background(), wantOK: false},
		{name: "authenticated", ctx: authctx.WithUserID(context.Background(), 42), wantID: 42, wantOK: true},
		{name: "zero id is anonymous", ctx: authctx.WithUserID(context.Background(), 0), wantOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, ok := authctx.UserID(tc.ctx)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantID, id)
		})
	}
}
