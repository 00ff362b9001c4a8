//go:build unit

package httperr_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gin-voucher-shop/internal/handler/httperr"
	"gin-voucher-shop/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "unauthenticated", err: errs.Mark(errors.New("no user"), errs.ErrUnauthenticated), wantStatus: http.StatusUnauthorized},
		{name: "invalid input", err: errs.Mark(errors.New("bad"), errs.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "not found", err: errs.Mark(errors.New("gone"), errs.ErrNotFound), wantStatus: http.StatusNotFound},
		{name: "window violation", err: errs.Mark(errors.New("early"), errs.ErrWindowViolation), wantStatus: http.StatusUnprocessableEntity},
		{name: "stock exhausted", err: errs.Mark(errors.New("empty"), errs.ErrStockExhausted), wantStatus: http.StatusConflict},
		{name: "already purchased", err: errs.Mark(errors.New("again"), errs.ErrAlreadyPurchased), wantStatus: http.StatusConflict},
		{name: "lock contention", err: errs.Mark(errors.New("held"), errs.ErrLockContention), wantStatus: http.StatusTooManyRequests},
		{name: "transient store", err: errs.Mark(errors.New("down"), errs.ErrTransientStore), wantStatus: http.StatusServiceUnavailable},
		{name: "wrapped category survives", err: errs.Wrap(errs.Mark(errors.New("gone"), errs.ErrNotFound), "load"), wantStatus: http.StatusNotFound},
		{name: "unclassified", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, msg := httperr.Classify(tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name    string
		err     error
		msg     string
		wantMsg string
	}{
		{name: "custom message wins", err: errs.Mark(errors.New("gone"), errs.ErrNotFound), msg: "Shop not found", wantMsg: "Shop not found"},
		{name: "category message by default", err: errs.Mark(errors.New("gone"), errs.ErrNotFound), msg: "", wantMsg: "Not found"},
		{name: "internal errors hide the custom message", err: errors.New("pq: relation missing"), msg: "Shop not found", wantMsg: "Internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			httperr.Abort(c, tc.err, tc.msg)

			assert.True(t, c.IsAborted())
			assert.Len(t, c.Errors, 1)
			assert.Contains(t, w.Body.String(), tc.wantMsg)
		})
	}
}

func TestAbortWithError_NilPanics(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Panics(t, func() {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "x", nil)
	})
}
