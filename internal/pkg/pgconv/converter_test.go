//go:build unit

package pgconv_test

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"gin-voucher-shop/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
)

func TestNullableConversions(t *testing.T) {
	assert.Nil(t, pgconv.TextPtr(pgtype.Text{}))
	assert.Nil(t, pgconv.Int8Ptr(pgtype.Int8{}))
	assert.False(t, pgconv.Text(nil).Valid)
	assert.False(t, pgconv.Int8(nil).Valid)

	area := "Downtown"
	price := int64(80)
	assert.Equal(t, &area, pgconv.TextPtr(pgconv.Text(&area)))
	assert.Equal(t, &price, pgconv.Int8Ptr(pgconv.Int8(&price)))
}

func TestIsNoRows(t *testing.T) {
	assert.True(t, pgconv.IsNoRows(pgx.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(sql.ErrNoRows))
	assert.True(t, pgconv.IsNoRows(fmt.Errorf("select shop: %w", pgx.ErrNoRows)))
	assert.False(t, pgconv.IsNoRows(errors.New("connection reset")))
}
