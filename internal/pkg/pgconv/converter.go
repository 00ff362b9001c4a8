// Package pgconv maps between pgtype values and the nullable Go fields of
// the domain entities.
package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func nullable[T any](v T, valid bool) *T {
	if !valid {
		return nil
	}
	return &v
}

func TextPtr(v pgtype.Text) *string { return nullable(v.String, v.Valid) }

func Int8Ptr(v pgtype.Int8) *int64 { return nullable(v.Int64, v.Valid) }

func Time(v pgtype.Timestamptz) time.Time { return v.Time }

func Text(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func Int8(i *int64) pgtype.Int8 {
	if i == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *i, Valid: true}
}

func Timestamptz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows reports a missing row from either pgx or database/sql.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
