package utils

import (
	"context"
	"database/sql"
	"errors"
)

// IsSQLNoRowsError reports whether err is, or wraps, sql.ErrNoRows.
func IsSQLNoRowsError(err error) bool {
	return err != nil && errors.Is(err, sql.ErrNoRows)
}

// IsContextError reports whether err comes from a cancelled or expired context.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
