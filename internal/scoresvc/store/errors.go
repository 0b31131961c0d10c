package store

import "errors"

// Sentinel errors for the store layer. A missing row is reported as
// ErrNotFound instead of a nil result so callers can tell "not found"
// apart from an empty result set.
var (
	ErrNotFound       = errors.New("record not found")
	ErrNoRowsAffected = errors.New("no rows affected")
)
