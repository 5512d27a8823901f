package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrInput            = errors.New("input unreadable")
	ErrNotFound         = errors.New("not found")
	ErrDuplicate        = errors.New("duplicate entry")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
