package repositories

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrNoFields is returned by partial updates when the update set is
	// empty.
	ErrNoFields = errors.New("no fields to update")
)
