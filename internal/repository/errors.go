package repository

import "errors"

var (
	// ErrNotFound marks operations whose bundle directory was absent, most
	// commonly because a concurrent transition or delete won the race.
	ErrNotFound = errors.New("bundle not found")

	// ErrConflict marks transitions whose destination already holds a bundle
	// with the same identifier.
	ErrConflict = errors.New("bundle already exists")

	// ErrMissingFragment marks typed accessors that required a fragment which
	// is not present. Plain Read reports absence as a nil reader instead.
	ErrMissingFragment = errors.New("fragment missing")
)
