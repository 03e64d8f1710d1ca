package model

import "errors"

var (
	// ErrNotFound is returned by stores when the requested row is absent.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned by stores on a uniqueness violation.
	ErrDuplicate = errors.New("duplicate row")
)
