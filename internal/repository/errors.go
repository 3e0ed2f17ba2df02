package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert or update violates a unique
// constraint (e.g. a blog slug that is already taken).
var ErrDuplicate = errors.New("duplicate")
