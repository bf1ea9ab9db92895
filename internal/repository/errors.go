package repository

import "errors"

// ErrNotFound is returned when a requested record does not exist in the database.
var ErrNotFound = errors.New("not found")

// ErrAlreadyExists is returned when inserting a record that the schema
// restricts to a single row (the portfolio document).
var ErrAlreadyExists = errors.New("already exists")
