// Package repository defines error types that are reused across the
// collection adapters.  These sentinel values let handlers tell a malformed
// identifier apart from a well-formed one that matches nothing.
package repository

import "errors"

// ErrInvalidID is returned when an identifier is not a 24 character hex
// ObjectID.  Handlers should translate this into an HTTP 400 response.
var ErrInvalidID = errors.New("invalid id")

// ErrMovieNotFound is returned when no movie has the requested id.
var ErrMovieNotFound = errors.New("movie not found")

// ErrTvShowNotFound is returned when no TV show has the requested id.
var ErrTvShowNotFound = errors.New("tv show not found")
