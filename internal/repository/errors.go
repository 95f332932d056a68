// Package repository holds the in-memory lists that back every admin page.
// Each list lives only as long as the process; it is seeded at start-up and
// lost on restart.
//
// The sentinel values below let handlers tell failure scenarios apart
// without inspecting messages.  Every entity repository wraps ErrNotFound
// in its own NotFoundError so the handler can name the entity in the 404
// body.
package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when no record carries the requested id.
// Handlers should translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// ErrPublishLimit is returned when saving a blog post as published would
// exceed the institutional limit.  Handlers should translate this into an
// HTTP 409 response.
var ErrPublishLimit = errors.New("publish limit reached")

// NotFoundError names the entity that could not be found.  It matches
// ErrNotFound through errors.Is.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
