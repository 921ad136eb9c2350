package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when an operation references an id absent from
// the collection.
var ErrNotFound = errors.New("event not found")

// ErrTransient is reserved for I/O failures of a real backend. The
// in-memory store never returns it, but operation signatures carry plain
// errors so a networked repository can surface it without an interface
// change.
var ErrTransient = errors.New("transient backend failure")

// ValidationError reports one or more payload constraint violations from
// create or update.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Fields, "; "))
}
