package portfolio

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an operation targets a post id that is not
// in the collection.
var ErrNotFound = errors.New("post not found")

// LoadError reports that the post collection resource could not be fetched
// or decoded. The collection either loads whole or not at all.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load posts from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ValidationError reports a missing or conflicting field on create/edit.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// FormatError reports input that could not be parsed as a date where a
// strict ISO form is required.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("cannot parse %q as a date", e.Input)
}
