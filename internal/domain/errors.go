package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexTooBig indicates a path segment past the end of its level.
	ErrIndexTooBig = errors.New("invalid index (too big)")

	// ErrSubIndexLeaf indicates a path that tries to descend through an entry.
	ErrSubIndexLeaf = errors.New("invalid index (sub-indexing a non-list)")

	// ErrEmptyPath indicates an operation that needs at least one path segment.
	ErrEmptyPath = errors.New("invalid index (empty)")

	// ErrDuplicateList indicates a list name that is already taken.
	ErrDuplicateList = errors.New("list already exists")

	// ErrListNotFound indicates an unknown list name.
	ErrListNotFound = errors.New("list not found")

	// ErrDefaultList indicates an attempt to delete the reserved default list.
	ErrDefaultList = errors.New("the default to-do list cannot be removed")

	// ErrCancelled indicates the user declined a confirmation.
	ErrCancelled = errors.New("cancelled")

	// ErrMoveFailed indicates a move whose insert half failed; the item was restored.
	ErrMoveFailed = errors.New("move failed")
)

// IndexError reports which path and depth an addressing operation failed at.
type IndexError struct {
	Path  IndexPath
	Depth int
	Err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v at index %s (level %d)", e.Err, e.Path, e.Depth+1)
}

func (e *IndexError) Unwrap() error { return e.Err }

// ParseError reports malformed date, time or index text.
type ParseError struct {
	Input  string
	Format string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Format == "" {
		return fmt.Sprintf("parsing %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("parsing %q (format: %s): %v", e.Input, e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// MoveError wraps the insert failure of a move. The tree is left as it was
// before the move started.
type MoveError struct {
	From IndexPath
	To   IndexPath
	Err  error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("moving %s to %s: %v", e.From, e.To, e.Err)
}

func (e *MoveError) Unwrap() []error { return []error{ErrMoveFailed, e.Err} }

func indexErr(path IndexPath, depth int, err error) error {
	return &IndexError{Path: path, Depth: depth, Err: err}
}
