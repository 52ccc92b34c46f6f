package dataframe

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a length or shape precondition is
	// violated, an option is malformed, or an import source cannot be read.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange is returned when a row or column position exceeds the
	// current bounds of a table.
	ErrOutOfRange = errors.New("out of range")

	// ErrColumnNotFound is returned by name-based operations that do not
	// create missing columns.
	ErrColumnNotFound = errors.New("column not found")

	// ErrStaleRow is returned when a RowView is used after its table was
	// structurally mutated (rows or columns added or removed).
	ErrStaleRow = errors.New("row view is stale")
)

// ShapeMismatchError indicates that a sequence length or table dimension did
// not match what the operation requires.
//
// It satisfies errors.Is(err, ErrInvalidArgument).
type ShapeMismatchError struct {
	Op       string
	Expected int
	Actual   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %d, got %d", e.Op, e.Expected, e.Actual)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrInvalidArgument }

// IndexOutOfRangeError indicates a position outside [0, Len).
//
// It satisfies errors.Is(err, ErrOutOfRange).
type IndexOutOfRangeError struct {
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("the index '%d' is out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexOutOfRangeError) Unwrap() error { return ErrOutOfRange }

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return &IndexOutOfRangeError{Index: i, Len: n}
	}
	return nil
}

func columnNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
