package dataset

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound reports that the dataset path does not exist.
	ErrNotFound = errors.New("dataset not found")
	// ErrBadFormat reports missing or malformed fields in the dataset.
	ErrBadFormat = errors.New("malformed dataset")
)

// DatasetError provides structured error information for load failures.
type DatasetError struct {
	Op    string // Operation that failed (e.g., "open", "header", "row")
	Path  string // Dataset path
	Line  int    // 1-based line number, 0 when not row-specific
	Cause error  // Underlying error
}

// Error implements the error interface.
func (e *DatasetError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s (line %d): %v", e.Op, e.Path, e.Line, e.Cause)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Cause)
}

// Unwrap returns the underlying cause for error chain support.
func (e *DatasetError) Unwrap() error {
	return e.Cause
}

// notFoundError creates an error for a missing dataset path.
func notFoundError(path string, cause error) error {
	return &DatasetError{Op: "open", Path: path, Cause: fmt.Errorf("%w: %v", ErrNotFound, cause)}
}

// formatError creates an error for a structural problem in the dataset.
func formatError(op, path string, line int, cause error) error {
	return &DatasetError{Op: op, Path: path, Line: line, Cause: fmt.Errorf("%w: %v", ErrBadFormat, cause)}
}

// IsNotFound returns true if the error is a missing-dataset error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsBadFormat returns true if the error is a malformed-dataset error.
func IsBadFormat(err error) bool {
	return errors.Is(err, ErrBadFormat)
}
