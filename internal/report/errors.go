// report/errors.go
// Package: report
package report

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField reports a required field that is absent or empty in the input.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidGroupKey reports a record whose round id cannot be used for grouping.
	ErrInvalidGroupKey = errors.New("invalid group key")
)

// FieldError names the field and row that could not be resolved.
// Row is 1-based over data rows; 0 means the header.
type FieldError struct {
	Field  string
	Row    int
	Reason string
}

func (e *FieldError) Error() string {
	msg := fmt.Sprintf("%v %q", ErrMissingField, e.Field)
	if e.Row > 0 {
		msg += fmt.Sprintf(" in row %d", e.Row)
	} else {
		msg += " in header"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *FieldError) Unwrap() error { return ErrMissingField }

// GroupKeyError names the record whose round id is empty.
// Row is 1-based.
type GroupKeyError struct {
	Row   int
	Value string
}

func (e *GroupKeyError) Error() string {
	return fmt.Sprintf("%v in row %d: round id %q", ErrInvalidGroupKey, e.Row, e.Value)
}

func (e *GroupKeyError) Unwrap() error { return ErrInvalidGroupKey }
