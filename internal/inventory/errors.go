package inventory

import (
	"fmt"
)

// NumberKind categorizes why a numeric field was rejected.
type NumberKind string

const (
	// KindNotANumber indicates the input did not parse as a number.
	KindNotANumber NumberKind = "not-a-number"

	// KindNegative indicates the input parsed but is below zero.
	KindNegative NumberKind = "negative"
)

// InvalidNumberError reports a numeric field that failed validation.
// It carries enough context for an interactive caller to re-prompt.
type InvalidNumberError struct {
	// Field names the rejected field ("cost", "quantity", ...).
	Field string

	// Input is the raw text as typed or read from the file.
	Input string

	// Kind categorizes the failure.
	Kind NumberKind

	// Err is the underlying parse error, if any.
	Err error
}

func (e *InvalidNumberError) Error() string {
	switch e.Kind {
	case KindNegative:
		return fmt.Sprintf("invalid %s %q: must not be negative", e.Field, e.Input)
	default:
		if e.Err != nil {
			return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
		}
		return fmt.Sprintf("invalid %s %q: not a number", e.Field, e.Input)
	}
}

func (e *InvalidNumberError) Unwrap() error {
	return e.Err
}
