package inputs

import (
	"errors"
	"fmt"
)

// ErrMissingRequiredInput is returned when a required boolean input is absent
// or does not hold a recognised boolean literal.
var ErrMissingRequiredInput = errors.New("missing required input")

// MissingRequiredInputError names the required key that could not be resolved.
// It matches ErrMissingRequiredInput with errors.Is.
type MissingRequiredInputError struct {
	Key   string
	Value string
}

func (e *MissingRequiredInputError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("input required and not supplied: %s", e.Key)
	}
	return fmt.Sprintf("input %s: %q is not a boolean, expected true or false", e.Key, e.Value)
}

func (e *MissingRequiredInputError) Unwrap() error {
	return ErrMissingRequiredInput
}
