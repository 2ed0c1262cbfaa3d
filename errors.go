package chatfmt

import (
	"errors"
	"fmt"
)

// ErrValidation reports a structural parameter outside its closed domain:
// a header level, navigation target, timestamp style or policy name.
// Free text is never validated.
var ErrValidation = errors.New("chatfmt: validation failed")

// ValidationError describes the rejected parameter. It unwraps to
// ErrValidation.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("chatfmt: invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }
