package chatfmt

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports input that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that looks binary rather than text.
	ErrBinaryInput = errors.New("binary input detected")
)

// Inputs shorter than sampleFloor are only rejected for NUL bytes; longer
// ones are also rejected when controlPct percent or more of their bytes are
// control characters.
const (
	sampleFloor = 64
	controlPct  = 2
)

// InputError locates the byte that made ValidateInput reject its input.
// For a control-character ratio failure Offset is the first control byte.
type InputError struct {
	Offset int
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%v at byte %d", e.Err, e.Offset)
}

func (e *InputError) Unwrap() error { return e.Err }

// ValidateInput returns an *InputError wrapping ErrInvalidUTF8 or
// ErrBinaryInput if src is not usable as message text.
func ValidateInput(src []byte) error {
	control, first := 0, -1
	for i := 0; i < len(src); {
		c := src[i]
		if c >= utf8.RuneSelf {
			r, size := utf8.DecodeRune(src[i:])
			if r == utf8.RuneError && size == 1 {
				return &InputError{Offset: i, Err: ErrInvalidUTF8}
			}
			i += size
			continue
		}
		if c == 0 {
			return &InputError{Offset: i, Err: ErrBinaryInput}
		}
		if isControl(c) {
			if first < 0 {
				first = i
			}
			control++
		}
		i++
	}
	if len(src) >= sampleFloor && control*100 >= len(src)*controlPct {
		return &InputError{Offset: first, Err: ErrBinaryInput}
	}
	return nil
}

// isControl reports ASCII control bytes other than tab, CR and LF.
func isControl(c byte) bool {
	return (c < 0x20 && c != '\t' && c != '\n' && c != '\r') || c == 0x7F
}
