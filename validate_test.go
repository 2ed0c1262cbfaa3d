package chatfmt

import (
	"bytes"
	"errors"
	"testing"
)

func TestValidateInputRejectsInvalidUTF8(t *testing.T) {
	data := []byte{0xff, 0xfe, 0xfd}
	if err := ValidateInput(data); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("expected ErrInvalidUTF8, got %v", err)
	}
}

func TestValidateInputRejectsBinary(t *testing.T) {
	data := append([]byte("hello"), 0x00)
	if err := ValidateInput(data); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestValidateInputControlRatio(t *testing.T) {
	text := bytes.Repeat([]byte("chat text\n\t"), 10)
	if err := ValidateInput(text); err != nil {
		t.Fatalf("expected text to validate, got %v", err)
	}
	noisy := append(bytes.Repeat([]byte("a"), 95), 0x01, 0x02, 0x1b, 0x7f, 0x03)
	if err := ValidateInput(noisy); !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
	short := []byte{0x1b, 'o', 'k'}
	if err := ValidateInput(short); err != nil {
		t.Fatalf("short input should not be sampled, got %v", err)
	}
}

func TestValidateInputReportsOffset(t *testing.T) {
	cases := []struct {
		name   string
		src    []byte
		offset int
		want   error
	}{
		{"invalid utf-8 after multibyte", []byte("héllo\xffworld"), 6, ErrInvalidUTF8},
		{"nul", []byte("abc\x00def"), 3, ErrBinaryInput},
		{"control ratio", append(append(bytes.Repeat([]byte("a"), 70), 0x01), 0x02, 0x03), 70, ErrBinaryInput},
	}
	for _, tc := range cases {
		err := ValidateInput(tc.src)
		var inputErr *InputError
		if !errors.As(err, &inputErr) {
			t.Fatalf("%s: expected *InputError, got %v", tc.name, err)
		}
		if !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
		if inputErr.Offset != tc.offset {
			t.Fatalf("%s: offset = %d, want %d", tc.name, inputErr.Offset, tc.offset)
		}
	}
}
