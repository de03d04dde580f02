package bcs

import (
	"errors"
	"fmt"
)

// Failure classes for encoding and decoding. Structured errors returned by
// this package wrap one of these, so callers dispatch with errors.Is.
var (
	// ErrTruncatedInput means a decoder needed more bytes than were available.
	ErrTruncatedInput = errors.New("truncated input")
	// ErrInvalidValue means a byte or sub-sequence is outside its schema's
	// domain: a boolean that isn't 0/1, an option tag that isn't 0/1, an enum
	// discriminant past the variant count, or a non-UTF-8 string body.
	ErrInvalidValue = errors.New("invalid value")
	// ErrOverflow means a decoded length or integer does not fit the target
	// width or the platform's int.
	ErrOverflow = errors.New("overflow")
	// ErrValueOutOfRange means an encoder was handed a value that exceeds its
	// declared bit width.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrTrailingBytes means a full-consume decode finished with input left
	// over.
	ErrTrailingBytes = errors.New("trailing bytes")
)

// DecodeError locates a failed read: the failure class, the schema element
// being decoded, and the byte offset in the input where the failure was
// detected.
type DecodeError struct {
	Kind   error
	Schema string
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("bcs: %v decoding %s at offset %d: %s", e.Kind, e.Schema, e.Offset, e.Detail)
	}
	return fmt.Sprintf("bcs: %v decoding %s at offset %d", e.Kind, e.Schema, e.Offset)
}

func (e *DecodeError) Unwrap() error { return e.Kind }

// EncodeError reports a rejected value on the encode path.
type EncodeError struct {
	Kind   error
	Schema string
	Detail string
}

func (e *EncodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("bcs: %v encoding %s: %s", e.Kind, e.Schema, e.Detail)
	}
	return fmt.Sprintf("bcs: %v encoding %s", e.Kind, e.Schema)
}

func (e *EncodeError) Unwrap() error { return e.Kind }

// catch converts a panic raised by a Writer or Reader into the error return
// of the enclosing adapter. Panics that are not codec errors keep unwinding:
// those are bugs, not malformed input.
func catch(err *error) {
	r := recover()
	if r == nil {
		return
	}
	switch e := r.(type) {
	case *DecodeError:
		*err = e
	case *EncodeError:
		*err = e
	default:
		panic(r)
	}
}
