package roadmap

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by every IndexError.
	ErrIndexOutOfRange = errors.New("milestone index out of range")
	// ErrInvalidShape is matched by every ShapeError.
	ErrInvalidShape = errors.New("invalid milestone shape")
)

// IndexError is returned when a milestone index is outside [0, Len).
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("milestone index %d out of range [0, %d)", e.Index, e.Len)
}

func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// ShapeError is returned when a milestone does not conform to the record shape.
// Index is -1 when the position is unknown (for example while decoding a single value).
type ShapeError struct {
	Index  int
	Field  string
	Reason string
}

func (e *ShapeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("milestone %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("milestone %d: %s: %s", e.Index, e.Field, e.Reason)
}

func (e *ShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}
