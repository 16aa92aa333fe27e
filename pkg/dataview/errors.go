package dataview

import (
	"errors"
	"fmt"
)

// Error codes. These strings are stable and appear at the start of every
// codec error message so callers outside Go can match on them.
const (
	CodeInvalidLength   = "InvalidLength"
	CodeIndexOutOfRange = "IndexOutOfRange"
)

var (
	// ErrInvalidLength is matched by errors returned from New when the
	// requested window does not fit the buffer or exceeds BlockMaxSize.
	ErrInvalidLength = errors.New("dataview: invalid length")

	// ErrIndexOutOfRange is matched by errors returned from any accessor
	// that would touch bytes outside the cursor window.
	ErrIndexOutOfRange = errors.New("dataview: index out of range")

	// ErrExpectMismatch is returned when Expect finds different bytes.
	ErrExpectMismatch = errors.New("dataview: expect mismatch")
)

// InvalidLengthError describes a rejected window at construction time.
type InvalidLengthError struct {
	Length       int
	StartOffset  int
	BufferLength int
	Path         string
}

func (e *InvalidLengthError) Error() string {
	return withPath(e.Path, fmt.Sprintf("%s: window of %d bytes at offset %d does not fit buffer of %d bytes (max %d)",
		CodeInvalidLength, e.Length, e.StartOffset, e.BufferLength, BlockMaxSize))
}

// Unwrap lets errors.Is match ErrInvalidLength.
func (e *InvalidLengthError) Unwrap() error { return ErrInvalidLength }

// IndexOutOfRangeError describes an access that would cross the window end.
// Offset is the absolute cursor position at the time of the failed call and
// is the position the cursor is still at. The window spans
// [Start, Start+Length) in the same coordinates.
type IndexOutOfRangeError struct {
	Op     string
	Width  int
	Offset int
	Start  int
	Length int
	Path   string
}

func (e *IndexOutOfRangeError) Error() string {
	return withPath(e.Path, fmt.Sprintf("%s: %s needs %d bytes at offset %d, window [%d, %d)",
		CodeIndexOutOfRange, e.Op, e.Width, e.Offset, e.Start, e.Start+e.Length))
}

// Unwrap lets errors.Is match ErrIndexOutOfRange.
func (e *IndexOutOfRangeError) Unwrap() error { return ErrIndexOutOfRange }

// ScopedError attaches a diagnostic path to an error produced outside the
// cursor, e.g. a semantic decode failure in a higher layer.
type ScopedError struct {
	Path string
	Err  error
}

func (e *ScopedError) Error() string { return withPath(e.Path, e.Err.Error()) }

func (e *ScopedError) Unwrap() error { return e.Err }

func withPath(path, msg string) string {
	if path == "" {
		return msg
	}
	return path + ": " + msg
}

// PathOf returns the diagnostic path carried by err, or "" if it has none.
func PathOf(err error) string {
	var oor *IndexOutOfRangeError
	if errors.As(err, &oor) && oor.Path != "" {
		return oor.Path
	}
	var il *InvalidLengthError
	if errors.As(err, &il) && il.Path != "" {
		return il.Path
	}
	var scoped *ScopedError
	if errors.As(err, &scoped) {
		return scoped.Path
	}
	return ""
}
