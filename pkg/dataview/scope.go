package dataview

import (
	"errors"
	"strings"
)

// pathSeparator joins scope frames when rendering a path.
const pathSeparator = " > "

// Scope is a breadcrumb of nested decode or encode steps, e.g.
// "manifest > modules[2] > schema". A decoder pushes a frame before
// descending into a nested structure and pops it on the way out; any error
// raised by a Cursor sharing the scope records the path at that moment.
//
// A Scope belongs to one session and is not safe for concurrent use.
// A nil *Scope is valid and renders an empty path.
type Scope struct {
	frames []string
}

// NewScope returns a scope seeded with the given frames.
func NewScope(frames ...string) *Scope {
	return &Scope{frames: append([]string(nil), frames...)}
}

// Push appends a frame and returns a function that removes it again.
//
//	defer scope.Push("header")()
func (s *Scope) Push(frame string) (pop func()) {
	if s == nil {
		return func() {}
	}
	depth := len(s.frames)
	s.frames = append(s.frames, frame)
	return func() {
		if len(s.frames) > depth {
			s.frames = s.frames[:depth]
		}
	}
}

// Depth returns the number of frames currently pushed.
func (s *Scope) Depth() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// Path renders the current breadcrumb.
func (s *Scope) Path() string {
	if s == nil || len(s.frames) == 0 {
		return ""
	}
	return strings.Join(s.frames, pathSeparator)
}

// Annotate attaches the current path to err. Nil errors, empty scopes and
// codec errors that already carry a path are returned unchanged.
func (s *Scope) Annotate(err error) error {
	if err == nil {
		return nil
	}
	path := s.Path()
	if path == "" || hasPath(err) {
		return err
	}
	return &ScopedError{Path: path, Err: err}
}

func hasPath(err error) bool {
	var oor *IndexOutOfRangeError
	if errors.As(err, &oor) && oor.Path != "" {
		return true
	}
	var il *InvalidLengthError
	if errors.As(err, &il) && il.Path != "" {
		return true
	}
	var scoped *ScopedError
	return errors.As(err, &scoped)
}
