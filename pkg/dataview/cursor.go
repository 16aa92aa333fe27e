package dataview

import (
	"bytes"
	"fmt"
)

// BlockMaxSize is the largest window a Cursor accepts. It bounds the memory
// a single decode or encode session can claim from an untrusted length.
const BlockMaxSize = 64 << 20 // 64 MiB

// Cursor reads and writes fixed-width values over a private copy of a byte
// buffer. Only the window [start, start+length) is accessible. Every access
// is bounds-checked before storage is touched, and a failed access leaves
// both the offset and the storage unchanged.
//
// A Cursor belongs to a single decode or encode session and is not safe for
// concurrent use.
type Cursor struct {
	buf    []byte
	start  int
	end    int
	offset int
	scope  *Scope
}

// Option configures a Cursor at construction.
type Option func(*options)

type options struct {
	scope     *Scope
	start     int
	length    int
	hasLength bool
}

// WithScope attaches a diagnostic scope whose path prefixes every error.
func WithScope(s *Scope) Option {
	return func(o *options) { o.scope = s }
}

// WithStartOffset positions the window, and the initial offset, at n.
func WithStartOffset(n int) Option {
	return func(o *options) { o.start = n }
}

// WithLength sets the window length. It defaults to the rest of the buffer
// after the start offset.
func WithLength(n int) Option {
	return func(o *options) {
		o.length = n
		o.hasLength = true
	}
}

// New creates a Cursor over a copy of buf. The caller's slice is never
// aliased, so it may be reused or modified after New returns.
func New(buf []byte, opts ...Option) (*Cursor, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	length := o.length
	if !o.hasLength {
		length = len(buf) - o.start
	}

	if o.start < 0 || length < 0 || length > BlockMaxSize || o.start > len(buf)-length {
		return nil, &InvalidLengthError{
			Length:       length,
			StartOffset:  o.start,
			BufferLength: len(buf),
			Path:         o.scope.Path(),
		}
	}

	return &Cursor{
		buf:    bytes.Clone(buf[:o.start+length]),
		start:  o.start,
		end:    o.start + length,
		offset: o.start,
		scope:  o.scope,
	}, nil
}

// NewWriter creates a zero-filled Cursor of size bytes for an encoding
// session. Retrieve the result with Bytes.
func NewWriter(size int, opts ...Option) (*Cursor, error) {
	if size < 0 || size > BlockMaxSize {
		var o options
		for _, opt := range opts {
			opt(&o)
		}
		return nil, &InvalidLengthError{Length: size, Path: o.scope.Path()}
	}
	return New(make([]byte, size), opts...)
}

// require verifies that n bytes are available at the current offset.
// The comparison is written against the remaining room so that a huge n
// cannot overflow.
func (c *Cursor) require(op string, n int) error {
	if n < 0 || n > c.end-c.offset {
		return &IndexOutOfRangeError{
			Op:     op,
			Width:  n,
			Offset: c.offset,
			Start:  c.start,
			Length: c.end - c.start,
			Path:   c.scope.Path(),
		}
	}
	return nil
}

// take checks n bytes, advances past them and returns the slice of storage
// they occupy. The returned slice aliases internal storage.
func (c *Cursor) take(op string, n int) ([]byte, error) {
	if err := c.require(op, n); err != nil {
		return nil, err
	}
	p := c.buf[c.offset : c.offset+n : c.offset+n]
	c.offset += n
	return p, nil
}

// ReadBytes returns a copy of the next n bytes and advances past them.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	p, err := c.take("ReadBytes", n)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(p), nil
}

// WriteBytes copies p into storage at the current offset and advances by
// len(p). A p longer than the remaining window is rejected without writing.
func (c *Cursor) WriteBytes(p []byte) error {
	dst, err := c.take("WriteBytes", len(p))
	if err != nil {
		return err
	}
	copy(dst, p)
	return nil
}

// Skip advances the offset by n bytes without transferring data.
func (c *Cursor) Skip(n int) error {
	_, err := c.take("Skip", n)
	return err
}

// PeekUint8 returns the byte at the current offset without advancing.
func (c *Cursor) PeekUint8() (uint8, error) {
	if err := c.require("PeekUint8", sizeUint8); err != nil {
		return 0, err
	}
	return c.buf[c.offset], nil
}

// EnsureRemaining fails if fewer than n bytes remain. It does not consume.
func (c *Cursor) EnsureRemaining(n int) error {
	return c.require("EnsureRemaining", n)
}

// Expect reads len(want) bytes and fails with ErrExpectMismatch if they
// differ from want. The offset only advances on a match.
func (c *Cursor) Expect(want []byte) error {
	if err := c.require("Expect", len(want)); err != nil {
		return err
	}
	got := c.buf[c.offset : c.offset+len(want)]
	if !bytes.Equal(got, want) {
		return c.scope.Annotate(fmt.Errorf("%w: expected % x, got % x at offset %d", ErrExpectMismatch, want, got, c.offset))
	}
	c.offset += len(want)
	return nil
}

// Pad writes zero bytes up to the next multiple of alignment, measured from
// the window start. Already aligned offsets and alignment <= 0 are no-ops.
func (c *Cursor) Pad(alignment int) error {
	if alignment <= 0 {
		return nil
	}
	rem := (c.offset - c.start) % alignment
	if rem == 0 {
		return nil
	}
	dst, err := c.take("Pad", alignment-rem)
	if err != nil {
		return err
	}
	clear(dst)
	return nil
}

// Offset returns the current position within the buffer.
func (c *Cursor) Offset() int { return c.offset }

// Start returns the window start, which is also the initial offset.
func (c *Cursor) Start() int { return c.start }

// Len returns the declared window length.
func (c *Cursor) Len() int { return c.end - c.start }

// Remaining returns the number of bytes between the offset and the window end.
func (c *Cursor) Remaining() int { return c.end - c.offset }

// Scope returns the diagnostic scope attached at construction, possibly nil.
func (c *Cursor) Scope() *Scope { return c.scope }

// Bytes returns a copy of the whole window, including bytes not yet
// visited. It is how an encoding session retrieves its result.
func (c *Cursor) Bytes() []byte {
	return bytes.Clone(c.buf[c.start:c.end])
}
