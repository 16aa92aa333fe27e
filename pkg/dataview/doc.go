// Package dataview provides a bounds-checked binary cursor for encoding and
// decoding fixed-width values.
//
// A Cursor wraps a private copy of a byte buffer, restricted to a window
// [start, start+length), and an offset that moves forward as values are
// read or written:
//
//	c, err := dataview.New(data, dataview.WithScope(dataview.NewScope("header")))
//	if err != nil {
//	    return err
//	}
//	version, err := c.GetUint16()
//	if err != nil {
//	    return err // *IndexOutOfRangeError, offset unchanged
//	}
//
// Encoding sessions start from a zero-filled window and finish with Bytes:
//
//	w, _ := dataview.NewWriter(6)
//	_ = w.SetUint16(2)
//	_ = w.SetUint32(0x01020304)
//	out := w.Bytes() // 00 02 01 02 03 04
//
// All multi-byte values use big-endian order (WireOrder) regardless of the
// host. Floats are transferred as their IEEE-754 bit patterns.
//
// Every accessor checks the window before touching storage. On failure it
// returns an error matching ErrIndexOutOfRange and leaves both the offset
// and the storage unchanged; New reports ErrInvalidLength for windows that
// do not fit the buffer or exceed BlockMaxSize. Error messages start with
// the stable codes CodeIndexOutOfRange and CodeInvalidLength, prefixed by
// the path of the attached Scope.
//
// A Cursor, and the Scope it shares, belong to a single session and are
// not safe for concurrent use. Use one Cursor per buffer.
package dataview
