package manifest

import (
	"fmt"
	"math"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/marmos91/dataview/pkg/dataview"
)

// Magic opens every encoded manifest.
var Magic = [4]byte{'D', 'V', 'M', 'F'}

const (
	headerSize = len(Magic) + 2 // magic + u16 version

	// smallest possible module entries: two empty strings plus fixed fields
	minModuleV1Size = 2 + 2
	minModuleV2Size = 2 + 2 + 8 + 4 + 1
)

// strSize returns the encoded size of s as a str16.
func strSize(s string) int { return 2 + len(s) }

func writeString(w *dataview.Cursor, s string) error {
	if len(s) > math.MaxUint16 {
		return w.Scope().Annotate(fmt.Errorf("%w: %d bytes", ErrStringTooLong, len(s)))
	}
	if err := w.SetUint16(uint16(len(s))); err != nil {
		return err
	}
	return w.WriteBytes([]byte(s))
}

func readString(r *dataview.Cursor) (string, error) {
	n, err := r.GetUint16()
	if err != nil {
		return "", err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", r.Scope().Annotate(fmt.Errorf("%w at offset %d", ErrInvalidString, r.Offset()-int(n)))
	}
	return string(b), nil
}

func writeUUID(w *dataview.Cursor, id uuid.UUID) error {
	return w.WriteBytes(id[:])
}

func readUUID(r *dataview.Cursor) (uuid.UUID, error) {
	b, err := r.ReadBytes(len(uuid.UUID{}))
	if err != nil {
		return uuid.Nil, err
	}
	return uuid.FromBytes(b)
}

// timeSize is the encoded size of a timestamp: i64 Unix seconds followed by
// u32 nanoseconds. The zero time.Time is an ordinary value (year 1) and
// round-trips like any other.
const timeSize = 8 + 4

// maxUnixSeconds is the latest second time.Time can hold; it counts from
// year 1, which lies 62135596800 seconds before the Unix epoch.
const maxUnixSeconds = math.MaxInt64 - 62135596800

func writeTime(w *dataview.Cursor, t time.Time) error {
	sec, nsec := t.Unix(), int64(t.Nanosecond())
	if !time.Unix(sec, nsec).Equal(t) {
		return w.Scope().Annotate(fmt.Errorf("%w: %s", ErrInvalidTime, t))
	}
	if err := w.SetInt64(sec); err != nil {
		return err
	}
	return w.SetUint32(uint32(nsec))
}

func readTime(r *dataview.Cursor) (time.Time, error) {
	sec, err := r.GetInt64()
	if err != nil {
		return time.Time{}, err
	}
	nsec, err := r.GetUint32()
	if err != nil {
		return time.Time{}, err
	}
	if nsec >= uint32(time.Second) {
		return time.Time{}, r.Scope().Annotate(fmt.Errorf("%w: %d nanoseconds", ErrInvalidTime, nsec))
	}
	if sec > maxUnixSeconds {
		return time.Time{}, r.Scope().Annotate(fmt.Errorf("%w: %d seconds", ErrInvalidTime, sec))
	}
	return time.Unix(sec, int64(nsec)).UTC(), nil
}

// field pushes name onto the cursor's scope for the duration of fn.
func field(c *dataview.Cursor, name string, fn func() error) error {
	defer c.Scope().Push(name)()
	return fn()
}
