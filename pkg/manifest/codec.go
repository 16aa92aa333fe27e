package manifest

import (
	"fmt"
	"math"

	"github.com/marmos91/dataview/pkg/dataview"
)

// rootFrame is the first breadcrumb of every encode and decode session.
const rootFrame = "manifest"

// EncodedSize returns the exact number of bytes Encode produces for f.
func EncodedSize(f Format) (int, error) {
	switch m := f.(type) {
	case *V1:
		if m == nil {
			return 0, ErrNilFormat
		}
		n := headerSize + strSize(m.Name) + 2
		for _, mod := range m.Modules {
			n += strSize(mod.Name) + strSize(mod.SchemaPath)
		}
		return n, nil
	case *V2:
		if m == nil {
			return 0, ErrNilFormat
		}
		n := headerSize + len(m.ID) + strSize(m.Name) + timeSize + 4
		for _, mod := range m.Modules {
			n += strSize(mod.Name) + strSize(mod.SchemaPath) + 8 + 4 + 1
		}
		return n, nil
	case nil:
		return 0, ErrNilFormat
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedVersion, f)
	}
}

// Encode serialises f into its wire form.
func Encode(f Format) ([]byte, error) {
	size, err := EncodedSize(f)
	if err != nil {
		return nil, err
	}

	scope := dataview.NewScope(rootFrame)
	w, err := dataview.NewWriter(size, dataview.WithScope(scope))
	if err != nil {
		return nil, err
	}

	if err := encodeHeader(w, f.Version()); err != nil {
		return nil, err
	}
	switch m := f.(type) {
	case *V1:
		err = encodeV1(w, m)
	case *V2:
		err = encodeV2(w, m)
	}
	if err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeHeader(w *dataview.Cursor, v Version) error {
	return field(w, "header", func() error {
		if err := w.WriteBytes(Magic[:]); err != nil {
			return err
		}
		return w.SetUint16(uint16(v))
	})
}

func encodeV1(w *dataview.Cursor, m *V1) error {
	if len(m.Modules) > math.MaxUint16 {
		return w.Scope().Annotate(fmt.Errorf("%w: %d (max %d)", ErrTooManyModules, len(m.Modules), math.MaxUint16))
	}
	if err := field(w, "name", func() error { return writeString(w, m.Name) }); err != nil {
		return err
	}
	if err := w.SetUint16(uint16(len(m.Modules))); err != nil {
		return err
	}
	for i, mod := range m.Modules {
		err := field(w, moduleFrame(i), func() error {
			if err := field(w, "name", func() error { return writeString(w, mod.Name) }); err != nil {
				return err
			}
			return field(w, "schema", func() error { return writeString(w, mod.SchemaPath) })
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func encodeV2(w *dataview.Cursor, m *V2) error {
	if uint64(len(m.Modules)) > math.MaxUint32 {
		return w.Scope().Annotate(fmt.Errorf("%w: %d (max %d)", ErrTooManyModules, len(m.Modules), uint64(math.MaxUint32)))
	}
	if err := writeUUID(w, m.ID); err != nil {
		return err
	}
	if err := field(w, "name", func() error { return writeString(w, m.Name) }); err != nil {
		return err
	}
	if err := field(w, "created", func() error { return writeTime(w, m.CreatedAt) }); err != nil {
		return err
	}
	if err := w.SetUint32(uint32(len(m.Modules))); err != nil {
		return err
	}
	for i, mod := range m.Modules {
		err := field(w, moduleFrame(i), func() error {
			if err := field(w, "name", func() error { return writeString(w, mod.Name) }); err != nil {
				return err
			}
			if err := field(w, "schema", func() error { return writeString(w, mod.SchemaPath) }); err != nil {
				return err
			}
			if err := w.SetUint64(mod.Size); err != nil {
				return err
			}
			if err := w.SetUint32(mod.Checksum); err != nil {
				return err
			}
			return w.SetUint8(uint8(mod.Flags))
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// DecodeOption configures Decode.
type DecodeOption func(*decodeOptions)

type decodeOptions struct {
	maxSize int
}

// WithMaxSize rejects inputs larger than n bytes before any parsing.
// The default is dataview.BlockMaxSize.
func WithMaxSize(n int) DecodeOption {
	return func(o *decodeOptions) { o.maxSize = n }
}

// Decode parses an encoded manifest. The concrete type of the result is
// *V1 or *V2, matching the version in the header.
func Decode(data []byte, opts ...DecodeOption) (Format, error) {
	o := decodeOptions{maxSize: dataview.BlockMaxSize}
	for _, opt := range opts {
		opt(&o)
	}
	if o.maxSize > 0 && len(data) > o.maxSize {
		return nil, fmt.Errorf("%s: %w: %d bytes exceeds limit of %d", rootFrame, ErrTooLarge, len(data), o.maxSize)
	}

	scope := dataview.NewScope(rootFrame)
	r, err := dataview.New(data, dataview.WithScope(scope))
	if err != nil {
		return nil, err
	}

	version, err := decodeHeader(r)
	if err != nil {
		return nil, err
	}

	var f Format
	switch version {
	case Version1:
		f, err = decodeV1(r)
	case Version2:
		f, err = decodeV2(r)
	}
	if err != nil {
		return nil, err
	}

	if r.Remaining() != 0 {
		return nil, scope.Annotate(fmt.Errorf("%w: %d bytes at offset %d", ErrTrailingData, r.Remaining(), r.Offset()))
	}
	return f, nil
}

// PeekVersion reads only the header of data and returns its format version.
func PeekVersion(data []byte) (Version, error) {
	r, err := dataview.New(data, dataview.WithScope(dataview.NewScope(rootFrame)))
	if err != nil {
		return 0, err
	}
	return decodeHeader(r)
}

func decodeHeader(r *dataview.Cursor) (Version, error) {
	var v Version
	err := field(r, "header", func() error {
		magic, err := r.ReadBytes(len(Magic))
		if err != nil {
			return err
		}
		if [4]byte(magic) != Magic {
			return r.Scope().Annotate(fmt.Errorf("%w %q", ErrBadMagic, magic))
		}
		raw, err := r.GetUint16()
		if err != nil {
			return err
		}
		v = Version(raw)
		if !v.Supported() {
			return r.Scope().Annotate(fmt.Errorf("%w %d", ErrUnsupportedVersion, raw))
		}
		return nil
	})
	return v, err
}

func decodeV1(r *dataview.Cursor) (*V1, error) {
	m := &V1{}
	var err error
	if err = field(r, "name", func() error { m.Name, err = readString(r); return err }); err != nil {
		return nil, err
	}

	var count uint16
	err = field(r, "count", func() error {
		if count, err = r.GetUint16(); err != nil {
			return err
		}
		return r.EnsureRemaining(int(count) * minModuleV1Size)
	})
	if err != nil {
		return nil, err
	}

	if count > 0 {
		m.Modules = make([]ModuleV1, count)
	}
	for i := range m.Modules {
		mod := &m.Modules[i]
		err := field(r, moduleFrame(i), func() error {
			var err error
			if err = field(r, "name", func() error { mod.Name, err = readString(r); return err }); err != nil {
				return err
			}
			return field(r, "schema", func() error { mod.SchemaPath, err = readString(r); return err })
		})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func decodeV2(r *dataview.Cursor) (*V2, error) {
	m := &V2{}
	var err error
	if err = field(r, "id", func() error { m.ID, err = readUUID(r); return err }); err != nil {
		return nil, err
	}
	if err = field(r, "name", func() error { m.Name, err = readString(r); return err }); err != nil {
		return nil, err
	}
	if err = field(r, "created", func() error { m.CreatedAt, err = readTime(r); return err }); err != nil {
		return nil, err
	}

	var count uint32
	err = field(r, "count", func() error {
		if count, err = r.GetUint32(); err != nil {
			return err
		}
		return r.EnsureRemaining(int(count) * minModuleV2Size)
	})
	if err != nil {
		return nil, err
	}

	if count > 0 {
		m.Modules = make([]Module, count)
	}
	for i := range m.Modules {
		mod := &m.Modules[i]
		err := field(r, moduleFrame(i), func() error {
			var err error
			if err = field(r, "name", func() error { mod.Name, err = readString(r); return err }); err != nil {
				return err
			}
			if err = field(r, "schema", func() error { mod.SchemaPath, err = readString(r); return err }); err != nil {
				return err
			}
			if mod.Size, err = r.GetUint64(); err != nil {
				return err
			}
			if mod.Checksum, err = r.GetUint32(); err != nil {
				return err
			}
			flags, err := r.GetUint8()
			mod.Flags = ModuleFlags(flags)
			return err
		})
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

func moduleFrame(i int) string {
	return fmt.Sprintf("modules[%d]", i)
}
