package manifest

import "errors"

var (
	// ErrBadMagic means the input does not start with the manifest magic.
	ErrBadMagic = errors.New("bad magic")

	// ErrUnsupportedVersion means the header names an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrTrailingData means bytes remain after a complete manifest.
	ErrTrailingData = errors.New("trailing data after manifest")

	// ErrStringTooLong means a string does not fit a 16-bit length prefix.
	ErrStringTooLong = errors.New("string too long")

	// ErrTooManyModules means the module list does not fit the count field.
	ErrTooManyModules = errors.New("too many modules")

	// ErrTooLarge means the input exceeds the configured maximum size.
	ErrTooLarge = errors.New("input too large")

	// ErrInvalidString means a string field is not valid UTF-8.
	ErrInvalidString = errors.New("invalid UTF-8 string")

	// ErrInvalidTime means a timestamp cannot be represented on the wire or
	// decodes to an impossible value.
	ErrInvalidTime = errors.New("invalid timestamp")

	// ErrNilFormat is returned when a nil Format is passed in.
	ErrNilFormat = errors.New("nil manifest format")
)
