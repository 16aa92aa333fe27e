// Package bytesize parses and formats human-readable byte sizes such as
// "16Mi" or "64MB" for configuration files and environment variables.
package bytesize

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ByteSize is a size in bytes.
//
// Accepted input: a non-negative integer or decimal number followed by an
// optional, case-insensitive unit. Binary units (Ki, Mi, Gi, Ti, with or
// without a trailing B) multiply by powers of 1024; decimal units (K, M, G,
// T, with or without B) by powers of 1000. "B" or no unit means bytes.
type ByteSize uint64

const (
	B  ByteSize = 1
	KB ByteSize = 1000
	MB ByteSize = 1000 * KB
	GB ByteSize = 1000 * MB
	TB ByteSize = 1000 * GB

	KiB ByteSize = 1024
	MiB ByteSize = 1024 * KiB
	GiB ByteSize = 1024 * MiB
	TiB ByteSize = 1024 * GiB
)

var (
	ErrEmpty    = errors.New("bytesize: empty value")
	ErrSyntax   = errors.New("bytesize: invalid syntax")
	ErrUnit     = errors.New("bytesize: unknown unit")
	ErrOverflow = errors.New("bytesize: value overflows uint64")
)

var units = map[string]ByteSize{
	"": B, "b": B,
	"k": KB, "kb": KB,
	"m": MB, "mb": MB,
	"g": GB, "gb": GB,
	"t": TB, "tb": TB,
	"ki": KiB, "kib": KiB,
	"mi": MiB, "mib": MiB,
	"gi": GiB, "gib": GiB,
	"ti": TiB, "tib": TiB,
}

// canonical suffixes for String, largest first
var binarySuffixes = []struct {
	unit   ByteSize
	suffix string
}{
	{TiB, "Ti"},
	{GiB, "Gi"},
	{MiB, "Mi"},
	{KiB, "Ki"},
}

// Parse converts s into a ByteSize.
func Parse(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrEmpty
	}

	split := strings.IndexFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	num, unit := s, ""
	if split >= 0 {
		num, unit = s[:split], strings.TrimSpace(s[split:])
	}
	if num == "" {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	mult, ok := units[strings.ToLower(unit)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnit, unit)
	}

	if !strings.Contains(num, ".") {
		n, err := strconv.ParseUint(num, 10, 64)
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
			}
			return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
		}
		if n > math.MaxUint64/uint64(mult) {
			return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
		}
		return ByteSize(n) * mult, nil
	}

	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	v := f * float64(mult)
	if v >= math.MaxUint64 {
		return 0, fmt.Errorf("%w: %q", ErrOverflow, s)
	}
	return ByteSize(v), nil
}

// MustParse is like Parse but panics on error. Intended for defaults.
func MustParse(s string) ByteSize {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// String renders b with the largest binary unit that divides it exactly,
// so the result parses back to the same value ("16Mi", "1536Ki", "17").
func (b ByteSize) String() string {
	if b == 0 {
		return "0"
	}
	for _, s := range binarySuffixes {
		if b%s.unit == 0 {
			return strconv.FormatUint(uint64(b/s.unit), 10) + s.suffix
		}
	}
	return strconv.FormatUint(uint64(b), 10)
}

// MarshalText implements encoding.TextMarshaler.
func (b ByteSize) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// Int returns b as an int, saturating at math.MaxInt.
func (b ByteSize) Int() int {
	if uint64(b) > math.MaxInt {
		return math.MaxInt
	}
	return int(b)
}
