// Package manifest defines the versioned manifest formats and moves them to
// and from their binary wire form through a dataview.Cursor.
//
// Every encoded manifest starts with a fixed header:
//
//	magic    4 bytes  "DVMF"
//	version  u16      1 or 2
//
// followed by the body of that version. All integers are big-endian and
// strings are length-prefixed with a u16 byte count (str16):
//
//	V1: name str16 | count u16 | count x (name str16 | schema str16)
//	V2: id [16]byte | name str16 | created (i64 sec, u32 nsec) | count u32 |
//	    count x (name str16 | schema str16 | size u64 | checksum u32 | flags u8)
//
// created is Unix seconds plus a nanosecond remainder below 1e9, always
// decoded in UTC.
//
// Decoded values are one of the Format implementations, *V1 or *V2.
// Upgrade converts either into the latest format:
//
//	f, err := manifest.Decode(data, manifest.WithMaxSize(16<<20))
//	if err != nil {
//	    return err
//	}
//	latest, err := manifest.Upgrade(f)
//
// Decode errors carry a breadcrumb naming where decoding stopped, e.g.
//
//	manifest > modules[2] > schema: IndexOutOfRange: ReadBytes needs 40 bytes at offset 91, window [0, 120)
package manifest
