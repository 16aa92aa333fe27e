package dataview

import (
	"encoding/binary"
	"math"
)

// WireOrder is the byte order of every multi-byte value on the wire. It is a
// format constant: the same bytes decode to the same values on any host.
var WireOrder = binary.BigEndian

// Byte widths of the fixed-size types.
const (
	sizeUint8   = 1
	sizeUint16  = 2
	sizeUint32  = 4
	sizeUint64  = 8
	sizeFloat32 = sizeUint32
	sizeFloat64 = sizeUint64
)

func float32FromWire(p []byte) float32 { return math.Float32frombits(WireOrder.Uint32(p)) }

func float64FromWire(p []byte) float64 { return math.Float64frombits(WireOrder.Uint64(p)) }

func float32ToWire(p []byte, v float32) { WireOrder.PutUint32(p, math.Float32bits(v)) }

func float64ToWire(p []byte, v float64) { WireOrder.PutUint64(p, math.Float64bits(v)) }
