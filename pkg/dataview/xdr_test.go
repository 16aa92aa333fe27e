package dataview

import (
	"bytes"
	"math"
	"testing"

	xdr "github.com/rasky/go-xdr/xdr2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// XDR (RFC 4506) encodes 32 and 64 bit integers and IEEE floats big-endian,
// so its output must match the cursor byte for byte.

type xdrScalars struct {
	I32 int32
	U32 uint32
	I64 int64
	U64 uint64
	F32 float32
	F64 float64
}

func TestXDRInterop(t *testing.T) {
	in := xdrScalars{
		I32: -123456,
		U32: 0xDEADBEEF,
		I64: math.MinInt64 + 7,
		U64: 0x0102030405060708,
		F32: -2.5,
		F64: math.Pi,
	}

	var ref bytes.Buffer
	_, err := xdr.Marshal(&ref, &in)
	require.NoError(t, err)

	t.Run("CursorMatchesXDREncoding", func(t *testing.T) {
		w, err := NewWriter(ref.Len())
		require.NoError(t, err)
		require.NoError(t, w.SetInt32(in.I32))
		require.NoError(t, w.SetUint32(in.U32))
		require.NoError(t, w.SetInt64(in.I64))
		require.NoError(t, w.SetUint64(in.U64))
		require.NoError(t, w.SetFloat32(in.F32))
		require.NoError(t, w.SetFloat64(in.F64))
		assert.Equal(t, 0, w.Remaining())
		assert.Equal(t, ref.Bytes(), w.Bytes())
	})

	t.Run("CursorDecodesXDREncoding", func(t *testing.T) {
		r, err := New(ref.Bytes())
		require.NoError(t, err)

		var out xdrScalars
		out.I32, err = r.GetInt32()
		require.NoError(t, err)
		out.U32, err = r.GetUint32()
		require.NoError(t, err)
		out.I64, err = r.GetInt64()
		require.NoError(t, err)
		out.U64, err = r.GetUint64()
		require.NoError(t, err)
		out.F32, err = r.GetFloat32()
		require.NoError(t, err)
		out.F64, err = r.GetFloat64()
		require.NoError(t, err)

		assert.Equal(t, in, out)
	})

	t.Run("XDRDecodesCursorEncoding", func(t *testing.T) {
		w, err := NewWriter(ref.Len())
		require.NoError(t, err)
		require.NoError(t, w.SetInt32(in.I32))
		require.NoError(t, w.SetUint32(in.U32))
		require.NoError(t, w.SetInt64(in.I64))
		require.NoError(t, w.SetUint64(in.U64))
		require.NoError(t, w.SetFloat32(in.F32))
		require.NoError(t, w.SetFloat64(in.F64))

		var out xdrScalars
		_, err = xdr.Unmarshal(bytes.NewReader(w.Bytes()), &out)
		require.NoError(t, err)
		assert.Equal(t, in, out)
	})
}
