package pcm

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	decodeTolerance    = 1e-6
	roundTripTolerance = 1e-4
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		format Format
		bytes  int
	}{
		{S8, 1}, {U8, 1},
		{S16LSB, 2}, {S16MSB, 2}, {U16LSB, 2}, {U16MSB, 2},
		{S24LSB, 3}, {S24MSB, 3},
		{S32LSB, 4}, {S32MSB, 4}, {U32LSB, 4}, {U32MSB, 4},
		{F32LSB, 4}, {F32MSB, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.bytes, tt.format.Bytes(), tt.format.String())
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	formats := []Format{
		S8, U8, S16LSB, S16MSB, U16LSB, U16MSB,
		S24LSB, S24MSB, S32LSB, S32MSB, U32LSB, U32MSB,
		F32LSB, F32MSB,
	}
	for _, f := range formats {
		got, err := Parse(f.String())
		require.NoError(t, err, f.String())
		assert.Equal(t, f, got)
	}

	_, err := Parse("s12le")
	assert.Error(t, err)
}

func TestFormatByteSwapped(t *testing.T) {
	for f := S16LSB; f <= F32MSB; f++ {
		other, ok := f.ByteSwapped()
		require.True(t, ok, f.String())
		assert.NotEqual(t, f, other)
		assert.Equal(t, f.Bytes(), other.Bytes())
		assert.Equal(t, f.BigEndian(), !other.BigEndian())

		back, ok := other.ByteSwapped()
		require.True(t, ok)
		assert.Equal(t, f, back)
	}

	for _, f := range []Format{S8, U8} {
		same, ok := f.ByteSwapped()
		assert.False(t, ok)
		assert.Equal(t, f, same)
	}
}

func TestDecodeS8(t *testing.T) {
	src := []byte{0x00, 0x7F, 0x80, 0x81, 0x01}
	dst := make([]float32, len(src))
	require.Equal(t, len(src), ToFloat32(dst, src, S8))

	assert.Equal(t, float32(0), dst[0])
	assert.Equal(t, float32(1), dst[1])
	assert.Equal(t, float32(-1), dst[2], "minimum byte maps to the negative rail")
	assert.InDelta(t, -1.0, float64(dst[3]), decodeTolerance)
	assert.InDelta(t, 1.0/127.0, float64(dst[4]), decodeTolerance)
}

func TestDecodeU8(t *testing.T) {
	src := []byte{0, 127, 254, 255}
	dst := make([]float32, len(src))
	require.Equal(t, len(src), ToFloat32(dst, src, U8))

	assert.Equal(t, float32(-1), dst[0])
	assert.Equal(t, float32(0), dst[1])
	assert.Equal(t, float32(1), dst[2])
	assert.Equal(t, float32(1), dst[3], "both top codes saturate")
}

func TestDecodeS16(t *testing.T) {
	samples := []int16{0, 32767, -32768, -32767, 16384}
	want := []float32{0, 1, -1, -1, 16384.0 / 32767.0}

	src := make([]byte, 2*len(samples))
	for i, s := range samples {
		binary.LittleEndian.PutUint16(src[2*i:], uint16(s))
	}
	dst := make([]float32, len(samples))
	require.Equal(t, len(samples), ToFloat32(dst, src, S16LSB))
	for i := range want {
		assert.InDelta(t, float64(want[i]), float64(dst[i]), decodeTolerance, "sample %d", i)
	}
}

func TestDecodeU16SpecialCodes(t *testing.T) {
	src := make([]byte, 6)
	binary.LittleEndian.PutUint16(src[0:], 0)
	binary.LittleEndian.PutUint16(src[2:], 32767)
	binary.LittleEndian.PutUint16(src[4:], 65535)

	dst := make([]float32, 3)
	require.Equal(t, 3, ToFloat32(dst, src, U16LSB))
	assert.Equal(t, float32(0), dst[0], "zero code is exact silence")
	assert.Equal(t, float32(0), dst[1], "midpoint decodes to zero")
	assert.Equal(t, float32(1), dst[2])
}

func TestDecodeEndianness(t *testing.T) {
	// 0x4000 = 16384: byte order determines which format reads it.
	src := []byte{0x00, 0x40}
	le := make([]float32, 1)
	be := make([]float32, 1)

	require.Equal(t, 1, ToFloat32(le, src, S16LSB))
	require.Equal(t, 1, ToFloat32(be, src, S16MSB))

	assert.InDelta(t, 16384.0/32767.0, float64(le[0]), decodeTolerance)
	assert.InDelta(t, 64.0/32767.0, float64(be[0]), decodeTolerance)
}

func TestDecodeS32IgnoresLowByte(t *testing.T) {
	src := make([]byte, 8)
	binary.LittleEndian.PutUint32(src[0:], uint32(int32(256)<<8))
	binary.LittleEndian.PutUint32(src[4:], uint32(int32(256)<<8)|0xFF)

	dst := make([]float32, 2)
	require.Equal(t, 2, ToFloat32(dst, src, S32LSB))
	assert.Equal(t, dst[0], dst[1], "low byte must not affect the decoded value")
	assert.InDelta(t, 256.0/8388607.0, float64(dst[0]), decodeTolerance)
}

func TestDecodeF32(t *testing.T) {
	want := []float32{0, 0.25, -0.75, 1}
	src := make([]byte, 4*len(want))
	for i, v := range want {
		binary.LittleEndian.PutUint32(src[4*i:], math.Float32bits(v))
	}
	dst := make([]float32, len(want))
	require.Equal(t, len(want), ToFloat32(dst, src, F32LSB))
	assert.Equal(t, want, dst)
}

func TestEncodeSaturation(t *testing.T) {
	src := []float32{1.5, -1.5}

	tests := []struct {
		format   Format
		pos, neg []byte
	}{
		{S8, []byte{0x7F}, []byte{0x80}},
		{U8, []byte{0xFF}, []byte{0x00}},
		{S16LSB, []byte{0xFF, 0x7F}, []byte{0x00, 0x80}},
		{U16LSB, []byte{0xFF, 0xFF}, []byte{0x00, 0x00}},
		{S24LSB, []byte{0xFF, 0xFF, 0x7F}, []byte{0x00, 0x00, 0x80}},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			dst := make([]byte, 2*tt.format.Bytes())
			require.Equal(t, 2, FromFloat32(dst, src, tt.format))
			assert.Equal(t, tt.pos, dst[:tt.format.Bytes()], "positive rail")
			assert.Equal(t, tt.neg, dst[tt.format.Bytes():], "negative rail")
		})
	}
}

func TestEncode24RoundTrip(t *testing.T) {
	want := []float32{-1, -0.5, 0, 0.25, 0.999, 1}

	for _, f := range []Format{S24LSB, S24MSB} {
		t.Run(f.String(), func(t *testing.T) {
			enc := make([]byte, 3*len(want))
			require.Equal(t, len(want), FromFloat32(enc, want, f))

			dec := make([]float32, len(want))
			require.Equal(t, len(want), ToFloat32(dec, enc, f))
			for i := range want {
				assert.InDelta(t, float64(want[i]), float64(dec[i]), roundTripTolerance, "sample %d", i)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	formats := []Format{
		S8, U8, S16LSB, S16MSB, U16LSB, U16MSB,
		S24LSB, S24MSB, S32LSB, S32MSB, U32LSB, U32MSB,
		F32LSB, F32MSB,
	}

	want := make([]float32, 101)
	for i := range want {
		want[i] = float32(i-50) / 50.0
	}

	for _, f := range formats {
		t.Run(f.String(), func(t *testing.T) {
			tol := roundTripTolerance
			if f.Bytes() == 1 {
				tol = 1.0 / 127.0
			}

			samples := want
			if f == U16LSB || f == U16MSB {
				// The unsigned 16 bit zero code decodes to exact
				// silence, so the negative rail does not round trip.
				samples = want[1:]
			}

			enc := make([]byte, f.Bytes()*len(samples))
			require.Equal(t, len(samples), FromFloat32(enc, samples, f))

			dec := make([]float32, len(samples))
			require.Equal(t, len(samples), ToFloat32(dec, enc, f))
			for i := range samples {
				assert.InDelta(t, float64(samples[i]), float64(dec[i]), tol, "sample %d", i)
			}
		})
	}
}

func TestU16NegativeRailDecodesToSilence(t *testing.T) {
	for _, f := range []Format{U16LSB, U16MSB} {
		t.Run(f.String(), func(t *testing.T) {
			enc := make([]byte, 2)
			require.Equal(t, 1, FromFloat32(enc, []float32{-1}, f))
			assert.Equal(t, []byte{0, 0}, enc)

			dec := make([]float32, 1)
			require.Equal(t, 1, ToFloat32(dec, enc, f))
			assert.Equal(t, float32(0), dec[0], "zero code is exact silence, not the negative rail")
		})
	}
}

func TestPartialBuffers(t *testing.T) {
	src := make([]byte, 7) // three and a half 16 bit samples
	dst := make([]float32, 8)
	assert.Equal(t, 3, ToFloat32(dst, src, S16LSB))

	small := make([]float32, 2)
	assert.Equal(t, 2, ToFloat32(small, src, S16LSB))

	out := make([]byte, 5)
	assert.Equal(t, 2, FromFloat32(out, dst, S16LSB))
}

func TestSwap16(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5}
	Swap16(buf)
	assert.Equal(t, []byte{2, 1, 4, 3, 5}, buf)
}

func TestSwap32(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6}
	Swap32(buf)
	assert.Equal(t, []byte{4, 3, 2, 1, 5, 6}, buf)
}
