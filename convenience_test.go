package pcmconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRateConverter(t *testing.T) {
	r, err := NewRateConverter(2, RateCD, RateDAT)
	require.NoError(t, err)
	assert.Equal(t, 2, r.Channels())
	assert.Equal(t, DefaultZeroCrossings, r.Latency())

	_, err = NewRateConverter(0, RateCD, RateDAT)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewLayoutConverter(t *testing.T) {
	d, err := NewLayoutConverter(6, 2)
	require.NoError(t, err)
	assert.Equal(t, 6, d.InChannels())
	assert.Equal(t, 2, d.OutChannels())

	_, err = NewLayoutConverter(2, 0)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewFormatConverter(t *testing.T) {
	c, err := NewFormatConverter(S16LSB, S16MSB, 1, RateCD)
	require.NoError(t, err)

	// Full scale survives the byte-order change exactly.
	_, err = c.Push([]byte{0xFF, 0x7F, 0x00, 0x80})
	require.NoError(t, err)

	out := make([]byte, 8)
	n, err := c.Poll(out)
	require.NoError(t, err)
	require.Equal(t, 4, n)
	assert.Equal(t, []byte{0x7F, 0xFF, 0x80, 0x00}, out[:4])
}

func TestConvertFormat(t *testing.T) {
	// Full scale 16 bit saturates at the 32 bit rails.
	src := []byte{0xFF, 0x7F, 0x00, 0x80}
	dst := make([]byte, 8)
	n, err := ConvertFormat(dst, S32LSB, src, S16LSB)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0x7F}, dst[:4])
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x80}, dst[4:])
}

func TestConvertFormatEndianSwap(t *testing.T) {
	// 0x1234 has low bits the float path would round away, so an exact
	// result proves the samples were byte swapped, not re-encoded.
	src := []byte{0x34, 0x12, 0xFF, 0x7F}
	dst := make([]byte, 4)
	n, err := ConvertFormat(dst, S16MSB, src, S16LSB)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0x12, 0x34, 0x7F, 0xFF}, dst)

	// Floats swap bit exact as well.
	src = []byte{0x01, 0x02, 0x03, 0x04}
	n, err = ConvertFormat(dst, F32MSB, src, F32LSB)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, dst)
}

func TestConvertFormatSame(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5}
	dst := make([]byte, 4)
	n, err := ConvertFormat(dst, S16LSB, src, S16LSB)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, src[:4], dst)
}

func TestConvertFormatInvalid(t *testing.T) {
	dst := make([]byte, 8)
	_, err := ConvertFormat(dst, SampleFormat(99), dst, S16LSB)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	n, err := ConvertFormat(dst[:0], S16LSB, dst, S16LSB)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
