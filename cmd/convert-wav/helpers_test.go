package main

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiotk/pcmconv"
)

func TestWavFormat(t *testing.T) {
	tests := []struct {
		bitDepth int
		want     pcmconv.SampleFormat
	}{
		{8, pcmconv.U8},
		{16, pcmconv.S16LSB},
		{24, pcmconv.S24LSB},
		{32, pcmconv.S32LSB},
	}
	for _, tt := range tests {
		got, err := wavFormat(tt.bitDepth)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := wavFormat(12)
	assert.Error(t, err)
}

func TestSampleBytesRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		bitDepth int
		samples  []int
	}{
		{"8 bit", 8, []int{0, 1, 127, 128, 255}},
		{"16 bit", 16, []int{0, 1, -1, 32767, -32768}},
		{"24 bit", 24, []int{0, 1, -1, 8388607, -8388608}},
		{"32 bit", 32, []int{0, 1, -1, 2147483647, -2147483648}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := intsToBytes(tt.samples, tt.bitDepth)
			assert.Len(t, raw, len(tt.samples)*tt.bitDepth/8)
			assert.Equal(t, tt.samples, bytesToInts(raw, tt.bitDepth))
		})
	}
}

func TestApplyGain(t *testing.T) {
	// -6.0206 dB is a factor of one half.
	data := make([]byte, 4)
	pos, neg := int16(20000), int16(-8000)
	binary.LittleEndian.PutUint16(data[0:], uint16(pos))
	binary.LittleEndian.PutUint16(data[2:], uint16(neg))

	applyGain(data, pcmconv.S16LSB, -6.0206)

	assert.InDelta(t, 10000, int(int16(binary.LittleEndian.Uint16(data[0:]))), 2)
	assert.InDelta(t, -4000, int(int16(binary.LittleEndian.Uint16(data[2:]))), 2)

	// Boosting past full scale saturates instead of wrapping.
	data = []byte{0xFF, 0x7F}
	applyGain(data, pcmconv.S16LSB, 20)
	assert.Equal(t, []byte{0xFF, 0x7F}, data)
}

func TestByteOrderLittleEndian(t *testing.T) {
	raw := intsToBytes([]int{0x0102}, 16)
	assert.Equal(t, []byte{0x02, 0x01}, raw)

	raw = intsToBytes([]int{0x010203}, 24)
	assert.Equal(t, []byte{0x03, 0x02, 0x01}, raw)
}
