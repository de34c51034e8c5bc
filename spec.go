package pcmconv

import (
	"fmt"

	"github.com/audiotk/pcmconv/internal/pcm"
)

// SampleFormat identifies the encoding and byte order of raw PCM
// sample data. Integer formats are normalized to [-1,1] floats inside
// the engine and saturated at the rails on the way back out.
type SampleFormat = pcm.Format

// Supported sample formats. Multi-byte formats come in little endian
// (LSB) and big endian (MSB) variants.
const (
	S8     = pcm.S8
	U8     = pcm.U8
	S16LSB = pcm.S16LSB
	S16MSB = pcm.S16MSB
	U16LSB = pcm.U16LSB
	U16MSB = pcm.U16MSB
	S24LSB = pcm.S24LSB
	S24MSB = pcm.S24MSB
	S32LSB = pcm.S32LSB
	S32MSB = pcm.S32MSB
	U32LSB = pcm.U32LSB
	U32MSB = pcm.U32MSB
	F32LSB = pcm.F32LSB
	F32MSB = pcm.F32MSB
)

// ParseFormat returns the sample format with the given short name,
// such as "s16le" or "f32be".
func ParseFormat(s string) (SampleFormat, error) {
	return pcm.Parse(s)
}

// StreamSpec describes one side of a conversion: the sample encoding,
// channel count and sample rate of a PCM stream, plus a page size hint
// used to size internal buffers.
type StreamSpec struct {
	// Format is the sample encoding of the raw byte stream.
	Format SampleFormat

	// Channels is the number of interleaved channels (1 to 255).
	Channels int

	// Rate is the sample rate in Hz.
	Rate int

	// Frames hints at how many frames move through the stream per
	// read. Zero selects DefaultBufferFrames.
	Frames int
}

// Validate checks if the stream spec is valid.
func (s StreamSpec) Validate() error {
	if !s.Format.Valid() {
		return fmt.Errorf("%w: unknown sample format %d", ErrInvalidConfig, int(s.Format))
	}
	if s.Channels < 1 || s.Channels > MaxChannels {
		return fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidConfig, MaxChannels, s.Channels)
	}
	if s.Rate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive, got %d", ErrInvalidConfig, s.Rate)
	}
	if s.Frames < 0 {
		return fmt.Errorf("%w: frame hint must be non-negative, got %d", ErrInvalidConfig, s.Frames)
	}
	return nil
}

// FrameSize returns the size in bytes of one interleaved frame.
func (s StreamSpec) FrameSize() int {
	return s.Format.Bytes() * s.Channels
}

// pageFrames returns the frame hint with the default applied.
func (s StreamSpec) pageFrames() int {
	if s.Frames > 0 {
		return s.Frames
	}
	return DefaultBufferFrames
}

// SampleProducer supplies interleaved float32 samples to a Resampler.
// It writes whole frames into dst and returns the number of samples
// written, which may be less than len(dst). Returning 0 signals a
// clean end of stream.
type SampleProducer func(dst []float32) int

// ByteProducer supplies raw PCM bytes in a Converter's input format.
// It writes up to len(dst) bytes and returns the number written.
// Returning 0 signals a clean end of stream.
type ByteProducer func(dst []byte) int
