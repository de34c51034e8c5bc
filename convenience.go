package pcmconv

import (
	"fmt"

	"github.com/audiotk/pcmconv/internal/pcm"
)

// NewRateConverter returns a resampler between the two rates using the
// default filter design, fed by Push.
func NewRateConverter(channels, inRate, outRate int) (*Resampler, error) {
	return NewResampler(ResamplerConfig{
		Channels: channels,
		InRate:   inRate,
		OutRate:  outRate,
	})
}

// NewLayoutConverter returns a redistributor between two standard
// speaker layouts using the built-in mix coefficients.
func NewLayoutConverter(inChannels, outChannels int) (*Redistributor, error) {
	return NewRedistributor(inChannels, outChannels, nil)
}

// NewFormatConverter returns a converter that only changes the sample
// format, leaving rate and channel count alone, fed by Push.
func NewFormatConverter(in, out SampleFormat, channels, rate int) (*Converter, error) {
	return NewConverter(
		StreamSpec{Format: in, Channels: channels, Rate: rate},
		StreamSpec{Format: out, Channels: channels, Rate: rate},
		nil,
	)
}

// ConvertFormat converts raw samples in src from one sample format to
// another, writing the result to dst and returning the number of
// samples converted. The count is bounded by whichever buffer runs out
// first. Conversion passes through float32, saturating integer formats
// at the rails.
func ConvertFormat(dst []byte, out SampleFormat, src []byte, in SampleFormat) (int, error) {
	if !in.Valid() || !out.Valid() {
		return 0, fmt.Errorf("%w: unknown sample format", ErrInvalidConfig)
	}
	n := len(src) / in.Bytes()
	if m := len(dst) / out.Bytes(); m < n {
		n = m
	}
	if n == 0 {
		return 0, nil
	}
	if in == out {
		copy(dst, src[:n*in.Bytes()])
		return n, nil
	}
	// The same encoding in the opposite byte order needs only a byte
	// swap, which keeps every sample bit exact where the float path
	// would round. The 3 byte formats still take the float path.
	if swapped, ok := in.ByteSwapped(); ok && swapped == out {
		nb := n * in.Bytes()
		copy(dst[:nb], src[:nb])
		switch in.Bytes() {
		case 2:
			pcm.Swap16(dst[:nb])
			return n, nil
		case 4:
			pcm.Swap32(dst[:nb])
			return n, nil
		}
	}
	scratch := make([]float32, n)
	pcm.ToFloat32(scratch, src, in)
	pcm.FromFloat32(dst, scratch, out)
	return n, nil
}
