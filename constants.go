package pcmconv

// Filter design defaults. The interpolation resolution between filter
// taps is 1<<(bitDepth/2+1) positions per zero crossing, so the
// default bit depth of 16 gives 512 positions.
const (
	// DefaultZeroCrossings is the default number of sinc lobes on each
	// side of the interpolation point.
	DefaultZeroCrossings = 5

	// DefaultStopbandDb is the default stopband attenuation used to
	// derive the Kaiser window shape.
	DefaultStopbandDb = 80.0

	// DefaultBitDepth is the effective sample precision the filter
	// table resolution is matched to.
	DefaultBitDepth = 16

	// DefaultBufferFrames is the default staging buffer page size.
	DefaultBufferFrames = 1024
)

// MaxChannels is the largest channel count accepted by any component.
const MaxChannels = 255

// Common sample rates, for convenience constructors.
const (
	RateCD  = 44100
	RateDAT = 48000
)

// minStagingFrames returns the smallest staging capacity that keeps a
// full convolution window of 2*zeroCrossings+2 frames resident, per
// page, rounded to a power of two.
func minStagingFrames(zeroCrossings int) int {
	return nextPowerOfTwo(2*zeroCrossings + 2)
}

// nextPowerOfTwo returns the power of two greater than or equal to x.
func nextPowerOfTwo(x int) int {
	x--
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return x + 1
}
