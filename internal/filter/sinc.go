// Package filter builds the Kaiser-windowed sinc tables used for
// bandlimited interpolation, as described in
// https://ccrma.stanford.edu/~jos/resample/Implementation.html
package filter

import (
	"math"

	"github.com/audiotk/pcmconv/internal/mathutil"
)

// SincTable holds one wing of a Kaiser-windowed sinc filter, sampled at
// PerCrossing points per zero crossing, together with the first
// differences of adjacent taps. The differences allow the resampler to
// linearly interpolate between tap columns at runtime without a second
// table lookup.
//
// The table is one-sided: Taps[0] is the center of the sinc (value 1)
// and Taps[i] is the response at i/PerCrossing zero-crossing widths
// from the center. The filter is symmetric, so the left wing reuses the
// same table.
type SincTable struct {
	// Taps holds Size+1 coefficients; the final slot is window-only
	// padding from the half-window fill and is never convolved.
	Taps []float32

	// Diffs[i] = Taps[i+1] - Taps[i], with Diffs[Size-1] = 0.
	Diffs []float32

	// Size is the number of usable taps: PerCrossing*ZeroCrossings + 1.
	Size int

	// ZeroCrossings is the number of sinc lobes on each wing.
	ZeroCrossings int

	// PerCrossing is the number of table entries per zero crossing.
	PerCrossing int
}

// NewSincTable designs a one-sided Kaiser-windowed sinc filter with the
// given number of zero crossings, interpolation resolution, and
// stopband attenuation in dB.
func NewSincTable(zeroCrossings, perCrossing int, stopbandDb float64) *SincTable {
	size := perCrossing*zeroCrossings + 1
	beta := mathutil.KaiserBeta(stopbandDb)

	t := &SincTable{
		Taps:          make([]float32, size+1),
		Diffs:         make([]float32, size),
		Size:          size,
		ZeroCrossings: zeroCrossings,
		PerCrossing:   perCrossing,
	}

	// Right half of a Kaiser window of length 2*size+1, center included.
	i0Beta := mathutil.BesselI0(beta)
	for i := 0; i <= size; i++ {
		x := float64(i) / float64(size)
		t.Taps[i] = float32(mathutil.BesselI0(beta*math.Sqrt(1-x*x)) / i0Beta)
	}

	// Multiply in the sinc and accumulate first differences.
	for i := 1; i < size; i++ {
		x := math.Pi * float64(i) / float64(perCrossing)
		t.Taps[i] *= float32(math.Sin(x) / x)
		t.Diffs[i-1] = t.Taps[i] - t.Taps[i-1]
	}
	t.Diffs[size-1] = 0

	return t
}
