// Package vecops provides the small vector-arithmetic kernel shared by
// the resampler, redistributor and tooling. Contiguous hot paths
// delegate to github.com/tphakala/simd; the strided peak scan falls
// back to a plain loop since the SIMD package operates on dense slices
// only.
package vecops

import (
	"math"

	"github.com/tphakala/simd/f32"
)

const (
	// dB conversion uses the amplitude convention, 20*log10.
	dbPerDecade = 20.0

	// Floor applied before taking log10 to keep silence finite.
	minLinear = 1e-10
)

// Clear zeroes every element of dst.
func Clear(dst []float32) {
	for i := range dst {
		dst[i] = 0
	}
}

// Scale computes dst[i] = src[i] * s. The slices may alias.
func Scale(dst, src []float32, s float32) {
	f32.Scale(dst, src, s)
}

// Dot returns the dot product of a and b. The slices must have equal
// length; this is not checked.
func Dot(a, b []float32) float32 {
	return f32.DotProductUnsafe(a, b)
}

// Interleave2 interleaves a and b into dst:
// dst[0]=a[0], dst[1]=b[0], dst[2]=a[1], ...
func Interleave2(dst, a, b []float32) {
	f32.Interleave2(dst, a, b)
}

// PeakStride returns the largest absolute value among n elements taken
// every stride positions.
func PeakStride(a []float32, stride, n int) float32 {
	var m float32
	for i := 0; i < n; i++ {
		v := a[i*stride]
		if v < 0 {
			v = -v
		}
		if v > m {
			m = v
		}
	}
	return m
}

// LinearToDb converts a linear amplitude to decibels.
func LinearToDb(v float64) float64 {
	if v < minLinear {
		v = minLinear
	}
	return dbPerDecade * math.Log10(v)
}

// DbToLinear converts decibels to a linear amplitude.
func DbToLinear(db float64) float64 {
	return math.Pow(10, db/dbPerDecade)
}
