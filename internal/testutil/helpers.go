// Package testutil provides reusable test helpers for the conversion
// engine tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/audiotk/pcmconv/internal/vecops"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-6
	MixTolerance     = 1e-5
	PeakTolerance    = 1e-2
	DBTolerance      = 0.01
)

// twoPi for sine generation.
const twoPi = 2 * math.Pi

// Sine fills an interleaved buffer with the given number of frames of
// a sine wave at freq Hz sampled at rate Hz, identical on every
// channel, and returns it.
func Sine(freq, rate float64, channels, frames int) []float32 {
	buf := make([]float32, frames*channels)
	for i := 0; i < frames; i++ {
		v := float32(math.Sin(twoPi * freq * float64(i) / rate))
		for c := 0; c < channels; c++ {
			buf[i*channels+c] = v
		}
	}
	return buf
}

// DC fills an interleaved buffer with a constant value on every
// channel and returns it.
func DC(value float32, channels, frames int) []float32 {
	buf := make([]float32, frames*channels)
	for i := range buf {
		buf[i] = value
	}
	return buf
}

// Ramp fills an interleaved buffer where frame i carries the value
// i*step on every channel, useful for checking frame alignment.
func Ramp(step float32, channels, frames int) []float32 {
	buf := make([]float32, frames*channels)
	for i := 0; i < frames; i++ {
		v := float32(i) * step
		for c := 0; c < channels; c++ {
			buf[i*channels+c] = v
		}
	}
	return buf
}

// Peak returns the largest absolute sample value in the buffer.
func Peak(s []float32) float32 {
	return vecops.PeakStride(s, 1, len(s))
}

// RMS returns the root mean square of the buffer.
func RMS(s []float32) float64 {
	if len(s) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s {
		sum += float64(v) * float64(v)
	}
	return math.Sqrt(sum / float64(len(s)))
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		f := float64(v)
		if math.IsNaN(f) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(f, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float32, minVal, maxVal float32, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertAllInDelta verifies that every element is within delta of want.
func AssertAllInDelta(t *testing.T, s []float32, want float32, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if !assert.InDelta(t, want, v, delta, "s[%d]=%f, want %f", i, v, want) {
			return false
		}
	}
	return true
}

// AssertSlicesInDelta verifies two buffers agree elementwise within
// delta. The buffers must have equal length.
func AssertSlicesInDelta(t *testing.T, want, got []float32, delta float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), "buffer length mismatch") {
		return false
	}
	for i := range want {
		if !assert.InDelta(t, want[i], got[i], delta,
			"buffers differ at %d: want %f, got %f", i, want[i], got[i]) {
			return false
		}
	}
	return true
}

// AssertErrorBelowDb verifies that the RMS of the difference between
// the two buffers is at least db decibels below the RMS of want.
func AssertErrorBelowDb(t *testing.T, want, got []float32, db float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Equal(t, len(want), len(got), "buffer length mismatch") {
		return false
	}
	diff := make([]float32, len(want))
	for i := range want {
		diff[i] = got[i] - want[i]
	}
	ref := RMS(want)
	if ref == 0 {
		return assert.Equal(t, 0.0, RMS(diff), "nonzero error against silent reference")
	}
	errDb := vecops.LinearToDb(RMS(diff) / ref)
	return assert.LessOrEqual(t, errDb, -db,
		"error level %.2f dB exceeds -%.2f dB", errDb, db)
}
