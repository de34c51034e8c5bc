// Command analyze-filter prints the frequency response of the
// resampler's interpolation filter for a given design, reporting the
// realized passband ripple and stopband attenuation.
//
// Usage:
//
//	analyze-filter -zerocross 5 -stopband 80
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/audiotk/pcmconv"
	"github.com/audiotk/pcmconv/internal/filter"
	"github.com/audiotk/pcmconv/internal/vecops"
)

const (
	// FFT length for the response sweep.
	fftPoints = 1 << 16

	// Filter table resolution, matching the resampler default.
	defaultPerCrossing = 1 << (pcmconv.DefaultBitDepth/2 + 1)

	// Transition band margin around the cutoff, as a fraction of the
	// zero-crossing bandwidth, used to separate the passband and
	// stopband measurements.
	transitionMargin = 1.0

	dbFloor = -200.0
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	zeroCross := flag.Int("zerocross", pcmconv.DefaultZeroCrossings, "Sinc lobes per filter wing")
	stopband := flag.Float64("stopband", pcmconv.DefaultStopbandDb, "Designed stopband attenuation in dB")
	perCross := flag.Int("percross", defaultPerCrossing, "Interpolation positions per zero crossing")
	flag.Parse()

	if *zeroCross < 1 || *perCross < 1 || *stopband < 0 {
		return fmt.Errorf("invalid filter design %d/%d/%.1f", *zeroCross, *perCross, *stopband)
	}

	table := filter.NewSincTable(*zeroCross, *perCross, *stopband)

	// Mirror the one-sided table into the full symmetric impulse
	// response at the oversampled grid.
	impulse := make([]float64, 2*table.Size-1)
	center := table.Size - 1
	for i := 0; i < table.Size; i++ {
		v := float64(table.Taps[i])
		impulse[center+i] = v
		impulse[center-i] = v
	}

	seq := make([]float64, fftPoints)
	copy(seq, impulse)
	fft := fourier.NewFFT(fftPoints)
	coeffs := fft.Coefficients(nil, seq)

	// Normalize to the DC response. The cutoff sits at the bin where
	// one zero-crossing bandwidth ends on the oversampled grid.
	dc := cmplx.Abs(coeffs[0])
	cutoff := fftPoints / (2 * *perCross)
	stopFrom := cutoff + cutoff*int(transitionMargin)

	var ripple, worstStop float64
	worstStop = dbFloor
	for k := 1; k < len(coeffs); k++ {
		db := vecops.LinearToDb(cmplx.Abs(coeffs[k]) / dc)
		switch {
		case k <= cutoff/2:
			if dev := math.Abs(db); dev > ripple {
				ripple = dev
			}
		case k >= stopFrom:
			if db > worstStop {
				worstStop = db
			}
		}
	}

	fmt.Printf("filter design: %d zero crossings, %d per crossing, %.1f dB stopband\n",
		*zeroCross, *perCross, *stopband)
	fmt.Printf("table size:    %d taps (one-sided)\n", table.Size)
	fmt.Printf("passband ripple:      %8.4f dB\n", ripple)
	fmt.Printf("stopband attenuation: %8.2f dB\n", -worstStop)
	fmt.Printf("worst alias level:    %8.3g\n", vecops.DbToLinear(worstStop))
	return nil
}
