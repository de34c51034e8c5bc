package pcmconv

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/audiotk/pcmconv/internal/testutil"
)

const (
	spectrumSize   = 8192
	toneFreq       = 1000.0
	warmupFrames   = 256
	minToneSNRDb   = 40.0
	peakBinSpread  = 4
	qualityInRate  = RateCD
	qualityOutRate = RateDAT
)

// TestResampledToneSpectrum converts a pure tone across rates and
// checks that the energy stays concentrated at the tone frequency.
func TestResampledToneSpectrum(t *testing.T) {
	const inFrames = 10240

	prodData := testutil.Sine(toneFreq, float64(qualityInRate), 1, inFrames)
	pos := 0
	producer := func(dst []float32) int {
		n := copy(dst, prodData[pos:])
		pos += n
		return n
	}

	r, err := NewResampler(ResamplerConfig{
		Channels:      1,
		InRate:        qualityInRate,
		OutRate:       qualityOutRate,
		ZeroCrossings: 13,
		Producer:      producer,
	})
	require.NoError(t, err)

	out := make([]float32, warmupFrames+spectrumSize)
	got := 0
	for got < len(out) {
		n, err := r.Poll(out[got:], len(out)-got)
		require.NoError(t, err)
		require.Greater(t, n, 0, "stream ended before enough frames were collected")
		got += n
	}

	// Hann window over the steady-state segment.
	seq := make([]float64, spectrumSize)
	for i := range seq {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(spectrumSize-1)))
		seq[i] = w * float64(out[warmupFrames+i])
	}

	fft := fourier.NewFFT(spectrumSize)
	coeffs := fft.Coefficients(nil, seq)

	power := make([]float64, len(coeffs))
	for i, c := range coeffs {
		mag := cmplx.Abs(c)
		power[i] = mag * mag
	}

	peakBin := 0
	for i := 1; i < len(power); i++ {
		if power[i] > power[peakBin] {
			peakBin = i
		}
	}
	wantBin := int(math.Round(toneFreq / float64(qualityOutRate) * float64(spectrumSize)))
	assert.InDelta(t, float64(wantBin), float64(peakBin), 1,
		"tone landed at %.1f Hz", float64(peakBin)*float64(qualityOutRate)/float64(spectrumSize))

	var signal, noise float64
	for i := 1; i < len(power); i++ {
		if i >= peakBin-peakBinSpread && i <= peakBin+peakBinSpread {
			signal += power[i]
		} else {
			noise += power[i]
		}
	}
	require.Greater(t, noise, 0.0)
	snr := 10 * math.Log10(signal/noise)
	assert.GreaterOrEqual(t, snr, minToneSNRDb, "SNR %.1f dB", snr)
}
