package pcmconv

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/audiotk/pcmconv/internal/testutil"
)

const (
	mixFrames      = 256
	mixTolerance   = 1e-6
	roundTripDb    = 40.0
	surroundFreq   = 440.0
	surroundFrames = 2048
)

func TestNewRedistributorValidation(t *testing.T) {
	_, err := NewRedistributor(0, 2, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRedistributor(2, 300, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	// Matrix size must match the channel widths exactly.
	_, err = NewRedistributor(2, 3, make([]float32, 5))
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = NewRedistributor(2, 3, make([]float32, 6))
	assert.NoError(t, err)
}

func TestRedistributorAccessors(t *testing.T) {
	d, err := NewRedistributor(6, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, 6, d.InChannels())
	assert.Equal(t, 2, d.OutChannels())
}

func TestBuiltinStereoToMono(t *testing.T) {
	d, err := NewRedistributor(2, 1, nil)
	require.NoError(t, err)

	src := []float32{1, 0, -0.5, 0.5, 0.25, 0.75}
	dst := make([]float32, 3)
	n, err := d.Apply(dst, src, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	testutil.AssertSlicesInDelta(t, []float32{0.5, 0, 0.5}, dst, mixTolerance)
}

func TestWideLayoutNeedsMatrix(t *testing.T) {
	// Nine channels has no built-in layout, so the conversion must be
	// rejected without an explicit matrix.
	d, err := NewRedistributor(9, 2, nil)
	require.NoError(t, err)

	src := make([]float32, 9*mixFrames)
	dst := make([]float32, 2*mixFrames)
	_, err = d.Apply(dst, src, mixFrames)
	assert.ErrorIs(t, err, ErrUnsupportedLayout)

	// The same widths mix fine once a matrix is supplied.
	matrix := make([]float32, 2*9)
	for i := range matrix {
		matrix[i] = 1.0 / 9.0
	}
	d, err = NewRedistributor(9, 2, matrix)
	require.NoError(t, err)

	for i := range src {
		src[i] = 0.5
	}
	n, err := d.Apply(dst, src, mixFrames)
	require.NoError(t, err)
	assert.Equal(t, mixFrames, n)
	testutil.AssertAllInDelta(t, dst, 0.5, mixTolerance)
}

func TestMatrixApply(t *testing.T) {
	// Swap channels and add a center mix.
	matrix := []float32{
		0, 1, // out 0 takes in 1
		1, 0, // out 1 takes in 0
		0.5, 0.5, // out 2 averages both
	}
	d, err := NewRedistributor(2, 3, matrix)
	require.NoError(t, err)

	src := []float32{0.2, 0.8, -1, 1}
	dst := make([]float32, 6)
	n, err := d.Apply(dst, src, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	testutil.AssertSlicesInDelta(t, []float32{0.8, 0.2, 0.5, 1, -1, 0}, dst, mixTolerance)
}

func TestMatrixApplyInPlace(t *testing.T) {
	tests := []struct {
		name   string
		inch   int
		outch  int
		matrix []float32
	}{
		{"expanding", 2, 4, []float32{1, 0, 0, 1, 0.5, 0.5, 0.5, -0.5}},
		{"shrinking", 4, 2, []float32{0.25, 0.25, 0.25, 0.25, 0.5, 0, 0, 0.5}},
		{"square", 3, 3, []float32{0, 0, 1, 0, 1, 0, 1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := NewRedistributor(tt.inch, tt.outch, tt.matrix)
			require.NoError(t, err)

			src := testutil.Sine(surroundFreq, float64(RateCD), tt.inch, mixFrames)

			separate := make([]float32, tt.outch*mixFrames)
			_, err = d.Apply(separate, src, mixFrames)
			require.NoError(t, err)

			width := tt.inch
			if tt.outch > width {
				width = tt.outch
			}
			inPlace := make([]float32, width*mixFrames)
			copy(inPlace, src)
			_, err = d.Apply(inPlace, inPlace, mixFrames)
			require.NoError(t, err)

			testutil.AssertSlicesInDelta(t, separate, inPlace[:len(separate)], 0)
		})
	}
}

func TestApplyInputValidation(t *testing.T) {
	d, err := NewRedistributor(2, 1, nil)
	require.NoError(t, err)

	src := make([]float32, 8)
	dst := make([]float32, 4)

	_, err = d.Apply(dst, src, -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = d.Apply(dst, src, 100)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = d.Apply(dst[:1], src, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestStereoSurroundRoundTrip(t *testing.T) {
	// Mono-compatible stereo pushed up to 5.1 and back down keeps its
	// shape; the standard coefficients scale it by a fixed gain, so
	// compare after normalizing.
	up, err := NewRedistributor(2, 6, nil)
	require.NoError(t, err)
	down, err := NewRedistributor(6, 2, nil)
	require.NoError(t, err)

	src := testutil.Sine(surroundFreq, float64(RateCD), 2, surroundFrames)
	wide := make([]float32, 6*surroundFrames)
	_, err = up.Apply(wide, src, surroundFrames)
	require.NoError(t, err)

	back := make([]float32, 2*surroundFrames)
	_, err = down.Apply(back, wide, surroundFrames)
	require.NoError(t, err)

	gain := float64(testutil.Peak(back)) / float64(testutil.Peak(src))
	require.Greater(t, gain, 0.0)
	scaled := make([]float32, len(back))
	for i, v := range back {
		scaled[i] = float32(float64(v) / gain)
	}

	testutil.AssertErrorBelowDb(t, src, scaled, roundTripDb)
}
