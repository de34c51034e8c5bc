package pcmconv

import (
	"fmt"

	"github.com/audiotk/pcmconv/internal/layout"
	"github.com/audiotk/pcmconv/internal/vecops"
)

// Redistributor maps interleaved audio frames from one channel count
// to another. With an explicit matrix it computes a straight linear
// mix; without one it dispatches to built-in conversions between the
// standard speaker layouts (1 to 8 channels), using fixed mix
// coefficients matched to common reference implementations.
//
// A Redistributor holds no per-stream state. A single instance without
// an explicit matrix may be shared freely; with a matrix, in-place
// application uses an internal scratch row, so share only across
// callers that pass distinct input and output buffers.
type Redistributor struct {
	inch  int
	outch int

	// matrix is an outch x inch row-major mix table, nil when the
	// built-in layout conversions apply. scratch holds one output
	// frame during in-place application.
	matrix  []float32
	scratch []float32
}

// NewRedistributor returns a redistributor between the two channel
// widths. A non-nil matrix must hold outChannels rows of inChannels
// coefficients in row-major order and is copied, never retained. With
// a nil matrix both widths must be standard layouts (1 to 8 channels);
// wider streams require an explicit matrix.
func NewRedistributor(inChannels, outChannels int, matrix []float32) (*Redistributor, error) {
	if inChannels < 1 || inChannels > MaxChannels || outChannels < 1 || outChannels > MaxChannels {
		return nil, fmt.Errorf("%w: channel counts must be 1-%d, got %d and %d",
			ErrInvalidConfig, MaxChannels, inChannels, outChannels)
	}
	d := &Redistributor{inch: inChannels, outch: outChannels}
	if matrix != nil {
		if len(matrix) != inChannels*outChannels {
			return nil, fmt.Errorf("%w: matrix holds %d coefficients, need %dx%d",
				ErrInvalidConfig, len(matrix), outChannels, inChannels)
		}
		d.matrix = make([]float32, len(matrix))
		copy(d.matrix, matrix)
		d.scratch = make([]float32, outChannels)
	}
	return d, nil
}

// InChannels returns the input channel count.
func (d *Redistributor) InChannels() int { return d.inch }

// OutChannels returns the output channel count.
func (d *Redistributor) OutChannels() int { return d.outch }

// Apply redistributes frames audio frames from src into dst and
// returns the number of frames processed. src must hold
// frames*InChannels() samples and dst frames*OutChannels(). The call
// is safe in place (dst and src the same buffer) as long as the buffer
// holds frames worth of the wider width. Without an explicit matrix,
// nonstandard channel widths fail with ErrUnsupportedLayout.
func (d *Redistributor) Apply(dst, src []float32, frames int) (int, error) {
	if frames < 0 {
		return 0, fmt.Errorf("%w: negative frame count %d", ErrInvalidInput, frames)
	}
	if len(src) < frames*d.inch {
		return 0, fmt.Errorf("%w: input holds %d samples, need %d",
			ErrInvalidInput, len(src), frames*d.inch)
	}
	if len(dst) < frames*d.outch {
		return 0, fmt.Errorf("%w: output holds %d samples, need %d",
			ErrInvalidInput, len(dst), frames*d.outch)
	}

	if d.matrix != nil {
		d.applyMatrix(dst, src, frames)
		return frames, nil
	}
	if !layout.Convert(dst, src, d.inch, d.outch, frames) {
		return 0, fmt.Errorf("%w: nonstandard width %dx%d requires an explicit matrix",
			ErrUnsupportedLayout, d.inch, d.outch)
	}
	return frames, nil
}

// applyMatrix mixes each frame through the coefficient matrix. When
// dst aliases src the traversal direction depends on whether the frame
// is growing or shrinking: expanding walks frames from the end so
// unread source frames are not overwritten, shrinking walks forward.
// Either way the mixed frame lands in the scratch row first so a
// frame's own outputs never clobber its inputs.
func (d *Redistributor) applyMatrix(dst, src []float32, frames int) {
	rows, cols := d.outch, d.inch
	if sameBuffer(dst, src) {
		if rows > cols {
			for i := frames - 1; i >= 0; i-- {
				d.mixFrame(src[i*cols:])
				copy(dst[i*rows:i*rows+rows], d.scratch)
			}
		} else {
			for i := 0; i < frames; i++ {
				d.mixFrame(src[i*cols:])
				copy(dst[i*rows:i*rows+rows], d.scratch)
			}
		}
		return
	}
	for i := 0; i < frames; i++ {
		in := src[i*cols : i*cols+cols]
		out := dst[i*rows : i*rows+rows]
		for j := 0; j < rows; j++ {
			out[j] = vecops.Dot(d.matrix[j*cols:j*cols+cols], in)
		}
	}
}

// mixFrame mixes one input frame into the scratch row.
func (d *Redistributor) mixFrame(in []float32) {
	rows, cols := d.outch, d.inch
	for j := 0; j < rows; j++ {
		d.scratch[j] = vecops.Dot(d.matrix[j*cols:j*cols+cols], in[:cols])
	}
}

// sameBuffer reports whether the two slices start at the same sample.
func sameBuffer(a, b []float32) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
