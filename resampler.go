package pcmconv

import (
	"fmt"

	"github.com/audiotk/pcmconv/internal/filter"
	"github.com/audiotk/pcmconv/internal/vecops"
)

// ResamplerConfig holds the construction parameters for a Resampler.
// None of the parameters can change after construction; the filter
// table is tailored to them. Allocate a new Resampler to change rates.
type ResamplerConfig struct {
	// Channels is the number of interleaved channels in both the
	// input and output streams.
	Channels int

	// InRate is the sample rate of the input stream in Hz.
	InRate int

	// OutRate is the sample rate of the output stream in Hz.
	OutRate int

	// ZeroCrossings is the number of sinc lobes on each side of the
	// interpolation point. More crossings give a sharper filter at a
	// higher per-frame cost. Zero selects DefaultZeroCrossings.
	ZeroCrossings int

	// StopbandDb is the stopband attenuation in decibels used to
	// derive the Kaiser window shape. Zero selects DefaultStopbandDb.
	StopbandDb float64

	// BitDepth is the effective sample precision; the filter table
	// holds 1<<(BitDepth/2+1) interpolation positions per crossing.
	// Zero selects DefaultBitDepth.
	BitDepth int

	// BufferFrames requests a staging buffer capacity. It is raised
	// to the minimum the convolution window needs if too small. Zero
	// selects DefaultBufferFrames.
	BufferFrames int

	// Producer optionally refills the staging buffer on demand during
	// Poll. When nil the caller must feed the resampler with Push.
	Producer SampleProducer
}

// Validate checks if the configuration is valid.
func (c *ResamplerConfig) Validate() error {
	if c.Channels < 1 || c.Channels > MaxChannels {
		return fmt.Errorf("%w: channels must be 1-%d, got %d", ErrInvalidConfig, MaxChannels, c.Channels)
	}
	if c.InRate <= 0 || c.OutRate <= 0 {
		return fmt.Errorf("%w: sample rates must be positive, got %d and %d",
			ErrInvalidConfig, c.InRate, c.OutRate)
	}
	if c.ZeroCrossings < 0 || c.StopbandDb < 0 || c.BitDepth < 0 || c.BufferFrames < 0 {
		return fmt.Errorf("%w: filter parameters must be non-negative", ErrInvalidConfig)
	}
	if c.BitDepth > 62 {
		return fmt.Errorf("%w: bit depth too large, got %d", ErrInvalidConfig, c.BitDepth)
	}
	return nil
}

// withDefaults returns a copy of the configuration with zero values
// replaced by the package defaults.
func (c ResamplerConfig) withDefaults() ResamplerConfig {
	if c.ZeroCrossings == 0 {
		c.ZeroCrossings = DefaultZeroCrossings
	}
	if c.StopbandDb == 0 {
		c.StopbandDb = DefaultStopbandDb
	}
	if c.BitDepth == 0 {
		c.BitDepth = DefaultBitDepth
	}
	if c.BufferFrames == 0 {
		c.BufferFrames = DefaultBufferFrames
	}
	return c
}

// Resampler converts a stream of interleaved audio frames from one
// sample rate to another using bandlimited interpolation, as described
// at https://ccrma.stanford.edu/~jos/resample/Implementation.html.
//
// Input is staged in a flat sliding-window buffer rather than a ring.
// The convolution kernel needs contiguous access to the frames around
// the interpolation point, so consumed history is evicted by shifting
// the unread remainder left, which keeps the inner loops free of
// wraparound indexing. The running input position is tracked as an
// integer global offset plus an in-window fractional time so precision
// does not degrade over long sessions.
//
// A Resampler is not safe for concurrent use.
type Resampler struct {
	channels  int
	inRate    int
	outRate   int
	zeroCross int
	table     *filter.SincTable

	// Staging buffer. The allocation extends capacity by zeroCross
	// frames of padding on each side so the convolution window never
	// indexes out of bounds.
	buf      []float32
	capacity int

	avail  int     // staged frames not yet consumed
	index  int     // frames consumed since the last shift
	oversc int     // zero-padded lookahead frames owed at the tail
	offset int     // global frame index of the buffer start
	intime float64 // fractional input position, in global frames

	producer SampleProducer
}

// NewResampler returns a resampler for the given configuration, or an
// error if the configuration is invalid.
func NewResampler(cfg ResamplerConfig) (*Resampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	perCrossing := 1 << (cfg.BitDepth/2 + 1)
	capacity := minStagingFrames(cfg.ZeroCrossings)
	if capacity < cfg.BufferFrames {
		capacity = cfg.BufferFrames
	}

	r := &Resampler{
		channels:  cfg.Channels,
		inRate:    cfg.InRate,
		outRate:   cfg.OutRate,
		zeroCross: cfg.ZeroCrossings,
		table:     filter.NewSincTable(cfg.ZeroCrossings, perCrossing, cfg.StopbandDb),
		buf:       make([]float32, (capacity+2*cfg.ZeroCrossings)*cfg.Channels),
		capacity:  capacity,
		producer:  cfg.Producer,
	}
	return r, nil
}

// Channels returns the fixed channel count of both streams.
func (r *Resampler) Channels() int { return r.channels }

// Ratio returns the resampling ratio outRate/inRate.
func (r *Resampler) Ratio() float64 { return float64(r.outRate) / float64(r.inRate) }

// Latency returns the filter delay in input frames.
func (r *Resampler) Latency() int { return r.zeroCross }

// Time returns the current input position in fractional input frames.
// It is non-decreasing across any sequence of Poll calls.
func (r *Resampler) Time() float64 { return r.intime }

// Reset returns the resampler to its initial zeroed state without
// reallocating buffers or changing the filter design.
func (r *Resampler) Reset() {
	vecops.Clear(r.buf)
	r.avail = 0
	r.index = 0
	r.oversc = 0
	r.offset = 0
	r.intime = 0
}

// shift evicts consumed history by moving the unread remainder of the
// staging buffer to the front, folding the consumed frame count into
// the global offset, and zeroing the freed tail.
func (r *Resampler) shift() {
	chans := r.channels
	pos := chans * r.index
	amt := chans * (r.avail + r.oversc + r.zeroCross - r.index)
	copy(r.buf[:amt], r.buf[pos:pos+amt])

	if r.index > r.oversc {
		drop := r.index - r.oversc
		if drop > r.avail {
			drop = r.avail
		}
		r.avail -= drop
		r.oversc = 0
	} else {
		r.oversc -= r.index
	}

	tail := (r.avail + r.zeroCross) * chans
	vecops.Clear(r.buf[tail : tail+(r.capacity-r.avail+r.oversc)*chans])

	r.offset += r.index
	r.index = 0
}

// fill pulls the next page of frames from the producer into the freed
// tail of the staging buffer. An exhausted producer zero-pads the
// lookahead region instead, recording how many padding frames are owed
// so they are not treated as real data.
func (r *Resampler) fill() {
	if r.producer == nil {
		return
	}
	if r.index > 0 {
		r.shift()
	}

	chans := r.channels
	remain := r.capacity - r.avail
	start := (r.avail + r.zeroCross) * chans
	page := r.buf[start : start+remain*chans]

	actual := r.producer(page)
	if actual < 0 {
		actual = 0
	}
	actual /= chans

	if actual == 0 {
		vecops.Clear(page)
		if remain > r.zeroCross {
			r.oversc = 0
		} else {
			r.oversc = r.zeroCross - remain
		}
	} else {
		r.oversc = r.zeroCross
	}
	r.avail += actual - r.oversc
}

// resampleFrame filters one output frame for all channels into out.
// The interpolation point falls between two adjacent filter phases, so
// each wing blends a filter tap with its precomputed first difference.
func (r *Resampler) resampleFrame(out []float32) {
	intime := r.intime
	global := int(intime)
	index := global - r.offset
	inRate := float64(r.inRate)
	perCross := r.table.PerCrossing
	currTime := float64(global) / inRate
	nextTime := float64(global+1) / inRate
	index += r.zeroCross

	interp0 := 1.0 - ((nextTime - intime/inRate) / (nextTime - currTime))
	filterIndex0 := int(interp0 * float64(perCross))
	interp1 := 1.0 - interp0
	filterIndex1 := int(interp1 * float64(perCross))

	leftBound := int(float64(r.table.Size-filterIndex0) / float64(perCross))
	rightBound := int(float64(r.table.Size-filterIndex1) / float64(perCross))

	leftWing := index - leftBound + 1
	midpoint := index + 1
	rightWing := index + rightBound + 1

	chans := r.channels
	taps, diffs := r.table.Taps, r.table.Diffs
	for ch := 0; ch < chans; ch++ {
		var sample float32

		leftIndex := filterIndex0 + (leftBound-1)*perCross
		for frame := leftWing; frame < midpoint; frame++ {
			in := r.buf[frame*chans+ch]
			sample += float32(float64(in) * (float64(taps[leftIndex]) + interp0*float64(diffs[leftIndex])))
			leftIndex -= perCross
		}

		rightIndex := filterIndex1
		for frame := midpoint; frame < rightWing; frame++ {
			in := r.buf[frame*chans+ch]
			sample += float32(float64(in) * (float64(taps[rightIndex]) + interp1*float64(diffs[rightIndex])))
			rightIndex += perCross
		}
		out[ch] = sample
	}

	r.intime += inRate / float64(r.outRate)
	r.index = index - r.zeroCross
}

// resamplePage converts frames until either the request is met or the
// staged data runs out, returning the number of frames produced.
func (r *Resampler) resamplePage(dst []float32, frames int) int {
	chans := r.channels
	pos := 0
	for r.intime < float64(r.offset+r.avail) && pos < frames {
		r.resampleFrame(dst[pos*chans:])
		pos++
	}
	return pos
}

// Poll converts up to frames audio frames into dst, refilling the
// staging buffer from the producer as needed. It returns the number of
// frames produced, which is less than frames once the staged data and
// the producer are both exhausted. A zero count with a nil error is
// the normal end-of-stream signal, not a failure. Output always
// consists of whole frames; dst must hold frames*Channels() samples.
func (r *Resampler) Poll(dst []float32, frames int) (int, error) {
	if frames < 0 {
		return 0, fmt.Errorf("%w: negative frame count %d", ErrInvalidInput, frames)
	}
	if len(dst) < frames*r.channels {
		return 0, fmt.Errorf("%w: output holds %d samples, need %d",
			ErrInvalidInput, len(dst), frames*r.channels)
	}

	take := 0
	for take < frames {
		if r.producer != nil {
			r.fill()
		}
		amount := r.resamplePage(dst[take*r.channels:], frames-take)
		take += amount
		if amount == 0 {
			break
		}
	}
	return take, nil
}

// Push stages up to frames audio frames from src for later conversion.
// It returns the number of frames accepted, bounded by the remaining
// staging capacity; callers must retry unaccepted frames after
// draining output with Poll. src must hold frames*Channels() samples.
func (r *Resampler) Push(src []float32, frames int) (int, error) {
	if frames < 0 {
		return 0, fmt.Errorf("%w: negative frame count %d", ErrInvalidInput, frames)
	}
	if len(src) < frames*r.channels {
		return 0, fmt.Errorf("%w: input holds %d samples, need %d",
			ErrInvalidInput, len(src), frames*r.channels)
	}

	if r.index > 0 {
		r.shift()
	}

	chans := r.channels
	remain := r.capacity - r.avail
	start := (r.avail + r.zeroCross) * chans

	if frames < remain {
		copy(r.buf[start:], src[:frames*chans])
		tail := remain - frames
		vecops.Clear(r.buf[start+frames*chans : start+remain*chans])
		if tail > r.zeroCross {
			r.oversc = 0
		} else {
			r.oversc = r.zeroCross - tail
		}
	} else {
		frames = remain
		copy(r.buf[start:], src[:frames*chans])
		r.oversc = r.zeroCross
	}
	r.avail += frames - r.oversc
	return frames, nil
}
