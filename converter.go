package pcmconv

import (
	"fmt"

	"github.com/audiotk/pcmconv/internal/layout"
	"github.com/audiotk/pcmconv/internal/pcm"
	"github.com/audiotk/pcmconv/internal/vecops"
)

// Converter adapts a raw PCM stream from one StreamSpec to another,
// composing format conversion, resampling and channel redistribution
// as needed. Input bytes arrive either from a ByteProducer or through
// Push; converted bytes leave through Poll.
//
// The composition is fixed at construction from which of rate and
// channel count actually differ, so a Poll never branches over stages
// it does not use. When both differ and the stream is narrowing, the
// down-mix runs before the resampler so no work is spent resampling
// channels that would be discarded.
//
// A Converter is not safe for concurrent use.
type Converter struct {
	in  StreamSpec
	out StreamSpec

	// Circular buffer of raw input bytes, in the input format.
	ring   []byte
	head   int
	tail   int
	filled int

	producer    ByteProducer
	resampler   *Resampler
	distributor *Redistributor

	// Float working buffers, sized to the wider spec. intermed holds
	// decoded input frames, outgoing holds frames ready for output
	// encoding. raw stages ring bytes ahead of decoding and holds as
	// many input frames as intermed.
	intermed []float32
	outgoing []float32
	raw      []byte

	// feedErr carries a failure out of the resampler's producer
	// callback, which has no error return of its own.
	feedErr error

	pull func(dst []byte, frames int) (int, error)
}

// NewConverter returns a converter between the two stream specs. The
// producer, if non-nil, refills the internal input buffer on demand
// during Poll; otherwise the caller must feed the converter with Push.
func NewConverter(in, out StreamSpec, producer ByteProducer) (*Converter, error) {
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("input spec: %w", err)
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("output spec: %w", err)
	}
	if in.Channels != out.Channels && !layout.Supported(in.Channels, out.Channels) {
		return nil, fmt.Errorf("%w: no built-in conversion between %d and %d channels",
			ErrUnsupportedLayout, in.Channels, out.Channels)
	}

	maxChannels := in.Channels
	if out.Channels > maxChannels {
		maxChannels = out.Channels
	}
	maxFrames := in.pageFrames()
	if out.pageFrames() > maxFrames {
		maxFrames = out.pageFrames()
	}

	c := &Converter{
		in:       in,
		out:      out,
		ring:     make([]byte, in.pageFrames()*in.FrameSize()),
		producer: producer,
		intermed: make([]float32, maxFrames*maxChannels),
		outgoing: make([]float32, maxFrames*maxChannels),
		raw:      make([]byte, maxFrames*maxChannels*in.Format.Bytes()),
	}

	if in.Channels != out.Channels {
		d, err := NewRedistributor(in.Channels, out.Channels, nil)
		if err != nil {
			return nil, err
		}
		c.distributor = d
	}

	if in.Rate != out.Rate {
		channels := in.Channels
		if out.Channels < channels {
			channels = out.Channels
		}
		r, err := NewResampler(ResamplerConfig{
			Channels:     channels,
			InRate:       in.Rate,
			OutRate:      out.Rate,
			BufferFrames: in.pageFrames(),
			Producer:     c.resampleFeed,
		})
		if err != nil {
			return nil, err
		}
		c.resampler = r
	}

	switch {
	case c.resampler == nil && c.distributor == nil:
		c.pull = c.pullDirect
	case c.resampler == nil:
		c.pull = c.pullRedistribute
	case c.distributor == nil || c.in.Channels > c.out.Channels:
		// Any down-mix already happened inside the resampler feed.
		c.pull = c.pullResample
	default:
		c.pull = c.pullResampleRedistribute
	}
	return c, nil
}

// InSpec returns the input stream spec.
func (c *Converter) InSpec() StreamSpec { return c.in }

// OutSpec returns the output stream spec.
func (c *Converter) OutSpec() StreamSpec { return c.out }

// Reset returns the converter to its initial state, discarding all
// buffered input and any resampler history.
func (c *Converter) Reset() {
	if c.resampler != nil {
		c.resampler.Reset()
	}
	for i := range c.ring {
		c.ring[i] = 0
	}
	for i := range c.raw {
		c.raw[i] = 0
	}
	vecops.Clear(c.intermed)
	vecops.Clear(c.outgoing)
	c.feedErr = nil
	c.head = 0
	c.tail = 0
	c.filled = 0
}

// Push appends raw input bytes to the internal circular buffer for
// later conversion. Bytes do not need to arrive frame-aligned; partial
// frames are retained until completed by a later Push. The return
// value is the number of bytes accepted, bounded by the remaining
// buffer capacity; callers must retry the rest after draining with
// Poll.
func (c *Converter) Push(src []byte) (int, error) {
	remain := len(c.ring) - c.filled
	if remain > len(src) {
		remain = len(src)
	}
	upper := len(c.ring) - c.tail
	if upper > remain {
		upper = remain
	}
	lower := remain - upper

	copy(c.ring[c.tail:], src[:upper])
	c.tail += upper
	if lower > 0 {
		copy(c.ring, src[upper:upper+lower])
		c.tail = lower
	} else if c.tail == len(c.ring) {
		c.tail = 0
	}
	c.filled += remain
	return remain, nil
}

// Poll converts buffered and produced input into dst, returning the
// number of bytes written. The request is rounded down to whole output
// frames. A short (possibly zero) count with a nil error means the
// input is exhausted; an error means a stage genuinely failed.
func (c *Converter) Poll(dst []byte) (int, error) {
	outFrame := c.out.FrameSize()
	frames := len(dst) / outFrame
	n, err := c.pull(dst, frames)
	return n * outFrame, err
}

// ringFill tops up the circular buffer from the producer until at
// least need bytes are buffered or the producer runs dry, returning
// the number of buffered bytes (possibly more than need).
func (c *Converter) ringFill(need int) int {
	if need < c.filled {
		return need
	}
	if c.producer == nil {
		return c.filled
	}

	remain := need - c.filled
	if free := len(c.ring) - c.filled; remain > free {
		remain = free
	}
	upper := len(c.ring) - c.tail
	if upper > remain {
		upper = remain
	}
	lower := remain - upper

	if remain > 0 {
		actual := c.producer(c.ring[c.tail : c.tail+upper])
		if actual < 0 {
			actual = 0
		}
		c.tail += actual
		if actual == upper && lower > 0 {
			got := c.producer(c.ring[:lower])
			if got < 0 {
				got = 0
			}
			c.tail = got
			actual += got
		} else if c.tail == len(c.ring) {
			c.tail = 0
		}
		c.filled += actual
	}
	return c.filled
}

// ringPop removes up to max bytes from the circular buffer into dst,
// returning the number removed.
func (c *Converter) ringPop(dst []byte, max int) int {
	amt := c.filled
	if amt > max {
		amt = max
	}
	upper := len(c.ring) - c.head
	if upper > amt {
		upper = amt
	}
	lower := amt - upper

	copy(dst, c.ring[c.head:c.head+upper])
	c.head += upper
	if lower > 0 {
		copy(dst[upper:], c.ring[:lower])
		c.head = lower
	} else if c.head == len(c.ring) {
		c.head = 0
	}
	c.filled -= amt
	return amt
}

// readFrames drains up to frames whole input frames from the ring into
// the decoded float buffer, pulling from the producer as needed, and
// returns the number of frames decoded. Partial frames stay buffered.
func (c *Converter) readFrames(buf []float32, frames int) int {
	inFrame := c.in.FrameSize()
	want := frames * inFrame
	if want > len(c.raw) {
		want = len(c.raw)
	}
	avail := c.ringFill(want)
	avail -= avail % inFrame
	if avail > want {
		avail = want
	}
	if avail == 0 {
		return 0
	}
	n := c.ringPop(c.raw[:avail], avail)
	return pcm.ToFloat32(buf, c.raw[:n], c.in.Format) / c.in.Channels
}

// resampleFeed is the resampler's producer. It decodes input frames
// from the ring in the resampler's channel width, down-mixing first
// when the stream is narrowing, and returns the number of samples
// written. Returning 0 propagates the upstream end of stream.
func (c *Converter) resampleFeed(dst []float32) int {
	if c.distributor != nil && c.in.Channels > c.out.Channels {
		// Narrowing: decode at the input width, down-mix into dst.
		outCh := c.out.Channels
		frames := len(dst) / outCh
		taken := 0
		for taken < frames {
			page := frames - taken
			if limit := len(c.intermed) / c.in.Channels; page > limit {
				page = limit
			}
			n := c.readFrames(c.intermed, page)
			if n == 0 {
				break
			}
			if _, err := c.distributor.Apply(dst[taken*outCh:], c.intermed, n); err != nil {
				c.feedErr = err
				break
			}
			taken += n
		}
		return taken * outCh
	}
	frames := len(dst) / c.in.Channels
	return c.readFrames(dst, frames) * c.in.Channels
}

// pullDirect handles identical rate and channel count. Identical
// formats are a straight frame-aligned copy out of the ring; differing
// formats pass through the float boundary conversion.
func (c *Converter) pullDirect(dst []byte, frames int) (int, error) {
	inFrame := c.in.FrameSize()
	if c.in.Format == c.out.Format {
		taken := 0
		for taken < frames {
			want := (frames - taken) * inFrame
			avail := c.ringFill(want)
			avail -= avail % inFrame
			if avail > want {
				avail = want
			}
			if avail == 0 {
				break
			}
			taken += c.ringPop(dst[taken*inFrame:], avail) / inFrame
		}
		return taken, nil
	}

	outFrame := c.out.FrameSize()
	taken := 0
	for taken < frames {
		page := frames - taken
		if limit := len(c.intermed) / c.in.Channels; page > limit {
			page = limit
		}
		n := c.readFrames(c.intermed, page)
		if n == 0 {
			break
		}
		pcm.FromFloat32(dst[taken*outFrame:], c.intermed[:n*c.in.Channels], c.out.Format)
		taken += n
	}
	return taken, nil
}

// pullRedistribute handles a channel count change at equal rates.
func (c *Converter) pullRedistribute(dst []byte, frames int) (int, error) {
	outFrame := c.out.FrameSize()
	taken := 0
	for taken < frames {
		page := frames - taken
		if limit := len(c.intermed) / c.distributor.InChannels(); page > limit {
			page = limit
		}
		if limit := len(c.outgoing) / c.distributor.OutChannels(); page > limit {
			page = limit
		}
		n := c.readFrames(c.intermed, page)
		if n == 0 {
			break
		}
		if _, err := c.distributor.Apply(c.outgoing, c.intermed, n); err != nil {
			return taken, err
		}
		pcm.FromFloat32(dst[taken*outFrame:], c.outgoing[:n*c.out.Channels], c.out.Format)
		taken += n
	}
	return taken, nil
}

// pullResample handles a rate change where the output leaves the
// resampler already at the output channel width.
func (c *Converter) pullResample(dst []byte, frames int) (int, error) {
	outFrame := c.out.FrameSize()
	taken := 0
	for taken < frames {
		page := frames - taken
		if limit := len(c.outgoing) / c.out.Channels; page > limit {
			page = limit
		}
		n, err := c.resampler.Poll(c.outgoing, page)
		if err != nil {
			return taken, err
		}
		if c.feedErr != nil {
			return taken, c.feedErr
		}
		if n == 0 {
			break
		}
		pcm.FromFloat32(dst[taken*outFrame:], c.outgoing[:n*c.out.Channels], c.out.Format)
		taken += n
	}
	return taken, nil
}

// pullResampleRedistribute handles a rate change on a widening stream:
// resample at the input width, then redistribute up to the output
// width in place before encoding.
func (c *Converter) pullResampleRedistribute(dst []byte, frames int) (int, error) {
	outFrame := c.out.FrameSize()
	taken := 0
	for taken < frames {
		page := frames - taken
		if limit := len(c.outgoing) / c.out.Channels; page > limit {
			page = limit
		}
		n, err := c.resampler.Poll(c.outgoing, page)
		if err != nil {
			return taken, err
		}
		if n == 0 {
			break
		}
		if _, err := c.distributor.Apply(c.outgoing, c.outgoing, n); err != nil {
			return taken, err
		}
		pcm.FromFloat32(dst[taken*outFrame:], c.outgoing[:n*c.out.Channels], c.out.Format)
		taken += n
	}
	return taken, nil
}
