// Package pcmconv converts PCM audio streams between sample rates,
// channel layouts and sample formats in pure Go.
//
// The package implements bandlimited-interpolation resampling with a
// Kaiser-windowed sinc filter, channel redistribution between the
// standard speaker layouts (or through an arbitrary mix matrix), and
// boundary conversion between the common integer PCM encodings and
// float32. The three stages compose into a single streaming converter
// that handles any combination of rate, layout and format change.
//
// # Features
//
//   - Bandlimited interpolation resampler with configurable filter
//     sharpness and stopband attenuation
//   - Pull (producer callback) and push feeding with bounded, paged
//     memory use
//   - Built-in down-mix and up-mix between mono, stereo, 2.1, quad,
//     4.1, 5.1, 6.1 and 7.1, plus explicit N x M mix matrices
//   - Sample format conversion for 8/16/24/32 bit integer PCM in both
//     byte orders, saturating at the rails
//   - Single-threaded, allocation-free processing paths suitable for
//     audio callbacks
//
// # Quick Start
//
// Convert a raw byte stream between two specs:
//
//	conv, err := pcmconv.NewConverter(
//	    pcmconv.StreamSpec{Format: pcmconv.S16LSB, Channels: 2, Rate: 44100},
//	    pcmconv.StreamSpec{Format: pcmconv.F32LSB, Channels: 2, Rate: 48000},
//	    nil,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	out := make([]byte, 4096)
//	for chunk := range rawChunks {
//	    conv.Push(chunk)
//	    n, err := conv.Poll(out)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    writeOutput(out[:n])
//	}
//
// Resample float samples directly:
//
//	r, err := pcmconv.NewRateConverter(2, 44100, 48000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r.Push(input, len(input)/2)
//	n, _ := r.Poll(output, len(output)/2)
//
// A zero frame or byte count from Poll with a nil error is the normal
// end-of-stream signal. Hard failures (invalid buffers, unsupported
// layouts) are returned as errors wrapping [ErrInvalidInput],
// [ErrInvalidConfig] or [ErrUnsupportedLayout].
//
// None of the types are safe for concurrent use, with one exception: a
// [Redistributor] without an explicit matrix holds no state and may be
// shared across streams.
package pcmconv
