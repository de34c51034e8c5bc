// Command convert-wav converts WAV audio files between sample rates,
// channel counts and bit depths.
//
// Usage:
//
//	convert-wav -rate 48000 input.wav output.wav
//	convert-wav -rate 44100 -channels 2 -bits 16 -gain -6 input.wav output.wav
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-audio/audio"

	"github.com/audiotk/pcmconv"
	"github.com/audiotk/pcmconv/internal/pcm"
	"github.com/audiotk/pcmconv/internal/vecops"
)

const (
	bitsPerSample8  = 8
	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32
	bitsPerByte     = 8

	// PCM format tag in the WAV header.
	wavAudioFormatPCM = 1

	// Bytes pushed/polled per pipeline pass.
	chunkBytes = 65536

	minRequiredArgs = 2
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	rate := flag.Int("rate", 0, "Target sample rate in Hz (0 keeps the input rate)")
	channels := flag.Int("channels", 0, "Target channel count (0 keeps the input channels)")
	bits := flag.Int("bits", 0, "Target bit depth: 8, 16, 24 or 32 (0 keeps the input depth)")
	gain := flag.Float64("gain", 0, "Gain applied to the output in dB")
	verbose := flag.Bool("verbose", false, "Print conversion details")
	flag.Parse()

	if flag.NArg() < minRequiredArgs {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] input.wav output.wav\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(2)
	}
	inPath, outPath := flag.Arg(0), flag.Arg(1)

	buf, inBits, err := readWAV(inPath)
	if err != nil {
		return err
	}
	if *rate == 0 {
		*rate = buf.Format.SampleRate
	}
	if *channels == 0 {
		*channels = buf.Format.NumChannels
	}
	if *bits == 0 {
		*bits = inBits
	}

	inFormat, err := wavFormat(inBits)
	if err != nil {
		return err
	}
	outFormat, err := wavFormat(*bits)
	if err != nil {
		return err
	}

	if *verbose {
		log.Printf("input:  %d Hz, %d ch, %d-bit", buf.Format.SampleRate, buf.Format.NumChannels, inBits)
		log.Printf("output: %d Hz, %d ch, %d-bit", *rate, *channels, *bits)
	}

	conv, err := pcmconv.NewConverter(
		pcmconv.StreamSpec{Format: inFormat, Channels: buf.Format.NumChannels, Rate: buf.Format.SampleRate},
		pcmconv.StreamSpec{Format: outFormat, Channels: *channels, Rate: *rate},
		nil,
	)
	if err != nil {
		return err
	}

	raw := intsToBytes(buf.Data, inBits)
	converted, err := convertAll(conv, raw)
	if err != nil {
		return err
	}
	if *gain != 0 {
		applyGain(converted, outFormat, *gain)
	}

	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: *channels, SampleRate: *rate},
		Data:           bytesToInts(converted, *bits),
		SourceBitDepth: *bits,
	}
	if err := writeWAV(outPath, out, *bits); err != nil {
		return err
	}
	if *verbose {
		log.Printf("wrote %d frames to %s", len(out.Data) / *channels, outPath)
	}
	return nil
}

// applyGain scales the samples in data by the given amount of dB in
// place, saturating at the rails on re-encode.
func applyGain(data []byte, f pcmconv.SampleFormat, db float64) {
	scratch := make([]float32, len(data)/f.Bytes())
	pcm.ToFloat32(scratch, data, f)
	vecops.Scale(scratch, scratch, float32(vecops.DbToLinear(db)))
	pcm.FromFloat32(data, scratch, f)
}

// convertAll pushes raw through the converter chunk by chunk and
// collects the converted output, flushing the filter tail at the end.
func convertAll(conv *pcmconv.Converter, raw []byte) ([]byte, error) {
	var result []byte
	out := make([]byte, chunkBytes)

	pushed := 0
	for pushed < len(raw) {
		n, err := conv.Push(raw[pushed:])
		if err != nil {
			return nil, err
		}
		pushed += n
		for {
			m, err := conv.Poll(out)
			if err != nil {
				return nil, err
			}
			if m == 0 {
				break
			}
			result = append(result, out[:m]...)
		}
		if n == 0 {
			return nil, fmt.Errorf("converter accepted no data at offset %d", pushed)
		}
	}

	// Push silence to flush the resampler's lookahead window.
	flush := make([]byte, conv.InSpec().FrameSize()*pcmconv.DefaultZeroCrossings*2)
	if _, err := conv.Push(flush); err != nil {
		return nil, err
	}
	for {
		m, err := conv.Poll(out)
		if err != nil {
			return nil, err
		}
		if m == 0 {
			break
		}
		result = append(result, out[:m]...)
	}
	return result, nil
}
