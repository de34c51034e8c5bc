package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/audiotk/pcmconv"
)

// readWAV decodes an entire WAV file into an integer PCM buffer.
func readWAV(path string) (*audio.IntBuffer, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, 0, fmt.Errorf("invalid WAV file: %s", path)
	}
	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return buf, int(decoder.BitDepth), nil
}

// writeWAV encodes an integer PCM buffer to a WAV file.
func writeWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, wavAudioFormatPCM)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return enc.Close()
}

// wavFormat maps a WAV bit depth to the matching sample format. WAV
// stores 8 bit audio unsigned and everything wider signed little
// endian.
func wavFormat(bitDepth int) (pcmconv.SampleFormat, error) {
	switch bitDepth {
	case bitsPerSample8:
		return pcmconv.U8, nil
	case bitsPerSample16:
		return pcmconv.S16LSB, nil
	case bitsPerSample24:
		return pcmconv.S24LSB, nil
	case bitsPerSample32:
		return pcmconv.S32LSB, nil
	}
	return 0, fmt.Errorf("unsupported bit depth %d", bitDepth)
}

// intsToBytes packs decoded integer samples into raw little endian PCM
// bytes at the given bit depth.
func intsToBytes(samples []int, bitDepth int) []byte {
	bytesPer := bitDepth / bitsPerByte
	out := make([]byte, len(samples)*bytesPer)
	for i, s := range samples {
		switch bitDepth {
		case bitsPerSample8:
			out[i] = byte(s)
		case bitsPerSample16:
			binary.LittleEndian.PutUint16(out[2*i:], uint16(int16(s)))
		case bitsPerSample24:
			v := uint32(int32(s))
			out[3*i] = byte(v)
			out[3*i+1] = byte(v >> 8)
			out[3*i+2] = byte(v >> 16)
		case bitsPerSample32:
			binary.LittleEndian.PutUint32(out[4*i:], uint32(int32(s)))
		}
	}
	return out
}

// bytesToInts unpacks raw little endian PCM bytes at the given bit
// depth into integer samples for the WAV encoder.
func bytesToInts(raw []byte, bitDepth int) []int {
	bytesPer := bitDepth / bitsPerByte
	n := len(raw) / bytesPer
	out := make([]int, n)
	for i := 0; i < n; i++ {
		switch bitDepth {
		case bitsPerSample8:
			out[i] = int(raw[i])
		case bitsPerSample16:
			out[i] = int(int16(binary.LittleEndian.Uint16(raw[2*i:])))
		case bitsPerSample24:
			v := uint32(raw[3*i]) | uint32(raw[3*i+1])<<8 | uint32(raw[3*i+2])<<16
			out[i] = int(int32(v<<8) >> 8)
		case bitsPerSample32:
			out[i] = int(int32(binary.LittleEndian.Uint32(raw[4*i:])))
		}
	}
	return out
}
