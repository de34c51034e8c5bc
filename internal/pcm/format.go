// Package pcm converts interleaved PCM sample data between the
// supported integer encodings and the float32 samples the processing
// core works in. Integer formats saturate at the rails on the way out
// and normalize to [-1,1] on the way in. The 32 bit integer formats
// carry 24 significant bits, matching common audio hardware, so a
// 32 bit round trip preserves the top 24 bits only.
package pcm

import "fmt"

// Format identifies a sample encoding together with its byte order.
// Multi-byte formats exist in little endian (LSB) and big endian (MSB)
// variants.
type Format int

const (
	S8 Format = iota
	U8
	S16LSB
	S16MSB
	U16LSB
	U16MSB
	S24LSB
	S24MSB
	S32LSB
	S32MSB
	U32LSB
	U32MSB
	F32LSB
	F32MSB
)

// Bytes returns the size of one sample in this format.
func (f Format) Bytes() int {
	switch f {
	case S8, U8:
		return 1
	case S16LSB, S16MSB, U16LSB, U16MSB:
		return 2
	case S24LSB, S24MSB:
		return 3
	case S32LSB, S32MSB, U32LSB, U32MSB, F32LSB, F32MSB:
		return 4
	}
	return 0
}

// Valid reports whether f is one of the defined sample formats.
func (f Format) Valid() bool {
	return f >= S8 && f <= F32MSB
}

// Signed reports whether the format stores signed integer samples.
func (f Format) Signed() bool {
	switch f {
	case S8, S16LSB, S16MSB, S24LSB, S24MSB, S32LSB, S32MSB:
		return true
	}
	return false
}

// Float reports whether the format stores IEEE float samples.
func (f Format) Float() bool {
	return f == F32LSB || f == F32MSB
}

// BigEndian reports whether multi-byte samples are stored most
// significant byte first.
func (f Format) BigEndian() bool {
	switch f {
	case S16MSB, U16MSB, S24MSB, S32MSB, U32MSB, F32MSB:
		return true
	}
	return false
}

// ByteSwapped returns the same encoding in the opposite byte order and
// true, or f and false for the single-byte formats.
func (f Format) ByteSwapped() (Format, bool) {
	switch f {
	case S16LSB:
		return S16MSB, true
	case S16MSB:
		return S16LSB, true
	case U16LSB:
		return U16MSB, true
	case U16MSB:
		return U16LSB, true
	case S24LSB:
		return S24MSB, true
	case S24MSB:
		return S24LSB, true
	case S32LSB:
		return S32MSB, true
	case S32MSB:
		return S32LSB, true
	case U32LSB:
		return U32MSB, true
	case U32MSB:
		return U32LSB, true
	case F32LSB:
		return F32MSB, true
	case F32MSB:
		return F32LSB, true
	}
	return f, false
}

func (f Format) String() string {
	switch f {
	case S8:
		return "s8"
	case U8:
		return "u8"
	case S16LSB:
		return "s16le"
	case S16MSB:
		return "s16be"
	case U16LSB:
		return "u16le"
	case U16MSB:
		return "u16be"
	case S24LSB:
		return "s24le"
	case S24MSB:
		return "s24be"
	case S32LSB:
		return "s32le"
	case S32MSB:
		return "s32be"
	case U32LSB:
		return "u32le"
	case U32MSB:
		return "u32be"
	case F32LSB:
		return "f32le"
	case F32MSB:
		return "f32be"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Parse returns the format named by s, using the same short names
// String produces (s16le, f32be, and so on).
func Parse(s string) (Format, error) {
	for f := S8; f <= F32MSB; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown sample format %q", s)
}
