package pcm

import (
	"encoding/binary"
	"math"
)

// Integer rails. The 24 in 32 bit formats scale by the 24 bit rail and
// shift into the top bytes, so the low byte of a 32 bit sample is
// always zero on encode and ignored on decode.
const (
	rail8  = 127
	rail16 = 32767
	rail24 = 8388607

	invRail8  = float32(1.0 / 127.0)
	invRail16 = float32(1.0 / 32767.0)
	invRail24 = float32(1.0 / 8388607.0)
)

// ToFloat32 decodes samples from src into dst, normalizing integer
// formats to [-1,1]. It decodes min(len(dst), len(src)/f.Bytes())
// samples and returns the count.
func ToFloat32(dst []float32, src []byte, f Format) int {
	n := len(src) / f.Bytes()
	if n > len(dst) {
		n = len(dst)
	}
	order := byteOrder(f)
	switch f {
	case S8:
		for i := 0; i < n; i++ {
			dst[i] = clampUnit(float32(int8(src[i])) * invRail8)
		}
	case U8:
		for i := 0; i < n; i++ {
			if src[i] == 255 {
				dst[i] = 1.0
			} else {
				dst[i] = float32(src[i])*invRail8 - 1.0
			}
		}
	case S16LSB, S16MSB:
		for i := 0; i < n; i++ {
			s := int16(order.Uint16(src[2*i:]))
			if s == math.MinInt16 {
				dst[i] = -1.0
			} else {
				dst[i] = float32(s) * invRail16
			}
		}
	case U16LSB, U16MSB:
		for i := 0; i < n; i++ {
			switch s := order.Uint16(src[2*i:]); s {
			case 0:
				dst[i] = 0.0
			case math.MaxUint16:
				dst[i] = 1.0
			default:
				dst[i] = float32(s)*invRail16 - 1.0
			}
		}
	case S24LSB:
		for i := 0; i < n; i++ {
			b := src[3*i : 3*i+3]
			s := int32(uint32(b[0])|uint32(b[1])<<8|uint32(b[2])<<16) << 8 >> 8
			dst[i] = clampUnit(float32(s) * invRail24)
		}
	case S24MSB:
		for i := 0; i < n; i++ {
			b := src[3*i : 3*i+3]
			s := int32(uint32(b[2])|uint32(b[1])<<8|uint32(b[0])<<16) << 8 >> 8
			dst[i] = clampUnit(float32(s) * invRail24)
		}
	case S32LSB, S32MSB:
		for i := 0; i < n; i++ {
			s := int32(order.Uint32(src[4*i:]))
			dst[i] = float32(s>>8) * invRail24
		}
	case U32LSB, U32MSB:
		for i := 0; i < n; i++ {
			s := int32(order.Uint32(src[4*i:]) ^ 0x80000000)
			dst[i] = float32(s>>8) * invRail24
		}
	case F32LSB, F32MSB:
		for i := 0; i < n; i++ {
			dst[i] = math.Float32frombits(order.Uint32(src[4*i:]))
		}
	default:
		return 0
	}
	return n
}

// FromFloat32 encodes samples from src into dst, saturating integer
// formats at the rails. It encodes min(len(src), len(dst)/f.Bytes())
// samples and returns the count.
func FromFloat32(dst []byte, src []float32, f Format) int {
	n := len(dst) / f.Bytes()
	if n > len(src) {
		n = len(src)
	}
	order := byteOrder(f)
	switch f {
	case S8:
		for i := 0; i < n; i++ {
			switch s := src[i]; {
			case s >= 1.0:
				dst[i] = byte(int8(rail8))
			case s <= -1.0:
				dst[i] = 0x80
			default:
				dst[i] = byte(int8(s * rail8))
			}
		}
	case U8:
		for i := 0; i < n; i++ {
			switch s := src[i]; {
			case s >= 1.0:
				dst[i] = math.MaxUint8
			case s <= -1.0:
				dst[i] = 0
			default:
				dst[i] = uint8((s + 1.0) * rail8)
			}
		}
	case S16LSB, S16MSB:
		for i := 0; i < n; i++ {
			var v int16
			switch s := src[i]; {
			case s >= 1.0:
				v = rail16
			case s <= -1.0:
				v = math.MinInt16
			default:
				v = int16(s * rail16)
			}
			order.PutUint16(dst[2*i:], uint16(v))
		}
	case U16LSB, U16MSB:
		for i := 0; i < n; i++ {
			var v uint16
			switch s := src[i]; {
			case s >= 1.0:
				v = math.MaxUint16
			case s <= -1.0:
				v = 0
			default:
				v = uint16((s + 1.0) * rail16)
			}
			order.PutUint16(dst[2*i:], v)
		}
	case S24LSB:
		for i := 0; i < n; i++ {
			v := uint32(encode24(src[i]))
			dst[3*i] = byte(v)
			dst[3*i+1] = byte(v >> 8)
			dst[3*i+2] = byte(v >> 16)
		}
	case S24MSB:
		for i := 0; i < n; i++ {
			v := uint32(encode24(src[i]))
			dst[3*i] = byte(v >> 16)
			dst[3*i+1] = byte(v >> 8)
			dst[3*i+2] = byte(v)
		}
	case S32LSB, S32MSB:
		for i := 0; i < n; i++ {
			order.PutUint32(dst[4*i:], uint32(encode32(src[i])))
		}
	case U32LSB, U32MSB:
		for i := 0; i < n; i++ {
			order.PutUint32(dst[4*i:], uint32(encode32(src[i]))^0x80000000)
		}
	case F32LSB, F32MSB:
		for i := 0; i < n; i++ {
			order.PutUint32(dst[4*i:], math.Float32bits(src[i]))
		}
	default:
		return 0
	}
	return n
}

func byteOrder(f Format) binary.ByteOrder {
	if f.BigEndian() {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

func clampUnit(s float32) float32 {
	if s > 1.0 {
		return 1.0
	}
	if s < -1.0 {
		return -1.0
	}
	return s
}

func encode24(s float32) int32 {
	if s >= 1.0 {
		return rail24
	}
	if s <= -1.0 {
		return -rail24 - 1
	}
	return int32(s * rail24)
}

func encode32(s float32) int32 {
	if s >= 1.0 {
		return math.MaxInt32
	}
	if s <= -1.0 {
		return math.MinInt32
	}
	return int32(s*rail24) << 8
}

// Swap16 reverses the byte order of every 16 bit sample in buf in
// place. Trailing odd bytes are left untouched.
func Swap16(buf []byte) {
	for i := 0; i+1 < len(buf); i += 2 {
		buf[i], buf[i+1] = buf[i+1], buf[i]
	}
}

// Swap32 reverses the byte order of every 32 bit sample in buf in
// place. Trailing bytes short of a full sample are left untouched.
func Swap32(buf []byte) {
	for i := 0; i+3 < len(buf); i += 4 {
		buf[i], buf[i+3] = buf[i+3], buf[i]
		buf[i+1], buf[i+2] = buf[i+2], buf[i+1]
	}
}
