// Package layout implements channel redistribution between the
// standard speaker layouts (mono, stereo, 2.1, quad, 4.1, 5.1, 6.1 and
// 7.1). The mix coefficients are the SDL 2.26 channel-conversion magic
// numbers, which downstream consumers compare output levels against,
// so they must be reproduced bit for bit. The one deviation from SDL
// is that a synthesized front-center channel is the average of front
// left and right.
//
// Every converter is safe to call in place (dst and src may be the
// same buffer): expanding conversions walk frames from the end so the
// not-yet-read source frames are never clobbered, while shrinking and
// same-width conversions walk forward for the same reason.
package layout

import (
	"github.com/audiotk/pcmconv/internal/vecops"
)

// MaxChannels is the widest layout with a built-in conversion table.
const MaxChannels = 8

// Supported reports whether a built-in conversion exists between the
// two channel widths.
func Supported(inch, outch int) bool {
	return inch >= 1 && inch <= MaxChannels && outch >= 1 && outch <= MaxChannels
}

// Convert redistributes frames of inch-channel audio in src into
// outch-channel audio in dst using the built-in layout tables. It
// reports false when either width has no built-in layout. dst must
// hold frames*outch samples (and frames*max(inch,outch) samples when
// converting in place).
func Convert(dst, src []float32, inch, outch, frames int) bool {
	if !Supported(inch, outch) {
		return false
	}
	switch inch {
	case 1:
		fromMono(dst, src, outch, frames)
	case 2:
		fromStereo(dst, src, outch, frames)
	case 3:
		from21(dst, src, outch, frames)
	case 4:
		fromQuad(dst, src, outch, frames)
	case 5:
		from41(dst, src, outch, frames)
	case 6:
		from51(dst, src, outch, frames)
	case 7:
		from61(dst, src, outch, frames)
	case 8:
		from71(dst, src, outch, frames)
	}
	return true
}

// aliased reports whether the two slices share a first element, which
// is the only aliasing pattern the converters support in place.
func aliased(dst, src []float32) bool {
	return len(dst) > 0 && len(src) > 0 && &dst[0] == &src[0]
}

// straightCopy copies same-width audio, skipping the copy entirely
// when the buffers alias.
func straightCopy(dst, src []float32, samples int) {
	if !aliased(dst, src) {
		copy(dst[:samples], src[:samples])
	}
}

// Pair converters. Channel order follows SDL: FL FR [FC] [LFE] [BL/BC] BR SL SR.

func monoToStereo(dst, src []float32, frames int) {
	if !aliased(dst, src) {
		vecops.Interleave2(dst[:2*frames], src[:frames], src[:frames])
		return
	}
	for i := frames - 1; i >= 0; i-- {
		v := src[i]
		dst[2*i+1] = v
		dst[2*i] = v
	}
}

func stereoToMono(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		dst[i] = (src[2*i] + src[2*i+1]) * 0.5
	}
}

func stereoTo21(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcFL, srcFR := src[2*i], src[2*i+1]
		dst[3*i+2] = 0.0 // LFE
		dst[3*i+1] = srcFR
		dst[3*i] = srcFL
	}
}

func stereoToQuad(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcFL, srcFR := src[2*i], src[2*i+1]
		dst[4*i+3] = 0.0 // BR
		dst[4*i+2] = 0.0 // BL
		dst[4*i+1] = srcFR
		dst[4*i] = srcFL
	}
}

func stereoTo41(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcFL, srcFR := src[2*i], src[2*i+1]
		dst[5*i+4] = 0.0 // BR
		dst[5*i+3] = 0.0 // BL
		dst[5*i+2] = 0.0 // LFE
		dst[5*i+1] = srcFR
		dst[5*i] = srcFL
	}
}

func stereoTo51(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcFL, srcFR := src[2*i], src[2*i+1]
		dst[6*i+5] = 0.0 // BR
		dst[6*i+4] = 0.0 // BL
		dst[6*i+3] = 0.0 // LFE
		dst[6*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[6*i+1] = srcFR
		dst[6*i] = srcFL
	}
}

func stereoTo61(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcFL, srcFR := src[2*i], src[2*i+1]
		dst[7*i+6] = 0.0 // SR
		dst[7*i+5] = 0.0 // SL
		dst[7*i+4] = 0.0 // BC
		dst[7*i+3] = 0.0 // LFE
		dst[7*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[7*i+1] = srcFR
		dst[7*i] = srcFL
	}
}

func surround21ToMono(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[3*i : 3*i+3]
		dst[i] = s[0]*0.333333343 + s[1]*0.333333343 + s[2]*0.333333343
	}
}

func surround21ToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[3*i : 3*i+3]
		srcLFE := s[2]
		dst[2*i] = s[0]*0.800000012 + srcLFE*0.200000003
		dst[2*i+1] = s[1]*0.800000012 + srcLFE*0.200000003
	}
}

func surround21ToQuad(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcLFE := src[3*i+2] * 0.111111112
		srcFR := src[3*i+1]
		srcFL := src[3*i]
		dst[4*i+3] = srcLFE // BR
		dst[4*i+2] = srcLFE // BL
		dst[4*i+1] = srcFR*0.888888896 + srcLFE
		dst[4*i] = srcFL*0.888888896 + srcLFE
	}
}

func surround21To41(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcLFE := src[3*i+2]
		srcFR := src[3*i+1]
		srcFL := src[3*i]
		dst[5*i+4] = 0.0 // BR
		dst[5*i+3] = 0.0 // BL
		dst[5*i+2] = srcLFE
		dst[5*i+1] = srcFR
		dst[5*i] = srcFL
	}
}

func surround21To51(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcLFE := src[3*i+2]
		srcFR := src[3*i+1]
		srcFL := src[3*i]
		dst[6*i+5] = 0.0 // BR
		dst[6*i+4] = 0.0 // BL
		dst[6*i+3] = srcLFE
		dst[6*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[6*i+1] = srcFR
		dst[6*i] = srcFL
	}
}

func surround21To61(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcLFE := src[3*i+2]
		srcFR := src[3*i+1]
		srcFL := src[3*i]
		dst[7*i+6] = 0.0 // SR
		dst[7*i+5] = 0.0 // SL
		dst[7*i+4] = 0.0 // BC
		dst[7*i+3] = srcLFE
		dst[7*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[7*i+1] = srcFR
		dst[7*i] = srcFL
	}
}

func quadToMono(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[4*i : 4*i+4]
		dst[i] = float32(float64(s[0])*0.25 + float64(s[1])*0.25 + float64(s[2])*0.25 + float64(s[3])*0.25)
	}
}

func quadToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[4*i : 4*i+4]
		srcBL, srcBR := s[2], s[3]
		dst[2*i] = s[0]*0.421000004 + srcBL*0.358999997 + srcBR*0.219999999
		dst[2*i+1] = s[1]*0.421000004 + srcBL*0.219999999 + srcBR*0.358999997
	}
}

func quadTo41(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[4*i+3]
		srcBL := src[4*i+2]
		srcFR := src[4*i+1]
		srcFL := src[4*i]
		dst[5*i+4] = srcBR
		dst[5*i+3] = srcBL
		dst[5*i+2] = 0.0 // LFE
		dst[5*i+1] = srcFR
		dst[5*i] = srcFL
	}
}

func quadTo51(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[4*i+3]
		srcBL := src[4*i+2]
		srcFR := src[4*i+1]
		srcFL := src[4*i]
		dst[6*i+5] = srcBR
		dst[6*i+4] = srcBL
		dst[6*i+3] = 0.0 // LFE
		dst[6*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[6*i+1] = srcFR
		dst[6*i] = srcFL
	}
}

func quadTo61(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[4*i+3]
		srcBL := src[4*i+2]
		srcFR := src[4*i+1]
		srcFL := src[4*i]
		dst[7*i+6] = srcBR * 0.796000004 // SR
		dst[7*i+5] = srcBL * 0.796000004 // SL
		dst[7*i+4] = srcBR*0.5 + srcBL*0.5 // BC
		dst[7*i+3] = 0.0 // LFE
		dst[7*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[7*i+1] = srcFR * 0.939999998
		dst[7*i] = srcFL * 0.939999998
	}
}

func surround41ToMono(dst, src []float32, frames int) {
	const fact = 0.200000003
	for i := 0; i < frames; i++ {
		s := src[5*i : 5*i+5]
		dst[i] = s[0]*fact + s[1]*fact + s[2]*fact + s[3]*fact + s[4]*fact
	}
}

func surround41ToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[5*i : 5*i+5]
		srcLFE, srcBL, srcBR := s[2], s[3], s[4]
		dst[2*i] = s[0]*0.374222219 + srcLFE*0.111111112 + srcBL*0.319111109 + srcBR*0.195555553
		dst[2*i+1] = s[1]*0.374222219 + srcLFE*0.111111112 + srcBL*0.195555553 + srcBR*0.319111109
	}
}

func surround41To21(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[5*i : 5*i+5]
		srcBL, srcBR := s[3], s[4]
		dst[3*i] = s[0]*0.421000004 + srcBL*0.358999997 + srcBR*0.219999999
		dst[3*i+1] = s[1]*0.421000004 + srcBL*0.219999999 + srcBR*0.358999997
		dst[3*i+2] = s[2] // LFE
	}
}

func surround41ToQuad(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[5*i : 5*i+5]
		srcLFE := s[2]
		dst[4*i] = s[0]*0.941176474 + srcLFE*0.058823530
		dst[4*i+1] = s[1]*0.941176474 + srcLFE*0.058823530
		dst[4*i+2] = srcLFE*0.058823530 + s[3]*0.941176474
		dst[4*i+3] = srcLFE*0.058823530 + s[4]*0.941176474
	}
}

func surround41To51(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[5*i+4]
		srcBL := src[5*i+3]
		srcLFE := src[5*i+2]
		srcFR := src[5*i+1]
		srcFL := src[5*i]
		dst[6*i+5] = srcBR
		dst[6*i+4] = srcBL
		dst[6*i+3] = srcLFE
		dst[6*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[6*i+1] = srcFR
		dst[6*i] = srcFL
	}
}

func surround41To61(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[5*i+4]
		srcBL := src[5*i+3]
		srcLFE := src[5*i+2]
		srcFR := src[5*i+1]
		srcFL := src[5*i]
		dst[7*i+6] = srcBR * 0.796000004 // SR
		dst[7*i+5] = srcBL * 0.796000004 // SL
		dst[7*i+4] = srcBR*0.5 + srcBL*0.5 // BC
		dst[7*i+3] = srcLFE
		dst[7*i+2] = (srcFL + srcFR) * 0.5 // FC
		dst[7*i+1] = srcFR
		dst[7*i] = srcFL
	}
}

func surround51ToMono(dst, src []float32, frames int) {
	const fact = 0.166666672
	for i := 0; i < frames; i++ {
		s := src[6*i : 6*i+6]
		dst[i] = s[0]*fact + s[1]*fact + s[2]*fact + s[3]*fact + s[4]*fact + s[5]*fact
	}
}

func surround51ToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[6*i : 6*i+6]
		srcFC := s[2] * 0.208181813
		srcLFE := s[3] * 0.090909094
		srcBL, srcBR := s[4], s[5]
		dst[2*i] = s[0]*0.294545442 + srcFC + srcLFE + srcBL*0.251818180 + srcBR*0.154545456
		dst[2*i+1] = s[1]*0.294545442 + srcFC + srcLFE + srcBL*0.154545456 + srcBR*0.251818180
	}
}

func surround51To21(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[6*i : 6*i+6]
		srcFC, srcBL, srcBR := s[2], s[4], s[5]
		dst[3*i] = s[0]*0.324000001 + srcFC*0.229000002 + srcBL*0.277000010 + srcBR*0.170000002
		dst[3*i+1] = s[1]*0.324000001 + srcFC*0.229000002 + srcBL*0.170000002 + srcBR*0.277000010
		dst[3*i+2] = s[3] // LFE
	}
}

func surround51ToQuad(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[6*i : 6*i+6]
		srcFC := s[2] * 0.394285709
		srcLFE := s[3] * 0.047619049
		dst[4*i] = s[0]*0.558095276 + srcFC + srcLFE
		dst[4*i+1] = s[1]*0.558095276 + srcFC + srcLFE
		dst[4*i+2] = srcLFE + s[4]*0.558095276
		dst[4*i+3] = srcLFE + s[5]*0.558095276
	}
}

func surround51To41(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[6*i : 6*i+6]
		srcFC := s[2]
		dst[5*i] = s[0]*0.586000025 + srcFC*0.414000005
		dst[5*i+1] = s[1]*0.586000025 + srcFC*0.414000005
		dst[5*i+2] = s[3] // LFE
		dst[5*i+3] = s[4] * 0.586000025
		dst[5*i+4] = s[5] * 0.586000025
	}
}

func surround51To61(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[6*i+5]
		srcBL := src[6*i+4]
		srcLFE := src[6*i+3]
		srcFC := src[6*i+2]
		srcFR := src[6*i+1]
		srcFL := src[6*i]
		dst[7*i+6] = srcBR * 0.796000004 // SR
		dst[7*i+5] = srcBL * 0.796000004 // SL
		dst[7*i+4] = srcBR*0.5 + srcBL*0.5 // BC
		dst[7*i+3] = srcLFE
		dst[7*i+2] = srcFC * 0.939999998
		dst[7*i+1] = srcFR * 0.939999998
		dst[7*i] = srcFL * 0.939999998
	}
}

func surround51To71(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcBR := src[6*i+5]
		srcBL := src[6*i+4]
		srcLFE := src[6*i+3]
		srcFC := src[6*i+2]
		srcFR := src[6*i+1]
		srcFL := src[6*i]
		dst[8*i+7] = 0.0 // SR
		dst[8*i+6] = 0.0 // SL
		dst[8*i+5] = srcBR
		dst[8*i+4] = srcBL
		dst[8*i+3] = srcLFE
		dst[8*i+2] = srcFC
		dst[8*i+1] = srcFR
		dst[8*i] = srcFL
	}
}

func surround61ToMono(dst, src []float32, frames int) {
	const fact = 0.143142849
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		out := s[0]*fact + s[1]*fact + s[2]*fact + s[4]*fact + s[5]*fact + s[6]*fact
		dst[i] = out + s[3]*0.142857149
	}
}

func surround61ToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		srcFC, srcLFE, srcBC, srcSL, srcSR := s[2], s[3], s[4], s[5], s[6]
		dst[2*i] = s[0]*0.247384623 + srcFC*0.174461529 + srcLFE*0.076923080 +
			srcBC*0.174461529 + srcSL*0.226153851 + srcSR*0.100615382
		dst[2*i+1] = s[1]*0.247384623 + srcFC*0.174461529 + srcLFE*0.076923080 +
			srcBC*0.174461529 + srcSL*0.100615382 + srcSR*0.226153851
	}
}

func surround61To21(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		srcFC, srcBC, srcSL, srcSR := s[2], s[4], s[5], s[6]
		dst[3*i] = s[0]*0.268000007 + srcFC*0.188999996 + srcBC*0.188999996 +
			srcSL*0.245000005 + srcSR*0.108999997
		dst[3*i+1] = s[1]*0.268000007 + srcFC*0.188999996 + srcBC*0.188999996 +
			srcSL*0.108999997 + srcSR*0.245000005
		dst[3*i+2] = s[3] // LFE
	}
}

func surround61ToQuad(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		srcFC, srcLFE, srcBC, srcSL, srcSR := s[2], s[3], s[4], s[5], s[6]
		dst[4*i] = s[0]*0.463679999 + srcFC*0.327360004 + srcLFE*0.040000003 + srcSL*0.168960005
		dst[4*i+1] = s[1]*0.463679999 + srcFC*0.327360004 + srcLFE*0.040000003 + srcSR*0.168960005
		dst[4*i+2] = srcLFE*0.040000003 + srcBC*0.327360004 + srcSL*0.431039989
		dst[4*i+3] = srcLFE*0.040000003 + srcBC*0.327360004 + srcSR*0.431039989
	}
}

func surround61To41(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		srcFC, srcBC, srcSL, srcSR := s[2], s[4], s[5], s[6]
		dst[5*i] = s[0]*0.483000010 + srcFC*0.340999991 + srcSL*0.175999999
		dst[5*i+1] = s[1]*0.483000010 + srcFC*0.340999991 + srcSR*0.175999999
		dst[5*i+2] = s[3] // LFE
		dst[5*i+3] = srcBC*0.340999991 + srcSL*0.449000001
		dst[5*i+4] = srcBC*0.340999991 + srcSR*0.449000001
	}
}

func surround61To51(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[7*i : 7*i+7]
		srcBC, srcSL, srcSR := s[4], s[5], s[6]
		dst[6*i] = s[0]*0.611000001 + srcSL*0.223000005
		dst[6*i+1] = s[1]*0.611000001 + srcSR*0.223000005
		dst[6*i+2] = s[2] * 0.611000001
		dst[6*i+3] = s[3] // LFE
		dst[6*i+4] = srcBC*0.432000011 + srcSL*0.568000019
		dst[6*i+5] = srcBC*0.432000011 + srcSR*0.568000019
	}
}

func surround61To71(dst, src []float32, frames int) {
	for i := frames - 1; i >= 0; i-- {
		srcSR := src[7*i+6]
		srcSL := src[7*i+5]
		srcBC := src[7*i+4]
		srcLFE := src[7*i+3]
		srcFC := src[7*i+2]
		srcFR := src[7*i+1]
		srcFL := src[7*i]
		dst[8*i+7] = srcSR
		dst[8*i+6] = srcSL
		dst[8*i+5] = srcBC * 0.707000017 // BR
		dst[8*i+4] = srcBC * 0.707000017 // BL
		dst[8*i+3] = srcLFE
		dst[8*i+2] = srcFC
		dst[8*i+1] = srcFR
		dst[8*i] = srcFL
	}
}

func surround71ToMono(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		dst[i] = s[0]*0.125125006 + s[1]*0.125125006 + s[2]*0.125125006 +
			s[3]*0.125000000 + s[4]*0.125125006 + s[5]*0.125125006 +
			s[6]*0.125125006 + s[7]*0.125125006
	}
}

func surround71ToStereo(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcFC, srcLFE := s[2], s[3]
		srcBL, srcBR, srcSL, srcSR := s[4], s[5], s[6], s[7]
		dst[2*i] = s[0]*0.211866662 + srcFC*0.150266662 + srcLFE*0.066666670 +
			srcBL*0.181066677 + srcBR*0.111066669 + srcSL*0.194133341 + srcSR*0.085866667
		dst[2*i+1] = s[1]*0.211866662 + srcFC*0.150266662 + srcLFE*0.066666670 +
			srcBL*0.111066669 + srcBR*0.181066677 + srcSL*0.085866667 + srcSR*0.194133341
	}
}

func surround71To21(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcFC := s[2]
		srcBL, srcBR, srcSL, srcSR := s[4], s[5], s[6], s[7]
		dst[3*i] = s[0]*0.226999998 + srcFC*0.160999998 + srcBL*0.194000006 +
			srcBR*0.119000003 + srcSL*0.208000004 + srcSR*0.092000000
		dst[3*i+1] = s[1]*0.226999998 + srcFC*0.160999998 + srcBL*0.119000003 +
			srcBR*0.194000006 + srcSL*0.092000000 + srcSR*0.208000004
		dst[3*i+2] = s[3] // LFE
	}
}

func surround71ToQuad(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcFC, srcLFE, srcSL, srcSR := s[2], s[3], s[6], s[7]
		dst[4*i] = s[0]*0.466344833 + srcFC*0.329241365 + srcLFE*0.034482758 + srcSL*0.169931039
		dst[4*i+1] = s[1]*0.466344833 + srcFC*0.329241365 + srcLFE*0.034482758 + srcSR*0.169931039
		dst[4*i+2] = srcLFE*0.034482758 + s[4]*0.466344833 + srcSL*0.433517247
		dst[4*i+3] = srcLFE*0.034482758 + s[5]*0.466344833 + srcSR*0.433517247
	}
}

func surround71To41(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcFC, srcSL, srcSR := s[2], s[6], s[7]
		dst[5*i] = s[0]*0.483000010 + srcFC*0.340999991 + srcSL*0.175999999
		dst[5*i+1] = s[1]*0.483000010 + srcFC*0.340999991 + srcSR*0.175999999
		dst[5*i+2] = s[3] // LFE
		dst[5*i+3] = s[4]*0.483000010 + srcSL*0.449000001
		dst[5*i+4] = s[5]*0.483000010 + srcSR*0.449000001
	}
}

func surround71To51(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcSL, srcSR := s[6], s[7]
		dst[6*i] = s[0]*0.518000007 + srcSL*0.188999996
		dst[6*i+1] = s[1]*0.518000007 + srcSR*0.188999996
		dst[6*i+2] = s[2] * 0.518000007
		dst[6*i+3] = s[3] // LFE
		dst[6*i+4] = s[4]*0.518000007 + srcSL*0.481999993
		dst[6*i+5] = s[5]*0.518000007 + srcSR*0.481999993
	}
}

func surround71To61(dst, src []float32, frames int) {
	for i := 0; i < frames; i++ {
		s := src[8*i : 8*i+8]
		srcBL, srcBR := s[4], s[5]
		dst[7*i] = s[0] * 0.541000009
		dst[7*i+1] = s[1] * 0.541000009
		dst[7*i+2] = s[2] * 0.541000009
		dst[7*i+3] = s[3] // LFE
		dst[7*i+4] = srcBL*0.287999988 + srcBR*0.287999988 // BC
		dst[7*i+5] = srcBL*0.458999991 + s[6]*0.541000009  // SL
		dst[7*i+6] = srcBR*0.458999991 + s[7]*0.541000009  // SR
	}
}

// Grouped dispatchers. Combinations without a dedicated pair converter
// route through an intermediate layout in place on dst; the dst buffer
// is always wide enough since it holds outch samples per frame.

func fromMono(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		straightCopy(dst, src, frames)
	case 2:
		monoToStereo(dst, src, frames)
	case 3:
		monoToStereo(dst, src, frames)
		stereoTo21(dst, dst, frames)
	case 4:
		monoToStereo(dst, src, frames)
		stereoToQuad(dst, dst, frames)
	case 5:
		monoToStereo(dst, src, frames)
		stereoTo41(dst, dst, frames)
	case 6:
		monoToStereo(dst, src, frames)
		stereoTo51(dst, dst, frames)
	case 7:
		monoToStereo(dst, src, frames)
		stereoTo61(dst, dst, frames)
	case 8:
		monoToStereo(dst, src, frames)
		stereoTo51(dst, dst, frames)
		surround51To71(dst, dst, frames)
	}
}

func fromStereo(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		stereoToMono(dst, src, frames)
	case 2:
		straightCopy(dst, src, 2*frames)
	case 3:
		stereoTo21(dst, src, frames)
	case 4:
		stereoToQuad(dst, src, frames)
	case 5:
		stereoTo41(dst, src, frames)
	case 6:
		stereoTo51(dst, src, frames)
	case 7:
		stereoTo61(dst, src, frames)
	case 8:
		stereoTo51(dst, src, frames)
		surround51To71(dst, dst, frames)
	}
}

func from21(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		surround21ToMono(dst, src, frames)
	case 2:
		surround21ToStereo(dst, src, frames)
	case 3:
		straightCopy(dst, src, 3*frames)
	case 4:
		surround21ToQuad(dst, src, frames)
	case 5:
		surround21To41(dst, src, frames)
	case 6:
		surround21To51(dst, src, frames)
	case 7:
		surround21To61(dst, src, frames)
	case 8:
		surround21To51(dst, src, frames)
		surround51To71(dst, dst, frames)
	}
}

func fromQuad(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		quadToMono(dst, src, frames)
	case 2:
		quadToStereo(dst, src, frames)
	case 3:
		quadToStereo(dst, src, frames)
		stereoTo21(dst, dst, frames)
	case 4:
		straightCopy(dst, src, 4*frames)
	case 5:
		quadTo41(dst, src, frames)
	case 6:
		quadTo51(dst, src, frames)
	case 7:
		quadTo61(dst, src, frames)
	case 8:
		quadTo51(dst, src, frames)
		surround51To71(dst, dst, frames)
	}
}

func from41(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		surround41ToMono(dst, src, frames)
	case 2:
		surround41ToStereo(dst, src, frames)
	case 3:
		surround41To21(dst, src, frames)
	case 4:
		surround41ToQuad(dst, src, frames)
	case 5:
		straightCopy(dst, src, 5*frames)
	case 6:
		surround41To51(dst, src, frames)
	case 7:
		surround41To61(dst, src, frames)
	case 8:
		surround41To51(dst, src, frames)
		surround51To71(dst, dst, frames)
	}
}

func from51(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		surround51ToMono(dst, src, frames)
	case 2:
		surround51ToStereo(dst, src, frames)
	case 3:
		surround51To21(dst, src, frames)
	case 4:
		surround51ToQuad(dst, src, frames)
	case 5:
		surround51To41(dst, src, frames)
	case 6:
		straightCopy(dst, src, 6*frames)
	case 7:
		surround51To61(dst, src, frames)
	case 8:
		surround51To71(dst, src, frames)
	}
}

func from61(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		surround61ToMono(dst, src, frames)
	case 2:
		surround61ToStereo(dst, src, frames)
	case 3:
		surround61To21(dst, src, frames)
	case 4:
		surround61ToQuad(dst, src, frames)
	case 5:
		surround61To41(dst, src, frames)
	case 6:
		surround61To51(dst, src, frames)
	case 7:
		straightCopy(dst, src, 7*frames)
	case 8:
		surround61To71(dst, src, frames)
	}
}

func from71(dst, src []float32, outch, frames int) {
	switch outch {
	case 1:
		surround71ToMono(dst, src, frames)
	case 2:
		surround71ToStereo(dst, src, frames)
	case 3:
		surround71To21(dst, src, frames)
	case 4:
		surround71ToQuad(dst, src, frames)
	case 5:
		surround71To41(dst, src, frames)
	case 6:
		surround71To51(dst, src, frames)
	case 7:
		surround71To61(dst, src, frames)
	case 8:
		straightCopy(dst, src, 8*frames)
	}
}
