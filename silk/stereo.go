package silk

// DecodeStereoWeights decodes the two mid/side prediction weights (Q13)
// for a stereo frame and records them as the previous weights for the
// next frame.
//
// Five symbols are decoded: a joint symbol n in 0..24, then for each
// weight a coarse table index and a fine interpolation offset. The
// joint symbol contributes the high part of both coarse indices. Each
// weight interpolates between adjacent entries of the Q13 quantization
// table in steps of roughly 0.1 (6554 in Q16), and the first weight is
// coded relative to the second. Both weights are bounded by the table
// extremes, +/-13732.
//
// Reference: RFC 6716 Section 4.2.7.1
func (d *Decoder) DecodeStereoWeights() ([2]int16, error) {
	if d.rangeDecoder == nil {
		return [2]int16{}, ErrNoRangeDecoder
	}
	rd := d.rangeDecoder

	n := rd.DecodeICDF(icdfStereoPredJoint, 8)
	i0 := rd.DecodeICDF(icdfStereoUniform3, 8)
	i1 := rd.DecodeICDF(icdfStereoUniform5, 8)
	i2 := rd.DecodeICDF(icdfStereoUniform3, 8)
	i3 := rd.DecodeICDF(icdfStereoUniform5, 8)

	wi0 := i0 + 3*(n/5)
	wi1 := i2 + 3*(n%5)

	w1 := interpolateStereoWeight(wi1, i3)
	w0 := interpolateStereoWeight(wi0, i1) - w1

	weights := [2]int16{clampStereoWeight(w0), clampStereoWeight(w1)}
	d.prevStereoWeights = weights
	d.havePrevStereoWeights = true
	return weights, nil
}

// interpolateStereoWeight computes low + ((high-low)*6554 >> 16) * (2*i+1)
// over adjacent Q13 table entries, matching the fixed-point reference
// arithmetic exactly.
func interpolateStereoWeight(wi, fineIndex int) int32 {
	low := int32(stereoPredQuantQ13[wi])
	step := ((int32(stereoPredQuantQ13[wi+1]) - low) * 6554) >> 16
	return low + step*int32(2*fineIndex+1)
}

// clampStereoWeight keeps a weight inside the bounds of the Q13
// quantization table. The relative coding of w0 can otherwise push it
// past the table extremes.
func clampStereoWeight(w int32) int16 {
	const bound = 13732
	if w < -bound {
		return -bound
	}
	if w > bound {
		return bound
	}
	return int16(w)
}
