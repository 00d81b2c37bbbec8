package silk

import "github.com/MoosicBox/MoosicBox-sub012/types"

// lpcOrder returns the LPC order for a SILK-coded bandwidth: 10 for
// NB/MB, 16 for WB. SWB/FB are not coded by the SILK layer.
func lpcOrder(bandwidth Bandwidth) (int, error) {
	switch bandwidth {
	case types.BandwidthNarrowband, types.BandwidthMediumband:
		return 10, nil
	case types.BandwidthWideband:
		return 16, nil
	default:
		return 0, ErrInvalidLSFBandwidth
	}
}

// DecodeLSFStage1 decodes the first-stage normalized LSF codebook index
// (0..31). The distribution is selected by bandwidth class (NB/MB vs WB)
// and by whether the frame is voiced.
//
// Reference: RFC 6716 Section 4.2.7.5.1
func (d *Decoder) DecodeLSFStage1(bandwidth Bandwidth, signalType SignalType) (uint8, error) {
	if d.rangeDecoder == nil {
		return 0, ErrNoRangeDecoder
	}

	order, err := lpcOrder(bandwidth)
	if err != nil {
		return 0, err
	}

	voiced := signalType == SignalTypeVoiced
	var table []uint8
	if order == 10 {
		if voiced {
			table = icdfLSFStage1NBMBVoiced
		} else {
			table = icdfLSFStage1NBMBUnvoiced
		}
	} else {
		if voiced {
			table = icdfLSFStage1WBVoiced
		} else {
			table = icdfLSFStage1WBUnvoiced
		}
	}

	return uint8(d.rangeDecoder.DecodeICDF(table, 8)), nil
}

// DecodeLSFStage2 decodes the second-stage residual indices, one per LSF
// coefficient (10 for NB/MB, 16 for WB). Each coefficient's codebook is
// named by the stage-one row of the selection table. Decoded symbols are
// biased by -4; the extreme values -4 and +4 escape into the shared
// extension distribution, whose value extends the index away from zero.
//
// Reference: RFC 6716 Section 4.2.7.5.2
func (d *Decoder) DecodeLSFStage2(stage1Index uint8, bandwidth Bandwidth) ([]int8, error) {
	if d.rangeDecoder == nil {
		return nil, ErrNoRangeDecoder
	}
	rd := d.rangeDecoder

	order, err := lpcOrder(bandwidth)
	if err != nil {
		return nil, err
	}

	var selection string
	if order == 10 {
		selection = lsfStage2SelectNBMB[stage1Index]
	} else {
		selection = lsfStage2SelectWB[stage1Index]
	}

	indices := make([]int8, order)
	for i := 0; i < order; i++ {
		codebook, err := lsfStage2Codebook(selection[i])
		if err != nil {
			return nil, err
		}
		index := int8(rd.DecodeICDF(codebook, 8) - 4)
		if index == -4 {
			index -= int8(rd.DecodeICDF(icdfLSFStage2Extension, 8))
		} else if index == 4 {
			index += int8(rd.DecodeICDF(icdfLSFStage2Extension, 8))
		}
		indices[i] = index
	}
	return indices, nil
}

// lsfStage2Codebook maps a selection letter to its residual codebook:
// a-h for the NB/MB set, i-p for the WB set.
func lsfStage2Codebook(letter byte) ([]uint8, error) {
	switch {
	case letter >= 'a' && letter <= 'h':
		return icdfLSFStage2NBMB[letter-'a'], nil
	case letter >= 'i' && letter <= 'p':
		return icdfLSFStage2WB[letter-'i'], nil
	default:
		return nil, ErrInvalidLSFCodebook
	}
}
