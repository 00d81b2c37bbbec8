package silk

const maxGainIndex = 63

// DecodeSubframeGains decodes the quantization gain index for each
// subframe of one SILK frame. channel selects the previous-gain state
// slot (0 = mid, 1 = side); isFirstFrame forces independent coding for
// the first subframe, which is otherwise used only when the channel has
// no carried gain index.
//
// An independently coded first subframe carries a 3-bit MSB symbol
// conditioned on the signal type plus a uniform 3-bit LSB symbol; when a
// previous index exists the result is floored at that index minus 16.
// All other subframes carry a delta from the preceding index: deltas
// below 16 move the index by delta-4, larger deltas by 2*delta-16,
// clamped into 0..63.
//
// Reference: RFC 6716 Section 4.2.7.4
func (d *Decoder) DecodeSubframeGains(signalType SignalType, numSubframes, channel int, isFirstFrame bool) ([]uint8, error) {
	if d.rangeDecoder == nil {
		return nil, ErrNoRangeDecoder
	}
	rd := d.rangeDecoder

	gains := make([]uint8, numSubframes)
	logGain := 0
	for i := 0; i < numSubframes; i++ {
		if i == 0 && (isFirstFrame || !d.havePrevGainIndex[channel]) {
			msb := rd.DecodeICDF(icdfGainMSB[signalType], 8)
			lsb := rd.DecodeICDF(icdfGainLSB, 8)
			logGain = msb<<3 | lsb
			if d.havePrevGainIndex[channel] {
				if floor := int(d.prevGainIndex[channel]) - 16; logGain < floor {
					logGain = floor
				}
			}
		} else {
			prev := logGain
			if i == 0 {
				prev = int(d.prevGainIndex[channel])
			}
			delta := rd.DecodeICDF(icdfDeltaGain, 8)
			if delta < 16 {
				logGain = prev + delta - 4
			} else {
				logGain = prev + 2*delta - 16
			}
			if logGain < 0 {
				logGain = 0
			} else if logGain > maxGainIndex {
				logGain = maxGainIndex
			}
		}
		gains[i] = uint8(logGain)
	}

	d.prevGainIndex[channel] = gains[numSubframes-1]
	d.havePrevGainIndex[channel] = true
	return gains, nil
}
