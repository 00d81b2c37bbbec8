package silk

// SignalType classifies the frame content for parameter decoding.
type SignalType uint8

const (
	SignalTypeInactive SignalType = iota
	SignalTypeUnvoiced
	SignalTypeVoiced
)

// String returns the signal type name.
func (s SignalType) String() string {
	switch s {
	case SignalTypeInactive:
		return "Inactive"
	case SignalTypeUnvoiced:
		return "Unvoiced"
	case SignalTypeVoiced:
		return "Voiced"
	default:
		return "Invalid"
	}
}

// QuantOffsetType selects the quantization offset used by the
// excitation decoder.
type QuantOffsetType uint8

const (
	QuantOffsetLow QuantOffsetType = iota
	QuantOffsetHigh
)

// String returns the quantization offset name.
func (q QuantOffsetType) String() string {
	switch q {
	case QuantOffsetLow:
		return "Low"
	case QuantOffsetHigh:
		return "High"
	default:
		return "Invalid"
	}
}

// DecodeFrameType decodes the combined frame type for one SILK frame.
// The distribution depends on the frame's VAD flag: inactive frames
// choose between the two inactive type/offset pairs, active frames
// between the four unvoiced/voiced pairs. The combined value is the
// signal type in its upper bits and the quantization offset in its low
// bit, and never exceeds 5.
//
// Reference: RFC 6716 Section 4.2.7.3
func (d *Decoder) DecodeFrameType(vadFlag bool) (SignalType, QuantOffsetType, error) {
	if d.rangeDecoder == nil {
		return 0, 0, ErrNoRangeDecoder
	}

	var typeOffset int
	if vadFlag {
		typeOffset = d.rangeDecoder.DecodeICDF(icdfFrameTypeVADActive, 8) + 2
	} else {
		typeOffset = d.rangeDecoder.DecodeICDF(icdfFrameTypeVADInactive, 8)
	}
	if typeOffset > 5 {
		return 0, 0, ErrInvalidFrameType
	}

	return SignalType(typeOffset >> 1), QuantOffsetType(typeOffset & 1), nil
}
