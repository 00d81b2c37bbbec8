package silk

// HeaderBits holds the VAD and LBRR flags decoded from the start of the
// SILK payload. Side fields are only populated for stereo packets.
//
// Reference: RFC 6716 Section 4.2.3
type HeaderBits struct {
	MidVADFlags  []bool // One VAD flag per SILK frame, mid channel
	MidLBRRFlag  bool   // LBRR present for mid channel
	SideVADFlags []bool // One VAD flag per SILK frame, side channel (nil for mono)
	SideLBRRFlag bool   // LBRR present for side channel
}

// DecodeHeaderBits decodes the per-channel VAD flags and LBRR flags.
// The mid channel's flags come first, then the side channel's when the
// packet is stereo. Each flag is a single uniformly likely bit.
func (d *Decoder) DecodeHeaderBits(stereo bool) (HeaderBits, error) {
	var header HeaderBits
	if d.rangeDecoder == nil {
		return header, ErrNoRangeDecoder
	}

	header.MidVADFlags = d.decodeChannelFlags(&header.MidLBRRFlag)
	if stereo {
		header.SideVADFlags = d.decodeChannelFlags(&header.SideLBRRFlag)
	}
	return header, nil
}

func (d *Decoder) decodeChannelFlags(lbrr *bool) []bool {
	vad := make([]bool, d.numSilkFrames)
	for i := range vad {
		vad[i] = d.rangeDecoder.DecodeBit(1) == 1
	}
	*lbrr = d.rangeDecoder.DecodeBit(1) == 1
	return vad
}

// DecodePerFrameLBRRFlags expands a channel's set LBRR flag into
// per-SILK-frame flags; call it only for channels whose header LBRR
// flag is set. For 10 and 20 ms frames there is a single SILK frame and
// the answer is true, consuming no bits. For 40 and 60 ms frames a flag
// pattern symbol is decoded and unpacked low-to-high, one bit per SILK
// frame.
//
// Reference: RFC 6716 Section 4.2.4
func (d *Decoder) DecodePerFrameLBRRFlags() ([]bool, error) {
	if d.rangeDecoder == nil {
		return nil, ErrNoRangeDecoder
	}

	flags := make([]bool, d.numSilkFrames)
	if d.numSilkFrames == 1 {
		flags[0] = true
		return flags, nil
	}

	table := icdfLBRRFlags2
	if d.numSilkFrames == 3 {
		table = icdfLBRRFlags3
	}
	// Symbol 0 (all flags clear) is never coded; the stream carries
	// pattern-1, so add the 1 back before unpacking.
	pattern := d.rangeDecoder.DecodeICDF(table, 8) + 1
	for i := range flags {
		flags[i] = (pattern>>i)&1 == 1
	}
	return flags, nil
}
