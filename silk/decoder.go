package silk

import (
	"github.com/MoosicBox/MoosicBox-sub012/rangecoding"
	"github.com/MoosicBox/MoosicBox-sub012/types"
)

// Bandwidth is an alias for types.Bandwidth representing the audio bandwidth.
type Bandwidth = types.Bandwidth

// Decoder decodes the side information ("indices") of SILK frames.
// It maintains the inter-frame state the bitstream depends on: the
// previous stereo prediction weights and the previous quantization gain
// index per channel. Calls must follow bitstream order.
//
// Reference: RFC 6716 Section 4.2
type Decoder struct {
	// Configuration (fixed at construction)
	sampleRate    int
	channels      int
	frameSizeMs   int
	numSilkFrames int // SILK frames per Opus frame (1 for 10/20ms, 2 for 40ms, 3 for 60ms)

	// Range decoder reference (set per packet)
	rangeDecoder *rangecoding.Decoder

	// Stereo state (persists across frames)
	havePrevStereoWeights bool
	prevStereoWeights     [2]int16 // Previous w0, w1 prediction weights (Q13)

	// Gain state, one slot per channel (persists across frames)
	havePrevGainIndex [2]bool
	prevGainIndex     [2]uint8 // Last subframe gain index (for delta coding)
}

// NewDecoder creates a SILK side-information decoder.
// frameSizeMs must be 10, 20, 40 or 60.
func NewDecoder(sampleRate, channels, frameSizeMs int) (*Decoder, error) {
	var numSilkFrames int
	switch frameSizeMs {
	case 10, 20:
		numSilkFrames = 1
	case 40:
		numSilkFrames = 2
	case 60:
		numSilkFrames = 3
	default:
		return nil, ErrUnsupportedFrameSize
	}

	return &Decoder{
		sampleRate:    sampleRate,
		channels:      channels,
		frameSizeMs:   frameSizeMs,
		numSilkFrames: numSilkFrames,
	}, nil
}

// SetRangeDecoder attaches the range decoder for the current packet.
// The decoder reads all symbols through it.
func (d *Decoder) SetRangeDecoder(rd *rangecoding.Decoder) {
	d.rangeDecoder = rd
}

// NumSilkFrames returns the number of SILK frames per Opus frame.
func (d *Decoder) NumSilkFrames() int {
	return d.numSilkFrames
}

// SampleRate returns the configured output sample rate.
func (d *Decoder) SampleRate() int {
	return d.sampleRate
}

// Channels returns the configured channel count.
func (d *Decoder) Channels() int {
	return d.channels
}

// FrameSizeMs returns the configured frame duration in milliseconds.
func (d *Decoder) FrameSizeMs() int {
	return d.frameSizeMs
}

// PreviousStereoWeights returns the stereo prediction weights carried
// from the last DecodeStereoWeights call. The second return value is
// false until the first stereo frame has been decoded.
func (d *Decoder) PreviousStereoWeights() ([2]int16, bool) {
	return d.prevStereoWeights, d.havePrevStereoWeights
}

// PreviousGainIndex returns the gain index carried from the last
// DecodeSubframeGains call for the given channel (0 = mid, 1 = side).
// The second return value is false until that channel has decoded gains.
func (d *Decoder) PreviousGainIndex(channel int) (uint8, bool) {
	return d.prevGainIndex[channel], d.havePrevGainIndex[channel]
}

// Reset clears all inter-frame state, as for the start of a new stream.
// The construction-time configuration is kept.
func (d *Decoder) Reset() {
	d.rangeDecoder = nil
	d.havePrevStereoWeights = false
	d.prevStereoWeights = [2]int16{}
	d.havePrevGainIndex = [2]bool{}
	d.prevGainIndex = [2]uint8{}
}
