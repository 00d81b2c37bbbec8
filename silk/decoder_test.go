package silk

import (
	"errors"
	"testing"

	"github.com/MoosicBox/MoosicBox-sub012/rangecoding"
	"github.com/MoosicBox/MoosicBox-sub012/types"
)

func newTestDecoder(t *testing.T, frameSizeMs int, data []byte) *Decoder {
	t.Helper()
	d, err := NewDecoder(48000, 2, frameSizeMs)
	if err != nil {
		t.Fatalf("NewDecoder(%dms): %v", frameSizeMs, err)
	}
	rd := &rangecoding.Decoder{}
	rd.Init(data)
	d.SetRangeDecoder(rd)
	return d
}

func TestNewDecoderFrameSizes(t *testing.T) {
	tests := []struct {
		frameSizeMs   int
		numSilkFrames int
	}{
		{10, 1},
		{20, 1},
		{40, 2},
		{60, 3},
	}
	for _, tt := range tests {
		d, err := NewDecoder(48000, 1, tt.frameSizeMs)
		if err != nil {
			t.Errorf("NewDecoder(%dms): %v", tt.frameSizeMs, err)
			continue
		}
		if got := d.NumSilkFrames(); got != tt.numSilkFrames {
			t.Errorf("NumSilkFrames for %dms: got %d, want %d", tt.frameSizeMs, got, tt.numSilkFrames)
		}
	}
}

func TestNewDecoderRejectsFrameSizes(t *testing.T) {
	for _, ms := range []int{0, 5, 15, 30, 80, -20} {
		if _, err := NewDecoder(48000, 1, ms); !errors.Is(err, ErrUnsupportedFrameSize) {
			t.Errorf("NewDecoder(%dms): got %v, want ErrUnsupportedFrameSize", ms, err)
		}
	}
}

func TestDecodeWithoutRangeDecoder(t *testing.T) {
	d, err := NewDecoder(48000, 2, 20)
	if err != nil {
		t.Fatalf("NewDecoder: %v", err)
	}

	if _, err := d.DecodeHeaderBits(true); err != ErrNoRangeDecoder {
		t.Errorf("DecodeHeaderBits: got %v, want ErrNoRangeDecoder", err)
	}
	if _, err := d.DecodePerFrameLBRRFlags(); err != ErrNoRangeDecoder {
		t.Errorf("DecodePerFrameLBRRFlags: got %v, want ErrNoRangeDecoder", err)
	}
	if _, err := d.DecodeStereoWeights(); err != ErrNoRangeDecoder {
		t.Errorf("DecodeStereoWeights: got %v, want ErrNoRangeDecoder", err)
	}
	if _, _, err := d.DecodeFrameType(true); err != ErrNoRangeDecoder {
		t.Errorf("DecodeFrameType: got %v, want ErrNoRangeDecoder", err)
	}
	if _, err := d.DecodeSubframeGains(SignalTypeVoiced, 4, 0, true); err != ErrNoRangeDecoder {
		t.Errorf("DecodeSubframeGains: got %v, want ErrNoRangeDecoder", err)
	}
	if _, err := d.DecodeLSFStage1(types.BandwidthWideband, SignalTypeVoiced); err != ErrNoRangeDecoder {
		t.Errorf("DecodeLSFStage1: got %v, want ErrNoRangeDecoder", err)
	}
	if _, err := d.DecodeLSFStage2(0, types.BandwidthWideband); err != ErrNoRangeDecoder {
		t.Errorf("DecodeLSFStage2: got %v, want ErrNoRangeDecoder", err)
	}
}

func TestDecoderState(t *testing.T) {
	d := newTestDecoder(t, 20, []byte{0x5A, 0xC3, 0x7E, 0x11, 0x90, 0x42})

	if _, ok := d.PreviousStereoWeights(); ok {
		t.Error("new decoder should not carry stereo weights")
	}
	if _, ok := d.PreviousGainIndex(0); ok {
		t.Error("new decoder should not carry a gain index for channel 0")
	}
	if _, ok := d.PreviousGainIndex(1); ok {
		t.Error("new decoder should not carry a gain index for channel 1")
	}

	if _, err := d.DecodeStereoWeights(); err != nil {
		t.Fatalf("DecodeStereoWeights: %v", err)
	}
	if _, err := d.DecodeSubframeGains(SignalTypeUnvoiced, 2, 0, true); err != nil {
		t.Fatalf("DecodeSubframeGains: %v", err)
	}

	if _, ok := d.PreviousStereoWeights(); !ok {
		t.Error("stereo weights not carried after decode")
	}
	if _, ok := d.PreviousGainIndex(0); !ok {
		t.Error("gain index not carried after decode")
	}
	if _, ok := d.PreviousGainIndex(1); ok {
		t.Error("channel 1 gain index set without decoding channel 1")
	}

	d.Reset()
	if _, ok := d.PreviousStereoWeights(); ok {
		t.Error("stereo weights survived Reset")
	}
	if _, ok := d.PreviousGainIndex(0); ok {
		t.Error("gain index survived Reset")
	}
	if d.NumSilkFrames() != 1 || d.FrameSizeMs() != 20 || d.Channels() != 2 {
		t.Error("Reset changed construction-time configuration")
	}
}

// Identical bytes through two fresh decoders must produce identical
// outputs and identical carried state.
func TestDecodeDeterminism(t *testing.T) {
	data := []byte{0x3B, 0x91, 0xE4, 0x08, 0x5C, 0xAA, 0x27, 0xF0, 0x66, 0x1D}

	run := func() ([2]int16, []uint8, uint8, []int8, uint8) {
		d := newTestDecoder(t, 40, data)
		weights, err := d.DecodeStereoWeights()
		if err != nil {
			t.Fatalf("DecodeStereoWeights: %v", err)
		}
		gains, err := d.DecodeSubframeGains(SignalTypeVoiced, 4, 0, true)
		if err != nil {
			t.Fatalf("DecodeSubframeGains: %v", err)
		}
		stage1, err := d.DecodeLSFStage1(types.BandwidthWideband, SignalTypeVoiced)
		if err != nil {
			t.Fatalf("DecodeLSFStage1: %v", err)
		}
		stage2, err := d.DecodeLSFStage2(stage1, types.BandwidthWideband)
		if err != nil {
			t.Fatalf("DecodeLSFStage2: %v", err)
		}
		prevGain, _ := d.PreviousGainIndex(0)
		return weights, gains, stage1, stage2, prevGain
	}

	w1, g1, s1, r1, p1 := run()
	w2, g2, s2, r2, p2 := run()

	if w1 != w2 {
		t.Errorf("stereo weights differ: %v vs %v", w1, w2)
	}
	if len(g1) != len(g2) {
		t.Fatalf("gain counts differ: %d vs %d", len(g1), len(g2))
	}
	for i := range g1 {
		if g1[i] != g2[i] {
			t.Errorf("gain %d differs: %d vs %d", i, g1[i], g2[i])
		}
	}
	if s1 != s2 {
		t.Errorf("stage-1 index differs: %d vs %d", s1, s2)
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Errorf("stage-2 index %d differs: %d vs %d", i, r1[i], r2[i])
		}
	}
	if p1 != p2 {
		t.Errorf("carried gain index differs: %d vs %d", p1, p2)
	}
}
