package silk

import (
	"testing"

	"github.com/MoosicBox/MoosicBox-sub012/rangecoding"
)

func TestDecodeFrameTypeRoundtrip(t *testing.T) {
	tests := []struct {
		name    string
		vadFlag bool
		table   []uint8
		symbol  int
		signal  SignalType
		quant   QuantOffsetType
	}{
		{"inactive low", false, icdfFrameTypeVADInactive, 0, SignalTypeInactive, QuantOffsetLow},
		{"inactive high", false, icdfFrameTypeVADInactive, 1, SignalTypeInactive, QuantOffsetHigh},
		{"unvoiced low", true, icdfFrameTypeVADActive, 0, SignalTypeUnvoiced, QuantOffsetLow},
		{"unvoiced high", true, icdfFrameTypeVADActive, 1, SignalTypeUnvoiced, QuantOffsetHigh},
		{"voiced low", true, icdfFrameTypeVADActive, 2, SignalTypeVoiced, QuantOffsetLow},
		{"voiced high", true, icdfFrameTypeVADActive, 3, SignalTypeVoiced, QuantOffsetHigh},
	}
	for _, tt := range tests {
		var enc rangecoding.Encoder
		enc.Init(make([]byte, 32))
		enc.EncodeICDF(tt.symbol, tt.table, 8)
		raw := enc.Done()

		d := newTestDecoder(t, 20, raw)
		signal, quant, err := d.DecodeFrameType(tt.vadFlag)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}
		if signal != tt.signal || quant != tt.quant {
			t.Errorf("%s: got (%v, %v), want (%v, %v)", tt.name, signal, quant, tt.signal, tt.quant)
		}
	}
}

func TestDecodeFrameTypeAllOnesInput(t *testing.T) {
	for _, vadFlag := range []bool{false, true} {
		d := newTestDecoder(t, 20, []byte{0xFF, 0xFF, 0xFF, 0xFF})
		signal, quant, err := d.DecodeFrameType(vadFlag)
		if err != nil {
			t.Fatalf("vad=%v: %v", vadFlag, err)
		}
		if signal > SignalTypeVoiced {
			t.Errorf("vad=%v: signal type %d out of range", vadFlag, signal)
		}
		if quant > QuantOffsetHigh {
			t.Errorf("vad=%v: quant offset %d out of range", vadFlag, quant)
		}
	}
}

func TestSignalTypeStrings(t *testing.T) {
	if SignalTypeVoiced.String() != "Voiced" || SignalTypeUnvoiced.String() != "Unvoiced" ||
		SignalTypeInactive.String() != "Inactive" {
		t.Error("unexpected SignalType strings")
	}
	if QuantOffsetLow.String() != "Low" || QuantOffsetHigh.String() != "High" {
		t.Error("unexpected QuantOffsetType strings")
	}
}
