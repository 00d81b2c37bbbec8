package rangecoding

import "math/bits"

// Decoder implements the range decoder per RFC 6716 Section 4.1.
// The arithmetic is a bit-exact port of libopus entdec.c; any deviation
// desynchronizes the symbol stream.
type Decoder struct {
	buf        []byte // Input buffer
	storage    uint32 // Buffer size
	offs       uint32 // Current read offset
	nbitsTotal int    // Total bits read (for tell functions)
	rng        uint32 // Range size (must stay > EC_CODE_BOT after normalize)
	val        uint32 // Current value in range
	rem        int    // Buffered partial byte
	err        int    // Error flag
}

// Init initializes the decoder with the given byte buffer.
// This follows libopus ec_dec_init exactly.
func (d *Decoder) Init(buf []byte) {
	d.buf = buf
	d.storage = uint32(len(buf))
	d.offs = 0
	d.err = 0

	d.rng = 1 << EC_CODE_EXTRA
	d.rem = int(d.readByte())
	d.val = d.rng - 1 - uint32(d.rem>>(EC_SYM_BITS-EC_CODE_EXTRA))

	// Set initial bit count BEFORE normalize (matches libopus ec_dec_init);
	// it compensates for the bits normalize() is about to add.
	d.nbitsTotal = EC_CODE_BITS + 1 -
		((EC_CODE_BITS-EC_CODE_EXTRA)/EC_SYM_BITS)*EC_SYM_BITS

	d.normalize()
}

// readByte reads the next byte, returning 0 past the end of the buffer.
// A drained stream keeps producing symbols from zero bytes (RFC 6716
// Section 4.1.1); running out of input is not an error here.
func (d *Decoder) readByte() byte {
	if d.offs < d.storage {
		b := d.buf[d.offs]
		d.offs++
		return b
	}
	return 0
}

// normalize ensures rng > EC_CODE_BOT by reading more bytes.
// This is the renormalization loop from RFC 6716 Section 4.1.1.
func (d *Decoder) normalize() {
	for d.rng <= EC_CODE_BOT {
		d.nbitsTotal += EC_SYM_BITS
		d.rng <<= EC_SYM_BITS

		sym := d.rem
		d.rem = int(d.readByte())
		sym = (sym<<EC_SYM_BITS | d.rem) >> (EC_SYM_BITS - EC_CODE_EXTRA)

		d.val = ((d.val << EC_SYM_BITS) + uint32(EC_SYM_MAX&^sym)) & (EC_CODE_TOP - 1)
	}
}

// DecodeICDF decodes a symbol using an inverse cumulative distribution
// function table. The table holds values decreasing from just under 256
// down to a terminating 0; ftb is the precision in bits (8 for all SILK
// tables). Returns the decoded symbol index.
func (d *Decoder) DecodeICDF(icdf []uint8, ftb uint) int {
	s := d.rng
	dval := d.val
	r := s >> ftb
	ret := -1
	for {
		t := s
		ret++
		s = r * uint32(icdf[ret])
		if dval >= s {
			d.val = dval - s
			d.rng = t - s
			d.normalize()
			return ret
		}
	}
}

// DecodeBit decodes a single bit with the given log probability.
// P(0) = 1 - 1/(2^logp), P(1) = 1/(2^logp). Returns 0 or 1.
//
// Per libopus entdec.c the bottom region [0, rng>>logp) codes a 1.
func (d *Decoder) DecodeBit(logp uint) int {
	r := d.rng
	dval := d.val
	s := r >> logp

	ret := 0
	if dval < s {
		ret = 1
	} else {
		d.val = dval - s
	}

	if ret == 1 {
		d.rng = s
	} else {
		d.rng = r - s
	}

	d.normalize()
	return ret
}

// Tell returns the number of bits consumed so far.
func (d *Decoder) Tell() int {
	return d.nbitsTotal - ilog(d.rng)
}

// TellFrac returns the number of bits consumed with 1/8 bit precision.
func (d *Decoder) TellFrac() int {
	correction := [8]uint32{35733, 38967, 42495, 46340, 50535, 55109, 60097, 65535}

	nbits := d.nbitsTotal << 3
	l := ilog(d.rng)
	r := d.rng >> (l - 16)
	b := int((r >> 12) - 8)
	if r > correction[b] {
		b++
	}
	return nbits - ((l << 3) + b)
}

// State returns the internal range decoder state (rng, val).
// Useful for bit-exact comparisons in tests.
func (d *Decoder) State() (uint32, uint32) {
	return d.rng, d.val
}

// Range returns the current range value.
func (d *Decoder) Range() uint32 {
	return d.rng
}

// BytesUsed returns the number of bytes consumed from the buffer.
func (d *Decoder) BytesUsed() int {
	return int(d.offs)
}

// Error returns the error flag. Non-zero indicates stream corruption.
func (d *Decoder) Error() int {
	return d.err
}

// ilog computes the integer log base 2 (position of highest set bit + 1).
func ilog(x uint32) int {
	return bits.Len32(x)
}
