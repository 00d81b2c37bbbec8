package rangecoding

// Encoder implements the range encoder per RFC 6716 Section 4.1, the
// symmetric inverse of Decoder. It is a bit-exact port of libopus
// celt/entenc.c, kept so tests can author streams with known symbol
// content and decode them back.
type Encoder struct {
	buf        []byte // Output buffer (pre-allocated)
	storage    uint32 // Buffer capacity
	offs       uint32 // Current write offset
	nbitsTotal int    // Total bits written (for tell functions)
	rng        uint32 // Range size
	val        uint32 // Low end of range
	rem        int    // Buffered byte for carry propagation (-1 = none yet)
	ext        uint32 // Count of pending 0xFF bytes
	err        int    // Error flag
}

// Init initializes the encoder with the given output buffer.
// The buffer must be pre-allocated to the maximum expected output size.
func (e *Encoder) Init(buf []byte) {
	e.buf = buf
	e.storage = uint32(len(buf))
	e.offs = 0
	e.nbitsTotal = EC_CODE_BITS + 1
	e.rng = EC_CODE_TOP
	e.val = 0
	e.rem = -1
	e.ext = 0
	e.err = 0
}

// carryOut propagates carries while emitting bytes, per libopus
// ec_enc_carry_out. Runs of 0xFF bytes are held back in ext until a
// non-0xFF symbol resolves whether they carry.
func (e *Encoder) carryOut(c int) {
	if c != EC_SYM_MAX {
		carry := c >> EC_SYM_BITS
		if e.rem >= 0 {
			e.writeByte(byte(e.rem + carry))
		}
		if e.ext > 0 {
			sym := (EC_SYM_MAX + carry) & EC_SYM_MAX
			for e.ext > 0 {
				e.writeByte(byte(sym))
				e.ext--
			}
		}
		e.rem = c & EC_SYM_MAX
	} else {
		e.ext++
	}
}

// normalize renormalizes the range, emitting high bits of val.
// This follows libopus ec_enc_normalize exactly.
func (e *Encoder) normalize() {
	for e.rng <= EC_CODE_BOT {
		e.carryOut(int(e.val >> EC_CODE_SHIFT))
		e.val = (e.val << EC_SYM_BITS) & (EC_CODE_TOP - 1)
		e.rng <<= EC_SYM_BITS
		e.nbitsTotal += EC_SYM_BITS
	}
}

func (e *Encoder) writeByte(b byte) {
	if e.offs >= e.storage {
		e.err = -1
		return
	}
	e.buf[e.offs] = b
	e.offs++
}

// EncodeICDF encodes symbol s using an inverse CDF table with ftb bits
// of precision. Direct port of libopus ec_enc_icdf.
func (e *Encoder) EncodeICDF(s int, icdf []uint8, ftb uint) {
	r := e.rng >> ftb
	if s > 0 {
		e.val += e.rng - r*uint32(icdf[s-1])
		e.rng = r * uint32(icdf[s-1]-icdf[s])
	} else {
		e.rng -= r * uint32(icdf[s])
	}
	e.normalize()
}

// EncodeBit encodes a single bit with the given log probability.
// P(0) = 1 - 1/(2^logp), P(1) = 1/(2^logp); the bottom region codes a 1,
// mirroring Decoder.DecodeBit.
func (e *Encoder) EncodeBit(val int, logp uint) {
	if logp == 0 {
		return
	}
	r := e.rng
	s := r >> logp
	if val != 0 {
		e.val += r - s
		e.rng = s
	} else {
		e.rng = r - s
	}
	e.normalize()
}

// Done finalizes the encoding and returns the encoded bytes.
// After calling Done the encoder must be re-initialized before reuse.
// This follows libopus ec_enc_done.
func (e *Encoder) Done() []byte {
	// Output enough bits to uniquely identify the final interval.
	l := EC_CODE_BITS - ilog(e.rng)
	msk := (EC_CODE_TOP - 1) >> uint(l)
	end := (e.val + msk) & ^msk

	if (end | msk) >= e.val+e.rng {
		l++
		msk >>= 1
		end = (e.val + msk) & ^msk
	}

	for l > 0 {
		e.carryOut(int(end >> EC_CODE_SHIFT))
		end = (end << EC_SYM_BITS) & (EC_CODE_TOP - 1)
		l -= EC_SYM_BITS
	}

	if e.rem >= 0 || e.ext > 0 {
		e.carryOut(0)
	}

	if e.err != 0 {
		return e.buf[:0]
	}
	return e.buf[:e.offs]
}

// Tell returns the number of bits written so far.
func (e *Encoder) Tell() int {
	return e.nbitsTotal - ilog(e.rng)
}

// Range returns the current range value.
func (e *Encoder) Range() uint32 {
	return e.rng
}

// Error returns the encoder error flag. Non-zero indicates overflow.
func (e *Encoder) Error() int {
	return e.err
}
