package rangecoding

// Range coder constants per RFC 6716 Section 4.1 (libopus celt/entcode.h).
const (
	EC_SYM_BITS   = 8                                // Bits per output symbol
	EC_SYM_MAX    = (1 << EC_SYM_BITS) - 1           // Largest symbol value (255)
	EC_CODE_BITS  = 32                               // Bits in the coder state
	EC_CODE_SHIFT = EC_CODE_BITS - EC_SYM_BITS - 1   // Shift to extract output symbols (23)
	EC_CODE_TOP   = uint32(1) << (EC_CODE_BITS - 1)  // Top of the coding range
	EC_CODE_BOT   = EC_CODE_TOP >> EC_SYM_BITS       // Renormalization threshold
	EC_CODE_EXTRA = (EC_CODE_BITS-2)%EC_SYM_BITS + 1 // Carry-in bits consumed at init (7)
)
