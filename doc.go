// Package opus implements the side-information layer of an Opus decoder
// in pure Go.
//
// The root package parses the TOC (Table of Contents) byte that starts
// every Opus packet; the silk subpackage decodes the SILK frame indices
// that follow it (header flags, stereo prediction weights, frame type,
// subframe gains, and LSF codebook indices) per RFC 6716 Section 4.2.
// It requires no cgo dependencies.
//
// # Packet Structure
//
// Each Opus packet starts with a TOC byte:
//   - Bits 7-3: Configuration (0-31)
//   - Bit 2: Stereo flag
//   - Bits 1-0: Frame count code (0-3)
//
// Use ParseTOC to extract these fields. Configurations 0-11 are
// SILK-only, 12-15 are hybrid SILK+CELT, and 16-31 are CELT-only; the
// SILK layer is present for configurations below 16.
//
// # SILK Side Information
//
// The bytes after the TOC are a single range-coded stream (RFC 6716
// Section 4.1). Feed them to a rangecoding.Decoder, attach it to a
// silk.Decoder with SetRangeDecoder, and call the Decode* methods in
// bitstream order. The silk.Decoder carries the inter-frame state the
// bitstream depends on: the previous stereo prediction weights and the
// previous quantization gain index per channel.
package opus
