package silk

// Static probability and quantization tables for the SILK side
// information, from RFC 6716 Section 4.2 (libopus silk/tables_*.c).
// ICDF tables hold cumulative values decreasing from just under 256 to a
// terminating 0 and are decoded with 8 bits of precision.

// =============================================================================
// LBRR flag patterns (Section 4.2.4)
// =============================================================================

// icdfLBRRFlags2 codes the 2-frame LBRR flag pattern minus one (40 ms).
var icdfLBRRFlags2 = []uint8{203, 150, 0}

// icdfLBRRFlags3 codes the 3-frame LBRR flag pattern minus one (60 ms).
var icdfLBRRFlags3 = []uint8{215, 195, 166, 125, 110, 82, 0}

// =============================================================================
// Stereo prediction weights (Section 4.2.7.1)
// =============================================================================

// icdfStereoPredJoint codes the joint coarse index symbol n in 0..24.
var icdfStereoPredJoint = []uint8{
	249, 247, 246, 245, 244, 234, 210, 202, 201, 200,
	197, 174, 82, 59, 56, 55, 54, 46, 22, 12,
	11, 10, 9, 7, 0,
}

// icdfStereoUniform3 and icdfStereoUniform5 are the uniform
// distributions for the per-weight coarse and fine indices.
var icdfStereoUniform3 = []uint8{171, 85, 0}
var icdfStereoUniform5 = []uint8{205, 154, 102, 51, 0}

// stereoPredQuantQ13 holds the stereo prediction weight quantization
// levels in Q13. The table is symmetric and bounds the decoded weights
// to +/-13732.
var stereoPredQuantQ13 = [16]int16{
	-13732, -10050, -8266, -7526, -6500, -5000, -2950, -820,
	820, 2950, 5000, 6500, 7526, 8266, 10050, 13732,
}

// =============================================================================
// Frame type (Section 4.2.7.3)
// =============================================================================

// icdfFrameTypeVADInactive codes the type/offset pair for frames whose
// VAD flag is clear (inactive signal, low or high offset).
var icdfFrameTypeVADInactive = []uint8{230, 0}

// icdfFrameTypeVADActive codes the type/offset pair, minus two, for
// frames whose VAD flag is set (unvoiced or voiced, low or high offset).
var icdfFrameTypeVADActive = []uint8{232, 158, 10, 0}

// =============================================================================
// Subframe gains (Section 4.2.7.4)
// =============================================================================

// icdfGainMSB codes the most significant bits of an independently coded
// gain index, conditioned on the signal type (inactive/unvoiced/voiced).
var icdfGainMSB = [3][]uint8{
	{224, 112, 44, 15, 3, 2, 1, 0},
	{254, 237, 192, 132, 70, 23, 4, 0},
	{255, 252, 226, 155, 61, 11, 2, 0},
}

// icdfGainLSB codes the uniform 3 least significant bits.
var icdfGainLSB = []uint8{224, 192, 160, 128, 96, 64, 32, 0}

// icdfDeltaGain codes the gain index delta for conditionally coded
// subframes (41 outcomes).
var icdfDeltaGain = []uint8{
	250, 245, 234, 203, 71, 50, 42, 38, 35, 33,
	31, 29, 28, 27, 26, 25, 24, 23, 22, 21,
	20, 19, 18, 17, 16, 15, 14, 13, 12, 11,
	10, 9, 8, 7, 6, 5, 4, 3, 2, 1,
	0,
}

// =============================================================================
// Normalized LSF stage one (Section 4.2.7.5.1)
// =============================================================================

// Stage-one index distributions, one per bandwidth class and voicing.

var icdfLSFStage1NBMBUnvoiced = []uint8{
	212, 178, 148, 129, 108, 96, 85, 82, 79, 77,
	61, 59, 57, 56, 51, 49, 48, 45, 42, 41,
	40, 38, 36, 34, 31, 30, 21, 12, 10, 3,
	1, 0,
}

var icdfLSFStage1NBMBVoiced = []uint8{
	223, 193, 157, 140, 106, 90, 80, 74, 68, 62,
	51, 46, 41, 36, 34, 32, 30, 29, 27, 25,
	22, 20, 18, 16, 14, 12, 10, 8, 6, 4,
	2, 0,
}

var icdfLSFStage1WBUnvoiced = []uint8{
	225, 204, 201, 184, 183, 175, 158, 154, 153, 135,
	119, 115, 113, 110, 109, 99, 98, 95, 79, 68,
	52, 50, 48, 45, 43, 32, 31, 27, 18, 10,
	3, 0,
}

var icdfLSFStage1WBVoiced = []uint8{
	211, 210, 187, 181, 163, 151, 142, 138, 133, 124,
	110, 104, 83, 71, 60, 58, 48, 46, 43, 36,
	27, 26, 24, 21, 18, 15, 13, 11, 9, 7,
	4, 0,
}

// =============================================================================
// Normalized LSF stage two (Section 4.2.7.5.2)
// =============================================================================

// icdfLSFStage2NBMB holds the NB/MB residual codebooks a-h; each codes a
// symbol in 0..8 that is biased by -4 after decoding.
var icdfLSFStage2NBMB = [8][]uint8{
	{255, 254, 253, 238, 14, 3, 2, 1, 0},
	{255, 254, 252, 218, 35, 3, 2, 1, 0},
	{255, 254, 250, 208, 59, 4, 2, 1, 0},
	{255, 254, 246, 194, 71, 10, 2, 1, 0},
	{255, 252, 236, 183, 82, 8, 2, 1, 0},
	{255, 252, 235, 180, 90, 17, 2, 1, 0},
	{255, 248, 224, 171, 97, 30, 4, 1, 0},
	{255, 240, 216, 163, 103, 58, 30, 1, 0},
}

// icdfLSFStage2WB holds the WB residual codebooks i-p.
var icdfLSFStage2WB = [8][]uint8{
	{255, 254, 253, 244, 12, 3, 2, 1, 0},
	{255, 254, 252, 224, 38, 3, 2, 1, 0},
	{255, 254, 251, 209, 57, 4, 2, 1, 0},
	{255, 254, 244, 195, 69, 4, 2, 1, 0},
	{255, 251, 232, 184, 84, 7, 2, 1, 0},
	{255, 249, 226, 176, 93, 16, 2, 1, 0},
	{255, 246, 220, 166, 98, 33, 5, 1, 0},
	{255, 237, 207, 149, 109, 60, 34, 1, 0},
}

// icdfLSFStage2Extension extends a residual index beyond +/-4.
var icdfLSFStage2Extension = []uint8{100, 40, 16, 7, 3, 1, 0}

// lsfStage2SelectNBMB names the residual codebook (a-h) for each of the
// 10 coefficients, per stage-one index.
var lsfStage2SelectNBMB = [32]string{
	"abababbbbb",
	"aaabbbbbba",
	"aaababbbba",
	"aababbbbab",
	"ababbbabba",
	"abbbbbabba",
	"cbcbbbcbbb",
	"bcbbbcbbbc",
	"cbcbbcbbcb",
	"dcccbccbcb",
	"cdccbcccbc",
	"dccccccbcc",
	"dddcccdccc",
	"cdcdccccdc",
	"ddddcdccdd",
	"edddddcddc",
	"deddddedde",
	"eedddeeddd",
	"feeeedeede",
	"efeeefeeff",
	"ffefefefee",
	"gffffefgfe",
	"fgffgfffgf",
	"ggfgfgfggf",
	"hggggfgghg",
	"ghghgghggg",
	"hhhgghghgh",
	"hghhhhghhg",
	"hhhhghhhhh",
	"ghhhhhhhgh",
	"hhghhhhhhh",
	"hhhhhhhhhh",
}

// lsfStage2SelectWB names the residual codebook (i-p) for each of the
// 16 coefficients, per stage-one index.
var lsfStage2SelectWB = [32]string{
	"ijijiijjjjjjjjjj",
	"iiijjjjjjjjjjjji",
	"iijijjjjijjjjjji",
	"ijijjjjjjijjjijj",
	"ijijjjijjjjiijji",
	"ijjjjjijjiijjjji",
	"kjkjjjkjjjkjjjjk",
	"jkjjjkjjjkjjkjjk",
	"kjkjjkjjkjkjjkjj",
	"lkkkjkkjkjkkjkkj",
	"klkkjkkkjkkkklkj",
	"lkkkkkkjkkkklkkk",
	"lllkkklkkklkkkll",
	"klklkkkklkkklklk",
	"llllklkkllkkllkl",
	"mlllllkllklkllkl",
	"lmllllmlllmmllml",
	"mmlllmmlllmlllmm",
	"nmmmmlmmmlmmnmml",
	"mnmmmnmmnnmmmmnn",
	"nnmnmnmnmmnnmmnm",
	"onnnnmnonmnonnmn",
	"nonnonnnonnnnonn",
	"oonononoonnonoon",
	"poooonooponooopo",
	"opopooppopooppoo",
	"pppoopopoppopopp",
	"popppppoppppoppp",
	"ppppopppppoppppp",
	"oppppppppppopppp",
	"ppoppppppppppppp",
	"pppppppppppppppp",
}
