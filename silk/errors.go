package silk

import "errors"

var (
	// ErrUnsupportedFrameSize is returned by NewDecoder for frame sizes
	// other than 10, 20, 40 or 60 ms.
	ErrUnsupportedFrameSize = errors.New("silk: unsupported frame size")

	// ErrNoRangeDecoder is returned when a decode method is called
	// before SetRangeDecoder.
	ErrNoRangeDecoder = errors.New("silk: no range decoder")

	// ErrInvalidFrameType is returned when the combined frame type
	// value exceeds the valid range.
	ErrInvalidFrameType = errors.New("silk: invalid frame type")

	// ErrInvalidLSFBandwidth is returned when LSF decoding is requested
	// for a bandwidth the SILK layer does not code (SWB/FB).
	ErrInvalidLSFBandwidth = errors.New("silk: invalid bandwidth for LSF")

	// ErrInvalidLSFCodebook is returned when a stage-two selection entry
	// names no known codebook.
	ErrInvalidLSFCodebook = errors.New("silk: invalid LSF codebook")
)
