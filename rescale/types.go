package rescale

import "errors"

// Sentinel errors for the rescaler.
var (
	// ErrUnsupportedKind indicates the input pulse is not a
	// GaussianSquare; the area formula is shape-specific.
	ErrUnsupportedKind = errors.New("rescale: unsupported pulse kind")

	// ErrBadSampleMultiple indicates a non-positive sample granularity.
	ErrBadSampleMultiple = errors.New("rescale: sample multiple must be positive")

	// ErrNonFiniteAngle indicates a NaN or infinite target angle.
	ErrNonFiniteAngle = errors.New("rescale: angle must be finite")

	// ErrInvalidResult indicates the derived pulse cannot be built:
	// the flat-top width is negative (see Options.ClampWidth for the
	// opt-in clamp policy), the duration is non-finite or too large to
	// represent, or grid rounding left the duration below the exact
	// flat-top. Raised instead of silently emitting a malformed pulse.
	ErrInvalidResult = errors.New("rescale: rescaled pulse invalid")
)

// DefaultSampleMultiple is the hardware sample granularity pulse
// durations must be quantized to, in samples.
const DefaultSampleMultiple = 16

// Options configures Rescale.
//
// Fields:
//   - SampleMultiple — positive grid the output duration is rounded to
//     (nearest, not truncated). Default 16.
//   - ClampWidth     — when the requested angle is too small for the
//     fixed Gaussian edge area the exact flat-top width would be
//     negative. Default (false) treats this as ErrInvalidResult;
//     true clamps the width to zero, emitting the minimal edge-only
//     pulse and overshooting the angle by the residual edge area.
type Options struct {
	SampleMultiple int
	ClampWidth     bool
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{SampleMultiple: DefaultSampleMultiple}
}
