package pulse

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// Sentinel errors for waveform construction.
var (
	// ErrAmpOutOfRange indicates an amplitude with magnitude greater than 1.
	ErrAmpOutOfRange = errors.New("pulse: amplitude magnitude exceeds 1")

	// ErrBadDuration indicates a negative duration.
	ErrBadDuration = errors.New("pulse: duration must be non-negative")

	// ErrBadShapeParam indicates a shape parameter outside its valid range.
	ErrBadShapeParam = errors.New("pulse: invalid shape parameter")
)

// Kind tags the waveform family of a pulse. The set is closed: every
// Waveform in this package reports exactly one of the constants below,
// and consumers dispatch on the tag rather than on dynamic types.
type Kind int

const (
	// KindGaussianSquare is a flat-top pulse with Gaussian edges.
	KindGaussianSquare Kind = iota

	// KindGaussian is a plain Gaussian envelope.
	KindGaussian

	// KindDrag is a Gaussian with a derivative quadrature correction.
	KindDrag

	// KindConstant is a flat envelope.
	KindConstant
)

// String returns the conventional lowercase name of the waveform family.
func (k Kind) String() string {
	switch k {
	case KindGaussianSquare:
		return "gaussian_square"
	case KindGaussian:
		return "gaussian"
	case KindDrag:
		return "drag"
	case KindConstant:
		return "constant"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Waveform is the read-only surface shared by every pulse family.
// Implementations are immutable value types.
type Waveform interface {
	// Kind reports the waveform family tag.
	Kind() Kind

	// Duration reports the pulse length in sample units.
	Duration() int

	// Amp reports the complex peak amplitude, |Amp()| ≤ 1.
	Amp() complex128
}

// validateCommon checks the constraints shared by every family.
func validateCommon(amp complex128, duration int) error {
	if cmplx.Abs(amp) > 1 {
		return ErrAmpOutOfRange
	}
	if duration < 0 {
		return ErrBadDuration
	}

	return nil
}
