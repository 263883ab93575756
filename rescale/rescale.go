package rescale

import (
	"math"
	"math/cmplx"

	"github.com/quantakit/crcal/pulse"
)

// baselineAngle is the rotation the calibrated input pulse implements:
// the cross-resonance half of a CX gate, π/2.
const baselineAngle = math.Pi / 2

// Rescale derives a new GaussianSquare pulse implementing a rotation
// by theta from a pulse calibrated at π/2, holding amplitude and edge
// shape fixed and stretching only the flat-top. The output duration is
// rounded to the nearest multiple of opts.SampleMultiple.
//
// The input must be a pulse.GaussianSquare; any other waveform kind
// returns ErrUnsupportedKind. theta may take any finite sign and
// magnitude — only |theta| enters the area scaling.
//
// Rescale never mutates its input: it is deterministic and
// side-effect-free, and two calls with identical arguments produce
// bit-identical pulses.
func Rescale(w pulse.Waveform, theta float64, opts Options) (pulse.GaussianSquare, error) {
	if w == nil || w.Kind() != pulse.KindGaussianSquare {
		return pulse.GaussianSquare{}, ErrUnsupportedKind
	}
	g, ok := w.(pulse.GaussianSquare)
	if !ok {
		return pulse.GaussianSquare{}, ErrUnsupportedKind
	}
	if opts.SampleMultiple <= 0 {
		return pulse.GaussianSquare{}, ErrBadSampleMultiple
	}
	if math.IsNaN(theta) || math.IsInf(theta, 0) {
		return pulse.GaussianSquare{}, ErrNonFiniteAngle
	}

	absAmp := cmplx.Abs(g.Amp())
	if absAmp == 0 {
		// Zero-amplitude pulses carry no area to scale.
		return pulse.GaussianSquare{}, ErrInvalidResult
	}

	nSigmas := g.NSigmas()
	gaussianArea := absAmp * g.Sigma() * math.Sqrt(2*math.Pi) * math.Erf(nSigmas)
	area := gaussianArea + absAmp*g.Width()
	targetArea := math.Abs(theta) / baselineAngle * area

	width := (targetArea - gaussianArea) / absAmp
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return pulse.GaussianSquare{}, ErrInvalidResult
	}
	if width < 0 {
		if !opts.ClampWidth {
			return pulse.GaussianSquare{}, ErrInvalidResult
		}
		width = 0
	}

	mult := float64(opts.SampleMultiple)
	samples := math.Round((width + nSigmas*g.Sigma()) / mult)
	// The float→int conversion wraps on overflow; bound the sample
	// count before converting so huge angles fail instead of emitting
	// a garbage duration.
	if samples < 0 || samples >= float64(math.MaxInt/opts.SampleMultiple) {
		return pulse.GaussianSquare{}, ErrInvalidResult
	}
	duration := int(samples) * opts.SampleMultiple
	// Grid round-down can land the total below the exact flat-top when
	// the edge extent is shorter than half the grid; such a pulse has
	// no representation on this granularity.
	if width > float64(duration) {
		return pulse.GaussianSquare{}, ErrInvalidResult
	}

	return pulse.NewGaussianSquare(g.Amp(), duration, g.Sigma(), width)
}

// Area reports the |amp|-weighted envelope area of a GaussianSquare
// pulse: the erf-integrated Gaussian edges plus the flat-top
// contribution. This is the quantity Rescale holds proportional to the
// rotation angle.
func Area(g pulse.GaussianSquare) float64 {
	absAmp := cmplx.Abs(g.Amp())
	edges := absAmp * g.Sigma() * math.Sqrt(2*math.Pi) * math.Erf(g.NSigmas())

	return edges + absAmp*g.Width()
}
