package pulse

import "fmt"

// GaussianSquare is a flat-top pulse: a plateau of constant amplitude
// flanked by Gaussian rise and fall edges. It is the waveform family
// used for cross-resonance drives and the only one the rescaler
// accepts.
//
// Parameters:
//   - amp      — complex peak amplitude, |amp| ≤ 1
//   - duration — total length in samples (non-negative integer)
//   - sigma    — Gaussian edge width in samples, sigma > 0
//   - width    — flat-top length in samples, 0 ≤ width ≤ duration
//
// The edge extent is not hard-coded: duration − width is whatever the
// calibrated instance carries, and NSigmas derives the edge count from
// it.
type GaussianSquare struct {
	amp      complex128
	duration int
	sigma    float64
	width    float64
}

// NewGaussianSquare validates the parameters and returns an immutable
// GaussianSquare value.
func NewGaussianSquare(amp complex128, duration int, sigma, width float64) (GaussianSquare, error) {
	if err := validateCommon(amp, duration); err != nil {
		return GaussianSquare{}, err
	}
	if sigma <= 0 {
		return GaussianSquare{}, fmt.Errorf("sigma %g must be positive: %w", sigma, ErrBadShapeParam)
	}
	if width < 0 || width > float64(duration) {
		return GaussianSquare{}, fmt.Errorf("width %g outside [0, %d]: %w", width, duration, ErrBadShapeParam)
	}

	return GaussianSquare{amp: amp, duration: duration, sigma: sigma, width: width}, nil
}

// Kind reports KindGaussianSquare.
func (g GaussianSquare) Kind() Kind { return KindGaussianSquare }

// Duration reports the total pulse length in samples.
func (g GaussianSquare) Duration() int { return g.duration }

// Amp reports the complex peak amplitude.
func (g GaussianSquare) Amp() complex128 { return g.amp }

// Sigma reports the Gaussian edge width in samples.
func (g GaussianSquare) Sigma() float64 { return g.sigma }

// Width reports the flat-top length in samples.
func (g GaussianSquare) Width() float64 { return g.width }

// RiseTime reports the combined extent of both Gaussian edges,
// duration − width.
func (g GaussianSquare) RiseTime() float64 { return float64(g.duration) - g.width }

// NSigmas reports the edge extent in units of sigma, derived from the
// instance rather than assumed (conventionally 4σ per edge pair, but
// calibrations are free to differ).
func (g GaussianSquare) NSigmas() float64 { return g.RiseTime() / g.sigma }

// String renders the pulse in the conventional compact form.
func (g GaussianSquare) String() string {
	return fmt.Sprintf("GaussianSquare(duration=%d, amp=%v, sigma=%g, width=%g)",
		g.duration, g.amp, g.sigma, g.width)
}
