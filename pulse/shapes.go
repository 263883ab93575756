package pulse

import "fmt"

// Gaussian is a plain Gaussian envelope truncated to the pulse duration.
type Gaussian struct {
	amp      complex128
	duration int
	sigma    float64
}

// NewGaussian validates the parameters and returns an immutable Gaussian value.
func NewGaussian(amp complex128, duration int, sigma float64) (Gaussian, error) {
	if err := validateCommon(amp, duration); err != nil {
		return Gaussian{}, err
	}
	if sigma <= 0 {
		return Gaussian{}, fmt.Errorf("sigma %g must be positive: %w", sigma, ErrBadShapeParam)
	}

	return Gaussian{amp: amp, duration: duration, sigma: sigma}, nil
}

// Kind reports KindGaussian.
func (g Gaussian) Kind() Kind { return KindGaussian }

// Duration reports the total pulse length in samples.
func (g Gaussian) Duration() int { return g.duration }

// Amp reports the complex peak amplitude.
func (g Gaussian) Amp() complex128 { return g.amp }

// Sigma reports the Gaussian width in samples.
func (g Gaussian) Sigma() float64 { return g.sigma }

// String renders the pulse in the conventional compact form.
func (g Gaussian) String() string {
	return fmt.Sprintf("Gaussian(duration=%d, amp=%v, sigma=%g)", g.duration, g.amp, g.sigma)
}

// Drag is a Gaussian envelope with a derivative (DRAG) quadrature
// correction, the standard calibrated single-qubit pulse and the echo
// pulse in echoed cross-resonance sequences.
type Drag struct {
	amp      complex128
	duration int
	sigma    float64
	beta     float64
}

// NewDrag validates the parameters and returns an immutable Drag value.
// Beta is the DRAG correction coefficient and may take any finite value.
func NewDrag(amp complex128, duration int, sigma, beta float64) (Drag, error) {
	if err := validateCommon(amp, duration); err != nil {
		return Drag{}, err
	}
	if sigma <= 0 {
		return Drag{}, fmt.Errorf("sigma %g must be positive: %w", sigma, ErrBadShapeParam)
	}

	return Drag{amp: amp, duration: duration, sigma: sigma, beta: beta}, nil
}

// Kind reports KindDrag.
func (d Drag) Kind() Kind { return KindDrag }

// Duration reports the total pulse length in samples.
func (d Drag) Duration() int { return d.duration }

// Amp reports the complex peak amplitude.
func (d Drag) Amp() complex128 { return d.amp }

// Sigma reports the Gaussian width in samples.
func (d Drag) Sigma() float64 { return d.sigma }

// Beta reports the DRAG correction coefficient.
func (d Drag) Beta() float64 { return d.beta }

// String renders the pulse in the conventional compact form.
func (d Drag) String() string {
	return fmt.Sprintf("Drag(duration=%d, amp=%v, sigma=%g, beta=%g)",
		d.duration, d.amp, d.sigma, d.beta)
}

// Constant is a flat envelope held at amp for the full duration.
type Constant struct {
	amp      complex128
	duration int
}

// NewConstant validates the parameters and returns an immutable Constant value.
func NewConstant(amp complex128, duration int) (Constant, error) {
	if err := validateCommon(amp, duration); err != nil {
		return Constant{}, err
	}

	return Constant{amp: amp, duration: duration}, nil
}

// Kind reports KindConstant.
func (c Constant) Kind() Kind { return KindConstant }

// Duration reports the total pulse length in samples.
func (c Constant) Duration() int { return c.duration }

// Amp reports the complex amplitude.
func (c Constant) Amp() complex128 { return c.amp }

// String renders the pulse in the conventional compact form.
func (c Constant) String() string {
	return fmt.Sprintf("Constant(duration=%d, amp=%v)", c.duration, c.amp)
}
