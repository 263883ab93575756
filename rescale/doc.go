// Package rescale derives cross-resonance pulses for arbitrary
// rotation angles from a calibrated fixed-angle pulse.
//
// 🚀 What does it do?
//
//	Backends ship one calibrated GaussianSquare cross-resonance pulse
//	per qubit pair, implementing a π/2 rotation. An RZX(θ) gate needs
//	the same pulse at a different effective angle. In the regime these
//	gates operate in, the induced rotation is proportional to the pulse
//	area (the time-integral of the envelope), so a θ rotation follows
//	from stretching or shrinking the flat-top while holding amplitude
//	and Gaussian edges fixed.
//
// Algorithm Outline:
//  1. n_sigmas = (duration − width) / sigma, taken from the input
//     pulse (no fixed edge-count convention).
//  2. gaussian_area = |amp| · sigma · √(2π) · erf(n_sigmas).
//  3. area = gaussian_area + |amp| · width.
//  4. target_area = (|θ| / (π/2)) · area.
//  5. width' = (target_area − gaussian_area) / |amp| — edges fixed,
//     flat-top absorbs the change.
//  6. duration' = round((width' + n_sigmas·sigma) / mult) · mult —
//     nearest-grid rounding to the hardware sample granularity.
//  7. Emit a fresh pulse with amp and sigma unchanged.
//
// Rescale is pure: no state, no I/O, bit-identical output for
// identical input.
//
// Errors:
//
//	ErrUnsupportedKind   - input is not a GaussianSquare pulse.
//	ErrBadSampleMultiple - sample granularity is not positive.
//	ErrNonFiniteAngle    - θ is NaN or ±Inf.
//	ErrInvalidResult     - derived pulse is unbuildable: negative width
//	                       (θ too small for the fixed edge area; see
//	                       Options.ClampWidth), a duration too large to
//	                       represent, or a rounded duration below the
//	                       flat-top.
package rescale
