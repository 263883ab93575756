// Package pulse defines the waveform envelope types played on a
// pulse-controlled quantum processor.
//
// 🚀 What is a pulse?
//
//	A pulse is an immutable description of a microwave drive envelope:
//	a complex amplitude (|amp| ≤ 1 by hardware convention), an integer
//	duration in sample units, and shape parameters specific to the
//	waveform family.
//
// ✨ Supported waveform families (closed set):
//   - GaussianSquare — Gaussian rise/fall edges around a flat-top
//     plateau; the only family the rescaler operates on
//   - Gaussian       — plain Gaussian envelope
//   - Drag           — Gaussian with a derivative quadrature correction,
//     the usual single-qubit X/echo pulse
//   - Constant       — flat envelope for the full duration
//
// All constructors validate their inputs and return sentinel errors;
// the values they produce never mutate. Deriving a modified waveform
// (see the rescale package) always builds a fresh value.
//
// Errors:
//
//	ErrAmpOutOfRange - amplitude magnitude exceeds 1.
//	ErrBadDuration   - duration is negative.
//	ErrBadShapeParam - sigma, width or beta violates the family's constraints.
package pulse
