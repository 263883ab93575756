// Package crcal rescales calibrated cross-resonance pulse schedules to
// arbitrary two-qubit rotation angles — the pulse-level half of
// attaching RZX(θ) gates to a circuit.
//
// 🚀 What is crcal?
//
//	A pure, deterministic library that takes a backend's fixed-angle
//	CX calibration for a qubit pair and derives the schedule for any
//	requested angle, by stretching or shrinking the flat-top of the
//	Gaussian-square cross-resonance tones while holding amplitude and
//	edge shape fixed:
//		• Pulse area ∝ rotation angle — the physical invariant driving it all
//		• Hardware-grid duration quantization (16-sample default)
//		• Echoed and non-echoed gate variants
//		• Time-aligned multi-channel schedule reassembly
//
// ✨ Why choose crcal?
//
//   - No physics simulation – just arithmetic on pulse parameters
//   - Stateless builders – every call recomputes, safe to run in parallel
//   - Sentinel errors everywhere – match with errors.Is, never a panic
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	pulse/   — immutable waveform envelopes (GaussianSquare, Gaussian, Drag, Constant)
//	sched/   — channels, timed instructions, multi-channel schedules
//	rescale/ — the area-preserving Gaussian-square rescaler
//	calib/   — baseline lookup, echoed/no-echo builders, calibration table
//
// Quick ASCII picture of a rescaled tone:
//
//	 ╱▔▔▔▔▔▔▔╲      →      ╱▔▔▔╲
//	edges fixed, flat-top shrinks until area matches θ
//
// Dive into the package docs for the exact area formula, error
// contracts, and worked examples.
//
//	go get github.com/quantakit/crcal
package crcal
