// Package calib builds pulse calibrations for parametrized two-qubit
// rotation gates by rescaling a backend's fixed-angle cross-resonance
// schedule.
//
// 🚀 How it works
//
//	A backend ships one calibrated CX-equivalent schedule per qubit
//	pair (the InstructionScheduleMap) and a topology mapping qubits to
//	drive and control channels (the ChannelMap). For an RZX(θ) gate the
//	builder extracts the GaussianSquare cross-resonance tones from that
//	baseline schedule, rescales each one to the requested angle with
//	the rescale package, and reassembles a time-aligned multi-channel
//	schedule mirroring the baseline's channel assignment. The result is
//	recorded in a Table keyed by (gate, qubit tuple, parameter tuple),
//	so distinct angles on the same pair never collide.
//
// ✨ Two builder variants:
//   - NoEchoBuilder — a single CR tone rescaled with θ directly, the
//     target's rotary tone alongside it and a frame-alignment delay on
//     the control qubit's drive channel
//   - EchoedBuilder — two mirrored CR tones each rescaled with θ/2,
//     the unscaled echo X schedule reinserted between and after them;
//     symmetric splitting cancels coherent error terms
//
// The angle-per-tone policy is the only semantic difference between
// the variants; both share the extraction and reassembly core. Every
// build recomputes from the baseline — builders hold no cache and no
// mutable state, so concurrent builds over the same read-only maps
// need no coordination.
//
// Errors:
//
//	ErrCalibrationNotFound - no baseline schedule for the pair (or no
//	                         echo schedule for the control qubit).
//	ErrNoControlChannel    - pair has no registered control channel.
//	ErrNoDriveChannel      - qubit has no registered drive channel.
//	ErrBadQubits           - not exactly two distinct qubits.
//	ErrNoCRPulse           - baseline has no cross-resonance tone.
//	ErrMalformedBaseline   - baseline tone layout unusable by the variant.
//	ErrDurationMismatch    - scaled CR and rotary tones disagree in length.
//	ErrNilMap              - builder constructed without its maps.
package calib
