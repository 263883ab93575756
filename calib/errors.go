package calib

import "errors"

// Sentinel errors for calibration building. Builders return these (or
// sentinels from the rescale package) and never emit a malformed
// schedule; callers match with errors.Is.
var (
	// ErrCalibrationNotFound indicates the instruction-schedule map has
	// no entry for the requested gate and qubits.
	ErrCalibrationNotFound = errors.New("calib: calibration not found")

	// ErrNoControlChannel indicates the channel map has no control
	// channel registered for the ordered qubit pair.
	ErrNoControlChannel = errors.New("calib: no control channel for qubit pair")

	// ErrNoDriveChannel indicates the channel map has no drive channel
	// registered for the qubit.
	ErrNoDriveChannel = errors.New("calib: no drive channel for qubit")

	// ErrBadQubits indicates the builder was not given exactly two
	// distinct qubits.
	ErrBadQubits = errors.New("calib: exactly two distinct qubits required")

	// ErrNoCRPulse indicates the baseline schedule carries no
	// GaussianSquare play on the pair's control channel.
	ErrNoCRPulse = errors.New("calib: no cross-resonance pulse in baseline schedule")

	// ErrMalformedBaseline indicates the baseline tone layout does not
	// match the variant's expectation (e.g. a single CR tone where the
	// echoed builder needs the mirrored pair).
	ErrMalformedBaseline = errors.New("calib: unexpected baseline pulse layout")

	// ErrDurationMismatch indicates the rescaled CR tone and rotary
	// tone ended up with different durations and cannot be aligned.
	ErrDurationMismatch = errors.New("calib: scaled CR and rotary tone durations differ")

	// ErrNilMap indicates a builder was constructed without an
	// instruction-schedule map or channel map.
	ErrNilMap = errors.New("calib: nil instruction or channel map")

	// ErrNilSchedule indicates a nil schedule passed to the table.
	ErrNilSchedule = errors.New("calib: nil schedule")
)
