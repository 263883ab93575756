package sched

import "errors"

// Sentinel errors for schedule construction. All schedule operations
// return these sentinels; callers match them with errors.Is.
var (
	// ErrNegativeStart indicates an instruction inserted at a negative time.
	ErrNegativeStart = errors.New("sched: start time must be non-negative")

	// ErrNilInstruction indicates a nil instruction passed to a schedule.
	ErrNilInstruction = errors.New("sched: nil instruction")

	// ErrNilWaveform indicates a Play constructed without a waveform.
	ErrNilWaveform = errors.New("sched: nil waveform")

	// ErrNegativeDelay indicates a Delay with a negative duration.
	ErrNegativeDelay = errors.New("sched: delay duration must be non-negative")
)
