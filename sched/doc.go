// Package sched models timed pulse programs: channels, instructions,
// and multi-channel schedules.
//
// 🚀 What is a schedule?
//
//	A Schedule is an ordered sequence of instructions, each pinned to a
//	channel at an integer start time (in samples). Its duration is the
//	maximum over instructions of start + instruction duration.
//	Schedules compose serially (Append) or by channel-parallel overlay
//	(Insert at an absolute time).
//
// ✨ Building blocks:
//   - Channels — DriveChannel (single-qubit drive, "d0") and
//     ControlChannel (cross-resonance drive for an ordered qubit pair,
//     "u1"), each identified by an integer index
//   - Instructions — Play (a waveform on a channel), Delay (idle time),
//     ShiftPhase (zero-duration frame rotation marker)
//   - Schedule — named, stable-ordered instruction sequence
//
// Instructions are immutable once inserted; retiming a schedule means
// building a new one. Insertion order is preserved among instructions
// sharing a start time, so relative ordering survives reassembly.
//
// Errors:
//
//	ErrNegativeStart  - instruction inserted at a negative start time.
//	ErrNilInstruction - nil instruction inserted.
//	ErrNilWaveform    - Play constructed without a waveform.
//	ErrNegativeDelay  - Delay constructed with a negative duration.
package sched
