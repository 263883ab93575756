package sched

import (
	"fmt"

	"github.com/quantakit/crcal/pulse"
)

// Instruction is one timed action on a single channel. Implementations
// are immutable values; Duration is the instruction's own extent, not
// its position in a schedule.
type Instruction interface {
	// Channel reports the channel the instruction acts on.
	Channel() Channel

	// Duration reports the instruction length in samples.
	Duration() int

	// String renders a compact human-readable form.
	String() string
}

// Play emits a waveform on a channel.
type Play struct {
	waveform pulse.Waveform
	channel  Channel
}

// NewPlay pairs a waveform with a channel.
func NewPlay(w pulse.Waveform, ch Channel) (Play, error) {
	if w == nil {
		return Play{}, ErrNilWaveform
	}

	return Play{waveform: w, channel: ch}, nil
}

// Waveform reports the played waveform.
func (p Play) Waveform() pulse.Waveform { return p.waveform }

// Channel reports the channel the waveform is played on.
func (p Play) Channel() Channel { return p.channel }

// Duration reports the waveform's duration.
func (p Play) Duration() int { return p.waveform.Duration() }

// String renders "Play(<waveform>, <channel>)".
func (p Play) String() string { return fmt.Sprintf("Play(%v, %v)", p.waveform, p.channel) }

// Delay idles a channel for a fixed number of samples.
type Delay struct {
	duration int
	channel  Channel
}

// NewDelay builds a Delay of the given non-negative duration.
func NewDelay(duration int, ch Channel) (Delay, error) {
	if duration < 0 {
		return Delay{}, ErrNegativeDelay
	}

	return Delay{duration: duration, channel: ch}, nil
}

// Channel reports the idled channel.
func (d Delay) Channel() Channel { return d.channel }

// Duration reports the idle length in samples.
func (d Delay) Duration() int { return d.duration }

// String renders "Delay(<duration>, <channel>)".
func (d Delay) String() string { return fmt.Sprintf("Delay(%d, %v)", d.duration, d.channel) }

// ShiftPhase rotates a channel's frame by Phase radians. It is a
// zero-duration marker: it occupies no time and is never rescaled.
type ShiftPhase struct {
	phase   float64
	channel Channel
}

// NewShiftPhase builds a frame-rotation marker.
func NewShiftPhase(phase float64, ch Channel) ShiftPhase {
	return ShiftPhase{phase: phase, channel: ch}
}

// Phase reports the frame rotation in radians.
func (s ShiftPhase) Phase() float64 { return s.phase }

// Channel reports the rotated channel.
func (s ShiftPhase) Channel() Channel { return s.channel }

// Duration reports 0: phase shifts occupy no time.
func (s ShiftPhase) Duration() int { return 0 }

// String renders "ShiftPhase(<phase>, <channel>)".
func (s ShiftPhase) String() string { return fmt.Sprintf("ShiftPhase(%g, %v)", s.phase, s.channel) }
