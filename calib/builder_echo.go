package calib

import (
	"fmt"

	"github.com/quantakit/crcal/sched"
)

// EchoedBuilder derives calibrations by symmetric splitting: the two
// mirrored cross-resonance tones of the baseline each carry half the
// requested angle, with the control qubit's calibrated echo schedule
// reinserted unscaled between and after them. The split cancels
// coherent error terms that a single long tone would accumulate.
type EchoedBuilder struct {
	core
}

// NewEchoedBuilder builds an echoed calibration builder over the
// backend's read-only maps.
func NewEchoedBuilder(im *InstructionScheduleMap, cm *ChannelMap, opts BuilderOptions) (*EchoedBuilder, error) {
	c, err := newCore(im, cm, opts)
	if err != nil {
		return nil, err
	}

	return &EchoedBuilder{core: c}, nil
}

// Build implements Builder. Each CR tone carries theta/2; only the CR
// segments scale, the echo pulses keep their calibrated shape, and the
// trailing half realigns to the post-rescale durations.
func (b *EchoedBuilder) Build(gate string, qubits []int, theta float64) (*sched.Schedule, error) {
	base, err := b.extract(qubits)
	if err != nil {
		return nil, err
	}
	if len(base.crs) < 2 {
		return nil, fmt.Errorf("echoed variant needs the mirrored CR pair, found %d tone(s): %w",
			len(base.crs), ErrMalformedBaseline)
	}
	if n := len(base.rotaries); n != 0 && n < 2 {
		return nil, fmt.Errorf("found %d rotary tone(s) for two CR halves: %w", n, ErrMalformedBaseline)
	}

	half := theta / 2
	cr1, dur1, err := b.rescaleTone(base.crs[0], half)
	if err != nil {
		return nil, err
	}
	cr2, dur2, err := b.rescaleTone(base.crs[1], half)
	if err != nil {
		return nil, err
	}

	echo, err := b.instMap.Get(b.opts.EchoGate, qubits[0])
	if err != nil {
		return nil, err
	}

	out := sched.NewSchedule(scheduleName(gate, theta))
	if err = base.leadingPhases(out); err != nil {
		return nil, err
	}

	// First half at t=0.
	if err = b.insertHalf(out, base, 0, cr1, dur1, 0, half); err != nil {
		return nil, err
	}
	if err = insertShifted(out, echo, dur1); err != nil {
		return nil, err
	}

	// Second half after the echo; its start cascades from the first
	// tone's rescaled duration.
	t2 := dur1 + echo.Duration()
	if err = b.insertHalf(out, base, 1, cr2, dur2, t2, half); err != nil {
		return nil, err
	}

	// Trailing echo closes the sequence.
	if err = insertShifted(out, echo, t2+dur2); err != nil {
		return nil, err
	}

	return out, nil
}

// insertHalf places one rescaled CR tone and, when the baseline has
// rotary tones, the matching rescaled rotary at the given start time.
func (b *EchoedBuilder) insertHalf(out *sched.Schedule, base *baseline, idx int, cr sched.Play, crDur, start int, half float64) error {
	if len(base.rotaries) > idx {
		rot, rotDur, err := b.rescaleTone(base.rotaries[idx], half)
		if err != nil {
			return err
		}
		if rotDur != crDur {
			return fmt.Errorf("CR %d vs rotary %d samples: %w", crDur, rotDur, ErrDurationMismatch)
		}
		if err = out.Insert(start, rot); err != nil {
			return err
		}
	}

	return out.Insert(start, cr)
}
