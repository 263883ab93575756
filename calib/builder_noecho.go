package calib

import (
	"fmt"

	"github.com/quantakit/crcal/sched"
)

// NoEchoBuilder derives calibrations from a single cross-resonance
// tone: the requested angle maps onto that tone directly. The emitted
// schedule mirrors the baseline channel assignment — the rescaled
// rotary tone on the target's drive channel, a frame-alignment delay
// of the same length on the control qubit's drive channel, and the
// rescaled CR tone on the pair's control channel, all starting at
// time zero.
type NoEchoBuilder struct {
	core
}

// NewNoEchoBuilder builds a non-echoed calibration builder over the
// backend's read-only maps.
func NewNoEchoBuilder(im *InstructionScheduleMap, cm *ChannelMap, opts BuilderOptions) (*NoEchoBuilder, error) {
	c, err := newCore(im, cm, opts)
	if err != nil {
		return nil, err
	}

	return &NoEchoBuilder{core: c}, nil
}

// Build implements Builder. The whole rotation rides on one CR tone,
// so the tone is rescaled with theta itself.
func (b *NoEchoBuilder) Build(gate string, qubits []int, theta float64) (*sched.Schedule, error) {
	base, err := b.extract(qubits)
	if err != nil {
		return nil, err
	}

	cr, crDur, err := b.rescaleTone(base.crs[0], theta)
	if err != nil {
		return nil, err
	}

	out := sched.NewSchedule(scheduleName(gate, theta))
	if err = base.leadingPhases(out); err != nil {
		return nil, err
	}

	if len(base.rotaries) > 0 {
		rot, rotDur, rerr := b.rescaleTone(base.rotaries[0], theta)
		if rerr != nil {
			return nil, rerr
		}
		if rotDur != crDur {
			return nil, fmt.Errorf("CR %d vs rotary %d samples: %w", crDur, rotDur, ErrDurationMismatch)
		}
		if err = out.Insert(0, rot); err != nil {
			return nil, err
		}
	}

	delay, err := sched.NewDelay(crDur, base.ctrlDrive)
	if err != nil {
		return nil, err
	}
	if err = out.Insert(0, delay); err != nil {
		return nil, err
	}
	if err = out.Insert(0, cr); err != nil {
		return nil, err
	}

	return out, nil
}
