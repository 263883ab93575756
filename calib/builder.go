package calib

import (
	"fmt"

	"github.com/quantakit/crcal/pulse"
	"github.com/quantakit/crcal/rescale"
	"github.com/quantakit/crcal/sched"
)

// Builder derives a calibrated schedule for one parametrized two-qubit
// rotation gate instance. Builders are stateless: every call recomputes
// from the read-only maps, and concurrent calls need no coordination.
type Builder interface {
	// Build returns the schedule implementing gate(theta) on the
	// ordered qubit pair.
	Build(gate string, qubits []int, theta float64) (*sched.Schedule, error)
}

// BuilderOptions configures both builder variants.
//
// Fields:
//   - BaselineGate — gate name of the calibrated CX-equivalent schedule
//     looked up per qubit pair (default "cx").
//   - EchoGate     — gate name of the single-qubit echo schedule the
//     echoed variant reinserts unscaled (default "x").
//   - Rescale      — options forwarded to every rescale call.
type BuilderOptions struct {
	BaselineGate string
	EchoGate     string
	Rescale      rescale.Options
}

// DefaultBuilderOptions returns the documented defaults.
func DefaultBuilderOptions() BuilderOptions {
	return BuilderOptions{
		BaselineGate: "cx",
		EchoGate:     "x",
		Rescale:      rescale.DefaultOptions(),
	}
}

// core holds the shared extraction and reassembly logic. The two
// variants differ only in how the requested angle maps onto the CR
// tones, which stays an explicit value at the call sites rather than
// behavior hidden in the variant types.
type core struct {
	instMap *InstructionScheduleMap
	chanMap *ChannelMap
	opts    BuilderOptions
}

func newCore(im *InstructionScheduleMap, cm *ChannelMap, opts BuilderOptions) (core, error) {
	if im == nil || cm == nil {
		return core{}, ErrNilMap
	}
	if opts.BaselineGate == "" {
		opts.BaselineGate = "cx"
	}
	if opts.EchoGate == "" {
		opts.EchoGate = "x"
	}
	if opts.Rescale.SampleMultiple == 0 {
		opts.Rescale.SampleMultiple = rescale.DefaultSampleMultiple
	}

	return core{instMap: im, chanMap: cm, opts: opts}, nil
}

// baseline is the partitioned content of a pair's calibrated schedule.
type baseline struct {
	control   sched.ControlChannel
	ctrlDrive sched.DriveChannel // control qubit's drive channel
	targDrive sched.DriveChannel // target qubit's drive channel

	// crs are the cross-resonance tones: GaussianSquare plays on the
	// pair's control channel, in schedule order. Echoed baselines carry
	// the positive and the mirrored tone; non-echoed ones a single tone.
	crs []sched.Play

	// rotaries are the target-qubit rotary tones: GaussianSquare plays
	// on the target drive channel, in schedule order.
	rotaries []sched.Play

	// phases are frame-rotation markers, with their original times.
	phases []sched.TimedInstruction
}

// extract looks up the pair's baseline schedule and partitions its
// instructions by channel role. Delays are dropped: they are alignment
// padding, and reassembly derives fresh padding from the scaled
// durations.
func (c core) extract(qubits []int) (*baseline, error) {
	if len(qubits) != 2 || qubits[0] == qubits[1] {
		return nil, ErrBadQubits
	}

	base, err := c.instMap.Get(c.opts.BaselineGate, qubits...)
	if err != nil {
		return nil, err
	}
	ctrl, err := c.chanMap.ControlChannel(qubits[0], qubits[1])
	if err != nil {
		return nil, err
	}
	ctrlDrive, err := c.chanMap.DriveChannel(qubits[0])
	if err != nil {
		return nil, err
	}
	targDrive, err := c.chanMap.DriveChannel(qubits[1])
	if err != nil {
		return nil, err
	}

	b := baseline{control: ctrl, ctrlDrive: ctrlDrive, targDrive: targDrive}
	for _, ti := range base.Instructions() {
		switch inst := ti.Inst.(type) {
		case sched.ShiftPhase:
			b.phases = append(b.phases, ti)
		case sched.Play:
			switch {
			case inst.Channel() == ctrl:
				if inst.Waveform().Kind() != pulse.KindGaussianSquare {
					return nil, fmt.Errorf("%v tone on %v: %w",
						inst.Waveform().Kind(), ctrl, rescale.ErrUnsupportedKind)
				}
				b.crs = append(b.crs, inst)
			case inst.Channel() == targDrive && inst.Waveform().Kind() == pulse.KindGaussianSquare:
				b.rotaries = append(b.rotaries, inst)
			}
			// Other drive-channel plays are the baseline's own echo
			// pulses; the echoed variant reinserts the calibrated echo
			// schedule instead.
		}
	}
	if len(b.crs) == 0 {
		return nil, fmt.Errorf("pair (%d,%d): %w", qubits[0], qubits[1], ErrNoCRPulse)
	}

	return &b, nil
}

// rescaleTone rescales one GaussianSquare play to theta, keeping its
// channel. Returns the scaled play and its duration.
func (c core) rescaleTone(p sched.Play, theta float64) (sched.Play, int, error) {
	scaled, err := rescale.Rescale(p.Waveform(), theta, c.opts.Rescale)
	if err != nil {
		return sched.Play{}, 0, err
	}
	out, err := sched.NewPlay(scaled, p.Channel())
	if err != nil {
		return sched.Play{}, 0, err
	}

	return out, scaled.Duration(), nil
}

// leadingPhases reinserts frame markers that precede the pulse train.
// Markers carry no duration, so their cascade-adjusted time at the
// head of the schedule is still zero.
func (b *baseline) leadingPhases(out *sched.Schedule) error {
	for _, ph := range b.phases {
		if ph.Start != 0 {
			continue
		}
		if err := out.Insert(0, ph.Inst); err != nil {
			return err
		}
	}

	return nil
}

// insertShifted overlays every instruction of src into dst, offset
// samples later.
func insertShifted(dst, src *sched.Schedule, offset int) error {
	for _, ti := range src.Instructions() {
		if err := dst.Insert(ti.Start+offset, ti.Inst); err != nil {
			return err
		}
	}

	return nil
}

// scheduleName renders the conventional parametrized-gate schedule
// name, e.g. "rzx(0.7854)".
func scheduleName(gate string, theta float64) string {
	return fmt.Sprintf("%s(%.4f)", gate, theta)
}
