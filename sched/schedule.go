package sched

import "sort"

// TimedInstruction pins an Instruction to an absolute start time
// within a schedule.
type TimedInstruction struct {
	// Start is the absolute start time in samples.
	Start int

	// Inst is the instruction itself.
	Inst Instruction
}

// End reports Start + the instruction's duration.
func (ti TimedInstruction) End() int { return ti.Start + ti.Inst.Duration() }

// Schedule is a named, ordered sequence of timed instructions across
// one or more channels. Ordering is stable: instructions are kept
// sorted by start time, and insertion order breaks ties, so the
// relative ordering of simultaneous instructions is exactly the order
// they were added in.
type Schedule struct {
	name  string
	insts []TimedInstruction
}

// NewSchedule returns an empty schedule with the given name.
func NewSchedule(name string) *Schedule {
	return &Schedule{name: name}
}

// Name reports the schedule's name.
func (s *Schedule) Name() string { return s.name }

// Insert places inst at the absolute start time, overlaying it with
// whatever already occupies other channels at that time.
func (s *Schedule) Insert(start int, inst Instruction) error {
	if inst == nil {
		return ErrNilInstruction
	}
	if start < 0 {
		return ErrNegativeStart
	}

	// Stable insertion: place after every instruction with start time
	// <= the new one, preserving add order among equals.
	i := sort.Search(len(s.insts), func(i int) bool { return s.insts[i].Start > start })
	s.insts = append(s.insts, TimedInstruction{})
	copy(s.insts[i+1:], s.insts[i:])
	s.insts[i] = TimedInstruction{Start: start, Inst: inst}

	return nil
}

// Append places inst serially at the current schedule duration, after
// every instruction on every channel.
func (s *Schedule) Append(inst Instruction) error {
	return s.Insert(s.Duration(), inst)
}

// AppendOn places inst at the current end of its own channel,
// overlapping other channels' later activity.
func (s *Schedule) AppendOn(inst Instruction) error {
	if inst == nil {
		return ErrNilInstruction
	}

	return s.Insert(s.ChannelDuration(inst.Channel()), inst)
}

// Duration reports max over instructions of start + duration, or 0 for
// an empty schedule.
func (s *Schedule) Duration() int {
	var d int
	for _, ti := range s.insts {
		if end := ti.End(); end > d {
			d = end
		}
	}

	return d
}

// ChannelDuration reports the duration restricted to instructions on ch.
func (s *Schedule) ChannelDuration(ch Channel) int {
	var d int
	for _, ti := range s.insts {
		if ti.Inst.Channel() == ch && ti.End() > d {
			d = ti.End()
		}
	}

	return d
}

// Len reports the number of instructions.
func (s *Schedule) Len() int { return len(s.insts) }

// Instructions returns a copy of the timed instructions in schedule
// order (start time ascending, insertion order among equal starts).
func (s *Schedule) Instructions() []TimedInstruction {
	out := make([]TimedInstruction, len(s.insts))
	copy(out, s.insts)

	return out
}

// Channels returns the distinct channels used, in first-use order.
func (s *Schedule) Channels() []Channel {
	seen := make(map[Channel]struct{}, 4)
	var out []Channel
	for _, ti := range s.insts {
		ch := ti.Inst.Channel()
		if _, ok := seen[ch]; !ok {
			seen[ch] = struct{}{}
			out = append(out, ch)
		}
	}

	return out
}
