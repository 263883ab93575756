package calib

import (
	"fmt"

	"github.com/quantakit/crcal/sched"
)

// ChannelMap is the backend's qubit-to-channel topology: the drive
// channel of each qubit and the control channel of each ordered qubit
// pair. Like the instruction-schedule map it is populated once and
// read-only during building.
type ChannelMap struct {
	drives   map[int]sched.DriveChannel
	controls map[[2]int]sched.ControlChannel
}

// NewChannelMap returns an empty channel map.
func NewChannelMap() *ChannelMap {
	return &ChannelMap{
		drives:   make(map[int]sched.DriveChannel),
		controls: make(map[[2]int]sched.ControlChannel),
	}
}

// MapDrive registers the drive channel of qubit q.
func (m *ChannelMap) MapDrive(q int, ch sched.DriveChannel) {
	m.drives[q] = ch
}

// MapControl registers the control channel driving the cross-resonance
// interaction for the ordered pair (control, target).
func (m *ChannelMap) MapControl(control, target int, ch sched.ControlChannel) {
	m.controls[[2]int{control, target}] = ch
}

// DriveChannel returns qubit q's drive channel, or ErrNoDriveChannel.
func (m *ChannelMap) DriveChannel(q int) (sched.DriveChannel, error) {
	ch, ok := m.drives[q]
	if !ok {
		return 0, fmt.Errorf("qubit %d: %w", q, ErrNoDriveChannel)
	}

	return ch, nil
}

// ControlChannel returns the control channel of the ordered pair
// (control, target), or ErrNoControlChannel.
func (m *ChannelMap) ControlChannel(control, target int) (sched.ControlChannel, error) {
	ch, ok := m.controls[[2]int{control, target}]
	if !ok {
		return 0, fmt.Errorf("pair (%d,%d): %w", control, target, ErrNoControlChannel)
	}

	return ch, nil
}
