package calib_test

import (
	"testing"

	"github.com/quantakit/crcal/calib"
	"github.com/quantakit/crcal/pulse"
	"github.com/quantakit/crcal/sched"
	"github.com/stretchr/testify/require"
)

// The fixture models a small backend with an echoed CX calibrated on
// the pair (1,0): control qubit 1 (drive d1), target qubit 0 (drive
// d0), cross-resonance line u1. Envelope timing follows the reference
// calibration: 768-sample GaussianSquare tones with sigma=64 and a
// 512-sample flat-top, 160-sample Drag echo pulses.

// crTone builds a cross-resonance GaussianSquare play on u1.
func crTone(t testing.TB, amp complex128) sched.Play {
	t.Helper()
	w, err := pulse.NewGaussianSquare(amp, 768, 64, 512)
	require.NoError(t, err)
	p, err := sched.NewPlay(w, sched.ControlChannel(1))
	require.NoError(t, err)

	return p
}

// rotaryTone builds a target-qubit rotary GaussianSquare play on d0
// with the same envelope timing as the CR tone.
func rotaryTone(t testing.TB, amp complex128) sched.Play {
	t.Helper()
	w, err := pulse.NewGaussianSquare(amp, 768, 64, 512)
	require.NoError(t, err)
	p, err := sched.NewPlay(w, sched.DriveChannel(0))
	require.NoError(t, err)

	return p
}

// echoPulse builds the calibrated X (Drag) play on the control qubit's
// drive channel d1.
func echoPulse(t testing.TB) sched.Play {
	t.Helper()
	w, err := pulse.NewDrag(0.21, 160, 40, -1.2)
	require.NoError(t, err)
	p, err := sched.NewPlay(w, sched.DriveChannel(1))
	require.NoError(t, err)

	return p
}

// echoedCX builds the baseline echoed CX schedule on (1,0):
// CR+/rotary at 0, echo at 768, CR−/rotary at 928, echo at 1696.
func echoedCX(t testing.TB) *sched.Schedule {
	t.Helper()
	s := sched.NewSchedule("cx")
	require.NoError(t, s.Insert(0, rotaryTone(t, 0.06+0.01i)))
	require.NoError(t, s.Insert(0, crTone(t, 0.45)))
	require.NoError(t, s.Insert(768, echoPulse(t)))
	require.NoError(t, s.Insert(928, rotaryTone(t, -0.06-0.01i)))
	require.NoError(t, s.Insert(928, crTone(t, -0.45)))
	require.NoError(t, s.Insert(1696, echoPulse(t)))

	return s
}

// xSchedule builds the control qubit's calibrated X schedule.
func xSchedule(t testing.TB) *sched.Schedule {
	t.Helper()
	s := sched.NewSchedule("x")
	require.NoError(t, s.Insert(0, echoPulse(t)))

	return s
}

// backendMaps builds the instruction-schedule map and channel map of
// the fixture backend.
func backendMaps(t testing.TB) (*calib.InstructionScheduleMap, *calib.ChannelMap) {
	t.Helper()

	cm := calib.NewChannelMap()
	cm.MapDrive(0, sched.DriveChannel(0))
	cm.MapDrive(1, sched.DriveChannel(1))
	cm.MapControl(1, 0, sched.ControlChannel(1))

	im := calib.NewInstructionScheduleMap()
	im.Add("cx", []int{1, 0}, echoedCX(t))
	im.Add("x", []int{1}, xSchedule(t))

	return im, cm
}
