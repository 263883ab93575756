package calib

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/quantakit/crcal/sched"
)

// qubitsKey renders a qubit tuple canonically ("1,0"). Order matters:
// (1,0) and (0,1) are distinct calibrations.
func qubitsKey(qubits []int) string {
	var b strings.Builder
	for i, q := range qubits {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(q))
	}

	return b.String()
}

// InstructionScheduleMap holds the backend's calibrated baseline
// schedules, keyed by gate name and qubit tuple. It is populated once
// from the backend description and read-only thereafter; builders
// never modify it.
type InstructionScheduleMap struct {
	entries map[string]*sched.Schedule
}

// NewInstructionScheduleMap returns an empty map.
func NewInstructionScheduleMap() *InstructionScheduleMap {
	return &InstructionScheduleMap{entries: make(map[string]*sched.Schedule)}
}

func instKey(gate string, qubits []int) string {
	return gate + "|" + qubitsKey(qubits)
}

// Add registers the calibrated schedule for gate on the qubit tuple,
// replacing any previous entry.
func (m *InstructionScheduleMap) Add(gate string, qubits []int, s *sched.Schedule) {
	m.entries[instKey(gate, qubits)] = s
}

// Get returns the calibrated schedule for gate on the qubit tuple, or
// ErrCalibrationNotFound.
func (m *InstructionScheduleMap) Get(gate string, qubits ...int) (*sched.Schedule, error) {
	s, ok := m.entries[instKey(gate, qubits)]
	if !ok {
		return nil, fmt.Errorf("%s on qubits %s: %w", gate, qubitsKey(qubits), ErrCalibrationNotFound)
	}

	return s, nil
}

// Has reports whether a calibration exists for gate on the qubit tuple.
func (m *InstructionScheduleMap) Has(gate string, qubits ...int) bool {
	_, ok := m.entries[instKey(gate, qubits)]

	return ok
}
