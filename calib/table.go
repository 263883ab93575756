package calib

import (
	"strconv"
	"strings"

	"github.com/quantakit/crcal/sched"
)

// paramsKey renders a parameter tuple at full float precision, so two
// angles that differ in any bit produce distinct calibration keys.
func paramsKey(params []float64) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(p, 'g', -1, 64))
	}

	return b.String()
}

// Table is a circuit's calibration table: (gate name, qubit tuple,
// parameter tuple) → schedule. It is the artifact builders produce
// entries for; the gate-attachment driver merges it into the compiled
// circuit. The table itself is a plain value passed by reference, not
// ambient state.
type Table struct {
	entries map[string]map[string]*sched.Schedule
}

// NewTable returns an empty calibration table.
func NewTable() *Table {
	return &Table{entries: make(map[string]map[string]*sched.Schedule)}
}

func tableKey(qubits []int, params []float64) string {
	return qubitsKey(qubits) + "|" + paramsKey(params)
}

// Add records the schedule for the gate instance identified by the
// qubit and parameter tuples, replacing any previous entry for the
// same key.
func (t *Table) Add(gate string, qubits []int, params []float64, s *sched.Schedule) error {
	if s == nil {
		return ErrNilSchedule
	}
	byKey, ok := t.entries[gate]
	if !ok {
		byKey = make(map[string]*sched.Schedule)
		t.entries[gate] = byKey
	}
	byKey[tableKey(qubits, params)] = s

	return nil
}

// Get returns the schedule recorded for the gate instance, if any.
func (t *Table) Get(gate string, qubits []int, params []float64) (*sched.Schedule, bool) {
	s, ok := t.entries[gate][tableKey(qubits, params)]

	return s, ok
}

// Has reports whether an entry exists for the gate instance.
func (t *Table) Has(gate string, qubits []int, params []float64) bool {
	_, ok := t.Get(gate, qubits, params)

	return ok
}

// Len reports the total number of recorded calibrations.
func (t *Table) Len() int {
	var n int
	for _, byKey := range t.entries {
		n += len(byKey)
	}

	return n
}
