package calib

import "github.com/quantakit/crcal/sched"

// Attach builds the calibration for gate(theta) on the qubit pair and
// records it in the table under the key (gate, qubits, (theta,)). This
// is the edge the gate-attachment driver calls once per distinct
// (pair, angle) occurrence; builds are idempotent, so re-attaching an
// existing key recomputes and replaces the identical entry.
func Attach(t *Table, b Builder, gate string, qubits []int, theta float64) (*sched.Schedule, error) {
	s, err := b.Build(gate, qubits, theta)
	if err != nil {
		return nil, err
	}
	if err = t.Add(gate, qubits, []float64{theta}, s); err != nil {
		return nil, err
	}

	return s, nil
}
