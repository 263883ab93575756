package sched

import "fmt"

// Channel identifies a hardware pulse line. The set is closed:
// DriveChannel for single-qubit drives and ControlChannel for
// cross-resonance drives on an ordered qubit pair. Channels are plain
// comparable values, so == distinguishes both kind and index.
type Channel interface {
	// Index reports the hardware channel index.
	Index() int

	// String renders the conventional short name ("d0", "u1").
	String() string
}

// DriveChannel is the single-qubit drive line of qubit Index().
type DriveChannel int

// Index reports the hardware channel index.
func (c DriveChannel) Index() int { return int(c) }

// String renders the conventional "d<index>" name.
func (c DriveChannel) String() string { return fmt.Sprintf("d%d", int(c)) }

// ControlChannel is a cross-resonance drive line. The ordered qubit
// pair it acts on is backend topology, resolved externally (see the
// calib package's channel map); the channel itself carries only the
// hardware index.
type ControlChannel int

// Index reports the hardware channel index.
func (c ControlChannel) Index() int { return int(c) }

// String renders the conventional "u<index>" name.
func (c ControlChannel) String() string { return fmt.Sprintf("u%d", int(c)) }
