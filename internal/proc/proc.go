package proc

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every validation failure when building a Table.
var ErrInvalidInput = errors.New("invalid input")

// Process is one unit of work to be scheduled. The descriptor is static;
// bookkeeping such as remaining burst lives with each simulation run, not here.
type Process struct {
	ID            int64
	ArrivalTime   int64
	BurstDuration int64
	Priority      int64
}

// Table is a validated process list. It is immutable after construction;
// every run works on its own copy obtained from Processes.
type Table struct {
	procs []Process
}

// NewTable validates the descriptors and builds a Table. It rejects
// non-positive bursts, negative arrival times, and duplicate ids. Input
// order is preserved; policies rely on it to break ties deterministically.
func NewTable(processes []Process) (*Table, error) {
	seen := make(map[int64]struct{}, len(processes))
	for _, p := range processes {
		if p.BurstDuration <= 0 {
			return nil, fmt.Errorf("%w: process %d has non-positive burst %d", ErrInvalidInput, p.ID, p.BurstDuration)
		}
		if p.ArrivalTime < 0 {
			return nil, fmt.Errorf("%w: process %d has negative arrival time %d", ErrInvalidInput, p.ID, p.ArrivalTime)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate process id %d", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = struct{}{}
	}

	t := &Table{procs: make([]Process, len(processes))}
	copy(t.procs, processes)
	return t, nil
}

// Len returns the number of processes in the table.
func (t *Table) Len() int { return len(t.procs) }

// Processes returns a fresh copy of the descriptors in input order.
// Callers may mutate the returned slice freely; repeated runs over the
// same table never observe each other's state.
func (t *Table) Processes() []Process {
	out := make([]Process, len(t.procs))
	copy(out, t.procs)
	return out
}
