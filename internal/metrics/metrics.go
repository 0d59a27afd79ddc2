// Package metrics derives per-process and aggregate timing from a
// finished schedule. It is pure computation: same table, same schedule,
// same numbers.
package metrics

import (
	"errors"
	"fmt"

	"github.com/jar0582/cpusched/internal/proc"
	"github.com/jar0582/cpusched/internal/sched"
)

// ErrIncompleteSchedule is returned when a process in the table has no
// completion time in the schedule. This indicates a scheduler bug, not
// bad input.
var ErrIncompleteSchedule = errors.New("incomplete schedule")

// ProcessMetrics holds the timing results for one process.
type ProcessMetrics struct {
	PID        int64
	Priority   int64
	Burst      int64
	Arrival    int64
	Wait       int64
	Turnaround int64
	Completion int64
}

// Metrics holds per-process timing in table order plus the run averages.
type Metrics struct {
	PerProcess    []ProcessMetrics
	AvgWait       float64
	AvgTurnaround float64
	Throughput    float64
}

// Compute derives waiting time, turnaround time, their averages, and
// throughput (processes per time unit up to the last completion) from a
// completed schedule.
func Compute(t *proc.Table, s sched.Schedule) (Metrics, error) {
	procs := t.Processes()
	m := Metrics{PerProcess: make([]ProcessMetrics, 0, len(procs))}

	var totalWait, totalTurnaround float64
	var lastCompletion int64
	for _, p := range procs {
		completion, ok := s.Completion[p.ID]
		if !ok {
			return Metrics{}, fmt.Errorf("%w: process %d has no completion time", ErrIncompleteSchedule, p.ID)
		}

		turnaround := completion - p.ArrivalTime
		wait := turnaround - p.BurstDuration
		totalWait += float64(wait)
		totalTurnaround += float64(turnaround)
		if completion > lastCompletion {
			lastCompletion = completion
		}

		m.PerProcess = append(m.PerProcess, ProcessMetrics{
			PID:        p.ID,
			Priority:   p.Priority,
			Burst:      p.BurstDuration,
			Arrival:    p.ArrivalTime,
			Wait:       wait,
			Turnaround: turnaround,
			Completion: completion,
		})
	}

	if n := float64(len(procs)); n > 0 {
		m.AvgWait = totalWait / n
		m.AvgTurnaround = totalTurnaround / n
		if lastCompletion > 0 {
			m.Throughput = n / float64(lastCompletion)
		}
	}
	return m, nil
}
