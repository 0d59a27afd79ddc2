package sched

import (
	"errors"
	"fmt"

	"github.com/jar0582/cpusched/internal/proc"
)

// ErrInvalidQuantum is returned when RoundRobin is given a non-positive
// time quantum.
var ErrInvalidQuantum = errors.New("invalid time quantum")

// RoundRobin schedules processes preemptively with the given time quantum.
// The quantum always comes from the caller; the policy has no default.
//
// The ready queue is FIFO in arrival order. After each slice, processes
// that arrived during the slice (including exactly at its end) join the
// queue before the preempted process is re-appended, so a newcomer never
// waits behind the process that was just interrupted.
func RoundRobin(t *proc.Table, quantum int64) (Schedule, error) {
	if quantum <= 0 {
		return Schedule{}, fmt.Errorf("%w: %d", ErrInvalidQuantum, quantum)
	}

	pending := byArrival(jobsFrom(t))
	queue := make([]*job, 0, t.Len())
	s := newSchedule("rr", t.Len())

	var now int64
	admit := func() {
		for len(pending) > 0 && pending[0].ArrivalTime <= now {
			queue = append(queue, pending[0])
			pending = pending[1:]
		}
	}
	admit()

	for len(queue) > 0 || len(pending) > 0 {
		if len(queue) == 0 {
			now = pending[0].ArrivalTime
			admit()
			continue
		}

		j := queue[0]
		queue = queue[1:]

		run := quantum
		if j.remaining < run {
			run = j.remaining
		}
		s.record(j.ID, now, now+run)
		now += run
		j.remaining -= run

		admit()
		if j.remaining > 0 {
			queue = append(queue, j)
		} else {
			s.complete(j.ID, now)
		}
	}
	return s, nil
}
