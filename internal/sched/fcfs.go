package sched

import "github.com/jar0582/cpusched/internal/proc"

// FCFS schedules processes first-come-first-serve: arrival order, ties
// broken by input order, each process running to completion once started.
// If the next process has not arrived yet the CPU idles until it does.
func FCFS(t *proc.Table) Schedule {
	s := newSchedule("fcfs", t.Len())

	var now int64
	for _, j := range byArrival(jobsFrom(t)) {
		if j.ArrivalTime > now {
			now = j.ArrivalTime
		}
		s.record(j.ID, now, now+j.BurstDuration)
		now += j.BurstDuration
		s.complete(j.ID, now)
	}
	return s
}
