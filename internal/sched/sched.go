// Package sched implements four classic uniprocessor scheduling policies
// over a validated process table: first-come-first-serve, shortest-job-first,
// priority, and round robin. Each run is an offline, deterministic
// computation producing a Schedule; nothing blocks or sleeps.
package sched

import (
	"sort"

	"github.com/jar0582/cpusched/internal/proc"
)

// TimeSlice is one contiguous stretch of CPU given to a process.
type TimeSlice struct {
	PID   int64
	Start int64
	Stop  int64
}

// Schedule is the execution trace of one policy run. Non-preemptive
// policies produce one slice per process; round robin may produce several.
// Slices appear in execution order and never overlap (single CPU).
type Schedule struct {
	Algorithm  string
	Slices     []TimeSlice
	Start      map[int64]int64
	Completion map[int64]int64
}

func newSchedule(algorithm string, n int) Schedule {
	return Schedule{
		Algorithm:  algorithm,
		Slices:     make([]TimeSlice, 0, n),
		Start:      make(map[int64]int64, n),
		Completion: make(map[int64]int64, n),
	}
}

// record appends an execution slice and pins the process's start time on
// its first dispatch.
func (s *Schedule) record(pid, start, stop int64) {
	s.Slices = append(s.Slices, TimeSlice{PID: pid, Start: start, Stop: stop})
	if _, ok := s.Start[pid]; !ok {
		s.Start[pid] = start
	}
}

// complete marks pid finished at time t. The completion time is set once
// per run; later calls for the same pid are ignored.
func (s *Schedule) complete(pid, t int64) {
	if _, ok := s.Completion[pid]; !ok {
		s.Completion[pid] = t
	}
}

// job is the per-run working copy of a process: the static descriptor plus
// the mutable bookkeeping a policy needs. index is the position in the
// input and is the final tie-break everywhere.
type job struct {
	proc.Process
	index     int
	remaining int64
}

func jobsFrom(t *proc.Table) []*job {
	procs := t.Processes()
	jobs := make([]*job, len(procs))
	for i, p := range procs {
		jobs[i] = &job{Process: p, index: i, remaining: p.BurstDuration}
	}
	return jobs
}

// byArrival returns the jobs sorted by arrival time. The sort is stable,
// so arrival-time ties keep input order.
func byArrival(jobs []*job) []*job {
	out := append([]*job(nil), jobs...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArrivalTime < out[j].ArrivalTime
	})
	return out
}
