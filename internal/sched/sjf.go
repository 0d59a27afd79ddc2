package sched

import "github.com/jar0582/cpusched/internal/proc"

// SJF schedules processes shortest-job-first, non-preemptive. At each
// decision point the arrived process with the smallest burst runs to
// completion; ties go to the earlier arrival, then input order.
//
// The policy assumes burst durations are known exactly in advance; there
// is no burst prediction.
func SJF(t *proc.Table) Schedule {
	return runNonpreemptive("sjf", t, func(j *job) int64 { return j.BurstDuration })
}
