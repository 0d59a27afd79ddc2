package sched

import "github.com/jar0582/cpusched/internal/proc"

// Priority schedules processes by priority, non-preemptive. Lower value
// means more urgent; ties go to the earlier arrival, then input order.
//
// There is no aging: a steady stream of urgent arrivals can starve a
// low-priority process indefinitely. That is a property of the policy,
// not a bug.
func Priority(t *proc.Table) Schedule {
	return runNonpreemptive("priority", t, func(j *job) int64 { return j.Priority })
}
