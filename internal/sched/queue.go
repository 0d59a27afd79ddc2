package sched

import (
	"container/heap"

	"github.com/jar0582/cpusched/internal/proc"
)

// readyQueue is a min-heap of arrived jobs ordered by a per-policy key,
// then arrival time, then input order. The input-order tail makes the
// ordering a strict total order, so identical keys always resolve the
// same way.
type readyQueue struct {
	jobs []*job
	key  func(*job) int64
}

func (q *readyQueue) Len() int { return len(q.jobs) }

func (q *readyQueue) Less(i, j int) bool {
	a, b := q.jobs[i], q.jobs[j]
	if ka, kb := q.key(a), q.key(b); ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.index < b.index
}

func (q *readyQueue) Swap(i, j int) { q.jobs[i], q.jobs[j] = q.jobs[j], q.jobs[i] }

func (q *readyQueue) Push(x any) { q.jobs = append(q.jobs, x.(*job)) }

func (q *readyQueue) Pop() any {
	old := q.jobs
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	q.jobs = old[:n-1]
	return item
}

// runNonpreemptive dispatches jobs one at a time: at each decision point
// (start of run or a completion) the ready job with the smallest key runs
// to completion. When nothing has arrived the clock jumps to the next
// arrival and the CPU idles.
func runNonpreemptive(algorithm string, t *proc.Table, key func(*job) int64) Schedule {
	pending := byArrival(jobsFrom(t))
	ready := &readyQueue{key: key}
	heap.Init(ready)

	s := newSchedule(algorithm, t.Len())

	var now int64
	for len(pending) > 0 || ready.Len() > 0 {
		for len(pending) > 0 && pending[0].ArrivalTime <= now {
			heap.Push(ready, pending[0])
			pending = pending[1:]
		}
		if ready.Len() == 0 {
			now = pending[0].ArrivalTime
			continue
		}

		j := heap.Pop(ready).(*job)
		s.record(j.ID, now, now+j.BurstDuration)
		now += j.BurstDuration
		s.complete(j.ID, now)
	}
	return s
}
