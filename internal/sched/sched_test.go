package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jar0582/cpusched/internal/proc"
)

// The worked example used throughout the course handouts:
// P1 arrives at 0 with burst 5, P2 at 1 with burst 3, P3 at 2 with burst 8.
func exampleTable(t *testing.T) *proc.Table {
	t.Helper()
	table, err := proc.NewTable([]proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 5},
		{ID: 2, ArrivalTime: 1, BurstDuration: 3},
		{ID: 3, ArrivalTime: 2, BurstDuration: 8},
	})
	require.NoError(t, err)
	return table
}

func mustTable(t *testing.T, processes []proc.Process) *proc.Table {
	t.Helper()
	table, err := proc.NewTable(processes)
	require.NoError(t, err)
	return table
}

// checkInvariants asserts the properties every schedule must satisfy:
// slices in time order without overlap, slice durations summing to each
// process's burst, and completion matching the last slice.
func checkInvariants(t *testing.T, table *proc.Table, s Schedule) {
	t.Helper()

	executed := make(map[int64]int64)
	lastStop := make(map[int64]int64)
	var prevStop int64
	for _, slice := range s.Slices {
		assert.Greater(t, slice.Stop, slice.Start, "empty slice for pid %d", slice.PID)
		assert.GreaterOrEqual(t, slice.Start, prevStop, "overlapping slices at pid %d", slice.PID)
		prevStop = slice.Stop
		executed[slice.PID] += slice.Stop - slice.Start
		lastStop[slice.PID] = slice.Stop
	}

	for _, p := range table.Processes() {
		assert.Equal(t, p.BurstDuration, executed[p.ID], "pid %d executed time", p.ID)

		completion, ok := s.Completion[p.ID]
		require.True(t, ok, "pid %d has no completion", p.ID)
		assert.Equal(t, lastStop[p.ID], completion, "pid %d completion", p.ID)

		start, ok := s.Start[p.ID]
		require.True(t, ok, "pid %d has no start", p.ID)
		assert.GreaterOrEqual(t, start, p.ArrivalTime, "pid %d started before arrival", p.ID)
		assert.GreaterOrEqual(t, completion, start, "pid %d completion before start", p.ID)
	}
}

func TestFCFSExample(t *testing.T) {
	table := exampleTable(t)
	s := FCFS(table)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 5},
		{PID: 2, Start: 5, Stop: 8},
		{PID: 3, Start: 8, Stop: 16},
	}, s.Slices)
	assert.Equal(t, map[int64]int64{1: 5, 2: 8, 3: 16}, s.Completion)
	checkInvariants(t, table, s)
}

func TestFCFSIsIdempotent(t *testing.T) {
	table := exampleTable(t)
	assert.Equal(t, FCFS(table), FCFS(table))
}

func TestFCFSIdlesUntilArrival(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 1},
		{ID: 2, ArrivalTime: 10, BurstDuration: 1},
	})
	s := FCFS(table)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 1},
		{PID: 2, Start: 10, Stop: 11},
	}, s.Slices)
	checkInvariants(t, table, s)
}

func TestFCFSBreaksArrivalTiesByInputOrder(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 5, ArrivalTime: 0, BurstDuration: 2},
		{ID: 1, ArrivalTime: 0, BurstDuration: 2},
		{ID: 9, ArrivalTime: 0, BurstDuration: 2},
	})
	s := FCFS(table)

	assert.Equal(t, []int64{5, 1, 9}, slicePIDs(s))
	checkInvariants(t, table, s)
}

func TestSJFExample(t *testing.T) {
	table := exampleTable(t)
	s := SJF(table)

	// P1 is alone at t=0; at t=5 the shorter P2 beats P3.
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 5},
		{PID: 2, Start: 5, Stop: 8},
		{PID: 3, Start: 8, Stop: 16},
	}, s.Slices)
	checkInvariants(t, table, s)
}

func TestSJFPicksShortestAmongArrived(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 8},
		{ID: 2, ArrivalTime: 1, BurstDuration: 4},
		{ID: 3, ArrivalTime: 2, BurstDuration: 1},
	})
	s := SJF(table)

	// P1 occupies the CPU until 8; by then both others have arrived and
	// the shorter P3 goes ahead of P2 despite arriving later.
	assert.Equal(t, []int64{1, 3, 2}, slicePIDs(s))
	checkInvariants(t, table, s)
}

func TestSJFTieBreaksByArrivalThenInputOrder(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 4},
		{ID: 2, ArrivalTime: 0, BurstDuration: 4},
		{ID: 3, ArrivalTime: 0, BurstDuration: 2},
	})
	s := SJF(table)

	assert.Equal(t, []int64{3, 1, 2}, slicePIDs(s))
	checkInvariants(t, table, s)
}

func TestSJFIdlesUntilFirstArrival(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 5, BurstDuration: 3},
	})
	s := SJF(table)

	assert.Equal(t, []TimeSlice{{PID: 1, Start: 5, Stop: 8}}, s.Slices)
	checkInvariants(t, table, s)
}

func TestPriorityPrefersUrgentProcesses(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 3, Priority: 2},
		{ID: 2, ArrivalTime: 0, BurstDuration: 3, Priority: 1},
		{ID: 3, ArrivalTime: 0, BurstDuration: 3, Priority: 2},
	})
	s := Priority(table)

	// Lowest value first; the priority-2 tie resolves by input order.
	assert.Equal(t, []int64{2, 1, 3}, slicePIDs(s))
	checkInvariants(t, table, s)
}

func TestPriorityNeverPreemptsAndHasNoAging(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 1, Priority: 0},
		{ID: 2, ArrivalTime: 0, BurstDuration: 5, Priority: 9},
		{ID: 3, ArrivalTime: 1, BurstDuration: 1, Priority: 0},
		{ID: 4, ArrivalTime: 2, BurstDuration: 1, Priority: 0},
	})
	s := Priority(table)

	// Urgent late arrivals keep jumping the patient low-priority P2;
	// it runs only once nothing more urgent is waiting.
	assert.Equal(t, []int64{1, 3, 4, 2}, slicePIDs(s))
	assert.Equal(t, int64(8), s.Completion[2])
	checkInvariants(t, table, s)
}

func TestRoundRobinExampleTrace(t *testing.T) {
	table := exampleTable(t)
	s, err := RoundRobin(table, 2)
	require.NoError(t, err)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 4},
		{PID: 3, Start: 4, Stop: 6},
		{PID: 1, Start: 6, Stop: 8},
		{PID: 2, Start: 8, Stop: 9},
		{PID: 3, Start: 9, Stop: 11},
		{PID: 1, Start: 11, Stop: 12},
		{PID: 3, Start: 12, Stop: 14},
		{PID: 3, Start: 14, Stop: 16},
	}, s.Slices)
	assert.Equal(t, map[int64]int64{1: 12, 2: 9, 3: 16}, s.Completion)
	checkInvariants(t, table, s)
}

func TestRoundRobinArrivalAtPreemptionGoesFirst(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 0, BurstDuration: 4},
		{ID: 2, ArrivalTime: 2, BurstDuration: 1},
	})
	s, err := RoundRobin(table, 2)
	require.NoError(t, err)

	// P2 arrives exactly when P1 is preempted and must queue ahead of it.
	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 0, Stop: 2},
		{PID: 2, Start: 2, Stop: 3},
		{PID: 1, Start: 3, Stop: 5},
	}, s.Slices)
	checkInvariants(t, table, s)
}

func TestRoundRobinLargeQuantumDegeneratesToFCFS(t *testing.T) {
	table := exampleTable(t)
	s, err := RoundRobin(table, 100)
	require.NoError(t, err)

	assert.Equal(t, FCFS(table).Slices, s.Slices)
	checkInvariants(t, table, s)
}

func TestRoundRobinIdlesUntilArrival(t *testing.T) {
	table := mustTable(t, []proc.Process{
		{ID: 1, ArrivalTime: 3, BurstDuration: 2},
	})
	s, err := RoundRobin(table, 1)
	require.NoError(t, err)

	assert.Equal(t, []TimeSlice{
		{PID: 1, Start: 3, Stop: 4},
		{PID: 1, Start: 4, Stop: 5},
	}, s.Slices)
	checkInvariants(t, table, s)
}

func TestRoundRobinRejectsNonPositiveQuantum(t *testing.T) {
	table := exampleTable(t)
	for _, quantum := range []int64{0, -1} {
		_, err := RoundRobin(table, quantum)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidQuantum)
	}
}

func TestRunsDoNotContaminateEachOther(t *testing.T) {
	table := exampleTable(t)
	want := FCFS(table)

	// Round robin decrements remaining time; a later FCFS run over the
	// same table must not see any of it.
	_, err := RoundRobin(table, 2)
	require.NoError(t, err)
	assert.Equal(t, want, FCFS(table))
}

func slicePIDs(s Schedule) []int64 {
	pids := make([]int64, len(s.Slices))
	for i, slice := range s.Slices {
		pids[i] = slice.PID
	}
	return pids
}
