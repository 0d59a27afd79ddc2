// Package report renders a schedule and its metrics as text: a title
// banner, a Gantt chart, and a per-process timing table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/jar0582/cpusched/internal/metrics"
	"github.com/jar0582/cpusched/internal/sched"
)

// Render writes the full report for one policy run.
func Render(w io.Writer, title string, s sched.Schedule, m metrics.Metrics) {
	outputTitle(w, title)
	outputGantt(w, s.Slices)
	outputSchedule(w, m)
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []sched.TimeSlice) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := fmt.Sprint(gantt[i].PID)
		padding := strings.Repeat(" ", (8-len(pid))/2)
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, fmt.Sprint(gantt[i].Stop))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, m metrics.Metrics) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Exit"})
	for _, p := range m.PerProcess {
		table.Append([]string{
			fmt.Sprint(p.PID),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Wait),
			fmt.Sprint(p.Turnaround),
			fmt.Sprint(p.Completion),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", m.AvgWait),
		fmt.Sprintf("Average\n%.2f", m.AvgTurnaround),
		fmt.Sprintf("Throughput\n%.2f/t", m.Throughput)})
	table.Render()
}
