package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jar0582/cpusched/internal/metrics"
	"github.com/jar0582/cpusched/internal/proc"
	"github.com/jar0582/cpusched/internal/report"
	"github.com/jar0582/cpusched/internal/sched"
)

var ErrInvalidArgs = errors.New("invalid args")

func main() {
	quantum := flag.Int64("quantum", 2, "time quantum for round robin")
	flag.Parse()

	f, closeFile, err := openProcessingFile(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	defer closeFile()

	table, err := proc.LoadCSV(f)
	if err != nil {
		log.Fatal(err)
	}

	render(os.Stdout, "First-come, first-serve", table, sched.FCFS(table))
	render(os.Stdout, "Shortest-job-first", table, sched.SJF(table))
	render(os.Stdout, "Priority", table, sched.Priority(table))

	rr, err := sched.RoundRobin(table, *quantum)
	if err != nil {
		log.Fatal(err)
	}
	render(os.Stdout, "Round-robin", table, rr)
}

func render(w io.Writer, title string, table *proc.Table, schedule sched.Schedule) {
	m, err := metrics.Compute(table, schedule)
	if err != nil {
		log.Fatal(err)
	}
	report.Render(w, title, schedule, m)
}

func openProcessingFile(args []string) (*os.File, func(), error) {
	if len(args) != 1 {
		return nil, nil, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("%v: error opening scheduling file", err)
	}
	closeFn := func() {
		if err := f.Close(); err != nil {
			log.Fatalf("%v: error closing scheduling file", err)
		}
	}

	return f, closeFn, nil
}
