package proc

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadCSV reads process descriptors from r and builds a validated Table.
// Each row is "id, burst, arrival" with an optional fourth priority column,
// matching the course scheduling files.
func LoadCSV(r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // the priority column is optional per row
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	processes := make([]Process, len(rows))
	for i, row := range rows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%w: row %d has %d columns, want at least 3", ErrInvalidInput, i+1, len(row))
		}
		fields := make([]int64, len(row))
		for j, cell := range row {
			v, err := strconv.ParseInt(strings.TrimSpace(cell), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d column %d: %v", ErrInvalidInput, i+1, j+1, err)
			}
			fields[j] = v
		}
		processes[i] = Process{
			ID:            fields[0],
			BurstDuration: fields[1],
			ArrivalTime:   fields[2],
		}
		if len(fields) >= 4 {
			processes[i].Priority = fields[3]
		}
	}

	return NewTable(processes)
}
