package requests

type Process struct {
	ProcessID   int64 `json:"process_id"`
	ArrivalTime int64 `json:"arrival_time"`
	BurstTime   int64 `json:"burst_time"`
	Priority    int64 `json:"priority"`
}

type ScheduleRequest struct {
	Processes []Process `json:"processes"`
	// TimeQuantum applies to round robin only; zero means "use the
	// server's configured default".
	TimeQuantum int64 `json:"time_quantum,omitempty"`
}
