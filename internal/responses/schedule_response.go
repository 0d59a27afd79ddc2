package responses

type SliceResponse struct {
	ProcessID int64 `json:"process_id"`
	Start     int64 `json:"start"`
	Stop      int64 `json:"stop"`
}

type ProcessResponse struct {
	ProcessID      int64 `json:"process_id"`
	WaitingTime    int64 `json:"waiting_time"`
	TurnAroundTime int64 `json:"turn_around_time"`
	CompletionTime int64 `json:"completion_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Gantt                 []SliceResponse   `json:"gantt"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	Throughput            float64           `json:"throughput"`
	Details               []ProcessResponse `json:"details"`
}
