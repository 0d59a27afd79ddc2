// Package api exposes each scheduling policy as a JSON endpoint.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jar0582/cpusched/config"
	"github.com/jar0582/cpusched/internal/metrics"
	"github.com/jar0582/cpusched/internal/proc"
	"github.com/jar0582/cpusched/internal/requests"
	"github.com/jar0582/cpusched/internal/responses"
	"github.com/jar0582/cpusched/internal/sched"
)

type SchedulerHandler struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandler(cfg *config.SchedulerConfig) *SchedulerHandler {
	return &SchedulerHandler{config: cfg}
}

// Register mounts the policy endpoints under /api/v1.
func (h *SchedulerHandler) Register(app *fiber.App) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/fcfs", h.FirstComeFirstServe)
	v1.Post("/sjf", h.ShortestJobFirst)
	v1.Post("/priority", h.Priority)
	v1.Post("/rr", h.RoundRobin)
	v1.Post("/all", h.AllAlgorithms)
}

func (h *SchedulerHandler) FirstComeFirstServe(ctx *fiber.Ctx) error {
	table, _, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return respond(ctx, table, sched.FCFS(table))
}

func (h *SchedulerHandler) ShortestJobFirst(ctx *fiber.Ctx) error {
	table, _, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return respond(ctx, table, sched.SJF(table))
}

func (h *SchedulerHandler) Priority(ctx *fiber.Ctx) error {
	table, _, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	return respond(ctx, table, sched.Priority(table))
}

func (h *SchedulerHandler) RoundRobin(ctx *fiber.Ctx) error {
	table, quantum, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if quantum == 0 {
		quantum = h.config.RoundRobinTimeQuantum
	}
	schedule, err := sched.RoundRobin(table, quantum)
	if err != nil {
		return badRequest(ctx, err)
	}
	return respond(ctx, table, schedule)
}

// AllAlgorithms runs every policy over the same table and returns the
// results keyed by algorithm name.
func (h *SchedulerHandler) AllAlgorithms(ctx *fiber.Ctx) error {
	table, quantum, err := parseRequest(ctx)
	if err != nil {
		return badRequest(ctx, err)
	}
	if quantum == 0 {
		quantum = h.config.RoundRobinTimeQuantum
	}
	rr, err := sched.RoundRobin(table, quantum)
	if err != nil {
		return badRequest(ctx, err)
	}

	out := make(map[string]responses.ScheduleResponse, 4)
	for _, schedule := range []sched.Schedule{sched.FCFS(table), sched.SJF(table), sched.Priority(table), rr} {
		resp, err := buildResponse(table, schedule)
		if err != nil {
			return internalError(ctx, err)
		}
		out[schedule.Algorithm] = resp
	}
	return ctx.JSON(out)
}

func parseRequest(ctx *fiber.Ctx) (*proc.Table, int64, error) {
	var req requests.ScheduleRequest
	if err := ctx.BodyParser(&req); err != nil {
		return nil, 0, err
	}
	processes := make([]proc.Process, len(req.Processes))
	for i, p := range req.Processes {
		processes[i] = proc.Process{
			ID:            p.ProcessID,
			ArrivalTime:   p.ArrivalTime,
			BurstDuration: p.BurstTime,
			Priority:      p.Priority,
		}
	}
	table, err := proc.NewTable(processes)
	if err != nil {
		return nil, 0, err
	}
	return table, req.TimeQuantum, nil
}

func respond(ctx *fiber.Ctx, table *proc.Table, schedule sched.Schedule) error {
	resp, err := buildResponse(table, schedule)
	if err != nil {
		return internalError(ctx, err)
	}
	return ctx.JSON(resp)
}

func buildResponse(table *proc.Table, schedule sched.Schedule) (responses.ScheduleResponse, error) {
	m, err := metrics.Compute(table, schedule)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	resp := responses.ScheduleResponse{
		Algorithm:             schedule.Algorithm,
		Gantt:                 make([]responses.SliceResponse, 0, len(schedule.Slices)),
		AverageWaitingTime:    m.AvgWait,
		AverageTurnAroundTime: m.AvgTurnaround,
		Throughput:            m.Throughput,
		Details:               make([]responses.ProcessResponse, 0, len(m.PerProcess)),
	}
	for _, slice := range schedule.Slices {
		resp.Gantt = append(resp.Gantt, responses.SliceResponse{
			ProcessID: slice.PID,
			Start:     slice.Start,
			Stop:      slice.Stop,
		})
	}
	for _, p := range m.PerProcess {
		resp.Details = append(resp.Details, responses.ProcessResponse{
			ProcessID:      p.PID,
			WaitingTime:    p.Wait,
			TurnAroundTime: p.Turnaround,
			CompletionTime: p.Completion,
		})
	}
	return resp, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	msg := "invalid request format"
	if errors.Is(err, proc.ErrInvalidInput) || errors.Is(err, sched.ErrInvalidQuantum) {
		msg = err.Error()
	}
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func internalError(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
