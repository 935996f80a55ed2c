// Package dispatcher turns a supervisor's spawn_worker tool call into a
// validated, persisted, dispatched worker job and feeds the terminal
// result back into the run: durable job record, timeline events, a short
// summary for the thread, and the resume attempt on the parent run.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/models"
	"github.com/swarmlet/swarmlet/pkg/services"
	"github.com/swarmlet/swarmlet/pkg/transport"
)

// defaultJobTimeoutSecs applies when a spawn request carries no timeout.
const defaultJobTimeoutSecs = 300

// commandPreviewMax bounds the command excerpt that goes into the
// worker_spawned event. The full command lives only on the job record.
const commandPreviewMax = 120

// RunStore is the run-state side of a spawn: suspending the parent.
type RunStore interface {
	EnsureWaiting(ctx context.Context, runID string) (bool, error)
}

// JobStore persists worker jobs through their lifecycle.
type JobStore interface {
	CreateJob(ctx context.Context, ownerID, runID, toolCallID, runnerID, task, command string, timeoutSecs int) (*ent.WorkerJob, error)
	MarkRunning(ctx context.Context, jobID string) error
	CompleteJob(ctx context.Context, jobID string, status workerjob.Status, result, summary, errMsg string, exitCode *int) (*ent.WorkerJob, error)
}

// RunnerSource resolves a runner and its capability set, owner-scoped.
type RunnerSource interface {
	GetRunner(ctx context.Context, ownerID, runnerID string) (*ent.Runner, error)
}

// JobTransport is the live dispatch path. Implemented by transport.Hub.
type JobTransport interface {
	IsOnline(ownerID, runnerID string) bool
	Dispatch(ctx context.Context, ownerID, runnerID string, job transport.JobRequest) (transport.JobResult, error)
}

// EventSink appends to the run timeline. Implemented by events.Store.
type EventSink interface {
	Append(ctx context.Context, runID, ownerID, eventType string, payload map[string]any) (int64, error)
}

// Masker scrubs credential material from worker output before it is
// persisted or summarized. Implemented by masking.Service.
type Masker interface {
	Mask(text string) string
}

// Resumer is notified when a worker reaches a terminal state so the
// parent run can attempt its WAITING→RUNNING resume. Implemented by the
// supervisor engine; set after construction because the engine also
// calls back into the dispatcher.
type Resumer interface {
	ResumeAfterWorker(ctx context.Context, job *ent.WorkerJob) error
}

// SpawnRequest is one spawn_worker tool call.
type SpawnRequest struct {
	OwnerID     string
	RunID       string
	ToolCallID  string
	RunnerID    string
	Task        string
	Command     string
	TimeoutSecs int
}

// Dispatcher owns the worker job lifecycle.
type Dispatcher struct {
	runs       RunStore
	jobs       JobStore
	runners    RunnerSource
	hub        JobTransport
	events     EventSink
	summarizer *Summarizer
	masker     Masker

	resumer Resumer
}

// New creates a Dispatcher. Call SetResumer before the first spawn.
func New(runs RunStore, jobs JobStore, runners RunnerSource, hub JobTransport, sink EventSink, summarizer *Summarizer, masker Masker) *Dispatcher {
	return &Dispatcher{
		runs:       runs,
		jobs:       jobs,
		runners:    runners,
		hub:        hub,
		events:     sink,
		summarizer: summarizer,
		masker:     masker,
	}
}

// SetResumer wires the supervisor's resume path.
func (d *Dispatcher) SetResumer(r Resumer) {
	d.resumer = r
}

// SpawnWorker validates the command against the runner's capabilities,
// persists a queued job, suspends the parent run, emits worker_spawned,
// and hands the job to a background goroutine that drives the dispatch
// and the terminal bookkeeping. It returns as soon as the job is
// durable; the caller's goroutine is expected to exit while the run
// waits.
func (d *Dispatcher) SpawnWorker(ctx context.Context, req SpawnRequest) (*ent.WorkerJob, error) {
	runner, err := d.runners.GetRunner(ctx, req.OwnerID, req.RunnerID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil, models.NewNotFoundError("runner %s not found", req.RunnerID)
		}
		return nil, err
	}

	if err := ValidateCommand(req.Command, runner.Capabilities); err != nil {
		return nil, err
	}

	timeoutSecs := req.TimeoutSecs
	if timeoutSecs <= 0 {
		timeoutSecs = defaultJobTimeoutSecs
	}

	job, err := d.jobs.CreateJob(ctx, req.OwnerID, req.RunID, req.ToolCallID, req.RunnerID, req.Task, req.Command, timeoutSecs)
	if err != nil {
		return nil, fmt.Errorf("failed to persist worker job: %w", err)
	}

	suspended, err := d.runs.EnsureWaiting(ctx, req.RunID)
	if err != nil {
		return nil, err
	}
	if !suspended {
		// The run left RUNNING underneath us (cancel racing the spawn).
		// The job never dispatches.
		_, _ = d.jobs.CompleteJob(ctx, job.ID, workerjob.StatusCancelled, "", "", "run was not in a running state", nil)
		return nil, models.NewExecutionError("run is not running")
	}

	if _, err := d.events.Append(ctx, req.RunID, req.OwnerID, events.EventTypeWorkerSpawned, map[string]any{
		"job_id":          job.ID,
		"worker_id":       req.RunnerID,
		"tool_call_id":    req.ToolCallID,
		"task":            req.Task,
		"command_preview": commandPreview(req.Command),
	}); err != nil {
		slog.Warn("Failed to emit worker_spawned", "run_id", req.RunID, "job_id", job.ID, "error", err)
	}

	go d.execute(req, job.ID, timeoutSecs)
	return job, nil
}

// execute drives one job to its terminal state. It runs detached from
// the spawning request: the supervisor goroutine is gone by now and the
// result must land even if the original client hung up.
func (d *Dispatcher) execute(req SpawnRequest, jobID string, timeoutSecs int) {
	ctx := context.Background()

	if !d.hub.IsOnline(req.OwnerID, req.RunnerID) {
		d.fail(ctx, req, jobID, workerjob.StatusFailed, "runner offline")
		return
	}

	if err := d.jobs.MarkRunning(ctx, jobID); err != nil {
		slog.Warn("Failed to mark job running", "job_id", jobID, "error", err)
	}
	if _, err := d.events.Append(ctx, req.RunID, req.OwnerID, events.EventTypeWorkerStarted, map[string]any{
		"job_id":    jobID,
		"worker_id": req.RunnerID,
	}); err != nil {
		slog.Warn("Failed to emit worker_started", "run_id", req.RunID, "job_id", jobID, "error", err)
	}

	result, err := d.hub.Dispatch(ctx, req.OwnerID, req.RunnerID, transport.JobRequest{
		JobID:       jobID,
		Command:     req.Command,
		TimeoutSecs: timeoutSecs,
	})
	if err != nil {
		status := workerjob.StatusFailed
		if errors.Is(err, transport.ErrDispatchTimeout) {
			status = workerjob.StatusTimeout
		}
		d.fail(ctx, req, jobID, status, dispatchErrorMessage(err))
		return
	}

	if result.ExitCode != 0 {
		output := d.masker.Mask(combineOutput(result.Stdout, result.Stderr))
		errMsg := fmt.Sprintf("command exited with code %d", result.ExitCode)
		job, cerr := d.jobs.CompleteJob(ctx, jobID, workerjob.StatusFailed, output, "", errMsg, &result.ExitCode)
		if cerr != nil {
			slog.Error("Failed to store worker failure", "job_id", jobID, "error", cerr)
			return
		}
		d.emitTerminal(ctx, req, events.EventTypeWorkerFailed, map[string]any{
			"job_id":      jobID,
			"worker_id":   req.RunnerID,
			"exit_code":   result.ExitCode,
			"duration_ms": result.DurationMS,
			"error":       errMsg,
		})
		d.resume(ctx, req, job)
		return
	}

	output := d.masker.Mask(combineOutput(result.Stdout, result.Stderr))
	summary := d.summarizer.Summarize(ctx, req.RunID, req.Task, output)
	job, cerr := d.jobs.CompleteJob(ctx, jobID, workerjob.StatusSuccess, output, summary, "", &result.ExitCode)
	if cerr != nil {
		slog.Error("Failed to store worker result", "job_id", jobID, "error", cerr)
		return
	}
	d.emitTerminal(ctx, req, events.EventTypeWorkerComplete, map[string]any{
		"job_id":      jobID,
		"worker_id":   req.RunnerID,
		"exit_code":   result.ExitCode,
		"duration_ms": result.DurationMS,
		"summary":     summary,
	})
	d.resume(ctx, req, job)
}

// fail records a terminal failure that never produced runner output.
// status distinguishes a dispatch timeout from other failures.
func (d *Dispatcher) fail(ctx context.Context, req SpawnRequest, jobID string, status workerjob.Status, errMsg string) {
	job, err := d.jobs.CompleteJob(ctx, jobID, status, "", "", errMsg, nil)
	if err != nil {
		slog.Error("Failed to store worker failure", "job_id", jobID, "error", err)
		return
	}
	d.emitTerminal(ctx, req, events.EventTypeWorkerFailed, map[string]any{
		"job_id":    jobID,
		"worker_id": req.RunnerID,
		"error":     errMsg,
	})
	d.resume(ctx, req, job)
}

func (d *Dispatcher) emitTerminal(ctx context.Context, req SpawnRequest, eventType string, payload map[string]any) {
	if _, err := d.events.Append(ctx, req.RunID, req.OwnerID, eventType, payload); err != nil {
		slog.Warn("Failed to emit worker terminal event", "run_id", req.RunID, "event_type", eventType, "error", err)
	}
}

// resume hands the finished job to the supervisor. The run may have been
// cancelled in the meantime; the resume CAS absorbs that.
func (d *Dispatcher) resume(ctx context.Context, req SpawnRequest, job *ent.WorkerJob) {
	if d.resumer == nil {
		slog.Error("No resumer wired; run stays waiting", "run_id", req.RunID, "job_id", job.ID)
		return
	}
	if err := d.resumer.ResumeAfterWorker(ctx, job); err != nil {
		slog.Error("Failed to resume run after worker", "run_id", req.RunID, "job_id", job.ID, "error", err)
	}
}

// dispatchErrorMessage flattens transport failures into the stored error
// string for the job record and the worker_failed payload.
func dispatchErrorMessage(err error) string {
	switch {
	case errors.Is(err, transport.ErrRunnerOffline):
		return "runner offline"
	case errors.Is(err, transport.ErrRunnerBusy):
		return "runner is busy"
	case errors.Is(err, transport.ErrDispatchTimeout):
		return "timed out"
	case errors.Is(err, transport.ErrConnectionLost):
		return "connection lost"
	default:
		return err.Error()
	}
}

// combineOutput merges stdout and stderr into the stored artifact,
// labelling the stderr section when both are present.
func combineOutput(stdout, stderr string) string {
	stdout = strings.TrimRight(stdout, "\n")
	stderr = strings.TrimRight(stderr, "\n")
	switch {
	case stderr == "":
		return stdout
	case stdout == "":
		return stderr
	default:
		return stdout + "\n--- stderr ---\n" + stderr
	}
}

// commandPreview is the bounded excerpt published on the event stream.
func commandPreview(command string) string {
	if idx := strings.IndexByte(command, '\n'); idx >= 0 {
		command = command[:idx]
	}
	if len(command) > commandPreviewMax {
		return command[:commandPreviewMax] + "…"
	}
	return command
}
