package supervisor

import (
	"context"
	"log/slog"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

// ResumeAfterWorker is the dispatcher's callback when a worker job
// reaches a terminal state. The WAITING→RUNNING conditional update is
// the arbitration point: exactly one caller per suspend wins and
// re-enters the loop; every other caller (parallel fan-out siblings,
// crash-recovery replays, results landing after a cancel) sees a
// non-WAITING status and skips.
func (e *Engine) ResumeAfterWorker(ctx context.Context, job *ent.WorkerJob) error {
	won, err := e.runs.TryResume(ctx, job.SupervisorRunID)
	if err != nil {
		return err
	}

	r, err := e.runs.GetRun(ctx, job.OwnerID, job.SupervisorRunID)
	if err != nil {
		return err
	}

	if !won && isTerminal(r.Status) {
		// Late result on a finished or cancelled run: the job record is
		// the only trace it leaves.
		slog.Info("Resume skipped; run already terminal", "run_id", job.SupervisorRunID, "job_id", job.ID, "status", r.Status)
		return nil
	}

	// The thread append is idempotent on tool_call_id so a replayed
	// terminal transition never duplicates the result. Losing fan-out
	// siblings still append: their result must be in the thread before
	// the winner's next LLM call reads it.
	has, err := e.threads.HasToolResult(ctx, r.ThreadID, job.ToolCallID)
	if err != nil {
		return err
	}
	if !has {
		if _, err := e.threads.AppendToolResult(ctx, r.ThreadID, job.ToolCallID, SpawnWorkerToolName, resumeContent(job)); err != nil {
			return err
		}
	}

	if !won {
		slog.Info("Resume skipped", "run_id", job.SupervisorRunID, "job_id", job.ID)
		return nil
	}

	slog.Info("Run resumed", "run_id", job.SupervisorRunID, "job_id", job.ID)
	e.wg.Add(1)
	go e.runLoop(r)
	return nil
}

func isTerminal(status run.Status) bool {
	switch status {
	case run.StatusSuccess, run.StatusFailed, run.StatusCancelled:
		return true
	default:
		return false
	}
}

// resumeContent is the tool-result message for a finished worker: the
// short summary plus the evidence marker referencing the full output.
func resumeContent(job *ent.WorkerJob) string {
	marker := EvidenceMarker(job.SupervisorRunID, job.ID, job.RunnerID)
	if job.Status == workerjob.StatusFailed || job.Status == workerjob.StatusTimeout {
		msg := job.Error
		if msg == "" {
			msg = "worker failed"
		}
		return "Worker failed: " + msg + "\n" + marker
	}
	summary := job.Summary
	if summary == "" {
		summary = "Worker completed with no output."
	}
	return summary + "\n" + marker
}
