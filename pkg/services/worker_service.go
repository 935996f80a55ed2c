package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

// WorkerService persists worker jobs: the durable record of every
// command dispatched to a runner, including its full output (the
// artifact store the evidence compiler reads from).
type WorkerService struct {
	client *ent.Client
}

// NewWorkerService creates a new WorkerService.
func NewWorkerService(client *ent.Client) *WorkerService {
	return &WorkerService{client: client}
}

// CreateJob persists a QUEUED job for a supervisor run's tool call.
func (s *WorkerService) CreateJob(ctx context.Context, ownerID, runID, toolCallID, runnerID, task, command string, timeoutSecs int) (*ent.WorkerJob, error) {
	builder := s.client.WorkerJob.Create().
		SetID(uuid.New().String()).
		SetOwnerID(ownerID).
		SetSupervisorRunID(runID).
		SetToolCallID(toolCallID).
		SetRunnerID(runnerID).
		SetTask(task).
		SetCommand(command).
		SetStatus(workerjob.StatusQueued)
	if timeoutSecs > 0 {
		builder.SetTimeoutSecs(timeoutSecs)
	}
	job, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create worker job: %w", err)
	}
	return job, nil
}

// MarkRunning records the runner's ack.
func (s *WorkerService) MarkRunning(ctx context.Context, jobID string) error {
	err := s.client.WorkerJob.Update().
		Where(workerjob.IDEQ(jobID), workerjob.StatusEQ(workerjob.StatusQueued)).
		SetStatus(workerjob.StatusRunning).
		SetStartedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark job running: %w", err)
	}
	return nil
}

// CompleteJob stores the terminal result. Result text is kept in full;
// summary is the compressed form the supervisor sees inline.
func (s *WorkerService) CompleteJob(ctx context.Context, jobID string, status workerjob.Status, result, summary, errMsg string, exitCode *int) (*ent.WorkerJob, error) {
	job, err := s.client.WorkerJob.Query().Where(workerjob.IDEQ(jobID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query worker job: %w", err)
	}

	upd := job.Update().
		SetStatus(status).
		SetFinishedAt(time.Now())
	if result != "" {
		upd.SetResult(result)
	}
	if summary != "" {
		upd.SetSummary(summary)
	}
	if errMsg != "" {
		upd.SetError(errMsg)
	}
	if exitCode != nil {
		upd.SetExitCode(*exitCode)
	}
	job, err = upd.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete worker job: %w", err)
	}
	return job, nil
}

// GetJob fetches an owner's job. Someone else's is ErrNotFound.
func (s *WorkerService) GetJob(ctx context.Context, ownerID, jobID string) (*ent.WorkerJob, error) {
	job, err := s.client.WorkerJob.Query().
		Where(workerjob.IDEQ(jobID), workerjob.OwnerIDEQ(ownerID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query worker job: %w", err)
	}
	return job, nil
}

// GetRunJob fetches a job by run and job id, for evidence expansion.
func (s *WorkerService) GetRunJob(ctx context.Context, runID, jobID string) (*ent.WorkerJob, error) {
	job, err := s.client.WorkerJob.Query().
		Where(workerjob.IDEQ(jobID), workerjob.SupervisorRunIDEQ(runID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query worker job: %w", err)
	}
	return job, nil
}

// ListForRun returns all jobs spawned by a run, oldest first.
func (s *WorkerService) ListForRun(ctx context.Context, runID string) ([]*ent.WorkerJob, error) {
	jobs, err := s.client.WorkerJob.Query().
		Where(workerjob.SupervisorRunIDEQ(runID)).
		Order(ent.Asc(workerjob.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list worker jobs: %w", err)
	}
	return jobs, nil
}

// CountActive counts a run's jobs still queued or running. A run must
// not complete while this is non-zero.
func (s *WorkerService) CountActive(ctx context.Context, runID string) (int, error) {
	n, err := s.client.WorkerJob.Query().
		Where(
			workerjob.SupervisorRunIDEQ(runID),
			workerjob.StatusIn(workerjob.StatusQueued, workerjob.StatusRunning),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count active jobs: %w", err)
	}
	return n, nil
}
