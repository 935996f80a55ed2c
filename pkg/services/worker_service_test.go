package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

func createTestJob(t *testing.T, s *WorkerService, ownerID, runID string) *ent.WorkerJob {
	t.Helper()
	job, err := s.CreateJob(context.Background(), ownerID, runID, "call-1", "runner-1", "inspect disk", "df -h", 120)
	require.NoError(t, err)
	return job
}

func TestCreateJob(t *testing.T) {
	s := NewWorkerService(newTestClient(t))

	job := createTestJob(t, s, "owner-1", "run-1")

	assert.Equal(t, workerjob.StatusQueued, job.Status)
	assert.Equal(t, "run-1", job.SupervisorRunID)
	assert.Equal(t, "df -h", job.Command)
	assert.Equal(t, 120, job.TimeoutSecs)
}

func TestJobLifecycle(t *testing.T) {
	s := NewWorkerService(newTestClient(t))
	ctx := context.Background()
	job := createTestJob(t, s, "owner-1", "run-1")

	require.NoError(t, s.MarkRunning(ctx, job.ID))

	exit := 0
	done, err := s.CompleteJob(ctx, job.ID, workerjob.StatusSuccess, "Filesystem ok", "disks healthy", "", &exit)
	require.NoError(t, err)
	assert.Equal(t, workerjob.StatusSuccess, done.Status)
	assert.Equal(t, "Filesystem ok", done.Result)
	assert.Equal(t, "disks healthy", done.Summary)
	require.NotNil(t, done.ExitCode)
	assert.Equal(t, 0, *done.ExitCode)
	assert.NotNil(t, done.FinishedAt)
}

func TestCompleteJobFailure(t *testing.T) {
	s := NewWorkerService(newTestClient(t))
	job := createTestJob(t, s, "owner-1", "run-1")

	exit := 2
	done, err := s.CompleteJob(context.Background(), job.ID, workerjob.StatusFailed, "no such file", "", "command exited with code 2", &exit)
	require.NoError(t, err)
	assert.Equal(t, workerjob.StatusFailed, done.Status)
	assert.Equal(t, "command exited with code 2", done.Error)
}

func TestCompleteUnknownJob(t *testing.T) {
	s := NewWorkerService(newTestClient(t))

	_, err := s.CompleteJob(context.Background(), "no-such-job", workerjob.StatusFailed, "", "", "x", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetJobIsOwnerScoped(t *testing.T) {
	s := NewWorkerService(newTestClient(t))
	ctx := context.Background()
	job := createTestJob(t, s, "owner-1", "run-1")

	got, err := s.GetJob(ctx, "owner-1", job.ID)
	require.NoError(t, err)
	assert.Equal(t, job.ID, got.ID)

	_, err = s.GetJob(ctx, "owner-2", job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListForRunAndCountActive(t *testing.T) {
	s := NewWorkerService(newTestClient(t))
	ctx := context.Background()

	a := createTestJob(t, s, "owner-1", "run-1")
	b := createTestJob(t, s, "owner-1", "run-1")
	createTestJob(t, s, "owner-1", "run-2")

	jobs, err := s.ListForRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	n, err := s.CountActive(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	exit := 0
	_, err = s.CompleteJob(ctx, a.ID, workerjob.StatusSuccess, "ok", "", "", &exit)
	require.NoError(t, err)
	_, err = s.CompleteJob(ctx, b.ID, workerjob.StatusFailed, "", "", "timed out", nil)
	require.NoError(t, err)

	n, err = s.CountActive(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}
