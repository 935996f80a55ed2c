package api

import (
	"time"

	"github.com/swarmlet/swarmlet/ent"
)

// RunResponse is the API shape of a run.
type RunResponse struct {
	ID          string     `json:"id"`
	ThreadID    string     `json:"thread_id"`
	Status      string     `json:"status"`
	Task        string     `json:"task"`
	Error       string     `json:"error,omitempty"`
	TotalTokens int        `json:"total_tokens"`
	TotalCost   float64    `json:"total_cost"`
	Steps       int        `json:"steps"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

func toRunResponse(r *ent.Run) RunResponse {
	resp := RunResponse{
		ID:          r.ID,
		ThreadID:    r.ThreadID,
		Status:      string(r.Status),
		Task:        r.Task,
		TotalTokens: r.TotalTokens,
		TotalCost:   r.TotalCost,
		Steps:       r.Steps,
		CreatedAt:   r.CreatedAt,
		StartedAt:   r.StartedAt,
		FinishedAt:  r.FinishedAt,
	}
	if r.Error != nil {
		resp.Error = *r.Error
	}
	return resp
}

func toRunResponses(runs []*ent.Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, toRunResponse(r))
	}
	return out
}

// WorkerJobResponse is the API shape of a worker job. The full result is
// included; clients wanting only the digest use the summary field.
type WorkerJobResponse struct {
	ID          string     `json:"id"`
	RunID       string     `json:"run_id"`
	ToolCallID  string     `json:"tool_call_id"`
	RunnerID    string     `json:"runner_id,omitempty"`
	Status      string     `json:"status"`
	Task        string     `json:"task"`
	Command     string     `json:"command"`
	Result      string     `json:"result,omitempty"`
	Summary     string     `json:"summary,omitempty"`
	Error       string     `json:"error,omitempty"`
	ExitCode    *int       `json:"exit_code,omitempty"`
	TimeoutSecs int        `json:"timeout_secs"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

func toWorkerJobResponse(j *ent.WorkerJob) WorkerJobResponse {
	return WorkerJobResponse{
		ID:          j.ID,
		RunID:       j.SupervisorRunID,
		ToolCallID:  j.ToolCallID,
		RunnerID:    j.RunnerID,
		Status:      string(j.Status),
		Task:        j.Task,
		Command:     j.Command,
		Result:      j.Result,
		Summary:     j.Summary,
		Error:       j.Error,
		ExitCode:    j.ExitCode,
		TimeoutSecs: j.TimeoutSecs,
		CreatedAt:   j.CreatedAt,
		StartedAt:   j.StartedAt,
		FinishedAt:  j.FinishedAt,
	}
}

func toWorkerJobResponses(jobs []*ent.WorkerJob) []WorkerJobResponse {
	out := make([]WorkerJobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toWorkerJobResponse(j))
	}
	return out
}

// RunnerResponse is the API shape of a runner. The secret hash never
// leaves the database.
type RunnerResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Capabilities []string       `json:"capabilities"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	LastSeenAt   *time.Time     `json:"last_seen_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

func toRunnerResponse(r *ent.Runner) RunnerResponse {
	return RunnerResponse{
		ID:           r.ID,
		Name:         r.Name,
		Status:       string(r.Status),
		Capabilities: r.Capabilities,
		Metadata:     r.Metadata,
		LastSeenAt:   r.LastSeenAt,
		CreatedAt:    r.CreatedAt,
	}
}

func toRunnerResponses(runners []*ent.Runner) []RunnerResponse {
	out := make([]RunnerResponse, 0, len(runners))
	for _, r := range runners {
		out = append(out, toRunnerResponse(r))
	}
	return out
}

// registeredRunnerResponse carries the one-time plaintext secret back to
// a freshly registered runner.
type registeredRunnerResponse struct {
	Runner RunnerResponse `json:"runner"`
	Secret string         `json:"secret"`
}

// enrollTokenResponse is the result of POST /api/runners/enroll-token.
type enrollTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// DeviceTokenResponse is the API shape of a device token record.
type DeviceTokenResponse struct {
	ID         string     `json:"id"`
	DeviceID   string     `json:"device_id"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
	RevokedAt  *time.Time `json:"revoked_at,omitempty"`
}

func toDeviceTokenResponse(t *ent.DeviceToken) DeviceTokenResponse {
	return DeviceTokenResponse{
		ID:         t.ID,
		DeviceID:   t.DeviceID,
		CreatedAt:  t.CreatedAt,
		LastUsedAt: t.LastUsedAt,
		RevokedAt:  t.RevokedAt,
	}
}

func toDeviceTokenResponses(tokens []*ent.DeviceToken) []DeviceTokenResponse {
	out := make([]DeviceTokenResponse, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, toDeviceTokenResponse(t))
	}
	return out
}

// createdTokenResponse carries the one-time plaintext device token.
type createdTokenResponse struct {
	Token     DeviceTokenResponse `json:"token"`
	Plaintext string              `json:"plaintext"`
}

// HealthCheck is one component's health.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}
