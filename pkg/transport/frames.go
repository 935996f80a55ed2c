// Package transport is the runner-facing side of the orchestrator: a hub
// of long-lived WebSocket connections initiated by runners, and the
// dispatch path that pushes exec jobs over them and awaits results.
package transport

// Frame types. hello/heartbeat/job.result/job.error flow runner→server;
// hello.ack and job.request flow server→runner.
const (
	FrameHello     = "hello"
	FrameHelloAck  = "hello.ack"
	FrameHeartbeat = "heartbeat"
	FrameJobRequest = "job.request"
	FrameJobResult  = "job.result"
	FrameJobError   = "job.error"
)

// Frame is the single wire message shape for the runner channel. Which
// fields are meaningful depends on Type.
type Frame struct {
	Type string `json:"type"`

	// hello
	RunnerID string         `json:"runner_id,omitempty"`
	Secret   string         `json:"secret,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`

	// job.request / job.result / job.error
	JobID       string `json:"job_id,omitempty"`
	Command     string `json:"command,omitempty"`
	TimeoutSecs int    `json:"timeout_secs,omitempty"`

	// job.result
	ExitCode   *int   `json:"exit_code,omitempty"`
	Stdout     string `json:"stdout,omitempty"`
	Stderr     string `json:"stderr,omitempty"`
	DurationMS int64  `json:"duration_ms,omitempty"`

	// job.error / hello rejection
	Message string `json:"message,omitempty"`
}

// JobRequest is what the dispatcher hands to Dispatch.
type JobRequest struct {
	JobID       string
	Command     string
	TimeoutSecs int
}

// JobResult is a runner's terminal answer for one job.
type JobResult struct {
	JobID      string
	ExitCode   int
	Stdout     string
	Stderr     string
	DurationMS int64
}
