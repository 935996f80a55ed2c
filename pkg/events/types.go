// Package events is the durable run-event log and its live fanout.
//
// Every observable step of a run is appended to the run_events table and
// the database primary key is the event id: globally monotone and
// gap-tolerant. Append commits first, then fans out to in-process
// subscribers; on Postgres a NOTIFY on the run's channel carries the
// event to other replicas, whose NotifyListener republishes it into the
// local broker. Persistence is the contract — live delivery is
// best-effort, and the stream assembler reconciles the two by replaying
// from the store and deduplicating on id.
package events

import (
	"errors"
	"time"
)

// Run timeline event types.
const (
	EventTypeSupervisorStarted       = "supervisor_started"
	EventTypeSupervisorToken         = "supervisor_token"
	EventTypeSupervisorToolStarted   = "supervisor_tool_started"
	EventTypeSupervisorToolCompleted = "supervisor_tool_completed"
	EventTypeSupervisorToolFailed    = "supervisor_tool_failed"
	EventTypeWorkerSpawned           = "worker_spawned"
	EventTypeWorkerStarted           = "worker_started"
	EventTypeWorkerToolStarted       = "worker_tool_started"
	EventTypeWorkerToolCompleted     = "worker_tool_completed"
	EventTypeWorkerToolFailed        = "worker_tool_failed"
	EventTypeWorkerComplete          = "worker_complete"
	EventTypeWorkerFailed            = "worker_failed"
	EventTypeSupervisorComplete      = "supervisor_complete"
	EventTypeSupervisorFailed        = "supervisor_failed"
	EventTypeStreamControl           = "stream_control"
)

// stream_control payload actions.
const (
	StreamActionClose    = "close"
	StreamActionKeepOpen = "keep_open"
)

// ErrInvalidPayload is returned by Append when the payload cannot be
// serialised to JSON. Nothing is persisted or published in that case.
var ErrInvalidPayload = errors.New("event payload is not JSON-serialisable")

// RunChannel returns the NOTIFY channel name for a run's events.
// Format: "run:{run_id}"
func RunChannel(runID string) string {
	return "run:" + runID
}

// Event is one durable entry in a run's timeline.
type Event struct {
	ID        int64          `json:"id"`
	RunID     string         `json:"run_id"`
	OwnerID   string         `json:"owner_id"`
	Type      string         `json:"type"`
	Payload   map[string]any `json:"payload"`
	CreatedAt time.Time      `json:"created_at"`
}
