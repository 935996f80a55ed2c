// Package queue is the durable claim–heartbeat job queue behind
// scheduled and recurring work. Its contract is exactly-once-ish
// execution across replicas: a crash never loses a queued item, a
// missed cron fire is backfilled once, and a retry never runs while the
// original claim's lease is still live.
package queue

import (
	"errors"
	"time"
)

// Queue item statuses.
const (
	StatusQueued  = "queued"
	StatusClaimed = "claimed"
	StatusRunning = "running"
	StatusSuccess = "success"
	StatusFailed  = "failed"
	StatusDead    = "dead"
)

// ErrNoItemsAvailable is returned by Claim when nothing is eligible.
var ErrNoItemsAvailable = errors.New("no queue items available")

// ErrPermanent wraps handler errors that must not be retried. The item
// goes straight to failed instead of back to queued.
var ErrPermanent = errors.New("permanent failure")

// ErrLeaseLost is reported when a heartbeat finds the claim gone: the
// sweeper requeued the item, or another owner took it.
var ErrLeaseLost = errors.New("queue lease lost")

// Item is one unit of scheduled work.
type Item struct {
	ID           int64
	JobID        string
	ScheduledFor time.Time
	DedupeKey    string
	Status       string
	Attempts     int
	MaxAttempts  int
}

// DedupeKey is the uniqueness key for one fire of one job:
// "{job_id}:{scheduled_for}" with the timestamp in compact UTC form.
// Two replicas backfilling the same missed fire collide here, and the
// collision is the dedupe.
func DedupeKey(jobID string, scheduledFor time.Time) string {
	return jobID + ":" + scheduledFor.UTC().Format("20060102T150405Z")
}

// RetryDelay is the backoff before attempt n+1 after n failed attempts:
// 60s doubling per attempt, capped at an hour.
func RetryDelay(attempts int) time.Duration {
	if attempts < 1 {
		attempts = 1
	}
	delay := 60 * time.Second
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= time.Hour {
			return time.Hour
		}
	}
	if delay > time.Hour {
		return time.Hour
	}
	return delay
}
