package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// notifyLimitBytes is the usable size of a Postgres NOTIFY payload
// (hard limit 8000 bytes; a margin is kept for driver overhead).
// Larger events are broadcast as a routing-only envelope and listeners
// refetch the full row from the store.
const notifyLimitBytes = 7900

// Store is the append-only run-event log.
//
// Append opens a fresh short-lived transaction, inserts the row, commits,
// then fans out to the local broker. On Postgres it also pg_notifys the
// run's channel inside the insert transaction (NOTIFY is transactional,
// held until COMMIT) so other replicas see the event too.
type Store struct {
	db         *sql.DB
	isPostgres bool
	broker     *Broker
}

// NewStore creates a Store over the shared *sql.DB.
func NewStore(db *sql.DB, isPostgres bool, broker *Broker) *Store {
	return &Store{db: db, isPostgres: isPostgres, broker: broker}
}

// Append validates, persists, and fans out one event, returning its id.
// Payloads that do not marshal to JSON fail with ErrInvalidPayload before
// anything is written. Fanout failure never fails Append.
func (s *Store) Append(ctx context.Context, runID, ownerID, eventType string, payload map[string]any) (int64, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin event transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createdAt := time.Now().UTC()
	var eventID int64
	err = tx.QueryRowContext(ctx, s.rebind(
		`INSERT INTO run_events (run_id, owner_id, event_type, payload, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id`),
		runID, ownerID, eventType, payloadJSON, createdAt,
	).Scan(&eventID)
	if err != nil {
		return 0, fmt.Errorf("failed to persist event: %w", err)
	}

	if s.isPostgres {
		notifyPayload, err := buildNotifyPayload(eventID, runID, eventType, payloadJSON)
		if err != nil {
			return 0, err
		}
		if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", RunChannel(runID), notifyPayload); err != nil {
			return 0, fmt.Errorf("pg_notify failed: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit event transaction: %w", err)
	}

	// Fanout after commit. Subscribers attached at emit time see the
	// id-ordered sequence consistent with replay.
	s.broker.Publish(Event{
		ID:        eventID,
		RunID:     runID,
		OwnerID:   ownerID,
		Type:      eventType,
		Payload:   payload,
		CreatedAt: createdAt,
	})

	return eventID, nil
}

// GetAfter returns the run's events with id > afterID, ordered by id.
// With includeTokens false, supervisor_token events are filtered out.
func (s *Store) GetAfter(ctx context.Context, runID string, afterID int64, includeTokens bool) ([]Event, error) {
	query := `SELECT id, run_id, owner_id, event_type, payload, created_at FROM run_events WHERE run_id = ? AND id > ?`
	if !includeTokens {
		query += ` AND event_type <> '` + EventTypeSupervisorToken + `'`
	}
	query += ` ORDER BY id`

	rows, err := s.db.QueryContext(ctx, s.rebind(query), runID, afterID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events for run %s: %w", runID, err)
	}
	defer rows.Close()

	var out []Event
	for rows.Next() {
		evt, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, evt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate events for run %s: %w", runID, err)
	}
	return out, nil
}

// GetByID fetches a single event. Used by the NOTIFY listener to refetch
// truncated payloads.
func (s *Store) GetByID(ctx context.Context, id int64) (Event, error) {
	row := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT id, run_id, owner_id, event_type, payload, created_at FROM run_events WHERE id = ?`), id)
	evt, err := scanEvent(row)
	if err != nil {
		return Event{}, fmt.Errorf("failed to fetch event %d: %w", id, err)
	}
	return evt, nil
}

// LatestEventID returns the highest event id for the run, 0 if none.
func (s *Store) LatestEventID(ctx context.Context, runID string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COALESCE(MAX(id), 0) FROM run_events WHERE run_id = ?`), runID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to query latest event id for run %s: %w", runID, err)
	}
	return id, nil
}

// CountForRun returns the number of events recorded for a run.
func (s *Store) CountForRun(ctx context.Context, runID string) (int64, error) {
	var n int64
	err := s.db.QueryRowContext(ctx, s.rebind(
		`SELECT COUNT(*) FROM run_events WHERE run_id = ?`), runID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count events for run %s: %w", runID, err)
	}
	return n, nil
}

// DeleteForRun removes all events for a run (retention). Returns the
// number of rows deleted.
func (s *Store) DeleteForRun(ctx context.Context, runID string) (int64, error) {
	res, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM run_events WHERE run_id = ?`), runID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete events for run %s: %w", runID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read delete count for run %s: %w", runID, err)
	}
	return n, nil
}

// rebind rewrites ? placeholders to $N for the Postgres driver.
// SQLite takes ? as-is.
func (s *Store) rebind(query string) string {
	if !s.isPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for i := 0; i < len(query); i++ {
		if query[i] == '?' {
			n++
			b.WriteString("$")
			b.WriteString(strconv.Itoa(n))
		} else {
			b.WriteByte(query[i])
		}
	}
	return b.String()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (Event, error) {
	var evt Event
	var payloadJSON []byte
	if err := row.Scan(&evt.ID, &evt.RunID, &evt.OwnerID, &evt.Type, &payloadJSON, &evt.CreatedAt); err != nil {
		return Event{}, err
	}
	if err := json.Unmarshal(payloadJSON, &evt.Payload); err != nil {
		slog.Warn("Stored event payload failed to decode", "event_id", evt.ID, "error", err)
		evt.Payload = map[string]any{}
	}
	return evt, nil
}

// buildNotifyPayload wraps the event for NOTIFY delivery. Oversized
// payloads collapse to a routing-only envelope with truncated=true.
func buildNotifyPayload(eventID int64, runID, eventType string, payloadJSON []byte) (string, error) {
	full, err := json.Marshal(map[string]any{
		"event_id":   eventID,
		"run_id":     runID,
		"event_type": eventType,
		"payload":    json.RawMessage(payloadJSON),
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal NOTIFY payload: %w", err)
	}
	if len(full) <= notifyLimitBytes {
		return string(full), nil
	}

	truncated, err := json.Marshal(map[string]any{
		"event_id":   eventID,
		"run_id":     runID,
		"event_type": eventType,
		"truncated":  true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated NOTIFY payload: %w", err)
	}
	return string(truncated), nil
}
