package database

import (
	"context"
	"database/sql"
	"time"
)

// HealthStatus describes database connectivity for the health endpoint.
type HealthStatus struct {
	Reachable bool          `json:"reachable"`
	Latency   time.Duration `json:"latency_ms"`
	OpenConns int           `json:"open_conns"`
	Error     string        `json:"error,omitempty"`
}

// Health pings the database and reports connectivity and pool stats.
func Health(ctx context.Context, db *sql.DB) (HealthStatus, error) {
	start := time.Now()
	err := db.PingContext(ctx)
	status := HealthStatus{
		Reachable: err == nil,
		Latency:   time.Since(start),
		OpenConns: db.Stats().OpenConnections,
	}
	if err != nil {
		status.Error = err.Error()
		return status, err
	}
	return status, nil
}
