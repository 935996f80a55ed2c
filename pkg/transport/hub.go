package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// Dispatch failure modes callers branch on.
var (
	// ErrRunnerOffline means no live connection exists for the runner.
	ErrRunnerOffline = errors.New("runner offline")
	// ErrRunnerBusy means the runner already has a job in flight.
	ErrRunnerBusy = errors.New("runner is busy")
	// ErrConnectionLost means the connection dropped while a job was pending.
	ErrConnectionLost = errors.New("connection lost")
	// ErrDispatchTimeout means the runner did not answer within timeout+grace.
	ErrDispatchTimeout = errors.New("timed out")
)

// RunnerInfo is what the directory reports after a successful hello.
type RunnerInfo struct {
	RunnerID     string
	OwnerID      string
	Capabilities []string
}

// RunnerDirectory is the persistence side of the hub: secret
// verification and status bookkeeping. Implemented by the runner service.
type RunnerDirectory interface {
	// VerifySecret authenticates a hello. It must reject revoked runners
	// and compare the secret in constant time against the stored hash.
	VerifySecret(ctx context.Context, runnerID, secret string) (RunnerInfo, error)
	MarkOnline(ctx context.Context, runnerID string, metadata map[string]any) error
	MarkOffline(ctx context.Context, runnerID string) error
	TouchHeartbeat(ctx context.Context, runnerID string) error
}

// Config tunes the hub's deadlines.
type Config struct {
	// HelloTimeout bounds how long a fresh connection may stall before
	// sending its hello frame.
	HelloTimeout time.Duration
	// DispatchGrace is added to a job's own timeout for the server-side
	// dispatch timer.
	DispatchGrace time.Duration
	// WriteTimeout bounds every frame write.
	WriteTimeout time.Duration
}

func (c *Config) applyDefaults() {
	if c.HelloTimeout <= 0 {
		c.HelloTimeout = 10 * time.Second
	}
	if c.DispatchGrace <= 0 {
		c.DispatchGrace = 5 * time.Second
	}
	if c.WriteTimeout <= 0 {
		c.WriteTimeout = 10 * time.Second
	}
}

type runnerKey struct {
	ownerID  string
	runnerID string
}

type dispatchOutcome struct {
	result JobResult
	err    error
}

// runnerConn is one live runner connection with its pending job waiters.
type runnerConn struct {
	key  runnerKey
	conn *websocket.Conn
	info RunnerInfo

	mu        sync.Mutex
	waiters   map[string]chan dispatchOutcome // job_id → single-shot waiter
	activeJob string
	closed    bool
}

// failAllWaiters completes every pending waiter with err and clears them.
func (rc *runnerConn) failAllWaiters(err error) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	for jobID, ch := range rc.waiters {
		ch <- dispatchOutcome{err: err}
		delete(rc.waiters, jobID)
	}
	rc.activeJob = ""
	rc.closed = true
}

// complete resolves the waiter for jobID, if one is pending.
func (rc *runnerConn) complete(jobID string, out dispatchOutcome) bool {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	ch, ok := rc.waiters[jobID]
	if !ok {
		return false
	}
	delete(rc.waiters, jobID)
	if rc.activeJob == jobID {
		rc.activeJob = ""
	}
	ch <- out
	return true
}

// Hub tracks live runner connections keyed by (owner_id, runner_id) and
// dispatches jobs over them. One job in flight per runner.
type Hub struct {
	directory RunnerDirectory
	cfg       Config

	mu    sync.RWMutex
	conns map[runnerKey]*runnerConn
}

// NewHub creates a Hub over the given directory.
func NewHub(directory RunnerDirectory, cfg Config) *Hub {
	cfg.applyDefaults()
	return &Hub{
		directory: directory,
		cfg:       cfg,
		conns:     make(map[runnerKey]*runnerConn),
	}
}

// HandleConnection drives one runner connection after the WebSocket
// upgrade. Blocks until the connection closes. The first frame must be a
// valid hello within the hello deadline; everything else closes the
// socket before any registration happens.
func (h *Hub) HandleConnection(ctx context.Context, conn *websocket.Conn) {
	helloCtx, cancel := context.WithTimeout(ctx, h.cfg.HelloTimeout)
	frame, err := readFrame(helloCtx, conn)
	cancel()
	if err != nil {
		_ = conn.Close(websocket.StatusPolicyViolation, "hello expected")
		return
	}
	if frame.Type != FrameHello || frame.RunnerID == "" {
		_ = conn.Close(websocket.StatusPolicyViolation, "hello expected")
		return
	}

	info, err := h.directory.VerifySecret(ctx, frame.RunnerID, frame.Secret)
	if err != nil {
		slog.Warn("Runner hello rejected", "runner_id", frame.RunnerID, "error", err)
		_ = h.writeFrame(ctx, conn, Frame{Type: FrameJobError, Message: "authentication failed"})
		_ = conn.Close(websocket.StatusPolicyViolation, "authentication failed")
		return
	}

	if err := h.directory.MarkOnline(ctx, info.RunnerID, frame.Metadata); err != nil {
		slog.Error("Failed to mark runner online", "runner_id", info.RunnerID, "error", err)
		_ = conn.Close(websocket.StatusInternalError, "registration failed")
		return
	}

	rc := &runnerConn{
		key:     runnerKey{ownerID: info.OwnerID, runnerID: info.RunnerID},
		conn:    conn,
		info:    info,
		waiters: make(map[string]chan dispatchOutcome),
	}
	h.register(rc)
	defer h.teardown(rc)

	if err := h.writeFrame(ctx, conn, Frame{Type: FrameHelloAck, RunnerID: info.RunnerID}); err != nil {
		return
	}
	slog.Info("Runner connected", "runner_id", info.RunnerID, "owner_id", info.OwnerID)

	for {
		frame, err := readFrame(ctx, conn)
		if err != nil {
			return // closed or broken
		}
		switch frame.Type {
		case FrameHeartbeat:
			if err := h.directory.TouchHeartbeat(ctx, info.RunnerID); err != nil {
				slog.Warn("Heartbeat update failed", "runner_id", info.RunnerID, "error", err)
			}
		case FrameJobResult:
			exitCode := 0
			if frame.ExitCode != nil {
				exitCode = *frame.ExitCode
			}
			completed := rc.complete(frame.JobID, dispatchOutcome{result: JobResult{
				JobID:      frame.JobID,
				ExitCode:   exitCode,
				Stdout:     frame.Stdout,
				Stderr:     frame.Stderr,
				DurationMS: frame.DurationMS,
			}})
			if !completed {
				slog.Warn("Result for unknown job", "runner_id", info.RunnerID, "job_id", frame.JobID)
			}
		case FrameJobError:
			rc.complete(frame.JobID, dispatchOutcome{err: fmt.Errorf("runner reported error: %s", frame.Message)})
		default:
			slog.Warn("Unknown frame from runner", "runner_id", info.RunnerID, "frame_type", frame.Type)
		}
	}
}

// Dispatch pushes a job to a connected runner and waits for its terminal
// answer. Fails fast with ErrRunnerOffline or ErrRunnerBusy; a runner
// that accepts but never answers fails with ErrDispatchTimeout after the
// job's own timeout plus the configured grace.
func (h *Hub) Dispatch(ctx context.Context, ownerID, runnerID string, job JobRequest) (JobResult, error) {
	h.mu.RLock()
	rc := h.conns[runnerKey{ownerID: ownerID, runnerID: runnerID}]
	h.mu.RUnlock()
	if rc == nil {
		return JobResult{}, ErrRunnerOffline
	}

	waiter := make(chan dispatchOutcome, 1)
	rc.mu.Lock()
	if rc.closed {
		rc.mu.Unlock()
		return JobResult{}, ErrRunnerOffline
	}
	if rc.activeJob != "" {
		rc.mu.Unlock()
		return JobResult{}, ErrRunnerBusy
	}
	rc.activeJob = job.JobID
	rc.waiters[job.JobID] = waiter
	rc.mu.Unlock()

	if err := h.writeFrame(ctx, rc.conn, Frame{
		Type:        FrameJobRequest,
		JobID:       job.JobID,
		Command:     job.Command,
		TimeoutSecs: job.TimeoutSecs,
	}); err != nil {
		rc.complete(job.JobID, dispatchOutcome{})
		return JobResult{}, fmt.Errorf("failed to send job request: %w", err)
	}

	timeout := time.Duration(job.TimeoutSecs)*time.Second + h.cfg.DispatchGrace
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case out := <-waiter:
		return out.result, out.err
	case <-timer.C:
		rc.complete(job.JobID, dispatchOutcome{})
		return JobResult{}, ErrDispatchTimeout
	case <-ctx.Done():
		rc.complete(job.JobID, dispatchOutcome{})
		return JobResult{}, ctx.Err()
	}
}

// IsOnline reports whether a runner currently has a live connection.
func (h *Hub) IsOnline(ownerID, runnerID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.conns[runnerKey{ownerID: ownerID, runnerID: runnerID}]
	return ok
}

// ConnectedCount returns the number of live runner connections.
func (h *Hub) ConnectedCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Close disconnects every runner. Used during shutdown.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := make([]*runnerConn, 0, len(h.conns))
	for _, rc := range h.conns {
		conns = append(conns, rc)
	}
	h.conns = make(map[runnerKey]*runnerConn)
	h.mu.Unlock()

	for _, rc := range conns {
		rc.failAllWaiters(ErrConnectionLost)
		_ = rc.conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

// register installs the connection, displacing an older one for the same
// (owner_id, runner_id). Runner restarts must reconnect cleanly.
func (h *Hub) register(rc *runnerConn) {
	h.mu.Lock()
	old := h.conns[rc.key]
	h.conns[rc.key] = rc
	h.mu.Unlock()

	if old != nil {
		slog.Info("Displacing previous runner connection", "runner_id", rc.key.runnerID)
		old.failAllWaiters(ErrConnectionLost)
		_ = old.conn.Close(websocket.StatusPolicyViolation, "displaced by new connection")
	}
}

// teardown runs when a connection's read loop exits. A displaced
// connection must not unregister its successor or flip the runner
// offline, so the map entry is only removed when it still points here.
func (h *Hub) teardown(rc *runnerConn) {
	h.mu.Lock()
	current := h.conns[rc.key] == rc
	if current {
		delete(h.conns, rc.key)
	}
	h.mu.Unlock()

	rc.failAllWaiters(ErrConnectionLost)
	_ = rc.conn.Close(websocket.StatusNormalClosure, "")

	if current {
		// The parent ctx is gone when the client disconnected; the status
		// flip still has to land.
		offCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.directory.MarkOffline(offCtx, rc.key.runnerID); err != nil {
			slog.Warn("Failed to mark runner offline", "runner_id", rc.key.runnerID, "error", err)
		}
		slog.Info("Runner disconnected", "runner_id", rc.key.runnerID)
	}
}

func (h *Hub) writeFrame(ctx context.Context, conn *websocket.Conn, frame Frame) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return fmt.Errorf("failed to marshal %s frame: %w", frame.Type, err)
	}
	writeCtx, cancel := context.WithTimeout(ctx, h.cfg.WriteTimeout)
	defer cancel()
	return conn.Write(writeCtx, websocket.MessageText, data)
}

func readFrame(ctx context.Context, conn *websocket.Conn) (Frame, error) {
	var frame Frame
	_, data, err := conn.Read(ctx)
	if err != nil {
		return frame, err
	}
	if err := json.Unmarshal(data, &frame); err != nil {
		return frame, fmt.Errorf("undecodable frame: %w", err)
	}
	return frame, nil
}
