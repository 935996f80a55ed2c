package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDirectory struct {
	mu         sync.Mutex
	runners    map[string]RunnerInfo // runner_id → info
	secrets    map[string]string
	revoked    map[string]bool
	online     map[string]bool
	heartbeats map[string]int
}

func newFakeDirectory() *fakeDirectory {
	d := &fakeDirectory{
		runners:    make(map[string]RunnerInfo),
		secrets:    make(map[string]string),
		revoked:    make(map[string]bool),
		online:     make(map[string]bool),
		heartbeats: make(map[string]int),
	}
	d.runners["r-1"] = RunnerInfo{RunnerID: "r-1", OwnerID: "alice", Capabilities: []string{"exec.readonly"}}
	d.secrets["r-1"] = "sekrit"
	return d
}

func (d *fakeDirectory) VerifySecret(_ context.Context, runnerID, secret string) (RunnerInfo, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	info, ok := d.runners[runnerID]
	if !ok || d.revoked[runnerID] || d.secrets[runnerID] != secret {
		return RunnerInfo{}, errors.New("invalid runner credentials")
	}
	return info, nil
}

func (d *fakeDirectory) MarkOnline(_ context.Context, runnerID string, _ map[string]any) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.online[runnerID] = true
	return nil
}

func (d *fakeDirectory) MarkOffline(_ context.Context, runnerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.online[runnerID] = false
	return nil
}

func (d *fakeDirectory) TouchHeartbeat(_ context.Context, runnerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.heartbeats[runnerID]++
	return nil
}

func (d *fakeDirectory) isOnline(runnerID string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.online[runnerID]
}

func (d *fakeDirectory) heartbeatCount(runnerID string) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.heartbeats[runnerID]
}

func newTestHub(t *testing.T, cfg Config) (*Hub, *fakeDirectory, string) {
	t.Helper()
	dir := newFakeDirectory()
	hub := NewHub(dir, cfg)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			return
		}
		hub.HandleConnection(r.Context(), conn)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(hub.Close)
	return hub, dir, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func sendFrame(t *testing.T, conn *websocket.Conn, frame Frame) {
	t.Helper()
	data, err := json.Marshal(frame)
	require.NoError(t, err)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, conn.Write(ctx, websocket.MessageText, data))
}

func readClientFrame(t *testing.T, conn *websocket.Conn) (Frame, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	if err != nil {
		return Frame{}, err
	}
	var frame Frame
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame, nil
}

// connectRunner dials, completes the hello handshake, and returns the
// client side of the connection.
func connectRunner(t *testing.T, url, runnerID, secret string) *websocket.Conn {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	sendFrame(t, conn, Frame{Type: FrameHello, RunnerID: runnerID, Secret: secret})
	ack, err := readClientFrame(t, conn)
	require.NoError(t, err)
	require.Equal(t, FrameHelloAck, ack.Type)
	return conn
}

func TestHelloRegistersRunner(t *testing.T) {
	hub, dir, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	assert.True(t, hub.IsOnline("alice", "r-1"))
	assert.True(t, dir.isOnline("r-1"))
	assert.Equal(t, 1, hub.ConnectedCount())
}

func TestHelloBadSecretRejected(t *testing.T) {
	hub, _, url := newTestHub(t, Config{})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	sendFrame(t, conn, Frame{Type: FrameHello, RunnerID: "r-1", Secret: "wrong"})

	// The server may send a rejection frame before closing; either way
	// the connection must die without registering.
	for {
		if _, err := readClientFrame(t, conn); err != nil {
			break
		}
	}
	assert.False(t, hub.IsOnline("alice", "r-1"))
}

func TestHelloDeadline(t *testing.T) {
	hub, _, url := newTestHub(t, Config{HelloTimeout: 100 * time.Millisecond})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	conn, _, err := websocket.Dial(ctx, url, nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	// Send nothing: the server must hang up on its own.
	_, err = readClientFrame(t, conn)
	assert.Error(t, err)
	assert.Zero(t, hub.ConnectedCount())
}

func TestHeartbeatRefreshesLastSeen(t *testing.T) {
	_, dir, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	sendFrame(t, conn, Frame{Type: FrameHeartbeat})
	sendFrame(t, conn, Frame{Type: FrameHeartbeat})

	require.Eventually(t, func() bool { return dir.heartbeatCount("r-1") >= 2 },
		2*time.Second, 10*time.Millisecond)
}

func TestDispatchRoundtrip(t *testing.T) {
	hub, _, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	go func() {
		req, err := readClientFrame(t, conn)
		if err != nil {
			return
		}
		exit := 0
		sendFrame(t, conn, Frame{
			Type:       FrameJobResult,
			JobID:      req.JobID,
			ExitCode:   &exit,
			Stdout:     "Filesystem ok",
			DurationMS: 42,
		})
	}()

	res, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-1", Command: "df -h", TimeoutSecs: 5})
	require.NoError(t, err)
	assert.Equal(t, "j-1", res.JobID)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "Filesystem ok", res.Stdout)
}

func TestDispatchRunnerError(t *testing.T) {
	hub, _, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	go func() {
		req, err := readClientFrame(t, conn)
		if err != nil {
			return
		}
		sendFrame(t, conn, Frame{Type: FrameJobError, JobID: req.JobID, Message: "command not found"})
	}()

	_, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-1", Command: "nope", TimeoutSecs: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "command not found")
}

func TestDispatchOfflineRunner(t *testing.T) {
	hub, _, _ := newTestHub(t, Config{})
	_, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-1", Command: "uptime", TimeoutSecs: 5})
	assert.ErrorIs(t, err, ErrRunnerOffline)
}

func TestDispatchTimesOut(t *testing.T) {
	hub, _, url := newTestHub(t, Config{DispatchGrace: 100 * time.Millisecond})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	// The runner reads the request but never answers.
	go func() { _, _ = readClientFrame(t, conn) }()

	_, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-1", Command: "uptime", TimeoutSecs: 0})
	assert.ErrorIs(t, err, ErrDispatchTimeout)
}

func TestDispatchRejectsBusyRunner(t *testing.T) {
	hub, _, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")
	defer conn.Close(websocket.StatusNormalClosure, "")

	received := make(chan Frame, 1)
	release := make(chan struct{})
	go func() {
		req, err := readClientFrame(t, conn)
		if err != nil {
			return
		}
		received <- req
		<-release
		exit := 0
		sendFrame(t, conn, Frame{Type: FrameJobResult, JobID: req.JobID, ExitCode: &exit})
	}()

	firstDone := make(chan error, 1)
	go func() {
		_, err := hub.Dispatch(context.Background(), "alice", "r-1",
			JobRequest{JobID: "j-1", Command: "uptime", TimeoutSecs: 5})
		firstDone <- err
	}()

	select {
	case <-received:
	case <-time.After(2 * time.Second):
		t.Fatal("runner never received the job request")
	}

	_, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-2", Command: "date", TimeoutSecs: 5})
	assert.ErrorIs(t, err, ErrRunnerBusy)

	close(release)
	require.NoError(t, <-firstDone)
}

func TestDisplacementClosesOldConnection(t *testing.T) {
	hub, _, url := newTestHub(t, Config{})

	first := connectRunner(t, url, "r-1", "sekrit")
	defer first.Close(websocket.StatusNormalClosure, "")
	second := connectRunner(t, url, "r-1", "sekrit")
	defer second.Close(websocket.StatusNormalClosure, "")

	// The first connection is closed by the server.
	_, err := readClientFrame(t, first)
	assert.Error(t, err)

	assert.True(t, hub.IsOnline("alice", "r-1"))
	require.Eventually(t, func() bool { return hub.ConnectedCount() == 1 },
		2*time.Second, 10*time.Millisecond)
}

func TestConnectionLossFailsPendingDispatch(t *testing.T) {
	hub, dir, url := newTestHub(t, Config{})
	conn := connectRunner(t, url, "r-1", "sekrit")

	go func() {
		// Read the request, then drop the connection mid-job.
		_, _ = readClientFrame(t, conn)
		conn.Close(websocket.StatusAbnormalClosure, "crash")
	}()

	_, err := hub.Dispatch(context.Background(), "alice", "r-1",
		JobRequest{JobID: "j-1", Command: "uptime", TimeoutSecs: 30})
	assert.ErrorIs(t, err, ErrConnectionLost)

	require.Eventually(t, func() bool { return !dir.isOnline("r-1") },
		2*time.Second, 10*time.Millisecond)
}
