// Package api is the HTTP surface of the orchestrator: run submission
// and inspection, the SSE event stream, device token and runner
// management, and the runner WebSocket endpoint.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/database"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/stream"
)

// RunService is the run lifecycle surface the handlers need.
type RunService interface {
	CreateRun(ctx context.Context, ownerID, threadID, task string) (*ent.Run, error)
	GetRun(ctx context.Context, ownerID, runID string) (*ent.Run, error)
	ListRuns(ctx context.Context, ownerID string, limit int) ([]*ent.Run, error)
	Cancel(ctx context.Context, ownerID, runID string) error
}

// WorkerJobService exposes worker job records for inspection.
type WorkerJobService interface {
	GetJob(ctx context.Context, ownerID, jobID string) (*ent.WorkerJob, error)
	ListForRun(ctx context.Context, runID string) ([]*ent.WorkerJob, error)
}

// RunnerService is the runner registration and admin surface.
type RunnerService interface {
	CreateEnrollToken(ownerID string) (string, time.Time)
	Register(ctx context.Context, enrollToken, name string, capabilities []string) (*ent.Runner, string, error)
	GetRunner(ctx context.Context, ownerID, runnerID string) (*ent.Runner, error)
	ListRunners(ctx context.Context, ownerID string) ([]*ent.Runner, error)
	UpdateCapabilities(ctx context.Context, ownerID, runnerID string, capabilities []string) (*ent.Runner, error)
	Revoke(ctx context.Context, ownerID, runnerID string) error
}

// TokenService is the device token surface: issuing and revoking tokens
// plus validating them during request auth.
type TokenService interface {
	Create(ctx context.Context, ownerID, deviceID string) (*ent.DeviceToken, string, error)
	List(ctx context.Context, ownerID string) ([]*ent.DeviceToken, error)
	Revoke(ctx context.Context, ownerID, tokenID string) error
	Validate(ctx context.Context, plaintext string) (*ent.DeviceToken, error)
}

// RunStarter kicks off the supervisor loop for a freshly created run.
type RunStarter interface {
	StartRun(ctx context.Context, r *ent.Run) error
}

// Streamer assembles a run's event stream for SSE delivery.
type Streamer interface {
	Stream(ctx context.Context, runID string, opts stream.Options, emit func(events.Event) error) error
}

// RunnerHub is the live runner connection registry.
type RunnerHub interface {
	HandleConnection(ctx context.Context, conn *websocket.Conn)
	ConnectedCount() int
}

// QueueInfo reports job queue depth for the health endpoint.
type QueueInfo interface {
	Depth(ctx context.Context) (int, error)
}

// Deps bundles everything the server serves.
type Deps struct {
	DB      *database.Client
	Runs    RunService
	Jobs    WorkerJobService
	Runners RunnerService
	Tokens  TokenService
	Engine  RunStarter
	Streams Streamer
	Hub     RunnerHub
	Queue   QueueInfo
}

// Server is the HTTP API server.
type Server struct {
	echo       *echo.Echo
	httpServer *http.Server

	cfg       config.ServerConfig
	heartbeat time.Duration

	dbClient *database.Client
	runs     RunService
	jobs     WorkerJobService
	runners  RunnerService
	tokens   TokenService
	engine   RunStarter
	streams  Streamer
	hub      RunnerHub
	queue    QueueInfo
}

// NewServer creates the server and registers all routes.
func NewServer(cfg *config.Config, deps Deps) *Server {
	s := &Server{
		echo:      echo.New(),
		cfg:       cfg.Server,
		heartbeat: cfg.Stream.HeartbeatInterval,
		dbClient:  deps.DB,
		runs:      deps.Runs,
		jobs:      deps.Jobs,
		runners:   deps.Runners,
		tokens:    deps.Tokens,
		engine:    deps.Engine,
		streams:   deps.Streams,
		hub:       deps.Hub,
		queue:     deps.Queue,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	e := s.echo
	e.Use(securityHeaders())

	e.GET("/health", s.healthHandler)

	// Runner endpoints that authenticate on their own terms: registration
	// redeems a one-time enroll token, the WebSocket authenticates via its
	// hello frame.
	e.POST("/api/runners/register", s.registerRunnerHandler)
	e.GET("/api/runners/ws", s.runnerWSHandler)

	api := e.Group("/api", s.authenticate())
	api.POST("/runs", s.createRunHandler)
	api.GET("/runs", s.listRunsHandler)
	api.GET("/runs/:id", s.getRunHandler)
	api.POST("/runs/:id/cancel", s.cancelRunHandler)
	api.GET("/runs/:id/events", s.streamRunHandler)
	api.GET("/runs/:id/jobs", s.listRunJobsHandler)
	api.GET("/jobs/:id", s.getJobHandler)

	// Paths the web client was built against, kept as aliases of the
	// canonical routes above.
	api.POST("/run", s.createRunHandler)
	api.POST("/run/:id/cancel", s.cancelRunHandler)
	api.GET("/stream/runs/:id", s.streamRunHandler)

	api.POST("/devices/tokens", s.createTokenHandler)
	api.GET("/devices/tokens", s.listTokensHandler)
	api.DELETE("/devices/tokens/:id", s.revokeTokenHandler)

	api.POST("/runners/enroll-token", s.createEnrollTokenHandler)
	api.GET("/runners", s.listRunnersHandler)
	api.GET("/runners/:id", s.getRunnerHandler)
	api.PUT("/runners/:id/capabilities", s.updateRunnerCapabilitiesHandler)
	api.DELETE("/runners/:id", s.revokeRunnerHandler)
}

// Start begins serving. Blocks until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.echo,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("API server listening", "addr", addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}
