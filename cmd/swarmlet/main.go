// Swarmlet orchestrator server — runs the HTTP API, the supervisor
// engine, the runner WebSocket hub, and the scheduled job queue.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/swarmlet/swarmlet/pkg/api"
	"github.com/swarmlet/swarmlet/pkg/cleanup"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/database"
	"github.com/swarmlet/swarmlet/pkg/dispatcher"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/llm"
	"github.com/swarmlet/swarmlet/pkg/masking"
	"github.com/swarmlet/swarmlet/pkg/queue"
	"github.com/swarmlet/swarmlet/pkg/services"
	"github.com/swarmlet/swarmlet/pkg/stream"
	"github.com/swarmlet/swarmlet/pkg/supervisor"
	"github.com/swarmlet/swarmlet/pkg/transport"
	"github.com/swarmlet/swarmlet/pkg/version"
)

func main() {
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting swarmlet", "version", version.Full(), "port", cfg.Server.Port)

	ctx := context.Background()

	// Database.
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to database", "dialect", dbClient.Dialect())

	// Domain services.
	runService := services.NewRunService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	workerService := services.NewWorkerService(dbClient.Client)
	runnerService := services.NewRunnerService(dbClient.Client)
	tokenService := services.NewTokenService(dbClient.Client)

	// Startup recovery: no runner connection survived the restart.
	if n, err := runnerService.MarkAllOffline(ctx); err != nil {
		slog.Error("Failed to reset runner statuses", "error", err)
	} else if n > 0 {
		slog.Info("Reset stale runner statuses", "count", n)
	}

	// Event log and live fanout. On Postgres a LISTEN connection carries
	// other replicas' events into the local broker.
	broker := events.NewBroker()
	eventStore := events.NewStore(dbClient.DB(), dbClient.IsPostgres(), broker)
	var notifyListener *events.NotifyListener
	if dbClient.IsPostgres() {
		notifyListener = events.NewNotifyListener(dbConfig.DSN(), broker, eventStore)
		if err := notifyListener.Start(ctx); err != nil {
			slog.Error("Failed to start notify listener", "error", err)
			os.Exit(1)
		}
		broker.SetListener(notifyListener)
	}

	// LLM gateway. grpc dials lazily; the first Generate connects.
	llmClient, err := llm.NewGRPCClient(cfg.Supervisor.LLMAddr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.Supervisor.LLMAddr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()

	// Runner transport and worker dispatch.
	hub := transport.NewHub(runnerService, transport.Config{
		HelloTimeout:  cfg.Transport.HelloTimeout,
		DispatchGrace: cfg.Transport.DispatchGrace,
		WriteTimeout:  cfg.Transport.WriteTimeout,
	})
	summarizer := dispatcher.NewSummarizer(llmClient, cfg.Supervisor.SummaryThresholdBytes, cfg.Supervisor.SummaryMaxChars)
	disp := dispatcher.New(runService, workerService, runnerService, hub, eventStore, summarizer, masking.NewService())

	// Supervisor engine. The dispatcher calls back into the engine when a
	// worker finishes, so the resumer is wired after construction.
	engine := supervisor.NewEngine(
		cfg.Supervisor,
		runService,
		threadService,
		workerService,
		llmClient,
		eventStore,
		disp,
		supervisor.NewListRunnersTool(runnerService),
		&supervisor.CurrentTimeTool{},
	)
	disp.SetResumer(engine)

	// Scheduled maintenance over the durable queue.
	queueStore := queue.NewStore(dbClient.DB(), dbClient.IsPostgres())
	pool := queue.NewPool(queueStore, cfg.Queue)
	retention := cleanup.NewService(cfg.Retention, dbClient.Client, eventStore)
	mustRegister(pool, "stale-run-sweep", "*/10 * * * *", func(ctx context.Context, _ *queue.Item) error {
		_, err := retention.FailStaleRuns(ctx)
		return err
	})
	mustRegister(pool, "event-retention", "30 3 * * *", func(ctx context.Context, _ *queue.Item) error {
		_, err := retention.PurgeOldRunEvents(ctx)
		return err
	})
	if err := pool.Start(ctx); err != nil {
		slog.Error("Failed to start queue pool", "error", err)
		os.Exit(1)
	}

	// HTTP surface.
	assembler := stream.NewAssembler(eventStore, broker, stream.Config{
		QueueSize:      cfg.Stream.SubscriberQueueSize,
		KeepOpenMaxTTL: cfg.Stream.KeepOpenMaxTTL,
	})
	server := api.NewServer(cfg, api.Deps{
		DB:      dbClient,
		Runs:    runService,
		Jobs:    workerService,
		Runners: runnerService,
		Tokens:  tokenService,
		Engine:  engine,
		Streams: assembler,
		Hub:     hub,
		Queue:   queueStore,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Swarmlet started")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Staged shutdown: stop accepting requests, let supervisor loops park
	// their runs, drain queue tasks, then drop runner connections.
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	engine.Close()
	pool.Stop()
	hub.Close()
	if notifyListener != nil {
		notifyListener.Stop(ctx)
	}

	slog.Info("Shutdown complete")
}

func mustRegister(pool *queue.Pool, jobID, spec string, handler queue.Handler) {
	if err := pool.Register(jobID, spec, handler); err != nil {
		slog.Error("Failed to register scheduled job", "job_id", jobID, "error", err)
		os.Exit(1)
	}
}
