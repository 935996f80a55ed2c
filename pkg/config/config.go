// Package config loads and validates orchestrator configuration from the
// environment. All knobs have defaults suitable for single-node development;
// validation failures are collected and reported together so operators fix
// them in one pass.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the root configuration for the orchestrator process.
type Config struct {
	Server     ServerConfig
	Supervisor SupervisorConfig
	Transport  TransportConfig
	Stream     StreamConfig
	Queue      QueueConfig
	Retention  RetentionConfig
}

// ServerConfig holds HTTP surface settings.
type ServerConfig struct {
	Host string
	Port int

	// APITokens maps bearer token → owner id. Static service tokens for
	// user-facing endpoints; device tokens are validated against the DB.
	APITokens map[string]string
}

// SupervisorConfig holds supervisor engine settings.
type SupervisorConfig struct {
	// LLMAddr is the gRPC address of the LLM gateway.
	LLMAddr string

	// MaxSteps is the loop ceiling; overflow fails the run with
	// reason "step_limit".
	MaxSteps int

	// StepTimeout bounds a single LLM call.
	StepTimeout time.Duration

	// SummaryThresholdBytes is the worker result size above which a
	// short summary is generated for the thread.
	SummaryThresholdBytes int

	// SummaryMaxChars bounds the generated summary.
	SummaryMaxChars int

	// EvidenceBudgetBytes bounds ephemeral evidence expansion per LLM call.
	EvidenceBudgetBytes int
}

// TransportConfig holds runner transport settings.
type TransportConfig struct {
	// HelloTimeout is how long a fresh connection may take to send hello.
	HelloTimeout time.Duration

	// DispatchGrace is added to a job's own timeout before the server-side
	// waiter gives up.
	DispatchGrace time.Duration

	// WriteTimeout bounds a single frame write to a runner.
	WriteTimeout time.Duration
}

// StreamConfig holds stream assembler settings.
type StreamConfig struct {
	// SubscriberQueueSize bounds the per-subscriber live queue.
	SubscriberQueueSize int

	// KeepOpenMaxTTL caps client-requested keep-open leases.
	KeepOpenMaxTTL time.Duration

	// HeartbeatInterval is the idle SSE heartbeat period.
	HeartbeatInterval time.Duration
}

// QueueConfig holds job queue settings.
type QueueConfig struct {
	// Workers is the number of claim loops per replica.
	Workers int

	// PollInterval is the base claim polling interval.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	PollIntervalJitter time.Duration

	// LeaseDuration is how long a claim holds without heartbeats.
	// Heartbeats fire every LeaseDuration/2.
	LeaseDuration time.Duration

	// SweepInterval is how often the sweeper reclaims expired leases.
	SweepInterval time.Duration

	// MaxAttempts before an item is dead-lettered.
	MaxAttempts int

	// BackfillWindow bounds how far back startup backfill looks for
	// missed cron fires.
	BackfillWindow time.Duration

	// GracefulShutdownTimeout is the max wait for in-flight tasks on stop.
	GracefulShutdownTimeout time.Duration
}

// RetentionConfig holds data retention settings.
type RetentionConfig struct {
	// RunMaxLifetime is how long a run may stay non-terminal before the
	// maintenance sweep fails it.
	RunMaxLifetime time.Duration

	// EventTTL is how long a finished run's events are kept.
	EventTTL time.Duration
}

// Load reads configuration from the environment, applying defaults.
// It returns all validation problems at once.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:      getEnv("SWARMLET_HOST", "0.0.0.0"),
			Port:      getEnvInt("SWARMLET_PORT", 8080),
			APITokens: parseAPITokens(os.Getenv("SWARMLET_API_TOKENS")),
		},
		Supervisor: SupervisorConfig{
			LLMAddr:               getEnv("LLM_SERVICE_ADDR", "localhost:50051"),
			MaxSteps:              getEnvInt("SUPERVISOR_MAX_STEPS", 30),
			StepTimeout:           getEnvDuration("SUPERVISOR_STEP_TIMEOUT", 2*time.Minute),
			SummaryThresholdBytes: getEnvInt("WORKER_SUMMARY_THRESHOLD_BYTES", 2000),
			SummaryMaxChars:       getEnvInt("WORKER_SUMMARY_MAX_CHARS", 150),
			EvidenceBudgetBytes:   getEnvInt("EVIDENCE_BUDGET_BYTES", 32000),
		},
		Transport: TransportConfig{
			HelloTimeout:  getEnvDuration("RUNNER_HELLO_TIMEOUT", 10*time.Second),
			DispatchGrace: getEnvDuration("RUNNER_DISPATCH_GRACE", 5*time.Second),
			WriteTimeout:  getEnvDuration("RUNNER_WRITE_TIMEOUT", 10*time.Second),
		},
		Stream: StreamConfig{
			SubscriberQueueSize: getEnvInt("STREAM_QUEUE_SIZE", 1000),
			KeepOpenMaxTTL:      getEnvDuration("STREAM_KEEP_OPEN_MAX_TTL", 300*time.Second),
			HeartbeatInterval:   getEnvDuration("STREAM_HEARTBEAT_INTERVAL", 30*time.Second),
		},
		Queue: QueueConfig{
			Workers:                 getEnvInt("QUEUE_WORKERS", 2),
			PollInterval:            getEnvDuration("QUEUE_POLL_INTERVAL", 5*time.Second),
			PollIntervalJitter:      getEnvDuration("QUEUE_POLL_JITTER", 1*time.Second),
			LeaseDuration:           getEnvDuration("QUEUE_LEASE_DURATION", 15*time.Minute),
			SweepInterval:           getEnvDuration("QUEUE_SWEEP_INTERVAL", 1*time.Minute),
			MaxAttempts:             getEnvInt("QUEUE_MAX_ATTEMPTS", 3),
			BackfillWindow:          getEnvDuration("QUEUE_BACKFILL_WINDOW", 24*time.Hour),
			GracefulShutdownTimeout: getEnvDuration("QUEUE_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Retention: RetentionConfig{
			RunMaxLifetime: getEnvDuration("RETENTION_RUN_MAX_LIFETIME", 24*time.Hour),
			EventTTL:       getEnvDuration("RETENTION_EVENT_TTL", 30*24*time.Hour),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var errs ValidationErrors
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs.Add("SWARMLET_PORT", "must be between 1 and 65535")
	}
	if c.Supervisor.MaxSteps <= 0 {
		errs.Add("SUPERVISOR_MAX_STEPS", "must be positive")
	}
	if c.Supervisor.SummaryMaxChars <= 0 {
		errs.Add("WORKER_SUMMARY_MAX_CHARS", "must be positive")
	}
	if c.Stream.SubscriberQueueSize <= 0 {
		errs.Add("STREAM_QUEUE_SIZE", "must be positive")
	}
	if c.Stream.KeepOpenMaxTTL > 300*time.Second {
		errs.Add("STREAM_KEEP_OPEN_MAX_TTL", "must not exceed 300s")
	}
	if c.Queue.Workers <= 0 {
		errs.Add("QUEUE_WORKERS", "must be positive")
	}
	if c.Queue.MaxAttempts <= 0 {
		errs.Add("QUEUE_MAX_ATTEMPTS", "must be positive")
	}
	if c.Queue.LeaseDuration < 10*time.Second {
		errs.Add("QUEUE_LEASE_DURATION", "must be at least 10s")
	}
	if c.Retention.RunMaxLifetime <= 0 {
		errs.Add("RETENTION_RUN_MAX_LIFETIME", "must be positive")
	}
	return errs.OrNil()
}

// parseAPITokens parses "token1:owner1,token2:owner2" into a lookup map.
// Malformed entries are skipped.
func parseAPITokens(raw string) map[string]string {
	tokens := make(map[string]string)
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		token, owner, ok := strings.Cut(pair, ":")
		if !ok || token == "" || owner == "" {
			continue
		}
		tokens[token] = owner
	}
	return tokens
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
