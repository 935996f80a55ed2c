package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30, cfg.Supervisor.MaxSteps)
	assert.Equal(t, 150, cfg.Supervisor.SummaryMaxChars)
	assert.Equal(t, 300*time.Second, cfg.Stream.KeepOpenMaxTTL)
	assert.Equal(t, 3, cfg.Queue.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Queue.LeaseDuration)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SUPERVISOR_MAX_STEPS", "5")
	t.Setenv("QUEUE_LEASE_DURATION", "30s")
	t.Setenv("SWARMLET_API_TOKENS", "tok-a:alice, tok-b:bob")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Supervisor.MaxSteps)
	assert.Equal(t, 30*time.Second, cfg.Queue.LeaseDuration)
	assert.Equal(t, map[string]string{"tok-a": "alice", "tok-b": "bob"}, cfg.Server.APITokens)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("SUPERVISOR_MAX_STEPS", "not-a-number")
	t.Setenv("QUEUE_POLL_INTERVAL", "soon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Supervisor.MaxSteps)
	assert.Equal(t, 5*time.Second, cfg.Queue.PollInterval)
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Server.Port = -1
	cfg.Supervisor.MaxSteps = 0
	cfg.Queue.Workers = 0

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SWARMLET_PORT")
	assert.Contains(t, err.Error(), "SUPERVISOR_MAX_STEPS")
	assert.Contains(t, err.Error(), "QUEUE_WORKERS")
}

func TestParseAPITokensSkipsMalformed(t *testing.T) {
	tokens := parseAPITokens("good:alice,,bad-entry,:noowner,notoken:")
	assert.Equal(t, map[string]string{"good": "alice"}, tokens)
}

func TestKeepOpenTTLCap(t *testing.T) {
	t.Setenv("STREAM_KEEP_OPEN_MAX_TTL", "10m")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STREAM_KEEP_OPEN_MAX_TTL")
}
