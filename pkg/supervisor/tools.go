package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/pkg/llm"
	"github.com/swarmlet/swarmlet/pkg/models"
)

// SpawnWorkerToolName is the tool call that suspends the run and hands
// off to the worker dispatcher.
const SpawnWorkerToolName = "spawn_worker"

// Tool is a local tool the supervisor invokes synchronously inside a
// step. spawn_worker is not a Tool; the engine intercepts it.
type Tool interface {
	Name() string
	Description() string
	ParametersSchema() string
	Execute(ctx context.Context, ownerID string, args map[string]any) (string, error)
}

// spawnWorkerSchema is the parameter schema advertised to the model for
// spawn_worker.
const spawnWorkerSchema = `{
  "type": "object",
  "properties": {
    "runner_id": {"type": "string", "description": "ID of the runner to execute on"},
    "task": {"type": "string", "description": "What this worker is trying to accomplish"},
    "command": {"type": "string", "description": "Single shell command, no metacharacters"},
    "timeout_secs": {"type": "integer", "description": "Command timeout in seconds"}
  },
  "required": ["runner_id", "task", "command"]
}`

// spawnWorkerDefinition is the tool definition for spawn_worker.
func spawnWorkerDefinition() llm.ToolDefinition {
	return llm.ToolDefinition{
		Name: SpawnWorkerToolName,
		Description: "Run a single shell command on a remote runner. The run suspends " +
			"until the worker finishes; the result arrives as a tool result with an " +
			"evidence reference.",
		ParametersSchema: spawnWorkerSchema,
	}
}

// spawnArgs are the decoded spawn_worker arguments.
type spawnArgs struct {
	RunnerID    string `json:"runner_id"`
	Task        string `json:"task"`
	Command     string `json:"command"`
	TimeoutSecs int    `json:"timeout_secs"`
}

func parseSpawnArgs(raw string) (spawnArgs, error) {
	var args spawnArgs
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return args, models.NewValidationError("spawn_worker arguments are not valid JSON: %v", err)
	}
	if args.RunnerID == "" {
		return args, models.NewValidationError("spawn_worker requires runner_id")
	}
	if args.Command == "" {
		return args, models.NewValidationError("spawn_worker requires command")
	}
	return args, nil
}

// RunnerLister backs the list_runners tool.
type RunnerLister interface {
	ListRunners(ctx context.Context, ownerID string) ([]*ent.Runner, error)
}

// ListRunnersTool lets the model discover which runners exist, their
// capabilities, and whether they are online, before spawning workers.
type ListRunnersTool struct {
	runners RunnerLister
}

// NewListRunnersTool creates the list_runners tool.
func NewListRunnersTool(runners RunnerLister) *ListRunnersTool {
	return &ListRunnersTool{runners: runners}
}

func (t *ListRunnersTool) Name() string { return "list_runners" }

func (t *ListRunnersTool) Description() string {
	return "List the runners available to this account with their capabilities and status."
}

func (t *ListRunnersTool) ParametersSchema() string {
	return `{"type": "object", "properties": {}}`
}

func (t *ListRunnersTool) Execute(ctx context.Context, ownerID string, _ map[string]any) (string, error) {
	runners, err := t.runners.ListRunners(ctx, ownerID)
	if err != nil {
		return "", models.NewExecutionError("failed to list runners: %v", err)
	}
	if len(runners) == 0 {
		return "No runners are registered.", nil
	}
	var sb strings.Builder
	for _, r := range runners {
		fmt.Fprintf(&sb, "- %s (id=%s, status=%s, capabilities=%s)\n",
			r.Name, r.ID, r.Status, strings.Join(r.Capabilities, ","))
	}
	return sb.String(), nil
}

// CurrentTimeTool reports the current UTC time. Cheap grounding for
// schedule-related tasks.
type CurrentTimeTool struct{}

func (t *CurrentTimeTool) Name() string { return "current_time" }

func (t *CurrentTimeTool) Description() string {
	return "Get the current date and time in UTC."
}

func (t *CurrentTimeTool) ParametersSchema() string {
	return `{"type": "object", "properties": {}}`
}

func (t *CurrentTimeTool) Execute(_ context.Context, _ string, _ map[string]any) (string, error) {
	return time.Now().UTC().Format(time.RFC3339), nil
}
