// Package supervisor is the ReAct engine at the top of a run: it loops
// the LLM over the thread with a bound tool list, executes local tools
// inline, and suspends durably when a spawn_worker call hands off to
// the dispatcher. The loop state is the thread plus the run row; the
// engine's goroutine can exit at any suspend and a later resume picks
// the loop back up from storage.
package supervisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/run"
	"github.com/swarmlet/swarmlet/pkg/config"
	"github.com/swarmlet/swarmlet/pkg/dispatcher"
	"github.com/swarmlet/swarmlet/pkg/events"
	"github.com/swarmlet/swarmlet/pkg/llm"
)

// systemPrompt frames every supervisor conversation.
const systemPrompt = `You are a supervisor agent operating a fleet of remote runners.
You break the user's task into steps, run commands on runners via the
spawn_worker tool, and reason over their results. Prefer read-only
commands. When the task is done, answer the user directly with your
findings instead of calling more tools.`

// keepOpenTTLMS is the lease the engine grants a stream when a run
// reaches its answer while workers are still in flight.
const keepOpenTTLMS = 120_000

// previewMax bounds tool args/result previews on the event stream.
const previewMax = 200

// RunStore is the run-row side of the loop: status CAS transitions and
// usage accounting.
type RunStore interface {
	GetRun(ctx context.Context, ownerID, runID string) (*ent.Run, error)
	MarkRunning(ctx context.Context, runID string) (bool, error)
	TryResume(ctx context.Context, runID string) (bool, error)
	EnsureWaiting(ctx context.Context, runID string) (bool, error)
	Complete(ctx context.Context, runID string, status run.Status, errMsg string) (bool, error)
	AddUsage(ctx context.Context, runID string, tokens int, cost float64, steps int) error
	Status(ctx context.Context, runID string) (run.Status, error)
}

// ThreadStore is the durable conversation the loop reads and appends.
type ThreadStore interface {
	GetMessages(ctx context.Context, threadID string) ([]*ent.ThreadMessage, error)
	AppendAssistantMessage(ctx context.Context, threadID, content string, toolCalls []map[string]interface{}) (*ent.ThreadMessage, error)
	AppendToolResult(ctx context.Context, threadID, toolCallID, toolName, content string) (*ent.ThreadMessage, error)
	HasToolResult(ctx context.Context, threadID, toolCallID string) (bool, error)
}

// JobSource reads worker jobs for evidence mounting and completion gating.
type JobSource interface {
	GetRunJob(ctx context.Context, runID, jobID string) (*ent.WorkerJob, error)
	CountActive(ctx context.Context, runID string) (int, error)
}

// EventSink appends to the run timeline. Implemented by events.Store.
type EventSink interface {
	Append(ctx context.Context, runID, ownerID, eventType string, payload map[string]any) (int64, error)
}

// Spawner hands a spawn_worker call to the dispatcher.
type Spawner interface {
	SpawnWorker(ctx context.Context, req dispatcher.SpawnRequest) (*ent.WorkerJob, error)
}

// Engine drives supervisor runs.
type Engine struct {
	cfg      config.SupervisorConfig
	runs     RunStore
	threads  ThreadStore
	jobs     JobSource
	client   llm.Client
	events   EventSink
	spawner  Spawner
	evidence *evidenceCompiler

	tools    map[string]Tool
	toolDefs []llm.ToolDefinition

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewEngine creates the engine. Local tools are bound in addition to
// spawn_worker, which the engine handles itself.
func NewEngine(cfg config.SupervisorConfig, runs RunStore, threads ThreadStore, jobs JobSource, client llm.Client, sink EventSink, spawner Spawner, tools ...Tool) *Engine {
	ctx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		cfg:      cfg,
		runs:     runs,
		threads:  threads,
		jobs:     jobs,
		client:   client,
		events:   sink,
		spawner:  spawner,
		evidence: &evidenceCompiler{jobs: jobs, budget: cfg.EvidenceBudgetBytes},
		tools:    make(map[string]Tool, len(tools)),
		ctx:      ctx,
		cancel:   cancel,
	}
	e.toolDefs = append(e.toolDefs, spawnWorkerDefinition())
	for _, t := range tools {
		e.tools[t.Name()] = t
		e.toolDefs = append(e.toolDefs, llm.ToolDefinition{
			Name:             t.Name(),
			Description:      t.Description(),
			ParametersSchema: t.ParametersSchema(),
		})
	}
	return e
}

// StartRun claims a pending run and launches its loop. A run that is
// not pending anymore (picked up by a twin replica, or cancelled before
// start) is skipped without error.
func (e *Engine) StartRun(ctx context.Context, r *ent.Run) error {
	started, err := e.runs.MarkRunning(ctx, r.ID)
	if err != nil {
		return err
	}
	if !started {
		slog.Info("Run not pending anymore; skipping start", "run_id", r.ID)
		return nil
	}
	e.emit(ctx, r, events.EventTypeSupervisorStarted, map[string]any{"task": r.Task})

	e.wg.Add(1)
	go e.runLoop(r)
	return nil
}

// Close stops accepting loop work and waits for in-flight steps.
func (e *Engine) Close() {
	e.cancel()
	e.wg.Wait()
}

type stepOutcome int

const (
	stepContinue stepOutcome = iota
	stepSuspended
	stepDone
)

// runLoop drives a run until it finishes, suspends, or fails. Runs on
// its own goroutine; e.wg must be incremented by the caller.
func (e *Engine) runLoop(r *ent.Run) {
	defer e.wg.Done()
	ctx := e.ctx

	steps := r.Steps
	for {
		status, err := e.runs.Status(ctx, r.ID)
		if err != nil {
			slog.Error("Failed to read run status", "run_id", r.ID, "error", err)
			return
		}
		if status != run.StatusRunning {
			// Cancelled externally, or a concurrent suspend won. Either
			// way this goroutine has nothing left to drive.
			return
		}

		if steps >= e.cfg.MaxSteps {
			e.emit(ctx, r, events.EventTypeSupervisorFailed, map[string]any{"reason": "step_limit"})
			e.finish(ctx, r, run.StatusFailed, "step limit reached")
			return
		}

		outcome, err := e.step(ctx, r)
		if err != nil {
			if ctx.Err() != nil {
				return // engine shutting down; the run row stays as-is for recovery
			}
			e.emit(ctx, r, events.EventTypeSupervisorFailed, map[string]any{"error": err.Error()})
			e.finish(ctx, r, run.StatusFailed, err.Error())
			return
		}
		steps++
		if outcome != stepContinue {
			return
		}
	}
}

// step performs one reason-act iteration: assemble the conversation,
// call the model, then either finish the run, execute tool calls, or
// suspend on a spawned worker.
func (e *Engine) step(ctx context.Context, r *ent.Run) (stepOutcome, error) {
	msgs, err := e.threads.GetMessages(ctx, r.ThreadID)
	if err != nil {
		return stepDone, err
	}
	llmMsgs := e.evidence.expand(ctx, r.ID, buildMessages(msgs))

	stepCtx, cancel := context.WithTimeout(ctx, e.cfg.StepTimeout)
	defer cancel()

	chunks, err := e.client.Generate(stepCtx, &llm.GenerateInput{
		RunID:    r.ID,
		Messages: llmMsgs,
		Tools:    e.toolDefs,
	})
	if err != nil {
		return stepDone, fmt.Errorf("llm call failed: %w", err)
	}

	var content strings.Builder
	var toolCalls []llm.ToolCall
	tokens := 0
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			content.WriteString(c.Content)
			e.emit(ctx, r, events.EventTypeSupervisorToken, map[string]any{"text": c.Content})
		case *llm.ToolCallChunk:
			toolCalls = append(toolCalls, llm.ToolCall{ID: c.CallID, Name: c.Name, Arguments: c.Arguments})
		case *llm.UsageChunk:
			tokens += c.TotalTokens
		case *llm.ErrorChunk:
			return stepDone, fmt.Errorf("llm error: %s", c.Message)
		}
	}

	if err := e.runs.AddUsage(ctx, r.ID, tokens, 0, 1); err != nil {
		slog.Warn("Failed to record run usage", "run_id", r.ID, "error", err)
	}

	if _, err := e.threads.AppendAssistantMessage(ctx, r.ThreadID, content.String(), toolCallMaps(toolCalls)); err != nil {
		return stepDone, err
	}

	if len(toolCalls) == 0 {
		return e.finishWithAnswer(ctx, r, content.String())
	}

	suspended := false
	for _, tc := range toolCalls {
		if tc.Name == SpawnWorkerToolName {
			if e.handleSpawn(ctx, r, tc) {
				suspended = true
			}
			continue
		}
		e.runLocalTool(ctx, r, tc)
	}
	if suspended {
		return stepSuspended, nil
	}
	return stepContinue, nil
}

// finishWithAnswer closes out a run whose model produced a terminal
// answer. A run with workers still in flight must not complete; it
// suspends instead, and the last worker's resume brings the loop back
// to finish for real.
func (e *Engine) finishWithAnswer(ctx context.Context, r *ent.Run, answer string) (stepOutcome, error) {
	active, err := e.jobs.CountActive(ctx, r.ID)
	if err != nil {
		return stepDone, err
	}
	if active > 0 {
		e.emit(ctx, r, events.EventTypeStreamControl, map[string]any{
			"action":          events.StreamActionKeepOpen,
			"reason":          "pending_workers",
			"ttl_ms":          keepOpenTTLMS,
			"pending_workers": active,
		})
		suspended, err := e.runs.EnsureWaiting(ctx, r.ID)
		if err != nil {
			return stepDone, err
		}
		if !suspended {
			return stepSuspended, nil
		}
		// A worker finishing between the count and the suspend fires its
		// resume while the run is still RUNNING and loses the CAS. Now
		// that the run is WAITING, re-check and claim that wakeup here;
		// otherwise the run parks with nothing left to wake it.
		active, err = e.jobs.CountActive(ctx, r.ID)
		if err != nil {
			return stepDone, err
		}
		if active == 0 {
			won, err := e.runs.TryResume(ctx, r.ID)
			if err != nil {
				return stepDone, err
			}
			if won {
				return stepContinue, nil
			}
		}
		return stepSuspended, nil
	}

	e.emit(ctx, r, events.EventTypeSupervisorComplete, map[string]any{"result": answer})
	e.finish(ctx, r, run.StatusSuccess, "")
	return stepDone, nil
}

// finish records the terminal status and sets the stream's close
// barrier. Cancelled runs absorb the completion; the close event is
// still emitted so streams terminate.
func (e *Engine) finish(ctx context.Context, r *ent.Run, status run.Status, errMsg string) {
	if _, err := e.runs.Complete(ctx, r.ID, status, errMsg); err != nil {
		slog.Error("Failed to complete run", "run_id", r.ID, "error", err)
	}
	e.emit(ctx, r, events.EventTypeStreamControl, map[string]any{
		"action": events.StreamActionClose,
		"reason": "run_finished",
	})
}

// handleSpawn hands one spawn_worker call to the dispatcher. Reports
// whether the run actually suspended; a rejected spawn appends the
// failure as a tool result so the model can adapt in the next step.
func (e *Engine) handleSpawn(ctx context.Context, r *ent.Run, tc llm.ToolCall) bool {
	args, err := parseSpawnArgs(tc.Arguments)
	if err == nil {
		_, err = e.spawner.SpawnWorker(ctx, dispatcher.SpawnRequest{
			OwnerID:     r.OwnerID,
			RunID:       r.ID,
			ToolCallID:  tc.ID,
			RunnerID:    args.RunnerID,
			Task:        args.Task,
			Command:     args.Command,
			TimeoutSecs: args.TimeoutSecs,
		})
	}
	if err != nil {
		e.emit(ctx, r, events.EventTypeSupervisorToolFailed, map[string]any{
			"tool":  SpawnWorkerToolName,
			"error": err.Error(),
		})
		if _, aerr := e.threads.AppendToolResult(ctx, r.ThreadID, tc.ID, SpawnWorkerToolName, "spawn failed: "+err.Error()); aerr != nil {
			slog.Error("Failed to append spawn failure", "run_id", r.ID, "error", aerr)
		}
		return false
	}
	return true
}

// runLocalTool executes one synchronous tool call and appends its
// result to the thread.
func (e *Engine) runLocalTool(ctx context.Context, r *ent.Run, tc llm.ToolCall) {
	e.emit(ctx, r, events.EventTypeSupervisorToolStarted, map[string]any{
		"tool":         tc.Name,
		"args_preview": preview(tc.Arguments),
	})

	result, err := e.invokeTool(ctx, r.OwnerID, tc)
	if err != nil {
		e.emit(ctx, r, events.EventTypeSupervisorToolFailed, map[string]any{
			"tool":  tc.Name,
			"error": err.Error(),
		})
		result = "error: " + err.Error()
	} else {
		e.emit(ctx, r, events.EventTypeSupervisorToolCompleted, map[string]any{
			"tool":           tc.Name,
			"result_preview": preview(result),
		})
	}

	if _, err := e.threads.AppendToolResult(ctx, r.ThreadID, tc.ID, tc.Name, result); err != nil {
		slog.Error("Failed to append tool result", "run_id", r.ID, "tool", tc.Name, "error", err)
	}
}

func (e *Engine) invokeTool(ctx context.Context, ownerID string, tc llm.ToolCall) (string, error) {
	tool, ok := e.tools[tc.Name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", tc.Name)
	}
	args := map[string]any{}
	if tc.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return "", fmt.Errorf("tool arguments are not valid JSON: %w", err)
		}
	}
	return tool.Execute(ctx, ownerID, args)
}

func (e *Engine) emit(ctx context.Context, r *ent.Run, eventType string, payload map[string]any) {
	if _, err := e.events.Append(ctx, r.ID, r.OwnerID, eventType, payload); err != nil {
		slog.Warn("Failed to emit run event", "run_id", r.ID, "event_type", eventType, "error", err)
	}
}

// buildMessages converts the stored thread into the LLM conversation,
// prefixed with the system prompt.
func buildMessages(msgs []*ent.ThreadMessage) []llm.Message {
	out := make([]llm.Message, 0, len(msgs)+1)
	out = append(out, llm.Message{Role: "system", Content: systemPrompt})
	for _, m := range msgs {
		msg := llm.Message{
			Role:       m.Role,
			Content:    m.Content,
			ToolCallID: m.ToolCallID,
			ToolName:   m.ToolName,
		}
		for _, tc := range m.ToolCalls {
			msg.ToolCalls = append(msg.ToolCalls, llm.ToolCall{
				ID:        stringField(tc, "id"),
				Name:      stringField(tc, "name"),
				Arguments: stringField(tc, "arguments"),
			})
		}
		out = append(out, msg)
	}
	return out
}

// toolCallMaps is the storage form of a step's tool calls.
func toolCallMaps(calls []llm.ToolCall) []map[string]interface{} {
	if len(calls) == 0 {
		return nil
	}
	out := make([]map[string]interface{}, len(calls))
	for i, tc := range calls {
		out[i] = map[string]interface{}{
			"id":        tc.ID,
			"name":      tc.Name,
			"arguments": tc.Arguments,
		}
	}
	return out
}

func stringField(m map[string]interface{}, key string) string {
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func preview(s string) string {
	if utf8.RuneCountInString(s) <= previewMax {
		return s
	}
	return string([]rune(s)[:previewMax-1]) + "…"
}
