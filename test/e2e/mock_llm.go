package e2e

import (
	"context"
	"fmt"
	"sync"

	"github.com/swarmlet/swarmlet/pkg/llm"
)

// ScriptedLLM is an llm.Client that plays back pre-scripted responses,
// one script entry per Generate call. Calling past the end of the script
// yields an error chunk, which fails the run instead of hanging it.
type ScriptedLLM struct {
	mu    sync.Mutex
	steps [][]llm.Chunk
	calls []*llm.GenerateInput
}

// NewScriptedLLM creates an empty script.
func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{}
}

// Script appends one response: the chunks a single Generate call streams.
func (s *ScriptedLLM) Script(chunks ...llm.Chunk) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.steps = append(s.steps, chunks)
}

// ScriptAnswer appends a plain text response with token usage.
func (s *ScriptedLLM) ScriptAnswer(text string) {
	s.Script(
		&llm.TextChunk{Content: text},
		&llm.UsageChunk{TotalTokens: 10},
	)
}

// ScriptToolCall appends a response that calls one tool.
func (s *ScriptedLLM) ScriptToolCall(callID, name, argsJSON string) {
	s.Script(
		&llm.ToolCallChunk{CallID: callID, Name: name, Arguments: argsJSON},
		&llm.UsageChunk{TotalTokens: 10},
	)
}

// Calls returns every Generate input seen so far.
func (s *ScriptedLLM) Calls() []*llm.GenerateInput {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*llm.GenerateInput(nil), s.calls...)
}

// Generate pops the next scripted response.
func (s *ScriptedLLM) Generate(_ context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.mu.Lock()
	s.calls = append(s.calls, input)
	var chunks []llm.Chunk
	if len(s.steps) > 0 {
		chunks = s.steps[0]
		s.steps = s.steps[1:]
	} else {
		chunks = []llm.Chunk{&llm.ErrorChunk{
			Message: fmt.Sprintf("script exhausted after %d calls", len(s.calls)),
			Code:    "script_exhausted",
		}}
	}
	s.mu.Unlock()

	out := make(chan llm.Chunk, len(chunks))
	for _, c := range chunks {
		out <- c
	}
	close(out)
	return out, nil
}

// Close implements llm.Client.
func (s *ScriptedLLM) Close() error { return nil }
