package dispatcher

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/pkg/llm"
)

type scriptedLLM struct {
	chunks []llm.Chunk
	err    error

	lastInput *llm.GenerateInput
}

func (s *scriptedLLM) Generate(_ context.Context, input *llm.GenerateInput) (<-chan llm.Chunk, error) {
	s.lastInput = input
	if s.err != nil {
		return nil, s.err
	}
	ch := make(chan llm.Chunk, len(s.chunks))
	for _, c := range s.chunks {
		ch <- c
	}
	close(ch)
	return ch, nil
}

func (s *scriptedLLM) Close() error { return nil }

func TestSummarizePassthroughUnderThreshold(t *testing.T) {
	client := &scriptedLLM{}
	s := NewSummarizer(client, 100, 150)

	out := s.Summarize(context.Background(), "run-1", "task", "short output")
	assert.Equal(t, "short output", out)
	assert.Nil(t, client.lastInput, "short results must not hit the gateway")
}

func TestSummarizeUsesLLM(t *testing.T) {
	client := &scriptedLLM{chunks: []llm.Chunk{
		&llm.TextChunk{Content: "Disk usage "},
		&llm.TextChunk{Content: "healthy, 40% used."},
	}}
	s := NewSummarizer(client, 10, 150)

	out := s.Summarize(context.Background(), "run-1", "check disk", strings.Repeat("x", 500))
	assert.Equal(t, "Disk usage healthy, 40% used.", out)
	require.NotNil(t, client.lastInput)
	assert.Equal(t, "run-1", client.lastInput.RunID)
}

func TestSummarizeCapsLength(t *testing.T) {
	client := &scriptedLLM{chunks: []llm.Chunk{
		&llm.TextChunk{Content: strings.Repeat("a", 400)},
	}}
	s := NewSummarizer(client, 10, 150)

	out := s.Summarize(context.Background(), "run-1", "task", strings.Repeat("x", 500))
	assert.Len(t, []rune(out), 150)
}

func TestSummarizeFallsBackOnError(t *testing.T) {
	client := &scriptedLLM{err: errors.New("gateway down")}
	s := NewSummarizer(client, 10, 20)

	out := s.Summarize(context.Background(), "run-1", "task", strings.Repeat("b", 100))
	assert.Len(t, []rune(out), 20)
	assert.True(t, strings.HasSuffix(out, "…"))
}

func TestSummarizeFallsBackOnErrorChunk(t *testing.T) {
	client := &scriptedLLM{chunks: []llm.Chunk{
		&llm.ErrorChunk{Message: "rate limited"},
	}}
	s := NewSummarizer(client, 10, 20)

	out := s.Summarize(context.Background(), "run-1", "task", strings.Repeat("c", 100))
	assert.True(t, strings.HasPrefix(out, "ccc"))
	assert.Len(t, []rune(out), 20)
}

func TestTruncateChars(t *testing.T) {
	assert.Equal(t, "abc", truncateChars("abc", 10))
	assert.Equal(t, "ab…", truncateChars("abcdef", 3))
	// Multi-byte runes must not be split.
	assert.Equal(t, "héll…", truncateChars("héllo wörld", 5))
}
