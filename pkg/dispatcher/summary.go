package dispatcher

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/swarmlet/swarmlet/pkg/llm"
)

// summarizeTimeout bounds one summarization call. The worker result is
// already durable when this runs; a slow gateway only degrades the
// summary, never the job.
const summarizeTimeout = 20 * time.Second

// summarizeInputMax bounds how much of the result is shown to the model.
const summarizeInputMax = 6000

// Summarizer compresses worker output into the short form the
// supervisor sees inline in its thread. The full output stays on the
// job record and is reachable through evidence expansion.
type Summarizer struct {
	client         llm.Client
	thresholdBytes int
	maxChars       int
}

// NewSummarizer creates a Summarizer. Results at or under thresholdBytes
// pass through untouched; longer ones are compressed to maxChars.
func NewSummarizer(client llm.Client, thresholdBytes, maxChars int) *Summarizer {
	return &Summarizer{
		client:         client,
		thresholdBytes: thresholdBytes,
		maxChars:       maxChars,
	}
}

// Summarize returns the inline form of a worker result. Summarization is
// best-effort: any gateway failure falls back to head truncation.
func (s *Summarizer) Summarize(ctx context.Context, runID, task, result string) string {
	if len(result) <= s.thresholdBytes {
		return result
	}

	summary, err := s.generate(ctx, runID, task, result)
	if err != nil {
		slog.Warn("Result summarization failed; truncating", "run_id", runID, "error", err)
		return truncateChars(result, s.maxChars)
	}
	return truncateChars(summary, s.maxChars)
}

func (s *Summarizer) generate(parent context.Context, runID, task, result string) (string, error) {
	ctx, cancel := context.WithTimeout(parent, summarizeTimeout)
	defer cancel()

	excerpt := result
	if len(excerpt) > summarizeInputMax {
		excerpt = excerpt[:summarizeInputMax]
	}

	chunks, err := s.client.Generate(ctx, &llm.GenerateInput{
		RunID: runID,
		Messages: []llm.Message{
			{
				Role: "system",
				Content: "You summarize command output for an operations log. " +
					"Reply with a single plain-text summary of at most " +
					strconv.Itoa(s.maxChars) + " characters. No preamble, no markdown.",
			},
			{
				Role:    "user",
				Content: "Task: " + task + "\n\nOutput:\n" + excerpt,
			},
		},
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for chunk := range chunks {
		switch c := chunk.(type) {
		case *llm.TextChunk:
			sb.WriteString(c.Content)
		case *llm.ErrorChunk:
			return "", errSummarize(c.Message)
		}
	}

	summary := strings.TrimSpace(sb.String())
	if summary == "" {
		return "", errSummarize("empty response")
	}
	return summary, nil
}

type errSummarize string

func (e errSummarize) Error() string { return "summarization failed: " + string(e) }

// truncateChars cuts s to at most max characters on a rune boundary,
// appending an ellipsis when anything was dropped.
func truncateChars(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}
