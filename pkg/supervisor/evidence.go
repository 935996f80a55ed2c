package supervisor

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/llm"
)

// EvidenceMarker builds the compact reference stored in thread messages
// in place of a worker's full output.
// Format: [EVIDENCE:run_id=R,job_id=J,worker_id=W]
func EvidenceMarker(runID, jobID, workerID string) string {
	return fmt.Sprintf("[EVIDENCE:run_id=%s,job_id=%s,worker_id=%s]", runID, jobID, workerID)
}

var evidencePattern = regexp.MustCompile(`\[EVIDENCE:run_id=([^,\]]+),job_id=([^,\]]+),worker_id=([^\]]+)\]`)

// minExpansionBytes is the smallest expansion worth doing; below this
// the marker stays as-is rather than mounting a useless fragment.
const minExpansionBytes = 256

type evidenceRef struct {
	marker   string
	jobID    string
	workerID string
}

// evidenceCompiler mounts worker output into outgoing LLM messages.
// Expansion is ephemeral: the thread keeps only the markers, the
// expanded payload exists for one request and is discarded.
type evidenceCompiler struct {
	jobs   JobSource
	budget int
}

// expand returns a copy of messages with evidence markers replaced by
// worker output, within the byte budget. Failed jobs are expanded
// first: when the budget is tight, the details that explain a failure
// matter more than output that already summarized cleanly. Markers that
// do not fit stay untouched.
func (c *evidenceCompiler) expand(ctx context.Context, runID string, messages []llm.Message) []llm.Message {
	refs := collectRefs(messages)
	if len(refs) == 0 {
		return messages
	}

	type loaded struct {
		ref evidenceRef
		job *ent.WorkerJob
	}
	var failures, successes []loaded
	for _, ref := range refs {
		job, err := c.jobs.GetRunJob(ctx, runID, ref.jobID)
		if err != nil {
			slog.Warn("Evidence reference did not resolve", "run_id", runID, "job_id", ref.jobID, "error", err)
			continue
		}
		if job.Status == workerjob.StatusFailed || job.Status == workerjob.StatusTimeout {
			failures = append(failures, loaded{ref: ref, job: job})
		} else {
			successes = append(successes, loaded{ref: ref, job: job})
		}
	}

	remaining := c.budget
	expansions := make(map[string]string, len(refs))
	for _, l := range append(failures, successes...) {
		body := evidenceBody(l.job)
		if body == "" {
			continue
		}
		if remaining < minExpansionBytes {
			break
		}
		if len(body) > remaining {
			body = headTailTruncate(body, remaining)
		}
		remaining -= len(body)
		expansions[l.ref.marker] = fmt.Sprintf(
			"=== worker output (job=%s, runner=%s, status=%s) ===\n%s\n=== end worker output ===",
			l.job.ID, l.ref.workerID, l.job.Status, body)
	}
	if len(expansions) == 0 {
		return messages
	}

	out := make([]llm.Message, len(messages))
	copy(out, messages)
	for i := range out {
		for marker, expansion := range expansions {
			if strings.Contains(out[i].Content, marker) {
				out[i].Content = strings.ReplaceAll(out[i].Content, marker, expansion)
			}
		}
	}
	return out
}

// collectRefs finds every distinct evidence marker across the messages,
// in order of first appearance.
func collectRefs(messages []llm.Message) []evidenceRef {
	var refs []evidenceRef
	seen := make(map[string]bool)
	for _, msg := range messages {
		for _, m := range evidencePattern.FindAllStringSubmatch(msg.Content, -1) {
			if seen[m[0]] {
				continue
			}
			seen[m[0]] = true
			refs = append(refs, evidenceRef{marker: m[0], jobID: m[2], workerID: m[3]})
		}
	}
	return refs
}

// evidenceBody assembles the mountable text for one job.
func evidenceBody(job *ent.WorkerJob) string {
	switch {
	case job.Error != "" && job.Result != "":
		return "error: " + job.Error + "\n" + job.Result
	case job.Error != "":
		return "error: " + job.Error
	default:
		return job.Result
	}
}

// headTailTruncate keeps the head and tail of s within max bytes, with
// an inline marker naming how much was dropped. Head gets the larger
// share; tails of command output tend to carry the exit summary.
func headTailTruncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	head := max * 2 / 3
	tail := max - head
	dropped := len(s) - head - tail
	return s[:head] + fmt.Sprintf("\n[...truncated %d bytes...]\n", dropped) + s[len(s)-tail:]
}
