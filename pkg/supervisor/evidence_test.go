package supervisor

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swarmlet/swarmlet/ent"
	"github.com/swarmlet/swarmlet/ent/workerjob"
	"github.com/swarmlet/swarmlet/pkg/llm"
)

func TestEvidenceMarkerRoundTrip(t *testing.T) {
	marker := EvidenceMarker("run-1", "job-2", "runner-3")
	assert.Equal(t, "[EVIDENCE:run_id=run-1,job_id=job-2,worker_id=runner-3]", marker)

	refs := collectRefs([]llm.Message{{Role: "tool", Content: "summary\n" + marker}})
	require.Len(t, refs, 1)
	assert.Equal(t, "job-2", refs[0].jobID)
	assert.Equal(t, "runner-3", refs[0].workerID)
}

func TestCollectRefsDeduplicates(t *testing.T) {
	marker := EvidenceMarker("run-1", "job-1", "runner-1")
	refs := collectRefs([]llm.Message{
		{Content: marker},
		{Content: "again: " + marker},
		{Content: EvidenceMarker("run-1", "job-2", "runner-1")},
	})
	assert.Len(t, refs, 2)
}

func TestExpandMountsWorkerOutput(t *testing.T) {
	jobs := newFakeJobSource()
	jobs.jobs["job-1"] = &ent.WorkerJob{
		ID:     "job-1",
		Status: workerjob.StatusSuccess,
		Result: "Filesystem /dev/sda1 42% used",
	}
	c := &evidenceCompiler{jobs: jobs, budget: 32000}

	marker := EvidenceMarker("run-1", "job-1", "runner-1")
	msgs := []llm.Message{
		{Role: "user", Content: "check disks"},
		{Role: "tool", Content: "disks look fine\n" + marker},
	}
	out := c.expand(context.Background(), "run-1", msgs)

	assert.NotContains(t, out[1].Content, "[EVIDENCE:")
	assert.Contains(t, out[1].Content, "Filesystem /dev/sda1 42% used")
	assert.Contains(t, out[1].Content, "worker output (job=job-1")

	// The originals must stay untouched; only the request copy expands.
	assert.Contains(t, msgs[1].Content, marker)
}

func TestExpandFailuresFirstUnderTightBudget(t *testing.T) {
	jobs := newFakeJobSource()
	jobs.jobs["job-ok"] = &ent.WorkerJob{
		ID:     "job-ok",
		Status: workerjob.StatusSuccess,
		Result: strings.Repeat("s", 600),
	}
	jobs.jobs["job-bad"] = &ent.WorkerJob{
		ID:     "job-bad",
		Status: workerjob.StatusFailed,
		Error:  "command exited with code 1",
		Result: strings.Repeat("f", 600),
	}
	c := &evidenceCompiler{jobs: jobs, budget: 700}

	okMarker := EvidenceMarker("run-1", "job-ok", "runner-1")
	badMarker := EvidenceMarker("run-1", "job-bad", "runner-1")
	out := c.expand(context.Background(), "run-1", []llm.Message{
		{Role: "tool", Content: okMarker},
		{Role: "tool", Content: badMarker},
	})

	assert.Contains(t, out[0].Content, okMarker, "success output must yield the budget to the failure")
	assert.NotContains(t, out[1].Content, badMarker)
	assert.Contains(t, out[1].Content, "command exited with code 1")
}

func TestExpandHeadTailTruncation(t *testing.T) {
	body := strings.Repeat("a", 5000) + "TAIL-SENTINEL"
	jobs := newFakeJobSource()
	jobs.jobs["job-1"] = &ent.WorkerJob{ID: "job-1", Status: workerjob.StatusSuccess, Result: body}
	c := &evidenceCompiler{jobs: jobs, budget: 1000}

	out := c.expand(context.Background(), "run-1", []llm.Message{
		{Role: "tool", Content: EvidenceMarker("run-1", "job-1", "runner-1")},
	})

	assert.Contains(t, out[0].Content, "[...truncated")
	assert.Contains(t, out[0].Content, "TAIL-SENTINEL", "the tail of the output must survive truncation")
}

func TestExpandLeavesUnresolvableMarker(t *testing.T) {
	c := &evidenceCompiler{jobs: newFakeJobSource(), budget: 32000}
	marker := EvidenceMarker("run-1", "missing", "runner-1")
	out := c.expand(context.Background(), "run-1", []llm.Message{{Content: marker}})
	assert.Contains(t, out[0].Content, marker)
}

func TestHeadTailTruncate(t *testing.T) {
	s := strings.Repeat("x", 100)
	out := headTailTruncate(s, 30)
	assert.Contains(t, out, "[...truncated 70 bytes...]")
	assert.Equal(t, s, headTailTruncate(s, 100))
}
