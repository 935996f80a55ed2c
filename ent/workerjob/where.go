// Code generated by ent, DO NOT EDIT.

package workerjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/swarmlet/swarmlet/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldID, id))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldOwnerID, v))
}

// SupervisorRunID applies equality check predicate on the "supervisor_run_id" field. It's identical to SupervisorRunIDEQ.
func SupervisorRunID(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldSupervisorRunID, v))
}

// ToolCallID applies equality check predicate on the "tool_call_id" field. It's identical to ToolCallIDEQ.
func ToolCallID(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldToolCallID, v))
}

// Task applies equality check predicate on the "task" field. It's identical to TaskEQ.
func Task(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldTask, v))
}

// Command applies equality check predicate on the "command" field. It's identical to CommandEQ.
func Command(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldCommand, v))
}

// RunnerID applies equality check predicate on the "runner_id" field. It's identical to RunnerIDEQ.
func RunnerID(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldRunnerID, v))
}

// ClaimedAt applies equality check predicate on the "claimed_at" field. It's identical to ClaimedAtEQ.
func ClaimedAt(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldClaimedAt, v))
}

// HeartbeatAt applies equality check predicate on the "heartbeat_at" field. It's identical to HeartbeatAtEQ.
func HeartbeatAt(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldHeartbeatAt, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldFinishedAt, v))
}

// Result applies equality check predicate on the "result" field. It's identical to ResultEQ.
func Result(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldResult, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldSummary, v))
}

// Error applies equality check predicate on the "error" field. It's identical to ErrorEQ.
func Error(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldError, v))
}

// ExitCode applies equality check predicate on the "exit_code" field. It's identical to ExitCodeEQ.
func ExitCode(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldExitCode, v))
}

// TimeoutSecs applies equality check predicate on the "timeout_secs" field. It's identical to TimeoutSecsEQ.
func TimeoutSecs(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldTimeoutSecs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldCreatedAt, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldOwnerID, v))
}

// SupervisorRunIDEQ applies the EQ predicate on the "supervisor_run_id" field.
func SupervisorRunIDEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldSupervisorRunID, v))
}

// SupervisorRunIDNEQ applies the NEQ predicate on the "supervisor_run_id" field.
func SupervisorRunIDNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldSupervisorRunID, v))
}

// SupervisorRunIDIn applies the In predicate on the "supervisor_run_id" field.
func SupervisorRunIDIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldSupervisorRunID, vs...))
}

// SupervisorRunIDNotIn applies the NotIn predicate on the "supervisor_run_id" field.
func SupervisorRunIDNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldSupervisorRunID, vs...))
}

// SupervisorRunIDGT applies the GT predicate on the "supervisor_run_id" field.
func SupervisorRunIDGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldSupervisorRunID, v))
}

// SupervisorRunIDGTE applies the GTE predicate on the "supervisor_run_id" field.
func SupervisorRunIDGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldSupervisorRunID, v))
}

// SupervisorRunIDLT applies the LT predicate on the "supervisor_run_id" field.
func SupervisorRunIDLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldSupervisorRunID, v))
}

// SupervisorRunIDLTE applies the LTE predicate on the "supervisor_run_id" field.
func SupervisorRunIDLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldSupervisorRunID, v))
}

// SupervisorRunIDContains applies the Contains predicate on the "supervisor_run_id" field.
func SupervisorRunIDContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldSupervisorRunID, v))
}

// SupervisorRunIDHasPrefix applies the HasPrefix predicate on the "supervisor_run_id" field.
func SupervisorRunIDHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldSupervisorRunID, v))
}

// SupervisorRunIDHasSuffix applies the HasSuffix predicate on the "supervisor_run_id" field.
func SupervisorRunIDHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldSupervisorRunID, v))
}

// SupervisorRunIDEqualFold applies the EqualFold predicate on the "supervisor_run_id" field.
func SupervisorRunIDEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldSupervisorRunID, v))
}

// SupervisorRunIDContainsFold applies the ContainsFold predicate on the "supervisor_run_id" field.
func SupervisorRunIDContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldSupervisorRunID, v))
}

// ToolCallIDEQ applies the EQ predicate on the "tool_call_id" field.
func ToolCallIDEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldToolCallID, v))
}

// ToolCallIDNEQ applies the NEQ predicate on the "tool_call_id" field.
func ToolCallIDNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldToolCallID, v))
}

// ToolCallIDIn applies the In predicate on the "tool_call_id" field.
func ToolCallIDIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldToolCallID, vs...))
}

// ToolCallIDNotIn applies the NotIn predicate on the "tool_call_id" field.
func ToolCallIDNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldToolCallID, vs...))
}

// ToolCallIDGT applies the GT predicate on the "tool_call_id" field.
func ToolCallIDGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldToolCallID, v))
}

// ToolCallIDGTE applies the GTE predicate on the "tool_call_id" field.
func ToolCallIDGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldToolCallID, v))
}

// ToolCallIDLT applies the LT predicate on the "tool_call_id" field.
func ToolCallIDLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldToolCallID, v))
}

// ToolCallIDLTE applies the LTE predicate on the "tool_call_id" field.
func ToolCallIDLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldToolCallID, v))
}

// ToolCallIDContains applies the Contains predicate on the "tool_call_id" field.
func ToolCallIDContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldToolCallID, v))
}

// ToolCallIDHasPrefix applies the HasPrefix predicate on the "tool_call_id" field.
func ToolCallIDHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldToolCallID, v))
}

// ToolCallIDHasSuffix applies the HasSuffix predicate on the "tool_call_id" field.
func ToolCallIDHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldToolCallID, v))
}

// ToolCallIDEqualFold applies the EqualFold predicate on the "tool_call_id" field.
func ToolCallIDEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldToolCallID, v))
}

// ToolCallIDContainsFold applies the ContainsFold predicate on the "tool_call_id" field.
func ToolCallIDContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldToolCallID, v))
}

// TaskEQ applies the EQ predicate on the "task" field.
func TaskEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldTask, v))
}

// TaskNEQ applies the NEQ predicate on the "task" field.
func TaskNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldTask, v))
}

// TaskIn applies the In predicate on the "task" field.
func TaskIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldTask, vs...))
}

// TaskNotIn applies the NotIn predicate on the "task" field.
func TaskNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldTask, vs...))
}

// TaskGT applies the GT predicate on the "task" field.
func TaskGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldTask, v))
}

// TaskGTE applies the GTE predicate on the "task" field.
func TaskGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldTask, v))
}

// TaskLT applies the LT predicate on the "task" field.
func TaskLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldTask, v))
}

// TaskLTE applies the LTE predicate on the "task" field.
func TaskLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldTask, v))
}

// TaskContains applies the Contains predicate on the "task" field.
func TaskContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldTask, v))
}

// TaskHasPrefix applies the HasPrefix predicate on the "task" field.
func TaskHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldTask, v))
}

// TaskHasSuffix applies the HasSuffix predicate on the "task" field.
func TaskHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldTask, v))
}

// TaskEqualFold applies the EqualFold predicate on the "task" field.
func TaskEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldTask, v))
}

// TaskContainsFold applies the ContainsFold predicate on the "task" field.
func TaskContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldTask, v))
}

// CommandEQ applies the EQ predicate on the "command" field.
func CommandEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldCommand, v))
}

// CommandNEQ applies the NEQ predicate on the "command" field.
func CommandNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldCommand, v))
}

// CommandIn applies the In predicate on the "command" field.
func CommandIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldCommand, vs...))
}

// CommandNotIn applies the NotIn predicate on the "command" field.
func CommandNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldCommand, vs...))
}

// CommandGT applies the GT predicate on the "command" field.
func CommandGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldCommand, v))
}

// CommandGTE applies the GTE predicate on the "command" field.
func CommandGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldCommand, v))
}

// CommandLT applies the LT predicate on the "command" field.
func CommandLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldCommand, v))
}

// CommandLTE applies the LTE predicate on the "command" field.
func CommandLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldCommand, v))
}

// CommandContains applies the Contains predicate on the "command" field.
func CommandContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldCommand, v))
}

// CommandHasPrefix applies the HasPrefix predicate on the "command" field.
func CommandHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldCommand, v))
}

// CommandHasSuffix applies the HasSuffix predicate on the "command" field.
func CommandHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldCommand, v))
}

// CommandEqualFold applies the EqualFold predicate on the "command" field.
func CommandEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldCommand, v))
}

// CommandContainsFold applies the ContainsFold predicate on the "command" field.
func CommandContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldCommand, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldStatus, vs...))
}

// RunnerIDEQ applies the EQ predicate on the "runner_id" field.
func RunnerIDEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldRunnerID, v))
}

// RunnerIDNEQ applies the NEQ predicate on the "runner_id" field.
func RunnerIDNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldRunnerID, v))
}

// RunnerIDIn applies the In predicate on the "runner_id" field.
func RunnerIDIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldRunnerID, vs...))
}

// RunnerIDNotIn applies the NotIn predicate on the "runner_id" field.
func RunnerIDNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldRunnerID, vs...))
}

// RunnerIDGT applies the GT predicate on the "runner_id" field.
func RunnerIDGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldRunnerID, v))
}

// RunnerIDGTE applies the GTE predicate on the "runner_id" field.
func RunnerIDGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldRunnerID, v))
}

// RunnerIDLT applies the LT predicate on the "runner_id" field.
func RunnerIDLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldRunnerID, v))
}

// RunnerIDLTE applies the LTE predicate on the "runner_id" field.
func RunnerIDLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldRunnerID, v))
}

// RunnerIDContains applies the Contains predicate on the "runner_id" field.
func RunnerIDContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldRunnerID, v))
}

// RunnerIDHasPrefix applies the HasPrefix predicate on the "runner_id" field.
func RunnerIDHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldRunnerID, v))
}

// RunnerIDHasSuffix applies the HasSuffix predicate on the "runner_id" field.
func RunnerIDHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldRunnerID, v))
}

// RunnerIDIsNil applies the IsNil predicate on the "runner_id" field.
func RunnerIDIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldRunnerID))
}

// RunnerIDNotNil applies the NotNil predicate on the "runner_id" field.
func RunnerIDNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldRunnerID))
}

// RunnerIDEqualFold applies the EqualFold predicate on the "runner_id" field.
func RunnerIDEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldRunnerID, v))
}

// RunnerIDContainsFold applies the ContainsFold predicate on the "runner_id" field.
func RunnerIDContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldRunnerID, v))
}

// ClaimedAtEQ applies the EQ predicate on the "claimed_at" field.
func ClaimedAtEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldClaimedAt, v))
}

// ClaimedAtNEQ applies the NEQ predicate on the "claimed_at" field.
func ClaimedAtNEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldClaimedAt, v))
}

// ClaimedAtIn applies the In predicate on the "claimed_at" field.
func ClaimedAtIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldClaimedAt, vs...))
}

// ClaimedAtNotIn applies the NotIn predicate on the "claimed_at" field.
func ClaimedAtNotIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldClaimedAt, vs...))
}

// ClaimedAtGT applies the GT predicate on the "claimed_at" field.
func ClaimedAtGT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldClaimedAt, v))
}

// ClaimedAtGTE applies the GTE predicate on the "claimed_at" field.
func ClaimedAtGTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldClaimedAt, v))
}

// ClaimedAtLT applies the LT predicate on the "claimed_at" field.
func ClaimedAtLT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldClaimedAt, v))
}

// ClaimedAtLTE applies the LTE predicate on the "claimed_at" field.
func ClaimedAtLTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldClaimedAt, v))
}

// ClaimedAtIsNil applies the IsNil predicate on the "claimed_at" field.
func ClaimedAtIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldClaimedAt))
}

// ClaimedAtNotNil applies the NotNil predicate on the "claimed_at" field.
func ClaimedAtNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldClaimedAt))
}

// HeartbeatAtEQ applies the EQ predicate on the "heartbeat_at" field.
func HeartbeatAtEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtNEQ applies the NEQ predicate on the "heartbeat_at" field.
func HeartbeatAtNEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldHeartbeatAt, v))
}

// HeartbeatAtIn applies the In predicate on the "heartbeat_at" field.
func HeartbeatAtIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtNotIn applies the NotIn predicate on the "heartbeat_at" field.
func HeartbeatAtNotIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldHeartbeatAt, vs...))
}

// HeartbeatAtGT applies the GT predicate on the "heartbeat_at" field.
func HeartbeatAtGT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldHeartbeatAt, v))
}

// HeartbeatAtGTE applies the GTE predicate on the "heartbeat_at" field.
func HeartbeatAtGTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldHeartbeatAt, v))
}

// HeartbeatAtLT applies the LT predicate on the "heartbeat_at" field.
func HeartbeatAtLT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldHeartbeatAt, v))
}

// HeartbeatAtLTE applies the LTE predicate on the "heartbeat_at" field.
func HeartbeatAtLTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldHeartbeatAt, v))
}

// HeartbeatAtIsNil applies the IsNil predicate on the "heartbeat_at" field.
func HeartbeatAtIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldHeartbeatAt))
}

// HeartbeatAtNotNil applies the NotNil predicate on the "heartbeat_at" field.
func HeartbeatAtNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldHeartbeatAt))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldFinishedAt))
}

// ResultEQ applies the EQ predicate on the "result" field.
func ResultEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldResult, v))
}

// ResultNEQ applies the NEQ predicate on the "result" field.
func ResultNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldResult, v))
}

// ResultIn applies the In predicate on the "result" field.
func ResultIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldResult, vs...))
}

// ResultNotIn applies the NotIn predicate on the "result" field.
func ResultNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldResult, vs...))
}

// ResultGT applies the GT predicate on the "result" field.
func ResultGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldResult, v))
}

// ResultGTE applies the GTE predicate on the "result" field.
func ResultGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldResult, v))
}

// ResultLT applies the LT predicate on the "result" field.
func ResultLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldResult, v))
}

// ResultLTE applies the LTE predicate on the "result" field.
func ResultLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldResult, v))
}

// ResultContains applies the Contains predicate on the "result" field.
func ResultContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldResult, v))
}

// ResultHasPrefix applies the HasPrefix predicate on the "result" field.
func ResultHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldResult, v))
}

// ResultHasSuffix applies the HasSuffix predicate on the "result" field.
func ResultHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldResult, v))
}

// ResultIsNil applies the IsNil predicate on the "result" field.
func ResultIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldResult))
}

// ResultNotNil applies the NotNil predicate on the "result" field.
func ResultNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldResult))
}

// ResultEqualFold applies the EqualFold predicate on the "result" field.
func ResultEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldResult, v))
}

// ResultContainsFold applies the ContainsFold predicate on the "result" field.
func ResultContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldResult, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldSummary, v))
}

// ErrorEQ applies the EQ predicate on the "error" field.
func ErrorEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldError, v))
}

// ErrorNEQ applies the NEQ predicate on the "error" field.
func ErrorNEQ(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldError, v))
}

// ErrorIn applies the In predicate on the "error" field.
func ErrorIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldError, vs...))
}

// ErrorNotIn applies the NotIn predicate on the "error" field.
func ErrorNotIn(vs ...string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldError, vs...))
}

// ErrorGT applies the GT predicate on the "error" field.
func ErrorGT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldError, v))
}

// ErrorGTE applies the GTE predicate on the "error" field.
func ErrorGTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldError, v))
}

// ErrorLT applies the LT predicate on the "error" field.
func ErrorLT(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldError, v))
}

// ErrorLTE applies the LTE predicate on the "error" field.
func ErrorLTE(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldError, v))
}

// ErrorContains applies the Contains predicate on the "error" field.
func ErrorContains(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContains(FieldError, v))
}

// ErrorHasPrefix applies the HasPrefix predicate on the "error" field.
func ErrorHasPrefix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasPrefix(FieldError, v))
}

// ErrorHasSuffix applies the HasSuffix predicate on the "error" field.
func ErrorHasSuffix(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldHasSuffix(FieldError, v))
}

// ErrorIsNil applies the IsNil predicate on the "error" field.
func ErrorIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldError))
}

// ErrorNotNil applies the NotNil predicate on the "error" field.
func ErrorNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldError))
}

// ErrorEqualFold applies the EqualFold predicate on the "error" field.
func ErrorEqualFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEqualFold(FieldError, v))
}

// ErrorContainsFold applies the ContainsFold predicate on the "error" field.
func ErrorContainsFold(v string) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldContainsFold(FieldError, v))
}

// ExitCodeEQ applies the EQ predicate on the "exit_code" field.
func ExitCodeEQ(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldExitCode, v))
}

// ExitCodeNEQ applies the NEQ predicate on the "exit_code" field.
func ExitCodeNEQ(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldExitCode, v))
}

// ExitCodeIn applies the In predicate on the "exit_code" field.
func ExitCodeIn(vs ...int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldExitCode, vs...))
}

// ExitCodeNotIn applies the NotIn predicate on the "exit_code" field.
func ExitCodeNotIn(vs ...int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldExitCode, vs...))
}

// ExitCodeGT applies the GT predicate on the "exit_code" field.
func ExitCodeGT(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldExitCode, v))
}

// ExitCodeGTE applies the GTE predicate on the "exit_code" field.
func ExitCodeGTE(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldExitCode, v))
}

// ExitCodeLT applies the LT predicate on the "exit_code" field.
func ExitCodeLT(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldExitCode, v))
}

// ExitCodeLTE applies the LTE predicate on the "exit_code" field.
func ExitCodeLTE(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldExitCode, v))
}

// ExitCodeIsNil applies the IsNil predicate on the "exit_code" field.
func ExitCodeIsNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIsNull(FieldExitCode))
}

// ExitCodeNotNil applies the NotNil predicate on the "exit_code" field.
func ExitCodeNotNil() predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotNull(FieldExitCode))
}

// TimeoutSecsEQ applies the EQ predicate on the "timeout_secs" field.
func TimeoutSecsEQ(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldTimeoutSecs, v))
}

// TimeoutSecsNEQ applies the NEQ predicate on the "timeout_secs" field.
func TimeoutSecsNEQ(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldTimeoutSecs, v))
}

// TimeoutSecsIn applies the In predicate on the "timeout_secs" field.
func TimeoutSecsIn(vs ...int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldTimeoutSecs, vs...))
}

// TimeoutSecsNotIn applies the NotIn predicate on the "timeout_secs" field.
func TimeoutSecsNotIn(vs ...int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldTimeoutSecs, vs...))
}

// TimeoutSecsGT applies the GT predicate on the "timeout_secs" field.
func TimeoutSecsGT(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldTimeoutSecs, v))
}

// TimeoutSecsGTE applies the GTE predicate on the "timeout_secs" field.
func TimeoutSecsGTE(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldTimeoutSecs, v))
}

// TimeoutSecsLT applies the LT predicate on the "timeout_secs" field.
func TimeoutSecsLT(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldTimeoutSecs, v))
}

// TimeoutSecsLTE applies the LTE predicate on the "timeout_secs" field.
func TimeoutSecsLTE(v int) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldTimeoutSecs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WorkerJob {
	return predicate.WorkerJob(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WorkerJob) predicate.WorkerJob {
	return predicate.WorkerJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WorkerJob) predicate.WorkerJob {
	return predicate.WorkerJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WorkerJob) predicate.WorkerJob {
	return predicate.WorkerJob(sql.NotPredicates(p))
}
