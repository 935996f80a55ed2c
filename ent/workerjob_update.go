// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmlet/swarmlet/ent/predicate"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

// WorkerJobUpdate is the builder for updating WorkerJob entities.
type WorkerJobUpdate struct {
	config
	hooks    []Hook
	mutation *WorkerJobMutation
}

// Where appends a list predicates to the WorkerJobUpdate builder.
func (_u *WorkerJobUpdate) Where(ps ...predicate.WorkerJob) *WorkerJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTask sets the "task" field.
func (_u *WorkerJobUpdate) SetTask(v string) *WorkerJobUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableTask(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *WorkerJobUpdate) SetCommand(v string) *WorkerJobUpdate {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableCommand(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkerJobUpdate) SetStatus(v workerjob.Status) *WorkerJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableStatus(v *workerjob.Status) *WorkerJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *WorkerJobUpdate) SetRunnerID(v string) *WorkerJobUpdate {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableRunnerID(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *WorkerJobUpdate) ClearRunnerID() *WorkerJobUpdate {
	_u.mutation.ClearRunnerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *WorkerJobUpdate) SetClaimedAt(v time.Time) *WorkerJobUpdate {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableClaimedAt(v *time.Time) *WorkerJobUpdate {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *WorkerJobUpdate) ClearClaimedAt() *WorkerJobUpdate {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *WorkerJobUpdate) SetHeartbeatAt(v time.Time) *WorkerJobUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableHeartbeatAt(v *time.Time) *WorkerJobUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *WorkerJobUpdate) ClearHeartbeatAt() *WorkerJobUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkerJobUpdate) SetStartedAt(v time.Time) *WorkerJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableStartedAt(v *time.Time) *WorkerJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkerJobUpdate) ClearStartedAt() *WorkerJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *WorkerJobUpdate) SetFinishedAt(v time.Time) *WorkerJobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableFinishedAt(v *time.Time) *WorkerJobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *WorkerJobUpdate) ClearFinishedAt() *WorkerJobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkerJobUpdate) SetResult(v string) *WorkerJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableResult(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkerJobUpdate) ClearResult() *WorkerJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkerJobUpdate) SetSummary(v string) *WorkerJobUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableSummary(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkerJobUpdate) ClearSummary() *WorkerJobUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *WorkerJobUpdate) SetError(v string) *WorkerJobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableError(v *string) *WorkerJobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *WorkerJobUpdate) ClearError() *WorkerJobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *WorkerJobUpdate) SetExitCode(v int) *WorkerJobUpdate {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableExitCode(v *int) *WorkerJobUpdate {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *WorkerJobUpdate) AddExitCode(v int) *WorkerJobUpdate {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *WorkerJobUpdate) ClearExitCode() *WorkerJobUpdate {
	_u.mutation.ClearExitCode()
	return _u
}

// SetTimeoutSecs sets the "timeout_secs" field.
func (_u *WorkerJobUpdate) SetTimeoutSecs(v int) *WorkerJobUpdate {
	_u.mutation.ResetTimeoutSecs()
	_u.mutation.SetTimeoutSecs(v)
	return _u
}

// SetNillableTimeoutSecs sets the "timeout_secs" field if the given value is not nil.
func (_u *WorkerJobUpdate) SetNillableTimeoutSecs(v *int) *WorkerJobUpdate {
	if v != nil {
		_u.SetTimeoutSecs(*v)
	}
	return _u
}

// AddTimeoutSecs adds value to the "timeout_secs" field.
func (_u *WorkerJobUpdate) AddTimeoutSecs(v int) *WorkerJobUpdate {
	_u.mutation.AddTimeoutSecs(v)
	return _u
}

// Mutation returns the WorkerJobMutation object of the builder.
func (_u *WorkerJobUpdate) Mutation() *WorkerJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WorkerJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkerJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WorkerJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkerJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkerJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkerJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workerjob.Table, workerjob.Columns, sqlgraph.NewFieldSpec(workerjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(workerjob.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(workerjob.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(workerjob.FieldRunnerID, field.TypeString, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(workerjob.FieldRunnerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(workerjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(workerjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(workerjob.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(workerjob.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workerjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workerjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(workerjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(workerjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workerjob.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workerjob.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workerjob.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workerjob.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(workerjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(workerjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(workerjob.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(workerjob.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(workerjob.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutSecs(); ok {
		_spec.SetField(workerjob.FieldTimeoutSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSecs(); ok {
		_spec.AddField(workerjob.FieldTimeoutSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WorkerJobUpdateOne is the builder for updating a single WorkerJob entity.
type WorkerJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WorkerJobMutation
}

// SetTask sets the "task" field.
func (_u *WorkerJobUpdateOne) SetTask(v string) *WorkerJobUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableTask(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetCommand sets the "command" field.
func (_u *WorkerJobUpdateOne) SetCommand(v string) *WorkerJobUpdateOne {
	_u.mutation.SetCommand(v)
	return _u
}

// SetNillableCommand sets the "command" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableCommand(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetCommand(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *WorkerJobUpdateOne) SetStatus(v workerjob.Status) *WorkerJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableStatus(v *workerjob.Status) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRunnerID sets the "runner_id" field.
func (_u *WorkerJobUpdateOne) SetRunnerID(v string) *WorkerJobUpdateOne {
	_u.mutation.SetRunnerID(v)
	return _u
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableRunnerID(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetRunnerID(*v)
	}
	return _u
}

// ClearRunnerID clears the value of the "runner_id" field.
func (_u *WorkerJobUpdateOne) ClearRunnerID() *WorkerJobUpdateOne {
	_u.mutation.ClearRunnerID()
	return _u
}

// SetClaimedAt sets the "claimed_at" field.
func (_u *WorkerJobUpdateOne) SetClaimedAt(v time.Time) *WorkerJobUpdateOne {
	_u.mutation.SetClaimedAt(v)
	return _u
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableClaimedAt(v *time.Time) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetClaimedAt(*v)
	}
	return _u
}

// ClearClaimedAt clears the value of the "claimed_at" field.
func (_u *WorkerJobUpdateOne) ClearClaimedAt() *WorkerJobUpdateOne {
	_u.mutation.ClearClaimedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *WorkerJobUpdateOne) SetHeartbeatAt(v time.Time) *WorkerJobUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableHeartbeatAt(v *time.Time) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *WorkerJobUpdateOne) ClearHeartbeatAt() *WorkerJobUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *WorkerJobUpdateOne) SetStartedAt(v time.Time) *WorkerJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableStartedAt(v *time.Time) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *WorkerJobUpdateOne) ClearStartedAt() *WorkerJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *WorkerJobUpdateOne) SetFinishedAt(v time.Time) *WorkerJobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableFinishedAt(v *time.Time) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *WorkerJobUpdateOne) ClearFinishedAt() *WorkerJobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetResult sets the "result" field.
func (_u *WorkerJobUpdateOne) SetResult(v string) *WorkerJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableResult(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *WorkerJobUpdateOne) ClearResult() *WorkerJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *WorkerJobUpdateOne) SetSummary(v string) *WorkerJobUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableSummary(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *WorkerJobUpdateOne) ClearSummary() *WorkerJobUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetError sets the "error" field.
func (_u *WorkerJobUpdateOne) SetError(v string) *WorkerJobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableError(v *string) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *WorkerJobUpdateOne) ClearError() *WorkerJobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetExitCode sets the "exit_code" field.
func (_u *WorkerJobUpdateOne) SetExitCode(v int) *WorkerJobUpdateOne {
	_u.mutation.ResetExitCode()
	_u.mutation.SetExitCode(v)
	return _u
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableExitCode(v *int) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetExitCode(*v)
	}
	return _u
}

// AddExitCode adds value to the "exit_code" field.
func (_u *WorkerJobUpdateOne) AddExitCode(v int) *WorkerJobUpdateOne {
	_u.mutation.AddExitCode(v)
	return _u
}

// ClearExitCode clears the value of the "exit_code" field.
func (_u *WorkerJobUpdateOne) ClearExitCode() *WorkerJobUpdateOne {
	_u.mutation.ClearExitCode()
	return _u
}

// SetTimeoutSecs sets the "timeout_secs" field.
func (_u *WorkerJobUpdateOne) SetTimeoutSecs(v int) *WorkerJobUpdateOne {
	_u.mutation.ResetTimeoutSecs()
	_u.mutation.SetTimeoutSecs(v)
	return _u
}

// SetNillableTimeoutSecs sets the "timeout_secs" field if the given value is not nil.
func (_u *WorkerJobUpdateOne) SetNillableTimeoutSecs(v *int) *WorkerJobUpdateOne {
	if v != nil {
		_u.SetTimeoutSecs(*v)
	}
	return _u
}

// AddTimeoutSecs adds value to the "timeout_secs" field.
func (_u *WorkerJobUpdateOne) AddTimeoutSecs(v int) *WorkerJobUpdateOne {
	_u.mutation.AddTimeoutSecs(v)
	return _u
}

// Mutation returns the WorkerJobMutation object of the builder.
func (_u *WorkerJobUpdateOne) Mutation() *WorkerJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the WorkerJobUpdate builder.
func (_u *WorkerJobUpdateOne) Where(ps ...predicate.WorkerJob) *WorkerJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WorkerJobUpdateOne) Select(field string, fields ...string) *WorkerJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated WorkerJob entity.
func (_u *WorkerJobUpdateOne) Save(ctx context.Context) (*WorkerJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WorkerJobUpdateOne) SaveX(ctx context.Context) *WorkerJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WorkerJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WorkerJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WorkerJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := workerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkerJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *WorkerJobUpdateOne) sqlSave(ctx context.Context) (_node *WorkerJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(workerjob.Table, workerjob.Columns, sqlgraph.NewFieldSpec(workerjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "WorkerJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, workerjob.FieldID)
		for _, f := range fields {
			if !workerjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != workerjob.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(workerjob.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.Command(); ok {
		_spec.SetField(workerjob.FieldCommand, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(workerjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RunnerID(); ok {
		_spec.SetField(workerjob.FieldRunnerID, field.TypeString, value)
	}
	if _u.mutation.RunnerIDCleared() {
		_spec.ClearField(workerjob.FieldRunnerID, field.TypeString)
	}
	if value, ok := _u.mutation.ClaimedAt(); ok {
		_spec.SetField(workerjob.FieldClaimedAt, field.TypeTime, value)
	}
	if _u.mutation.ClaimedAtCleared() {
		_spec.ClearField(workerjob.FieldClaimedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(workerjob.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(workerjob.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(workerjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(workerjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(workerjob.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(workerjob.FieldFinishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(workerjob.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(workerjob.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(workerjob.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(workerjob.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(workerjob.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(workerjob.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.ExitCode(); ok {
		_spec.SetField(workerjob.FieldExitCode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExitCode(); ok {
		_spec.AddField(workerjob.FieldExitCode, field.TypeInt, value)
	}
	if _u.mutation.ExitCodeCleared() {
		_spec.ClearField(workerjob.FieldExitCode, field.TypeInt)
	}
	if value, ok := _u.mutation.TimeoutSecs(); ok {
		_spec.SetField(workerjob.FieldTimeoutSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutSecs(); ok {
		_spec.AddField(workerjob.FieldTimeoutSecs, field.TypeInt, value)
	}
	_node = &WorkerJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{workerjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
