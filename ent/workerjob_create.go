// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmlet/swarmlet/ent/workerjob"
)

// WorkerJobCreate is the builder for creating a WorkerJob entity.
type WorkerJobCreate struct {
	config
	mutation *WorkerJobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *WorkerJobCreate) SetOwnerID(v string) *WorkerJobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetSupervisorRunID sets the "supervisor_run_id" field.
func (_c *WorkerJobCreate) SetSupervisorRunID(v string) *WorkerJobCreate {
	_c.mutation.SetSupervisorRunID(v)
	return _c
}

// SetToolCallID sets the "tool_call_id" field.
func (_c *WorkerJobCreate) SetToolCallID(v string) *WorkerJobCreate {
	_c.mutation.SetToolCallID(v)
	return _c
}

// SetTask sets the "task" field.
func (_c *WorkerJobCreate) SetTask(v string) *WorkerJobCreate {
	_c.mutation.SetTask(v)
	return _c
}

// SetCommand sets the "command" field.
func (_c *WorkerJobCreate) SetCommand(v string) *WorkerJobCreate {
	_c.mutation.SetCommand(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *WorkerJobCreate) SetStatus(v workerjob.Status) *WorkerJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableStatus(v *workerjob.Status) *WorkerJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRunnerID sets the "runner_id" field.
func (_c *WorkerJobCreate) SetRunnerID(v string) *WorkerJobCreate {
	_c.mutation.SetRunnerID(v)
	return _c
}

// SetNillableRunnerID sets the "runner_id" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableRunnerID(v *string) *WorkerJobCreate {
	if v != nil {
		_c.SetRunnerID(*v)
	}
	return _c
}

// SetClaimedAt sets the "claimed_at" field.
func (_c *WorkerJobCreate) SetClaimedAt(v time.Time) *WorkerJobCreate {
	_c.mutation.SetClaimedAt(v)
	return _c
}

// SetNillableClaimedAt sets the "claimed_at" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableClaimedAt(v *time.Time) *WorkerJobCreate {
	if v != nil {
		_c.SetClaimedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *WorkerJobCreate) SetHeartbeatAt(v time.Time) *WorkerJobCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableHeartbeatAt(v *time.Time) *WorkerJobCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *WorkerJobCreate) SetStartedAt(v time.Time) *WorkerJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableStartedAt(v *time.Time) *WorkerJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *WorkerJobCreate) SetFinishedAt(v time.Time) *WorkerJobCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableFinishedAt(v *time.Time) *WorkerJobCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *WorkerJobCreate) SetResult(v string) *WorkerJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableResult(v *string) *WorkerJobCreate {
	if v != nil {
		_c.SetResult(*v)
	}
	return _c
}

// SetSummary sets the "summary" field.
func (_c *WorkerJobCreate) SetSummary(v string) *WorkerJobCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableSummary(v *string) *WorkerJobCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetError sets the "error" field.
func (_c *WorkerJobCreate) SetError(v string) *WorkerJobCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableError(v *string) *WorkerJobCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetExitCode sets the "exit_code" field.
func (_c *WorkerJobCreate) SetExitCode(v int) *WorkerJobCreate {
	_c.mutation.SetExitCode(v)
	return _c
}

// SetNillableExitCode sets the "exit_code" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableExitCode(v *int) *WorkerJobCreate {
	if v != nil {
		_c.SetExitCode(*v)
	}
	return _c
}

// SetTimeoutSecs sets the "timeout_secs" field.
func (_c *WorkerJobCreate) SetTimeoutSecs(v int) *WorkerJobCreate {
	_c.mutation.SetTimeoutSecs(v)
	return _c
}

// SetNillableTimeoutSecs sets the "timeout_secs" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableTimeoutSecs(v *int) *WorkerJobCreate {
	if v != nil {
		_c.SetTimeoutSecs(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WorkerJobCreate) SetCreatedAt(v time.Time) *WorkerJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WorkerJobCreate) SetNillableCreatedAt(v *time.Time) *WorkerJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WorkerJobCreate) SetID(v string) *WorkerJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the WorkerJobMutation object of the builder.
func (_c *WorkerJobCreate) Mutation() *WorkerJobMutation {
	return _c.mutation
}

// Save creates the WorkerJob in the database.
func (_c *WorkerJobCreate) Save(ctx context.Context) (*WorkerJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WorkerJobCreate) SaveX(ctx context.Context) *WorkerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkerJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkerJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WorkerJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := workerjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TimeoutSecs(); !ok {
		v := workerjob.DefaultTimeoutSecs
		_c.mutation.SetTimeoutSecs(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := workerjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WorkerJobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "WorkerJob.owner_id"`)}
	}
	if _, ok := _c.mutation.SupervisorRunID(); !ok {
		return &ValidationError{Name: "supervisor_run_id", err: errors.New(`ent: missing required field "WorkerJob.supervisor_run_id"`)}
	}
	if _, ok := _c.mutation.ToolCallID(); !ok {
		return &ValidationError{Name: "tool_call_id", err: errors.New(`ent: missing required field "WorkerJob.tool_call_id"`)}
	}
	if _, ok := _c.mutation.Task(); !ok {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required field "WorkerJob.task"`)}
	}
	if _, ok := _c.mutation.Command(); !ok {
		return &ValidationError{Name: "command", err: errors.New(`ent: missing required field "WorkerJob.command"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "WorkerJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := workerjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "WorkerJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutSecs(); !ok {
		return &ValidationError{Name: "timeout_secs", err: errors.New(`ent: missing required field "WorkerJob.timeout_secs"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "WorkerJob.created_at"`)}
	}
	return nil
}

func (_c *WorkerJobCreate) sqlSave(ctx context.Context) (*WorkerJob, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected WorkerJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *WorkerJobCreate) createSpec() (*WorkerJob, *sqlgraph.CreateSpec) {
	var (
		_node = &WorkerJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(workerjob.Table, sqlgraph.NewFieldSpec(workerjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(workerjob.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.SupervisorRunID(); ok {
		_spec.SetField(workerjob.FieldSupervisorRunID, field.TypeString, value)
		_node.SupervisorRunID = value
	}
	if value, ok := _c.mutation.ToolCallID(); ok {
		_spec.SetField(workerjob.FieldToolCallID, field.TypeString, value)
		_node.ToolCallID = value
	}
	if value, ok := _c.mutation.Task(); ok {
		_spec.SetField(workerjob.FieldTask, field.TypeString, value)
		_node.Task = value
	}
	if value, ok := _c.mutation.Command(); ok {
		_spec.SetField(workerjob.FieldCommand, field.TypeString, value)
		_node.Command = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(workerjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RunnerID(); ok {
		_spec.SetField(workerjob.FieldRunnerID, field.TypeString, value)
		_node.RunnerID = value
	}
	if value, ok := _c.mutation.ClaimedAt(); ok {
		_spec.SetField(workerjob.FieldClaimedAt, field.TypeTime, value)
		_node.ClaimedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(workerjob.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(workerjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(workerjob.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(workerjob.FieldResult, field.TypeString, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(workerjob.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(workerjob.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.ExitCode(); ok {
		_spec.SetField(workerjob.FieldExitCode, field.TypeInt, value)
		_node.ExitCode = &value
	}
	if value, ok := _c.mutation.TimeoutSecs(); ok {
		_spec.SetField(workerjob.FieldTimeoutSecs, field.TypeInt, value)
		_node.TimeoutSecs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(workerjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// WorkerJobCreateBulk is the builder for creating many WorkerJob entities in bulk.
type WorkerJobCreateBulk struct {
	config
	err      error
	builders []*WorkerJobCreate
}

// Save creates the WorkerJob entities in the database.
func (_c *WorkerJobCreateBulk) Save(ctx context.Context) ([]*WorkerJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*WorkerJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WorkerJobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *WorkerJobCreateBulk) SaveX(ctx context.Context) []*WorkerJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WorkerJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WorkerJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
