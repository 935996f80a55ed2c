// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmlet/swarmlet/ent/queueitem"
)

// QueueItemCreate is the builder for creating a QueueItem entity.
type QueueItemCreate struct {
	config
	mutation *QueueItemMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *QueueItemCreate) SetJobID(v string) *QueueItemCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetScheduledFor sets the "scheduled_for" field.
func (_c *QueueItemCreate) SetScheduledFor(v time.Time) *QueueItemCreate {
	_c.mutation.SetScheduledFor(v)
	return _c
}

// SetDedupeKey sets the "dedupe_key" field.
func (_c *QueueItemCreate) SetDedupeKey(v string) *QueueItemCreate {
	_c.mutation.SetDedupeKey(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *QueueItemCreate) SetStatus(v string) *QueueItemCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableStatus(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *QueueItemCreate) SetAttempts(v int) *QueueItemCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableAttempts(v *int) *QueueItemCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetMaxAttempts sets the "max_attempts" field.
func (_c *QueueItemCreate) SetMaxAttempts(v int) *QueueItemCreate {
	_c.mutation.SetMaxAttempts(v)
	return _c
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableMaxAttempts(v *int) *QueueItemCreate {
	if v != nil {
		_c.SetMaxAttempts(*v)
	}
	return _c
}

// SetLeaseUntil sets the "lease_until" field.
func (_c *QueueItemCreate) SetLeaseUntil(v time.Time) *QueueItemCreate {
	_c.mutation.SetLeaseUntil(v)
	return _c
}

// SetNillableLeaseUntil sets the "lease_until" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableLeaseUntil(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetLeaseUntil(*v)
	}
	return _c
}

// SetWorkerOwner sets the "worker_owner" field.
func (_c *QueueItemCreate) SetWorkerOwner(v string) *QueueItemCreate {
	_c.mutation.SetWorkerOwner(v)
	return _c
}

// SetNillableWorkerOwner sets the "worker_owner" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableWorkerOwner(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetWorkerOwner(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *QueueItemCreate) SetHeartbeatAt(v time.Time) *QueueItemCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableHeartbeatAt(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetLastError sets the "last_error" field.
func (_c *QueueItemCreate) SetLastError(v string) *QueueItemCreate {
	_c.mutation.SetLastError(v)
	return _c
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableLastError(v *string) *QueueItemCreate {
	if v != nil {
		_c.SetLastError(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *QueueItemCreate) SetCreatedAt(v time.Time) *QueueItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableCreatedAt(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *QueueItemCreate) SetFinishedAt(v time.Time) *QueueItemCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *QueueItemCreate) SetNillableFinishedAt(v *time.Time) *QueueItemCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *QueueItemCreate) SetID(v int64) *QueueItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the QueueItemMutation object of the builder.
func (_c *QueueItemCreate) Mutation() *QueueItemMutation {
	return _c.mutation
}

// Save creates the QueueItem in the database.
func (_c *QueueItemCreate) Save(ctx context.Context) (*QueueItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QueueItemCreate) SaveX(ctx context.Context) *QueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QueueItemCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := queueitem.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := queueitem.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		v := queueitem.DefaultMaxAttempts
		_c.mutation.SetMaxAttempts(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := queueitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QueueItemCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "QueueItem.job_id"`)}
	}
	if _, ok := _c.mutation.ScheduledFor(); !ok {
		return &ValidationError{Name: "scheduled_for", err: errors.New(`ent: missing required field "QueueItem.scheduled_for"`)}
	}
	if _, ok := _c.mutation.DedupeKey(); !ok {
		return &ValidationError{Name: "dedupe_key", err: errors.New(`ent: missing required field "QueueItem.dedupe_key"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "QueueItem.status"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "QueueItem.attempts"`)}
	}
	if _, ok := _c.mutation.MaxAttempts(); !ok {
		return &ValidationError{Name: "max_attempts", err: errors.New(`ent: missing required field "QueueItem.max_attempts"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "QueueItem.created_at"`)}
	}
	return nil
}

func (_c *QueueItemCreate) sqlSave(ctx context.Context) (*QueueItem, error) {
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
	if _spec.ID.Value != _node.ID {
		id := _spec.ID.Value.(int64)
		_node.ID = int64(id)
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *QueueItemCreate) createSpec() (*QueueItem, *sqlgraph.CreateSpec) {
	var (
		_node = &QueueItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(queueitem.Table, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeInt64))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.JobID(); ok {
		_spec.SetField(queueitem.FieldJobID, field.TypeString, value)
		_node.JobID = value
	}
	if value, ok := _c.mutation.ScheduledFor(); ok {
		_spec.SetField(queueitem.FieldScheduledFor, field.TypeTime, value)
		_node.ScheduledFor = value
	}
	if value, ok := _c.mutation.DedupeKey(); ok {
		_spec.SetField(queueitem.FieldDedupeKey, field.TypeString, value)
		_node.DedupeKey = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.MaxAttempts(); ok {
		_spec.SetField(queueitem.FieldMaxAttempts, field.TypeInt, value)
		_node.MaxAttempts = value
	}
	if value, ok := _c.mutation.LeaseUntil(); ok {
		_spec.SetField(queueitem.FieldLeaseUntil, field.TypeTime, value)
		_node.LeaseUntil = &value
	}
	if value, ok := _c.mutation.WorkerOwner(); ok {
		_spec.SetField(queueitem.FieldWorkerOwner, field.TypeString, value)
		_node.WorkerOwner = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(queueitem.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.LastError(); ok {
		_spec.SetField(queueitem.FieldLastError, field.TypeString, value)
		_node.LastError = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(queueitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(queueitem.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = &value
	}
	return _node, _spec
}

// QueueItemCreateBulk is the builder for creating many QueueItem entities in bulk.
type QueueItemCreateBulk struct {
	config
	err      error
	builders []*QueueItemCreate
}

// Save creates the QueueItem entities in the database.
func (_c *QueueItemCreateBulk) Save(ctx context.Context) ([]*QueueItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QueueItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QueueItemMutation)
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
				if specs[i].ID.Value != nil && nodes[i].ID == 0 {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
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
func (_c *QueueItemCreateBulk) SaveX(ctx context.Context) []*QueueItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QueueItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QueueItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
