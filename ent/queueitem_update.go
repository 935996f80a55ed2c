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
	"github.com/swarmlet/swarmlet/ent/queueitem"
)

// QueueItemUpdate is the builder for updating QueueItem entities.
type QueueItemUpdate struct {
	config
	hooks    []Hook
	mutation *QueueItemMutation
}

// Where appends a list predicates to the QueueItemUpdate builder.
func (_u *QueueItemUpdate) Where(ps ...predicate.QueueItem) *QueueItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *QueueItemUpdate) SetStatus(v string) *QueueItemUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableStatus(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueItemUpdate) SetAttempts(v int) *QueueItemUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableAttempts(v *int) *QueueItemUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueItemUpdate) AddAttempts(v int) *QueueItemUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueItemUpdate) SetMaxAttempts(v int) *QueueItemUpdate {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableMaxAttempts(v *int) *QueueItemUpdate {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueItemUpdate) AddMaxAttempts(v int) *QueueItemUpdate {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLeaseUntil sets the "lease_until" field.
func (_u *QueueItemUpdate) SetLeaseUntil(v time.Time) *QueueItemUpdate {
	_u.mutation.SetLeaseUntil(v)
	return _u
}

// SetNillableLeaseUntil sets the "lease_until" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableLeaseUntil(v *time.Time) *QueueItemUpdate {
	if v != nil {
		_u.SetLeaseUntil(*v)
	}
	return _u
}

// ClearLeaseUntil clears the value of the "lease_until" field.
func (_u *QueueItemUpdate) ClearLeaseUntil() *QueueItemUpdate {
	_u.mutation.ClearLeaseUntil()
	return _u
}

// SetWorkerOwner sets the "worker_owner" field.
func (_u *QueueItemUpdate) SetWorkerOwner(v string) *QueueItemUpdate {
	_u.mutation.SetWorkerOwner(v)
	return _u
}

// SetNillableWorkerOwner sets the "worker_owner" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableWorkerOwner(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetWorkerOwner(*v)
	}
	return _u
}

// ClearWorkerOwner clears the value of the "worker_owner" field.
func (_u *QueueItemUpdate) ClearWorkerOwner() *QueueItemUpdate {
	_u.mutation.ClearWorkerOwner()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *QueueItemUpdate) SetHeartbeatAt(v time.Time) *QueueItemUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableHeartbeatAt(v *time.Time) *QueueItemUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *QueueItemUpdate) ClearHeartbeatAt() *QueueItemUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueItemUpdate) SetLastError(v string) *QueueItemUpdate {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableLastError(v *string) *QueueItemUpdate {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueItemUpdate) ClearLastError() *QueueItemUpdate {
	_u.mutation.ClearLastError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QueueItemUpdate) SetFinishedAt(v time.Time) *QueueItemUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QueueItemUpdate) SetNillableFinishedAt(v *time.Time) *QueueItemUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *QueueItemUpdate) ClearFinishedAt() *QueueItemUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the QueueItemMutation object of the builder.
func (_u *QueueItemUpdate) Mutation() *QueueItemMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QueueItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QueueItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(queueitem.Table, queueitem.Columns, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseUntil(); ok {
		_spec.SetField(queueitem.FieldLeaseUntil, field.TypeTime, value)
	}
	if _u.mutation.LeaseUntilCleared() {
		_spec.ClearField(queueitem.FieldLeaseUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerOwner(); ok {
		_spec.SetField(queueitem.FieldWorkerOwner, field.TypeString, value)
	}
	if _u.mutation.WorkerOwnerCleared() {
		_spec.ClearField(queueitem.FieldWorkerOwner, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(queueitem.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(queueitem.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(queueitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(queueitem.FieldFinishedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QueueItemUpdateOne is the builder for updating a single QueueItem entity.
type QueueItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QueueItemMutation
}

// SetStatus sets the "status" field.
func (_u *QueueItemUpdateOne) SetStatus(v string) *QueueItemUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableStatus(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *QueueItemUpdateOne) SetAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableAttempts(v *int) *QueueItemUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *QueueItemUpdateOne) AddAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetMaxAttempts sets the "max_attempts" field.
func (_u *QueueItemUpdateOne) SetMaxAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.ResetMaxAttempts()
	_u.mutation.SetMaxAttempts(v)
	return _u
}

// SetNillableMaxAttempts sets the "max_attempts" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableMaxAttempts(v *int) *QueueItemUpdateOne {
	if v != nil {
		_u.SetMaxAttempts(*v)
	}
	return _u
}

// AddMaxAttempts adds value to the "max_attempts" field.
func (_u *QueueItemUpdateOne) AddMaxAttempts(v int) *QueueItemUpdateOne {
	_u.mutation.AddMaxAttempts(v)
	return _u
}

// SetLeaseUntil sets the "lease_until" field.
func (_u *QueueItemUpdateOne) SetLeaseUntil(v time.Time) *QueueItemUpdateOne {
	_u.mutation.SetLeaseUntil(v)
	return _u
}

// SetNillableLeaseUntil sets the "lease_until" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableLeaseUntil(v *time.Time) *QueueItemUpdateOne {
	if v != nil {
		_u.SetLeaseUntil(*v)
	}
	return _u
}

// ClearLeaseUntil clears the value of the "lease_until" field.
func (_u *QueueItemUpdateOne) ClearLeaseUntil() *QueueItemUpdateOne {
	_u.mutation.ClearLeaseUntil()
	return _u
}

// SetWorkerOwner sets the "worker_owner" field.
func (_u *QueueItemUpdateOne) SetWorkerOwner(v string) *QueueItemUpdateOne {
	_u.mutation.SetWorkerOwner(v)
	return _u
}

// SetNillableWorkerOwner sets the "worker_owner" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableWorkerOwner(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetWorkerOwner(*v)
	}
	return _u
}

// ClearWorkerOwner clears the value of the "worker_owner" field.
func (_u *QueueItemUpdateOne) ClearWorkerOwner() *QueueItemUpdateOne {
	_u.mutation.ClearWorkerOwner()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *QueueItemUpdateOne) SetHeartbeatAt(v time.Time) *QueueItemUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableHeartbeatAt(v *time.Time) *QueueItemUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *QueueItemUpdateOne) ClearHeartbeatAt() *QueueItemUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetLastError sets the "last_error" field.
func (_u *QueueItemUpdateOne) SetLastError(v string) *QueueItemUpdateOne {
	_u.mutation.SetLastError(v)
	return _u
}

// SetNillableLastError sets the "last_error" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableLastError(v *string) *QueueItemUpdateOne {
	if v != nil {
		_u.SetLastError(*v)
	}
	return _u
}

// ClearLastError clears the value of the "last_error" field.
func (_u *QueueItemUpdateOne) ClearLastError() *QueueItemUpdateOne {
	_u.mutation.ClearLastError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *QueueItemUpdateOne) SetFinishedAt(v time.Time) *QueueItemUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *QueueItemUpdateOne) SetNillableFinishedAt(v *time.Time) *QueueItemUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *QueueItemUpdateOne) ClearFinishedAt() *QueueItemUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// Mutation returns the QueueItemMutation object of the builder.
func (_u *QueueItemUpdateOne) Mutation() *QueueItemMutation {
	return _u.mutation
}

// Where appends a list predicates to the QueueItemUpdate builder.
func (_u *QueueItemUpdateOne) Where(ps ...predicate.QueueItem) *QueueItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QueueItemUpdateOne) Select(field string, fields ...string) *QueueItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QueueItem entity.
func (_u *QueueItemUpdateOne) Save(ctx context.Context) (*QueueItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QueueItemUpdateOne) SaveX(ctx context.Context) *QueueItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QueueItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QueueItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *QueueItemUpdateOne) sqlSave(ctx context.Context) (_node *QueueItem, err error) {
	_spec := sqlgraph.NewUpdateSpec(queueitem.Table, queueitem.Columns, sqlgraph.NewFieldSpec(queueitem.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QueueItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, queueitem.FieldID)
		for _, f := range fields {
			if !queueitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != queueitem.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(queueitem.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(queueitem.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxAttempts(); ok {
		_spec.SetField(queueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxAttempts(); ok {
		_spec.AddField(queueitem.FieldMaxAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseUntil(); ok {
		_spec.SetField(queueitem.FieldLeaseUntil, field.TypeTime, value)
	}
	if _u.mutation.LeaseUntilCleared() {
		_spec.ClearField(queueitem.FieldLeaseUntil, field.TypeTime)
	}
	if value, ok := _u.mutation.WorkerOwner(); ok {
		_spec.SetField(queueitem.FieldWorkerOwner, field.TypeString, value)
	}
	if _u.mutation.WorkerOwnerCleared() {
		_spec.ClearField(queueitem.FieldWorkerOwner, field.TypeString)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(queueitem.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(queueitem.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LastError(); ok {
		_spec.SetField(queueitem.FieldLastError, field.TypeString, value)
	}
	if _u.mutation.LastErrorCleared() {
		_spec.ClearField(queueitem.FieldLastError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(queueitem.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(queueitem.FieldFinishedAt, field.TypeTime)
	}
	_node = &QueueItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{queueitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
