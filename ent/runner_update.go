// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/swarmlet/swarmlet/ent/predicate"
	"github.com/swarmlet/swarmlet/ent/runner"
)

// RunnerUpdate is the builder for updating Runner entities.
type RunnerUpdate struct {
	config
	hooks    []Hook
	mutation *RunnerMutation
}

// Where appends a list predicates to the RunnerUpdate builder.
func (_u *RunnerUpdate) Where(ps ...predicate.Runner) *RunnerUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *RunnerUpdate) SetName(v string) *RunnerUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableName(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (_u *RunnerUpdate) SetAuthSecretHash(v string) *RunnerUpdate {
	_u.mutation.SetAuthSecretHash(v)
	return _u
}

// SetNillableAuthSecretHash sets the "auth_secret_hash" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableAuthSecretHash(v *string) *RunnerUpdate {
	if v != nil {
		_u.SetAuthSecretHash(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RunnerUpdate) SetCapabilities(v []string) *RunnerUpdate {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RunnerUpdate) AppendCapabilities(v []string) *RunnerUpdate {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerUpdate) SetStatus(v runner.Status) *RunnerUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableStatus(v *runner.Status) *RunnerUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RunnerUpdate) SetLastSeenAt(v time.Time) *RunnerUpdate {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableLastSeenAt(v *time.Time) *RunnerUpdate {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *RunnerUpdate) ClearLastSeenAt() *RunnerUpdate {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunnerUpdate) SetMetadata(v map[string]interface{}) *RunnerUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunnerUpdate) ClearMetadata() *RunnerUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *RunnerUpdate) SetRevokedAt(v time.Time) *RunnerUpdate {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *RunnerUpdate) SetNillableRevokedAt(v *time.Time) *RunnerUpdate {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *RunnerUpdate) ClearRevokedAt() *RunnerUpdate {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the RunnerMutation object of the builder.
func (_u *RunnerUpdate) Mutation() *RunnerMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RunnerUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RunnerUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunnerUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runner.Table, runner.Columns, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretHash(); ok {
		_spec.SetField(runner.FieldAuthSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(runner.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runner.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(runner.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(runner.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runner.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(runner.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(runner.FieldRevokedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RunnerUpdateOne is the builder for updating a single Runner entity.
type RunnerUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RunnerMutation
}

// SetName sets the "name" field.
func (_u *RunnerUpdateOne) SetName(v string) *RunnerUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableName(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAuthSecretHash sets the "auth_secret_hash" field.
func (_u *RunnerUpdateOne) SetAuthSecretHash(v string) *RunnerUpdateOne {
	_u.mutation.SetAuthSecretHash(v)
	return _u
}

// SetNillableAuthSecretHash sets the "auth_secret_hash" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableAuthSecretHash(v *string) *RunnerUpdateOne {
	if v != nil {
		_u.SetAuthSecretHash(*v)
	}
	return _u
}

// SetCapabilities sets the "capabilities" field.
func (_u *RunnerUpdateOne) SetCapabilities(v []string) *RunnerUpdateOne {
	_u.mutation.SetCapabilities(v)
	return _u
}

// AppendCapabilities appends value to the "capabilities" field.
func (_u *RunnerUpdateOne) AppendCapabilities(v []string) *RunnerUpdateOne {
	_u.mutation.AppendCapabilities(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RunnerUpdateOne) SetStatus(v runner.Status) *RunnerUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableStatus(v *runner.Status) *RunnerUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_u *RunnerUpdateOne) SetLastSeenAt(v time.Time) *RunnerUpdateOne {
	_u.mutation.SetLastSeenAt(v)
	return _u
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableLastSeenAt(v *time.Time) *RunnerUpdateOne {
	if v != nil {
		_u.SetLastSeenAt(*v)
	}
	return _u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (_u *RunnerUpdateOne) ClearLastSeenAt() *RunnerUpdateOne {
	_u.mutation.ClearLastSeenAt()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *RunnerUpdateOne) SetMetadata(v map[string]interface{}) *RunnerUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *RunnerUpdateOne) ClearMetadata() *RunnerUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetRevokedAt sets the "revoked_at" field.
func (_u *RunnerUpdateOne) SetRevokedAt(v time.Time) *RunnerUpdateOne {
	_u.mutation.SetRevokedAt(v)
	return _u
}

// SetNillableRevokedAt sets the "revoked_at" field if the given value is not nil.
func (_u *RunnerUpdateOne) SetNillableRevokedAt(v *time.Time) *RunnerUpdateOne {
	if v != nil {
		_u.SetRevokedAt(*v)
	}
	return _u
}

// ClearRevokedAt clears the value of the "revoked_at" field.
func (_u *RunnerUpdateOne) ClearRevokedAt() *RunnerUpdateOne {
	_u.mutation.ClearRevokedAt()
	return _u
}

// Mutation returns the RunnerMutation object of the builder.
func (_u *RunnerUpdateOne) Mutation() *RunnerMutation {
	return _u.mutation
}

// Where appends a list predicates to the RunnerUpdate builder.
func (_u *RunnerUpdateOne) Where(ps ...predicate.Runner) *RunnerUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RunnerUpdateOne) Select(field string, fields ...string) *RunnerUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Runner entity.
func (_u *RunnerUpdateOne) Save(ctx context.Context) (*Runner, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RunnerUpdateOne) SaveX(ctx context.Context) *Runner {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RunnerUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RunnerUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RunnerUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := runner.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Runner.status": %w`, err)}
		}
	}
	return nil
}

func (_u *RunnerUpdateOne) sqlSave(ctx context.Context) (_node *Runner, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(runner.Table, runner.Columns, sqlgraph.NewFieldSpec(runner.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Runner.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, runner.FieldID)
		for _, f := range fields {
			if !runner.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != runner.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(runner.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.AuthSecretHash(); ok {
		_spec.SetField(runner.FieldAuthSecretHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.Capabilities(); ok {
		_spec.SetField(runner.FieldCapabilities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, runner.FieldCapabilities, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(runner.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastSeenAt(); ok {
		_spec.SetField(runner.FieldLastSeenAt, field.TypeTime, value)
	}
	if _u.mutation.LastSeenAtCleared() {
		_spec.ClearField(runner.FieldLastSeenAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(runner.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(runner.FieldMetadata, field.TypeJSON)
	}
	if value, ok := _u.mutation.RevokedAt(); ok {
		_spec.SetField(runner.FieldRevokedAt, field.TypeTime, value)
	}
	if _u.mutation.RevokedAtCleared() {
		_spec.ClearField(runner.FieldRevokedAt, field.TypeTime)
	}
	_node = &Runner{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{runner.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
