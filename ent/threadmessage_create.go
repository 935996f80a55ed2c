// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/swarmlet/swarmlet/ent/threadmessage"
)

// ThreadMessageCreate is the builder for creating a ThreadMessage entity.
type ThreadMessageCreate struct {
	config
	mutation *ThreadMessageMutation
	hooks    []Hook
}

// SetThreadID sets the "thread_id" field.
func (_c *ThreadMessageCreate) SetThreadID(v string) *ThreadMessageCreate {
	_c.mutation.SetThreadID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *ThreadMessageCreate) SetRole(v string) *ThreadMessageCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *ThreadMessageCreate) SetContent(v string) *ThreadMessageCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetToolCallID sets the "tool_call_id" field.
func (_c *ThreadMessageCreate) SetToolCallID(v string) *ThreadMessageCreate {
	_c.mutation.SetToolCallID(v)
	return _c
}

// SetNillableToolCallID sets the "tool_call_id" field if the given value is not nil.
func (_c *ThreadMessageCreate) SetNillableToolCallID(v *string) *ThreadMessageCreate {
	if v != nil {
		_c.SetToolCallID(*v)
	}
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ThreadMessageCreate) SetToolName(v string) *ThreadMessageCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetNillableToolName sets the "tool_name" field if the given value is not nil.
func (_c *ThreadMessageCreate) SetNillableToolName(v *string) *ThreadMessageCreate {
	if v != nil {
		_c.SetToolName(*v)
	}
	return _c
}

// SetToolCalls sets the "tool_calls" field.
func (_c *ThreadMessageCreate) SetToolCalls(v []map[string]interface{}) *ThreadMessageCreate {
	_c.mutation.SetToolCalls(v)
	return _c
}

// SetProcessed sets the "processed" field.
func (_c *ThreadMessageCreate) SetProcessed(v bool) *ThreadMessageCreate {
	_c.mutation.SetProcessed(v)
	return _c
}

// SetNillableProcessed sets the "processed" field if the given value is not nil.
func (_c *ThreadMessageCreate) SetNillableProcessed(v *bool) *ThreadMessageCreate {
	if v != nil {
		_c.SetProcessed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ThreadMessageCreate) SetCreatedAt(v time.Time) *ThreadMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ThreadMessageCreate) SetNillableCreatedAt(v *time.Time) *ThreadMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ThreadMessageCreate) SetID(v string) *ThreadMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ThreadMessageMutation object of the builder.
func (_c *ThreadMessageCreate) Mutation() *ThreadMessageMutation {
	return _c.mutation
}

// Save creates the ThreadMessage in the database.
func (_c *ThreadMessageCreate) Save(ctx context.Context) (*ThreadMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ThreadMessageCreate) SaveX(ctx context.Context) *ThreadMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ThreadMessageCreate) defaults() {
	if _, ok := _c.mutation.Processed(); !ok {
		v := threadmessage.DefaultProcessed
		_c.mutation.SetProcessed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := threadmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ThreadMessageCreate) check() error {
	if _, ok := _c.mutation.ThreadID(); !ok {
		return &ValidationError{Name: "thread_id", err: errors.New(`ent: missing required field "ThreadMessage.thread_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "ThreadMessage.role"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "ThreadMessage.content"`)}
	}
	if _, ok := _c.mutation.Processed(); !ok {
		return &ValidationError{Name: "processed", err: errors.New(`ent: missing required field "ThreadMessage.processed"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ThreadMessage.created_at"`)}
	}
	return nil
}

func (_c *ThreadMessageCreate) sqlSave(ctx context.Context) (*ThreadMessage, error) {
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
			return nil, fmt.Errorf("unexpected ThreadMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ThreadMessageCreate) createSpec() (*ThreadMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ThreadMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(threadmessage.Table, sqlgraph.NewFieldSpec(threadmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ThreadID(); ok {
		_spec.SetField(threadmessage.FieldThreadID, field.TypeString, value)
		_node.ThreadID = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(threadmessage.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(threadmessage.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ToolCallID(); ok {
		_spec.SetField(threadmessage.FieldToolCallID, field.TypeString, value)
		_node.ToolCallID = value
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(threadmessage.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.ToolCalls(); ok {
		_spec.SetField(threadmessage.FieldToolCalls, field.TypeJSON, value)
		_node.ToolCalls = value
	}
	if value, ok := _c.mutation.Processed(); ok {
		_spec.SetField(threadmessage.FieldProcessed, field.TypeBool, value)
		_node.Processed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(threadmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ThreadMessageCreateBulk is the builder for creating many ThreadMessage entities in bulk.
type ThreadMessageCreateBulk struct {
	config
	err      error
	builders []*ThreadMessageCreate
}

// Save creates the ThreadMessage entities in the database.
func (_c *ThreadMessageCreateBulk) Save(ctx context.Context) ([]*ThreadMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ThreadMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ThreadMessageMutation)
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
func (_c *ThreadMessageCreateBulk) SaveX(ctx context.Context) []*ThreadMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ThreadMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ThreadMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
