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
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
)

// ExtractedVariableCreate is the builder for creating a ExtractedVariable entity.
type ExtractedVariableCreate struct {
	config
	mutation *ExtractedVariableMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetConversationID sets the "conversation_id" field.
func (_c *ExtractedVariableCreate) SetConversationID(v int) *ExtractedVariableCreate {
	_c.mutation.SetConversationID(v)
	return _c
}

// SetNodeID sets the "node_id" field.
func (_c *ExtractedVariableCreate) SetNodeID(v string) *ExtractedVariableCreate {
	_c.mutation.SetNodeID(v)
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *ExtractedVariableCreate) SetFlowID(v int) *ExtractedVariableCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_c *ExtractedVariableCreate) SetNillableFlowID(v *int) *ExtractedVariableCreate {
	if v != nil {
		_c.SetFlowID(*v)
	}
	return _c
}

// SetVariableName sets the "variable_name" field.
func (_c *ExtractedVariableCreate) SetVariableName(v string) *ExtractedVariableCreate {
	_c.mutation.SetVariableName(v)
	return _c
}

// SetVariableValue sets the "variable_value" field.
func (_c *ExtractedVariableCreate) SetVariableValue(v string) *ExtractedVariableCreate {
	_c.mutation.SetVariableValue(v)
	return _c
}

// SetVariableType sets the "variable_type" field.
func (_c *ExtractedVariableCreate) SetVariableType(v string) *ExtractedVariableCreate {
	_c.mutation.SetVariableType(v)
	return _c
}

// SetNillableVariableType sets the "variable_type" field if the given value is not nil.
func (_c *ExtractedVariableCreate) SetNillableVariableType(v *string) *ExtractedVariableCreate {
	if v != nil {
		_c.SetVariableType(*v)
	}
	return _c
}

// SetExtractedAt sets the "extracted_at" field.
func (_c *ExtractedVariableCreate) SetExtractedAt(v time.Time) *ExtractedVariableCreate {
	_c.mutation.SetExtractedAt(v)
	return _c
}

// SetNillableExtractedAt sets the "extracted_at" field if the given value is not nil.
func (_c *ExtractedVariableCreate) SetNillableExtractedAt(v *time.Time) *ExtractedVariableCreate {
	if v != nil {
		_c.SetExtractedAt(*v)
	}
	return _c
}

// SetConversation sets the "conversation" edge to the PlatformConversation entity.
func (_c *ExtractedVariableCreate) SetConversation(v *PlatformConversation) *ExtractedVariableCreate {
	return _c.SetConversationID(v.ID)
}

// Mutation returns the ExtractedVariableMutation object of the builder.
func (_c *ExtractedVariableCreate) Mutation() *ExtractedVariableMutation {
	return _c.mutation
}

// Save creates the ExtractedVariable in the database.
func (_c *ExtractedVariableCreate) Save(ctx context.Context) (*ExtractedVariable, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractedVariableCreate) SaveX(ctx context.Context) *ExtractedVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedVariableCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedVariableCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractedVariableCreate) defaults() {
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		v := extractedvariable.DefaultExtractedAt()
		_c.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractedVariableCreate) check() error {
	if _, ok := _c.mutation.ConversationID(); !ok {
		return &ValidationError{Name: "conversation_id", err: errors.New(`ent: missing required field "ExtractedVariable.conversation_id"`)}
	}
	if _, ok := _c.mutation.NodeID(); !ok {
		return &ValidationError{Name: "node_id", err: errors.New(`ent: missing required field "ExtractedVariable.node_id"`)}
	}
	if _, ok := _c.mutation.VariableName(); !ok {
		return &ValidationError{Name: "variable_name", err: errors.New(`ent: missing required field "ExtractedVariable.variable_name"`)}
	}
	if _, ok := _c.mutation.VariableValue(); !ok {
		return &ValidationError{Name: "variable_value", err: errors.New(`ent: missing required field "ExtractedVariable.variable_value"`)}
	}
	if _, ok := _c.mutation.ExtractedAt(); !ok {
		return &ValidationError{Name: "extracted_at", err: errors.New(`ent: missing required field "ExtractedVariable.extracted_at"`)}
	}
	if len(_c.mutation.ConversationIDs()) == 0 {
		return &ValidationError{Name: "conversation", err: errors.New(`ent: missing required edge "ExtractedVariable.conversation"`)}
	}
	return nil
}

func (_c *ExtractedVariableCreate) sqlSave(ctx context.Context) (*ExtractedVariable, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractedVariableCreate) createSpec() (*ExtractedVariable, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractedVariable{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractedvariable.Table, sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.NodeID(); ok {
		_spec.SetField(extractedvariable.FieldNodeID, field.TypeString, value)
		_node.NodeID = value
	}
	if value, ok := _c.mutation.FlowID(); ok {
		_spec.SetField(extractedvariable.FieldFlowID, field.TypeInt, value)
		_node.FlowID = &value
	}
	if value, ok := _c.mutation.VariableName(); ok {
		_spec.SetField(extractedvariable.FieldVariableName, field.TypeString, value)
		_node.VariableName = value
	}
	if value, ok := _c.mutation.VariableValue(); ok {
		_spec.SetField(extractedvariable.FieldVariableValue, field.TypeString, value)
		_node.VariableValue = value
	}
	if value, ok := _c.mutation.VariableType(); ok {
		_spec.SetField(extractedvariable.FieldVariableType, field.TypeString, value)
		_node.VariableType = value
	}
	if value, ok := _c.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedvariable.FieldExtractedAt, field.TypeTime, value)
		_node.ExtractedAt = value
	}
	if nodes := _c.mutation.ConversationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractedvariable.ConversationTable,
			Columns: []string{extractedvariable.ConversationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ConversationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedVariable.Create().
//		SetConversationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedVariableUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedVariableCreate) OnConflict(opts ...sql.ConflictOption) *ExtractedVariableUpsertOne {
	_c.conflict = opts
	return &ExtractedVariableUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedVariableCreate) OnConflictColumns(columns ...string) *ExtractedVariableUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedVariableUpsertOne{
		create: _c,
	}
}

type (
	// ExtractedVariableUpsertOne is the builder for "upsert"-ing
	//  one ExtractedVariable node.
	ExtractedVariableUpsertOne struct {
		create *ExtractedVariableCreate
	}

	// ExtractedVariableUpsert is the "OnConflict" setter.
	ExtractedVariableUpsert struct {
		*sql.UpdateSet
	}
)

// SetConversationID sets the "conversation_id" field.
func (u *ExtractedVariableUpsert) SetConversationID(v int) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldConversationID, v)
	return u
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateConversationID() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldConversationID)
	return u
}

// SetNodeID sets the "node_id" field.
func (u *ExtractedVariableUpsert) SetNodeID(v string) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldNodeID, v)
	return u
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateNodeID() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldNodeID)
	return u
}

// SetFlowID sets the "flow_id" field.
func (u *ExtractedVariableUpsert) SetFlowID(v int) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldFlowID, v)
	return u
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateFlowID() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldFlowID)
	return u
}

// AddFlowID adds v to the "flow_id" field.
func (u *ExtractedVariableUpsert) AddFlowID(v int) *ExtractedVariableUpsert {
	u.Add(extractedvariable.FieldFlowID, v)
	return u
}

// ClearFlowID clears the value of the "flow_id" field.
func (u *ExtractedVariableUpsert) ClearFlowID() *ExtractedVariableUpsert {
	u.SetNull(extractedvariable.FieldFlowID)
	return u
}

// SetVariableName sets the "variable_name" field.
func (u *ExtractedVariableUpsert) SetVariableName(v string) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldVariableName, v)
	return u
}

// UpdateVariableName sets the "variable_name" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateVariableName() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldVariableName)
	return u
}

// SetVariableValue sets the "variable_value" field.
func (u *ExtractedVariableUpsert) SetVariableValue(v string) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldVariableValue, v)
	return u
}

// UpdateVariableValue sets the "variable_value" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateVariableValue() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldVariableValue)
	return u
}

// SetVariableType sets the "variable_type" field.
func (u *ExtractedVariableUpsert) SetVariableType(v string) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldVariableType, v)
	return u
}

// UpdateVariableType sets the "variable_type" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateVariableType() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldVariableType)
	return u
}

// ClearVariableType clears the value of the "variable_type" field.
func (u *ExtractedVariableUpsert) ClearVariableType() *ExtractedVariableUpsert {
	u.SetNull(extractedvariable.FieldVariableType)
	return u
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedVariableUpsert) SetExtractedAt(v time.Time) *ExtractedVariableUpsert {
	u.Set(extractedvariable.FieldExtractedAt, v)
	return u
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedVariableUpsert) UpdateExtractedAt() *ExtractedVariableUpsert {
	u.SetExcluded(extractedvariable.FieldExtractedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractedVariableUpsertOne) UpdateNewValues() *ExtractedVariableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ExtractedVariableUpsertOne) Ignore() *ExtractedVariableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedVariableUpsertOne) DoNothing() *ExtractedVariableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedVariableCreate.OnConflict
// documentation for more info.
func (u *ExtractedVariableUpsertOne) Update(set func(*ExtractedVariableUpsert)) *ExtractedVariableUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedVariableUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *ExtractedVariableUpsertOne) SetConversationID(v int) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateConversationID() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateConversationID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *ExtractedVariableUpsertOne) SetNodeID(v string) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateNodeID() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateNodeID()
	})
}

// SetFlowID sets the "flow_id" field.
func (u *ExtractedVariableUpsertOne) SetFlowID(v int) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetFlowID(v)
	})
}

// AddFlowID adds v to the "flow_id" field.
func (u *ExtractedVariableUpsertOne) AddFlowID(v int) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.AddFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateFlowID() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateFlowID()
	})
}

// ClearFlowID clears the value of the "flow_id" field.
func (u *ExtractedVariableUpsertOne) ClearFlowID() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.ClearFlowID()
	})
}

// SetVariableName sets the "variable_name" field.
func (u *ExtractedVariableUpsertOne) SetVariableName(v string) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableName(v)
	})
}

// UpdateVariableName sets the "variable_name" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateVariableName() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableName()
	})
}

// SetVariableValue sets the "variable_value" field.
func (u *ExtractedVariableUpsertOne) SetVariableValue(v string) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableValue(v)
	})
}

// UpdateVariableValue sets the "variable_value" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateVariableValue() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableValue()
	})
}

// SetVariableType sets the "variable_type" field.
func (u *ExtractedVariableUpsertOne) SetVariableType(v string) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableType(v)
	})
}

// UpdateVariableType sets the "variable_type" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateVariableType() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableType()
	})
}

// ClearVariableType clears the value of the "variable_type" field.
func (u *ExtractedVariableUpsertOne) ClearVariableType() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.ClearVariableType()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedVariableUpsertOne) SetExtractedAt(v time.Time) *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedVariableUpsertOne) UpdateExtractedAt() *ExtractedVariableUpsertOne {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractedVariableUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedVariableCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedVariableUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ExtractedVariableUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ExtractedVariableUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ExtractedVariableCreateBulk is the builder for creating many ExtractedVariable entities in bulk.
type ExtractedVariableCreateBulk struct {
	config
	err      error
	builders []*ExtractedVariableCreate
	conflict []sql.ConflictOption
}

// Save creates the ExtractedVariable entities in the database.
func (_c *ExtractedVariableCreateBulk) Save(ctx context.Context) ([]*ExtractedVariable, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractedVariable, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractedVariableMutation)
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
					spec.OnConflict = _c.conflict
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
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
func (_c *ExtractedVariableCreateBulk) SaveX(ctx context.Context) []*ExtractedVariable {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractedVariableCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractedVariableCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ExtractedVariable.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ExtractedVariableUpsert) {
//			SetConversationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ExtractedVariableCreateBulk) OnConflict(opts ...sql.ConflictOption) *ExtractedVariableUpsertBulk {
	_c.conflict = opts
	return &ExtractedVariableUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ExtractedVariableCreateBulk) OnConflictColumns(columns ...string) *ExtractedVariableUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ExtractedVariableUpsertBulk{
		create: _c,
	}
}

// ExtractedVariableUpsertBulk is the builder for "upsert"-ing
// a bulk of ExtractedVariable nodes.
type ExtractedVariableUpsertBulk struct {
	create *ExtractedVariableCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ExtractedVariableUpsertBulk) UpdateNewValues() *ExtractedVariableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ExtractedVariable.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ExtractedVariableUpsertBulk) Ignore() *ExtractedVariableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ExtractedVariableUpsertBulk) DoNothing() *ExtractedVariableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ExtractedVariableCreateBulk.OnConflict
// documentation for more info.
func (u *ExtractedVariableUpsertBulk) Update(set func(*ExtractedVariableUpsert)) *ExtractedVariableUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ExtractedVariableUpsert{UpdateSet: update})
	}))
	return u
}

// SetConversationID sets the "conversation_id" field.
func (u *ExtractedVariableUpsertBulk) SetConversationID(v int) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetConversationID(v)
	})
}

// UpdateConversationID sets the "conversation_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateConversationID() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateConversationID()
	})
}

// SetNodeID sets the "node_id" field.
func (u *ExtractedVariableUpsertBulk) SetNodeID(v string) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetNodeID(v)
	})
}

// UpdateNodeID sets the "node_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateNodeID() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateNodeID()
	})
}

// SetFlowID sets the "flow_id" field.
func (u *ExtractedVariableUpsertBulk) SetFlowID(v int) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetFlowID(v)
	})
}

// AddFlowID adds v to the "flow_id" field.
func (u *ExtractedVariableUpsertBulk) AddFlowID(v int) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.AddFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateFlowID() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateFlowID()
	})
}

// ClearFlowID clears the value of the "flow_id" field.
func (u *ExtractedVariableUpsertBulk) ClearFlowID() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.ClearFlowID()
	})
}

// SetVariableName sets the "variable_name" field.
func (u *ExtractedVariableUpsertBulk) SetVariableName(v string) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableName(v)
	})
}

// UpdateVariableName sets the "variable_name" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateVariableName() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableName()
	})
}

// SetVariableValue sets the "variable_value" field.
func (u *ExtractedVariableUpsertBulk) SetVariableValue(v string) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableValue(v)
	})
}

// UpdateVariableValue sets the "variable_value" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateVariableValue() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableValue()
	})
}

// SetVariableType sets the "variable_type" field.
func (u *ExtractedVariableUpsertBulk) SetVariableType(v string) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetVariableType(v)
	})
}

// UpdateVariableType sets the "variable_type" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateVariableType() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateVariableType()
	})
}

// ClearVariableType clears the value of the "variable_type" field.
func (u *ExtractedVariableUpsertBulk) ClearVariableType() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.ClearVariableType()
	})
}

// SetExtractedAt sets the "extracted_at" field.
func (u *ExtractedVariableUpsertBulk) SetExtractedAt(v time.Time) *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.SetExtractedAt(v)
	})
}

// UpdateExtractedAt sets the "extracted_at" field to the value that was provided on create.
func (u *ExtractedVariableUpsertBulk) UpdateExtractedAt() *ExtractedVariableUpsertBulk {
	return u.Update(func(s *ExtractedVariableUpsert) {
		s.UpdateExtractedAt()
	})
}

// Exec executes the query.
func (u *ExtractedVariableUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ExtractedVariableCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ExtractedVariableCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ExtractedVariableUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
