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
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ExtractedVariableUpdate is the builder for updating ExtractedVariable entities.
type ExtractedVariableUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractedVariableMutation
}

// Where appends a list predicates to the ExtractedVariableUpdate builder.
func (_u *ExtractedVariableUpdate) Where(ps ...predicate.ExtractedVariable) *ExtractedVariableUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetConversationID sets the "conversation_id" field.
func (_u *ExtractedVariableUpdate) SetConversationID(v int) *ExtractedVariableUpdate {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableConversationID(v *int) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ExtractedVariableUpdate) SetNodeID(v string) *ExtractedVariableUpdate {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableNodeID(v *string) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *ExtractedVariableUpdate) SetFlowID(v int) *ExtractedVariableUpdate {
	_u.mutation.ResetFlowID()
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableFlowID(v *int) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// AddFlowID adds value to the "flow_id" field.
func (_u *ExtractedVariableUpdate) AddFlowID(v int) *ExtractedVariableUpdate {
	_u.mutation.AddFlowID(v)
	return _u
}

// ClearFlowID clears the value of the "flow_id" field.
func (_u *ExtractedVariableUpdate) ClearFlowID() *ExtractedVariableUpdate {
	_u.mutation.ClearFlowID()
	return _u
}

// SetVariableName sets the "variable_name" field.
func (_u *ExtractedVariableUpdate) SetVariableName(v string) *ExtractedVariableUpdate {
	_u.mutation.SetVariableName(v)
	return _u
}

// SetNillableVariableName sets the "variable_name" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableVariableName(v *string) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetVariableName(*v)
	}
	return _u
}

// SetVariableValue sets the "variable_value" field.
func (_u *ExtractedVariableUpdate) SetVariableValue(v string) *ExtractedVariableUpdate {
	_u.mutation.SetVariableValue(v)
	return _u
}

// SetNillableVariableValue sets the "variable_value" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableVariableValue(v *string) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetVariableValue(*v)
	}
	return _u
}

// SetVariableType sets the "variable_type" field.
func (_u *ExtractedVariableUpdate) SetVariableType(v string) *ExtractedVariableUpdate {
	_u.mutation.SetVariableType(v)
	return _u
}

// SetNillableVariableType sets the "variable_type" field if the given value is not nil.
func (_u *ExtractedVariableUpdate) SetNillableVariableType(v *string) *ExtractedVariableUpdate {
	if v != nil {
		_u.SetVariableType(*v)
	}
	return _u
}

// ClearVariableType clears the value of the "variable_type" field.
func (_u *ExtractedVariableUpdate) ClearVariableType() *ExtractedVariableUpdate {
	_u.mutation.ClearVariableType()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedVariableUpdate) SetExtractedAt(v time.Time) *ExtractedVariableUpdate {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetConversation sets the "conversation" edge to the PlatformConversation entity.
func (_u *ExtractedVariableUpdate) SetConversation(v *PlatformConversation) *ExtractedVariableUpdate {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the ExtractedVariableMutation object of the builder.
func (_u *ExtractedVariableUpdate) Mutation() *ExtractedVariableMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the PlatformConversation entity.
func (_u *ExtractedVariableUpdate) ClearConversation() *ExtractedVariableUpdate {
	_u.mutation.ClearConversation()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractedVariableUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedVariableUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractedVariableUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedVariableUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedVariableUpdate) defaults() {
	if _, ok := _u.mutation.ExtractedAt(); !ok {
		v := extractedvariable.UpdateDefaultExtractedAt()
		_u.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedVariableUpdate) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedVariable.conversation"`)
	}
	return nil
}

func (_u *ExtractedVariableUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedvariable.Table, extractedvariable.Columns, sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(extractedvariable.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(extractedvariable.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlowID(); ok {
		_spec.AddField(extractedvariable.FieldFlowID, field.TypeInt, value)
	}
	if _u.mutation.FlowIDCleared() {
		_spec.ClearField(extractedvariable.FieldFlowID, field.TypeInt)
	}
	if value, ok := _u.mutation.VariableName(); ok {
		_spec.SetField(extractedvariable.FieldVariableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariableValue(); ok {
		_spec.SetField(extractedvariable.FieldVariableValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariableType(); ok {
		_spec.SetField(extractedvariable.FieldVariableType, field.TypeString, value)
	}
	if _u.mutation.VariableTypeCleared() {
		_spec.ClearField(extractedvariable.FieldVariableType, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedvariable.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractedVariableUpdateOne is the builder for updating a single ExtractedVariable entity.
type ExtractedVariableUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractedVariableMutation
}

// SetConversationID sets the "conversation_id" field.
func (_u *ExtractedVariableUpdateOne) SetConversationID(v int) *ExtractedVariableUpdateOne {
	_u.mutation.SetConversationID(v)
	return _u
}

// SetNillableConversationID sets the "conversation_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableConversationID(v *int) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetConversationID(*v)
	}
	return _u
}

// SetNodeID sets the "node_id" field.
func (_u *ExtractedVariableUpdateOne) SetNodeID(v string) *ExtractedVariableUpdateOne {
	_u.mutation.SetNodeID(v)
	return _u
}

// SetNillableNodeID sets the "node_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableNodeID(v *string) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetNodeID(*v)
	}
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *ExtractedVariableUpdateOne) SetFlowID(v int) *ExtractedVariableUpdateOne {
	_u.mutation.ResetFlowID()
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableFlowID(v *int) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// AddFlowID adds value to the "flow_id" field.
func (_u *ExtractedVariableUpdateOne) AddFlowID(v int) *ExtractedVariableUpdateOne {
	_u.mutation.AddFlowID(v)
	return _u
}

// ClearFlowID clears the value of the "flow_id" field.
func (_u *ExtractedVariableUpdateOne) ClearFlowID() *ExtractedVariableUpdateOne {
	_u.mutation.ClearFlowID()
	return _u
}

// SetVariableName sets the "variable_name" field.
func (_u *ExtractedVariableUpdateOne) SetVariableName(v string) *ExtractedVariableUpdateOne {
	_u.mutation.SetVariableName(v)
	return _u
}

// SetNillableVariableName sets the "variable_name" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableVariableName(v *string) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetVariableName(*v)
	}
	return _u
}

// SetVariableValue sets the "variable_value" field.
func (_u *ExtractedVariableUpdateOne) SetVariableValue(v string) *ExtractedVariableUpdateOne {
	_u.mutation.SetVariableValue(v)
	return _u
}

// SetNillableVariableValue sets the "variable_value" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableVariableValue(v *string) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetVariableValue(*v)
	}
	return _u
}

// SetVariableType sets the "variable_type" field.
func (_u *ExtractedVariableUpdateOne) SetVariableType(v string) *ExtractedVariableUpdateOne {
	_u.mutation.SetVariableType(v)
	return _u
}

// SetNillableVariableType sets the "variable_type" field if the given value is not nil.
func (_u *ExtractedVariableUpdateOne) SetNillableVariableType(v *string) *ExtractedVariableUpdateOne {
	if v != nil {
		_u.SetVariableType(*v)
	}
	return _u
}

// ClearVariableType clears the value of the "variable_type" field.
func (_u *ExtractedVariableUpdateOne) ClearVariableType() *ExtractedVariableUpdateOne {
	_u.mutation.ClearVariableType()
	return _u
}

// SetExtractedAt sets the "extracted_at" field.
func (_u *ExtractedVariableUpdateOne) SetExtractedAt(v time.Time) *ExtractedVariableUpdateOne {
	_u.mutation.SetExtractedAt(v)
	return _u
}

// SetConversation sets the "conversation" edge to the PlatformConversation entity.
func (_u *ExtractedVariableUpdateOne) SetConversation(v *PlatformConversation) *ExtractedVariableUpdateOne {
	return _u.SetConversationID(v.ID)
}

// Mutation returns the ExtractedVariableMutation object of the builder.
func (_u *ExtractedVariableUpdateOne) Mutation() *ExtractedVariableMutation {
	return _u.mutation
}

// ClearConversation clears the "conversation" edge to the PlatformConversation entity.
func (_u *ExtractedVariableUpdateOne) ClearConversation() *ExtractedVariableUpdateOne {
	_u.mutation.ClearConversation()
	return _u
}

// Where appends a list predicates to the ExtractedVariableUpdate builder.
func (_u *ExtractedVariableUpdateOne) Where(ps ...predicate.ExtractedVariable) *ExtractedVariableUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractedVariableUpdateOne) Select(field string, fields ...string) *ExtractedVariableUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractedVariable entity.
func (_u *ExtractedVariableUpdateOne) Save(ctx context.Context) (*ExtractedVariable, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractedVariableUpdateOne) SaveX(ctx context.Context) *ExtractedVariable {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractedVariableUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractedVariableUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractedVariableUpdateOne) defaults() {
	if _, ok := _u.mutation.ExtractedAt(); !ok {
		v := extractedvariable.UpdateDefaultExtractedAt()
		_u.mutation.SetExtractedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractedVariableUpdateOne) check() error {
	if _u.mutation.ConversationCleared() && len(_u.mutation.ConversationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractedVariable.conversation"`)
	}
	return nil
}

func (_u *ExtractedVariableUpdateOne) sqlSave(ctx context.Context) (_node *ExtractedVariable, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractedvariable.Table, extractedvariable.Columns, sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractedVariable.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractedvariable.FieldID)
		for _, f := range fields {
			if !extractedvariable.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractedvariable.FieldID {
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
	if value, ok := _u.mutation.NodeID(); ok {
		_spec.SetField(extractedvariable.FieldNodeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(extractedvariable.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlowID(); ok {
		_spec.AddField(extractedvariable.FieldFlowID, field.TypeInt, value)
	}
	if _u.mutation.FlowIDCleared() {
		_spec.ClearField(extractedvariable.FieldFlowID, field.TypeInt)
	}
	if value, ok := _u.mutation.VariableName(); ok {
		_spec.SetField(extractedvariable.FieldVariableName, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariableValue(); ok {
		_spec.SetField(extractedvariable.FieldVariableValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariableType(); ok {
		_spec.SetField(extractedvariable.FieldVariableType, field.TypeString, value)
	}
	if _u.mutation.VariableTypeCleared() {
		_spec.ClearField(extractedvariable.FieldVariableType, field.TypeString)
	}
	if value, ok := _u.mutation.ExtractedAt(); ok {
		_spec.SetField(extractedvariable.FieldExtractedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &ExtractedVariable{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractedvariable.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
