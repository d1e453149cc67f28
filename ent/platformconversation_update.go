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
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// PlatformConversationUpdate is the builder for updating PlatformConversation entities.
type PlatformConversationUpdate struct {
	config
	hooks    []Hook
	mutation *PlatformConversationMutation
}

// Where appends a list predicates to the PlatformConversationUpdate builder.
func (_u *PlatformConversationUpdate) Where(ps ...predicate.PlatformConversation) *PlatformConversationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBotConfigID sets the "bot_config_id" field.
func (_u *PlatformConversationUpdate) SetBotConfigID(v int) *PlatformConversationUpdate {
	_u.mutation.SetBotConfigID(v)
	return _u
}

// SetNillableBotConfigID sets the "bot_config_id" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillableBotConfigID(v *int) *PlatformConversationUpdate {
	if v != nil {
		_u.SetBotConfigID(*v)
	}
	return _u
}

// SetPlatformUserID sets the "platform_user_id" field.
func (_u *PlatformConversationUpdate) SetPlatformUserID(v string) *PlatformConversationUpdate {
	_u.mutation.SetPlatformUserID(v)
	return _u
}

// SetNillablePlatformUserID sets the "platform_user_id" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillablePlatformUserID(v *string) *PlatformConversationUpdate {
	if v != nil {
		_u.SetPlatformUserID(*v)
	}
	return _u
}

// SetPlatformUserName sets the "platform_user_name" field.
func (_u *PlatformConversationUpdate) SetPlatformUserName(v string) *PlatformConversationUpdate {
	_u.mutation.SetPlatformUserName(v)
	return _u
}

// SetNillablePlatformUserName sets the "platform_user_name" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillablePlatformUserName(v *string) *PlatformConversationUpdate {
	if v != nil {
		_u.SetPlatformUserName(*v)
	}
	return _u
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (_u *PlatformConversationUpdate) ClearPlatformUserName() *PlatformConversationUpdate {
	_u.mutation.ClearPlatformUserName()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlatformConversationUpdate) SetSessionID(v string) *PlatformConversationUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillableSessionID(v *string) *PlatformConversationUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlatformConversationUpdate) SetStatus(v platformconversation.Status) *PlatformConversationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillableStatus(v *platformconversation.Status) *PlatformConversationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *PlatformConversationUpdate) SetLastMessageAt(v time.Time) *PlatformConversationUpdate {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *PlatformConversationUpdate) SetNillableLastMessageAt(v *time.Time) *PlatformConversationUpdate {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// SetBotConfig sets the "bot_config" edge to the BotConfig entity.
func (_u *PlatformConversationUpdate) SetBotConfig(v *BotConfig) *PlatformConversationUpdate {
	return _u.SetBotConfigID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ConversationMessage entity by IDs.
func (_u *PlatformConversationUpdate) AddMessageIDs(ids ...int) *PlatformConversationUpdate {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ConversationMessage entity.
func (_u *PlatformConversationUpdate) AddMessages(v ...*ConversationMessage) *PlatformConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddVariableIDs adds the "variables" edge to the ExtractedVariable entity by IDs.
func (_u *PlatformConversationUpdate) AddVariableIDs(ids ...int) *PlatformConversationUpdate {
	_u.mutation.AddVariableIDs(ids...)
	return _u
}

// AddVariables adds the "variables" edges to the ExtractedVariable entity.
func (_u *PlatformConversationUpdate) AddVariables(v ...*ExtractedVariable) *PlatformConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariableIDs(ids...)
}

// Mutation returns the PlatformConversationMutation object of the builder.
func (_u *PlatformConversationUpdate) Mutation() *PlatformConversationMutation {
	return _u.mutation
}

// ClearBotConfig clears the "bot_config" edge to the BotConfig entity.
func (_u *PlatformConversationUpdate) ClearBotConfig() *PlatformConversationUpdate {
	_u.mutation.ClearBotConfig()
	return _u
}

// ClearMessages clears all "messages" edges to the ConversationMessage entity.
func (_u *PlatformConversationUpdate) ClearMessages() *PlatformConversationUpdate {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ConversationMessage entities by IDs.
func (_u *PlatformConversationUpdate) RemoveMessageIDs(ids ...int) *PlatformConversationUpdate {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ConversationMessage entities.
func (_u *PlatformConversationUpdate) RemoveMessages(v ...*ConversationMessage) *PlatformConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearVariables clears all "variables" edges to the ExtractedVariable entity.
func (_u *PlatformConversationUpdate) ClearVariables() *PlatformConversationUpdate {
	_u.mutation.ClearVariables()
	return _u
}

// RemoveVariableIDs removes the "variables" edge to ExtractedVariable entities by IDs.
func (_u *PlatformConversationUpdate) RemoveVariableIDs(ids ...int) *PlatformConversationUpdate {
	_u.mutation.RemoveVariableIDs(ids...)
	return _u
}

// RemoveVariables removes "variables" edges to ExtractedVariable entities.
func (_u *PlatformConversationUpdate) RemoveVariables(v ...*ExtractedVariable) *PlatformConversationUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariableIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PlatformConversationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformConversationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PlatformConversationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformConversationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformConversationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := platformconversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlatformConversation.status": %w`, err)}
		}
	}
	if _u.mutation.BotConfigCleared() && len(_u.mutation.BotConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlatformConversation.bot_config"`)
	}
	return nil
}

func (_u *PlatformConversationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformconversation.Table, platformconversation.Columns, sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlatformUserID(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformUserName(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserName, field.TypeString, value)
	}
	if _u.mutation.PlatformUserNameCleared() {
		_spec.ClearField(platformconversation.FieldPlatformUserName, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(platformconversation.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(platformconversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(platformconversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.BotConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   platformconversation.BotConfigTable,
			Columns: []string{platformconversation.BotConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   platformconversation.BotConfigTable,
			Columns: []string{platformconversation.BotConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariablesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariablesIDs(); len(nodes) > 0 && !_u.mutation.VariablesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PlatformConversationUpdateOne is the builder for updating a single PlatformConversation entity.
type PlatformConversationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PlatformConversationMutation
}

// SetBotConfigID sets the "bot_config_id" field.
func (_u *PlatformConversationUpdateOne) SetBotConfigID(v int) *PlatformConversationUpdateOne {
	_u.mutation.SetBotConfigID(v)
	return _u
}

// SetNillableBotConfigID sets the "bot_config_id" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillableBotConfigID(v *int) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetBotConfigID(*v)
	}
	return _u
}

// SetPlatformUserID sets the "platform_user_id" field.
func (_u *PlatformConversationUpdateOne) SetPlatformUserID(v string) *PlatformConversationUpdateOne {
	_u.mutation.SetPlatformUserID(v)
	return _u
}

// SetNillablePlatformUserID sets the "platform_user_id" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillablePlatformUserID(v *string) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetPlatformUserID(*v)
	}
	return _u
}

// SetPlatformUserName sets the "platform_user_name" field.
func (_u *PlatformConversationUpdateOne) SetPlatformUserName(v string) *PlatformConversationUpdateOne {
	_u.mutation.SetPlatformUserName(v)
	return _u
}

// SetNillablePlatformUserName sets the "platform_user_name" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillablePlatformUserName(v *string) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetPlatformUserName(*v)
	}
	return _u
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (_u *PlatformConversationUpdateOne) ClearPlatformUserName() *PlatformConversationUpdateOne {
	_u.mutation.ClearPlatformUserName()
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PlatformConversationUpdateOne) SetSessionID(v string) *PlatformConversationUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillableSessionID(v *string) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PlatformConversationUpdateOne) SetStatus(v platformconversation.Status) *PlatformConversationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillableStatus(v *platformconversation.Status) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetLastMessageAt sets the "last_message_at" field.
func (_u *PlatformConversationUpdateOne) SetLastMessageAt(v time.Time) *PlatformConversationUpdateOne {
	_u.mutation.SetLastMessageAt(v)
	return _u
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_u *PlatformConversationUpdateOne) SetNillableLastMessageAt(v *time.Time) *PlatformConversationUpdateOne {
	if v != nil {
		_u.SetLastMessageAt(*v)
	}
	return _u
}

// SetBotConfig sets the "bot_config" edge to the BotConfig entity.
func (_u *PlatformConversationUpdateOne) SetBotConfig(v *BotConfig) *PlatformConversationUpdateOne {
	return _u.SetBotConfigID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ConversationMessage entity by IDs.
func (_u *PlatformConversationUpdateOne) AddMessageIDs(ids ...int) *PlatformConversationUpdateOne {
	_u.mutation.AddMessageIDs(ids...)
	return _u
}

// AddMessages adds the "messages" edges to the ConversationMessage entity.
func (_u *PlatformConversationUpdateOne) AddMessages(v ...*ConversationMessage) *PlatformConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMessageIDs(ids...)
}

// AddVariableIDs adds the "variables" edge to the ExtractedVariable entity by IDs.
func (_u *PlatformConversationUpdateOne) AddVariableIDs(ids ...int) *PlatformConversationUpdateOne {
	_u.mutation.AddVariableIDs(ids...)
	return _u
}

// AddVariables adds the "variables" edges to the ExtractedVariable entity.
func (_u *PlatformConversationUpdateOne) AddVariables(v ...*ExtractedVariable) *PlatformConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddVariableIDs(ids...)
}

// Mutation returns the PlatformConversationMutation object of the builder.
func (_u *PlatformConversationUpdateOne) Mutation() *PlatformConversationMutation {
	return _u.mutation
}

// ClearBotConfig clears the "bot_config" edge to the BotConfig entity.
func (_u *PlatformConversationUpdateOne) ClearBotConfig() *PlatformConversationUpdateOne {
	_u.mutation.ClearBotConfig()
	return _u
}

// ClearMessages clears all "messages" edges to the ConversationMessage entity.
func (_u *PlatformConversationUpdateOne) ClearMessages() *PlatformConversationUpdateOne {
	_u.mutation.ClearMessages()
	return _u
}

// RemoveMessageIDs removes the "messages" edge to ConversationMessage entities by IDs.
func (_u *PlatformConversationUpdateOne) RemoveMessageIDs(ids ...int) *PlatformConversationUpdateOne {
	_u.mutation.RemoveMessageIDs(ids...)
	return _u
}

// RemoveMessages removes "messages" edges to ConversationMessage entities.
func (_u *PlatformConversationUpdateOne) RemoveMessages(v ...*ConversationMessage) *PlatformConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMessageIDs(ids...)
}

// ClearVariables clears all "variables" edges to the ExtractedVariable entity.
func (_u *PlatformConversationUpdateOne) ClearVariables() *PlatformConversationUpdateOne {
	_u.mutation.ClearVariables()
	return _u
}

// RemoveVariableIDs removes the "variables" edge to ExtractedVariable entities by IDs.
func (_u *PlatformConversationUpdateOne) RemoveVariableIDs(ids ...int) *PlatformConversationUpdateOne {
	_u.mutation.RemoveVariableIDs(ids...)
	return _u
}

// RemoveVariables removes "variables" edges to ExtractedVariable entities.
func (_u *PlatformConversationUpdateOne) RemoveVariables(v ...*ExtractedVariable) *PlatformConversationUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveVariableIDs(ids...)
}

// Where appends a list predicates to the PlatformConversationUpdate builder.
func (_u *PlatformConversationUpdateOne) Where(ps ...predicate.PlatformConversation) *PlatformConversationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PlatformConversationUpdateOne) Select(field string, fields ...string) *PlatformConversationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PlatformConversation entity.
func (_u *PlatformConversationUpdateOne) Save(ctx context.Context) (*PlatformConversation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PlatformConversationUpdateOne) SaveX(ctx context.Context) *PlatformConversation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PlatformConversationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PlatformConversationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PlatformConversationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := platformconversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlatformConversation.status": %w`, err)}
		}
	}
	if _u.mutation.BotConfigCleared() && len(_u.mutation.BotConfigIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PlatformConversation.bot_config"`)
	}
	return nil
}

func (_u *PlatformConversationUpdateOne) sqlSave(ctx context.Context) (_node *PlatformConversation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(platformconversation.Table, platformconversation.Columns, sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PlatformConversation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, platformconversation.FieldID)
		for _, f := range fields {
			if !platformconversation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != platformconversation.FieldID {
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
	if value, ok := _u.mutation.PlatformUserID(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlatformUserName(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserName, field.TypeString, value)
	}
	if _u.mutation.PlatformUserNameCleared() {
		_spec.ClearField(platformconversation.FieldPlatformUserName, field.TypeString)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(platformconversation.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(platformconversation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.LastMessageAt(); ok {
		_spec.SetField(platformconversation.FieldLastMessageAt, field.TypeTime, value)
	}
	if _u.mutation.BotConfigCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   platformconversation.BotConfigTable,
			Columns: []string{platformconversation.BotConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BotConfigIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   platformconversation.BotConfigTable,
			Columns: []string{platformconversation.BotConfigColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMessagesIDs(); len(nodes) > 0 && !_u.mutation.MessagesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MessagesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.MessagesTable,
			Columns: []string{platformconversation.MessagesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(conversationmessage.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.VariablesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedVariablesIDs(); len(nodes) > 0 && !_u.mutation.VariablesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.VariablesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   platformconversation.VariablesTable,
			Columns: []string{platformconversation.VariablesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractedvariable.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PlatformConversation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{platformconversation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
