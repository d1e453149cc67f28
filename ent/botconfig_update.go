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
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// BotConfigUpdate is the builder for updating BotConfig entities.
type BotConfigUpdate struct {
	config
	hooks    []Hook
	mutation *BotConfigMutation
}

// Where appends a list predicates to the BotConfigUpdate builder.
func (_u *BotConfigUpdate) Where(ps ...predicate.BotConfig) *BotConfigUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlatform sets the "platform" field.
func (_u *BotConfigUpdate) SetPlatform(v botconfig.Platform) *BotConfigUpdate {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillablePlatform(v *botconfig.Platform) *BotConfigUpdate {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetBotName sets the "bot_name" field.
func (_u *BotConfigUpdate) SetBotName(v string) *BotConfigUpdate {
	_u.mutation.SetBotName(v)
	return _u
}

// SetNillableBotName sets the "bot_name" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableBotName(v *string) *BotConfigUpdate {
	if v != nil {
		_u.SetBotName(*v)
	}
	return _u
}

// ClearBotName clears the value of the "bot_name" field.
func (_u *BotConfigUpdate) ClearBotName() *BotConfigUpdate {
	_u.mutation.ClearBotName()
	return _u
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (_u *BotConfigUpdate) SetBotTokenEncrypted(v string) *BotConfigUpdate {
	_u.mutation.SetBotTokenEncrypted(v)
	return _u
}

// SetNillableBotTokenEncrypted sets the "bot_token_encrypted" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableBotTokenEncrypted(v *string) *BotConfigUpdate {
	if v != nil {
		_u.SetBotTokenEncrypted(*v)
	}
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *BotConfigUpdate) SetFlowID(v int) *BotConfigUpdate {
	_u.mutation.ResetFlowID()
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableFlowID(v *int) *BotConfigUpdate {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// AddFlowID adds value to the "flow_id" field.
func (_u *BotConfigUpdate) AddFlowID(v int) *BotConfigUpdate {
	_u.mutation.AddFlowID(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BotConfigUpdate) SetOwnerID(v string) *BotConfigUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableOwnerID(v *string) *BotConfigUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BotConfigUpdate) SetIsActive(v bool) *BotConfigUpdate {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableIsActive(v *bool) *BotConfigUpdate {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *BotConfigUpdate) SetWebhookURL(v string) *BotConfigUpdate {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableWebhookURL(v *string) *BotConfigUpdate {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *BotConfigUpdate) ClearWebhookURL() *BotConfigUpdate {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *BotConfigUpdate) SetWebhookSecret(v string) *BotConfigUpdate {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *BotConfigUpdate) SetNillableWebhookSecret(v *string) *BotConfigUpdate {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *BotConfigUpdate) ClearWebhookSecret() *BotConfigUpdate {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotConfigUpdate) SetUpdatedAt(v time.Time) *BotConfigUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the PlatformConversation entity by IDs.
func (_u *BotConfigUpdate) AddConversationIDs(ids ...int) *BotConfigUpdate {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the PlatformConversation entity.
func (_u *BotConfigUpdate) AddConversations(v ...*PlatformConversation) *BotConfigUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the BotConfigMutation object of the builder.
func (_u *BotConfigUpdate) Mutation() *BotConfigMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the PlatformConversation entity.
func (_u *BotConfigUpdate) ClearConversations() *BotConfigUpdate {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to PlatformConversation entities by IDs.
func (_u *BotConfigUpdate) RemoveConversationIDs(ids ...int) *BotConfigUpdate {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to PlatformConversation entities.
func (_u *BotConfigUpdate) RemoveConversations(v ...*PlatformConversation) *BotConfigUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BotConfigUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotConfigUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BotConfigUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotConfigUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotConfigUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotConfigUpdate) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := botconfig.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "BotConfig.platform": %w`, err)}
		}
	}
	return nil
}

func (_u *BotConfigUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botconfig.Table, botconfig.Columns, sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(botconfig.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BotName(); ok {
		_spec.SetField(botconfig.FieldBotName, field.TypeString, value)
	}
	if _u.mutation.BotNameCleared() {
		_spec.ClearField(botconfig.FieldBotName, field.TypeString)
	}
	if value, ok := _u.mutation.BotTokenEncrypted(); ok {
		_spec.SetField(botconfig.FieldBotTokenEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(botconfig.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlowID(); ok {
		_spec.AddField(botconfig.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(botconfig.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(botconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(botconfig.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(botconfig.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(botconfig.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(botconfig.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
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
			err = &NotFoundError{botconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BotConfigUpdateOne is the builder for updating a single BotConfig entity.
type BotConfigUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BotConfigMutation
}

// SetPlatform sets the "platform" field.
func (_u *BotConfigUpdateOne) SetPlatform(v botconfig.Platform) *BotConfigUpdateOne {
	_u.mutation.SetPlatform(v)
	return _u
}

// SetNillablePlatform sets the "platform" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillablePlatform(v *botconfig.Platform) *BotConfigUpdateOne {
	if v != nil {
		_u.SetPlatform(*v)
	}
	return _u
}

// SetBotName sets the "bot_name" field.
func (_u *BotConfigUpdateOne) SetBotName(v string) *BotConfigUpdateOne {
	_u.mutation.SetBotName(v)
	return _u
}

// SetNillableBotName sets the "bot_name" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableBotName(v *string) *BotConfigUpdateOne {
	if v != nil {
		_u.SetBotName(*v)
	}
	return _u
}

// ClearBotName clears the value of the "bot_name" field.
func (_u *BotConfigUpdateOne) ClearBotName() *BotConfigUpdateOne {
	_u.mutation.ClearBotName()
	return _u
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (_u *BotConfigUpdateOne) SetBotTokenEncrypted(v string) *BotConfigUpdateOne {
	_u.mutation.SetBotTokenEncrypted(v)
	return _u
}

// SetNillableBotTokenEncrypted sets the "bot_token_encrypted" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableBotTokenEncrypted(v *string) *BotConfigUpdateOne {
	if v != nil {
		_u.SetBotTokenEncrypted(*v)
	}
	return _u
}

// SetFlowID sets the "flow_id" field.
func (_u *BotConfigUpdateOne) SetFlowID(v int) *BotConfigUpdateOne {
	_u.mutation.ResetFlowID()
	_u.mutation.SetFlowID(v)
	return _u
}

// SetNillableFlowID sets the "flow_id" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableFlowID(v *int) *BotConfigUpdateOne {
	if v != nil {
		_u.SetFlowID(*v)
	}
	return _u
}

// AddFlowID adds value to the "flow_id" field.
func (_u *BotConfigUpdateOne) AddFlowID(v int) *BotConfigUpdateOne {
	_u.mutation.AddFlowID(v)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *BotConfigUpdateOne) SetOwnerID(v string) *BotConfigUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableOwnerID(v *string) *BotConfigUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetIsActive sets the "is_active" field.
func (_u *BotConfigUpdateOne) SetIsActive(v bool) *BotConfigUpdateOne {
	_u.mutation.SetIsActive(v)
	return _u
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableIsActive(v *bool) *BotConfigUpdateOne {
	if v != nil {
		_u.SetIsActive(*v)
	}
	return _u
}

// SetWebhookURL sets the "webhook_url" field.
func (_u *BotConfigUpdateOne) SetWebhookURL(v string) *BotConfigUpdateOne {
	_u.mutation.SetWebhookURL(v)
	return _u
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableWebhookURL(v *string) *BotConfigUpdateOne {
	if v != nil {
		_u.SetWebhookURL(*v)
	}
	return _u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (_u *BotConfigUpdateOne) ClearWebhookURL() *BotConfigUpdateOne {
	_u.mutation.ClearWebhookURL()
	return _u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_u *BotConfigUpdateOne) SetWebhookSecret(v string) *BotConfigUpdateOne {
	_u.mutation.SetWebhookSecret(v)
	return _u
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_u *BotConfigUpdateOne) SetNillableWebhookSecret(v *string) *BotConfigUpdateOne {
	if v != nil {
		_u.SetWebhookSecret(*v)
	}
	return _u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (_u *BotConfigUpdateOne) ClearWebhookSecret() *BotConfigUpdateOne {
	_u.mutation.ClearWebhookSecret()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BotConfigUpdateOne) SetUpdatedAt(v time.Time) *BotConfigUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddConversationIDs adds the "conversations" edge to the PlatformConversation entity by IDs.
func (_u *BotConfigUpdateOne) AddConversationIDs(ids ...int) *BotConfigUpdateOne {
	_u.mutation.AddConversationIDs(ids...)
	return _u
}

// AddConversations adds the "conversations" edges to the PlatformConversation entity.
func (_u *BotConfigUpdateOne) AddConversations(v ...*PlatformConversation) *BotConfigUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddConversationIDs(ids...)
}

// Mutation returns the BotConfigMutation object of the builder.
func (_u *BotConfigUpdateOne) Mutation() *BotConfigMutation {
	return _u.mutation
}

// ClearConversations clears all "conversations" edges to the PlatformConversation entity.
func (_u *BotConfigUpdateOne) ClearConversations() *BotConfigUpdateOne {
	_u.mutation.ClearConversations()
	return _u
}

// RemoveConversationIDs removes the "conversations" edge to PlatformConversation entities by IDs.
func (_u *BotConfigUpdateOne) RemoveConversationIDs(ids ...int) *BotConfigUpdateOne {
	_u.mutation.RemoveConversationIDs(ids...)
	return _u
}

// RemoveConversations removes "conversations" edges to PlatformConversation entities.
func (_u *BotConfigUpdateOne) RemoveConversations(v ...*PlatformConversation) *BotConfigUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveConversationIDs(ids...)
}

// Where appends a list predicates to the BotConfigUpdate builder.
func (_u *BotConfigUpdateOne) Where(ps ...predicate.BotConfig) *BotConfigUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BotConfigUpdateOne) Select(field string, fields ...string) *BotConfigUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BotConfig entity.
func (_u *BotConfigUpdateOne) Save(ctx context.Context) (*BotConfig, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BotConfigUpdateOne) SaveX(ctx context.Context) *BotConfig {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BotConfigUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BotConfigUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BotConfigUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := botconfig.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BotConfigUpdateOne) check() error {
	if v, ok := _u.mutation.Platform(); ok {
		if err := botconfig.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "BotConfig.platform": %w`, err)}
		}
	}
	return nil
}

func (_u *BotConfigUpdateOne) sqlSave(ctx context.Context) (_node *BotConfig, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(botconfig.Table, botconfig.Columns, sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BotConfig.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, botconfig.FieldID)
		for _, f := range fields {
			if !botconfig.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != botconfig.FieldID {
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
	if value, ok := _u.mutation.Platform(); ok {
		_spec.SetField(botconfig.FieldPlatform, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BotName(); ok {
		_spec.SetField(botconfig.FieldBotName, field.TypeString, value)
	}
	if _u.mutation.BotNameCleared() {
		_spec.ClearField(botconfig.FieldBotName, field.TypeString)
	}
	if value, ok := _u.mutation.BotTokenEncrypted(); ok {
		_spec.SetField(botconfig.FieldBotTokenEncrypted, field.TypeString, value)
	}
	if value, ok := _u.mutation.FlowID(); ok {
		_spec.SetField(botconfig.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlowID(); ok {
		_spec.AddField(botconfig.FieldFlowID, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(botconfig.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IsActive(); ok {
		_spec.SetField(botconfig.FieldIsActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.WebhookURL(); ok {
		_spec.SetField(botconfig.FieldWebhookURL, field.TypeString, value)
	}
	if _u.mutation.WebhookURLCleared() {
		_spec.ClearField(botconfig.FieldWebhookURL, field.TypeString)
	}
	if value, ok := _u.mutation.WebhookSecret(); ok {
		_spec.SetField(botconfig.FieldWebhookSecret, field.TypeString, value)
	}
	if _u.mutation.WebhookSecretCleared() {
		_spec.ClearField(botconfig.FieldWebhookSecret, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(botconfig.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedConversationsIDs(); len(nodes) > 0 && !_u.mutation.ConversationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ConversationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   botconfig.ConversationsTable,
			Columns: []string{botconfig.ConversationsColumn},
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
	_node = &BotConfig{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{botconfig.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
