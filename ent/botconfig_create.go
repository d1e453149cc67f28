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
)

// BotConfigCreate is the builder for creating a BotConfig entity.
type BotConfigCreate struct {
	config
	mutation *BotConfigMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPlatform sets the "platform" field.
func (_c *BotConfigCreate) SetPlatform(v botconfig.Platform) *BotConfigCreate {
	_c.mutation.SetPlatform(v)
	return _c
}

// SetBotName sets the "bot_name" field.
func (_c *BotConfigCreate) SetBotName(v string) *BotConfigCreate {
	_c.mutation.SetBotName(v)
	return _c
}

// SetNillableBotName sets the "bot_name" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableBotName(v *string) *BotConfigCreate {
	if v != nil {
		_c.SetBotName(*v)
	}
	return _c
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (_c *BotConfigCreate) SetBotTokenEncrypted(v string) *BotConfigCreate {
	_c.mutation.SetBotTokenEncrypted(v)
	return _c
}

// SetFlowID sets the "flow_id" field.
func (_c *BotConfigCreate) SetFlowID(v int) *BotConfigCreate {
	_c.mutation.SetFlowID(v)
	return _c
}

// SetOwnerID sets the "owner_id" field.
func (_c *BotConfigCreate) SetOwnerID(v string) *BotConfigCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetIsActive sets the "is_active" field.
func (_c *BotConfigCreate) SetIsActive(v bool) *BotConfigCreate {
	_c.mutation.SetIsActive(v)
	return _c
}

// SetNillableIsActive sets the "is_active" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableIsActive(v *bool) *BotConfigCreate {
	if v != nil {
		_c.SetIsActive(*v)
	}
	return _c
}

// SetWebhookURL sets the "webhook_url" field.
func (_c *BotConfigCreate) SetWebhookURL(v string) *BotConfigCreate {
	_c.mutation.SetWebhookURL(v)
	return _c
}

// SetNillableWebhookURL sets the "webhook_url" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableWebhookURL(v *string) *BotConfigCreate {
	if v != nil {
		_c.SetWebhookURL(*v)
	}
	return _c
}

// SetWebhookSecret sets the "webhook_secret" field.
func (_c *BotConfigCreate) SetWebhookSecret(v string) *BotConfigCreate {
	_c.mutation.SetWebhookSecret(v)
	return _c
}

// SetNillableWebhookSecret sets the "webhook_secret" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableWebhookSecret(v *string) *BotConfigCreate {
	if v != nil {
		_c.SetWebhookSecret(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BotConfigCreate) SetCreatedAt(v time.Time) *BotConfigCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableCreatedAt(v *time.Time) *BotConfigCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BotConfigCreate) SetUpdatedAt(v time.Time) *BotConfigCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BotConfigCreate) SetNillableUpdatedAt(v *time.Time) *BotConfigCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// AddConversationIDs adds the "conversations" edge to the PlatformConversation entity by IDs.
func (_c *BotConfigCreate) AddConversationIDs(ids ...int) *BotConfigCreate {
	_c.mutation.AddConversationIDs(ids...)
	return _c
}

// AddConversations adds the "conversations" edges to the PlatformConversation entity.
func (_c *BotConfigCreate) AddConversations(v ...*PlatformConversation) *BotConfigCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddConversationIDs(ids...)
}

// Mutation returns the BotConfigMutation object of the builder.
func (_c *BotConfigCreate) Mutation() *BotConfigMutation {
	return _c.mutation
}

// Save creates the BotConfig in the database.
func (_c *BotConfigCreate) Save(ctx context.Context) (*BotConfig, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BotConfigCreate) SaveX(ctx context.Context) *BotConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotConfigCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotConfigCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BotConfigCreate) defaults() {
	if _, ok := _c.mutation.IsActive(); !ok {
		v := botconfig.DefaultIsActive
		_c.mutation.SetIsActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := botconfig.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := botconfig.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BotConfigCreate) check() error {
	if _, ok := _c.mutation.Platform(); !ok {
		return &ValidationError{Name: "platform", err: errors.New(`ent: missing required field "BotConfig.platform"`)}
	}
	if v, ok := _c.mutation.Platform(); ok {
		if err := botconfig.PlatformValidator(v); err != nil {
			return &ValidationError{Name: "platform", err: fmt.Errorf(`ent: validator failed for field "BotConfig.platform": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BotTokenEncrypted(); !ok {
		return &ValidationError{Name: "bot_token_encrypted", err: errors.New(`ent: missing required field "BotConfig.bot_token_encrypted"`)}
	}
	if _, ok := _c.mutation.FlowID(); !ok {
		return &ValidationError{Name: "flow_id", err: errors.New(`ent: missing required field "BotConfig.flow_id"`)}
	}
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "BotConfig.owner_id"`)}
	}
	if _, ok := _c.mutation.IsActive(); !ok {
		return &ValidationError{Name: "is_active", err: errors.New(`ent: missing required field "BotConfig.is_active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BotConfig.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BotConfig.updated_at"`)}
	}
	return nil
}

func (_c *BotConfigCreate) sqlSave(ctx context.Context) (*BotConfig, error) {
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

func (_c *BotConfigCreate) createSpec() (*BotConfig, *sqlgraph.CreateSpec) {
	var (
		_node = &BotConfig{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(botconfig.Table, sqlgraph.NewFieldSpec(botconfig.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Platform(); ok {
		_spec.SetField(botconfig.FieldPlatform, field.TypeEnum, value)
		_node.Platform = value
	}
	if value, ok := _c.mutation.BotName(); ok {
		_spec.SetField(botconfig.FieldBotName, field.TypeString, value)
		_node.BotName = value
	}
	if value, ok := _c.mutation.BotTokenEncrypted(); ok {
		_spec.SetField(botconfig.FieldBotTokenEncrypted, field.TypeString, value)
		_node.BotTokenEncrypted = value
	}
	if value, ok := _c.mutation.FlowID(); ok {
		_spec.SetField(botconfig.FieldFlowID, field.TypeInt, value)
		_node.FlowID = value
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(botconfig.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.IsActive(); ok {
		_spec.SetField(botconfig.FieldIsActive, field.TypeBool, value)
		_node.IsActive = value
	}
	if value, ok := _c.mutation.WebhookURL(); ok {
		_spec.SetField(botconfig.FieldWebhookURL, field.TypeString, value)
		_node.WebhookURL = &value
	}
	if value, ok := _c.mutation.WebhookSecret(); ok {
		_spec.SetField(botconfig.FieldWebhookSecret, field.TypeString, value)
		_node.WebhookSecret = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(botconfig.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(botconfig.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ConversationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BotConfig.Create().
//		SetPlatform(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotConfigUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *BotConfigCreate) OnConflict(opts ...sql.ConflictOption) *BotConfigUpsertOne {
	_c.conflict = opts
	return &BotConfigUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotConfigCreate) OnConflictColumns(columns ...string) *BotConfigUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotConfigUpsertOne{
		create: _c,
	}
}

type (
	// BotConfigUpsertOne is the builder for "upsert"-ing
	//  one BotConfig node.
	BotConfigUpsertOne struct {
		create *BotConfigCreate
	}

	// BotConfigUpsert is the "OnConflict" setter.
	BotConfigUpsert struct {
		*sql.UpdateSet
	}
)

// SetPlatform sets the "platform" field.
func (u *BotConfigUpsert) SetPlatform(v botconfig.Platform) *BotConfigUpsert {
	u.Set(botconfig.FieldPlatform, v)
	return u
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdatePlatform() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldPlatform)
	return u
}

// SetBotName sets the "bot_name" field.
func (u *BotConfigUpsert) SetBotName(v string) *BotConfigUpsert {
	u.Set(botconfig.FieldBotName, v)
	return u
}

// UpdateBotName sets the "bot_name" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateBotName() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldBotName)
	return u
}

// ClearBotName clears the value of the "bot_name" field.
func (u *BotConfigUpsert) ClearBotName() *BotConfigUpsert {
	u.SetNull(botconfig.FieldBotName)
	return u
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (u *BotConfigUpsert) SetBotTokenEncrypted(v string) *BotConfigUpsert {
	u.Set(botconfig.FieldBotTokenEncrypted, v)
	return u
}

// UpdateBotTokenEncrypted sets the "bot_token_encrypted" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateBotTokenEncrypted() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldBotTokenEncrypted)
	return u
}

// SetFlowID sets the "flow_id" field.
func (u *BotConfigUpsert) SetFlowID(v int) *BotConfigUpsert {
	u.Set(botconfig.FieldFlowID, v)
	return u
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateFlowID() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldFlowID)
	return u
}

// AddFlowID adds v to the "flow_id" field.
func (u *BotConfigUpsert) AddFlowID(v int) *BotConfigUpsert {
	u.Add(botconfig.FieldFlowID, v)
	return u
}

// SetOwnerID sets the "owner_id" field.
func (u *BotConfigUpsert) SetOwnerID(v string) *BotConfigUpsert {
	u.Set(botconfig.FieldOwnerID, v)
	return u
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateOwnerID() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldOwnerID)
	return u
}

// SetIsActive sets the "is_active" field.
func (u *BotConfigUpsert) SetIsActive(v bool) *BotConfigUpsert {
	u.Set(botconfig.FieldIsActive, v)
	return u
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateIsActive() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldIsActive)
	return u
}

// SetWebhookURL sets the "webhook_url" field.
func (u *BotConfigUpsert) SetWebhookURL(v string) *BotConfigUpsert {
	u.Set(botconfig.FieldWebhookURL, v)
	return u
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateWebhookURL() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldWebhookURL)
	return u
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *BotConfigUpsert) ClearWebhookURL() *BotConfigUpsert {
	u.SetNull(botconfig.FieldWebhookURL)
	return u
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *BotConfigUpsert) SetWebhookSecret(v string) *BotConfigUpsert {
	u.Set(botconfig.FieldWebhookSecret, v)
	return u
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateWebhookSecret() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldWebhookSecret)
	return u
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *BotConfigUpsert) ClearWebhookSecret() *BotConfigUpsert {
	u.SetNull(botconfig.FieldWebhookSecret)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BotConfigUpsert) SetUpdatedAt(v time.Time) *BotConfigUpsert {
	u.Set(botconfig.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BotConfigUpsert) UpdateUpdatedAt() *BotConfigUpsert {
	u.SetExcluded(botconfig.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BotConfigUpsertOne) UpdateNewValues() *BotConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(botconfig.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BotConfigUpsertOne) Ignore() *BotConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotConfigUpsertOne) DoNothing() *BotConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotConfigCreate.OnConflict
// documentation for more info.
func (u *BotConfigUpsertOne) Update(set func(*BotConfigUpsert)) *BotConfigUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *BotConfigUpsertOne) SetPlatform(v botconfig.Platform) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdatePlatform() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdatePlatform()
	})
}

// SetBotName sets the "bot_name" field.
func (u *BotConfigUpsertOne) SetBotName(v string) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetBotName(v)
	})
}

// UpdateBotName sets the "bot_name" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateBotName() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateBotName()
	})
}

// ClearBotName clears the value of the "bot_name" field.
func (u *BotConfigUpsertOne) ClearBotName() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearBotName()
	})
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (u *BotConfigUpsertOne) SetBotTokenEncrypted(v string) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetBotTokenEncrypted(v)
	})
}

// UpdateBotTokenEncrypted sets the "bot_token_encrypted" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateBotTokenEncrypted() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateBotTokenEncrypted()
	})
}

// SetFlowID sets the "flow_id" field.
func (u *BotConfigUpsertOne) SetFlowID(v int) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetFlowID(v)
	})
}

// AddFlowID adds v to the "flow_id" field.
func (u *BotConfigUpsertOne) AddFlowID(v int) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.AddFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateFlowID() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateFlowID()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *BotConfigUpsertOne) SetOwnerID(v string) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateOwnerID() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateOwnerID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BotConfigUpsertOne) SetIsActive(v bool) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateIsActive() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateIsActive()
	})
}

// SetWebhookURL sets the "webhook_url" field.
func (u *BotConfigUpsertOne) SetWebhookURL(v string) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetWebhookURL(v)
	})
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateWebhookURL() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateWebhookURL()
	})
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *BotConfigUpsertOne) ClearWebhookURL() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearWebhookURL()
	})
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *BotConfigUpsertOne) SetWebhookSecret(v string) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetWebhookSecret(v)
	})
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateWebhookSecret() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateWebhookSecret()
	})
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *BotConfigUpsertOne) ClearWebhookSecret() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearWebhookSecret()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BotConfigUpsertOne) SetUpdatedAt(v time.Time) *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BotConfigUpsertOne) UpdateUpdatedAt() *BotConfigUpsertOne {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BotConfigUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotConfigCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotConfigUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BotConfigUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BotConfigUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BotConfigCreateBulk is the builder for creating many BotConfig entities in bulk.
type BotConfigCreateBulk struct {
	config
	err      error
	builders []*BotConfigCreate
	conflict []sql.ConflictOption
}

// Save creates the BotConfig entities in the database.
func (_c *BotConfigCreateBulk) Save(ctx context.Context) ([]*BotConfig, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BotConfig, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BotConfigMutation)
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
func (_c *BotConfigCreateBulk) SaveX(ctx context.Context) []*BotConfig {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BotConfigCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BotConfigCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.BotConfig.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BotConfigUpsert) {
//			SetPlatform(v+v).
//		}).
//		Exec(ctx)
func (_c *BotConfigCreateBulk) OnConflict(opts ...sql.ConflictOption) *BotConfigUpsertBulk {
	_c.conflict = opts
	return &BotConfigUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BotConfigCreateBulk) OnConflictColumns(columns ...string) *BotConfigUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BotConfigUpsertBulk{
		create: _c,
	}
}

// BotConfigUpsertBulk is the builder for "upsert"-ing
// a bulk of BotConfig nodes.
type BotConfigUpsertBulk struct {
	create *BotConfigCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BotConfigUpsertBulk) UpdateNewValues() *BotConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(botconfig.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.BotConfig.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BotConfigUpsertBulk) Ignore() *BotConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BotConfigUpsertBulk) DoNothing() *BotConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BotConfigCreateBulk.OnConflict
// documentation for more info.
func (u *BotConfigUpsertBulk) Update(set func(*BotConfigUpsert)) *BotConfigUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BotConfigUpsert{UpdateSet: update})
	}))
	return u
}

// SetPlatform sets the "platform" field.
func (u *BotConfigUpsertBulk) SetPlatform(v botconfig.Platform) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetPlatform(v)
	})
}

// UpdatePlatform sets the "platform" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdatePlatform() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdatePlatform()
	})
}

// SetBotName sets the "bot_name" field.
func (u *BotConfigUpsertBulk) SetBotName(v string) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetBotName(v)
	})
}

// UpdateBotName sets the "bot_name" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateBotName() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateBotName()
	})
}

// ClearBotName clears the value of the "bot_name" field.
func (u *BotConfigUpsertBulk) ClearBotName() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearBotName()
	})
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (u *BotConfigUpsertBulk) SetBotTokenEncrypted(v string) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetBotTokenEncrypted(v)
	})
}

// UpdateBotTokenEncrypted sets the "bot_token_encrypted" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateBotTokenEncrypted() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateBotTokenEncrypted()
	})
}

// SetFlowID sets the "flow_id" field.
func (u *BotConfigUpsertBulk) SetFlowID(v int) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetFlowID(v)
	})
}

// AddFlowID adds v to the "flow_id" field.
func (u *BotConfigUpsertBulk) AddFlowID(v int) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.AddFlowID(v)
	})
}

// UpdateFlowID sets the "flow_id" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateFlowID() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateFlowID()
	})
}

// SetOwnerID sets the "owner_id" field.
func (u *BotConfigUpsertBulk) SetOwnerID(v string) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetOwnerID(v)
	})
}

// UpdateOwnerID sets the "owner_id" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateOwnerID() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateOwnerID()
	})
}

// SetIsActive sets the "is_active" field.
func (u *BotConfigUpsertBulk) SetIsActive(v bool) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetIsActive(v)
	})
}

// UpdateIsActive sets the "is_active" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateIsActive() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateIsActive()
	})
}

// SetWebhookURL sets the "webhook_url" field.
func (u *BotConfigUpsertBulk) SetWebhookURL(v string) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetWebhookURL(v)
	})
}

// UpdateWebhookURL sets the "webhook_url" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateWebhookURL() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateWebhookURL()
	})
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (u *BotConfigUpsertBulk) ClearWebhookURL() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearWebhookURL()
	})
}

// SetWebhookSecret sets the "webhook_secret" field.
func (u *BotConfigUpsertBulk) SetWebhookSecret(v string) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetWebhookSecret(v)
	})
}

// UpdateWebhookSecret sets the "webhook_secret" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateWebhookSecret() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateWebhookSecret()
	})
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (u *BotConfigUpsertBulk) ClearWebhookSecret() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.ClearWebhookSecret()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *BotConfigUpsertBulk) SetUpdatedAt(v time.Time) *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *BotConfigUpsertBulk) UpdateUpdatedAt() *BotConfigUpsertBulk {
	return u.Update(func(s *BotConfigUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *BotConfigUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BotConfigCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BotConfigCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BotConfigUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
