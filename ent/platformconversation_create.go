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
)

// PlatformConversationCreate is the builder for creating a PlatformConversation entity.
type PlatformConversationCreate struct {
	config
	mutation *PlatformConversationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetBotConfigID sets the "bot_config_id" field.
func (_c *PlatformConversationCreate) SetBotConfigID(v int) *PlatformConversationCreate {
	_c.mutation.SetBotConfigID(v)
	return _c
}

// SetPlatformUserID sets the "platform_user_id" field.
func (_c *PlatformConversationCreate) SetPlatformUserID(v string) *PlatformConversationCreate {
	_c.mutation.SetPlatformUserID(v)
	return _c
}

// SetPlatformUserName sets the "platform_user_name" field.
func (_c *PlatformConversationCreate) SetPlatformUserName(v string) *PlatformConversationCreate {
	_c.mutation.SetPlatformUserName(v)
	return _c
}

// SetNillablePlatformUserName sets the "platform_user_name" field if the given value is not nil.
func (_c *PlatformConversationCreate) SetNillablePlatformUserName(v *string) *PlatformConversationCreate {
	if v != nil {
		_c.SetPlatformUserName(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PlatformConversationCreate) SetSessionID(v string) *PlatformConversationCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *PlatformConversationCreate) SetStatus(v platformconversation.Status) *PlatformConversationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PlatformConversationCreate) SetNillableStatus(v *platformconversation.Status) *PlatformConversationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetLastMessageAt sets the "last_message_at" field.
func (_c *PlatformConversationCreate) SetLastMessageAt(v time.Time) *PlatformConversationCreate {
	_c.mutation.SetLastMessageAt(v)
	return _c
}

// SetNillableLastMessageAt sets the "last_message_at" field if the given value is not nil.
func (_c *PlatformConversationCreate) SetNillableLastMessageAt(v *time.Time) *PlatformConversationCreate {
	if v != nil {
		_c.SetLastMessageAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PlatformConversationCreate) SetCreatedAt(v time.Time) *PlatformConversationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PlatformConversationCreate) SetNillableCreatedAt(v *time.Time) *PlatformConversationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetBotConfig sets the "bot_config" edge to the BotConfig entity.
func (_c *PlatformConversationCreate) SetBotConfig(v *BotConfig) *PlatformConversationCreate {
	return _c.SetBotConfigID(v.ID)
}

// AddMessageIDs adds the "messages" edge to the ConversationMessage entity by IDs.
func (_c *PlatformConversationCreate) AddMessageIDs(ids ...int) *PlatformConversationCreate {
	_c.mutation.AddMessageIDs(ids...)
	return _c
}

// AddMessages adds the "messages" edges to the ConversationMessage entity.
func (_c *PlatformConversationCreate) AddMessages(v ...*ConversationMessage) *PlatformConversationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMessageIDs(ids...)
}

// AddVariableIDs adds the "variables" edge to the ExtractedVariable entity by IDs.
func (_c *PlatformConversationCreate) AddVariableIDs(ids ...int) *PlatformConversationCreate {
	_c.mutation.AddVariableIDs(ids...)
	return _c
}

// AddVariables adds the "variables" edges to the ExtractedVariable entity.
func (_c *PlatformConversationCreate) AddVariables(v ...*ExtractedVariable) *PlatformConversationCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddVariableIDs(ids...)
}

// Mutation returns the PlatformConversationMutation object of the builder.
func (_c *PlatformConversationCreate) Mutation() *PlatformConversationMutation {
	return _c.mutation
}

// Save creates the PlatformConversation in the database.
func (_c *PlatformConversationCreate) Save(ctx context.Context) (*PlatformConversation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PlatformConversationCreate) SaveX(ctx context.Context) *PlatformConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlatformConversationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlatformConversationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PlatformConversationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := platformconversation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.LastMessageAt(); !ok {
		v := platformconversation.DefaultLastMessageAt()
		_c.mutation.SetLastMessageAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := platformconversation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PlatformConversationCreate) check() error {
	if _, ok := _c.mutation.BotConfigID(); !ok {
		return &ValidationError{Name: "bot_config_id", err: errors.New(`ent: missing required field "PlatformConversation.bot_config_id"`)}
	}
	if _, ok := _c.mutation.PlatformUserID(); !ok {
		return &ValidationError{Name: "platform_user_id", err: errors.New(`ent: missing required field "PlatformConversation.platform_user_id"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "PlatformConversation.session_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PlatformConversation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := platformconversation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PlatformConversation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastMessageAt(); !ok {
		return &ValidationError{Name: "last_message_at", err: errors.New(`ent: missing required field "PlatformConversation.last_message_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PlatformConversation.created_at"`)}
	}
	if len(_c.mutation.BotConfigIDs()) == 0 {
		return &ValidationError{Name: "bot_config", err: errors.New(`ent: missing required edge "PlatformConversation.bot_config"`)}
	}
	return nil
}

func (_c *PlatformConversationCreate) sqlSave(ctx context.Context) (*PlatformConversation, error) {
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

func (_c *PlatformConversationCreate) createSpec() (*PlatformConversation, *sqlgraph.CreateSpec) {
	var (
		_node = &PlatformConversation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(platformconversation.Table, sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.PlatformUserID(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserID, field.TypeString, value)
		_node.PlatformUserID = value
	}
	if value, ok := _c.mutation.PlatformUserName(); ok {
		_spec.SetField(platformconversation.FieldPlatformUserName, field.TypeString, value)
		_node.PlatformUserName = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(platformconversation.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(platformconversation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.LastMessageAt(); ok {
		_spec.SetField(platformconversation.FieldLastMessageAt, field.TypeTime, value)
		_node.LastMessageAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(platformconversation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.BotConfigIDs(); len(nodes) > 0 {
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
		_node.BotConfigID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MessagesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.VariablesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlatformConversation.Create().
//		SetBotConfigID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlatformConversationUpsert) {
//			SetBotConfigID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlatformConversationCreate) OnConflict(opts ...sql.ConflictOption) *PlatformConversationUpsertOne {
	_c.conflict = opts
	return &PlatformConversationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlatformConversationCreate) OnConflictColumns(columns ...string) *PlatformConversationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlatformConversationUpsertOne{
		create: _c,
	}
}

type (
	// PlatformConversationUpsertOne is the builder for "upsert"-ing
	//  one PlatformConversation node.
	PlatformConversationUpsertOne struct {
		create *PlatformConversationCreate
	}

	// PlatformConversationUpsert is the "OnConflict" setter.
	PlatformConversationUpsert struct {
		*sql.UpdateSet
	}
)

// SetBotConfigID sets the "bot_config_id" field.
func (u *PlatformConversationUpsert) SetBotConfigID(v int) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldBotConfigID, v)
	return u
}

// UpdateBotConfigID sets the "bot_config_id" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdateBotConfigID() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldBotConfigID)
	return u
}

// SetPlatformUserID sets the "platform_user_id" field.
func (u *PlatformConversationUpsert) SetPlatformUserID(v string) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldPlatformUserID, v)
	return u
}

// UpdatePlatformUserID sets the "platform_user_id" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdatePlatformUserID() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldPlatformUserID)
	return u
}

// SetPlatformUserName sets the "platform_user_name" field.
func (u *PlatformConversationUpsert) SetPlatformUserName(v string) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldPlatformUserName, v)
	return u
}

// UpdatePlatformUserName sets the "platform_user_name" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdatePlatformUserName() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldPlatformUserName)
	return u
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (u *PlatformConversationUpsert) ClearPlatformUserName() *PlatformConversationUpsert {
	u.SetNull(platformconversation.FieldPlatformUserName)
	return u
}

// SetSessionID sets the "session_id" field.
func (u *PlatformConversationUpsert) SetSessionID(v string) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldSessionID, v)
	return u
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdateSessionID() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldSessionID)
	return u
}

// SetStatus sets the "status" field.
func (u *PlatformConversationUpsert) SetStatus(v platformconversation.Status) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdateStatus() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldStatus)
	return u
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *PlatformConversationUpsert) SetLastMessageAt(v time.Time) *PlatformConversationUpsert {
	u.Set(platformconversation.FieldLastMessageAt, v)
	return u
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *PlatformConversationUpsert) UpdateLastMessageAt() *PlatformConversationUpsert {
	u.SetExcluded(platformconversation.FieldLastMessageAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlatformConversationUpsertOne) UpdateNewValues() *PlatformConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(platformconversation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PlatformConversationUpsertOne) Ignore() *PlatformConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlatformConversationUpsertOne) DoNothing() *PlatformConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlatformConversationCreate.OnConflict
// documentation for more info.
func (u *PlatformConversationUpsertOne) Update(set func(*PlatformConversationUpsert)) *PlatformConversationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlatformConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotConfigID sets the "bot_config_id" field.
func (u *PlatformConversationUpsertOne) SetBotConfigID(v int) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetBotConfigID(v)
	})
}

// UpdateBotConfigID sets the "bot_config_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdateBotConfigID() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateBotConfigID()
	})
}

// SetPlatformUserID sets the "platform_user_id" field.
func (u *PlatformConversationUpsertOne) SetPlatformUserID(v string) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetPlatformUserID(v)
	})
}

// UpdatePlatformUserID sets the "platform_user_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdatePlatformUserID() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdatePlatformUserID()
	})
}

// SetPlatformUserName sets the "platform_user_name" field.
func (u *PlatformConversationUpsertOne) SetPlatformUserName(v string) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetPlatformUserName(v)
	})
}

// UpdatePlatformUserName sets the "platform_user_name" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdatePlatformUserName() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdatePlatformUserName()
	})
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (u *PlatformConversationUpsertOne) ClearPlatformUserName() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.ClearPlatformUserName()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PlatformConversationUpsertOne) SetSessionID(v string) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdateSessionID() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateSessionID()
	})
}

// SetStatus sets the "status" field.
func (u *PlatformConversationUpsertOne) SetStatus(v platformconversation.Status) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdateStatus() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *PlatformConversationUpsertOne) SetLastMessageAt(v time.Time) *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *PlatformConversationUpsertOne) UpdateLastMessageAt() *PlatformConversationUpsertOne {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// Exec executes the query.
func (u *PlatformConversationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlatformConversationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlatformConversationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PlatformConversationUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PlatformConversationUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PlatformConversationCreateBulk is the builder for creating many PlatformConversation entities in bulk.
type PlatformConversationCreateBulk struct {
	config
	err      error
	builders []*PlatformConversationCreate
	conflict []sql.ConflictOption
}

// Save creates the PlatformConversation entities in the database.
func (_c *PlatformConversationCreateBulk) Save(ctx context.Context) ([]*PlatformConversation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PlatformConversation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PlatformConversationMutation)
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
func (_c *PlatformConversationCreateBulk) SaveX(ctx context.Context) []*PlatformConversation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PlatformConversationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PlatformConversationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PlatformConversation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PlatformConversationUpsert) {
//			SetBotConfigID(v+v).
//		}).
//		Exec(ctx)
func (_c *PlatformConversationCreateBulk) OnConflict(opts ...sql.ConflictOption) *PlatformConversationUpsertBulk {
	_c.conflict = opts
	return &PlatformConversationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *PlatformConversationCreateBulk) OnConflictColumns(columns ...string) *PlatformConversationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &PlatformConversationUpsertBulk{
		create: _c,
	}
}

// PlatformConversationUpsertBulk is the builder for "upsert"-ing
// a bulk of PlatformConversation nodes.
type PlatformConversationUpsertBulk struct {
	create *PlatformConversationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *PlatformConversationUpsertBulk) UpdateNewValues() *PlatformConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(platformconversation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PlatformConversation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PlatformConversationUpsertBulk) Ignore() *PlatformConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PlatformConversationUpsertBulk) DoNothing() *PlatformConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PlatformConversationCreateBulk.OnConflict
// documentation for more info.
func (u *PlatformConversationUpsertBulk) Update(set func(*PlatformConversationUpsert)) *PlatformConversationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PlatformConversationUpsert{UpdateSet: update})
	}))
	return u
}

// SetBotConfigID sets the "bot_config_id" field.
func (u *PlatformConversationUpsertBulk) SetBotConfigID(v int) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetBotConfigID(v)
	})
}

// UpdateBotConfigID sets the "bot_config_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdateBotConfigID() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateBotConfigID()
	})
}

// SetPlatformUserID sets the "platform_user_id" field.
func (u *PlatformConversationUpsertBulk) SetPlatformUserID(v string) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetPlatformUserID(v)
	})
}

// UpdatePlatformUserID sets the "platform_user_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdatePlatformUserID() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdatePlatformUserID()
	})
}

// SetPlatformUserName sets the "platform_user_name" field.
func (u *PlatformConversationUpsertBulk) SetPlatformUserName(v string) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetPlatformUserName(v)
	})
}

// UpdatePlatformUserName sets the "platform_user_name" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdatePlatformUserName() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdatePlatformUserName()
	})
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (u *PlatformConversationUpsertBulk) ClearPlatformUserName() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.ClearPlatformUserName()
	})
}

// SetSessionID sets the "session_id" field.
func (u *PlatformConversationUpsertBulk) SetSessionID(v string) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetSessionID(v)
	})
}

// UpdateSessionID sets the "session_id" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdateSessionID() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateSessionID()
	})
}

// SetStatus sets the "status" field.
func (u *PlatformConversationUpsertBulk) SetStatus(v platformconversation.Status) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdateStatus() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateStatus()
	})
}

// SetLastMessageAt sets the "last_message_at" field.
func (u *PlatformConversationUpsertBulk) SetLastMessageAt(v time.Time) *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.SetLastMessageAt(v)
	})
}

// UpdateLastMessageAt sets the "last_message_at" field to the value that was provided on create.
func (u *PlatformConversationUpsertBulk) UpdateLastMessageAt() *PlatformConversationUpsertBulk {
	return u.Update(func(s *PlatformConversationUpsert) {
		s.UpdateLastMessageAt()
	})
}

// Exec executes the query.
func (u *PlatformConversationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PlatformConversationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PlatformConversationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PlatformConversationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
