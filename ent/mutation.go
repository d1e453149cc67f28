// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBotConfig            = "BotConfig"
	TypeConversationMessage  = "ConversationMessage"
	TypeExtractedVariable    = "ExtractedVariable"
	TypePlatformConversation = "PlatformConversation"
)

// BotConfigMutation represents an operation that mutates the BotConfig nodes in the graph.
type BotConfigMutation struct {
	config
	op                   Op
	typ                  string
	id                   *int
	platform             *botconfig.Platform
	bot_name             *string
	bot_token_encrypted  *string
	flow_id              *int
	addflow_id           *int
	owner_id             *string
	is_active            *bool
	webhook_url          *string
	webhook_secret       *string
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	conversations        map[int]struct{}
	removedconversations map[int]struct{}
	clearedconversations bool
	done                 bool
	oldValue             func(context.Context) (*BotConfig, error)
	predicates           []predicate.BotConfig
}

var _ ent.Mutation = (*BotConfigMutation)(nil)

// botconfigOption allows management of the mutation configuration using functional options.
type botconfigOption func(*BotConfigMutation)

// newBotConfigMutation creates new mutation for the BotConfig entity.
func newBotConfigMutation(c config, op Op, opts ...botconfigOption) *BotConfigMutation {
	m := &BotConfigMutation{
		config:        c,
		op:            op,
		typ:           TypeBotConfig,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBotConfigID sets the ID field of the mutation.
func withBotConfigID(id int) botconfigOption {
	return func(m *BotConfigMutation) {
		var (
			err   error
			once  sync.Once
			value *BotConfig
		)
		m.oldValue = func(ctx context.Context) (*BotConfig, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BotConfig.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBotConfig sets the old BotConfig of the mutation.
func withBotConfig(node *BotConfig) botconfigOption {
	return func(m *BotConfigMutation) {
		m.oldValue = func(context.Context) (*BotConfig, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BotConfigMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BotConfigMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BotConfigMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BotConfigMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BotConfig.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPlatform sets the "platform" field.
func (m *BotConfigMutation) SetPlatform(b botconfig.Platform) {
	m.platform = &b
}

// Platform returns the value of the "platform" field in the mutation.
func (m *BotConfigMutation) Platform() (r botconfig.Platform, exists bool) {
	v := m.platform
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatform returns the old "platform" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldPlatform(ctx context.Context) (v botconfig.Platform, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatform is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatform requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatform: %w", err)
	}
	return oldValue.Platform, nil
}

// ResetPlatform resets all changes to the "platform" field.
func (m *BotConfigMutation) ResetPlatform() {
	m.platform = nil
}

// SetBotName sets the "bot_name" field.
func (m *BotConfigMutation) SetBotName(s string) {
	m.bot_name = &s
}

// BotName returns the value of the "bot_name" field in the mutation.
func (m *BotConfigMutation) BotName() (r string, exists bool) {
	v := m.bot_name
	if v == nil {
		return
	}
	return *v, true
}

// OldBotName returns the old "bot_name" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldBotName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotName: %w", err)
	}
	return oldValue.BotName, nil
}

// ClearBotName clears the value of the "bot_name" field.
func (m *BotConfigMutation) ClearBotName() {
	m.bot_name = nil
	m.clearedFields[botconfig.FieldBotName] = struct{}{}
}

// BotNameCleared returns if the "bot_name" field was cleared in this mutation.
func (m *BotConfigMutation) BotNameCleared() bool {
	_, ok := m.clearedFields[botconfig.FieldBotName]
	return ok
}

// ResetBotName resets all changes to the "bot_name" field.
func (m *BotConfigMutation) ResetBotName() {
	m.bot_name = nil
	delete(m.clearedFields, botconfig.FieldBotName)
}

// SetBotTokenEncrypted sets the "bot_token_encrypted" field.
func (m *BotConfigMutation) SetBotTokenEncrypted(s string) {
	m.bot_token_encrypted = &s
}

// BotTokenEncrypted returns the value of the "bot_token_encrypted" field in the mutation.
func (m *BotConfigMutation) BotTokenEncrypted() (r string, exists bool) {
	v := m.bot_token_encrypted
	if v == nil {
		return
	}
	return *v, true
}

// OldBotTokenEncrypted returns the old "bot_token_encrypted" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldBotTokenEncrypted(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotTokenEncrypted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotTokenEncrypted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotTokenEncrypted: %w", err)
	}
	return oldValue.BotTokenEncrypted, nil
}

// ResetBotTokenEncrypted resets all changes to the "bot_token_encrypted" field.
func (m *BotConfigMutation) ResetBotTokenEncrypted() {
	m.bot_token_encrypted = nil
}

// SetFlowID sets the "flow_id" field.
func (m *BotConfigMutation) SetFlowID(i int) {
	m.flow_id = &i
	m.addflow_id = nil
}

// FlowID returns the value of the "flow_id" field in the mutation.
func (m *BotConfigMutation) FlowID() (r int, exists bool) {
	v := m.flow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowID returns the old "flow_id" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldFlowID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowID: %w", err)
	}
	return oldValue.FlowID, nil
}

// AddFlowID adds i to the "flow_id" field.
func (m *BotConfigMutation) AddFlowID(i int) {
	if m.addflow_id != nil {
		*m.addflow_id += i
	} else {
		m.addflow_id = &i
	}
}

// AddedFlowID returns the value that was added to the "flow_id" field in this mutation.
func (m *BotConfigMutation) AddedFlowID() (r int, exists bool) {
	v := m.addflow_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlowID resets all changes to the "flow_id" field.
func (m *BotConfigMutation) ResetFlowID() {
	m.flow_id = nil
	m.addflow_id = nil
}

// SetOwnerID sets the "owner_id" field.
func (m *BotConfigMutation) SetOwnerID(s string) {
	m.owner_id = &s
}

// OwnerID returns the value of the "owner_id" field in the mutation.
func (m *BotConfigMutation) OwnerID() (r string, exists bool) {
	v := m.owner_id
	if v == nil {
		return
	}
	return *v, true
}

// OldOwnerID returns the old "owner_id" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldOwnerID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOwnerID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOwnerID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOwnerID: %w", err)
	}
	return oldValue.OwnerID, nil
}

// ResetOwnerID resets all changes to the "owner_id" field.
func (m *BotConfigMutation) ResetOwnerID() {
	m.owner_id = nil
}

// SetIsActive sets the "is_active" field.
func (m *BotConfigMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *BotConfigMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *BotConfigMutation) ResetIsActive() {
	m.is_active = nil
}

// SetWebhookURL sets the "webhook_url" field.
func (m *BotConfigMutation) SetWebhookURL(s string) {
	m.webhook_url = &s
}

// WebhookURL returns the value of the "webhook_url" field in the mutation.
func (m *BotConfigMutation) WebhookURL() (r string, exists bool) {
	v := m.webhook_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookURL returns the old "webhook_url" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldWebhookURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookURL: %w", err)
	}
	return oldValue.WebhookURL, nil
}

// ClearWebhookURL clears the value of the "webhook_url" field.
func (m *BotConfigMutation) ClearWebhookURL() {
	m.webhook_url = nil
	m.clearedFields[botconfig.FieldWebhookURL] = struct{}{}
}

// WebhookURLCleared returns if the "webhook_url" field was cleared in this mutation.
func (m *BotConfigMutation) WebhookURLCleared() bool {
	_, ok := m.clearedFields[botconfig.FieldWebhookURL]
	return ok
}

// ResetWebhookURL resets all changes to the "webhook_url" field.
func (m *BotConfigMutation) ResetWebhookURL() {
	m.webhook_url = nil
	delete(m.clearedFields, botconfig.FieldWebhookURL)
}

// SetWebhookSecret sets the "webhook_secret" field.
func (m *BotConfigMutation) SetWebhookSecret(s string) {
	m.webhook_secret = &s
}

// WebhookSecret returns the value of the "webhook_secret" field in the mutation.
func (m *BotConfigMutation) WebhookSecret() (r string, exists bool) {
	v := m.webhook_secret
	if v == nil {
		return
	}
	return *v, true
}

// OldWebhookSecret returns the old "webhook_secret" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldWebhookSecret(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebhookSecret is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebhookSecret requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebhookSecret: %w", err)
	}
	return oldValue.WebhookSecret, nil
}

// ClearWebhookSecret clears the value of the "webhook_secret" field.
func (m *BotConfigMutation) ClearWebhookSecret() {
	m.webhook_secret = nil
	m.clearedFields[botconfig.FieldWebhookSecret] = struct{}{}
}

// WebhookSecretCleared returns if the "webhook_secret" field was cleared in this mutation.
func (m *BotConfigMutation) WebhookSecretCleared() bool {
	_, ok := m.clearedFields[botconfig.FieldWebhookSecret]
	return ok
}

// ResetWebhookSecret resets all changes to the "webhook_secret" field.
func (m *BotConfigMutation) ResetWebhookSecret() {
	m.webhook_secret = nil
	delete(m.clearedFields, botconfig.FieldWebhookSecret)
}

// SetCreatedAt sets the "created_at" field.
func (m *BotConfigMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BotConfigMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BotConfigMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BotConfigMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BotConfigMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BotConfig entity.
// If the BotConfig object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BotConfigMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BotConfigMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddConversationIDs adds the "conversations" edge to the PlatformConversation entity by ids.
func (m *BotConfigMutation) AddConversationIDs(ids ...int) {
	if m.conversations == nil {
		m.conversations = make(map[int]struct{})
	}
	for i := range ids {
		m.conversations[ids[i]] = struct{}{}
	}
}

// ClearConversations clears the "conversations" edge to the PlatformConversation entity.
func (m *BotConfigMutation) ClearConversations() {
	m.clearedconversations = true
}

// ConversationsCleared reports if the "conversations" edge to the PlatformConversation entity was cleared.
func (m *BotConfigMutation) ConversationsCleared() bool {
	return m.clearedconversations
}

// RemoveConversationIDs removes the "conversations" edge to the PlatformConversation entity by IDs.
func (m *BotConfigMutation) RemoveConversationIDs(ids ...int) {
	if m.removedconversations == nil {
		m.removedconversations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.conversations, ids[i])
		m.removedconversations[ids[i]] = struct{}{}
	}
}

// RemovedConversations returns the removed IDs of the "conversations" edge to the PlatformConversation entity.
func (m *BotConfigMutation) RemovedConversationsIDs() (ids []int) {
	for id := range m.removedconversations {
		ids = append(ids, id)
	}
	return
}

// ConversationsIDs returns the "conversations" edge IDs in the mutation.
func (m *BotConfigMutation) ConversationsIDs() (ids []int) {
	for id := range m.conversations {
		ids = append(ids, id)
	}
	return
}

// ResetConversations resets all changes to the "conversations" edge.
func (m *BotConfigMutation) ResetConversations() {
	m.conversations = nil
	m.clearedconversations = false
	m.removedconversations = nil
}

// Where appends a list predicates to the BotConfigMutation builder.
func (m *BotConfigMutation) Where(ps ...predicate.BotConfig) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BotConfigMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BotConfigMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BotConfig, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BotConfigMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BotConfigMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BotConfig).
func (m *BotConfigMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BotConfigMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.platform != nil {
		fields = append(fields, botconfig.FieldPlatform)
	}
	if m.bot_name != nil {
		fields = append(fields, botconfig.FieldBotName)
	}
	if m.bot_token_encrypted != nil {
		fields = append(fields, botconfig.FieldBotTokenEncrypted)
	}
	if m.flow_id != nil {
		fields = append(fields, botconfig.FieldFlowID)
	}
	if m.owner_id != nil {
		fields = append(fields, botconfig.FieldOwnerID)
	}
	if m.is_active != nil {
		fields = append(fields, botconfig.FieldIsActive)
	}
	if m.webhook_url != nil {
		fields = append(fields, botconfig.FieldWebhookURL)
	}
	if m.webhook_secret != nil {
		fields = append(fields, botconfig.FieldWebhookSecret)
	}
	if m.created_at != nil {
		fields = append(fields, botconfig.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, botconfig.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BotConfigMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case botconfig.FieldPlatform:
		return m.Platform()
	case botconfig.FieldBotName:
		return m.BotName()
	case botconfig.FieldBotTokenEncrypted:
		return m.BotTokenEncrypted()
	case botconfig.FieldFlowID:
		return m.FlowID()
	case botconfig.FieldOwnerID:
		return m.OwnerID()
	case botconfig.FieldIsActive:
		return m.IsActive()
	case botconfig.FieldWebhookURL:
		return m.WebhookURL()
	case botconfig.FieldWebhookSecret:
		return m.WebhookSecret()
	case botconfig.FieldCreatedAt:
		return m.CreatedAt()
	case botconfig.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BotConfigMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case botconfig.FieldPlatform:
		return m.OldPlatform(ctx)
	case botconfig.FieldBotName:
		return m.OldBotName(ctx)
	case botconfig.FieldBotTokenEncrypted:
		return m.OldBotTokenEncrypted(ctx)
	case botconfig.FieldFlowID:
		return m.OldFlowID(ctx)
	case botconfig.FieldOwnerID:
		return m.OldOwnerID(ctx)
	case botconfig.FieldIsActive:
		return m.OldIsActive(ctx)
	case botconfig.FieldWebhookURL:
		return m.OldWebhookURL(ctx)
	case botconfig.FieldWebhookSecret:
		return m.OldWebhookSecret(ctx)
	case botconfig.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case botconfig.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BotConfig field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotConfigMutation) SetField(name string, value ent.Value) error {
	switch name {
	case botconfig.FieldPlatform:
		v, ok := value.(botconfig.Platform)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatform(v)
		return nil
	case botconfig.FieldBotName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotName(v)
		return nil
	case botconfig.FieldBotTokenEncrypted:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotTokenEncrypted(v)
		return nil
	case botconfig.FieldFlowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowID(v)
		return nil
	case botconfig.FieldOwnerID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOwnerID(v)
		return nil
	case botconfig.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case botconfig.FieldWebhookURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookURL(v)
		return nil
	case botconfig.FieldWebhookSecret:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebhookSecret(v)
		return nil
	case botconfig.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case botconfig.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BotConfig field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BotConfigMutation) AddedFields() []string {
	var fields []string
	if m.addflow_id != nil {
		fields = append(fields, botconfig.FieldFlowID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BotConfigMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case botconfig.FieldFlowID:
		return m.AddedFlowID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BotConfigMutation) AddField(name string, value ent.Value) error {
	switch name {
	case botconfig.FieldFlowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlowID(v)
		return nil
	}
	return fmt.Errorf("unknown BotConfig numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BotConfigMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(botconfig.FieldBotName) {
		fields = append(fields, botconfig.FieldBotName)
	}
	if m.FieldCleared(botconfig.FieldWebhookURL) {
		fields = append(fields, botconfig.FieldWebhookURL)
	}
	if m.FieldCleared(botconfig.FieldWebhookSecret) {
		fields = append(fields, botconfig.FieldWebhookSecret)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BotConfigMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BotConfigMutation) ClearField(name string) error {
	switch name {
	case botconfig.FieldBotName:
		m.ClearBotName()
		return nil
	case botconfig.FieldWebhookURL:
		m.ClearWebhookURL()
		return nil
	case botconfig.FieldWebhookSecret:
		m.ClearWebhookSecret()
		return nil
	}
	return fmt.Errorf("unknown BotConfig nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BotConfigMutation) ResetField(name string) error {
	switch name {
	case botconfig.FieldPlatform:
		m.ResetPlatform()
		return nil
	case botconfig.FieldBotName:
		m.ResetBotName()
		return nil
	case botconfig.FieldBotTokenEncrypted:
		m.ResetBotTokenEncrypted()
		return nil
	case botconfig.FieldFlowID:
		m.ResetFlowID()
		return nil
	case botconfig.FieldOwnerID:
		m.ResetOwnerID()
		return nil
	case botconfig.FieldIsActive:
		m.ResetIsActive()
		return nil
	case botconfig.FieldWebhookURL:
		m.ResetWebhookURL()
		return nil
	case botconfig.FieldWebhookSecret:
		m.ResetWebhookSecret()
		return nil
	case botconfig.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case botconfig.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BotConfig field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BotConfigMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversations != nil {
		edges = append(edges, botconfig.EdgeConversations)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BotConfigMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case botconfig.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.conversations))
		for id := range m.conversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BotConfigMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedconversations != nil {
		edges = append(edges, botconfig.EdgeConversations)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BotConfigMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case botconfig.EdgeConversations:
		ids := make([]ent.Value, 0, len(m.removedconversations))
		for id := range m.removedconversations {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BotConfigMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversations {
		edges = append(edges, botconfig.EdgeConversations)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BotConfigMutation) EdgeCleared(name string) bool {
	switch name {
	case botconfig.EdgeConversations:
		return m.clearedconversations
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BotConfigMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown BotConfig unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BotConfigMutation) ResetEdge(name string) error {
	switch name {
	case botconfig.EdgeConversations:
		m.ResetConversations()
		return nil
	}
	return fmt.Errorf("unknown BotConfig edge %s", name)
}

// ConversationMessageMutation represents an operation that mutates the ConversationMessage nodes in the graph.
type ConversationMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	role                *conversationmessage.Role
	content             *string
	platform_message_id *string
	created_at          *time.Time
	clearedFields       map[string]struct{}
	conversation        *int
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*ConversationMessage, error)
	predicates          []predicate.ConversationMessage
}

var _ ent.Mutation = (*ConversationMessageMutation)(nil)

// conversationmessageOption allows management of the mutation configuration using functional options.
type conversationmessageOption func(*ConversationMessageMutation)

// newConversationMessageMutation creates new mutation for the ConversationMessage entity.
func newConversationMessageMutation(c config, op Op, opts ...conversationmessageOption) *ConversationMessageMutation {
	m := &ConversationMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeConversationMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withConversationMessageID sets the ID field of the mutation.
func withConversationMessageID(id int) conversationmessageOption {
	return func(m *ConversationMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *ConversationMessage
		)
		m.oldValue = func(ctx context.Context) (*ConversationMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ConversationMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withConversationMessage sets the old ConversationMessage of the mutation.
func withConversationMessage(node *ConversationMessage) conversationmessageOption {
	return func(m *ConversationMessageMutation) {
		m.oldValue = func(context.Context) (*ConversationMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ConversationMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ConversationMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ConversationMessageMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ConversationMessageMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ConversationMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ConversationMessageMutation) SetConversationID(i int) {
	m.conversation = &i
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ConversationMessageMutation) ConversationID() (r int, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldConversationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ConversationMessageMutation) ResetConversationID() {
	m.conversation = nil
}

// SetRole sets the "role" field.
func (m *ConversationMessageMutation) SetRole(c conversationmessage.Role) {
	m.role = &c
}

// Role returns the value of the "role" field in the mutation.
func (m *ConversationMessageMutation) Role() (r conversationmessage.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldRole(ctx context.Context) (v conversationmessage.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *ConversationMessageMutation) ResetRole() {
	m.role = nil
}

// SetContent sets the "content" field.
func (m *ConversationMessageMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *ConversationMessageMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *ConversationMessageMutation) ResetContent() {
	m.content = nil
}

// SetPlatformMessageID sets the "platform_message_id" field.
func (m *ConversationMessageMutation) SetPlatformMessageID(s string) {
	m.platform_message_id = &s
}

// PlatformMessageID returns the value of the "platform_message_id" field in the mutation.
func (m *ConversationMessageMutation) PlatformMessageID() (r string, exists bool) {
	v := m.platform_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformMessageID returns the old "platform_message_id" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldPlatformMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformMessageID: %w", err)
	}
	return oldValue.PlatformMessageID, nil
}

// ClearPlatformMessageID clears the value of the "platform_message_id" field.
func (m *ConversationMessageMutation) ClearPlatformMessageID() {
	m.platform_message_id = nil
	m.clearedFields[conversationmessage.FieldPlatformMessageID] = struct{}{}
}

// PlatformMessageIDCleared returns if the "platform_message_id" field was cleared in this mutation.
func (m *ConversationMessageMutation) PlatformMessageIDCleared() bool {
	_, ok := m.clearedFields[conversationmessage.FieldPlatformMessageID]
	return ok
}

// ResetPlatformMessageID resets all changes to the "platform_message_id" field.
func (m *ConversationMessageMutation) ResetPlatformMessageID() {
	m.platform_message_id = nil
	delete(m.clearedFields, conversationmessage.FieldPlatformMessageID)
}

// SetCreatedAt sets the "created_at" field.
func (m *ConversationMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ConversationMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ConversationMessage entity.
// If the ConversationMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ConversationMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ConversationMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearConversation clears the "conversation" edge to the PlatformConversation entity.
func (m *ConversationMessageMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[conversationmessage.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the PlatformConversation entity was cleared.
func (m *ConversationMessageMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ConversationMessageMutation) ConversationIDs() (ids []int) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ConversationMessageMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ConversationMessageMutation builder.
func (m *ConversationMessageMutation) Where(ps ...predicate.ConversationMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ConversationMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ConversationMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ConversationMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ConversationMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ConversationMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ConversationMessage).
func (m *ConversationMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ConversationMessageMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.conversation != nil {
		fields = append(fields, conversationmessage.FieldConversationID)
	}
	if m.role != nil {
		fields = append(fields, conversationmessage.FieldRole)
	}
	if m.content != nil {
		fields = append(fields, conversationmessage.FieldContent)
	}
	if m.platform_message_id != nil {
		fields = append(fields, conversationmessage.FieldPlatformMessageID)
	}
	if m.created_at != nil {
		fields = append(fields, conversationmessage.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ConversationMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case conversationmessage.FieldConversationID:
		return m.ConversationID()
	case conversationmessage.FieldRole:
		return m.Role()
	case conversationmessage.FieldContent:
		return m.Content()
	case conversationmessage.FieldPlatformMessageID:
		return m.PlatformMessageID()
	case conversationmessage.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ConversationMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case conversationmessage.FieldConversationID:
		return m.OldConversationID(ctx)
	case conversationmessage.FieldRole:
		return m.OldRole(ctx)
	case conversationmessage.FieldContent:
		return m.OldContent(ctx)
	case conversationmessage.FieldPlatformMessageID:
		return m.OldPlatformMessageID(ctx)
	case conversationmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ConversationMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case conversationmessage.FieldConversationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case conversationmessage.FieldRole:
		v, ok := value.(conversationmessage.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case conversationmessage.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case conversationmessage.FieldPlatformMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformMessageID(v)
		return nil
	case conversationmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ConversationMessageMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ConversationMessageMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ConversationMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ConversationMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ConversationMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(conversationmessage.FieldPlatformMessageID) {
		fields = append(fields, conversationmessage.FieldPlatformMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ConversationMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ConversationMessageMutation) ClearField(name string) error {
	switch name {
	case conversationmessage.FieldPlatformMessageID:
		m.ClearPlatformMessageID()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ConversationMessageMutation) ResetField(name string) error {
	switch name {
	case conversationmessage.FieldConversationID:
		m.ResetConversationID()
		return nil
	case conversationmessage.FieldRole:
		m.ResetRole()
		return nil
	case conversationmessage.FieldContent:
		m.ResetContent()
		return nil
	case conversationmessage.FieldPlatformMessageID:
		m.ResetPlatformMessageID()
		return nil
	case conversationmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ConversationMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, conversationmessage.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ConversationMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case conversationmessage.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ConversationMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ConversationMessageMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ConversationMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, conversationmessage.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ConversationMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case conversationmessage.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ConversationMessageMutation) ClearEdge(name string) error {
	switch name {
	case conversationmessage.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ConversationMessageMutation) ResetEdge(name string) error {
	switch name {
	case conversationmessage.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ConversationMessage edge %s", name)
}

// ExtractedVariableMutation represents an operation that mutates the ExtractedVariable nodes in the graph.
type ExtractedVariableMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	node_id             *string
	flow_id             *int
	addflow_id          *int
	variable_name       *string
	variable_value      *string
	variable_type       *string
	extracted_at        *time.Time
	clearedFields       map[string]struct{}
	conversation        *int
	clearedconversation bool
	done                bool
	oldValue            func(context.Context) (*ExtractedVariable, error)
	predicates          []predicate.ExtractedVariable
}

var _ ent.Mutation = (*ExtractedVariableMutation)(nil)

// extractedvariableOption allows management of the mutation configuration using functional options.
type extractedvariableOption func(*ExtractedVariableMutation)

// newExtractedVariableMutation creates new mutation for the ExtractedVariable entity.
func newExtractedVariableMutation(c config, op Op, opts ...extractedvariableOption) *ExtractedVariableMutation {
	m := &ExtractedVariableMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractedVariable,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractedVariableID sets the ID field of the mutation.
func withExtractedVariableID(id int) extractedvariableOption {
	return func(m *ExtractedVariableMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractedVariable
		)
		m.oldValue = func(ctx context.Context) (*ExtractedVariable, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractedVariable.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractedVariable sets the old ExtractedVariable of the mutation.
func withExtractedVariable(node *ExtractedVariable) extractedvariableOption {
	return func(m *ExtractedVariableMutation) {
		m.oldValue = func(context.Context) (*ExtractedVariable, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractedVariableMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractedVariableMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractedVariableMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractedVariableMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractedVariable.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetConversationID sets the "conversation_id" field.
func (m *ExtractedVariableMutation) SetConversationID(i int) {
	m.conversation = &i
}

// ConversationID returns the value of the "conversation_id" field in the mutation.
func (m *ExtractedVariableMutation) ConversationID() (r int, exists bool) {
	v := m.conversation
	if v == nil {
		return
	}
	return *v, true
}

// OldConversationID returns the old "conversation_id" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldConversationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConversationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConversationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConversationID: %w", err)
	}
	return oldValue.ConversationID, nil
}

// ResetConversationID resets all changes to the "conversation_id" field.
func (m *ExtractedVariableMutation) ResetConversationID() {
	m.conversation = nil
}

// SetNodeID sets the "node_id" field.
func (m *ExtractedVariableMutation) SetNodeID(s string) {
	m.node_id = &s
}

// NodeID returns the value of the "node_id" field in the mutation.
func (m *ExtractedVariableMutation) NodeID() (r string, exists bool) {
	v := m.node_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNodeID returns the old "node_id" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldNodeID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNodeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNodeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNodeID: %w", err)
	}
	return oldValue.NodeID, nil
}

// ResetNodeID resets all changes to the "node_id" field.
func (m *ExtractedVariableMutation) ResetNodeID() {
	m.node_id = nil
}

// SetFlowID sets the "flow_id" field.
func (m *ExtractedVariableMutation) SetFlowID(i int) {
	m.flow_id = &i
	m.addflow_id = nil
}

// FlowID returns the value of the "flow_id" field in the mutation.
func (m *ExtractedVariableMutation) FlowID() (r int, exists bool) {
	v := m.flow_id
	if v == nil {
		return
	}
	return *v, true
}

// OldFlowID returns the old "flow_id" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldFlowID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlowID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlowID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlowID: %w", err)
	}
	return oldValue.FlowID, nil
}

// AddFlowID adds i to the "flow_id" field.
func (m *ExtractedVariableMutation) AddFlowID(i int) {
	if m.addflow_id != nil {
		*m.addflow_id += i
	} else {
		m.addflow_id = &i
	}
}

// AddedFlowID returns the value that was added to the "flow_id" field in this mutation.
func (m *ExtractedVariableMutation) AddedFlowID() (r int, exists bool) {
	v := m.addflow_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearFlowID clears the value of the "flow_id" field.
func (m *ExtractedVariableMutation) ClearFlowID() {
	m.flow_id = nil
	m.addflow_id = nil
	m.clearedFields[extractedvariable.FieldFlowID] = struct{}{}
}

// FlowIDCleared returns if the "flow_id" field was cleared in this mutation.
func (m *ExtractedVariableMutation) FlowIDCleared() bool {
	_, ok := m.clearedFields[extractedvariable.FieldFlowID]
	return ok
}

// ResetFlowID resets all changes to the "flow_id" field.
func (m *ExtractedVariableMutation) ResetFlowID() {
	m.flow_id = nil
	m.addflow_id = nil
	delete(m.clearedFields, extractedvariable.FieldFlowID)
}

// SetVariableName sets the "variable_name" field.
func (m *ExtractedVariableMutation) SetVariableName(s string) {
	m.variable_name = &s
}

// VariableName returns the value of the "variable_name" field in the mutation.
func (m *ExtractedVariableMutation) VariableName() (r string, exists bool) {
	v := m.variable_name
	if v == nil {
		return
	}
	return *v, true
}

// OldVariableName returns the old "variable_name" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldVariableName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariableName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariableName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariableName: %w", err)
	}
	return oldValue.VariableName, nil
}

// ResetVariableName resets all changes to the "variable_name" field.
func (m *ExtractedVariableMutation) ResetVariableName() {
	m.variable_name = nil
}

// SetVariableValue sets the "variable_value" field.
func (m *ExtractedVariableMutation) SetVariableValue(s string) {
	m.variable_value = &s
}

// VariableValue returns the value of the "variable_value" field in the mutation.
func (m *ExtractedVariableMutation) VariableValue() (r string, exists bool) {
	v := m.variable_value
	if v == nil {
		return
	}
	return *v, true
}

// OldVariableValue returns the old "variable_value" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldVariableValue(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariableValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariableValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariableValue: %w", err)
	}
	return oldValue.VariableValue, nil
}

// ResetVariableValue resets all changes to the "variable_value" field.
func (m *ExtractedVariableMutation) ResetVariableValue() {
	m.variable_value = nil
}

// SetVariableType sets the "variable_type" field.
func (m *ExtractedVariableMutation) SetVariableType(s string) {
	m.variable_type = &s
}

// VariableType returns the value of the "variable_type" field in the mutation.
func (m *ExtractedVariableMutation) VariableType() (r string, exists bool) {
	v := m.variable_type
	if v == nil {
		return
	}
	return *v, true
}

// OldVariableType returns the old "variable_type" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldVariableType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVariableType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVariableType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVariableType: %w", err)
	}
	return oldValue.VariableType, nil
}

// ClearVariableType clears the value of the "variable_type" field.
func (m *ExtractedVariableMutation) ClearVariableType() {
	m.variable_type = nil
	m.clearedFields[extractedvariable.FieldVariableType] = struct{}{}
}

// VariableTypeCleared returns if the "variable_type" field was cleared in this mutation.
func (m *ExtractedVariableMutation) VariableTypeCleared() bool {
	_, ok := m.clearedFields[extractedvariable.FieldVariableType]
	return ok
}

// ResetVariableType resets all changes to the "variable_type" field.
func (m *ExtractedVariableMutation) ResetVariableType() {
	m.variable_type = nil
	delete(m.clearedFields, extractedvariable.FieldVariableType)
}

// SetExtractedAt sets the "extracted_at" field.
func (m *ExtractedVariableMutation) SetExtractedAt(t time.Time) {
	m.extracted_at = &t
}

// ExtractedAt returns the value of the "extracted_at" field in the mutation.
func (m *ExtractedVariableMutation) ExtractedAt() (r time.Time, exists bool) {
	v := m.extracted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedAt returns the old "extracted_at" field's value of the ExtractedVariable entity.
// If the ExtractedVariable object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractedVariableMutation) OldExtractedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedAt: %w", err)
	}
	return oldValue.ExtractedAt, nil
}

// ResetExtractedAt resets all changes to the "extracted_at" field.
func (m *ExtractedVariableMutation) ResetExtractedAt() {
	m.extracted_at = nil
}

// ClearConversation clears the "conversation" edge to the PlatformConversation entity.
func (m *ExtractedVariableMutation) ClearConversation() {
	m.clearedconversation = true
	m.clearedFields[extractedvariable.FieldConversationID] = struct{}{}
}

// ConversationCleared reports if the "conversation" edge to the PlatformConversation entity was cleared.
func (m *ExtractedVariableMutation) ConversationCleared() bool {
	return m.clearedconversation
}

// ConversationIDs returns the "conversation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ConversationID instead. It exists only for internal usage by the builders.
func (m *ExtractedVariableMutation) ConversationIDs() (ids []int) {
	if id := m.conversation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetConversation resets all changes to the "conversation" edge.
func (m *ExtractedVariableMutation) ResetConversation() {
	m.conversation = nil
	m.clearedconversation = false
}

// Where appends a list predicates to the ExtractedVariableMutation builder.
func (m *ExtractedVariableMutation) Where(ps ...predicate.ExtractedVariable) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractedVariableMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractedVariableMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractedVariable, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractedVariableMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractedVariableMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractedVariable).
func (m *ExtractedVariableMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractedVariableMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.conversation != nil {
		fields = append(fields, extractedvariable.FieldConversationID)
	}
	if m.node_id != nil {
		fields = append(fields, extractedvariable.FieldNodeID)
	}
	if m.flow_id != nil {
		fields = append(fields, extractedvariable.FieldFlowID)
	}
	if m.variable_name != nil {
		fields = append(fields, extractedvariable.FieldVariableName)
	}
	if m.variable_value != nil {
		fields = append(fields, extractedvariable.FieldVariableValue)
	}
	if m.variable_type != nil {
		fields = append(fields, extractedvariable.FieldVariableType)
	}
	if m.extracted_at != nil {
		fields = append(fields, extractedvariable.FieldExtractedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractedVariableMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractedvariable.FieldConversationID:
		return m.ConversationID()
	case extractedvariable.FieldNodeID:
		return m.NodeID()
	case extractedvariable.FieldFlowID:
		return m.FlowID()
	case extractedvariable.FieldVariableName:
		return m.VariableName()
	case extractedvariable.FieldVariableValue:
		return m.VariableValue()
	case extractedvariable.FieldVariableType:
		return m.VariableType()
	case extractedvariable.FieldExtractedAt:
		return m.ExtractedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractedVariableMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractedvariable.FieldConversationID:
		return m.OldConversationID(ctx)
	case extractedvariable.FieldNodeID:
		return m.OldNodeID(ctx)
	case extractedvariable.FieldFlowID:
		return m.OldFlowID(ctx)
	case extractedvariable.FieldVariableName:
		return m.OldVariableName(ctx)
	case extractedvariable.FieldVariableValue:
		return m.OldVariableValue(ctx)
	case extractedvariable.FieldVariableType:
		return m.OldVariableType(ctx)
	case extractedvariable.FieldExtractedAt:
		return m.OldExtractedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractedVariable field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedVariableMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractedvariable.FieldConversationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConversationID(v)
		return nil
	case extractedvariable.FieldNodeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNodeID(v)
		return nil
	case extractedvariable.FieldFlowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlowID(v)
		return nil
	case extractedvariable.FieldVariableName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariableName(v)
		return nil
	case extractedvariable.FieldVariableValue:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariableValue(v)
		return nil
	case extractedvariable.FieldVariableType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVariableType(v)
		return nil
	case extractedvariable.FieldExtractedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractedVariableMutation) AddedFields() []string {
	var fields []string
	if m.addflow_id != nil {
		fields = append(fields, extractedvariable.FieldFlowID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractedVariableMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractedvariable.FieldFlowID:
		return m.AddedFlowID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractedVariableMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractedvariable.FieldFlowID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlowID(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractedVariableMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractedvariable.FieldFlowID) {
		fields = append(fields, extractedvariable.FieldFlowID)
	}
	if m.FieldCleared(extractedvariable.FieldVariableType) {
		fields = append(fields, extractedvariable.FieldVariableType)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractedVariableMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractedVariableMutation) ClearField(name string) error {
	switch name {
	case extractedvariable.FieldFlowID:
		m.ClearFlowID()
		return nil
	case extractedvariable.FieldVariableType:
		m.ClearVariableType()
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractedVariableMutation) ResetField(name string) error {
	switch name {
	case extractedvariable.FieldConversationID:
		m.ResetConversationID()
		return nil
	case extractedvariable.FieldNodeID:
		m.ResetNodeID()
		return nil
	case extractedvariable.FieldFlowID:
		m.ResetFlowID()
		return nil
	case extractedvariable.FieldVariableName:
		m.ResetVariableName()
		return nil
	case extractedvariable.FieldVariableValue:
		m.ResetVariableValue()
		return nil
	case extractedvariable.FieldVariableType:
		m.ResetVariableType()
		return nil
	case extractedvariable.FieldExtractedAt:
		m.ResetExtractedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractedVariableMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.conversation != nil {
		edges = append(edges, extractedvariable.EdgeConversation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractedVariableMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractedvariable.EdgeConversation:
		if id := m.conversation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractedVariableMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractedVariableMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractedVariableMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedconversation {
		edges = append(edges, extractedvariable.EdgeConversation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractedVariableMutation) EdgeCleared(name string) bool {
	switch name {
	case extractedvariable.EdgeConversation:
		return m.clearedconversation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractedVariableMutation) ClearEdge(name string) error {
	switch name {
	case extractedvariable.EdgeConversation:
		m.ClearConversation()
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractedVariableMutation) ResetEdge(name string) error {
	switch name {
	case extractedvariable.EdgeConversation:
		m.ResetConversation()
		return nil
	}
	return fmt.Errorf("unknown ExtractedVariable edge %s", name)
}

// PlatformConversationMutation represents an operation that mutates the PlatformConversation nodes in the graph.
type PlatformConversationMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	platform_user_id   *string
	platform_user_name *string
	session_id         *string
	status             *platformconversation.Status
	last_message_at    *time.Time
	created_at         *time.Time
	clearedFields      map[string]struct{}
	bot_config         *int
	clearedbot_config  bool
	messages           map[int]struct{}
	removedmessages    map[int]struct{}
	clearedmessages    bool
	variables          map[int]struct{}
	removedvariables   map[int]struct{}
	clearedvariables   bool
	done               bool
	oldValue           func(context.Context) (*PlatformConversation, error)
	predicates         []predicate.PlatformConversation
}

var _ ent.Mutation = (*PlatformConversationMutation)(nil)

// platformconversationOption allows management of the mutation configuration using functional options.
type platformconversationOption func(*PlatformConversationMutation)

// newPlatformConversationMutation creates new mutation for the PlatformConversation entity.
func newPlatformConversationMutation(c config, op Op, opts ...platformconversationOption) *PlatformConversationMutation {
	m := &PlatformConversationMutation{
		config:        c,
		op:            op,
		typ:           TypePlatformConversation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPlatformConversationID sets the ID field of the mutation.
func withPlatformConversationID(id int) platformconversationOption {
	return func(m *PlatformConversationMutation) {
		var (
			err   error
			once  sync.Once
			value *PlatformConversation
		)
		m.oldValue = func(ctx context.Context) (*PlatformConversation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PlatformConversation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPlatformConversation sets the old PlatformConversation of the mutation.
func withPlatformConversation(node *PlatformConversation) platformconversationOption {
	return func(m *PlatformConversationMutation) {
		m.oldValue = func(context.Context) (*PlatformConversation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PlatformConversationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PlatformConversationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PlatformConversationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PlatformConversationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PlatformConversation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBotConfigID sets the "bot_config_id" field.
func (m *PlatformConversationMutation) SetBotConfigID(i int) {
	m.bot_config = &i
}

// BotConfigID returns the value of the "bot_config_id" field in the mutation.
func (m *PlatformConversationMutation) BotConfigID() (r int, exists bool) {
	v := m.bot_config
	if v == nil {
		return
	}
	return *v, true
}

// OldBotConfigID returns the old "bot_config_id" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldBotConfigID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBotConfigID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBotConfigID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBotConfigID: %w", err)
	}
	return oldValue.BotConfigID, nil
}

// ResetBotConfigID resets all changes to the "bot_config_id" field.
func (m *PlatformConversationMutation) ResetBotConfigID() {
	m.bot_config = nil
}

// SetPlatformUserID sets the "platform_user_id" field.
func (m *PlatformConversationMutation) SetPlatformUserID(s string) {
	m.platform_user_id = &s
}

// PlatformUserID returns the value of the "platform_user_id" field in the mutation.
func (m *PlatformConversationMutation) PlatformUserID() (r string, exists bool) {
	v := m.platform_user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformUserID returns the old "platform_user_id" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldPlatformUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformUserID: %w", err)
	}
	return oldValue.PlatformUserID, nil
}

// ResetPlatformUserID resets all changes to the "platform_user_id" field.
func (m *PlatformConversationMutation) ResetPlatformUserID() {
	m.platform_user_id = nil
}

// SetPlatformUserName sets the "platform_user_name" field.
func (m *PlatformConversationMutation) SetPlatformUserName(s string) {
	m.platform_user_name = &s
}

// PlatformUserName returns the value of the "platform_user_name" field in the mutation.
func (m *PlatformConversationMutation) PlatformUserName() (r string, exists bool) {
	v := m.platform_user_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPlatformUserName returns the old "platform_user_name" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldPlatformUserName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlatformUserName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlatformUserName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlatformUserName: %w", err)
	}
	return oldValue.PlatformUserName, nil
}

// ClearPlatformUserName clears the value of the "platform_user_name" field.
func (m *PlatformConversationMutation) ClearPlatformUserName() {
	m.platform_user_name = nil
	m.clearedFields[platformconversation.FieldPlatformUserName] = struct{}{}
}

// PlatformUserNameCleared returns if the "platform_user_name" field was cleared in this mutation.
func (m *PlatformConversationMutation) PlatformUserNameCleared() bool {
	_, ok := m.clearedFields[platformconversation.FieldPlatformUserName]
	return ok
}

// ResetPlatformUserName resets all changes to the "platform_user_name" field.
func (m *PlatformConversationMutation) ResetPlatformUserName() {
	m.platform_user_name = nil
	delete(m.clearedFields, platformconversation.FieldPlatformUserName)
}

// SetSessionID sets the "session_id" field.
func (m *PlatformConversationMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PlatformConversationMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PlatformConversationMutation) ResetSessionID() {
	m.session_id = nil
}

// SetStatus sets the "status" field.
func (m *PlatformConversationMutation) SetStatus(pl platformconversation.Status) {
	m.status = &pl
}

// Status returns the value of the "status" field in the mutation.
func (m *PlatformConversationMutation) Status() (r platformconversation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldStatus(ctx context.Context) (v platformconversation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PlatformConversationMutation) ResetStatus() {
	m.status = nil
}

// SetLastMessageAt sets the "last_message_at" field.
func (m *PlatformConversationMutation) SetLastMessageAt(t time.Time) {
	m.last_message_at = &t
}

// LastMessageAt returns the value of the "last_message_at" field in the mutation.
func (m *PlatformConversationMutation) LastMessageAt() (r time.Time, exists bool) {
	v := m.last_message_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastMessageAt returns the old "last_message_at" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldLastMessageAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastMessageAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastMessageAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastMessageAt: %w", err)
	}
	return oldValue.LastMessageAt, nil
}

// ResetLastMessageAt resets all changes to the "last_message_at" field.
func (m *PlatformConversationMutation) ResetLastMessageAt() {
	m.last_message_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *PlatformConversationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PlatformConversationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PlatformConversation entity.
// If the PlatformConversation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PlatformConversationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PlatformConversationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearBotConfig clears the "bot_config" edge to the BotConfig entity.
func (m *PlatformConversationMutation) ClearBotConfig() {
	m.clearedbot_config = true
	m.clearedFields[platformconversation.FieldBotConfigID] = struct{}{}
}

// BotConfigCleared reports if the "bot_config" edge to the BotConfig entity was cleared.
func (m *PlatformConversationMutation) BotConfigCleared() bool {
	return m.clearedbot_config
}

// BotConfigIDs returns the "bot_config" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BotConfigID instead. It exists only for internal usage by the builders.
func (m *PlatformConversationMutation) BotConfigIDs() (ids []int) {
	if id := m.bot_config; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBotConfig resets all changes to the "bot_config" edge.
func (m *PlatformConversationMutation) ResetBotConfig() {
	m.bot_config = nil
	m.clearedbot_config = false
}

// AddMessageIDs adds the "messages" edge to the ConversationMessage entity by ids.
func (m *PlatformConversationMutation) AddMessageIDs(ids ...int) {
	if m.messages == nil {
		m.messages = make(map[int]struct{})
	}
	for i := range ids {
		m.messages[ids[i]] = struct{}{}
	}
}

// ClearMessages clears the "messages" edge to the ConversationMessage entity.
func (m *PlatformConversationMutation) ClearMessages() {
	m.clearedmessages = true
}

// MessagesCleared reports if the "messages" edge to the ConversationMessage entity was cleared.
func (m *PlatformConversationMutation) MessagesCleared() bool {
	return m.clearedmessages
}

// RemoveMessageIDs removes the "messages" edge to the ConversationMessage entity by IDs.
func (m *PlatformConversationMutation) RemoveMessageIDs(ids ...int) {
	if m.removedmessages == nil {
		m.removedmessages = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.messages, ids[i])
		m.removedmessages[ids[i]] = struct{}{}
	}
}

// RemovedMessages returns the removed IDs of the "messages" edge to the ConversationMessage entity.
func (m *PlatformConversationMutation) RemovedMessagesIDs() (ids []int) {
	for id := range m.removedmessages {
		ids = append(ids, id)
	}
	return
}

// MessagesIDs returns the "messages" edge IDs in the mutation.
func (m *PlatformConversationMutation) MessagesIDs() (ids []int) {
	for id := range m.messages {
		ids = append(ids, id)
	}
	return
}

// ResetMessages resets all changes to the "messages" edge.
func (m *PlatformConversationMutation) ResetMessages() {
	m.messages = nil
	m.clearedmessages = false
	m.removedmessages = nil
}

// AddVariableIDs adds the "variables" edge to the ExtractedVariable entity by ids.
func (m *PlatformConversationMutation) AddVariableIDs(ids ...int) {
	if m.variables == nil {
		m.variables = make(map[int]struct{})
	}
	for i := range ids {
		m.variables[ids[i]] = struct{}{}
	}
}

// ClearVariables clears the "variables" edge to the ExtractedVariable entity.
func (m *PlatformConversationMutation) ClearVariables() {
	m.clearedvariables = true
}

// VariablesCleared reports if the "variables" edge to the ExtractedVariable entity was cleared.
func (m *PlatformConversationMutation) VariablesCleared() bool {
	return m.clearedvariables
}

// RemoveVariableIDs removes the "variables" edge to the ExtractedVariable entity by IDs.
func (m *PlatformConversationMutation) RemoveVariableIDs(ids ...int) {
	if m.removedvariables == nil {
		m.removedvariables = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.variables, ids[i])
		m.removedvariables[ids[i]] = struct{}{}
	}
}

// RemovedVariables returns the removed IDs of the "variables" edge to the ExtractedVariable entity.
func (m *PlatformConversationMutation) RemovedVariablesIDs() (ids []int) {
	for id := range m.removedvariables {
		ids = append(ids, id)
	}
	return
}

// VariablesIDs returns the "variables" edge IDs in the mutation.
func (m *PlatformConversationMutation) VariablesIDs() (ids []int) {
	for id := range m.variables {
		ids = append(ids, id)
	}
	return
}

// ResetVariables resets all changes to the "variables" edge.
func (m *PlatformConversationMutation) ResetVariables() {
	m.variables = nil
	m.clearedvariables = false
	m.removedvariables = nil
}

// Where appends a list predicates to the PlatformConversationMutation builder.
func (m *PlatformConversationMutation) Where(ps ...predicate.PlatformConversation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PlatformConversationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PlatformConversationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PlatformConversation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PlatformConversationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PlatformConversationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PlatformConversation).
func (m *PlatformConversationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PlatformConversationMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.bot_config != nil {
		fields = append(fields, platformconversation.FieldBotConfigID)
	}
	if m.platform_user_id != nil {
		fields = append(fields, platformconversation.FieldPlatformUserID)
	}
	if m.platform_user_name != nil {
		fields = append(fields, platformconversation.FieldPlatformUserName)
	}
	if m.session_id != nil {
		fields = append(fields, platformconversation.FieldSessionID)
	}
	if m.status != nil {
		fields = append(fields, platformconversation.FieldStatus)
	}
	if m.last_message_at != nil {
		fields = append(fields, platformconversation.FieldLastMessageAt)
	}
	if m.created_at != nil {
		fields = append(fields, platformconversation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PlatformConversationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case platformconversation.FieldBotConfigID:
		return m.BotConfigID()
	case platformconversation.FieldPlatformUserID:
		return m.PlatformUserID()
	case platformconversation.FieldPlatformUserName:
		return m.PlatformUserName()
	case platformconversation.FieldSessionID:
		return m.SessionID()
	case platformconversation.FieldStatus:
		return m.Status()
	case platformconversation.FieldLastMessageAt:
		return m.LastMessageAt()
	case platformconversation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PlatformConversationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case platformconversation.FieldBotConfigID:
		return m.OldBotConfigID(ctx)
	case platformconversation.FieldPlatformUserID:
		return m.OldPlatformUserID(ctx)
	case platformconversation.FieldPlatformUserName:
		return m.OldPlatformUserName(ctx)
	case platformconversation.FieldSessionID:
		return m.OldSessionID(ctx)
	case platformconversation.FieldStatus:
		return m.OldStatus(ctx)
	case platformconversation.FieldLastMessageAt:
		return m.OldLastMessageAt(ctx)
	case platformconversation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PlatformConversation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlatformConversationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case platformconversation.FieldBotConfigID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBotConfigID(v)
		return nil
	case platformconversation.FieldPlatformUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformUserID(v)
		return nil
	case platformconversation.FieldPlatformUserName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlatformUserName(v)
		return nil
	case platformconversation.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case platformconversation.FieldStatus:
		v, ok := value.(platformconversation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case platformconversation.FieldLastMessageAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastMessageAt(v)
		return nil
	case platformconversation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PlatformConversation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PlatformConversationMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PlatformConversationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PlatformConversationMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown PlatformConversation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PlatformConversationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(platformconversation.FieldPlatformUserName) {
		fields = append(fields, platformconversation.FieldPlatformUserName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PlatformConversationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PlatformConversationMutation) ClearField(name string) error {
	switch name {
	case platformconversation.FieldPlatformUserName:
		m.ClearPlatformUserName()
		return nil
	}
	return fmt.Errorf("unknown PlatformConversation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PlatformConversationMutation) ResetField(name string) error {
	switch name {
	case platformconversation.FieldBotConfigID:
		m.ResetBotConfigID()
		return nil
	case platformconversation.FieldPlatformUserID:
		m.ResetPlatformUserID()
		return nil
	case platformconversation.FieldPlatformUserName:
		m.ResetPlatformUserName()
		return nil
	case platformconversation.FieldSessionID:
		m.ResetSessionID()
		return nil
	case platformconversation.FieldStatus:
		m.ResetStatus()
		return nil
	case platformconversation.FieldLastMessageAt:
		m.ResetLastMessageAt()
		return nil
	case platformconversation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PlatformConversation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PlatformConversationMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.bot_config != nil {
		edges = append(edges, platformconversation.EdgeBotConfig)
	}
	if m.messages != nil {
		edges = append(edges, platformconversation.EdgeMessages)
	}
	if m.variables != nil {
		edges = append(edges, platformconversation.EdgeVariables)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PlatformConversationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case platformconversation.EdgeBotConfig:
		if id := m.bot_config; id != nil {
			return []ent.Value{*id}
		}
	case platformconversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.messages))
		for id := range m.messages {
			ids = append(ids, id)
		}
		return ids
	case platformconversation.EdgeVariables:
		ids := make([]ent.Value, 0, len(m.variables))
		for id := range m.variables {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PlatformConversationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedmessages != nil {
		edges = append(edges, platformconversation.EdgeMessages)
	}
	if m.removedvariables != nil {
		edges = append(edges, platformconversation.EdgeVariables)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PlatformConversationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case platformconversation.EdgeMessages:
		ids := make([]ent.Value, 0, len(m.removedmessages))
		for id := range m.removedmessages {
			ids = append(ids, id)
		}
		return ids
	case platformconversation.EdgeVariables:
		ids := make([]ent.Value, 0, len(m.removedvariables))
		for id := range m.removedvariables {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PlatformConversationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedbot_config {
		edges = append(edges, platformconversation.EdgeBotConfig)
	}
	if m.clearedmessages {
		edges = append(edges, platformconversation.EdgeMessages)
	}
	if m.clearedvariables {
		edges = append(edges, platformconversation.EdgeVariables)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PlatformConversationMutation) EdgeCleared(name string) bool {
	switch name {
	case platformconversation.EdgeBotConfig:
		return m.clearedbot_config
	case platformconversation.EdgeMessages:
		return m.clearedmessages
	case platformconversation.EdgeVariables:
		return m.clearedvariables
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PlatformConversationMutation) ClearEdge(name string) error {
	switch name {
	case platformconversation.EdgeBotConfig:
		m.ClearBotConfig()
		return nil
	}
	return fmt.Errorf("unknown PlatformConversation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PlatformConversationMutation) ResetEdge(name string) error {
	switch name {
	case platformconversation.EdgeBotConfig:
		m.ResetBotConfig()
		return nil
	case platformconversation.EdgeMessages:
		m.ResetMessages()
		return nil
	case platformconversation.EdgeVariables:
		m.ResetVariables()
		return nil
	}
	return fmt.Errorf("unknown PlatformConversation edge %s", name)
}
