// Code generated by ent, DO NOT EDIT.

package botconfig

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldID, id))
}

// BotName applies equality check predicate on the "bot_name" field. It's identical to BotNameEQ.
func BotName(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldBotName, v))
}

// BotTokenEncrypted applies equality check predicate on the "bot_token_encrypted" field. It's identical to BotTokenEncryptedEQ.
func BotTokenEncrypted(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldBotTokenEncrypted, v))
}

// FlowID applies equality check predicate on the "flow_id" field. It's identical to FlowIDEQ.
func FlowID(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldFlowID, v))
}

// OwnerID applies equality check predicate on the "owner_id" field. It's identical to OwnerIDEQ.
func OwnerID(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldOwnerID, v))
}

// IsActive applies equality check predicate on the "is_active" field. It's identical to IsActiveEQ.
func IsActive(v bool) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldIsActive, v))
}

// WebhookURL applies equality check predicate on the "webhook_url" field. It's identical to WebhookURLEQ.
func WebhookURL(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookSecret applies equality check predicate on the "webhook_secret" field. It's identical to WebhookSecretEQ.
func WebhookSecret(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldWebhookSecret, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// PlatformEQ applies the EQ predicate on the "platform" field.
func PlatformEQ(v Platform) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldPlatform, v))
}

// PlatformNEQ applies the NEQ predicate on the "platform" field.
func PlatformNEQ(v Platform) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldPlatform, v))
}

// PlatformIn applies the In predicate on the "platform" field.
func PlatformIn(vs ...Platform) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldPlatform, vs...))
}

// PlatformNotIn applies the NotIn predicate on the "platform" field.
func PlatformNotIn(vs ...Platform) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldPlatform, vs...))
}

// BotNameEQ applies the EQ predicate on the "bot_name" field.
func BotNameEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldBotName, v))
}

// BotNameNEQ applies the NEQ predicate on the "bot_name" field.
func BotNameNEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldBotName, v))
}

// BotNameIn applies the In predicate on the "bot_name" field.
func BotNameIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldBotName, vs...))
}

// BotNameNotIn applies the NotIn predicate on the "bot_name" field.
func BotNameNotIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldBotName, vs...))
}

// BotNameGT applies the GT predicate on the "bot_name" field.
func BotNameGT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldBotName, v))
}

// BotNameGTE applies the GTE predicate on the "bot_name" field.
func BotNameGTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldBotName, v))
}

// BotNameLT applies the LT predicate on the "bot_name" field.
func BotNameLT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldBotName, v))
}

// BotNameLTE applies the LTE predicate on the "bot_name" field.
func BotNameLTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldBotName, v))
}

// BotNameContains applies the Contains predicate on the "bot_name" field.
func BotNameContains(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContains(FieldBotName, v))
}

// BotNameHasPrefix applies the HasPrefix predicate on the "bot_name" field.
func BotNameHasPrefix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasPrefix(FieldBotName, v))
}

// BotNameHasSuffix applies the HasSuffix predicate on the "bot_name" field.
func BotNameHasSuffix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasSuffix(FieldBotName, v))
}

// BotNameIsNil applies the IsNil predicate on the "bot_name" field.
func BotNameIsNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIsNull(FieldBotName))
}

// BotNameNotNil applies the NotNil predicate on the "bot_name" field.
func BotNameNotNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotNull(FieldBotName))
}

// BotNameEqualFold applies the EqualFold predicate on the "bot_name" field.
func BotNameEqualFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEqualFold(FieldBotName, v))
}

// BotNameContainsFold applies the ContainsFold predicate on the "bot_name" field.
func BotNameContainsFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContainsFold(FieldBotName, v))
}

// BotTokenEncryptedEQ applies the EQ predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedNEQ applies the NEQ predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedNEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedIn applies the In predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldBotTokenEncrypted, vs...))
}

// BotTokenEncryptedNotIn applies the NotIn predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedNotIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldBotTokenEncrypted, vs...))
}

// BotTokenEncryptedGT applies the GT predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedGT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedGTE applies the GTE predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedGTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedLT applies the LT predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedLT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedLTE applies the LTE predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedLTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedContains applies the Contains predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedContains(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContains(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedHasPrefix applies the HasPrefix predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedHasPrefix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasPrefix(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedHasSuffix applies the HasSuffix predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedHasSuffix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasSuffix(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedEqualFold applies the EqualFold predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedEqualFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEqualFold(FieldBotTokenEncrypted, v))
}

// BotTokenEncryptedContainsFold applies the ContainsFold predicate on the "bot_token_encrypted" field.
func BotTokenEncryptedContainsFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContainsFold(FieldBotTokenEncrypted, v))
}

// FlowIDEQ applies the EQ predicate on the "flow_id" field.
func FlowIDEQ(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldFlowID, v))
}

// FlowIDNEQ applies the NEQ predicate on the "flow_id" field.
func FlowIDNEQ(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldFlowID, v))
}

// FlowIDIn applies the In predicate on the "flow_id" field.
func FlowIDIn(vs ...int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldFlowID, vs...))
}

// FlowIDNotIn applies the NotIn predicate on the "flow_id" field.
func FlowIDNotIn(vs ...int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldFlowID, vs...))
}

// FlowIDGT applies the GT predicate on the "flow_id" field.
func FlowIDGT(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldFlowID, v))
}

// FlowIDGTE applies the GTE predicate on the "flow_id" field.
func FlowIDGTE(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldFlowID, v))
}

// FlowIDLT applies the LT predicate on the "flow_id" field.
func FlowIDLT(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldFlowID, v))
}

// FlowIDLTE applies the LTE predicate on the "flow_id" field.
func FlowIDLTE(v int) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldFlowID, v))
}

// OwnerIDEQ applies the EQ predicate on the "owner_id" field.
func OwnerIDEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldOwnerID, v))
}

// OwnerIDNEQ applies the NEQ predicate on the "owner_id" field.
func OwnerIDNEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldOwnerID, v))
}

// OwnerIDIn applies the In predicate on the "owner_id" field.
func OwnerIDIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldOwnerID, vs...))
}

// OwnerIDNotIn applies the NotIn predicate on the "owner_id" field.
func OwnerIDNotIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldOwnerID, vs...))
}

// OwnerIDGT applies the GT predicate on the "owner_id" field.
func OwnerIDGT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldOwnerID, v))
}

// OwnerIDGTE applies the GTE predicate on the "owner_id" field.
func OwnerIDGTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldOwnerID, v))
}

// OwnerIDLT applies the LT predicate on the "owner_id" field.
func OwnerIDLT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldOwnerID, v))
}

// OwnerIDLTE applies the LTE predicate on the "owner_id" field.
func OwnerIDLTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldOwnerID, v))
}

// OwnerIDContains applies the Contains predicate on the "owner_id" field.
func OwnerIDContains(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContains(FieldOwnerID, v))
}

// OwnerIDHasPrefix applies the HasPrefix predicate on the "owner_id" field.
func OwnerIDHasPrefix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasPrefix(FieldOwnerID, v))
}

// OwnerIDHasSuffix applies the HasSuffix predicate on the "owner_id" field.
func OwnerIDHasSuffix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasSuffix(FieldOwnerID, v))
}

// OwnerIDEqualFold applies the EqualFold predicate on the "owner_id" field.
func OwnerIDEqualFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEqualFold(FieldOwnerID, v))
}

// OwnerIDContainsFold applies the ContainsFold predicate on the "owner_id" field.
func OwnerIDContainsFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContainsFold(FieldOwnerID, v))
}

// IsActiveEQ applies the EQ predicate on the "is_active" field.
func IsActiveEQ(v bool) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldIsActive, v))
}

// IsActiveNEQ applies the NEQ predicate on the "is_active" field.
func IsActiveNEQ(v bool) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldIsActive, v))
}

// WebhookURLEQ applies the EQ predicate on the "webhook_url" field.
func WebhookURLEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldWebhookURL, v))
}

// WebhookURLNEQ applies the NEQ predicate on the "webhook_url" field.
func WebhookURLNEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldWebhookURL, v))
}

// WebhookURLIn applies the In predicate on the "webhook_url" field.
func WebhookURLIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldWebhookURL, vs...))
}

// WebhookURLNotIn applies the NotIn predicate on the "webhook_url" field.
func WebhookURLNotIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldWebhookURL, vs...))
}

// WebhookURLGT applies the GT predicate on the "webhook_url" field.
func WebhookURLGT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldWebhookURL, v))
}

// WebhookURLGTE applies the GTE predicate on the "webhook_url" field.
func WebhookURLGTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldWebhookURL, v))
}

// WebhookURLLT applies the LT predicate on the "webhook_url" field.
func WebhookURLLT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldWebhookURL, v))
}

// WebhookURLLTE applies the LTE predicate on the "webhook_url" field.
func WebhookURLLTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldWebhookURL, v))
}

// WebhookURLContains applies the Contains predicate on the "webhook_url" field.
func WebhookURLContains(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContains(FieldWebhookURL, v))
}

// WebhookURLHasPrefix applies the HasPrefix predicate on the "webhook_url" field.
func WebhookURLHasPrefix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasPrefix(FieldWebhookURL, v))
}

// WebhookURLHasSuffix applies the HasSuffix predicate on the "webhook_url" field.
func WebhookURLHasSuffix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasSuffix(FieldWebhookURL, v))
}

// WebhookURLIsNil applies the IsNil predicate on the "webhook_url" field.
func WebhookURLIsNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIsNull(FieldWebhookURL))
}

// WebhookURLNotNil applies the NotNil predicate on the "webhook_url" field.
func WebhookURLNotNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotNull(FieldWebhookURL))
}

// WebhookURLEqualFold applies the EqualFold predicate on the "webhook_url" field.
func WebhookURLEqualFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEqualFold(FieldWebhookURL, v))
}

// WebhookURLContainsFold applies the ContainsFold predicate on the "webhook_url" field.
func WebhookURLContainsFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContainsFold(FieldWebhookURL, v))
}

// WebhookSecretEQ applies the EQ predicate on the "webhook_secret" field.
func WebhookSecretEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldWebhookSecret, v))
}

// WebhookSecretNEQ applies the NEQ predicate on the "webhook_secret" field.
func WebhookSecretNEQ(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldWebhookSecret, v))
}

// WebhookSecretIn applies the In predicate on the "webhook_secret" field.
func WebhookSecretIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldWebhookSecret, vs...))
}

// WebhookSecretNotIn applies the NotIn predicate on the "webhook_secret" field.
func WebhookSecretNotIn(vs ...string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldWebhookSecret, vs...))
}

// WebhookSecretGT applies the GT predicate on the "webhook_secret" field.
func WebhookSecretGT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldWebhookSecret, v))
}

// WebhookSecretGTE applies the GTE predicate on the "webhook_secret" field.
func WebhookSecretGTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldWebhookSecret, v))
}

// WebhookSecretLT applies the LT predicate on the "webhook_secret" field.
func WebhookSecretLT(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldWebhookSecret, v))
}

// WebhookSecretLTE applies the LTE predicate on the "webhook_secret" field.
func WebhookSecretLTE(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldWebhookSecret, v))
}

// WebhookSecretContains applies the Contains predicate on the "webhook_secret" field.
func WebhookSecretContains(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContains(FieldWebhookSecret, v))
}

// WebhookSecretHasPrefix applies the HasPrefix predicate on the "webhook_secret" field.
func WebhookSecretHasPrefix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasPrefix(FieldWebhookSecret, v))
}

// WebhookSecretHasSuffix applies the HasSuffix predicate on the "webhook_secret" field.
func WebhookSecretHasSuffix(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldHasSuffix(FieldWebhookSecret, v))
}

// WebhookSecretIsNil applies the IsNil predicate on the "webhook_secret" field.
func WebhookSecretIsNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIsNull(FieldWebhookSecret))
}

// WebhookSecretNotNil applies the NotNil predicate on the "webhook_secret" field.
func WebhookSecretNotNil() predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotNull(FieldWebhookSecret))
}

// WebhookSecretEqualFold applies the EqualFold predicate on the "webhook_secret" field.
func WebhookSecretEqualFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEqualFold(FieldWebhookSecret, v))
}

// WebhookSecretContainsFold applies the ContainsFold predicate on the "webhook_secret" field.
func WebhookSecretContainsFold(v string) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldContainsFold(FieldWebhookSecret, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BotConfig {
	return predicate.BotConfig(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasConversations applies the HasEdge predicate on the "conversations" edge.
func HasConversations() predicate.BotConfig {
	return predicate.BotConfig(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ConversationsTable, ConversationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationsWith applies the HasEdge predicate on the "conversations" edge with a given conditions (other predicates).
func HasConversationsWith(preds ...predicate.PlatformConversation) predicate.BotConfig {
	return predicate.BotConfig(func(s *sql.Selector) {
		step := newConversationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BotConfig) predicate.BotConfig {
	return predicate.BotConfig(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BotConfig) predicate.BotConfig {
	return predicate.BotConfig(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BotConfig) predicate.BotConfig {
	return predicate.BotConfig(sql.NotPredicates(p))
}
