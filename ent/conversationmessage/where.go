// Code generated by ent, DO NOT EDIT.

package conversationmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLTE(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldConversationID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldContent, v))
}

// PlatformMessageID applies equality check predicate on the "platform_message_id" field. It's identical to PlatformMessageIDEQ.
func PlatformMessageID(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldPlatformMessageID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...int) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldConversationID, vs...))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v Role) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v Role) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...Role) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...Role) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldRole, vs...))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldContainsFold(FieldContent, v))
}

// PlatformMessageIDEQ applies the EQ predicate on the "platform_message_id" field.
func PlatformMessageIDEQ(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldPlatformMessageID, v))
}

// PlatformMessageIDNEQ applies the NEQ predicate on the "platform_message_id" field.
func PlatformMessageIDNEQ(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldPlatformMessageID, v))
}

// PlatformMessageIDIn applies the In predicate on the "platform_message_id" field.
func PlatformMessageIDIn(vs ...string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldPlatformMessageID, vs...))
}

// PlatformMessageIDNotIn applies the NotIn predicate on the "platform_message_id" field.
func PlatformMessageIDNotIn(vs ...string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldPlatformMessageID, vs...))
}

// PlatformMessageIDGT applies the GT predicate on the "platform_message_id" field.
func PlatformMessageIDGT(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGT(FieldPlatformMessageID, v))
}

// PlatformMessageIDGTE applies the GTE predicate on the "platform_message_id" field.
func PlatformMessageIDGTE(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGTE(FieldPlatformMessageID, v))
}

// PlatformMessageIDLT applies the LT predicate on the "platform_message_id" field.
func PlatformMessageIDLT(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLT(FieldPlatformMessageID, v))
}

// PlatformMessageIDLTE applies the LTE predicate on the "platform_message_id" field.
func PlatformMessageIDLTE(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLTE(FieldPlatformMessageID, v))
}

// PlatformMessageIDContains applies the Contains predicate on the "platform_message_id" field.
func PlatformMessageIDContains(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldContains(FieldPlatformMessageID, v))
}

// PlatformMessageIDHasPrefix applies the HasPrefix predicate on the "platform_message_id" field.
func PlatformMessageIDHasPrefix(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldHasPrefix(FieldPlatformMessageID, v))
}

// PlatformMessageIDHasSuffix applies the HasSuffix predicate on the "platform_message_id" field.
func PlatformMessageIDHasSuffix(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldHasSuffix(FieldPlatformMessageID, v))
}

// PlatformMessageIDIsNil applies the IsNil predicate on the "platform_message_id" field.
func PlatformMessageIDIsNil() predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIsNull(FieldPlatformMessageID))
}

// PlatformMessageIDNotNil applies the NotNil predicate on the "platform_message_id" field.
func PlatformMessageIDNotNil() predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotNull(FieldPlatformMessageID))
}

// PlatformMessageIDEqualFold applies the EqualFold predicate on the "platform_message_id" field.
func PlatformMessageIDEqualFold(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEqualFold(FieldPlatformMessageID, v))
}

// PlatformMessageIDContainsFold applies the ContainsFold predicate on the "platform_message_id" field.
func PlatformMessageIDContainsFold(v string) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldContainsFold(FieldPlatformMessageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ConversationMessage {
	return predicate.ConversationMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.PlatformConversation) predicate.ConversationMessage {
	return predicate.ConversationMessage(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ConversationMessage) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ConversationMessage) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ConversationMessage) predicate.ConversationMessage {
	return predicate.ConversationMessage(sql.NotPredicates(p))
}
