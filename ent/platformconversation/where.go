// Code generated by ent, DO NOT EDIT.

package platformconversation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldID, id))
}

// BotConfigID applies equality check predicate on the "bot_config_id" field. It's identical to BotConfigIDEQ.
func BotConfigID(v int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldBotConfigID, v))
}

// PlatformUserID applies equality check predicate on the "platform_user_id" field. It's identical to PlatformUserIDEQ.
func PlatformUserID(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldPlatformUserID, v))
}

// PlatformUserName applies equality check predicate on the "platform_user_name" field. It's identical to PlatformUserNameEQ.
func PlatformUserName(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldPlatformUserName, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldSessionID, v))
}

// LastMessageAt applies equality check predicate on the "last_message_at" field. It's identical to LastMessageAtEQ.
func LastMessageAt(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldCreatedAt, v))
}

// BotConfigIDEQ applies the EQ predicate on the "bot_config_id" field.
func BotConfigIDEQ(v int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldBotConfigID, v))
}

// BotConfigIDNEQ applies the NEQ predicate on the "bot_config_id" field.
func BotConfigIDNEQ(v int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldBotConfigID, v))
}

// BotConfigIDIn applies the In predicate on the "bot_config_id" field.
func BotConfigIDIn(vs ...int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldBotConfigID, vs...))
}

// BotConfigIDNotIn applies the NotIn predicate on the "bot_config_id" field.
func BotConfigIDNotIn(vs ...int) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldBotConfigID, vs...))
}

// PlatformUserIDEQ applies the EQ predicate on the "platform_user_id" field.
func PlatformUserIDEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldPlatformUserID, v))
}

// PlatformUserIDNEQ applies the NEQ predicate on the "platform_user_id" field.
func PlatformUserIDNEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldPlatformUserID, v))
}

// PlatformUserIDIn applies the In predicate on the "platform_user_id" field.
func PlatformUserIDIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldPlatformUserID, vs...))
}

// PlatformUserIDNotIn applies the NotIn predicate on the "platform_user_id" field.
func PlatformUserIDNotIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldPlatformUserID, vs...))
}

// PlatformUserIDGT applies the GT predicate on the "platform_user_id" field.
func PlatformUserIDGT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldPlatformUserID, v))
}

// PlatformUserIDGTE applies the GTE predicate on the "platform_user_id" field.
func PlatformUserIDGTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldPlatformUserID, v))
}

// PlatformUserIDLT applies the LT predicate on the "platform_user_id" field.
func PlatformUserIDLT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldPlatformUserID, v))
}

// PlatformUserIDLTE applies the LTE predicate on the "platform_user_id" field.
func PlatformUserIDLTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldPlatformUserID, v))
}

// PlatformUserIDContains applies the Contains predicate on the "platform_user_id" field.
func PlatformUserIDContains(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContains(FieldPlatformUserID, v))
}

// PlatformUserIDHasPrefix applies the HasPrefix predicate on the "platform_user_id" field.
func PlatformUserIDHasPrefix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasPrefix(FieldPlatformUserID, v))
}

// PlatformUserIDHasSuffix applies the HasSuffix predicate on the "platform_user_id" field.
func PlatformUserIDHasSuffix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasSuffix(FieldPlatformUserID, v))
}

// PlatformUserIDEqualFold applies the EqualFold predicate on the "platform_user_id" field.
func PlatformUserIDEqualFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEqualFold(FieldPlatformUserID, v))
}

// PlatformUserIDContainsFold applies the ContainsFold predicate on the "platform_user_id" field.
func PlatformUserIDContainsFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContainsFold(FieldPlatformUserID, v))
}

// PlatformUserNameEQ applies the EQ predicate on the "platform_user_name" field.
func PlatformUserNameEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldPlatformUserName, v))
}

// PlatformUserNameNEQ applies the NEQ predicate on the "platform_user_name" field.
func PlatformUserNameNEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldPlatformUserName, v))
}

// PlatformUserNameIn applies the In predicate on the "platform_user_name" field.
func PlatformUserNameIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldPlatformUserName, vs...))
}

// PlatformUserNameNotIn applies the NotIn predicate on the "platform_user_name" field.
func PlatformUserNameNotIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldPlatformUserName, vs...))
}

// PlatformUserNameGT applies the GT predicate on the "platform_user_name" field.
func PlatformUserNameGT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldPlatformUserName, v))
}

// PlatformUserNameGTE applies the GTE predicate on the "platform_user_name" field.
func PlatformUserNameGTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldPlatformUserName, v))
}

// PlatformUserNameLT applies the LT predicate on the "platform_user_name" field.
func PlatformUserNameLT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldPlatformUserName, v))
}

// PlatformUserNameLTE applies the LTE predicate on the "platform_user_name" field.
func PlatformUserNameLTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldPlatformUserName, v))
}

// PlatformUserNameContains applies the Contains predicate on the "platform_user_name" field.
func PlatformUserNameContains(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContains(FieldPlatformUserName, v))
}

// PlatformUserNameHasPrefix applies the HasPrefix predicate on the "platform_user_name" field.
func PlatformUserNameHasPrefix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasPrefix(FieldPlatformUserName, v))
}

// PlatformUserNameHasSuffix applies the HasSuffix predicate on the "platform_user_name" field.
func PlatformUserNameHasSuffix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasSuffix(FieldPlatformUserName, v))
}

// PlatformUserNameIsNil applies the IsNil predicate on the "platform_user_name" field.
func PlatformUserNameIsNil() predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIsNull(FieldPlatformUserName))
}

// PlatformUserNameNotNil applies the NotNil predicate on the "platform_user_name" field.
func PlatformUserNameNotNil() predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotNull(FieldPlatformUserName))
}

// PlatformUserNameEqualFold applies the EqualFold predicate on the "platform_user_name" field.
func PlatformUserNameEqualFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEqualFold(FieldPlatformUserName, v))
}

// PlatformUserNameContainsFold applies the ContainsFold predicate on the "platform_user_name" field.
func PlatformUserNameContainsFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContainsFold(FieldPlatformUserName, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldContainsFold(FieldSessionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldStatus, vs...))
}

// LastMessageAtEQ applies the EQ predicate on the "last_message_at" field.
func LastMessageAtEQ(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldLastMessageAt, v))
}

// LastMessageAtNEQ applies the NEQ predicate on the "last_message_at" field.
func LastMessageAtNEQ(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldLastMessageAt, v))
}

// LastMessageAtIn applies the In predicate on the "last_message_at" field.
func LastMessageAtIn(vs ...time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldLastMessageAt, vs...))
}

// LastMessageAtNotIn applies the NotIn predicate on the "last_message_at" field.
func LastMessageAtNotIn(vs ...time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldLastMessageAt, vs...))
}

// LastMessageAtGT applies the GT predicate on the "last_message_at" field.
func LastMessageAtGT(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldLastMessageAt, v))
}

// LastMessageAtGTE applies the GTE predicate on the "last_message_at" field.
func LastMessageAtGTE(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldLastMessageAt, v))
}

// LastMessageAtLT applies the LT predicate on the "last_message_at" field.
func LastMessageAtLT(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldLastMessageAt, v))
}

// LastMessageAtLTE applies the LTE predicate on the "last_message_at" field.
func LastMessageAtLTE(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldLastMessageAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.FieldLTE(FieldCreatedAt, v))
}

// HasBotConfig applies the HasEdge predicate on the "bot_config" edge.
func HasBotConfig() predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BotConfigTable, BotConfigColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotConfigWith applies the HasEdge predicate on the "bot_config" edge with a given conditions (other predicates).
func HasBotConfigWith(preds ...predicate.BotConfig) predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := newBotConfigStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.ConversationMessage) predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasVariables applies the HasEdge predicate on the "variables" edge.
func HasVariables() predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, VariablesTable, VariablesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasVariablesWith applies the HasEdge predicate on the "variables" edge with a given conditions (other predicates).
func HasVariablesWith(preds ...predicate.ExtractedVariable) predicate.PlatformConversation {
	return predicate.PlatformConversation(func(s *sql.Selector) {
		step := newVariablesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlatformConversation) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlatformConversation) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlatformConversation) predicate.PlatformConversation {
	return predicate.PlatformConversation(sql.NotPredicates(p))
}
