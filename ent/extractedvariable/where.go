// Code generated by ent, DO NOT EDIT.

package extractedvariable

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldID, id))
}

// ConversationID applies equality check predicate on the "conversation_id" field. It's identical to ConversationIDEQ.
func ConversationID(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldConversationID, v))
}

// NodeID applies equality check predicate on the "node_id" field. It's identical to NodeIDEQ.
func NodeID(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldNodeID, v))
}

// FlowID applies equality check predicate on the "flow_id" field. It's identical to FlowIDEQ.
func FlowID(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldFlowID, v))
}

// VariableName applies equality check predicate on the "variable_name" field. It's identical to VariableNameEQ.
func VariableName(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableName, v))
}

// VariableValue applies equality check predicate on the "variable_value" field. It's identical to VariableValueEQ.
func VariableValue(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableValue, v))
}

// VariableType applies equality check predicate on the "variable_type" field. It's identical to VariableTypeEQ.
func VariableType(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableType, v))
}

// ExtractedAt applies equality check predicate on the "extracted_at" field. It's identical to ExtractedAtEQ.
func ExtractedAt(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldExtractedAt, v))
}

// ConversationIDEQ applies the EQ predicate on the "conversation_id" field.
func ConversationIDEQ(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldConversationID, v))
}

// ConversationIDNEQ applies the NEQ predicate on the "conversation_id" field.
func ConversationIDNEQ(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldConversationID, v))
}

// ConversationIDIn applies the In predicate on the "conversation_id" field.
func ConversationIDIn(vs ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldConversationID, vs...))
}

// ConversationIDNotIn applies the NotIn predicate on the "conversation_id" field.
func ConversationIDNotIn(vs ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldConversationID, vs...))
}

// NodeIDEQ applies the EQ predicate on the "node_id" field.
func NodeIDEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldNodeID, v))
}

// NodeIDNEQ applies the NEQ predicate on the "node_id" field.
func NodeIDNEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldNodeID, v))
}

// NodeIDIn applies the In predicate on the "node_id" field.
func NodeIDIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldNodeID, vs...))
}

// NodeIDNotIn applies the NotIn predicate on the "node_id" field.
func NodeIDNotIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldNodeID, vs...))
}

// NodeIDGT applies the GT predicate on the "node_id" field.
func NodeIDGT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldNodeID, v))
}

// NodeIDGTE applies the GTE predicate on the "node_id" field.
func NodeIDGTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldNodeID, v))
}

// NodeIDLT applies the LT predicate on the "node_id" field.
func NodeIDLT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldNodeID, v))
}

// NodeIDLTE applies the LTE predicate on the "node_id" field.
func NodeIDLTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldNodeID, v))
}

// NodeIDContains applies the Contains predicate on the "node_id" field.
func NodeIDContains(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContains(FieldNodeID, v))
}

// NodeIDHasPrefix applies the HasPrefix predicate on the "node_id" field.
func NodeIDHasPrefix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasPrefix(FieldNodeID, v))
}

// NodeIDHasSuffix applies the HasSuffix predicate on the "node_id" field.
func NodeIDHasSuffix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasSuffix(FieldNodeID, v))
}

// NodeIDEqualFold applies the EqualFold predicate on the "node_id" field.
func NodeIDEqualFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEqualFold(FieldNodeID, v))
}

// NodeIDContainsFold applies the ContainsFold predicate on the "node_id" field.
func NodeIDContainsFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContainsFold(FieldNodeID, v))
}

// FlowIDEQ applies the EQ predicate on the "flow_id" field.
func FlowIDEQ(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldFlowID, v))
}

// FlowIDNEQ applies the NEQ predicate on the "flow_id" field.
func FlowIDNEQ(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldFlowID, v))
}

// FlowIDIn applies the In predicate on the "flow_id" field.
func FlowIDIn(vs ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldFlowID, vs...))
}

// FlowIDNotIn applies the NotIn predicate on the "flow_id" field.
func FlowIDNotIn(vs ...int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldFlowID, vs...))
}

// FlowIDGT applies the GT predicate on the "flow_id" field.
func FlowIDGT(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldFlowID, v))
}

// FlowIDGTE applies the GTE predicate on the "flow_id" field.
func FlowIDGTE(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldFlowID, v))
}

// FlowIDLT applies the LT predicate on the "flow_id" field.
func FlowIDLT(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldFlowID, v))
}

// FlowIDLTE applies the LTE predicate on the "flow_id" field.
func FlowIDLTE(v int) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldFlowID, v))
}

// FlowIDIsNil applies the IsNil predicate on the "flow_id" field.
func FlowIDIsNil() predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIsNull(FieldFlowID))
}

// FlowIDNotNil applies the NotNil predicate on the "flow_id" field.
func FlowIDNotNil() predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotNull(FieldFlowID))
}

// VariableNameEQ applies the EQ predicate on the "variable_name" field.
func VariableNameEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableName, v))
}

// VariableNameNEQ applies the NEQ predicate on the "variable_name" field.
func VariableNameNEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldVariableName, v))
}

// VariableNameIn applies the In predicate on the "variable_name" field.
func VariableNameIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldVariableName, vs...))
}

// VariableNameNotIn applies the NotIn predicate on the "variable_name" field.
func VariableNameNotIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldVariableName, vs...))
}

// VariableNameGT applies the GT predicate on the "variable_name" field.
func VariableNameGT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldVariableName, v))
}

// VariableNameGTE applies the GTE predicate on the "variable_name" field.
func VariableNameGTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldVariableName, v))
}

// VariableNameLT applies the LT predicate on the "variable_name" field.
func VariableNameLT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldVariableName, v))
}

// VariableNameLTE applies the LTE predicate on the "variable_name" field.
func VariableNameLTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldVariableName, v))
}

// VariableNameContains applies the Contains predicate on the "variable_name" field.
func VariableNameContains(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContains(FieldVariableName, v))
}

// VariableNameHasPrefix applies the HasPrefix predicate on the "variable_name" field.
func VariableNameHasPrefix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasPrefix(FieldVariableName, v))
}

// VariableNameHasSuffix applies the HasSuffix predicate on the "variable_name" field.
func VariableNameHasSuffix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasSuffix(FieldVariableName, v))
}

// VariableNameEqualFold applies the EqualFold predicate on the "variable_name" field.
func VariableNameEqualFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEqualFold(FieldVariableName, v))
}

// VariableNameContainsFold applies the ContainsFold predicate on the "variable_name" field.
func VariableNameContainsFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContainsFold(FieldVariableName, v))
}

// VariableValueEQ applies the EQ predicate on the "variable_value" field.
func VariableValueEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableValue, v))
}

// VariableValueNEQ applies the NEQ predicate on the "variable_value" field.
func VariableValueNEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldVariableValue, v))
}

// VariableValueIn applies the In predicate on the "variable_value" field.
func VariableValueIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldVariableValue, vs...))
}

// VariableValueNotIn applies the NotIn predicate on the "variable_value" field.
func VariableValueNotIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldVariableValue, vs...))
}

// VariableValueGT applies the GT predicate on the "variable_value" field.
func VariableValueGT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldVariableValue, v))
}

// VariableValueGTE applies the GTE predicate on the "variable_value" field.
func VariableValueGTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldVariableValue, v))
}

// VariableValueLT applies the LT predicate on the "variable_value" field.
func VariableValueLT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldVariableValue, v))
}

// VariableValueLTE applies the LTE predicate on the "variable_value" field.
func VariableValueLTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldVariableValue, v))
}

// VariableValueContains applies the Contains predicate on the "variable_value" field.
func VariableValueContains(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContains(FieldVariableValue, v))
}

// VariableValueHasPrefix applies the HasPrefix predicate on the "variable_value" field.
func VariableValueHasPrefix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasPrefix(FieldVariableValue, v))
}

// VariableValueHasSuffix applies the HasSuffix predicate on the "variable_value" field.
func VariableValueHasSuffix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasSuffix(FieldVariableValue, v))
}

// VariableValueEqualFold applies the EqualFold predicate on the "variable_value" field.
func VariableValueEqualFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEqualFold(FieldVariableValue, v))
}

// VariableValueContainsFold applies the ContainsFold predicate on the "variable_value" field.
func VariableValueContainsFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContainsFold(FieldVariableValue, v))
}

// VariableTypeEQ applies the EQ predicate on the "variable_type" field.
func VariableTypeEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldVariableType, v))
}

// VariableTypeNEQ applies the NEQ predicate on the "variable_type" field.
func VariableTypeNEQ(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldVariableType, v))
}

// VariableTypeIn applies the In predicate on the "variable_type" field.
func VariableTypeIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldVariableType, vs...))
}

// VariableTypeNotIn applies the NotIn predicate on the "variable_type" field.
func VariableTypeNotIn(vs ...string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldVariableType, vs...))
}

// VariableTypeGT applies the GT predicate on the "variable_type" field.
func VariableTypeGT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldVariableType, v))
}

// VariableTypeGTE applies the GTE predicate on the "variable_type" field.
func VariableTypeGTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldVariableType, v))
}

// VariableTypeLT applies the LT predicate on the "variable_type" field.
func VariableTypeLT(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldVariableType, v))
}

// VariableTypeLTE applies the LTE predicate on the "variable_type" field.
func VariableTypeLTE(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldVariableType, v))
}

// VariableTypeContains applies the Contains predicate on the "variable_type" field.
func VariableTypeContains(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContains(FieldVariableType, v))
}

// VariableTypeHasPrefix applies the HasPrefix predicate on the "variable_type" field.
func VariableTypeHasPrefix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasPrefix(FieldVariableType, v))
}

// VariableTypeHasSuffix applies the HasSuffix predicate on the "variable_type" field.
func VariableTypeHasSuffix(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldHasSuffix(FieldVariableType, v))
}

// VariableTypeIsNil applies the IsNil predicate on the "variable_type" field.
func VariableTypeIsNil() predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIsNull(FieldVariableType))
}

// VariableTypeNotNil applies the NotNil predicate on the "variable_type" field.
func VariableTypeNotNil() predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotNull(FieldVariableType))
}

// VariableTypeEqualFold applies the EqualFold predicate on the "variable_type" field.
func VariableTypeEqualFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEqualFold(FieldVariableType, v))
}

// VariableTypeContainsFold applies the ContainsFold predicate on the "variable_type" field.
func VariableTypeContainsFold(v string) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldContainsFold(FieldVariableType, v))
}

// ExtractedAtEQ applies the EQ predicate on the "extracted_at" field.
func ExtractedAtEQ(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldEQ(FieldExtractedAt, v))
}

// ExtractedAtNEQ applies the NEQ predicate on the "extracted_at" field.
func ExtractedAtNEQ(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNEQ(FieldExtractedAt, v))
}

// ExtractedAtIn applies the In predicate on the "extracted_at" field.
func ExtractedAtIn(vs ...time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldIn(FieldExtractedAt, vs...))
}

// ExtractedAtNotIn applies the NotIn predicate on the "extracted_at" field.
func ExtractedAtNotIn(vs ...time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldNotIn(FieldExtractedAt, vs...))
}

// ExtractedAtGT applies the GT predicate on the "extracted_at" field.
func ExtractedAtGT(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGT(FieldExtractedAt, v))
}

// ExtractedAtGTE applies the GTE predicate on the "extracted_at" field.
func ExtractedAtGTE(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldGTE(FieldExtractedAt, v))
}

// ExtractedAtLT applies the LT predicate on the "extracted_at" field.
func ExtractedAtLT(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLT(FieldExtractedAt, v))
}

// ExtractedAtLTE applies the LTE predicate on the "extracted_at" field.
func ExtractedAtLTE(v time.Time) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.FieldLTE(FieldExtractedAt, v))
}

// HasConversation applies the HasEdge predicate on the "conversation" edge.
func HasConversation() predicate.ExtractedVariable {
	return predicate.ExtractedVariable(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasConversationWith applies the HasEdge predicate on the "conversation" edge with a given conditions (other predicates).
func HasConversationWith(preds ...predicate.PlatformConversation) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(func(s *sql.Selector) {
		step := newConversationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractedVariable) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractedVariable) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractedVariable) predicate.ExtractedVariable {
	return predicate.ExtractedVariable(sql.NotPredicates(p))
}
