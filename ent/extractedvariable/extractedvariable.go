// Code generated by ent, DO NOT EDIT.

package extractedvariable

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extractedvariable type in the database.
	Label = "extracted_variable"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldConversationID holds the string denoting the conversation_id field in the database.
	FieldConversationID = "conversation_id"
	// FieldNodeID holds the string denoting the node_id field in the database.
	FieldNodeID = "node_id"
	// FieldFlowID holds the string denoting the flow_id field in the database.
	FieldFlowID = "flow_id"
	// FieldVariableName holds the string denoting the variable_name field in the database.
	FieldVariableName = "variable_name"
	// FieldVariableValue holds the string denoting the variable_value field in the database.
	FieldVariableValue = "variable_value"
	// FieldVariableType holds the string denoting the variable_type field in the database.
	FieldVariableType = "variable_type"
	// FieldExtractedAt holds the string denoting the extracted_at field in the database.
	FieldExtractedAt = "extracted_at"
	// EdgeConversation holds the string denoting the conversation edge name in mutations.
	EdgeConversation = "conversation"
	// Table holds the table name of the extractedvariable in the database.
	Table = "extracted_variables"
	// ConversationTable is the table that holds the conversation relation/edge.
	ConversationTable = "extracted_variables"
	// ConversationInverseTable is the table name for the PlatformConversation entity.
	// It exists in this package in order to avoid circular dependency with the "platformconversation" package.
	ConversationInverseTable = "platform_conversations"
	// ConversationColumn is the table column denoting the conversation relation/edge.
	ConversationColumn = "conversation_id"
)

// Columns holds all SQL columns for extractedvariable fields.
var Columns = []string{
	FieldID,
	FieldConversationID,
	FieldNodeID,
	FieldFlowID,
	FieldVariableName,
	FieldVariableValue,
	FieldVariableType,
	FieldExtractedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExtractedAt holds the default value on creation for the "extracted_at" field.
	DefaultExtractedAt func() time.Time
	// UpdateDefaultExtractedAt holds the default value on update for the "extracted_at" field.
	UpdateDefaultExtractedAt func() time.Time
)

// OrderOption defines the ordering options for the ExtractedVariable queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByConversationID orders the results by the conversation_id field.
func ByConversationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationID, opts...).ToFunc()
}

// ByNodeID orders the results by the node_id field.
func ByNodeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNodeID, opts...).ToFunc()
}

// ByFlowID orders the results by the flow_id field.
func ByFlowID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlowID, opts...).ToFunc()
}

// ByVariableName orders the results by the variable_name field.
func ByVariableName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariableName, opts...).ToFunc()
}

// ByVariableValue orders the results by the variable_value field.
func ByVariableValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariableValue, opts...).ToFunc()
}

// ByVariableType orders the results by the variable_type field.
func ByVariableType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariableType, opts...).ToFunc()
}

// ByExtractedAt orders the results by the extracted_at field.
func ByExtractedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExtractedAt, opts...).ToFunc()
}

// ByConversationField orders the results by conversation field.
func ByConversationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newConversationStep(), sql.OrderByField(field, opts...))
	}
}
func newConversationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ConversationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ConversationTable, ConversationColumn),
	)
}
