// Code generated by ent, DO NOT EDIT.

package platformconversation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the platformconversation type in the database.
	Label = "platform_conversation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBotConfigID holds the string denoting the bot_config_id field in the database.
	FieldBotConfigID = "bot_config_id"
	// FieldPlatformUserID holds the string denoting the platform_user_id field in the database.
	FieldPlatformUserID = "platform_user_id"
	// FieldPlatformUserName holds the string denoting the platform_user_name field in the database.
	FieldPlatformUserName = "platform_user_name"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastMessageAt holds the string denoting the last_message_at field in the database.
	FieldLastMessageAt = "last_message_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeBotConfig holds the string denoting the bot_config edge name in mutations.
	EdgeBotConfig = "bot_config"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeVariables holds the string denoting the variables edge name in mutations.
	EdgeVariables = "variables"
	// Table holds the table name of the platformconversation in the database.
	Table = "platform_conversations"
	// BotConfigTable is the table that holds the bot_config relation/edge.
	BotConfigTable = "platform_conversations"
	// BotConfigInverseTable is the table name for the BotConfig entity.
	// It exists in this package in order to avoid circular dependency with the "botconfig" package.
	BotConfigInverseTable = "bot_configs"
	// BotConfigColumn is the table column denoting the bot_config relation/edge.
	BotConfigColumn = "bot_config_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "conversation_messages"
	// MessagesInverseTable is the table name for the ConversationMessage entity.
	// It exists in this package in order to avoid circular dependency with the "conversationmessage" package.
	MessagesInverseTable = "conversation_messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "conversation_id"
	// VariablesTable is the table that holds the variables relation/edge.
	VariablesTable = "extracted_variables"
	// VariablesInverseTable is the table name for the ExtractedVariable entity.
	// It exists in this package in order to avoid circular dependency with the "extractedvariable" package.
	VariablesInverseTable = "extracted_variables"
	// VariablesColumn is the table column denoting the variables relation/edge.
	VariablesColumn = "conversation_id"
)

// Columns holds all SQL columns for platformconversation fields.
var Columns = []string{
	FieldID,
	FieldBotConfigID,
	FieldPlatformUserID,
	FieldPlatformUserName,
	FieldSessionID,
	FieldStatus,
	FieldLastMessageAt,
	FieldCreatedAt,
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
	// DefaultLastMessageAt holds the default value on creation for the "last_message_at" field.
	DefaultLastMessageAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusACTIVE is the default value of the Status enum.
const DefaultStatus = StatusACTIVE

// Status values.
const (
	StatusACTIVE   Status = "ACTIVE"
	StatusINACTIVE Status = "INACTIVE"
	StatusARCHIVED Status = "ARCHIVED"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusACTIVE, StatusINACTIVE, StatusARCHIVED:
		return nil
	default:
		return fmt.Errorf("platformconversation: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the PlatformConversation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotConfigID orders the results by the bot_config_id field.
func ByBotConfigID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotConfigID, opts...).ToFunc()
}

// ByPlatformUserID orders the results by the platform_user_id field.
func ByPlatformUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformUserID, opts...).ToFunc()
}

// ByPlatformUserName orders the results by the platform_user_name field.
func ByPlatformUserName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlatformUserName, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastMessageAt orders the results by the last_message_at field.
func ByLastMessageAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastMessageAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByBotConfigField orders the results by bot_config field.
func ByBotConfigField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBotConfigStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByVariablesCount orders the results by variables count.
func ByVariablesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newVariablesStep(), opts...)
	}
}

// ByVariables orders the results by variables terms.
func ByVariables(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newVariablesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBotConfigStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BotConfigInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BotConfigTable, BotConfigColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newVariablesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(VariablesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, VariablesTable, VariablesColumn),
	)
}
