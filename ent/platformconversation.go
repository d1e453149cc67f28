// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/platformconversation"
)

// PlatformConversation is the model entity for the PlatformConversation schema.
type PlatformConversation struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// BotConfigID holds the value of the "bot_config_id" field.
	BotConfigID int `json:"bot_config_id,omitempty"`
	// Platform-side user identity (chat id, phone number)
	PlatformUserID string `json:"platform_user_id,omitempty"`
	// PlatformUserName holds the value of the "platform_user_name" field.
	PlatformUserName string `json:"platform_user_name,omitempty"`
	// Engine session key
	SessionID string `json:"session_id,omitempty"`
	// Status holds the value of the "status" field.
	Status platformconversation.Status `json:"status,omitempty"`
	// LastMessageAt holds the value of the "last_message_at" field.
	LastMessageAt time.Time `json:"last_message_at,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PlatformConversationQuery when eager-loading is set.
	Edges        PlatformConversationEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PlatformConversationEdges holds the relations/edges for other nodes in the graph.
type PlatformConversationEdges struct {
	// BotConfig holds the value of the bot_config edge.
	BotConfig *BotConfig `json:"bot_config,omitempty"`
	// Messages holds the value of the messages edge.
	Messages []*ConversationMessage `json:"messages,omitempty"`
	// Variables holds the value of the variables edge.
	Variables []*ExtractedVariable `json:"variables,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// BotConfigOrErr returns the BotConfig value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PlatformConversationEdges) BotConfigOrErr() (*BotConfig, error) {
	if e.BotConfig != nil {
		return e.BotConfig, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: botconfig.Label}
	}
	return nil, &NotLoadedError{edge: "bot_config"}
}

// MessagesOrErr returns the Messages value or an error if the edge
// was not loaded in eager-loading.
func (e PlatformConversationEdges) MessagesOrErr() ([]*ConversationMessage, error) {
	if e.loadedTypes[1] {
		return e.Messages, nil
	}
	return nil, &NotLoadedError{edge: "messages"}
}

// VariablesOrErr returns the Variables value or an error if the edge
// was not loaded in eager-loading.
func (e PlatformConversationEdges) VariablesOrErr() ([]*ExtractedVariable, error) {
	if e.loadedTypes[2] {
		return e.Variables, nil
	}
	return nil, &NotLoadedError{edge: "variables"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlatformConversation) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case platformconversation.FieldID, platformconversation.FieldBotConfigID:
			values[i] = new(sql.NullInt64)
		case platformconversation.FieldPlatformUserID, platformconversation.FieldPlatformUserName, platformconversation.FieldSessionID, platformconversation.FieldStatus:
			values[i] = new(sql.NullString)
		case platformconversation.FieldLastMessageAt, platformconversation.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlatformConversation fields.
func (_m *PlatformConversation) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case platformconversation.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case platformconversation.FieldBotConfigID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bot_config_id", values[i])
			} else if value.Valid {
				_m.BotConfigID = int(value.Int64)
			}
		case platformconversation.FieldPlatformUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_user_id", values[i])
			} else if value.Valid {
				_m.PlatformUserID = value.String
			}
		case platformconversation.FieldPlatformUserName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform_user_name", values[i])
			} else if value.Valid {
				_m.PlatformUserName = value.String
			}
		case platformconversation.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case platformconversation.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = platformconversation.Status(value.String)
			}
		case platformconversation.FieldLastMessageAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_message_at", values[i])
			} else if value.Valid {
				_m.LastMessageAt = value.Time
			}
		case platformconversation.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlatformConversation.
// This includes values selected through modifiers, order, etc.
func (_m *PlatformConversation) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBotConfig queries the "bot_config" edge of the PlatformConversation entity.
func (_m *PlatformConversation) QueryBotConfig() *BotConfigQuery {
	return NewPlatformConversationClient(_m.config).QueryBotConfig(_m)
}

// QueryMessages queries the "messages" edge of the PlatformConversation entity.
func (_m *PlatformConversation) QueryMessages() *ConversationMessageQuery {
	return NewPlatformConversationClient(_m.config).QueryMessages(_m)
}

// QueryVariables queries the "variables" edge of the PlatformConversation entity.
func (_m *PlatformConversation) QueryVariables() *ExtractedVariableQuery {
	return NewPlatformConversationClient(_m.config).QueryVariables(_m)
}

// Update returns a builder for updating this PlatformConversation.
// Note that you need to call PlatformConversation.Unwrap() before calling this method if this PlatformConversation
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PlatformConversation) Update() *PlatformConversationUpdateOne {
	return NewPlatformConversationClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PlatformConversation entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PlatformConversation) Unwrap() *PlatformConversation {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlatformConversation is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PlatformConversation) String() string {
	var builder strings.Builder
	builder.WriteString("PlatformConversation(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bot_config_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BotConfigID))
	builder.WriteString(", ")
	builder.WriteString("platform_user_id=")
	builder.WriteString(_m.PlatformUserID)
	builder.WriteString(", ")
	builder.WriteString("platform_user_name=")
	builder.WriteString(_m.PlatformUserName)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("last_message_at=")
	builder.WriteString(_m.LastMessageAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PlatformConversations is a parsable slice of PlatformConversation.
type PlatformConversations []*PlatformConversation
