// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/easypath-ai/easypath/ent/botconfig"
)

// BotConfig is the model entity for the BotConfig schema.
type BotConfig struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Platform holds the value of the "platform" field.
	Platform botconfig.Platform `json:"platform,omitempty"`
	// Friendly display name
	BotName string `json:"bot_name,omitempty"`
	// AES-256-GCM sealed platform credential
	BotTokenEncrypted string `json:"-"`
	// Flow driving this bot's conversations
	FlowID int `json:"flow_id,omitempty"`
	// OwnerID holds the value of the "owner_id" field.
	OwnerID string `json:"owner_id,omitempty"`
	// IsActive holds the value of the "is_active" field.
	IsActive bool `json:"is_active,omitempty"`
	// WebhookURL holds the value of the "webhook_url" field.
	WebhookURL *string `json:"webhook_url,omitempty"`
	// For inbound webhook validation
	WebhookSecret *string `json:"-"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BotConfigQuery when eager-loading is set.
	Edges        BotConfigEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BotConfigEdges holds the relations/edges for other nodes in the graph.
type BotConfigEdges struct {
	// Conversations holds the value of the conversations edge.
	Conversations []*PlatformConversation `json:"conversations,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ConversationsOrErr returns the Conversations value or an error if the edge
// was not loaded in eager-loading.
func (e BotConfigEdges) ConversationsOrErr() ([]*PlatformConversation, error) {
	if e.loadedTypes[0] {
		return e.Conversations, nil
	}
	return nil, &NotLoadedError{edge: "conversations"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BotConfig) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case botconfig.FieldIsActive:
			values[i] = new(sql.NullBool)
		case botconfig.FieldID, botconfig.FieldFlowID:
			values[i] = new(sql.NullInt64)
		case botconfig.FieldPlatform, botconfig.FieldBotName, botconfig.FieldBotTokenEncrypted, botconfig.FieldOwnerID, botconfig.FieldWebhookURL, botconfig.FieldWebhookSecret:
			values[i] = new(sql.NullString)
		case botconfig.FieldCreatedAt, botconfig.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BotConfig fields.
func (_m *BotConfig) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case botconfig.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case botconfig.FieldPlatform:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field platform", values[i])
			} else if value.Valid {
				_m.Platform = botconfig.Platform(value.String)
			}
		case botconfig.FieldBotName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_name", values[i])
			} else if value.Valid {
				_m.BotName = value.String
			}
		case botconfig.FieldBotTokenEncrypted:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bot_token_encrypted", values[i])
			} else if value.Valid {
				_m.BotTokenEncrypted = value.String
			}
		case botconfig.FieldFlowID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flow_id", values[i])
			} else if value.Valid {
				_m.FlowID = int(value.Int64)
			}
		case botconfig.FieldOwnerID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field owner_id", values[i])
			} else if value.Valid {
				_m.OwnerID = value.String
			}
		case botconfig.FieldIsActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_active", values[i])
			} else if value.Valid {
				_m.IsActive = value.Bool
			}
		case botconfig.FieldWebhookURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_url", values[i])
			} else if value.Valid {
				_m.WebhookURL = new(string)
				*_m.WebhookURL = value.String
			}
		case botconfig.FieldWebhookSecret:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field webhook_secret", values[i])
			} else if value.Valid {
				_m.WebhookSecret = new(string)
				*_m.WebhookSecret = value.String
			}
		case botconfig.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case botconfig.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BotConfig.
// This includes values selected through modifiers, order, etc.
func (_m *BotConfig) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryConversations queries the "conversations" edge of the BotConfig entity.
func (_m *BotConfig) QueryConversations() *PlatformConversationQuery {
	return NewBotConfigClient(_m.config).QueryConversations(_m)
}

// Update returns a builder for updating this BotConfig.
// Note that you need to call BotConfig.Unwrap() before calling this method if this BotConfig
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BotConfig) Update() *BotConfigUpdateOne {
	return NewBotConfigClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BotConfig entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BotConfig) Unwrap() *BotConfig {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BotConfig is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BotConfig) String() string {
	var builder strings.Builder
	builder.WriteString("BotConfig(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("platform=")
	builder.WriteString(fmt.Sprintf("%v", _m.Platform))
	builder.WriteString(", ")
	builder.WriteString("bot_name=")
	builder.WriteString(_m.BotName)
	builder.WriteString(", ")
	builder.WriteString("bot_token_encrypted=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("flow_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlowID))
	builder.WriteString(", ")
	builder.WriteString("owner_id=")
	builder.WriteString(_m.OwnerID)
	builder.WriteString(", ")
	builder.WriteString("is_active=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsActive))
	builder.WriteString(", ")
	if v := _m.WebhookURL; v != nil {
		builder.WriteString("webhook_url=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("webhook_secret=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BotConfigs is a parsable slice of BotConfig.
type BotConfigs []*BotConfig
