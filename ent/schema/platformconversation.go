package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlatformConversation holds the schema definition for the
// PlatformConversation entity: one platform user talking to one bot,
// bound to an engine session.
type PlatformConversation struct {
	ent.Schema
}

// Fields of the PlatformConversation.
func (PlatformConversation) Fields() []ent.Field {
	return []ent.Field{
		field.Int("bot_config_id"),
		field.String("platform_user_id").
			Comment("Platform-side user identity (chat id, phone number)"),
		field.String("platform_user_name").
			Optional(),
		field.String("session_id").
			Unique().
			Comment("Engine session key"),
		field.Enum("status").
			Values("ACTIVE", "INACTIVE", "ARCHIVED").
			Default("ACTIVE"),
		field.Time("last_message_at").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the PlatformConversation.
func (PlatformConversation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("bot_config", BotConfig.Type).
			Ref("conversations").
			Field("bot_config_id").
			Unique().
			Required(),
		edge.To("messages", ConversationMessage.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("variables", ExtractedVariable.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PlatformConversation.
func (PlatformConversation) Indexes() []ent.Index {
	return []ent.Index{
		// One live conversation per user per bot is resolved by lookup,
		// not a constraint: closed conversations are kept for history.
		index.Fields("bot_config_id", "platform_user_id"),
		index.Fields("session_id").
			Unique(),
		index.Fields("last_message_at"),
	}
}
