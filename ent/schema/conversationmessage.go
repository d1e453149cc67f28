package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ConversationMessage holds the schema definition for the
// ConversationMessage entity: the platform-side message log kept for
// history and debugging.
type ConversationMessage struct {
	ent.Schema
}

// Fields of the ConversationMessage.
func (ConversationMessage) Fields() []ent.Field {
	return []ent.Field{
		field.Int("conversation_id"),
		field.Enum("role").
			Values("USER", "ASSISTANT"),
		field.Text("content"),
		field.String("platform_message_id").
			Optional().
			Comment("Original platform message id"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the ConversationMessage.
func (ConversationMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", PlatformConversation.Type).
			Ref("messages").
			Field("conversation_id").
			Unique().
			Required(),
	}
}

// Indexes of the ConversationMessage.
func (ConversationMessage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("conversation_id", "created_at"),
	}
}
