package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BotConfig holds the schema definition for the BotConfig entity.
// One record per messaging-platform bot bound to a flow.
type BotConfig struct {
	ent.Schema
}

// Fields of the BotConfig.
func (BotConfig) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("platform").
			Values("TELEGRAM", "WHATSAPP", "SMS"),
		field.String("bot_name").
			Optional().
			Comment("Friendly display name"),
		field.Text("bot_token_encrypted").
			Sensitive().
			Comment("AES-256-GCM sealed platform credential"),
		field.Int("flow_id").
			Comment("Flow driving this bot's conversations"),
		field.String("owner_id"),
		field.Bool("is_active").
			Default(true),
		field.String("webhook_url").
			Optional().
			Nillable(),
		field.String("webhook_secret").
			Optional().
			Nillable().
			Sensitive().
			Comment("For inbound webhook validation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the BotConfig.
func (BotConfig) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("conversations", PlatformConversation.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the BotConfig.
func (BotConfig) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("owner_id"),
		index.Fields("platform", "is_active"),
	}
}
