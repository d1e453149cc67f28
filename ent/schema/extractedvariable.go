package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractedVariable holds the schema definition for the
// ExtractedVariable entity: the latest value of each variable the
// engine extracted during a conversation, upserted per name.
type ExtractedVariable struct {
	ent.Schema
}

// Fields of the ExtractedVariable.
func (ExtractedVariable) Fields() []ent.Field {
	return []ent.Field{
		field.Int("conversation_id"),
		field.String("node_id").
			Comment("Flow node that extracted the value"),
		field.Int("flow_id").
			Optional().
			Nillable(),
		field.String("variable_name"),
		field.Text("variable_value"),
		field.String("variable_type").
			Optional(),
		field.Time("extracted_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the ExtractedVariable.
func (ExtractedVariable) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("conversation", PlatformConversation.Type).
			Ref("variables").
			Field("conversation_id").
			Unique().
			Required(),
	}
}

// Indexes of the ExtractedVariable.
func (ExtractedVariable) Indexes() []ent.Index {
	return []ent.Index{
		// Upsert key
		index.Fields("conversation_id", "variable_name").
			Unique(),
		index.Fields("variable_name"),
		index.Fields("flow_id"),
	}
}
