// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BotConfigsColumns holds the columns for the "bot_configs" table.
	BotConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "platform", Type: field.TypeEnum, Enums: []string{"TELEGRAM", "WHATSAPP", "SMS"}},
		{Name: "bot_name", Type: field.TypeString, Nullable: true},
		{Name: "bot_token_encrypted", Type: field.TypeString, Size: 2147483647},
		{Name: "flow_id", Type: field.TypeInt},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "webhook_url", Type: field.TypeString, Nullable: true},
		{Name: "webhook_secret", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BotConfigsTable holds the schema information for the "bot_configs" table.
	BotConfigsTable = &schema.Table{
		Name:       "bot_configs",
		Columns:    BotConfigsColumns,
		PrimaryKey: []*schema.Column{BotConfigsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "botconfig_owner_id",
				Unique:  false,
				Columns: []*schema.Column{BotConfigsColumns[5]},
			},
			{
				Name:    "botconfig_platform_is_active",
				Unique:  false,
				Columns: []*schema.Column{BotConfigsColumns[1], BotConfigsColumns[6]},
			},
		},
	}
	// ConversationMessagesColumns holds the columns for the "conversation_messages" table.
	ConversationMessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"USER", "ASSISTANT"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "platform_message_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeInt},
	}
	// ConversationMessagesTable holds the schema information for the "conversation_messages" table.
	ConversationMessagesTable = &schema.Table{
		Name:       "conversation_messages",
		Columns:    ConversationMessagesColumns,
		PrimaryKey: []*schema.Column{ConversationMessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "conversation_messages_platform_conversations_messages",
				Columns:    []*schema.Column{ConversationMessagesColumns[5]},
				RefColumns: []*schema.Column{PlatformConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "conversationmessage_conversation_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationMessagesColumns[5], ConversationMessagesColumns[4]},
			},
		},
	}
	// ExtractedVariablesColumns holds the columns for the "extracted_variables" table.
	ExtractedVariablesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "node_id", Type: field.TypeString},
		{Name: "flow_id", Type: field.TypeInt, Nullable: true},
		{Name: "variable_name", Type: field.TypeString},
		{Name: "variable_value", Type: field.TypeString, Size: 2147483647},
		{Name: "variable_type", Type: field.TypeString, Nullable: true},
		{Name: "extracted_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeInt},
	}
	// ExtractedVariablesTable holds the schema information for the "extracted_variables" table.
	ExtractedVariablesTable = &schema.Table{
		Name:       "extracted_variables",
		Columns:    ExtractedVariablesColumns,
		PrimaryKey: []*schema.Column{ExtractedVariablesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extracted_variables_platform_conversations_variables",
				Columns:    []*schema.Column{ExtractedVariablesColumns[7]},
				RefColumns: []*schema.Column{PlatformConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractedvariable_conversation_id_variable_name",
				Unique:  true,
				Columns: []*schema.Column{ExtractedVariablesColumns[7], ExtractedVariablesColumns[3]},
			},
			{
				Name:    "extractedvariable_variable_name",
				Unique:  false,
				Columns: []*schema.Column{ExtractedVariablesColumns[3]},
			},
			{
				Name:    "extractedvariable_flow_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractedVariablesColumns[2]},
			},
		},
	}
	// PlatformConversationsColumns holds the columns for the "platform_conversations" table.
	PlatformConversationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "platform_user_id", Type: field.TypeString},
		{Name: "platform_user_name", Type: field.TypeString, Nullable: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"ACTIVE", "INACTIVE", "ARCHIVED"}, Default: "ACTIVE"},
		{Name: "last_message_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "bot_config_id", Type: field.TypeInt},
	}
	// PlatformConversationsTable holds the schema information for the "platform_conversations" table.
	PlatformConversationsTable = &schema.Table{
		Name:       "platform_conversations",
		Columns:    PlatformConversationsColumns,
		PrimaryKey: []*schema.Column{PlatformConversationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "platform_conversations_bot_configs_conversations",
				Columns:    []*schema.Column{PlatformConversationsColumns[7]},
				RefColumns: []*schema.Column{BotConfigsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "platformconversation_bot_config_id_platform_user_id",
				Unique:  false,
				Columns: []*schema.Column{PlatformConversationsColumns[7], PlatformConversationsColumns[1]},
			},
			{
				Name:    "platformconversation_session_id",
				Unique:  true,
				Columns: []*schema.Column{PlatformConversationsColumns[3]},
			},
			{
				Name:    "platformconversation_last_message_at",
				Unique:  false,
				Columns: []*schema.Column{PlatformConversationsColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BotConfigsTable,
		ConversationMessagesTable,
		ExtractedVariablesTable,
		PlatformConversationsTable,
	}
)

func init() {
	ConversationMessagesTable.ForeignKeys[0].RefTable = PlatformConversationsTable
	ExtractedVariablesTable.ForeignKeys[0].RefTable = PlatformConversationsTable
	PlatformConversationsTable.ForeignKeys[0].RefTable = BotConfigsTable
}
