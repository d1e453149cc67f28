// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	botconfigFields := schema.BotConfig{}.Fields()
	_ = botconfigFields
	// botconfigDescIsActive is the schema descriptor for is_active field.
	botconfigDescIsActive := botconfigFields[5].Descriptor()
	// botconfig.DefaultIsActive holds the default value on creation for the is_active field.
	botconfig.DefaultIsActive = botconfigDescIsActive.Default.(bool)
	// botconfigDescCreatedAt is the schema descriptor for created_at field.
	botconfigDescCreatedAt := botconfigFields[8].Descriptor()
	// botconfig.DefaultCreatedAt holds the default value on creation for the created_at field.
	botconfig.DefaultCreatedAt = botconfigDescCreatedAt.Default.(func() time.Time)
	// botconfigDescUpdatedAt is the schema descriptor for updated_at field.
	botconfigDescUpdatedAt := botconfigFields[9].Descriptor()
	// botconfig.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	botconfig.DefaultUpdatedAt = botconfigDescUpdatedAt.Default.(func() time.Time)
	// botconfig.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	botconfig.UpdateDefaultUpdatedAt = botconfigDescUpdatedAt.UpdateDefault.(func() time.Time)
	conversationmessageFields := schema.ConversationMessage{}.Fields()
	_ = conversationmessageFields
	// conversationmessageDescCreatedAt is the schema descriptor for created_at field.
	conversationmessageDescCreatedAt := conversationmessageFields[4].Descriptor()
	// conversationmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversationmessage.DefaultCreatedAt = conversationmessageDescCreatedAt.Default.(func() time.Time)
	extractedvariableFields := schema.ExtractedVariable{}.Fields()
	_ = extractedvariableFields
	// extractedvariableDescExtractedAt is the schema descriptor for extracted_at field.
	extractedvariableDescExtractedAt := extractedvariableFields[6].Descriptor()
	// extractedvariable.DefaultExtractedAt holds the default value on creation for the extracted_at field.
	extractedvariable.DefaultExtractedAt = extractedvariableDescExtractedAt.Default.(func() time.Time)
	// extractedvariable.UpdateDefaultExtractedAt holds the default value on update for the extracted_at field.
	extractedvariable.UpdateDefaultExtractedAt = extractedvariableDescExtractedAt.UpdateDefault.(func() time.Time)
	platformconversationFields := schema.PlatformConversation{}.Fields()
	_ = platformconversationFields
	// platformconversationDescLastMessageAt is the schema descriptor for last_message_at field.
	platformconversationDescLastMessageAt := platformconversationFields[5].Descriptor()
	// platformconversation.DefaultLastMessageAt holds the default value on creation for the last_message_at field.
	platformconversation.DefaultLastMessageAt = platformconversationDescLastMessageAt.Default.(func() time.Time)
	// platformconversationDescCreatedAt is the schema descriptor for created_at field.
	platformconversationDescCreatedAt := platformconversationFields[6].Descriptor()
	// platformconversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	platformconversation.DefaultCreatedAt = platformconversationDescCreatedAt.Default.(func() time.Time)
}
