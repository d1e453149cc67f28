// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BotConfig is the predicate function for botconfig builders.
type BotConfig func(*sql.Selector)

// ConversationMessage is the predicate function for conversationmessage builders.
type ConversationMessage func(*sql.Selector)

// ExtractedVariable is the predicate function for extractedvariable builders.
type ExtractedVariable func(*sql.Selector)

// PlatformConversation is the predicate function for platformconversation builders.
type PlatformConversation func(*sql.Selector)
