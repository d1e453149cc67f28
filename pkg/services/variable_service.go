package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/pkg/models"
)

// VariableService stores and queries the variables the engine extracts
// during conversations. One row per (conversation, variable name); new
// extractions overwrite the previous value.
type VariableService struct {
	client *ent.Client
}

// NewVariableService creates a new VariableService
func NewVariableService(client *ent.Client) *VariableService {
	return &VariableService{client: client}
}

// UpsertVariables persists a batch of extracted values for a
// conversation. Existing values for the same name are replaced and their
// extraction timestamp refreshed.
func (s *VariableService) UpsertVariables(httpCtx context.Context, conversationID int, nodeID string, flowID *int, variables map[string]any) error {
	if nodeID == "" {
		return NewValidationError("node_id", "required")
	}
	if len(variables) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	names := make([]string, 0, len(variables))
	for name := range variables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		value, err := encodeVariableValue(variables[name])
		if err != nil {
			return fmt.Errorf("failed to encode variable %q: %w", name, err)
		}

		err = s.client.ExtractedVariable.Create().
			SetConversationID(conversationID).
			SetNodeID(nodeID).
			SetNillableFlowID(flowID).
			SetVariableName(name).
			SetVariableValue(value).
			OnConflictColumns(
				extractedvariable.FieldConversationID,
				extractedvariable.FieldVariableName,
			).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to upsert variable %q: %w", name, err)
		}
	}
	return nil
}

// encodeVariableValue stores strings verbatim and everything else as JSON
func encodeVariableValue(value any) (string, error) {
	if str, ok := value.(string); ok {
		return str, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// ConversationVariables returns the full variable records of a
// conversation, newest extraction first.
func (s *VariableService) ConversationVariables(httpCtx context.Context, conversationID int) ([]*ent.ExtractedVariable, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	exists, err := s.client.PlatformConversation.Query().
		Where(platformconversation.ID(conversationID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check conversation: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	vars, err := s.client.ExtractedVariable.Query().
		Where(extractedvariable.ConversationID(conversationID)).
		Order(ent.Desc(extractedvariable.FieldExtractedAt), ent.Desc(extractedvariable.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list variables: %w", err)
	}
	return vars, nil
}

// BotCollectedData returns, for each of the bot's conversations that has
// extracted variables, the flat name to value map. Conversations are
// ordered by most recent activity; limit/offset page over them.
func (s *VariableService) BotCollectedData(httpCtx context.Context, botID, limit, offset int) ([]models.ConversationVariables, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	exists, err := s.client.BotConfig.Query().
		Where(botconfig.ID(botID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check bot: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	convs, err := s.client.PlatformConversation.Query().
		Where(platformconversation.BotConfigID(botID)).
		Order(ent.Desc(platformconversation.FieldLastMessageAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations: %w", err)
	}

	results := make([]models.ConversationVariables, 0, len(convs))
	for _, conv := range convs {
		vars, err := s.client.ExtractedVariable.Query().
			Where(extractedvariable.ConversationID(conv.ID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list variables: %w", err)
		}
		if len(vars) == 0 {
			continue
		}

		group := models.ConversationVariables{
			ConversationID:   conv.ID,
			PlatformUserID:   conv.PlatformUserID,
			PlatformUserName: conv.PlatformUserName,
			Variables:        make(map[string]string, len(vars)),
		}
		for _, v := range vars {
			group.Variables[v.VariableName] = v.VariableValue
			if v.ExtractedAt.After(group.LastExtractedAt) {
				group.LastExtractedAt = v.ExtractedAt
			}
		}
		results = append(results, group)
	}
	return results, nil
}

// BotSummary returns collection statistics for one bot
func (s *VariableService) BotSummary(httpCtx context.Context, botID int) (*models.BotDataSummary, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	bot, err := s.client.BotConfig.Get(ctx, botID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bot: %w", err)
	}

	totalConversations, err := s.client.PlatformConversation.Query().
		Where(platformconversation.BotConfigID(botID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations: %w", err)
	}

	conversationsWithData, err := s.client.PlatformConversation.Query().
		Where(
			platformconversation.BotConfigID(botID),
			platformconversation.HasVariables(),
		).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count conversations with data: %w", err)
	}

	totalVariables, err := s.client.ExtractedVariable.Query().
		Where(extractedvariable.HasConversationWith(platformconversation.BotConfigID(botID))).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count variables: %w", err)
	}

	var names []string
	err = s.client.ExtractedVariable.Query().
		Where(extractedvariable.HasConversationWith(platformconversation.BotConfigID(botID))).
		Unique(true).
		Select(extractedvariable.FieldVariableName).
		Scan(ctx, &names)
	if err != nil {
		return nil, fmt.Errorf("failed to list variable names: %w", err)
	}
	sort.Strings(names)

	return &models.BotDataSummary{
		BotID:                   botID,
		BotName:                 bot.BotName,
		TotalConversations:      totalConversations,
		ConversationsWithData:   conversationsWithData,
		TotalVariablesCollected: totalVariables,
		UniqueVariableNames:     names,
	}, nil
}

// SearchVariables finds conversations by extracted variable name and,
// optionally, a value substring and bot filter. Each hit carries the
// conversation's full variable map.
func (s *VariableService) SearchVariables(httpCtx context.Context, variableName, variableValue string, botID, limit int) ([]models.ConversationVariables, error) {
	if variableName == "" {
		return nil, NewValidationError("variable_name", "required")
	}
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	query := s.client.ExtractedVariable.Query().
		Where(extractedvariable.VariableName(variableName))
	if variableValue != "" {
		query = query.Where(extractedvariable.VariableValueContains(variableValue))
	}
	if botID > 0 {
		query = query.Where(extractedvariable.HasConversationWith(platformconversation.BotConfigID(botID)))
	}

	hits, err := query.
		Order(ent.Desc(extractedvariable.FieldExtractedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to search variables: %w", err)
	}

	results := make([]models.ConversationVariables, 0, len(hits))
	seen := make(map[int]bool)
	for _, hit := range hits {
		if seen[hit.ConversationID] {
			continue
		}
		seen[hit.ConversationID] = true

		conv, err := s.client.PlatformConversation.Get(ctx, hit.ConversationID)
		if err != nil {
			return nil, fmt.Errorf("failed to get conversation: %w", err)
		}
		vars, err := s.client.ExtractedVariable.Query().
			Where(extractedvariable.ConversationID(conv.ID)).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list variables: %w", err)
		}

		group := models.ConversationVariables{
			ConversationID:   conv.ID,
			PlatformUserID:   conv.PlatformUserID,
			PlatformUserName: conv.PlatformUserName,
			Variables:        make(map[string]string, len(vars)),
		}
		for _, v := range vars {
			group.Variables[v.VariableName] = v.VariableValue
			if v.ExtractedAt.After(group.LastExtractedAt) {
				group.LastExtractedAt = v.ExtractedAt
			}
		}
		results = append(results, group)
	}
	return results, nil
}

// FlowCollectedData returns variables collected by one flow across all
// bots, grouped per conversation.
func (s *VariableService) FlowCollectedData(httpCtx context.Context, flowID, limit, offset int) ([]models.ConversationVariables, error) {
	if limit <= 0 || limit > 1000 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}

	ctx, cancel := context.WithTimeout(httpCtx, 10*time.Second)
	defer cancel()

	convs, err := s.client.PlatformConversation.Query().
		Where(platformconversation.HasVariablesWith(extractedvariable.FlowID(flowID))).
		Order(ent.Desc(platformconversation.FieldLastMessageAt)).
		Offset(offset).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversations for flow: %w", err)
	}

	results := make([]models.ConversationVariables, 0, len(convs))
	for _, conv := range convs {
		vars, err := s.client.ExtractedVariable.Query().
			Where(
				extractedvariable.ConversationID(conv.ID),
				extractedvariable.FlowID(flowID),
			).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list variables: %w", err)
		}
		if len(vars) == 0 {
			continue
		}

		group := models.ConversationVariables{
			ConversationID:   conv.ID,
			PlatformUserID:   conv.PlatformUserID,
			PlatformUserName: conv.PlatformUserName,
			Variables:        make(map[string]string, len(vars)),
		}
		for _, v := range vars {
			group.Variables[v.VariableName] = v.VariableValue
			if v.ExtractedAt.After(group.LastExtractedAt) {
				group.LastExtractedAt = v.ExtractedAt
			}
		}
		results = append(results, group)
	}
	return results, nil
}
