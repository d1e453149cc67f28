package session

import (
	"encoding/json"
	"fmt"

	"github.com/easypath-ai/easypath/pkg/models"
)

func encodeSession(s *models.ChatSession) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to encode session %s: %w", s.SessionID, err)
	}
	return data, nil
}

func decodeSession(data []byte) (*models.ChatSession, error) {
	var s models.ChatSession
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &s, nil
}
