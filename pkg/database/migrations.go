package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateSearchIndexes creates full-text search GIN indexes for
// PostgreSQL. These back the message and variable search endpoints.
func CreateSearchIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_conversation_messages_content_gin
		ON conversation_messages USING gin(to_tsvector('portuguese', content))`)
	if err != nil {
		return fmt.Errorf("failed to create message content GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_extracted_variables_value_gin
		ON extracted_variables USING gin(to_tsvector('simple', variable_value))`)
	if err != nil {
		return fmt.Errorf("failed to create variable value GIN index: %w", err)
	}

	return nil
}
