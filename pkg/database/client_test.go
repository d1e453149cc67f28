package database

import (
	"context"
	stdsql "database/sql"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/easypath-ai/easypath/ent"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/platformconversation"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set): connects to an external
// PostgreSQL service container. In local dev: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string
	if ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateSearchIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestConversationRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	bot, err := client.BotConfig.Create().
		SetPlatform(botconfig.PlatformTELEGRAM).
		SetBotName("support-bot").
		SetBotTokenEncrypted("sealed").
		SetFlowID(7).
		SetOwnerID("owner-1").
		Save(ctx)
	require.NoError(t, err)

	conv, err := client.PlatformConversation.Create().
		SetBotConfigID(bot.ID).
		SetPlatformUserID("123456").
		SetPlatformUserName("maria").
		SetSessionID("telegram-1-123456-abcd1234").
		Save(ctx)
	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", conv.Status.String())

	_, err = client.ConversationMessage.Create().
		SetConversationID(conv.ID).
		SetRole(conversationmessage.RoleUSER).
		SetContent("quero saber o preço do plano").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.ExtractedVariable.Create().
		SetConversationID(conv.ID).
		SetNodeID("collect-info").
		SetVariableName("user_name").
		SetVariableValue("Maria").
		SetVariableType("string").
		Save(ctx)
	require.NoError(t, err)

	// the engine session key resolves back to the conversation
	found, err := client.PlatformConversation.Query().
		Where(platformconversation.SessionID("telegram-1-123456-abcd1234")).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, conv.ID, found[0].ID)
}

func TestMessageFullTextSearch(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	bot, err := client.BotConfig.Create().
		SetPlatform(botconfig.PlatformTELEGRAM).
		SetBotTokenEncrypted("sealed").
		SetFlowID(1).
		SetOwnerID("owner-1").
		Save(ctx)
	require.NoError(t, err)

	conv, err := client.PlatformConversation.Create().
		SetBotConfigID(bot.ID).
		SetPlatformUserID("u1").
		SetSessionID("telegram-1-u1-00000000").
		Save(ctx)
	require.NoError(t, err)

	for _, content := range []string{
		"preciso de ajuda com o pagamento da fatura",
		"qual o horário de atendimento?",
	} {
		_, err = client.ConversationMessage.Create().
			SetConversationID(conv.ID).
			SetRole(conversationmessage.RoleUSER).
			SetContent(content).
			Save(ctx)
		require.NoError(t, err)
	}

	rows, err := client.DB().QueryContext(ctx,
		`SELECT content FROM conversation_messages
		WHERE to_tsvector('portuguese', content) @@ to_tsquery('portuguese', $1)`,
		"pagamento")
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var content string
		require.NoError(t, rows.Scan(&content))
		results = append(results, content)
	}
	require.Len(t, results, 1)
	assert.Contains(t, results[0], "pagamento")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_USER", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "gateway")

	cfg, err := LoadConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 5433, cfg.Port)
	assert.Equal(t, "svc", cfg.User)
	assert.Equal(t, "gateway", cfg.Database)
	assert.Equal(t, "disable", cfg.SSLMode)

	t.Setenv("DB_PORT", "not-a-number")
	_, err = LoadConfigFromEnv()
	assert.Error(t, err)
}
