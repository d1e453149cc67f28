// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/easypath-ai/easypath/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BotConfig is the client for interacting with the BotConfig builders.
	BotConfig *BotConfigClient
	// ConversationMessage is the client for interacting with the ConversationMessage builders.
	ConversationMessage *ConversationMessageClient
	// ExtractedVariable is the client for interacting with the ExtractedVariable builders.
	ExtractedVariable *ExtractedVariableClient
	// PlatformConversation is the client for interacting with the PlatformConversation builders.
	PlatformConversation *PlatformConversationClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BotConfig = NewBotConfigClient(c.config)
	c.ConversationMessage = NewConversationMessageClient(c.config)
	c.ExtractedVariable = NewExtractedVariableClient(c.config)
	c.PlatformConversation = NewPlatformConversationClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		BotConfig:            NewBotConfigClient(cfg),
		ConversationMessage:  NewConversationMessageClient(cfg),
		ExtractedVariable:    NewExtractedVariableClient(cfg),
		PlatformConversation: NewPlatformConversationClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		BotConfig:            NewBotConfigClient(cfg),
		ConversationMessage:  NewConversationMessageClient(cfg),
		ExtractedVariable:    NewExtractedVariableClient(cfg),
		PlatformConversation: NewPlatformConversationClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BotConfig.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	c.BotConfig.Use(hooks...)
	c.ConversationMessage.Use(hooks...)
	c.ExtractedVariable.Use(hooks...)
	c.PlatformConversation.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.BotConfig.Intercept(interceptors...)
	c.ConversationMessage.Intercept(interceptors...)
	c.ExtractedVariable.Intercept(interceptors...)
	c.PlatformConversation.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BotConfigMutation:
		return c.BotConfig.mutate(ctx, m)
	case *ConversationMessageMutation:
		return c.ConversationMessage.mutate(ctx, m)
	case *ExtractedVariableMutation:
		return c.ExtractedVariable.mutate(ctx, m)
	case *PlatformConversationMutation:
		return c.PlatformConversation.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BotConfigClient is a client for the BotConfig schema.
type BotConfigClient struct {
	config
}

// NewBotConfigClient returns a client for the BotConfig from the given config.
func NewBotConfigClient(c config) *BotConfigClient {
	return &BotConfigClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `botconfig.Hooks(f(g(h())))`.
func (c *BotConfigClient) Use(hooks ...Hook) {
	c.hooks.BotConfig = append(c.hooks.BotConfig, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `botconfig.Intercept(f(g(h())))`.
func (c *BotConfigClient) Intercept(interceptors ...Interceptor) {
	c.inters.BotConfig = append(c.inters.BotConfig, interceptors...)
}

// Create returns a builder for creating a BotConfig entity.
func (c *BotConfigClient) Create() *BotConfigCreate {
	mutation := newBotConfigMutation(c.config, OpCreate)
	return &BotConfigCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BotConfig entities.
func (c *BotConfigClient) CreateBulk(builders ...*BotConfigCreate) *BotConfigCreateBulk {
	return &BotConfigCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BotConfigClient) MapCreateBulk(slice any, setFunc func(*BotConfigCreate, int)) *BotConfigCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BotConfigCreateBulk{err: fmt.Errorf("calling to BotConfigClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BotConfigCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BotConfigCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BotConfig.
func (c *BotConfigClient) Update() *BotConfigUpdate {
	mutation := newBotConfigMutation(c.config, OpUpdate)
	return &BotConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BotConfigClient) UpdateOne(_m *BotConfig) *BotConfigUpdateOne {
	mutation := newBotConfigMutation(c.config, OpUpdateOne, withBotConfig(_m))
	return &BotConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BotConfigClient) UpdateOneID(id int) *BotConfigUpdateOne {
	mutation := newBotConfigMutation(c.config, OpUpdateOne, withBotConfigID(id))
	return &BotConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BotConfig.
func (c *BotConfigClient) Delete() *BotConfigDelete {
	mutation := newBotConfigMutation(c.config, OpDelete)
	return &BotConfigDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BotConfigClient) DeleteOne(_m *BotConfig) *BotConfigDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BotConfigClient) DeleteOneID(id int) *BotConfigDeleteOne {
	builder := c.Delete().Where(botconfig.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BotConfigDeleteOne{builder}
}

// Query returns a query builder for BotConfig.
func (c *BotConfigClient) Query() *BotConfigQuery {
	return &BotConfigQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBotConfig},
		inters: c.Interceptors(),
	}
}

// Get returns a BotConfig entity by its id.
func (c *BotConfigClient) Get(ctx context.Context, id int) (*BotConfig, error) {
	return c.Query().Where(botconfig.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BotConfigClient) GetX(ctx context.Context, id int) *BotConfig {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversations queries the conversations edge of a BotConfig.
func (c *BotConfigClient) QueryConversations(_m *BotConfig) *PlatformConversationQuery {
	query := (&PlatformConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(botconfig.Table, botconfig.FieldID, id),
			sqlgraph.To(platformconversation.Table, platformconversation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, botconfig.ConversationsTable, botconfig.ConversationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BotConfigClient) Hooks() []Hook {
	return c.hooks.BotConfig
}

// Interceptors returns the client interceptors.
func (c *BotConfigClient) Interceptors() []Interceptor {
	return c.inters.BotConfig
}

func (c *BotConfigClient) mutate(ctx context.Context, m *BotConfigMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BotConfigCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BotConfigUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BotConfigUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BotConfigDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BotConfig mutation op: %q", m.Op())
	}
}

// ConversationMessageClient is a client for the ConversationMessage schema.
type ConversationMessageClient struct {
	config
}

// NewConversationMessageClient returns a client for the ConversationMessage from the given config.
func NewConversationMessageClient(c config) *ConversationMessageClient {
	return &ConversationMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `conversationmessage.Hooks(f(g(h())))`.
func (c *ConversationMessageClient) Use(hooks ...Hook) {
	c.hooks.ConversationMessage = append(c.hooks.ConversationMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `conversationmessage.Intercept(f(g(h())))`.
func (c *ConversationMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ConversationMessage = append(c.inters.ConversationMessage, interceptors...)
}

// Create returns a builder for creating a ConversationMessage entity.
func (c *ConversationMessageClient) Create() *ConversationMessageCreate {
	mutation := newConversationMessageMutation(c.config, OpCreate)
	return &ConversationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ConversationMessage entities.
func (c *ConversationMessageClient) CreateBulk(builders ...*ConversationMessageCreate) *ConversationMessageCreateBulk {
	return &ConversationMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ConversationMessageClient) MapCreateBulk(slice any, setFunc func(*ConversationMessageCreate, int)) *ConversationMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ConversationMessageCreateBulk{err: fmt.Errorf("calling to ConversationMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ConversationMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ConversationMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ConversationMessage.
func (c *ConversationMessageClient) Update() *ConversationMessageUpdate {
	mutation := newConversationMessageMutation(c.config, OpUpdate)
	return &ConversationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ConversationMessageClient) UpdateOne(_m *ConversationMessage) *ConversationMessageUpdateOne {
	mutation := newConversationMessageMutation(c.config, OpUpdateOne, withConversationMessage(_m))
	return &ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ConversationMessageClient) UpdateOneID(id int) *ConversationMessageUpdateOne {
	mutation := newConversationMessageMutation(c.config, OpUpdateOne, withConversationMessageID(id))
	return &ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ConversationMessage.
func (c *ConversationMessageClient) Delete() *ConversationMessageDelete {
	mutation := newConversationMessageMutation(c.config, OpDelete)
	return &ConversationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ConversationMessageClient) DeleteOne(_m *ConversationMessage) *ConversationMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ConversationMessageClient) DeleteOneID(id int) *ConversationMessageDeleteOne {
	builder := c.Delete().Where(conversationmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ConversationMessageDeleteOne{builder}
}

// Query returns a query builder for ConversationMessage.
func (c *ConversationMessageClient) Query() *ConversationMessageQuery {
	return &ConversationMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeConversationMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ConversationMessage entity by its id.
func (c *ConversationMessageClient) Get(ctx context.Context, id int) (*ConversationMessage, error) {
	return c.Query().Where(conversationmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ConversationMessageClient) GetX(ctx context.Context, id int) *ConversationMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ConversationMessage.
func (c *ConversationMessageClient) QueryConversation(_m *ConversationMessage) *PlatformConversationQuery {
	query := (&PlatformConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(conversationmessage.Table, conversationmessage.FieldID, id),
			sqlgraph.To(platformconversation.Table, platformconversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, conversationmessage.ConversationTable, conversationmessage.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ConversationMessageClient) Hooks() []Hook {
	return c.hooks.ConversationMessage
}

// Interceptors returns the client interceptors.
func (c *ConversationMessageClient) Interceptors() []Interceptor {
	return c.inters.ConversationMessage
}

func (c *ConversationMessageClient) mutate(ctx context.Context, m *ConversationMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ConversationMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ConversationMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ConversationMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ConversationMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ConversationMessage mutation op: %q", m.Op())
	}
}

// ExtractedVariableClient is a client for the ExtractedVariable schema.
type ExtractedVariableClient struct {
	config
}

// NewExtractedVariableClient returns a client for the ExtractedVariable from the given config.
func NewExtractedVariableClient(c config) *ExtractedVariableClient {
	return &ExtractedVariableClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractedvariable.Hooks(f(g(h())))`.
func (c *ExtractedVariableClient) Use(hooks ...Hook) {
	c.hooks.ExtractedVariable = append(c.hooks.ExtractedVariable, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractedvariable.Intercept(f(g(h())))`.
func (c *ExtractedVariableClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractedVariable = append(c.inters.ExtractedVariable, interceptors...)
}

// Create returns a builder for creating a ExtractedVariable entity.
func (c *ExtractedVariableClient) Create() *ExtractedVariableCreate {
	mutation := newExtractedVariableMutation(c.config, OpCreate)
	return &ExtractedVariableCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractedVariable entities.
func (c *ExtractedVariableClient) CreateBulk(builders ...*ExtractedVariableCreate) *ExtractedVariableCreateBulk {
	return &ExtractedVariableCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractedVariableClient) MapCreateBulk(slice any, setFunc func(*ExtractedVariableCreate, int)) *ExtractedVariableCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractedVariableCreateBulk{err: fmt.Errorf("calling to ExtractedVariableClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractedVariableCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractedVariableCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractedVariable.
func (c *ExtractedVariableClient) Update() *ExtractedVariableUpdate {
	mutation := newExtractedVariableMutation(c.config, OpUpdate)
	return &ExtractedVariableUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractedVariableClient) UpdateOne(_m *ExtractedVariable) *ExtractedVariableUpdateOne {
	mutation := newExtractedVariableMutation(c.config, OpUpdateOne, withExtractedVariable(_m))
	return &ExtractedVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractedVariableClient) UpdateOneID(id int) *ExtractedVariableUpdateOne {
	mutation := newExtractedVariableMutation(c.config, OpUpdateOne, withExtractedVariableID(id))
	return &ExtractedVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractedVariable.
func (c *ExtractedVariableClient) Delete() *ExtractedVariableDelete {
	mutation := newExtractedVariableMutation(c.config, OpDelete)
	return &ExtractedVariableDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractedVariableClient) DeleteOne(_m *ExtractedVariable) *ExtractedVariableDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractedVariableClient) DeleteOneID(id int) *ExtractedVariableDeleteOne {
	builder := c.Delete().Where(extractedvariable.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractedVariableDeleteOne{builder}
}

// Query returns a query builder for ExtractedVariable.
func (c *ExtractedVariableClient) Query() *ExtractedVariableQuery {
	return &ExtractedVariableQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractedVariable},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractedVariable entity by its id.
func (c *ExtractedVariableClient) Get(ctx context.Context, id int) (*ExtractedVariable, error) {
	return c.Query().Where(extractedvariable.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractedVariableClient) GetX(ctx context.Context, id int) *ExtractedVariable {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryConversation queries the conversation edge of a ExtractedVariable.
func (c *ExtractedVariableClient) QueryConversation(_m *ExtractedVariable) *PlatformConversationQuery {
	query := (&PlatformConversationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractedvariable.Table, extractedvariable.FieldID, id),
			sqlgraph.To(platformconversation.Table, platformconversation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractedvariable.ConversationTable, extractedvariable.ConversationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractedVariableClient) Hooks() []Hook {
	return c.hooks.ExtractedVariable
}

// Interceptors returns the client interceptors.
func (c *ExtractedVariableClient) Interceptors() []Interceptor {
	return c.inters.ExtractedVariable
}

func (c *ExtractedVariableClient) mutate(ctx context.Context, m *ExtractedVariableMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractedVariableCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractedVariableUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractedVariableUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractedVariableDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractedVariable mutation op: %q", m.Op())
	}
}

// PlatformConversationClient is a client for the PlatformConversation schema.
type PlatformConversationClient struct {
	config
}

// NewPlatformConversationClient returns a client for the PlatformConversation from the given config.
func NewPlatformConversationClient(c config) *PlatformConversationClient {
	return &PlatformConversationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `platformconversation.Hooks(f(g(h())))`.
func (c *PlatformConversationClient) Use(hooks ...Hook) {
	c.hooks.PlatformConversation = append(c.hooks.PlatformConversation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `platformconversation.Intercept(f(g(h())))`.
func (c *PlatformConversationClient) Intercept(interceptors ...Interceptor) {
	c.inters.PlatformConversation = append(c.inters.PlatformConversation, interceptors...)
}

// Create returns a builder for creating a PlatformConversation entity.
func (c *PlatformConversationClient) Create() *PlatformConversationCreate {
	mutation := newPlatformConversationMutation(c.config, OpCreate)
	return &PlatformConversationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PlatformConversation entities.
func (c *PlatformConversationClient) CreateBulk(builders ...*PlatformConversationCreate) *PlatformConversationCreateBulk {
	return &PlatformConversationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PlatformConversationClient) MapCreateBulk(slice any, setFunc func(*PlatformConversationCreate, int)) *PlatformConversationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PlatformConversationCreateBulk{err: fmt.Errorf("calling to PlatformConversationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PlatformConversationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PlatformConversationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PlatformConversation.
func (c *PlatformConversationClient) Update() *PlatformConversationUpdate {
	mutation := newPlatformConversationMutation(c.config, OpUpdate)
	return &PlatformConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PlatformConversationClient) UpdateOne(_m *PlatformConversation) *PlatformConversationUpdateOne {
	mutation := newPlatformConversationMutation(c.config, OpUpdateOne, withPlatformConversation(_m))
	return &PlatformConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PlatformConversationClient) UpdateOneID(id int) *PlatformConversationUpdateOne {
	mutation := newPlatformConversationMutation(c.config, OpUpdateOne, withPlatformConversationID(id))
	return &PlatformConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PlatformConversation.
func (c *PlatformConversationClient) Delete() *PlatformConversationDelete {
	mutation := newPlatformConversationMutation(c.config, OpDelete)
	return &PlatformConversationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PlatformConversationClient) DeleteOne(_m *PlatformConversation) *PlatformConversationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PlatformConversationClient) DeleteOneID(id int) *PlatformConversationDeleteOne {
	builder := c.Delete().Where(platformconversation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PlatformConversationDeleteOne{builder}
}

// Query returns a query builder for PlatformConversation.
func (c *PlatformConversationClient) Query() *PlatformConversationQuery {
	return &PlatformConversationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePlatformConversation},
		inters: c.Interceptors(),
	}
}

// Get returns a PlatformConversation entity by its id.
func (c *PlatformConversationClient) Get(ctx context.Context, id int) (*PlatformConversation, error) {
	return c.Query().Where(platformconversation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PlatformConversationClient) GetX(ctx context.Context, id int) *PlatformConversation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBotConfig queries the bot_config edge of a PlatformConversation.
func (c *PlatformConversationClient) QueryBotConfig(_m *PlatformConversation) *BotConfigQuery {
	query := (&BotConfigClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, id),
			sqlgraph.To(botconfig.Table, botconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, platformconversation.BotConfigTable, platformconversation.BotConfigColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMessages queries the messages edge of a PlatformConversation.
func (c *PlatformConversationClient) QueryMessages(_m *PlatformConversation) *ConversationMessageQuery {
	query := (&ConversationMessageClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, id),
			sqlgraph.To(conversationmessage.Table, conversationmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, platformconversation.MessagesTable, platformconversation.MessagesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryVariables queries the variables edge of a PlatformConversation.
func (c *PlatformConversationClient) QueryVariables(_m *PlatformConversation) *ExtractedVariableQuery {
	query := (&ExtractedVariableClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, id),
			sqlgraph.To(extractedvariable.Table, extractedvariable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, platformconversation.VariablesTable, platformconversation.VariablesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PlatformConversationClient) Hooks() []Hook {
	return c.hooks.PlatformConversation
}

// Interceptors returns the client interceptors.
func (c *PlatformConversationClient) Interceptors() []Interceptor {
	return c.inters.PlatformConversation
}

func (c *PlatformConversationClient) mutate(ctx context.Context, m *PlatformConversationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PlatformConversationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PlatformConversationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PlatformConversationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PlatformConversationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PlatformConversation mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BotConfig, ConversationMessage, ExtractedVariable,
		PlatformConversation []ent.Hook
	}
	inters struct {
		BotConfig, ConversationMessage, ExtractedVariable,
		PlatformConversation []ent.Interceptor
	}
)
