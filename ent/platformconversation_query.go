// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/easypath-ai/easypath/ent/botconfig"
	"github.com/easypath-ai/easypath/ent/conversationmessage"
	"github.com/easypath-ai/easypath/ent/extractedvariable"
	"github.com/easypath-ai/easypath/ent/platformconversation"
	"github.com/easypath-ai/easypath/ent/predicate"
)

// PlatformConversationQuery is the builder for querying PlatformConversation entities.
type PlatformConversationQuery struct {
	config
	ctx           *QueryContext
	order         []platformconversation.OrderOption
	inters        []Interceptor
	predicates    []predicate.PlatformConversation
	withBotConfig *BotConfigQuery
	withMessages  *ConversationMessageQuery
	withVariables *ExtractedVariableQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PlatformConversationQuery builder.
func (_q *PlatformConversationQuery) Where(ps ...predicate.PlatformConversation) *PlatformConversationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PlatformConversationQuery) Limit(limit int) *PlatformConversationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PlatformConversationQuery) Offset(offset int) *PlatformConversationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PlatformConversationQuery) Unique(unique bool) *PlatformConversationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PlatformConversationQuery) Order(o ...platformconversation.OrderOption) *PlatformConversationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryBotConfig chains the current query on the "bot_config" edge.
func (_q *PlatformConversationQuery) QueryBotConfig() *BotConfigQuery {
	query := (&BotConfigClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, selector),
			sqlgraph.To(botconfig.Table, botconfig.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, platformconversation.BotConfigTable, platformconversation.BotConfigColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMessages chains the current query on the "messages" edge.
func (_q *PlatformConversationQuery) QueryMessages() *ConversationMessageQuery {
	query := (&ConversationMessageClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, selector),
			sqlgraph.To(conversationmessage.Table, conversationmessage.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, platformconversation.MessagesTable, platformconversation.MessagesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryVariables chains the current query on the "variables" edge.
func (_q *PlatformConversationQuery) QueryVariables() *ExtractedVariableQuery {
	query := (&ExtractedVariableClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(platformconversation.Table, platformconversation.FieldID, selector),
			sqlgraph.To(extractedvariable.Table, extractedvariable.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, platformconversation.VariablesTable, platformconversation.VariablesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PlatformConversation entity from the query.
// Returns a *NotFoundError when no PlatformConversation was found.
func (_q *PlatformConversationQuery) First(ctx context.Context) (*PlatformConversation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{platformconversation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PlatformConversationQuery) FirstX(ctx context.Context) *PlatformConversation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PlatformConversation ID from the query.
// Returns a *NotFoundError when no PlatformConversation ID was found.
func (_q *PlatformConversationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{platformconversation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PlatformConversationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PlatformConversation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PlatformConversation entity is found.
// Returns a *NotFoundError when no PlatformConversation entities are found.
func (_q *PlatformConversationQuery) Only(ctx context.Context) (*PlatformConversation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{platformconversation.Label}
	default:
		return nil, &NotSingularError{platformconversation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PlatformConversationQuery) OnlyX(ctx context.Context) *PlatformConversation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PlatformConversation ID in the query.
// Returns a *NotSingularError when more than one PlatformConversation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PlatformConversationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{platformconversation.Label}
	default:
		err = &NotSingularError{platformconversation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PlatformConversationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PlatformConversations.
func (_q *PlatformConversationQuery) All(ctx context.Context) ([]*PlatformConversation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PlatformConversation, *PlatformConversationQuery]()
	return withInterceptors[[]*PlatformConversation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PlatformConversationQuery) AllX(ctx context.Context) []*PlatformConversation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PlatformConversation IDs.
func (_q *PlatformConversationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(platformconversation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PlatformConversationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PlatformConversationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PlatformConversationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PlatformConversationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PlatformConversationQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PlatformConversationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PlatformConversationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PlatformConversationQuery) Clone() *PlatformConversationQuery {
	if _q == nil {
		return nil
	}
	return &PlatformConversationQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]platformconversation.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.PlatformConversation{}, _q.predicates...),
		withBotConfig: _q.withBotConfig.Clone(),
		withMessages:  _q.withMessages.Clone(),
		withVariables: _q.withVariables.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithBotConfig tells the query-builder to eager-load the nodes that are connected to
// the "bot_config" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PlatformConversationQuery) WithBotConfig(opts ...func(*BotConfigQuery)) *PlatformConversationQuery {
	query := (&BotConfigClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withBotConfig = query
	return _q
}

// WithMessages tells the query-builder to eager-load the nodes that are connected to
// the "messages" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PlatformConversationQuery) WithMessages(opts ...func(*ConversationMessageQuery)) *PlatformConversationQuery {
	query := (&ConversationMessageClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withMessages = query
	return _q
}

// WithVariables tells the query-builder to eager-load the nodes that are connected to
// the "variables" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PlatformConversationQuery) WithVariables(opts ...func(*ExtractedVariableQuery)) *PlatformConversationQuery {
	query := (&ExtractedVariableClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withVariables = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		BotConfigID int `json:"bot_config_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PlatformConversation.Query().
//		GroupBy(platformconversation.FieldBotConfigID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PlatformConversationQuery) GroupBy(field string, fields ...string) *PlatformConversationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PlatformConversationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = platformconversation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		BotConfigID int `json:"bot_config_id,omitempty"`
//	}
//
//	client.PlatformConversation.Query().
//		Select(platformconversation.FieldBotConfigID).
//		Scan(ctx, &v)
func (_q *PlatformConversationQuery) Select(fields ...string) *PlatformConversationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PlatformConversationSelect{PlatformConversationQuery: _q}
	sbuild.label = platformconversation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PlatformConversationSelect configured with the given aggregations.
func (_q *PlatformConversationQuery) Aggregate(fns ...AggregateFunc) *PlatformConversationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PlatformConversationQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !platformconversation.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PlatformConversationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PlatformConversation, error) {
	var (
		nodes       = []*PlatformConversation{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withBotConfig != nil,
			_q.withMessages != nil,
			_q.withVariables != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PlatformConversation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PlatformConversation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withBotConfig; query != nil {
		if err := _q.loadBotConfig(ctx, query, nodes, nil,
			func(n *PlatformConversation, e *BotConfig) { n.Edges.BotConfig = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withMessages; query != nil {
		if err := _q.loadMessages(ctx, query, nodes,
			func(n *PlatformConversation) { n.Edges.Messages = []*ConversationMessage{} },
			func(n *PlatformConversation, e *ConversationMessage) { n.Edges.Messages = append(n.Edges.Messages, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withVariables; query != nil {
		if err := _q.loadVariables(ctx, query, nodes,
			func(n *PlatformConversation) { n.Edges.Variables = []*ExtractedVariable{} },
			func(n *PlatformConversation, e *ExtractedVariable) { n.Edges.Variables = append(n.Edges.Variables, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PlatformConversationQuery) loadBotConfig(ctx context.Context, query *BotConfigQuery, nodes []*PlatformConversation, init func(*PlatformConversation), assign func(*PlatformConversation, *BotConfig)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PlatformConversation)
	for i := range nodes {
		fk := nodes[i].BotConfigID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(botconfig.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "bot_config_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PlatformConversationQuery) loadMessages(ctx context.Context, query *ConversationMessageQuery, nodes []*PlatformConversation, init func(*PlatformConversation), assign func(*PlatformConversation, *ConversationMessage)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*PlatformConversation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(conversationmessage.FieldConversationID)
	}
	query.Where(predicate.ConversationMessage(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(platformconversation.MessagesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConversationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "conversation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PlatformConversationQuery) loadVariables(ctx context.Context, query *ExtractedVariableQuery, nodes []*PlatformConversation, init func(*PlatformConversation), assign func(*PlatformConversation, *ExtractedVariable)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*PlatformConversation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(extractedvariable.FieldConversationID)
	}
	query.Where(predicate.ExtractedVariable(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(platformconversation.VariablesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.ConversationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "conversation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PlatformConversationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PlatformConversationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(platformconversation.Table, platformconversation.Columns, sqlgraph.NewFieldSpec(platformconversation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, platformconversation.FieldID)
		for i := range fields {
			if fields[i] != platformconversation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withBotConfig != nil {
			_spec.Node.AddColumnOnce(platformconversation.FieldBotConfigID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PlatformConversationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(platformconversation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = platformconversation.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PlatformConversationGroupBy is the group-by builder for PlatformConversation entities.
type PlatformConversationGroupBy struct {
	selector
	build *PlatformConversationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PlatformConversationGroupBy) Aggregate(fns ...AggregateFunc) *PlatformConversationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PlatformConversationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PlatformConversationQuery, *PlatformConversationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PlatformConversationGroupBy) sqlScan(ctx context.Context, root *PlatformConversationQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PlatformConversationSelect is the builder for selecting fields of PlatformConversation entities.
type PlatformConversationSelect struct {
	*PlatformConversationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PlatformConversationSelect) Aggregate(fns ...AggregateFunc) *PlatformConversationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PlatformConversationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PlatformConversationQuery, *PlatformConversationSelect](ctx, _s.PlatformConversationQuery, _s, _s.inters, v)
}

func (_s *PlatformConversationSelect) sqlScan(ctx context.Context, root *PlatformConversationQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
