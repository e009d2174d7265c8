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
	"github.com/dibiaa/fms-tracker/gen/ent/delegationtask"
	"github.com/dibiaa/fms-tracker/gen/ent/predicate"
	"github.com/dibiaa/fms-tracker/gen/ent/taskcomment"
	"github.com/google/uuid"
)

// DelegationTaskQuery is the builder for querying DelegationTask entities.
type DelegationTaskQuery struct {
	config
	ctx          *QueryContext
	order        []delegationtask.OrderOption
	inters       []Interceptor
	predicates   []predicate.DelegationTask
	withComments *TaskCommentQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the DelegationTaskQuery builder.
func (_q *DelegationTaskQuery) Where(ps ...predicate.DelegationTask) *DelegationTaskQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *DelegationTaskQuery) Limit(limit int) *DelegationTaskQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *DelegationTaskQuery) Offset(offset int) *DelegationTaskQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *DelegationTaskQuery) Unique(unique bool) *DelegationTaskQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *DelegationTaskQuery) Order(o ...delegationtask.OrderOption) *DelegationTaskQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryComments chains the current query on the "comments" edge.
func (_q *DelegationTaskQuery) QueryComments() *TaskCommentQuery {
	query := (&TaskCommentClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(delegationtask.Table, delegationtask.FieldID, selector),
			sqlgraph.To(taskcomment.Table, taskcomment.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, delegationtask.CommentsTable, delegationtask.CommentsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first DelegationTask entity from the query.
// Returns a *NotFoundError when no DelegationTask was found.
func (_q *DelegationTaskQuery) First(ctx context.Context) (*DelegationTask, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{delegationtask.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *DelegationTaskQuery) FirstX(ctx context.Context) *DelegationTask {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first DelegationTask ID from the query.
// Returns a *NotFoundError when no DelegationTask ID was found.
func (_q *DelegationTaskQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{delegationtask.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *DelegationTaskQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single DelegationTask entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one DelegationTask entity is found.
// Returns a *NotFoundError when no DelegationTask entities are found.
func (_q *DelegationTaskQuery) Only(ctx context.Context) (*DelegationTask, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{delegationtask.Label}
	default:
		return nil, &NotSingularError{delegationtask.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *DelegationTaskQuery) OnlyX(ctx context.Context) *DelegationTask {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only DelegationTask ID in the query.
// Returns a *NotSingularError when more than one DelegationTask ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *DelegationTaskQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{delegationtask.Label}
	default:
		err = &NotSingularError{delegationtask.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *DelegationTaskQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of DelegationTasks.
func (_q *DelegationTaskQuery) All(ctx context.Context) ([]*DelegationTask, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*DelegationTask, *DelegationTaskQuery]()
	return withInterceptors[[]*DelegationTask](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *DelegationTaskQuery) AllX(ctx context.Context) []*DelegationTask {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of DelegationTask IDs.
func (_q *DelegationTaskQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(delegationtask.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *DelegationTaskQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *DelegationTaskQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*DelegationTaskQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *DelegationTaskQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *DelegationTaskQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *DelegationTaskQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the DelegationTaskQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *DelegationTaskQuery) Clone() *DelegationTaskQuery {
	if _q == nil {
		return nil
	}
	return &DelegationTaskQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]delegationtask.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.DelegationTask{}, _q.predicates...),
		withComments: _q.withComments.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithComments tells the query-builder to eager-load the nodes that are connected to
// the "comments" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *DelegationTaskQuery) WithComments(opts ...func(*TaskCommentQuery)) *DelegationTaskQuery {
	query := (&TaskCommentClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withComments = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TaskUID string `json:"task_uid,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.DelegationTask.Query().
//		GroupBy(delegationtask.FieldTaskUID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *DelegationTaskQuery) GroupBy(field string, fields ...string) *DelegationTaskGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &DelegationTaskGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = delegationtask.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TaskUID string `json:"task_uid,omitempty"`
//	}
//
//	client.DelegationTask.Query().
//		Select(delegationtask.FieldTaskUID).
//		Scan(ctx, &v)
func (_q *DelegationTaskQuery) Select(fields ...string) *DelegationTaskSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &DelegationTaskSelect{DelegationTaskQuery: _q}
	sbuild.label = delegationtask.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a DelegationTaskSelect configured with the given aggregations.
func (_q *DelegationTaskQuery) Aggregate(fns ...AggregateFunc) *DelegationTaskSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *DelegationTaskQuery) prepareQuery(ctx context.Context) error {
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
		if !delegationtask.ValidColumn(f) {
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

func (_q *DelegationTaskQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*DelegationTask, error) {
	var (
		nodes       = []*DelegationTask{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withComments != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*DelegationTask).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &DelegationTask{config: _q.config}
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
	if query := _q.withComments; query != nil {
		if err := _q.loadComments(ctx, query, nodes,
			func(n *DelegationTask) { n.Edges.Comments = []*TaskComment{} },
			func(n *DelegationTask, e *TaskComment) { n.Edges.Comments = append(n.Edges.Comments, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *DelegationTaskQuery) loadComments(ctx context.Context, query *TaskCommentQuery, nodes []*DelegationTask, init func(*DelegationTask), assign func(*DelegationTask, *TaskComment)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[uuid.UUID]*DelegationTask)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(taskcomment.FieldTaskID)
	}
	query.Where(predicate.TaskComment(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(delegationtask.CommentsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.TaskID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "task_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *DelegationTaskQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *DelegationTaskQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(delegationtask.Table, delegationtask.Columns, sqlgraph.NewFieldSpec(delegationtask.FieldID, field.TypeUUID))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, delegationtask.FieldID)
		for i := range fields {
			if fields[i] != delegationtask.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
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

func (_q *DelegationTaskQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(delegationtask.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = delegationtask.Columns
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

// DelegationTaskGroupBy is the group-by builder for DelegationTask entities.
type DelegationTaskGroupBy struct {
	selector
	build *DelegationTaskQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *DelegationTaskGroupBy) Aggregate(fns ...AggregateFunc) *DelegationTaskGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *DelegationTaskGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DelegationTaskQuery, *DelegationTaskGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *DelegationTaskGroupBy) sqlScan(ctx context.Context, root *DelegationTaskQuery, v any) error {
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

// DelegationTaskSelect is the builder for selecting fields of DelegationTask entities.
type DelegationTaskSelect struct {
	*DelegationTaskQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *DelegationTaskSelect) Aggregate(fns ...AggregateFunc) *DelegationTaskSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *DelegationTaskSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*DelegationTaskQuery, *DelegationTaskSelect](ctx, _s.DelegationTaskQuery, _s, _s.inters, v)
}

func (_s *DelegationTaskSelect) sqlScan(ctx context.Context, root *DelegationTaskQuery, v any) error {
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
