// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/plaroindia/Pearl/ent/checkpointresult"
	"github.com/plaroindia/Pearl/ent/predicate"
)

// CheckpointResultQuery is the builder for querying CheckpointResult entities.
type CheckpointResultQuery struct {
	config
	ctx        *QueryContext
	order      []checkpointresult.OrderOption
	inters     []Interceptor
	predicates []predicate.CheckpointResult
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CheckpointResultQuery builder.
func (_q *CheckpointResultQuery) Where(ps ...predicate.CheckpointResult) *CheckpointResultQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CheckpointResultQuery) Limit(limit int) *CheckpointResultQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CheckpointResultQuery) Offset(offset int) *CheckpointResultQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CheckpointResultQuery) Unique(unique bool) *CheckpointResultQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CheckpointResultQuery) Order(o ...checkpointresult.OrderOption) *CheckpointResultQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first CheckpointResult entity from the query.
// Returns a *NotFoundError when no CheckpointResult was found.
func (_q *CheckpointResultQuery) First(ctx context.Context) (*CheckpointResult, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{checkpointresult.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CheckpointResultQuery) FirstX(ctx context.Context) *CheckpointResult {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CheckpointResult ID from the query.
// Returns a *NotFoundError when no CheckpointResult ID was found.
func (_q *CheckpointResultQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{checkpointresult.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CheckpointResultQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CheckpointResult entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CheckpointResult entity is found.
// Returns a *NotFoundError when no CheckpointResult entities are found.
func (_q *CheckpointResultQuery) Only(ctx context.Context) (*CheckpointResult, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{checkpointresult.Label}
	default:
		return nil, &NotSingularError{checkpointresult.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CheckpointResultQuery) OnlyX(ctx context.Context) *CheckpointResult {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CheckpointResult ID in the query.
// Returns a *NotSingularError when more than one CheckpointResult ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CheckpointResultQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{checkpointresult.Label}
	default:
		err = &NotSingularError{checkpointresult.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CheckpointResultQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CheckpointResults.
func (_q *CheckpointResultQuery) All(ctx context.Context) ([]*CheckpointResult, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CheckpointResult, *CheckpointResultQuery]()
	return withInterceptors[[]*CheckpointResult](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CheckpointResultQuery) AllX(ctx context.Context) []*CheckpointResult {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CheckpointResult IDs.
func (_q *CheckpointResultQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(checkpointresult.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CheckpointResultQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CheckpointResultQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CheckpointResultQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CheckpointResultQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CheckpointResultQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *CheckpointResultQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CheckpointResultQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CheckpointResultQuery) Clone() *CheckpointResultQuery {
	if _q == nil {
		return nil
	}
	return &CheckpointResultQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]checkpointresult.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.CheckpointResult{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CheckpointResult.Query().
//		GroupBy(checkpointresult.FieldSequence).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CheckpointResultQuery) GroupBy(field string, fields ...string) *CheckpointResultGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CheckpointResultGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = checkpointresult.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Sequence int64 `json:"sequence,omitempty"`
//	}
//
//	client.CheckpointResult.Query().
//		Select(checkpointresult.FieldSequence).
//		Scan(ctx, &v)
func (_q *CheckpointResultQuery) Select(fields ...string) *CheckpointResultSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CheckpointResultSelect{CheckpointResultQuery: _q}
	sbuild.label = checkpointresult.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CheckpointResultSelect configured with the given aggregations.
func (_q *CheckpointResultQuery) Aggregate(fns ...AggregateFunc) *CheckpointResultSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CheckpointResultQuery) prepareQuery(ctx context.Context) error {
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
		if !checkpointresult.ValidColumn(f) {
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

func (_q *CheckpointResultQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CheckpointResult, error) {
	var (
		nodes = []*CheckpointResult{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CheckpointResult).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CheckpointResult{config: _q.config}
		nodes = append(nodes, node)
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
	return nodes, nil
}

func (_q *CheckpointResultQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CheckpointResultQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(checkpointresult.Table, checkpointresult.Columns, sqlgraph.NewFieldSpec(checkpointresult.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, checkpointresult.FieldID)
		for i := range fields {
			if fields[i] != checkpointresult.FieldID {
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

func (_q *CheckpointResultQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(checkpointresult.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = checkpointresult.Columns
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

// CheckpointResultGroupBy is the group-by builder for CheckpointResult entities.
type CheckpointResultGroupBy struct {
	selector
	build *CheckpointResultQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CheckpointResultGroupBy) Aggregate(fns ...AggregateFunc) *CheckpointResultGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CheckpointResultGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CheckpointResultQuery, *CheckpointResultGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CheckpointResultGroupBy) sqlScan(ctx context.Context, root *CheckpointResultQuery, v any) error {
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

// CheckpointResultSelect is the builder for selecting fields of CheckpointResult entities.
type CheckpointResultSelect struct {
	*CheckpointResultQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CheckpointResultSelect) Aggregate(fns ...AggregateFunc) *CheckpointResultSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CheckpointResultSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CheckpointResultQuery, *CheckpointResultSelect](ctx, _s.CheckpointResultQuery, _s, _s.inters, v)
}

func (_s *CheckpointResultSelect) sqlScan(ctx context.Context, root *CheckpointResultQuery, v any) error {
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
