package sqlq

import (
	"errors"
	"fmt"

	"github.com/qjebbs/go-sqlq/dialect"
)

// Query is an in-progress SELECT over the shape of T.
// It's not safe for concurrent use.
type Query[T any] struct {
	shape      *Shape
	dialect    dialect.Dialect
	converters *Converters

	distinct bool
	selects  []Column
	where    []fragment
	joins    []fragment
	orders   []orderItem
	aliases  map[string]bool // aliases of joined sub-queries
	ledger   *Ledger

	limit, offset int64

	errors []error // errors during the build

	debugger
}

// New returns a new query over the shape of T.
// A nil dialect falls back to PostgreSQL.
func New[T any](d dialect.Dialect, opts ...Option) *Query[T] {
	if d == nil {
		d = dialect.PostgreSQL{}
	}
	o := newOptions(opts)
	q := &Query[T]{
		dialect:    d,
		converters: o.converters,
		aliases:    make(map[string]bool),
		ledger:     &Ledger{},
	}
	q.debugger.logger = o.logger
	if o.debugOn {
		q.debugger.enable(o.debug...)
	}
	shape, err := ShapeOf[T]()
	if err != nil {
		q.pushError(err)
		return q
	}
	q.shape = shape
	return q
}

// Shape returns the shape of T, nil if it cannot be resolved.
func (q *Query[T]) Shape() *Shape {
	return q.shape
}

// Dialect returns the dialect of the query.
func (q *Query[T]) Dialect() dialect.Dialect {
	return q.dialect
}

// Distinct set the flag for SELECT DISTINCT.
func (q *Query[T]) Distinct() *Query[T] {
	q.distinct = true
	return q
}

// Select replaces the SELECT columns. Selecting nothing selects
// all columns of T.
func (q *Query[T]) Select(columns ...Column) *Query[T] {
	for _, c := range columns {
		if c.err != nil {
			q.pushError(c.err)
			return q
		}
	}
	q.selects = columns
	return q
}

// Limit set the limit. Non-positive values are ignored.
func (q *Query[T]) Limit(limit int64) *Query[T] {
	if limit > 0 {
		q.limit = limit
	}
	return q
}

// Offset set the offset. Non-positive values are ignored.
func (q *Query[T]) Offset(offset int64) *Query[T] {
	if offset > 0 {
		q.offset = offset
	}
	return q
}

// Paginate sets limit to pageSize and offset to pageSize*pageIndex.
// The inputs are not clamped, and a negative result is reported when
// the query is built or joined.
func (q *Query[T]) Paginate(pageIndex, pageSize int) *Query[T] {
	q.limit = int64(pageSize)
	q.offset = int64(pageSize) * int64(pageIndex)
	return q
}

// LimitOffset returns the current limit and offset, zero if unset.
func (q *Query[T]) LimitOffset() (limit, offset int64) {
	return q.limit, q.offset
}

// OrderBy adds an ORDER BY item.
func (q *Query[T]) OrderBy(column Column, order Order) *Query[T] {
	if column.err != nil {
		q.pushError(column.err)
		return q
	}
	if order > OrderDescNullsLast {
		q.pushError(fmt.Errorf("invalid order: %d", order))
		return q
	}
	q.orders = append(q.orders, orderItem{column: column, order: order})
	return q
}

// Debug enables debug mode which logs the built query and args.
func (q *Query[T]) Debug(name ...string) *Query[T] {
	q.debugger.enable(name...)
	return q
}

// Params returns a snapshot of the bound params in ordinal order.
func (q *Query[T]) Params() []Param {
	return q.ledger.Params()
}

// Err returns the errors collected by the chained calls, if any.
func (q *Query[T]) Err() error {
	return errors.Join(q.errors...)
}

func (q *Query[T]) pushError(err error) {
	q.errors = append(q.errors, err)
}

func (q *Query[T]) columns() []Column {
	if len(q.selects) > 0 {
		return q.selects
	}
	if q.shape == nil {
		return nil
	}
	return columnsOf(q.shape)
}

// renderPredicate renders p onto the ledger of q, leaving the ledger
// unchanged on error.
func (q *Query[T]) renderPredicate(p Predicate) (fragment, error) {
	mark := q.ledger.Len()
	r := &renderer{d: q.dialect, ledger: q.ledger}
	var f fragment
	if err := p.render(r, &f); err != nil {
		q.ledger.truncate(mark)
		return fragment{}, err
	}
	return f, nil
}
