package sqlq

import (
	"fmt"
)

// Build builds the query and args. Args follow the ledger order, or the
// order of appearance for dialects with positional params.
func (q *Query[T]) Build() (query string, args []any, err error) {
	if err := q.Err(); err != nil {
		return "", nil, err
	}
	if q.limit < 0 || q.offset < 0 {
		return "", nil, fmt.Errorf("invalid paging: limit %d, offset %d", q.limit, q.offset)
	}
	f, err := q.render(false)
	if err != nil {
		return "", nil, err
	}
	query = f.sql(q.dialect)
	if q.dialect.Capabilities().PositionalParams {
		args = f.positionalArgs()
	} else {
		args = q.ledger.Values()
	}
	q.logIfDebug(q.dialect, query, args)
	return query, args, nil
}

// render renders the SELECT statement. As a sub-query, ORDER BY is
// kept only when paging is set.
func (q *Query[T]) render(sub bool) (fragment, error) {
	var f fragment
	r := &renderer{d: q.dialect, ledger: q.ledger}
	columns := q.columns()
	if len(columns) == 0 {
		return fragment{}, fmt.Errorf("%w: no columns selected", ErrMalformedSubquery)
	}
	if q.distinct {
		f.text("SELECT DISTINCT ")
	} else {
		f.text("SELECT ")
	}
	for i, c := range columns {
		if i > 0 {
			f.text(", ")
		}
		if err := r.column(&f, c); err != nil {
			return fragment{}, err
		}
	}
	f.text(" FROM " + q.shape.Table.tableAs(q.dialect))
	for _, j := range q.joins {
		f.text(" ")
		f.append(j)
	}
	for i, w := range q.where {
		if i == 0 {
			f.text(" WHERE ")
		} else {
			f.text(" AND ")
		}
		f.append(w)
	}
	paged := q.limit > 0 || q.offset > 0
	ordered := len(q.orders) > 0 && (!sub || paged)
	if ordered {
		f.text(" ORDER BY ")
		for i, item := range q.orders {
			if i > 0 {
				f.text(", ")
			}
			if err := r.column(&f, item.column); err != nil {
				return fragment{}, err
			}
			f.text(" " + orders[item.order])
		}
	}
	if paging := q.dialect.LimitOffset(q.limit, q.offset, ordered); paging != "" {
		f.text(" " + paging)
	}
	return f, nil
}
