package sqlq

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qjebbs/go-sqlq/dialect"
)

// IDTable is a set of identifiers bound as one table-valued param with
// a single "Id" column. It's read only.
type IDTable []int

// String returns the comma-separated identifiers.
func (t IDTable) String() string {
	ids := make([]string, len(t))
	for i, id := range t {
		ids[i] = strconv.Itoa(id)
	}
	return strings.Join(ids, ",")
}

// JoinTabular joins the rows of ids by the column of field, e.g. on
// PostgreSQL:
//
//	INNER JOIN unnest(CAST($1 AS bigint[])) AS "$1"("Id") ON ("u"."id" = "$1"."Id")
//
// ids is bound as one param through the converter registered for IDTable,
// and ErrConversionUnsupported is returned if there is none, or the
// dialect cannot join a param. The database side is expected to accept
// the converted value as rows with an "Id" column.
//
// On error, q is left unchanged.
func JoinTabular[T any](q *Query[T], field string, ids IDTable) (*Query[T], error) {
	if err := q.Err(); err != nil {
		return q, err
	}
	column := Column{shape: q.shape, field: field}
	if _, ok := q.shape.Column(field); !ok {
		return q, fmt.Errorf("%w: %s has no field %q", ErrUnresolvedColumn, q.shape.Type, field)
	}
	tab, ok := q.dialect.(dialect.Tabular)
	if !ok || !q.dialect.Capabilities().SupportsTableValuedParams {
		return q, fmt.Errorf("%w: %T has no table-valued params", ErrConversionUnsupported, q.dialect)
	}
	if ids == nil {
		ids = IDTable{}
	}
	value, err := q.converters.Convert(ids)
	if err != nil {
		return q, err
	}

	r := &renderer{d: q.dialect, ledger: q.ledger}
	var col fragment
	if err := r.column(&col, column); err != nil {
		return q, err
	}
	p := q.ledger.Add(value)
	var f fragment
	f.text("INNER JOIN ")
	f.wrapParam(p, tab.TabularSource)
	f.text(" ON (")
	f.append(col)
	f.text(" = ")
	f.wrapParam(p, func(placeholder string) string {
		return tab.TabularRef(placeholder) + "." + q.dialect.Quote("Id")
	})
	f.text(")")
	q.joins = append(q.joins, f)
	return q, nil
}
