package dialect

import (
	"strconv"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var (
	_ Dialect = PostgreSQL{}
	_ Tabular = PostgreSQL{}
)

// PostgreSQL is the PostgreSQL dialect.
type PostgreSQL struct {
	dialect.PostgreSQL
}

// Base implements Dialect.
func (d PostgreSQL) Base() dialect.Dialect { return d.PostgreSQL }

// Capabilities returns the capabilities of the PostgreSQL dialect.
func (PostgreSQL) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          false,
		SupportsTableAliasAs:      true,
		SupportsTableValuedParams: true,
	}
}

// Quote implements Dialect.
func (PostgreSQL) Quote(ident string) string { return quote(ident, `"`, `"`) }

// Placeholder implements Dialect.
func (PostgreSQL) Placeholder(ordinal int) string { return "$" + strconv.Itoa(ordinal+1) }

// LimitOffset implements Dialect.
func (PostgreSQL) LimitOffset(limit, offset int64, _ bool) string {
	return limitOffset(limit, offset, "")
}

// TabularSource unnests the bound bigint array into rows of a single "Id" column.
func (d PostgreSQL) TabularSource(placeholder string) string {
	return "unnest(CAST(" + placeholder + " AS bigint[])) AS " + d.TabularRef(placeholder) + `("Id")`
}

// TabularRef implements Tabular.
func (d PostgreSQL) TabularRef(placeholder string) string { return d.Quote(placeholder) }

// limitOffset renders LIMIT / OFFSET, using noLimit as the LIMIT
// value when only an offset is set, if the dialect requires one.
func limitOffset(limit, offset int64, noLimit string) string {
	switch {
	case limit > 0 && offset > 0:
		return "LIMIT " + itoa(limit) + " OFFSET " + itoa(offset)
	case limit > 0:
		return "LIMIT " + itoa(limit)
	case offset > 0 && noLimit != "":
		return "LIMIT " + noLimit + " OFFSET " + itoa(offset)
	case offset > 0:
		return "OFFSET " + itoa(offset)
	}
	return ""
}
