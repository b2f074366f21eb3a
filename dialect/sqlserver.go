package dialect

import (
	"strconv"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var (
	_ Dialect = SQLServer{}
	_ Tabular = SQLServer{}
)

// SQLServer is the Microsoft SQL Server dialect.
type SQLServer struct {
	dialect.SQLServer
}

// Base implements Dialect.
func (d SQLServer) Base() dialect.Dialect { return d.SQLServer }

// Capabilities returns the capabilities of the SQLServer dialect.
func (SQLServer) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          false,
		SupportsTableAliasAs:      true,
		SupportsTableValuedParams: true,
	}
}

// Quote implements Dialect.
func (SQLServer) Quote(ident string) string { return quote(ident, `"`, `"`) }

// Placeholder implements Dialect.
func (SQLServer) Placeholder(ordinal int) string { return "@p" + strconv.Itoa(ordinal+1) }

// LimitOffset implements Dialect. OFFSET ... FETCH is only valid after
// ORDER BY, so a no-op ordering is added for unordered statements.
func (SQLServer) LimitOffset(limit, offset int64, ordered bool) string {
	if limit <= 0 && offset <= 0 {
		return ""
	}
	clause := "OFFSET " + itoa(max(offset, 0)) + " ROWS"
	if limit > 0 {
		clause += " FETCH NEXT " + itoa(limit) + " ROWS ONLY"
	}
	if !ordered {
		clause = "ORDER BY (SELECT NULL) " + clause
	}
	return clause
}

// TabularSource implements Tabular. The parameter is a structured
// value whose rows are read directly.
func (SQLServer) TabularSource(placeholder string) string { return placeholder }

// TabularRef implements Tabular.
func (d SQLServer) TabularRef(placeholder string) string { return d.Quote(placeholder) }
