package dialect

import (
	"strconv"
	"strings"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

// Dialect is the capability interface the query composer depends on.
// Each implementation embeds the matching go-sqlf dialect.
type Dialect interface {
	// Base returns the go-sqlf dialect the implementation is built on.
	Base() dialect.Dialect

	// Capabilities returns the SQL capabilities of the dialect.
	Capabilities() Capabilities

	// Quote quotes an identifier, doubling any embedded closing quote.
	Quote(ident string) string

	// Placeholder returns the placeholder token of the parameter at
	// ordinal, which starts from 0.
	//
	// For example,
	//   PostgreSQL.Placeholder(0) // "$1"
	//   SQLServer.Placeholder(0)  // "@p1"
	//   MySQL.Placeholder(0)      // "?"
	Placeholder(ordinal int) string

	// LimitOffset renders the paging clause. Zero limit or offset means
	// unset, and an empty string is returned when both are unset.
	// ordered reports whether the statement has an ORDER BY clause.
	LimitOffset(limit, offset int64, ordered bool) string
}

// Tabular is implemented by dialects that can join against a
// table-valued parameter.
type Tabular interface {
	// TabularSource returns the join source reading rows from the
	// parameter bound at placeholder.
	TabularSource(placeholder string) string
	// TabularRef returns the qualifier of the source rows in
	// the ON condition.
	TabularRef(placeholder string) string
}

// Capabilities represents the SQL capabilities of a dialect.
type Capabilities struct {
	// PositionalParams indicates placeholders carry no ordinal, so arguments
	// must be passed in order of appearance.
	PositionalParams bool
	// SupportsTableAliasAs indicates whether the dialect accepts AS
	// between a table and its alias.
	//
	// For example (Oracle does not),
	//   SELECT * FROM users AS u
	SupportsTableAliasAs bool
	// SupportsTableValuedParams indicates whether a bound parameter can be
	// used as a join source.
	SupportsTableValuedParams bool
}

// Upgrade attempts to upgrade a sqlf/dialect.Dialect to a sqlq/dialect.Dialect.
func Upgrade(d dialect.Dialect) (Dialect, bool) {
	switch v := d.(type) {
	case dialect.PostgreSQL:
		return PostgreSQL{PostgreSQL: v}, true
	case dialect.SQLite:
		return SQLite{SQLite: v}, true
	case dialect.Oracle:
		return Oracle{Oracle: v}, true
	case dialect.SQLServer:
		return SQLServer{SQLServer: v}, true
	case dialect.AnsiSQL:
		return AnsiSQL{AnsiSQL: v}, true
	case dialect.MySQL:
		return MySQL{MySQL: v}, true
	}
	return nil, false
}

func quote(ident, open, end string) string {
	return open + strings.ReplaceAll(ident, end, end+end) + end
}

func itoa(i int64) string {
	return strconv.FormatInt(i, 10)
}

// offsetFetch renders the standard OFFSET ... FETCH paging clause.
func offsetFetch(limit, offset int64) string {
	switch {
	case limit > 0 && offset > 0:
		return "OFFSET " + itoa(offset) + " ROWS FETCH NEXT " + itoa(limit) + " ROWS ONLY"
	case limit > 0:
		return "FETCH FIRST " + itoa(limit) + " ROWS ONLY"
	case offset > 0:
		return "OFFSET " + itoa(offset) + " ROWS"
	}
	return ""
}
