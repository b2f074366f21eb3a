package dialect

import (
	"strconv"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = SQLite{}

// SQLite is the SQLite dialect.
type SQLite struct {
	dialect.SQLite
}

// Base implements Dialect.
func (d SQLite) Base() dialect.Dialect { return d.SQLite }

// Capabilities returns the capabilities of the SQLite dialect.
func (SQLite) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          false,
		SupportsTableAliasAs:      true,
		SupportsTableValuedParams: false,
	}
}

// Quote implements Dialect.
func (SQLite) Quote(ident string) string { return quote(ident, `"`, `"`) }

// Placeholder implements Dialect.
func (SQLite) Placeholder(ordinal int) string { return "?" + strconv.Itoa(ordinal+1) }

// LimitOffset implements Dialect. SQLite has no OFFSET without LIMIT.
func (SQLite) LimitOffset(limit, offset int64, _ bool) string {
	return limitOffset(limit, offset, "-1")
}
