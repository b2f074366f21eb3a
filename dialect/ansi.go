package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = AnsiSQL{}

// AnsiSQL is the ANSI SQL dialect.
type AnsiSQL struct {
	dialect.AnsiSQL
}

// Base implements Dialect.
func (d AnsiSQL) Base() dialect.Dialect { return d.AnsiSQL }

// Capabilities returns the capabilities of the ANSI SQL dialect.
func (AnsiSQL) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          true,
		SupportsTableAliasAs:      true,
		SupportsTableValuedParams: false,
	}
}

// Quote implements Dialect.
func (AnsiSQL) Quote(ident string) string { return quote(ident, `"`, `"`) }

// Placeholder implements Dialect.
func (AnsiSQL) Placeholder(int) string { return "?" }

// LimitOffset implements Dialect.
func (AnsiSQL) LimitOffset(limit, offset int64, _ bool) string {
	return offsetFetch(limit, offset)
}
