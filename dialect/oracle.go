package dialect

import (
	"strconv"

	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = Oracle{}

// Oracle is the Oracle dialect.
type Oracle struct {
	dialect.Oracle
}

// Base implements Dialect.
func (d Oracle) Base() dialect.Dialect { return d.Oracle }

// Capabilities returns the capabilities of the Oracle dialect.
func (Oracle) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          false,
		SupportsTableAliasAs:      false,
		SupportsTableValuedParams: false,
	}
}

// Quote implements Dialect.
func (Oracle) Quote(ident string) string { return quote(ident, `"`, `"`) }

// Placeholder implements Dialect.
func (Oracle) Placeholder(ordinal int) string { return ":" + strconv.Itoa(ordinal+1) }

// LimitOffset implements Dialect.
func (Oracle) LimitOffset(limit, offset int64, _ bool) string {
	return offsetFetch(limit, offset)
}
