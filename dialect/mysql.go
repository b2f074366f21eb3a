package dialect

import (
	"github.com/qjebbs/go-sqlf/v4/dialect"
)

var _ Dialect = MySQL{}

// MySQL is the MySQL dialect.
type MySQL struct {
	dialect.MySQL
}

// Base implements Dialect.
func (d MySQL) Base() dialect.Dialect { return d.MySQL }

// Capabilities returns the capabilities of the MySQL dialect.
func (MySQL) Capabilities() Capabilities {
	return Capabilities{
		PositionalParams:          true,
		SupportsTableAliasAs:      true,
		SupportsTableValuedParams: false,
	}
}

// Quote implements Dialect.
func (MySQL) Quote(ident string) string { return quote(ident, "`", "`") }

// Placeholder implements Dialect.
func (MySQL) Placeholder(int) string { return "?" }

// LimitOffset implements Dialect.
func (MySQL) LimitOffset(limit, offset int64, _ bool) string {
	return limitOffset(limit, offset, "18446744073709551615")
}
