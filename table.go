package sqlq

import (
	"github.com/qjebbs/go-sqlq/dialect"
)

// Table is the table name with optional schema and alias.
type Table struct {
	Schema, Name, Alias string
}

// AppliedName returns the alias if it is not empty, otherwise returns the name.
func (t Table) AppliedName() string {
	if t.Alias != "" {
		return t.Alias
	}
	return t.Name
}

// tableAs renders t into fragment like `"schema"."table" AS "t"`.
func (t Table) tableAs(d dialect.Dialect) string {
	s := quoteName(d, t.Name)
	if t.Schema != "" {
		s = quoteName(d, t.Schema) + "." + s
	}
	if t.Alias == "" {
		return s
	}
	if d.Capabilities().SupportsTableAliasAs {
		return s + " AS " + quoteName(d, t.Alias)
	}
	return s + " " + quoteName(d, t.Alias)
}

// quoteName quotes name unless it's already quoted in a tag.
func quoteName(d dialect.Dialect, name string) string {
	if name == "" {
		return name
	}
	switch name[0] {
	case '"', '`', '[':
		return name
	}
	return d.Quote(name)
}
