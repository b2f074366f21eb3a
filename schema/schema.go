// Package schema builds DDL and catalog queries, e.g. to rename tables,
// add unique constraints or indexes. It only builds the statements,
// executing them is left to the caller.
package schema

import (
	"fmt"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
)

// Statement is a built statement with its args.
type Statement struct {
	SQL  string
	Args []any
}

// Catalog is implemented by dialects that can introspect and
// alter their schema catalog, e.g. dialect.SQLServer.
type Catalog interface {
	dialect.Dialect

	// DefaultSchema returns the schema of unqualified tables.
	DefaultSchema() string
	RenameTable(schema, table, newName string) (string, []any)
	IndexExists(schema, table, index string) (string, []any)
	CreateIndexIfNotExists(schema, table, column, index string) (string, []any)
	DropIndexIfExists(schema, table, index string) (string, []any)
	DefaultConstraint(schema, table, column string) (string, []any)
	DropDefaultConstraint(schema, table, column string) (string, []any)
}

var _ Catalog = dialect.SQLServer{}

// UniqueConstraintName returns the name of the unique constraint, e.g.: "UQ_users_email".
func UniqueConstraintName(table, column string) string {
	return fmt.Sprintf("UQ_%s_%s", table, column)
}

// IndexName returns the name of the index, e.g.: "IX_users_email".
func IndexName(table, column string) string {
	return fmt.Sprintf("IX_%s_%s", table, column)
}

// RenameTable renames t to newName.
func RenameTable(c Catalog, t sqlq.Table, newName string) Statement {
	return statement(c.RenameTable(schemaOf(c, t), t.Name, newName))
}

// AddUniqueConstraint adds the unique constraint on t(column).
func AddUniqueConstraint(d dialect.Dialect, t sqlq.Table, column string) Statement {
	return Statement{
		SQL: fmt.Sprintf(
			"ALTER TABLE %s ADD CONSTRAINT %s UNIQUE (%s)",
			qualified(d, t), d.Quote(UniqueConstraintName(t.Name, column)), d.Quote(column),
		),
	}
}

// DropUniqueConstraint drops the unique constraint on t(column), if any.
func DropUniqueConstraint(d dialect.Dialect, t sqlq.Table, column string) Statement {
	return Statement{
		SQL: fmt.Sprintf(
			"ALTER TABLE %s DROP CONSTRAINT IF EXISTS %s",
			qualified(d, t), d.Quote(UniqueConstraintName(t.Name, column)),
		),
	}
}

// IndexExists queries whether the index of t(column) exists.
func IndexExists(c Catalog, t sqlq.Table, column string) Statement {
	return statement(c.IndexExists(schemaOf(c, t), t.Name, IndexName(t.Name, column)))
}

// CreateIndexIfNotExists creates the index of t(column) unless it exists.
func CreateIndexIfNotExists(c Catalog, t sqlq.Table, column string) Statement {
	return statement(c.CreateIndexIfNotExists(schemaOf(c, t), t.Name, column, IndexName(t.Name, column)))
}

// DropIndexIfExists drops the index of t(column), if any.
func DropIndexIfExists(c Catalog, t sqlq.Table, column string) Statement {
	return statement(c.DropIndexIfExists(schemaOf(c, t), t.Name, IndexName(t.Name, column)))
}

// DefaultConstraint queries the name of the default constraint of t(column).
func DefaultConstraint(c Catalog, t sqlq.Table, column string) Statement {
	return statement(c.DefaultConstraint(schemaOf(c, t), t.Name, column))
}

// DropDefaultConstraint drops the default constraint of t(column), if any.
func DropDefaultConstraint(c Catalog, t sqlq.Table, column string) Statement {
	return statement(c.DropDefaultConstraint(schemaOf(c, t), t.Name, column))
}

func statement(query string, args []any) Statement {
	return Statement{SQL: query, Args: args}
}

func schemaOf(c Catalog, t sqlq.Table) string {
	if t.Schema != "" {
		return t.Schema
	}
	return c.DefaultSchema()
}

func qualified(d dialect.Dialect, t sqlq.Table) string {
	if t.Schema == "" {
		return d.Quote(t.Name)
	}
	return d.Quote(t.Schema) + "." + d.Quote(t.Name)
}
