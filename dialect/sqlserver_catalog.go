package dialect

// DefaultSchema returns the schema of unqualified tables.
func (SQLServer) DefaultSchema() string { return "dbo" }

// RenameTable returns the statement renaming schema.table to newName.
func (d SQLServer) RenameTable(schema, table, newName string) (string, []any) {
	return "EXEC sp_rename " + d.Placeholder(0) + ", " + d.Placeholder(1),
		[]any{schema + "." + table, newName}
}

// IndexExists returns the query selecting 1 if the index exists on
// schema.table, otherwise 0.
func (d SQLServer) IndexExists(schema, table, index string) (string, []any) {
	return "SELECT CASE WHEN " + d.indexExists() + " THEN 1 ELSE 0 END",
		[]any{index, schema + "." + table}
}

// CreateIndexIfNotExists returns the statement creating the index on
// schema.table(column) unless it exists.
func (d SQLServer) CreateIndexIfNotExists(schema, table, column, index string) (string, []any) {
	query := "IF NOT " + d.indexExists() +
		" CREATE INDEX " + d.Quote(index) + " ON " + d.Quote(schema) + "." + d.Quote(table) + " (" + d.Quote(column) + ")"
	return query, []any{index, schema + "." + table}
}

// DropIndexIfExists returns the statement dropping the index on schema.table.
func (d SQLServer) DropIndexIfExists(schema, table, index string) (string, []any) {
	return "DROP INDEX IF EXISTS " + d.Quote(index) + " ON " + d.Quote(schema) + "." + d.Quote(table), nil
}

func (d SQLServer) indexExists() string {
	return "EXISTS (SELECT 1 FROM sys.indexes WHERE name = " + d.Placeholder(0) +
		" AND object_id = OBJECT_ID(" + d.Placeholder(1) + "))"
}

const defaultConstraintFrom = " FROM sys.tables t" +
	" JOIN sys.default_constraints d ON d.parent_object_id = t.object_id" +
	" JOIN sys.columns c ON c.object_id = t.object_id AND c.column_id = d.parent_column_id" +
	" WHERE SCHEMA_NAME(t.schema_id) = @p1 AND t.name = @p2 AND c.name = @p3"

// DefaultConstraint returns the query selecting the name of the default
// constraint of schema.table(column).
func (SQLServer) DefaultConstraint(schema, table, column string) (string, []any) {
	return "SELECT d.name" + defaultConstraintFrom, []any{schema, table, column}
}

// DropDefaultConstraint returns the statement dropping the default
// constraint of schema.table(column), if any.
func (SQLServer) DropDefaultConstraint(schema, table, column string) (string, []any) {
	query := "DECLARE @name sysname, @sql nvarchar(max);" +
		" SELECT @name = d.name" + defaultConstraintFrom + ";" +
		" IF @name IS NOT NULL BEGIN" +
		" SET @sql = N'ALTER TABLE ' + QUOTENAME(@p1) + N'.' + QUOTENAME(@p2) + N' DROP CONSTRAINT ' + QUOTENAME(@name);" +
		" EXEC sp_executesql @sql;" +
		" END"
	return query, []any{schema, table, column}
}
