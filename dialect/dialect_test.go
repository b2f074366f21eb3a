package dialect_test

import (
	"testing"

	"github.com/qjebbs/go-sqlf/v4/dialect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sqlqdialect "github.com/qjebbs/go-sqlq/dialect"
)

func TestPlaceholder(t *testing.T) {
	tests := []struct {
		dialect sqlqdialect.Dialect
		want    []string
	}{
		{sqlqdialect.PostgreSQL{}, []string{"$1", "$2", "$10"}},
		{sqlqdialect.SQLServer{}, []string{"@p1", "@p2", "@p10"}},
		{sqlqdialect.SQLite{}, []string{"?1", "?2", "?10"}},
		{sqlqdialect.Oracle{}, []string{":1", ":2", ":10"}},
		{sqlqdialect.MySQL{}, []string{"?", "?", "?"}},
		{sqlqdialect.AnsiSQL{}, []string{"?", "?", "?"}},
	}
	for _, tc := range tests {
		got := []string{
			tc.dialect.Placeholder(0),
			tc.dialect.Placeholder(1),
			tc.dialect.Placeholder(9),
		}
		assert.Equal(t, tc.want, got, "%T", tc.dialect)
	}
}

func TestQuote(t *testing.T) {
	assert.Equal(t, `"users"`, sqlqdialect.PostgreSQL{}.Quote("users"))
	assert.Equal(t, `"a""b"`, sqlqdialect.SQLite{}.Quote(`a"b`))
	assert.Equal(t, "`users`", sqlqdialect.MySQL{}.Quote("users"))
	assert.Equal(t, "`a``b`", sqlqdialect.MySQL{}.Quote("a`b"))
}

func TestLimitOffset(t *testing.T) {
	tests := []struct {
		name    string
		dialect sqlqdialect.Dialect
		limit   int64
		offset  int64
		ordered bool
		want    string
	}{
		{"unset", sqlqdialect.PostgreSQL{}, 0, 0, false, ""},
		{"postgres", sqlqdialect.PostgreSQL{}, 20, 40, true, "LIMIT 20 OFFSET 40"},
		{"postgres offset", sqlqdialect.PostgreSQL{}, 0, 40, true, "OFFSET 40"},
		{"sqlite offset", sqlqdialect.SQLite{}, 0, 40, false, "LIMIT -1 OFFSET 40"},
		{"mysql limit", sqlqdialect.MySQL{}, 5, 0, false, "LIMIT 5"},
		{"sqlserver ordered", sqlqdialect.SQLServer{}, 20, 40, true, "OFFSET 40 ROWS FETCH NEXT 20 ROWS ONLY"},
		{"sqlserver unordered", sqlqdialect.SQLServer{}, 20, 0, false, "ORDER BY (SELECT NULL) OFFSET 0 ROWS FETCH NEXT 20 ROWS ONLY"},
		{"oracle", sqlqdialect.Oracle{}, 20, 40, false, "OFFSET 40 ROWS FETCH NEXT 20 ROWS ONLY"},
		{"ansi limit", sqlqdialect.AnsiSQL{}, 20, 0, false, "FETCH FIRST 20 ROWS ONLY"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dialect.LimitOffset(tc.limit, tc.offset, tc.ordered))
		})
	}
}

func TestTabular(t *testing.T) {
	var d sqlqdialect.Dialect = sqlqdialect.PostgreSQL{}
	tab, ok := d.(sqlqdialect.Tabular)
	require.True(t, ok)
	assert.Equal(t, `unnest(CAST($1 AS bigint[])) AS "$1"("Id")`, tab.TabularSource("$1"))
	assert.Equal(t, `"$1"`, tab.TabularRef("$1"))

	d = sqlqdialect.SQLServer{}
	tab, ok = d.(sqlqdialect.Tabular)
	require.True(t, ok)
	assert.Equal(t, "@p1", tab.TabularSource("@p1"))
	assert.Equal(t, `"@p1"`, tab.TabularRef("@p1"))

	d = sqlqdialect.SQLite{}
	_, ok = d.(sqlqdialect.Tabular)
	assert.False(t, ok)
	assert.False(t, d.Capabilities().SupportsTableValuedParams)
}

func TestUpgrade(t *testing.T) {
	d, ok := sqlqdialect.Upgrade(dialect.PostgreSQL{})
	require.True(t, ok)
	assert.IsType(t, sqlqdialect.PostgreSQL{}, d)
	assert.IsType(t, dialect.PostgreSQL{}, d.Base())

	d, ok = sqlqdialect.Upgrade(dialect.SQLServer{})
	require.True(t, ok)
	assert.Equal(t, "@p3", d.Placeholder(2))
}
