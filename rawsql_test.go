package sqlq

import (
	"reflect"
	"testing"

	"github.com/qjebbs/go-sqlf/v4"

	"github.com/qjebbs/go-sqlq/dialect"
)

func TestSplice(t *testing.T) {
	testCases := []struct {
		name      string
		prefix    string
		query     string
		args      []any
		wantQuery string
		wantArgs  []any
		wantErr   bool
	}{
		{
			name:      "renumbered",
			query:     "a = $1 AND b = $2",
			args:      []any{"x", "y"},
			wantQuery: "a = ?2 AND b = ?3",
			wantArgs:  []any{0, "x", "y"},
		},
		{
			name:      "repeated token shares param",
			query:     "a = $1 OR b = $1",
			args:      []any{"x"},
			wantQuery: "a = ?2 OR b = ?2",
			wantArgs:  []any{0, "x"},
		},
		{
			name:      "no collision past $9",
			query:     "$10 - $1 - $2 - $3 - $4 - $5 - $6 - $7 - $8 - $9",
			args:      []any{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			wantQuery: "?2 - ?3 - ?4 - ?5 - ?6 - ?7 - ?8 - ?9 - ?10 - ?11",
			wantArgs:  []any{0, 10, 1, 2, 3, 4, 5, 6, 7, 8, 9},
		},
		{
			name:      "quoted tokens kept",
			query:     `note = '$1' AND "$2" = $1`,
			args:      []any{"x"},
			wantQuery: `note = '$1' AND "$2" = ?2`,
			wantArgs:  []any{0, "x"},
		},
		{
			name:      "sqlserver tokens",
			prefix:    "@p",
			query:     "a = @p2 AND b = @p1",
			args:      []any{"x", "y"},
			wantQuery: "a = ?2 AND b = ?3",
			wantArgs:  []any{0, "y", "x"},
		},
		{
			name:      "bare tokens in order",
			prefix:    "?",
			query:     "a = ? AND `?` = ? AND c = '?'",
			args:      []any{"x", "y"},
			wantQuery: "a = ?2 AND `?` = ?3 AND c = '?'",
			wantArgs:  []any{0, "x", "y"},
		},
		{
			name:    "too many bare tokens",
			prefix:  "?",
			query:   "a = ? AND b = ?",
			args:    []any{"x"},
			wantErr: true,
		},
		{
			name:    "unmapped",
			query:   "a = $2",
			args:    []any{"x"},
			wantErr: true,
		},
		{
			name:    "unreferenced",
			query:   "a = 1",
			args:    []any{"x"},
			wantErr: true,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			l := &Ledger{}
			l.Add(0)
			var f fragment
			prefix := tc.prefix
			if prefix == "" {
				prefix = "$"
			}
			err := splice(&f, l, tc.query, tc.args, prefix)
			if tc.wantErr {
				if err == nil {
					t.Fatal("want error")
				}
				if l.Len() != 1 {
					t.Fatalf("ledger not rolled back: %d params", l.Len())
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got := f.sql(dialect.SQLite{}); got != tc.wantQuery {
				t.Errorf("got query %q, want %q", got, tc.wantQuery)
			}
			if got := l.Values(); !reflect.DeepEqual(got, tc.wantArgs) {
				t.Errorf("got args %v, want %v", got, tc.wantArgs)
			}
		})
	}
}

func TestSQLPredicate(t *testing.T) {
	q := New[User](dialect.PostgreSQL{}).
		Where(Eq(C[User]("Status"), "active")).
		Where(SQL(sqlf.F("length(name) > ?", 3)))
	query, args := mustBuild(t, q)
	want := `SELECT "u"."id", "u"."name", "u"."status" FROM "users" AS "u" WHERE "u"."status" = $1 AND (length(name) > $2)`
	if query != want {
		t.Errorf("got query:\n%s\nwant:\n%s", query, want)
	}
	if !reflect.DeepEqual(args, []any{"active", 3}) {
		t.Errorf("got args %v", args)
	}
}

func TestSQLPredicateDialects(t *testing.T) {
	testCases := []struct {
		name      string
		query     *Query[User]
		wantQuery string
		wantArgs  []any
	}{
		{
			name: "mysql",
			query: New[User](dialect.MySQL{}).
				Where(Eq(C[User]("Status"), "active")).
				Where(SQL(sqlf.F("length(name) BETWEEN ? AND ?", 3, 8))),
			wantQuery: "SELECT `u`.`id`, `u`.`name`, `u`.`status` FROM `users` AS `u` WHERE `u`.`status` = ? AND (length(name) BETWEEN ? AND ?)",
			wantArgs:  []any{"active", 3, 8},
		},
		{
			name: "sqlserver",
			query: New[User](dialect.SQLServer{}).
				Where(Eq(C[User]("Status"), "active")).
				Where(SQL(sqlf.F("len(name) > ?", 3))),
			wantQuery: `SELECT "u"."id", "u"."name", "u"."status" FROM "users" AS "u" WHERE "u"."status" = @p1 AND (len(name) > @p2)`,
			wantArgs:  []any{"active", 3},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			query, args := mustBuild(t, tc.query)
			if query != tc.wantQuery {
				t.Errorf("got query:\n%s\nwant:\n%s", query, tc.wantQuery)
			}
			if !reflect.DeepEqual(args, tc.wantArgs) {
				t.Errorf("got args %v, want %v", args, tc.wantArgs)
			}
		})
	}
}
