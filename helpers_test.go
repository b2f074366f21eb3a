package sqlq

import "testing"

type User struct {
	_      struct{} `sqlq:"table:users;alias:u"`
	ID     int      `sqlq:"col:id"`
	Name   string   `sqlq:"col:name"`
	Status string   `sqlq:"col:status"`
}

type OrderRow struct {
	_          struct{} `sqlq:"table:orders;alias:o"`
	ID         int      `sqlq:"col:id"`
	CustomerID int      `sqlq:"col:customer_id"`
	Total      float64  `sqlq:"col:total"`
	Status     string   `sqlq:"col:status"`
}

// Tag declares no table, so its table is named after the type.
type Tag struct {
	ID   int
	Name string
	Note string `sqlq:"-"`
}

func mustBuild[T any](t testing.TB, q *Query[T]) (string, []any) {
	t.Helper()
	query, args, err := q.Build()
	if err != nil {
		t.Fatal(err)
	}
	return query, args
}
