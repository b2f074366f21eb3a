package sqlq_test

import (
	"fmt"

	"github.com/qjebbs/go-sqlf/v4"

	"github.com/qjebbs/go-sqlq"
	"github.com/qjebbs/go-sqlq/dialect"
)

type User struct {
	_      struct{} `sqlq:"table:users;alias:u"`
	ID     int      `sqlq:"col:id"`
	Name   string   `sqlq:"col:name"`
	Status string   `sqlq:"col:status"`
}

type Order struct {
	_          struct{} `sqlq:"table:orders;alias:o"`
	ID         int      `sqlq:"col:id"`
	CustomerID int      `sqlq:"col:customer_id"`
	Status     string   `sqlq:"col:status"`
}

func ExampleJoin() {
	d := dialect.PostgreSQL{}
	users := sqlq.New[User](d).
		Select(sqlq.C[User]("ID"), sqlq.C[User]("Name")).
		Where(sqlq.Eq(sqlq.C[User]("Status"), "active"))
	paid := sqlq.New[Order](d).
		Select(sqlq.C[Order]("CustomerID")).
		Where(sqlq.Eq(sqlq.C[Order]("Status"), "paid")).
		WhereIn(sqlq.C[Order]("ID"), []int{1, 2})
	_, err := sqlq.Join(
		users, paid,
		sqlq.Eq(sqlq.C[User]("ID"), sqlq.C[Order]("CustomerID")),
		"paid",
	)
	if err != nil {
		fmt.Println(err)
		return
	}
	query, args, err := users.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(query)
	fmt.Println(args)
	// Output:
	// SELECT "u"."id", "u"."name" FROM "users" AS "u" INNER JOIN (SELECT "o"."customer_id" FROM "orders" AS "o" WHERE "o"."status" = $2 AND "o"."id" IN ($3, $4)) "paid" ON "u"."id" = "paid"."customer_id" WHERE "u"."status" = $1
	// [active paid 1 2]
}

func Example_paginate() {
	q := sqlq.New[User](dialect.SQLServer{}).
		Select(sqlq.C[User]("Name")).
		WhereIf(true, sqlq.SQL(sqlf.F("LEN(name) > ?", 3))).
		OrderBy(sqlq.C[User]("ID"), sqlq.OrderAsc).
		Paginate(2, 20)
	query, args, err := q.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(query)
	fmt.Println(args)
	// Output:
	// SELECT "u"."name" FROM "users" AS "u" WHERE (LEN(name) > @p1) ORDER BY "u"."id" ASC OFFSET 40 ROWS FETCH NEXT 20 ROWS ONLY
	// [3]
}
