// Package sqlq composes parameterized SELECT statements incrementally.
// It provides,
//   - Queries over Go struct shapes, rendered for a chosen dialect.
//   - Joins against fully-built sub-queries, with their parameters
//     re-homed onto the parent and the join condition qualified
//     with the join alias.
//   - Joins against table-valued parameters through registered converters.
//   - IN value lists expanded into one parameter per value.
//
// sqlq only produces a SQL string plus an ordered parameter list,
// executing it is left to the caller.
package sqlq

// Order is the sorting order.
type Order uint

// orders
const (
	OrderAsc Order = iota
	OrderAscNullsFirst
	OrderAscNullsLast
	OrderDesc
	OrderDescNullsFirst
	OrderDescNullsLast
)

var orders = []string{
	"ASC",
	"ASC NULLS FIRST",
	"ASC NULLS LAST",
	"DESC",
	"DESC NULLS FIRST",
	"DESC NULLS LAST",
}

// orderItem represents a single order by item.
type orderItem struct {
	column Column
	order  Order
}
