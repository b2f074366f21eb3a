package sqlq

import (
	"fmt"
	"reflect"
	"strings"
)

// Join joins the sub-query as `INNER JOIN (<sub>) "alias" ON <on>`, e.g.:
//
//	paid := sqlq.New[Order](d).
//		Select(sqlq.C[Order]("CustomerID")).
//		Where(sqlq.Eq(sqlq.C[Order]("Status"), "paid"))
//	q, err := sqlq.Join(users, paid, sqlq.Eq(sqlq.C[User]("ID"), sqlq.C[Order]("CustomerID")), "paid")
//
// Columns of S in the condition are qualified with alias, unless they
// are qualified explicitly with Column.Of. The params of sub are copied
// after the existing params of parent, so sub is left reusable.
//
// On error, parent is left unchanged.
func Join[T, S any](parent *Query[T], sub *Query[S], on Predicate, alias string) (*Query[T], error) {
	return join(parent, sub, on, alias, "INNER JOIN")
}

// LeftJoin is like Join, but joins with `LEFT JOIN`.
func LeftJoin[T, S any](parent *Query[T], sub *Query[S], on Predicate, alias string) (*Query[T], error) {
	return join(parent, sub, on, alias, "LEFT JOIN")
}

func join[T, S any](parent *Query[T], sub *Query[S], on Predicate, alias, kind string) (*Query[T], error) {
	if sub == nil {
		return parent, fmt.Errorf("%w: nil sub-query", ErrMalformedSubquery)
	}
	if on == nil {
		return parent, fmt.Errorf("%w: nil join condition", ErrMalformedSubquery)
	}
	if err := parent.Err(); err != nil {
		return parent, err
	}
	if err := parent.checkAlias(alias); err != nil {
		return parent, err
	}
	if err := checkSubquery(parent, sub); err != nil {
		return parent, err
	}
	subFrag, err := sub.render(true)
	if err != nil {
		return parent, fmt.Errorf("%w: %w", ErrMalformedSubquery, err)
	}
	scratch := &Ledger{}
	r := &renderer{
		d:        parent.dialect,
		ledger:   scratch,
		bindings: map[*Shape]string{sub.shape: alias},
	}
	var cond fragment
	if err := on.render(r, &cond); err != nil {
		return parent, err
	}

	// nothing fails from here on
	copies, mapping := detach(sub.ledger.params)
	parent.ledger.Rehome(copies)
	parent.ledger.Rehome(cond.params())

	var f fragment
	f.text(kind + " (")
	f.append(subFrag.clone(mapping))
	f.text(") " + parent.dialect.Quote(alias) + " ON ")
	f.append(cond)
	parent.joins = append(parent.joins, f)
	parent.aliases[strings.ToLower(alias)] = true
	return parent, nil
}

func (q *Query[T]) checkAlias(alias string) error {
	if alias == "" {
		return fmt.Errorf("%w: empty alias", ErrInvalidAlias)
	}
	if !isIdentifier(alias) {
		return fmt.Errorf("%w: %q is not an identifier", ErrInvalidAlias, alias)
	}
	if strings.EqualFold(alias, q.shape.Table.AppliedName()) {
		return fmt.Errorf("%w: %q is the table of the query", ErrInvalidAlias, alias)
	}
	if q.aliases[strings.ToLower(alias)] {
		return fmt.Errorf("%w: %q is already joined", ErrInvalidAlias, alias)
	}
	return nil
}

func checkSubquery[T, S any](parent *Query[T], sub *Query[S]) error {
	if err := sub.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedSubquery, err)
	}
	if len(sub.columns()) == 0 {
		return fmt.Errorf("%w: no columns selected", ErrMalformedSubquery)
	}
	if sub.limit < 0 || sub.offset < 0 {
		return fmt.Errorf("%w: invalid paging: limit %d, offset %d", ErrMalformedSubquery, sub.limit, sub.offset)
	}
	if reflect.TypeOf(sub.dialect) != reflect.TypeOf(parent.dialect) {
		return fmt.Errorf("%w: dialect %T differs from %T", ErrMalformedSubquery, sub.dialect, parent.dialect)
	}
	return nil
}

// isIdentifier reports whether s is [a-zA-Z_][a-zA-Z0-9_]*.
func isIdentifier(s string) bool {
	for i, ch := range s {
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch == '_':
		case ch >= '0' && ch <= '9' && i > 0:
		default:
			return false
		}
	}
	return s != ""
}
