package sqlq

import (
	"fmt"
)

// Predicate is a boolean condition over one or more shapes.
type Predicate interface {
	render(r *renderer, f *fragment) error
}

type comparison struct {
	op          string
	left, right any
}

func (p comparison) render(r *renderer, f *fragment) error {
	if err := r.operand(f, p.left); err != nil {
		return err
	}
	f.text(" " + p.op + " ")
	return r.operand(f, p.right)
}

// Eq returns the condition `a = b`. An operand is either a Column,
// or a value bound as one param.
func Eq(a, b any) Predicate { return comparison{"=", a, b} }

// Ne returns the condition `a <> b`.
func Ne(a, b any) Predicate { return comparison{"<>", a, b} }

// Lt returns the condition `a < b`.
func Lt(a, b any) Predicate { return comparison{"<", a, b} }

// Le returns the condition `a <= b`.
func Le(a, b any) Predicate { return comparison{"<=", a, b} }

// Gt returns the condition `a > b`.
func Gt(a, b any) Predicate { return comparison{">", a, b} }

// Ge returns the condition `a >= b`.
func Ge(a, b any) Predicate { return comparison{">=", a, b} }

// Like returns the condition `a LIKE b`.
func Like(a, b any) Predicate { return comparison{"LIKE", a, b} }

var compareOps = map[string]func(a, b any) Predicate{
	"=":    Eq,
	"<>":   Ne,
	"!=":   Ne,
	"<":    Lt,
	"<=":   Le,
	">":    Gt,
	">=":   Ge,
	"LIKE": Like,
}

// Compare returns the condition `a <op> b`, where op is one of
// =, <>, !=, <, <=, >, >= and LIKE.
func Compare(a any, op string, b any) Predicate {
	fn, ok := compareOps[op]
	if !ok {
		return errPredicate{fmt.Errorf("unsupported operator %q", op)}
	}
	return fn(a, b)
}

type nullCheck struct {
	column Column
	not    bool
}

func (p nullCheck) render(r *renderer, f *fragment) error {
	if err := r.column(f, p.column); err != nil {
		return err
	}
	if p.not {
		f.text(" IS NOT NULL")
	} else {
		f.text(" IS NULL")
	}
	return nil
}

// IsNull returns the condition `c IS NULL`.
func IsNull(c Column) Predicate { return nullCheck{column: c} }

// IsNotNull returns the condition `c IS NOT NULL`.
func IsNotNull(c Column) Predicate { return nullCheck{column: c, not: true} }

type junction struct {
	op    string
	items []Predicate
}

func (p junction) render(r *renderer, f *fragment) error {
	items := make([]Predicate, 0, len(p.items))
	for _, item := range p.items {
		if item != nil {
			items = append(items, item)
		}
	}
	switch len(items) {
	case 0:
		if p.op == "AND" {
			f.text("1=1")
		} else {
			f.text("1=0")
		}
		return nil
	case 1:
		return items[0].render(r, f)
	}
	f.text("(")
	for i, item := range items {
		if i > 0 {
			f.text(" " + p.op + " ")
		}
		if err := item.render(r, f); err != nil {
			return err
		}
	}
	f.text(")")
	return nil
}

// And returns the conjunction of preds. Nil items are ignored,
// and an empty conjunction is always true.
func And(preds ...Predicate) Predicate { return junction{"AND", preds} }

// Or returns the disjunction of preds. Nil items are ignored,
// and an empty disjunction is always false.
func Or(preds ...Predicate) Predicate { return junction{"OR", preds} }

type negation struct {
	p Predicate
}

func (p negation) render(r *renderer, f *fragment) error {
	if p.p == nil {
		return fmt.Errorf("nil predicate")
	}
	f.text("NOT (")
	if err := p.p.render(r, f); err != nil {
		return err
	}
	f.text(")")
	return nil
}

// Not returns the negation of p.
func Not(p Predicate) Predicate { return negation{p} }

type errPredicate struct {
	err error
}

func (p errPredicate) render(*renderer, *fragment) error { return p.err }
