package sqlq

import (
	"github.com/qjebbs/go-sqlq/internal/util"
)

// InValues marks a list of values to be expanded into one param per
// value. It's the only value that expands: slices passed anywhere else
// are bound as a single param.
type InValues []any

// Values flattens a slice or array into InValues, and a nil list into
// an empty one, e.g.:
//
//	sqlq.In(sqlq.C[User]("ID"), sqlq.Values([]int{1, 2, 3}))
func Values(list any) InValues {
	switch v := list.(type) {
	case nil:
		return InValues{}
	case InValues:
		return v
	}
	return InValues(util.Flatten(list))
}

type inList struct {
	column Column
	values InValues
	not    bool
}

func (p inList) render(r *renderer, f *fragment) error {
	if err := r.column(&fragment{}, p.column); err != nil {
		return err
	}
	if len(p.values) == 0 {
		if p.not {
			f.text("1=1")
		} else {
			f.text("1=0")
		}
		return nil
	}
	if err := r.column(f, p.column); err != nil {
		return err
	}
	if p.not {
		f.text(" NOT IN (")
	} else {
		f.text(" IN (")
	}
	for i, v := range p.values {
		if i > 0 {
			f.text(", ")
		}
		f.param(r.ledger.Add(v))
	}
	f.text(")")
	return nil
}

// In returns the condition `c IN (...)` with one param per value.
// An empty list renders the always false `1=0`.
func In(c Column, values InValues) Predicate { return inList{column: c, values: values} }

// NotIn returns the condition `c NOT IN (...)` with one param per value.
// An empty list renders the always true `1=1`.
func NotIn(c Column, values InValues) Predicate {
	return inList{column: c, values: values, not: true}
}
