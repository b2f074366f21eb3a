package sqlq

import (
	"fmt"
)

// Column references a column of a shape by its Go field name.
type Column struct {
	shape     *Shape
	field     string
	qualifier string
	err       error
}

// C returns the column of T mapped from field.
// The error of an unknown field is reported when the column is used.
//
// By default the column is qualified with the applied name of T's table,
// or with the alias when T is the joined side of a join condition.
func C[T any](field string) Column {
	s, err := ShapeOf[T]()
	if err != nil {
		return Column{field: field, err: err}
	}
	if _, ok := s.Column(field); !ok {
		return Column{
			field: field,
			err:   fmt.Errorf("%w: %s has no field %q", ErrUnresolvedColumn, s.Type, field),
		}
	}
	return Column{shape: s, field: field}
}

// Of returns a copy of c qualified with q, which takes precedence over
// any alias binding. Use it to reference a column of a joined alias, or
// the parent side of a self join.
func (c Column) Of(q string) Column {
	c.qualifier = q
	return c
}

// Err returns the error of resolving the column, if any.
func (c Column) Err() error {
	return c.err
}

func (c Column) name() string {
	col, _ := c.shape.Column(c.field)
	return col
}

// columnsOf returns all mapped columns of s.
func columnsOf(s *Shape) []Column {
	r := make([]Column, len(s.fields))
	for i, f := range s.fields {
		r[i] = Column{shape: s, field: f.name}
	}
	return r
}
