package sqlq

import (
	"fmt"

	"github.com/qjebbs/go-sqlq/dialect"
)

// renderer renders predicates into fragments, adding literal values
// to ledger as it encounters them.
type renderer struct {
	d      dialect.Dialect
	ledger *Ledger
	// bindings qualifies columns of a shape with an alias,
	// only for the current render call.
	bindings map[*Shape]string
}

func (r *renderer) qualifier(c Column) string {
	if c.qualifier != "" {
		return c.qualifier
	}
	if alias, ok := r.bindings[c.shape]; ok {
		return alias
	}
	return c.shape.Table.AppliedName()
}

func (r *renderer) column(f *fragment, c Column) error {
	if c.err != nil {
		return c.err
	}
	if c.shape == nil {
		return fmt.Errorf("%w: zero Column", ErrUnresolvedColumn)
	}
	f.text(quoteName(r.d, r.qualifier(c)) + "." + quoteName(r.d, c.name()))
	return nil
}

// operand renders a column reference, or binds any other value as one param.
func (r *renderer) operand(f *fragment, v any) error {
	switch v := v.(type) {
	case Column:
		return r.column(f, v)
	case InValues:
		return fmt.Errorf("%w: value list is only allowed in In and NotIn", ErrConversionUnsupported)
	default:
		f.param(r.ledger.Add(v))
		return nil
	}
}
