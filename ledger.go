package sqlq

import (
	"strconv"
)

// Param is a bound parameter owned by a Ledger.
// Its name is derived from its ordinal, which changes only when
// the param is re-homed to another ledger.
type Param struct {
	ordinal int
	owner   *Ledger
	Value   any
}

// Ordinal returns the 0-based position of the param in its ledger.
func (p Param) Ordinal() int {
	return p.ordinal
}

// Name returns the dialect independent name of the param, e.g.: "p0".
func (p Param) Name() string {
	return "p" + strconv.Itoa(p.ordinal)
}

// Ledger is the ordered record of params of a query.
// Ordinals are contiguous from 0.
type Ledger struct {
	params []*Param
}

// Add appends a param of value with the next ordinal.
func (l *Ledger) Add(value any) *Param {
	p := &Param{
		ordinal: len(l.params),
		owner:   l,
		Value:   value,
	}
	l.params = append(l.params, p)
	return p
}

// Rehome appends entries after the existing params, preserving their
// order, and reassigns their ordinals and owner. Entries owned by
// another ledger are moved out of it, and the params left there are
// renumbered. Entries already owned by l are left untouched.
// It returns the mapping of old names to new ones.
func (l *Ledger) Rehome(entries []*Param) map[string]string {
	mapping := make(map[string]string, len(entries))
	var sources []*Ledger
	for _, p := range entries {
		if p.owner == l {
			continue
		}
		if src := p.owner; src != nil {
			src.remove(p)
			sources = append(sources, src)
		}
		old := p.Name()
		p.ordinal = len(l.params)
		p.owner = l
		l.params = append(l.params, p)
		mapping[old] = p.Name()
	}
	for _, src := range sources {
		src.renumber()
	}
	return mapping
}

// remove drops p from l without renumbering the rest.
func (l *Ledger) remove(p *Param) {
	for i, q := range l.params {
		if q == p {
			l.params = append(l.params[:i:i], l.params[i+1:]...)
			return
		}
	}
}

func (l *Ledger) renumber() {
	for i, p := range l.params {
		p.ordinal = i
	}
}

// Len returns the number of params.
func (l *Ledger) Len() int {
	return len(l.params)
}

// Params returns a snapshot of the params in ordinal order.
func (l *Ledger) Params() []Param {
	r := make([]Param, len(l.params))
	for i, p := range l.params {
		r[i] = *p
	}
	return r
}

// Values returns the param values in ordinal order.
func (l *Ledger) Values() []any {
	r := make([]any, len(l.params))
	for i, p := range l.params {
		r[i] = p.Value
	}
	return r
}

// truncate drops params added after the ledger had n params.
func (l *Ledger) truncate(n int) {
	for _, p := range l.params[n:] {
		p.owner = nil
	}
	l.params = l.params[:n]
}

// detach returns unowned copies of params, keyed by the params they copy.
func detach(params []*Param) ([]*Param, map[*Param]*Param) {
	copies := make([]*Param, len(params))
	mapping := make(map[*Param]*Param, len(params))
	for i, p := range params {
		c := &Param{ordinal: p.ordinal, Value: p.Value}
		copies[i] = c
		mapping[p] = c
	}
	return copies, mapping
}
