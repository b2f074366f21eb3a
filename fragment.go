package sqlq

import (
	"strings"

	"github.com/qjebbs/go-sqlq/dialect"
)

// fragment is rendered SQL kept as text parts and param references,
// so that params can be re-homed without touching the text.
// Placeholders are produced only when the SQL is finally built.
type fragment struct {
	parts []part
}

type part struct {
	text  string
	param *Param
	// wrap renders the text around the placeholder of param.
	wrap func(placeholder string) string
}

func (f *fragment) text(s string) {
	if s == "" {
		return
	}
	f.parts = append(f.parts, part{text: s})
}

func (f *fragment) param(p *Param) {
	f.parts = append(f.parts, part{param: p})
}

func (f *fragment) wrapParam(p *Param, wrap func(placeholder string) string) {
	f.parts = append(f.parts, part{param: p, wrap: wrap})
}

func (f *fragment) append(o fragment) {
	f.parts = append(f.parts, o.parts...)
}

// params returns the referenced params in order of first appearance.
func (f fragment) params() []*Param {
	var r []*Param
	seen := make(map[*Param]bool)
	for _, p := range f.parts {
		if p.param == nil || seen[p.param] {
			continue
		}
		seen[p.param] = true
		r = append(r, p.param)
	}
	return r
}

// clone returns a copy of f with param references replaced.
func (f fragment) clone(replace map[*Param]*Param) fragment {
	parts := make([]part, len(f.parts))
	for i, p := range f.parts {
		if p.param != nil {
			if r, ok := replace[p.param]; ok {
				p.param = r
			}
		}
		parts[i] = p
	}
	return fragment{parts: parts}
}

func (f fragment) sql(d dialect.Dialect) string {
	sb := new(strings.Builder)
	for _, p := range f.parts {
		if p.param == nil {
			sb.WriteString(p.text)
			continue
		}
		placeholder := d.Placeholder(p.param.ordinal)
		if p.wrap != nil {
			placeholder = p.wrap(placeholder)
		}
		sb.WriteString(placeholder)
	}
	return sb.String()
}

// positionalArgs returns the param values in order of appearance,
// for dialects whose placeholders carry no ordinal.
func (f fragment) positionalArgs() []any {
	var r []any
	for _, p := range f.parts {
		if p.param != nil {
			r = append(r, p.param.Value)
		}
	}
	return r
}
