package sqlq

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/qjebbs/go-sqlf/v4"

	"github.com/qjebbs/go-sqlq/dialect"
)

type rawPredicate struct {
	b sqlf.Builder
}

// SQL returns a predicate from a go-sqlf builder, for conditions the
// predicate helpers cannot express, e.g.:
//
//	sqlq.SQL(sqlf.F("age BETWEEN ? AND ?", 18, 30))
//
// The builder is rendered in the query's dialect with its own numbering,
// and its args are re-homed into the query. The rendered text is wrapped in parentheses.
func SQL(b sqlf.Builder) Predicate {
	return rawPredicate{b}
}

func (p rawPredicate) render(r *renderer, f *fragment) error {
	if p.b == nil {
		return fmt.Errorf("nil sqlf builder")
	}
	ctx := sqlf.NewContext(context.Background(), r.d.Base())
	query, args, err := sqlf.Build(ctx, p.b)
	if err != nil {
		return err
	}
	f.text("(")
	if err := splice(f, r.ledger, query, args, bindPrefix(r.d)); err != nil {
		return err
	}
	f.text(")")
	return nil
}

// bindPrefix returns the placeholder token of d without its number,
// e.g.: "$" for PostgreSQL, "@p" for SQLServer and "?" for MySQL.
func bindPrefix(d dialect.Dialect) string {
	return strings.TrimRight(d.Placeholder(0), "0123456789")
}

// splice appends query to f, replacing each local bind token with a
// param of the referenced arg added to ledger. A token is prefix
// followed by the 1-based arg number, e.g.: `$2` or `@p2`. A bare `?`
// takes the next arg in order. Tokens inside quoted strings and
// identifiers are left as is. Repeated numbered tokens share one param.
func splice(f *fragment, ledger *Ledger, query string, args []any, prefix string) error {
	var local fragment
	mark := ledger.Len()
	params := make([]*Param, len(args))
	var quote byte
	start, next := 0, 0
	for i := 0; i < len(query); i++ {
		c := query[i]
		if quote != 0 {
			if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '\'', '"', '`':
			quote = c
			continue
		}
		if !strings.HasPrefix(query[i:], prefix) {
			continue
		}
		k := i + len(prefix)
		j := k
		for j < len(query) && query[j] >= '0' && query[j] <= '9' {
			j++
		}
		var n int
		switch {
		case j > k:
			v, err := strconv.Atoi(query[k:j])
			if err != nil || v < 1 || v > len(args) {
				ledger.truncate(mark)
				return fmt.Errorf("unmapped placeholder %s in %q", query[i:j], query)
			}
			n = v
		case prefix == "?":
			next++
			if next > len(args) {
				ledger.truncate(mark)
				return fmt.Errorf("unmapped placeholder ? #%d in %q", next, query)
			}
			n = next
		default:
			continue
		}
		if params[n-1] == nil {
			params[n-1] = ledger.Add(args[n-1])
		}
		local.text(query[start:i])
		local.param(params[n-1])
		start = j
		i = j - 1
	}
	local.text(query[start:])
	for i, p := range params {
		if p == nil {
			ledger.truncate(mark)
			return fmt.Errorf("argument %d is not referenced in %q", i+1, query)
		}
	}
	f.append(local)
	return nil
}
