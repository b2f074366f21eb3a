package sqlq

import (
	"reflect"
	"testing"
)

func TestLedgerAdd(t *testing.T) {
	l := &Ledger{}
	a := l.Add("a")
	b := l.Add("b")
	if a.Name() != "p0" || b.Name() != "p1" {
		t.Fatalf("got names %s, %s", a.Name(), b.Name())
	}
	if got := l.Values(); !reflect.DeepEqual(got, []any{"a", "b"}) {
		t.Fatalf("got values %v", got)
	}
}

func TestLedgerRehome(t *testing.T) {
	parent := &Ledger{}
	kept := parent.Add(1)
	sub := &Ledger{}
	sub.Add("x")
	sub.Add("y")

	mapping := parent.Rehome(sub.params)
	wantMapping := map[string]string{"p0": "p1", "p1": "p2"}
	if !reflect.DeepEqual(mapping, wantMapping) {
		t.Fatalf("got mapping %v, want %v", mapping, wantMapping)
	}
	if parent.Len() != 3 {
		t.Fatalf("got %d params, want 3", parent.Len())
	}
	if kept.ordinal != 0 {
		t.Fatalf("existing param renumbered to %d", kept.ordinal)
	}
	if got := parent.Values(); !reflect.DeepEqual(got, []any{1, "x", "y"}) {
		t.Fatalf("got values %v", got)
	}
	for i, p := range parent.Params() {
		if p.Ordinal() != i {
			t.Errorf("param %d has ordinal %d", i, p.Ordinal())
		}
	}

	if sub.Len() != 0 {
		t.Fatalf("sub keeps %d params after rehome", sub.Len())
	}

	// entries already owned are left untouched
	if m := parent.Rehome(parent.params[:1]); len(m) != 0 || parent.Len() != 3 {
		t.Fatalf("rehomed owned entries: %v", m)
	}
}

func TestLedgerRehomePartial(t *testing.T) {
	src := &Ledger{}
	a := src.Add("a")
	src.Add("b")
	c := src.Add("c")
	dst := &Ledger{}
	dst.Add("x")

	mapping := dst.Rehome([]*Param{a, c})
	wantMapping := map[string]string{"p0": "p1", "p2": "p2"}
	if !reflect.DeepEqual(mapping, wantMapping) {
		t.Fatalf("got mapping %v, want %v", mapping, wantMapping)
	}
	if got := dst.Values(); !reflect.DeepEqual(got, []any{"x", "a", "c"}) {
		t.Fatalf("got dst values %v", got)
	}
	if got := src.Values(); !reflect.DeepEqual(got, []any{"b"}) {
		t.Fatalf("got src values %v", got)
	}
	for _, l := range []*Ledger{src, dst} {
		names := make(map[string]bool)
		for i, p := range l.Params() {
			if p.Ordinal() != i {
				t.Errorf("param %d has ordinal %d", i, p.Ordinal())
			}
			if names[p.Name()] {
				t.Errorf("duplicate name %s", p.Name())
			}
			names[p.Name()] = true
		}
	}
	if a.owner != dst || c.owner != dst {
		t.Fatal("moved params not owned by dst")
	}
}

func TestLedgerTruncate(t *testing.T) {
	l := &Ledger{}
	l.Add(1)
	mark := l.Len()
	l.Add(2)
	l.Add(3)
	l.truncate(mark)
	if got := l.Values(); !reflect.DeepEqual(got, []any{1}) {
		t.Fatalf("got values %v", got)
	}
	if p := l.Add(4); p.ordinal != 1 {
		t.Fatalf("got ordinal %d after truncate, want 1", p.ordinal)
	}
}
