package latexcalc

import (
	"math"
	"testing"
)

func TestDefaultConsts(t *testing.T) {
	cases := []struct {
		name string
		want Value
	}{
		{"e", Real(math.E)},
		{"pi", Real(math.Pi)},
		{"i", Complex(0, 1)},
	}
	for _, c := range cases {
		v, ok := Constants().Lookup(c.name)
		if !ok {
			t.Errorf("no constant %s", c.name)
			continue
		}
		if v != c.want {
			t.Errorf("%s: want %v, got %v", c.name, c.want, v)
		}
	}
	names := Constants().Names()
	if len(names) != 3 || names[0] != "e" || names[1] != "i" || names[2] != "pi" {
		t.Errorf("wrong names %q", names)
	}
}

func TestConstantTable(t *testing.T) {
	m := map[string]Value{"g": Real(9.8)}
	tab := NewConstantTable(m)
	m["c"] = Real(3e8)
	if _, ok := tab.Lookup("c"); ok {
		t.Error("table shares its map")
	}
	more := tab.With("h", Real(6.6e-34))
	if _, ok := tab.Lookup("h"); ok {
		t.Error("With modified its receiver")
	}
	if v, ok := more.Lookup("g"); !ok || v != Real(9.8) {
		t.Errorf("With lost g: %v, %t", v, ok)
	}
	if names := more.Names(); len(names) != 2 || names[0] != "g" || names[1] != "h" {
		t.Errorf("wrong names %q", names)
	}
	var zero ConstantTable
	if _, ok := zero.Lookup("pi"); ok {
		t.Error("zero table has pi")
	}
	if names := zero.With("pi", Real(3)).Names(); len(names) != 1 {
		t.Errorf("wrong names %q", names)
	}
}

func TestSortstrs(t *testing.T) {
	s := []string{"tan", "cos", "sqrt", "", "cosh", "cos"}
	sortstrs(s)
	want := []string{"", "cos", "cos", "cosh", "sqrt", "tan"}
	for i := range want {
		if s[i] != want[i] {
			t.Fatalf("want %q, got %q", want, s)
		}
	}
}
