package selector_test

import (
	"errors"
	"testing"

	"cssb/selector"
)

func TestCombine_MatchesOperandRendering(t *testing.T) {
	a := selector.Element("p").Class("note")
	b := selector.ID("main")

	combined, err := selector.Combine(a, "+", b).Stringify()
	if err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}

	as, _ := a.Stringify()
	bs, _ := b.Stringify()
	if want := as + " + " + bs; combined != want {
		t.Errorf("Stringify() = %q, want %q", combined, want)
	}
}

func TestCombine_Combinators(t *testing.T) {
	tests := []struct {
		name       string
		combinator string
		want       string
	}{
		{"child", selector.Child, "div > span"},
		{"adjacent", selector.Adjacent, "div + span"},
		{"sibling", selector.Sibling, "div ~ span"},
		// a space combinator renders with its surrounding spaces intact
		{"descendant", selector.Descendant, "div   span"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := selector.Combine(selector.Element("div"), tt.combinator, selector.Element("span")).Stringify()
			if err != nil {
				t.Fatalf("Stringify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombine_NestedFlattens(t *testing.T) {
	a := selector.Element("ul")
	b := selector.Element("li")
	c := selector.Class("active")

	tests := []struct {
		name string
		node *selector.Builder
		want string
	}{
		{
			"left nested",
			selector.Combine(selector.Combine(a, "~", b), " ", c),
			"ul ~ li   .active",
		},
		{
			"right nested",
			selector.Combine(a, ">", selector.Combine(b, "+", c)),
			"ul > li + .active",
		},
		{
			"both nested",
			selector.Combine(
				selector.Combine(selector.Element("nav"), ">", selector.Element("ul")),
				"~",
				selector.Combine(selector.Element("ol"), ">", selector.Element("li")),
			),
			"nav > ul ~ ol > li",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.node.Stringify()
			if err != nil {
				t.Fatalf("Stringify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCombine_SharedOperandRendering(t *testing.T) {
	// operands are shared read-only; combining must not change what they
	// render on their own
	a := selector.Element("p")
	b := selector.Element("em")
	if _, err := selector.Combine(a, ">", b).Stringify(); err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}

	as, _ := a.Stringify()
	if as != "p" {
		t.Errorf("left operand rendered %q after combine, want %q", as, "p")
	}
}

func TestCombine_PropagatesOperandErrors(t *testing.T) {
	bad := selector.PseudoElement("after").Element("p")
	good := selector.Element("div")

	tests := []struct {
		name string
		node *selector.Builder
	}{
		{"bad left", selector.Combine(bad, ">", good)},
		{"bad right", selector.Combine(good, ">", bad)},
		{"bad nested", selector.Combine(good, "+", selector.Combine(bad, ">", good))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.node.Stringify(); !errors.Is(err, selector.ErrOrderViolation) {
				t.Errorf("Stringify() error = %v, want ErrOrderViolation", err)
			}
		})
	}
}

func TestCombine_NodeShape(t *testing.T) {
	node := selector.Combine(selector.Element("a"), ">", selector.Element("b"))
	if node.IsSimple() || !node.IsCombined() {
		t.Error("Combine() must produce a combined node")
	}

	// fragment setters are locked out on a combined node
	if err := node.SetElement("p"); !errors.Is(err, selector.ErrOrderViolation) {
		t.Errorf("SetElement() on combined node error = %v, want ErrOrderViolation", err)
	}
	if err := node.AddClass("x"); !errors.Is(err, selector.ErrOrderViolation) {
		t.Errorf("AddClass() on combined node error = %v, want ErrOrderViolation", err)
	}
}
