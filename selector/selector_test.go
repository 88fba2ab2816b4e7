package selector_test

import (
	"errors"
	"testing"

	"cssb/selector"
)

func TestBuilder_CanonicalOrderRendering(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
		want  string
	}{
		{
			"element only",
			func() *selector.Builder { return selector.Element("div") },
			"div",
		},
		{
			"id with classes",
			func() *selector.Builder {
				return selector.ID("main").Class("container").Class("editable")
			},
			"#main.container.editable",
		},
		{
			"element attribute pseudo-class",
			func() *selector.Builder {
				return selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
			},
			`a[href$=".png"]:focus`,
		},
		{
			"all fragment kinds",
			func() *selector.Builder {
				return selector.Element("li").
					ID("first").
					Class("item").
					Attr("data-state=open").
					PseudoClass("hover").
					PseudoClass("visited").
					PseudoElement("first-line")
			},
			"li#first.item[data-state=open]:hover:visited::first-line",
		},
		{
			"duplicate classes kept in append order",
			func() *selector.Builder {
				return selector.Class("a").Class("b").Class("a")
			},
			".a.b.a",
		},
		{
			"pseudo-element only",
			func() *selector.Builder { return selector.PseudoElement("before") },
			"::before",
		},
		{
			"attribute only",
			func() *selector.Builder { return selector.Attr("disabled") },
			"[disabled]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			got, err := b.Stringify()
			if err != nil {
				t.Fatalf("Stringify() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_OrderViolation(t *testing.T) {
	// every mutator for an earlier kind must fail once a later kind is
	// populated, no matter which later kind it was
	tests := []struct {
		name  string
		build func() *selector.Builder
	}{
		{"element after id", func() *selector.Builder { return selector.ID("x").Element("p") }},
		{"element after class", func() *selector.Builder { return selector.Class("x").Element("p") }},
		{"element after attribute", func() *selector.Builder { return selector.Attr("x").Element("p") }},
		{"element after pseudo-class", func() *selector.Builder { return selector.PseudoClass("x").Element("p") }},
		{"element after pseudo-element", func() *selector.Builder { return selector.PseudoElement("x").Element("p") }},
		{"id after class", func() *selector.Builder { return selector.Class("x").ID("y") }},
		{"id after attribute", func() *selector.Builder { return selector.Attr("x").ID("y") }},
		{"id after pseudo-class", func() *selector.Builder { return selector.PseudoClass("x").ID("y") }},
		{"id after pseudo-element", func() *selector.Builder { return selector.PseudoElement("x").ID("y") }},
		{"class after attribute", func() *selector.Builder { return selector.Attr("x").Class("y") }},
		{"class after pseudo-class", func() *selector.Builder { return selector.PseudoClass("x").Class("y") }},
		{"class after pseudo-element", func() *selector.Builder { return selector.PseudoElement("x").Class("y") }},
		{"attribute after pseudo-class", func() *selector.Builder { return selector.PseudoClass("x").Attr("y") }},
		{"attribute after pseudo-element", func() *selector.Builder { return selector.PseudoElement("x").Attr("y") }},
		{"pseudo-class after pseudo-element", func() *selector.Builder { return selector.PseudoElement("x").PseudoClass("y") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if !errors.Is(b.Err(), selector.ErrOrderViolation) {
				t.Errorf("Err() = %v, want ErrOrderViolation", b.Err())
			}
			if _, err := b.Stringify(); !errors.Is(err, selector.ErrOrderViolation) {
				t.Errorf("Stringify() error = %v, want ErrOrderViolation", err)
			}
		})
	}
}

func TestBuilder_DuplicateFragment(t *testing.T) {
	tests := []struct {
		name  string
		build func() *selector.Builder
	}{
		{"element twice", func() *selector.Builder { return selector.Element("p").Element("div") }},
		{"id twice", func() *selector.Builder { return selector.ID("a").ID("b") }},
		{"attribute twice", func() *selector.Builder { return selector.Attr("a").Attr("b") }},
		{"pseudo-element twice", func() *selector.Builder { return selector.PseudoElement("before").PseudoElement("after") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.build()
			if !errors.Is(b.Err(), selector.ErrDuplicateFragment) {
				t.Errorf("Err() = %v, want ErrDuplicateFragment", b.Err())
			}
		})
	}
}

func TestBuilder_RepeatableFragments(t *testing.T) {
	b := selector.Class("a").Class("a").PseudoClass("hover").PseudoClass("hover")
	if b.Err() != nil {
		t.Fatalf("repeatable fragments errored: %v", b.Err())
	}
	got, _ := b.Stringify()
	if got != ".a.a:hover:hover" {
		t.Errorf("Stringify() = %q, want %q", got, ".a.a:hover:hover")
	}
}

func TestBuilder_CallSiteErrors(t *testing.T) {
	// the error-returning mutators report the violation on the offending
	// call itself, not at render time
	b := selector.New()
	if err := b.AddClass("container"); err != nil {
		t.Fatalf("AddClass() error = %v", err)
	}
	if err := b.SetElement("div"); !errors.Is(err, selector.ErrOrderViolation) {
		t.Fatalf("SetElement() after class error = %v, want ErrOrderViolation", err)
	}
	// node stays usable for still-legal fragment kinds
	if err := b.AddPseudoClass("hover"); err != nil {
		t.Fatalf("AddPseudoClass() error = %v", err)
	}
	got, err := b.Stringify()
	if err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}
	if got != ".container:hover" {
		t.Errorf("Stringify() = %q, want %q", got, ".container:hover")
	}
}

func TestBuilder_ChainLatchesFirstError(t *testing.T) {
	b := selector.PseudoElement("after").Element("p").ID("x")
	err := b.Err()
	if !errors.Is(err, selector.ErrOrderViolation) {
		t.Fatalf("Err() = %v, want ErrOrderViolation", err)
	}
	// the latched error names the first offending fragment, later calls
	// are no-ops
	if got := err.Error(); got != "selector: fragment out of order: element cannot follow pseudo-element" {
		t.Errorf("Err() message = %q", got)
	}
}

func TestBuilder_StringifyIsRepeatable(t *testing.T) {
	b := selector.Element("p").Class("note")
	first, err := b.Stringify()
	if err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}
	second, err := b.Stringify()
	if err != nil {
		t.Fatalf("second Stringify() error = %v", err)
	}
	if first != second || first != "p.note" {
		t.Errorf("Stringify() not stable: %q then %q", first, second)
	}
}

func TestBuilder_ZeroValue(t *testing.T) {
	b := selector.New()
	if !b.IsSimple() || b.IsCombined() {
		t.Error("fresh node must be a simple selector")
	}
	got, err := b.Stringify()
	if err != nil {
		t.Fatalf("Stringify() error = %v", err)
	}
	if got != "" {
		t.Errorf("empty node rendered %q, want empty", got)
	}
}

func TestFragment_String(t *testing.T) {
	tests := []struct {
		f    selector.Fragment
		want string
	}{
		{selector.FragmentElement, "element"},
		{selector.FragmentID, "id"},
		{selector.FragmentClass, "class"},
		{selector.FragmentAttribute, "attribute"},
		{selector.FragmentPseudoClass, "pseudo-class"},
		{selector.FragmentPseudoElement, "pseudo-element"},
	}
	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("Fragment(%d).String() = %q, want %q", tt.f, got, tt.want)
		}
	}
}
