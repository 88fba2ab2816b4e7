package selector

import (
	"go.uber.org/multierr"
)

// Standard CSS combinators. Combine takes the combinator text verbatim, so
// these are a convenience, not a restriction.
const (
	Descendant = " "
	Child      = ">"
	Adjacent   = "+"
	Sibling    = "~"
)

// Combine joins two selector nodes with a combinator into a new combined
// node. Either operand may itself be combined; rendering flattens the tree
// into one left-to-right chain. Operands are shared, not copied — rendering
// never mutates them, so sharing is safe.
//
// Errors latched on either operand's fluent chain propagate to the new
// node and surface from its Stringify.
func Combine(left *Builder, combinator string, right *Builder) *Builder {
	return &Builder{
		children: []child{
			{node: left},
			{combinator: combinator, node: right},
		},
		err: multierr.Append(left.Err(), right.Err()),
	}
}

// Element returns a fresh node with the element fragment set.
func Element(name string) *Builder {
	return New().Element(name)
}

// ID returns a fresh node with the id fragment set.
func ID(value string) *Builder {
	return New().ID(value)
}

// Class returns a fresh node with one class fragment appended.
func Class(value string) *Builder {
	return New().Class(value)
}

// Attr returns a fresh node with the attribute fragment set.
func Attr(value string) *Builder {
	return New().Attr(value)
}

// PseudoClass returns a fresh node with one pseudo-class appended.
func PseudoClass(value string) *Builder {
	return New().PseudoClass(value)
}

// PseudoElement returns a fresh node with the pseudo-element fragment set.
func PseudoElement(value string) *Builder {
	return New().PseudoElement(value)
}
