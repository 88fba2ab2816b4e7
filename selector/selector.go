// Package selector builds CSS selector strings from typed fragments.
//
// A Builder accumulates the fragments of one compound selector (element,
// id, classes, attribute, pseudo-classes, pseudo-element) and renders them
// in canonical CSS order. Fragment setters enforce that order at the call
// site: once a later fragment kind is populated on a node, setters for
// earlier kinds are rejected with ErrOrderViolation. Singleton fragments
// (element, id, attribute, pseudo-element) reject a second set with
// ErrDuplicateFragment. Two builders are joined into a combined selector
// with Combine; combined nodes may be nested on either side and render as
// a flat left-to-right chain.
//
// The package never parses CSS and never validates fragment text — what
// goes in comes back out verbatim, with only the CSS punctuation added.
package selector

import (
	"strings"
)

// Fragment identifies one syntactic piece of a compound selector, in the
// order CSS requires the pieces to appear.
type Fragment int

const (
	fragmentNone Fragment = iota // zero value, nothing populated yet

	FragmentElement
	FragmentID
	FragmentClass
	FragmentAttribute
	FragmentPseudoClass
	FragmentPseudoElement
)

// String returns the fragment kind name used in error messages.
func (f Fragment) String() string {
	switch f {
	case FragmentElement:
		return "element"
	case FragmentID:
		return "id"
	case FragmentClass:
		return "class"
	case FragmentAttribute:
		return "attribute"
	case FragmentPseudoClass:
		return "pseudo-class"
	case FragmentPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}

// child is one operand of a combined selector. The combinator joins the
// node to the previous child and is empty for the first one.
type child struct {
	combinator string
	node       *Builder
}

// Builder is a single selector node: either a simple selector accumulating
// fragments, or a combined selector holding child nodes. The zero value is
// an empty simple selector ready for use.
type Builder struct {
	element       string
	id            string
	classes       []string
	attribute     string
	pseudoClasses []string
	pseudoElement string

	hasElement       bool
	hasID            bool
	hasAttribute     bool
	hasPseudoElement bool

	// last is the highest fragment kind populated so far. Population is
	// monotonic: a setter for an earlier kind is rejected once last moved
	// past it.
	last Fragment

	children []child

	// err is the first error latched by the fluent chain, reported by
	// Err and Stringify.
	err error
}

// New returns an empty simple selector node.
func New() *Builder {
	return &Builder{}
}

// IsSimple returns true if the node is a simple selector (no children).
func (b *Builder) IsSimple() bool {
	return len(b.children) == 0
}

// IsCombined returns true if the node joins child selectors with combinators.
func (b *Builder) IsCombined() bool {
	return len(b.children) != 0
}

// ordered rejects introducing fragment kind f when a later kind is already
// populated, or when the node is a combined selector.
func (b *Builder) ordered(f Fragment) error {
	if b.IsCombined() {
		return orderError(f, b.last, true)
	}
	if b.last > f {
		return orderError(f, b.last, false)
	}
	return nil
}

// SetElement stores the element name. It fails with ErrOrderViolation if
// any later fragment was already populated and with ErrDuplicateFragment
// if the element was already set.
func (b *Builder) SetElement(name string) error {
	if err := b.ordered(FragmentElement); err != nil {
		return err
	}
	if b.hasElement {
		return duplicateError(FragmentElement)
	}
	b.element, b.hasElement = name, true
	b.last = FragmentElement
	return nil
}

// SetID stores the id fragment (rendered as "#"+value).
func (b *Builder) SetID(value string) error {
	if err := b.ordered(FragmentID); err != nil {
		return err
	}
	if b.hasID {
		return duplicateError(FragmentID)
	}
	b.id, b.hasID = value, true
	b.last = FragmentID
	return nil
}

// AddClass appends a class fragment (rendered as "."+value). Classes are
// repeatable; duplicates are kept in append order.
func (b *Builder) AddClass(value string) error {
	if err := b.ordered(FragmentClass); err != nil {
		return err
	}
	b.classes = append(b.classes, value)
	b.last = FragmentClass
	return nil
}

// SetAttribute stores the raw attribute text; bracket delimiters are added
// at render time. A second attribute is rejected as a duplicate, same as
// the other singleton fragments.
func (b *Builder) SetAttribute(value string) error {
	if err := b.ordered(FragmentAttribute); err != nil {
		return err
	}
	if b.hasAttribute {
		return duplicateError(FragmentAttribute)
	}
	b.attribute, b.hasAttribute = value, true
	b.last = FragmentAttribute
	return nil
}

// AddPseudoClass appends a pseudo-class fragment (rendered as ":"+value).
func (b *Builder) AddPseudoClass(value string) error {
	if err := b.ordered(FragmentPseudoClass); err != nil {
		return err
	}
	b.pseudoClasses = append(b.pseudoClasses, value)
	b.last = FragmentPseudoClass
	return nil
}

// SetPseudoElement stores the pseudo-element fragment (rendered as
// "::"+value). Nothing orders after it, so only the duplicate check applies
// on a simple node.
func (b *Builder) SetPseudoElement(value string) error {
	if err := b.ordered(FragmentPseudoElement); err != nil {
		return err
	}
	if b.hasPseudoElement {
		return duplicateError(FragmentPseudoElement)
	}
	b.pseudoElement, b.hasPseudoElement = value, true
	b.last = FragmentPseudoElement
	return nil
}

// Err returns the first error latched by the fluent chain, nil if the
// whole chain succeeded.
func (b *Builder) Err() error {
	return b.err
}

// Element is the fluent form of SetElement; on failure the error is
// latched and later chain calls become no-ops.
func (b *Builder) Element(name string) *Builder {
	if b.err == nil {
		b.err = b.SetElement(name)
	}
	return b
}

// ID is the fluent form of SetID.
func (b *Builder) ID(value string) *Builder {
	if b.err == nil {
		b.err = b.SetID(value)
	}
	return b
}

// Class is the fluent form of AddClass.
func (b *Builder) Class(value string) *Builder {
	if b.err == nil {
		b.err = b.AddClass(value)
	}
	return b
}

// Attr is the fluent form of SetAttribute.
func (b *Builder) Attr(value string) *Builder {
	if b.err == nil {
		b.err = b.SetAttribute(value)
	}
	return b
}

// PseudoClass is the fluent form of AddPseudoClass.
func (b *Builder) PseudoClass(value string) *Builder {
	if b.err == nil {
		b.err = b.AddPseudoClass(value)
	}
	return b
}

// PseudoElement is the fluent form of SetPseudoElement.
func (b *Builder) PseudoElement(value string) *Builder {
	if b.err == nil {
		b.err = b.SetPseudoElement(value)
	}
	return b
}

// Stringify renders the selector text, or reports the first error latched
// during construction. Rendering does not mutate the node and may be
// repeated.
func (b *Builder) Stringify() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	b.render(&sb)
	return sb.String(), nil
}

// String implements fmt.Stringer. A node whose chain failed renders empty.
func (b *Builder) String() string {
	s, _ := b.Stringify()
	return s
}

// render writes the node in canonical order: element, #id, .classes,
// [attribute], :pseudo-classes, ::pseudo-element — no separators between
// fragments. A combined node renders its children joined by
// " "+combinator+" ", flattening any nesting into one left-to-right chain.
func (b *Builder) render(sb *strings.Builder) {
	if b.IsCombined() {
		for i, c := range b.children {
			if i != 0 {
				sb.WriteByte(' ')
				sb.WriteString(c.combinator)
				sb.WriteByte(' ')
			}
			c.node.render(sb)
		}
		return
	}

	sb.WriteString(b.element)
	if b.hasID {
		sb.WriteByte('#')
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteByte('.')
		sb.WriteString(c)
	}
	if b.hasAttribute {
		sb.WriteByte('[')
		sb.WriteString(b.attribute)
		sb.WriteByte(']')
	}
	for _, p := range b.pseudoClasses {
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	if b.hasPseudoElement {
		sb.WriteString("::")
		sb.WriteString(b.pseudoElement)
	}
}
