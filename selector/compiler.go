package selector

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Compiler turns declarative selector documents into rendered selector
// text through the builder.
type Compiler struct {
	log *zap.Logger
}

// NewCompiler creates a new document compiler.
func NewCompiler(log *zap.Logger) *Compiler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Compiler{log: log.Named("selector-compiler")}
}

// Compiled holds the rendered selectors of a document in rule order.
// Failed rules are absent; their errors are reported by Compile.
type Compiled struct {
	Selectors []string
}

// Compile builds and renders every rule of the document. Rules are
// independent, so one bad rule does not stop the rest: its error is
// collected and compilation continues. The returned Compiled always holds
// whatever rendered successfully.
func (c *Compiler) Compile(doc *Document) (*Compiled, error) {
	out := &Compiled{Selectors: make([]string, 0, len(doc.Rules))}

	var errs error
	for i := range doc.Rules {
		node, err := c.build(&doc.Rules[i])
		if err != nil {
			c.log.Warn("Skipping rule", zap.Int("rule", i), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		text, err := node.Stringify()
		if err != nil {
			// build uses the error-returning mutators, so the chain
			// cannot have latched anything
			errs = multierr.Append(errs, fmt.Errorf("rule %d: %w", i, err))
			continue
		}
		c.log.Debug("Rendered rule", zap.Int("rule", i), zap.String("selector", text))
		out.Selectors = append(out.Selectors, text)
	}
	return out, errs
}

// build assembles one rule into a selector node, recursing through
// combinations. Fragments are applied in canonical order, so the only
// builder errors a well-shaped record can hit are duplicates — and the
// per-kind record fields make even those impossible. The shape itself is
// checked first.
func (c *Compiler) build(r *Rule) (*Builder, error) {
	if err := r.validate(); err != nil {
		return nil, err
	}

	if r.Combine != nil {
		left, err := c.build(r.Combine.Left)
		if err != nil {
			return nil, fmt.Errorf("left side: %w", err)
		}
		right, err := c.build(r.Combine.Right)
		if err != nil {
			return nil, fmt.Errorf("right side: %w", err)
		}
		return Combine(left, r.Combine.Combinator, right), nil
	}

	b := New()
	if r.Element != "" {
		if err := b.SetElement(r.Element); err != nil {
			return nil, err
		}
	}
	if r.ID != "" {
		if err := b.SetID(r.ID); err != nil {
			return nil, err
		}
	}
	for _, class := range r.Classes {
		if err := b.AddClass(class); err != nil {
			return nil, err
		}
	}
	if r.Attribute != "" {
		if err := b.SetAttribute(r.Attribute); err != nil {
			return nil, err
		}
	}
	for _, pc := range r.PseudoClasses {
		if err := b.AddPseudoClass(pc); err != nil {
			return nil, err
		}
	}
	if r.PseudoElement != "" {
		if err := b.SetPseudoElement(r.PseudoElement); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// WriteTo writes the rendered selectors to w one per line, implementing
// io.WriterTo.
func (c *Compiled) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, s := range c.Selectors {
		n, err := fmt.Fprintln(w, s)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// String returns the rendered selectors as newline-separated text.
func (c *Compiled) String() string {
	var sb strings.Builder
	c.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
