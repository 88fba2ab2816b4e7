package selector

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// Rule is one record of a selector document. A record is either a simple
// rule (any of the fragment fields populated) or a combination (Combine
// set, fragment fields empty) — never both.
type Rule struct {
	Element       string   `yaml:"element,omitempty" json:"element,omitempty"`
	ID            string   `yaml:"id,omitempty" json:"id,omitempty"`
	Classes       []string `yaml:"classes,omitempty" json:"classes,omitempty"`
	Attribute     string   `yaml:"attribute,omitempty" json:"attribute,omitempty"`
	PseudoClasses []string `yaml:"pseudo_classes,omitempty" json:"pseudo_classes,omitempty"`
	PseudoElement string   `yaml:"pseudo_element,omitempty" json:"pseudo_element,omitempty"`

	Combine *Combination `yaml:"combine,omitempty" json:"combine,omitempty"`
}

// Combination joins two nested rules with a combinator. Left and Right may
// themselves be combinations.
type Combination struct {
	Left       *Rule  `yaml:"left" json:"left"`
	Combinator string `yaml:"combinator" json:"combinator"`
	Right      *Rule  `yaml:"right" json:"right"`
}

// Document is a declarative list of selector rules, decoded from YAML or
// JSON and compiled to selector text by a Compiler.
type Document struct {
	Version int    `yaml:"version" json:"version"`
	Rules   []Rule `yaml:"rules" json:"rules"`
}

// isSimple reports whether any fragment field is populated.
func (r *Rule) isSimple() bool {
	return r.Element != "" || r.ID != "" || len(r.Classes) != 0 ||
		r.Attribute != "" || len(r.PseudoClasses) != 0 || r.PseudoElement != ""
}

// validate checks the record shape before any builder call is made.
func (r *Rule) validate() error {
	switch {
	case r.Combine != nil && r.isSimple():
		return fmt.Errorf("%w: combination mixed with fragment fields", ErrSchemaMismatch)
	case r.Combine == nil && !r.isSimple():
		return fmt.Errorf("%w: empty rule", ErrSchemaMismatch)
	case r.Combine != nil:
		if r.Combine.Left == nil {
			return fmt.Errorf("%w: combination missing left side", ErrSchemaMismatch)
		}
		if r.Combine.Right == nil {
			return fmt.Errorf("%w: combination missing right side", ErrSchemaMismatch)
		}
		if r.Combine.Combinator == "" {
			return fmt.Errorf("%w: combination missing combinator", ErrSchemaMismatch)
		}
	}
	return nil
}

// DocumentFormat names the wire encoding of a selector document.
type DocumentFormat int

const (
	DocumentYAML DocumentFormat = iota
	DocumentJSON
)

// DetectDocumentFormat maps a file name to the document encoding by
// extension. Anything that is not .json is treated as YAML.
func DetectDocumentFormat(name string) DocumentFormat {
	if strings.HasSuffix(strings.ToLower(name), ".json") {
		return DocumentJSON
	}
	return DocumentYAML
}

// ParseDocument decodes a selector document. Both decoders are strict:
// unknown fields fail so a misspelled fragment key is reported instead of
// silently dropping a fragment.
func ParseDocument(data []byte, format DocumentFormat) (*Document, error) {
	var doc Document
	switch format {
	case DocumentJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode selector document: %w", err)
		}
	default:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode selector document: %w", err)
		}
	}
	if len(doc.Rules) == 0 {
		return nil, fmt.Errorf("%w: document has no rules", ErrSchemaMismatch)
	}
	return &doc, nil
}
