// Package geom holds the rectangle model with JSON round-trip helpers.
// Decoding goes through an explicit constructor that copies named fields
// out of the parsed record, so a record missing an expected field fails
// loudly instead of producing a half-initialized value.
package geom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrSchemaMismatch reports a JSON record that does not carry the fields
// a rectangle requires.
var ErrSchemaMismatch = errors.New("geom: record does not match expected schema")

// Rect is an axis-aligned rectangle.
type Rect struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect creates a rectangle with the given dimensions.
func NewRect(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Area returns the rectangle area derived from its dimensions.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// ToJSON serializes the rectangle.
func (r Rect) ToJSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("unable to encode rect: %w", err)
	}
	return data, nil
}

// RectFromJSON reconstructs a rectangle from a JSON record. Both "width"
// and "height" must be present; a missing field fails with
// ErrSchemaMismatch naming the field.
func RectFromJSON(data []byte) (Rect, error) {
	var rec struct {
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&rec); err != nil {
		return Rect{}, fmt.Errorf("unable to decode rect: %w", err)
	}
	if rec.Width == nil {
		return Rect{}, fmt.Errorf("%w: missing field %q", ErrSchemaMismatch, "width")
	}
	if rec.Height == nil {
		return Rect{}, fmt.Errorf("%w: missing field %q", ErrSchemaMismatch, "height")
	}
	return NewRect(*rec.Width, *rec.Height), nil
}
