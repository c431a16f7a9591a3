package grid

import (
	"errors"
	"fmt"

	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// Coerce converts every candidate of every schema field to the field's kind,
// in place. Strings holding numbers become numbers, numbers in path fields
// become strings, and integer fields reject values with a fractional part.
// Keys that are not schema fields are left untouched.
//
// The first failing candidate is returned as a *FieldTypeError; the grid is
// left partially converted in that case and should be discarded.
func (g *Grid) Coerce() error {
	for _, f := range schema.Fields() {
		list, ok := g.values[f.Name]
		if !ok {
			continue
		}
		for i, v := range list {
			cv, err := coerceValue(v, f.Kind)
			if err != nil {
				return &FieldTypeError{Field: f.Name, Position: i, Want: f.Kind, Err: err}
			}
			list[i] = cv
		}
	}
	return nil
}

func coerceValue(v cty.Value, kind schema.Kind) (cty.Value, error) {
	if v.IsNull() {
		return cty.NilVal, errors.New("value is null")
	}
	if !v.IsWhollyKnown() {
		return cty.NilVal, errors.New("value is not known")
	}

	target := cty.Number
	if kind == schema.String {
		target = cty.String
	}
	cv, err := convert.Convert(v, target)
	if err != nil {
		return cty.NilVal, err
	}

	if kind == schema.Integer && !cv.AsBigFloat().IsInt() {
		return cty.NilVal, fmt.Errorf("%s is not a whole number", cv.AsBigFloat().Text('g', -1))
	}
	return cv, nil
}
