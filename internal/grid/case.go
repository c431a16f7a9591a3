package grid

import (
	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Case is one combination: exactly one value per schema field, positional in
// schema order.
type Case struct {
	// Index is the zero-based position of the case in its enumeration.
	Index  int
	Values []cty.Value
}

// Get returns the value of the named field, or cty.NilVal for unknown names.
func (c Case) Get(name string) cty.Value {
	i := schema.Index(name)
	if i < 0 || i >= len(c.Values) {
		return cty.NilVal
	}
	return c.Values[i]
}

// Map returns the case keyed by field name.
func (c Case) Map() map[string]cty.Value {
	m := make(map[string]cty.Value, len(c.Values))
	for i, v := range c.Values {
		m[schema.At(i).Name] = v
	}
	return m
}

// With returns a copy of c with the named field set to v. Unknown names leave
// the copy unchanged.
func (c Case) With(name string, v cty.Value) Case {
	values := make([]cty.Value, len(c.Values))
	copy(values, c.Values)
	if i := schema.Index(name); i >= 0 && i < len(values) {
		values[i] = v
	}
	return Case{Index: c.Index, Values: values}
}
