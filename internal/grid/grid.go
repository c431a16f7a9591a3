package grid

import (
	"fmt"
	"iter"
	"sort"

	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Grid maps parameter names to their candidate values.
type Grid struct {
	values map[string][]cty.Value
}

// New creates a Grid from already-built cty values. The map and its slices
// are copied, so later changes by the caller do not affect the Grid.
func New(values map[string][]cty.Value) *Grid {
	g := &Grid{values: make(map[string][]cty.Value, len(values))}
	for k, list := range values {
		cp := make([]cty.Value, len(list))
		copy(cp, list)
		g.values[k] = cp
	}
	return g
}

// FromNative builds a Grid from plain Go values (ints, floats, strings, bools),
// inferring each candidate's cty type.
func FromNative(values map[string][]any) (*Grid, error) {
	out := make(map[string][]cty.Value, len(values))
	for k, list := range values {
		vals := make([]cty.Value, len(list))
		for i, v := range list {
			cv, err := toCty(v)
			if err != nil {
				return nil, fmt.Errorf("field %q candidate #%d: %w", k, i, err)
			}
			vals[i] = cv
		}
		out[k] = vals
	}
	return &Grid{values: out}, nil
}

func toCty(v any) (cty.Value, error) {
	if v == nil {
		return cty.NullVal(cty.DynamicPseudoType), nil
	}
	ty, err := gocty.ImpliedType(v)
	if err != nil {
		return cty.NilVal, fmt.Errorf("unable to infer cty.Type: %w", err)
	}
	return gocty.ToCtyValue(v, ty)
}

// Keys returns the grid's parameter names, sorted.
func (g *Grid) Keys() []string {
	keys := make([]string, 0, len(g.values))
	for k := range g.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values returns the candidate list for name, or nil if the grid has no such key.
func (g *Grid) Values(name string) []cty.Value {
	return g.values[name]
}

// Len returns the number of keys in the grid.
func (g *Grid) Len() int {
	return len(g.values)
}

// Count returns the number of combinations of the flat cartesian product:
// the product of the list lengths over all schema fields. A field with an
// empty or absent list makes the count 0. The result saturates at math.MaxInt.
func (g *Grid) Count() int {
	lengths := make([]int, schema.Len())
	for i := range lengths {
		lengths[i] = len(g.values[schema.At(i).Name])
	}
	return product(lengths)
}

// Cases enumerates the flat cartesian product lazily, last schema field
// fastest. Each call returns an independent sequence.
func (g *Grid) Cases() iter.Seq[Case] {
	// Flat mode never fails.
	e, _ := NewEnumerator(g, ModeFlat)
	return e.All()
}
