package grid

import (
	"fmt"
	"iter"
	"math"
	"math/bits"

	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Mode selects how the grid's lists are combined.
type Mode int

const (
	// ModeFlat crosses every schema field independently.
	ModeFlat Mode = iota
	// ModeGroupedVectors zips the components of each vector group and crosses
	// the groups as single axes.
	ModeGroupedVectors
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeGroupedVectors:
		return "grouped"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps the CLI spelling of a mode to its value.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "flat", "":
		return ModeFlat, nil
	case "grouped":
		return ModeGroupedVectors, nil
	default:
		return ModeFlat, fmt.Errorf("unknown vector mode %q: must be 'flat' or 'grouped'", s)
	}
}

// axis is one loop of the nested enumeration. All columns of an axis take
// the element at the same position of their lists.
type axis struct {
	columns []int
	length  int
}

// Enumerator expands a Grid into Cases according to a Mode.
type Enumerator struct {
	mode  Mode
	lists [][]cty.Value // indexed by schema column
	axes  []axis
	count int
}

// NewEnumerator prepares the enumeration of g. The grid's lists are captured
// at this point. In ModeGroupedVectors it fails with a *VectorLengthError if
// the components of a vector group have different list lengths.
func NewEnumerator(g *Grid, mode Mode) (*Enumerator, error) {
	e := &Enumerator{
		mode:  mode,
		lists: make([][]cty.Value, schema.Len()),
	}
	for i := range e.lists {
		e.lists[i] = g.values[schema.At(i).Name]
	}

	switch mode {
	case ModeFlat:
		for i := range e.lists {
			e.axes = append(e.axes, axis{columns: []int{i}, length: len(e.lists[i])})
		}
	case ModeGroupedVectors:
		seen := make(map[string]struct{})
		for i := range e.lists {
			f := schema.At(i)
			if f.Group == "" {
				e.axes = append(e.axes, axis{columns: []int{i}, length: len(e.lists[i])})
				continue
			}
			if _, ok := seen[f.Group]; ok {
				continue
			}
			seen[f.Group] = struct{}{}
			ax, err := e.groupAxis(f.Group)
			if err != nil {
				return nil, err
			}
			e.axes = append(e.axes, ax)
		}
	default:
		return nil, fmt.Errorf("grid: unsupported enumeration mode %v", mode)
	}

	lengths := make([]int, len(e.axes))
	for i, ax := range e.axes {
		lengths[i] = ax.length
	}
	e.count = product(lengths)
	return e, nil
}

func (e *Enumerator) groupAxis(group string) (axis, error) {
	members := schema.GroupMembers(group)
	lengths := make(map[string]int, len(members))
	length := len(e.lists[members[0]])
	equal := true
	for _, col := range members {
		n := len(e.lists[col])
		lengths[schema.At(col).Name] = n
		if n != length {
			equal = false
		}
	}
	if !equal {
		return axis{}, &VectorLengthError{Group: group, Lengths: lengths}
	}
	return axis{columns: members, length: length}, nil
}

// Mode returns the mode the enumerator was built with.
func (e *Enumerator) Mode() Mode {
	return e.mode
}

// Count returns the number of cases All yields. It saturates at math.MaxInt.
func (e *Enumerator) Count() int {
	return e.count
}

// All returns a lazy sequence of every case, last axis fastest. The sequence
// can be ranged over more than once; each pass starts from the first case.
// Every yielded Case owns its Values slice.
func (e *Enumerator) All() iter.Seq[Case] {
	return func(yield func(Case) bool) {
		if e.count == 0 {
			return
		}
		pos := make([]int, len(e.axes))
		for n := 0; ; n++ {
			values := make([]cty.Value, len(e.lists))
			for a, ax := range e.axes {
				for _, col := range ax.columns {
					values[col] = e.lists[col][pos[a]]
				}
			}
			if !yield(Case{Index: n, Values: values}) {
				return
			}
			if !advance(pos, e.axes) {
				return
			}
		}
	}
}

// advance steps the odometer pos by one and reports false once it wraps.
func advance(pos []int, axes []axis) bool {
	for a := len(pos) - 1; a >= 0; a-- {
		pos[a]++
		if pos[a] < axes[a].length {
			return true
		}
		pos[a] = 0
	}
	return false
}

// product multiplies lengths, saturating at math.MaxInt.
func product(lengths []int) int {
	total := uint64(1)
	for _, n := range lengths {
		if n == 0 {
			return 0
		}
		hi, lo := bits.Mul64(total, uint64(n))
		if hi != 0 || lo > math.MaxInt {
			total = math.MaxInt
			continue
		}
		total = lo
	}
	return int(total)
}
