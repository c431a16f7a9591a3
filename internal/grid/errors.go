package grid

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vk/spingridgo/internal/schema"
)

var (
	// ErrTooManyCases is matched by every *TooManyCasesError.
	ErrTooManyCases = errors.New("grid: number of cases exceeds ceiling")
	// ErrFieldType is matched by every *FieldTypeError.
	ErrFieldType = errors.New("grid: candidate value has the wrong type")
	// ErrVectorLength is matched by every *VectorLengthError.
	ErrVectorLength = errors.New("grid: vector components have different list lengths")
)

// TooManyCasesError is returned by CheckCeiling when the cartesian product is
// larger than the configured ceiling.
type TooManyCasesError struct {
	Total   int
	Ceiling int
}

func (e *TooManyCasesError) Error() string {
	return fmt.Sprintf("too many cases: grid expands to %d cases, ceiling is %d (reduce list sizes or raise --max-files)", e.Total, e.Ceiling)
}

// Is reports whether target is ErrTooManyCases.
func (e *TooManyCasesError) Is(target error) bool {
	return target == ErrTooManyCases
}

// FieldTypeError reports a candidate that cannot be converted to its field's kind.
type FieldTypeError struct {
	Field    string
	Position int
	Want     schema.Kind
	Err      error
}

func (e *FieldTypeError) Error() string {
	return fmt.Sprintf("field %q candidate #%d: expected %s: %v", e.Field, e.Position, e.Want, e.Err)
}

// Unwrap returns the underlying conversion error.
func (e *FieldTypeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFieldType.
func (e *FieldTypeError) Is(target error) bool {
	return target == ErrFieldType
}

// VectorLengthError reports a vector group whose component lists cannot be
// zipped because their lengths differ.
type VectorLengthError struct {
	Group   string
	Lengths map[string]int
}

func (e *VectorLengthError) Error() string {
	names := make([]string, 0, len(e.Lengths))
	for n := range e.Lengths {
		names = append(names, n)
	}
	sort.Strings(names)
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = fmt.Sprintf("%s=%d", n, e.Lengths[n])
	}
	return fmt.Sprintf("vector %q: components must have equal list lengths to vary together, got %s", e.Group, strings.Join(parts, ", "))
}

// Is reports whether target is ErrVectorLength.
func (e *VectorLengthError) Is(target error) bool {
	return target == ErrVectorLength
}
