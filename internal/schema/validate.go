package schema

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrMismatch is matched by every *MismatchError.
var ErrMismatch = errors.New("schema: parameter keys do not match schema")

// MismatchError reports every key that keeps a parameter set from matching
// the schema exactly.
type MismatchError struct {
	// Missing holds schema fields absent from the parameter set, in schema order.
	Missing []string
	// Extra holds parameter keys that are not schema fields, sorted.
	Extra []string
}

func (e *MismatchError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, fmt.Sprintf("missing keys: [%s]", strings.Join(e.Missing, ", ")))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, fmt.Sprintf("unknown keys: [%s]", strings.Join(e.Extra, ", ")))
	}
	return "schema mismatch: " + strings.Join(parts, "; ")
}

// Is reports whether target is ErrMismatch.
func (e *MismatchError) Is(target error) bool {
	return target == ErrMismatch
}

// Validate checks that keys contains every schema field and nothing else.
// Duplicate keys are ignored. It returns a *MismatchError listing all
// offending keys, not just the first one found.
func Validate(keys []string) error {
	present := make(map[string]struct{}, len(keys))
	var extra []string
	for _, k := range keys {
		if _, dup := present[k]; dup {
			continue
		}
		present[k] = struct{}{}
		if _, ok := index[k]; !ok {
			extra = append(extra, k)
		}
	}

	var missing []string
	for _, f := range fields {
		if _, ok := present[f.Name]; !ok {
			missing = append(missing, f.Name)
		}
	}

	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(extra)
	return &MismatchError{Missing: missing, Extra: extra}
}
