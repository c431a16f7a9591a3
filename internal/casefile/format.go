package casefile

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// FormatValue renders a value as a locale-independent CSV field.
//
// Whole numbers that fit in an int64 are written as plain integers
// ("50", "-1"); every other number uses the shortest representation that
// round-trips through float64 ("1e-16", "0.25"). Strings are written as-is
// (the CSV writer quotes them when needed), null as an empty field.
func FormatValue(v cty.Value) (string, error) {
	if v.IsNull() {
		return "", nil
	}
	if !v.IsWhollyKnown() {
		return "", fmt.Errorf("cannot format unknown value of type %s", v.Type().FriendlyName())
	}

	switch v.Type() {
	case cty.String:
		return v.AsString(), nil
	case cty.Number:
		return formatNumber(v.AsBigFloat()), nil
	case cty.Bool:
		return strconv.FormatBool(v.True()), nil
	default:
		// Only reachable for grids that skipped Coerce.
		b, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

func formatNumber(bf *big.Float) string {
	if bf.IsInt() {
		if i, acc := bf.Int64(); acc == big.Exact {
			return strconv.FormatInt(i, 10)
		}
	}
	f, _ := bf.Float64()
	if math.IsInf(f, 0) {
		// Out of float64 range: keep every digit rather than writing "+Inf".
		return bf.Text('g', -1)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// ParseValue converts a CSV field back into a value of the given kind.
// Numbers are parsed at float64 precision, matching FormatValue.
func ParseValue(s string, kind schema.Kind) (cty.Value, error) {
	switch kind {
	case schema.String:
		return cty.StringVal(s), nil
	case schema.Integer:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("parse integer %q: %w", s, err)
		}
		return cty.NumberIntVal(i), nil
	default:
		t := strings.TrimSpace(s)
		if i, err := strconv.ParseInt(t, 10, 64); err == nil {
			return cty.NumberIntVal(i), nil
		}
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return cty.NilVal, fmt.Errorf("parse number %q: %w", s, err)
		}
		return cty.NumberFloatVal(f), nil
	}
}
