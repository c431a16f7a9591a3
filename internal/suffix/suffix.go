package suffix

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// TimestampLayout matches the run folder names the simulator tooling expects,
// with the fractional-second separator written as "_".
const TimestampLayout = "20060102_150405.000000"

// Generator produces the suffix for a case.
type Generator interface {
	Next(c grid.Case) string
}

// Names accepted by Parse.
const (
	NameNone      = "none"
	NameIndex     = "index"
	NameTimestamp = "timestamp"
	NameUUID      = "uuid"
)

// None leaves folder names unchanged.
type None struct{}

// Next returns the empty suffix.
func (None) Next(grid.Case) string { return "" }

// Index uses the zero-padded case index. Width is the minimum number of
// digits; zero means no padding.
type Index struct {
	Width int
}

// IndexFor returns an Index wide enough for total cases.
func IndexFor(total int) Index {
	if total <= 1 {
		return Index{Width: 1}
	}
	return Index{Width: len(strconv.Itoa(total - 1))}
}

// Next returns the case index padded to Width digits.
func (g Index) Next(c grid.Case) string {
	return fmt.Sprintf("%0*d", g.Width, c.Index)
}

// Timestamp stamps each case with the current time at microsecond
// resolution. Cases generated within the same microsecond get the same
// stamp, so it is combined with the case index.
type Timestamp struct {
	Now func() time.Time
}

// Next returns the current time and the case index.
func (g Timestamp) Next(c grid.Case) string {
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	stamp := strings.Replace(now().Format(TimestampLayout), ".", "_", 1)
	return stamp + "_" + strconv.Itoa(c.Index)
}

// UUID gives each case a random version 4 identifier.
type UUID struct {
	New func() uuid.UUID
}

// Next returns a fresh identifier in its canonical string form.
func (g UUID) Next(grid.Case) string {
	if g.New != nil {
		return g.New().String()
	}
	return uuid.NewString()
}

// Parse maps a flag value to a generator. total sizes the index padding.
func Parse(name string, total int) (Generator, error) {
	switch name {
	case "", NameNone:
		return None{}, nil
	case NameIndex:
		return IndexFor(total), nil
	case NameTimestamp:
		return Timestamp{}, nil
	case NameUUID:
		return UUID{}, nil
	default:
		return nil, fmt.Errorf("unsupported folder suffix %q", name)
	}
}

// Valid reports whether Parse accepts name.
func Valid(name string) bool {
	_, err := Parse(name, 0)
	return err == nil
}

// Apply returns c with run_base_folder extended by "_" and the generator's
// suffix. An empty suffix leaves the case unchanged.
func Apply(c grid.Case, gen Generator) (grid.Case, error) {
	if gen == nil {
		return c, nil
	}
	s := gen.Next(c)
	if s == "" {
		return c, nil
	}
	base := c.Get(schema.RunBaseFolder)
	if base.IsNull() || !base.IsKnown() || !base.Type().Equals(cty.String) {
		return c, fmt.Errorf("case #%d: %s must be a string to take a suffix", c.Index, schema.RunBaseFolder)
	}
	return c.With(schema.RunBaseFolder, cty.StringVal(base.AsString()+"_"+s)), nil
}
