package gridfile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/spingridgo/internal/ctxlog"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/zclconf/go-cty/cty"
)

// loadHCLSyntax parses a JSON or native HCL document whose body holds only
// attributes, each one a list of candidates.
func loadHCLSyntax(ctx context.Context, path string, isJSON bool) (*grid.Grid, error) {
	logger := ctxlog.FromContext(ctx)
	parser := hclparse.NewParser()

	var (
		file  *hcl.File
		diags hcl.Diagnostics
	)
	if isJSON {
		file, diags = parser.ParseJSONFile(path)
	} else {
		file, diags = parser.ParseHCLFile(path)
	}
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse grid file %s: %w", path, diags)
	}

	attrs, diags := file.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode grid file %s: %w", path, diags)
	}
	logger.Debug("Parsed grid attributes.", "path", path, "count", len(attrs))

	values := make(map[string][]cty.Value, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to evaluate %q in %s: %w", name, path, diags)
		}
		list, err := candidates(val)
		if err != nil {
			return nil, fmt.Errorf("%s: %q at %s: %w", path, name, attr.Range.String(), err)
		}
		values[name] = list
	}
	return grid.New(values), nil
}

// candidates unpacks a tuple, list or set value into its elements.
func candidates(val cty.Value) ([]cty.Value, error) {
	ty := val.Type()
	if val.IsNull() || !(ty.IsTupleType() || ty.IsListType() || ty.IsSetType()) {
		return nil, fmt.Errorf("value must be a list of candidates, got %s", ty.FriendlyName())
	}
	if !val.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	out := make([]cty.Value, 0, val.LengthInt())
	for it := val.ElementIterator(); it.Next(); {
		_, v := it.Element()
		out = append(out, v)
	}
	return out, nil
}
