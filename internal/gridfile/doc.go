// Package gridfile provides the concrete implementations of config.Loader for
// grid documents on disk.
//
// A grid document is a flat mapping from parameter name to a list of
// candidate values. The format is chosen by file extension:
//
//	.json        JSON object, parsed with the hcl/v2 JSON syntax
//	.hcl         HCL attributes, e.g. seed = [1, 2]
//	.yaml, .yml  YAML mapping
//
// Values are returned as cty values without coercion; the caller validates
// keys and converts candidates to their field kinds.
package gridfile
