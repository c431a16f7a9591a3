// Package grid holds the parameter grid: for every schema field, the ordered
// list of candidate values to sweep over.
//
// Values are go-cty values. Grids coming from configuration files arrive as
// whatever the file format produced (a number written as a JSON string, an
// integer written as 1.0) and are normalized once by Coerce before use.
//
// # Enumeration
//
// A Grid expands into Cases, one per element of the cartesian product of its
// lists. Enumeration is lazy: Cases and Enumerator.All return an iter.Seq that
// builds each Case on demand, so memory use does not grow with the number of
// combinations. Count computes the number of combinations in O(fields)
// without enumerating, which is what CheckCeiling guards on before any file is
// written.
//
// The order is that of nested loops over the schema fields, outermost first:
// the last schema field varies fastest.
//
// # Grouped vectors
//
// ModeGroupedVectors changes the product: the three components of every
// vector field (initial magnetizations, applied field, easy axes) are zipped
// and varied together instead of being crossed with each other. It is an
// opt-in departure from the flat product, which remains the default.
package grid
