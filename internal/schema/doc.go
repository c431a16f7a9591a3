// Package schema defines the fixed, ordered set of parameters that every
// simulation input file carries, and validates a candidate parameter set
// against it.
//
// The field order is significant: it is the column order of every generated
// input file and the nesting order of the cartesian product (the last field
// varies fastest). It is not significant for validation, which only compares
// key sets.
package schema
