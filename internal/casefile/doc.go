// Package casefile writes and reads simulation input files.
//
// A case file is a two-line CSV document: a header with every schema field
// name in schema order, and one row with the case's values in the same
// order. Files are UTF-8, comma-delimited, "\n"-terminated, and quoted per
// RFC 4180 (encoding/csv), so identical cases produce identical bytes.
//
// Each case is written to <run_parent_path>/<run_base_folder>/<filename>,
// taken from the case's own values. A file is never overwritten: if the
// target path already exists the write fails with an *ExistsError.
package casefile
