package casefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// Record is the content of a case file: column names and the single row.
type Record struct {
	Header []string
	Row    []string
}

// Read parses the case file at path.
func Read(path string) (*Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rec, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return rec, nil
}

// Decode parses a case file: exactly one header line and one data line with
// the same number of fields.
func Decode(in io.Reader) (*Record, error) {
	cr := csv.NewReader(in)
	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing header line")
		}
		return nil, err
	}
	row, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("missing data line")
		}
		return nil, err
	}
	if _, err := cr.Read(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("expected exactly one data line")
	}
	return &Record{Header: header, Row: row}, nil
}

// Map returns the row keyed by column name.
func (r *Record) Map() map[string]string {
	m := make(map[string]string, len(r.Header))
	for i, k := range r.Header {
		m[k] = r.Row[i]
	}
	return m
}

// Values parses the row back into schema-ordered values. The header must be
// exactly the schema.
func (r *Record) Values() ([]cty.Value, error) {
	names := schema.Names()
	if len(r.Header) != len(names) {
		return nil, fmt.Errorf("header has %d columns, schema has %d", len(r.Header), len(names))
	}
	out := make([]cty.Value, len(names))
	for i, name := range names {
		if r.Header[i] != name {
			return nil, fmt.Errorf("column %d is %q, expected %q", i, r.Header[i], name)
		}
		v, err := ParseValue(r.Row[i], schema.At(i).Kind)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", name, err)
		}
		out[i] = v
	}
	return out, nil
}
