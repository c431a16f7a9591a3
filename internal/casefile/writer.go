package casefile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/vk/spingridgo/internal/fsutil"
	"github.com/vk/spingridgo/internal/grid"
	"github.com/vk/spingridgo/internal/schema"
	"github.com/zclconf/go-cty/cty"
)

// DefaultFilename is the file name the simulator looks for in its run folder.
const DefaultFilename = "input.csv"

// ErrCaseExists is matched by every *ExistsError.
var ErrCaseExists = errors.New("casefile: case file already exists")

// ExistsError reports a case whose target file is already on disk.
type ExistsError struct {
	Path string
}

func (e *ExistsError) Error() string {
	return fmt.Sprintf("case already exists: %s", e.Path)
}

// Is reports whether target is ErrCaseExists.
func (e *ExistsError) Is(target error) bool {
	return target == ErrCaseExists
}

// Writer writes cases to their own run folders under a fixed file name.
type Writer struct {
	filename string
}

// NewWriter returns a Writer that names every case file filename.
func NewWriter(filename string) *Writer {
	if filename == "" {
		filename = DefaultFilename
	}
	return &Writer{filename: filename}
}

// Filename returns the file name used for every case.
func (w *Writer) Filename() string {
	return w.filename
}

// Path returns the target file of c:
// <run_parent_path>/<run_base_folder>/<filename>.
func (w *Writer) Path(c grid.Case) (string, error) {
	parent, err := stringField(c, schema.RunParentPath)
	if err != nil {
		return "", err
	}
	base, err := stringField(c, schema.RunBaseFolder)
	if err != nil {
		return "", err
	}
	return filepath.Join(parent, base, w.filename), nil
}

func stringField(c grid.Case, name string) (string, error) {
	v := c.Get(name)
	if v.IsNull() || !v.IsKnown() || !v.Type().Equals(cty.String) {
		return "", fmt.Errorf("case #%d: field %q must be a string to build the output path", c.Index, name)
	}
	return v.AsString(), nil
}

// Write creates the case's run folder (and any missing parents) and writes
// the case file into it. It fails with an *ExistsError, leaving the existing
// file untouched, if the target path is already present. On success it
// returns the path written.
func (w *Writer) Write(c grid.Case) (string, error) {
	path, err := w.Path(c)
	if err != nil {
		return "", err
	}

	if err := fsutil.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}

	exists, err := fsutil.Exists(path)
	if err != nil {
		return "", fmt.Errorf("check %s: %w", path, err)
	}
	if exists {
		return "", &ExistsError{Path: path}
	}

	f, err := fsutil.CreateExclusive(path)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", &ExistsError{Path: path}
		}
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := Encode(f, c); err != nil {
		f.Close()
		os.Remove(path)
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// Encode writes the header and the data row of c to out.
func Encode(out io.Writer, c grid.Case) error {
	if len(c.Values) != schema.Len() {
		return fmt.Errorf("case #%d has %d values, schema has %d fields", c.Index, len(c.Values), schema.Len())
	}

	names := schema.Names()
	fields := c.Map()
	row := make([]string, len(names))
	for i, name := range names {
		s, err := FormatValue(fields[name])
		if err != nil {
			return fmt.Errorf("field %q: %w", name, err)
		}
		row[i] = s
	}

	cw := csv.NewWriter(out)
	if err := cw.Write(names); err != nil {
		return err
	}
	if err := cw.Write(row); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
