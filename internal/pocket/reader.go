// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pocket reads Pocket CSV exports. It maps the header row to column
// positions, validates that the required columns are present, and yields one
// Bookmark per data row.
package pocket

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/pdiddy/pocketport/pkg/types"
)

// RequiredColumns are the header names a Pocket export must carry. Column
// order is irrelevant and extra columns (such as Pocket's status) are
// ignored.
var RequiredColumns = []string{"title", "url", "time_added", "tags"}

// SchemaError reports a header row that lacks one or more required columns.
type SchemaError struct {
	Missing []string
	Found   []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("CSV is missing required column(s) %s; found columns: %s",
		strings.Join(e.Missing, ", "), strings.Join(e.Found, ", "))
}

// Reader streams Bookmarks out of a Pocket CSV export. The header row is
// consumed and validated by NewReader; each Next call returns one data row.
type Reader struct {
	cr      *csv.Reader
	cols    map[string]int
	columns []string
	row     int
}

// NewReader reads and validates the header row of a Pocket export. It
// returns a *SchemaError if any required column is absent, before any data
// row is consumed.
func NewReader(r io.Reader) (*Reader, error) {
	cr := csv.NewReader(r)
	// Pocket pads or truncates rows inconsistently; tolerate it.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &SchemaError{Missing: RequiredColumns}
	}
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	cols := make(map[string]int, len(header))
	columns := make([]string, 0, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		columns = append(columns, name)
		cols[name] = i
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{Missing: missing, Found: columns}
	}

	return &Reader{cr: cr, cols: cols, columns: columns}, nil
}

// Columns returns the header names as they appeared in the input.
func (r *Reader) Columns() []string {
	return r.columns
}

// Next returns the next data row as a Bookmark, or io.EOF when the input is
// exhausted. Rows shorter than the header are padded with empty fields; an
// empty title is replaced with an "Untitled Link {row}" placeholder.
func (r *Reader) Next() (types.Bookmark, error) {
	record, err := r.cr.Read()
	if err == io.EOF {
		return types.Bookmark{}, io.EOF
	}
	if err != nil {
		return types.Bookmark{}, fmt.Errorf("reading CSV row %d: %w", r.row+1, err)
	}

	r.row++
	b := types.Bookmark{
		Row:     r.row,
		Title:   r.field(record, "title"),
		URL:     r.field(record, "url"),
		AddedAt: r.field(record, "time_added"),
		Tags:    r.field(record, "tags"),
	}
	if b.Title == "" {
		b.Title = fmt.Sprintf("Untitled Link %d", b.Row)
	}
	return b, nil
}

func (r *Reader) field(record []string, name string) string {
	i := r.cols[name]
	if i >= len(record) {
		return ""
	}
	return record[i]
}

// ParseAddedAt parses a time_added value as a Unix timestamp in seconds.
// Pocket emits integers, but fractional values appear in the wild; they are
// truncated. The second return value is false when the field does not parse
// as a number.
func ParseAddedAt(s string) (int64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}
