// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pocketport/internal/pocket"
)

// Stats summarizes a dry run over a Pocket export: what convert would do
// without writing any HTML.
type Stats struct {
	Columns       []string `json:"columns" yaml:"columns"`
	Rows          int      `json:"rows" yaml:"rows"`
	WithURL       int      `json:"with_url" yaml:"with_url"`
	MissingURL    int      `json:"missing_url" yaml:"missing_url"`
	BadTimestamps int      `json:"bad_timestamps" yaml:"bad_timestamps"`
}

// Validate checks the schema of the Pocket export at inputPath and counts
// what a conversion would produce. It emits the same per-row warnings as Run
// to w and shares Run's fatal error taxonomy.
func Validate(inputPath string, w io.Writer) (Stats, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Stats{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return Stats{}, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	reader, err := pocket.NewReader(in)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{Columns: reader.Columns()}
	for {
		b, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}

		stats.Rows++
		if b.URL == "" {
			fmt.Fprintf(w, "warning: skipping row %d due to missing URL (title: %q)\n", b.Row, b.Title)
			stats.MissingURL++
			continue
		}
		stats.WithURL++

		if _, ok := pocket.ParseAddedAt(b.AddedAt); b.AddedAt != "" && !ok {
			fmt.Fprintf(w, "warning: invalid time_added %q for %q; omitting ADD_DATE\n", b.AddedAt, b.Title)
			stats.BadTimestamps++
		}
	}
	return stats, nil
}
