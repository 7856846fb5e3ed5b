// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns a Pocket CSV export into a Netscape Bookmark HTML
// file. The conversion is a single sequential pass: rows stream in, one
// anchor line streams out per row with a URL, and a Report summarizes the
// run. Row-level problems (missing URL, malformed timestamp) are warnings;
// everything else aborts the run.
package convert

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pdiddy/pocketport/internal/netscape"
	"github.com/pdiddy/pocketport/internal/pocket"
	"github.com/pdiddy/pocketport/pkg/types"
)

// ErrInputNotFound marks an input path that does not exist or cannot be
// opened. The CLI maps it to its own exit code.
var ErrInputNotFound = errors.New("input file not found")

// Run converts the Pocket export at inputPath into a Netscape Bookmark file
// at outputPath. Row-level warnings are written to w. The input schema is
// validated before the output file is created, so a schema error leaves no
// file behind.
func Run(inputPath, outputPath string, w io.Writer) (types.Report, error) {
	in, err := os.Open(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Report{}, fmt.Errorf("%w: %s", ErrInputNotFound, inputPath)
		}
		return types.Report{}, fmt.Errorf("opening %s: %w", inputPath, err)
	}
	defer in.Close()

	reader, err := pocket.NewReader(in)
	if err != nil {
		return types.Report{}, err
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return types.Report{}, fmt.Errorf("creating %s: %w", outputPath, err)
	}

	report, err := writeBookmarks(reader, out, outputPath, w)
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("closing %s: %w", outputPath, cerr)
	}
	if err != nil {
		return types.Report{}, err
	}
	return report, nil
}

func writeBookmarks(r *pocket.Reader, out io.Writer, outputPath string, w io.Writer) (types.Report, error) {
	bw := bufio.NewWriter(out)
	nw := netscape.NewWriter(bw)
	report := types.Report{OutputPath: outputPath}

	if err := nw.Header(); err != nil {
		return report, fmt.Errorf("writing header: %w", err)
	}

	for {
		b, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return report, err
		}

		if b.URL == "" {
			fmt.Fprintf(w, "warning: skipping row %d due to missing URL (title: %q)\n", b.Row, b.Title)
			report.SkippedMissingURL++
			continue
		}

		ts, hasDate := pocket.ParseAddedAt(b.AddedAt)
		if b.AddedAt != "" && !hasDate {
			fmt.Fprintf(w, "warning: invalid time_added %q for %q; omitting ADD_DATE\n", b.AddedAt, b.Title)
			report.BadTimestamps++
		}

		if err := nw.Bookmark(b.URL, b.Title, b.Tags, ts, hasDate); err != nil {
			return report, fmt.Errorf("writing bookmark for row %d: %w", b.Row, err)
		}
		report.Added++
	}

	if err := nw.Footer(); err != nil {
		return report, fmt.Errorf("writing footer: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return report, fmt.Errorf("flushing %s: %w", outputPath, err)
	}
	return report, nil
}
