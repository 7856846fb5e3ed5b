// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared between the CLI and the
// conversion, catalog, and reporting stages.
package types

// Bookmark holds one data row from a Pocket CSV export. It exists only for
// the duration of processing that row; nothing persists it except the
// optional catalog.
type Bookmark struct {
	// Row is the 1-based data row number (the header row is not counted).
	Row int `json:"row" yaml:"row"`

	// Title is the saved item's title. Empty titles are replaced with a
	// synthesized "Untitled Link {row}" placeholder at read time.
	Title string `json:"title" yaml:"title"`

	// URL is the saved item's address. May be empty; rows without a URL
	// are skipped by every consumer.
	URL string `json:"url" yaml:"url"`

	// AddedAt is the raw time_added field: a Unix epoch timestamp in
	// seconds, possibly fractional, possibly malformed, possibly empty.
	AddedAt string `json:"added_at,omitempty" yaml:"added_at,omitempty"`

	// Tags is Pocket's comma-separated tag string.
	Tags string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Report summarizes one conversion run.
type Report struct {
	// Added counts bookmarks written to the output file.
	Added int `json:"added" yaml:"added"`

	// SkippedMissingURL counts rows dropped because they had no URL.
	SkippedMissingURL int `json:"skipped_missing_url" yaml:"skipped_missing_url"`

	// BadTimestamps counts rows written without an ADD_DATE attribute
	// because their time_added field did not parse as a number.
	BadTimestamps int `json:"bad_timestamps" yaml:"bad_timestamps"`

	// OutputPath is the HTML file the run produced. Empty for dry runs.
	OutputPath string `json:"output_path,omitempty" yaml:"output_path,omitempty"`
}

// Rows returns the total number of data rows the run looked at.
func (r Report) Rows() int {
	return r.Added + r.SkippedMissingURL
}
