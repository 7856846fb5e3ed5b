// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pocketport/internal/pocket"
	"github.com/pdiddy/pocketport/pkg/types"
)

// writeCSV writes a CSV fixture into a temp dir and returns its path.
func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunGolden(t *testing.T) {
	input := "title,url,time_added,tags,status\n" +
		"Example,https://example.com,1700000000,\"golang,web\",0\n" +
		"\"<script>&\"\"'\",https://e.com/?a=1&b=2,,,0\n" +
		",https://untitled.example,999.9,,0\n"

	inPath := writeCSV(t, input)
	outPath := filepath.Join(filepath.Dir(inPath), "bookmarks.html")

	var warnings bytes.Buffer
	report, err := Run(inPath, outPath, &warnings)
	if err != nil {
		t.Fatal(err)
	}

	want := `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!--This is an automatically generated file.
It will be read and overwritten.
Do Not Edit! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
    <DT><A HREF="https://example.com" ADD_DATE="1700000000" TAGS="golang,web">Example</A>
    <DT><A HREF="https://e.com/?a=1&amp;b=2">&lt;script&gt;&amp;&#34;&#39;</A>
    <DT><A HREF="https://untitled.example" ADD_DATE="999">Untitled Link 3</A>
</DL><p>
`
	got, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}

	if report.Added != 3 || report.SkippedMissingURL != 0 {
		t.Errorf("report = %+v", report)
	}
	if warnings.Len() != 0 {
		t.Errorf("unexpected warnings: %s", warnings.String())
	}
}

func TestRunCounts(t *testing.T) {
	input := "title,url,time_added,tags\n" +
		"One,https://one.example,,\n" +
		"Foo,,,\n" +
		"Two,https://two.example,,\n" +
		"Bar,,,\n" +
		"Three,https://three.example,,\n"

	inPath := writeCSV(t, input)
	outPath := filepath.Join(filepath.Dir(inPath), "out.html")

	var warnings bytes.Buffer
	report, err := Run(inPath, outPath, &warnings)
	if err != nil {
		t.Fatal(err)
	}

	if report.Added != 3 {
		t.Errorf("added = %d, want 3", report.Added)
	}
	if report.SkippedMissingURL != 2 {
		t.Errorf("skipped = %d, want 2", report.SkippedMissingURL)
	}
	if report.Rows() != 5 {
		t.Errorf("rows = %d, want 5", report.Rows())
	}

	warned := warnings.String()
	if !strings.Contains(warned, "Foo") || !strings.Contains(warned, "Bar") {
		t.Errorf("warnings missing skipped titles: %s", warned)
	}
	if !strings.Contains(warned, "row 2") || !strings.Contains(warned, "row 4") {
		t.Errorf("warnings missing row numbers: %s", warned)
	}

	// Skipped rows leave no trace in the output.
	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Count(string(out), "<DT>") != 3 {
		t.Errorf("output has %d anchors, want 3", strings.Count(string(out), "<DT>"))
	}
}

func TestRunIdempotent(t *testing.T) {
	input := "title,url,time_added,tags\n" +
		"Example,https://example.com,1700000000,golang\n"
	inPath := writeCSV(t, input)
	dir := filepath.Dir(inPath)

	for _, name := range []string{"a.html", "b.html"} {
		var warnings bytes.Buffer
		if _, err := Run(inPath, filepath.Join(dir, name), &warnings); err != nil {
			t.Fatal(err)
		}
	}

	a, err := os.ReadFile(filepath.Join(dir, "a.html"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "b.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("two runs over the same input produced different output")
	}
}

func TestRunTimestamps(t *testing.T) {
	tests := []struct {
		name        string
		timeAdded   string
		wantAttr    string
		wantNoAttr  bool
		wantWarning string
	}{
		{
			name:      "numeric timestamp",
			timeAdded: "1700000000",
			wantAttr:  `ADD_DATE="1700000000"`,
		},
		{
			name:        "malformed timestamp warns and omits",
			timeAdded:   "not-a-number",
			wantNoAttr:  true,
			wantWarning: "not-a-number",
		},
		{
			name:       "empty timestamp silently omits",
			timeAdded:  "",
			wantNoAttr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := "title,url,time_added,tags\n" +
				"Example,https://example.com," + tt.timeAdded + ",\n"
			inPath := writeCSV(t, input)
			outPath := filepath.Join(filepath.Dir(inPath), "out.html")

			var warnings bytes.Buffer
			report, err := Run(inPath, outPath, &warnings)
			if err != nil {
				t.Fatal(err)
			}

			out, err := os.ReadFile(outPath)
			if err != nil {
				t.Fatal(err)
			}

			if tt.wantAttr != "" && !strings.Contains(string(out), tt.wantAttr) {
				t.Errorf("output missing %q:\n%s", tt.wantAttr, out)
			}
			if tt.wantNoAttr && strings.Contains(string(out), "ADD_DATE") {
				t.Errorf("output should have no ADD_DATE:\n%s", out)
			}

			if tt.wantWarning == "" {
				if warnings.Len() != 0 {
					t.Errorf("unexpected warnings: %s", warnings.String())
				}
				if report.BadTimestamps != 0 {
					t.Errorf("bad timestamps = %d, want 0", report.BadTimestamps)
				}
				return
			}
			if !strings.Contains(warnings.String(), tt.wantWarning) {
				t.Errorf("warnings = %q, want mention of %q", warnings.String(), tt.wantWarning)
			}
			if !strings.Contains(warnings.String(), "Example") {
				t.Errorf("warning should name the row title: %s", warnings.String())
			}
			if report.BadTimestamps != 1 {
				t.Errorf("bad timestamps = %d, want 1", report.BadTimestamps)
			}
			if report.Added != 1 {
				t.Errorf("row with bad timestamp should still be added, report = %+v", report)
			}
		})
	}
}

func TestRunTagsOmission(t *testing.T) {
	input := "title,url,time_added,tags\n" +
		"Example,https://example.com,,\n"
	inPath := writeCSV(t, input)
	outPath := filepath.Join(filepath.Dir(inPath), "out.html")

	if _, err := Run(inPath, outPath, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}

	out, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(out), "TAGS") {
		t.Errorf("empty tags must omit the TAGS attribute entirely:\n%s", out)
	}
}

func TestRunSchemaError(t *testing.T) {
	input := "title,url,time_added\n" +
		"Example,https://example.com,1700000000\n"
	inPath := writeCSV(t, input)
	outPath := filepath.Join(filepath.Dir(inPath), "out.html")

	_, err := Run(inPath, outPath, &bytes.Buffer{})

	var schemaErr *pocket.SchemaError
	if !errors.As(err, &schemaErr) {
		t.Fatalf("err = %v, want SchemaError", err)
	}
	if len(schemaErr.Missing) != 1 || schemaErr.Missing[0] != "tags" {
		t.Errorf("missing = %v, want [tags]", schemaErr.Missing)
	}

	// Schema validation happens before the output file is created.
	if _, err := os.Stat(outPath); !os.IsNotExist(err) {
		t.Error("schema error must not leave an output file behind")
	}
}

func TestRunInputNotFound(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "no-such-export.csv")
	_, err := Run(missing, filepath.Join(t.TempDir(), "out.html"), &bytes.Buffer{})
	if !errors.Is(err, ErrInputNotFound) {
		t.Errorf("err = %v, want ErrInputNotFound", err)
	}
	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should name the path: %v", err)
	}
}

func TestWriteReport(t *testing.T) {
	report := types.Report{Added: 3, SkippedMissingURL: 1, OutputPath: "bookmarks.html"}
	path := filepath.Join(t.TempDir(), "report.yaml")

	if err := WriteReport(path, report); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got types.Report
	if err := yaml.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != report {
		t.Errorf("round-tripped report = %+v, want %+v", got, report)
	}
}
