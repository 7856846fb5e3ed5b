// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package netscape

import (
	"bytes"
	"strings"
	"testing"
)

func TestHeaderAndFooter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	if err := w.Header(); err != nil {
		t.Fatal(err)
	}
	if err := w.Footer(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"<!DOCTYPE NETSCAPE-Bookmark-file-1>\n",
		"<!--This is an automatically generated file.\n",
		"Do Not Edit! -->\n",
		`<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">` + "\n",
		"<TITLE>Bookmarks</TITLE>\n",
		"<H1>Bookmarks</H1>\n",
		"<DL><p>\n",
		"</DL><p>\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("framing missing %q", want)
		}
	}
}

func TestBookmarkLine(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		title   string
		tags    string
		addDate int64
		hasDate bool
		want    string
	}{
		{
			name:    "all attributes",
			url:     "https://example.com",
			title:   "Example",
			tags:    "golang,web",
			addDate: 1700000000,
			hasDate: true,
			want:    `    <DT><A HREF="https://example.com" ADD_DATE="1700000000" TAGS="golang,web">Example</A>` + "\n",
		},
		{
			name:  "no date no tags",
			url:   "https://example.com",
			title: "Example",
			want:  `    <DT><A HREF="https://example.com">Example</A>` + "\n",
		},
		{
			name:    "date without tags",
			url:     "https://example.com",
			title:   "Example",
			addDate: 42,
			hasDate: true,
			want:    `    <DT><A HREF="https://example.com" ADD_DATE="42">Example</A>` + "\n",
		},
		{
			name:  "title and tags escaped",
			url:   "https://example.com/?a=1&b=2",
			title: `<script>&"'`,
			tags:  `a<b,"c"`,
			want: `    <DT><A HREF="https://example.com/?a=1&amp;b=2" TAGS="a&lt;b,&#34;c&#34;">` +
				"&lt;script&gt;&amp;&#34;&#39;</A>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := NewWriter(&buf).Bookmark(tt.url, tt.title, tt.tags, tt.addDate, tt.hasDate); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBookmarkNeverEmitsRawSpecials(t *testing.T) {
	var buf bytes.Buffer
	if err := NewWriter(&buf).Bookmark("https://e.com", `<script>&"'`, "", 0, false); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if strings.Contains(out, "<script>") {
		t.Errorf("raw title leaked into %q", out)
	}
	if !strings.Contains(out, "&lt;script&gt;&amp;&#34;&#39;") {
		t.Errorf("escaped title missing from %q", out)
	}
}
