// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package netscape writes and reads Netscape Bookmark files: the de facto
// HTML microformat browsers and bookmark managers (including Linkwarden)
// use for import and export.
package netscape

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// header is the fixed document framing written before any bookmark. The
// shape matches what Linkwarden's importer expects; it is deliberately not
// configurable.
const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!--This is an automatically generated file.
It will be read and overwritten.
Do Not Edit! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

// footer closes the bookmark list opened by the header.
const footer = "</DL><p>\n"

// Writer emits a Netscape Bookmark file to an underlying stream. Callers
// write the header, then any number of bookmarks, then the footer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Header writes the fixed document framing.
func (w *Writer) Header() error {
	_, err := io.WriteString(w.w, header)
	return err
}

// Footer writes the closing list tag.
func (w *Writer) Footer() error {
	_, err := io.WriteString(w.w, footer)
	return err
}

// Bookmark writes one anchor line. The url, title, and tags are HTML-escaped
// here; callers pass raw field values. ADD_DATE is included only when
// hasDate is true, and TAGS only when tags is non-empty.
func (w *Writer) Bookmark(url, title, tags string, addDate int64, hasDate bool) error {
	var b strings.Builder
	b.WriteString(`    <DT><A HREF="`)
	b.WriteString(html.EscapeString(url))
	b.WriteString(`"`)
	if hasDate {
		fmt.Fprintf(&b, ` ADD_DATE="%d"`, addDate)
	}
	if tags != "" {
		b.WriteString(` TAGS="`)
		b.WriteString(html.EscapeString(tags))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(html.EscapeString(title))
	b.WriteString("</A>\n")
	_, err := io.WriteString(w.w, b.String())
	return err
}
