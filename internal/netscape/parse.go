// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package netscape

import (
	"fmt"
	"io"
	"strconv"

	"github.com/PuerkitoBio/goquery"
)

// Entry is one bookmark recovered from a Netscape Bookmark file.
type Entry struct {
	HRef    string
	Title   string
	Tags    string
	AddDate int64
	HasDate bool
}

// Parse reads a Netscape Bookmark file and returns its bookmark entries in
// document order. Anchors without an href are ignored, as are ADD_DATE
// values that do not parse as integers.
func Parse(r io.Reader) ([]Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing bookmark file: %w", err)
	}

	var entries []Entry
	doc.Find("dt a").Each(func(_ int, s *goquery.Selection) {
		href, ok := s.Attr("href")
		if !ok {
			return
		}
		e := Entry{
			HRef:  href,
			Title: s.Text(),
			Tags:  s.AttrOr("tags", ""),
		}
		if raw, ok := s.Attr("add_date"); ok {
			if ts, err := strconv.ParseInt(raw, 10, 64); err == nil {
				e.AddDate = ts
				e.HasDate = true
			}
		}
		entries = append(entries, e)
	})
	return entries, nil
}
