// Package renditions parses the compact cover-image rendition encoding used
// by the catalog. Each row stores all available image variants as a single
// newline-delimited string, one "WIDTHxHEIGHT,URL" entry per line:
//
//	640x360,https://example.org/covers/abc-640.jpg
//	1280x720,https://example.org/covers/abc-1280.jpg
//
// An empty or absent value decodes to an empty list; malformed lines are
// skipped rather than failing the read.
package renditions

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
)

// Rendition describes one available size of a cover image.
type Rendition struct {
	Width  int
	Height int
	URL    string
}

// List is an ordered set of renditions, smallest first as stored.
type List []Rendition

// Parse decodes a stored rendition string. It never fails: empty input yields
// an empty list and entries that do not match the encoding are dropped.
func Parse(s string) List {
	var list List
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		size, url, ok := strings.Cut(line, ",")
		if !ok || url == "" {
			continue
		}
		w, h, ok := strings.Cut(size, "x")
		if !ok {
			continue
		}
		width, err := strconv.Atoi(strings.TrimSpace(w))
		if err != nil {
			continue
		}
		height, err := strconv.Atoi(strings.TrimSpace(h))
		if err != nil {
			continue
		}
		list = append(list, Rendition{Width: width, Height: height, URL: url})
	}
	return list
}

// String re-encodes the list into the stored representation.
func (l List) String() string {
	lines := make([]string, 0, len(l))
	for _, r := range l {
		lines = append(lines, fmt.Sprintf("%dx%d,%s", r.Width, r.Height, r.URL))
	}
	return strings.Join(lines, "\n")
}

// Scan implements sql.Scanner so entity fields decode directly from the
// stored column.
func (l *List) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		*l = nil
	case string:
		*l = Parse(v)
	case []byte:
		*l = Parse(string(v))
	default:
		return fmt.Errorf("renditions: cannot scan %T", value)
	}
	return nil
}

// Value implements driver.Valuer.
func (l List) Value() (driver.Value, error) {
	return l.String(), nil
}

// GormDataType stores rendition lists as text columns.
func (List) GormDataType() string {
	return "text"
}
