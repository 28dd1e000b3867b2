// Package report renders collected comments into the report file formats.
package report

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned by ParseFormat for unknown selectors.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// Format selects the report file layout.
type Format int

const (
	Raw Format = iota
	Markdown
	JSON
)

// ParseFormat maps a selector ("raw", "txt", "markdown", "md", "json",
// case-insensitive) to a Format. Unknown selectors return Raw together with
// ErrUnsupportedFormat so callers can log the fallback and continue.
func ParseFormat(selector string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(selector)) {
	case "raw", "txt":
		return Raw, nil
	case "markdown", "md":
		return Markdown, nil
	case "json":
		return JSON, nil
	default:
		return Raw, fmt.Errorf("%w: %q", ErrUnsupportedFormat, selector)
	}
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	switch f {
	case Markdown:
		return "md"
	case JSON:
		return "json"
	default:
		return "txt"
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case Markdown:
		return "markdown"
	case JSON:
		return "json"
	default:
		return "raw"
	}
}

// Extensions returns the extensions of every format.
func Extensions() []string {
	return []string{Raw.Extension(), Markdown.Extension(), JSON.Extension()}
}
