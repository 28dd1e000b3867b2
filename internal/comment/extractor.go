package comment

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mvp-joe/todocol/internal/source"
)

// Extractor finds comment lines and recognizes the configured markers.
type Extractor struct {
	markers []string
}

// NewExtractor creates an extractor for the given markers.
// Markers are tried in order; empty strings are ignored.
func NewExtractor(markers []string) *Extractor {
	e := &Extractor{}
	for _, m := range markers {
		if m != "" {
			e.markers = append(e.markers, m)
		}
	}
	return e
}

// Markers returns the markers the extractor recognizes.
func (e *Extractor) Markers() []string {
	return e.markers
}

// ExtractFile reads f line by line and returns its comment lines.
// On a read error the lines collected so far are returned with the error.
func (e *Extractor) ExtractFile(f source.File) ([]Line, error) {
	file, err := os.Open(f.Path())
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return e.ExtractReader(file, f.CommentSymbols())
}

// ExtractReader scans r for lines that start with one of symbols.
func (e *Extractor) ExtractReader(r io.Reader, symbols []string) ([]Line, error) {
	var lines []Line
	reader := bufio.NewReader(r)

	for number := 1; ; number++ {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			if line, ok := e.parseLine(raw, symbols); ok {
				line.Number = number
				lines = append(lines, line)
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return lines, nil
			}
			return lines, fmt.Errorf("line %d: %w", number, err)
		}
	}
}

// parseLine returns the comment carried by raw, if any.
func (e *Extractor) parseLine(raw string, symbols []string) (Line, bool) {
	trimmed := strings.TrimSpace(raw)

	for _, symbol := range symbols {
		if !strings.HasPrefix(trimmed, symbol) {
			continue
		}
		body := stripSymbol(trimmed, symbol)
		for _, marker := range e.markers {
			if text, ok := stripMarker(body, marker); ok {
				return Line{Text: text, Marker: marker}, true
			}
		}
		return Line{Text: body}, true
	}

	return Line{}, false
}

// stripSymbol removes every leading repetition of symbol and, for "//",
// the doc comment marks of "///" and "//!".
func stripSymbol(line, symbol string) string {
	for strings.HasPrefix(line, symbol) {
		line = line[len(symbol):]
	}
	if symbol == "//" {
		line = strings.TrimPrefix(line, "/")
		line = strings.TrimPrefix(line, "!")
	}
	return strings.TrimLeftFunc(line, unicode.IsSpace)
}

// stripMarker checks that body starts with marker as a whole word and
// returns the text after it. An optional "(owner)" tag and a ":"
// separator following the marker are removed as well.
func stripMarker(body, marker string) (string, bool) {
	if !strings.HasPrefix(body, marker) {
		return "", false
	}
	rest := body[len(marker):]

	if rest != "" {
		r, _ := utf8.DecodeRuneInString(rest)
		switch {
		case r == ':' || unicode.IsSpace(r):
		case r == '(':
			end := strings.IndexByte(rest, ')')
			if end < 0 {
				return "", false
			}
			rest = rest[end+1:]
		default:
			return "", false
		}
	}

	rest = strings.TrimLeftFunc(rest, unicode.IsSpace)
	rest = strings.TrimPrefix(rest, ":")
	return strings.TrimSpace(rest), true
}
