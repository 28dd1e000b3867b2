// Package comment extracts marker comments (TODO, FIXME, ...) from source
// files and merges continuation lines into the comment they extend.
package comment

// Line is one comment line found in a file.
// Marker is empty for comment lines that carry no recognized marker;
// those lines are only useful as continuation candidates.
type Line struct {
	Number int    // 1-based line number
	Text   string // comment text with symbol and marker stripped
	Marker string // matched marker, or "" when unmarked
}

// Marked reports whether the line starts a new comment entry.
func (l Line) Marked() bool {
	return l.Marker != ""
}

// Comment is a collected marker comment. Content may span several
// consecutive source lines, joined with single spaces.
type Comment struct {
	File    string `json:"file"`
	Line    int    `json:"line"`
	Content string `json:"comment"`
	Marker  string `json:"marker"`
}

// extend appends a continuation line's text after a single space.
func (c *Comment) extend(text string) {
	c.Content += " " + text
}
