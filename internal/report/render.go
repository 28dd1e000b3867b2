package report

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/mvp-joe/todocol/internal/comment"
)

// formatter writes one report layout piece by piece.
type formatter interface {
	header(sb *strings.Builder, title string)
	entry(sb *strings.Builder, title string, c comment.Comment, index int)
	footer(sb *strings.Builder)
}

// Render produces the complete report for title and comments in format f.
func Render(f Format, title string, comments []comment.Comment) string {
	fm := formatterFor(f)

	var sb strings.Builder
	fm.header(&sb, title)
	for i, c := range comments {
		fm.entry(&sb, title, c, i)
	}
	fm.footer(&sb)

	return sb.String()
}

func formatterFor(f Format) formatter {
	switch f {
	case Markdown:
		return markdownFormatter{}
	case JSON:
		return jsonFormatter{}
	default:
		return rawFormatter{}
	}
}

// rawFormatter renders:
//
//	title:
//	- file:line - content
type rawFormatter struct{}

func (rawFormatter) header(sb *strings.Builder, title string) {
	sb.WriteString(title)
	sb.WriteString(":\n")
}

func (rawFormatter) entry(sb *strings.Builder, _ string, c comment.Comment, _ int) {
	sb.WriteString("- ")
	sb.WriteString(c.File)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(c.Line))
	sb.WriteString(" - ")
	sb.WriteString(c.Content)
	sb.WriteByte('\n')
}

func (rawFormatter) footer(*strings.Builder) {}

// markdownFormatter renders a heading followed by a bullet list of links.
type markdownFormatter struct{}

func (markdownFormatter) header(sb *strings.Builder, title string) {
	sb.WriteString("# ")
	sb.WriteString(title)
	sb.WriteString("\n\n")
}

func (markdownFormatter) entry(sb *strings.Builder, title string, c comment.Comment, _ int) {
	sb.WriteString("* [")
	sb.WriteString(escapeLinkLabel(linkLabel(title, c.File)))
	sb.WriteString("](")
	sb.WriteString(linkTarget(c.File))
	sb.WriteString("):")
	sb.WriteString(strconv.Itoa(c.Line))
	sb.WriteString(" - ")
	sb.WriteString(c.Content)
	sb.WriteString(" \n")
}

func (markdownFormatter) footer(*strings.Builder) {}

// linkLabel shortens file to start at the project title. Files whose path
// does not contain the title get the generic label "file".
func linkLabel(title, file string) string {
	if title == "" {
		return "file"
	}
	idx := strings.Index(file, title)
	if idx < 0 {
		return "file"
	}
	return file[idx:]
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `[`, `\[`, `]`, `\]`)

func escapeLinkLabel(label string) string {
	return labelEscaper.Replace(label)
}

// linkTarget wraps destinations that CommonMark would otherwise cut short.
func linkTarget(file string) string {
	if strings.ContainsAny(file, " ()<>") {
		return "<" + strings.NewReplacer("<", "%3C", ">", "%3E").Replace(file) + ">"
	}
	return file
}

// jsonFormatter renders {"title":[{"file": ..., "line": "..", "comment": ..}, ... ]}.
type jsonFormatter struct{}

func (jsonFormatter) header(sb *strings.Builder, title string) {
	sb.WriteByte('{')
	sb.WriteString(jsonString(title))
	sb.WriteString(":[")
}

func (jsonFormatter) entry(sb *strings.Builder, _ string, c comment.Comment, index int) {
	if index > 0 {
		sb.WriteString(", ")
	}
	sb.WriteString(`{"file": `)
	sb.WriteString(jsonString(c.File))
	sb.WriteString(`, "line": `)
	sb.WriteString(jsonString(strconv.Itoa(c.Line)))
	sb.WriteString(`, "comment": `)
	sb.WriteString(jsonString(c.Content))
	sb.WriteByte('}')
}

func (jsonFormatter) footer(sb *strings.Builder) {
	sb.WriteString(" ]}")
}

// jsonString quotes s as a JSON string without HTML escaping.
func jsonString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return strconv.Quote(s)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
