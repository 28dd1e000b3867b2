package comment

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test Plan for Aggregate:
// - A marked line followed by an adjacent unmarked line yields one merged comment
// - A line-number gap drops the unmarked line
// - Continuations chain across several consecutive lines
// - A marked line always starts a new comment, even when adjacent
// - Unmarked lines before any marked line are dropped
// - An empty unmarked line is folded in and the chain continues past it
// - A marked line with no text keeps the separating space before its continuation
// - Extract + Aggregate end to end keeps line order

func TestAggregate_AdjacentContinuationMerges(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 5, Text: "fix this", Marker: "TODO"},
		{Number: 6, Text: "before release"},
	}

	got := Aggregate("src/main.rs", lines)

	assert.Equal(t, []Comment{
		{File: "src/main.rs", Line: 5, Content: "fix this before release", Marker: "TODO"},
	}, got)
}

func TestAggregate_GapDropsContinuation(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 5, Text: "fix this", Marker: "TODO"},
		{Number: 7, Text: "unrelated"},
	}

	got := Aggregate("src/main.rs", lines)

	assert.Equal(t, []Comment{
		{File: "src/main.rs", Line: 5, Content: "fix this", Marker: "TODO"},
	}, got)
}

func TestAggregate_ChainsConsecutiveLines(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 1, Text: "a", Marker: "TODO"},
		{Number: 2, Text: "b"},
		{Number: 3, Text: "c"},
		{Number: 5, Text: "d"},
	}

	got := Aggregate("f.c", lines)

	assert.Equal(t, []Comment{{File: "f.c", Line: 1, Content: "a b c", Marker: "TODO"}}, got)
}

func TestAggregate_MarkedLineStartsNewEntry(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 10, Text: "first", Marker: "TODO"},
		{Number: 11, Text: "second", Marker: "FIXME"},
		{Number: 12, Text: "tail"},
	}

	got := Aggregate("f.py", lines)

	assert.Equal(t, []Comment{
		{File: "f.py", Line: 10, Content: "first", Marker: "TODO"},
		{File: "f.py", Line: 11, Content: "second tail", Marker: "FIXME"},
	}, got)
}

func TestAggregate_LeadingUnmarkedDropped(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 1, Text: "license header"},
		{Number: 2, Text: "more header"},
		{Number: 3, Text: "real", Marker: "TODO"},
	}

	got := Aggregate("f.sh", lines)

	assert.Equal(t, []Comment{{File: "f.sh", Line: 3, Content: "real", Marker: "TODO"}}, got)
	assert.Empty(t, Aggregate("f.sh", lines[:2]))
	assert.Empty(t, Aggregate("f.sh", nil))
}

func TestAggregate_EmptyLineFoldsIn(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 1, Text: "first", Marker: "TODO"},
		{Number: 2, Text: ""},
		{Number: 3, Text: "more"},
	}

	got := Aggregate("f.rs", lines)

	assert.Equal(t, []Comment{{File: "f.rs", Line: 1, Content: "first  more", Marker: "TODO"}}, got)
}

func TestAggregate_EmptyMarkedContent(t *testing.T) {
	t.Parallel()

	lines := []Line{
		{Number: 1, Text: "", Marker: "TODO"},
		{Number: 2, Text: "described below"},
	}

	got := Aggregate("f.rs", lines)

	assert.Equal(t, []Comment{{File: "f.rs", Line: 1, Content: " described below", Marker: "TODO"}}, got)
}

func TestExtractAndAggregate_EndToEnd(t *testing.T) {
	t.Parallel()

	input := `// header comment
fn a() {} // TODO: ignored, code line
// TODO: first
// continues
//
// after blank comment
fn b() {}
// TODO: second

// dropped after gap
`
	e := NewExtractor([]string{"TODO"})
	lines, err := e.ExtractReader(strings.NewReader(input), []string{"//"})
	assert.NoError(t, err)

	got := Aggregate("lib.rs", lines)

	assert.Equal(t, []Comment{
		{File: "lib.rs", Line: 3, Content: "first continues  after blank comment", Marker: "TODO"},
		{File: "lib.rs", Line: 8, Content: "second", Marker: "TODO"},
	}, got)
}
