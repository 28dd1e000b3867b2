// Package source classifies files by extension and knows which comment
// symbols introduce a line comment in each supported language.
package source

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnsupportedExtension is returned when a path has no extension or an
// extension outside the supported table.
var ErrUnsupportedExtension = errors.New("unsupported file extension")

// Kind identifies the language of a source file.
type Kind string

const (
	Rust   Kind = "rust"
	Shell  Kind = "shell"
	Python Kind = "python"
	C      Kind = "c"
	Cpp    Kind = "cpp"
)

// extensions maps a case-sensitive file extension to its kind.
var extensions = map[string]Kind{
	".rs":  Rust,
	".sh":  Shell,
	".py":  Python,
	".c":   C,
	".h":   C,
	".cpp": Cpp,
	".hpp": Cpp,
}

// commentSymbols holds exactly one entry per supported kind.
var commentSymbols = map[Kind][]string{
	Rust:   {"//"},
	C:      {"//"},
	Cpp:    {"//"},
	Shell:  {"#"},
	Python: {"#"},
}

// Kinds returns every supported kind in a stable order.
func Kinds() []Kind {
	return []Kind{Rust, Shell, Python, C, Cpp}
}

// CommentSymbols returns the symbols that start a line comment for k.
// The returned slice must not be modified.
func (k Kind) CommentSymbols() []string {
	return commentSymbols[k]
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return string(k)
}

// Extensions returns the extensions recognized for k, with the leading dot.
func (k Kind) Extensions() []string {
	var exts []string
	for _, ext := range SupportedExtensions() {
		if extensions[ext] == k {
			exts = append(exts, ext)
		}
	}
	return exts
}

// SupportedExtensions returns all recognized extensions in a stable order.
func SupportedExtensions() []string {
	return []string{".rs", ".sh", ".py", ".c", ".h", ".cpp", ".hpp"}
}

// ClassifyKind returns the kind for path's extension.
// Matching is case-sensitive: "main.RS" is not a Rust file.
func ClassifyKind(path string) (Kind, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("%w: %q has no extension", ErrUnsupportedExtension, path)
	}
	kind, ok := extensions[ext]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedExtension, ext)
	}
	return kind, nil
}
