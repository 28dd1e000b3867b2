package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test Plan for source classification:
// - Every supported extension maps to the expected kind
// - Unknown extensions, missing extensions and directories fail with ErrUnsupportedExtension
// - Extension matching is case-sensitive
// - Every supported kind has exactly one comment symbol entry
// - Classify keeps the original path

func TestClassifyKind_SupportedExtensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want Kind
	}{
		{"/foo/bar/baz.rs", Rust},
		{"scripts/build.sh", Shell},
		{"tools/gen.py", Python},
		{"src/main.c", C},
		{"include/util.h", C},
		{"src/engine.cpp", Cpp},
		{"include/engine.hpp", Cpp},
		{"archive.tar.rs", Rust},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			kind, err := ClassifyKind(tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, kind)
		})
	}
}

func TestClassifyKind_Unsupported(t *testing.T) {
	t.Parallel()

	paths := []string{
		"README.md",
		"Makefile",
		"src/",
		".bashrc",
		"main.go",
		"main.RS",
		"engine.CPP",
		"notes.rs.txt",
		"",
	}

	for _, p := range paths {
		_, err := ClassifyKind(p)
		assert.ErrorIs(t, err, ErrUnsupportedExtension, "path %q", p)
	}
}

func TestKind_CommentSymbols(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"//"}, Rust.CommentSymbols())
	assert.Equal(t, []string{"//"}, C.CommentSymbols())
	assert.Equal(t, []string{"//"}, Cpp.CommentSymbols())
	assert.Equal(t, []string{"#"}, Shell.CommentSymbols())
	assert.Equal(t, []string{"#"}, Python.CommentSymbols())

	for _, k := range Kinds() {
		assert.NotEmpty(t, k.CommentSymbols(), "kind %s", k)
	}
	assert.Len(t, commentSymbols, len(Kinds()))
}

func TestKind_Extensions(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{".c", ".h"}, C.Extensions())
	assert.Equal(t, []string{".cpp", ".hpp"}, Cpp.Extensions())
	assert.Equal(t, []string{".rs"}, Rust.Extensions())

	for _, ext := range SupportedExtensions() {
		_, ok := extensions[ext]
		assert.True(t, ok, "extension %s", ext)
	}
}

func TestClassify_KeepsPath(t *testing.T) {
	t.Parallel()

	f, err := Classify("/foo/bar/baz.rs")
	require.NoError(t, err)
	assert.Equal(t, "/foo/bar/baz.rs", f.Path())
	assert.Equal(t, Rust, f.Kind())
	assert.Equal(t, []string{"//"}, f.CommentSymbols())
	assert.Equal(t, "/foo/bar/baz.rs", f.String())

	_, err = Classify("/foo/bar/baz.txt")
	assert.ErrorIs(t, err, ErrUnsupportedExtension)
}
