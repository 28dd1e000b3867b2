package source

// File is a classified source file. It is immutable once created.
type File struct {
	path string
	kind Kind
}

// Classify builds a File for path, or fails with ErrUnsupportedExtension.
func Classify(path string) (File, error) {
	kind, err := ClassifyKind(path)
	if err != nil {
		return File{}, err
	}
	return File{path: path, kind: kind}, nil
}

// Path returns the path the file was classified from.
func (f File) Path() string { return f.path }

// Kind returns the language of the file.
func (f File) Kind() Kind { return f.kind }

// CommentSymbols is a shorthand for f.Kind().CommentSymbols().
func (f File) CommentSymbols() []string { return f.kind.CommentSymbols() }

// String implements fmt.Stringer.
func (f File) String() string { return f.path }
