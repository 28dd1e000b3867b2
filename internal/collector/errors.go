package collector

import "errors"

var (
	// ErrInvalidProjectPath indicates a project path with no final segment
	// to use as the project name (for example "/").
	ErrInvalidProjectPath = errors.New("invalid project path")

	// ErrDirectoryRead indicates a directory whose entries could not be listed.
	ErrDirectoryRead = errors.New("cannot read directory")

	// ErrFileRead indicates a source file that could not be opened or read.
	ErrFileRead = errors.New("cannot read file")

	// ErrOutputWrite indicates the report file could not be written.
	ErrOutputWrite = errors.New("cannot write report")
)
