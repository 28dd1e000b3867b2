package collector

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"
	"github.com/phuslu/log"

	"github.com/mvp-joe/todocol/internal/config"
	"github.com/mvp-joe/todocol/internal/report"
	"github.com/mvp-joe/todocol/internal/source"
)

// compiledPattern holds both the pattern string and compiled glob
type compiledPattern struct {
	pattern string
	glob    glob.Glob
}

// FileDiscovery walks a project tree and returns the supported source files.
//
// Entries are matched on their final path segment: an exact match against
// the ignore list or a glob match against the ignore patterns skips a file,
// or a whole directory subtree. Report files named after the configured
// output base are never scanned.
type FileDiscovery struct {
	rootDir        string
	ignore         map[string]struct{}
	ignorePatterns []compiledPattern
	reportNames    map[string]struct{}
	logger         *log.Logger
}

// NewFileDiscovery creates a new file discovery instance. The entries of
// config.DefaultIgnore are always ignored in addition to ignore.
func NewFileDiscovery(rootDir string, ignore, ignorePatterns []string, outputName string, logger *log.Logger) (*FileDiscovery, error) {
	fd := &FileDiscovery{
		rootDir:     rootDir,
		ignore:      make(map[string]struct{}, len(ignore)+len(config.DefaultIgnore)),
		reportNames: make(map[string]struct{}),
		logger:      logger,
	}

	for _, name := range config.DefaultIgnore {
		fd.ignore[name] = struct{}{}
	}
	for _, name := range ignore {
		fd.ignore[name] = struct{}{}
	}

	for _, pattern := range ignorePatterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid ignore pattern %q: %w", pattern, err)
		}
		fd.ignorePatterns = append(fd.ignorePatterns, compiledPattern{pattern: pattern, glob: g})
	}

	for _, ext := range report.Extensions() {
		fd.reportNames[outputName+"."+ext] = struct{}{}
	}

	return fd, nil
}

// DiscoverFiles walks the tree depth-first in lexical order.
// Unreadable directories are logged and skipped, including the root.
func (fd *FileDiscovery) DiscoverFiles() []source.File {
	files := []source.File{}

	_ = filepath.WalkDir(fd.rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			fd.logger.Warn().Str("path", path).Err(fmt.Errorf("%w: %v", ErrDirectoryRead, err)).Msg("skipping unreadable entry")
			if d != nil && d.IsDir() && path != fd.rootDir {
				return filepath.SkipDir
			}
			return nil
		}

		if path != fd.rootDir && fd.shouldIgnore(d.Name()) {
			fd.logger.Trace().Str("path", path).Msg("ignored")
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		// Pipes and devices can block on open.
		if d.Type()&(fs.ModeNamedPipe|fs.ModeSocket|fs.ModeDevice|fs.ModeCharDevice|fs.ModeIrregular) != 0 {
			return nil
		}

		if _, ok := fd.reportNames[d.Name()]; ok {
			return nil
		}

		file, err := source.Classify(path)
		if err != nil {
			return nil
		}

		files = append(files, file)
		return nil
	})

	return files
}

// shouldIgnore checks a final path segment against the ignore rules.
func (fd *FileDiscovery) shouldIgnore(name string) bool {
	if _, ok := fd.ignore[name]; ok {
		return true
	}
	for _, cp := range fd.ignorePatterns {
		if cp.glob.Match(name) {
			return true
		}
	}
	return false
}
