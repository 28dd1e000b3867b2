package collector

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/phuslu/log"
)

const lockRetryDelay = 50 * time.Millisecond

// ReportWriter replaces a report file atomically. Concurrent runs against the
// same report, in this or another process, are serialized by a lock file kept
// in the system temp directory so no extra files appear in the project.
type ReportWriter struct {
	path   string
	lock   *flock.Flock
	logger *log.Logger
}

// NewReportWriter creates a writer for the report at path.
func NewReportWriter(path string, logger *log.Logger) *ReportWriter {
	return &ReportWriter{
		path:   path,
		lock:   flock.New(lockPath(path)),
		logger: logger,
	}
}

// Path returns the report file path.
func (w *ReportWriter) Path() string {
	return w.path
}

// Lock acquires the report lock, waiting until ctx is done.
func (w *ReportWriter) Lock(ctx context.Context) error {
	for {
		locked, err := w.lock.TryLockContext(ctx, lockRetryDelay)
		if err != nil {
			return fmt.Errorf("failed to acquire lock for %s: %w", w.path, err)
		}
		if !locked {
			return fmt.Errorf("failed to acquire lock for %s", w.path)
		}

		// The previous holder removes the lock file on release; a lock taken
		// on the unlinked file is retried on a fresh one.
		if _, err := os.Stat(w.lock.Path()); err == nil {
			return nil
		}
		if err := w.lock.Unlock(); err != nil {
			return fmt.Errorf("failed to release stale lock for %s: %w", w.path, err)
		}
	}
}

// Unlock removes the lock file and releases the report lock.
func (w *ReportWriter) Unlock() {
	if err := os.Remove(w.lock.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Debug().Str("lock", w.lock.Path()).Err(err).Msg("failed to remove lock file")
	}
	if err := w.lock.Unlock(); err != nil {
		w.logger.Warn().Str("path", w.path).Err(err).Msg("failed to release report lock")
	}
}

// RemoveOld deletes an existing report. A failure is logged, not returned:
// the atomic write that follows replaces the file anyway.
func (w *ReportWriter) RemoveOld() {
	if _, err := os.Lstat(w.path); err != nil {
		return
	}

	w.logger.Debug().Str("path", w.path).Msg("removing previous report")
	if err := os.Remove(w.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		w.logger.Warn().Str("path", w.path).Err(err).Msg("failed to remove previous report")
	}
}

// Write writes data to the report using a temp file and rename, so readers
// never see a partial report.
func (w *ReportWriter) Write(data []byte) error {
	dir := filepath.Dir(w.path)

	tempFile, err := os.CreateTemp(dir, "."+filepath.Base(w.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %v", ErrOutputWrite, err)
	}
	tempPath := tempFile.Name()

	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("%w: failed to write temp file: %v", ErrOutputWrite, err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("%w: failed to sync temp file: %v", ErrOutputWrite, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("%w: failed to close temp file: %v", ErrOutputWrite, err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("%w: failed to set permissions: %v", ErrOutputWrite, err)
	}

	if err := os.Rename(tempPath, w.path); err != nil {
		return fmt.Errorf("%w: failed to rename temp file to %s: %v", ErrOutputWrite, w.path, err)
	}

	tempFile = nil
	return nil
}

// lockPath maps a report path to a stable lock file in the temp directory.
func lockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(path))
	return filepath.Join(os.TempDir(), "todocol-"+hex.EncodeToString(sum[:8])+".lock")
}
