// Package collector runs marker-comment collection over projects and
// workspaces and writes one report file per project.
package collector

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/phuslu/log"

	"github.com/mvp-joe/todocol/internal/comment"
	"github.com/mvp-joe/todocol/internal/config"
	"github.com/mvp-joe/todocol/internal/logging"
	"github.com/mvp-joe/todocol/internal/report"
)

// ProjectReport describes one completed project run.
type ProjectReport struct {
	RunID        string
	Name         string
	Dir          string
	OutputPath   string
	Format       report.Format
	Comments     []comment.Comment
	FilesScanned int
	FileErrors   int
	Duration     time.Duration
}

// Collector scans projects with a fixed configuration.
type Collector struct {
	cfg       *config.Config
	format    report.Format
	extractor *comment.Extractor
	logger    *log.Logger
	progress  ProgressReporter
}

// Option configures a Collector.
type Option func(*Collector)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(c *Collector) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithProgress sets the progress reporter.
func WithProgress(progress ProgressReporter) Option {
	return func(c *Collector) {
		if progress != nil {
			c.progress = progress
		}
	}
}

// New creates a Collector. An unsupported output format is logged and
// replaced by raw.
func New(cfg *config.Config, opts ...Option) (*Collector, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	c := &Collector{
		cfg:       cfg,
		extractor: comment.NewExtractor(cfg.Prefixes),
		logger:    logging.Discard(),
		progress:  &NoOpProgressReporter{},
	}
	for _, opt := range opts {
		opt(c)
	}

	format, err := report.ParseFormat(cfg.Outfile.Format)
	if err != nil {
		c.logger.Warn().Err(err).Str("fallback", format.String()).Msg("unsupported output format")
	}
	c.format = format

	return c, nil
}

// Config returns the configuration the collector runs with.
func (c *Collector) Config() *config.Config {
	return c.cfg
}

// Format returns the resolved report format.
func (c *Collector) Format() report.Format {
	return c.format
}

// ProjectName returns the final segment of dir, made absolute first so that
// "." names the current directory.
func ProjectName(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrInvalidProjectPath, dir, err)
	}
	name := filepath.Base(abs)
	if name == "" || name == "." || name == string(filepath.Separator) || filepath.VolumeName(abs)+string(filepath.Separator) == abs {
		return "", fmt.Errorf("%w: %s has no final path segment", ErrInvalidProjectPath, dir)
	}
	return name, nil
}

// OutputPath returns the report path for a project directory.
func (c *Collector) OutputPath(dir string) string {
	return filepath.Join(dir, c.cfg.Outfile.Name+"."+c.format.Extension())
}

// CollectProject scans dir, renders the report and replaces
// <dir>/<name>.<ext>. The previous report is removed before scanning.
// File and directory read failures are logged and skipped; a cancelled
// context stops the run before the report is written.
func (c *Collector) CollectProject(ctx context.Context, dir string) (*ProjectReport, error) {
	start := time.Now()
	runID := uuid.NewString()
	logger := logging.With(c.logger, "run_id", runID)

	name, err := ProjectName(dir)
	if err != nil {
		return nil, err
	}
	dir = filepath.Clean(dir)

	logger = logging.With(logger, "project", name)
	logger.Info().Str("dir", dir).Str("format", c.format.String()).Msg("collecting project")
	c.progress.OnProjectStart(name, dir)

	writer := NewReportWriter(c.OutputPath(dir), logger)
	if err := writer.Lock(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	defer writer.Unlock()

	writer.RemoveOld()

	comments, stats, err := c.scan(ctx, dir, logger)
	if err != nil {
		return nil, err
	}

	content := report.Render(c.format, name, comments)
	if err := writer.Write([]byte(content)); err != nil {
		logger.Error().Str("path", writer.Path()).Err(err).Msg("failed to write report")
		return nil, err
	}

	result := &ProjectReport{
		RunID:        runID,
		Name:         name,
		Dir:          dir,
		OutputPath:   writer.Path(),
		Format:       c.format,
		Comments:     comments,
		FilesScanned: stats.files,
		FileErrors:   stats.fileErrors,
		Duration:     time.Since(start),
	}

	logger.Info().
		Str("output", result.OutputPath).
		Int("files", result.FilesScanned).
		Int("comments", len(comments)).
		Dur("duration", result.Duration).
		Msg("report written")
	c.progress.OnProjectComplete(result)

	return result, nil
}

// ScanProject returns the comments CollectProject would report for dir
// without touching the report file.
func (c *Collector) ScanProject(ctx context.Context, dir string) ([]comment.Comment, error) {
	if _, err := ProjectName(dir); err != nil {
		return nil, err
	}
	comments, _, err := c.scan(ctx, filepath.Clean(dir), c.logger)
	return comments, err
}

func (c *Collector) scan(ctx context.Context, dir string, logger *log.Logger) ([]comment.Comment, processStats, error) {
	discovery, err := NewFileDiscovery(dir, c.cfg.Ignore, c.cfg.IgnorePatterns, c.cfg.Outfile.Name, logger)
	if err != nil {
		return nil, processStats{}, err
	}

	files := discovery.DiscoverFiles()
	logger.Debug().Int("files", len(files)).Msg("discovery complete")
	c.progress.OnDiscoveryComplete(len(files))

	processor := &fileProcessor{
		extractor: c.extractor,
		workers:   c.cfg.Workers,
		progress:  c.progress,
		logger:    logger,
	}
	return processor.process(ctx, files)
}

// isCancellation reports whether err came from a cancelled or expired context.
func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
