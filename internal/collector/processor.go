package collector

import (
	"context"
	"fmt"

	"github.com/phuslu/log"
	"golang.org/x/sync/errgroup"

	"github.com/mvp-joe/todocol/internal/comment"
	"github.com/mvp-joe/todocol/internal/source"
)

// fileProcessor extracts and aggregates comments for a list of files.
type fileProcessor struct {
	extractor *comment.Extractor
	workers   int
	progress  ProgressReporter
	logger    *log.Logger
}

// processStats summarizes one processing pass.
type processStats struct {
	files      int
	fileErrors int
}

// process scans files and returns their comments in file order, whatever
// the number of workers. Unreadable files are logged and keep the comments
// read before the failure. The only error returned is ctx.Err().
func (p *fileProcessor) process(ctx context.Context, files []source.File) ([]comment.Comment, processStats, error) {
	results := make([][]comment.Comment, len(files))
	failed := make([]bool, len(files))

	if p.workers <= 1 {
		for i, f := range files {
			if err := ctx.Err(); err != nil {
				return nil, processStats{}, err
			}
			results[i], failed[i] = p.processFile(f)
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for i, f := range files {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}
				results[i], failed[i] = p.processFile(f)
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, processStats{}, err
		}
		if err := ctx.Err(); err != nil {
			return nil, processStats{}, err
		}
	}

	stats := processStats{files: len(files)}
	var comments []comment.Comment
	for i := range results {
		comments = append(comments, results[i]...)
		if failed[i] {
			stats.fileErrors++
		}
	}

	return comments, stats, nil
}

// processFile extracts one file. The bool reports a read failure.
func (p *fileProcessor) processFile(f source.File) ([]comment.Comment, bool) {
	lines, err := p.extractor.ExtractFile(f)
	failed := err != nil
	if failed {
		p.logger.Error().Str("file", f.Path()).Err(fmt.Errorf("%w: %v", ErrFileRead, err)).Msg("failed to read file")
	}

	comments := comment.Aggregate(f.Path(), lines)
	p.logger.Trace().Str("file", f.Path()).Int("comments", len(comments)).Msg("scanned")
	p.progress.OnFileScanned(f.Path(), len(comments))

	return comments, failed
}
