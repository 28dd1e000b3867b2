package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// ProjectFailure records a project run that did not produce a report.
type ProjectFailure struct {
	Dir string
	Err error
}

// WorkspaceResult collects the outcome of a workspace run.
type WorkspaceResult struct {
	Projects []*ProjectReport
	Failures []ProjectFailure
}

func (r *WorkspaceResult) merge(other *WorkspaceResult) {
	r.Projects = append(r.Projects, other.Projects...)
	r.Failures = append(r.Failures, other.Failures...)
}

// CollectWorkspace runs CollectProject for every immediate subdirectory of
// dir, in lexical order. A failing project is logged and recorded, and the
// remaining projects still run. Subdirectories named in the ignore list
// (".git" and friends) are not projects.
func (c *Collector) CollectWorkspace(ctx context.Context, dir string) (*WorkspaceResult, error) {
	projects, err := c.projectDirs(dir)
	if err != nil {
		return nil, err
	}

	c.logger.Info().Str("workspace", dir).Int("projects", len(projects)).Msg("collecting workspace")

	result := &WorkspaceResult{}
	for _, project := range projects {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		rep, err := c.CollectProject(ctx, project)
		if err != nil {
			if isCancellation(err) {
				return result, err
			}
			c.logger.Error().Str("project", project).Err(err).Msg("project failed")
			result.Failures = append(result.Failures, ProjectFailure{Dir: project, Err: err})
			continue
		}
		result.Projects = append(result.Projects, rep)
	}

	return result, nil
}

// CollectWorkspaces runs CollectWorkspace for every configured workspace.
// An unreadable workspace is logged and recorded as a failure.
func (c *Collector) CollectWorkspaces(ctx context.Context) (*WorkspaceResult, error) {
	result := &WorkspaceResult{}

	for _, ws := range c.cfg.Workspaces {
		wsResult, err := c.CollectWorkspace(ctx, ws)
		if wsResult != nil {
			result.merge(wsResult)
		}
		if err != nil {
			if isCancellation(err) {
				return result, err
			}
			c.logger.Error().Str("workspace", ws).Err(err).Msg("workspace failed")
			result.Failures = append(result.Failures, ProjectFailure{Dir: ws, Err: err})
		}
	}

	return result, nil
}

// projectDirs lists the immediate subdirectories of dir. Symlinks to
// directories count as projects. Members are filtered with the same ignore
// names and patterns as files inside a project.
func (c *Collector) projectDirs(dir string) ([]string, error) {
	fd, err := NewFileDiscovery(dir, c.cfg.Ignore, c.cfg.IgnorePatterns, c.cfg.Outfile.Name, c.logger)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDirectoryRead, dir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if fd.shouldIgnore(entry.Name()) {
			c.logger.Debug().Str("dir", entry.Name()).Msg("ignoring workspace member")
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if !entry.IsDir() {
			if entry.Type()&os.ModeSymlink == 0 {
				continue
			}
			info, err := os.Stat(path)
			if err != nil || !info.IsDir() {
				continue
			}
		}
		dirs = append(dirs, path)
	}

	return dirs, nil
}
