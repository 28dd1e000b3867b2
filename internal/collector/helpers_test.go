package collector

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// writeFile creates root/rel with content, making parent directories.
func writeFile(t *testing.T, root, rel, content string) string {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func skipIfRoot(t *testing.T) {
	t.Helper()
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}

// recordingProgress counts progress callbacks.
type recordingProgress struct {
	mu        sync.Mutex
	started   []string
	files     int
	scanned   int
	completed []*ProjectReport
}

func (r *recordingProgress) OnProjectStart(name, dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.started = append(r.started, name)
}

func (r *recordingProgress) OnDiscoveryComplete(files int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files += files
}

func (r *recordingProgress) OnFileScanned(path string, comments int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scanned++
}

func (r *recordingProgress) OnProjectComplete(report *ProjectReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, report)
}
