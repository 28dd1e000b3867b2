package collector

// ProgressReporter provides callbacks for reporting collection progress.
// Implementations can display progress bars, log messages, or remain silent.
// OnFileScanned may be called from several goroutines when workers > 1.
type ProgressReporter interface {
	// OnProjectStart is called before the project tree is walked.
	OnProjectStart(name, dir string)

	// OnDiscoveryComplete is called with the number of source files found.
	OnDiscoveryComplete(files int)

	// OnFileScanned is called after each source file is scanned.
	OnFileScanned(path string, comments int)

	// OnProjectComplete is called after the report file is written.
	OnProjectComplete(report *ProjectReport)
}

// NoOpProgressReporter is a progress reporter that does nothing.
// Used when progress reporting is disabled (e.g., --quiet flag).
type NoOpProgressReporter struct{}

func (n *NoOpProgressReporter) OnProjectStart(name, dir string)         {}
func (n *NoOpProgressReporter) OnDiscoveryComplete(files int)           {}
func (n *NoOpProgressReporter) OnFileScanned(path string, comments int) {}
func (n *NoOpProgressReporter) OnProjectComplete(report *ProjectReport) {}
