package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mvp-joe/todocol/internal/collector"
)

// CLIProgressReporter implements progress reporting with progress bars.
type CLIProgressReporter struct {
	out     io.Writer
	project string
	fileBar *progressbar.ProgressBar
}

// NewCLIProgressReporter creates a reporter that draws on out.
func NewCLIProgressReporter(out io.Writer) *CLIProgressReporter {
	return &CLIProgressReporter{out: out}
}

func (c *CLIProgressReporter) OnProjectStart(name, dir string) {
	c.project = name
}

func (c *CLIProgressReporter) OnDiscoveryComplete(files int) {
	if c.fileBar != nil {
		c.fileBar.Finish()
	}

	c.fileBar = progressbar.NewOptions(files,
		progressbar.OptionSetWriter(c.out),
		progressbar.OptionSetDescription(fmt.Sprintf("Scanning %s", c.project)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("files/s"),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

// OnFileScanned may run on several goroutines; ProgressBar.Add locks.
func (c *CLIProgressReporter) OnFileScanned(path string, comments int) {
	if c.fileBar != nil {
		c.fileBar.Add(1)
	}
}

func (c *CLIProgressReporter) OnProjectComplete(report *collector.ProjectReport) {
	if c.fileBar != nil {
		c.fileBar.Finish()
		c.fileBar = nil
	}
}
