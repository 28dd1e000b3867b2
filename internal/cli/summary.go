package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/mvp-joe/todocol/internal/collector"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	dimColor  = color.New(color.Faint)
)

// printProjectSummary prints one line per written report.
func printProjectSummary(w io.Writer, rep *collector.ProjectReport) {
	okColor.Fprint(w, "✓ ")
	fmt.Fprintf(w, "%s: %s comments in %s files → %s",
		rep.Name,
		formatNumber(len(rep.Comments)),
		formatNumber(rep.FilesScanned),
		rep.OutputPath)
	if rep.FileErrors > 0 {
		failColor.Fprintf(w, " (%d unreadable)", rep.FileErrors)
	}
	dimColor.Fprintf(w, " %.2fs\n", rep.Duration.Seconds())
}

// printWorkspaceSummary prints every project and failure of a workspace run.
func printWorkspaceSummary(w io.Writer, result *collector.WorkspaceResult) {
	for _, rep := range result.Projects {
		printProjectSummary(w, rep)
	}
	for _, failure := range result.Failures {
		failColor.Fprint(w, "✗ ")
		fmt.Fprintf(w, "%s: %v\n", failure.Dir, failure.Err)
	}

	total := 0
	for _, rep := range result.Projects {
		total += len(rep.Comments)
	}
	fmt.Fprintf(w, "%s projects, %s comments", formatNumber(len(result.Projects)), formatNumber(total))
	if len(result.Failures) > 0 {
		failColor.Fprintf(w, ", %d failed", len(result.Failures))
	}
	fmt.Fprintln(w)
}

// formatNumber adds thousands separators.
func formatNumber(n int) string {
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}

	str := fmt.Sprintf("%d", n)
	var result string
	for i, c := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result += ","
		}
		result += string(c)
	}
	return result
}
