// Package ui renders combogen's human-readable output.
package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/arthur-debert/combogen/pkg/output"
	"github.com/arthur-debert/combogen/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Summary describes the generated product for the closing lines.
type Summary struct {
	Label     string
	Values    int
	Positions int
	Total     int
}

// SummaryLines returns the two closing lines without styling.
func (s Summary) SummaryLines() (string, string) {
	generated := fmt.Sprintf("Generated %d combination blocks", s.Total)
	if s.Label != "" {
		generated = fmt.Sprintf("Generated %d %s combination blocks", s.Total, s.Label)
	}
	formula := fmt.Sprintf("Total combinations: %d^%d = %d", s.Values, s.Positions, s.Total)
	return generated, formula
}

// PrintReport writes one status line per destination followed by the summary.
func PrintReport(w io.Writer, report *output.Report, summary Summary) {
	success := styles.GetStyle("Success")
	failure := styles.GetStyle("Error")
	path := styles.GetStyle("FilePath")

	for _, res := range report.Results {
		if res.OK() {
			fmt.Fprintf(w, "%s %s\n", success.Render("✓ Saved to:"), path.Render(res.Path))
			continue
		}
		fmt.Fprintf(w, "%s %s: %v\n",
			failure.Render("✗ Error saving to"), path.Render(res.Destination), res.Err)
	}

	PrintSummary(w, summary)
}

// PrintSummary writes the block count and formula lines.
func PrintSummary(w io.Writer, summary Summary) {
	generated, formula := summary.SummaryLines()
	fmt.Fprintln(w, styles.GetStyle("Summary").Render(generated))
	fmt.Fprintln(w, styles.GetStyle("Muted").Render(formula))
}

// PrintPlan lists where a dry run would write, without touching the disk.
func PrintPlan(w io.Writer, paths []string, summary Summary) {
	info := styles.GetStyle("Info")
	for _, p := range paths {
		fmt.Fprintf(w, "%s %s\n", info.Render("• Would write:"), styles.GetStyle("FilePath").Render(p))
	}
	PrintSummary(w, summary)
}

// CombinationTable renders one row per combination, with a column per token.
func CombinationTable(tokens []string, rows [][]string) (string, error) {
	header := append([]string{"#"}, tokens...)
	data := pterm.TableData{header}
	for i, row := range rows {
		data = append(data, append([]string{strconv.Itoa(i + 1)}, row...))
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
}
