// Package console presents per-dataset outcomes on the terminal.
package console

import (
	"fmt"
	"math"
	"os"

	"crosstab/domain/assoc"
	"crosstab/domain/run"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

// Presenter prints colored dataset status lines and a table of the
// significant associations. Quiet mode suppresses everything but
// failures.
type Presenter struct {
	Quiet bool
}

// NewPresenter creates a console presenter
func NewPresenter(quiet bool) *Presenter {
	return &Presenter{Quiet: quiet}
}

// DatasetDone reports a successful dataset run
func (p *Presenter) DatasetDone(manifest *run.Manifest, significant []assoc.Result) {
	if p.Quiet {
		return
	}
	color.Green("✔ %s: %d respondents, %d pairs tested, %d significant (%d ms)",
		manifest.Dataset, manifest.Respondents, manifest.PairsTested,
		manifest.Significant, manifest.RuntimeMs)

	if len(significant) == 0 {
		color.Yellow("  no significant associations")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Question 1", "Question 2", "N", "V", "Strength", "p-adj"})
	for _, r := range significant {
		v := "n/a"
		if !math.IsNaN(r.CramersV) {
			v = fmt.Sprintf("%.3f", r.CramersV)
		}
		table.Append([]string{
			r.First, r.Second, fmt.Sprintf("%d", r.N), v,
			string(r.Strength), fmt.Sprintf("%.3g", r.AdjustedP),
		})
	}
	table.Render()
}

// DatasetFailed reports a failed dataset run
func (p *Presenter) DatasetFailed(dataset string, err error) {
	color.Red("✘ %s: %v", dataset, err)
}

// BatchDone summarizes the whole batch
func (p *Presenter) BatchDone(succeeded, failed int) {
	if p.Quiet && failed == 0 {
		return
	}
	if failed == 0 {
		color.Green("Done: %d dataset(s) analyzed", succeeded)
		return
	}
	color.Yellow("Done: %d dataset(s) analyzed, %d failed", succeeded, failed)
}
