package ports

import (
	"crosstab/domain/assoc"
	"crosstab/domain/contingency"
	"crosstab/domain/run"
	"crosstab/domain/survey"
)

// PairSheet is one worksheet of the crosstables workbook: the total-view
// display matrix of a pair plus the verdict that drives its highlighting.
// Result is nil for pairs whose contingency table was empty.
type PairSheet struct {
	Pair   survey.Pair
	Table  *contingency.Table
	View   *contingency.View
	Result *assoc.Result
}

// WorkbookWriter writes the per-pair crosstables workbook
type WorkbookWriter interface {
	WriteWorkbook(path string, sheets []PairSheet) error
}

// SummaryWriter writes the consolidated summary workbook: ranked
// association rows plus the per-question profiles.
type SummaryWriter interface {
	WriteSummary(path string, ranked []assoc.Result, profiles []survey.Profile) error
}

// ReportWriter writes the per-dataset Markdown report and its HTML
// rendering
type ReportWriter interface {
	WriteReport(dir string, manifest *run.Manifest, ranked []assoc.Result, profiles []survey.Profile) (paths []string, err error)
}
