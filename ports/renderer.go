package ports

import (
	"crosstab/domain/assoc"
	"crosstab/domain/contingency"
	"crosstab/domain/survey"
)

// HeatmapRenderer draws one percentage view of a pair as a PNG. The
// result pointer is nil for pairs whose table was empty; renderers emit
// the placeholder image in that case.
type HeatmapRenderer interface {
	RenderHeatmap(path string, pair survey.Pair, view *contingency.View, result *assoc.Result) error
}

// ChartRenderer draws the top-associations bar chart for a dataset
type ChartRenderer interface {
	RenderTopAssociations(path string, dataset string, results []assoc.Result, top int) error
}
