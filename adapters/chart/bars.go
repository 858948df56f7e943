// Package chart renders the top-associations summary chart.
package chart

import (
	"fmt"
	"os"

	"crosstab/domain/assoc"
	"crosstab/domain/survey"
	"crosstab/internal/errors"

	chart "github.com/wcharczuk/go-chart/v2"
)

// TopAssociationsRenderer draws a bar chart of the strongest pairwise
// associations by Cramér's V.
type TopAssociationsRenderer struct{}

// NewTopAssociationsRenderer creates a bar chart renderer
func NewTopAssociationsRenderer() *TopAssociationsRenderer {
	return &TopAssociationsRenderer{}
}

// RenderTopAssociations charts the top significant pairs (all ranked pairs
// when none are significant). Results must already be ranked. When no pair
// has a defined effect size there is nothing to chart and no file is
// written.
func (r *TopAssociationsRenderer) RenderTopAssociations(path string, dataset string, ranked []assoc.Result, top int) error {
	candidates := assoc.Significant(ranked)
	if len(candidates) == 0 {
		candidates = ranked
	}

	var bars []chart.Value
	for _, res := range candidates {
		if !res.HasEffectSize() {
			continue
		}
		bars = append(bars, chart.Value{
			Value: res.CramersV,
			Label: survey.PairSlug(res.First, res.Second),
		})
		if len(bars) == top {
			break
		}
	}
	if len(bars) == 0 {
		return nil
	}

	graph := chart.BarChart{
		Title:      fmt.Sprintf("%s: top associations (Cramer's V)", dataset),
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 20, Right: 20, Bottom: 20}},
		Height:     512,
		Width:      widthFor(len(bars)),
		BarWidth:   80,
		XAxis:      chart.Style{TextRotationDegrees: 30},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: 1},
		},
		Bars: bars,
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.WriteError(path, err)
	}
	defer f.Close()

	if err := graph.Render(chart.PNG, f); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}

func widthFor(bars int) int {
	if w := 110 * bars; w > 640 {
		return w
	}
	return 640
}
