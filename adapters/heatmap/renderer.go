// Package heatmap renders percentage-view heatmap images.
package heatmap

import (
	"fmt"

	"crosstab/domain/assoc"
	"crosstab/domain/contingency"
	"crosstab/domain/survey"
	"crosstab/internal/errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Renderer draws one percentage view of a pair as a PNG heatmap with the
// count+percent display string annotated in each cell.
type Renderer struct{}

// NewRenderer creates a heatmap renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// grid adapts a percentage matrix to the plotter heatmap interface. Row 0
// is drawn at the top to match the spreadsheet orientation.
type grid struct {
	view *contingency.View
}

func (g grid) Dims() (c, r int) { return len(g.view.ColLabels), len(g.view.RowLabels) }
func (g grid) X(c int) float64  { return float64(c) }
func (g grid) Y(r int) float64  { return float64(r) }
func (g grid) Z(c, r int) float64 {
	row := len(g.view.RowLabels) - 1 - r
	return g.view.Percents[row][c]
}

// RenderHeatmap draws the view to path. A nil result renders the
// placeholder title; the view itself is already the placeholder cell.
func (r *Renderer) RenderHeatmap(path string, pair survey.Pair, view *contingency.View, result *assoc.Result) error {
	p := plot.New()
	p.Title.Text = title(pair, result)
	p.Title.TextStyle.Font.Size = vg.Points(10)
	p.X.Tick.Label.Rotation = 0.6
	p.X.Tick.Label.XAlign = -1

	pal, err := brewer.GetPalette(brewer.TypeSequential, "Blues", 9)
	if err != nil {
		return errors.RenderError("heatmap palette", err)
	}
	hm := plotter.NewHeatMap(grid{view: view}, pal)
	hm.Min = 0
	if hm.Max <= hm.Min {
		hm.Max = hm.Min + 1
	}
	p.Add(hm)

	p.NominalX(view.ColLabels...)
	reversed := make([]string, len(view.RowLabels))
	for i, label := range view.RowLabels {
		reversed[len(view.RowLabels)-1-i] = label
	}
	p.NominalY(reversed...)

	if labels, err := cellLabels(view); err == nil {
		p.Add(labels)
	}

	width := vg.Length(maxInt(8, len(view.ColLabels)*2)) * vg.Inch / 2
	height := vg.Length(maxInt(6, len(view.RowLabels))) * vg.Inch / 2
	if err := p.Save(width, height, path); err != nil {
		return errors.RenderError(path, err)
	}
	return nil
}

// cellLabels places each display string at its cell center
func cellLabels(view *contingency.View) (*plotter.Labels, error) {
	rows, cols := len(view.RowLabels), len(view.ColLabels)
	xyl := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, rows*cols),
		Labels: make([]string, 0, rows*cols),
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			xyl.XYs = append(xyl.XYs, plotter.XY{X: float64(j), Y: float64(rows - 1 - i)})
			xyl.Labels = append(xyl.Labels, view.Display[i][j])
		}
	}
	labels, err := plotter.NewLabels(xyl)
	if err != nil {
		return nil, err
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = vg.Points(8)
		labels.TextStyle[i].XAlign = -0.5
		labels.TextStyle[i].YAlign = -0.5
	}
	return labels, nil
}

func title(pair survey.Pair, result *assoc.Result) string {
	if result == nil {
		return fmt.Sprintf("%s / %s\nNo data", pair.First, pair.Second)
	}
	significance := "No"
	if result.Significant {
		significance = "Yes"
	}
	v := "n/a"
	if result.HasEffectSize() {
		v = fmt.Sprintf("%.2f", result.CramersV)
	}
	return fmt.Sprintf("%s / %s\nN=%d | Cramer's V=%s (%s) | Chi2=%.1f, df=%d, p-adj=%.3g (significant: %s)",
		pair.First, pair.Second, result.N, v, result.Strength,
		result.ChiSquare, result.DegreesFreedom, result.AdjustedP, significance)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
