// Package app wires the analysis pipeline: the per-dataset two-pass
// orchestrator, the batch runner, and the watch service.
package app

import (
	"context"
	"math"
	"os"
	"path/filepath"

	"crosstab/domain/assoc"
	"crosstab/domain/contingency"
	"crosstab/domain/core"
	"crosstab/domain/run"
	"crosstab/domain/survey"
	"crosstab/internal"
	"crosstab/internal/config"
	"crosstab/internal/errors"
	"crosstab/ports"
)

// PairOutcome is the per-pair output of the statistics passes. Result is
// nil for pairs whose contingency table was empty; such pairs still get
// placeholder artifacts but never a summary row.
type PairOutcome struct {
	Pair   survey.Pair
	Table  *contingency.Table
	Result *assoc.Result
}

// PipelineService runs the full analysis for one dataset: both statistics
// passes around the batch correction barrier, then artifact emission.
type PipelineService struct {
	reader    ports.DatasetReader
	engine    ports.AssociationEngine
	corrector ports.Corrector
	profiler  ports.Profiler
	heatmaps  ports.HeatmapRenderer
	charts    ports.ChartRenderer
	workbooks ports.WorkbookWriter
	summaries ports.SummaryWriter
	reports   ports.ReportWriter
	cfg       *config.Config
	logger    *internal.Logger
}

// NewPipelineService creates a pipeline service
func NewPipelineService(
	reader ports.DatasetReader,
	engine ports.AssociationEngine,
	corrector ports.Corrector,
	profiler ports.Profiler,
	heatmaps ports.HeatmapRenderer,
	charts ports.ChartRenderer,
	workbooks ports.WorkbookWriter,
	summaries ports.SummaryWriter,
	reports ports.ReportWriter,
	cfg *config.Config,
	logger *internal.Logger,
) *PipelineService {
	return &PipelineService{
		reader:    reader,
		engine:    engine,
		corrector: corrector,
		profiler:  profiler,
		heatmaps:  heatmaps,
		charts:    charts,
		workbooks: workbooks,
		summaries: summaries,
		reports:   reports,
		cfg:       cfg,
		logger:    logger,
	}
}

// Analyze runs the statistics passes on an in-memory dataset. PASS1 builds
// every contingency table and collects raw p-values over one materialized
// pair list; the Benjamini-Hochberg correction then sees the whole family
// at once; PASS2 revisits the same list in the same order, zipping the
// adjusted values back by position and finalizing each verdict.
func (s *PipelineService) Analyze(dataset *survey.Dataset) []PairOutcome {
	pairs := dataset.Pairs()
	outcomes := make([]PairOutcome, len(pairs))

	// PASS1: contingency tables and raw p-values
	type testedPair struct {
		index int
		test  ports.TestResult
	}
	var tested []testedPair
	var rawP []float64
	for i, pair := range pairs {
		table := contingency.Build(dataset.Question(pair.First).Values, dataset.Question(pair.Second).Values)
		outcomes[i] = PairOutcome{Pair: pair, Table: table}
		if table.IsEmpty() {
			s.logger.Debug("skipping empty pair %s / %s", pair.First, pair.Second)
			continue
		}
		test, ok := s.engine.ChiSquare(table)
		if !ok {
			// testable shape but degenerate (single category or zero
			// total): still shown, never aggregated
			test = ports.TestResult{
				ChiSquare:      0,
				DegreesFreedom: 0,
				PValue:         math.NaN(),
				N:              table.Total(),
			}
		}
		tested = append(tested, testedPair{index: i, test: test})
		if !math.IsNaN(test.PValue) {
			rawP = append(rawP, test.PValue)
		}
	}

	// correction barrier: every raw p-value exists before any adjusted one
	adjusted := s.corrector.Adjust(rawP)

	// PASS2: zip adjusted values back and finalize verdicts
	adjIdx := 0
	for _, tp := range tested {
		table := outcomes[tp.index].Table
		pair := outcomes[tp.index].Pair

		adjustedP := math.NaN()
		if !math.IsNaN(tp.test.PValue) {
			adjustedP = adjusted[adjIdx]
			adjIdx++
		}

		rows, cols := table.Rows(), table.Cols()
		categories := rows
		if cols < categories {
			categories = cols
		}
		v := assoc.CramersV(tp.test.ChiSquare, tp.test.N, rows, cols)
		result := &assoc.Result{
			First:          pair.First,
			Second:         pair.Second,
			N:              tp.test.N,
			ChiSquare:      tp.test.ChiSquare,
			DegreesFreedom: tp.test.DegreesFreedom,
			RawP:           tp.test.PValue,
			AdjustedP:      adjustedP,
			CramersV:       v,
			Strength:       assoc.Classify(v, categories),
			Significant:    !math.IsNaN(adjustedP) && adjustedP < s.cfg.Alpha,
			Recommendation: assoc.Recommend(adjustedP, v, tp.test.N, rows, cols, s.cfg.Alpha),
		}
		outcomes[tp.index].Result = result
	}

	return outcomes
}

// AnalyzeFile runs the whole pipeline for one survey file: load,
// statistics, artifact emission, manifest. Failures abort only this
// dataset.
func (s *PipelineService) AnalyzeFile(ctx context.Context, path string) (*run.Manifest, []assoc.Result, error) {
	fingerprint, err := core.HashFile(path)
	if err != nil {
		return nil, nil, errors.ReadError(path, err)
	}

	dataset, err := s.reader.Read(ctx, path, s.cfg.FallbackLabel)
	if err != nil {
		return nil, nil, err
	}
	s.logger.Info("analyzing %s (%d respondents, %d questions)", dataset.Name, dataset.Rows, len(dataset.Questions))

	manifest := run.NewManifest(dataset.Name, path, fingerprint)
	manifest.Respondents = dataset.Rows
	manifest.Questions = len(dataset.Questions)

	outcomes := s.Analyze(dataset)
	manifest.Pairs = len(outcomes)

	var results []assoc.Result
	for _, o := range outcomes {
		if o.Result != nil {
			results = append(results, *o.Result)
			manifest.PairsTested++
		} else {
			manifest.PairsSkipped++
		}
	}
	ranked := assoc.Rank(results)
	significant := assoc.Significant(ranked)
	manifest.Significant = len(significant)

	if err := s.emitArtifacts(ctx, dataset, outcomes, ranked, manifest); err != nil {
		return nil, nil, err
	}

	manifest.Finish()
	manifestPath := filepath.Join(s.datasetDir(dataset.Name), "run_manifest.json")
	if err := manifest.WriteFile(manifestPath); err != nil {
		return nil, nil, errors.WriteError(manifestPath, err)
	}

	s.logger.Info("finished %s: %d pairs tested, %d significant (%d ms)",
		dataset.Name, manifest.PairsTested, manifest.Significant, manifest.RuntimeMs)
	return manifest, ranked, nil
}

// emitArtifacts writes every output of one dataset run into its output
// directory
func (s *PipelineService) emitArtifacts(ctx context.Context, dataset *survey.Dataset, outcomes []PairOutcome, ranked []assoc.Result, manifest *run.Manifest) error {
	dir := s.datasetDir(dataset.Name)
	viewDirs := make(map[contingency.ViewKind]string, len(contingency.ViewKinds))
	for _, kind := range contingency.ViewKinds {
		sub := filepath.Join(dir, "heatmaps_"+string(kind))
		if err := os.MkdirAll(sub, 0755); err != nil {
			return errors.WriteError(sub, err)
		}
		viewDirs[kind] = sub
	}

	// pairs sharing a truncated slug get distinct image names, mirroring
	// the workbook's sheet naming
	usedSlugs := make(map[string]bool)
	sheets := make([]ports.PairSheet, 0, len(outcomes))
	for _, o := range outcomes {
		if err := ctx.Err(); err != nil {
			return err
		}
		slug := survey.UniqueName(o.Pair.Slug(), usedSlugs)
		for _, kind := range contingency.ViewKinds {
			view := contingency.ViewOrPlaceholder(o.Table, kind)
			imgPath := filepath.Join(viewDirs[kind], slug+".png")
			if err := s.heatmaps.RenderHeatmap(imgPath, o.Pair, view, o.Result); err != nil {
				return err
			}
			if kind == contingency.ViewTotal {
				sheets = append(sheets, ports.PairSheet{
					Pair:   o.Pair,
					Table:  o.Table,
					View:   view,
					Result: o.Result,
				})
			}
		}
	}
	manifest.AddArtifact("heatmaps", dir)

	workbookPath := filepath.Join(dir, "crosstables.xlsx")
	if err := s.workbooks.WriteWorkbook(workbookPath, sheets); err != nil {
		return err
	}
	manifest.AddArtifact("crosstables", workbookPath)

	profiles := s.profiler.Profile(dataset)
	summaryPath := filepath.Join(dir, "summary.xlsx")
	if err := s.summaries.WriteSummary(summaryPath, ranked, profiles); err != nil {
		return err
	}
	manifest.AddArtifact("summary", summaryPath)

	if hasChartable(ranked) {
		chartPath := filepath.Join(dir, "top_associations.png")
		if err := s.charts.RenderTopAssociations(chartPath, dataset.Name, ranked, s.cfg.TopPairs); err != nil {
			return err
		}
		manifest.AddArtifact("top_associations", chartPath)
	}

	reportPaths, err := s.reports.WriteReport(dir, manifest, ranked, profiles)
	if err != nil {
		return err
	}
	for _, p := range reportPaths {
		manifest.AddArtifact("report", p)
	}
	return nil
}

func (s *PipelineService) datasetDir(name string) string {
	return filepath.Join(s.cfg.OutputDir, name)
}

// hasChartable reports whether any ranked result has a defined effect size
// to chart. Datasets where every pair is degenerate still complete; they
// just have no top-associations chart.
func hasChartable(ranked []assoc.Result) bool {
	for _, r := range ranked {
		if r.HasEffectSize() {
			return true
		}
	}
	return false
}
