package app

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"crosstab/adapters/loader"
	"crosstab/adapters/stats"
	"crosstab/domain/assoc"
	"crosstab/domain/run"
	"crosstab/internal"
	"crosstab/internal/config"
	"crosstab/internal/testkit"
)

type recordingPresenter struct {
	mu     sync.Mutex
	done   []string
	failed []string
}

func (p *recordingPresenter) DatasetDone(manifest *run.Manifest, significant []assoc.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.done = append(p.done, manifest.Dataset)
}

func (p *recordingPresenter) DatasetFailed(dataset string, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed = append(p.failed, dataset)
}

func (p *recordingPresenter) BatchDone(succeeded, failed int) {}

func batchService(cfg *config.Config) *PipelineService {
	return NewPipelineService(
		loader.NewDatasetReader(),
		stats.NewChiSquareEngine(),
		stats.NewBHCorrector(),
		stats.NewQuestionProfiler(),
		&fakeHeatmaps{},
		&fakeCharts{},
		&fakeWorkbooks{},
		&fakeSummaries{},
		&fakeReports{},
		cfg,
		internal.NewLogger(internal.LogLevelError),
	)
}

func writeSurvey(t *testing.T, dir, name string, rows int) {
	t.Helper()
	g := testkit.NewGenerator(uint64(len(name)) + 1)
	a := g.Categorical(rows, []string{"Yes", "No"})
	b := g.Categorical(rows, []string{"X", "Y", "Z"})
	data := make([][]string, rows)
	for i := 0; i < rows; i++ {
		data[i] = []string{a[i], b[i]}
	}
	if _, err := testkit.WriteCSV(dir, name, []string{"Q1", "Q2"}, data); err != nil {
		t.Fatal(err)
	}
}

func TestBatchRunAnalyzesAllFiles(t *testing.T) {
	cfg := &config.Config{
		InputDir:      t.TempDir(),
		OutputDir:     t.TempDir(),
		Alpha:         0.05,
		FallbackLabel: "Sem resposta",
		Workers:       2,
		TopPairs:      10,
	}
	writeSurvey(t, cfg.InputDir, "survey_a", 40)
	writeSurvey(t, cfg.InputDir, "survey_b", 60)

	presenter := &recordingPresenter{}
	runner := NewBatchRunner(batchService(cfg), presenter, cfg.Workers, internal.NewLogger(internal.LogLevelError))

	result, err := runner.Run(context.Background(), cfg.InputDir)
	if err != nil {
		t.Fatal(err)
	}
	if result.Succeeded != 2 || result.Failed != 0 {
		t.Errorf("expected 2 successes, got %+v", result)
	}
	if len(presenter.done) != 2 {
		t.Errorf("expected 2 completed datasets, got %v", presenter.done)
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	cfg := &config.Config{
		InputDir:      t.TempDir(),
		OutputDir:     t.TempDir(),
		Alpha:         0.05,
		FallbackLabel: "Sem resposta",
		Workers:       1,
		TopPairs:      10,
	}
	writeSurvey(t, cfg.InputDir, "good", 40)
	// header-only file: INVALID_INPUT for this dataset only
	if _, err := testkit.WriteCSV(cfg.InputDir, "broken", []string{"Q1", "Q2"}, nil); err != nil {
		t.Fatal(err)
	}

	presenter := &recordingPresenter{}
	runner := NewBatchRunner(batchService(cfg), presenter, cfg.Workers, internal.NewLogger(internal.LogLevelError))

	result, err := runner.Run(context.Background(), cfg.InputDir)
	if err != nil {
		t.Fatalf("one failing dataset must not fail the batch: %v", err)
	}
	if result.Succeeded != 1 || result.Failed != 1 {
		t.Errorf("expected 1 success and 1 failure, got %+v", result)
	}
	if len(presenter.failed) != 1 || presenter.failed[0] != "broken" {
		t.Errorf("expected the broken dataset to be reported, got %v", presenter.failed)
	}
}

func TestBatchEmptyDirectory(t *testing.T) {
	cfg := &config.Config{
		InputDir:      t.TempDir(),
		OutputDir:     t.TempDir(),
		Alpha:         0.05,
		FallbackLabel: "Sem resposta",
		Workers:       1,
		TopPairs:      10,
	}
	runner := NewBatchRunner(batchService(cfg), &recordingPresenter{}, 1, internal.NewLogger(internal.LogLevelError))

	if _, err := runner.Run(context.Background(), cfg.InputDir); err == nil {
		t.Fatal("expected an error for a directory without survey files")
	}
}

func TestListInputFilesSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	writeSurvey(t, dir, "b_second", 10)
	writeSurvey(t, dir, "a_first", 10)
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644); err != nil {
		t.Fatal(err)
	}

	files, err := ListInputFiles(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 survey files, got %d", len(files))
	}
	if datasetName(files[0]) != "a_first" {
		t.Errorf("files must be sorted, got %v", files)
	}
}
