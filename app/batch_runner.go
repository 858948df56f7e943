package app

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"crosstab/domain/assoc"
	"crosstab/domain/run"
	"crosstab/internal"
	"crosstab/internal/errors"
	"crosstab/ports"

	"golang.org/x/sync/errgroup"
)

// BatchRunner analyzes every survey file in the input directory. Datasets
// are independent, so they run in parallel up to the worker limit; a
// failure in one never cancels its siblings.
type BatchRunner struct {
	pipeline  *PipelineService
	presenter ports.Presenter
	workers   int
	logger    *internal.Logger
}

// BatchResult summarizes one batch run
type BatchResult struct {
	Succeeded int
	Failed    int
	Failures  map[string]error
}

// NewBatchRunner creates a batch runner
func NewBatchRunner(pipeline *PipelineService, presenter ports.Presenter, workers int, logger *internal.Logger) *BatchRunner {
	return &BatchRunner{
		pipeline:  pipeline,
		presenter: presenter,
		workers:   workers,
		logger:    logger,
	}
}

// ListInputFiles returns the survey files of a directory in sorted order
// for deterministic batch runs
func ListInputFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.ReadError(dir, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".csv", ".xlsx":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// Run analyzes every survey file under inputDir. The returned error is
// non-nil only when the batch itself could not start or every dataset
// failed.
func (r *BatchRunner) Run(ctx context.Context, inputDir string) (*BatchResult, error) {
	files, err := ListInputFiles(inputDir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.InvalidInput("no survey files (*.csv, *.xlsx) found in " + inputDir)
	}
	r.logger.Info("batch start: %d file(s) in %s", len(files), inputDir)

	result := &BatchResult{Failures: make(map[string]error)}
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for _, file := range files {
		file := file
		g.Go(func() error {
			manifest, ranked, err := r.RunOne(gctx, file)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Failed++
				result.Failures[file] = err
				r.presenter.DatasetFailed(datasetName(file), err)
				// per-dataset isolation: never propagate into the group
				return nil
			}
			result.Succeeded++
			r.presenter.DatasetDone(manifest, assoc.Significant(ranked))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return result, err
	}

	r.presenter.BatchDone(result.Succeeded, result.Failed)
	if result.Succeeded == 0 {
		return result, errors.InternalError("all datasets failed")
	}
	return result, nil
}

// RunOne analyzes a single survey file
func (r *BatchRunner) RunOne(ctx context.Context, path string) (*run.Manifest, []assoc.Result, error) {
	return r.pipeline.AnalyzeFile(ctx, path)
}

func datasetName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
