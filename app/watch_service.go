package app

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"crosstab/domain/assoc"
	"crosstab/internal"
	"crosstab/ports"

	"github.com/fsnotify/fsnotify"
)

// WatchService re-analyzes survey files as they are written into the
// input directory. Write events are de-duplicated by modification time so
// editors that fire several writes per save trigger one run, and runs for
// the same file are serialized so two never write the same output
// directory at once.
type WatchService struct {
	pipeline  *PipelineService
	presenter ports.Presenter
	logger    *internal.Logger

	mu      sync.Mutex
	lastMod map[string]time.Time
	running map[string]*sync.Mutex
}

// NewWatchService creates a watch service
func NewWatchService(pipeline *PipelineService, presenter ports.Presenter, logger *internal.Logger) *WatchService {
	return &WatchService{
		pipeline:  pipeline,
		presenter: presenter,
		logger:    logger,
		lastMod:   make(map[string]time.Time),
		running:   make(map[string]*sync.Mutex),
	}
}

// Watch blocks until the context is cancelled, running the pipeline for
// every survey file written into dir
func (s *WatchService) Watch(ctx context.Context, dir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}
	s.logger.Info("watching %s for survey files", dir)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !isSurveyFile(event.Name) {
				continue
			}
			if !s.shouldRun(event.Name) {
				continue
			}
			go s.runFile(ctx, event.Name)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("watcher error: %v", err)
		}
	}
}

// shouldRun de-duplicates bursts of write events per file
func (s *WatchService) shouldRun(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !info.ModTime().After(s.lastMod[path]) {
		return false
	}
	s.lastMod[path] = info.ModTime()
	return true
}

// pathLock returns the mutex serializing runs of one file
func (s *WatchService) pathLock(path string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.running[path]
	if !ok {
		lock = &sync.Mutex{}
		s.running[path] = lock
	}
	return lock
}

func (s *WatchService) runFile(ctx context.Context, path string) {
	lock := s.pathLock(path)
	lock.Lock()
	defer lock.Unlock()

	manifest, ranked, err := s.pipeline.AnalyzeFile(ctx, path)
	if err != nil {
		s.presenter.DatasetFailed(datasetName(path), err)
		return
	}
	s.presenter.DatasetDone(manifest, assoc.Significant(ranked))
}

func isSurveyFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".xlsx":
		return true
	}
	return false
}
