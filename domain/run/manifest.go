// Package run captures the audit manifest written after each dataset run.
package run

import (
	"encoding/json"
	"os"

	"crosstab/domain/core"
)

// Artifact is one output file recorded in the manifest inventory
type Artifact struct {
	Kind string `json:"kind"`
	Path string `json:"path"`
}

// Manifest is the audit record for one completed dataset run. The input
// fingerprint plus deterministic statistics make reruns comparable.
type Manifest struct {
	RunID            core.RunID     `json:"run_id"`
	Dataset          string         `json:"dataset"`
	SourcePath       string         `json:"source_path"`
	InputFingerprint core.Hash      `json:"input_fingerprint"`
	Respondents      int            `json:"respondents"`
	Questions        int            `json:"questions"`
	Pairs            int            `json:"pairs"`
	PairsTested      int            `json:"pairs_tested"`
	PairsSkipped     int            `json:"pairs_skipped"`
	Significant      int            `json:"significant"`
	Artifacts        []Artifact     `json:"artifacts"`
	StartedAt        core.Timestamp `json:"started_at"`
	FinishedAt       core.Timestamp `json:"finished_at"`
	RuntimeMs        int64          `json:"runtime_ms"`
}

// NewManifest starts a manifest for a dataset run
func NewManifest(dataset, sourcePath string, fingerprint core.Hash) *Manifest {
	return &Manifest{
		RunID:            core.RunID(core.NewID()),
		Dataset:          dataset,
		SourcePath:       sourcePath,
		InputFingerprint: fingerprint,
		StartedAt:        core.Now(),
	}
}

// AddArtifact records an emitted output file
func (m *Manifest) AddArtifact(kind, path string) {
	m.Artifacts = append(m.Artifacts, Artifact{Kind: kind, Path: path})
}

// Finish stamps the completion time and runtime
func (m *Manifest) Finish() {
	m.FinishedAt = core.Now()
	m.RuntimeMs = m.FinishedAt.Time().Sub(m.StartedAt.Time()).Milliseconds()
}

// WriteFile persists the manifest as indented JSON
func (m *Manifest) WriteFile(path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
