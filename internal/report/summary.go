// Package report describes a finished simulation run.
package report

import (
	"io"
	"time"

	"github.com/google/uuid"

	"readsim/core/errprofile"
	"readsim/internal/jsonutil"
	"readsim/internal/pipeline"
	"readsim/internal/version"
)

// Summary is written as JSON when --summary is given.
type Summary struct {
	RunID    string    `json:"run_id"`
	Version  string    `json:"version"`
	Started  time.Time `json:"started"`
	Finished time.Time `json:"finished"`

	Seed     int64  `json:"seed"`
	Mode     string `json:"mode"`
	Sampling string `json:"sampling"`
	Format   string `json:"format"`

	Input     string `json:"input"`
	Reference string `json:"reference"`
	Alignment string `json:"alignment,omitempty"`
	Output    string `json:"output"`

	ReferenceLength int                 `json:"reference_length"`
	Profile         *errprofile.Profile `json:"profile,omitempty"`
	ProfileCounts   *errprofile.Counts  `json:"profile_counts,omitempty"`
	ProfileCached   bool                `json:"profile_cached,omitempty"`

	Stats        pipeline.Stats `json:"stats"`
	OutputBytes  int64          `json:"output_bytes"`
	OutputBLAKE3 string         `json:"output_blake3"`
}

// NewSummary starts a summary with a fresh run id.
func NewSummary(now time.Time) *Summary {
	return &Summary{RunID: uuid.NewString(), Version: version.Version, Started: now}
}

// Write stores the summary at path ("-" for stdout).
func (s *Summary) Write(path string, stdout io.Writer) error {
	return jsonutil.WriteFile(path, stdout, s)
}
