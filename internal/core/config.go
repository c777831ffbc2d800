package core

import (
	"time"

	"github.com/25smoking/heatdot/internal/graph"
)

// RunConfig holds the resolved settings of one coloring run.
type RunConfig struct {
	GraphPath   string
	LogPath     string
	OutputPath  string
	SummaryPath string // optional run summary, .json or .csv
	MetricsPath string // optional Prometheus textfile
}

// Summary describes a finished run.
type Summary struct {
	GraphPath  string        `json:"graph"`
	LogPath    string        `json:"log"`
	OutputPath string        `json:"output"`
	Counters   int           `json:"counters"`
	MaxCount   uint64        `json:"max_count"`
	Stats      graph.Stats   `json:"stats"`
	Elapsed    time.Duration `json:"elapsed_ns"`
}
