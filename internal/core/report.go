package core

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// SaveSummary writes the summary to path, as CSV when the extension is .csv
// and as indented JSON otherwise.
func SaveSummary(s *Summary, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return saveCSV(s, path)
	default:
		return saveJSON(s, path)
	}
}

func saveJSON(s *Summary, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func saveCSV(s *Summary, filename string) (err error) {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	w := csv.NewWriter(f)
	w.Write([]string{"Graph", "Log", "Output", "Counters", "MaxCount", "Lines", "Candidates", "Recolored", "Exempt", "PassedThrough"})
	w.Write([]string{
		s.GraphPath, s.LogPath, s.OutputPath,
		strconv.Itoa(s.Counters),
		strconv.FormatUint(s.MaxCount, 10),
		strconv.Itoa(s.Stats.Lines),
		strconv.Itoa(s.Stats.Candidates),
		strconv.Itoa(s.Stats.Recolored),
		strconv.Itoa(s.Stats.Exempt),
		strconv.Itoa(s.Stats.PassedThrough),
	})
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// LogSummary writes the summary to the structured log.
func LogSummary(log *zap.SugaredLogger, s *Summary) {
	log.Infow("graph colored",
		"graph", s.GraphPath,
		"log", s.LogPath,
		"output", s.OutputPath,
		"counters", s.Counters,
		"max_count", s.MaxCount,
		"recolored", s.Stats.Recolored,
		"exempt", s.Stats.Exempt,
		"passed_through", s.Stats.PassedThrough,
		"elapsed", s.Elapsed,
	)
	if s.Counters == 0 {
		log.Warnf("counter log %s has no counters, every node is colored cold", s.LogPath)
	}
}
