// Package colorize runs the whole transform: aggregate the counter log, then
// stream the graph through the rewriter into the output file.
package colorize

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/25smoking/heatdot/internal/classify"
	"github.com/25smoking/heatdot/internal/core"
	"github.com/25smoking/heatdot/internal/counter"
	"github.com/25smoking/heatdot/internal/graph"
	"github.com/25smoking/heatdot/internal/metrics"
)

// Run colors cfg.GraphPath by the counters in cfg.LogPath and writes the
// result to cfg.OutputPath. The log is fully aggregated before the graph is
// opened. m may be nil.
func Run(ctx context.Context, cfg *core.RunConfig, log *zap.SugaredLogger, m *metrics.Registry) (*core.Summary, error) {
	start := time.Now()
	summary := &core.Summary{
		GraphPath:  cfg.GraphPath,
		LogPath:    cfg.LogPath,
		OutputPath: cfg.OutputPath,
	}

	var table counter.Table
	err := timed(m, "aggregate", func() error {
		return core.SafeRun(ctx, log, "aggregate", func(context.Context) error {
			var err error
			table, err = counter.LoadFile(cfg.LogPath, log)
			return err
		})
	})
	if err != nil {
		return nil, err
	}
	summary.Counters = len(table)
	summary.MaxCount = table.Max()
	if m != nil {
		m.RecordCounters(summary.Counters, summary.MaxCount)
	}

	err = timed(m, "rewrite", func() error {
		return core.SafeRun(ctx, log, "rewrite", func(context.Context) error {
			stats, err := rewriteFile(cfg.GraphPath, cfg.OutputPath, table)
			summary.Stats = stats
			return err
		})
	})
	if err != nil {
		return nil, err
	}

	summary.Elapsed = time.Since(start)
	if m != nil {
		m.RecordRewrite(summary.Stats)
		m.MarkSuccess(time.Now())
	}
	return summary, nil
}

func rewriteFile(graphPath, outputPath string, table counter.Table) (stats graph.Stats, err error) {
	in, err := os.Open(graphPath)
	if err != nil {
		return stats, fmt.Errorf("failed to open graph: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(in))

	out, err := os.Create(outputPath)
	if err != nil {
		return stats, fmt.Errorf("failed to create output: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(out))

	rw := &graph.Rewriter{
		Counters: table,
		Exempt:   classify.IsExempt,
	}
	return rw.Rewrite(out, in)
}

func timed(m *metrics.Registry, stage string, fn func() error) error {
	start := time.Now()
	err := fn()
	if m != nil && err == nil {
		m.RecordStage(stage, time.Since(start))
	}
	return err
}
