package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/25smoking/heatdot/internal/colorize"
	"github.com/25smoking/heatdot/internal/config"
	"github.com/25smoking/heatdot/internal/core"
	"github.com/25smoking/heatdot/internal/metrics"
	"github.com/25smoking/heatdot/internal/report"
)

// resolveConfig layers the command line flags over the config file.
func resolveConfig(settings *config.Settings) (*core.RunConfig, error) {
	if graphPath != "" {
		settings.Paths.Graph = graphPath
	}
	if logPath != "" {
		settings.Paths.Log = logPath
	}
	if outputPath != "" {
		settings.Paths.Output = outputPath
	}
	if summaryPath != "" {
		settings.Report.Summary = summaryPath
	}
	if metricsPath != "" {
		settings.Report.Metrics = metricsPath
	}
	settings.Normalize()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &core.RunConfig{
		GraphPath:   settings.Paths.Graph,
		LogPath:     settings.Paths.Log,
		OutputPath:  settings.Paths.Output,
		SummaryPath: settings.Report.Summary,
		MetricsPath: settings.Report.Metrics,
	}, nil
}

func runColor(cmd *cobra.Command) error {
	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(settings)
	if err != nil {
		return err
	}

	console := report.NewConsoleReporter(cmd.OutOrStdout(), plainOutput)
	console.PrintStageStart("counters", cfg.LogPath)
	console.PrintStageStart("graph", cfg.GraphPath)

	var m *metrics.Registry
	if cfg.MetricsPath != "" {
		m = metrics.NewRegistry()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	summary, err := colorize.Run(ctx, cfg, log, m)
	if err != nil {
		return err
	}

	core.LogSummary(log, summary)
	console.PrintSummary(summary)
	console.PrintLegend(summary.MaxCount)

	if cfg.SummaryPath != "" {
		if err := core.SaveSummary(summary, cfg.SummaryPath); err != nil {
			return err
		}
		log.Infof("summary written to %s", cfg.SummaryPath)
	}
	if m != nil {
		if err := m.WriteTextfile(cfg.MetricsPath); err != nil {
			return err
		}
		log.Infof("metrics written to %s", cfg.MetricsPath)
	}
	return nil
}
