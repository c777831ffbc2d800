package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	log *zap.SugaredLogger

	// Command line flags
	configPath  string
	graphPath   string
	logPath     string
	outputPath  string
	summaryPath string
	metricsPath string
	debugMode   bool
	plainOutput bool
)

func init() {
	logger, _ := zap.NewProduction()
	log = logger.Sugar()
}

var rootCmd = &cobra.Command{
	Use:   "heatdot",
	Short: "heatdot - color a DOT graph by runtime execution counts",
	Long: `heatdot reads the execution counters written by an instrumented program
and paints every node of the program's DOT graph from green (cold) to red (hot).

With no flags it reads assets/graph.dot and assets/dynamic.log and writes
assets/colored_graph.dot.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogger(debugMode); err != nil {
			return err
		}
		return runColor(cmd)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "c", "", "config file (default config/heatdot.yaml, then built-in defaults)")
	flags.StringVarP(&graphPath, "graph", "g", "", "input DOT graph")
	flags.StringVarP(&logPath, "log", "l", "", "counter log (.gz and .zst are decompressed)")
	flags.StringVarP(&outputPath, "output", "o", "", "output DOT graph")
	flags.StringVar(&summaryPath, "summary", "", "write a run summary (.json or .csv)")
	flags.StringVar(&metricsPath, "metrics", "", "write Prometheus metrics to a textfile")
	flags.BoolVar(&debugMode, "debug", false, "debug logging")
	flags.BoolVar(&plainOutput, "plain", false, "no colors in console output")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "heatdot", version)
		},
	})
}

// setupLogger swaps in a development logger when debug output is wanted.
func setupLogger(debug bool) error {
	if !debug {
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	log.Sync()
	log = logger.Sugar()
	return nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("panic: %v", r)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		log.Sync()
		os.Exit(1)
	}
	log.Sync()
}
