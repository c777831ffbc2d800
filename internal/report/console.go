package report

import (
	"fmt"
	"io"
	"math/bits"
	"strings"

	"github.com/25smoking/heatdot/internal/core"
	"github.com/25smoking/heatdot/internal/graph"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorBold   = "\033[1m"
	ColorDim    = "\033[2m"
)

const (
	IconSuccess = "✓"
	IconWarning = "⚠"
	IconStage   = "▶"
)

// legendSteps is the number of swatches in the heat legend.
const legendSteps = 11

type ConsoleReporter struct {
	w     io.Writer
	plain bool
}

// NewConsoleReporter prints to w. With plain set no escape codes are written.
func NewConsoleReporter(w io.Writer, plain bool) *ConsoleReporter {
	return &ConsoleReporter{
		w:     w,
		plain: plain,
	}
}

func (r *ConsoleReporter) c(code string) string {
	if r.plain {
		return ""
	}
	return code
}

func (r *ConsoleReporter) PrintSection(title string) {
	line := strings.Repeat("─", 65)
	fmt.Fprintf(r.w, "\n%s┌%s┐%s\n", r.c(ColorBlue), line, r.c(ColorReset))
	fmt.Fprintf(r.w, "%s│ %s%-63s%s │%s\n", r.c(ColorBlue), r.c(ColorBold+ColorWhite), title, r.c(ColorReset+ColorBlue), r.c(ColorReset))
	fmt.Fprintf(r.w, "%s└%s┘%s\n\n", r.c(ColorBlue), line, r.c(ColorReset))
}

func (r *ConsoleReporter) PrintStageStart(stage, path string) {
	fmt.Fprintf(r.w, "%s %s[%s]%s %s\n", IconStage, r.c(ColorCyan), stage, r.c(ColorReset), path)
}

func (r *ConsoleReporter) PrintSummary(s *core.Summary) {
	r.PrintSection("Summary")
	fmt.Fprintf(r.w, "  %sCounter log:%s %s (%d nodes, max count %d)\n",
		r.c(ColorDim), r.c(ColorReset), s.LogPath, s.Counters, s.MaxCount)
	fmt.Fprintf(r.w, "  %sGraph:%s       %s (%d lines)\n",
		r.c(ColorDim), r.c(ColorReset), s.GraphPath, s.Stats.Lines)
	fmt.Fprintf(r.w, "  %sOutput:%s      %s\n", r.c(ColorDim), r.c(ColorReset), s.OutputPath)
	fmt.Fprintf(r.w, "  %sRecolored:%s   %s%d%s  %sExempt:%s %d  %sUnchanged:%s %d\n",
		r.c(ColorDim), r.c(ColorReset), r.c(ColorGreen), s.Stats.Recolored, r.c(ColorReset),
		r.c(ColorDim), r.c(ColorReset), s.Stats.Exempt,
		r.c(ColorDim), r.c(ColorReset), s.Stats.PassedThrough)
	fmt.Fprintf(r.w, "  %sElapsed:%s     %.3fs\n", r.c(ColorDim), r.c(ColorReset), s.Elapsed.Seconds())

	if s.Counters == 0 {
		fmt.Fprintf(r.w, "\n%s %sno counters found, every node is colored cold%s\n",
			IconWarning, r.c(ColorYellow), r.c(ColorReset))
	} else {
		fmt.Fprintf(r.w, "\n%s %sdone%s\n", IconSuccess, r.c(ColorGreen), r.c(ColorReset))
	}
}

// PrintLegend prints the gradient used for maxCount, cold to hot.
func (r *ConsoleReporter) PrintLegend(maxCount uint64) {
	if maxCount < 1 {
		maxCount = 1
	}
	fmt.Fprintf(r.w, "  %sLegend:%s ", r.c(ColorDim), r.c(ColorReset))
	for i := 0; i < legendSteps; i++ {
		count := legendCount(maxCount, i)
		red, green := graph.HeatChannels(count, maxCount)
		if r.plain {
			fmt.Fprintf(r.w, "%s ", graph.HeatColor(count, maxCount))
			continue
		}
		fmt.Fprintf(r.w, "\033[48;2;%d;%d;0m  %s", red, green, ColorReset)
	}
	fmt.Fprintf(r.w, " 0 .. %d\n", maxCount)
}

// legendCount returns maxCount*step/(legendSteps-1) without overflowing.
func legendCount(maxCount uint64, step int) uint64 {
	hi, lo := bits.Mul64(maxCount, uint64(step))
	q, _ := bits.Div64(hi, lo, uint64(legendSteps-1))
	return q
}
