package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/25smoking/heatdot/internal/counter"
)

// Rewriter recolors the node declarations of a DOT graph by execution count.
type Rewriter struct {
	Counters counter.Table
	// Exempt reports nodes that keep their original line. Nil exempts nothing.
	Exempt func(nodeID, label string) bool
}

// Rewrite copies r to w one line at a time, replacing eligible node
// declarations with a heat-colored version. Lines that are not recolored are
// written byte for byte, line terminators included.
func (rw *Rewriter) Rewrite(w io.Writer, r io.Reader) (Stats, error) {
	var stats Stats

	maxCount := rw.Counters.Max()
	if maxCount < 1 {
		maxCount = 1
	}

	br := bufio.NewReader(r)
	bw := bufio.NewWriter(w)

	for {
		line, readErr := br.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return stats, fmt.Errorf("failed to read graph: %w", readErr)
		}
		if len(line) > 0 {
			stats.Lines++
			if _, err := bw.WriteString(rw.rewriteLine(line, maxCount, &stats)); err != nil {
				return stats, fmt.Errorf("failed to write graph: %w", err)
			}
		}
		if readErr != nil {
			break
		}
	}

	if err := bw.Flush(); err != nil {
		return stats, fmt.Errorf("failed to write graph: %w", err)
	}
	return stats, nil
}

func (rw *Rewriter) rewriteLine(line string, maxCount uint64, stats *Stats) string {
	decl, ok := ParseNodeDecl(line)
	if !ok {
		stats.PassedThrough++
		return line
	}
	stats.Candidates++

	if rw.Exempt != nil && rw.Exempt(decl.ID, decl.Label) {
		stats.Exempt++
		return line
	}

	stats.Recolored++
	return decl.Render(HeatColor(rw.Counters.Get(decl.ID), maxCount))
}
