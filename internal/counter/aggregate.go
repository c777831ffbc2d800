// Package counter aggregates per-node execution counters from an
// instrumentation log.
//
// The instrumented program writes one line per executed instruction:
//
//	<node id> '<opcode>' counter: <n>
//
// Every other line is ignored.
package counter

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var recordPattern = regexp.MustCompile(`^(\d+)\s+'.*?'\s+counter:\s+(\d+)`)

// Record is a single counter sample.
type Record struct {
	NodeID string
	Count  uint64
}

// Table maps a node identifier to the highest count observed for it.
type Table map[string]uint64

// Get returns the count for id, zero when the node never appeared in the log.
func (t Table) Get(id string) uint64 {
	return t[id]
}

// Max returns the largest count in the table, 0 when it is empty.
func (t Table) Max() uint64 {
	var m uint64
	for _, v := range t {
		if v > m {
			m = v
		}
	}
	return m
}

// observe keeps the high-water mark. Samples of one counter only grow, so
// the maximum is the final value.
func (t Table) observe(rec Record) {
	if cur, ok := t[rec.NodeID]; !ok || rec.Count > cur {
		t[rec.NodeID] = rec.Count
	}
}

// ParseLine extracts a counter record from a log line.
func ParseLine(line string) (Record, bool) {
	m := recordPattern.FindStringSubmatch(line)
	if m == nil {
		return Record{}, false
	}
	n, err := strconv.ParseUint(m[2], 10, 64)
	if err != nil {
		return Record{}, false
	}
	return Record{NodeID: m[1], Count: n}, true
}

// Aggregate reads r to the end and builds the counter table.
func Aggregate(r io.Reader) (Table, error) {
	table, _, err := aggregate(r)
	return table, err
}

func aggregate(r io.Reader) (Table, int, error) {
	table := make(Table)
	skipped := 0

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if rec, ok := ParseLine(line); ok {
				table.observe(rec)
			} else {
				skipped++
			}
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("failed to read counter log: %w", err)
		}
	}

	return table, skipped, nil
}
