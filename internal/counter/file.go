package counter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// LoadFile aggregates the counter log at path. Logs ending in .gz or .zst
// are decompressed on the fly.
func LoadFile(path string, log *zap.SugaredLogger) (table Table, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open counter log: %w", err)
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	r, closer, err := decompress(f, path)
	if err != nil {
		return nil, err
	}
	if closer != nil {
		defer multierr.AppendInvoke(&err, multierr.Invoke(closer))
	}

	table, skipped, err := aggregate(r)
	if err != nil {
		return nil, err
	}

	log.Debugf("counter log %s: %d nodes, %d lines ignored", path, len(table), skipped)
	return table, nil
}

func decompress(r io.Reader, path string) (io.Reader, func() error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open gzip counter log: %w", err)
		}
		return zr, zr.Close, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open zstd counter log: %w", err)
		}
		return zr, func() error {
			zr.Close()
			return nil
		}, nil
	default:
		return r, nil, nil
	}
}
