// Package audit implements the advisory marker scan that runs after
// synchronization. It flags lines that disable a check and therefore need
// human review; findings never fail the run.
package audit

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/zerr"
)

// skipDirs are directories never scanned.
var skipDirs = map[string]bool{
	".git":         true,
	".direnv":      true,
	"node_modules": true,
}

// Scanner scans a tree for a marker substring.
type Scanner struct {
	logger ports.Logger
}

// NewScanner creates a new Scanner.
func NewScanner(logger ports.Logger) *Scanner {
	return &Scanner{logger: logger}
}

// Scan returns the sorted paths (relative to root) of text files containing
// marker. Binary files are skipped. An empty marker scans nothing.
func (s *Scanner) Scan(ctx context.Context, root, marker string) ([]string, error) {
	if marker == "" {
		return nil, nil
	}

	var candidates []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		candidates = append(candidates, path)
		return nil
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to walk target tree")
	}

	var (
		mu   sync.Mutex
		hits []string
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	needle := []byte(marker)
	for _, path := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(path) //nolint:gosec // paths come from walking the target tree
			if err != nil {
				return zerr.Wrap(err, "failed to read file during audit")
			}
			// Null byte means binary, not line-oriented text.
			if bytes.IndexByte(content, 0) >= 0 {
				return nil
			}
			if !bytes.Contains(content, needle) {
				return nil
			}
			rel, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			mu.Lock()
			hits = append(hits, rel)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(hits)
	for _, hit := range hits {
		s.logger.Warn("marker " + marker + " found in " + hit + ", needs review")
	}
	if len(hits) == 0 {
		s.logger.Info("no " + marker + " markers found")
	}
	return hits, nil
}
