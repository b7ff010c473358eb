package syncer

import (
	"context"
	"path/filepath"
	"strings"

	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/zerr"
)

// mergeIgnores appends deduplicated lines into each accumulator file. A line
// already present verbatim in the destination is never appended again, which
// is what makes repeated runs idempotent.
func (s *Syncer) mergeIgnores(ctx context.Context, cfg domain.RunConfig, merges []domain.IgnoreMerge) ([]domain.Result, error) {
	var results []domain.Result
	for _, merge := range merges {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "context cancelled")
		}
		merged, err := s.mergeOne(cfg, merge)
		if err != nil {
			return nil, err
		}
		results = append(results, merged...)
	}
	return results, nil
}

func (s *Syncer) mergeOne(cfg domain.RunConfig, merge domain.IgnoreMerge) ([]domain.Result, error) {
	src := filepath.Join(cfg.TemplateRoot, merge.Source)
	dst := filepath.Join(cfg.TargetRoot, merge.Dest)

	srcExists, err := s.probe.Exists(src)
	if err != nil {
		return nil, err
	}
	if !srcExists {
		s.logger.Warn("ignore line list missing, skipping " + merge.Source)
		return []domain.Result{{
			Task:    domain.SyncTask{Source: merge.Source, Dest: merge.Dest, Category: domain.CategoryIgnoreAppend},
			Outcome: domain.OutcomeSkippedMissingSource,
		}}, nil
	}

	srcLines, err := s.probe.ReadLines(src)
	if err != nil {
		return nil, err
	}

	if err := s.ops.EnsureFile(dst); err != nil {
		return nil, err
	}

	destLines, err := s.probe.ReadLines(dst)
	if err != nil {
		return nil, err
	}
	present := make(map[string]bool, len(destLines))
	for _, line := range destLines {
		present[line] = true
	}

	var results []domain.Result
	for _, line := range srcLines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		task := domain.SyncTask{Source: line, Dest: merge.Dest, Category: domain.CategoryIgnoreAppend}
		if present[line] {
			s.logger.Warn("ignore rule already present in " + merge.Dest + ": " + line)
			results = append(results, domain.Result{Task: task, Outcome: domain.OutcomeSkippedExists})
			continue
		}

		if err := s.ops.AppendLine(dst, line); err != nil {
			return nil, err
		}
		// Track in-memory too so a line repeated in the source is appended
		// once, in dry runs as well.
		present[line] = true
		results = append(results, domain.Result{Task: task, Outcome: domain.OutcomeCopied})
	}
	return results, nil
}
