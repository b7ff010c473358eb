package syncer

import (
	"context"
	"path/filepath"

	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/zerr"
)

// syncOne applies the per-file decision rule shared by every copy category:
// missing source skips with a warning, an existing destination is only
// overwritten under force, and a forced overwrite of identical content is
// skipped to keep re-runs byte-stable.
func (s *Syncer) syncOne(cfg domain.RunConfig, task domain.SyncTask) (domain.Outcome, error) {
	src := filepath.Join(cfg.TemplateRoot, task.Source)
	dst := filepath.Join(cfg.TargetRoot, task.Dest)

	srcExists, err := s.probe.Exists(src)
	if err != nil {
		return 0, err
	}
	if !srcExists {
		s.logger.Warn("template source missing, skipping " + task.Source)
		return domain.OutcomeSkippedMissingSource, nil
	}

	dstExists, err := s.probe.Exists(dst)
	if err != nil {
		return 0, err
	}
	if dstExists {
		if !cfg.Force[task.Category] {
			s.logger.Warn("destination exists, skipping " + task.Dest)
			return domain.OutcomeSkippedExists, nil
		}
		same, err := s.probe.SameContent(src, dst)
		if err != nil {
			return 0, err
		}
		if same {
			s.logger.Info("destination identical, skipping " + task.Dest)
			return domain.OutcomeSkippedExists, nil
		}
	}

	if err := s.ops.Copy(src, dst); err != nil {
		return 0, zerr.With(err, "dest", task.Dest)
	}
	return domain.OutcomeCopied, nil
}

// copyTree merges a template directory tree into the target. The mirrored
// directory structure is created unconditionally and before any file copy,
// then each file follows the same skip rule as single-file tasks.
func (s *Syncer) copyTree(ctx context.Context, cfg domain.RunConfig, spec domain.TreeSpec, cat domain.Category) ([]domain.Result, error) {
	srcRoot := filepath.Join(cfg.TemplateRoot, spec.Source)

	exists, err := s.probe.Exists(srcRoot)
	if err != nil {
		return nil, err
	}
	if !exists {
		s.logger.Warn("template tree missing, nothing to do for " + spec.Source)
		return nil, nil
	}

	dirs, files, err := s.probe.ListTree(srcRoot)
	if err != nil {
		return nil, err
	}

	dstRoot := filepath.Join(cfg.TargetRoot, spec.Dest)
	if err := s.ops.MkdirAll(dstRoot); err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := s.ops.MkdirAll(filepath.Join(dstRoot, dir)); err != nil {
			return nil, err
		}
	}

	results := make([]domain.Result, 0, len(files))
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "context cancelled")
		}
		task := domain.SyncTask{
			Source:   filepath.Join(spec.Source, file),
			Dest:     filepath.Join(spec.Dest, file),
			Category: cat,
		}
		outcome, err := s.syncOne(cfg, task)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.Result{Task: task, Outcome: outcome})
	}
	return results, nil
}
