// Package syncer implements the template synchronization engine.
package syncer

import (
	"context"

	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/zerr"
)

// Syncer walks the manifest and applies each sync task through the
// side-effect set. With a dry-run FileOps the same decisions are taken but
// nothing is written.
type Syncer struct {
	probe  ports.FileProbe
	ops    ports.FileOps
	logger ports.Logger
	tracer ports.Telemetry
}

// New creates a Syncer over the given operation set.
func New(probe ports.FileProbe, ops ports.FileOps, logger ports.Logger, tracer ports.Telemetry) *Syncer {
	return &Syncer{
		probe:  probe,
		ops:    ops,
		logger: logger,
		tracer: tracer,
	}
}

// Run executes the synchronization stages in their fixed order:
// files, stubs, ignore merges, workflows. The collected results are returned
// in decision order.
func (s *Syncer) Run(ctx context.Context, cfg domain.RunConfig, m *domain.Manifest) (*domain.Report, error) {
	report := &domain.Report{}

	stages := []struct {
		name string
		run  func(context.Context) ([]domain.Result, error)
	}{
		{"copy-files", func(ctx context.Context) ([]domain.Result, error) {
			return s.copyFiles(ctx, cfg, m.Files)
		}},
		{"copy-stubs", func(ctx context.Context) ([]domain.Result, error) {
			return s.copyTree(ctx, cfg, m.Stubs, domain.CategoryStub)
		}},
		{"merge-ignores", func(ctx context.Context) ([]domain.Result, error) {
			return s.mergeIgnores(ctx, cfg, m.Ignores)
		}},
		{"copy-workflows", func(ctx context.Context) ([]domain.Result, error) {
			return s.copyTree(ctx, cfg, m.Workflows, domain.CategoryWorkflow)
		}},
	}

	for _, stage := range stages {
		stageCtx, vertex := s.tracer.Record(ctx, stage.name)
		results, err := stage.run(stageCtx)
		vertex.Complete(err)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "synchronization stage failed"), "stage", stage.name)
		}
		report.Results = append(report.Results, results...)
	}

	return report, nil
}

func (s *Syncer) copyFiles(ctx context.Context, cfg domain.RunConfig, tasks []domain.SyncTask) ([]domain.Result, error) {
	results := make([]domain.Result, 0, len(tasks))
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "context cancelled")
		}
		outcome, err := s.syncOne(cfg, task)
		if err != nil {
			return nil, err
		}
		results = append(results, domain.Result{Task: task, Outcome: outcome})
	}
	return results, nil
}
