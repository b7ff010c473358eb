// Package app implements the application layer for seed.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/seed/internal/adapters/fs"
	"go.trai.ch/seed/internal/adapters/gitrepo"
	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/seed/internal/engine/audit"
	"go.trai.ch/seed/internal/engine/syncer"
	"go.trai.ch/zerr"
)

// TemplateRootEnv is the environment variable consulted for the template root
// when no --template-root flag is given.
const TemplateRootEnv = "SEED_TEMPLATE_ROOT"

// SyncOptions carries the flag values of one sync invocation.
type SyncOptions struct {
	DryRun       bool
	NoGit        bool
	ForceSpec    string
	TemplateRoot string
	TargetRoot   string
}

// App orchestrates a full synchronization run: manifest, git preparation,
// template sync, staging, direnv activation and the advisory audit.
type App struct {
	loader    ports.ManifestLoader
	probe     ports.FileProbe
	runner    ports.CommandRunner
	logger    ports.Logger
	telemetry ports.Telemetry
	auditor   *audit.Scanner

	// The mutating side-effect sets are constructed per run because the
	// real/dry-run choice is only known after flag parsing.
	newOps func(dryRun bool) ports.FileOps
	newGit func(root string, dryRun bool) ports.GitClient
}

// New creates a new App instance.
func New(loader ports.ManifestLoader, probe ports.FileProbe, runner ports.CommandRunner, logger ports.Logger, telemetry ports.Telemetry) *App {
	a := &App{
		loader:    loader,
		probe:     probe,
		runner:    runner,
		logger:    logger,
		telemetry: telemetry,
		auditor:   audit.NewScanner(logger),
	}
	a.newOps = func(dryRun bool) ports.FileOps {
		if dryRun {
			return fs.NewDryRunOps(logger)
		}
		return fs.NewOps(logger)
	}
	a.newGit = func(root string, dryRun bool) ports.GitClient {
		client := gitrepo.NewClient(root, logger)
		if dryRun {
			return gitrepo.NewDryRun(client, logger)
		}
		return client
	}
	return a
}

// WithFileOps overrides the file operation factory. Used for testing.
func (a *App) WithFileOps(f func(dryRun bool) ports.FileOps) *App {
	a.newOps = f
	return a
}

// WithGitClient overrides the git client factory. Used for testing.
func (a *App) WithGitClient(f func(root string, dryRun bool) ports.GitClient) *App {
	a.newGit = f
	return a
}

// Sync executes the synchronization pipeline for the target repository.
func (a *App) Sync(ctx context.Context, opts SyncOptions) error {
	m, err := a.loader.Load(opts.TargetRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}

	force, err := domain.ParseForceSpec(opts.ForceSpec)
	if err != nil {
		return err
	}

	templateRoot, err := a.resolveTemplateRoot(opts.TemplateRoot, m.TemplateRoot)
	if err != nil {
		return err
	}

	cfg := domain.RunConfig{
		DryRun:       opts.DryRun,
		GitEnabled:   !opts.NoGit,
		Force:        force,
		TemplateRoot: templateRoot,
		TargetRoot:   opts.TargetRoot,
	}

	ops := a.newOps(cfg.DryRun)
	git := a.newGit(cfg.TargetRoot, cfg.DryRun)

	// Git preparation runs before any file is touched so a dirty worktree
	// aborts with the target completely unmodified.
	if cfg.GitEnabled {
		prepCtx, vertex := a.telemetry.Record(ctx, "git-prep")
		err := a.prepareGit(prepCtx, git, m)
		vertex.Complete(err)
		if err != nil {
			return err
		}
	}

	report, err := syncer.New(a.probe, ops, a.logger, a.telemetry).Run(ctx, cfg, m)
	if err != nil {
		return zerr.Wrap(err, "synchronization failed")
	}

	if cfg.GitEnabled {
		if err := git.StageAll(ctx); err != nil {
			return zerr.Wrap(err, "failed to stage synchronized files")
		}
	}

	a.allowDirenv(ctx, cfg)

	auditCtx, vertex := a.telemetry.Record(ctx, "audit")
	hits, err := a.auditor.Scan(auditCtx, cfg.TargetRoot, m.AuditMarker)
	vertex.Complete(err)
	if err != nil {
		// The audit is advisory: a scan failure is reported but never fails
		// an otherwise successful run.
		a.logger.Warn("audit scan failed: " + err.Error())
	}
	report.AuditHits = hits

	a.logger.Info(fmt.Sprintf("sync complete: %d copied, %d skipped, %d audit findings",
		report.Copied(), report.Skipped(), len(report.AuditHits)))
	return nil
}

// Audit runs the advisory marker scan on its own, without synchronizing.
func (a *App) Audit(ctx context.Context, targetRoot string) error {
	m, err := a.loader.Load(targetRoot)
	if err != nil {
		return zerr.Wrap(err, "failed to load manifest")
	}
	if _, err := a.auditor.Scan(ctx, targetRoot, m.AuditMarker); err != nil {
		return zerr.Wrap(err, "audit scan failed")
	}
	return nil
}

// resolveTemplateRoot picks the template root with flag > environment >
// manifest precedence and verifies it is an existing directory.
func (a *App) resolveTemplateRoot(flagValue, manifestValue string) (string, error) {
	root := flagValue
	if root == "" {
		root = os.Getenv(TemplateRootEnv)
	}
	if root == "" {
		root = manifestValue
	}
	if root == "" {
		return "", domain.ErrTemplateRootMissing
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve template root")
	}
	info, err := os.Stat(abs)
	if err != nil || !info.IsDir() {
		return "", zerr.With(domain.ErrTemplateRootMissing, "path", abs)
	}
	return abs, nil
}

func (a *App) prepareGit(ctx context.Context, git ports.GitClient, m *domain.Manifest) error {
	if err := git.VerifyClean(ctx); err != nil {
		return err
	}

	primary, err := git.PrimaryBranch(ctx)
	if err != nil {
		return err
	}

	if err := git.PrepareWorkBranch(ctx, primary, m.WorkBranch); err != nil {
		return zerr.Wrap(err, "failed to prepare work branch")
	}

	removed, err := git.RemoveLegacyConfig(ctx, m.LegacyHook)
	if err != nil {
		return zerr.Wrap(err, "failed to remove legacy hook configuration")
	}
	if removed {
		a.logger.Info("removed legacy hook configuration " + m.LegacyHook)
	}
	return nil
}

// allowDirenv activates the synced .envrc when direnv is installed. The step
// is best effort: a missing binary or a failing activation never fails the run.
func (a *App) allowDirenv(ctx context.Context, cfg domain.RunConfig) {
	if _, err := a.runner.LookPath("direnv"); err != nil {
		a.logger.Info("direnv not found, skipping activation")
		return
	}

	exists, err := a.probe.Exists(filepath.Join(cfg.TargetRoot, ".envrc"))
	if err != nil || !exists {
		return
	}

	if cfg.DryRun {
		a.logger.Info("dry-run: would run direnv allow")
		return
	}
	if err := a.runner.Run(ctx, cfg.TargetRoot, "direnv", "allow"); err != nil {
		a.logger.Warn("direnv allow failed: " + err.Error())
	}
}
