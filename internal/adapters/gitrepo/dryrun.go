package gitrepo

import (
	"context"

	"go.trai.ch/seed/internal/core/ports"
)

// DryRun implements ports.GitClient for dry runs: the read-only safety checks
// still run against the real repository, mutations only log what a real run
// would have done.
type DryRun struct {
	client *Client
	logger ports.Logger
}

// NewDryRun creates the logging no-op git client.
func NewDryRun(client *Client, logger ports.Logger) *DryRun {
	return &DryRun{client: client, logger: logger}
}

// VerifyClean delegates to the real client; it mutates nothing.
func (d *DryRun) VerifyClean(ctx context.Context) error {
	return d.client.VerifyClean(ctx)
}

// PrimaryBranch delegates to the real client; it mutates nothing.
func (d *DryRun) PrimaryBranch(ctx context.Context) (string, error) {
	return d.client.PrimaryBranch(ctx)
}

// PrepareWorkBranch logs the branch preparation a real run would perform.
func (d *DryRun) PrepareWorkBranch(_ context.Context, primary, work string) error {
	d.logger.Info("dry-run: would check out " + work + " at " + primary)
	return nil
}

// RemoveLegacyConfig reports whether the legacy config exists and logs the
// removal a real run would perform.
func (d *DryRun) RemoveLegacyConfig(_ context.Context, relPath string) (bool, error) {
	present, err := d.client.hasFile(relPath)
	if err != nil || !present {
		return false, err
	}
	d.logger.Info("dry-run: would remove " + relPath + " and commit")
	return true, nil
}

// StageAll logs the staging a real run would perform.
func (d *DryRun) StageAll(_ context.Context) error {
	d.logger.Info("dry-run: would stage all changes")
	return nil
}
