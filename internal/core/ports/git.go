package ports

import "context"

// GitClient defines the git preparation operations of the synchronizer.
// Every method that mutates repository state has a logging no-op counterpart
// used in dry-run mode.
//
//go:generate mockgen -source=git.go -destination=mocks/mock_git.go -package=mocks
type GitClient interface {
	// VerifyClean returns domain.ErrNotARepository when the target is not a
	// working tree and domain.ErrDirtyWorktree when it has pending changes.
	VerifyClean(ctx context.Context) error

	// PrimaryBranch detects the repository's integration branch by
	// conventional naming (main, then master). Returns
	// domain.ErrNoPrimaryBranch when neither exists.
	PrimaryBranch(ctx context.Context) (string, error)

	// PrepareWorkBranch checks out primary, fast-forward-updates it from
	// origin, and creates or resets work at the primary head.
	PrepareWorkBranch(ctx context.Context, primary, work string) error

	// RemoveLegacyConfig removes relPath from the worktree and commits the
	// removal. Returns false when the file was not present.
	RemoveLegacyConfig(ctx context.Context, relPath string) (bool, error)

	// StageAll stages every pending change in the worktree.
	StageAll(ctx context.Context) error
}
