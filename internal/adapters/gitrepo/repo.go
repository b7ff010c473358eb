// Package gitrepo implements the git preparation phase on top of go-git.
package gitrepo

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultRemoteName is the remote the primary branch is fast-forwarded from.
const DefaultRemoteName = "origin"

// primaryCandidates are the conventional integration branch names, checked in order.
var primaryCandidates = []string{"main", "master"}

// Client implements ports.GitClient using go-git against a local working tree.
type Client struct {
	root   string
	logger ports.Logger
}

// NewClient creates a git client for the repository at root.
func NewClient(root string, logger ports.Logger) *Client {
	return &Client{root: root, logger: logger}
}

func (c *Client) open() (*git.Repository, *git.Worktree, error) {
	repo, err := git.PlainOpen(c.root)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, nil, zerr.With(domain.ErrNotARepository, "path", c.root)
		}
		return nil, nil, zerr.Wrap(err, "failed to open repository")
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, nil, zerr.Wrap(err, "failed to open worktree")
	}
	return repo, wt, nil
}

// VerifyClean fails when root is not a working tree or has pending changes.
// The clean check is the safety invariant that keeps the synchronizer's
// changes from mixing with unrelated edits.
func (c *Client) VerifyClean(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "context cancelled")
	}

	_, wt, err := c.open()
	if err != nil {
		return err
	}

	status, err := wt.Status()
	if err != nil {
		return zerr.Wrap(err, "failed to read worktree status")
	}
	if !status.IsClean() {
		return zerr.With(domain.ErrDirtyWorktree, "path", c.root)
	}
	return nil
}

// PrimaryBranch detects the integration branch by checking main then master.
func (c *Client) PrimaryBranch(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", zerr.Wrap(err, "context cancelled")
	}

	repo, _, err := c.open()
	if err != nil {
		return "", err
	}

	for _, name := range primaryCandidates {
		if _, err := repo.Reference(plumbing.NewBranchReferenceName(name), true); err == nil {
			return name, nil
		}
	}
	return "", zerr.With(domain.ErrNoPrimaryBranch, "candidates", primaryCandidates)
}

// PrepareWorkBranch checks out primary, fast-forward-updates it from origin,
// and creates or resets work at the primary head.
func (c *Client) PrepareWorkBranch(ctx context.Context, primary, work string) error {
	repo, wt, err := c.open()
	if err != nil {
		return err
	}

	primaryRef := plumbing.NewBranchReferenceName(primary)
	if err := wt.Checkout(&git.CheckoutOptions{Branch: primaryRef}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to check out primary branch"), "branch", primary)
	}

	err = wt.PullContext(ctx, &git.PullOptions{RemoteName: DefaultRemoteName})
	switch {
	case err == nil:
		c.logger.Info("fast-forwarded " + primary)
	case errors.Is(err, git.NoErrAlreadyUpToDate):
		c.logger.Info(primary + " already up to date")
	case errors.Is(err, git.ErrRemoteNotFound):
		c.logger.Warn("no " + DefaultRemoteName + " remote, skipping pull")
	case errors.Is(err, git.ErrNonFastForwardUpdate):
		return zerr.With(domain.ErrNonFastForward, "branch", primary)
	default:
		return zerr.Wrap(err, "failed to pull primary branch")
	}

	head, err := repo.Head()
	if err != nil {
		return zerr.Wrap(err, "failed to resolve HEAD")
	}

	// Create or reset: pointing the work ref at the primary head covers both.
	workRef := plumbing.NewBranchReferenceName(work)
	if err := repo.Storer.SetReference(plumbing.NewHashReference(workRef, head.Hash())); err != nil {
		return zerr.Wrap(err, "failed to set work branch reference")
	}
	if err := wt.Checkout(&git.CheckoutOptions{Branch: workRef}); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to check out work branch"), "branch", work)
	}

	c.logger.Info("checked out " + work + " at " + primary)
	return nil
}

// RemoveLegacyConfig removes relPath from the worktree and commits the
// removal. Returns false when the file was not present.
func (c *Client) RemoveLegacyConfig(ctx context.Context, relPath string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, zerr.Wrap(err, "context cancelled")
	}

	present, err := c.hasFile(relPath)
	if err != nil || !present {
		return false, err
	}

	_, wt, err := c.open()
	if err != nil {
		return false, err
	}

	if _, err := wt.Remove(relPath); err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to remove legacy config"), "path", relPath)
	}

	_, err = wt.Commit("remove legacy hook configuration "+relPath, &git.CommitOptions{
		Author: c.signature(),
	})
	if err != nil {
		return false, zerr.Wrap(err, "failed to commit legacy config removal")
	}

	c.logger.Info("removed " + relPath)
	return true, nil
}

// StageAll stages every pending change in the worktree.
func (c *Client) StageAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return zerr.Wrap(err, "context cancelled")
	}

	_, wt, err := c.open()
	if err != nil {
		return err
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return zerr.Wrap(err, "failed to stage changes")
	}
	return nil
}

func (c *Client) hasFile(relPath string) (bool, error) {
	_, err := os.Stat(filepath.Join(c.root, relPath))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, zerr.Wrap(err, "failed to stat legacy config")
}

func (c *Client) signature() *object.Signature {
	return &object.Signature{
		Name:  "seed",
		Email: "seed@trai.ch",
		When:  time.Now(),
	}
}
