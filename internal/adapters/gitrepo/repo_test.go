package gitrepo_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seed/internal/adapters/gitrepo"
	"go.trai.ch/seed/internal/adapters/logger"
	"go.trai.ch/seed/internal/core/domain"
)

func initRepo(t *testing.T, branch plumbing.ReferenceName) (string, *git.Repository) {
	t.Helper()
	dir := t.TempDir()
	repo, err := git.PlainInitWithOptions(dir, &git.PlainInitOptions{
		InitOptions: git.InitOptions{DefaultBranch: branch},
	})
	require.NoError(t, err)
	commitFile(t, repo, dir, "README.md", "# fixture\n")
	return dir, repo
}

func commitFile(t *testing.T, repo *git.Repository, dir, name, content string) plumbing.Hash {
	t.Helper()
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	_, err = wt.Add(name)
	require.NoError(t, err)
	hash, err := wt.Commit("add "+name, &git.CommitOptions{
		Author: &object.Signature{Name: "fixture", Email: "fixture@test", When: time.Now()},
	})
	require.NoError(t, err)
	return hash
}

func TestVerifyClean(t *testing.T) {
	dir, _ := initRepo(t, plumbing.Main)
	client := gitrepo.NewClient(dir, logger.New())

	require.NoError(t, client.VerifyClean(context.Background()))

	// A pending change makes the run abort.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dirty.txt"), []byte("x"), 0o644))
	err := client.VerifyClean(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirtyWorktree))
}

func TestVerifyClean_NotARepository(t *testing.T) {
	client := gitrepo.NewClient(t.TempDir(), logger.New())
	err := client.VerifyClean(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotARepository))
}

func TestPrimaryBranch(t *testing.T) {
	dir, _ := initRepo(t, plumbing.Main)
	client := gitrepo.NewClient(dir, logger.New())

	name, err := client.PrimaryBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "main", name)
}

func TestPrimaryBranch_Master(t *testing.T) {
	dir, _ := initRepo(t, plumbing.Master)
	client := gitrepo.NewClient(dir, logger.New())

	name, err := client.PrimaryBranch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "master", name)
}

func TestPrimaryBranch_NoneFound(t *testing.T) {
	dir, _ := initRepo(t, plumbing.NewBranchReferenceName("trunk"))
	client := gitrepo.NewClient(dir, logger.New())

	_, err := client.PrimaryBranch(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoPrimaryBranch))
}

func TestPrepareWorkBranch(t *testing.T) {
	dir, repo := initRepo(t, plumbing.Main)
	client := gitrepo.NewClient(dir, logger.New())

	require.NoError(t, client.PrepareWorkBranch(context.Background(), "main", "chore/devkit-sync"))

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, "chore/devkit-sync", head.Name().Short())

	mainRef, err := repo.Reference(plumbing.Main, true)
	require.NoError(t, err)
	assert.Equal(t, mainRef.Hash(), head.Hash())
}

func TestPrepareWorkBranch_ResetsExistingBranch(t *testing.T) {
	dir, repo := initRepo(t, plumbing.Main)
	client := gitrepo.NewClient(dir, logger.New())
	ctx := context.Background()

	require.NoError(t, client.PrepareWorkBranch(ctx, "main", "chore/devkit-sync"))

	// Advance main past the stale work branch.
	wt, err := repo.Worktree()
	require.NoError(t, err)
	require.NoError(t, wt.Checkout(&git.CheckoutOptions{Branch: plumbing.Main}))
	newHash := commitFile(t, repo, dir, "later.txt", "later\n")

	require.NoError(t, client.PrepareWorkBranch(ctx, "main", "chore/devkit-sync"))

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, "chore/devkit-sync", head.Name().Short())
	assert.Equal(t, newHash, head.Hash())
}

func TestRemoveLegacyConfig(t *testing.T) {
	dir, repo := initRepo(t, plumbing.Main)
	commitFile(t, repo, dir, ".pre-commit-config.yaml", "repos: []\n")
	client := gitrepo.NewClient(dir, logger.New())
	ctx := context.Background()

	removed, err := client.RemoveLegacyConfig(ctx, ".pre-commit-config.yaml")
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = os.Stat(filepath.Join(dir, ".pre-commit-config.yaml"))
	assert.True(t, os.IsNotExist(err))

	// The removal is committed, so the worktree stays clean.
	require.NoError(t, client.VerifyClean(ctx))

	// Second run has nothing to remove.
	removed, err = client.RemoveLegacyConfig(ctx, ".pre-commit-config.yaml")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestStageAll(t *testing.T) {
	dir, repo := initRepo(t, plumbing.Main)
	client := gitrepo.NewClient(dir, logger.New())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "flake.nix"), []byte("{}\n"), 0o644))
	require.NoError(t, client.StageAll(context.Background()))

	wt, err := repo.Worktree()
	require.NoError(t, err)
	status, err := wt.Status()
	require.NoError(t, err)
	assert.Equal(t, git.Added, status.File("flake.nix").Staging)
}

func TestDryRun_MutatesNothing(t *testing.T) {
	dir, repo := initRepo(t, plumbing.Main)
	commitFile(t, repo, dir, ".pre-commit-config.yaml", "repos: []\n")
	client := gitrepo.NewClient(dir, logger.New())
	dry := gitrepo.NewDryRun(client, logger.New())
	ctx := context.Background()

	require.NoError(t, dry.VerifyClean(ctx))

	name, err := dry.PrimaryBranch(ctx)
	require.NoError(t, err)
	assert.Equal(t, "main", name)

	require.NoError(t, dry.PrepareWorkBranch(ctx, "main", "chore/devkit-sync"))
	require.NoError(t, dry.StageAll(ctx))

	removed, err := dry.RemoveLegacyConfig(ctx, ".pre-commit-config.yaml")
	require.NoError(t, err)
	assert.True(t, removed)

	// The legacy config is still there and HEAD never moved.
	_, err = os.Stat(filepath.Join(dir, ".pre-commit-config.yaml"))
	require.NoError(t, err)

	head, err := repo.Head()
	require.NoError(t, err)
	assert.Equal(t, "main", head.Name().Short())
}
