package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seed/internal/adapters/fs"
	"go.trai.ch/seed/internal/adapters/logger"
	"go.trai.ch/seed/internal/adapters/telemetry"
	"go.trai.ch/seed/internal/app"
	"go.trai.ch/seed/internal/core/domain"
	"go.trai.ch/seed/internal/core/ports"
	"go.trai.ch/seed/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// manifestFixture returns a minimal plan pointing at tpl.
func manifestFixture(tpl string) *domain.Manifest {
	m := domain.DefaultManifest()
	m.TemplateRoot = tpl
	m.Files = []domain.SyncTask{
		{Source: "flake.nix", Dest: "flake.nix", Category: domain.CategoryFile},
	}
	m.Ignores = nil
	return m
}

func newApp(t *testing.T, loader ports.ManifestLoader, runner ports.CommandRunner) *app.App {
	t.Helper()
	return app.New(loader, fs.NewProbe(), runner, logger.New(), telemetry.NewNoop())
}

func TestApp_Sync_NoGitPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	target := t.TempDir()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(manifestFixture(tpl), nil)

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().LookPath("direnv").Return("", os.ErrNotExist)

	a := newApp(t, mockLoader, mockRunner)

	err := a.Sync(context.Background(), app.SyncOptions{
		NoGit:      true,
		TargetRoot: target,
	})
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(target, "flake.nix"))
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(content))
}

func TestApp_Sync_GitPreparationOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	target := t.TempDir()

	m := manifestFixture(tpl)

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(m, nil)

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().LookPath("direnv").Return("", os.ErrNotExist)

	mockGit := mocks.NewMockGitClient(ctrl)
	gomock.InOrder(
		mockGit.EXPECT().VerifyClean(gomock.Any()).Return(nil),
		mockGit.EXPECT().PrimaryBranch(gomock.Any()).Return("main", nil),
		mockGit.EXPECT().PrepareWorkBranch(gomock.Any(), "main", m.WorkBranch).Return(nil),
		mockGit.EXPECT().RemoveLegacyConfig(gomock.Any(), m.LegacyHook).Return(false, nil),
		mockGit.EXPECT().StageAll(gomock.Any()).Return(nil),
	)

	a := newApp(t, mockLoader, mockRunner).
		WithGitClient(func(_ string, _ bool) ports.GitClient { return mockGit })

	err := a.Sync(context.Background(), app.SyncOptions{TargetRoot: target})
	require.NoError(t, err)
}

func TestApp_Sync_DirtyWorktreeAbortsBeforeAnyWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	target := t.TempDir()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(manifestFixture(tpl), nil)

	mockGit := mocks.NewMockGitClient(ctrl)
	mockGit.EXPECT().VerifyClean(gomock.Any()).Return(domain.ErrDirtyWorktree)

	// A FileOps mock with no expectations proves the sync stages never ran.
	mockOps := mocks.NewMockFileOps(ctrl)

	a := newApp(t, mockLoader, mocks.NewMockCommandRunner(ctrl)).
		WithGitClient(func(_ string, _ bool) ports.GitClient { return mockGit }).
		WithFileOps(func(_ bool) ports.FileOps { return mockOps })

	err := a.Sync(context.Background(), app.SyncOptions{TargetRoot: target})
	assert.ErrorIs(t, err, domain.ErrDirtyWorktree)

	_, statErr := os.Stat(filepath.Join(target, "flake.nix"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Sync_TemplateRootMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	t.Setenv(app.TemplateRootEnv, "")

	target := t.TempDir()
	m := domain.DefaultManifest()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(m, nil)

	a := newApp(t, mockLoader, mocks.NewMockCommandRunner(ctrl))

	err := a.Sync(context.Background(), app.SyncOptions{NoGit: true, TargetRoot: target})
	assert.ErrorIs(t, err, domain.ErrTemplateRootMissing)
}

func TestApp_Sync_TemplateRootFromEnv(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	t.Setenv(app.TemplateRootEnv, tpl)

	target := t.TempDir()
	m := manifestFixture("")

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(m, nil)

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().LookPath("direnv").Return("", os.ErrNotExist)

	a := newApp(t, mockLoader, mockRunner)

	err := a.Sync(context.Background(), app.SyncOptions{NoGit: true, TargetRoot: target})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(target, "flake.nix"))
}

func TestApp_Sync_UnknownForceToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := t.TempDir()

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(domain.DefaultManifest(), nil)

	a := newApp(t, mockLoader, mocks.NewMockCommandRunner(ctrl))

	err := a.Sync(context.Background(), app.SyncOptions{
		NoGit:      true,
		ForceSpec:  "bogus",
		TargetRoot: target,
	})
	assert.ErrorIs(t, err, domain.ErrUnknownForceToken)
}

func TestApp_Sync_DryRunSkipsDirenvExecution(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	target := t.TempDir()
	write(t, target, ".envrc", "use flake\n")

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(manifestFixture(tpl), nil)

	// LookPath succeeds but Run must never be called in a dry run.
	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().LookPath("direnv").Return("/usr/bin/direnv", nil)

	a := newApp(t, mockLoader, mockRunner)

	err := a.Sync(context.Background(), app.SyncOptions{
		DryRun:     true,
		NoGit:      true,
		TargetRoot: target,
	})
	require.NoError(t, err)

	// Dry run wrote nothing.
	_, statErr := os.Stat(filepath.Join(target, "flake.nix"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestApp_Sync_DirenvAllowRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tpl := t.TempDir()
	write(t, tpl, "flake.nix", "{}\n")
	target := t.TempDir()
	write(t, target, ".envrc", "use flake\n")

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(manifestFixture(tpl), nil)

	mockRunner := mocks.NewMockCommandRunner(ctrl)
	mockRunner.EXPECT().LookPath("direnv").Return("/usr/bin/direnv", nil)
	mockRunner.EXPECT().Run(gomock.Any(), target, "direnv", "allow").Return(nil)

	a := newApp(t, mockLoader, mockRunner)

	err := a.Sync(context.Background(), app.SyncOptions{NoGit: true, TargetRoot: target})
	require.NoError(t, err)
}

func TestApp_Audit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	target := t.TempDir()
	write(t, target, "main.go", "package main // nolint\n")

	mockLoader := mocks.NewMockManifestLoader(ctrl)
	mockLoader.EXPECT().Load(target).Return(domain.DefaultManifest(), nil)

	a := newApp(t, mockLoader, mocks.NewMockCommandRunner(ctrl))

	// Findings are advisory and never turn into an error.
	err := a.Audit(context.Background(), target)
	require.NoError(t, err)
}
