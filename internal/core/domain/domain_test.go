package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seed/internal/core/domain"
)

func TestParseForceSpec_Empty(t *testing.T) {
	force, err := domain.ParseForceSpec("")
	require.NoError(t, err)
	assert.Empty(t, force)
}

func TestParseForceSpec_All(t *testing.T) {
	force, err := domain.ParseForceSpec("all")
	require.NoError(t, err)

	assert.True(t, force[domain.CategoryFile])
	assert.True(t, force[domain.CategoryStub])
	assert.True(t, force[domain.CategoryWorkflow])
	assert.False(t, force[domain.CategoryIgnoreAppend])
}

func TestParseForceSpec_Subset(t *testing.T) {
	force, err := domain.ParseForceSpec("files,workflows")
	require.NoError(t, err)

	assert.True(t, force[domain.CategoryFile])
	assert.False(t, force[domain.CategoryStub])
	assert.True(t, force[domain.CategoryWorkflow])
}

func TestParseForceSpec_UnknownToken(t *testing.T) {
	_, err := domain.ParseForceSpec("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownForceToken))
}

func TestParseForceSpec_UnknownTokenInList(t *testing.T) {
	// "ignore" is a real category but append-only, so it is not forceable.
	_, err := domain.ParseForceSpec("files,ignore")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownForceToken))
}

func TestParseTaskRef_Plain(t *testing.T) {
	task, err := domain.ParseTaskRef("flake.nix", domain.CategoryFile)
	require.NoError(t, err)

	assert.Equal(t, "flake.nix", task.Source)
	assert.Equal(t, "flake.nix", task.Dest)
	assert.Equal(t, domain.CategoryFile, task.Category)
}

func TestParseTaskRef_Rename(t *testing.T) {
	task, err := domain.ParseTaskRef("dot-gitattributes:.gitattributes", domain.CategoryFile)
	require.NoError(t, err)

	assert.Equal(t, "dot-gitattributes", task.Source)
	assert.Equal(t, ".gitattributes", task.Dest)
}

func TestParseTaskRef_Invalid(t *testing.T) {
	for _, ref := range []string{"", ":", "a:", ":b", "a:b:c"} {
		_, err := domain.ParseTaskRef(ref, domain.CategoryFile)
		assert.Error(t, err, "ref %q", ref)
	}
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "files", domain.CategoryFile.String())
	assert.Equal(t, "stubs", domain.CategoryStub.String())
	assert.Equal(t, "workflows", domain.CategoryWorkflow.String())
	assert.Equal(t, "ignore", domain.CategoryIgnoreAppend.String())
}

func TestReportCounts(t *testing.T) {
	r := &domain.Report{Results: []domain.Result{
		{Task: domain.SyncTask{Dest: "a"}, Outcome: domain.OutcomeCopied},
		{Task: domain.SyncTask{Dest: "b"}, Outcome: domain.OutcomeSkippedExists},
		{Task: domain.SyncTask{Dest: "c"}, Outcome: domain.OutcomeSkippedMissingSource},
	}}

	assert.Equal(t, 1, r.Copied())
	assert.Equal(t, 2, r.Skipped())
	assert.Equal(t, []domain.Outcome{
		domain.OutcomeCopied,
		domain.OutcomeSkippedExists,
		domain.OutcomeSkippedMissingSource,
	}, r.Outcomes())
}
