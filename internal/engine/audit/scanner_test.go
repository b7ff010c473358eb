package audit_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/seed/internal/adapters/logger"
	"go.trai.ch/seed/internal/engine/audit"
)

func write(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestScan_FindsMarkers(t *testing.T) {
	tmp := t.TempDir()
	write(t, tmp, "main.go", "package main // nolint:gocyclo\n")
	write(t, tmp, "sub/clean.go", "package sub\n")
	write(t, tmp, "sub/flagged.go", "package sub // nolint\n")

	scanner := audit.NewScanner(logger.New())
	hits, err := scanner.Scan(context.Background(), tmp, "nolint")
	require.NoError(t, err)

	assert.Equal(t, []string{"main.go", filepath.Join("sub", "flagged.go")}, hits)
}

func TestScan_NoneFound(t *testing.T) {
	tmp := t.TempDir()
	write(t, tmp, "main.go", "package main\n")

	scanner := audit.NewScanner(logger.New())
	hits, err := scanner.Scan(context.Background(), tmp, "nolint")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestScan_SkipsGitAndBinary(t *testing.T) {
	tmp := t.TempDir()
	write(t, tmp, ".git/config", "nolint\n")
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "blob.bin"), []byte{'n', 'o', 'l', 'i', 'n', 't', 0, 1}, 0o644))

	scanner := audit.NewScanner(logger.New())
	hits, err := scanner.Scan(context.Background(), tmp, "nolint")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestScan_EmptyMarker(t *testing.T) {
	tmp := t.TempDir()
	write(t, tmp, "main.go", "anything\n")

	scanner := audit.NewScanner(logger.New())
	hits, err := scanner.Scan(context.Background(), tmp, "")
	require.NoError(t, err)
	assert.Empty(t, hits)
}
