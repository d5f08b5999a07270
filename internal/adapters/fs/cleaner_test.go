package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkgship/shipit/internal/adapters/fs"
	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newCleaner(t *testing.T) *fs.Cleaner {
	t.Helper()

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return fs.NewCleaner(logger)
}

func TestClean_RemovesBuildOutputs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build", "lib"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dist"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "dist", "mingus-0.6.1.tar.gz"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pyproject.toml"), []byte("x"), 0o644))

	err := newCleaner(t).Clean(context.Background(), root, []string{"build", "dist"})
	require.NoError(t, err)

	assert.NoDirExists(t, filepath.Join(root, "build"))
	assert.NoDirExists(t, filepath.Join(root, "dist"))
	assert.FileExists(t, filepath.Join(root, "pyproject.toml"), "files outside the clean paths must survive")
}

func TestClean_AbsentPathIsNoOp(t *testing.T) {
	root := t.TempDir()

	err := newCleaner(t).Clean(context.Background(), root, []string{"build", "dist"})
	require.NoError(t, err)
}

func TestClean_Idempotent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "build"), 0o755))

	cleaner := newCleaner(t)
	require.NoError(t, cleaner.Clean(context.Background(), root, []string{"build"}))
	require.NoError(t, cleaner.Clean(context.Background(), root, []string{"build"}),
		"a second run over already-removed paths must succeed")
}

func TestClean_RejectsEscapingPath(t *testing.T) {
	root := t.TempDir()

	err := newCleaner(t).Clean(context.Background(), root, []string{"../outside"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsafeCleanPath)
}

func TestClean_RejectsAbsolutePath(t *testing.T) {
	root := t.TempDir()

	err := newCleaner(t).Clean(context.Background(), root, []string{string(filepath.Separator) + "tmp"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsafeCleanPath)
}

func TestClean_RejectsRootItself(t *testing.T) {
	root := t.TempDir()

	err := newCleaner(t).Clean(context.Background(), root, []string{"build/.."})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsafeCleanPath)
}
