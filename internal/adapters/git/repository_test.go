package git_test

import (
	"context"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pkgship/shipit/internal/adapters/git"
	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRepository(t *testing.T) *git.Repository {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	return git.NewRepository(logger)
}

func initRepo(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	run(t, dir, "init")
	run(t, dir, "config", "user.email", "test@example.org")
	run(t, dir, "config", "user.name", "Test")
	run(t, dir, "commit", "--allow-empty", "-m", "initial")
	return dir
}

func run(t *testing.T, dir string, args ...string) {
	t.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

func TestVerify(t *testing.T) {
	repo := newRepository(t)
	dir := initRepo(t)

	require.NoError(t, repo.Verify(context.Background(), dir))
}

func TestVerify_NotARepository(t *testing.T) {
	repo := newRepository(t)

	err := repo.Verify(context.Background(), filepath.Join(t.TempDir()))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotARepository)
}

func TestCreateTag_UsesVersionVerbatim(t *testing.T) {
	repo := newRepository(t)
	dir := initRepo(t)

	require.NoError(t, repo.CreateTag(context.Background(), dir, "0.6.1", "Release 0.6.1"))

	exists, err := repo.TagExists(context.Background(), dir, "0.6.1")
	require.NoError(t, err)
	assert.True(t, exists)

	// No v-prefix or other normalization.
	prefixed, err := repo.TagExists(context.Background(), dir, "v0.6.1")
	require.NoError(t, err)
	assert.False(t, prefixed)
}

func TestCreateTag_AlreadyExists(t *testing.T) {
	repo := newRepository(t)
	dir := initRepo(t)

	require.NoError(t, repo.CreateTag(context.Background(), dir, "0.6.1", "Release 0.6.1"))

	err := repo.CreateTag(context.Background(), dir, "0.6.1", "Release 0.6.1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTagExists)
}

func TestTagExists_NoTags(t *testing.T) {
	repo := newRepository(t)
	dir := initRepo(t)

	exists, err := repo.TagExists(context.Background(), dir, "0.6.1")
	require.NoError(t, err)
	assert.False(t, exists)
}
