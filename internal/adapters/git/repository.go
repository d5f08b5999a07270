// Package git implements the repository port by shelling out to git.
package git

import (
	"context"
	"os/exec"
	"strings"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
)

// Repository implements ports.Repository using the git binary.
type Repository struct {
	logger ports.Logger
}

// NewRepository creates a new Repository.
func NewRepository(logger ports.Logger) *Repository {
	return &Repository{logger: logger}
}

// Verify checks that dir is inside a valid git working tree.
func (r *Repository) Verify(ctx context.Context, dir string) error {
	if _, err := r.git(ctx, dir, "rev-parse", "--git-dir"); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrNotARepository, err.Error()), "dir", dir)
	}
	return nil
}

// TagExists reports whether the tag is already present in the repository.
func (r *Repository) TagExists(ctx context.Context, dir, tag string) (bool, error) {
	out, err := r.git(ctx, dir, "tag", "--list", tag)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, "failed to list tags"), "tag", tag)
	}
	return strings.TrimSpace(out) != "", nil
}

// CreateTag creates an annotated tag at HEAD. git itself refuses to move an
// existing tag without --force, which is never passed.
func (r *Repository) CreateTag(ctx context.Context, dir, tag, message string) error {
	out, err := r.git(ctx, dir, "tag", "-a", tag, "-m", message)
	if err != nil {
		if strings.Contains(out, "already exists") {
			return zerr.With(domain.ErrTagExists, "tag", tag)
		}
		return zerr.With(zerr.Wrap(err, "failed to create tag"), "tag", tag)
	}
	r.logger.Info("created tag " + tag)
	return nil
}

// git runs a git subcommand in dir and returns its combined output.
func (r *Repository) git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	if dir != "" {
		cmd.Dir = dir
	}
	out, err := cmd.CombinedOutput()
	if err != nil {
		return string(out), zerr.With(zerr.Wrap(err, "git command failed"), "output", strings.TrimSpace(string(out)))
	}
	return string(out), nil
}
