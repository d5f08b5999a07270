// Package fs provides filesystem adapters.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Cleaner implements ports.Cleaner. Removals run concurrently under an
// errgroup; the step still reports a single all-or-nothing outcome.
type Cleaner struct {
	logger ports.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner(logger ports.Logger) *Cleaner {
	return &Cleaner{logger: logger}
}

// Clean removes each path relative to root. Absent paths are a no-op, not an
// error, so the step is safe to re-run. Every path is resolved and checked
// against root before deletion; anything escaping root is rejected.
func (c *Cleaner) Clean(ctx context.Context, root string, paths []string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve root")
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, p := range paths {
		g.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			target, err := resolve(absRoot, p)
			if err != nil {
				return err
			}

			if _, err := os.Stat(target); err != nil {
				if os.IsNotExist(err) {
					return nil
				}
				return zerr.With(zerr.Wrap(err, "failed to stat clean target"), "path", target)
			}

			if err := os.RemoveAll(target); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove"), "path", target)
			}
			c.logger.Info("removed " + target)
			return nil
		})
	}
	return g.Wait()
}

// resolve joins rel onto root and rejects anything that would land outside
// root, including the root itself.
func resolve(absRoot, rel string) (string, error) {
	if rel == "" || filepath.IsAbs(rel) {
		return "", zerr.With(domain.ErrUnsafeCleanPath, "path", rel)
	}

	target := filepath.Clean(filepath.Join(absRoot, rel))
	if target == absRoot || !strings.HasPrefix(target, absRoot+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrUnsafeCleanPath, "path", rel)
	}
	return target, nil
}
