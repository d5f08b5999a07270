// Package app implements the application layer for shipit.
package app

import (
	"context"
	"path/filepath"
	"time"

	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports"
	"github.com/pkgship/shipit/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic. It binds step names to their
// implementations over the injected ports and hands the ordered list to the
// pipeline runner.
type App struct {
	configLoader ports.ConfigLoader
	executor     ports.Executor
	repository   ports.Repository
	index        ports.Index
	metadata     ports.MetadataReader
	builder      ports.ArtifactBuilder
	cleaner      ports.Cleaner
	store        ports.ReleaseStore
	logger       ports.Logger
	runner       *pipeline.Runner

	configPath string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	executor ports.Executor,
	repository ports.Repository,
	index ports.Index,
	metadata ports.MetadataReader,
	builder ports.ArtifactBuilder,
	cleaner ports.Cleaner,
	store ports.ReleaseStore,
	logger ports.Logger,
	runner *pipeline.Runner,
) *App {
	return &App{
		configLoader: loader,
		executor:     executor,
		repository:   repository,
		index:        index,
		metadata:     metadata,
		builder:      builder,
		cleaner:      cleaner,
		store:        store,
		logger:       logger,
		runner:       runner,
	}
}

// SetConfigPath sets the configuration file path used by subsequent runs.
func (a *App) SetConfigPath(path string) {
	a.configPath = path
}

// Run executes the named steps in the given order, fail-fast.
func (a *App) Run(ctx context.Context, stepNames []string) error {
	cfg, err := a.configLoader.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	steps := make([]pipeline.Step, 0, len(stepNames))
	for _, raw := range stepNames {
		name, err := domain.ParseStepName(raw)
		if err != nil {
			return err
		}
		steps = append(steps, a.step(cfg, name))
	}

	return a.runner.Run(ctx, steps)
}

// Release runs the aggregate release pipeline: clean, register, upload, tag,
// strictly in that order. format and install are deliberately not part of it.
func (a *App) Release(ctx context.Context) error {
	names := domain.ReleaseSteps()
	raw := make([]string, len(names))
	for i, n := range names {
		raw[i] = n.String()
	}
	return a.Run(ctx, raw)
}

// Statuses exposes the step statuses of the last run.
func (a *App) Statuses() map[domain.StepName]domain.StepStatus {
	return a.runner.Statuses()
}

func (a *App) step(cfg *domain.Config, name domain.StepName) pipeline.Step {
	var run pipeline.StepFunc

	switch name {
	case domain.StepFormat:
		run = func(ctx context.Context) error { return a.runFormat(ctx, cfg) }
	case domain.StepInstall:
		run = func(ctx context.Context) error { return a.runInstall(ctx, cfg) }
	case domain.StepClean:
		run = func(ctx context.Context) error { return a.runClean(ctx, cfg) }
	case domain.StepRegister:
		run = func(ctx context.Context) error { return a.runRegister(ctx, cfg) }
	case domain.StepUpload:
		run = func(ctx context.Context) error { return a.runUpload(ctx, cfg) }
	case domain.StepTag:
		run = func(ctx context.Context) error { return a.runTag(ctx, cfg) }
	}

	return pipeline.Step{Name: name, Run: run}
}

func (a *App) runFormat(ctx context.Context, cfg *domain.Config) error {
	if len(cfg.Format.Command) == 0 {
		return zerr.New("no format command configured")
	}
	return a.executor.Execute(ctx, cfg.Format.Command, cfg.Package.Dir)
}

func (a *App) runInstall(ctx context.Context, cfg *domain.Config) error {
	if len(cfg.Install.Command) == 0 {
		return zerr.New("no install command configured")
	}
	return a.executor.Execute(ctx, cfg.Install.Command, cfg.Package.Dir)
}

func (a *App) runClean(ctx context.Context, cfg *domain.Config) error {
	return a.cleaner.Clean(ctx, cfg.Package.Dir, cfg.Clean.Paths)
}

func (a *App) runRegister(ctx context.Context, cfg *domain.Config) error {
	meta, err := a.metadata.Read(cfg.Package.Dir, cfg.Package.Metadata)
	if err != nil {
		return err
	}
	return a.index.Register(ctx, cfg.Index, meta)
}

func (a *App) runUpload(ctx context.Context, cfg *domain.Config) error {
	meta, err := a.metadata.Read(cfg.Package.Dir, cfg.Package.Metadata)
	if err != nil {
		return err
	}

	if prior, err := a.store.Get(meta.Version); err == nil && prior != nil && !prior.UploadedAt.IsZero() {
		a.logger.Warn("version " + meta.Version + " was uploaded before; the index will reject a duplicate")
	}

	distDir := filepath.Join(cfg.Package.Dir, "dist")
	artifact, err := a.builder.Build(ctx, meta, cfg.Package.Dir, distDir, cfg.Clean.Paths)
	if err != nil {
		return zerr.Wrap(err, "failed to build source distribution")
	}

	if err := a.index.Upload(ctx, cfg.Index, meta, artifact); err != nil {
		return err
	}

	a.record(meta, func(info *domain.ReleaseInfo) {
		info.ArtifactDigest = artifact.XXHash
		info.UploadedAt = time.Now()
	})
	return nil
}

func (a *App) runTag(ctx context.Context, cfg *domain.Config) error {
	meta, err := a.metadata.Read(cfg.Package.Dir, cfg.Package.Metadata)
	if err != nil {
		return err
	}

	if err := a.repository.Verify(ctx, cfg.Package.Dir); err != nil {
		return err
	}

	// The tag is the declared version, verbatim.
	tag := meta.Version
	exists, err := a.repository.TagExists(ctx, cfg.Package.Dir, tag)
	if err != nil {
		return err
	}
	if exists {
		return zerr.With(domain.ErrTagExists, "tag", tag)
	}

	if err := a.repository.CreateTag(ctx, cfg.Package.Dir, tag, cfg.Tag.RenderMessage(tag)); err != nil {
		return err
	}

	a.record(meta, func(info *domain.ReleaseInfo) {
		info.TaggedAt = time.Now()
	})
	return nil
}

// record updates the release history. History is bookkeeping, not part of
// the release itself, so failures are logged rather than failing a step
// whose external side effect already happened.
func (a *App) record(meta *domain.PackageMeta, update func(*domain.ReleaseInfo)) {
	info := domain.ReleaseInfo{Package: meta.Name, Version: meta.Version}
	if prior, err := a.store.Get(meta.Version); err == nil && prior != nil {
		info = *prior
	}
	update(&info)
	if err := a.store.Put(info); err != nil {
		a.logger.Warn("failed to record release history: " + err.Error())
	}
}
