package app_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pkgship/shipit/internal/adapters/telemetry"
	"github.com/pkgship/shipit/internal/app"
	"github.com/pkgship/shipit/internal/core/domain"
	"github.com/pkgship/shipit/internal/core/ports/mocks"
	"github.com/pkgship/shipit/internal/engine/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	app        *app.App
	loader     *mocks.MockConfigLoader
	executor   *mocks.MockExecutor
	repository *mocks.MockRepository
	index      *mocks.MockIndex
	metadata   *mocks.MockMetadataReader
	builder    *mocks.MockArtifactBuilder
	cleaner    *mocks.MockCleaner
	store      *mocks.MockReleaseStore
	logger     *mocks.MockLogger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &fixture{
		loader:     mocks.NewMockConfigLoader(ctrl),
		executor:   mocks.NewMockExecutor(ctrl),
		repository: mocks.NewMockRepository(ctrl),
		index:      mocks.NewMockIndex(ctrl),
		metadata:   mocks.NewMockMetadataReader(ctrl),
		builder:    mocks.NewMockArtifactBuilder(ctrl),
		cleaner:    mocks.NewMockCleaner(ctrl),
		store:      mocks.NewMockReleaseStore(ctrl),
		logger:     mocks.NewMockLogger(ctrl),
	}

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	f.logger.EXPECT().Error(gomock.Any()).AnyTimes()

	runner := pipeline.NewRunner(f.logger, telemetry.NewNoOp())
	f.app = app.New(
		f.loader, f.executor, f.repository, f.index,
		f.metadata, f.builder, f.cleaner, f.store, f.logger, runner,
	)
	return f
}

func testConfig() *domain.Config {
	return &domain.Config{
		Package: domain.PackageConfig{Dir: ".", Metadata: "pyproject.toml"},
		Clean:   domain.CleanConfig{Paths: []string{"build", "dist"}},
		Format:  domain.CommandConfig{Command: []string{"black", "."}},
		Install: domain.CommandConfig{Command: []string{"pip", "install", "-e", "."}},
		Index:   domain.IndexConfig{URL: "https://upload.pypi.org/legacy/"},
		Tag:     domain.TagConfig{Message: "Release {version}"},
	}
}

func testMeta() *domain.PackageMeta {
	return &domain.PackageMeta{Name: "mingus", Version: "0.6.1"}
}

func TestRelease_HappyPathOrder(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	meta := testMeta()
	artifact := &domain.Artifact{Path: "dist/mingus-0.6.1.tar.gz", SHA256: "aa", XXHash: "bb"}

	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.metadata.EXPECT().Read(".", "pyproject.toml").Return(meta, nil).AnyTimes()
	f.store.EXPECT().Get("0.6.1").Return(nil, nil).AnyTimes()
	f.store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()

	gomock.InOrder(
		f.cleaner.EXPECT().Clean(gomock.Any(), ".", []string{"build", "dist"}).Return(nil),
		f.index.EXPECT().Register(gomock.Any(), cfg.Index, meta).Return(nil),
		f.builder.EXPECT().Build(gomock.Any(), meta, ".", "dist", []string{"build", "dist"}).Return(artifact, nil),
		f.index.EXPECT().Upload(gomock.Any(), cfg.Index, meta, artifact).Return(nil),
		f.repository.EXPECT().Verify(gomock.Any(), ".").Return(nil),
		f.repository.EXPECT().TagExists(gomock.Any(), ".", "0.6.1").Return(false, nil),
		f.repository.EXPECT().CreateTag(gomock.Any(), ".", "0.6.1", "Release 0.6.1").Return(nil),
	)

	require.NoError(t, f.app.Release(context.Background()))

	statuses := f.app.Statuses()
	for _, name := range domain.ReleaseSteps() {
		assert.Equal(t, domain.StatusCompleted, statuses[name])
	}
}

func TestRelease_RegisterFailureStopsPipeline(t *testing.T) {
	f := newFixture(t)
	boom := errors.New("index unreachable")

	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any()).Return(testMeta(), nil)
	f.index.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)
	// No Upload, Build, or tag expectations: the controller fails the test if
	// anything past register runs.

	err := f.app.Release(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPipelineFailed)
	assert.ErrorIs(t, err, boom)

	statuses := f.app.Statuses()
	assert.Equal(t, domain.StatusCompleted, statuses[domain.StepClean])
	assert.Equal(t, domain.StatusFailed, statuses[domain.StepRegister])
	assert.Equal(t, domain.StatusSkipped, statuses[domain.StepUpload])
	assert.Equal(t, domain.StatusSkipped, statuses[domain.StepTag])
}

func TestRelease_NeverRunsFormatOrInstall(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	meta := testMeta()

	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any()).Return(meta, nil).AnyTimes()
	f.store.EXPECT().Get(gomock.Any()).Return(nil, nil).AnyTimes()
	f.store.EXPECT().Put(gomock.Any()).Return(nil).AnyTimes()
	f.cleaner.EXPECT().Clean(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.index.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Artifact{Path: "a"}, nil)
	f.index.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.repository.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
	f.repository.EXPECT().TagExists(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	f.repository.EXPECT().CreateTag(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	// The executor mock gets no expectations; any Execute call fails the test.

	require.NoError(t, f.app.Release(context.Background()))
}

func TestRun_TagExists(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any()).Return(testMeta(), nil)
	f.repository.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(nil)
	f.repository.EXPECT().TagExists(gomock.Any(), gomock.Any(), "0.6.1").Return(true, nil)

	err := f.app.Run(context.Background(), []string{"tag"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTagExists)
	assert.Equal(t, domain.StatusFailed, f.app.Statuses()[domain.StepTag])
}

func TestRun_UnknownStep(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)

	err := f.app.Run(context.Background(), []string{"deploy"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownStep)
}

func TestRun_FormatWithoutCommand(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	cfg.Format.Command = nil

	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)

	err := f.app.Run(context.Background(), []string{"format"})
	require.Error(t, err)
}

func TestRun_FormatInvokesConfiguredCommand(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.executor.EXPECT().Execute(gomock.Any(), []string{"black", "."}, ".").Return(nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"format"}))
}

func TestRun_UploadWarnsOnPriorUpload(t *testing.T) {
	f := newFixture(t)
	cfg := testConfig()
	meta := testMeta()
	prior := &domain.ReleaseInfo{Package: "mingus", Version: "0.6.1", UploadedAt: time.Now()}

	f.loader.EXPECT().Load(gomock.Any()).Return(cfg, nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any()).Return(meta, nil)
	f.store.EXPECT().Get("0.6.1").Return(prior, nil).AnyTimes()
	f.store.EXPECT().Put(gomock.Any()).Return(nil)
	f.logger.EXPECT().Warn(gomock.Any())
	f.builder.EXPECT().Build(gomock.Any(), meta, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Artifact{Path: "a", XXHash: "bb"}, nil)
	f.index.EXPECT().Upload(gomock.Any(), gomock.Any(), meta, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"upload"}))
}

func TestRun_HistoryWriteFailureDoesNotFailStep(t *testing.T) {
	f := newFixture(t)
	meta := testMeta()

	f.loader.EXPECT().Load(gomock.Any()).Return(testConfig(), nil)
	f.metadata.EXPECT().Read(gomock.Any(), gomock.Any()).Return(meta, nil)
	f.store.EXPECT().Get("0.6.1").Return(nil, nil).AnyTimes()
	f.store.EXPECT().Put(gomock.Any()).Return(errors.New("disk full"))
	f.logger.EXPECT().Warn(gomock.Any())
	f.builder.EXPECT().Build(gomock.Any(), meta, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.Artifact{Path: "a", XXHash: "bb"}, nil)
	f.index.EXPECT().Upload(gomock.Any(), gomock.Any(), meta, gomock.Any()).Return(nil)

	require.NoError(t, f.app.Run(context.Background(), []string{"upload"}),
		"failing to record history must not fail an upload that succeeded")
}

func TestRun_ConfigLoadFailure(t *testing.T) {
	f := newFixture(t)
	f.loader.EXPECT().Load(gomock.Any()).Return(nil, errors.New("no such file"))

	err := f.app.Run(context.Background(), []string{"clean"})
	require.Error(t, err)
}
