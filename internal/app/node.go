package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/git"       //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/history"   //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/index"     //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/metadata"  //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/sdist"     //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"github.com/pkgship/shipit/internal/core/ports"
	"github.com/pkgship/shipit/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			shell.NodeID,
			git.NodeID,
			index.NodeID,
			metadata.NodeID,
			sdist.NodeID,
			fs.CleanerNodeID,
			history.NodeID,
			logger.NodeID,
			pipeline.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	executor, err := graft.Dep[ports.Executor](ctx)
	if err != nil {
		return nil, err
	}

	repository, err := graft.Dep[ports.Repository](ctx)
	if err != nil {
		return nil, err
	}

	idx, err := graft.Dep[ports.Index](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.MetadataReader](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.ArtifactBuilder](ctx)
	if err != nil {
		return nil, err
	}

	cleaner, err := graft.Dep[ports.Cleaner](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.ReleaseStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	runner, err := graft.Dep[*pipeline.Runner](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, executor, repository, idx, reader, builder, cleaner, store, log, runner), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       application,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
