package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/adapters/logger"
	"github.com/pkgship/shipit/internal/core/ports"
)

const CleanerNodeID graft.ID = "adapter.cleaner"

func init() {
	graft.Register(graft.Node[ports.Cleaner]{
		ID:        CleanerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Cleaner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCleaner(log), nil
		},
	})
}
