package git

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/adapters/logger"
	"github.com/pkgship/shipit/internal/core/ports"
)

const NodeID graft.ID = "adapter.repository"

func init() {
	graft.Register(graft.Node[ports.Repository]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Repository, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRepository(log), nil
		},
	})
}
