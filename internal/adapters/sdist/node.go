package sdist

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/core/ports"
)

const NodeID graft.ID = "adapter.artifact_builder"

func init() {
	graft.Register(graft.Node[ports.ArtifactBuilder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ArtifactBuilder, error) {
			return NewBuilder(), nil
		},
	})
}
