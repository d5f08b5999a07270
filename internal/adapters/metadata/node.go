package metadata

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/core/ports"
)

const NodeID graft.ID = "adapter.metadata_reader"

func init() {
	graft.Register(graft.Node[ports.MetadataReader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.MetadataReader, error) {
			return NewReader(), nil
		},
	})
}
