package history

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/pkgship/shipit/internal/core/ports"
)

const NodeID graft.ID = "adapter.release_store"

func init() {
	graft.Register(graft.Node[ports.ReleaseStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ReleaseStore, error) {
			store, err := NewStore(DefaultPath)
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
