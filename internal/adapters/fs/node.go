package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/seed/internal/core/ports"
)

// ProbeNodeID is the unique identifier for the FileProbe node.
// The FileOps implementations are not wired here: the app picks the real or
// the dry-run set per invocation, after the flags are known.
const ProbeNodeID graft.ID = "adapter.fs.probe"

func init() {
	graft.Register(graft.Node[ports.FileProbe]{
		ID:        ProbeNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FileProbe, error) {
			return NewProbe(), nil
		},
	})
}
