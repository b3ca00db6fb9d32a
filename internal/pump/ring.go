package pump

import (
	"github.com/pkg/errors"

	"github.com/momentics/hioload-ring/control"
	"github.com/momentics/hioload-ring/core/ring"
	"github.com/momentics/hioload-ring/pool"
)

// NewRing builds the byte ring described by cfg.
//
// Borrowed mode stands in for a statically reserved peripheral buffer: the
// slice is created here and handed over, and Close leaves it alone.
func NewRing(cfg control.Config) (*ring.Bytes, error) {
	switch cfg.Storage {
	case control.StorageBorrowed:
		r, err := ring.New(make([]byte, cfg.Capacity))
		return r, errors.Wrap(err, "init borrowed ring")
	case control.StorageHeap:
		r, err := ring.NewAllocated[byte](cfg.Capacity, pool.NewHeapAllocator[byte]())
		return r, errors.Wrap(err, "init heap ring")
	case control.StoragePages:
		r, err := ring.NewAllocated[byte](cfg.Capacity, pool.NewPageAllocator())
		return r, errors.Wrap(err, "init page ring")
	}
	return nil, errors.Errorf("unknown storage mode %q", cfg.Storage)
}
