package ext

import (
	"sync/atomic"

	"github.com/flier/goutil/internal/idalloc"
)

// MaxKeysPerFamily is the cap on requestKey calls across a single
// family: the request that would bring the family's total to this value
// is rejected, before a new index is allocated. Keeping the count below
// the cap also keeps every 16-bit counter in the family's
// [idalloc.Allocator] from carrying into a neighboring lane.
const MaxKeysPerFamily = 65536

// nextContainerID is the process-wide monotonic container id source. Ids
// start at 1 so the zero value of Container (and of Key) is never a valid
// minting container.
var nextContainerID atomic.Uint64

func allocContainerID() uint64 {
	return nextContainerID.Add(1)
}

// family is the state shared by every Container descended from one root:
// its id (the root container's own id), the shared index allocator, and
// the shared keys-requested counter.
type family struct {
	id            uint64
	allocator     idalloc.Allocator
	keysRequested atomic.Uint32
}

// reserveKeySlot atomically bumps keysRequested, rejecting the request
// that would bring the count to MaxKeysPerFamily.
func (f *family) reserveKeySlot() error {
	for {
		cur := f.keysRequested.Load()
		if cur+1 >= MaxKeysPerFamily {
			return keyBudgetExceededf("family %d has reached its budget of %d keys", f.id, MaxKeysPerFamily)
		}
		if f.keysRequested.CompareAndSwap(cur, cur+1) {
			return nil
		}
	}
}
