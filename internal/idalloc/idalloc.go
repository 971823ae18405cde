// Package idalloc allocates dense, per-level slot indices shared across a
// family of containers.
//
// A request for a new index at level L must also reserve that index at
// every level deeper than L, since a descendant's slot array is indexed
// by its ancestors' keys too.
package idalloc

import "sync/atomic"

// MaxLevel is the deepest level a container may occupy (root is level 0).
const MaxLevel = 7

// NumLevels is the number of counters an Allocator tracks.
const NumLevels = MaxLevel + 1

// Allocator hands out dense uint16 indices, one counter per level, packed
// four 16-bit lanes to a 64-bit word: levels 0-3 in the low word, 4-7 in
// the high word. The packing is what lets Next advance a whole cascade of
// counters without a lock: a single atomic add bumps a level's lane and
// every deeper lane of the same word as one indivisible step, so a
// concurrent Next at a deeper level either sees all of a shallower mint's
// reservations in that word or none of them — never a half-applied
// cascade that would hand out an index the shallower mint already
// returned.
//
// Lanes must stay below 65,536 or an add would carry into the
// neighboring lane; callers enforce the family-wide keys-requested cap
// before calling Next (see pkg/ext's family bookkeeping).
//
// The zero Allocator is ready to use.
type Allocator struct {
	lo atomic.Uint64 // levels 0-3, 16 bits each, level 0 lowest
	hi atomic.Uint64 // levels 4-7, 16 bits each, level 4 lowest
}

// cascade[i] adds 1 to lane i and every lane above it in one word.
var cascade = [4]uint64{
	0x0001_0001_0001_0001,
	0x0001_0001_0001_0000,
	0x0001_0001_0000_0000,
	0x0001_0000_0000_0000,
}

func lane(word uint64, i int) uint16 { return uint16(word >> (16 * i)) }

// Next returns the current value of the level-L counter, then advances
// the counters for every level from L through MaxLevel. The advance is
// one atomic add per word, deeper word first, so once a low-word mint
// has returned, every later Next at any deeper level reads an index past
// the one it handed out.
func (a *Allocator) Next(level uint8) uint16 {
	if level < 4 {
		// Reserve at levels 4-7 before touching the low word: a Next in
		// the high word racing this call then can't return an index this
		// call's low-word lane is about to.
		a.hi.Add(cascade[0])

		delta := cascade[level]
		return lane(a.lo.Add(delta)-delta, int(level))
	}

	delta := cascade[level-4]
	return lane(a.hi.Add(delta)-delta, int(level-4))
}

// Read snapshots the current value of the level-L counter, i.e. the
// number of indices ever handed out at or below that level. This is the
// container's high-water mark for trimming.
func (a *Allocator) Read(level uint8) uint16 {
	if level < 4 {
		return lane(a.lo.Load(), int(level))
	}
	return lane(a.hi.Load(), int(level-4))
}
