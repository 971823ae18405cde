package ext

import (
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/flier/goutil/internal/debug"
	"github.com/flier/goutil/internal/slotarray"
)

// MaxLevel is the deepest level a Container may occupy; a family root is
// level 0.
const MaxLevel = 7

// minimumSlots is the smallest slot array ever allocated.
const minimumSlots = 10

// requiredSize computes the allocation size for a slot array that must
// be able to address index i: (i+1) + (i+1)/2, i.e. 1.5x the number of
// slots needed, rounded down.
func requiredSize(i int) int {
	n := i + 1
	return n + n/2
}

// Container is the public entity of this package: it owns a slot array,
// shares an [idalloc.Allocator] and keys-requested counter with the rest
// of its family, and enforces key validity on every access.
//
// The zero Container is not useful; use [New], [Container.Derive], or
// [Container.Sibling].
type Container struct {
	id       uint64
	familyID uint64
	level    uint8
	fam      *family

	mu        sync.Mutex
	resizeGen atomic.Uint64
	arr       atomic.Pointer[slotarray.Array]
}

// New creates a fresh family-root Container at level 0.
func New() *Container {
	id := allocContainerID()
	return &Container{
		id:       id,
		familyID: id,
		level:    0,
		fam:      &family{id: id},
	}
}

// ID returns this Container's process-wide unique id.
func (c *Container) ID() uint64 { return c.id }

// FamilyID returns the id of this Container's family root.
func (c *Container) FamilyID() uint64 { return c.familyID }

// Level returns this Container's depth in its derivation chain (0 for a
// family root).
func (c *Container) Level() uint8 { return c.level }

func (c *Container) logf(op, format string, args ...any) {
	debug.Log([]any{"container=%d level=%d", c.id, c.level}, op, format, args...)
}

// Derive creates a new Container one level deeper than c, sharing c's
// family (index allocator and keys-requested counter). If copyValues is
// true, the new Container's slot array starts as a snapshot (shallow
// copy) of c's current contents.
//
// Derive panics with an [Error] of kind [DerivationDepthExceeded] if c is
// already at [MaxLevel].
func (c *Container) Derive(copyValues bool) *Container {
	if c.level >= MaxLevel {
		panic(derivationDepthExceededf("container %d is already at the maximum level %d", c.id, MaxLevel))
	}

	child := &Container{
		id:       allocContainerID(),
		familyID: c.familyID,
		level:    c.level + 1,
		fam:      c.fam,
	}

	if copyValues {
		child.snapshotFrom(c)
	}

	c.logf("derive", "child=%d level=%d copyValues=%v", child.id, child.level, copyValues)

	return child
}

// Sibling creates a new Container at the same level as c. If c is a
// family root, the sibling starts an entirely new family with its own
// allocator and keys-requested counter; otherwise it shares c's family.
// copyValues behaves as for [Container.Derive].
func (c *Container) Sibling(copyValues bool) *Container {
	var sib *Container

	if c.level == 0 {
		id := allocContainerID()
		sib = &Container{
			id:       id,
			familyID: id,
			level:    0,
			fam:      &family{id: id},
		}
	} else {
		sib = &Container{
			id:       allocContainerID(),
			familyID: c.familyID,
			level:    c.level,
			fam:      c.fam,
		}
	}

	if copyValues {
		sib.snapshotFrom(c)
	}

	c.logf("sibling", "sibling=%d level=%d copyValues=%v", sib.id, sib.level, copyValues)

	return sib
}

// snapshotFrom takes a one-shot, shallow copy of src's current slot
// array into c. It establishes no further ordering with src: later
// writes to src are never observed through c.
func (c *Container) snapshotFrom(src *Container) {
	srcArr := src.arr.Load()
	if srcArr == nil {
		return
	}
	dst := slotarray.New(srcArr.Len())
	dst.CopyFrom(srcArr)
	c.arr.Store(dst)
}

// TrimToSize shrinks (or grows) c's slot array to exactly its current
// high-water mark, as tracked by the family allocator for c's level.
// Callers must not be concurrently requesting new keys on c's family;
// doing so is safe but merely wastes a later resize.
func (c *Container) TrimToSize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.resizeGen.Add(1) // odd: resize in progress

	n := int(c.fam.allocator.Read(c.level))
	newArr := slotarray.New(n)

	if old := c.arr.Load(); old != nil {
		newArr.CopyFrom(old)
	}

	c.arr.Store(newArr)

	c.resizeGen.Add(1) // even: resize complete

	c.logf("trim", "size=%d", n)
}

// isNilValue reports whether v, boxed as any, is a nil pointer,
// interface, slice, map, channel, or function. Value-kinded Ts (structs,
// numbers, arrays) are never nil.
func isNilValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}

// Get reads the value stored at k in c. ok is false if k has never been
// set. Get never blocks and never takes c's mutex.
//
// Get panics with an [Error] of kind [InvalidKey] if k is not valid
// against c.
func Get[T any](c *Container, k Key[T]) (value T, ok bool) {
	if err := c.validate(k.generic()); err != nil {
		panic(err)
	}

	arr := c.arr.Load()
	if arr == nil || int(k.index) >= arr.Len() {
		var zero T
		return zero, false
	}

	v, present := arr.Load(int(k.index))
	if !present {
		var zero T
		return zero, false
	}

	return v.(T), true //nolint:errcheck
}

// GetOrDefault is like [Get], but calls defaultFn (on the calling
// goroutine, un-memoized) and returns its result instead of the zero
// value when k is unset.
func GetOrDefault[T any](c *Container, k Key[T], defaultFn func() T) T {
	if v, ok := Get(c, k); ok {
		return v
	}
	return defaultFn()
}

// validateValue checks that v is non-nil and assignable to k's type
// witness, panicking with [NullValue] or [TypeMismatch] otherwise.
func validateValue[T any](k Key[T], v T) {
	if isNilValue(v) {
		panic(nullValuef("value for key %v must not be nil", k))
	}
	if vt := reflect.TypeOf(v); vt != nil && !vt.AssignableTo(k.typ) {
		panic(typeMismatchf("value of type %v is not assignable to key %v's type witness %v", vt, k, k.typ))
	}
}

// Set stores value at k in c, returning the value it displaced (if any).
//
// Set panics with [InvalidKey], [NullValue], or [TypeMismatch] as
// appropriate; it never blocks except for the rare resize or initial
// allocation.
func Set[T any](c *Container, k Key[T], value T) (old T, hadOld bool) {
	if err := c.validate(k.generic()); err != nil {
		panic(err)
	}
	validateValue(k, value)

	index := int(k.index)

	// Read the generation before the array pointer, so a resize that
	// completes between the two loads still shows up as a changed
	// generation after the swap.
	genBefore := c.resizeGen.Load()
	arr := c.arr.Load()
	if arr != nil && index < arr.Len() {
		if genBefore%2 == 0 {
			oldAny, hadOldAny := arr.Swap(index, any(value))
			genAfter := c.resizeGen.Load()
			if genAfter == genBefore {
				return castOld[T](oldAny, hadOldAny)
			}

			// A resize raced our swap; we can't tell if it landed before or
			// after the snapshot the resize took. Re-apply the write under
			// the mutex and report what we actually displaced on the fast
			// path as the true prior value.
			oldAny2, hadOld2 := c.setSlow(index, value, &savedSwap{oldAny, hadOldAny})
			return castOld[T](oldAny2, hadOld2)
		}
	}

	oldAny, hadOldAny := c.setSlow(index, value, nil)
	return castOld[T](oldAny, hadOldAny)
}

func castOld[T any](v any, had bool) (T, bool) {
	if !had {
		var zero T
		return zero, false
	}
	return v.(T), true //nolint:errcheck
}

// savedSwap carries the value a fast-path Set observed as displaced,
// before discovering a concurrent resize invalidated the attempt.
type savedSwap struct {
	value any
	had   bool
}

// setSlow performs a write to c's slot array under the mutex, growing or
// allocating the array as needed. If saved is non-nil, it is the true
// prior value to report (see [Set]'s fast-path race handling); otherwise
// the prior value is whatever setSlow itself observes.
func (c *Container) setSlow(index int, value any, saved *savedSwap) (old any, hadOld bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	arr := c.arr.Load()

	if arr == nil {
		size := max(minimumSlots, requiredSize(index))
		newArr := slotarray.New(size)
		newArr.Store(index, value)
		c.arr.Store(newArr)
		c.logf("alloc", "size=%d index=%d", size, index)

		if saved != nil {
			return saved.value, saved.had
		}
		return nil, false
	}

	if index < arr.Len() {
		if saved != nil {
			arr.Store(index, value)
			return saved.value, saved.had
		}
		return arr.Swap(index, value)
	}

	// Grow: this index has never been addressable before, so there is no
	// prior value regardless of what the fast path thought it saw.
	c.resizeGen.Add(1)

	size := requiredSize(index)
	newArr := slotarray.New(size)
	newArr.CopyFrom(arr)
	newArr.Store(index, value)
	c.arr.Store(newArr)

	c.resizeGen.Add(1)

	c.logf("grow", "size=%d index=%d", size, index)

	return nil, false
}

// SetIfAbsent stores value at k in c only if k is currently unset,
// reporting whether the store happened.
//
// SetIfAbsent panics with [InvalidKey], [NullValue], or [TypeMismatch] as
// appropriate.
func SetIfAbsent[T any](c *Container, k Key[T], value T) bool {
	if err := c.validate(k.generic()); err != nil {
		panic(err)
	}
	validateValue(k, value)

	index := int(k.index)

	genBefore := c.resizeGen.Load() // before the array pointer, as in Set
	arr := c.arr.Load()
	if arr != nil && index < arr.Len() {
		if genBefore%2 == 0 {
			swapped := arr.CAS(index, any(value))
			genAfter := c.resizeGen.Load()
			if genAfter == genBefore {
				return swapped
			}
			if !swapped {
				return false
			}
			// CAS succeeded but raced a resize: re-examine under the mutex.
			return c.setIfAbsentSlowAfterRace(index, value)
		}
	}

	return c.setIfAbsentSlow(index, value)
}

func (c *Container) setIfAbsentSlowAfterRace(index int, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	arr := c.arr.Load()
	if arr != nil && index < arr.Len() {
		return arr.CAS(index, value)
	}

	// The index fell out of range of the post-race array (can only happen
	// if a second, unrelated resize interleaved); treat it like any other
	// slow-path absent write.
	return c.setIfAbsentGrow(index, value)
}

func (c *Container) setIfAbsentSlow(index int, value any) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	arr := c.arr.Load()

	if arr == nil {
		size := max(minimumSlots, requiredSize(index))
		newArr := slotarray.New(size)
		newArr.Store(index, value)
		c.arr.Store(newArr)
		c.logf("alloc", "size=%d index=%d", size, index)
		return true
	}

	if index < arr.Len() {
		return arr.CAS(index, value)
	}

	return c.setIfAbsentGrow(index, value)
}

// setIfAbsentGrow must be called with c.mu held.
func (c *Container) setIfAbsentGrow(index int, value any) bool {
	c.resizeGen.Add(1)

	size := requiredSize(index)
	newArr := slotarray.New(size)
	if old := c.arr.Load(); old != nil {
		newArr.CopyFrom(old)
	}
	newArr.Store(index, value) // fresh slot, guaranteed absent

	c.arr.Store(newArr)

	c.resizeGen.Add(1)

	c.logf("grow", "size=%d index=%d", size, index)

	return true
}
