package ext

import (
	"fmt"
	"reflect"
)

// Key is a typed, opaque handle minted by a [Container] via [RequestKey].
// It carries the runtime type witness of the value it indexes, its slot
// index, and enough provenance (minting container, family, level) to
// decide which Containers it is valid against.
//
// A Key is immutable after construction and has no exported fields —
// callers cannot fabricate or hash one; the only way to obtain a Key is
// to request it from a Container.
type Key[T any] struct {
	typ         reflect.Type
	index       uint16
	containerID uint64
	familyID    uint64
	level       uint8
}

// zero reports whether this Key was never minted (e.g. the zero value of
// Key[T]).
func (k Key[T]) zero() bool { return k.containerID == 0 }

func (k Key[T]) String() string {
	if k.zero() {
		return "Key(unminted)"
	}
	return fmt.Sprintf("Key[%v]{index: %d, container: %d, family: %d, level: %d}", k.typ, k.index, k.containerID, k.familyID, k.level)
}

// RequestKey mints a new Key[T] against c, assigning it a dense slot
// index unique within c's level and reserving that index at every deeper
// level in the family. It panics with an [Error] of kind
// [KeyBudgetExceeded] if this would be the family's
// [MaxKeysPerFamily]th key request.
func RequestKey[T any](c *Container) Key[T] {
	if err := c.fam.reserveKeySlot(); err != nil {
		panic(err)
	}

	index := c.fam.allocator.Next(c.level)

	c.logf("request-key", "type=%v index=%d level=%d", reflect.TypeFor[T](), index, c.level)

	return Key[T]{
		typ:         reflect.TypeFor[T](),
		index:       index,
		containerID: c.id,
		familyID:    c.familyID,
		level:       c.level,
	}
}

// validate reports whether k is valid against c: either k was minted by c
// itself, or k was minted somewhere in c's family at or above c's own
// level (keys flow down a derivation chain, never up, and freely across
// siblings once both descend from the minting ancestor).
func (c *Container) validate(k genericKey) error {
	if k.zero() {
		return invalidKeyf("key was never minted")
	}
	if k.containerID == c.id {
		return nil
	}
	if k.familyID == c.familyID && k.level <= c.level {
		return nil
	}
	return invalidKeyf(
		"key minted by container %d (family %d, level %d) is not valid against container %d (family %d, level %d)",
		k.containerID, k.familyID, k.level, c.id, c.familyID, c.level,
	)
}

// genericKey is the provenance subset of Key[T], stripped of its type
// parameter so Container.validate doesn't need one.
type genericKey struct {
	containerID uint64
	familyID    uint64
	level       uint8
}

func (k genericKey) zero() bool { return k.containerID == 0 }

func (k Key[T]) generic() genericKey {
	return genericKey{containerID: k.containerID, familyID: k.familyID, level: k.level}
}
