// Package gamerec holds small immutable value types — the kind of
// per-entity data a [github.com/flier/goutil/pkg/ext.Container] is meant
// to hold as extension state. Plain structs with value-semantics
// constructors; no behavior beyond String, equality, and modifiers that
// return a changed copy (WithHP, Add).
package gamerec

import "fmt"

// StatBlock is an immutable set of a game entity's core stats.
type StatBlock struct {
	hp, atk, def int
}

// NewStatBlock constructs a StatBlock.
func NewStatBlock(hp, atk, def int) StatBlock {
	return StatBlock{hp: hp, atk: atk, def: def}
}

// HP, Atk, and Def return this block's stats.
func (s StatBlock) HP() int  { return s.hp }
func (s StatBlock) Atk() int { return s.atk }
func (s StatBlock) Def() int { return s.def }

// WithHP returns a copy of s with hp replaced; StatBlock is immutable, so
// "mutation" always produces a new value.
func (s StatBlock) WithHP(hp int) StatBlock {
	s.hp = hp
	return s
}

func (s StatBlock) String() string {
	return fmt.Sprintf("StatBlock{hp: %d, atk: %d, def: %d}", s.hp, s.atk, s.def)
}

// Equal reports whether s and o carry the same stats.
func (s StatBlock) Equal(o StatBlock) bool { return s == o }

// ItemStack is an immutable count of one item kind, identified by an
// opaque item id.
type ItemStack struct {
	itemID string
	count  int
}

// NewItemStack constructs an ItemStack. A negative count is clamped to 0.
func NewItemStack(itemID string, count int) ItemStack {
	if count < 0 {
		count = 0
	}
	return ItemStack{itemID: itemID, count: count}
}

// ItemID and Count return this stack's item id and count.
func (s ItemStack) ItemID() string { return s.itemID }
func (s ItemStack) Count() int     { return s.count }

// Add returns a copy of s with n added to its count (clamped to 0).
func (s ItemStack) Add(n int) ItemStack {
	return NewItemStack(s.itemID, s.count+n)
}

func (s ItemStack) String() string {
	return fmt.Sprintf("ItemStack{%s x%d}", s.itemID, s.count)
}

// Equal reports whether s and o refer to the same item id and count.
func (s ItemStack) Equal(o ItemStack) bool { return s == o }
