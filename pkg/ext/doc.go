// Package ext implements a thread-safe, per-instance, typed heterogeneous
// map — internally known as an ExtensionHolder — optimized for many
// concurrent readers, infrequent writers, and small-to-medium working
// sets.
//
// A [Container] is obtained with [New], keys are minted against it with
// [RequestKey], and values are read and written through those keys with
// [Get], [GetOrDefault], [Set], and [SetIfAbsent]. Containers can be
// arranged into a derivation/sibling hierarchy with [Container.Derive]
// and [Container.Sibling]: a Key minted anywhere in a family flows down
// to descendants and across siblings, but never back up to an ancestor.
// Each Container instance still stores its own independent values — the
// hierarchy only controls which Keys are valid where.
//
// This is not a general-purpose concurrent map: there is no key
// enumeration, no removal, and Keys cannot be constructed or hashed by
// callers. [Get] never blocks; [Set] and [SetIfAbsent] block only for
// the rare resize or initial allocation.
package ext
