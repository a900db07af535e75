/*
Package frozen provides an append-only, insertion-ordered set that can
be inserted into through a shared handle while handing out pointers
into its contents that stay valid for the set's whole lifetime.

Ordinary growable containers invalidate previously returned references
when they reallocate.  IndexSet sidesteps that by storing indirections:
every element is a Handle whose Target() pointer is independent of
where the handle value itself lives, so the backing storage is free to
grow and relocate handles without disturbing anything a caller holds.

Uses

- Interning: deduplicate strings or other values and hand out one
stable pointer per distinct value (see ByTarget).

- Registries that assign each distinct value a dense index which never
changes afterward.

Reentrancy

Element identity is pluggable, and identity callbacks can in principle
reach back into the very set that invoked them.  Such a nested call
would alias the interior storage mid-operation, so every shared
operation is gated by a same-goroutine reentrancy flag and a nested
call panics instead of corrupting the set.  The flag is not a lock: an
IndexSet must be confined to one goroutine, or synchronized externally
by the caller.

Inspiration

The append-only collections in rust-lang's elsa crate, which layer the
same insert-through-shared-reference contract over indexmap, show how
far a container can lean on a type-level stable-deref guarantee; the
Handle constraint here is the same idea expressed as a Go interface.
*/
package frozen
