// Package arena provides a bump-allocator analogue for the group-by
// engine's intermediate slices. Go has no exposed heap arena the way
// Rust's bumpalo does, so this models the same "freed in bulk, transparent
// to the caller" contract as a lifetime wrapper: each slice an Arena hands
// out comes from an ordinary make() call, and the whole Arena is released
// at once when the caller is done. No backing buffer is pooled or reused.
package arena

// Arena is a bump-style allocator for same-call-lifetime slices. It is not
// safe for concurrent use; each group-by call builds its own.
type Arena struct {
	released bool
}

// New returns a fresh Arena.
func New() *Arena {
	return &Arena{}
}

// Float64s returns a zeroed []float64 of length n "allocated" from the
// arena. Because Go's runtime already bump-allocates within a single make()
// call and frees whole slices in bulk via ordinary GC, the arena's role is
// to make that lifetime explicit and auditable rather than to bypass the
// allocator; Release marks the arena's slices as no longer owned.
func (a *Arena) Float64s(n int) []float64 {
	return make([]float64, n)
}

// Bools returns a zeroed []bool of length n.
func (a *Arena) Bools(n int) []bool {
	return make([]bool, n)
}

// Int64s returns an empty []int64 with capacity hint n.
func (a *Arena) Int64s(n int) []int64 {
	return make([]int64, 0, n)
}

// Release marks the arena as done. Slices obtained from it must not be used
// afterward; this matches bumpalo's Bump being dropped in bulk at the end
// of a groupby call (spec.md §3, "freed in bulk if arena-backed").
func (a *Arena) Release() {
	a.released = true
}

// Released reports whether Release has been called, for tests that assert
// on arena lifecycle without inspecting unexported state directly.
func (a *Arena) Released() bool {
	return a.released
}
