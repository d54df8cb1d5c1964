package dragarea

import (
	"fmt"
	"iter"
)

// Entry is a drawable together with the position it is drawn at, before
// any pan offset is applied.
type Entry[C any] struct {
	Drawable Drawable[C]
	X, Y     float64
}

// registry holds entries in paint order: index 0 is painted first (bottom),
// the last entry is topmost for both drawing and hit testing.
type registry[C any] struct {
	entries  []Entry[C]
	sweeping bool
}

func (r *registry[C]) push(d Drawable[C], x, y float64) {
	r.entries = append(r.entries, Entry[C]{Drawable: d, X: x, Y: y})
}

// promote moves entry i to the end and returns its new index. Entries after
// i shift down by one. An out-of-range index is a programming error.
func (r *registry[C]) promote(i int) int {
	n := len(r.entries)
	if i < 0 || i >= n {
		panic(fmt.Sprintf("dragarea: promote index %d out of range [0, %d)", i, n))
	}
	e := r.entries[i]
	copy(r.entries[i:], r.entries[i+1:])
	r.entries[n-1] = e
	return n - 1
}

// all yields entries front-to-back (paint order). Entries appended while
// iterating are not visited.
func (r *registry[C]) all() iter.Seq2[int, Entry[C]] {
	return func(yield func(int, Entry[C]) bool) {
		for i, e := range r.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// backward yields entries back-to-front, topmost first.
func (r *registry[C]) backward() iter.Seq2[int, Entry[C]] {
	return func(yield func(int, Entry[C]) bool) {
		entries := r.entries
		for i := len(entries) - 1; i >= 0; i-- {
			if !yield(i, entries[i]) {
				return
			}
		}
	}
}

// sweep removes every entry for which keep reports false, preserving the
// relative order of the survivors. tracked is an index to follow through the
// compaction (-1 for none); its new index is returned, or -1 if it was
// removed.
func (r *registry[C]) sweep(keep func(Drawable[C]) bool, tracked int) (removed, newTracked int) {
	r.sweeping = true
	defer func() { r.sweeping = false }()

	newTracked = -1
	n := 0
	for i, e := range r.entries {
		if !keep(e.Drawable) {
			continue
		}
		if i == tracked {
			newTracked = n
		}
		r.entries[n] = e
		n++
	}
	removed = len(r.entries) - n
	clear(r.entries[n:])
	r.entries = r.entries[:n]
	return removed, newTracked
}
