package dragarea

import "testing"

func newRegistry(names ...string) *registry[*canvas] {
	r := &registry[*canvas]{}
	for i, n := range names {
		r.push(newSquare(n), float64(i), 0)
	}
	return r
}

func registryNames(r *registry[*canvas]) []string {
	var out []string
	for _, e := range r.all() {
		out = append(out, e.Drawable.(*square).name)
	}
	return out
}

func TestRegistryPromote(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  []string
	}{
		{"first", 0, []string{"b", "c", "d", "a"}},
		{"middle", 1, []string{"a", "c", "d", "b"}},
		{"last", 3, []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry("a", "b", "c", "d")
			got := r.promote(tt.index)
			if got != 3 {
				t.Errorf("promote(%d) = %d, want 3", tt.index, got)
			}
			if names := registryNames(r); !equalStrings(names, tt.want) {
				t.Errorf("order = %v, want %v", names, tt.want)
			}
		})
	}
}

func TestRegistryPromoteKeepsPosition(t *testing.T) {
	r := newRegistry("a", "b", "c")
	r.entries[0].X, r.entries[0].Y = 42, 24
	i := r.promote(0)
	if e := r.entries[i]; e.X != 42 || e.Y != 24 {
		t.Errorf("promoted entry at (%v, %v), want (42, 24)", e.X, e.Y)
	}
}

func TestRegistryPromoteOutOfRangePanics(t *testing.T) {
	for _, i := range []int{-1, 3} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("promote(%d) should panic", i)
				}
			}()
			newRegistry("a", "b", "c").promote(i)
		}()
	}
}

func TestRegistryBackward(t *testing.T) {
	r := newRegistry("a", "b", "c")
	var got []string
	for _, e := range r.backward() {
		got = append(got, e.Drawable.(*square).name)
	}
	if !equalStrings(got, []string{"c", "b", "a"}) {
		t.Errorf("backward = %v, want [c b a]", got)
	}

	empty := &registry[*canvas]{}
	for range empty.backward() {
		t.Error("empty registry should yield nothing")
	}
}

func TestRegistrySweep(t *testing.T) {
	r := newRegistry("a", "b", "c", "d", "e")
	drop := map[string]bool{"b": true, "d": true}
	keep := func(d Drawable[*canvas]) bool { return !drop[d.(*square).name] }

	removed, tracked := r.sweep(keep, 4)
	if removed != 2 {
		t.Errorf("removed = %d, want 2", removed)
	}
	if tracked != 2 {
		t.Errorf("tracked index = %d, want 2", tracked)
	}
	if got := registryNames(r); !equalStrings(got, []string{"a", "c", "e"}) {
		t.Errorf("order = %v, want [a c e]", got)
	}
	if r.sweeping {
		t.Error("sweeping flag should be reset")
	}
}

func TestRegistrySweepTrackedRemoved(t *testing.T) {
	r := newRegistry("a", "b")
	keep := func(d Drawable[*canvas]) bool { return d.(*square).name != "b" }
	if _, tracked := r.sweep(keep, 1); tracked != -1 {
		t.Errorf("tracked index = %d, want -1", tracked)
	}
}

func TestRegistrySweepNothing(t *testing.T) {
	r := newRegistry("a", "b")
	removed, tracked := r.sweep(func(Drawable[*canvas]) bool { return true }, -1)
	if removed != 0 || tracked != -1 {
		t.Errorf("sweep = (%d, %d), want (0, -1)", removed, tracked)
	}
	if len(r.entries) != 2 {
		t.Errorf("len = %d, want 2", len(r.entries))
	}
}
