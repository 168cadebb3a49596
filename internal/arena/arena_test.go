package arena

import (
	"sort"
	"testing"

	"golang.org/x/exp/maps"
)

func TestArena(t *testing.T) {
	a := New[string](2)

	ids := map[Identity]string{}
	for _, v := range []string{"a", "b", "c", "d", "e"} {
		id := a.Alloc(v)
		if id == Nil {
			t.Fatalf("nil identity allocated for %q", v)
		}
		ids[id] = v
	}
	if len(ids) != 5 {
		t.Fatalf("identities must be unique, got %d distinct", len(ids))
	}
	if a.Live() != 5 {
		t.Errorf("expected 5 live slots, got %d", a.Live())
	}

	for id, v := range ids {
		if got := *a.Get(id); got != v {
			t.Errorf("identity %x: expected %q, got %q", id, v, got)
		}
	}

	keys := maps.Keys(ids)
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	freed := keys[1]
	if v := a.Free(freed); v != ids[freed] {
		t.Errorf("free must return stored value %q, got %q", ids[freed], v)
	}
	if _, ok := a.Lookup(freed); ok {
		t.Error("freed identity must not be looked up")
	}

	reused := a.Alloc("f")
	if reused == freed {
		t.Error("reused slot must get a new identity")
	}
	if reused.index() != freed.index() {
		t.Errorf("slot %d must be reused, got %d", freed.index(), reused.index())
	}
	if a.Live() != 5 {
		t.Errorf("expected 5 live slots, got %d", a.Live())
	}
}

func TestArenaPointerStability(t *testing.T) {
	a := New[int](4)

	first := a.Alloc(1)
	p := a.Get(first)
	for i := 0; i < 100; i++ {
		a.Alloc(i)
	}

	*p = 42
	if v := *a.Get(first); v != 42 {
		t.Errorf("pointer must survive arena growth, got %d", v)
	}
	if len(a.chunks) != 26 {
		t.Errorf("expected 26 chunks, got %d", len(a.chunks))
	}
}

func TestArenaInvalidIdentities(t *testing.T) {
	a := New[int](8)
	id := a.Alloc(1)
	a.Free(id)

	tests := []struct {
		name string
		id   Identity
	}{
		{
			name: "nil",
			id:   Nil,
		},
		{
			name: "freed",
			id:   id,
		},
		{
			name: "never-allocated",
			id:   makeIdentity(5, 0),
		},
		{
			name: "out-of-range",
			id:   makeIdentity(1000, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Error("panic expected")
				}
			}()

			a.Get(tt.id)
		})
	}

	t.Run("double-free", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("panic expected")
			}
		}()

		a.Free(id)
	})
}
