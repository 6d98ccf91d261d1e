package pool

import "testing"

type scratch struct {
	data []string
}

// TestPoolGetPut verifies basic pooling behavior
func TestPoolGetPut(t *testing.T) {
	p := NewPool(func() *scratch {
		return &scratch{data: make([]string, 0, 4)}
	})

	obj := p.Get()
	if obj == nil {
		t.Fatal("Expected object from pool")
	}
	obj.data = append(obj.data, "-v")
	p.Put(obj)

	// Put(nil) must be a no-op.
	p.Put(nil)
}

// TestPoolReset verifies the reset hook runs before reuse
func TestPoolReset(t *testing.T) {
	p := NewPoolWithReset(
		func() *scratch {
			return &scratch{data: make([]string, 0, 4)}
		},
		func(s *scratch) {
			s.data = s.data[:0]
		},
	)

	obj := p.Get()
	obj.data = append(obj.data, "-o", "out.bin")
	p.Put(obj)

	reused := p.Get()
	if len(reused.data) != 0 {
		t.Errorf("Expected reset slice, got %v", reused.data)
	}
}

// TestStringSlicePool verifies value arenas reset length but keep capacity
func TestStringSlicePool(t *testing.T) {
	sp := NewStringSlicePool(16)

	arena := sp.Get()
	*arena = append(*arena, "a", "b", "c")
	sp.Put(arena)

	reused := sp.Get()
	if len(*reused) != 0 {
		t.Errorf("Expected empty arena, got %v", *reused)
	}
	if cap(*reused) < 3 {
		t.Errorf("Expected retained capacity, got %d", cap(*reused))
	}
}

// TestGlobalStringSlicePool verifies the convenience accessors
func TestGlobalStringSlicePool(t *testing.T) {
	arena := GetStringSlice()
	if arena == nil {
		t.Fatal("Expected arena from global pool")
	}
	*arena = append(*arena, "value")
	PutStringSlice(arena)
	PutStringSlice(nil)
}
