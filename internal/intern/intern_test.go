package intern

import "testing"

// TestInternReturnsCanonical verifies repeated interning yields one string
func TestInternReturnsCanonical(t *testing.T) {
	si := NewSpellingInterner(8)

	first := si.Intern("-fno-inline")
	second := si.Intern("-fno-inline")

	if first != second {
		t.Error("Expected equal strings from repeated interning")
	}
	if si.Stats() != 1 {
		t.Errorf("Expected 1 interned string, got %d", si.Stats())
	}
}

// TestInternBytes verifies byte-slice interning matches string interning
func TestInternBytes(t *testing.T) {
	si := NewSpellingInterner(8)

	fromString := si.Intern("-o")
	fromBytes := si.InternBytes([]byte("-o"))

	if fromString != fromBytes {
		t.Error("Expected byte and string interning to agree")
	}
	if si.Stats() != 1 {
		t.Errorf("Expected 1 interned string, got %d", si.Stats())
	}
}

// TestInternSuffix verifies joined-value tails intern correctly
func TestInternSuffix(t *testing.T) {
	si := NewSpellingInterner(8)

	if got := si.InternSuffix("-Iinclude", 2); got != "include" {
		t.Errorf("InternSuffix = %q, want 'include'", got)
	}
	if got := si.InternSuffix("-I", 2); got != "" {
		t.Errorf("Expected empty suffix, got %q", got)
	}
	if got := si.InternSuffix("-I", 5); got != "" {
		t.Errorf("Expected empty suffix past end, got %q", got)
	}
}

// TestPreInternAndClear verifies seeding and reset behavior
func TestPreInternAndClear(t *testing.T) {
	si := NewSpellingInterner(8)
	si.PreIntern([]string{"-o", "-c", "-I"})

	if si.Stats() != 3 {
		t.Errorf("Expected 3 pre-interned strings, got %d", si.Stats())
	}

	si.Clear()
	if si.Stats() != 0 {
		t.Errorf("Expected empty interner after Clear, got %d", si.Stats())
	}
}

// TestGlobalInterner verifies the process-wide interner is seeded
func TestGlobalInterner(t *testing.T) {
	if GlobalInterner == nil {
		t.Fatal("Expected global interner to be initialized")
	}
	if Intern("-o") != "-o" {
		t.Error("Expected pre-seeded spelling to intern to itself")
	}
	if InternSuffix("-Wl,a", 4) != "a" {
		t.Error("Expected global suffix interning to work")
	}
}

// TestInternConcurrent exercises the read/write lock paths
func TestInternConcurrent(t *testing.T) {
	si := NewSpellingInterner(8)
	done := make(chan struct{})

	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 1000; j++ {
				si.Intern("-fvectorize")
				si.Intern("-fno-vectorize")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	if si.Stats() != 2 {
		t.Errorf("Expected 2 interned strings, got %d", si.Stats())
	}
}
