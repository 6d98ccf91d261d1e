package opttable

import "testing"

// TestKindPrecedence verifies the fixed precedence ordering of kinds
func TestKindPrecedence(t *testing.T) {
	zeroPrec := []Kind{
		KindGroup, KindFlag, KindSeparate, KindCommaJoined,
		KindMultiArg, KindJoinedOrSeparate, KindJoinedAndSeparate,
	}
	for _, k := range zeroPrec {
		if k.Precedence() != 0 {
			t.Errorf("Expected precedence 0 for %s, got %d", k, k.Precedence())
		}
	}

	if KindJoined.Precedence() != 1 {
		t.Errorf("Expected precedence 1 for joined, got %d", KindJoined.Precedence())
	}
	if KindInput.Precedence() != 1 {
		t.Errorf("Expected precedence 1 for input, got %d", KindInput.Precedence())
	}
	if KindUnknown.Precedence() != 2 {
		t.Errorf("Expected precedence 2 for unknown, got %d", KindUnknown.Precedence())
	}
}

// TestKindSentinel verifies that exactly Input and Unknown are sentinels
func TestKindSentinel(t *testing.T) {
	for k := KindGroup; k <= KindUnknown; k++ {
		want := k == KindInput || k == KindUnknown
		if k.IsSentinel() != want {
			t.Errorf("IsSentinel(%s) = %v, want %v", k, k.IsSentinel(), want)
		}
	}
}

// TestKindMatchable verifies groups and sentinels are excluded from matching
func TestKindMatchable(t *testing.T) {
	for k := KindGroup; k <= KindUnknown; k++ {
		want := k != KindGroup && !k.IsSentinel()
		if k.Matchable() != want {
			t.Errorf("Matchable(%s) = %v, want %v", k, k.Matchable(), want)
		}
	}
}

// TestParseKind verifies symbolic name round-trips
func TestParseKind(t *testing.T) {
	for k := KindGroup; k <= KindUnknown; k++ {
		parsed, ok := ParseKind(k.String())
		if !ok {
			t.Fatalf("ParseKind(%q) not recognized", k.String())
		}
		if parsed != k {
			t.Errorf("ParseKind(%q) = %v, want %v", k.String(), parsed, k)
		}
	}

	if _, ok := ParseKind("bogus"); ok {
		t.Error("Expected ParseKind to reject unknown name")
	}
}

// TestFlagsBitset verifies trait set operations and symbolic parsing
func TestFlagsBitset(t *testing.T) {
	f := DriverOnly | Unsupported

	if !f.Has(DriverOnly) {
		t.Error("Expected DriverOnly to be set")
	}
	if !f.Has(DriverOnly | Unsupported) {
		t.Error("Expected combined mask to be set")
	}
	if f.Has(LinkerInput) {
		t.Error("Expected LinkerInput to be unset")
	}

	if got := f.String(); got != "driver_only|unsupported" {
		t.Errorf("Flags.String() = %q", got)
	}
	if got := Flags(0).String(); got != "none" {
		t.Errorf("Flags(0).String() = %q", got)
	}

	for _, entry := range flagNames {
		bit, ok := ParseFlag(entry.name)
		if !ok || bit != entry.bit {
			t.Errorf("ParseFlag(%q) = %v, %v", entry.name, bit, ok)
		}
	}
	if _, ok := ParseFlag("bogus"); ok {
		t.Error("Expected ParseFlag to reject unknown name")
	}
}
