package opttable

import "testing"

// matcherTable builds a table with overlapping spellings for candidate tests
func matcherTable(t *testing.T) *Table {
	t.Helper()
	table, err := NewTable([]OptionDef{
		{ID: "f", Prefixes: []string{"-"}, Name: "f", Kind: KindJoined},
		{ID: "falign", Prefixes: []string{"-"}, Name: "falign", Kind: KindFlag},
		{ID: "fast", Prefixes: []string{"-"}, Name: "fast", Kind: KindFlag},
		{ID: "o", Prefixes: []string{"-"}, Name: "o", Kind: KindJoinedOrSeparate},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	return table
}

// TestCandidateOrderPrefersLongestName verifies the name-length tie-break
// within equal precedence
func TestCandidateOrderPrefersLongestName(t *testing.T) {
	table := matcherTable(t)

	cands := table.appendCandidates("-falign", nil)
	if len(cands) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(cands))
	}
	// Flag -falign (precedence 0, exact) before Joined -f (precedence 1).
	if cands[0].opt.ID() != "falign" || cands[0].spelling != "-falign" {
		t.Errorf("Expected falign first, got %q (%q)", cands[0].opt.ID(), cands[0].spelling)
	}
	if cands[1].opt.ID() != "f" || cands[1].spelling != "-f" {
		t.Errorf("Expected f second, got %q (%q)", cands[1].opt.ID(), cands[1].spelling)
	}
}

// TestCandidateFlagRequiresExactToken verifies Flag kinds never candidate
// on a strict prefix
func TestCandidateFlagRequiresExactToken(t *testing.T) {
	table := matcherTable(t)

	cands := table.appendCandidates("-fastener", nil)
	// -fast is a Flag, so it must not appear; only Joined -f remains.
	if len(cands) != 1 || cands[0].opt.ID() != "f" {
		t.Fatalf("Expected only joined -f candidate, got %+v", cands)
	}
}

// TestCandidatePrecedenceBeforeLength verifies precedence outranks name length
func TestCandidatePrecedenceBeforeLength(t *testing.T) {
	table, err := NewTable([]OptionDef{
		// Joined has precedence 1 even though its name is longer.
		{ID: "machine", Prefixes: []string{"-"}, Name: "machine", Kind: KindJoined},
		{ID: "m", Prefixes: []string{"-"}, Name: "m", Kind: KindJoinedOrSeparate},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	cands := table.appendCandidates("-machine=arm", nil)
	if len(cands) != 2 {
		t.Fatalf("Expected 2 candidates, got %d", len(cands))
	}
	if cands[0].opt.ID() != "m" {
		t.Errorf("Expected precedence-0 option first, got %q", cands[0].opt.ID())
	}
	if cands[1].opt.ID() != "machine" {
		t.Errorf("Expected joined option second, got %q", cands[1].opt.ID())
	}
}

// TestCandidateLongestPrefixWithinOption verifies the longest declared
// prefix wins when several prefix the token
func TestCandidateLongestPrefixWithinOption(t *testing.T) {
	table, err := NewTable([]OptionDef{
		{ID: "help", Prefixes: []string{"-", "--"}, Name: "help", Kind: KindFlag},
	})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	cands := table.appendCandidates("--help", nil)
	if len(cands) != 1 || cands[0].spelling != "--help" {
		t.Fatalf("Expected spelling --help, got %+v", cands)
	}

	cands = table.appendCandidates("-help", cands[:0])
	if len(cands) != 1 || cands[0].spelling != "-help" {
		t.Fatalf("Expected spelling -help, got %+v", cands)
	}
}

// TestHasOptionPrefix verifies the input short-circuit predicate
func TestHasOptionPrefix(t *testing.T) {
	table := matcherTable(t)

	if table.hasOptionPrefix("foo.c") {
		t.Error("Expected no prefix for bare token")
	}
	if !table.hasOptionPrefix("-anything") {
		t.Error("Expected dash token to have a declared prefix")
	}
	if table.hasOptionPrefix("") {
		t.Error("Expected empty token to have no prefix")
	}
}
