package opttable

import (
	"sort"
	"strings"

	"github.com/dvander/go-opttable/internal/fuzzy"
	"github.com/dvander/go-opttable/internal/intern"
)

// OptionDef is the raw record shape emitted by the external table
// generator. Group and alias references are carried as identifiers and
// resolved during NewTable's second pass.
type OptionDef struct {
	ID       string
	Prefixes []string
	Name     string
	Kind     Kind
	NumArgs  int
	Help     string
	MetaVar  string
	Flags    Flags
	Group    string // identifier of the owning group record
	Alias    string // identifier of the alias target
}

// Table is an immutable, ordered collection of option records. It is
// built once from the generator's output, validated, and thereafter
// shared freely across goroutines without synchronization.
type Table struct {
	opts []*Option          // declaration order, sentinels appended last if synthesized
	byID map[string]*Option

	// matchable holds non-group, non-sentinel options pre-sorted by
	// (precedence asc, name length desc, declaration order). Candidate
	// search walks this slice in order.
	matchable []*Option

	// prefixes is the distinct set of declared prefixes, used for the
	// fast has-any-prefix check that short-circuits Input tokens.
	prefixes []string

	// spellings is every matchable prefix+name, for suggestions.
	spellings []string

	inputOpt   *Option
	unknownOpt *Option
}

// Reserved identifiers for sentinel records synthesized when the
// generator's output does not declare them.
const (
	inputOptionID   = "input"
	unknownOptionID = "unknown"
)

// NewTable builds and validates a Table from the generator's records.
// Construction is two-pass: records are created first, then group and
// alias references are linked and checked for dangling targets and
// cycles. Any violation returns a *TableError and no Table; the engine
// refuses to scan against a table that failed these checks.
func NewTable(defs []OptionDef) (*Table, error) {
	t := &Table{
		opts: make([]*Option, 0, len(defs)+2),
		byID: make(map[string]*Option, len(defs)+2),
	}

	// Pass 1: materialize records and check per-record invariants.
	for _, def := range defs {
		opt, err := buildOption(def)
		if err != nil {
			return nil, err
		}
		if _, dup := t.byID[opt.id]; dup {
			return nil, &TableError{
				Type:     ErrorTypeDuplicateID,
				Message:  "identifier declared more than once",
				OptionID: opt.id,
			}
		}
		opt.index = len(t.opts)
		t.opts = append(t.opts, opt)
		t.byID[opt.id] = opt
	}

	// Pass 2: link group and alias references.
	for i, def := range defs {
		if err := t.linkRefs(t.opts[i], def); err != nil {
			return nil, err
		}
	}

	if err := t.checkGroupCycles(); err != nil {
		return nil, err
	}
	if err := t.resolveAliases(); err != nil {
		return nil, err
	}

	t.ensureSentinels()

	if err := t.buildIndexes(); err != nil {
		return nil, err
	}

	return t, nil
}

// buildOption validates the per-record invariants of a definition and
// materializes the record. Reference fields are linked later.
func buildOption(def OptionDef) (*Option, error) {
	if def.ID == "" {
		return nil, NewTableError(ErrorTypeBadName, "empty option identifier")
	}

	opt := &Option{
		id:      def.ID,
		name:    def.Name,
		kind:    def.Kind,
		numArgs: def.NumArgs,
		help:    def.Help,
		metaVar: def.MetaVar,
		flags:   def.Flags,
	}

	switch {
	case def.Kind.IsSentinel() || def.Kind == KindGroup:
		if len(def.Prefixes) != 0 {
			return nil, &TableError{
				Type:     ErrorTypeBadPrefixes,
				Message:  "prefix set must be empty for " + def.Kind.String() + " records",
				OptionID: def.ID,
			}
		}
	default:
		if def.Name == "" {
			return nil, &TableError{
				Type:     ErrorTypeBadName,
				Message:  "matchable option requires a non-empty name",
				OptionID: def.ID,
			}
		}
		if len(def.Prefixes) == 0 {
			return nil, &TableError{
				Type:     ErrorTypeBadPrefixes,
				Message:  "matchable option requires at least one prefix",
				OptionID: def.ID,
			}
		}
		for _, prefix := range def.Prefixes {
			if prefix == "" {
				return nil, &TableError{
					Type:     ErrorTypeBadPrefixes,
					Message:  "empty prefix string",
					OptionID: def.ID,
				}
			}
		}
		// Longest prefix first so the longest spelling wins within
		// one option during matching.
		opt.prefixes = append([]string(nil), def.Prefixes...)
		sort.SliceStable(opt.prefixes, func(i, j int) bool {
			return len(opt.prefixes[i]) > len(opt.prefixes[j])
		})
	}

	switch {
	case def.Kind == KindMultiArg && def.NumArgs < 1:
		return nil, &TableError{
			Type:     ErrorTypeBadArity,
			Message:  "multi_arg option requires num_args >= 1",
			OptionID: def.ID,
		}
	case def.Kind != KindMultiArg && def.NumArgs != 0:
		return nil, &TableError{
			Type:     ErrorTypeBadArity,
			Message:  "num_args is meaningful only for multi_arg options",
			OptionID: def.ID,
		}
	}

	return opt, nil
}

// linkRefs resolves the string group/alias references of one record.
func (t *Table) linkRefs(opt *Option, def OptionDef) error {
	if def.Group != "" {
		group, ok := t.byID[def.Group]
		if !ok {
			return &TableError{
				Type:     ErrorTypeDanglingGroup,
				Message:  "group reference " + def.Group + " does not exist",
				OptionID: def.ID,
			}
		}
		if group.kind != KindGroup {
			return &TableError{
				Type:     ErrorTypeDanglingGroup,
				Message:  "group reference " + def.Group + " is not a group record",
				OptionID: def.ID,
			}
		}
		opt.group = group
	}

	if def.Alias != "" {
		target, ok := t.byID[def.Alias]
		if !ok {
			return &TableError{
				Type:     ErrorTypeDanglingAlias,
				Message:  "alias target " + def.Alias + " does not exist",
				OptionID: def.ID,
			}
		}
		if target == opt {
			return &TableError{
				Type:     ErrorTypeSelfAlias,
				Message:  "option aliases itself",
				OptionID: def.ID,
			}
		}
		if !opt.kind.Matchable() || !target.kind.Matchable() {
			return &TableError{
				Type:     ErrorTypeDanglingAlias,
				Message:  "aliases are only valid between matchable options",
				OptionID: def.ID,
			}
		}
		opt.alias = target
	}

	return nil
}

// checkGroupCycles verifies that group parent references form a forest.
func (t *Table) checkGroupCycles() error {
	for _, opt := range t.opts {
		if opt.kind != KindGroup {
			continue
		}
		slow, fast := opt, opt
		for fast != nil && fast.group != nil {
			slow = slow.group
			fast = fast.group.group
			if slow == fast {
				return &TableError{
					Type:    ErrorTypeGroupCycle,
					Message: "group parent references form a cycle",
					GroupID: opt.id,
				}
			}
		}
	}
	return nil
}

// resolveAliases follows every alias chain to its final target, rejecting
// cycles and shape-incompatible targets. After this pass UnaliasedOption
// is a single pointer read.
func (t *Table) resolveAliases() error {
	for _, opt := range t.opts {
		final := opt
		steps := 0
		for final.alias != nil {
			final = final.alias
			steps++
			if steps > len(t.opts) {
				return &TableError{
					Type:     ErrorTypeAliasCycle,
					Message:  "alias chain forms a cycle",
					OptionID: opt.id,
				}
			}
		}
		opt.final = final

		if opt.alias != nil && !shapeCompatible(opt, final) {
			return &TableError{
				Type:     ErrorTypeAliasShape,
				Message:  "alias value shape differs from target " + final.id,
				OptionID: opt.id,
			}
		}
	}
	return nil
}

// shapeCompatible reports whether an alias consumes the same value count
// as its final target, so extracted values pass through unchanged.
func shapeCompatible(alias, target *Option) bool {
	an, avar := alias.valueShape()
	tn, tvar := target.valueShape()
	return avar == tvar && an == tn
}

// valueShape returns the fixed value count of the option's kind, or
// variable=true for comma-joined lists.
func (o *Option) valueShape() (count int, variable bool) {
	switch o.kind {
	case KindFlag:
		return 0, false
	case KindSeparate, KindJoined, KindJoinedOrSeparate:
		return 1, false
	case KindJoinedAndSeparate:
		return 2, false
	case KindCommaJoined:
		return 0, true
	case KindMultiArg:
		return o.numArgs, false
	default:
		return 0, false
	}
}

// ensureSentinels synthesizes the Input and Unknown records when the
// generator's output does not declare them.
func (t *Table) ensureSentinels() {
	for _, opt := range t.opts {
		switch opt.kind {
		case KindInput:
			t.inputOpt = opt
		case KindUnknown:
			t.unknownOpt = opt
		}
	}

	if t.inputOpt == nil {
		t.inputOpt = t.addSynthesized(inputOptionID, KindInput)
	}
	if t.unknownOpt == nil {
		t.unknownOpt = t.addSynthesized(unknownOptionID, KindUnknown)
	}
}

func (t *Table) addSynthesized(id string, kind Kind) *Option {
	// Avoid colliding with a generator-chosen identifier.
	for {
		if _, taken := t.byID[id]; !taken {
			break
		}
		id = "_" + id
	}
	opt := &Option{id: id, kind: kind, index: len(t.opts)}
	opt.final = opt
	t.opts = append(t.opts, opt)
	t.byID[id] = opt
	return opt
}

// buildIndexes derives the matcher ordering, the distinct prefix set, and
// the spelling list, and rejects duplicate matchable spellings. Two
// matchable options with the same prefix+name would need a runtime
// tie-break the schema does not define, so the table is rejected instead.
func (t *Table) buildIndexes() error {
	seenSpelling := make(map[string]*Option)
	seenPrefix := make(map[string]struct{})

	for _, opt := range t.opts {
		if !opt.kind.Matchable() {
			continue
		}
		t.matchable = append(t.matchable, opt)

		for _, prefix := range opt.prefixes {
			if _, ok := seenPrefix[prefix]; !ok {
				seenPrefix[prefix] = struct{}{}
				t.prefixes = append(t.prefixes, prefix)
			}

			spelling := prefix + opt.name
			if prev, dup := seenSpelling[spelling]; dup {
				return &TableError{
					Type:     ErrorTypeAmbiguousSpelling,
					Message:  "spelling " + spelling + " already declared by " + prev.id,
					OptionID: opt.id,
				}
			}
			seenSpelling[spelling] = opt
			t.spellings = append(t.spellings, spelling)
		}
	}

	// Matcher order: precedence ascending, then declared-name length
	// descending so the longest, most specific name wins among equals,
	// then declaration order for stability.
	sort.SliceStable(t.matchable, func(i, j int) bool {
		a, b := t.matchable[i], t.matchable[j]
		if pa, pb := a.kind.Precedence(), b.kind.Precedence(); pa != pb {
			return pa < pb
		}
		if len(a.name) != len(b.name) {
			return len(a.name) > len(b.name)
		}
		return a.index < b.index
	})

	// Longer prefixes first so has-prefix checks report the most
	// specific prefix, and seed the interner with the spelling set.
	sort.SliceStable(t.prefixes, func(i, j int) bool {
		return len(t.prefixes[i]) > len(t.prefixes[j])
	})
	intern.GlobalInterner.PreIntern(t.spellings)

	return nil
}

// Options returns the table's records in declaration order. The returned
// slice is shared and must not be modified.
func (t *Table) Options() []*Option {
	return t.opts
}

// ByID returns the record with the given identifier.
func (t *Table) ByID(id string) (*Option, bool) {
	opt, ok := t.byID[id]
	return opt, ok
}

// InputOption returns the sentinel record bound to positional tokens.
func (t *Table) InputOption() *Option { return t.inputOpt }

// UnknownOption returns the sentinel record bound to unmatched prefixed
// tokens.
func (t *Table) UnknownOption() *Option { return t.unknownOpt }

// OptionsInGroup returns the matchable options that belong to the given
// group, directly or through nesting, in declaration order. Intended for
// help-layer consumers; never consulted during matching.
func (t *Table) OptionsInGroup(group *Option) []*Option {
	var members []*Option
	for _, opt := range t.opts {
		if opt.kind.Matchable() && opt.InGroup(group) {
			members = append(members, opt)
		}
	}
	return members
}

// Suggest returns the registered spelling closest to an unknown token,
// or empty when nothing is plausible. Hidden options are not suggested.
func (t *Table) Suggest(token string) string {
	visible := make([]string, 0, len(t.spellings))
	for _, opt := range t.matchable {
		if opt.flags.Has(HelpHidden) {
			continue
		}
		for _, prefix := range opt.prefixes {
			visible = append(visible, prefix+opt.name)
		}
	}
	return fuzzy.FindBestSpelling(token, visible, 2)
}

// hasOptionPrefix reports whether the token begins with any declared
// prefix. Tokens that do not are classified Input without a candidate
// search.
func (t *Table) hasOptionPrefix(token string) bool {
	for _, prefix := range t.prefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}
