package opttable

// Option is one immutable record of the option table: a declared flag
// spelling, its kind, traits, and links to its group and alias target.
// Options are built once by NewTable and never mutated during matching.
type Option struct {
	id       string
	prefixes []string // declared prefixes, longest first
	name     string
	kind     Kind
	numArgs  int // meaningful only for KindMultiArg
	help     string
	metaVar  string
	flags    Flags

	group *Option // back-reference to the owning group record, if any
	alias *Option // direct alias target, if any
	final *Option // end of the alias chain (self when not an alias)

	index int // declaration order within the table
}

// ID returns the option's table identifier.
func (o *Option) ID() string { return o.id }

// Name returns the declared option name, without any prefix.
func (o *Option) Name() string { return o.name }

// Kind returns the option's kind.
func (o *Option) Kind() Kind { return o.kind }

// NumArgs returns the arity parameter. Non-zero only for KindMultiArg.
func (o *Option) NumArgs() int { return o.numArgs }

// Help returns the human-readable help text, if any.
func (o *Option) Help() string { return o.help }

// MetaVar returns the value-placeholder text for help rendering, if any.
func (o *Option) MetaVar() string { return o.metaVar }

// Flags returns the option's trait bitset.
func (o *Option) Flags() Flags { return o.flags }

// Prefixes returns the declared prefix set, longest first. The returned
// slice is shared with the table and must not be modified.
func (o *Option) Prefixes() []string { return o.prefixes }

// Spelling returns the option's primary spelling: its longest declared
// prefix followed by its name. Sentinel options have no spelling.
func (o *Option) Spelling() string {
	if len(o.prefixes) == 0 {
		return o.name
	}
	return o.prefixes[0] + o.name
}

// Index returns the option's declaration position in the table.
func (o *Option) Index() int { return o.index }

// Group returns the option's owning group record, or nil. The reference
// is a weak back-pointer for classification; it never affects matching.
func (o *Option) Group() *Option { return o.group }

// Alias returns the direct alias target, or nil if the option is not
// an alias.
func (o *Option) Alias() *Option { return o.alias }

// UnaliasedOption returns the final target of the option's alias chain,
// or the option itself when it is not an alias. Chains are validated
// acyclic at construction, so this is a single pointer read.
func (o *Option) UnaliasedOption() *Option { return o.final }

// GroupAncestry returns the chain of group records from the option's
// immediate group up to the root, outermost last. Resolution is lazy:
// the walk happens on demand and only serves classification.
func (o *Option) GroupAncestry() []*Option {
	var chain []*Option
	for g := o.group; g != nil; g = g.group {
		chain = append(chain, g)
	}
	return chain
}

// InGroup reports whether the option belongs to the given group, directly
// or through group nesting.
func (o *Option) InGroup(group *Option) bool {
	for g := o.group; g != nil; g = g.group {
		if g == group {
			return true
		}
	}
	return false
}

// matchesToken reports whether one of the option's spellings is a prefix
// of the token, returning the matched spelling. Flag options require the
// token to equal the spelling exactly. Prefixes are ordered longest first,
// so the longest matching spelling wins within the option.
func (o *Option) matchesToken(token string) (string, bool) {
	for _, prefix := range o.prefixes {
		spelled := len(prefix) + len(o.name)
		if len(token) < spelled {
			continue
		}
		if o.kind == KindFlag && len(token) != spelled {
			continue
		}
		if token[:len(prefix)] == prefix && token[len(prefix):spelled] == o.name {
			return token[:spelled], true
		}
	}
	return "", false
}
