package opttable

// Kind classifies how an option consumes values from the token stream.
// All kind-specific behavior is a finite dispatch keyed by this enum;
// there is no per-kind type hierarchy.
type Kind uint8

const (
	// KindGroup is a grouping node for help/classification. Groups are
	// never matched directly against tokens.
	KindGroup Kind = iota

	// KindFlag matches the token exactly and consumes no values.
	KindFlag

	// KindSeparate matches the token exactly and consumes the next token
	// as its single value.
	KindSeparate

	// KindCommaJoined consumes the suffix of the current token, split on
	// commas into one or more values.
	KindCommaJoined

	// KindMultiArg matches the token exactly and consumes the next
	// NumArgs tokens verbatim.
	KindMultiArg

	// KindJoinedOrSeparate consumes the suffix of the current token if
	// non-empty, otherwise the next token.
	KindJoinedOrSeparate

	// KindJoinedAndSeparate consumes both the suffix of the current token
	// and the next token.
	KindJoinedAndSeparate

	// KindJoined consumes the non-empty suffix of the current token as
	// its single value.
	KindJoined

	// KindInput classifies a bare positional token. Sentinel.
	KindInput

	// KindUnknown classifies a prefixed token no option accepted. Sentinel.
	KindUnknown
)

// kindInfo carries the static per-kind attributes used during matching.
type kindInfo struct {
	name       string
	precedence int  // lower is tried earlier against an ambiguous token
	sentinel   bool // true for fallback classification kinds
}

var kindTable = [...]kindInfo{
	KindGroup:             {"group", 0, false},
	KindFlag:              {"flag", 0, false},
	KindSeparate:          {"separate", 0, false},
	KindCommaJoined:       {"comma_joined", 0, false},
	KindMultiArg:          {"multi_arg", 0, false},
	KindJoinedOrSeparate:  {"joined_or_separate", 0, false},
	KindJoinedAndSeparate: {"joined_and_separate", 0, false},
	KindJoined:            {"joined", 1, false},
	KindInput:             {"input", 1, true},
	KindUnknown:           {"unknown", 2, true},
}

// Precedence returns the matching precedence of the kind. Candidates with
// lower precedence are tried first.
func (k Kind) Precedence() int {
	return kindTable[k].precedence
}

// IsSentinel reports whether the kind is a fallback classification bucket
// (Input, Unknown) rather than a declared flag shape.
func (k Kind) IsSentinel() bool {
	return kindTable[k].sentinel
}

// String returns the symbolic kind name used by table serializations.
func (k Kind) String() string {
	if int(k) < len(kindTable) {
		return kindTable[k].name
	}
	return "invalid"
}

// ParseKind resolves a symbolic kind name from a table serialization.
// The second return is false for unrecognized names.
func ParseKind(name string) (Kind, bool) {
	for k := range kindTable {
		if kindTable[k].name == name {
			return Kind(k), true
		}
	}
	return 0, false
}

// Matchable reports whether options of this kind participate in candidate
// search. Groups and sentinels never do.
func (k Kind) Matchable() bool {
	return k != KindGroup && !k.IsSentinel()
}
