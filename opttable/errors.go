package opttable

import "fmt"

// ErrorType represents table-construction error categories. A table that
// fails construction must never be scanned against; every category here
// is fatal before the first scan.
type ErrorType string

const (
	ErrorTypeDuplicateID       ErrorType = "duplicate_id"
	ErrorTypeDanglingAlias     ErrorType = "dangling_alias"
	ErrorTypeDanglingGroup     ErrorType = "dangling_group"
	ErrorTypeAliasCycle        ErrorType = "alias_cycle"
	ErrorTypeSelfAlias         ErrorType = "self_alias"
	ErrorTypeGroupCycle        ErrorType = "group_cycle"
	ErrorTypeAliasShape        ErrorType = "alias_shape"
	ErrorTypeBadArity          ErrorType = "bad_arity"
	ErrorTypeBadPrefixes       ErrorType = "bad_prefixes"
	ErrorTypeBadName           ErrorType = "bad_name"
	ErrorTypeAmbiguousSpelling ErrorType = "ambiguous_spelling"
)

// TableError reports a malformed option table detected at construction
// time (alias cycles, group cycles, dangling references, arity and prefix
// violations, duplicate spellings).
type TableError struct {
	Type     ErrorType
	Message  string
	OptionID string // offending option identifier, if any
	GroupID  string // offending group identifier, if any
}

func (e *TableError) Error() string {
	switch {
	case e.OptionID != "":
		return fmt.Sprintf("opttable: option %q: %s", e.OptionID, e.Message)
	case e.GroupID != "":
		return fmt.Sprintf("opttable: group %q: %s", e.GroupID, e.Message)
	default:
		return "opttable: " + e.Message
	}
}

// NewTableError creates a TableError with the given type and message
func NewTableError(errType ErrorType, message string) *TableError {
	return &TableError{
		Type:    errType,
		Message: message,
	}
}

// DiagCode identifies a per-token scan condition. Scan diagnostics are
// collected, never thrown: the scan always completes over the full stream.
type DiagCode string

const (
	// DiagUnsupportedOption reports a structural match on an option
	// carrying the Unsupported trait. Fatal for the caller to act on.
	DiagUnsupportedOption DiagCode = "unsupported_option"

	// DiagMissingValue reports that the deepest plausible candidate for a
	// token required trailing values the stream did not have.
	DiagMissingValue DiagCode = "missing_value"
)

// Diagnostic records one scan condition: the code, the option involved,
// and the index of the token that triggered it.
type Diagnostic struct {
	Code   DiagCode
	Option *Option // option involved; the matched spelling's record
	Index  int     // token index the condition was raised at
}

func (d Diagnostic) String() string {
	name := "<none>"
	if d.Option != nil {
		name = d.Option.ID()
	}
	return fmt.Sprintf("%s: option %s at token %d", d.Code, name, d.Index)
}

// IsFatal reports whether the diagnostic should stop the caller. Only
// unsupported-option diagnostics are fatal; the engine itself never aborts.
func (d Diagnostic) IsFatal() bool {
	return d.Code == DiagUnsupportedOption
}
