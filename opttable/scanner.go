package opttable

import (
	"github.com/dvander/go-opttable/internal/intern"
	"github.com/dvander/go-opttable/internal/pool"
)

// Arg is one classified argument: the option it resolved to (after alias
// rewriting), the literal spelling consumed, the extracted values, and
// the half-open range of consumed token indexes.
//
// Input and Unknown classifications are bound to the table's sentinel
// records; their raw token is carried as the single value.
type Arg struct {
	opt      *Option
	spelling string
	values   []string
	start    int
	end      int
	claimed  bool
}

// Option returns the bound option. Aliases are already rewritten to the
// final target of their chain.
func (a *Arg) Option() *Option { return a.opt }

// Spelling returns the literal flag spelling consumed from the token.
// Empty for Input and Unknown classifications.
func (a *Arg) Spelling() string { return a.spelling }

// Values returns the extracted values in order. The slice is owned by
// the Result and must not be modified.
func (a *Arg) Values() []string { return a.values }

// Value returns the first extracted value, or empty when there is none.
func (a *Arg) Value() string {
	if len(a.values) == 0 {
		return ""
	}
	return a.values[0]
}

// NumValues returns the number of extracted values.
func (a *Arg) NumValues() int { return len(a.values) }

// Range returns the half-open [start, end) token index range this
// argument consumed, for diagnostics and re-rendering.
func (a *Arg) Range() (start, end int) { return a.start, a.end }

// IsInput reports whether the argument is a bare positional token.
func (a *Arg) IsInput() bool { return a.opt.kind == KindInput }

// IsUnknown reports whether the argument is a prefixed token no option
// accepted.
func (a *Arg) IsUnknown() bool { return a.opt.kind == KindUnknown }

// Matched reports whether the argument bound to a declared option rather
// than a sentinel bucket.
func (a *Arg) Matched() bool { return !a.opt.kind.IsSentinel() }

// Claim marks the argument as consumed by a downstream stage. The
// external unused-argument correlator checks this.
func (a *Arg) Claim() { a.claimed = true }

// Claimed reports whether Claim has been called.
func (a *Arg) Claimed() bool { return a.claimed }

// NeedsUnusedWarning reports whether an external correlator should warn
// about this argument going unused: it matched a real option, was never
// claimed, and the option does not suppress the warning.
func (a *Arg) NeedsUnusedWarning() bool {
	return a.Matched() && !a.claimed && !a.opt.flags.Has(NoArgumentUnused)
}

// Result holds the classified argument sequence and the diagnostics of
// one scan. Results are created per scan and owned by the caller; call
// Release to return the internal buffers to their pools.
type Result struct {
	Args  []Arg
	Diags []Diagnostic

	values *[]string // pooled arena the Args' value slices point into
}

var resultPool = pool.NewPoolWithReset(
	func() *Result {
		return &Result{
			Args:  make([]Arg, 0, 16),
			Diags: make([]Diagnostic, 0, 4),
		}
	},
	func(r *Result) {
		r.Args = r.Args[:0]
		r.Diags = r.Diags[:0]
		r.values = nil
	},
)

// Release returns the result's buffers to their pools. The result and
// every Arg and value slice obtained from it are invalid afterwards.
func (r *Result) Release() {
	if r.values != nil {
		pool.PutStringSlice(r.values)
		r.values = nil
	}
	resultPool.Put(r)
}

// HasFatalDiag reports whether any collected diagnostic is fatal
// (unsupported option used).
func (r *Result) HasFatalDiag() bool {
	for _, d := range r.Diags {
		if d.IsFatal() {
			return true
		}
	}
	return false
}

// HasArg reports whether any argument bound to the given option.
func (r *Result) HasArg(opt *Option) bool {
	return r.LastArg(opt) != nil
}

// LastArg returns the last argument bound to the given option, or nil.
// Later spellings win, matching usual driver override semantics.
func (r *Result) LastArg(opt *Option) *Arg {
	for i := len(r.Args) - 1; i >= 0; i-- {
		if r.Args[i].opt == opt {
			return &r.Args[i]
		}
	}
	return nil
}

// LastValue returns the first value of the last argument bound to the
// given option.
func (r *Result) LastValue(opt *Option) (string, bool) {
	if arg := r.LastArg(opt); arg != nil && arg.NumValues() > 0 {
		return arg.Value(), true
	}
	return "", false
}

// Inputs returns the raw tokens classified as positional inputs, in
// stream order.
func (r *Result) Inputs() []string {
	var inputs []string
	for i := range r.Args {
		if r.Args[i].IsInput() {
			inputs = append(inputs, r.Args[i].Value())
		}
	}
	return inputs
}

// Unknowns returns the raw tokens no option accepted, in stream order.
func (r *Result) Unknowns() []string {
	var unknowns []string
	for i := range r.Args {
		if r.Args[i].IsUnknown() {
			unknowns = append(unknowns, r.Args[i].Value())
		}
	}
	return unknowns
}

// Scanner is the engine driver: a greedy, single-pass, left-to-right
// scan over one token stream against an immutable table.
//
// A Scanner is cheap and reusable but not safe for concurrent use; scan
// independent streams with independent Scanner instances sharing the
// same Table.
type Scanner struct {
	table   *Table
	candBuf []candidate // reused across tokens and scans
}

// NewScanner creates a scanner bound to the given table.
func NewScanner(table *Table) *Scanner {
	return &Scanner{
		table:   table,
		candBuf: make([]candidate, 0, 8),
	}
}

// Scan classifies the full token stream. It never stops early: every
// token is consumed and classified, and per-token conditions are
// collected into the result's diagnostic list. The caller owns the
// returned Result.
func (s *Scanner) Scan(tokens []string) *Result {
	res := resultPool.Get()
	res.values = pool.GetStringSlice()

	pos := 0
	for pos < len(tokens) {
		pos = s.scanOne(tokens, pos, res)
	}
	return res
}

// scanOne classifies the token at pos, appends exactly one Arg, and
// returns the position past everything the argument consumed.
func (s *Scanner) scanOne(tokens []string, pos int, res *Result) int {
	token := tokens[pos]

	// No declared prefix at all: positional input, no candidate search.
	if !s.table.hasOptionPrefix(token) {
		res.Args = append(res.Args, s.sentinelArg(s.table.inputOpt, token, pos, res))
		return pos + 1
	}

	s.candBuf = s.table.appendCandidates(token, s.candBuf[:0])

	// First extraction success in matcher order is the final match.
	// Track the first candidate that failed only for lack of trailing
	// tokens; it is the deepest plausible failure if nothing matches.
	var missing *Option
	for _, cand := range s.candBuf {
		values, consumed, missingValue, ok := extract(
			cand.opt, cand.spelling, tokens, pos, res.values)
		if ok {
			if cand.opt.flags.Has(Unsupported) {
				res.Diags = append(res.Diags, Diagnostic{
					Code:   DiagUnsupportedOption,
					Option: cand.opt,
					Index:  pos,
				})
			}
			res.Args = append(res.Args, Arg{
				opt:      cand.opt.final,
				spelling: intern.Intern(cand.spelling),
				values:   values,
				start:    pos,
				end:      pos + consumed,
			})
			return pos + consumed
		}
		if missingValue && missing == nil {
			missing = cand.opt
		}
	}

	// Prefixed but nothing accepted it.
	if missing != nil {
		res.Diags = append(res.Diags, Diagnostic{
			Code:   DiagMissingValue,
			Option: missing,
			Index:  pos,
		})
	}
	res.Args = append(res.Args, s.sentinelArg(s.table.unknownOpt, token, pos, res))
	return pos + 1
}

// sentinelArg builds an Input or Unknown argument carrying the raw token
// as its single value.
func (s *Scanner) sentinelArg(opt *Option, token string, pos int, res *Result) Arg {
	start := len(*res.values)
	*res.values = append(*res.values, intern.Intern(token))
	return Arg{
		opt:    opt,
		values: (*res.values)[start:],
		start:  pos,
		end:    pos + 1,
	}
}

// Scan is a convenience that runs one scan with a throwaway scanner.
func (t *Table) Scan(tokens []string) *Result {
	return NewScanner(t).Scan(tokens)
}
