package opttable

import (
	"strings"

	"github.com/dvander/go-opttable/internal/intern"
)

// extract attempts to pull the values a candidate's kind requires from
// the token stream starting at pos. Values are appended to the arena and
// returned as a subslice of it; consumed counts the flag token plus any
// trailing value tokens.
//
// missingValue distinguishes "the shape matched but the stream ran out of
// trailing tokens" from a plain shape mismatch; the scanner uses it to
// emit one MissingValue diagnostic for the deepest plausible failure.
func extract(
	opt *Option,
	spelling string,
	tokens []string,
	pos int,
	arena *[]string,
) (values []string, consumed int, missingValue, ok bool) {
	token := tokens[pos]
	remaining := len(tokens) - pos - 1
	start := len(*arena)

	switch opt.kind {
	case KindFlag:
		// Matcher guarantees exact equality for Flag candidates.
		return nil, 1, false, true

	case KindJoined:
		if len(token) <= len(spelling) {
			return nil, 0, false, false
		}
		*arena = append(*arena, intern.InternSuffix(token, len(spelling)))
		return (*arena)[start:], 1, false, true

	case KindSeparate:
		if len(token) != len(spelling) {
			return nil, 0, false, false
		}
		if remaining < 1 {
			return nil, 0, true, false
		}
		*arena = append(*arena, intern.Intern(tokens[pos+1]))
		return (*arena)[start:], 2, false, true

	case KindJoinedOrSeparate:
		if len(token) > len(spelling) {
			*arena = append(*arena, intern.InternSuffix(token, len(spelling)))
			return (*arena)[start:], 1, false, true
		}
		if remaining < 1 {
			return nil, 0, true, false
		}
		*arena = append(*arena, intern.Intern(tokens[pos+1]))
		return (*arena)[start:], 2, false, true

	case KindJoinedAndSeparate:
		// Both halves must be present; a lone suffix or a lone next
		// token is not a match.
		if len(token) <= len(spelling) {
			return nil, 0, false, false
		}
		if remaining < 1 {
			return nil, 0, true, false
		}
		*arena = append(*arena,
			intern.InternSuffix(token, len(spelling)),
			intern.Intern(tokens[pos+1]))
		return (*arena)[start:], 2, false, true

	case KindCommaJoined:
		// The empty suffix still yields a single empty value, never
		// zero values.
		suffix := token[len(spelling):]
		for {
			i := strings.IndexByte(suffix, ',')
			if i < 0 {
				*arena = append(*arena, intern.Intern(suffix))
				break
			}
			*arena = append(*arena, intern.Intern(suffix[:i]))
			suffix = suffix[i+1:]
		}
		return (*arena)[start:], 1, false, true

	case KindMultiArg:
		if len(token) != len(spelling) {
			return nil, 0, false, false
		}
		if remaining < opt.numArgs {
			// No partial consumption: fewer than NumArgs trailing
			// tokens fails the whole match.
			return nil, 0, true, false
		}
		for i := 1; i <= opt.numArgs; i++ {
			*arena = append(*arena, intern.Intern(tokens[pos+i]))
		}
		return (*arena)[start:], 1 + opt.numArgs, false, true

	default:
		return nil, 0, false, false
	}
}
