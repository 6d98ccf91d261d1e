package opttable

// candidate pairs an option with the concrete spelling (prefix + name)
// that matched the front of a token.
type candidate struct {
	opt      *Option
	spelling string
}

// appendCandidates collects the candidates whose spelling prefixes the
// token, in matcher order, reusing buf. The table's matchable slice is
// pre-sorted by (precedence asc, name length desc, declaration order), so
// `-falign` always outranks `-f` and the result order is deterministic
// across runs.
//
// Flag options only become candidates on an exact spelling match; every
// other kind becomes a candidate on a textual prefix match and the
// extractor decides whether the shape holds.
func (t *Table) appendCandidates(token string, buf []candidate) []candidate {
	for _, opt := range t.matchable {
		if spelling, ok := opt.matchesToken(token); ok {
			buf = append(buf, candidate{opt: opt, spelling: spelling})
		}
	}
	return buf
}
