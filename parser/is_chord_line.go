package parser

// IsChordLine reports whether every token of line reads as a chord, a
// no-chord or a bar repeat. It tells chord lines from lyrics and does not
// check durations. A line is never a chord line under an invalid grammar.
func IsChordLine(line string, opts ...Option) bool {
	o, err := buildOptions(opts)
	if err != nil {
		return false
	}
	g := o.grammar

	tokens := split(line)
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if g.IsBarRepeat(tok.text) {
			continue
		}
		cleaned := g.Clean(tok.text)
		if g.IsNoChord(cleaned) {
			continue
		}
		if _, err := o.parseChord(cleaned); err != nil {
			return false
		}
	}
	return true
}
