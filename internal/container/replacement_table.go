package container

import "strings"

// ReplacementPair is one entry of the REP table: replace "from" with "to".
// Either side may carry a "^" (start-anchored) or "$" (end-anchored)
// marker; an entry with both markers is a whole-word replacement.
type ReplacementPair struct {
	From, To         string
	AnchoredAtStart  bool
	AnchoredAtEnd    bool
}

// Pattern strips the anchor markers, returning the literal text to search
// for.
func (p ReplacementPair) Pattern() string {
	s := p.From
	if p.AnchoredAtStart {
		s = strings.TrimPrefix(s, "^")
	}
	if p.AnchoredAtEnd {
		s = strings.TrimSuffix(s, "$")
	}
	return s
}

// ReplacementTable holds the REP table used by the suggester: candidate
// substitutions tried against a misspelling to recover a real word, e.g.
// "ph" -> "f" or a trailing "shun" -> "tion".
type ReplacementTable struct {
	pairs []ReplacementPair
}

// NewReplacementTable parses raw (from, to) pairs as read from the .aff
// file, splitting off "^"/"$" anchors.
func NewReplacementTable(raw [][2]string) *ReplacementTable {
	rt := &ReplacementTable{pairs: make([]ReplacementPair, 0, len(raw))}
	for _, kv := range raw {
		from, to := kv[0], kv[1]
		p := ReplacementPair{From: from, To: to}
		p.AnchoredAtStart = strings.HasPrefix(from, "^")
		p.AnchoredAtEnd = strings.HasSuffix(from, "$")
		rt.pairs = append(rt.pairs, p)
	}
	return rt
}

// Pairs returns the parsed table in file order.
func (rt *ReplacementTable) Pairs() []ReplacementPair {
	if rt == nil {
		return nil
	}
	return rt.pairs
}

// Apply generates every candidate string obtained by substituting one
// occurrence (or, for an unanchored pattern, every occurrence at every
// position) of a REP pattern in word. Candidates are not validated here;
// the suggester's pipeline runs each one through the recognizer.
func (rt *ReplacementTable) Apply(word string, emit func(candidate string)) {
	if rt == nil {
		return
	}
	for _, p := range rt.pairs {
		pattern := p.Pattern()
		if pattern == "" {
			continue
		}
		switch {
		case p.AnchoredAtStart && p.AnchoredAtEnd:
			if word == pattern {
				emit(p.To)
			}
		case p.AnchoredAtStart:
			if strings.HasPrefix(word, pattern) {
				emit(p.To + word[len(pattern):])
			}
		case p.AnchoredAtEnd:
			if strings.HasSuffix(word, pattern) {
				emit(word[:len(word)-len(pattern)] + p.To)
			}
		default:
			idx := 0
			for {
				i := strings.Index(word[idx:], pattern)
				if i < 0 {
					break
				}
				pos := idx + i
				emit(word[:pos] + p.To + word[pos+len(pattern):])
				idx = pos + len(pattern)
				if idx > len(word) {
					break
				}
			}
		}
	}
}
