package container

import "strings"

// SimilarityGroup is one MAP entry: a set of interchangeable characters or
// multi-character strings, e.g. {"a", "á", "ae"} for a dictionary that
// treats those spellings as equivalent when suggesting corrections.
type SimilarityGroup struct {
	members []string
}

// NewSimilarityGroup splits a MAP entry into its members. Hunspell syntax
// groups multi-character members in parentheses, e.g. "a(ae)á"; bare
// characters stand for themselves.
func NewSimilarityGroup(entry string) SimilarityGroup {
	var g SimilarityGroup
	runes := []rune(entry)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '(' {
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			if end < len(runes) {
				g.members = append(g.members, string(runes[i+1:end]))
				i = end
				continue
			}
		}
		g.members = append(g.members, string(runes[i]))
	}
	return g
}

// Members returns the group's interchangeable spellings.
func (g SimilarityGroup) Members() []string { return g.members }

// Expand calls emit once for every string obtained by substituting, at
// position pos, one group member for a different member that matches the
// text at that position. It does not recurse across positions; the caller
// drives the position loop so fanout stays bounded.
func (g SimilarityGroup) Expand(word string, pos int, emit func(candidate string)) {
	for _, from := range g.members {
		if pos+len(from) > len(word) {
			continue
		}
		if word[pos:pos+len(from)] != from {
			continue
		}
		for _, to := range g.members {
			if to == from {
				continue
			}
			var b strings.Builder
			b.Grow(len(word) - len(from) + len(to))
			b.WriteString(word[:pos])
			b.WriteString(to)
			b.WriteString(word[pos+len(from):])
			emit(b.String())
		}
	}
}
