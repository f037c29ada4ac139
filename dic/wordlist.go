// Package dic parses Hunspell .dic word lists against an already-parsed
// affix.Data and builds the stem -> flag-set multimap the recognizer
// queries.
package dic

import (
	"github.com/coregx/gospell/internal/casing"
	"github.com/coregx/gospell/internal/container"
)

// Stem is one dictionary entry: a surface stem, its flag set, and (if
// present) the raw morphological tag text carried after the flags.
type Stem struct {
	Word        string
	Flags       container.FlagSet
	MorphFields []string
	Hidden      bool // true for an automatically inserted casing variant
}

// WordList is a hash multimap from stem text to every Stem recorded
// under that text (a word may appear more than once with different flag
// sets).
type WordList struct {
	entries map[string][]Stem
}

// NewWordList returns an empty list with room for n entries, matching
// the .dic file's leading count-hint line.
func NewWordList(n int) *WordList {
	if n < 0 {
		n = 0
	}
	return &WordList{entries: make(map[string][]Stem, n)}
}

// Insert adds a stem entry.
func (w *WordList) Insert(s Stem) {
	w.entries[s.Word] = append(w.entries[s.Word], s)
}

// Lookup returns every Stem recorded under word.
func (w *WordList) Lookup(word string) []Stem {
	return w.entries[word]
}

// Len returns the number of distinct stem strings (not entries).
func (w *WordList) Len() int { return len(w.entries) }

// Each calls fn once per distinct stem string with every Stem recorded
// under it. Used by the suggester's n-gram and phonetic passes, which
// need to scan the whole list rather than look up one word.
func (w *WordList) Each(fn func(word string, stems []Stem)) {
	for word, stems := range w.entries {
		fn(word, stems)
	}
}

// insertHiddenHomonymIfNeeded implements the dic-parser step from
// SPEC_FULL §4.2/§3.2: an ALL_CAPITAL entry with non-empty flags, or a
// PASCAL/CAMEL entry, additionally gets a title-cased variant inserted
// with the hidden-homonym flag added, so that looking up a differently
// cased form of the input still finds the original entry. Entries
// carrying FORBIDDENWORD never get a hidden homonym: the whole point of
// FORBIDDENWORD is that no casing of the word should validate.
func insertHiddenHomonymIfNeeded(w *WordList, s Stem, forbiddenFlag container.Flag) {
	if forbiddenFlag != 0 && s.Flags.Contains(forbiddenFlag) {
		return
	}
	pattern := casing.Classify(s.Word)
	needsVariant := false
	switch pattern {
	case casing.AllCapital:
		needsVariant = len(s.Flags) > 0
	case casing.Pascal, casing.Camel:
		needsVariant = true
	}
	if !needsVariant {
		return
	}
	titled := casing.Title(s.Word)
	if titled == s.Word {
		return
	}
	hiddenFlags := s.Flags.Add(container.HiddenHomonymFlag)
	w.Insert(Stem{Word: titled, Flags: hiddenFlags, Hidden: true})
}
