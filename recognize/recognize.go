// Package recognize implements the morphological recognizer: deciding
// whether a word is valid by stripping affixes and exploring compound
// splits against a loaded dictionary.
package recognize

import (
	"unicode/utf8"

	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/internal/casing"
	"github.com/coregx/gospell/dic"
)

// maxInputBytes is the guard from SPEC_FULL §4.3.6: input longer than
// this is rejected without lookup.
const maxInputBytes = 360

// Recognizer decides word validity against one loaded aff+dic pair. It
// holds no mutable state: every query is a pure function of its input.
type Recognizer struct {
	aff   *affix.Data
	words *dic.WordList
}

// New returns a Recognizer over aff and words.
func New(aff *affix.Data, words *dic.WordList) *Recognizer {
	return &Recognizer{aff: aff, words: words}
}

// Spell reports whether word is a valid word or compound, per SPEC_FULL
// §4.3. It never panics on malformed input: oversize or invalid UTF-8
// input is simply rejected.
func (r *Recognizer) Spell(word string) bool {
	if len(word) == 0 {
		return false
	}
	if len(word) > maxInputBytes {
		return false
	}
	if !utf8.ValidString(word) {
		return false
	}
	return r.checkCasingVariants(word)
}

// checkCasingVariants implements §4.3.1.
func (r *Recognizer) checkCasingVariants(word string) bool {
	switch casing.Classify(word) {
	case casing.Small:
		return r.checkWord(word, false)
	case casing.InitCapital:
		if r.checkWord(word, false) {
			return true
		}
		return r.checkWord(r.aff.Lower(word), false)
	case casing.AllCapital:
		if r.checkWord(word, false) {
			return true
		}
		if r.checkWord(r.aff.Title(word), false) {
			return true
		}
		return r.checkWord(r.aff.Lower(word), false)
	default: // Pascal, Camel
		return r.checkWord(word, false)
	}
}

// checkWord tries a simple dictionary/affix match, then compounding,
// then the break-pattern retry, in that order, per §4.3.2-4.3.5.
func (r *Recognizer) checkWord(word string, insideCompound bool) bool {
	if r.checkSimpleOrAffixed(word, insideCompound) {
		return true
	}
	if r.compoundingEnabled() && r.checkCompound(word) {
		return true
	}
	if !insideCompound && r.checkBreakPatterns(word) {
		return true
	}
	return false
}

// checkSimpleOrAffixed implements §4.3.2: bare stem lookup plus single
// and two-level affix stripping.
func (r *Recognizer) checkSimpleOrAffixed(word string, insideCompound bool) bool {
	if r.checkBareStem(word, insideCompound) {
		return true
	}
	if r.stripSuffix(word, insideCompound) {
		return true
	}
	if r.stripPrefix(word, insideCompound) {
		return true
	}
	if r.stripCrossProduct(word, insideCompound) {
		return true
	}
	return false
}

func (r *Recognizer) checkBareStem(word string, insideCompound bool) bool {
	for _, s := range r.words.Lookup(word) {
		if r.stemRejected(s, insideCompound) {
			continue
		}
		if r.aff.NeedAffixFlag != 0 && s.Flags.Contains(r.aff.NeedAffixFlag) {
			continue
		}
		return true
	}
	return false
}

// stemRejected applies the flags that universally disqualify a stem
// from matching regardless of how it was reached: FORBIDDENWORD always,
// FORBIDWARN+WARN per §4.3.6, and ONLYINCOMPOUND when insideCompound is
// false.
func (r *Recognizer) stemRejected(s dic.Stem, insideCompound bool) bool {
	if r.aff.ForbiddenWordFlag != 0 && s.Flags.Contains(r.aff.ForbiddenWordFlag) {
		return true
	}
	if r.aff.ForbidWarn && r.aff.WarnFlag != 0 && s.Flags.Contains(r.aff.WarnFlag) {
		return true
	}
	if !insideCompound && r.aff.OnlyInCompoundFlag != 0 && s.Flags.Contains(r.aff.OnlyInCompoundFlag) {
		return true
	}
	return false
}

func (r *Recognizer) stripSuffix(word string, insideCompound bool) bool {
	for _, e := range r.aff.Suffixes.CandidatesFor(word) {
		root := e.StripRoot(word)
		if !r.aff.FullStrip && root == word {
			continue
		}
		if root == "" && !r.aff.FullStrip {
			continue
		}
		if !e.MatchesCondition(root) {
			continue
		}
		if r.affixAppliesToStem(root, e, insideCompound) {
			return true
		}
		if r.tryInnerSuffix(root, e, insideCompound) {
			return true
		}
	}
	return false
}

func (r *Recognizer) stripPrefix(word string, insideCompound bool) bool {
	for _, e := range r.aff.Prefixes.CandidatesFor(word) {
		root := e.StripRoot(word)
		if root == "" && !r.aff.FullStrip {
			continue
		}
		if !e.MatchesCondition(root) {
			continue
		}
		if r.affixAppliesToStem(root, e, insideCompound) {
			return true
		}
		if r.tryInnerPrefix(root, e, insideCompound) {
			return true
		}
	}
	return false
}

// stripCrossProduct tries one prefix and one suffix together, both
// required to carry CrossProduct, per §3.3/§4.3.2's two-level bullet.
func (r *Recognizer) stripCrossProduct(word string, insideCompound bool) bool {
	for _, sfx := range r.aff.Suffixes.CandidatesFor(word) {
		if !sfx.CrossProduct {
			continue
		}
		mid := sfx.StripRoot(word)
		if mid == "" {
			continue
		}
		if !sfx.MatchesCondition(mid) {
			continue
		}
		for _, pfx := range r.aff.Prefixes.CandidatesFor(mid) {
			if !pfx.CrossProduct {
				continue
			}
			root := pfx.StripRoot(mid)
			if root == "" && !r.aff.FullStrip {
				continue
			}
			if !pfx.MatchesCondition(root) {
				continue
			}
			for _, s := range r.words.Lookup(root) {
				if r.stemRejected(s, insideCompound) {
					continue
				}
				if s.Flags.Contains(sfx.Flag) && s.Flags.Contains(pfx.Flag) {
					return true
				}
			}
		}
	}
	return false
}

// affixAppliesToStem checks that root is a real dictionary stem carrying
// e.Flag (so this affix may derive from it), honoring CIRCUMFIX.
func (r *Recognizer) affixAppliesToStem(root string, e *affix.Entry, insideCompound bool) bool {
	for _, s := range r.words.Lookup(root) {
		if r.stemRejected(s, insideCompound) {
			continue
		}
		if !s.Flags.Contains(e.Flag) {
			continue
		}
		if r.aff.CircumfixFlag != 0 && e.ContinuationFlags.Contains(r.aff.CircumfixFlag) {
			// A circumfix affix applied alone (without its inner
			// partner) is invalid.
			continue
		}
		return true
	}
	return false
}

// tryInnerSuffix implements suffix-then-suffix stacking: an inner
// suffix whose flag is among outer's continuation flags is stripped
// from root, and the resulting stem must carry the inner suffix's flag.
func (r *Recognizer) tryInnerSuffix(root string, outer *affix.Entry, insideCompound bool) bool {
	if len(outer.ContinuationFlags) == 0 {
		return false
	}
	if r.aff.ComplexPrefixes {
		return false
	}
	for _, inner := range r.aff.Suffixes.CandidatesFor(root) {
		if !outer.ContinuationFlags.Contains(inner.Flag) {
			continue
		}
		stem := inner.StripRoot(root)
		if stem == "" && !r.aff.FullStrip {
			continue
		}
		if !inner.MatchesCondition(stem) {
			continue
		}
		for _, s := range r.words.Lookup(stem) {
			if r.stemRejected(s, insideCompound) {
				continue
			}
			if s.Flags.Contains(inner.Flag) {
				return true
			}
		}
	}
	return false
}

func (r *Recognizer) tryInnerPrefix(root string, outer *affix.Entry, insideCompound bool) bool {
	if len(outer.ContinuationFlags) == 0 {
		return false
	}
	if !r.aff.ComplexPrefixes {
		return false
	}
	for _, inner := range r.aff.Prefixes.CandidatesFor(root) {
		if !outer.ContinuationFlags.Contains(inner.Flag) {
			continue
		}
		stem := inner.StripRoot(root)
		if stem == "" && !r.aff.FullStrip {
			continue
		}
		if !inner.MatchesCondition(stem) {
			continue
		}
		for _, s := range r.words.Lookup(stem) {
			if r.stemRejected(s, insideCompound) {
				continue
			}
			if s.Flags.Contains(inner.Flag) {
				return true
			}
		}
	}
	return false
}

func (r *Recognizer) compoundingEnabled() bool {
	a := r.aff
	return a.CompoundFlag != 0 || a.CompoundBeginFlag != 0 || a.CompoundMiddleFlag != 0 ||
		a.CompoundEndFlag != 0 || (a.CompoundRules != nil && !a.CompoundRules.Empty())
}

func (r *Recognizer) checkBreakPatterns(word string) bool {
	if r.aff.Break == nil || r.aff.Break.Empty() {
		return false
	}
	stripped := r.aff.Break.StripEdges(word)
	if stripped != word {
		return r.checkWord(stripped, false)
	}
	left, right, ok := r.aff.Break.SplitMiddle(word)
	if !ok {
		return false
	}
	return r.checkWord(left, false) && r.checkWord(right, false)
}
