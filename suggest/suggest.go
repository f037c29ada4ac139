// Package suggest implements the multi-strategy correction pipeline:
// given a word the recognizer rejects, produce an ordered list of
// plausible corrections.
package suggest

import (
	"unicode/utf8"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/dic"
	"github.com/coregx/gospell/internal/casing"
	"github.com/coregx/gospell/internal/container"
)

// Speller is the subset of *recognize.Recognizer the suggester needs;
// declared as an interface so this package's tests can use a fake.
type Speller interface {
	Spell(word string) bool
}

// Suggester runs the pipeline from SPEC_FULL §4.4 against a loaded
// aff+dic pair, using rec as the oracle that validates every candidate.
type Suggester struct {
	aff   *affix.Data
	words *dic.WordList
	rec   Speller

	// MaxSuggestions caps the returned list length.
	MaxSuggestions int

	// mapAuto locates every position a MAP-group member starts at in one
	// scan of the word, so suggestMap only visits positions with an
	// actual candidate instead of every rune offset.
	mapAuto *ahocorasick.Automaton
}

// New returns a Suggester. rec is typically recognize.New(aff, words).
func New(aff *affix.Data, words *dic.WordList, rec Speller) *Suggester {
	return &Suggester{aff: aff, words: words, rec: rec, MaxSuggestions: 15, mapAuto: buildMapAutomaton(aff.Map)}
}

// buildMapAutomaton compiles the union of every MAP group's members into a
// single automaton. Which group(s) a match belongs to is resolved by
// SimilarityGroup.Expand itself once a candidate position is known, so
// membership doesn't need to be tracked here.
func buildMapAutomaton(groups []container.SimilarityGroup) *ahocorasick.Automaton {
	b := ahocorasick.NewBuilder()
	seen := make(map[string]bool)
	added := false
	for _, g := range groups {
		for _, m := range g.Members() {
			if m == "" || seen[m] {
				continue
			}
			seen[m] = true
			if err := b.AddPattern([]byte(m)); err == nil {
				added = true
			}
		}
	}
	if !added {
		return nil
	}
	auto, err := b.Build()
	if err != nil {
		return nil
	}
	return auto
}

type collector struct {
	seen  map[string]bool
	limit int
	out   []string
}

func newCollector(limit int) *collector {
	return &collector{seen: make(map[string]bool), limit: limit}
}

func (c *collector) full() bool { return c.limit > 0 && len(c.out) >= c.limit }

func (c *collector) add(s string) {
	if c.full() || s == "" || c.seen[s] {
		return
	}
	c.seen[s] = true
	c.out = append(c.out, s)
}

// Suggest appends corrections for word to *out, following the pipeline
// order from SPEC_FULL §4.4. word is assumed to already have failed
// Spell; Suggest does not check this itself.
func (s *Suggester) Suggest(word string, out *[]string) {
	if !utf8.ValidString(word) || word == "" {
		return
	}
	c := newCollector(s.MaxSuggestions)
	pattern := casing.Classify(word)

	s.suggestIconv(word, c)
	s.suggestRep(word, c)
	s.suggestCaseSplits(word, c)
	s.suggestMap(word, c)
	s.suggestSwaps(word, c)
	s.suggestKeyAndTry(word, c)
	s.suggestExtraChar(word, c)
	s.suggestForgottenChar(word, c)
	s.suggestMoveChar(word, c)
	if !s.aff.NoSplitSuggestions {
		s.suggestSplit(word, c)
	}
	if s.aff.Phone != nil {
		s.suggestPhonetic(word, c)
	}
	s.suggestNgram(word, c)

	final := newCollector(0)
	for _, cand := range c.out {
		cand = s.applyOconv(cand)
		cand = s.restoreCasing(cand, pattern)
		if !s.candidateAllowed(cand) {
			continue
		}
		final.add(cand)
	}
	*out = append(*out, final.out...)
}

func (s *Suggester) validate(word string) bool {
	return s.rec != nil && s.rec.Spell(word)
}

func (s *Suggester) emit(c *collector, candidate string) {
	if c.full() {
		return
	}
	if s.validate(candidate) {
		c.add(candidate)
	}
}

// candidateAllowed rejects a final candidate that resolves to an exact
// dictionary stem carrying NOSUGGEST/FORBIDDENWORD/ONLYINCOMPOUND/
// SUBSTANDARD, per §4.4's last paragraph.
func (s *Suggester) candidateAllowed(candidate string) bool {
	for _, stem := range s.words.Lookup(candidate) {
		if s.aff.NoSuggestFlag != 0 && stem.Flags.Contains(s.aff.NoSuggestFlag) {
			return false
		}
		if s.aff.ForbiddenWordFlag != 0 && stem.Flags.Contains(s.aff.ForbiddenWordFlag) {
			return false
		}
		if s.aff.OnlyInCompoundFlag != 0 && stem.Flags.Contains(s.aff.OnlyInCompoundFlag) {
			return false
		}
		if s.aff.SubstandardFlag != 0 && stem.Flags.Contains(s.aff.SubstandardFlag) {
			return false
		}
	}
	return true
}

func (s *Suggester) applyOconv(word string) string {
	if s.aff.Oconv == nil {
		return word
	}
	return s.aff.Oconv.Replace(word)
}

// restoreCasing implements §4.4's casing-restoration rule: ALL_CAPITAL
// input uppercases suggestions, INIT_CAPITAL input title-cases them,
// unless the dictionary entry backing the candidate is already cased
// differently (approximated here by only restoring casing when the
// candidate is currently all-lowercase, so an intentionally cased
// dictionary word like "NASA" or "McDonald" survives untouched).
func (s *Suggester) restoreCasing(word string, pattern casing.Pattern) string {
	if casing.Classify(word) != casing.Small {
		return word
	}
	switch pattern {
	case casing.AllCapital:
		return s.aff.Upper(word)
	case casing.InitCapital:
		return s.aff.Title(word)
	default:
		return word
	}
}

func (s *Suggester) suggestIconv(word string, c *collector) {
	if s.aff.Iconv == nil {
		return
	}
	converted := s.aff.Iconv.Replace(word)
	if converted != word {
		s.emit(c, converted)
	}
}

func (s *Suggester) suggestRep(word string, c *collector) {
	if s.aff.Rep == nil {
		return
	}
	s.aff.Rep.Apply(word, func(candidate string) { s.emit(c, candidate) })
}

func (s *Suggester) suggestCaseSplits(word string, c *collector) {
	s.emit(c, s.aff.Lower(word))
	s.emit(c, s.aff.Title(word))
}

func (s *Suggester) suggestMap(word string, c *collector) {
	if s.mapAuto == nil {
		return
	}
	haystack := []byte(word)
	pos := 0
	for pos <= len(haystack) {
		m := s.mapAuto.Find(haystack, pos)
		if m == nil {
			return
		}
		for _, group := range s.aff.Map {
			group.Expand(word, m.Start, func(candidate string) { s.emit(c, candidate) })
		}
		pos = m.Start + 1
	}
}

func (s *Suggester) suggestSwaps(word string, c *collector) {
	runes := []rune(word)
	n := len(runes)
	for i := 0; i+1 < n; i++ {
		swapped := append([]rune(nil), runes...)
		swapped[i], swapped[i+1] = swapped[i+1], swapped[i]
		s.emit(c, string(swapped))
	}
	if n >= 2 {
		swapped := append([]rune(nil), runes...)
		swapped[0], swapped[n-1] = swapped[n-1], swapped[0]
		s.emit(c, string(swapped))
	}
	for i := 0; i+2 < n; i++ {
		swapped := append([]rune(nil), runes...)
		swapped[i], swapped[i+2] = swapped[i+2], swapped[i]
		s.emit(c, string(swapped))
	}
}

func (s *Suggester) suggestKeyAndTry(word string, c *collector) {
	runes := []rune(word)
	for i, r := range runes {
		for _, neighbor := range keyNeighbors(s.aff.KeyRows, r) {
			s.emit(c, replaceRune(runes, i, neighbor))
		}
		for _, t := range s.aff.TryChars {
			s.emit(c, replaceRune(runes, i, t))
		}
		upper := s.aff.Upper(string(r))
		lower := s.aff.Lower(string(r))
		if []rune(upper)[0] != r {
			s.emit(c, replaceRune(runes, i, []rune(upper)[0]))
		}
		if []rune(lower)[0] != r {
			s.emit(c, replaceRune(runes, i, []rune(lower)[0]))
		}
	}
}

func keyNeighbors(rows []string, r rune) []rune {
	var out []rune
	for _, row := range rows {
		runes := []rune(row)
		for i, c := range runes {
			if c != r {
				continue
			}
			if i > 0 {
				out = append(out, runes[i-1])
			}
			if i+1 < len(runes) {
				out = append(out, runes[i+1])
			}
		}
	}
	return out
}

func replaceRune(runes []rune, i int, r rune) string {
	out := append([]rune(nil), runes...)
	out[i] = r
	return string(out)
}

func (s *Suggester) suggestExtraChar(word string, c *collector) {
	runes := []rune(word)
	for i := range runes {
		candidate := append(append([]rune(nil), runes[:i]...), runes[i+1:]...)
		s.emit(c, string(candidate))
	}
}

func (s *Suggester) suggestForgottenChar(word string, c *collector) {
	runes := []rune(word)
	for i := 0; i <= len(runes); i++ {
		for _, t := range s.aff.TryChars {
			candidate := make([]rune, 0, len(runes)+1)
			candidate = append(candidate, runes[:i]...)
			candidate = append(candidate, t)
			candidate = append(candidate, runes[i:]...)
			s.emit(c, string(candidate))
		}
	}
}

func (s *Suggester) suggestMoveChar(word string, c *collector) {
	runes := []rune(word)
	n := len(runes)
	const maxMove = 4
	for i := 0; i < n; i++ {
		for d := 1; d <= maxMove; d++ {
			if j := i + d; j < n {
				s.emit(c, string(moveRune(runes, i, j)))
			}
			if j := i - d; j >= 0 {
				s.emit(c, string(moveRune(runes, i, j)))
			}
		}
	}
}

func moveRune(runes []rune, from, to int) []rune {
	out := append([]rune(nil), runes...)
	r := out[from]
	out = append(out[:from], out[from+1:]...)
	result := make([]rune, 0, len(runes))
	result = append(result, out[:to]...)
	result = append(result, r)
	result = append(result, out[to:]...)
	return result
}

func (s *Suggester) suggestSplit(word string, c *collector) {
	runes := []rune(word)
	for i := 1; i < len(runes); i++ {
		left, right := string(runes[:i]), string(runes[i:])
		if s.validate(left) && s.validate(right) {
			c.add(left + " " + right)
		}
	}
}
