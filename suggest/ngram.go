package suggest

import (
	"sort"

	"github.com/coregx/gospell/dic"
)

// ngramScore implements SPEC_FULL §4.4.2: a weighted sum of longest
// common subsequence, common prefix length, and n-gram overlaps (n in
// 2,3,4), penalized by the length difference.
func ngramScore(w, c []rune) float64 {
	lcs := lcsLen(w, c)
	lcp := commonPrefixLen(w, c)
	n2 := substringOverlap(w, c, 2)
	n3 := substringOverlap(w, c, 3)
	n4 := substringOverlap(w, c, 4)
	diff := len(w) - len(c)
	if diff < 0 {
		diff = -diff
	}
	return 2*float64(lcs) + float64(lcp) + 0.5*float64(n2) + float64(n3) + float64(n4) - float64(diff)
}

func lcsLen(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else if prev[j] >= cur[j-1] {
				cur[j] = prev[j]
			} else {
				cur[j] = cur[j-1]
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func commonPrefixLen(a, b []rune) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// substringOverlap counts how many length-n substrings of w also occur
// somewhere in c, per the spec's "Σ over substrings of w of length n
// that occur in c" definition.
func substringOverlap(w, c []rune, n int) int {
	if len(w) < n || len(c) < n {
		return 0
	}
	count := 0
	for i := 0; i+n <= len(w); i++ {
		sub := string(w[i : i+n])
		if containsRuneSubstring(c, sub, n) {
			count++
		}
	}
	return count
}

func containsRuneSubstring(c []rune, sub string, n int) bool {
	for j := 0; j+n <= len(c); j++ {
		if string(c[j:j+n]) == sub {
			return true
		}
	}
	return false
}

// commonCharacterScore is the tie-breaking "commoncharacter" score: each
// character of w present in c contributes, weighted down the further its
// position in w is from the start.
func commonCharacterScore(w, c []rune) float64 {
	present := make(map[rune]bool, len(c))
	for _, r := range c {
		present[r] = true
	}
	var score float64
	for i, r := range w {
		if present[r] {
			score += 1.0 / float64(i+1)
		}
	}
	return score
}

// maxDiffThreshold maps MAXDIFF (0..10) to a score cutoff, consulted
// only when ONLYMAXDIFF is set.
func maxDiffThreshold(maxDiff int) float64 {
	if maxDiff < 0 {
		maxDiff = 0
	}
	if maxDiff > 10 {
		maxDiff = 10
	}
	return float64(maxDiff)
}

type scoredCandidate struct {
	word  string
	score float64
	tie   float64
}

func (s *Suggester) suggestNgram(word string, c *collector) {
	if c.full() {
		return
	}
	limit := s.aff.MaxNgramSuggestions
	if limit <= 0 {
		limit = 4
	}
	wr := []rune(word)
	var scored []scoredCandidate
	s.words.Each(func(candidate string, stems []dic.Stem) {
		hidden := true
		for _, st := range stems {
			if !st.Hidden {
				hidden = false
				break
			}
		}
		if hidden || candidate == word {
			return
		}
		cr := []rune(candidate)
		sc := ngramScore(wr, cr)
		if s.aff.OnlyMaxDiff && sc < maxDiffThreshold(s.aff.MaxDiff) {
			return
		}
		scored = append(scored, scoredCandidate{word: candidate, score: sc, tie: commonCharacterScore(wr, cr)})
	})
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return scored[i].tie > scored[j].tie
	})
	emitted := 0
	for _, sc := range scored {
		if c.full() || emitted >= limit {
			break
		}
		before := len(c.out)
		s.emit(c, sc.word)
		if len(c.out) > before {
			emitted++
		}
	}
}
