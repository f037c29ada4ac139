package suggest

import (
	"sort"

	"github.com/coregx/gospell/dic"
)

// suggestPhonetic implements §4.4 step 11: compute the phonetic code of
// word and rank dictionary stems whose own phonetic code is identical,
// emitting up to MAXPHONSUGS. Stems with a merely similar code are not
// considered.
func (s *Suggester) suggestPhonetic(word string, c *collector) {
	if c.full() {
		return
	}
	limit := s.aff.MaxPhoneticSuggestions
	if limit <= 0 {
		limit = 2
	}
	target := s.aff.Phone.Transform(s.aff.Upper(word))
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
		code := s.aff.Phone.Transform(s.aff.Upper(candidate))
		if code != target {
			return
		}
		cr := []rune(candidate)
		scored = append(scored, scoredCandidate{word: candidate, score: ngramScore(wr, cr)})
	})
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })
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
