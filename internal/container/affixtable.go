package container

import (
	"sort"
	"strings"
)

// AffixTable indexes values by the affix "appending" text they carry,
// supporting the query the recognizer actually needs: given a candidate
// surface word, find every entry whose appending text is a suffix (for
// SFX entries) or prefix (for PFX entries) of that word. Entries are
// bucketed by their first/last rune so a query only walks the handful of
// entries that could possibly match, rather than the whole table.
type AffixTable[T any] struct {
	byFirstRune map[rune][]affixEntry[T]
	byLastRune  map[rune][]affixEntry[T]
	emptyValues []T
}

type affixEntry[T any] struct {
	appending string
	value     T
}

// NewAffixTable returns an empty table.
func NewAffixTable[T any]() *AffixTable[T] {
	return &AffixTable[T]{
		byFirstRune: make(map[rune][]affixEntry[T]),
		byLastRune:  make(map[rune][]affixEntry[T]),
	}
}

// Insert adds value under the given appending text. An empty appending
// (the affix appends nothing, Hunspell's "0") matches every query.
func (t *AffixTable[T]) Insert(appending string, value T) {
	if appending == "" {
		t.emptyValues = append(t.emptyValues, value)
		return
	}
	entry := affixEntry[T]{appending: appending, value: value}

	first := firstRune(appending)
	t.byFirstRune[first] = insertSortedByLen(t.byFirstRune[first], entry)

	last := lastRune(appending)
	t.byLastRune[last] = insertSortedByLen(t.byLastRune[last], entry)
}

func insertSortedByLen[T any](entries []affixEntry[T], e affixEntry[T]) []affixEntry[T] {
	entries = append(entries, e)
	sort.SliceStable(entries, func(i, j int) bool {
		return len(entries[i].appending) < len(entries[j].appending)
	})
	return entries
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func lastRune(s string) rune {
	r := rune(0)
	for _, c := range s {
		r = c
	}
	return r
}

// AllPrefixesOf returns every inserted value whose appending text is a
// prefix of word, shortest first, plus every value inserted under an
// empty appending.
func (t *AffixTable[T]) AllPrefixesOf(word string) []T {
	out := append([]T(nil), t.emptyValues...)
	if word == "" {
		return out
	}
	for _, e := range t.byFirstRune[firstRune(word)] {
		if len(e.appending) > len(word) {
			break
		}
		if strings.HasPrefix(word, e.appending) {
			out = append(out, e.value)
		}
	}
	return out
}

// AllSuffixesOf returns every inserted value whose appending text is a
// suffix of word, shortest first, plus every value inserted under an
// empty appending.
func (t *AffixTable[T]) AllSuffixesOf(word string) []T {
	out := append([]T(nil), t.emptyValues...)
	if word == "" {
		return out
	}
	for _, e := range t.byLastRune[lastRune(word)] {
		if len(e.appending) > len(word) {
			break
		}
		if strings.HasSuffix(word, e.appending) {
			out = append(out, e.value)
		}
	}
	return out
}
