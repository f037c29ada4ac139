package container

import (
	"sort"
	"strings"

	"github.com/coregx/ahocorasick"
)

// SubstrReplacer performs a single left-to-right pass over a string,
// replacing each occurrence of a table pattern with its mapped
// replacement. When two patterns could both start at the same position
// (e.g. "a" and "aa"), the longest one wins; ties are resolved by table
// order. This backs ICONV/OCONV normalization, which needs these
// longest-leftmost-match semantics.
//
// Candidate positions are found with an Aho-Corasick automaton so that a
// table with hundreds of entries (common for ICONV tables covering a whole
// alphabet of diacritics) still costs one linear scan of the input rather
// than one scan per entry.
type SubstrReplacer struct {
	table []replacerEntry
	auto  *ahocorasick.Automaton
}

type replacerEntry struct {
	from string
	to   string
}

// NewSubstrReplacer builds a replacer from a pattern table. The table is
// not modified; pairs are copied and sorted so the longest-match lookup
// below is cheap.
func NewSubstrReplacer(pairs map[string]string) (*SubstrReplacer, error) {
	r := &SubstrReplacer{table: make([]replacerEntry, 0, len(pairs))}
	for from, to := range pairs {
		if from == "" {
			continue
		}
		r.table = append(r.table, replacerEntry{from: from, to: to})
	}
	sort.Slice(r.table, func(i, j int) bool {
		if r.table[i].from == r.table[j].from {
			return r.table[i].to < r.table[j].to
		}
		return r.table[i].from < r.table[j].from
	})
	if len(r.table) == 0 {
		return r, nil
	}
	b := ahocorasick.NewBuilder()
	for _, e := range r.table {
		if err := b.AddPattern([]byte(e.from)); err != nil {
			return nil, err
		}
	}
	auto, err := b.Build()
	if err != nil {
		return nil, err
	}
	r.auto = auto
	return r, nil
}

// Replace applies the longest-leftmost-match replacement and returns the
// result. An empty table is a no-op that returns s unchanged.
func (r *SubstrReplacer) Replace(s string) string {
	if r == nil || r.auto == nil {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	haystack := []byte(s)
	pos := 0
	for pos <= len(haystack) {
		m := r.auto.Find(haystack, pos)
		if m == nil {
			b.WriteString(s[pos:])
			return b.String()
		}
		b.WriteString(s[pos:m.Start])
		entry, consumed := r.longestAt(s[m.Start:])
		if consumed == 0 {
			// Automaton found a candidate starting byte we don't
			// recognize as a full pattern; skip one byte to make
			// progress.
			b.WriteByte(s[m.Start])
			pos = m.Start + 1
			continue
		}
		b.WriteString(entry)
		pos = m.Start + consumed
	}
	return b.String()
}

// longestAt returns the replacement and byte length of the longest table
// entry that is a prefix of tail.
func (r *SubstrReplacer) longestAt(tail string) (replacement string, consumed int) {
	best := -1
	for i, e := range r.table {
		if len(e.from) <= consumed {
			continue
		}
		if strings.HasPrefix(tail, e.from) {
			consumed = len(e.from)
			best = i
		}
	}
	if best < 0 {
		return "", 0
	}
	return r.table[best].to, consumed
}
