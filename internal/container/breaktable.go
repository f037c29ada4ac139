package container

import (
	"strings"

	"github.com/coregx/ahocorasick"
)

// BreakTable holds the BREAK patterns used to retry recognition of a word
// that failed outright, by splitting it at punctuation such as hyphens.
// A pattern anchored with "^" applies only at the start of the word, one
// anchored with "$" only at the end, and an unanchored pattern anywhere in
// the middle.
type BreakTable struct {
	start  []string // leading anchor, "^" stripped
	end    []string // trailing anchor, "$" stripped
	middle []string // interior, unanchored
	auto   *ahocorasick.Automaton
}

// DefaultBreakPatterns is applied when an .aff file declares no BREAK
// table of its own.
var DefaultBreakPatterns = []string{"-", "^-", "-$"}

// NewBreakTable partitions raw patterns into start/end/middle buckets. The
// middle bucket, which SplitMiddle must search for at an arbitrary
// position rather than just a fixed edge, is also compiled into an
// Aho-Corasick automaton so a word is scanned once regardless of how many
// interior patterns the table declares.
func NewBreakTable(patterns []string) *BreakTable {
	bt := &BreakTable{}
	for _, p := range patterns {
		switch {
		case strings.HasPrefix(p, "^"):
			bt.start = append(bt.start, p[1:])
		case strings.HasSuffix(p, "$"):
			bt.end = append(bt.end, p[:len(p)-1])
		default:
			bt.middle = append(bt.middle, p)
		}
	}
	if len(bt.middle) > 0 {
		b := ahocorasick.NewBuilder()
		added := false
		for _, p := range bt.middle {
			if p == "" {
				continue
			}
			if err := b.AddPattern([]byte(p)); err == nil {
				added = true
			}
		}
		if added {
			if auto, err := b.Build(); err == nil {
				bt.auto = auto
			}
		}
	}
	return bt
}

// Empty reports whether no break patterns were declared at all (not even
// the implicit default).
func (bt *BreakTable) Empty() bool {
	return bt == nil || (len(bt.start) == 0 && len(bt.end) == 0 && len(bt.middle) == 0)
}

// StripEdges removes, at most once each, a leading start-pattern and a
// trailing end-pattern from s.
func (bt *BreakTable) StripEdges(s string) string {
	if bt == nil {
		return s
	}
	for _, p := range bt.start {
		if p != "" && strings.HasPrefix(s, p) {
			s = s[len(p):]
			break
		}
	}
	for _, p := range bt.end {
		if p != "" && strings.HasSuffix(s, p) {
			s = s[:len(s)-len(p)]
			break
		}
	}
	return s
}

// SplitMiddle finds the first interior break pattern occurring in s and
// returns the two halves plus ok=true. The automaton locates the earliest
// byte offset at which any middle pattern starts in one scan; ties at that
// offset are resolved by table order.
func (bt *BreakTable) SplitMiddle(s string) (left, right string, ok bool) {
	if bt == nil || bt.auto == nil {
		return "", "", false
	}
	m := bt.auto.Find([]byte(s), 0)
	if m == nil {
		return "", "", false
	}
	for _, p := range bt.middle {
		if p != "" && strings.HasPrefix(s[m.Start:], p) {
			return s[:m.Start], s[m.Start+len(p):], true
		}
	}
	return "", "", false
}
