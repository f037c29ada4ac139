package affix

import (
	"strings"

	"github.com/coregx/gospell/internal/container"
)

// Side says which end of the stem an affix touches.
type Side int

const (
	Suffix Side = iota
	Prefix
)

// Entry is one PFX/SFX rule: a flag, whether it may combine with an
// affix of the opposite side on the same stem, the text it strips and
// appends, the continuation flags it contributes to a partially
// stripped intermediate form, and the condition the boundary must
// satisfy.
type Entry struct {
	Flag               container.Flag
	Side               Side
	CrossProduct       bool
	Stripping          string
	Appending          string
	ContinuationFlags  container.FlagSet
	Condition          *container.Condition
	MorphFields        []string
}

// Derive produces the surface form obtained by applying this entry to
// stem, without checking the condition (callers check it separately;
// the condition is always evaluated against the stem, which when
// stripping is the root StripRoot reconstructs from the surface word).
func (e *Entry) Derive(stem string) string {
	switch e.Side {
	case Prefix:
		return e.Appending + strings.TrimPrefix(stem, e.Stripping)
	default:
		return strings.TrimSuffix(stem, e.Stripping) + e.Appending
	}
}

// StripRoot inverts Derive: given a surface word known to carry this
// entry's Appending on the appropriate end, returns the stem that would
// have produced it.
func (e *Entry) StripRoot(word string) string {
	switch e.Side {
	case Prefix:
		return e.Stripping + strings.TrimPrefix(word, e.Appending)
	default:
		return strings.TrimSuffix(word, e.Appending) + e.Stripping
	}
}

// MatchesCondition reports whether word's boundary (the end Side
// touches) satisfies the entry's condition.
func (e *Entry) MatchesCondition(word string) bool {
	if e.Condition == nil {
		return true
	}
	if e.Side == Prefix {
		return e.Condition.MatchPrefix(word)
	}
	return e.Condition.MatchSuffix(word)
}

// Table holds every PFX or SFX entry for one Side, indexed for the
// "all entries whose appending text matches this boundary" query the
// recognizer runs once per candidate surface word.
type Table struct {
	side    Side
	entries *container.AffixTable[*Entry]
	byFlag  map[container.Flag][]*Entry
}

// NewTable returns an empty affix table for the given side.
func NewTable(side Side) *Table {
	return &Table{
		side:    side,
		entries: container.NewAffixTable[*Entry](),
		byFlag:  make(map[container.Flag][]*Entry),
	}
}

// Add registers an entry.
func (t *Table) Add(e *Entry) {
	t.entries.Insert(e.Appending, e)
	t.byFlag[e.Flag] = append(t.byFlag[e.Flag], e)
}

// ByFlag returns every entry declared under flag.
func (t *Table) ByFlag(flag container.Flag) []*Entry {
	return t.byFlag[flag]
}

// CandidatesFor returns every entry whose Appending could plausibly
// match word's boundary (the condition still needs to be checked by the
// caller via Entry.MatchesCondition).
func (t *Table) CandidatesFor(word string) []*Entry {
	if t.side == Prefix {
		return t.entries.AllPrefixesOf(word)
	}
	return t.entries.AllSuffixesOf(word)
}
