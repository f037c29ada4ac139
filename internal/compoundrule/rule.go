// Package compoundrule matches a sequence of dictionary-stem flag sets
// against a COMPOUNDRULE pattern: a sequence of flag atoms, each
// optionally suffixed with "?" (zero or one) or "*" (zero or more),
// exactly like a regular expression except the alphabet is flags rather
// than bytes and there is no alternation or grouping.
//
// The matcher below is a small Thompson-style simulation, structured the
// same way a regex engine's PikeVM tracks a set of live threads through
// an NFA one input symbol at a time: here, one compound part at a time.
// Because compound rules rarely exceed a handful of atoms the whole
// thread set is just a sparse map, which is simpler and plenty fast
// without needing a general NFA/DFA compiler behind it.
package compoundrule

import "github.com/coregx/gospell/internal/container"

// Atom is one element of a compound rule: a flag plus its quantifier.
type Atom struct {
	Flag     container.Flag
	Star     bool // "*": zero or more
	Optional bool // "?": zero or one
}

func (a Atom) skippable() bool { return a.Star || a.Optional }

// Rule is a parsed COMPOUNDRULE entry.
type Rule struct {
	atoms []Atom
}

// FlagDecoder turns the textual spelling of one rule atom (a bare
// character for SINGLE_CHAR/UTF-8 flags, or the text between parentheses
// for DOUBLE_CHAR/NUMBER flags) into a Flag.
type FlagDecoder func(text string) (container.Flag, error)

// Parse reads a raw COMPOUNDRULE string such as "A*BC?" into a Rule.
// Atoms for DOUBLE_CHAR/NUMBER flag types are parenthesized in the source
// text, e.g. "(61)*(62)"; decode is responsible for mapping the enclosed
// text (or, for single-character atoms, the bare rune) to a Flag.
func Parse(raw string, decode FlagDecoder) (*Rule, error) {
	r := &Rule{}
	runes := []rune(raw)
	for i := 0; i < len(runes); i++ {
		var text string
		switch runes[i] {
		case '(':
			end := i + 1
			for end < len(runes) && runes[end] != ')' {
				end++
			}
			text = string(runes[i+1 : end])
			i = end
		default:
			text = string(runes[i])
		}
		flag, err := decode(text)
		if err != nil {
			return nil, err
		}
		atom := Atom{Flag: flag}
		if i+1 < len(runes) {
			switch runes[i+1] {
			case '*':
				atom.Star = true
				i++
			case '?':
				atom.Optional = true
				i++
			}
		}
		r.atoms = append(r.atoms, atom)
	}
	return r, nil
}

// closure expands a set of pending atom positions with every position
// reachable by skipping zero-width ("?"/"*") atoms, without consuming an
// input symbol.
func (r *Rule) closure(positions map[int]bool) map[int]bool {
	out := make(map[int]bool, len(positions))
	stack := make([]int, 0, len(positions))
	for p := range positions {
		stack = append(stack, p)
	}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out[p] {
			continue
		}
		out[p] = true
		if p < len(r.atoms) && r.atoms[p].skippable() {
			if !out[p+1] {
				stack = append(stack, p+1)
			}
		}
	}
	return out
}

// Match reports whether the sequence of per-part flag sets satisfies the
// rule: atom i's flag must be present in part i's flag set (modulo the
// "*"/"?" quantifiers that let an atom consume zero parts, or the "*"
// quantifier consume many).
func (r *Rule) Match(parts []container.FlagSet) bool {
	states := r.closure(map[int]bool{0: true})
	for _, part := range parts {
		next := map[int]bool{}
		for pos := range states {
			if pos >= len(r.atoms) {
				continue
			}
			atom := r.atoms[pos]
			if !part.Contains(atom.Flag) {
				continue
			}
			if atom.Star {
				next[pos] = true
			}
			for p := range r.closure(map[int]bool{pos + 1: true}) {
				next[p] = true
			}
		}
		if len(next) == 0 {
			return false
		}
		states = next
	}
	return states[len(r.atoms)]
}

// Flags returns every distinct flag mentioned anywhere in the rule, used
// to quickly test whether a candidate stem's flag set could possibly
// participate in any compound rule at all before running the full
// simulation.
func (r *Rule) Flags() container.FlagSet {
	flags := make(container.FlagSet, 0, len(r.atoms))
	for _, a := range r.atoms {
		flags = append(flags, a.Flag)
	}
	return container.NewFlagSet(flags...)
}

// Table holds every COMPOUNDRULE entry declared by an .aff file.
type Table struct {
	rules []*Rule
	flags container.FlagSet
}

// NewTable builds a Table from already-parsed rules.
func NewTable(rules []*Rule) *Table {
	t := &Table{rules: rules}
	var all container.FlagSet
	for _, r := range rules {
		all = all.Union(r.Flags())
	}
	t.flags = all
	return t
}

// Empty reports whether no COMPOUNDRULE entries were declared.
func (t *Table) Empty() bool { return t == nil || len(t.rules) == 0 }

// HasAnyFlag reports whether any of the table's rules mentions a flag
// present in fs; stems carrying none of these flags cannot participate in
// any rule-governed compound.
func (t *Table) HasAnyFlag(fs container.FlagSet) bool {
	return t != nil && t.flags.Intersects(fs)
}

// MatchAny reports whether the compound split parts satisfies at least
// one declared rule.
func (t *Table) MatchAny(parts []container.FlagSet) bool {
	if t == nil {
		return false
	}
	for _, r := range t.rules {
		if r.Match(parts) {
			return true
		}
	}
	return false
}
