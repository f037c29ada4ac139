package affix

import (
	"strconv"
	"strings"
)

// PhoneticRule is one PHONE table rule, lhs -> rhs, with the optional
// postfix metacharacters documented on the pattern side: a trailing
// "(...)" character class, "-N" to rewind the output index by N after
// replacing, "<" to rewind by one, a priority digit, "^"/"^^" to anchor
// at the start of the word, and "$" to anchor at the end. "^^" is
// matched exactly like "^": both require the match to begin at position 0.
type PhoneticRule struct {
	Literal         string
	Class           string // from "(...)"; empty if absent
	GoBack          int    // from "-N"; 0 if absent
	GoBackOne       bool   // "<"
	Priority        int    // default 5
	StartOnly       bool   // "^"
	AfterStartOnly  bool   // "^^"
	EndOnly         bool   // "$"
	Replacement     string
}

// ParsePhoneticRule parses one PHONE line's two columns.
func ParsePhoneticRule(lhs, rhs string) PhoneticRule {
	r := PhoneticRule{Priority: 5, Replacement: rhs}
	i := 0
	for i < len(lhs) {
		c := lhs[i]
		if c == '(' || c == '-' || c == '<' || c == '^' || c == '$' || (c >= '0' && c <= '9') {
			break
		}
		r.Literal += string(c)
		i++
	}
	if i < len(lhs) && lhs[i] == '(' {
		end := strings.IndexByte(lhs[i:], ')')
		if end >= 0 {
			r.Class = lhs[i+1 : i+end]
			i += end + 1
		}
	}
	if i < len(lhs) && lhs[i] == '-' {
		j := i + 1
		for j < len(lhs) && lhs[j] >= '0' && lhs[j] <= '9' {
			j++
		}
		if n, err := strconv.Atoi(lhs[i+1 : j]); err == nil {
			r.GoBack = n
		}
		i = j
	}
	if i < len(lhs) && lhs[i] == '<' {
		r.GoBackOne = true
		i++
	}
	if i < len(lhs) && lhs[i] >= '0' && lhs[i] <= '9' {
		r.Priority = int(lhs[i] - '0')
		i++
	}
	if i < len(lhs) && lhs[i] == '^' {
		i++
		if i < len(lhs) && lhs[i] == '^' {
			r.AfterStartOnly = true
			i++
		} else {
			r.StartOnly = true
		}
	}
	if i < len(lhs) && lhs[i] == '$' {
		r.EndOnly = true
		i++
	}
	return r
}

// matches reports whether this rule's pattern matches word at position
// pos, and if so how many runes of word it consumed.
func (r PhoneticRule) matches(word []rune, pos int) (consumed int, ok bool) {
	lit := []rune(r.Literal)
	if pos+len(lit) > len(word) {
		return 0, false
	}
	for i, want := range lit {
		if word[pos+i] != want {
			return 0, false
		}
	}
	consumed = len(lit)
	if r.Class != "" {
		if pos+consumed >= len(word) || !strings.ContainsRune(r.Class, word[pos+consumed]) {
			return 0, false
		}
		consumed++
	}
	if (r.StartOnly || r.AfterStartOnly) && pos != 0 {
		return 0, false
	}
	if r.EndOnly && pos+consumed != len(word) {
		return 0, false
	}
	return consumed, true
}

// PhoneticTable holds every PHONE rule, bucketed by the first literal
// rune to keep matching proportional to the rules that could possibly
// fire at a position rather than the whole table.
type PhoneticTable struct {
	byFirst map[rune][]PhoneticRule
}

// NewPhoneticTable builds a table from parsed rules, bucketing and
// ordering them by descending priority within each bucket so the
// highest-priority applicable rule is found first.
func NewPhoneticTable(rules []PhoneticRule) *PhoneticTable {
	t := &PhoneticTable{byFirst: make(map[rune][]PhoneticRule)}
	for _, r := range rules {
		first := firstRune(r.Literal)
		t.byFirst[first] = append(t.byFirst[first], r)
	}
	for k := range t.byFirst {
		bucket := t.byFirst[k]
		for i := 1; i < len(bucket); i++ {
			for j := i; j > 0 && bucket[j].Priority > bucket[j-1].Priority; j-- {
				bucket[j], bucket[j-1] = bucket[j-1], bucket[j]
			}
		}
	}
	return t
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

// Empty reports whether no PHONE rules were declared.
func (t *PhoneticTable) Empty() bool { return t == nil || len(t.byFirst) == 0 }

const maxGoBacks = 100

// Transform computes the phonetic code of word (expected already
// uppercased, per the algorithm's convention), applying rules left to
// right and honoring each rule's go-back/priority/anchor metadata.
func (t *PhoneticTable) Transform(word string) string {
	if t.Empty() {
		return word
	}
	runes := []rune(word)
	var out []rune
	goBacks := 0
	for i := 0; i < len(runes); {
		bucket := t.byFirst[runes[i]]
		matched := false
		for _, rule := range bucket {
			consumed, ok := rule.matches(runes, i)
			if !ok {
				continue
			}
			rep := []rune(rule.Replacement)
			if rule.Priority == 1 && len(out) > 0 && len(rep) > 0 && out[len(out)-1] == rep[0] {
				rep = rep[1:]
			}
			out = append(out, rep...)
			i += consumed
			if (rule.GoBack > 0 || rule.GoBackOne) && goBacks < maxGoBacks {
				back := rule.GoBack
				if rule.GoBackOne {
					back = 1
				}
				if back > len(out) {
					back = len(out)
				}
				out = out[:len(out)-back]
				goBacks++
			}
			matched = true
			break
		}
		if !matched {
			out = append(out, runes[i])
			i++
		}
	}
	return string(out)
}
