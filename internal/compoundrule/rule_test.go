package compoundrule

import (
	"testing"

	"github.com/coregx/gospell/internal/container"
)

func decodeChar(s string) (container.Flag, error) {
	r := []rune(s)[0]
	return container.Flag(r), nil
}

func fs(chars ...rune) container.FlagSet {
	flags := make([]container.Flag, len(chars))
	for i, c := range chars {
		flags[i] = container.Flag(c)
	}
	return container.NewFlagSet(flags...)
}

func TestRuleStarMatchesZeroOrMore(t *testing.T) {
	r, err := Parse("A*B", decodeChar)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Match([]container.FlagSet{fs('B')}) {
		t.Error("A* should allow zero A parts before B")
	}
	if !r.Match([]container.FlagSet{fs('A'), fs('A'), fs('B')}) {
		t.Error("A* should allow many A parts before B")
	}
	if r.Match([]container.FlagSet{fs('A')}) {
		t.Error("A*B requires a trailing B part")
	}
}

func TestRuleOptional(t *testing.T) {
	r, err := Parse("AB?C", decodeChar)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Match([]container.FlagSet{fs('A'), fs('C')}) {
		t.Error("B? should allow skipping B")
	}
	if !r.Match([]container.FlagSet{fs('A'), fs('B'), fs('C')}) {
		t.Error("B? should allow exactly one B")
	}
	if r.Match([]container.FlagSet{fs('A'), fs('B'), fs('B'), fs('C')}) {
		t.Error("B? should reject two B parts")
	}
}

func TestRuleParenthesizedAtom(t *testing.T) {
	calls := []string{}
	decode := func(s string) (container.Flag, error) {
		calls = append(calls, s)
		return decodeChar(s)
	}
	r, err := Parse("(61)*(62)", decode)
	if err != nil {
		t.Fatal(err)
	}
	if len(calls) != 2 || calls[0] != "61" || calls[1] != "62" {
		t.Fatalf("got calls %v", calls)
	}
	_ = r
}

func TestTableMatchAny(t *testing.T) {
	r1, _ := Parse("AB", decodeChar)
	r2, _ := Parse("C*D", decodeChar)
	table := NewTable([]*Rule{r1, r2})

	if !table.MatchAny([]container.FlagSet{fs('A'), fs('B')}) {
		t.Error("expected AB rule to match")
	}
	if !table.MatchAny([]container.FlagSet{fs('D')}) {
		t.Error("expected C*D rule to match with zero C parts")
	}
	if table.MatchAny([]container.FlagSet{fs('X')}) {
		t.Error("expected no rule to match")
	}
	if !table.HasAnyFlag(fs('A')) {
		t.Error("expected HasAnyFlag to find A")
	}
	if table.HasAnyFlag(fs('Z')) {
		t.Error("expected HasAnyFlag to reject Z")
	}
}

func TestTableEmpty(t *testing.T) {
	var table *Table
	if !table.Empty() {
		t.Error("nil table should be Empty")
	}
	if table.MatchAny([]container.FlagSet{fs('A')}) {
		t.Error("nil table should never match")
	}
}
