package container

import "testing"

func TestConditionEmptyMatchesAnything(t *testing.T) {
	c, err := NewCondition("")
	if err != nil {
		t.Fatal(err)
	}
	if !c.MatchSuffix("anything") {
		t.Fatal("empty condition should match any suffix")
	}
	if !c.MatchPrefix("") {
		t.Fatal("empty condition should match the empty string")
	}
}

func TestConditionDotMatchesOneCodepoint(t *testing.T) {
	c, err := NewCondition(".")
	if err != nil {
		t.Fatal(err)
	}
	if !c.MatchSuffix("x") {
		t.Fatal("dot should match a single rune")
	}
	if c.MatchSuffix("") {
		t.Fatal("dot should not match the empty string")
	}
}

func TestConditionNegatedClass(t *testing.T) {
	c, err := NewCondition("[^aeiou]y")
	if err != nil {
		t.Fatal(err)
	}
	if !c.MatchSuffix("berry") {
		t.Fatal("berry ends in consonant+y, should match")
	}
	if c.MatchSuffix("play") {
		t.Fatal("play ends in vowel+y, should not match")
	}
}

func TestConditionUnclosedClassIsError(t *testing.T) {
	if _, err := NewCondition("[abc"); err != ErrUnclosedClass {
		t.Fatalf("got %v, want ErrUnclosedClass", err)
	}
}

func TestConditionEmptyClassIsError(t *testing.T) {
	if _, err := NewCondition("[]"); err != ErrEmptyClass {
		t.Fatalf("got %v, want ErrEmptyClass", err)
	}
	if _, err := NewCondition("[^]"); err != ErrEmptyClass {
		t.Fatalf("got %v, want ErrEmptyClass", err)
	}
}

func TestConditionPrefixMatch(t *testing.T) {
	c, err := NewCondition("un")
	if err != nil {
		t.Fatal(err)
	}
	if !c.MatchPrefix("undo") {
		t.Fatal("expected prefix match")
	}
	if c.MatchPrefix("redo") {
		t.Fatal("did not expect prefix match")
	}
}
