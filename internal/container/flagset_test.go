package container

import "testing"

func TestFlagSetSortUniq(t *testing.T) {
	fs := NewFlagSet(3, 1, 2, 1, 3)
	want := FlagSet{1, 2, 3}
	if !fs.Equal(want) {
		t.Fatalf("NewFlagSet = %v, want %v", fs, want)
	}
}

func TestFlagSetContains(t *testing.T) {
	fs := NewFlagSet(5, 10, 15)
	if !fs.Contains(10) {
		t.Fatal("expected set to contain 10")
	}
	if fs.Contains(11) {
		t.Fatal("did not expect set to contain 11")
	}
}

func TestFlagSetUnion(t *testing.T) {
	a := NewFlagSet(1, 2, 3)
	b := NewFlagSet(2, 3, 4)
	got := a.Union(b)
	want := FlagSet{1, 2, 3, 4}
	if !got.Equal(want) {
		t.Fatalf("Union = %v, want %v", got, want)
	}
}

func TestFlagSetIntersects(t *testing.T) {
	a := NewFlagSet(1, 2)
	b := NewFlagSet(3, 2)
	c := NewFlagSet(5, 6)
	if !a.Intersects(b) {
		t.Fatal("expected intersection")
	}
	if a.Intersects(c) {
		t.Fatal("expected no intersection")
	}
}

func TestFlagSetLess(t *testing.T) {
	a := NewFlagSet(1, 2)
	b := NewFlagSet(1, 3)
	if !a.Less(b) {
		t.Fatal("expected {1,2} < {1,3}")
	}
}
