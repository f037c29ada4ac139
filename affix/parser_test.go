package affix

import (
	"testing"

	"github.com/coregx/gospell/internal/container"
)

func mustFlag(t *testing.T, ft FlagType, token string) container.Flag {
	t.Helper()
	f, err := DecodeFirstFlag(ft, token)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestParseSimpleSuffix(t *testing.T) {
	src := []byte("SFX T Y 1\nSFX T y ies [^aeiou]y\n")
	d, err := Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	entries := d.Suffixes.ByFlag(mustFlag(t, d.FlagType, "T"))
	if len(entries) != 1 {
		t.Fatalf("got %d suffix entries, want 1", len(entries))
	}
	e := entries[0]
	if e.Stripping != "y" || e.Appending != "ies" {
		t.Fatalf("got stripping=%q appending=%q", e.Stripping, e.Appending)
	}
	if !e.CrossProduct {
		t.Fatal("expected cross product true")
	}
}

func TestParseCompoundOptions(t *testing.T) {
	src := []byte("COMPOUNDMIN 3\nCOMPOUNDBEGIN B\nCOMPOUNDEND L\n")
	d, err := Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.CompoundMin != 3 {
		t.Fatalf("CompoundMin = %d, want 3", d.CompoundMin)
	}
	if d.CompoundBeginFlag != mustFlag(t, d.FlagType, "B") {
		t.Fatal("CompoundBeginFlag mismatch")
	}
	if d.CompoundEndFlag != mustFlag(t, d.FlagType, "L") {
		t.Fatal("CompoundEndFlag mismatch")
	}
}

func TestParseRepArray(t *testing.T) {
	src := []byte("REP 2\nREP ph f\nREP shun$ tion\n")
	d, err := Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.Rep == nil || len(d.Rep.Pairs()) != 2 {
		t.Fatalf("got %v", d.Rep)
	}
}

func TestParseMaxDiffClamping(t *testing.T) {
	d, err := Parse([]byte("MAXDIFF 99\n"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.MaxDiff != 5 {
		t.Fatalf("MaxDiff = %d, want default 5 after out-of-range reset", d.MaxDiff)
	}
}

func TestParseCompoundRuleFlagsNumType(t *testing.T) {
	src := []byte("FLAG NUM\nCOMPOUNDRULE 1\nCOMPOUNDRULE (61)*(62)\n")
	d, err := Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if d.CompoundRules == nil || d.CompoundRules.Empty() {
		t.Fatal("expected one compound rule")
	}
}

func TestParseMapEntries(t *testing.T) {
	src := []byte("SET UTF-8\nMAP 1\nMAP iíìîï\n")
	d, err := Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Map) != 1 || len(d.Map[0].Members()) != 5 {
		t.Fatalf("got %v", d.Map)
	}
}
