package dic

import (
	"testing"

	"github.com/coregx/gospell/affix"
)

func mustAff(t *testing.T, src string) *affix.Data {
	t.Helper()
	d, err := affix.Parse([]byte(src), nil)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestParseSimpleDic(t *testing.T) {
	aff := mustAff(t, "SFX T Y 1\nSFX T y ies [^aeiou]y\n")
	wl, err := Parse([]byte("3\nberry/T\nMay/T\nvary\n"), aff, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(wl.Lookup("berry")) != 1 {
		t.Fatalf("expected berry stem")
	}
	if len(wl.Lookup("vary")) != 1 {
		t.Fatalf("expected vary stem")
	}
}

func TestParseHiddenHomonymForAllCapital(t *testing.T) {
	aff := mustAff(t, "SFX T Y 1\nSFX T y ies [^aeiou]y\n")
	wl, err := Parse([]byte("1\nNASA/T\n"), aff, nil)
	if err != nil {
		t.Fatal(err)
	}
	variants := wl.Lookup("Nasa")
	if len(variants) != 1 || !variants[0].Hidden {
		t.Fatalf("expected hidden homonym Nasa, got %v", variants)
	}
}

func TestParseEscapedSlash(t *testing.T) {
	aff := mustAff(t, "")
	wl, err := Parse([]byte("1\nfoo\\/bar\n"), aff, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(wl.Lookup("foo/bar")) != 1 {
		t.Fatalf("expected literal slash preserved, got entries %v", wl.entries)
	}
}
