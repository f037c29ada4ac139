package recognize

import (
	"testing"

	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/dic"
)

func build(t *testing.T, affSrc, dicSrc string) *Recognizer {
	t.Helper()
	a, err := affix.Parse([]byte(affSrc), nil)
	if err != nil {
		t.Fatal(err)
	}
	wl, err := dic.Parse([]byte(dicSrc), a, nil)
	if err != nil {
		t.Fatal(err)
	}
	return New(a, wl)
}

func TestSimpleSuffixScenario(t *testing.T) {
	r := build(t,
		"SFX T Y 1\nSFX T y ies [^aeiou]y\n",
		"3\nberry/T\nMay/T\nvary\n",
	)
	for _, w := range []string{"berry", "berries", "May", "vary"} {
		if !r.Spell(w) {
			t.Errorf("Spell(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"varies", "Maies"} {
		if r.Spell(w) {
			t.Errorf("Spell(%q) = true, want false", w)
		}
	}
}

func TestCrossProductScenario(t *testing.T) {
	r := build(t,
		"PFX A Y 1\nPFX A 0 pre .\nSFX B Y 1\nSFX B 0 able .\n",
		"1\ndrink/AB\n",
	)
	for _, w := range []string{"drinkable", "predrinkable", "predrink", "drink"} {
		if !r.Spell(w) {
			t.Errorf("Spell(%q) = false, want true", w)
		}
	}
}

func TestCompoundViaFlagsScenario(t *testing.T) {
	r := build(t,
		"COMPOUNDMIN 3\nCOMPOUNDBEGIN B\nCOMPOUNDEND L\n",
		"4\ncook/B\nbook/L\nphoto/B\ncar/B\n",
	)
	for _, w := range []string{"cookbook", "photobook"} {
		if !r.Spell(w) {
			t.Errorf("Spell(%q) = false, want true", w)
		}
	}
	for _, w := range []string{"bookcook", "carbook"} {
		if r.Spell(w) {
			t.Errorf("Spell(%q) = true, want false", w)
		}
	}
}

func TestOversizeInputRejected(t *testing.T) {
	r := build(t, "", "1\nword\n")
	huge := make([]byte, 400)
	for i := range huge {
		huge[i] = 'a'
	}
	if r.Spell(string(huge)) {
		t.Fatal("expected oversize input to be rejected")
	}
}

func TestInvalidUTF8Rejected(t *testing.T) {
	r := build(t, "", "1\nword\n")
	if r.Spell(string([]byte{0xff, 0xfe})) {
		t.Fatal("expected invalid UTF-8 to be rejected")
	}
}

func TestForbiddenWordAlwaysRejected(t *testing.T) {
	r := build(t,
		"FORBIDDENWORD F\n",
		"2\ngood\nbadword/F\n",
	)
	if !r.Spell("good") {
		t.Error("expected good to spell true")
	}
	if r.Spell("badword") {
		t.Error("expected badword to be forbidden")
	}
}

func TestEmptyFlagSetStemAlwaysSpells(t *testing.T) {
	r := build(t, "", "1\nhello\n")
	if !r.Spell("hello") {
		t.Fatal("expected bare stem to spell true")
	}
}
