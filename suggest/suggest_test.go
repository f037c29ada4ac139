package suggest

import (
	"testing"

	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/dic"
	"github.com/coregx/gospell/recognize"
)

func build(t *testing.T, affSrc, dicSrc string) (*affix.Data, *dic.WordList, *recognize.Recognizer) {
	t.Helper()
	a, err := affix.Parse([]byte(affSrc), nil)
	if err != nil {
		t.Fatal(err)
	}
	wl, err := dic.Parse([]byte(dicSrc), a, nil)
	if err != nil {
		t.Fatal(err)
	}
	return a, wl, recognize.New(a, wl)
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestRepBasedSuggestionScenario(t *testing.T) {
	a, wl, rec := build(t,
		"REP 2\nREP ph f\nREP shun$ tion\n",
		"2\nfat\nstation\n",
	)
	if rec.Spell("phat") {
		t.Fatal("expected phat to be rejected")
	}
	sug := New(a, wl, rec)
	var out []string
	sug.Suggest("phat", &out)
	if !contains(out, "fat") {
		t.Errorf("suggest(phat) = %v, want to contain fat", out)
	}

	var out2 []string
	sug.Suggest("stashun", &out2)
	if !contains(out2, "station") {
		t.Errorf("suggest(stashun) = %v, want to contain station", out2)
	}
}

func TestMapBasedSuggestionScenario(t *testing.T) {
	a, wl, rec := build(t,
		"SET UTF-8\nMAP 1\nMAP iíìîï\n",
		"1\nnaïve\n",
	)
	sug := New(a, wl, rec)
	var out []string
	sug.Suggest("naive", &out)
	if !contains(out, "naïve") {
		t.Errorf("suggest(naive) = %v, want to contain naïve", out)
	}
}

func TestSuggestDedupesAndCaps(t *testing.T) {
	a, wl, rec := build(t, "", "1\nword\n")
	sug := New(a, wl, rec)
	sug.MaxSuggestions = 1
	var out []string
	sug.Suggest("wrod", &out)
	if len(out) > 1 {
		t.Errorf("expected at most 1 suggestion, got %v", out)
	}
}

func TestSuggestRestoresAllCapitalCasing(t *testing.T) {
	a, wl, rec := build(t, "", "1\nword\n")
	sug := New(a, wl, rec)
	var out []string
	sug.Suggest("WROD", &out)
	for _, s := range out {
		if s != "" && s != "WORD" {
			t.Errorf("expected all-caps restoration, got %q in %v", s, out)
		}
	}
}
