package gospell

import "testing"

func TestLoadAndSpell(t *testing.T) {
	dict, _, err := Load(
		[]byte("SFX T Y 1\nSFX T y ies [^aeiou]y\n"),
		[]byte("2\nberry/T\nvary\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !dict.Spell("berries") {
		t.Error("expected berries to spell true")
	}
	if dict.Spell("varies") {
		t.Error("expected varies to spell false")
	}
}

func TestBreakPatternRetryScenario(t *testing.T) {
	dict, _, err := Load(
		[]byte("BREAK 2\nBREAK -\nBREAK ^-\n"),
		[]byte("2\nuser\ninterface\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !dict.Spell("user-interface") {
		t.Error("expected user-interface to spell true")
	}
	if dict.Spell("user-gadget") {
		t.Error("expected user-gadget to spell false")
	}
}

func TestWarnFlaggedWordRejectedWhenForbidWarnSet(t *testing.T) {
	dict, _, err := Load(
		[]byte("FORBIDWARN\nWARN W\n"),
		[]byte("2\ngood\nbadword/W\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if !dict.Spell("good") {
		t.Error("expected good to spell true")
	}
	if dict.Spell("badword") {
		t.Error("expected badword to be rejected under FORBIDWARN")
	}
}

func TestSuggestAfterFailedSpell(t *testing.T) {
	dict, _, err := Load(
		[]byte("REP 2\nREP ph f\nREP shun$ tion\n"),
		[]byte("2\nfat\nstation\n"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if dict.Spell("phat") {
		t.Fatal("expected phat to be rejected")
	}
	var out []string
	dict.Suggest("phat", &out)
	found := false
	for _, s := range out {
		if s == "fat" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(phat) = %v, want to contain fat", out)
	}
}

func TestLoadInvalidAffReturnsDiagnostics(t *testing.T) {
	_, diags, err := Load([]byte("FLAG weird\n"), []byte("0\n"))
	if err != nil {
		t.Fatalf("unexpected hard failure: %v", err)
	}
	if len(diags) == 0 {
		t.Error("expected a diagnostic for an invalid FLAG type")
	}
}
