package affix

import (
	"testing"

	"github.com/coregx/gospell/internal/container"
)

func TestDecodeFlagsSingleChar(t *testing.T) {
	fs, err := DecodeFlags(SingleChar, "AaZ")
	if err != nil {
		t.Fatal(err)
	}
	want := container.NewFlagSet('A', 'a', 'Z')
	if !fs.Equal(want) {
		t.Fatalf("got %v, want %v", fs, want)
	}
}

func TestDecodeFlagsDoubleChar(t *testing.T) {
	fs, err := DecodeFlags(DoubleChar, "aabb")
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 {
		t.Fatalf("got %d flags, want 2", len(fs))
	}
}

func TestDecodeFlagsDoubleCharUnpaired(t *testing.T) {
	if _, err := DecodeFlags(DoubleChar, "aab"); err == nil {
		t.Fatal("expected an error for an unpaired long flag")
	}
}

func TestDecodeFlagsNumber(t *testing.T) {
	fs, err := DecodeFlags(Number, "1,2,300")
	if err != nil {
		t.Fatal(err)
	}
	want := container.NewFlagSet(1, 2, 300)
	if !fs.Equal(want) {
		t.Fatalf("got %v, want %v", fs, want)
	}
}

func TestDecodeFlagsUTF8(t *testing.T) {
	fs, err := DecodeFlags(UTF8, "日本")
	if err != nil {
		t.Fatal(err)
	}
	if len(fs) != 2 {
		t.Fatalf("got %d flags, want 2", len(fs))
	}
}

func TestDecodeFlagsRoundTripPerEncoding(t *testing.T) {
	cases := []struct {
		ft    FlagType
		token string
	}{
		{SingleChar, "AbC"},
		{DoubleChar, "aAbBcC"},
		{Number, "4,55,666"},
		{UTF8, "αβγ"},
	}
	for _, c := range cases {
		fs, err := DecodeFlags(c.ft, c.token)
		if err != nil {
			t.Fatalf("%v %q: %v", c.ft, c.token, err)
		}
		// Canonicalization (sort+uniq) must be idempotent: rebuilding
		// a set from the decoded flags yields the same set.
		again := container.NewFlagSet(fs...)
		if !fs.Equal(again) {
			t.Fatalf("%v %q: round trip mismatch got %v want %v", c.ft, c.token, again, fs)
		}
	}
}

func TestParseFlagTypeNames(t *testing.T) {
	cases := map[string]FlagType{
		"LONG": DoubleChar,
		"NUM":  Number,
		"UTF-8": UTF8,
	}
	for name, want := range cases {
		got, err := ParseFlagType(name)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Fatalf("ParseFlagType(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestParseFlagTypeUnknown(t *testing.T) {
	if _, err := ParseFlagType("weird"); err == nil {
		t.Fatal("expected an error for an unknown FLAG type")
	}
}
