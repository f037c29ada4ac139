package encoding

import "testing"

func TestLatin1RoundTripsASCII(t *testing.T) {
	enc, err := Lookup(DefaultName)
	if err != nil {
		t.Fatal(err)
	}
	got, err := enc.Decode([]byte("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Fatalf("Decode(hello) = %q", got)
	}
}

func TestLatin1HighBit(t *testing.T) {
	enc, _ := Lookup(DefaultName)
	got, err := enc.Decode([]byte{0xE9}) // U+00E9 LATIN SMALL LETTER E WITH ACUTE
	if err != nil {
		t.Fatal(err)
	}
	if got != "é" {
		t.Fatalf("Decode(0xE9) = %q, want é", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("KOI8-R")
	if err == nil {
		t.Fatal("expected ErrUnknownEncoding")
	}
	if _, ok := err.(*ErrUnknownEncoding); !ok {
		t.Fatalf("got %T, want *ErrUnknownEncoding", err)
	}
}

type fakeEncoding struct{}

func (fakeEncoding) Name() string               { return "FAKE" }
func (fakeEncoding) Decode(b []byte) (string, error) { return string(b), nil }

func TestRegisterCustomEncoding(t *testing.T) {
	Register(fakeEncoding{})
	enc, err := Lookup("FAKE")
	if err != nil {
		t.Fatal(err)
	}
	if enc.Name() != "FAKE" {
		t.Fatalf("got %q", enc.Name())
	}
}
