// Package encoding defines the contract between the affix parser and the
// legacy byte encodings (ISO-8859-x, CP-125x, KOI8, ...) a .aff file's SET
// option can name. Only the contract and the two encodings that are
// direct code-point-to-byte mappings (ISO-8859-1, the Hunspell default,
// and UTF-8 passthrough) live in this module; a full table-driven
// converter for the rest of the legacy code pages is an I/O adapter
// concern the core spell-checking engine does not own (see the Non-goals
// in the accompanying specification). Callers that need CP125x/KOI8
// support register an Encoding for that name via Register before loading
// a dictionary that declares it.
package encoding

import (
	"fmt"
	"unicode/utf8"
)

// Encoding converts bytes read from a dictionary file, in some
// file-declared legacy encoding, to UTF-8.
type Encoding interface {
	// Name is the canonical name this encoding is registered under,
	// e.g. "ISO8859-1".
	Name() string
	// Decode converts raw bytes in this encoding to a UTF-8 string.
	Decode(b []byte) (string, error)
}

// ErrUnknownEncoding is returned by Lookup when no Encoding is registered
// for a name.
type ErrUnknownEncoding struct{ Name string }

func (e *ErrUnknownEncoding) Error() string {
	return fmt.Sprintf("encoding: unknown encoding %q", e.Name)
}

var registry = map[string]Encoding{}

func init() {
	Register(utf8Encoding{})
	Register(latin1Encoding{})
}

// Register adds or replaces the encoding available under enc.Name().
// Names are matched case-sensitively against the .aff SET value, as
// Hunspell dictionaries consistently write them (e.g. "UTF-8",
// "ISO8859-1", "microsoft-cp1251").
func Register(enc Encoding) { registry[enc.Name()] = enc }

// Lookup returns the registered Encoding for name, or ErrUnknownEncoding.
func Lookup(name string) (Encoding, error) {
	if enc, ok := registry[name]; ok {
		return enc, nil
	}
	return nil, &ErrUnknownEncoding{Name: name}
}

// DefaultName names the encoding assumed when a .aff file declares no SET
// option, matching Hunspell's own default.
const DefaultName = "ISO8859-1"

type utf8Encoding struct{}

func (utf8Encoding) Name() string { return "UTF-8" }
func (utf8Encoding) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", fmt.Errorf("encoding: invalid UTF-8 byte sequence")
	}
	return string(b), nil
}

// latin1Encoding implements ISO-8859-1/Latin-1, whose code points map
// one-to-one onto Unicode's first 256 code points, so no lookup table is
// needed: every byte is its own rune.
type latin1Encoding struct{}

func (latin1Encoding) Name() string { return "ISO8859-1" }
func (latin1Encoding) Decode(b []byte) (string, error) {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = rune(c)
	}
	return string(runes), nil
}
