// Package gospell implements a Hunspell-compatible spell checker: affix
// parsing, morphological recognition, and multi-strategy suggestion, all
// driven from the same .aff/.dic files Hunspell and LibreOffice use.
//
// Basic usage:
//
//	dict, diags, err := gospell.LoadPath("en_US.aff")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, d := range diags {
//	    log.Println(d)
//	}
//	if !dict.Spell("recieve") {
//	    var suggestions []string
//	    dict.Suggest("recieve", &suggestions)
//	    fmt.Println(suggestions) // [receive ...]
//	}
//
// A *Dictionary is safe for concurrent read-only use: Spell and Suggest
// never mutate the loaded affix data or word list.
package gospell

import (
	"os"
	"strings"

	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/dic"
	"github.com/coregx/gospell/internal/diag"
	"github.com/coregx/gospell/recognize"
	"github.com/coregx/gospell/suggest"
)

// Dictionary is a loaded aff+dic pair, ready to answer Spell and
// Suggest queries.
type Dictionary struct {
	aff  *affix.Data
	rec  *recognize.Recognizer
	sug  *suggest.Suggester
}

// Option configures a Load or LoadPath call.
type Option func(*config)

type config struct {
	logger            *diag.Sink
	maxSuggestions    int
	maxCompoundSugs   int
	hasMaxSuggestions bool
	hasMaxCompound    bool
}

// WithLogger routes load-time diagnostics to sink in addition to the
// returned slice. Passing nil (the default) means diagnostics are only
// ever returned, never logged.
func WithLogger(sink *diag.Sink) Option {
	return func(c *config) { c.logger = sink }
}

// WithSuggestionLimit caps the number of suggestions Suggest returns,
// overriding the default of 15.
func WithSuggestionLimit(n int) Option {
	return func(c *config) { c.maxSuggestions = n; c.hasMaxSuggestions = true }
}

// WithMaxCompoundSuggestions overrides MAXCPDSUGS from the .aff file.
func WithMaxCompoundSuggestions(n int) Option {
	return func(c *config) { c.maxCompoundSugs = n; c.hasMaxCompound = true }
}

// Load parses affBytes and dicBytes and returns a ready Dictionary.
// Diagnostics collected while parsing (warnings and line-level errors)
// are always returned; a non-nil error means the load failed outright
// and the Dictionary return value is nil.
func Load(affBytes, dicBytes []byte, opts ...Option) (*Dictionary, []diag.Diagnostic, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	affData, err := affix.Parse(affBytes, cfg.logger)
	if err != nil {
		return nil, nil, err
	}
	words, err := dic.Parse(dicBytes, affData, cfg.logger)
	if err != nil {
		return nil, affData.Diagnostics, err
	}

	if cfg.hasMaxCompound {
		affData.MaxCompoundSuggestions = cfg.maxCompoundSugs
	}

	rec := recognize.New(affData, words)
	sug := suggest.New(affData, words, rec)
	if cfg.hasMaxSuggestions {
		sug.MaxSuggestions = cfg.maxSuggestions
	}

	return &Dictionary{aff: affData, rec: rec, sug: sug}, affData.Diagnostics, nil
}

// LoadPath loads a dictionary from affPath and its sibling .dic file,
// derived by replacing affPath's extension. This is the only function
// in the package that performs filesystem I/O.
func LoadPath(affPath string, opts ...Option) (*Dictionary, []diag.Diagnostic, error) {
	dicPath := affPath
	if i := strings.LastIndexByte(affPath, '.'); i >= 0 {
		dicPath = affPath[:i] + ".dic"
	} else {
		dicPath = affPath + ".dic"
	}
	affBytes, err := os.ReadFile(affPath)
	if err != nil {
		return nil, nil, err
	}
	dicBytes, err := os.ReadFile(dicPath)
	if err != nil {
		return nil, nil, err
	}
	return Load(affBytes, dicBytes, opts...)
}

// Spell reports whether word is recognized as a valid word or compound.
// It never panics: oversize or invalid-UTF-8 input simply returns false.
func (d *Dictionary) Spell(word string) bool {
	return d.rec.Spell(word)
}

// Suggest appends ordered correction candidates for word to *out. It
// does not check whether word is already valid; callers typically only
// call Suggest after Spell returns false.
func (d *Dictionary) Suggest(word string, out *[]string) {
	d.sug.Suggest(word, out)
}
