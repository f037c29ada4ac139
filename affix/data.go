// Package affix parses Hunspell .aff files into an AffData structure:
// scalar options, flag tables, and the prefix/suffix/compound/
// suggestion-support tables the recognizer and suggester consume.
package affix

import (
	"github.com/coregx/gospell/internal/casing"
	"github.com/coregx/gospell/internal/compoundrule"
	"github.com/coregx/gospell/internal/container"
	"github.com/coregx/gospell/internal/diag"
	"github.com/coregx/gospell/internal/encoding"
)

// Data holds everything decoded from a .aff file.
type Data struct {
	FlagType FlagType
	Encoding encoding.Encoding
	Language string

	ComplexPrefixes bool
	FullStrip       bool
	CheckSharps     bool
	ForbidWarn      bool

	CircumfixFlag     container.Flag
	ForbiddenWordFlag container.Flag
	KeepCaseFlag      container.Flag
	NeedAffixFlag     container.Flag
	SubstandardFlag   container.Flag
	WarnFlag          container.Flag
	NoSuggestFlag     container.Flag

	CompoundFlag           container.Flag
	CompoundBeginFlag      container.Flag
	CompoundMiddleFlag     container.Flag
	CompoundEndFlag        container.Flag
	OnlyInCompoundFlag     container.Flag
	CompoundPermitFlag     container.Flag
	CompoundForbidFlag     container.Flag
	CompoundRootFlag       container.Flag
	CompoundForceUCaseFlag container.Flag

	CompoundCheckDup        bool
	CompoundCheckRep        bool
	CompoundCheckCase       bool
	CompoundCheckTriple     bool
	CompoundSimplifiedTriple bool

	CompoundMin     int
	CompoundWordMax int

	CompoundSyllableMax    int
	CompoundSyllableVowels string

	MaxCompoundSuggestions int
	MaxNgramSuggestions    int
	MaxPhoneticSuggestions int
	MaxDiff                int
	OnlyMaxDiff            bool
	NoSplitSuggestions     bool
	SuggestWithDots        bool

	WordChars   string
	IgnoreChars string
	TryChars    string
	KeyRows     []string

	FlagAliases  []container.FlagSet
	MorphAliases []string

	Prefixes *Table
	Suffixes *Table

	CompoundRules    *compoundrule.Table
	CompoundPatterns []CompoundPattern

	Rep     *container.ReplacementTable
	Map     []container.SimilarityGroup
	Break   *container.BreakTable
	Phone   *PhoneticTable
	Iconv   *container.SubstrReplacer
	Oconv   *container.SubstrReplacer

	Diagnostics []diag.Diagnostic
}

func newData() *Data {
	return &Data{
		FlagType:        SingleChar,
		CompoundMin:     3,
		CompoundWordMax: 0,
		MaxCompoundSuggestions: 3,
		MaxNgramSuggestions:    4,
		MaxPhoneticSuggestions: 2,
		MaxDiff:                5,
		Prefixes:        NewTable(Prefix),
		Suffixes:        NewTable(Suffix),
		Break:           container.NewBreakTable(container.DefaultBreakPatterns),
	}
}

// ResolveFlagAlias returns the flag set aliased by the 1-based index n,
// and false if AF never declared that index.
func (d *Data) ResolveFlagAlias(n int) (container.FlagSet, bool) {
	if n < 1 || n > len(d.FlagAliases) {
		return nil, false
	}
	return d.FlagAliases[n-1], true
}

// CasingLanguageNeedsSharpS reports whether CHECKSHARPS is enabled.
// The recognizer does not consult it: "ß" and "SS" get no special
// casing treatment.
func (d *Data) CasingLanguageNeedsSharpS() bool { return d.CheckSharps }

// Title/Lower/Upper delegate to the casing package; kept as methods so
// a future per-language Mapper could be plugged in via Data without
// changing call sites.
func (d *Data) Title(s string) string { return casing.Title(s) }
func (d *Data) Lower(s string) string { return casing.Lower(s) }
func (d *Data) Upper(s string) string { return casing.Upper(s) }
