package affix

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/gospell/internal/compoundrule"
	"github.com/coregx/gospell/internal/container"
	"github.com/coregx/gospell/internal/diag"
	"github.com/coregx/gospell/internal/encoding"
)

// pendingArray accumulates an array command's entries as they arrive
// across successive lines, following the declared-count-then-entries
// protocol every Hunspell array command shares.
type pendingArray struct {
	kind      string
	count     int
	collected int
}

// Parse reads a .aff byte stream and returns the resulting Data plus any
// non-fatal diagnostics. A fatal error aborts the whole parse and is
// returned as *LoadError.
func Parse(src []byte, sink *diag.Sink) (*Data, error) {
	d := newData()
	d.Encoding, _ = encoding.Lookup(encoding.DefaultName)

	src = bytes.TrimPrefix(src, []byte{0xEF, 0xBB, 0xBF})

	var pendingRep, pendingMap, pendingBreak, pendingCompoundRules,
		pendingPatterns, pendingAF, pendingAM, pendingPhone,
		pendingIconv, pendingOconv pendingArray

	var repPairs [][2]string
	var breakPatterns []string
	var mapEntries []string
	var compoundRuleAtoms []string
	var phoneticRules []PhoneticRule
	var iconvPairs, oconvPairs map[string]string
	iconvPairs = map[string]string{}
	oconvPairs = map[string]string{}

	type pendingAffixBlock struct {
		side         Side
		crossProduct bool
		flag         container.Flag
		count        int
		collected    int
	}
	var affixBlock *pendingAffixBlock

	emit := func(lineNo int, kind diag.Kind, sev diag.Severity, format string, args ...any) {
		dg := diag.Diagnostic{File: "aff", Line: lineNo, Kind: kind, Severity: sev, Message: fmt.Sprintf(format, args...)}
		d.Diagnostics = append(d.Diagnostics, dg)
		sink.Emit(dg)
	}

	decode := func(lineNo int, raw string) string {
		s, err := d.Encoding.Decode([]byte(raw))
		if err != nil {
			emit(lineNo, diag.ErrEncodingConversion, diag.Warning, "%v", err)
			return raw
		}
		return s
	}

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		if affixBlock != nil {
			// Entry lines repeat the keyword and flag ahead of the
			// stripping/appending/condition columns, e.g.
			// "SFX T y ies [^aeiou]y".
			fields := strings.Fields(trimmed)
			if len(fields) < 5 {
				emit(lineNo, diag.ErrInvalidAffixCross, diag.Error, "malformed affix entry %q", trimmed)
				continue
			}
			stripping := fields[2]
			if stripping == "0" {
				stripping = ""
			}
			appending := fields[3]
			var contFlags container.FlagSet
			if idx := strings.IndexByte(appending, '/'); idx >= 0 {
				var err error
				contFlags, err = DecodeFlags(d.FlagType, appending[idx+1:])
				if err != nil {
					emit(lineNo, diag.ErrMissingFlags, diag.Error, "%v", err)
				}
				appending = appending[:idx]
			}
			if appending == "0" {
				appending = ""
			}
			condStr := "."
			if fields[4] != "" {
				condStr = fields[4]
			}
			cond, err := container.NewCondition(condStr)
			if err != nil {
				emit(lineNo, diag.ErrInvalidCondition, diag.Error, "%v", err)
				cond, _ = container.NewCondition(".")
			}
			entry := &Entry{
				Flag:              affixBlock.flag,
				Side:              affixBlock.side,
				CrossProduct:      affixBlock.crossProduct,
				Stripping:         decode(lineNo, stripping),
				Appending:         decode(lineNo, appending),
				ContinuationFlags: contFlags,
				Condition:         cond,
			}
			if len(fields) > 5 {
				entry.MorphFields = fields[5:]
			}
			if affixBlock.side == Prefix {
				d.Prefixes.Add(entry)
			} else {
				d.Suffixes.Add(entry)
			}
			affixBlock.collected++
			if affixBlock.collected >= affixBlock.count {
				affixBlock = nil
			}
			continue
		}

		if p := consumeArray(&pendingRep, trimmed); p {
			fields := entryFields(trimmed, "REP")
			if len(fields) >= 2 {
				repPairs = append(repPairs, [2]string{decode(lineNo, underscoreToSpace(fields[0])), decode(lineNo, underscoreToSpace(fields[1]))})
			}
			continue
		}
		if p := consumeArray(&pendingMap, trimmed); p {
			fields := entryFields(trimmed, "MAP")
			if len(fields) >= 1 {
				mapEntries = append(mapEntries, decode(lineNo, fields[0]))
			}
			continue
		}
		if p := consumeArray(&pendingBreak, trimmed); p {
			fields := entryFields(trimmed, "BREAK")
			if len(fields) >= 1 {
				breakPatterns = append(breakPatterns, decode(lineNo, fields[0]))
			}
			continue
		}
		if p := consumeArray(&pendingCompoundRules, trimmed); p {
			fields := entryFields(trimmed, "COMPOUNDRULE")
			if len(fields) >= 1 {
				compoundRuleAtoms = append(compoundRuleAtoms, fields[0])
			}
			continue
		}
		if p := consumeArray(&pendingPatterns, trimmed); p {
			fields := entryFields(trimmed, "COMPOUNDPATTERN")
			pat := CompoundPattern{}
			if len(fields) >= 1 {
				parts := strings.SplitN(fields[0], "/", 2)
				pat.FirstEnd = decode(lineNo, parts[0])
				if len(parts) == 2 {
					f, err := DecodeFirstFlag(d.FlagType, parts[1])
					if err == nil {
						pat.FirstFlag = f
					}
				}
			}
			if len(fields) >= 2 {
				parts := strings.SplitN(fields[1], "/", 2)
				pat.SecondBegin = decode(lineNo, parts[0])
				if len(parts) == 2 {
					f, err := DecodeFirstFlag(d.FlagType, parts[1])
					if err == nil {
						pat.SecondFlag = f
					}
				}
			}
			if len(fields) >= 3 {
				pat.Replacement = decode(lineNo, fields[2])
			}
			d.CompoundPatterns = append(d.CompoundPatterns, pat)
			continue
		}
		if p := consumeArray(&pendingAF, trimmed); p {
			fields := entryFields(trimmed, "AF")
			if len(fields) >= 1 {
				fs, err := DecodeFlags(d.FlagType, fields[0])
				if err != nil {
					emit(lineNo, diag.ErrInvalidNumericFlag, diag.Error, "%v", err)
				}
				d.FlagAliases = append(d.FlagAliases, fs)
			}
			continue
		}
		if p := consumeArray(&pendingAM, trimmed); p {
			fields := entryFields(trimmed, "AM")
			if len(fields) >= 1 {
				d.MorphAliases = append(d.MorphAliases, decode(lineNo, strings.Join(fields, " ")))
			}
			continue
		}
		if p := consumeArray(&pendingPhone, trimmed); p {
			fields := entryFields(trimmed, "PHONE")
			if len(fields) >= 2 {
				phoneticRules = append(phoneticRules, ParsePhoneticRule(fields[0], fields[1]))
			}
			continue
		}
		if p := consumeArray(&pendingIconv, trimmed); p {
			fields := entryFields(trimmed, "ICONV")
			if len(fields) >= 2 {
				iconvPairs[decode(lineNo, fields[0])] = decode(lineNo, fields[1])
			}
			continue
		}
		if p := consumeArray(&pendingOconv, trimmed); p {
			fields := entryFields(trimmed, "OCONV")
			if len(fields) >= 2 {
				oconvPairs[decode(lineNo, fields[0])] = decode(lineNo, fields[1])
			}
			continue
		}

		fields := splitFields(trimmed)
		keyword := strings.ToUpper(fields[0])
		rest := strings.TrimSpace(strings.TrimPrefix(trimmed, fields[0]))
		restFields := fields[1:]

		switch keyword {
		case "SET":
			if len(restFields) < 1 {
				continue
			}
			enc, err := encoding.Lookup(restFields[0])
			if err != nil {
				emit(lineNo, diag.ErrInvalidEncoding, diag.Error, "%v", err)
				continue
			}
			d.Encoding = enc
		case "FLAG":
			if len(restFields) < 1 {
				continue
			}
			ft, err := ParseFlagType(restFields[0])
			if err != nil {
				emit(lineNo, diag.ErrInvalidFlagType, diag.Error, "%v", err)
				continue
			}
			d.FlagType = ft
		case "LANG":
			if len(restFields) < 1 {
				emit(lineNo, diag.ErrInvalidLanguageTag, diag.Error, "missing language tag")
				continue
			}
			d.Language = restFields[0]

		case "COMPLEXPREFIXES":
			d.ComplexPrefixes = true
		case "FULLSTRIP":
			d.FullStrip = true
		case "CHECKSHARPS":
			d.CheckSharps = true
		case "FORBIDWARN":
			d.ForbidWarn = true
		case "CHECKCOMPOUNDDUP":
			d.CompoundCheckDup = true
		case "CHECKCOMPOUNDREP":
			d.CompoundCheckRep = true
		case "CHECKCOMPOUNDCASE":
			d.CompoundCheckCase = true
		case "CHECKCOMPOUNDTRIPLE":
			d.CompoundCheckTriple = true
		case "SIMPLIFIEDTRIPLE":
			d.CompoundSimplifiedTriple = true
		case "ONLYMAXDIFF":
			d.OnlyMaxDiff = true
		case "NOSPLITSUGS":
			d.NoSplitSuggestions = true
		case "SUGSWITHDOTS":
			d.SuggestWithDots = true

		case "COMPOUNDMIN":
			d.CompoundMin = parseClampedInt(restFields, 1, 1, 1<<30)
		case "COMPOUNDWORDMAX":
			d.CompoundWordMax = parseClampedInt(restFields, 0, 0, 1<<30)
		case "MAXCPDSUGS":
			d.MaxCompoundSuggestions = parseClampedInt(restFields, 3, 0, 1<<30)
		case "MAXNGRAMSUGS":
			d.MaxNgramSuggestions = parseClampedInt(restFields, 4, 0, 1<<30)
		case "MAXPHONSUGS":
			d.MaxPhoneticSuggestions = parseClampedInt(restFields, 2, 0, 1<<30)
		case "MAXDIFF":
			d.MaxDiff = parseClampedInt(restFields, 5, 0, 10)

		case "CIRCUMFIX":
			d.CircumfixFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "FORBIDDENWORD":
			d.ForbiddenWordFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "KEEPCASE":
			d.KeepCaseFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "NEEDAFFIX", "PSEUDOROOT":
			d.NeedAffixFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "SUBSTANDARD":
			d.SubstandardFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "WARN":
			d.WarnFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "NOSUGGEST":
			d.NoSuggestFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDFLAG":
			d.CompoundFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDBEGIN":
			d.CompoundBeginFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDMIDDLE":
			d.CompoundMiddleFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDEND", "COMPOUNDLAST":
			d.CompoundEndFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "ONLYINCOMPOUND":
			d.OnlyInCompoundFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDPERMITFLAG":
			d.CompoundPermitFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDFORBIDFLAG":
			d.CompoundForbidFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "COMPOUNDROOT":
			d.CompoundRootFlag = decodeFlagOpt(d, restFields, lineNo, emit)
		case "FORCEUCASE":
			d.CompoundForceUCaseFlag = decodeFlagOpt(d, restFields, lineNo, emit)

		case "KEY":
			if len(restFields) >= 1 {
				d.KeyRows = strings.Split(decode(lineNo, restFields[0]), "|")
			}
		case "TRY":
			if len(restFields) >= 1 {
				d.TryChars = decode(lineNo, restFields[0])
			}
		case "WORDCHARS":
			if len(restFields) >= 1 {
				d.WordChars = decode(lineNo, restFields[0])
			}
		case "IGNORE":
			if len(restFields) >= 1 {
				d.IgnoreChars = decode(lineNo, restFields[0])
			}

		case "COMPOUNDSYLLABLE":
			if len(restFields) >= 2 {
				if n, err := strconv.Atoi(restFields[0]); err == nil {
					d.CompoundSyllableMax = n
				}
				d.CompoundSyllableVowels = decode(lineNo, restFields[1])
			}

		case "REP":
			startArray(&pendingRep, "REP", restFields, lineNo, emit)
		case "MAP":
			startArray(&pendingMap, "MAP", restFields, lineNo, emit)
		case "BREAK":
			startArray(&pendingBreak, "BREAK", restFields, lineNo, emit)
		case "COMPOUNDRULE":
			startArray(&pendingCompoundRules, "COMPOUNDRULE", restFields, lineNo, emit)
		case "COMPOUNDPATTERN", "CHECKCOMPOUNDPATTERN":
			startArray(&pendingPatterns, "COMPOUNDPATTERN", restFields, lineNo, emit)
		case "AF":
			startArray(&pendingAF, "AF", restFields, lineNo, emit)
		case "AM":
			startArray(&pendingAM, "AM", restFields, lineNo, emit)
		case "PHONE":
			startArray(&pendingPhone, "PHONE", restFields, lineNo, emit)
		case "ICONV":
			startArray(&pendingIconv, "ICONV", restFields, lineNo, emit)
		case "OCONV":
			startArray(&pendingOconv, "OCONV", restFields, lineNo, emit)

		case "PFX", "SFX":
			if len(restFields) < 2 {
				emit(lineNo, diag.ErrInvalidAffixCross, diag.Error, "malformed %s header %q", keyword, trimmed)
				continue
			}
			flag, err := DecodeFirstFlag(d.FlagType, restFields[0])
			if err != nil {
				emit(lineNo, diag.ErrInvalidNumericFlag, diag.Error, "%v", err)
				continue
			}
			cross := strings.EqualFold(restFields[1], "Y")
			count := 0
			if len(restFields) >= 3 {
				count, _ = strconv.Atoi(restFields[2])
			}
			if count == 0 {
				emit(lineNo, diag.ErrArrayWithoutCount, diag.Error, "%s %s declares zero entries", keyword, restFields[0])
				continue
			}
			side := Suffix
			if keyword == "PFX" {
				side = Prefix
			}
			affixBlock = &pendingAffixBlock{side: side, crossProduct: cross, flag: flag, count: count}

		default:
			_ = rest
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Line: lineNo, Kind: diag.ErrStreamRead, Message: err.Error(), Err: err}
	}

	if len(breakPatterns) > 0 {
		d.Break = container.NewBreakTable(breakPatterns)
	}
	if len(repPairs) > 0 {
		d.Rep = container.NewReplacementTable(repPairs)
	}
	for _, entry := range mapEntries {
		d.Map = append(d.Map, container.NewSimilarityGroup(entry))
	}
	if len(compoundRuleAtoms) > 0 {
		rules := make([]*compoundrule.Rule, 0, len(compoundRuleAtoms))
		for _, raw := range compoundRuleAtoms {
			rule, err := compoundrule.Parse(raw, func(s string) (container.Flag, error) {
				return DecodeFirstFlag(d.FlagType, s)
			})
			if err != nil {
				emit(0, diag.ErrInvalidCompoundRule, diag.Error, "%v", err)
				continue
			}
			rules = append(rules, rule)
		}
		d.CompoundRules = compoundrule.NewTable(rules)
	}
	if len(phoneticRules) > 0 {
		d.Phone = NewPhoneticTable(phoneticRules)
	}
	if len(iconvPairs) > 0 {
		ic, err := container.NewSubstrReplacer(iconvPairs)
		if err == nil {
			d.Iconv = ic
		}
	}
	if len(oconvPairs) > 0 {
		oc, err := container.NewSubstrReplacer(oconvPairs)
		if err == nil {
			d.Oconv = oc
		}
	}
	return d, nil
}

func consumeArray(p *pendingArray, _ string) bool {
	if p.count == 0 {
		return false
	}
	p.collected++
	if p.collected >= p.count {
		p.count = 0
	}
	return true
}

func startArray(p *pendingArray, kind string, fields []string, lineNo int, emit func(int, diag.Kind, diag.Severity, string, ...any)) {
	if len(fields) < 1 {
		emit(lineNo, diag.ErrArrayWithoutCount, diag.Error, "%s without count", kind)
		return
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n == 0 {
		emit(lineNo, diag.ErrArrayWithoutCount, diag.Error, "%s declares invalid count %q", kind, fields[0])
		return
	}
	*p = pendingArray{kind: kind, count: n}
}

func splitFields(s string) []string { return strings.Fields(s) }

// entryFields splits an array-command continuation line and drops its
// repeated keyword column (Hunspell repeats e.g. "REP" on every entry
// line, not just the header).
func entryFields(trimmed, kind string) []string {
	fields := splitFields(trimmed)
	if len(fields) > 0 && strings.EqualFold(fields[0], kind) {
		return fields[1:]
	}
	return fields
}

func underscoreToSpace(s string) string { return strings.ReplaceAll(s, "_", " ") }

func parseClampedInt(fields []string, def, min, max int) int {
	if len(fields) < 1 {
		return def
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return def
	}
	if n < min {
		return def
	}
	if n > max {
		return def
	}
	return n
}

func decodeFlagOpt(d *Data, fields []string, lineNo int, emit func(int, diag.Kind, diag.Severity, string, ...any)) container.Flag {
	if len(fields) < 1 {
		return 0
	}
	f, err := DecodeFirstFlag(d.FlagType, fields[0])
	if err != nil {
		emit(lineNo, diag.ErrInvalidNumericFlag, diag.Error, "%v", err)
		return 0
	}
	return f
}
