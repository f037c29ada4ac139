package dic

import (
	"bufio"
	"bytes"
	"strconv"
	"strings"

	"github.com/coregx/gospell/affix"
	"github.com/coregx/gospell/internal/container"
	"github.com/coregx/gospell/internal/diag"
)

// Parse reads a .dic byte stream against an already-parsed aff and
// returns the resulting WordList.
func Parse(src []byte, aff *affix.Data, sink *diag.Sink) (*WordList, error) {
	src = bytes.TrimPrefix(src, []byte{0xEF, 0xBB, 0xBF})

	scanner := bufio.NewScanner(bytes.NewReader(src))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	hint := 0
	if scanner.Scan() {
		first := strings.TrimSpace(strings.TrimRight(scanner.Text(), "\r"))
		if n, err := strconv.Atoi(first); err == nil {
			hint = n
		}
	}
	wl := NewWordList(hint)

	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		stemText, flagToken, morph := splitDicLine(line)
		if stemText == "" {
			continue
		}

		var decodedFlags container.FlagSet
		if flagToken != "" {
			var err error
			decodedFlags, err = decodeDicFlags(aff, flagToken)
			if err != nil {
				if sink != nil {
					sink.Emit(diag.Diagnostic{
						File: "dic", Line: lineNo, Kind: diag.ErrMissingFlags,
						Severity: diag.Error, Message: err.Error(),
					})
				}
			}
		}

		decodedStem, decErr := aff.Encoding.Decode([]byte(stemText))
		if decErr != nil {
			decodedStem = stemText
		}
		decodedStem = stripIgnored(decodedStem, aff.IgnoreChars)

		stem := Stem{Word: decodedStem, Flags: decodedFlags, MorphFields: morph}
		wl.Insert(stem)
		insertHiddenHomonymIfNeeded(wl, stem, aff.ForbiddenWordFlag)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return wl, nil
}

// splitDicLine implements SPEC_FULL §4.2 step 2-3: find the end of the
// stem at the first unescaped '/', a tab, or a space introducing an
// "xx:" morphological tag, and return the stem, the flag token (if any)
// and any trailing morphological fields.
func splitDicLine(line string) (stem, flagToken string, morph []string) {
	runes := []rune(line)
	i := 0
	for i < len(runes) {
		c := runes[i]
		if c == '\\' && i+1 < len(runes) {
			i += 2
			continue
		}
		if c == '/' {
			rest := string(runes[i+1:])
			fields := strings.Fields(rest)
			if len(fields) > 0 {
				flagToken = fields[0]
				morph = fields[1:]
			}
			return unescapeSlash(string(runes[:i])), flagToken, morph
		}
		if c == '\t' {
			rest := strings.TrimSpace(string(runes[i+1:]))
			morph = strings.Fields(rest)
			return unescapeSlash(string(runes[:i])), "", morph
		}
		if c == ' ' && isMorphTagStart(runes[i+1:]) {
			rest := strings.TrimSpace(string(runes[i+1:]))
			morph = strings.Fields(rest)
			return unescapeSlash(string(runes[:i])), "", morph
		}
		i++
	}
	return unescapeSlash(string(runes)), "", nil
}

func isMorphTagStart(rest []rune) bool {
	if len(rest) < 3 {
		return false
	}
	return rest[2] == ':'
}

func unescapeSlash(s string) string {
	return strings.ReplaceAll(s, "\\/", "/")
}

func decodeDicFlags(aff *affix.Data, token string) (container.FlagSet, error) {
	if len(aff.FlagAliases) > 0 {
		if n, convErr := strconv.Atoi(token); convErr == nil {
			fs, ok := aff.ResolveFlagAlias(n)
			if ok {
				return fs, nil
			}
		}
	}
	return affix.DecodeFlags(aff.FlagType, token)
}

func stripIgnored(s, ignored string) string {
	if ignored == "" {
		return s
	}
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(ignored, r) {
			return -1
		}
		return r
	}, s)
}
