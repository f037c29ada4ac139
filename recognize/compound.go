package recognize

import (
	"strings"

	"github.com/coregx/gospell/internal/casing"
	"github.com/coregx/gospell/internal/container"
)

// checkCompound implements §4.3.3: partition word into 2..CompoundWordMax
// parts, each independently valid and satisfying the position/join
// constraints, returning true on the first accepting partition.
func (r *Recognizer) checkCompound(word string) bool {
	runes := []rune(word)
	return r.compoundSplit(runes, 0, nil, nil)
}

func (r *Recognizer) compoundSplit(runes []rune, start int, parts []string, partFlags []container.FlagSet) bool {
	if start == len(runes) {
		return len(parts) >= 2 && r.compoundAccept(parts, partFlags)
	}
	maxParts := r.aff.CompoundWordMax
	if maxParts > 0 && len(parts) >= maxParts {
		return false
	}
	minLen := r.aff.CompoundMin
	if minLen < 1 {
		minLen = 1
	}
	for end := start + minLen; end <= len(runes); end++ {
		remaining := len(runes) - end
		if remaining != 0 && remaining < minLen {
			continue
		}
		part := string(runes[start:end])
		isFirst := len(parts) == 0
		isLast := end == len(runes)
		for _, flags := range r.compoundPartStems(part) {
			if !r.compoundPositionOK(flags, isFirst, isLast) {
				continue
			}
			if len(parts) > 0 {
				prevPart := parts[len(parts)-1]
				prevFlags := partFlags[len(partFlags)-1]
				if !r.compoundJoinOK(prevPart, part, prevFlags, flags) {
					continue
				}
			}
			nextParts := append(append([]string(nil), parts...), part)
			nextFlags := append(append([]container.FlagSet(nil), partFlags...), flags)
			if r.compoundSplit(runes, end, nextParts, nextFlags) {
				return true
			}
		}
	}
	return false
}

// compoundPartStems collects the flag sets of every dictionary-backed
// interpretation of part: the bare stem, or a single affix strip. Two-
// level stripping is not attempted for compound parts, matching the
// reference engine's more conservative compounding pass.
func (r *Recognizer) compoundPartStems(part string) []container.FlagSet {
	var out []container.FlagSet
	add := func(flags container.FlagSet) {
		if r.aff.ForbiddenWordFlag != 0 && flags.Contains(r.aff.ForbiddenWordFlag) {
			return
		}
		out = append(out, flags)
	}
	for _, s := range r.words.Lookup(part) {
		add(s.Flags)
	}
	for _, e := range r.aff.Suffixes.CandidatesFor(part) {
		root := e.StripRoot(part)
		if root == "" && !r.aff.FullStrip {
			continue
		}
		if !e.MatchesCondition(root) {
			continue
		}
		for _, s := range r.words.Lookup(root) {
			if s.Flags.Contains(e.Flag) {
				add(s.Flags)
			}
		}
	}
	for _, e := range r.aff.Prefixes.CandidatesFor(part) {
		root := e.StripRoot(part)
		if root == "" && !r.aff.FullStrip {
			continue
		}
		if !e.MatchesCondition(root) {
			continue
		}
		for _, s := range r.words.Lookup(root) {
			if s.Flags.Contains(e.Flag) {
				add(s.Flags)
			}
		}
	}
	return out
}

func (r *Recognizer) compoundPositionOK(flags container.FlagSet, isFirst, isLast bool) bool {
	a := r.aff
	generic := a.CompoundFlag != 0 && flags.Contains(a.CompoundFlag)
	switch {
	case isFirst && isLast:
		return generic || (a.CompoundBeginFlag != 0 && flags.Contains(a.CompoundBeginFlag)) ||
			(a.CompoundEndFlag != 0 && flags.Contains(a.CompoundEndFlag))
	case isFirst:
		return generic || (a.CompoundBeginFlag != 0 && flags.Contains(a.CompoundBeginFlag))
	case isLast:
		return generic || (a.CompoundEndFlag != 0 && flags.Contains(a.CompoundEndFlag))
	default:
		return generic || (a.CompoundMiddleFlag != 0 && flags.Contains(a.CompoundMiddleFlag))
	}
}

// compoundJoinOK applies the CHECKCOMPOUND* family of join constraints
// from §4.3.3.
func (r *Recognizer) compoundJoinOK(prevPart, part string, prevFlags, flags container.FlagSet) bool {
	a := r.aff
	if a.CompoundCheckDup && prevPart == part {
		return false
	}
	if a.CompoundCheckCase {
		if len(prevPart) > 0 && len(part) > 0 {
			prevLast := []rune(prevPart)[len([]rune(prevPart))-1]
			partFirst := []rune(part)[0]
			if isUpperLetter(prevLast) && isUpperLetter(partFirst) {
				return false
			}
		}
	}
	if a.CompoundCheckTriple || a.CompoundSimplifiedTriple {
		joined := prevPart + part
		if hasTripleAt(joined, len(prevPart)) {
			if a.CompoundCheckTriple && !a.CompoundSimplifiedTriple {
				return false
			}
		}
	}
	for _, pat := range a.CompoundPatterns {
		if pat.Forbids(prevPart, part, prevFlags, flags) {
			return false
		}
	}
	if a.CompoundCheckRep && a.Rep != nil {
		joined := prevPart + part
		forbidden := false
		a.Rep.Apply(joined, func(candidate string) {
			if r.checkSimpleOrAffixed(candidate, false) {
				forbidden = true
			}
		})
		if forbidden {
			return false
		}
	}
	return true
}

func isUpperLetter(r rune) bool { return casing.Upper(string(r)) == string(r) && casing.Lower(string(r)) != string(r) }

func hasTripleAt(s string, boundary int) bool {
	runes := []rune(s)
	b := len([]rune(s[:boundary]))
	if b < 2 || b >= len(runes) {
		return false
	}
	return runes[b-1] == runes[b-2] && runes[b-1] == runes[b]
}

// compoundAccept runs the whole-compound checks that need every part at
// once: COMPOUNDRULE matching and FORCEUCASE.
func (r *Recognizer) compoundAccept(parts []string, partFlags []container.FlagSet) bool {
	a := r.aff
	if a.CompoundRules != nil && !a.CompoundRules.Empty() {
		if !a.CompoundRules.MatchAny(partFlags) {
			return false
		}
	}
	if a.CompoundForceUCaseFlag != 0 {
		last := partFlags[len(partFlags)-1]
		if last.Contains(a.CompoundForceUCaseFlag) {
			whole := strings.Join(parts, "")
			if casing.Classify(whole) == casing.Small {
				return false
			}
		}
	}
	return true
}
