package affix

import "github.com/coregx/gospell/internal/container"

// CompoundPattern constrains how two adjacent compound parts may join,
// per COMPOUNDPATTERN / CHECKCOMPOUNDPATTERN. A join is forbidden when
// the end of the first part matches FirstEnd, the start of the second
// part matches SecondBegin, and (if set) the first/second part's stem
// carries FirstFlag/SecondFlag. Replacement and
// MatchFirstOnlyUnaffixedOrZeroAffixed are stored but not consulted by
// Forbids: a pattern with a replacement forbids the same joins as one
// without.
type CompoundPattern struct {
	FirstEnd            string
	SecondBegin         string
	Replacement         string
	FirstFlag           container.Flag
	SecondFlag          container.Flag
	MatchFirstOnlyUnaffixedOrZeroAffixed bool
}

// Forbids reports whether joining firstPart+secondPart at this boundary
// is forbidden by the pattern. firstFlags/secondFlags are the flag sets
// of the dictionary entries supplying each part.
func (p CompoundPattern) Forbids(firstPart, secondPart string, firstFlags, secondFlags container.FlagSet) bool {
	if p.FirstEnd != "" && !hasSuffixFold(firstPart, p.FirstEnd) {
		return false
	}
	if p.SecondBegin != "" && !hasPrefixFold(secondPart, p.SecondBegin) {
		return false
	}
	if p.FirstFlag != 0 && !firstFlags.Contains(p.FirstFlag) {
		return false
	}
	if p.SecondFlag != 0 && !secondFlags.Contains(p.SecondFlag) {
		return false
	}
	return true
}

func hasSuffixFold(s, suffix string) bool {
	return len(s) >= len(suffix) && s[len(s)-len(suffix):] == suffix
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
