// Package container implements the small, allocation-conscious data
// structures that sit underneath the affix and dictionary parsers: flag
// sets, the longest-match substring replacer, break tables, replacement
// tables, similarity groups and the affix boundary condition matcher.
package container

import "sort"

// Flag identifies a single affix/compound/option flag. Hunspell flags are
//16-bit code units regardless of which on-disk encoding (single char,
// double char, numeric or UTF-8) produced them.
type Flag uint16

// HiddenHomonymFlag is an internal flag, never present in a dictionary file,
// that the dic loader attaches to automatically generated cased variants of
// a stem. It lets a lookup on the lowered/titled spelling find the
// originally-cased entry without exposing it to suggestion generation as a
// user-authored word.
const HiddenHomonymFlag Flag = 0xFFFF

// FlagSet is an ordered, duplicate-free collection of flags. Sets are
// small (typically under ten entries) so a sorted slice beats a map on
// every axis that matters here: allocation count, cache locality and
// comparison cost.
type FlagSet []Flag

// NewFlagSet builds a FlagSet from arbitrary (possibly unsorted,
// possibly duplicated) flags.
func NewFlagSet(flags ...Flag) FlagSet {
	fs := append(FlagSet(nil), flags...)
	return fs.sortUniq()
}

func (fs FlagSet) sortUniq() FlagSet {
	sort.Slice(fs, func(i, j int) bool { return fs[i] < fs[j] })
	out := fs[:0]
	for i, f := range fs {
		if i == 0 || f != out[len(out)-1] {
			out = append(out, f)
		}
	}
	return out
}

// Contains reports whether f is a member of the set.
func (fs FlagSet) Contains(f Flag) bool {
	i := sort.Search(len(fs), func(i int) bool { return fs[i] >= f })
	return i < len(fs) && fs[i] == f
}

// ContainsAny reports whether any of the given flags is non-zero and
// present in the set. A zero Flag denotes "no flag configured" and never
// matches.
func (fs FlagSet) ContainsAny(flags ...Flag) bool {
	for _, f := range flags {
		if f != 0 && fs.Contains(f) {
			return true
		}
	}
	return false
}

// Union returns the sorted union of fs and other, without mutating either.
func (fs FlagSet) Union(other FlagSet) FlagSet {
	out := make(FlagSet, 0, len(fs)+len(other))
	out = append(out, fs...)
	out = append(out, other...)
	return out.sortUniq()
}

// Add returns fs with f inserted, preserving order and uniqueness.
func (fs FlagSet) Add(f Flag) FlagSet {
	if fs.Contains(f) {
		return fs
	}
	out := make(FlagSet, 0, len(fs)+1)
	out = append(out, fs...)
	out = append(out, f)
	return out.sortUniq()
}

// Intersects reports whether fs and other share at least one flag.
func (fs FlagSet) Intersects(other FlagSet) bool {
	i, j := 0, 0
	for i < len(fs) && j < len(other) {
		switch {
		case fs[i] == other[j]:
			return true
		case fs[i] < other[j]:
			i++
		default:
			j++
		}
	}
	return false
}

// Less gives the lexicographic order of two flag sets over their
// underlying, already-canonicalized sequences.
func (fs FlagSet) Less(other FlagSet) bool {
	for i := 0; i < len(fs) && i < len(other); i++ {
		if fs[i] != other[i] {
			return fs[i] < other[i]
		}
	}
	return len(fs) < len(other)
}

// Equal reports whether the two sets contain exactly the same flags.
func (fs FlagSet) Equal(other FlagSet) bool {
	if len(fs) != len(other) {
		return false
	}
	for i := range fs {
		if fs[i] != other[i] {
			return false
		}
	}
	return true
}

// Empty reports whether the flag set carries no flags.
func (fs FlagSet) Empty() bool { return len(fs) == 0 }
