package affix

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/coregx/gospell/internal/container"
)

// FlagType selects how flags are spelled in the .aff/.dic source text.
// The four schemes are best modeled as a tagged union dispatched on this
// small enum rather than as an interface hierarchy, since decoding is
// the only behavior that varies between them.
type FlagType int

const (
	SingleChar FlagType = iota
	DoubleChar
	Number
	UTF8
)

func (t FlagType) String() string {
	switch t {
	case SingleChar:
		return "SINGLE_CHAR"
	case DoubleChar:
		return "DOUBLE_CHAR"
	case Number:
		return "NUMBER"
	case UTF8:
		return "UTF8"
	default:
		return "UNKNOWN"
	}
}

// ParseFlagType decodes the argument of a FLAG option line.
func ParseFlagType(s string) (FlagType, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "LONG":
		return DoubleChar, nil
	case "NUM":
		return Number, nil
	case "UTF-8", "UTF8":
		return UTF8, nil
	default:
		return SingleChar, fmt.Errorf("affix: unknown FLAG type %q", s)
	}
}

// DecodeFlags parses a flag-set token (e.g. "AaZ" for SINGLE_CHAR, "aabbcc"
// for DOUBLE_CHAR, "1,2,300" for NUMBER, or a UTF-8 string) according to t.
func DecodeFlags(t FlagType, token string) (container.FlagSet, error) {
	if token == "" {
		return nil, nil
	}
	switch t {
	case SingleChar:
		runes := []rune(token)
		flags := make([]container.Flag, 0, len(runes))
		for _, r := range runes {
			if r > 0xFFFF {
				return nil, fmt.Errorf("affix: flag %q above 65535", r)
			}
			flags = append(flags, container.Flag(r))
		}
		return container.NewFlagSet(flags...), nil
	case UTF8:
		runes := []rune(token)
		flags := make([]container.Flag, 0, len(runes))
		for _, r := range runes {
			if r > 0xFFFF {
				return nil, fmt.Errorf("affix: flag %q above 65535", r)
			}
			flags = append(flags, container.Flag(r))
		}
		return container.NewFlagSet(flags...), nil
	case DoubleChar:
		runes := []rune(token)
		if len(runes)%2 != 0 {
			return nil, fmt.Errorf("affix: unpaired long flag in %q", token)
		}
		flags := make([]container.Flag, 0, len(runes)/2)
		for i := 0; i < len(runes); i += 2 {
			v := uint16(runes[i])<<8 | uint16(runes[i+1])
			flags = append(flags, container.Flag(v))
		}
		return container.NewFlagSet(flags...), nil
	case Number:
		parts := strings.Split(token, ",")
		flags := make([]container.Flag, 0, len(parts))
		for _, p := range parts {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			n, err := strconv.ParseUint(p, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("affix: invalid numeric flag %q: %w", p, err)
			}
			if n > 0xFFFF {
				return nil, fmt.Errorf("affix: flag %d above 65535", n)
			}
			flags = append(flags, container.Flag(n))
		}
		return container.NewFlagSet(flags...), nil
	default:
		return nil, fmt.Errorf("affix: unknown flag type %v", t)
	}
}

// DecodeFirstFlag decodes token and returns only its first flag, for
// single-flag options such as NOSUGGEST or COMPOUNDFLAG.
func DecodeFirstFlag(t FlagType, token string) (container.Flag, error) {
	fs, err := DecodeFlags(t, token)
	if err != nil {
		return 0, err
	}
	if len(fs) == 0 {
		return 0, fmt.Errorf("affix: missing flag in %q", token)
	}
	return fs[0], nil
}
