// Package diag defines the diagnostic records the affix and dictionary
// parsers surface for malformed input lines, and the minimal logging
// hook callers can attach to observe them as they're produced.
package diag

import (
	"context"
	"fmt"
	"log/slog"
)

// Severity distinguishes a warning (parsing continues) from an error
// (the offending line is rejected; the overall load may still succeed
// unless some later condition makes it fatal).
type Severity int

const (
	Warning Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// Kind enumerates the non-exhaustive list of error/warning conditions
// the aff/dic loaders can report.
type Kind int

const (
	ErrStreamRead Kind = iota
	ErrInvalidEncoding
	ErrEncodingConversion
	ErrInvalidFlagType
	ErrInvalidLanguageTag
	ErrMissingFlags
	ErrUnpairedLongFlag
	ErrInvalidNumericFlag
	ErrFlagOutOfRange
	ErrInvalidUTF8
	ErrInvalidNumericAlias
	ErrInvalidAffixCross
	ErrInvalidCondition
	ErrInvalidCompoundRule
	ErrArrayWithoutCount
	WarnOptionAlreadySet
	WarnExtraArrayEntry
	WarnAffixAlreadySet
)

func (k Kind) String() string {
	switch k {
	case ErrStreamRead:
		return "stream read failure"
	case ErrInvalidEncoding:
		return "invalid encoding identifier"
	case ErrEncodingConversion:
		return "encoding conversion failure"
	case ErrInvalidFlagType:
		return "invalid flag type"
	case ErrInvalidLanguageTag:
		return "invalid language tag"
	case ErrMissingFlags:
		return "missing flags after /"
	case ErrUnpairedLongFlag:
		return "unpaired long flag"
	case ErrInvalidNumericFlag:
		return "invalid numeric flag"
	case ErrFlagOutOfRange:
		return "flag above 65535"
	case ErrInvalidUTF8:
		return "invalid UTF-8"
	case ErrInvalidNumericAlias:
		return "invalid numeric alias"
	case ErrInvalidAffixCross:
		return "invalid affix cross character"
	case ErrInvalidCondition:
		return "invalid affix condition"
	case ErrInvalidCompoundRule:
		return "invalid compound rule"
	case ErrArrayWithoutCount:
		return "array command without count"
	case WarnOptionAlreadySet:
		return "option already set"
	case WarnExtraArrayEntry:
		return "extra array entry beyond declared count"
	case WarnAffixAlreadySet:
		return "affix flag already declared"
	default:
		return "unknown"
	}
}

// Diagnostic is one loader-reported condition, human-readable and
// attributable to a source line.
type Diagnostic struct {
	File     string
	Line     int
	Kind     Kind
	Severity Severity
	Message  string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Severity, d.Message)
}

// Error implements error so a fatal Diagnostic can be returned directly
// from a loader.
func (d Diagnostic) Error() string { return d.String() }

// Sink receives diagnostics as they're produced during a load, in
// addition to being accumulated into the returned []Diagnostic slice.
// A nil Sink is valid and simply does nothing.
type Sink struct {
	logger *slog.Logger
}

// NewSink wraps logger. A nil logger discards everything.
func NewSink(logger *slog.Logger) *Sink {
	return &Sink{logger: logger}
}

// Emit logs d at a level matching its severity.
func (s *Sink) Emit(d Diagnostic) {
	if s == nil || s.logger == nil {
		return
	}
	level := slog.LevelWarn
	if d.Severity == Error {
		level = slog.LevelError
	}
	s.logger.Log(context.Background(), level, d.Message,
		slog.String("file", d.File),
		slog.Int("line", d.Line),
		slog.String("kind", d.Kind.String()),
	)
}
