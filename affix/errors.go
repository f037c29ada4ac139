package affix

import (
	"fmt"

	"github.com/coregx/gospell/internal/diag"
)

// LoadError is returned by Parse when the .aff stream cannot be read to
// the end; malformed lines are reported as diagnostics instead. It
// wraps the underlying cause so callers can still branch on it with
// errors.As/errors.Is.
type LoadError struct {
	Line    int
	Kind    diag.Kind
	Message string
	Err     error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("affix: line %d: %s: %s", e.Line, e.Kind, e.Message)
}

func (e *LoadError) Unwrap() error { return e.Err }
