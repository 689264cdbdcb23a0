package lint

import (
	"context"
	"fmt"

	"jsanalyzer/internal/core/errors"
)

// Severity mirrors ESLint's numeric levels.
type Severity int

const (
	SeverityUnknown Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is one linter finding. RuleID is empty and Line is zero when the
// linter did not supply them.
type Diagnostic struct {
	RuleID   string
	Message  string
	Line     int
	Column   int
	Severity Severity
}

func (d Diagnostic) String() string {
	switch {
	case d.Line > 0 && d.RuleID != "":
		return fmt.Sprintf("Line %d: %s (%s)", d.Line, d.Message, d.RuleID)
	case d.Line > 0:
		return fmt.Sprintf("Line %d: %s", d.Line, d.Message)
	case d.RuleID != "":
		return fmt.Sprintf("%s (%s)", d.Message, d.RuleID)
	default:
		return d.Message
	}
}

// Report is the outcome of one lint run. Failure is set when the linter
// could not produce findings; it never aborts the caller.
type Report struct {
	Diagnostics []Diagnostic
	Failure     error
}

// Items returns the diagnostics in linter order, followed by a synthetic
// message-only diagnostic when the run failed.
func (r Report) Items() []Diagnostic {
	if r.Failure == nil {
		return r.Diagnostics
	}
	out := make([]Diagnostic, 0, len(r.Diagnostics)+1)
	out = append(out, r.Diagnostics...)
	return append(out, Diagnostic{Message: errors.UserMessage(r.Failure)})
}

// Linter checks source text with an external style checker.
type Linter interface {
	Lint(ctx context.Context, source string) Report
}

// Disabled is the linter used when style checking is turned off.
type Disabled struct{}

func (Disabled) Lint(context.Context, string) Report { return Report{} }
