package ports

import (
	"context"

	"jsanalyzer/internal/engine/extractor"
	"jsanalyzer/internal/engine/lint"
)

// SourceExtractor abstracts parsing plus top-level declaration collection.
type SourceExtractor interface {
	Extract(ctx context.Context, source string) (extractor.Result, error)
}

// StyleChecker abstracts the external linter. Implementations never fail the
// caller; problems surface in Report.Failure.
type StyleChecker interface {
	Lint(ctx context.Context, source string) lint.Report
}

