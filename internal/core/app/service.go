package app

import (
	"context"
	"log/slog"
	"strings"

	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/core/ports"
	"jsanalyzer/internal/engine/extractor"
	"jsanalyzer/internal/engine/lint"
	"jsanalyzer/internal/shared/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Status classifies the outcome of one user action.
type Status int

const (
	StatusOK Status = iota
	StatusEmptyInput
	StatusParseError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmptyInput:
		return "empty_input"
	case StatusParseError:
		return "parse_error"
	default:
		return "unknown"
	}
}

const (
	msgEmptySource   = "Please provide valid JavaScript code."
	msgEmptyQuestion = "Please enter a question."
	msgParsed        = "Code successfully parsed."
	analyzeErrPrefix = "Parsing Error: "
	askErrPrefix     = "Error: "
)

// AnalysisReport is everything the Analyze action renders. Result and Summary
// are only set when Status is StatusOK. Lint is set whenever the source was
// not blank.
type AnalysisReport struct {
	Status  Status
	Message string
	Err     error
	Result  extractor.Result
	Summary string
	Lint    lint.Report
}

// Diagnostics returns the lint items, including the synthetic failure entry.
func (r AnalysisReport) Diagnostics() []lint.Diagnostic {
	return r.Lint.Items()
}

// QuestionReport is everything the Ask action renders. Answer is only
// meaningful when Status is StatusOK.
type QuestionReport struct {
	Status  Status
	Message string
	Err     error
	Answer  Answer
}

type Options struct {
	Dialect     string
	LintEnabled bool
}

// Service holds the two request handlers. It keeps no per-request state, so
// one Service may serve concurrent requests.
type Service struct {
	extractor ports.SourceExtractor
	linter    ports.StyleChecker
	opts      Options
}

func NewService(ext ports.SourceExtractor, linter ports.StyleChecker, opts Options) *Service {
	if linter == nil {
		linter = lint.Disabled{}
	}
	return &Service{extractor: ext, linter: linter, opts: opts}
}

// Analyze validates, extracts and lints source. Blank input short-circuits
// before the parser or the linter is invoked.
func (s *Service) Analyze(ctx context.Context, source string) AnalysisReport {
	ctx, span := observability.Tracer().Start(ctx, "Service.Analyze")
	span.SetAttributes(attribute.Int("bytes", len(source)))
	defer span.End()

	if strings.TrimSpace(source) == "" {
		err := errors.New(errors.CodeEmptyInput, msgEmptySource)
		span.SetStatus(codes.Error, err.Error())
		return AnalysisReport{Status: StatusEmptyInput, Message: msgEmptySource, Err: err}
	}

	report := AnalysisReport{Lint: s.linter.Lint(ctx, source)}

	res, err := s.extractor.Extract(ctx, source)
	if err != nil {
		err = errors.Annotate(err, errors.CtxOperation, "analyze")
		span.SetStatus(codes.Error, err.Error())
		slog.Info("analysis rejected", "operation", "analyze", "error", err)
		report.Status = StatusParseError
		report.Message = analyzeErrPrefix + errors.UserMessage(err)
		report.Err = err
		return report
	}

	report.Status = StatusOK
	report.Message = msgParsed
	report.Result = res
	report.Summary = Summarize(res)

	span.SetAttributes(
		attribute.Int("functions", len(res.Functions)),
		attribute.Int("variables", len(res.Variables)),
		attribute.Int("diagnostics", len(report.Lint.Diagnostics)),
	)
	slog.Info("analysis complete",
		"functions", len(res.Functions),
		"variables", len(res.Variables),
		"diagnostics", len(report.Lint.Diagnostics),
	)
	return report
}

// Ask re-parses source and answers question against its declarations. Only
// the question is checked for blankness; an empty source has no names.
func (s *Service) Ask(ctx context.Context, source, question string) QuestionReport {
	ctx, span := observability.Tracer().Start(ctx, "Service.Ask")
	defer span.End()

	if strings.TrimSpace(question) == "" {
		err := errors.New(errors.CodeEmptyInput, msgEmptyQuestion)
		span.SetStatus(codes.Error, err.Error())
		return QuestionReport{Status: StatusEmptyInput, Message: msgEmptyQuestion, Err: err}
	}

	res, err := s.extractor.Extract(ctx, source)
	if err != nil {
		err = errors.Annotate(err, errors.CtxOperation, "ask")
		span.SetStatus(codes.Error, err.Error())
		slog.Info("question rejected", "operation", "ask", "error", err)
		return QuestionReport{
			Status:  StatusParseError,
			Message: askErrPrefix + errors.UserMessage(err),
			Err:     err,
		}
	}

	ans := AnswerQuestion(question, res)
	span.SetAttributes(attribute.String("answer", ans.Kind.String()))
	slog.Info("question answered", "answer", ans.Kind.String(), "names", len(ans.Names))
	return QuestionReport{Status: StatusOK, Message: ans.Text(), Answer: ans}
}
