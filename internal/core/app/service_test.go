package app

import (
	"context"
	stderrors "errors"
	"testing"

	"jsanalyzer/internal/core/config"
	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/engine/extractor"
	"jsanalyzer/internal/engine/lint"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubExtractor struct {
	res   extractor.Result
	err   error
	calls int
}

func (s *stubExtractor) Extract(context.Context, string) (extractor.Result, error) {
	s.calls++
	return s.res, s.err
}

type stubLinter struct {
	report lint.Report
	calls  int
}

func (s *stubLinter) Lint(context.Context, string) lint.Report {
	s.calls++
	return s.report
}

func TestAnalyze_EmptyInputSkipsCollaborators(t *testing.T) {
	ext := &stubExtractor{}
	lin := &stubLinter{}
	svc := NewService(ext, lin, Options{LintEnabled: true})

	for _, src := range []string{"", "   ", "\n\t\n"} {
		rep := svc.Analyze(context.Background(), src)
		assert.Equal(t, StatusEmptyInput, rep.Status)
		assert.Equal(t, "Please provide valid JavaScript code.", rep.Message)
		assert.True(t, errors.IsCode(rep.Err, errors.CodeEmptyInput))
		assert.Empty(t, rep.Summary)
	}
	assert.Zero(t, ext.calls)
	assert.Zero(t, lin.calls)
}

func TestAnalyze_Success(t *testing.T) {
	ext := &stubExtractor{res: extractor.Result{Functions: []string{"foo"}, Variables: []string{"x"}}}
	lin := &stubLinter{report: lint.Report{Diagnostics: []lint.Diagnostic{{RuleID: "no-unused-vars", Message: "unused", Line: 1}}}}
	svc := NewService(ext, lin, Options{LintEnabled: true})

	rep := svc.Analyze(context.Background(), "var x = 1; function foo() {}")
	require.Equal(t, StatusOK, rep.Status)
	assert.Equal(t, "Code successfully parsed.", rep.Message)
	assert.NoError(t, rep.Err)
	assert.Equal(t, "Functions: foo\nVariables: x", rep.Summary)
	assert.Len(t, rep.Diagnostics(), 1)
	assert.Equal(t, 1, lin.calls)
}

func TestAnalyze_ParseErrorStillLints(t *testing.T) {
	parseErr := errors.New(errors.CodeParseFailure, "Line 1: Unexpected end of input")
	ext := &stubExtractor{err: parseErr}
	lin := &stubLinter{report: lint.Report{Failure: errors.New(errors.CodeLintFailure, "eslint: not found")}}
	svc := NewService(ext, lin, Options{LintEnabled: true})

	rep := svc.Analyze(context.Background(), "function (")
	require.Equal(t, StatusParseError, rep.Status)
	assert.Equal(t, "Parsing Error: Line 1: Unexpected end of input", rep.Message)
	assert.Same(t, parseErr, rep.Err)
	var de *errors.DomainError
	require.True(t, stderrors.As(rep.Err, &de))
	assert.Equal(t, "analyze", de.Context[errors.CtxOperation])
	assert.Empty(t, rep.Summary)
	assert.Empty(t, rep.Result.Functions)
	assert.Equal(t, 1, lin.calls)

	items := rep.Diagnostics()
	require.Len(t, items, 1)
	assert.Equal(t, "eslint: not found", items[0].Message)
	assert.Zero(t, items[0].Line)
	assert.Empty(t, items[0].RuleID)
}

func TestAnalyze_NilLinterDefaultsToDisabled(t *testing.T) {
	svc := NewService(&stubExtractor{}, nil, Options{})
	rep := svc.Analyze(context.Background(), "let a;")
	assert.Equal(t, StatusOK, rep.Status)
	assert.Empty(t, rep.Diagnostics())
}

func TestAsk(t *testing.T) {
	ext := &stubExtractor{res: extractor.Result{Functions: []string{"foo"}, Variables: []string{"x"}}}
	svc := NewService(ext, nil, Options{})

	rep := svc.Ask(context.Background(), "var x = 1; function foo() {}", "Which functions?")
	require.Equal(t, StatusOK, rep.Status)
	assert.Equal(t, AnswerFunctions, rep.Answer.Kind)
	assert.Equal(t, []string{"foo"}, rep.Answer.Names)
	assert.Equal(t, "Here are the detected functions:\n- foo", rep.Message)

	rep = svc.Ask(context.Background(), "var x = 1;", "what is this?")
	require.Equal(t, StatusOK, rep.Status)
	assert.Equal(t, AnswerUnrecognized, rep.Answer.Kind)
	assert.Equal(t, "Sorry, I can't answer that question yet!", rep.Message)
}

func TestAsk_BlankQuestion(t *testing.T) {
	ext := &stubExtractor{}
	svc := NewService(ext, nil, Options{})

	rep := svc.Ask(context.Background(), "var x;", "  ")
	assert.Equal(t, StatusEmptyInput, rep.Status)
	assert.Equal(t, "Please enter a question.", rep.Message)
	assert.Zero(t, ext.calls)
}

func TestAsk_BlankSourceIsParsed(t *testing.T) {
	ext := &stubExtractor{}
	svc := NewService(ext, nil, Options{})

	rep := svc.Ask(context.Background(), "", "any variables?")
	require.Equal(t, StatusOK, rep.Status)
	assert.Equal(t, "No variables detected.", rep.Message)
	assert.Equal(t, 1, ext.calls)
}

func TestAsk_ParseError(t *testing.T) {
	ext := &stubExtractor{err: errors.New(errors.CodeParseFailure, "Line 2: Unexpected token }")}
	svc := NewService(ext, nil, Options{})

	rep := svc.Ask(context.Background(), "x\n}", "functions?")
	assert.Equal(t, StatusParseError, rep.Status)
	assert.Equal(t, "Error: Line 2: Unexpected token }", rep.Message)
	var de *errors.DomainError
	require.True(t, stderrors.As(rep.Err, &de))
	assert.Equal(t, "ask", de.Context[errors.CtxOperation])
}

func TestNew_EndToEnd(t *testing.T) {
	cfg := config.DefaultConfig()
	off := false
	cfg.Lint.Enabled = &off

	svc, err := New(cfg)
	require.NoError(t, err)

	rep := svc.Analyze(context.Background(), "var x = 1; function foo() {}")
	require.Equal(t, StatusOK, rep.Status, rep.Message)
	assert.Equal(t, []string{"foo"}, rep.Result.Functions)
	assert.Equal(t, []string{"x"}, rep.Result.Variables)
	assert.Equal(t, "Functions: foo\nVariables: x", rep.Summary)

	rep = svc.Analyze(context.Background(), "function broken( {")
	assert.Equal(t, StatusParseError, rep.Status)
	assert.Regexp(t, `^Parsing Error: Line \d+: `, rep.Message)
}

func TestNew_Errors(t *testing.T) {
	_, err := New(nil)
	assert.True(t, errors.IsCode(err, errors.CodeValidationError))

	cfg := config.DefaultConfig()
	cfg.Parser.Dialect = "coffeescript"
	_, err = New(cfg)
	assert.True(t, errors.IsCode(err, errors.CodeValidationError))
}

func TestHealthService(t *testing.T) {
	svc := NewService(&stubExtractor{}, nil, Options{Dialect: "tsx", LintEnabled: true})
	status := NewHealthService(svc).Check(context.Background())
	assert.Equal(t, "up", status.Status)
	assert.Equal(t, "ok (tsx)", status.Components["extractor"])
	assert.Equal(t, "ok", status.Components["linter"])

	status = NewHealthService(NewService(nil, nil, Options{})).Check(context.Background())
	assert.Equal(t, "degraded", status.Status)
	assert.Equal(t, "disabled", status.Components["linter"])

	status = NewHealthService(nil).Check(context.Background())
	assert.Equal(t, "down", status.Status)
}
