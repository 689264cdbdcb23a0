package lint

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/shared/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// ESLint runs an ESLint-compatible executable that reads the source on stdin
// and prints its JSON formatter output on stdout.
type ESLint struct {
	Command string
	Args    []string
	Dir     string
}

func NewESLint(command string, args []string, dir string) *ESLint {
	return &ESLint{Command: command, Args: args, Dir: dir}
}

type eslintFileResult struct {
	FilePath string          `json:"filePath"`
	Messages []eslintMessage `json:"messages"`
}

type eslintMessage struct {
	RuleID   *string `json:"ruleId"`
	Severity int     `json:"severity"`
	Message  string  `json:"message"`
	Line     int     `json:"line"`
	Column   int     `json:"column"`
	Fatal    bool    `json:"fatal"`
}

// Lint never returns an error: every failure (missing binary, crash, config
// error, unreadable output) lands in Report.Failure.
func (l *ESLint) Lint(ctx context.Context, source string) Report {
	ctx, span := observability.Tracer().Start(ctx, "ESLint.Lint")
	span.SetAttributes(attribute.String("command", l.Command))
	defer span.End()

	start := time.Now()
	report := l.run(ctx, source)
	observability.LintDuration.Observe(time.Since(start).Seconds())

	if report.Failure != nil {
		observability.LintFailuresTotal.Inc()
		span.SetStatus(codes.Error, report.Failure.Error())
		slog.Warn("linter failed", "command", l.Command, "error", report.Failure)
	}
	span.SetAttributes(attribute.Int("diagnostics", len(report.Diagnostics)))
	return report
}

func (l *ESLint) run(ctx context.Context, source string) Report {
	cmd := exec.CommandContext(ctx, l.Command, l.Args...)
	cmd.Dir = l.Dir
	cmd.Stdin = strings.NewReader(source)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// ESLint exits 1 when it found problems; that is a successful run.
		var exitErr *exec.ExitError
		if !(stderrors.As(err, &exitErr) && exitErr.ExitCode() == 1) {
			return Report{Failure: failure(err, stderr.String(), l.Command)}
		}
	}

	diags, err := decodeOutput(stdout.Bytes())
	if err != nil {
		return Report{Failure: failure(err, stderr.String(), l.Command)}
	}
	return Report{Diagnostics: diags}
}

func decodeOutput(data []byte) ([]Diagnostic, error) {
	var results []eslintFileResult
	if err := json.Unmarshal(bytes.TrimSpace(data), &results); err != nil {
		return nil, fmt.Errorf("decode linter output: %w", err)
	}

	var diags []Diagnostic
	for _, file := range results {
		for _, msg := range file.Messages {
			d := Diagnostic{
				Message:  msg.Message,
				Line:     msg.Line,
				Column:   msg.Column,
				Severity: Severity(msg.Severity),
			}
			if msg.RuleID != nil {
				d.RuleID = *msg.RuleID
			}
			diags = append(diags, d)
		}
	}
	return diags, nil
}

func failure(err error, stderr, command string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = err.Error()
	}
	return (&errors.DomainError{
		Code:    errors.CodeLintFailure,
		Message: msg,
	}).WithContext(errors.CtxCommand, command).WithContext(errors.CtxOperation, "lint")
}
