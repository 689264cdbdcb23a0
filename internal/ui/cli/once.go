package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	coreapp "jsanalyzer/internal/core/app"
)

// runOnce analyzes a single file, optionally answers a question about it and
// exits non-zero when either action was rejected.
func runOnce(ctx context.Context, svc *coreapp.Service, opts cliOptions, stdin io.Reader, stdout io.Writer) int {
	source, err := readSource(opts.file, stdin)
	if err != nil {
		slog.Error("failed to read source", "path", opts.file, "error", err)
		return 1
	}

	report := svc.Analyze(ctx, source)
	printAnalysis(stdout, report)
	code := 0
	if report.Status != coreapp.StatusOK {
		code = 1
	}

	if opts.question != "" {
		answer := svc.Ask(ctx, source, opts.question)
		fmt.Fprintln(stdout)
		printAnswer(stdout, opts.question, answer)
		if answer.Status != coreapp.StatusOK {
			code = 1
		}
	}
	return code
}

func readSource(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func printAnalysis(w io.Writer, report coreapp.AnalysisReport) {
	fmt.Fprintln(w, report.Message)
	if report.Summary != "" {
		fmt.Fprintln(w, report.Summary)
	}
	items := report.Diagnostics()
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "Linting (%d):\n", len(items))
	for _, d := range items {
		fmt.Fprintf(w, "  %s\n", d)
	}
}

func printAnswer(w io.Writer, question string, report coreapp.QuestionReport) {
	fmt.Fprintf(w, "Q: %s\n", question)
	fmt.Fprintln(w, report.Message)
}
