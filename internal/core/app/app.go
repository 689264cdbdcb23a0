package app

import (
	"log/slog"

	"jsanalyzer/internal/core/config"
	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/core/ports"
	"jsanalyzer/internal/engine/extractor"
	"jsanalyzer/internal/engine/lint"
	"jsanalyzer/internal/engine/parser"
)

// New wires the parser, extractor and linter described by cfg into a Service.
func New(cfg *config.Config) (*Service, error) {
	if cfg == nil {
		return nil, errors.New(errors.CodeValidationError, "config is required")
	}

	dialect, err := parser.ParseDialect(cfg.Parser.Dialect)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeValidationError, "parser dialect")
	}
	p, err := parser.New(dialect)
	if err != nil {
		return nil, errors.AddContext(err, errors.CtxDialect, string(dialect))
	}

	var linter ports.StyleChecker = lint.Disabled{}
	if cfg.Lint.LintEnabled() {
		linter = lint.NewESLint(cfg.Lint.Command, cfg.Lint.Args, cfg.Lint.Dir)
	}

	slog.Debug("analyzer initialized",
		"dialect", dialect,
		"lint_enabled", cfg.Lint.LintEnabled(),
		"lint_command", cfg.Lint.Command,
	)

	return NewService(extractor.New(p), linter, Options{
		Dialect:     string(dialect),
		LintEnabled: cfg.Lint.LintEnabled(),
	}), nil
}
