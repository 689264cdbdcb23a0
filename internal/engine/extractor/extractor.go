// Package extractor collects the names declared by top-level function and
// variable statements of a parsed source.
package extractor

import (
	"context"
	"log/slog"

	"jsanalyzer/internal/engine/parser"
	"jsanalyzer/internal/shared/observability"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Result lists declared names in source order. Duplicates are kept.
type Result struct {
	Functions []string
	Variables []string
}

// SourceParser produces a top-level statement list from source text.
type SourceParser interface {
	Parse(ctx context.Context, source []byte) (*parser.Tree, error)
}

type Extractor struct {
	parser SourceParser
}

func New(p SourceParser) *Extractor {
	return &Extractor{parser: p}
}

// Extract parses source and collects its top-level declarations. A parse
// failure is returned unchanged and no Result is produced.
func (e *Extractor) Extract(ctx context.Context, source string) (Result, error) {
	ctx, span := observability.Tracer().Start(ctx, "Extractor.Extract")
	defer span.End()

	tree, err := e.parser.Parse(ctx, []byte(source))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return Result{}, err
	}

	res := FromTree(tree)
	span.SetAttributes(
		attribute.Int("functions", len(res.Functions)),
		attribute.Int("variables", len(res.Variables)),
	)
	slog.Debug("extracted declarations", "functions", len(res.Functions), "variables", len(res.Variables))
	return res, nil
}

// FromTree walks the top-level statements once. Only function and variable
// declarations contribute names; every other statement kind is skipped.
func FromTree(tree *parser.Tree) Result {
	var res Result
	if tree == nil {
		return res
	}
	for _, stmt := range tree.Statements {
		switch s := stmt.(type) {
		case parser.VariableDeclaration:
			res.Variables = append(res.Variables, s.Names...)
		case parser.FunctionDeclaration:
			res.Functions = append(res.Functions, s.Name)
		default:
		}
	}
	return res
}
