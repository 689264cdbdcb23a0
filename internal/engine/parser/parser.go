package parser

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/shared/observability"

	sitter "github.com/tree-sitter/go-tree-sitter"
	"go.opentelemetry.io/otel/attribute"
)

// Parser turns source text into a Tree using the tree-sitter grammar of a
// single dialect.
type Parser struct {
	dialect Dialect
	pool    *ParserPool
}

func New(dialect Dialect) (*Parser, error) {
	lang, err := dialect.Language()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNotSupported, "load grammar")
	}
	return &Parser{
		dialect: dialect,
		pool:    NewParserPool(lang),
	}, nil
}

func (p *Parser) Dialect() Dialect {
	return p.dialect
}

// Parse builds the top-level statement list for source. Any syntax error the
// grammar reports rejects the whole source with a PARSE_FAILURE error; no
// partial tree is returned.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Tree, error) {
	_, span := observability.Tracer().Start(ctx, "Parser.Parse")
	span.SetAttributes(attribute.String("dialect", string(p.dialect)), attribute.Int("bytes", len(source)))
	defer span.End()

	start := time.Now()
	defer func() {
		observability.ParseDuration.WithLabelValues(string(p.dialect)).Observe(time.Since(start).Seconds())
	}()

	sp := p.pool.Get()
	defer p.pool.Put(sp)

	tree := sp.Parse(source, nil)
	if tree == nil {
		return nil, errors.New(errors.CodeInternal, "parse failed")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		observability.ParseFailuresTotal.WithLabelValues(string(p.dialect)).Inc()
		err := syntaxError(root, source)
		span.RecordError(err)
		return nil, err
	}

	out := &Tree{Dialect: p.dialect}
	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		if node == nil || node.IsExtra() {
			continue
		}
		out.Statements = append(out.Statements, toStatement(node, source))
	}
	return out, nil
}

func toStatement(node *sitter.Node, source []byte) Statement {
	loc := location(node)
	switch node.Kind() {
	case "variable_declaration", "lexical_declaration":
		decl := VariableDeclaration{Location: loc}
		if first := node.Child(0); first != nil {
			decl.Keyword = first.Kind()
		}
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child == nil || child.Kind() != "variable_declarator" {
				continue
			}
			decl.Names = appendBindings(decl.Names, child.ChildByFieldName("name"), source)
		}
		return decl
	case "function_declaration", "generator_function_declaration":
		fn := FunctionDeclaration{
			Location:  loc,
			Generator: node.Kind() == "generator_function_declaration",
		}
		if name := node.ChildByFieldName("name"); name != nil {
			fn.Name = name.Utf8Text(source)
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			if child := node.Child(i); child != nil && child.Kind() == "async" {
				fn.Async = true
				break
			}
		}
		return fn
	default:
		return OtherStatement{NodeKind: node.Kind(), Location: loc}
	}
}

// appendBindings appends every identifier bound by a declarator target. A
// plain identifier binds itself; object and array patterns bind the
// identifiers they destructure into, in source order. Default values and
// property keys bind nothing.
func appendBindings(names []string, node *sitter.Node, source []byte) []string {
	if node == nil {
		return names
	}
	switch node.Kind() {
	case "identifier", "shorthand_property_identifier_pattern":
		return append(names, node.Utf8Text(source))
	case "pair_pattern":
		return appendBindings(names, node.ChildByFieldName("value"), source)
	case "assignment_pattern", "object_assignment_pattern":
		return appendBindings(names, node.ChildByFieldName("left"), source)
	}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		names = appendBindings(names, node.NamedChild(i), source)
	}
	return names
}

func location(node *sitter.Node) Location {
	pos := node.StartPosition()
	return Location{Line: int(pos.Row) + 1, Column: int(pos.Column) + 1}
}

// syntaxError reports the first ERROR or MISSING node in document order.
func syntaxError(root *sitter.Node, source []byte) error {
	node := firstErrorNode(root)
	if node == nil {
		node = root
	}
	loc := location(node)

	var msg string
	switch {
	case node.IsMissing():
		msg = fmt.Sprintf("Line %d: Missing %q", loc.Line, node.Kind())
	case int(node.StartByte()) >= len(source):
		msg = fmt.Sprintf("Line %d: Unexpected end of input", loc.Line)
	default:
		msg = fmt.Sprintf("Line %d: Unexpected token %s", loc.Line, tokenText(firstLeaf(node), source))
	}

	return &errors.DomainError{
		Code:    errors.CodeParseFailure,
		Message: msg,
		Context: map[string]interface{}{
			errors.CtxLine:   loc.Line,
			errors.CtxColumn: loc.Column,
		},
	}
}

func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.IsError() || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		if found := firstErrorNode(node.Child(i)); found != nil {
			return found
		}
	}
	return nil
}

func firstLeaf(node *sitter.Node) *sitter.Node {
	for node.ChildCount() > 0 {
		node = node.Child(0)
	}
	return node
}

const maxTokenLen = 32

func tokenText(node *sitter.Node, source []byte) string {
	text := node.Utf8Text(source)
	for i, r := range text {
		if r == '\n' || r == '\r' {
			text = text[:i]
			break
		}
	}
	if text == "" {
		return node.Kind()
	}
	return truncateToken(text)
}

// truncateToken caps text at maxTokenLen runes.
func truncateToken(text string) string {
	if utf8.RuneCountInString(text) <= maxTokenLen {
		return text
	}
	return string([]rune(text)[:maxTokenLen]) + "..."
}
