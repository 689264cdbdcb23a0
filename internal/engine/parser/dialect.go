package parser

import (
	"fmt"
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"
)

// Dialect names the grammar a source is parsed with.
type Dialect string

const (
	DialectJavaScript Dialect = "javascript"
	DialectTypeScript Dialect = "typescript"
	DialectTSX        Dialect = "tsx"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(s))); d {
	case DialectJavaScript, DialectTypeScript, DialectTSX:
		return d, nil
	case "":
		return DialectJavaScript, nil
	default:
		return "", fmt.Errorf("unsupported dialect %q", s)
	}
}

// Language returns the tree-sitter grammar for d.
func (d Dialect) Language() (*sitter.Language, error) {
	switch d {
	case DialectJavaScript:
		return sitter.NewLanguage(tree_sitter_javascript.Language()), nil
	case DialectTypeScript:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript()), nil
	case DialectTSX:
		return sitter.NewLanguage(tree_sitter_typescript.LanguageTSX()), nil
	default:
		return nil, fmt.Errorf("dialect %q has no grammar binding", d)
	}
}
