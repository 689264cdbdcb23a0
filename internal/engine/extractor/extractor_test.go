package extractor

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"jsanalyzer/internal/core/errors"
	"jsanalyzer/internal/engine/parser"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newExtractor(t *testing.T) *Extractor {
	t.Helper()
	p, err := parser.New(parser.DialectJavaScript)
	require.NoError(t, err)
	return New(p)
}

func TestExtract_Example(t *testing.T) {
	e := newExtractor(t)

	res, err := e.Extract(context.Background(), "var x = 1; function foo() {}")
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, res.Functions)
	assert.Equal(t, []string{"x"}, res.Variables)
}

func TestExtract_CountsAndOrder(t *testing.T) {
	e := newExtractor(t)

	var b strings.Builder
	wantFuncs := []string{}
	wantVars := []string{}
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, "function f%d() {}\n", i)
		wantFuncs = append(wantFuncs, fmt.Sprintf("f%d", i))
		fmt.Fprintf(&b, "let a%d = %d, b%d;\n", i, i, i)
		wantVars = append(wantVars, fmt.Sprintf("a%d", i), fmt.Sprintf("b%d", i))
	}

	res, err := e.Extract(context.Background(), b.String())
	require.NoError(t, err)
	assert.Equal(t, wantFuncs, res.Functions)
	assert.Equal(t, wantVars, res.Variables)
}

func TestExtract_DuplicatesPreserved(t *testing.T) {
	e := newExtractor(t)

	res, err := e.Extract(context.Background(), "var a = 1; var a = 2; function f() {} function f() {}")
	require.NoError(t, err)
	assert.Equal(t, []string{"f", "f"}, res.Functions)
	assert.Equal(t, []string{"a", "a"}, res.Variables)
}

func TestExtract_NestedDeclarationsIgnored(t *testing.T) {
	e := newExtractor(t)

	code := `function outer() {
  var hidden = 1;
  function inner() {}
}
if (true) { var inBlock = 2; }
for (let i = 0; i < 3; i++) { const loopVar = i; }
{ let scoped = 1; }
`
	res, err := e.Extract(context.Background(), code)
	require.NoError(t, err)
	assert.Equal(t, []string{"outer"}, res.Functions)
	assert.Empty(t, res.Variables)
}

func TestExtract_IgnoredStatementKinds(t *testing.T) {
	e := newExtractor(t)

	code := `/* block comment */
class Widget {}
export function exported() {}
export const flag = true;
const handler = function named() {};
console.log(handler);
`
	res, err := e.Extract(context.Background(), code)
	require.NoError(t, err)
	assert.Empty(t, res.Functions)
	assert.Equal(t, []string{"handler"}, res.Variables)
}

func TestExtract_ParseFailure(t *testing.T) {
	e := newExtractor(t)

	res, err := e.Extract(context.Background(), "function foo() { var x = 1;")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeParseFailure))
	assert.NotEmpty(t, errors.UserMessage(err))
	assert.Empty(t, res.Functions)
	assert.Empty(t, res.Variables)
}

func TestFromTree_SkipsOtherStatements(t *testing.T) {
	tree := &parser.Tree{Statements: []parser.Statement{
		parser.OtherStatement{NodeKind: "import_statement"},
		parser.VariableDeclaration{Keyword: "const", Names: []string{"a", "b"}},
		parser.FunctionDeclaration{Name: "run"},
		parser.VariableDeclaration{Keyword: "let", Names: []string{"c"}},
	}}

	res := FromTree(tree)
	assert.Equal(t, []string{"run"}, res.Functions)
	assert.Equal(t, []string{"a", "b", "c"}, res.Variables)

	assert.Equal(t, Result{}, FromTree(nil))
}
