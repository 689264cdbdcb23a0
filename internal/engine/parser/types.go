package parser

// Tree is the top-level view of a parsed source: its program body in source
// order. Nested scopes are not represented.
type Tree struct {
	Dialect    Dialect
	Statements []Statement
}

// Statement is one top-level statement. The set of implementations is closed:
// VariableDeclaration, FunctionDeclaration and OtherStatement.
type Statement interface {
	Kind() string
	Position() Location
	statement()
}

// VariableDeclaration is a var, let or const statement. Names holds every
// name bound by its declarators, in declarator order.
type VariableDeclaration struct {
	Keyword  string
	Names    []string
	Location Location
}

// FunctionDeclaration is a named function statement, including async and
// generator forms.
type FunctionDeclaration struct {
	Name      string
	Async     bool
	Generator bool
	Location  Location
}

// OtherStatement is any top-level statement the analyzer does not look into.
type OtherStatement struct {
	NodeKind string
	Location Location
}

type Location struct {
	Line   int
	Column int
}

func (VariableDeclaration) Kind() string { return "variable_declaration" }
func (FunctionDeclaration) Kind() string { return "function_declaration" }
func (s OtherStatement) Kind() string    { return s.NodeKind }

func (s VariableDeclaration) Position() Location { return s.Location }
func (s FunctionDeclaration) Position() Location { return s.Location }
func (s OtherStatement) Position() Location      { return s.Location }

func (VariableDeclaration) statement() {}
func (FunctionDeclaration) statement() {}
func (OtherStatement) statement()      {}
