// Package markup reads a small declarative format describing a scene tree:
//
//	grid main {
//	  width: 800; height: 600
//	  columns: "200px, *, 2*"
//	  rows: "Auto, *"
//	  box header { row: 0; columnspan: 3; height: 40; fill: steelblue }
//	  stack sidebar {
//	    row: 1
//	    spacing: 4
//	    box { height: 30; fill: #ccc }
//	  }
//	}
//
// A node is a kind (grid, stack, canvas or box), an optional name and a
// brace-delimited body of "key: value" properties and child nodes.
// Statements are separated by newlines or semicolons.
package markup

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	markupLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})\b`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d*|\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Punct", Pattern: `[{}:;]`},
	})

	documentParser = participle.MustBuild[Document](
		participle.Lexer(markupLexer),
		participle.Elide("Whitespace", "LineComment"),
		participle.UseLookahead(2),
	)
)

// Document is the root AST node of a markup file. It holds exactly one node.
type Document struct {
	Pos  lexer.Position `parser:""`
	Root *Node          `parser:"Newline* @@ Newline*"`
}

// Node declares one element and its children.
type Node struct {
	Pos  lexer.Position `parser:""`
	Kind string         `parser:"@Ident"`
	Name string         `parser:"@Ident?"`
	Body []*Statement   `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Statement inside a node body.
type Statement struct {
	Property *Property `parser:"  @@"`
	Node     *Node     `parser:"| @@"`
}

// Property is a "key: value..." assignment.
type Property struct {
	Pos    lexer.Position `parser:""`
	Key    string         `parser:"@Ident ':'"`
	Values []*Value       `parser:"@@+"`
}

// Value is a single property operand.
type Value struct {
	Number *float64       `parser:"  @Number"`
	Str    *StringLiteral `parser:"| @String"`
	Color  *string        `parser:"| @Color"`
	Ident  *string        `parser:"| @Ident"`
}

// String returns the value as written, for error messages.
func (v *Value) String() string {
	switch {
	case v == nil:
		return "<nil>"
	case v.Number != nil:
		return strconv.FormatFloat(*v.Number, 'f', -1, 64)
	case v.Str != nil:
		return strconv.Quote(string(*v.Str))
	case v.Color != nil:
		return *v.Color
	case v.Ident != nil:
		return *v.Ident
	default:
		return "<empty>"
	}
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses markup read from r. filename is used in error positions.
func Parse(filename string, r io.Reader) (*Document, error) {
	return documentParser.Parse(filename, r)
}

// ParseString parses markup held in a string.
func ParseString(filename, src string) (*Document, error) {
	return documentParser.ParseString(filename, src)
}
