package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/srcloc/token"
)

// FuncDecl is a declaration node for a named function.
type FuncDecl struct {
	Func   token.Position // position of "func" keyword
	Name   *Ident         // function name
	Params []*Ident       // parameter names
	Body   *Block         // function body
}

func (d *FuncDecl) declNode() {}

func (d *FuncDecl) Pos() token.Position { return d.Func }
func (d *FuncDecl) End() token.Position { return d.Body.End() }

// Loc returns the position of the function name, which identifies the
// declaration in diagnostics more usefully than the keyword does.
func (d *FuncDecl) Loc() token.Position { return d.Name.Pos() }

func (d *FuncDecl) KindName() string { return "Func" }

func (d *FuncDecl) String() string {
	var out bytes.Buffer
	out.WriteString("func ")
	out.WriteString(d.Name.String())
	out.WriteString("(")
	for i, p := range d.Params {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(p.String())
	}
	out.WriteString(") ")
	out.WriteString(d.Body.String())
	return out.String()
}

// VarDecl is a declaration node that introduces a new variable with an
// initial value, as in "let x = value".
type VarDecl struct {
	Let   token.Position // position of "let" keyword
	Name  *Ident         // variable name
	Value Expr           // initial value; may be nil
}

func (d *VarDecl) declNode() {}

func (d *VarDecl) Pos() token.Position { return d.Let }

func (d *VarDecl) End() token.Position {
	if d.Value != nil {
		return d.Value.End()
	}
	return d.Name.End()
}

// Loc returns the position of the declared name.
func (d *VarDecl) Loc() token.Position { return d.Name.Pos() }

func (d *VarDecl) KindName() string { return "Var" }

func (d *VarDecl) String() string {
	var out bytes.Buffer
	out.WriteString("let ")
	out.WriteString(d.Name.String())
	if d.Value != nil {
		out.WriteString(" = ")
		out.WriteString(d.Value.String())
	}
	return out.String()
}

// BadDecl represents a declaration containing syntax errors.
// It is used by the parser to continue parsing after an error,
// allowing subsequent errors to be detected without giving up.
type BadDecl struct {
	From token.Position // start of bad declaration
	To   token.Position // end of bad declaration
}

func (d *BadDecl) declNode() {}

func (d *BadDecl) Pos() token.Position { return d.From }
func (d *BadDecl) End() token.Position { return d.To }
func (d *BadDecl) Loc() token.Position { return d.From }
func (d *BadDecl) KindName() string    { return "Bad" }
func (d *BadDecl) String() string      { return "<bad declaration>" }
