package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/srcloc/token"
)

// Ident is an expression node that refers to a variable by name.
type Ident struct {
	NamePos token.Position // position of identifier
	Name    string         // identifier name
}

func (x *Ident) exprNode() {}

func (x *Ident) Pos() token.Position { return x.NamePos }
func (x *Ident) End() token.Position { return x.NamePos.Advance(len(x.Name)) }
func (x *Ident) Loc() token.Position { return x.NamePos }

func (x *Ident) KindName() string { return "Ident" }

func (x *Ident) String() string { return x.Name }

// Int is an expression node that holds an integer literal.
type Int struct {
	ValuePos token.Position // position of the literal
	Literal  string         // the literal text (e.g., "42", "0x2a")
	Value    int64          // the parsed value
}

func (x *Int) exprNode() {}

func (x *Int) Pos() token.Position { return x.ValuePos }
func (x *Int) End() token.Position { return x.ValuePos.Advance(len(x.Literal)) }
func (x *Int) Loc() token.Position { return x.ValuePos }

func (x *Int) KindName() string { return "Int" }

func (x *Int) String() string { return x.Literal }

// Infix is an operator expression where the operator is between the operands.
// Examples include "x + y" and "5 - 1".
type Infix struct {
	X     Expr           // left operand
	OpPos token.Position // position of operator
	Op    string         // operator: "+", "-", "*", "/", etc.
	Y     Expr           // right operand
}

func (x *Infix) exprNode() {}

func (x *Infix) Pos() token.Position { return x.X.Pos() }
func (x *Infix) End() token.Position { return x.Y.End() }

// Loc returns the operator position. Pointing at the operator rather than
// the left operand keeps diagnostics for "a + b" on the "+".
func (x *Infix) Loc() token.Position { return x.OpPos }

func (x *Infix) KindName() string { return "Infix" }

func (x *Infix) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(x.X.String())
	out.WriteString(" " + x.Op + " ")
	out.WriteString(x.Y.String())
	out.WriteString(")")
	return out.String()
}

// Call is an expression node that represents a function call.
type Call struct {
	Fun    Expr           // function being called
	Lparen token.Position // position of "("
	Args   []Expr         // call arguments
	Rparen token.Position // position of ")"
}

func (x *Call) exprNode() {}

func (x *Call) Pos() token.Position { return x.Fun.Pos() }
func (x *Call) End() token.Position { return x.Rparen.Advance(1) }

// Loc returns the position of the opening parenthesis, the point where the
// call itself (as opposed to the callee expression) begins.
func (x *Call) Loc() token.Position { return x.Lparen }

func (x *Call) KindName() string { return "Call" }

func (x *Call) String() string {
	var out bytes.Buffer
	out.WriteString(x.Fun.String())
	out.WriteString("(")
	for i, arg := range x.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}

// BadExpr represents an expression containing syntax errors.
// It is used by the parser to continue parsing after an error,
// allowing subsequent errors to be detected without giving up.
type BadExpr struct {
	From token.Position // start of bad expression
	To   token.Position // end of bad expression
}

func (x *BadExpr) exprNode() {}

func (x *BadExpr) Pos() token.Position { return x.From }
func (x *BadExpr) End() token.Position { return x.To }
func (x *BadExpr) Loc() token.Position { return x.From }
func (x *BadExpr) KindName() string    { return "Bad" }
func (x *BadExpr) String() string      { return "<bad expression>" }
