package ast

import (
	"bytes"

	"github.com/deepnoodle-ai/srcloc/token"
)

// Block is a statement node that holds a brace-delimited statement list.
type Block struct {
	Lbrace token.Position // position of "{"
	Stmts  []Stmt         // statements in the block
	Rbrace token.Position // position of "}"
}

func (s *Block) stmtNode() {}

func (s *Block) Pos() token.Position { return s.Lbrace }
func (s *Block) End() token.Position { return s.Rbrace.Advance(1) }

func (s *Block) KindName() string { return "Block" }

func (s *Block) String() string {
	var out bytes.Buffer
	out.WriteString("{ ")
	for i, stmt := range s.Stmts {
		if i > 0 {
			out.WriteString("; ")
		}
		out.WriteString(stmt.String())
	}
	out.WriteString(" }")
	return out.String()
}

// Return is a statement node that represents a return from a function.
type Return struct {
	Return token.Position // position of "return" keyword
	Value  Expr           // return value; may be nil
}

func (s *Return) stmtNode() {}

func (s *Return) Pos() token.Position { return s.Return }

func (s *Return) End() token.Position {
	if s.Value != nil {
		return s.Value.End()
	}
	return s.Return.Advance(len("return"))
}

func (s *Return) KindName() string { return "Return" }

func (s *Return) String() string {
	if s.Value == nil {
		return "return"
	}
	return "return " + s.Value.String()
}

// ExprStmt is a statement node that wraps an expression evaluated for its
// side effects, with the result discarded.
type ExprStmt struct {
	X Expr // expression being evaluated
}

func (s *ExprStmt) stmtNode() {}

func (s *ExprStmt) Pos() token.Position { return s.X.Pos() }
func (s *ExprStmt) End() token.Position { return s.X.End() }

func (s *ExprStmt) KindName() string { return "Expr" }

func (s *ExprStmt) String() string { return s.X.String() }

// BadStmt represents a statement containing syntax errors.
// It is used by the parser to continue parsing after an error,
// allowing subsequent errors to be detected without giving up.
type BadStmt struct {
	From token.Position // start of bad statement
	To   token.Position // end of bad statement
}

func (s *BadStmt) stmtNode() {}

func (s *BadStmt) Pos() token.Position { return s.From }
func (s *BadStmt) End() token.Position { return s.To }
func (s *BadStmt) KindName() string    { return "Bad" }
func (s *BadStmt) String() string      { return "<bad statement>" }
