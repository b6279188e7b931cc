// Package ast defines the syntax-node surface consumed by the IR stage.
//
// Nodes fall into four closed categories: declarations, expressions,
// statements, and patterns. All nodes carry position information indicating
// where they appear in the source code.
package ast

import "github.com/deepnoodle-ai/srcloc/token"

// Node represents a portion of the syntax tree. All nodes have position
// information indicating where they appear in the source code.
type Node interface {
	// Pos returns the position of the first character belonging to the node.
	Pos() token.Position

	// End returns the position of the first character immediately after the node.
	End() token.Position

	// KindName returns the name of the node's concrete kind, e.g. "Call"
	// for a call expression. Used when dumping locations.
	KindName() string

	// String returns a human friendly representation of the Node. This should
	// be similar to the original source code, but not necessarily identical.
	String() string
}

// Decl represents a declaration node: a named entity introduced into a
// scope. A declaration's canonical position is the position of its name,
// which may lie strictly inside its lexical span.
type Decl interface {
	Node

	// Loc returns the canonical position of the declaration.
	Loc() token.Position

	declNode()
}

// Expr represents an expression node. Expressions evaluate to a value
// and may be embedded within other expressions. An expression's canonical
// position is kind specific (for example, the operator of a binary
// expression) and may lie strictly inside its lexical span.
type Expr interface {
	Node

	// Loc returns the canonical position of the expression.
	Loc() token.Position

	exprNode()
}

// Stmt represents a statement node. Statements cause side effects but
// do not evaluate to a value. A statement's canonical position is its
// start position.
type Stmt interface {
	Node
	stmtNode()
}

// Pattern represents a binding pattern node, as found on the left-hand
// side of a declaration or in a match arm. A pattern's canonical position
// is its start position.
type Pattern interface {
	Node
	patternNode()
}
