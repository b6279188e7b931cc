package ir

import (
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/srcloc/ast"
	"github.com/deepnoodle-ai/srcloc/token"
)

// Kind is the semantic role of a location: it describes what the IR
// construct carrying the location is for, which in turn decides which
// point of the underlying node best represents it. Kind is independent
// of which variant of the location is active.
type Kind uint8

const (
	// KindRegular applies no override; resolution falls through to the
	// node-category dispatch. This is the default for ordinary constructs.
	KindRegular Kind = iota

	// KindReturn marks instructions corresponding to an explicit return
	// statement. Resolves to the start of the construct.
	KindReturn

	// KindImplicitReturn marks the return sequence synthesized at the end
	// of a function with no explicit return. Resolves to the end of the
	// construct.
	KindImplicitReturn

	// KindCleanup marks cleanup code emitted when a scope is exited.
	// Resolves to the end of the construct.
	KindCleanup

	// KindInlined marks instructions copied from a callee into a call
	// site by the general inliner.
	KindInlined

	// KindMandatoryInlined marks instructions copied by the mandatory
	// (always-run) inlining pass.
	KindMandatoryInlined

	// KindArtificialUnreachable marks synthetic unreachable code emitted
	// past the lexical end of a construct.
	KindArtificialUnreachable
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindRegular:
		return "regular"
	case KindReturn:
		return "return"
	case KindImplicitReturn:
		return "implicit_return"
	case KindCleanup:
		return "cleanup"
	case KindInlined:
		return "inlined"
	case KindMandatoryInlined:
		return "mandatory_inlined"
	case KindArtificialUnreachable:
		return "artificial_unreachable"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// pointsToStart reports whether the kind resolves to the start of the
// construct's span for every node category. Inlined locations stand for
// the call site, whose interesting point is where the call begins.
func (k Kind) pointsToStart() bool {
	return k == KindInlined || k == KindMandatoryInlined
}

// pointsToEnd reports whether the kind resolves to the end of the
// construct's span for every node category.
func (k Kind) pointsToEnd() bool {
	return k == KindArtificialUnreachable
}

// Flags is a set of independent boolean attributes carried alongside a
// location. Flags are orthogonal to the active variant and the kind, and
// are propagated by value, unchanged, through narrowing unless a specific
// narrowing rule says otherwise.
type Flags uint8

const (
	// FlagImplicit marks compiler-synthesized code with no direct
	// counterpart in the source text.
	FlagImplicit Flags = 1 << iota

	// FlagInPrologue marks code belonging to the function prologue.
	FlagInPrologue

	// FlagInTopLevel marks top-level module code.
	FlagInTopLevel
)

// Has reports whether every flag in o is set in f.
func (f Flags) Has(o Flags) bool { return f&o == o }

// With returns f with the flags in o added.
func (f Flags) With(o Flags) Flags { return f | o }

// Without returns f with the flags in o removed.
func (f Flags) Without(o Flags) Flags { return f &^ o }

// String returns a "+"-joined list of the set flags, or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}
	var names []string
	if f.Has(FlagImplicit) {
		names = append(names, "implicit")
	}
	if f.Has(FlagInPrologue) {
		names = append(names, "prologue")
	}
	if f.Has(FlagInTopLevel) {
		names = append(names, "top_level")
	}
	return strings.Join(names, "+")
}

// Location records where an IR construct came from in the original program
// text. Exactly one of three variants is active: a reference to an AST
// node, a raw file position (for synthesized code not anchored to any
// node), or neither (the null location). A kind and a flag set are always
// present regardless of the active variant.
//
// The zero value is the null location with KindRegular and no flags.
//
// A Location does not own its AST node. It is valid only while the syntax
// tree that produced the node is alive, and resolution assumes that tree
// is no longer being mutated.
type Location struct {
	node  ast.Node       // active when non-nil
	pos   token.Position // active when valid and node is nil
	kind  Kind
	flags Flags
}

// NewLocation returns a location anchored to the given AST node with the
// given kind. The node must belong to one of the four syntax categories
// (Decl, Expr, Stmt, Pattern); anything else panics, since a location over
// an unknown category could never be resolved. A nil node yields the null
// location.
func NewLocation(node ast.Node, kind Kind) Location {
	switch node.(type) {
	case nil:
		return Location{kind: kind}
	case ast.Decl, ast.Expr, ast.Stmt, ast.Pattern:
		return Location{node: node, kind: kind}
	default:
		panic(fmt.Sprintf("srcloc: location over unknown ast node type: %T", node))
	}
}

// FileLocation returns a location holding a raw file position, used for
// compiler-generated code that is not anchored to any AST node. An invalid
// position yields the null location.
func FileLocation(pos token.Position) Location {
	return Location{pos: pos, kind: KindRegular}
}

// WithFlags returns a copy of the location with its flags replaced by f.
// The receiver is unchanged.
func (l Location) WithFlags(f Flags) Location {
	l.flags = f
	return l
}

// Kind returns the location's semantic role.
func (l Location) Kind() Kind { return l.kind }

// Flags returns the location's flag set.
func (l Location) Flags() Flags { return l.flags }

// Node returns the referenced AST node, or nil if the node variant is not
// active.
func (l Location) Node() ast.Node { return l.node }

// FilePos returns the raw file position. It is token.NoPos unless the
// file-position variant is active.
func (l Location) FilePos() token.Position {
	if l.node != nil {
		return token.NoPos
	}
	return l.pos
}

// HasASTNode reports whether the node variant is active.
func (l Location) HasASTNode() bool { return l.node != nil }

// IsNull reports whether neither a node nor a file position is active.
// Null is a first-class state: null locations resolve to token.NoPos and
// print as "<no loc>".
func (l Location) IsNull() bool { return l.node == nil && !l.pos.IsValid() }

// SourcePos resolves the single point that best represents the construct,
// honoring the location's kind. Kind-based overrides apply only to
// node-anchored locations; a raw file position is returned as is, and the
// null location resolves to token.NoPos.
func (l Location) SourcePos() token.Position {
	if l.node == nil {
		return l.pos
	}
	if l.kind.pointsToStart() {
		return l.StartPos()
	}
	if l.kind.pointsToEnd() {
		return l.EndPos()
	}
	switch l.kind {
	case KindCleanup, KindImplicitReturn:
		return l.EndPos()
	case KindReturn:
		return l.StartPos()
	}
	switch n := l.node.(type) {
	case ast.Decl:
		return n.Loc()
	case ast.Expr:
		return n.Loc()
	case ast.Stmt:
		return n.Pos()
	case ast.Pattern:
		return n.Pos()
	}
	// NewLocation only admits the four categories above.
	panic(fmt.Sprintf("srcloc: unresolvable location over %T", l.node))
}

// StartPos returns the start of the construct's lexical span. Unlike
// SourcePos it ignores the location's kind entirely.
func (l Location) StartPos() token.Position {
	if l.node == nil {
		return l.pos
	}
	return l.node.Pos()
}

// EndPos returns the end of the construct's lexical span. Unlike SourcePos
// it ignores the location's kind entirely.
func (l Location) EndPos() token.Position {
	if l.node == nil {
		return l.pos
	}
	return l.node.End()
}
