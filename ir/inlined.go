package ir

import (
	"errors"
	"fmt"
)

// Narrowing errors. Any non-nil error from a narrowing constructor means
// the caller handed over a location outside the wrapper's contract, which
// is an upstream defect; callers must abort rather than continue with a
// location that would misreport positions.
var (
	ErrCannotInline          = errors.New("location cannot be narrowed to an inlined location")
	ErrCannotMandatoryInline = errors.New("location cannot be narrowed to a mandatory inlined location")
)

// InlinedLocation is a location restricted to the shapes the general
// inliner records for instructions copied from a callee: an AST node or a
// raw file position. It adds no storage beyond Location; only its
// constructor differs.
type InlinedLocation struct {
	Location
}

// NewInlinedLocation narrows l for use by the general inliner. An
// AST-node or file-position location is carried over together with l's
// flags. Narrowing an already-inlined location keeps its underlying file
// position and takes the new flags, so inlined locations never nest.
// A null location cannot be inlined and yields ErrCannotInline.
func NewInlinedLocation(l Location) (InlinedLocation, error) {
	if l.node != nil {
		return InlinedLocation{Location{node: l.node, kind: KindInlined, flags: l.flags}}, nil
	}
	if l.pos.IsValid() {
		return InlinedLocation{Location{pos: l.pos, kind: KindInlined, flags: l.flags}}, nil
	}
	return InlinedLocation{}, fmt.Errorf("%w: %s", ErrCannotInline, l)
}

// MandatoryInlinedLocation is a location restricted to the shapes the
// mandatory inlining pass records. It behaves like InlinedLocation except
// that top-level module code, which has no node or position of its own,
// degrades to the module location instead of failing.
type MandatoryInlinedLocation struct {
	Location
}

// NewMandatoryInlinedLocation narrows l for use by the mandatory inlining
// pass. An AST-node or file-position location is carried over together
// with l's flags, flattening an already-narrowed location the same way
// NewInlinedLocation does. A location that carries FlagInTopLevel but no
// node or position narrows to the module location; any other null location
// yields ErrCannotMandatoryInline.
func NewMandatoryInlinedLocation(l Location) (MandatoryInlinedLocation, error) {
	if l.node != nil {
		return MandatoryInlinedLocation{Location{node: l.node, kind: KindMandatoryInlined, flags: l.flags}}, nil
	}
	if l.pos.IsValid() {
		return MandatoryInlinedLocation{Location{pos: l.pos, kind: KindMandatoryInlined, flags: l.flags}}, nil
	}
	if l.flags.Has(FlagInTopLevel) {
		return ModuleLocation(l.flags), nil
	}
	return MandatoryInlinedLocation{}, fmt.Errorf("%w: %s", ErrCannotMandatoryInline, l)
}

// ModuleLocation returns the distinguished location standing for the
// module as a whole, used when mandatory inlining happens in top-level
// code that has no construct of its own to point at.
func ModuleLocation(flags Flags) MandatoryInlinedLocation {
	return MandatoryInlinedLocation{Location{kind: KindMandatoryInlined, flags: flags}}
}

// IsModuleLocation reports whether this is the module location. Null
// mandatory-inlined locations arise only through ModuleLocation or the
// top-level fallback in NewMandatoryInlinedLocation, so the null variant
// is the module location.
func (l MandatoryInlinedLocation) IsModuleLocation() bool { return l.IsNull() }

// CleanupLocation is a location restricted to the shapes cleanup emission
// records: an AST node whose scope exit the cleanup belongs to, or the
// null cleanup value.
type CleanupLocation struct {
	Location
}

// NewCleanupLocation narrows l for cleanup emission. An AST-node location
// is carried over together with l's flags. Everything else, including raw
// file positions, degrades to the null cleanup value with no flags:
// cleanups for synthesized code have no meaningful point of their own.
// Unlike the inlined narrowings this never fails.
func NewCleanupLocation(l Location) CleanupLocation {
	if l.node != nil {
		return CleanupLocation{Location{node: l.node, kind: KindCleanup, flags: l.flags}}
	}
	return CleanupLocation{Location{kind: KindCleanup}}
}
