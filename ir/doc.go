// Package ir provides the source-position provenance model for the
// compiler's intermediate representation.
//
// Every IR construct carries a [Location] recording where in the original
// program text it came from, so diagnostics, debug information, and
// inlining history can be reconstructed later in the pipeline.
//
// # Key Types
//
//   - [Location]: tagged union over {AST node, raw file position, null},
//     plus a semantic [Kind] and a [Flags] set (value type)
//   - [InlinedLocation]: locations recorded by the general inliner
//   - [MandatoryInlinedLocation]: locations recorded by mandatory inlining
//   - [CleanupLocation]: locations recorded by cleanup emission
//
// # Resolution
//
// Location.SourcePos answers "what single point best represents this
// construct", which depends on the location's semantic kind: cleanup and
// implicit-return locations resolve to the end of their construct, return
// locations to its start, and regular locations to the category-specific
// canonical point of the underlying node. StartPos and EndPos answer
// "what is the lexical span" and never depend on kind. Keeping the two
// questions separate avoids conflating debug-info anchor points with span
// boundaries.
//
// # Narrowing
//
// IR subsystems that only accept a restricted location shape obtain it
// through a validated constructor ([NewInlinedLocation],
// [NewMandatoryInlinedLocation], [NewCleanupLocation]). Each wrapper has
// its own rules for file positions and degenerate inputs; the asymmetries
// match what the consuming subsystem can represent and are not candidates
// for unification.
//
// # Immutability Guarantees
//
// All types in this package are immutable after construction:
//
//   - No mutation methods exist on any type
//   - All Location fields are unexported
//   - Transformations (WithFlags, narrowing) return new values
//
// Resolution and narrowing are pure functions of their inputs, so multiple
// compiler threads may hold and resolve locations concurrently without
// coordination.
//
// # Lifetime
//
// A Location does not own the AST node it references. It must not outlive
// the syntax tree that produced the node, and resolution assumes that tree
// is read-only by the time IR passes run.
package ir
