// Package reasoner answers inheritance, effective-property, subclass, and
// disjointness queries over a built ontology.
//
// A Service wraps the immutable graph and context from a build and owns the
// only mutable state in the system: its memoization caches. Ancestor walks
// use an explicit worklist, never the call stack, so hierarchies hundreds of
// levels deep are safe; a cyclic subClassOf graph surfaces as
// CircularInheritanceError rather than a hang.
//
// Disjointness is three-valued under the open-world assumption: Unknown
// means no evidence either way and must never be read as Disjoint.
package reasoner
