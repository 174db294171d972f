package ontology

import (
	"fmt"

	"github.com/c360studio/semreason/constraint"
)

// NodeID is the IRI naming a class or property.
type NodeID = string

// ExprKind discriminates the class-expression variants.
type ExprKind int

const (
	// ExprUnionOf is a class built from the union of member classes.
	ExprUnionOf ExprKind = iota

	// ExprIntersectionOf is a class built from the intersection of member
	// classes.
	ExprIntersectionOf

	// ExprComplementOf is a class built from the complement of a single
	// class.
	ExprComplementOf
)

// String returns the string representation of the ExprKind.
func (k ExprKind) String() string {
	switch k {
	case ExprUnionOf:
		return "unionOf"
	case ExprIntersectionOf:
		return "intersectionOf"
	case ExprComplementOf:
		return "complementOf"
	default:
		return fmt.Sprintf("expr_kind(%d)", k)
	}
}

// ClassExpression is a tagged class-set expression attached to a named
// class. Classes holds the member IRIs; a complement has exactly one.
type ClassExpression struct {
	Kind    ExprKind
	Classes []NodeID
}

// ClassNode is a named class with the property constraints it owns directly.
// Inherited constraints are computed by the reasoner, not stored here.
type ClassNode struct {
	ID          NodeID
	Label       string
	Properties  []constraint.PropertyConstraint
	Expressions []ClassExpression
}

// Context is the non-graph output of a build: the class nodes by IRI,
// properties with no class domain, and the symmetric disjointness map.
// It is immutable after Build returns.
type Context struct {
	Nodes               map[NodeID]*ClassNode
	UniversalProperties []constraint.PropertyConstraint
	DisjointWith        map[NodeID]map[NodeID]struct{}
}

// AreDisjoint reports whether an owl:disjointWith axiom directly links a
// and b. The map is symmetric, so one lookup suffices.
func (c *Context) AreDisjoint(a, b NodeID) bool {
	_, ok := c.DisjointWith[a][b]
	return ok
}
