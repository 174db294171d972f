package reasoner

import (
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/semreason/ontology"
)

// InheritanceError reports a query against an IRI the graph does not
// contain.
type InheritanceError struct {
	IRI ontology.NodeID
}

func (e *InheritanceError) Error() string {
	return fmt.Sprintf("unknown class: %s", e.IRI)
}

// CircularInheritanceError reports a cycle in the subClassOf hierarchy
// discovered during an ancestor walk. Cycle holds the offending path ending
// at the node where the walk closed on itself.
type CircularInheritanceError struct {
	Node  ontology.NodeID
	Cycle []ontology.NodeID
}

func (e *CircularInheritanceError) Error() string {
	return fmt.Sprintf("circular inheritance at %s: %s", e.Node, strings.Join(e.Cycle, " -> "))
}

// DisjointnessCheckError is reserved for disjointness failures that cannot
// be neutralized internally. AreDisjoint swallows ancestor-walk errors to
// stay total, so this should rarely if ever surface.
type DisjointnessCheckError struct {
	err error
}

func (e *DisjointnessCheckError) Error() string {
	return "disjointness check failed: " + e.err.Error()
}

func (e *DisjointnessCheckError) Unwrap() error {
	return e.err
}

// IsUnknownClass reports whether err is an unknown-IRI inheritance error.
func IsUnknownClass(err error) bool {
	var unknown *InheritanceError
	return errors.As(err, &unknown)
}

// IsCircular reports whether err is a circular-inheritance error.
func IsCircular(err error) bool {
	var circular *CircularInheritanceError
	return errors.As(err, &circular)
}
