package reasoner

import "fmt"

// Disjointness is the three-valued result of a disjointness query.
type Disjointness int

const (
	// Unknown means no evidence either way. Under the open-world
	// assumption this is the default outcome and is not Disjoint.
	Unknown Disjointness = iota

	// Disjoint means an owl:disjointWith axiom separates the classes,
	// directly or through their ancestors.
	Disjoint

	// Overlapping means one class is a subclass of the other, so they
	// provably share instances.
	Overlapping
)

// String returns the string representation of the Disjointness.
func (d Disjointness) String() string {
	switch d {
	case Unknown:
		return "unknown"
	case Disjoint:
		return "disjoint"
	case Overlapping:
		return "overlapping"
	default:
		return fmt.Sprintf("disjointness(%d)", d)
	}
}
