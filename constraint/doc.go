// Package constraint implements the property-constraint lattice.
//
// A PropertyConstraint bounds how a property may be used on a class: value
// ranges, cardinality bounds, and pinned values. Constraints on the same
// property form a bounded meet-semilattice: Top is the unconstrained element,
// Bottom the unsatisfiable one, and Meet computes the most specific common
// refinement. The reasoning service folds inherited constraints through Meet
// to compute a class's effective properties.
package constraint
