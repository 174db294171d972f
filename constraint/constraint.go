package constraint

import "fmt"

// MeetError reports a Meet between constraints on different properties.
// The lattice is only defined per property IRI; crossing IRIs is caller
// misuse, not an ontology condition.
type MeetError struct {
	Left  string
	Right string
}

func (e *MeetError) Error() string {
	return fmt.Sprintf("cannot meet constraints on different properties: %s vs %s", e.Left, e.Right)
}

// PropertyConstraint bounds how a property may be used on a class.
//
// Ranges and AllowedValues have set semantics; both keep insertion order so
// builds are deterministic. An empty Ranges or AllowedValues means
// unconstrained, not "nothing allowed". MaxCardinality nil means unbounded.
type PropertyConstraint struct {
	PropertyIRI    string
	Label          string
	Ranges         []string
	MinCardinality int
	MaxCardinality *int
	AllowedValues  []string
	Source         Source

	IsSymmetric         bool
	IsTransitive        bool
	IsInverseFunctional bool
}

// Top returns the unconstrained constraint for a property: every lattice
// element refines it, and it is the identity of Meet.
func Top(iri, label string) PropertyConstraint {
	return PropertyConstraint{
		PropertyIRI: iri,
		Label:       label,
		Source:      SourceRefined,
	}
}

// Bottom returns the unsatisfiable constraint for a property, manufactured
// as min cardinality 1 over max cardinality 0. It absorbs every Meet.
func Bottom(iri, label string) PropertyConstraint {
	zero := 0
	return PropertyConstraint{
		PropertyIRI:    iri,
		Label:          label,
		MinCardinality: 1,
		MaxCardinality: &zero,
		Source:         SourceRefined,
	}
}

// IsTop reports whether the constraint places no restriction at all.
func (c PropertyConstraint) IsTop() bool {
	return len(c.Ranges) == 0 &&
		len(c.AllowedValues) == 0 &&
		c.MinCardinality == 0 &&
		c.MaxCardinality == nil
}

// IsBottom reports whether the constraint is unsatisfiable: its cardinality
// bounds are contradictory.
func (c PropertyConstraint) IsBottom() bool {
	return c.MaxCardinality != nil && c.MinCardinality > *c.MaxCardinality
}

// Clone returns a deep copy. Constraints are shared between the immutable
// ontology context and query results; mutation of a result must not leak
// back.
func (c PropertyConstraint) Clone() PropertyConstraint {
	out := c
	out.Ranges = append([]string(nil), c.Ranges...)
	out.AllowedValues = append([]string(nil), c.AllowedValues...)
	if c.MaxCardinality != nil {
		v := *c.MaxCardinality
		out.MaxCardinality = &v
	}
	return out
}

// Meet computes the greatest lower bound of c and other: the loosest
// constraint at least as strict as both. It fails only when the operands
// constrain different properties.
//
// Empty Ranges or AllowedValues on one side are treated as "no constraint",
// so the other side passes through. Two non-empty sets with an empty
// intersection - Ranges or AllowedValues alike - are a hard contradiction:
// nothing can satisfy both, and the result collapses to Bottom rather than
// to an empty set that a later meet would misread as unconstrained.
// Contradictory cardinality bounds collapse the same way.
func (c PropertyConstraint) Meet(other PropertyConstraint) (PropertyConstraint, error) {
	if c.PropertyIRI != other.PropertyIRI {
		return PropertyConstraint{}, &MeetError{Left: c.PropertyIRI, Right: other.PropertyIRI}
	}

	label := c.Label
	if label == "" {
		label = other.Label
	}
	if c.IsBottom() || other.IsBottom() {
		return Bottom(c.PropertyIRI, label), nil
	}

	out := PropertyConstraint{
		PropertyIRI:         c.PropertyIRI,
		Label:               label,
		MinCardinality:      maxInt(c.MinCardinality, other.MinCardinality),
		MaxCardinality:      tighterMax(c.MaxCardinality, other.MaxCardinality),
		Source:              SourceRefined,
		IsSymmetric:         c.IsSymmetric || other.IsSymmetric,
		IsTransitive:        c.IsTransitive || other.IsTransitive,
		IsInverseFunctional: c.IsInverseFunctional || other.IsInverseFunctional,
	}

	if len(c.Ranges) > 0 && len(other.Ranges) > 0 {
		ranges := intersect(c.Ranges, other.Ranges)
		if len(ranges) == 0 {
			return Bottom(c.PropertyIRI, label), nil
		}
		out.Ranges = ranges
	} else {
		out.Ranges = intersectOrPass(c.Ranges, other.Ranges)
	}

	if len(c.AllowedValues) > 0 && len(other.AllowedValues) > 0 {
		values := intersect(c.AllowedValues, other.AllowedValues)
		if len(values) == 0 {
			return Bottom(c.PropertyIRI, label), nil
		}
		out.AllowedValues = values
	} else {
		out.AllowedValues = intersectOrPass(c.AllowedValues, other.AllowedValues)
	}

	if out.IsBottom() {
		return Bottom(c.PropertyIRI, label), nil
	}
	return out, nil
}

// Refines reports whether c is at least as strict as other.
//
// Bottom refines only Bottom; everything refines Top; Top refines only Top.
// Otherwise c must have a min bound no looser, a max bound no looser
// (absent max reads as unbounded), and ranges contained in other's (an empty
// set on other's side reads as unconstrained).
func (c PropertyConstraint) Refines(other PropertyConstraint) bool {
	if c.IsBottom() {
		return other.IsBottom()
	}
	if other.IsBottom() {
		return false
	}
	if other.IsTop() {
		return true
	}
	if c.IsTop() {
		return false
	}

	if c.MinCardinality < other.MinCardinality {
		return false
	}
	if other.MaxCardinality != nil {
		if c.MaxCardinality == nil || *c.MaxCardinality > *other.MaxCardinality {
			return false
		}
	}
	if len(other.Ranges) > 0 {
		for _, r := range c.Ranges {
			if !contains(other.Ranges, r) {
				return false
			}
		}
	}
	return true
}

// Equal reports semantic equality of two constraints: same property, same
// bounds, same sets (order-insensitive), same characteristic flags. Label
// and Source are provenance, not semantics, and are ignored; all Bottom
// constraints of a property are equal.
func (c PropertyConstraint) Equal(other PropertyConstraint) bool {
	if c.PropertyIRI != other.PropertyIRI {
		return false
	}
	if c.IsBottom() || other.IsBottom() {
		return c.IsBottom() && other.IsBottom()
	}
	if c.MinCardinality != other.MinCardinality {
		return false
	}
	if (c.MaxCardinality == nil) != (other.MaxCardinality == nil) {
		return false
	}
	if c.MaxCardinality != nil && *c.MaxCardinality != *other.MaxCardinality {
		return false
	}
	return sameSet(c.Ranges, other.Ranges) &&
		sameSet(c.AllowedValues, other.AllowedValues) &&
		c.IsSymmetric == other.IsSymmetric &&
		c.IsTransitive == other.IsTransitive &&
		c.IsInverseFunctional == other.IsInverseFunctional
}

// intersectOrPass applies the Top-absorption rule at the set level: an empty
// operand is "no constraint", so the other side wins.
func intersectOrPass(a, b []string) []string {
	if len(a) == 0 {
		return append([]string(nil), b...)
	}
	if len(b) == 0 {
		return append([]string(nil), a...)
	}
	return intersect(a, b)
}

func intersect(a, b []string) []string {
	var out []string
	for _, v := range a {
		if contains(b, v) && !contains(out, v) {
			out = append(out, v)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func sameSet(a, b []string) bool {
	for _, v := range a {
		if !contains(b, v) {
			return false
		}
	}
	for _, v := range b {
		if !contains(a, v) {
			return false
		}
	}
	return true
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// tighterMax picks the smaller of two optional upper bounds, treating nil as
// unbounded.
func tighterMax(a, b *int) *int {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		v := *b
		return &v
	case b == nil:
		v := *a
		return &v
	case *a <= *b:
		v := *a
		return &v
	default:
		v := *b
		return &v
	}
}
