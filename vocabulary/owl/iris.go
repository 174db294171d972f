package owl

// Namespace is the base IRI prefix for OWL vocabulary terms.
const Namespace = "http://www.w3.org/2002/07/owl#"

// Class IRIs identify the kinds of ontology entities.
const (
	// Class marks a subject as a named class.
	Class = Namespace + "Class"

	// Restriction marks a blank node as an anonymous property restriction.
	Restriction = Namespace + "Restriction"

	// Thing is the universal superclass.
	Thing = Namespace + "Thing"
)

// Property type IRIs classify predicates declared in the ontology.
const (
	// ObjectProperty relates individuals to individuals.
	ObjectProperty = Namespace + "ObjectProperty"

	// DatatypeProperty relates individuals to literal values.
	DatatypeProperty = Namespace + "DatatypeProperty"

	// FunctionalProperty constrains a property to at most one value,
	// forcing max cardinality 1.
	FunctionalProperty = Namespace + "FunctionalProperty"

	// SymmetricProperty holds in both directions.
	SymmetricProperty = Namespace + "SymmetricProperty"

	// TransitiveProperty chains across intermediate individuals.
	TransitiveProperty = Namespace + "TransitiveProperty"

	// InverseFunctionalProperty identifies its subject from its value.
	InverseFunctionalProperty = Namespace + "InverseFunctionalProperty"
)

// Restriction facet IRIs appear on owl:Restriction blank nodes.
const (
	// OnProperty names the property a restriction constrains. A blank node
	// without it is not a valid restriction.
	OnProperty = Namespace + "onProperty"

	// SomeValuesFrom requires at least one value from the given class,
	// implying min cardinality 1.
	SomeValuesFrom = Namespace + "someValuesFrom"

	// AllValuesFrom requires every value to come from the given class.
	AllValuesFrom = Namespace + "allValuesFrom"

	// MinCardinality sets a lower bound on value count.
	MinCardinality = Namespace + "minCardinality"

	// MaxCardinality sets an upper bound on value count.
	MaxCardinality = Namespace + "maxCardinality"

	// Cardinality sets an exact value count (both bounds).
	Cardinality = Namespace + "cardinality"

	// HasValue pins the property to a specific value, implying exact
	// cardinality 1.
	HasValue = Namespace + "hasValue"
)

// Class axiom IRIs relate named classes to each other.
const (
	// DisjointWith declares that two classes share no instances. Recorded
	// symmetrically regardless of assertion direction.
	DisjointWith = Namespace + "disjointWith"

	// UnionOf builds a class from the union of a class list.
	UnionOf = Namespace + "unionOf"

	// IntersectionOf builds a class from the intersection of a class list.
	IntersectionOf = Namespace + "intersectionOf"

	// ComplementOf builds a class from the complement of a single class.
	ComplementOf = Namespace + "complementOf"
)
