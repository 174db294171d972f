package rdfs

// Namespace is the base IRI prefix for RDF Schema vocabulary terms.
const Namespace = "http://www.w3.org/2000/01/rdf-schema#"

// Hierarchy predicates.
const (
	// SubClassOf links a class to one of its parent classes.
	SubClassOf = Namespace + "subClassOf"

	// SubPropertyOf links a property to one of its parent properties.
	// Domains and ranges are inherited along this predicate.
	SubPropertyOf = Namespace + "subPropertyOf"
)

// Property constraint predicates.
const (
	// Domain declares the class whose instances may carry a property.
	Domain = Namespace + "domain"

	// Range declares the class or datatype of a property's values.
	Range = Namespace + "range"
)

// Annotation predicates.
const (
	// Label is the human-readable name of a class or property.
	Label = Namespace + "label"

	// Comment is a human-readable description of a class or property.
	Comment = Namespace + "comment"
)
