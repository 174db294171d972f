package xsd

// Namespace is the base IRI prefix for XML Schema datatype terms.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs commonly used as property ranges.
const (
	// String is the plain string datatype.
	String = Namespace + "string"

	// Boolean is the true/false datatype.
	Boolean = Namespace + "boolean"

	// Integer is the arbitrary-precision integer datatype.
	Integer = Namespace + "integer"

	// NonNegativeInteger is the integer datatype restricted to >= 0,
	// the declared type of OWL cardinality literals.
	NonNegativeInteger = Namespace + "nonNegativeInteger"

	// Decimal is the arbitrary-precision decimal datatype.
	Decimal = Namespace + "decimal"

	// Double is the 64-bit floating point datatype.
	Double = Namespace + "double"

	// DateTime is the timestamp datatype.
	DateTime = Namespace + "dateTime"

	// AnyURI is the IRI-valued datatype.
	AnyURI = Namespace + "anyURI"
)
