package rdf

// Namespace is the base IRI prefix for RDF core vocabulary terms.
const Namespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"

// Typing predicate.
const (
	// Type asserts that a subject is an instance of a class.
	Type = Namespace + "type"
)

// Collection terms for RDF linked lists.
const (
	// First is the head element of a list node.
	First = Namespace + "first"

	// Rest is the tail of a list node (another list node, or Nil).
	Rest = Namespace + "rest"

	// Nil terminates a well-formed RDF list.
	Nil = Namespace + "nil"
)
