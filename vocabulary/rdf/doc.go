// Package rdf provides IRI constants for the RDF core vocabulary.
//
// Only the terms the ontology builder consumes are defined: type assertions
// and the linked-list predicates used by owl:unionOf / owl:intersectionOf
// arguments.
package rdf
