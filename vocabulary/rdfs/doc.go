// Package rdfs provides IRI constants for the RDF Schema vocabulary.
//
// These predicates establish class and property hierarchy, domains, ranges,
// and human-readable labels.
package rdfs
