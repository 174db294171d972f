// Package owl provides IRI constants for the OWL vocabulary subset the
// ontology builder understands.
//
// This is deliberately not full OWL-DL: it covers class and property typing,
// property characteristics, anonymous restrictions, class set expressions,
// and disjointness. Terms outside this subset pass through the builder
// unrecognized.
package owl
