// Package ontology builds the class-hierarchy graph and property context
// from parsed RDF triples.
//
// The builder recognizes the OWL/RDFS subset in vocabulary/owl and
// vocabulary/rdfs: named classes, object and datatype properties with
// domain/range inheritance along rdfs:subPropertyOf, anonymous
// owl:Restriction nodes, unionOf/intersectionOf/complementOf class
// expressions, and owl:disjointWith axioms.
//
// A build is lenient by design: malformed restrictions and malformed RDF
// lists are skipped locally and the rest of the ontology stays usable. Only
// a structurally broken triple set fails the build outright. The resulting
// Graph and Context are immutable and safe to share across goroutines.
package ontology
