// Package rdf provides the in-memory triple model handed to the ontology
// builder by an upstream parser.
//
// The package deliberately stops at the value model: tokenizing Turtle/OWL
// documents is an upstream concern. A Dataset wraps an already-parsed triple
// slice with the subject/predicate indexes the builder queries.
package rdf

import "fmt"

// TermKind discriminates the three kinds of RDF terms.
type TermKind int

const (
	// TermIRI is a named resource.
	TermIRI TermKind = iota

	// TermBlank is an anonymous node, scoped to a single document.
	TermBlank

	// TermLiteral is a data value, optionally typed or language-tagged.
	TermLiteral
)

// String returns the string representation of the TermKind.
func (k TermKind) String() string {
	switch k {
	case TermIRI:
		return "iri"
	case TermBlank:
		return "blank"
	case TermLiteral:
		return "literal"
	default:
		return fmt.Sprintf("term_kind(%d)", k)
	}
}

// Term is one position of an RDF triple.
//
// Value holds the IRI, the blank node label, or the literal lexical form
// depending on Kind. Datatype and Language are only meaningful for literals.
type Term struct {
	Kind     TermKind
	Value    string
	Datatype string
	Language string
}

// NewIRI returns an IRI term.
func NewIRI(iri string) Term {
	return Term{Kind: TermIRI, Value: iri}
}

// NewBlank returns a blank node term with the given label.
func NewBlank(label string) Term {
	return Term{Kind: TermBlank, Value: label}
}

// NewLiteral returns an untyped literal term.
func NewLiteral(value string) Term {
	return Term{Kind: TermLiteral, Value: value}
}

// NewTypedLiteral returns a literal term with a datatype IRI.
func NewTypedLiteral(value, datatype string) Term {
	return Term{Kind: TermLiteral, Value: value, Datatype: datatype}
}

// IsIRI reports whether the term is a named resource.
func (t Term) IsIRI() bool { return t.Kind == TermIRI }

// IsBlank reports whether the term is an anonymous node.
func (t Term) IsBlank() bool { return t.Kind == TermBlank }

// IsLiteral reports whether the term is a data value.
func (t Term) IsLiteral() bool { return t.Kind == TermLiteral }

// String renders the term in N-Triples-like form for logs and errors.
func (t Term) String() string {
	switch t.Kind {
	case TermIRI:
		return "<" + t.Value + ">"
	case TermBlank:
		return "_:" + t.Value
	case TermLiteral:
		if t.Datatype != "" {
			return fmt.Sprintf("%q^^<%s>", t.Value, t.Datatype)
		}
		if t.Language != "" {
			return fmt.Sprintf("%q@%s", t.Value, t.Language)
		}
		return fmt.Sprintf("%q", t.Value)
	default:
		return t.Value
	}
}

// Triple is a single parsed RDF statement.
type Triple struct {
	Subject   Term
	Predicate Term
	Object    Term
}

// String renders the triple in N-Triples-like form.
func (tr Triple) String() string {
	return fmt.Sprintf("%s %s %s .", tr.Subject, tr.Predicate, tr.Object)
}
