package rdf

import "fmt"

// ParseError reports a structurally invalid triple. Unlike ontology-level
// irregularities, which the builder skips locally, a ParseError fails the
// whole build: it means the upstream parse itself cannot be trusted.
type ParseError struct {
	Triple Triple
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid triple %s: %s", e.Triple, e.Reason)
}

// key indexes triples by subject and predicate. Blank node labels and IRIs
// share the namespace here; upstream parsers keep them distinct by
// construction.
type key struct {
	subject   string
	predicate string
}

// Dataset is an immutable index over a parsed triple slice.
//
// Built once via NewDataset and safe for concurrent readers thereafter.
type Dataset struct {
	triples     []Triple
	bySubjPred  map[key][]Term
	bySubject   map[string][]Triple
	byPredicate map[string][]Triple
}

// NewDataset indexes the given triples. It returns a *ParseError if any
// triple is structurally malformed: a literal or empty subject, or a
// predicate that is not an IRI.
func NewDataset(triples []Triple) (*Dataset, error) {
	ds := &Dataset{
		triples:     triples,
		bySubjPred:  make(map[key][]Term, len(triples)),
		bySubject:   make(map[string][]Triple),
		byPredicate: make(map[string][]Triple),
	}
	for _, tr := range triples {
		if tr.Subject.IsLiteral() || tr.Subject.Value == "" {
			return nil, &ParseError{Triple: tr, Reason: "subject must be an IRI or blank node"}
		}
		if !tr.Predicate.IsIRI() || tr.Predicate.Value == "" {
			return nil, &ParseError{Triple: tr, Reason: "predicate must be an IRI"}
		}
		k := key{subject: tr.Subject.Value, predicate: tr.Predicate.Value}
		ds.bySubjPred[k] = append(ds.bySubjPred[k], tr.Object)
		ds.bySubject[tr.Subject.Value] = append(ds.bySubject[tr.Subject.Value], tr)
		ds.byPredicate[tr.Predicate.Value] = append(ds.byPredicate[tr.Predicate.Value], tr)
	}
	return ds, nil
}

// Len returns the number of indexed triples.
func (ds *Dataset) Len() int { return len(ds.triples) }

// Objects returns every object of (subject, predicate) statements, in
// insertion order.
func (ds *Dataset) Objects(subject, predicate string) []Term {
	return ds.bySubjPred[key{subject: subject, predicate: predicate}]
}

// FirstObject returns the first object of (subject, predicate), if any.
func (ds *Dataset) FirstObject(subject, predicate string) (Term, bool) {
	objects := ds.Objects(subject, predicate)
	if len(objects) == 0 {
		return Term{}, false
	}
	return objects[0], true
}

// SubjectTriples returns every triple with the given subject.
func (ds *Dataset) SubjectTriples(subject string) []Triple {
	return ds.bySubject[subject]
}

// PredicateTriples returns every triple carrying the given predicate, in
// insertion order.
func (ds *Dataset) PredicateTriples(predicate string) []Triple {
	return ds.byPredicate[predicate]
}

// Subjects returns the subjects of every (predicate, object) statement, in
// insertion order with duplicates preserved.
func (ds *Dataset) Subjects(predicate string, object Term) []string {
	var subjects []string
	for _, tr := range ds.byPredicate[predicate] {
		if tr.Object == object {
			subjects = append(subjects, tr.Subject.Value)
		}
	}
	return subjects
}

// SubjectsOfType returns the subjects asserted to be instances of classIRI
// via rdf:type, in insertion order.
func (ds *Dataset) SubjectsOfType(typePredicate, classIRI string) []string {
	return ds.Subjects(typePredicate, NewIRI(classIRI))
}

// HasType reports whether (subject, rdf:type, classIRI) is asserted.
func (ds *Dataset) HasType(subject, typePredicate, classIRI string) bool {
	for _, obj := range ds.Objects(subject, typePredicate) {
		if obj.IsIRI() && obj.Value == classIRI {
			return true
		}
	}
	return false
}
