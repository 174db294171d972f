package ontology

import (
	"log/slog"
	"strconv"

	"github.com/c360studio/semreason/constraint"
	"github.com/c360studio/semreason/rdf"
	"github.com/c360studio/semreason/vocabulary/owl"
	rdfvoc "github.com/c360studio/semreason/vocabulary/rdf"
	"github.com/c360studio/semreason/vocabulary/rdfs"
)

// Builder assembles a Graph and Context from a parsed triple set.
type Builder struct {
	logger *slog.Logger

	ds    *rdf.Dataset
	graph *Graph
	ctx   *Context

	// propertyParents carries rdfs:subPropertyOf edges during the build so
	// domains and ranges can be inherited. It is not part of the output.
	propertyParents map[string][]string
}

// NewBuilder creates a Builder. A nil logger falls back to slog.Default().
func NewBuilder(logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{logger: logger}
}

// Build indexes the triples and constructs the class hierarchy graph and
// ontology context.
//
// The only error it returns is a *rdf.ParseError for a structurally broken
// triple. Ontology-level irregularities - malformed restrictions, malformed
// RDF lists, missing labels - are skipped locally and logged at Debug; the
// rest of the ontology stays valid.
func (b *Builder) Build(triples []rdf.Triple) (*Graph, *Context, error) {
	ds, err := rdf.NewDataset(triples)
	if err != nil {
		return nil, nil, err
	}

	b.ds = ds
	b.graph = newGraph()
	b.ctx = &Context{
		Nodes:        make(map[NodeID]*ClassNode),
		DisjointWith: make(map[NodeID]map[NodeID]struct{}),
	}
	b.propertyParents = make(map[string][]string)

	b.collectClasses()
	b.collectPropertyHierarchy()
	b.collectSubClassAxioms()
	b.collectClassExpressions()
	b.collectProperties()
	b.collectDisjointness()

	return b.graph, b.ctx, nil
}

// ensureClass interns a named class, creating its node on first sight.
func (b *Builder) ensureClass(iri NodeID) *ClassNode {
	if node, ok := b.ctx.Nodes[iri]; ok {
		return node
	}
	node := &ClassNode{ID: iri, Label: b.labelOf(iri)}
	b.ctx.Nodes[iri] = node
	b.graph.addNode(iri)
	return node
}

// labelOf returns the first rdfs:label literal of a subject, or empty.
func (b *Builder) labelOf(iri string) string {
	for _, obj := range b.ds.Objects(iri, rdfs.Label) {
		if obj.IsLiteral() {
			return obj.Value
		}
	}
	return ""
}

func (b *Builder) collectClasses() {
	for _, subject := range b.ds.SubjectsOfType(rdfvoc.Type, owl.Class) {
		b.ensureClass(subject)
	}
}

func (b *Builder) collectPropertyHierarchy() {
	for _, tr := range b.triplesWith(rdfs.SubPropertyOf) {
		if !tr.Subject.IsIRI() || !tr.Object.IsIRI() {
			continue
		}
		child := tr.Subject.Value
		b.propertyParents[child] = appendUnique(b.propertyParents[child], tr.Object.Value)
	}
}

func (b *Builder) collectSubClassAxioms() {
	for _, tr := range b.triplesWith(rdfs.SubClassOf) {
		if !tr.Subject.IsIRI() {
			continue
		}
		child := tr.Subject.Value
		switch {
		case tr.Object.IsIRI():
			b.ensureClass(child)
			b.ensureClass(tr.Object.Value)
			b.graph.addEdge(child, tr.Object.Value)
		case tr.Object.IsBlank():
			pc, ok := b.parseRestriction(tr.Object.Value)
			if !ok {
				b.logger.Debug("skipping non-restriction blank superclass",
					slog.String("class", child),
					slog.String("blank", tr.Object.Value))
				continue
			}
			node := b.ensureClass(child)
			node.Properties = append(node.Properties, pc)
		}
	}
}

func (b *Builder) collectClassExpressions() {
	for iri, node := range b.ctx.Nodes {
		for _, head := range b.ds.Objects(iri, owl.UnionOf) {
			if members, ok := b.parseList(head); ok {
				node.Expressions = append(node.Expressions, ClassExpression{Kind: ExprUnionOf, Classes: members})
			} else {
				b.logger.Debug("skipping malformed unionOf list", slog.String("class", iri))
			}
		}
		for _, head := range b.ds.Objects(iri, owl.IntersectionOf) {
			if members, ok := b.parseList(head); ok {
				node.Expressions = append(node.Expressions, ClassExpression{Kind: ExprIntersectionOf, Classes: members})
			} else {
				b.logger.Debug("skipping malformed intersectionOf list", slog.String("class", iri))
			}
		}
		for _, obj := range b.ds.Objects(iri, owl.ComplementOf) {
			if obj.IsIRI() {
				node.Expressions = append(node.Expressions, ClassExpression{Kind: ExprComplementOf, Classes: []NodeID{obj.Value}})
			}
		}
	}
}

func (b *Builder) collectProperties() {
	seen := make(map[string]bool)
	subjects := append(
		b.ds.SubjectsOfType(rdfvoc.Type, owl.ObjectProperty),
		b.ds.SubjectsOfType(rdfvoc.Type, owl.DatatypeProperty)...)

	for _, prop := range subjects {
		if seen[prop] {
			continue
		}
		seen[prop] = true
		b.resolveProperty(prop)
	}
}

// resolveProperty builds the domain constraint for a declared property and
// attaches it to every domain class, or to the universal list when no
// domain exists even after subPropertyOf inheritance.
func (b *Builder) resolveProperty(prop string) {
	domains := b.objectIRIs(prop, rdfs.Domain)
	ranges := b.objectIRIs(prop, rdfs.Range)

	// Union in domains and ranges inherited along the subPropertyOf
	// closure. The walk is visited-guarded: a property reachable through
	// itself contributes no further ancestors.
	visited := map[string]bool{prop: true}
	queue := append([]string(nil), b.propertyParents[prop]...)
	for len(queue) > 0 {
		parent := queue[0]
		queue = queue[1:]
		if visited[parent] {
			continue
		}
		visited[parent] = true
		domains = unionUnique(domains, b.objectIRIs(parent, rdfs.Domain))
		ranges = unionUnique(ranges, b.objectIRIs(parent, rdfs.Range))
		queue = append(queue, b.propertyParents[parent]...)
	}

	pc := constraint.PropertyConstraint{
		PropertyIRI:         prop,
		Label:               b.labelOf(prop),
		Ranges:              ranges,
		Source:              constraint.SourceDomain,
		IsSymmetric:         b.ds.HasType(prop, rdfvoc.Type, owl.SymmetricProperty),
		IsTransitive:        b.ds.HasType(prop, rdfvoc.Type, owl.TransitiveProperty),
		IsInverseFunctional: b.ds.HasType(prop, rdfvoc.Type, owl.InverseFunctionalProperty),
	}
	if b.ds.HasType(prop, rdfvoc.Type, owl.FunctionalProperty) {
		one := 1
		pc.MaxCardinality = &one
	}

	if len(domains) == 0 {
		b.ctx.UniversalProperties = append(b.ctx.UniversalProperties, pc)
		return
	}
	for _, domain := range domains {
		node := b.ensureClass(domain)
		node.Properties = append(node.Properties, pc.Clone())
	}
}

func (b *Builder) collectDisjointness() {
	for _, tr := range b.triplesWith(owl.DisjointWith) {
		if !tr.Subject.IsIRI() || !tr.Object.IsIRI() {
			continue
		}
		b.recordDisjoint(tr.Subject.Value, tr.Object.Value)
		b.recordDisjoint(tr.Object.Value, tr.Subject.Value)
	}
}

func (b *Builder) recordDisjoint(a, c NodeID) {
	if b.ctx.DisjointWith[a] == nil {
		b.ctx.DisjointWith[a] = make(map[NodeID]struct{})
	}
	b.ctx.DisjointWith[a][c] = struct{}{}
}

// parseRestriction interprets a blank node as an owl:Restriction.
//
// The node qualifies only if it is typed owl:Restriction and names an
// owl:onProperty; anything else yields (zero, false), never an error. All
// facets present on the node compose: minCardinality takes the maximum of
// contributions, maxCardinality the tightest, and invalid numeric literals
// leave the field at its prior value.
func (b *Builder) parseRestriction(blank string) (constraint.PropertyConstraint, bool) {
	if !b.ds.HasType(blank, rdfvoc.Type, owl.Restriction) {
		return constraint.PropertyConstraint{}, false
	}
	onProp, ok := b.ds.FirstObject(blank, owl.OnProperty)
	if !ok || !onProp.IsIRI() {
		return constraint.PropertyConstraint{}, false
	}

	pc := constraint.PropertyConstraint{
		PropertyIRI: onProp.Value,
		Label:       b.labelOf(onProp.Value),
		Source:      constraint.SourceRestriction,
	}

	raiseMin := func(n int) {
		if n > pc.MinCardinality {
			pc.MinCardinality = n
		}
	}
	tightenMax := func(n int) {
		if pc.MaxCardinality == nil || n < *pc.MaxCardinality {
			v := n
			pc.MaxCardinality = &v
		}
	}

	for _, obj := range b.ds.Objects(blank, owl.SomeValuesFrom) {
		if obj.IsIRI() {
			pc.Ranges = appendUnique(pc.Ranges, obj.Value)
		}
		raiseMin(1)
	}
	for _, obj := range b.ds.Objects(blank, owl.AllValuesFrom) {
		if obj.IsIRI() {
			pc.Ranges = appendUnique(pc.Ranges, obj.Value)
		}
	}
	for _, obj := range b.ds.Objects(blank, owl.MinCardinality) {
		if n, ok := cardinalityValue(obj); ok {
			raiseMin(n)
		}
	}
	for _, obj := range b.ds.Objects(blank, owl.MaxCardinality) {
		if n, ok := cardinalityValue(obj); ok {
			tightenMax(n)
		}
	}
	for _, obj := range b.ds.Objects(blank, owl.Cardinality) {
		if n, ok := cardinalityValue(obj); ok {
			raiseMin(n)
			tightenMax(n)
		}
	}
	for _, obj := range b.ds.Objects(blank, owl.HasValue) {
		pc.AllowedValues = appendUnique(pc.AllowedValues, obj.Value)
		raiseMin(1)
		tightenMax(1)
	}

	return pc, true
}

// parseList walks an rdf:first/rdf:rest list from head until rdf:nil,
// collecting IRI members. A node missing either predicate, or a cyclic
// list, is malformed and yields (nil, false).
func (b *Builder) parseList(head rdf.Term) ([]NodeID, bool) {
	var members []NodeID
	onPath := make(map[string]bool)

	current := head
	for {
		if current.IsIRI() && current.Value == rdfvoc.Nil {
			return members, true
		}
		if current.IsLiteral() || onPath[current.Value] {
			return nil, false
		}
		onPath[current.Value] = true

		first, okFirst := b.ds.FirstObject(current.Value, rdfvoc.First)
		rest, okRest := b.ds.FirstObject(current.Value, rdfvoc.Rest)
		if !okFirst || !okRest {
			return nil, false
		}
		if first.IsIRI() {
			members = append(members, first.Value)
		}
		current = rest
	}
}

// triplesWith returns every triple carrying the given predicate, in input
// order.
func (b *Builder) triplesWith(predicate string) []rdf.Triple {
	return b.ds.PredicateTriples(predicate)
}

// objectIRIs returns the IRI objects of (subject, predicate), deduplicated
// in input order.
func (b *Builder) objectIRIs(subject, predicate string) []string {
	var out []string
	for _, obj := range b.ds.Objects(subject, predicate) {
		if obj.IsIRI() {
			out = appendUnique(out, obj.Value)
		}
	}
	return out
}

// cardinalityValue extracts a non-negative integer from a cardinality
// literal. Non-literals and non-numeric values are rejected.
func cardinalityValue(obj rdf.Term) (int, bool) {
	if !obj.IsLiteral() {
		return 0, false
	}
	n, err := strconv.Atoi(obj.Value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func appendUnique(set []string, v string) []string {
	for _, s := range set {
		if s == v {
			return set
		}
	}
	return append(set, v)
}

func unionUnique(a, b []string) []string {
	out := a
	for _, v := range b {
		out = appendUnique(out, v)
	}
	return out
}
