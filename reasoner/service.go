package reasoner

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/c360studio/semreason/constraint"
	"github.com/c360studio/semreason/ontology"
)

// Options tunes the service's resource governance. It does not affect query
// results.
type Options struct {
	// ParentFanout caps how many classes Warm precomputes concurrently.
	ParentFanout int
}

// DefaultOptions returns the standard fan-out cap.
func DefaultOptions() Options {
	return Options{ParentFanout: 10}
}

// Service answers inheritance and disjointness queries over an immutable
// graph and context.
//
// The memoization caches are the only mutable state. Concurrent first-time
// queries for the same IRI are collapsed through a single-flight group;
// results are pure functions of the immutable graph, so the caches are never
// invalidated.
type Service struct {
	graph  *ontology.Graph
	ctx    *ontology.Context
	opts   Options
	logger *slog.Logger

	mu        sync.RWMutex
	ancestors map[ontology.NodeID][]ontology.NodeID
	effective map[ontology.NodeID][]constraint.PropertyConstraint
	flight    singleflight.Group
}

// New creates a Service over a built ontology. A nil logger falls back to
// slog.Default(); a zero ParentFanout falls back to the default.
func New(graph *ontology.Graph, ctx *ontology.Context, opts Options, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.ParentFanout <= 0 {
		opts.ParentFanout = DefaultOptions().ParentFanout
	}
	return &Service{
		graph:     graph,
		ctx:       ctx,
		opts:      opts,
		logger:    logger,
		ancestors: make(map[ontology.NodeID][]ontology.NodeID),
		effective: make(map[ontology.NodeID][]constraint.PropertyConstraint),
	}
}

// Parents returns the direct parent classes of iri, in declaration order.
func (s *Service) Parents(iri ontology.NodeID) ([]ontology.NodeID, error) {
	parents, ok := s.graph.ParentsOf(iri)
	if !ok {
		return nil, &InheritanceError{IRI: iri}
	}
	return parents, nil
}

// Children returns every class with a direct subClassOf edge to iri. This
// is a reverse lookup over the whole arena.
func (s *Service) Children(iri ontology.NodeID) ([]ontology.NodeID, error) {
	children, ok := s.graph.ChildrenOf(iri)
	if !ok {
		return nil, &InheritanceError{IRI: iri}
	}
	return children, nil
}

// Ancestors returns every class reachable from iri along parent edges,
// deduplicated, nearer ancestors first. The walk uses an explicit stack and
// fails with *CircularInheritanceError when the hierarchy closes on itself.
// Results are memoized for the life of the service.
func (s *Service) Ancestors(iri ontology.NodeID) ([]ontology.NodeID, error) {
	if _, ok := s.graph.IndexOf(iri); !ok {
		return nil, &InheritanceError{IRI: iri}
	}

	s.mu.RLock()
	cached, ok := s.ancestors[iri]
	s.mu.RUnlock()
	if ok {
		return append([]ontology.NodeID(nil), cached...), nil
	}

	result, err, _ := s.flight.Do("ancestors\x00"+iri, func() (any, error) {
		ancestors, err := s.walkAncestors(iri)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.ancestors[iri] = ancestors
		s.mu.Unlock()
		return ancestors, nil
	})
	if err != nil {
		return nil, err
	}
	return append([]ontology.NodeID(nil), result.([]ontology.NodeID)...), nil
}

// frame is one level of the explicit DFS stack: the node being expanded and
// the offset of its next unvisited parent.
type frame struct {
	idx  int
	next int
}

func (s *Service) walkAncestors(iri ontology.NodeID) ([]ontology.NodeID, error) {
	start, _ := s.graph.IndexOf(iri)

	stack := []frame{{idx: start}}
	onPath := map[int]bool{start: true}
	visited := map[int]bool{start: true}
	var order []int

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		parents := s.graph.ParentIndexes(top.idx)
		if top.next >= len(parents) {
			onPath[top.idx] = false
			stack = stack[:len(stack)-1]
			continue
		}
		parent := parents[top.next]
		top.next++

		if onPath[parent] {
			return nil, s.cycleError(stack, parent)
		}
		if visited[parent] {
			continue
		}
		visited[parent] = true
		order = append(order, parent)
		onPath[parent] = true
		stack = append(stack, frame{idx: parent})
	}

	// Exact shortest-path depths over the now known-acyclic reachable set.
	// DFS discovery depth can be stale for nodes first reached on a longer
	// path, so a BFS pass computes the real distances: FIFO order visits
	// nodes in nondecreasing depth, making the first assignment minimal.
	depth := map[int]int{start: 0}
	queue := []int{start}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, p := range s.graph.ParentIndexes(n) {
			if _, seen := depth[p]; seen {
				continue
			}
			depth[p] = depth[n] + 1
			queue = append(queue, p)
		}
	}

	// Nearer ancestors first; discovery order breaks ties.
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i]] < depth[order[j]]
	})

	ancestors := make([]ontology.NodeID, 0, len(order))
	for _, idx := range order {
		ancestors = append(ancestors, s.graph.NodeAt(idx))
	}
	return ancestors, nil
}

// cycleError reconstructs the offending path from the DFS stack: the
// segment from the repeated node to the top, closed back on itself.
func (s *Service) cycleError(stack []frame, repeated int) error {
	var cycle []ontology.NodeID
	recording := false
	for _, f := range stack {
		if f.idx == repeated {
			recording = true
		}
		if recording {
			cycle = append(cycle, s.graph.NodeAt(f.idx))
		}
	}
	cycle = append(cycle, s.graph.NodeAt(repeated))
	return &CircularInheritanceError{Node: s.graph.NodeAt(repeated), Cycle: cycle}
}

// EffectiveProperties returns the property constraints that apply to iri:
// its own plus everything inherited from its ancestors, merged per property
// IRI through the lattice meet.
//
// A failing meet can only come from an internal defect producing mismatched
// property IRIs; it is logged and the nearer constraint wins, so the merge
// itself never fails outward. Ancestor-walk errors (unknown IRI, cycles) do
// propagate.
func (s *Service) EffectiveProperties(iri ontology.NodeID) ([]constraint.PropertyConstraint, error) {
	if _, ok := s.graph.IndexOf(iri); !ok {
		return nil, &InheritanceError{IRI: iri}
	}

	s.mu.RLock()
	cached, ok := s.effective[iri]
	s.mu.RUnlock()
	if ok {
		return cloneConstraints(cached), nil
	}

	result, err, _ := s.flight.Do("effective\x00"+iri, func() (any, error) {
		effective, err := s.mergeProperties(iri)
		if err != nil {
			return nil, err
		}
		s.mu.Lock()
		s.effective[iri] = effective
		s.mu.Unlock()
		return effective, nil
	})
	if err != nil {
		return nil, err
	}
	return cloneConstraints(result.([]constraint.PropertyConstraint)), nil
}

func (s *Service) mergeProperties(iri ontology.NodeID) ([]constraint.PropertyConstraint, error) {
	ancestors, err := s.Ancestors(iri)
	if err != nil {
		return nil, err
	}

	merged := make(map[string]constraint.PropertyConstraint)
	var order []string

	// fold merges one contribution in. A constraint seen once passes
	// through untouched; collisions on the same property IRI go through
	// Meet, with the already-folded (nearer) side winning on error.
	fold := func(pc constraint.PropertyConstraint) {
		existing, ok := merged[pc.PropertyIRI]
		if !ok {
			merged[pc.PropertyIRI] = pc
			order = append(order, pc.PropertyIRI)
			return
		}
		met, err := existing.Meet(pc)
		if err != nil {
			s.logger.Warn("effective-property meet failed, keeping nearer constraint",
				slog.String("class", iri),
				slog.String("property", existing.PropertyIRI),
				slog.String("error", err.Error()))
			return
		}
		merged[pc.PropertyIRI] = met
	}

	if node := s.ctx.Nodes[iri]; node != nil {
		for _, pc := range node.Properties {
			fold(pc)
		}
	}
	for _, ancestor := range ancestors {
		node := s.ctx.Nodes[ancestor]
		if node == nil {
			continue
		}
		for _, pc := range node.Properties {
			fold(pc)
		}
	}

	out := make([]constraint.PropertyConstraint, 0, len(order))
	for _, propIRI := range order {
		out = append(out, merged[propIRI])
	}
	return out, nil
}

// IsSubclass reports whether child is parent itself or has parent among its
// ancestors.
func (s *Service) IsSubclass(child, parent ontology.NodeID) (bool, error) {
	if child == parent {
		return true, nil
	}
	ancestors, err := s.Ancestors(child)
	if err != nil {
		return false, err
	}
	for _, ancestor := range ancestors {
		if ancestor == parent {
			return true, nil
		}
	}
	return false, nil
}

// AreDisjoint answers the three-valued disjointness query for c1 and c2.
//
// Evidence is checked in order: a direct owl:disjointWith axiom, a
// disjointness axiom anywhere between the two ancestor closures, then a
// subclass relation between the two queried classes (Overlapping). Anything
// else is Unknown. Ancestor-walk failures are treated as empty ancestor
// sets, keeping this query total over any graph.
//
// The Overlapping test deliberately checks only the direct subclass
// relation between c1 and c2, not a shared descendant elsewhere in the
// graph.
func (s *Service) AreDisjoint(c1, c2 ontology.NodeID) Disjointness {
	if s.ctx.AreDisjoint(c1, c2) {
		return Disjoint
	}

	closure1 := s.selfAndAncestors(c1)
	closure2 := s.selfAndAncestors(c2)

	for _, a := range closure1 {
		for _, b := range closure2 {
			if s.ctx.AreDisjoint(a, b) {
				return Disjoint
			}
		}
	}

	for _, a := range closure1 {
		if a == c2 {
			return Overlapping
		}
	}
	for _, b := range closure2 {
		if b == c1 {
			return Overlapping
		}
	}
	return Unknown
}

// selfAndAncestors returns {iri} plus its ancestors, swallowing walk errors
// into the bare singleton set.
func (s *Service) selfAndAncestors(iri ontology.NodeID) []ontology.NodeID {
	closure := []ontology.NodeID{iri}
	ancestors, err := s.Ancestors(iri)
	if err != nil {
		return closure
	}
	return append(closure, ancestors...)
}

// Warm precomputes the ancestor and effective-property caches for every
// class, at most Options.ParentFanout in flight. It returns the first
// hierarchy error encountered; ctx cancels the remaining work.
func (s *Service) Warm(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.ParentFanout)

	for i := 0; i < s.graph.Len(); i++ {
		iri := s.graph.NodeAt(i)
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if _, err := s.EffectiveProperties(iri); err != nil {
				return err
			}
			return nil
		})
	}
	return g.Wait()
}

func cloneConstraints(in []constraint.PropertyConstraint) []constraint.PropertyConstraint {
	out := make([]constraint.PropertyConstraint, 0, len(in))
	for _, pc := range in {
		out = append(out, pc.Clone())
	}
	return out
}
