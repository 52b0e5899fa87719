package meshedit

// SeamEdge is a canonical undirected edge between two vertex indices, always
// stored with A <= B so both orderings compare equal.
type SeamEdge struct {
	A, B uint32
}

// SeamKey builds the canonical key for an edge regardless of direction.
func SeamKey(a, b uint32) SeamEdge {
	if a > b {
		a, b = b, a
	}
	return SeamEdge{A: a, B: b}
}

// SeamSet is a flat set of canonical undirected edges marked as UV seams.
// It references raw vertex indices and persists across edits, but it is not
// remapped when an operator changes the index space by duplicating or
// compacting vertices; a seam touching an edited region simply goes stale.
// That matches how the rest of the kernel treats selections and keeps the
// operators free of seam bookkeeping.
type SeamSet map[SeamEdge]struct{}

func NewSeamSet() SeamSet {
	return make(SeamSet)
}

// Toggle flips membership of the undirected edge (a,b) and reports whether
// the edge was newly added, which is what an editor needs for feedback and
// undo.
func (s SeamSet) Toggle(a, b uint32) bool {
	key := SeamKey(a, b)
	if _, ok := s[key]; ok {
		delete(s, key)
		return false
	}
	s[key] = struct{}{}
	return true
}

// ToggleHalfEdge resolves a half-edge handle to its vertex pair through the
// edge-adjacency view and toggles that edge. ok is false and nothing changes
// when the handle does not resolve.
func (s SeamSet) ToggleHalfEdge(em *EdgeMesh, edge int) (added, ok bool) {
	from, to, ok := em.EdgeVertices(edge)
	if !ok {
		return false, false
	}
	return s.Toggle(from, to), true
}

// Contains reports whether the undirected edge (a,b) is marked as a seam.
func (s SeamSet) Contains(a, b uint32) bool {
	_, ok := s[SeamKey(a, b)]
	return ok
}

func (s SeamSet) Len() int {
	return len(s)
}
