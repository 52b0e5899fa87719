package meshedit

// EdgeMesh is a derived, edge-oriented view of one mesh snapshot. Every face
// contributes three half-edges; half-edge f*3+k runs from corner k of face f
// to corner k+1. All handles are plain indices into flat arrays rather than
// pointers, matching the kernel's array-of-attributes style and avoiding the
// ownership cycles of a classic linked half-edge structure.
//
// An EdgeMesh is rebuilt from a mesh value on demand. It is not kept in sync
// when the mesh it was built from is edited; build a fresh one after any
// structural operator.
type EdgeMesh struct {
	edges []halfEdge
}

// halfEdge stores the origin vertex of the edge plus index handles to its
// neighborhood. twin is -1 on a boundary edge (no face on the other side).
type halfEdge struct {
	origin uint32
	face   int
	next   int
	twin   int
}

// NoEdge marks a missing half-edge handle, e.g. the twin of a boundary edge.
const NoEdge = -1

// NewEdgeMesh builds the half-edge view of a mesh snapshot. Twins are paired
// through a map of directed vertex pairs; when several half-edges share the
// same direction (non-manifold input) the first one registered wins and the
// rest stay unpaired. Non-manifold input is tolerated, not repaired.
func NewEdgeMesh(m *Mesh) *EdgeMesh {
	em := &EdgeMesh{
		edges: make([]halfEdge, 0, len(m.Triangles)*3),
	}

	byPair := make(map[[2]uint32]int, len(m.Triangles)*3)
	for face, tri := range m.Triangles {
		base := face * 3
		for k := 0; k < 3; k++ {
			from := tri[k]
			em.edges = append(em.edges, halfEdge{
				origin: from,
				face:   face,
				next:   base + (k+1)%3,
				twin:   NoEdge,
			})
			pair := [2]uint32{from, tri[(k+1)%3]}
			if _, ok := byPair[pair]; !ok {
				byPair[pair] = base + k
			}
		}
	}

	for i := range em.edges {
		from, to, _ := em.EdgeVertices(i)
		if twin, ok := byPair[[2]uint32{to, from}]; ok && twin != i {
			em.edges[i].twin = twin
		}
	}
	return em
}

// EdgeCount returns the number of half-edges, three per face.
func (em *EdgeMesh) EdgeCount() int {
	return len(em.edges)
}

// EdgeVertices resolves a half-edge handle to its ordered (from, to) vertex
// pair. ok is false for an out-of-range handle.
func (em *EdgeMesh) EdgeVertices(edge int) (from, to uint32, ok bool) {
	if edge < 0 || edge >= len(em.edges) {
		return 0, 0, false
	}
	he := em.edges[edge]
	return he.origin, em.edges[he.next].origin, true
}

// Twin returns the oppositely directed half-edge across the same vertex
// pair, or NoEdge when there is none (boundary, non-manifold leftovers, or a
// bad handle).
func (em *EdgeMesh) Twin(edge int) int {
	if edge < 0 || edge >= len(em.edges) {
		return NoEdge
	}
	return em.edges[edge].twin
}

// Face returns the face the half-edge belongs to, or -1 for a bad handle.
func (em *EdgeMesh) Face(edge int) int {
	if edge < 0 || edge >= len(em.edges) {
		return -1
	}
	return em.edges[edge].face
}

// Next returns the following half-edge around the same face, or NoEdge for a
// bad handle.
func (em *EdgeMesh) Next(edge int) int {
	if edge < 0 || edge >= len(em.edges) {
		return NoEdge
	}
	return em.edges[edge].next
}

// FaceEdge returns the first half-edge of the given face, or NoEdge for a
// bad face index.
func (em *EdgeMesh) FaceEdge(face int) int {
	if face < 0 || face*3 >= len(em.edges) {
		return NoEdge
	}
	return face * 3
}
