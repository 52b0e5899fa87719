package meshedit

// FaceSet is a transient set of face indices, valid only against the mesh
// snapshot it was collected from. Operators skip entries that are out of
// range for the mesh they are applied to rather than failing; an interactive
// session must tolerate a stale selection.
type FaceSet map[int]struct{}

func NewFaceSet(faces ...int) FaceSet {
	s := make(FaceSet, len(faces))
	for _, f := range faces {
		s[f] = struct{}{}
	}
	return s
}

func (s FaceSet) Has(face int) bool {
	_, ok := s[face]
	return ok
}

func (s FaceSet) Add(face int) {
	s[face] = struct{}{}
}

func (s FaceSet) Remove(face int) {
	delete(s, face)
}

// VertexSet is a transient set of vertex indices, with the same snapshot
// caveat as FaceSet.
type VertexSet map[uint32]struct{}

func NewVertexSet(verts ...uint32) VertexSet {
	s := make(VertexSet, len(verts))
	for _, v := range verts {
		s[v] = struct{}{}
	}
	return s
}

func (s VertexSet) Has(v uint32) bool {
	_, ok := s[v]
	return ok
}

// validFaceCount reports how many entries of sel are real faces of m.
func (m *Mesh) validFaceCount(sel FaceSet) int {
	n := 0
	for f := range sel {
		if f >= 0 && f < len(m.Triangles) {
			n++
		}
	}
	return n
}

// SelectedVertices returns the union of vertex indices referenced by any face
// in the selection. Out-of-range faces are skipped.
func (m *Mesh) SelectedVertices(sel FaceSet) VertexSet {
	verts := make(VertexSet)
	for f := range sel {
		if f < 0 || f >= len(m.Triangles) {
			continue
		}
		for _, idx := range m.Triangles[f] {
			verts[idx] = struct{}{}
		}
	}
	return verts
}

// BoundaryVertices returns the vertices referenced by at least one selected
// and at least one unselected face. These are the vertices an operator has to
// duplicate instead of moving in place, because an unselected face still
// needs the original where it was.
func (m *Mesh) BoundaryVertices(sel FaceSet) VertexSet {
	selected := m.SelectedVertices(sel)
	boundary := make(VertexSet)
	for f := range m.Triangles {
		if sel.Has(f) {
			continue
		}
		for _, idx := range m.Triangles[f] {
			if selected.Has(idx) {
				boundary[idx] = struct{}{}
			}
		}
	}
	return boundary
}
