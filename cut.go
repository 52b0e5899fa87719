package meshedit

// Cut splits the mesh into two fully independent meshes: remaining holds the
// unselected faces, cutOut the selected ones. Both outputs are compacted so
// their vertex indices count up from zero, and no vertex index is shared
// between the two sides; a vertex on the boundary of the selection is
// duplicated, one copy per side. Triangle order is preserved within each
// output.
//
// An empty (or entirely stale) selection returns a clone of the input and an
// empty mesh; selecting every face returns the opposite pair.
func (m *Mesh) Cut(sel FaceSet) (remaining, cutOut *Mesh) {
	valid := m.validFaceCount(sel)
	if valid == 0 {
		return m.Clone(), NewMesh()
	}
	if valid == len(m.Triangles) {
		return NewMesh(), m.Clone()
	}

	remaining = NewMesh()
	cutOut = NewMesh()

	// Each side renumbers vertices independently as it first sees them.
	remMap := make(map[uint32]uint32)
	cutMap := make(map[uint32]uint32)

	for face, tri := range m.Triangles {
		dest := remaining
		destMap := remMap
		if sel.Has(face) {
			dest = cutOut
			destMap = cutMap
		}

		var out [3]uint32
		for i, idx := range tri {
			mapped, ok := destMap[idx]
			if !ok {
				mapped = dest.AddVertex(m.Positions[idx], m.Normals[idx], m.UVs[idx])
				destMap[idx] = mapped
			}
			out[i] = mapped
		}
		dest.Triangles = append(dest.Triangles, out)
	}

	remaining.RecomputeNormals()
	cutOut.RecomputeNormals()
	return remaining, cutOut
}
