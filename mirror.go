package meshedit

// Axis selects one of the three axis-aligned mirror planes through the
// origin: AxisX mirrors across the YZ plane, and so on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// Mirror returns a single mesh containing the original geometry plus a
// duplicate reflected across the chosen axis-aligned plane through the
// origin. Mirrored vertices negate the chosen component of both position and
// normal; UVs are copied as they are. Mirrored triangles are appended with
// their indices offset by the original vertex count and with the 2nd and 3rd
// index swapped: a single-axis reflection flips chirality, so reversing the
// winding keeps the mirrored faces pointing outward.
//
// Nothing is welded at the mirror plane; vertices lying on the plane end up
// duplicated. That leaves a literal seam, which downstream UV tooling relies
// on to keep the two halves as separate shells.
func (m *Mesh) Mirror(axis Axis) *Mesh {
	if axis < AxisX || axis > AxisZ {
		return m.Clone()
	}

	out := m.Clone()
	offset := uint32(len(m.Positions))

	for i := range m.Positions {
		pos := m.Positions[i]
		pos[axis] = -pos[axis]
		normal := m.Normals[i]
		normal[axis] = -normal[axis]
		out.AddVertex(pos, normal, m.UVs[i])
	}

	for _, tri := range m.Triangles {
		out.Triangles = append(out.Triangles, [3]uint32{
			tri[0] + offset,
			tri[2] + offset,
			tri[1] + offset,
		})
	}

	out.RecomputeNormals()
	return out
}
