package mesh

// Plane builds a square ground plane of the given edge length at height y,
// facing +Y.
func Plane(size, y float32) *Mesh {
	h := size / 2
	up := [3]float32{0, 1, 0}

	vertices := []Vertex{
		{Position: [3]float32{-h, y, -h}, Normal: up},
		{Position: [3]float32{-h, y, h}, Normal: up},
		{Position: [3]float32{h, y, h}, Normal: up},
		{Position: [3]float32{h, y, -h}, Normal: up},
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  []uint32{0, 1, 2, 0, 2, 3},
		Bounds:   computeBounds(vertices),
	}
}

// Merge appends the geometry of other to m, rebasing its indices.
func (m *Mesh) Merge(other *Mesh) {
	base := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, idx := range other.Indices {
		m.Indices = append(m.Indices, base+idx)
	}
	m.Bounds = computeBounds(m.Vertices)
}
