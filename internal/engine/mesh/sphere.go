package mesh

import "github.com/chewxy/math32"

// Minimum tessellation accepted by Sphere.
const (
	MinStacks = 2
	MinSlices = 3
)

// Sphere builds a UV sphere of the given radius centred on the origin.
// Stacks run pole to pole, slices around the Y axis. Triangles wind
// counter-clockwise seen from outside.
func Sphere(radius float32, stacks, slices int) *Mesh {
	stacks = max(stacks, MinStacks)
	slices = max(slices, MinSlices)

	vertices := make([]Vertex, 0, (stacks+1)*(slices+1))
	for i := 0; i <= stacks; i++ {
		phi := math32.Pi * float32(i) / float32(stacks)
		sinPhi, cosPhi := math32.Sincos(phi)

		for j := 0; j <= slices; j++ {
			theta := 2 * math32.Pi * float32(j) / float32(slices)
			sinTheta, cosTheta := math32.Sincos(theta)

			n := [3]float32{sinPhi * sinTheta, cosPhi, sinPhi * cosTheta}
			vertices = append(vertices, Vertex{
				Position: [3]float32{n[0] * radius, n[1] * radius, n[2] * radius},
				Normal:   n,
			})
		}
	}

	indices := make([]uint32, 0, stacks*slices*6)
	row := uint32(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint32(i)*row + uint32(j)
			b := a + row
			// Skip the degenerate triangle at each pole.
			if i != 0 {
				indices = append(indices, a, b, a+1)
			}
			if i != stacks-1 {
				indices = append(indices, a+1, b, b+1)
			}
		}
	}

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   computeBounds(vertices),
	}
}
