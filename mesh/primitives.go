package mesh

import "github.com/go-gl/mathgl/mgl64"

// Cube returns a unit cube centered at the origin: 8 vertices, 12 edges and
// 6 quad faces wound so every normal points outward.
func Cube() *Mesh {
	positions := []mgl64.Vec3{
		{-0.5, -0.5, -0.5},
		{0.5, -0.5, -0.5},
		{0.5, 0.5, -0.5},
		{-0.5, 0.5, -0.5},
		{-0.5, -0.5, 0.5},
		{0.5, -0.5, 0.5},
		{0.5, 0.5, 0.5},
		{-0.5, 0.5, 0.5},
	}

	faces := [][]int{
		{0, 3, 2, 1}, // -Z
		{4, 5, 6, 7}, // +Z
		{0, 1, 5, 4}, // -Y
		{2, 3, 7, 6}, // +Y
		{0, 4, 7, 3}, // -X
		{1, 2, 6, 5}, // +X
	}

	return mustBuild(positions, faces)
}

// Triangle returns a single free-floating triangle in the XY plane: 3
// vertices, 3 edges, 1 face with a +Z normal. Every edge joins exactly one
// face.
func Triangle() *Mesh {
	positions := []mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	}

	return mustBuild(positions, [][]int{{0, 1, 2}})
}

// Grid returns an nx by ny quad grid in the XY plane with +Z normals.
// Interior edges join two faces, border edges one.
func Grid(nx, ny int) *Mesh {
	cols := nx + 1

	var positions []mgl64.Vec3
	for y := 0; y <= ny; y++ {
		for x := 0; x <= nx; x++ {
			positions = append(positions, mgl64.Vec3{float64(x), float64(y), 0})
		}
	}

	var faces [][]int
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			v := y*cols + x
			faces = append(faces, []int{v, v + 1, v + 1 + cols, v + cols})
		}
	}

	return mustBuild(positions, faces)
}

// Primitives are hard-coded and always valid
func mustBuild(positions []mgl64.Vec3, faces [][]int) *Mesh {
	m, err := Build(positions, faces)
	if err != nil {
		panic(err)
	}
	return m
}
