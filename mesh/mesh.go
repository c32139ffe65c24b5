package mesh

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// Vertex is a mesh point with its derived normal (normalized average of the
// adjacent face normals; zero for vertices that belong to no face).
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Edge joins two vertices. Verts keeps the orientation the edge was first
// seen with; Faces indexes every face the edge belongs to.
type Edge struct {
	Verts [2]int
	Faces []int
}

// Face is a polygon loop. Verts and Edges run in loop order: Edges[i] joins
// Verts[i] and Verts[(i+1)%n]. The centroid is the plain vertex mean, not
// area-weighted.
type Face struct {
	Verts    []int
	Edges    []int
	Normal   mgl64.Vec3
	Centroid mgl64.Vec3
}

// Mesh is an immutable snapshot of vertex, edge and face data. Elements
// reference each other by index into the flat slices.
type Mesh struct {
	Verts []Vertex
	Edges []Edge
	Faces []Face
}

// Build derives a full mesh snapshot from vertex positions and face loops:
// the unique edge set, edge/face adjacency, face normals and centroids, and
// vertex normals.
func Build(positions []mgl64.Vec3, faces [][]int) (*Mesh, error) {
	m := &Mesh{Verts: make([]Vertex, len(positions))}
	for i, p := range positions {
		m.Verts[i].Position = p
	}

	// Edges are deduplicated by their unordered vertex pair
	type vertPair [2]int
	edgeIndex := make(map[vertPair]int)

	for fi, loop := range faces {
		if len(loop) < 3 {
			return nil, errors.Errorf("face %d has %d vertices, need at least 3", fi, len(loop))
		}
		for _, vi := range loop {
			if vi < 0 || vi >= len(positions) {
				return nil, errors.Errorf("face %d references vertex %d, out of range [0, %d)", fi, vi, len(positions))
			}
		}

		face := Face{
			Verts: append([]int(nil), loop...),
			Edges: make([]int, 0, len(loop)),
		}

		for li, vi := range loop {
			next := loop[(li+1)%len(loop)]

			key := vertPair{vi, next}
			if next < vi {
				key = vertPair{next, vi}
			}

			ei, ok := edgeIndex[key]
			if !ok {
				ei = len(m.Edges)
				edgeIndex[key] = ei
				m.Edges = append(m.Edges, Edge{Verts: [2]int{vi, next}})
			}
			m.Edges[ei].Faces = append(m.Edges[ei].Faces, fi)
			face.Edges = append(face.Edges, ei)
		}

		face.Normal = newellNormal(m.Verts, loop)
		face.Centroid = loopCentroid(m.Verts, loop)

		m.Faces = append(m.Faces, face)
	}

	m.computeVertexNormals()

	return m, nil
}

// newellNormal computes the polygon normal with Newell's method, which stays
// stable for concave or slightly non-planar loops. Degenerate loops produce a
// zero normal.
func newellNormal(verts []Vertex, loop []int) mgl64.Vec3 {
	var n mgl64.Vec3

	for li, vi := range loop {
		a := verts[vi].Position
		b := verts[loop[(li+1)%len(loop)]].Position

		n[0] += (a.Y() - b.Y()) * (a.Z() + b.Z())
		n[1] += (a.Z() - b.Z()) * (a.X() + b.X())
		n[2] += (a.X() - b.X()) * (a.Y() + b.Y())
	}

	if n.Len() < 1e-12 {
		return mgl64.Vec3{}
	}

	return n.Normalize()
}

func loopCentroid(verts []Vertex, loop []int) mgl64.Vec3 {
	var c mgl64.Vec3
	for _, vi := range loop {
		c = c.Add(verts[vi].Position)
	}

	return c.Mul(1 / float64(len(loop)))
}

func (m *Mesh) computeVertexNormals() {
	counts := make([]int, len(m.Verts))

	for _, f := range m.Faces {
		for _, vi := range f.Verts {
			m.Verts[vi].Normal = m.Verts[vi].Normal.Add(f.Normal)
			counts[vi]++
		}
	}

	for i := range m.Verts {
		if counts[i] == 0 {
			continue
		}

		n := m.Verts[i].Normal
		if n.Len() < 1e-12 {
			// Opposing face normals cancelled out
			m.Verts[i].Normal = mgl64.Vec3{}
			continue
		}
		m.Verts[i].Normal = n.Normalize()
	}
}
