package instancing

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"

	"github.com/meshkit/instancing/mesh"
)

// ErrEdgeFaceCount is returned for edges that do not join exactly two faces;
// such edges have no well-defined normal and are skipped.
var ErrEdgeFaceCount = errors.New("edge does not join exactly two faces")

// VertexFrame anchors a frame at the vertex position with k along the vertex
// normal. The i axis is an arbitrary but deterministic perpendicular of k,
// and j completes the right-handed triple.
func VertexFrame(v mesh.Vertex) (mgl64.Mat4, error) {
	k := v.Normal
	i := orthogonal(k)
	j := k.Cross(i)

	return ChangeOfBasis(v.Position, i, j, k)
}

// EdgeNormal averages the normals of the edge's two adjacent faces. ok is
// false when the edge does not join exactly two faces.
func EdgeNormal(m *mesh.Mesh, e mesh.Edge) (mgl64.Vec3, bool) {
	if len(e.Faces) != 2 {
		return mgl64.Vec3{}, false
	}

	n0 := m.Faces[e.Faces[0]].Normal
	n1 := m.Faces[e.Faces[1]].Normal

	return n0.Add(n1).Mul(0.5), true
}

// EdgeFrame anchors a frame at the edge midpoint, with i along the edge and k
// along the bisector of the two adjacent face normals. The edge vector stays
// unnormalized until ChangeOfBasis unit-scales the triple.
func EdgeFrame(m *mesh.Mesh, e mesh.Edge) (mgl64.Mat4, error) {
	k, ok := EdgeNormal(m, e)
	if !ok {
		return mgl64.Mat4{}, errors.Wrapf(ErrEdgeFaceCount, "%d adjacent faces", len(e.Faces))
	}

	p0 := m.Verts[e.Verts[0]].Position
	p1 := m.Verts[e.Verts[1]].Position

	i := p1.Sub(p0)
	j := k.Cross(i)
	mid := p0.Add(p1).Mul(0.5)

	return ChangeOfBasis(mid, i, j, k)
}

// FaceFrame anchors a frame at the face centroid with k along the face normal
// and i along the face's first loop edge.
func FaceFrame(m *mesh.Mesh, f mesh.Face) (mgl64.Mat4, error) {
	edge := m.Edges[f.Edges[0]]

	k := f.Normal
	i := m.Verts[edge.Verts[1]].Position.Sub(m.Verts[edge.Verts[0]].Position)
	j := k.Cross(i)

	return ChangeOfBasis(f.Centroid, i, j, k)
}
