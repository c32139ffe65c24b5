package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Size returns the box extent along each axis
func (a AABB) Size() mgl64.Vec3 {
	return a.Max.Sub(a.Min)
}

// Bounds returns the axis-aligned bounding box of all vertices. An empty
// mesh produces a zero box.
func (m *Mesh) Bounds() AABB {
	if len(m.Verts) == 0 {
		return AABB{}
	}

	b := AABB{Min: m.Verts[0].Position, Max: m.Verts[0].Position}

	for _, v := range m.Verts[1:] {
		p := v.Position

		b.Min[0] = math.Min(b.Min[0], p[0])
		b.Min[1] = math.Min(b.Min[1], p[1])
		b.Min[2] = math.Min(b.Min[2], p[2])

		b.Max[0] = math.Max(b.Max[0], p[0])
		b.Max[1] = math.Max(b.Max[1], p[1])
		b.Max[2] = math.Max(b.Max[2], p[2])
	}

	return b
}
