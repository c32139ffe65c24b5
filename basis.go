package instancing

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// minBasisLength is the shortest vector length accepted for normalization.
const minBasisLength = 1e-8

// ErrDegenerateBasis is returned when a basis vector is too short to
// normalize, e.g. a zero-length edge or a vertex without a normal.
var ErrDegenerateBasis = errors.New("degenerate basis vector")

// ChangeOfBasis builds the placement matrix for a local frame (i, j, k)
// anchored at the given point. Each axis is unit-scaled independently; the
// triple is assumed already mutually perpendicular by construction and is not
// re-orthogonalized here.
func ChangeOfBasis(at, i, j, k mgl64.Vec3) (mgl64.Mat4, error) {
	axes := [3]mgl64.Vec3{i, j, k}
	names := [3]string{"i", "j", "k"}

	for n, axis := range axes {
		length := axis.Len()
		if length < minBasisLength {
			return mgl64.Mat4{}, errors.Wrapf(ErrDegenerateBasis, "axis %s has length %g", names[n], length)
		}
		axes[n] = axis.Mul(1 / length)
	}

	// The rows hold the basis; transposing turns them into columns mapping
	// local coordinates into world space.
	rot := mgl64.Mat3FromRows(axes[0], axes[1], axes[2]).Transpose()

	return mgl64.Translate3D(at.X(), at.Y(), at.Z()).Mul4(rot.Mat4()), nil
}

// orthogonal returns a deterministic vector perpendicular to v, built by
// crossing v with the world axis v is least aligned with.
func orthogonal(v mgl64.Vec3) mgl64.Vec3 {
	abs := mgl64.Vec3{math.Abs(v.X()), math.Abs(v.Y()), math.Abs(v.Z())}

	smallest := 0
	if abs.Y() < abs.X() {
		smallest = 1
	}
	if abs.Z() < abs[smallest] {
		smallest = 2
	}

	var axis mgl64.Vec3
	axis[smallest] = 1

	return v.Cross(axis)
}
