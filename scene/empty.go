package scene

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
)

// EmptyType selects the display shape of a placeholder object.
type EmptyType int

const (
	Arrows EmptyType = iota
	SingleArrow
	PlainAxes
)

func (t EmptyType) String() string {
	switch t {
	case Arrows:
		return "arrows"
	case SingleArrow:
		return "single_arrow"
	case PlainAxes:
		return "plain_axes"
	}
	return "unknown"
}

// ParseEmptyType converts a config/CLI name into an EmptyType.
func ParseEmptyType(s string) (EmptyType, error) {
	switch s {
	case "arrows":
		return Arrows, nil
	case "single_arrow":
		return SingleArrow, nil
	case "plain_axes":
		return PlainAxes, nil
	}
	return Arrows, errors.Errorf("unknown empty type %q", s)
}

// Empty is a zero-geometry placeholder object: it holds a transform and
// display settings, and optionally instances a collection at its transform.
type Empty struct {
	Name        string
	Type        EmptyType
	DisplaySize float64
	Matrix      mgl64.Mat4

	// Collection rendered at this empty's transform, nil for a plain empty
	InstanceCollection *Collection
}
