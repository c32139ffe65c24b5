package scene

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/meshkit/instancing"
)

// DestinationName is the collection every build links its empties into.
const DestinationName = "Instances"

// Builder instantiates placeholder empties for computed placements. It is
// the object-creation side of the pipeline: the placer hands it transforms,
// it owns everything scene-related.
type Builder struct {
	Scene       *Scene
	Type        EmptyType
	DisplaySize float64

	// Collection instanced at every created empty, nil for plain empties
	InstanceCollection *Collection
}

// Build creates one empty per placement inside a fresh destination
// collection linked under the scene root, and returns that collection.
func (b *Builder) Build(placements []instancing.Placement) (*Collection, error) {
	if b.Scene == nil {
		return nil, errors.New("builder has no scene")
	}
	if b.InstanceCollection == b.Scene.Root {
		// Instancing the ancestor of the destination would recurse
		return nil, errors.New("cannot instance the scene root collection")
	}

	size := b.DisplaySize
	if size <= 0 {
		size = 1
	}

	dest := b.Scene.Root.NewChild(DestinationName)

	for _, p := range placements {
		e := &Empty{
			Name:               fmt.Sprintf("%s.%03d", p.Kind, p.Index),
			Type:               b.Type,
			DisplaySize:        size,
			Matrix:             p.Matrix,
			InstanceCollection: b.InstanceCollection,
		}
		dest.Link(e)
	}

	return dest, nil
}
