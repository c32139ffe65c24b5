package gltfio

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/meshkit/instancing/mesh"
)

// LoadMesh reads the first triangle primitive of a glTF file and derives a
// full mesh snapshot from it.
func LoadMesh(path string) (*mesh.Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}

	return FromDocument(doc)
}

// FromDocument converts the first triangle primitive of an already decoded
// document.
func FromDocument(doc *gltf.Document) (*mesh.Mesh, error) {
	for _, gm := range doc.Meshes {
		for _, prim := range gm.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			return fromPrimitive(doc, prim)
		}
	}

	return nil, errors.New("document contains no triangle primitive")
}

func fromPrimitive(doc *gltf.Document, prim *gltf.Primitive) (*mesh.Mesh, error) {
	posIndex, ok := prim.Attributes[gltf.POSITION]
	if !ok {
		return nil, errors.New("primitive has no POSITION attribute")
	}

	rawPositions, err := modeler.ReadPosition(doc, doc.Accessors[posIndex], nil)
	if err != nil {
		return nil, errors.Wrap(err, "read positions")
	}

	positions := make([]mgl64.Vec3, len(rawPositions))
	for i, p := range rawPositions {
		positions[i] = mgl64.Vec3{float64(p[0]), float64(p[1]), float64(p[2])}
	}

	if prim.Indices == nil {
		return nil, errors.New("primitive has no indices")
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return nil, errors.Wrap(err, "read indices")
	}
	if len(indices)%3 != 0 {
		return nil, errors.Errorf("index count %d is not a multiple of 3", len(indices))
	}

	faces := make([][]int, 0, len(indices)/3)
	for i := 0; i < len(indices); i += 3 {
		faces = append(faces, []int{int(indices[i]), int(indices[i+1]), int(indices[i+2])})
	}

	return mesh.Build(positions, faces)
}
