package gltfio

import (
	"io"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/meshkit/instancing/scene"
)

// EmptyExtras carries the display settings of an empty through the glTF
// extras field.
type EmptyExtras struct {
	EmptyType          string  `json:"emptyType"`
	DisplaySize        float64 `json:"displaySize"`
	InstanceCollection string  `json:"instanceCollection,omitempty"`
}

// BuildDocument converts a collection tree into a glTF document: one node
// per collection, one child node per empty carrying its placement matrix.
func BuildDocument(col *scene.Collection) *gltf.Document {
	doc := gltf.NewDocument()

	root := addCollection(doc, col)
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, root)

	return doc
}

// SaveEmpties writes the collection tree to a .gltf file.
func SaveEmpties(path string, col *scene.Collection) error {
	if err := gltf.Save(BuildDocument(col), path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}

	return nil
}

// ExportBinary writes the collection tree to w in .glb form.
func ExportBinary(w io.Writer, col *scene.Collection) error {
	encoder := gltf.NewEncoder(w)
	encoder.AsBinary = true

	return encoder.Encode(BuildDocument(col))
}

func addCollection(doc *gltf.Document, col *scene.Collection) uint32 {
	node := &gltf.Node{Name: col.Name}
	doc.Nodes = append(doc.Nodes, node)
	index := uint32(len(doc.Nodes) - 1)

	for _, e := range col.Objects {
		node.Children = append(node.Children, addEmpty(doc, e))
	}
	for _, child := range col.Children {
		node.Children = append(node.Children, addCollection(doc, child))
	}

	return index
}

func addEmpty(doc *gltf.Document, e *scene.Empty) uint32 {
	extras := EmptyExtras{
		EmptyType:   e.Type.String(),
		DisplaySize: e.DisplaySize,
	}
	if e.InstanceCollection != nil {
		extras.InstanceCollection = e.InstanceCollection.Name
	}

	node := &gltf.Node{
		Name:   e.Name,
		Extras: extras,
	}
	// glTF and mgl64 are both column-major, so the matrix copies across
	// element by element
	for i, v := range e.Matrix {
		node.Matrix[i] = float32(v)
	}

	doc.Nodes = append(doc.Nodes, node)

	return uint32(len(doc.Nodes) - 1)
}
