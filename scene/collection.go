package scene

// Collection is a named group of objects; child collections form the scene
// tree.
type Collection struct {
	Name     string
	Objects  []*Empty
	Children []*Collection
}

// NewChild creates an empty collection linked under c.
func (c *Collection) NewChild(name string) *Collection {
	child := &Collection{Name: name}
	c.Children = append(c.Children, child)

	return child
}

// Link adds the empty to the collection.
func (c *Collection) Link(e *Empty) {
	c.Objects = append(c.Objects, e)
}

// Unlink removes the empty from the collection, reporting whether it was
// linked there.
func (c *Collection) Unlink(e *Empty) bool {
	for i, obj := range c.Objects {
		if obj == e {
			c.Objects = append(c.Objects[:i], c.Objects[i+1:]...)
			return true
		}
	}

	return false
}

// Find returns the first collection named name in the subtree rooted at c,
// or nil.
func (c *Collection) Find(name string) *Collection {
	if c.Name == name {
		return c
	}

	for _, child := range c.Children {
		if found := child.Find(name); found != nil {
			return found
		}
	}

	return nil
}

// Scene owns the collection tree.
type Scene struct {
	Root *Collection
}

func NewScene() *Scene {
	return &Scene{Root: &Collection{Name: "Scene"}}
}

// MoveTo links the empty into dest and unlinks it from every other
// collection in the scene.
func (s *Scene) MoveTo(dest *Collection, e *Empty) {
	unlinkAll(s.Root, e)
	dest.Link(e)
}

func unlinkAll(c *Collection, e *Empty) {
	c.Unlink(e)
	for _, child := range c.Children {
		unlinkAll(child, e)
	}
}
