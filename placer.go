package instancing

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/meshkit/instancing/mesh"
)

const DEFAULT_WORKERS = 1

// ElementKind identifies which kind of mesh element a placement belongs to.
type ElementKind int

const (
	KindVertex ElementKind = iota
	KindEdge
	KindFace
)

func (k ElementKind) String() string {
	switch k {
	case KindVertex:
		return "vertex"
	case KindEdge:
		return "edge"
	case KindFace:
		return "face"
	}
	return "unknown"
}

// Selection masks which element kinds of a mesh receive frames.
type Selection struct {
	Verts bool
	Edges bool
	Faces bool
}

// Placement is one computed frame: the element it was derived from and its
// local-to-world matrix.
type Placement struct {
	Kind   ElementKind
	Index  int
	Matrix mgl64.Mat4
}

// Report counts the per-element failures of a batch. The batch itself always
// completes and returns a placement for every element it could process.
type Report struct {
	// Edges left out because they do not join exactly two faces
	SkippedEdges int
	// Elements dropped because their basis degenerated to a zero vector
	Degenerate int
}

// Placer computes placement frames for the selected elements of a mesh.
type Placer struct {
	Selection Selection
	Workers   int

	Events Events
}

func NewPlacer(selection Selection) *Placer {
	return &Placer{
		Selection: selection,
		Workers:   DEFAULT_WORKERS,
		Events:    NewEvents(),
	}
}

type elementResult struct {
	transform mgl64.Mat4
	err       error
}

// PlaceFrames computes one frame per selected element of m. Elements of the
// same kind are independent, so the per-element computations fan out over
// Workers goroutines; the output order stays fixed (vertices, then edges,
// then faces, ascending index) regardless of the worker count.
func (p *Placer) PlaceFrames(m *mesh.Mesh) ([]Placement, Report) {
	p.Workers = max(DEFAULT_WORKERS, p.Workers)

	var placements []Placement
	var report Report

	if p.Selection.Verts {
		results := make([]elementResult, len(m.Verts))
		task(p.Workers, len(m.Verts), func(i int) {
			results[i].transform, results[i].err = VertexFrame(m.Verts[i])
		})
		placements = p.collect(placements, KindVertex, results, &report)
	}

	if p.Selection.Edges {
		results := make([]elementResult, len(m.Edges))
		task(p.Workers, len(m.Edges), func(i int) {
			results[i].transform, results[i].err = EdgeFrame(m, m.Edges[i])
		})
		placements = p.collect(placements, KindEdge, results, &report)
	}

	if p.Selection.Faces {
		results := make([]elementResult, len(m.Faces))
		task(p.Workers, len(m.Faces), func(i int) {
			results[i].transform, results[i].err = FaceFrame(m, m.Faces[i])
		})
		placements = p.collect(placements, KindFace, results, &report)
	}

	p.Events.flush()

	return placements, report
}

// collect appends the successful results in element order and routes the
// failures to the report and the event buffer. A failure never aborts the
// batch or affects the other elements.
func (p *Placer) collect(placements []Placement, kind ElementKind, results []elementResult, report *Report) []Placement {
	for i, res := range results {
		switch {
		case res.err == nil:
			placements = append(placements, Placement{Kind: kind, Index: i, Matrix: res.transform})
		case errors.Is(res.err, ErrEdgeFaceCount):
			report.SkippedEdges++
			p.Events.emit(EdgeSkippedEvent{Index: i})
		default:
			report.Degenerate++
			p.Events.emit(DegenerateElementEvent{Kind: kind, Index: i, Err: res.err})
		}
	}

	return placements
}
