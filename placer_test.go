package instancing

import (
	"reflect"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/meshkit/instancing/mesh"
)

func TestPlaceFramesCubeFaces(t *testing.T) {
	m := mesh.Cube()

	placer := NewPlacer(Selection{Faces: true})
	placements, report := placer.PlaceFrames(m)

	if len(placements) != 6 {
		t.Fatalf("got %d placements, want 6", len(placements))
	}
	if report.SkippedEdges != 0 {
		t.Errorf("skipped %d edges, want 0", report.SkippedEdges)
	}
	if report.Degenerate != 0 {
		t.Errorf("dropped %d degenerate elements, want 0", report.Degenerate)
	}

	for n, p := range placements {
		if p.Kind != KindFace || p.Index != n {
			t.Errorf("placement %d is %s %d, want face %d", n, p.Kind, p.Index, n)
		}

		face := m.Faces[p.Index]
		if got := applyToOrigin(p.Matrix); !vec3ApproxEqual(got, face.Centroid, 1e-9) {
			t.Errorf("face %d anchored at %v, want centroid %v", p.Index, got, face.Centroid)
		}
		if k := matCol(p.Matrix, 2); !vec3ApproxEqual(k, face.Normal, 1e-9) {
			t.Errorf("face %d k = %v, want outward normal %v", p.Index, k, face.Normal)
		}
	}
}

func TestPlaceFramesFreeTriangleEdges(t *testing.T) {
	m := mesh.Triangle()

	placer := NewPlacer(Selection{Edges: true})
	placements, report := placer.PlaceFrames(m)

	// All 3 edges join exactly one face, so every edge is skipped
	if len(placements) != 0 {
		t.Errorf("got %d placements, want 0", len(placements))
	}
	if report.SkippedEdges != 3 {
		t.Errorf("skipped %d edges, want 3", report.SkippedEdges)
	}
}

func TestPlaceFramesGridEdges(t *testing.T) {
	m := mesh.Grid(2, 2)

	placer := NewPlacer(Selection{Edges: true})
	placements, report := placer.PlaceFrames(m)

	// 4 interior edges join two faces, 8 border edges join one
	if len(placements) != 4 {
		t.Errorf("got %d placements, want 4", len(placements))
	}
	if report.SkippedEdges != 8 {
		t.Errorf("skipped %d edges, want 8", report.SkippedEdges)
	}
}

func TestPlaceFramesOrdering(t *testing.T) {
	m := mesh.Cube()

	placer := NewPlacer(Selection{Verts: true, Edges: true, Faces: true})
	placements, report := placer.PlaceFrames(m)

	want := 8 + 12 + 6
	if len(placements) != want {
		t.Fatalf("got %d placements, want %d", len(placements), want)
	}
	if report.SkippedEdges != 0 || report.Degenerate != 0 {
		t.Fatalf("unexpected failures: %+v", report)
	}

	// Vertices first, then edges, then faces, ascending index within a kind
	previousKind := KindVertex
	previousIndex := -1
	for n, p := range placements {
		if p.Kind < previousKind {
			t.Fatalf("placement %d: kind %s after %s", n, p.Kind, previousKind)
		}
		if p.Kind != previousKind {
			previousKind = p.Kind
			previousIndex = -1
		}
		if p.Index != previousIndex+1 {
			t.Fatalf("placement %d: index %d after %d", n, p.Index, previousIndex)
		}
		previousIndex = p.Index
	}
}

func TestPlaceFramesWorkerDeterminism(t *testing.T) {
	m := mesh.Cube()
	selection := Selection{Verts: true, Edges: true, Faces: true}

	single := NewPlacer(selection)
	single.Workers = 1
	wantPlacements, wantReport := single.PlaceFrames(m)

	for _, workers := range []int{2, 4, 16} {
		placer := NewPlacer(selection)
		placer.Workers = workers

		placements, report := placer.PlaceFrames(m)

		if !reflect.DeepEqual(placements, wantPlacements) {
			t.Errorf("workers=%d produced different placements", workers)
		}
		if report != wantReport {
			t.Errorf("workers=%d report = %+v, want %+v", workers, report, wantReport)
		}
	}
}

func TestPlaceFramesDegenerateVertex(t *testing.T) {
	// Vertex 3 belongs to no face, so its normal stays zero
	m, err := mesh.Build([]mgl64.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
		{5, 5, 5},
	}, [][]int{{0, 1, 2}})
	if err != nil {
		t.Fatal(err)
	}

	placer := NewPlacer(Selection{Verts: true})
	placements, report := placer.PlaceFrames(m)

	if len(placements) != 3 {
		t.Errorf("got %d placements, want 3", len(placements))
	}
	if report.Degenerate != 1 {
		t.Errorf("dropped %d degenerate elements, want 1", report.Degenerate)
	}

	// The failure must not disturb the healthy vertices
	for _, p := range placements {
		if p.Index == 3 {
			t.Error("degenerate vertex 3 produced a placement")
		}
		if got := applyToOrigin(p.Matrix); !vec3ApproxEqual(got, m.Verts[p.Index].Position, 1e-9) {
			t.Errorf("vertex %d anchored at %v, want %v", p.Index, got, m.Verts[p.Index].Position)
		}
	}
}

func TestPlaceFramesEmptySelection(t *testing.T) {
	placer := NewPlacer(Selection{})
	placements, report := placer.PlaceFrames(mesh.Cube())

	if len(placements) != 0 || report != (Report{}) {
		t.Errorf("empty selection produced %d placements, report %+v", len(placements), report)
	}
}
