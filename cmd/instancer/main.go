package main

import (
	"flag"
	"log"

	"github.com/meshkit/instancing"
	"github.com/meshkit/instancing/config"
	"github.com/meshkit/instancing/gltfio"
	"github.com/meshkit/instancing/scene"
)

func main() {
	var in, out, cfgPath, emptyType, collection string
	var verts, edges, faces bool
	var size float64
	var workers int
	flag.StringVar(&in, "in", "", "Input glTF mesh file")
	flag.StringVar(&out, "out", "instances.gltf", "Output glTF file")
	flag.StringVar(&cfgPath, "config", "", "YAML run configuration")
	flag.BoolVar(&verts, "verts", false, "Place frames on vertices")
	flag.BoolVar(&edges, "edges", false, "Place frames on edges")
	flag.BoolVar(&faces, "faces", false, "Place frames on faces")
	flag.Float64Var(&size, "size", 0, "Empty display size override")
	flag.StringVar(&emptyType, "type", "", "Empty type: arrows, single_arrow, plain_axes")
	flag.StringVar(&collection, "collection", "", "Instance collection name")
	flag.IntVar(&workers, "workers", 0, "Worker goroutines")
	flag.Parse()

	if in == "" {
		flag.PrintDefaults()
		return
	}

	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			log.Fatal(err)
		}
	}
	if verts || edges || faces {
		cfg.Verts, cfg.Edges, cfg.Faces = verts, edges, faces
	}
	if size > 0 {
		cfg.DisplaySize = size
	}
	if emptyType != "" {
		cfg.EmptyType = emptyType
	}
	if collection != "" {
		cfg.Collection = collection
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	m, err := gltfio.LoadMesh(in)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("loaded %s: %d verts, %d edges, %d faces, size %v",
		in, len(m.Verts), len(m.Edges), len(m.Faces), m.Bounds().Size())

	placer := instancing.NewPlacer(cfg.Selection())
	placer.Workers = cfg.Workers
	placer.Events.Subscribe(instancing.ELEMENT_DEGENERATE, func(event instancing.Event) {
		e := event.(instancing.DegenerateElementEvent)
		log.Printf("dropped degenerate %s %d: %v", e.Kind, e.Index, e.Err)
	})

	placements, report := placer.PlaceFrames(m)
	if report.SkippedEdges > 0 {
		log.Printf("Skipped %d edges because they don't join 2 faces", report.SkippedEdges)
	}

	s := scene.NewScene()
	var instanceCol *scene.Collection
	if cfg.Collection != "" {
		instanceCol = s.Root.NewChild(cfg.Collection)
	}

	// Validated above
	parsedType, _ := scene.ParseEmptyType(cfg.EmptyType)

	builder := &scene.Builder{
		Scene:              s,
		Type:               parsedType,
		DisplaySize:        cfg.DisplaySize,
		InstanceCollection: instanceCol,
	}
	dest, err := builder.Build(placements)
	if err != nil {
		log.Fatal(err)
	}

	if err := gltfio.SaveEmpties(out, s.Root); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %d empties to %s", len(dest.Objects), out)
}
