package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/meshkit/instancing"
	"github.com/meshkit/instancing/scene"
)

// Display size limits of the placeholder objects
const (
	MinDisplaySize = 0.01
	MaxDisplaySize = 10
)

// Config drives one placement run.
type Config struct {
	EmptyType   string  `yaml:"empty_type"`
	DisplaySize float64 `yaml:"display_size"`
	Verts       bool    `yaml:"verts"`
	Edges       bool    `yaml:"edges"`
	Faces       bool    `yaml:"faces"`
	Collection  string  `yaml:"collection"`
	Workers     int     `yaml:"workers"`
}

func Default() Config {
	return Config{
		EmptyType:   scene.PlainAxes.String(),
		DisplaySize: 1,
		Faces:       true,
		Workers:     instancing.DEFAULT_WORKERS,
	}
}

// Load reads a YAML run configuration, layered over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.DisplaySize < MinDisplaySize || c.DisplaySize > MaxDisplaySize {
		return errors.Errorf("display_size %g out of range [%g, %g]", c.DisplaySize, float64(MinDisplaySize), float64(MaxDisplaySize))
	}
	if !c.Verts && !c.Edges && !c.Faces {
		return errors.New("no element kind selected")
	}
	if _, err := scene.ParseEmptyType(c.EmptyType); err != nil {
		return err
	}

	return nil
}

// Selection converts the element toggles into an engine mask.
func (c Config) Selection() instancing.Selection {
	return instancing.Selection{Verts: c.Verts, Edges: c.Edges, Faces: c.Faces}
}
