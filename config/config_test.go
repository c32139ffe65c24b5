package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config does not validate: %v", err)
	}
	if cfg.EmptyType != "plain_axes" || cfg.DisplaySize != 1 {
		t.Errorf("defaults = %q/%g, want plain_axes/1", cfg.EmptyType, cfg.DisplaySize)
	}
	if cfg.Verts || cfg.Edges || !cfg.Faces {
		t.Errorf("default selection = %v/%v/%v, want faces only", cfg.Verts, cfg.Edges, cfg.Faces)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	data := []byte(`empty_type: arrows
display_size: 2.5
verts: true
edges: true
faces: false
collection: Props
workers: 4
`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.EmptyType != "arrows" || cfg.DisplaySize != 2.5 {
		t.Errorf("got %q/%g, want arrows/2.5", cfg.EmptyType, cfg.DisplaySize)
	}
	if cfg.Collection != "Props" || cfg.Workers != 4 {
		t.Errorf("got collection %q workers %d, want Props/4", cfg.Collection, cfg.Workers)
	}

	sel := cfg.Selection()
	if !sel.Verts || !sel.Edges || sel.Faces {
		t.Errorf("selection = %+v, want verts and edges only", sel)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte("verts: true\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.DisplaySize != 1 || cfg.EmptyType != "plain_axes" {
		t.Errorf("defaults lost: %q/%g", cfg.EmptyType, cfg.DisplaySize)
	}
	if !cfg.Verts || !cfg.Faces {
		t.Errorf("selection = %v/%v/%v, want verts and faces", cfg.Verts, cfg.Edges, cfg.Faces)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load accepted a missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "display size too small",
			mutate:  func(c *Config) { c.DisplaySize = 0.001 },
			wantErr: true,
		},
		{
			name:    "display size too large",
			mutate:  func(c *Config) { c.DisplaySize = 11 },
			wantErr: true,
		},
		{
			name:    "nothing selected",
			mutate:  func(c *Config) { c.Faces = false },
			wantErr: true,
		},
		{
			name:    "unknown empty type",
			mutate:  func(c *Config) { c.EmptyType = "torus" },
			wantErr: true,
		},
		{
			name:   "boundary display sizes",
			mutate: func(c *Config) { c.DisplaySize = MinDisplaySize },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate accepted an invalid config")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate rejected a valid config: %v", err)
			}
		})
	}
}
