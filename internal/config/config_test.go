package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "build.yaml", `
shared_ggml: true
features: [cuda, vulkan]
debug: true
source_dir: /src/whisper.cpp
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SharedGGML {
		t.Error("SharedGGML = false, want true")
	}
	if len(cfg.Features) != 2 || cfg.Features[0] != "cuda" || cfg.Features[1] != "vulkan" {
		t.Errorf("Features = %v, want [cuda vulkan]", cfg.Features)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.SourceDir != "/src/whisper.cpp" {
		t.Errorf("SourceDir = %q, want /src/whisper.cpp", cfg.SourceDir)
	}
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "build.toml", `
shared_ggml = true
features = ["metal"]
build_dir = "/tmp/out"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.SharedGGML {
		t.Error("SharedGGML = false, want true")
	}
	if len(cfg.Features) != 1 || cfg.Features[0] != "metal" {
		t.Errorf("Features = %v, want [metal]", cfg.Features)
	}
	if cfg.BuildDir != "/tmp/out" {
		t.Errorf("BuildDir = %q, want /tmp/out", cfg.BuildDir)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "build.json", `{"features": ["openmp"], "debug": false}`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Features) != 1 || cfg.Features[0] != "openmp" {
		t.Errorf("Features = %v, want [openmp]", cfg.Features)
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "build.ini", "shared_ggml=true")
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted an .ini file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load on a missing file returned nil error")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Fatal("Load(\"\") returned nil error")
	}
}
