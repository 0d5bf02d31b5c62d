package build

import (
	"os"
	"path/filepath"
	"testing"
)

func TestVersion(t *testing.T) {
	dir := writeSource(t, "1.8.0")
	got, err := Version(dir)
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if got != "1.8.0" {
		t.Errorf("Version = %q, want %q", got, "1.8.0")
	}
}

func TestVersionNoDeclaration(t *testing.T) {
	dir := t.TempDir()
	content := "cmake_minimum_required(VERSION 3.12)\nproject(other)\n"
	if err := os.WriteFile(filepath.Join(dir, "CMakeLists.txt"), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Version(dir); err == nil {
		t.Fatal("Version on a file without a declaration returned nil error")
	}
}

func TestVersionMissingFile(t *testing.T) {
	if _, err := Version(t.TempDir()); err == nil {
		t.Fatal("Version without CMakeLists.txt returned nil error")
	}
}
