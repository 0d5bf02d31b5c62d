// Package ggml locates a shared ggml build published by a sibling build unit.
package ggml

import (
	"os"
	"path/filepath"
)

// Environment keys the collaborator build unit exports for its install tree.
// The naming convention is fixed so any build unit can locate the shared
// ggml without hardcoding paths.
const (
	EnvRoot    = "DEP_GGML_ROOT"
	EnvInclude = "DEP_GGML_INCLUDE"
)

// Location describes where a previously built shared ggml lives. Empty
// fields mean the collaborator did not publish them. Paths are derived from
// the published keys only; whether they exist on disk is checked lazily by
// the build plan.
type Location struct {
	LibDir     string // built libraries, <root>/lib
	IncludeDir string // public headers
	CMakeDir   string // cmake package config, <root>/lib/cmake/ggml
}

// Found reports whether a shared library directory was published.
func (l Location) Found() bool {
	return l.LibDir != ""
}

// Prefix returns the install prefix the lib dir lives under.
func (l Location) Prefix() string {
	if l.LibDir == "" {
		return ""
	}
	return filepath.Dir(l.LibDir)
}

// Locate reads the collaborator's published paths from the environment.
// It never fails: absent keys leave the corresponding fields empty.
func Locate() Location {
	var loc Location
	if root := os.Getenv(EnvRoot); root != "" {
		loc.LibDir = filepath.Join(root, "lib")
		loc.CMakeDir = filepath.Join(root, "lib", "cmake", "ggml")
		loc.IncludeDir = filepath.Join(root, "include")
	}
	if include := os.Getenv(EnvInclude); include != "" {
		loc.IncludeDir = include
	}
	return loc
}
