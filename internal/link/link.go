// Package link turns a build mode and artifact layout into the linker
// instructions the enclosing build consumes.
package link

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
	"github.com/joshatdia/whisper-rs-ggml/internal/plan"
)

// Kind says how a library is linked.
type Kind int

const (
	Static Kind = iota
	Dylib
	Framework
)

func (k Kind) String() string {
	switch k {
	case Static:
		return "static"
	case Framework:
		return "framework"
	}
	return "dylib"
}

// Lib is one library the enclosing build must link.
type Lib struct {
	Kind Kind
	Name string
}

// Directive is the ordered link instruction set: search paths first, then
// libraries, dependencies listed before their dependents so single-pass
// linkers resolve symbols.
type Directive struct {
	SearchPaths []string
	Libs        []Lib
}

// backendLibs maps accelerated-backend features to the shared ggml module
// built for them.
var backendLibs = map[plan.Feature]string{
	plan.FeatureCUDA:     "ggml-cuda",
	plan.FeatureVulkan:   "ggml-vulkan",
	plan.FeatureMetal:    "ggml-metal",
	plan.FeatureOpenBLAS: "ggml-blas",
	plan.FeatureHIPBLAS:  "ggml-hip",
}

// Emit assembles the link directive for the chosen mode. artifactDir is
// where the native build installed its outputs.
func Emit(mode plan.Mode, artifactDir string, features plan.FeatureSet, loc ggml.Location) Directive {
	return emitFor(runtime.GOOS, os.Getenv, mode, artifactDir, features, loc)
}

func emitFor(goos string, getenv func(string) string, mode plan.Mode, artifactDir string, features plan.FeatureSet, loc ggml.Location) Directive {
	var d Directive

	addPath := func(dir string) {
		for _, p := range d.SearchPaths {
			if p == dir {
				return
			}
		}
		d.SearchPaths = append(d.SearchPaths, dir)
	}
	addLib := func(kind Kind, name string) {
		// Overlapping triggers may request the same library; link once.
		for _, l := range d.Libs {
			if l.Kind == kind && l.Name == name {
				return
			}
		}
		d.Libs = append(d.Libs, Lib{Kind: kind, Name: name})
	}

	addPath(artifactDir)
	addPath(filepath.Join(artifactDir, "lib"))
	if mode == plan.ModeShared && loc.LibDir != "" {
		addPath(loc.LibDir)
	}

	// Platform libraries first; whisper depends on them.
	if stdlib := cppStdlib(goos); stdlib != "" {
		addLib(Dylib, stdlib)
	}
	if goos == "windows" {
		addLib(Dylib, "advapi32")
	}
	if goos == "darwin" {
		addLib(Framework, "Accelerate")
		if features.Enabled(plan.FeatureCoreML) {
			addLib(Framework, "Foundation")
			addLib(Framework, "CoreML")
		}
		if features.Enabled(plan.FeatureMetal) {
			addLib(Framework, "Foundation")
			addLib(Framework, "Metal")
			addLib(Framework, "MetalKit")
		}
	}
	if features.Enabled(plan.FeatureOpenMP) {
		if lib := openmpLib(goos); lib != "" {
			addLib(Dylib, lib)
		}
		if goos == "darwin" {
			addPath("/opt/homebrew/opt/libomp/lib")
		}
	}

	// Accelerated backends lean on system runtimes the whisper build does
	// not install; emit those alongside the backend modules.
	if features.Enabled(plan.FeatureCUDA) {
		addLib(Dylib, "cublas")
		addLib(Dylib, "cudart")
		addLib(Dylib, "cublasLt")
		addLib(Dylib, "cuda")
		if goos == "windows" {
			if p := getenv("CUDA_PATH"); p != "" {
				addPath(filepath.Join(p, "lib", "x64"))
			}
		} else {
			addLib(Dylib, "culibos")
			addPath("/usr/local/cuda/lib64")
			addPath("/usr/local/cuda/lib64/stubs")
			addPath("/opt/cuda/lib64")
			addPath("/opt/cuda/lib64/stubs")
		}
	}
	if features.Enabled(plan.FeatureVulkan) {
		if goos == "windows" {
			addLib(Dylib, "vulkan-1")
		} else {
			addLib(Dylib, "vulkan")
		}
		if goos == "windows" || goos == "darwin" {
			if p := getenv("VULKAN_SDK"); p != "" {
				sub := "lib"
				if goos == "windows" {
					sub = "Lib"
				}
				addPath(filepath.Join(p, sub))
			}
		}
	}
	if features.Enabled(plan.FeatureOpenBLAS) {
		if p := getenv("OPENBLAS_PATH"); p != "" {
			addPath(filepath.Join(p, "lib"))
		}
		if goos == "windows" {
			addLib(Dylib, "libopenblas")
		} else {
			addLib(Dylib, "openblas")
		}
	}
	if features.Enabled(plan.FeatureHIPBLAS) && goos != "windows" {
		addLib(Dylib, "hipblas")
		addLib(Dylib, "rocblas")
		addLib(Dylib, "amdhip64")
		hip := getenv("HIP_PATH")
		if hip == "" {
			hip = "/opt/rocm"
		}
		addPath(filepath.Join(hip, "lib"))
	}

	if mode == plan.ModeShared {
		// The foundational modules come from the collaborator's build.
		addLib(Dylib, "ggml")
		addLib(Dylib, "ggml-base")
		addLib(Dylib, "ggml-cpu")
		if goos == "darwin" {
			// BLAS is a platform default; the feature toggle below may
			// fire for the same library.
			addLib(Dylib, "ggml-blas")
		}
		for _, f := range features.List() {
			if name, ok := backendLibs[f]; ok {
				addLib(Dylib, name)
			}
		}
	}

	if goos == "darwin" && features.Enabled(plan.FeatureCoreML) {
		addLib(Static, "whisper.coreml")
	}

	// The dependent library last; in embedded mode the foundational
	// symbols are compiled directly into it.
	addLib(Static, "whisper")

	return d
}

// WriteCargo renders the directive on the build tool's instruction channel,
// one instruction per line, search paths before the libraries that resolve
// against them.
func (d Directive) WriteCargo(w io.Writer) error {
	for _, p := range d.SearchPaths {
		if _, err := fmt.Fprintf(w, "cargo:rustc-link-search=native=%s\n", p); err != nil {
			return err
		}
	}
	for _, l := range d.Libs {
		if _, err := fmt.Fprintf(w, "cargo:rustc-link-lib=%s=%s\n", l.Kind, l.Name); err != nil {
			return err
		}
	}
	return nil
}

// cppStdlib names the C++ standard library for the platform; empty means
// the toolchain links it implicitly.
func cppStdlib(goos string) string {
	switch goos {
	case "windows":
		return ""
	case "darwin", "freebsd", "openbsd":
		return "c++"
	case "android":
		return "c++_shared"
	default:
		return "stdc++"
	}
}

// openmpLib names the OpenMP runtime for the platform.
func openmpLib(goos string) string {
	switch goos {
	case "darwin":
		return "omp"
	case "windows":
		return ""
	default:
		return "gomp"
	}
}
