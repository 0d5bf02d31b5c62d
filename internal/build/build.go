// Package build runs the whisper.cpp build pipeline: locate the shared
// ggml, select the build mode, assemble the native-build plan, drive the
// native build and emit the link instructions.
package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"golang.org/x/mod/semver"

	"github.com/joshatdia/whisper-rs-ggml/internal/bindings"
	"github.com/joshatdia/whisper-rs-ggml/internal/env"
	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
	"github.com/joshatdia/whisper-rs-ggml/internal/link"
	"github.com/joshatdia/whisper-rs-ggml/internal/plan"
	"github.com/joshatdia/whisper-rs-ggml/pkgs/buildsys"
	"github.com/joshatdia/whisper-rs-ggml/pkgs/buildsys/cmake"
)

// Options are the caller-supplied inputs for one build invocation.
type Options struct {
	SharedGGML bool
	Features   []string
	Debug      bool

	// SourceDir is the whisper.cpp checkout; empty means the cached
	// checkout under the work dir, cloning it on first use.
	SourceDir string

	// Tag pins the clone to a whisper.cpp release tag. Only consulted when
	// the checkout does not exist yet.
	Tag string

	// BuildDir is the invocation's scratch root; empty means a
	// mode-specific directory under the work dir. Two invocations sharing
	// a build dir race on the native build system's cache files.
	BuildDir string

	Verbose bool
	Logger  zerolog.Logger
}

// Result is everything a single invocation produces for the enclosing
// build to consume.
type Result struct {
	Mode        plan.Mode
	Plan        *plan.Plan
	Location    ggml.Location
	SourceDir   string
	BuildDir    string
	ArtifactDir string
	Link        link.Directive
	Headers     []string
	Version     string
}

// newBuildSystem is the executor constructor; swapped in tests.
var newBuildSystem = func(sourceDir, buildDir, installDir string, verbose bool) buildsys.BuildSystem {
	c := cmake.New(sourceDir, buildDir, installDir)
	if verbose {
		// stdout stays clean for emitted instructions
		c.Stdout = os.Stderr
		c.Stderr = os.Stderr
	}
	return c
}

// Plan resolves the full configuration for opts without touching the
// native build system: locate, select mode, assemble the plan, derive the
// link directive and binding headers. Everything Run does afterwards is
// mechanical.
func Plan(opts Options) (*Result, error) {
	features, err := plan.ParseFeatures(opts.Features)
	if err != nil {
		return nil, err
	}

	loc := ggml.Locate()
	mode, err := plan.SelectMode(opts.SharedGGML, loc)
	if err != nil {
		return nil, err
	}

	p, err := plan.New(mode, loc, plan.Options{
		Features:        features,
		Debug:           opts.Debug,
		BLASIncludeDirs: os.Getenv("BLAS_INCLUDE_DIRS"),
		AMDGPUTargets:   os.Getenv("AMDGPU_TARGETS"),
		Passthrough:     plan.Passthrough(os.Environ()),
	})
	if err != nil {
		return nil, err
	}

	sourceDir := opts.SourceDir
	if sourceDir == "" {
		if sourceDir, err = env.SourceDir(); err != nil {
			return nil, err
		}
	}
	buildDir := opts.BuildDir
	if buildDir == "" {
		if buildDir, err = env.BuildDir(mode.String()); err != nil {
			return nil, err
		}
	}
	artifactDir := filepath.Join(buildDir, "install")

	return &Result{
		Mode:        mode,
		Plan:        p,
		Location:    loc,
		SourceDir:   sourceDir,
		BuildDir:    buildDir,
		ArtifactDir: artifactDir,
		Link:        link.Emit(mode, artifactDir, features, loc),
		Headers:     bindings.SelectHeaders(mode, sourceDir, loc),
	}, nil
}

// Run executes the full pipeline. The native build is a blocking wait with
// no timeout; bound it with ctx if needed and treat expiry as a build
// failure. Failures are never retried: a native rebuild without a
// configuration change reproduces the same failure.
func Run(ctx context.Context, opts Options) (*Result, error) {
	r, err := Plan(opts)
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	logger.Info().
		Stringer("mode", r.Mode).
		Str("source", r.SourceDir).
		Str("build", r.BuildDir).
		Msg("configuring whisper.cpp")

	if err := ensureSource(ctx, r.SourceDir, opts.Tag, logger); err != nil {
		return nil, err
	}

	ver, err := Version(r.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read whisper.cpp version: %w", err)
	}
	if !semver.IsValid("v" + ver) {
		logger.Warn().Str("version", ver).Msg("unexpected whisper.cpp version format")
	}
	r.Version = ver

	sys := newBuildSystem(r.SourceDir, filepath.Join(r.BuildDir, "build"), r.ArtifactDir, opts.Verbose)
	for _, d := range r.Plan.Defines() {
		sys.Define(d.Key, d.Value)
	}
	for _, flag := range r.Plan.CXXFlags {
		sys.CXXFlag(flag)
	}
	// Multi-config generators ignore the CMAKE_BUILD_TYPE define; the
	// executor also needs it for the --config build argument.
	if bt, ok := r.Plan.Get("CMAKE_BUILD_TYPE"); ok {
		sys.BuildType(bt)
	}

	if err := sys.Configure(); err != nil {
		return nil, err
	}
	if err := sys.Build(); err != nil {
		return nil, err
	}
	if err := sys.Install(); err != nil {
		return nil, err
	}
	r.ArtifactDir = sys.OutputDir()

	logger.Info().Str("artifact", r.ArtifactDir).Str("version", ver).Msg("whisper.cpp built")
	return r, nil
}
