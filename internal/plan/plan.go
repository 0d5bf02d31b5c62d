package plan

import (
	"os"
	"runtime"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
)

// Define is one configuration key/value handed to the native build system.
type Define struct {
	Key   string
	Value string
}

// Plan is the assembled native-build configuration: insertion-ordered
// defines, extra compiler flags and extra include directories. It is built
// incrementally and must not be mutated after handoff to the executor.
type Plan struct {
	Mode Mode

	defines []Define
	index   map[string]int

	CXXFlags    []string
	IncludeDirs []string
}

// Set records a define, replacing any previous value for the key in place.
func (p *Plan) Set(key, value string) {
	if i, ok := p.index[key]; ok {
		p.defines[i].Value = value
		return
	}
	p.index[key] = len(p.defines)
	p.defines = append(p.defines, Define{Key: key, Value: value})
}

// SetBool records an ON/OFF define.
func (p *Plan) SetBool(key string, on bool) {
	v := "OFF"
	if on {
		v = "ON"
	}
	p.Set(key, v)
}

// Get returns the value recorded for key.
func (p *Plan) Get(key string) (string, bool) {
	i, ok := p.index[key]
	if !ok {
		return "", false
	}
	return p.defines[i].Value, true
}

// Defines returns the defines in insertion order.
func (p *Plan) Defines() []Define {
	out := make([]Define, len(p.defines))
	copy(out, p.defines)
	return out
}

// Options carries the caller-supplied toggles the plan derives from.
// Ambient state is read once by the caller and threaded through here;
// the builder itself only touches the disk to probe the cmake package dir.
type Options struct {
	Features FeatureSet
	Debug    bool

	// BLASIncludeDirs is required when the openblas feature is enabled in
	// embedded mode (the value of the BLAS_INCLUDE_DIRS environment key).
	BLASIncludeDirs string

	// AMDGPUTargets narrows the hipblas build to specific GPU architectures
	// (the value of the AMDGPU_TARGETS environment key); empty builds all.
	AMDGPUTargets string

	// Passthrough overrides, merged last so they win over defaults. The
	// reserved mode-control key is skipped even if present.
	Passthrough []Define
}

// New assembles the native-build plan for the chosen mode.
func New(mode Mode, loc ggml.Location, opts Options) (*Plan, error) {
	p := &Plan{Mode: mode, index: make(map[string]int)}

	p.SetBool("BUILD_SHARED_LIBS", false)
	p.SetBool("WHISPER_ALL_WARNINGS", false)
	p.SetBool("WHISPER_ALL_WARNINGS_3RD_PARTY", false)
	p.SetBool("WHISPER_BUILD_TESTS", false)
	p.SetBool("WHISPER_BUILD_EXAMPLES", false)
	p.SetBool("CMAKE_POSITION_INDEPENDENT_CODE", true)

	if runtime.GOOS == "windows" {
		p.CXXFlags = append(p.CXXFlags, "/utf-8")
	}

	if opts.Debug {
		// Full debug builds of whisper.cpp are too slow to be usable, so
		// debug means optimized-with-symbols.
		p.Set("CMAKE_BUILD_TYPE", "RelWithDebInfo")
		p.CXXFlags = append(p.CXXFlags, "-DWHISPER_DEBUG")
	} else {
		p.Set("CMAKE_BUILD_TYPE", "Release")
	}

	// CoreML is a whisper-level feature, configured in both modes.
	if opts.Features.Enabled(FeatureCoreML) {
		p.SetBool("WHISPER_COREML", true)
		p.Set("WHISPER_COREML_ALLOW_FALLBACK", "1")
	}
	if !opts.Features.Enabled(FeatureOpenMP) {
		p.SetBool("GGML_OPENMP", false)
	}

	switch mode {
	case ModeShared:
		if err := p.useSharedGGML(loc); err != nil {
			return nil, err
		}
	case ModeEmbedded:
		if err := p.embeddedBackends(opts); err != nil {
			return nil, err
		}
	}

	// User overrides win over any default above, except the mode control.
	for _, d := range opts.Passthrough {
		if Reserved(d.Key) {
			continue
		}
		p.Set(d.Key, d.Value)
	}

	return p, nil
}

// useSharedGGML points the native build at the collaborator's install tree
// instead of the bundled ggml source.
func (p *Plan) useSharedGGML(loc ggml.Location) error {
	p.Set(UseSystemGGML, "ON")
	p.Set("CMAKE_PREFIX_PATH", loc.Prefix())

	// A package-config dir is a more specific hint than the prefix; CMake
	// resolves prefixes ambiguously when several packages share a root, so
	// point ggml_DIR straight at it when it exists.
	if loc.CMakeDir != "" {
		if fi, err := os.Stat(loc.CMakeDir); err == nil && fi.IsDir() {
			p.Set("ggml_DIR", loc.CMakeDir)
		}
	}
	if loc.IncludeDir != "" {
		p.Set("GGML_INCLUDE_DIR", loc.IncludeDir)
		p.IncludeDirs = append(p.IncludeDirs, loc.IncludeDir)
	}
	return nil
}

// embeddedBackends maps each enabled backend feature to the GGML switches
// that compile it into the bundled build. ggml backends are the
// collaborator's concern in shared mode, so this runs for embedded only.
func (p *Plan) embeddedBackends(opts Options) error {
	if opts.Features.Enabled(FeatureCUDA) {
		p.SetBool("GGML_CUDA", true)
		p.Set("CMAKE_CUDA_FLAGS", "-Xcompiler=-fPIC")
	}
	if opts.Features.Enabled(FeatureVulkan) {
		p.SetBool("GGML_VULKAN", true)
	}
	if opts.Features.Enabled(FeatureHIPBLAS) {
		p.SetBool("GGML_HIP", true)
		p.Set("CMAKE_C_COMPILER", "hipcc")
		p.Set("CMAKE_CXX_COMPILER", "hipcc")
		if opts.AMDGPUTargets != "" {
			p.Set("AMDGPU_TARGETS", opts.AMDGPUTargets)
		}
	}
	if opts.Features.Enabled(FeatureOpenBLAS) {
		if opts.BLASIncludeDirs == "" {
			return &ConfigError{
				Setting: "BLAS_INCLUDE_DIRS",
				Reason:  "must be set when the openblas feature is enabled",
			}
		}
		p.SetBool("GGML_BLAS", true)
		p.Set("GGML_BLAS_VENDOR", "OpenBLAS")
		p.Set("BLAS_INCLUDE_DIRS", opts.BLASIncludeDirs)
	}
	if opts.Features.Enabled(FeatureMetal) {
		p.SetBool("GGML_METAL", true)
		p.SetBool("GGML_METAL_NDEBUG", true)
		p.SetBool("GGML_METAL_EMBED_LIBRARY", true)
	} else {
		// Metal is on by default in whisper.cpp; disable it explicitly.
		p.SetBool("GGML_METAL", false)
	}
	return nil
}
