package plan

import (
	"sort"
	"strings"
)

// Feature is an optional whisper.cpp build capability, most of them
// accelerated ggml backends. Features are independent and additive;
// enabling several at once is legal.
type Feature string

const (
	FeatureCUDA     Feature = "cuda"
	FeatureVulkan   Feature = "vulkan"
	FeatureMetal    Feature = "metal"
	FeatureCoreML   Feature = "coreml"
	FeatureOpenBLAS Feature = "openblas"
	FeatureHIPBLAS  Feature = "hipblas"
	FeatureOpenMP   Feature = "openmp"
)

var knownFeatures = map[Feature]bool{
	FeatureCUDA:     true,
	FeatureVulkan:   true,
	FeatureMetal:    true,
	FeatureCoreML:   true,
	FeatureOpenBLAS: true,
	FeatureHIPBLAS:  true,
	FeatureOpenMP:   true,
}

// FeatureSet is the set of enabled features.
type FeatureSet map[Feature]bool

// ParseFeatures builds a FeatureSet from user-supplied names.
func ParseFeatures(names []string) (FeatureSet, error) {
	set := make(FeatureSet, len(names))
	for _, name := range names {
		f := Feature(strings.ToLower(strings.TrimSpace(name)))
		if f == "" {
			continue
		}
		if !knownFeatures[f] {
			return nil, &ConfigError{
				Setting: "features",
				Reason:  "unknown feature " + string(f),
			}
		}
		set[f] = true
	}
	return set, nil
}

// Enabled reports whether f is in the set. A nil set has nothing enabled.
func (s FeatureSet) Enabled(f Feature) bool {
	return s[f]
}

// List returns the enabled features in a stable, sorted order.
func (s FeatureSet) List() []Feature {
	out := make([]Feature, 0, len(s))
	for f, on := range s {
		if on {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
