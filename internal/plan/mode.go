// Package plan decides how whisper.cpp obtains ggml and assembles the
// native-build configuration for that decision.
package plan

import (
	"fmt"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
)

// Mode selects where whisper.cpp's ggml comes from.
type Mode int

const (
	// ModeEmbedded compiles ggml from the bundled whisper.cpp source.
	ModeEmbedded Mode = iota
	// ModeShared links against a ggml published by a sibling build unit.
	ModeShared
)

func (m Mode) String() string {
	switch m {
	case ModeEmbedded:
		return "embedded"
	case ModeShared:
		return "shared"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ConfigError reports an invalid or incomplete build configuration. It is
// detected before any native build work begins and is never retried.
type ConfigError struct {
	Setting string // the flag or environment key at fault
	Reason  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Setting, e.Reason)
}

// SelectMode picks the build mode from the requested feature and the
// located shared ggml. Requesting shared ggml without a published location
// is a hard error: silently falling back to an embedded copy would
// reintroduce the duplicate-symbol failure the shared mode exists to
// prevent.
func SelectMode(requestShared bool, loc ggml.Location) (Mode, error) {
	if !requestShared {
		return ModeEmbedded, nil
	}
	if !loc.Found() {
		return 0, &ConfigError{
			Setting: ggml.EnvRoot,
			Reason:  "shared ggml requested but no shared library location was published",
		}
	}
	return ModeShared, nil
}
