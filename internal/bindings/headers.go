// Package bindings selects the include directories that feed the FFI
// binding generator.
package bindings

import (
	"path/filepath"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
	"github.com/joshatdia/whisper-rs-ggml/internal/plan"
)

// SelectHeaders returns the include directories for the binding generator,
// ggml first so whisper.h resolves ggml.h against the right copy. The
// bundled ggml headers and the shared ones are mutually exclusive: the
// generator must never see two declarations of the same symbol.
func SelectHeaders(mode plan.Mode, sourceDir string, loc ggml.Location) []string {
	var dirs []string
	switch mode {
	case plan.ModeShared:
		if loc.IncludeDir != "" {
			dirs = append(dirs, loc.IncludeDir)
		}
	default:
		dirs = append(dirs, filepath.Join(sourceDir, "ggml", "include"))
	}
	dirs = append(dirs, sourceDir, filepath.Join(sourceDir, "include"))
	return dirs
}

// ClangArgs renders include directories as clang -I arguments.
func ClangArgs(dirs []string) []string {
	args := make([]string, 0, len(dirs))
	for _, d := range dirs {
		args = append(args, "-I"+d)
	}
	return args
}
