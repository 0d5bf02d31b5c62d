package buildsys

import (
	"fmt"
	"strings"
)

// BuildSystem captures shared capabilities of native build helpers (CMake, etc).
// It keeps the common lifecycle and configuration setup; implementations add
// their own extras.
type BuildSystem interface {
	// Basic paths.
	Source(dir string)
	InstallDir(dir string)

	// Configuration.
	Define(key, value string)
	DefineBool(key string, value bool)
	CXXFlag(flag string)
	BuildType(name string)
	Env(key, val string)

	// Lifecycle.
	Configure(args ...string) error
	Build(args ...string) error
	Install(args ...string) error

	// Where artifacts land.
	OutputDir() string
}

// CommandError reports a native tool invocation that exited non-zero.
// Output carries the tool's diagnostics verbatim so a human can diagnose
// the failure without the caller interpreting it.
type CommandError struct {
	Name   string
	Args   []string
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s %s: %v", e.Name, strings.Join(e.Args, " "), e.Err)
	if out := strings.TrimSpace(e.Output); out != "" {
		msg += "\n" + out
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}
