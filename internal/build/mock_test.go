package build

import "github.com/joshatdia/whisper-rs-ggml/pkgs/buildsys"

// fakeBuildSystem records calls instead of invoking cmake.
type fakeBuildSystem struct {
	sourceDir  string
	installDir string
	defines    map[string]string
	cxxflags   []string
	buildType  string
	calls      []string

	configureErr error
	buildErr     error
	installErr   error
}

var _ buildsys.BuildSystem = (*fakeBuildSystem)(nil)

func newFakeBuildSystem() *fakeBuildSystem {
	return &fakeBuildSystem{defines: make(map[string]string)}
}

func (f *fakeBuildSystem) Source(dir string)     { f.sourceDir = dir }
func (f *fakeBuildSystem) InstallDir(dir string) { f.installDir = dir }

func (f *fakeBuildSystem) Define(key, value string) { f.defines[key] = value }
func (f *fakeBuildSystem) DefineBool(key string, value bool) {
	v := "OFF"
	if value {
		v = "ON"
	}
	f.defines[key] = v
}
func (f *fakeBuildSystem) CXXFlag(flag string)   { f.cxxflags = append(f.cxxflags, flag) }
func (f *fakeBuildSystem) BuildType(name string) { f.buildType = name }
func (f *fakeBuildSystem) Env(key, val string)   {}

func (f *fakeBuildSystem) Configure(args ...string) error {
	f.calls = append(f.calls, "configure")
	return f.configureErr
}

func (f *fakeBuildSystem) Build(args ...string) error {
	f.calls = append(f.calls, "build")
	return f.buildErr
}

func (f *fakeBuildSystem) Install(args ...string) error {
	f.calls = append(f.calls, "install")
	return f.installErr
}

func (f *fakeBuildSystem) OutputDir() string { return f.installDir }
