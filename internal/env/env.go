package env

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkDir returns the orchestrator's cache directory, creating it if needed.
func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(userCacheDir, "whisper-rs-ggml")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	if !writable(dir) {
		return "", fmt.Errorf("work dir %s is not writable", dir)
	}
	return dir, nil
}

// BuildDir returns a named build directory under the work dir, creating it
// if needed. Distinct names give invocations distinct output directories so
// they can run in parallel.
func BuildDir(name string) (string, error) {
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(workDir, "build", name)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return dir, nil
}

// SourceDir returns the whisper.cpp source checkout location under the
// work dir. The directory itself is not created; the fetch step owns that.
func SourceDir() (string, error) {
	workDir, err := WorkDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(workDir, "whisper.cpp"), nil
}
