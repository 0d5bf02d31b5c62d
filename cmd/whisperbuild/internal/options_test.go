package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newTestCmd(t *testing.T, flags *buildFlags, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags.register(cmd)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "build.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestOptionsDefaults(t *testing.T) {
	var flags buildFlags
	cmd := newTestCmd(t, &flags)

	opts, err := flags.options(cmd)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.SharedGGML {
		t.Error("SharedGGML should default to false")
	}
	if opts.Debug {
		t.Error("Debug should default to false")
	}
	if len(opts.Features) != 0 {
		t.Errorf("Features = %v, want empty", opts.Features)
	}
}

func TestOptionsFromConfig(t *testing.T) {
	path := writeConfig(t, "shared_ggml: true\nfeatures: [cuda, openmp]\ndebug: true\n")

	var flags buildFlags
	cmd := newTestCmd(t, &flags, "--config", path)

	opts, err := flags.options(cmd)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if !opts.SharedGGML {
		t.Error("SharedGGML should come from the config file")
	}
	if !opts.Debug {
		t.Error("Debug should come from the config file")
	}
	if len(opts.Features) != 2 || opts.Features[0] != "cuda" || opts.Features[1] != "openmp" {
		t.Errorf("Features = %v, want [cuda openmp]", opts.Features)
	}
}

func TestOptionsFlagsWinOverConfig(t *testing.T) {
	path := writeConfig(t, "shared_ggml: true\nfeatures: [cuda]\n")

	var flags buildFlags
	cmd := newTestCmd(t, &flags, "--config", path, "--shared-ggml=false", "--features", "vulkan")

	opts, err := flags.options(cmd)
	if err != nil {
		t.Fatalf("options: %v", err)
	}
	if opts.SharedGGML {
		t.Error("explicit --shared-ggml=false should win over the config file")
	}
	if len(opts.Features) != 1 || opts.Features[0] != "vulkan" {
		t.Errorf("Features = %v, want [vulkan]", opts.Features)
	}
}

func TestOptionsBadConfig(t *testing.T) {
	var flags buildFlags
	cmd := newTestCmd(t, &flags, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	if _, err := flags.options(cmd); err == nil {
		t.Error("expected error for missing config file")
	}
}
