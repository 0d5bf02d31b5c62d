package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshatdia/whisper-rs-ggml/internal/build"
	"github.com/joshatdia/whisper-rs-ggml/internal/config"
)

// buildFlags is the flag set shared by the build and plan commands.
type buildFlags struct {
	configPath string
	sharedGGML bool
	features   []string
	debug      bool
	sourceDir  string
	tag        string
	buildDir   string
	verbose    bool
}

func (f *buildFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "Optional build config file (yaml/toml/json)")
	cmd.Flags().BoolVar(&f.sharedGGML, "shared-ggml", false, "Link against a shared ggml published by a sibling build unit")
	cmd.Flags().StringSliceVar(&f.features, "features", nil, "Backend features to enable (cuda, vulkan, metal, coreml, openblas, hipblas, openmp)")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "Build optimized with debug symbols (RelWithDebInfo)")
	cmd.Flags().StringVar(&f.sourceDir, "source", "", "whisper.cpp source directory (default: cached checkout)")
	cmd.Flags().StringVar(&f.tag, "tag", "", "whisper.cpp release tag to clone (default: default branch)")
	cmd.Flags().StringVar(&f.buildDir, "build-dir", "", "Build scratch directory (default: under the user cache dir)")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "Stream native build output to stderr")
}

// options resolves flags against the optional config file. Flags set on
// the command line win over file values.
func (f *buildFlags) options(cmd *cobra.Command) (build.Options, error) {
	opts := build.Options{
		SharedGGML: f.sharedGGML,
		Features:   f.features,
		Debug:      f.debug,
		SourceDir:  f.sourceDir,
		Tag:        f.tag,
		BuildDir:   f.buildDir,
		Verbose:    f.verbose,
		Logger:     logger,
	}
	if f.configPath == "" {
		return opts, nil
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return opts, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if !flags.Changed("shared-ggml") {
		opts.SharedGGML = cfg.SharedGGML
	}
	if !flags.Changed("features") && len(cfg.Features) > 0 {
		opts.Features = cfg.Features
	}
	if !flags.Changed("debug") {
		opts.Debug = cfg.Debug
	}
	if !flags.Changed("source") && cfg.SourceDir != "" {
		opts.SourceDir = cfg.SourceDir
	}
	if !flags.Changed("tag") && cfg.Tag != "" {
		opts.Tag = cfg.Tag
	}
	if !flags.Changed("build-dir") && cfg.BuildDir != "" {
		opts.BuildDir = cfg.BuildDir
	}
	return opts, nil
}
