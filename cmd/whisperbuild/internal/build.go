package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshatdia/whisper-rs-ggml/internal/build"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build whisper.cpp and print link instructions",
	Long: `Build configures, compiles and installs whisper.cpp, then prints the
resulting link instructions on stdout in cargo's build-script format.
All diagnostics go to stderr so stdout stays machine-readable.`,
	RunE: runBuild,
}

var buildOpts buildFlags

func init() {
	buildOpts.register(buildCmd)
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	opts, err := buildOpts.options(cmd)
	if err != nil {
		return err
	}
	result, err := build.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	if err := result.Link.WriteCargo(os.Stdout); err != nil {
		return err
	}
	for _, dir := range result.Headers {
		fmt.Printf("cargo:include=%s\n", dir)
	}
	if result.Version != "" {
		fmt.Printf("cargo:WHISPER_CPP_VERSION=%s\n", result.Version)
	}
	return nil
}
