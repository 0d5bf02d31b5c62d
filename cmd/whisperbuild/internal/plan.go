package internal

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshatdia/whisper-rs-ggml/internal/bindings"
	"github.com/joshatdia/whisper-rs-ggml/internal/build"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the build plan without running any native tool",
	Long: `Plan resolves the build mode, cmake defines and link instructions the
build command would use, and prints them without invoking cmake.`,
	RunE: runPlan,
}

var planOpts buildFlags

func init() {
	planOpts.register(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	opts, err := planOpts.options(cmd)
	if err != nil {
		return err
	}
	result, err := build.Plan(opts)
	if err != nil {
		return err
	}

	fmt.Printf("mode: %s\n", result.Mode)
	fmt.Printf("source: %s\n", result.SourceDir)
	fmt.Printf("build dir: %s\n", result.BuildDir)
	for _, d := range result.Plan.Defines() {
		fmt.Printf("define: %s=%s\n", d.Key, d.Value)
	}
	for _, flag := range result.Plan.CXXFlags {
		fmt.Printf("cxxflag: %s\n", flag)
	}
	if err := result.Link.WriteCargo(os.Stdout); err != nil {
		return err
	}
	for _, arg := range bindings.ClangArgs(result.Headers) {
		fmt.Printf("bindgen: %s\n", arg)
	}
	return nil
}
