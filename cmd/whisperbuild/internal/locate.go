package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
)

var locateCmd = &cobra.Command{
	Use:   "locate",
	Short: "Show the shared ggml location published by the environment",
	RunE:  runLocate,
}

func init() {
	rootCmd.AddCommand(locateCmd)
}

func runLocate(cmd *cobra.Command, args []string) error {
	loc := ggml.Locate()
	if !loc.Found() {
		fmt.Printf("shared ggml: not published (%s unset)\n", ggml.EnvRoot)
		return nil
	}
	fmt.Printf("lib dir: %s\n", loc.LibDir)
	fmt.Printf("include dir: %s\n", loc.IncludeDir)
	fmt.Printf("cmake config dir: %s\n", loc.CMakeDir)
	fmt.Printf("prefix: %s\n", loc.Prefix())
	return nil
}
