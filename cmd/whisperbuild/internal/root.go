package internal

import (
	"errors"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/joshatdia/whisper-rs-ggml/internal/plan"
)

// logger writes human-readable progress to stderr; stdout is reserved for
// the emitted build instructions.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "whisperbuild",
	Short: "whisperbuild orchestrates the whisper.cpp native build",
	Long: `whisperbuild configures and runs the whisper.cpp native build and emits
the link and header instructions the enclosing build consumes. By default it
compiles the bundled ggml; with --shared-ggml it links against a ggml already
built and published by a sibling build unit, so a final artifact that embeds
both whisper and another ggml consumer ends up with a single copy of ggml.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	logger.Error().Msg(err.Error())

	var cfgErr *plan.ConfigError
	if errors.As(err, &cfgErr) {
		os.Exit(2)
	}
	os.Exit(1)
}
