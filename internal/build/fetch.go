package build

import (
	"bytes"
	"context"
	"os"
	"os/exec"

	"github.com/rs/zerolog"

	"github.com/joshatdia/whisper-rs-ggml/pkgs/buildsys"
)

const whisperRepo = "https://github.com/ggerganov/whisper.cpp.git"

// ensureSource makes sure a whisper.cpp checkout exists at dir, cloning a
// shallow copy if it is missing or empty. A non-empty tag pins the clone
// to that release; it is ignored when a checkout already exists.
func ensureSource(ctx context.Context, dir, tag string, logger zerolog.Logger) error {
	if dirHasContents(dir) {
		return nil
	}
	logger.Info().Str("dir", dir).Str("tag", tag).Msg("whisper.cpp source not found, cloning")

	args := []string{"clone", "--depth", "1"}
	if tag != "" {
		args = append(args, "--branch", tag)
	}
	args = append(args, whisperRepo, dir)
	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	if err := cmd.Run(); err != nil {
		return &buildsys.CommandError{
			Name:   "git",
			Args:   args,
			Output: out.String(),
			Err:    err,
		}
	}
	return nil
}

func dirHasContents(dir string) bool {
	entries, err := os.ReadDir(dir)
	return err == nil && len(entries) > 0
}
