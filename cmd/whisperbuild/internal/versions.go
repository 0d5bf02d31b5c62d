package internal

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/mod/semver"

	"github.com/joshatdia/whisper-rs-ggml/internal/build"
)

var versionsCmd = &cobra.Command{
	Use:   "versions",
	Short: "List whisper.cpp release tags",
	Long: `Versions lists the tags of the whisper.cpp repository, newest release
first. Any of them can be passed to build via --tag.`,
	RunE: runVersions,
}

var versionsAll bool

func init() {
	versionsCmd.Flags().BoolVar(&versionsAll, "all", false, "Include prerelease and non-release tags")
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	tags, err := build.Tags(cmd.Context())
	if err != nil {
		return err
	}
	latest := build.LatestRelease(tags)
	for _, tag := range tags {
		release := semver.IsValid(tag) && semver.Prerelease(tag) == ""
		if !versionsAll && !release {
			continue
		}
		if tag == latest {
			fmt.Printf("%s (latest)\n", tag)
			continue
		}
		fmt.Println(tag)
	}
	return nil
}
