package build

import (
	"context"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// Tags returns all tags of the whisper.cpp repository using git ls-remote,
// release tags sorted newest first followed by the rest.
func Tags(ctx context.Context) ([]string, error) {
	cmd := exec.CommandContext(ctx, "git", "ls-remote", "--tags", "--refs", whisperRepo)
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("git ls-remote: %w", err)
	}

	var tags []string
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		// Format: <sha>\trefs/tags/<tagname>
		parts := strings.Split(line, "\t")
		if len(parts) != 2 {
			continue
		}
		tags = append(tags, strings.TrimPrefix(parts[1], "refs/tags/"))
	}
	sortTags(tags)
	return tags, nil
}

// sortTags orders semver release tags newest first, with non-release tags
// after them in lexical order.
func sortTags(tags []string) {
	sort.SliceStable(tags, func(i, j int) bool {
		vi, vj := semver.IsValid(tags[i]), semver.IsValid(tags[j])
		if vi != vj {
			return vi
		}
		if vi {
			return semver.Compare(tags[i], tags[j]) > 0
		}
		return tags[i] < tags[j]
	})
}

// LatestRelease picks the newest semver release tag, skipping prereleases.
// It returns "" when tags holds no release.
func LatestRelease(tags []string) string {
	best := ""
	for _, tag := range tags {
		if !semver.IsValid(tag) || semver.Prerelease(tag) != "" {
			continue
		}
		if best == "" || semver.Compare(tag, best) > 0 {
			best = tag
		}
	}
	return best
}
