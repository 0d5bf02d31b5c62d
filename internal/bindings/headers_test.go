package bindings

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/joshatdia/whisper-rs-ggml/internal/ggml"
	"github.com/joshatdia/whisper-rs-ggml/internal/plan"
)

func TestSelectHeadersEmbedded(t *testing.T) {
	dirs := SelectHeaders(plan.ModeEmbedded, "/src/whisper.cpp", ggml.Location{})

	if len(dirs) == 0 {
		t.Fatal("SelectHeaders returned no directories")
	}
	want := filepath.Join("/src/whisper.cpp", "ggml", "include")
	if dirs[0] != want {
		t.Errorf("dirs[0] = %q, want bundled ggml headers %q first", dirs[0], want)
	}
}

func TestSelectHeadersShared(t *testing.T) {
	loc := ggml.Location{LibDir: "/opt/foo/lib", IncludeDir: "/opt/foo/include"}
	dirs := SelectHeaders(plan.ModeShared, "/src/whisper.cpp", loc)

	if dirs[0] != "/opt/foo/include" {
		t.Errorf("dirs[0] = %q, want shared include dir first", dirs[0])
	}
	// Never both copies of the ggml headers.
	bundled := filepath.Join("/src/whisper.cpp", "ggml", "include")
	for _, d := range dirs {
		if d == bundled {
			t.Errorf("shared mode includes bundled ggml headers %q", d)
		}
	}
}

func TestSelectHeadersMutuallyExclusive(t *testing.T) {
	loc := ggml.Location{LibDir: "/opt/foo/lib", IncludeDir: "/opt/foo/include"}

	embedded := SelectHeaders(plan.ModeEmbedded, "/src", loc)
	for _, d := range embedded {
		if d == loc.IncludeDir {
			t.Errorf("embedded mode includes shared headers %q", d)
		}
	}
}

func TestSelectHeadersWhisperDirs(t *testing.T) {
	dirs := SelectHeaders(plan.ModeEmbedded, "/src", ggml.Location{})
	joined := strings.Join(dirs, " ")
	for _, want := range []string{"/src", filepath.Join("/src", "include")} {
		if !strings.Contains(joined, want) {
			t.Errorf("dirs = %v, want %q present", dirs, want)
		}
	}
}

func TestClangArgs(t *testing.T) {
	args := ClangArgs([]string{"/a", "/b"})
	want := []string{"-I/a", "-I/b"}
	if len(args) != len(want) {
		t.Fatalf("ClangArgs = %v, want %v", args, want)
	}
	for i := range want {
		if args[i] != want[i] {
			t.Errorf("ClangArgs[%d] = %q, want %q", i, args[i], want[i])
		}
	}
}
