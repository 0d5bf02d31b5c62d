package build

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const versionPrefix = `project("whisper.cpp" VERSION `

// Version reads the whisper.cpp version declared in the checkout's
// top-level CMakeLists.txt.
func Version(sourceDir string) (string, error) {
	path := filepath.Join(sourceDir, "CMakeLists.txt")
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if suffix, ok := strings.CutPrefix(scanner.Text(), versionPrefix); ok {
			return strings.TrimRight(suffix, ")"), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("no version declaration found in %s", path)
}
