//go:build windows

package env

// Windows has no cheap access(2) equivalent; MkdirAll succeeding is enough.
func writable(dir string) bool {
	return true
}
