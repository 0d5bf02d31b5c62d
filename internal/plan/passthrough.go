package plan

import "strings"

// UseSystemGGML is the CMake switch that flips whisper.cpp from building
// its embedded ggml to resolving a system copy. It is owned by the mode
// decision and is never accepted from passthrough.
const UseSystemGGML = "WHISPER_USE_SYSTEM_GGML"

// Passthrough prefixes recognized from the caller's environment.
var passthroughPrefixes = []string{"WHISPER_", "CMAKE_"}

// reservedKeys are orchestrator-managed settings excluded from passthrough
// even when their prefix matches.
var reservedKeys = map[string]bool{
	UseSystemGGML: true,
}

// Reserved reports whether key is orchestrator-managed.
func Reserved(key string) bool {
	return reservedKeys[key]
}

// Passthrough filters environ (os.Environ form, "KEY=VALUE") down to the
// recognized namespace prefixes, minus reserved keys. Order is preserved
// so later entries keep their usual wins-last semantics when merged.
func Passthrough(environ []string) []Define {
	var out []Define
	for _, kv := range environ {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || Reserved(key) {
			continue
		}
		for _, prefix := range passthroughPrefixes {
			if strings.HasPrefix(key, prefix) {
				out = append(out, Define{Key: key, Value: value})
				break
			}
		}
	}
	return out
}
