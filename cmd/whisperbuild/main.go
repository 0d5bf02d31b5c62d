package main

import "github.com/joshatdia/whisper-rs-ggml/cmd/whisperbuild/internal"

func main() {
	internal.Execute()
}
