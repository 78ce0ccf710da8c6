package deps

import (
	"os/exec"
	"strings"
)

// ResolveFFmpegPath returns the ffmpeg binary the encode will execute,
// preferring the PATH-resolved location so status output shows the actual
// file.
func ResolveFFmpegPath(binary string) string {
	return resolveBinary(binary, "ffmpeg")
}

// ResolveFFprobePath returns the ffprobe binary used for music probing.
func ResolveFFprobePath(binary string) string {
	return resolveBinary(binary, "ffprobe")
}

func resolveBinary(binary, fallback string) string {
	name := strings.TrimSpace(binary)
	if name == "" {
		name = fallback
	}
	if resolved, err := exec.LookPath(name); err == nil {
		return resolved
	}
	return name
}
