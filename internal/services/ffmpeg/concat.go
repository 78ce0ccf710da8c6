package ffmpeg

import (
	"fmt"
	"os"
	"strings"
)

// WriteConcatList writes an ffmpeg concat-demuxer list file naming each
// frame in order. Paths are wrapped in single quotes with embedded quotes
// escaped the way the demuxer expects (' closes, \' emits, ' reopens).
func WriteConcatList(path string, frames []string) error {
	if len(frames) == 0 {
		return fmt.Errorf("concat list: no frames")
	}
	var b strings.Builder
	for _, frame := range frames {
		b.WriteString("file '")
		b.WriteString(strings.ReplaceAll(frame, "'", `'\''`))
		b.WriteString("'\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write concat list: %w", err)
	}
	return nil
}
