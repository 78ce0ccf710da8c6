// Package ffprobe provides a typed wrapper around ffprobe JSON output.
//
// This package has no renderer-specific dependencies and could be extracted
// as a standalone library.
//
// Key types:
//   - Result: parsed ffprobe output containing streams and format metadata
//   - Stream: individual audio/video stream properties
//   - Format: container-level metadata (duration, size, format name)
//
// Primary entry point:
//   - Inspect: executes ffprobe and returns a parsed Result
//
// Helper methods on Result provide convenient access to audio stream counts
// and duration parsing for soundtrack validation.
package ffprobe
