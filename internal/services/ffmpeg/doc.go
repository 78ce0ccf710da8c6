// Package ffmpeg drives the external ffmpeg encoder that renders the
// timelapse.
//
// The package owns three concerns:
//   - Encoder selection: mapping the configured preference (auto, nvidia,
//     amd, intel, cpu) to a concrete codec by probing `ffmpeg -encoders`.
//   - Command construction: translating the encode request (frame list,
//     pacing, blur geometry, duration plan, quality) into an ffmpeg argv.
//   - Execution: running ffmpeg and surfacing its diagnostics verbatim when
//     it fails.
//
// ffmpeg is treated strictly as a black box; no pixels are touched in
// process.
package ffmpeg
