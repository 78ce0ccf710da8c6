// Package preflight provides readiness checks for the filesystem paths and
// external binaries a render depends on.
//
// The CLI "timelapse status" command uses these checks to display health
// before the user commits to a render: source and staging directories,
// the optional music file, and the ffmpeg/ffprobe binaries.
package preflight
