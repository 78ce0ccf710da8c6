// Package render orchestrates one timelapse run end to end: collect the
// screenshots, derive the title, scale the blur region, probe the soundtrack,
// build the duration plan, select an encoder, encode into a staging
// directory, and promote the finished video to its final path.
//
// A run is sequential and stateless; the only cross-run coordination is a
// file lock that keeps two renders from racing on the same output. Failures
// abort immediately, the staging directory is removed, and the final output
// path is never left with a partial file.
package render
