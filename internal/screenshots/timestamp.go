package screenshots

import (
	"regexp"
	"time"
)

const timestampLayout = "2006-01-02_15-04-05"

var timestampPattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}`)

// ParseTimestamp extracts the capture time embedded in a screenshot filename.
// RuneLite names screenshots "YYYY-MM-DD_HH-MM-SS" plus an optional
// disambiguation suffix. Filenames without such a substring, or whose
// substring is not a real calendar time, are rejected rather than
// approximated.
func ParseTimestamp(name string) (time.Time, bool) {
	match := timestampPattern.FindString(name)
	if match == "" {
		return time.Time{}, false
	}
	ts, err := time.Parse(timestampLayout, match)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}
