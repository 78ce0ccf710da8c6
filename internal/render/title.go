package render

import (
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const fallbackTitle = "Account Timelapse"

// DeriveTitle builds the video title metadata from the screenshots directory
// name. RuneLite keeps screenshots under a per-account folder, so the
// directory basename usually carries the account name.
func DeriveTitle(screenshotsDir string) string {
	if screenshotsDir == "" {
		return fallbackTitle
	}
	base := filepath.Base(filepath.Clean(screenshotsDir))
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range base {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return fallbackTitle
	}
	return cases.Title(language.Und).String(title) + " Timelapse"
}
