package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrConfiguration     = errors.New("configuration error")
	ErrDirectoryNotFound = errors.New("directory not found")
	ErrNoScreenshots     = errors.New("no screenshots found")
	ErrMusicUnreadable   = errors.New("music file unreadable")
	ErrDurationProbe     = errors.New("duration probe failed")
	ErrEncoderFailed     = errors.New("encoder failed")
	ErrLocked            = errors.New("render already in progress")
	ErrTransient         = errors.New("transient failure")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later classification. The marker should be one of the
// exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// ExitCode maps a render error to the process exit code the CLI reports.
// Input and configuration problems exit 2 so wrapper scripts can tell them
// apart from encoder failures, and a held render lock exits 3.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrConfiguration),
		errors.Is(err, ErrDirectoryNotFound),
		errors.Is(err, ErrNoScreenshots),
		errors.Is(err, ErrMusicUnreadable):
		return 2
	case errors.Is(err, ErrLocked):
		return 3
	default:
		return 1
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
