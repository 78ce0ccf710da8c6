package services_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/OliverBailey/runelite-timelapse/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrEncoderFailed, "encode", "ffmpeg", "exit status 1", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrEncoderFailed) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"encode", "ffmpeg", "exit status 1"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker for nil marker, got %v", err)
	}
	if !strings.Contains(err.Error(), "service failure") {
		t.Fatalf("expected placeholder detail, got %q", err.Error())
	}
}

func TestExitCodeMapping(t *testing.T) {
	configErr := services.Wrap(services.ErrConfiguration, "config", "load", "missing screenshots dir", nil)
	if code := services.ExitCode(configErr); code != 2 {
		t.Fatalf("expected exit 2 for configuration error, got %d", code)
	}

	missingErr := services.Wrap(services.ErrNoScreenshots, "collect", "scan", "no frames", nil)
	if code := services.ExitCode(missingErr); code != 2 {
		t.Fatalf("expected exit 2 for missing screenshots, got %d", code)
	}

	lockedErr := services.Wrap(services.ErrLocked, "render", "lock", "held", nil)
	if code := services.ExitCode(lockedErr); code != 3 {
		t.Fatalf("expected exit 3 for held lock, got %d", code)
	}

	encodeErr := services.Wrap(services.ErrEncoderFailed, "encode", "ffmpeg", "boom", errors.New("exit status 1"))
	if code := services.ExitCode(encodeErr); code != 1 {
		t.Fatalf("expected exit 1 for encoder failure, got %d", code)
	}

	if code := services.ExitCode(nil); code != 0 {
		t.Fatalf("expected exit 0 for nil error, got %d", code)
	}
}
