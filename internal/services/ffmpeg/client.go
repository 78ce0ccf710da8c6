package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"strings"

	"github.com/OliverBailey/runelite-timelapse/internal/services"
)

var commandContext = exec.CommandContext

// diagnosticTailLines bounds how much ffmpeg stderr is carried into the
// error message. ffmpeg prints its actual failure at the end of the stream.
const diagnosticTailLines = 20

// Option configures the client.
type Option func(*Client)

// WithBinary overrides the default ffmpeg binary name.
func WithBinary(binary string) Option {
	return func(c *Client) {
		if strings.TrimSpace(binary) != "" {
			c.binary = binary
		}
	}
}

// Client wraps the ffmpeg command-line encoder.
type Client struct {
	binary string
}

// NewClient constructs a client using defaults.
func NewClient(opts ...Option) *Client {
	client := &Client{binary: "ffmpeg"}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Binary returns the configured ffmpeg executable name.
func (c *Client) Binary() string {
	return c.binary
}

// Encode runs ffmpeg with the argv built from req. Output goes to
// req.OutputPath; on failure the tail of ffmpeg's stderr is propagated
// verbatim so the user sees the encoder's own diagnostics.
func (c *Client) Encode(ctx context.Context, req Request) error {
	args := BuildArgs(req)
	cmd := commandContext(ctx, c.binary, args...)

	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return services.Wrap(services.ErrEncoderFailed, "encode", "ffmpeg",
			diagnosticTail(stderr.String()), err)
	}
	return nil
}

func diagnosticTail(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > diagnosticTailLines {
		lines = lines[len(lines)-diagnosticTailLines:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
