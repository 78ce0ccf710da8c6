package ffmpeg

import (
	"context"
	"fmt"
	"strings"

	"github.com/OliverBailey/runelite-timelapse/internal/services"
)

// encoderCodecs maps a hardware preference to the H.264 codec ffmpeg exposes
// for it.
var encoderCodecs = map[string]string{
	"nvidia": "h264_nvenc",
	"amd":    "h264_amf",
	"intel":  "h264_qsv",
	"cpu":    "libx264",
}

// autoProbeOrder is the order auto-detection tries hardware encoders before
// settling on the CPU fallback.
var autoProbeOrder = []string{"nvidia", "amd", "intel"}

// Selection records the outcome of encoder detection. Codec is what the
// encode will use; Requested preserves the configured preference so callers
// can warn when the two disagree.
type Selection struct {
	Requested string
	Codec     string
	Hardware  bool
}

// Fallback reports whether an explicit hardware preference could not be
// honoured.
func (s Selection) Fallback() bool {
	if s.Requested == "auto" || s.Requested == "cpu" {
		return false
	}
	return encoderCodecs[s.Requested] != s.Codec
}

// SelectEncoder resolves preference to a codec available in the local ffmpeg
// build. "cpu" always resolves to libx264. An explicit hardware preference
// that ffmpeg does not list falls back through the auto-detection order and
// finally to libx264 rather than failing the run.
func (c *Client) SelectEncoder(ctx context.Context, preference string) (Selection, error) {
	preference = strings.ToLower(strings.TrimSpace(preference))
	if preference == "" {
		preference = "auto"
	}
	sel := Selection{Requested: preference}

	if preference == "cpu" {
		sel.Codec = encoderCodecs["cpu"]
		return sel, nil
	}

	available, err := c.listEncoders(ctx)
	if err != nil {
		return Selection{}, err
	}

	candidates := autoProbeOrder
	if preference != "auto" {
		if _, ok := encoderCodecs[preference]; !ok {
			return Selection{}, services.Wrap(services.ErrConfiguration, "encoder", "select",
				fmt.Sprintf("unknown encoder preference %q", preference), nil)
		}
		candidates = append([]string{preference}, autoProbeOrder...)
	}

	for _, name := range candidates {
		codec := encoderCodecs[name]
		if strings.Contains(available, codec) {
			sel.Codec = codec
			sel.Hardware = true
			return sel, nil
		}
	}

	sel.Codec = encoderCodecs["cpu"]
	return sel, nil
}

func (c *Client) listEncoders(ctx context.Context) (string, error) {
	cmd := commandContext(ctx, c.binary, "-hide_banner", "-encoders")
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", services.Wrap(services.ErrEncoderFailed, "encoder", "list encoders",
			strings.TrimSpace(string(output)), err)
	}
	return string(output), nil
}
