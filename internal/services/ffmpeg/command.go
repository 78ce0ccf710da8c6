package ffmpeg

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/OliverBailey/runelite-timelapse/internal/geometry"
	"github.com/OliverBailey/runelite-timelapse/internal/plan"
)

// Request bundles everything the encode needs in one handoff: the ordered
// frames (via the concat list), pacing and output rates, target resolution,
// optional blur geometry, the duration plan, codec and quality, and where to
// write the result.
type Request struct {
	ListFile   string
	PacingRate int
	OutputFPS  int
	Width      int
	Height     int
	Blur       *geometry.Region
	Plan       plan.Plan
	Codec      string
	Quality    int
	Title      string
	OutputPath string
}

// BuildArgs assembles the full ffmpeg argv for a request. Input ordering
// matters: the concat list is always input 0 and the soundtrack, when
// present, input 1. Loop runs bound the soundtrack input with -stream_loop
// and cut it at the video boundary with -shortest; hold runs extend the
// video instead via tpad in the filter graph.
func BuildArgs(req Request) []string {
	args := []string{
		"-hide_banner",
		"-r", strconv.Itoa(req.PacingRate),
		"-f", "concat",
		"-safe", "0",
		"-i", req.ListFile,
	}

	if music := req.Plan.Music; music != nil {
		switch music.Strategy {
		case plan.StrategyLoopAudio:
			args = append(args,
				"-t", formatSeconds(req.Plan.FinalDuration),
				"-stream_loop", "-1",
				"-i", music.Path,
			)
		default:
			args = append(args, "-i", music.Path)
		}
	}

	args = append(args, "-filter_complex", buildFilterGraph(req), "-map", "[v_out]")

	if music := req.Plan.Music; music != nil {
		args = append(args, "-map", "1:a:0", "-c:a", "aac")
		if music.Strategy == plan.StrategyLoopAudio {
			args = append(args, "-shortest")
		}
	} else {
		args = append(args, "-t", formatSeconds(req.Plan.FinalDuration))
	}

	args = append(args, "-c:v", req.Codec)
	if req.Codec == "libx264" {
		args = append(args, "-crf", strconv.Itoa(req.Quality))
	} else {
		args = append(args, "-cq", strconv.Itoa(req.Quality))
	}
	if title := strings.TrimSpace(req.Title); title != "" {
		args = append(args, "-metadata", "title="+title)
	}
	args = append(args, "-pix_fmt", "yuv420p", "-y", req.OutputPath)
	return args
}

// buildFilterGraph chains scaling, the optional blur overlay, an even-pixel
// crop (H.264 requires even dimensions), the output frame rate, and the
// hold-last-frame padding into one filter_complex expression.
func buildFilterGraph(req Request) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[0:v]scale=%d:%d", req.Width, req.Height)

	if r := req.Blur; r != nil {
		fmt.Fprintf(&b, ",split[main][to_blur];")
		fmt.Fprintf(&b, "[to_blur]crop=%d:%d:%d:%d,gblur=sigma=%d[blurred];", r.Width, r.Height, r.X, r.Y, r.Amount)
		fmt.Fprintf(&b, "[main][blurred]overlay=%d:%d", r.X, r.Y)
	}

	fmt.Fprintf(&b, ",crop=floor(iw/2)*2:floor(ih/2)*2,fps=%d", req.OutputFPS)
	if req.Plan.HoldPadding > 0 {
		fmt.Fprintf(&b, ",tpad=stop_mode=clone:stop_duration=%s", formatSeconds(req.Plan.HoldPadding))
	}
	b.WriteString("[v_out]")
	return b.String()
}

func formatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
