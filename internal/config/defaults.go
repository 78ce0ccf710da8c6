package config

const (
	defaultStagingDir   = "~/.local/share/timelapse/staging"
	defaultLogDir       = "~/.local/share/timelapse/logs"
	defaultOutputVideo  = "account_timelapse.mp4"
	defaultFramerate    = 5
	defaultOutputFPS    = 30
	defaultOutputWidth  = 1920
	defaultOutputHeight = 1080
	defaultEncoder      = "auto"
	defaultQuality      = 23
	defaultBlurX        = 7
	defaultBlurY        = 345
	defaultBlurWidth    = 506
	defaultBlurHeight   = 129
	defaultBlurAmount   = 15
	defaultLogFormat    = "console"
	defaultLogLevel     = "info"
)

// EncoderPreferences lists the accepted [video] encoder values in the order
// auto-detection probes them, with cpu as the terminal fallback.
var EncoderPreferences = []string{"auto", "nvidia", "amd", "intel", "cpu"}

// Default returns a Config populated with repository defaults. The
// screenshots directory has no default and must come from the config file or
// the SCREENSHOTS_DIR environment variable.
func Default() Config {
	return Config{
		Paths: Paths{
			StagingDir:  defaultStagingDir,
			LogDir:      defaultLogDir,
			OutputVideo: defaultOutputVideo,
		},
		Video: Video{
			Framerate:    defaultFramerate,
			OutputFPS:    defaultOutputFPS,
			OutputWidth:  defaultOutputWidth,
			OutputHeight: defaultOutputHeight,
			Encoder:      defaultEncoder,
			Quality:      defaultQuality,
		},
		Music: Music{
			HoldLastFrame: true,
		},
		Blur: Blur{
			Enabled: true,
			X:       defaultBlurX,
			Y:       defaultBlurY,
			Width:   defaultBlurWidth,
			Height:  defaultBlurHeight,
			Amount:  defaultBlurAmount,
		},
		History: History{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
