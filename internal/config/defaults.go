package config

const (
	defaultLogDir        = "~/.local/share/travelog/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultImageMaxEdge  = 1600
	defaultThumbMaxEdge  = 480
	defaultVideoMaxWidth = 1280
	defaultVideoCRF      = 26
	defaultVideoPreset   = "veryfast"
	defaultAudioBitrate  = "128k"
	defaultWorkers       = 4
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Images: Images{
			MaxEdge:      defaultImageMaxEdge,
			ThumbMaxEdge: defaultThumbMaxEdge,
		},
		Video: Video{
			Transcode:    true,
			MaxWidth:     defaultVideoMaxWidth,
			CRF:          defaultVideoCRF,
			Preset:       defaultVideoPreset,
			AudioBitrate: defaultAudioBitrate,
		},
		Tools: Tools{
			Exiftool:    "exiftool",
			FFmpeg:      "ffmpeg",
			FFprobe:     "ffprobe",
			Magick:      "magick",
			HeifConvert: "heif-convert",
		},
		Build: Build{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
