package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	SourceDir string `toml:"source_dir"`
	SiteDir   string `toml:"site_dir"`
	LogDir    string `toml:"log_dir"`
}

// Images contains bounds for image derivation.
type Images struct {
	MaxEdge      int `toml:"max_edge"`
	ThumbMaxEdge int `toml:"thumb_max_edge"`
}

// Video contains the transcode policy and encoder settings.
type Video struct {
	Transcode    bool   `toml:"transcode"`
	MaxWidth     int    `toml:"max_width"`
	CRF          int    `toml:"crf"`
	Preset       string `toml:"preset"`
	AudioBitrate string `toml:"audio_bitrate"`
}

// Tools contains the external tool binaries invoked during derivation.
type Tools struct {
	Exiftool    string `toml:"exiftool"`
	FFmpeg      string `toml:"ffmpeg"`
	FFprobe     string `toml:"ffprobe"`
	Magick      string `toml:"magick"`
	HeifConvert string `toml:"heif_convert"`
}

// Build contains pipeline execution settings.
type Build struct {
	Workers int `toml:"workers"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for travelog.
//
// Configuration sections by subsystem:
//   - Paths: source, site, and log directories
//   - Images: full-size and thumbnail long-edge caps
//   - Video: transcode policy, width cap, codec settings
//   - Tools: external binaries (exiftool, ffmpeg, ffprobe, magick, heif-convert)
//   - Build: derivation worker pool size
//   - Logging: log format and level
type Config struct {
	Paths   Paths   `toml:"paths"`
	Images  Images  `toml:"images"`
	Video   Video   `toml:"video"`
	Tools   Tools   `toml:"tools"`
	Build   Build   `toml:"build"`
	Logging Logging `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/travelog/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a file was found at the resolved path.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("travelog.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// DataDir returns the manifest output directory.
func (c *Config) DataDir() string { return filepath.Join(c.Paths.SiteDir, "data") }

// AssetsDir returns the derived-asset root directory.
func (c *Config) AssetsDir() string { return filepath.Join(c.Paths.SiteDir, "assets") }

// ImageDir returns the full-size image derivative directory.
func (c *Config) ImageDir() string { return filepath.Join(c.AssetsDir(), "img") }

// ThumbDir returns the thumbnail derivative directory.
func (c *Config) ThumbDir() string { return filepath.Join(c.AssetsDir(), "thumb") }

// VideoDir returns the video derivative directory.
func (c *Config) VideoDir() string { return filepath.Join(c.AssetsDir(), "video") }

// PosterDir returns the poster-frame derivative directory.
func (c *Config) PosterDir() string { return filepath.Join(c.AssetsDir(), "poster") }

// NotesPath returns the day-annotation store location.
func (c *Config) NotesPath() string { return filepath.Join(c.DataDir(), "notes.json") }

// TrackPath returns the location of the externally maintained GPS track manifest.
func (c *Config) TrackPath() string { return filepath.Join(c.DataDir(), "track.geojson") }

// LockPath returns the build lock file location.
func (c *Config) LockPath() string { return filepath.Join(c.Paths.SiteDir, ".travelog.lock") }

// EnsureDirectories creates the output directory tree for a build.
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.Paths.SiteDir,
		c.DataDir(),
		c.AssetsDir(),
		c.ImageDir(),
		c.ThumbDir(),
		c.VideoDir(),
		c.PosterDir(),
	}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	if strings.TrimSpace(c.Paths.LogDir) != "" {
		// Best-effort so a build can run when the log volume is offline.
		_ = os.MkdirAll(c.Paths.LogDir, 0o755)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
