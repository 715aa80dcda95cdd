package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateImages(); err != nil {
		return err
	}
	if err := c.validateVideo(); err != nil {
		return err
	}
	if err := c.validateBuild(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.SourceDir == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/travelog/config.toml"
		}
		return fmt.Errorf("paths.source_dir is required. Edit %s (create with 'travelog config init')", defaultPath)
	}
	return nil
}

func (c *Config) validateImages() error {
	if c.Images.MaxEdge <= 0 {
		return errors.New("images.max_edge must be positive")
	}
	if c.Images.ThumbMaxEdge <= 0 {
		return errors.New("images.thumb_max_edge must be positive")
	}
	if c.Images.ThumbMaxEdge > c.Images.MaxEdge {
		return errors.New("images.thumb_max_edge must not exceed images.max_edge")
	}
	return nil
}

func (c *Config) validateVideo() error {
	if c.Video.MaxWidth <= 0 {
		return errors.New("video.max_width must be positive")
	}
	if c.Video.CRF < 0 || c.Video.CRF > 51 {
		return errors.New("video.crf must be between 0 and 51")
	}
	return nil
}

func (c *Config) validateBuild() error {
	if c.Build.Workers < 1 {
		return errors.New("build.workers must be at least 1")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
