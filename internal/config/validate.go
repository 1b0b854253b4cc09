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
	if err := c.validateSite(); err != nil {
		return err
	}
	if err := c.validateConverter(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validatePaths() error {
	if c.Paths.EnglishDir == "" {
		return errors.New("paths.english_dir must be set")
	}
	if c.Paths.ChineseDir == "" {
		return errors.New("paths.chinese_dir must be set")
	}
	if c.Paths.DocsDir == "" {
		return errors.New("paths.docs_dir must be set")
	}
	if c.Paths.ManifestPath == "" {
		return errors.New("paths.manifest_path must be set")
	}
	return nil
}

func (c *Config) validateSite() error {
	if c.Site.Name == "" {
		return errors.New("site.name must be set")
	}
	if len(c.Site.Seasons) == 0 {
		return errors.New("site.seasons must list at least one season")
	}
	for _, season := range c.Site.Seasons {
		if season < 1 || season > 99 {
			return fmt.Errorf("site.seasons: season %d outside 1..99", season)
		}
	}
	return nil
}

func (c *Config) validateConverter() error {
	if c.Converter.Preferred == "" && c.Converter.Fallback == "" {
		return errors.New("converter.preferred or converter.fallback must be set")
	}
	if c.Converter.TimeoutSeconds < 0 {
		return errors.New("converter.timeout_seconds must not be negative")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
