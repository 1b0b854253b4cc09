package config

import "strings"

// normalize fills blank fields from defaults and expands every path field.
func (c *Config) normalize() error {
	defaults := Default()

	c.Paths.EnglishDir = fallback(c.Paths.EnglishDir, defaults.Paths.EnglishDir)
	c.Paths.ChineseDir = fallback(c.Paths.ChineseDir, defaults.Paths.ChineseDir)
	c.Paths.DocsDir = fallback(c.Paths.DocsDir, defaults.Paths.DocsDir)
	c.Paths.ManifestPath = fallback(c.Paths.ManifestPath, defaults.Paths.ManifestPath)
	c.Site.Name = fallback(c.Site.Name, defaults.Site.Name)
	c.Converter.Preferred = fallback(c.Converter.Preferred, defaults.Converter.Preferred)
	c.Converter.Fallback = fallback(c.Converter.Fallback, defaults.Converter.Fallback)
	if c.Converter.TimeoutSeconds == 0 {
		c.Converter.TimeoutSeconds = defaults.Converter.TimeoutSeconds
	}
	if len(c.Site.Seasons) == 0 {
		c.Site.Seasons = append([]int(nil), defaults.Site.Seasons...)
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = fallback(strings.ToLower(c.Logging.Level), defaults.Logging.Level)

	for _, field := range []*string{
		&c.Paths.EnglishDir,
		&c.Paths.ChineseDir,
		&c.Paths.DocsDir,
		&c.Paths.ManifestPath,
		&c.Paths.LogDir,
	} {
		if strings.TrimSpace(*field) == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}
	return nil
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
