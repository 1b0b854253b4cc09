package config

const (
	defaultEnglishDir     = "scripts/english"
	defaultChineseDir     = "scripts/chinese"
	defaultDocsDir        = "docs"
	defaultManifestPath   = "mkdocs.yml"
	defaultSiteName       = "Avatar: The Last Airbender Scripts"
	defaultSiteTagline    = "按季/集整理的电子书版本。"
	defaultPreferredTool  = "textutil"
	defaultFallbackTool   = "antiword"
	defaultConvertTimeout = 120
	defaultLogLevel       = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			EnglishDir:   defaultEnglishDir,
			ChineseDir:   defaultChineseDir,
			DocsDir:      defaultDocsDir,
			ManifestPath: defaultManifestPath,
		},
		Site: Site{
			Name:    defaultSiteName,
			Tagline: defaultSiteTagline,
			Seasons: []int{1, 2, 3},
		},
		Converter: Converter{
			Preferred:      defaultPreferredTool,
			Fallback:       defaultFallbackTool,
			TimeoutSeconds: defaultConvertTimeout,
		},
		Logging: Logging{
			Level: defaultLogLevel,
		},
	}
}
