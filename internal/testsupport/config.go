// Package testsupport provides shared helpers for package tests: configs
// seeded with per-test temp directories, source fixture writers, and a
// canned in-memory document converter.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"scriptdocs/internal/config"
)

// NewConfig produces a config whose source and output paths live under a
// unique temp directory. The source directories exist; output paths do not.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.EnglishDir = filepath.Join(base, "english")
	cfg.Paths.ChineseDir = filepath.Join(base, "chinese")
	cfg.Paths.DocsDir = filepath.Join(base, "docs")
	cfg.Paths.ManifestPath = filepath.Join(base, "mkdocs.yml")

	for _, dir := range []string{cfg.Paths.EnglishDir, cfg.Paths.ChineseDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	return &cfg
}

// BaseDir returns the temp directory backing a config from NewConfig.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.EnglishDir)
}

// WriteEnglish drops a plain-text script into the config's English directory.
func WriteEnglish(t testing.TB, cfg *config.Config, stem, content string) {
	t.Helper()
	writeSource(t, filepath.Join(cfg.Paths.EnglishDir, stem+".txt"), content)
}

// TouchChinese creates a placeholder .doc file in the config's Chinese
// directory; its text comes from the fake converter, not the file.
func TouchChinese(t testing.TB, cfg *config.Config, name string) {
	t.Helper()
	writeSource(t, filepath.Join(cfg.Paths.ChineseDir, name), "\xd0\xcf\x11\xe0")
}

func writeSource(t testing.TB, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
