package site

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"scriptdocs/internal/episode"
)

func TestRenderManifest(t *testing.T) {
	bySeason := map[int][]episode.ID{
		1: {103, 101},
		2: {201},
	}
	titles := map[episode.ID]string{
		101: "S01E01 - The Boy in the Iceberg",
	}

	out, err := RenderManifest("Scripts", "docs", []int{1, 2}, bySeason, titles)
	if err != nil {
		t.Fatalf("RenderManifest: %v", err)
	}

	var decoded struct {
		SiteName string `yaml:"site_name"`
		DocsDir  string `yaml:"docs_dir"`
		Nav      []any  `yaml:"nav"`
	}
	if err := yaml.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("manifest is not valid yaml: %v\n%s", err, out)
	}
	if decoded.SiteName != "Scripts" || decoded.DocsDir != "docs" {
		t.Fatalf("manifest header wrong: %+v", decoded)
	}
	// Home plus one section per season.
	if len(decoded.Nav) != 3 {
		t.Fatalf("nav length = %d, want 3", len(decoded.Nav))
	}

	text := string(out)
	// Episode order within a season is ascending regardless of input order.
	if strings.Index(text, "s01e01.md") > strings.Index(text, "s01e03.md") {
		t.Fatalf("nav not in episode order:\n%s", text)
	}
	if !strings.Contains(text, "S01E01 - The Boy in the Iceberg: season-01/s01e01.md") {
		t.Fatalf("titled nav entry missing:\n%s", text)
	}
	if !strings.Contains(text, "S01E03: season-01/s01e03.md") {
		t.Fatalf("untitled nav entry should use the tag:\n%s", text)
	}
	if !strings.Contains(text, "Overview: season-02/index.md") {
		t.Fatalf("season overview entry missing:\n%s", text)
	}
}
