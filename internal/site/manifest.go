package site

import (
	"fmt"
	"path"

	"gopkg.in/yaml.v3"

	"scriptdocs/internal/episode"
)

// manifest is the MkDocs configuration emitted at the repository root. Nav
// entries are single-key maps inside slices so YAML preserves display order.
type manifest struct {
	SiteName string `yaml:"site_name"`
	DocsDir  string `yaml:"docs_dir"`
	Nav      []any  `yaml:"nav"`
}

// RenderManifest enumerates every generated page in season/episode order as
// a MkDocs nav tree.
func RenderManifest(name, docsDir string, seasons []int, bySeason map[int][]episode.ID, titles map[episode.ID]string) ([]byte, error) {
	nav := []any{
		map[string]string{"Home": "index.md"},
	}
	for _, season := range seasons {
		dir := seasonDirName(season)
		entries := []any{
			map[string]string{"Overview": path.Join(dir, "index.md")},
		}
		for _, id := range episode.Sorted(bySeason[season]) {
			title := titles[id]
			if title == "" {
				title = id.Tag()
			}
			entries = append(entries, map[string]string{title: path.Join(dir, id.Slug()+".md")})
		}
		nav = append(nav, map[string]any{fmt.Sprintf("Season %d", season): entries})
	}

	out, err := yaml.Marshal(manifest{SiteName: name, DocsDir: docsDir, Nav: nav})
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return out, nil
}
