package site

import (
	"fmt"
	"strings"

	"scriptdocs/internal/episode"
)

// seasonDirName returns the output subdirectory for a season, e.g. "season-02".
func seasonDirName(season int) string {
	return fmt.Sprintf("season-%02d", season)
}

// RenderSeasonIndex lists a season's episodes in ascending order with their
// page titles.
func RenderSeasonIndex(season int, ids []episode.ID, titles map[episode.ID]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Season %d\n\n", season)
	for _, id := range episode.Sorted(ids) {
		title := titles[id]
		if title == "" {
			title = id.Tag()
		}
		fmt.Fprintf(&b, "- [%s](./%s.md)\n", title, id.Slug())
	}
	return b.String()
}

// RenderRootIndex builds the site landing page: season links plus, when any
// episode lacks a translation, per-language coverage lists of sorted tags.
func RenderRootIndex(name, tagline string, seasons []int, missingEnglish, missingChinese []episode.ID) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", name)
	if tagline != "" {
		b.WriteString(tagline)
		b.WriteString("\n\n")
	}
	for _, season := range seasons {
		fmt.Fprintf(&b, "- [Season %d](%s/index.md)\n", season, seasonDirName(season))
	}
	writeCoverage(&b, "Missing "+labelEnglish, missingEnglish)
	writeCoverage(&b, "Missing "+labelChinese, missingChinese)
	return b.String()
}

func writeCoverage(b *strings.Builder, heading string, ids []episode.ID) {
	if len(ids) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", heading)
	tags := make([]string, 0, len(ids))
	for _, id := range episode.Sorted(ids) {
		tags = append(tags, id.Tag())
	}
	b.WriteString(strings.Join(tags, ", "))
	b.WriteString("\n")
}
