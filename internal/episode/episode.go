package episode

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// ID encodes season and episode as season*100 + episode.
type ID int

var (
	stemPattern   = regexp.MustCompile(`^\d{3}$`)
	rangePattern  = regexp.MustCompile(`(\d{3})-(\d{3})`)
	numberPattern = regexp.MustCompile(`\d{3}`)
)

// ParseStem parses a filename stem that must be exactly three decimal digits.
func ParseStem(stem string) (ID, error) {
	if !stemPattern.MatchString(stem) {
		return 0, fmt.Errorf("episode filename %q: want exactly three digits", stem)
	}
	n, err := strconv.Atoi(stem)
	if err != nil {
		return 0, fmt.Errorf("episode filename %q: %w", stem, err)
	}
	return ID(n), nil
}

// ParseRange extracts the first NNN-NNN pair embedded in a filename.
func ParseRange(name string) (ID, ID, error) {
	m := rangePattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, fmt.Errorf("filename %q: no NNN-NNN episode range", name)
	}
	start, _ := strconv.Atoi(m[1])
	end, _ := strconv.Atoi(m[2])
	return ID(start), ID(end), nil
}

// FindNumber extracts the first embedded 3-digit episode number from a
// filename, for single-episode documents like "avatar 101.doc".
func FindNumber(name string) (ID, bool) {
	m := numberPattern.FindString(name)
	if m == "" {
		return 0, false
	}
	n, _ := strconv.Atoi(m)
	return ID(n), true
}

// HasRange reports whether a filename embeds an NNN-NNN episode range.
func HasRange(name string) bool {
	return rangePattern.MatchString(name)
}

// Season returns the season component.
func (id ID) Season() int { return int(id) / 100 }

// Episode returns the episode-within-season component.
func (id ID) Episode() int { return int(id) % 100 }

// Slug returns the lowercase page filename stem, e.g. "s02e15".
func (id ID) Slug() string {
	return fmt.Sprintf("s%02de%02d", id.Season(), id.Episode())
}

// Tag returns the uppercase display label, e.g. "S02E15".
func (id ID) Tag() string {
	return fmt.Sprintf("S%02dE%02d", id.Season(), id.Episode())
}

// Title combines the tag with the first non-blank line of the primary-language
// text. The extracted line is appended only when it is not already a
// case-insensitive substring of the tag, so pages without a usable heading
// still get the bare tag.
func (id ID) Title(primary string) string {
	tag := id.Tag()
	heading := firstLine(primary)
	if heading == "" || strings.Contains(strings.ToLower(tag), strings.ToLower(heading)) {
		return tag
	}
	return tag + " - " + heading
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return strings.Join(strings.Fields(trimmed), " ")
		}
	}
	return ""
}

// Sorted returns the IDs in ascending order without mutating the input.
func Sorted(ids []ID) []ID {
	out := make([]ID, len(ids))
	copy(out, ids)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Union merges the keys of both language maps into a sorted ID list.
func Union(a, b map[ID]string) []ID {
	seen := make(map[ID]struct{}, len(a)+len(b))
	for id := range a {
		seen[id] = struct{}{}
	}
	for id := range b {
		seen[id] = struct{}{}
	}
	ids := make([]ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	return Sorted(ids)
}
