package scripts

import (
	"regexp"
	"strings"

	"scriptdocs/internal/episode"
)

// markerPattern matches the Chinese episode heading "第N回" at the start of a
// line, the only reliable structural marker inside range documents.
var markerPattern = regexp.MustCompile(`^第.+回`)

// SplitEpisodes partitions a multi-episode document into one chunk per
// detected episode heading. Each chunk runs from its heading to just before
// the next. A document with no heading at all is returned as a single chunk.
func SplitEpisodes(text string) []string {
	lines := strings.Split(text, "\n")
	var starts []int
	for i, line := range lines {
		if markerPattern.MatchString(strings.TrimSpace(line)) {
			starts = append(starts, i)
		}
	}
	if len(starts) == 0 {
		return []string{text}
	}

	chunks := make([]string, 0, len(starts))
	for i, start := range starts {
		end := len(lines)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		chunks = append(chunks, strings.Join(lines[start:end], "\n"))
	}
	return chunks
}

// AlignRange assigns chunks to episode numbers. When the chunk count matches
// the span declared by the filename the chunks map to start..end in order.
// On a mismatch the declared end is discarded and the range recomputed as
// start..start+len(chunks)-1; the start number stays authoritative because
// filenames get the end of a range wrong far more often than the start. The
// returned flag reports such a mismatch so callers can log it.
func AlignRange(start, end episode.ID, chunks []string) (map[episode.ID]string, bool) {
	out := make(map[episode.ID]string, len(chunks))
	for i, chunk := range chunks {
		out[start+episode.ID(i)] = chunk
	}
	mismatch := int(end-start)+1 != len(chunks)
	return out, mismatch
}
