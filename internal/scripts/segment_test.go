package scripts

import (
	"fmt"
	"testing"

	"scriptdocs/internal/episode"
)

func rangeDoc(headings int) string {
	doc := "剧本合集\n"
	for i := 0; i < headings; i++ {
		doc += fmt.Sprintf("第%d回 标题\n内容 %d\n\n", i+1, i+1)
	}
	return doc
}

func TestSplitEpisodes(t *testing.T) {
	chunks := SplitEpisodes(rangeDoc(3))
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		want := fmt.Sprintf("第%d回", i+1)
		if len(chunk) == 0 || chunk[:len(want)] != want {
			t.Fatalf("chunk %d does not start at its heading: %q", i, chunk)
		}
	}
}

func TestSplitEpisodesNoMarker(t *testing.T) {
	text := "just one long script\nwith no headings\n"
	chunks := SplitEpisodes(text)
	if len(chunks) != 1 || chunks[0] != text {
		t.Fatalf("markerless document should stay whole, got %d chunks", len(chunks))
	}
}

func TestSplitEpisodesIndentedMarker(t *testing.T) {
	text := "  第一回 开始\nbody\n 第二回 继续\nbody\n"
	if got := len(SplitEpisodes(text)); got != 2 {
		t.Fatalf("indented headings not detected, got %d chunks", got)
	}
}

func TestAlignRangeMatchingCount(t *testing.T) {
	chunks := []string{"a", "b", "c", "d", "e"}
	aligned, mismatch := AlignRange(101, 105, chunks)
	if mismatch {
		t.Fatal("matching range reported as mismatch")
	}
	for i, want := range chunks {
		id := episode.ID(101 + i)
		if aligned[id] != want {
			t.Fatalf("aligned[%d] = %q, want %q", id, aligned[id], want)
		}
	}
}

func TestAlignRangeRecomputesEnd(t *testing.T) {
	chunks := []string{"a", "b", "c", "d"}
	aligned, mismatch := AlignRange(101, 105, chunks)
	if !mismatch {
		t.Fatal("short chunk count should report a mismatch")
	}
	if len(aligned) != 4 {
		t.Fatalf("expected 4 aligned episodes, got %d", len(aligned))
	}
	// Start is trusted, end recomputed: 101..104, no 105.
	if aligned[101] != "a" || aligned[104] != "d" {
		t.Fatalf("aligned map wrong: %v", aligned)
	}
	if _, ok := aligned[105]; ok {
		t.Fatal("declared end 105 should not be assigned")
	}
}
