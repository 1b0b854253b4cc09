package episode

import "testing"

func TestParseStem(t *testing.T) {
	id, err := ParseStem("042")
	if err != nil {
		t.Fatalf("ParseStem(042): %v", err)
	}
	if id != 42 || id.Season() != 0 || id.Episode() != 42 {
		t.Fatalf("unexpected identifier: id=%d season=%d episode=%d", id, id.Season(), id.Episode())
	}
	if id.Slug() != "s00e42" {
		t.Fatalf("Slug() = %q, want s00e42", id.Slug())
	}

	id, err = ParseStem("215")
	if err != nil {
		t.Fatalf("ParseStem(215): %v", err)
	}
	if id.Season() != 2 || id.Episode() != 15 {
		t.Fatalf("215: season=%d episode=%d", id.Season(), id.Episode())
	}
	if id.Slug() != "s02e15" || id.Tag() != "S02E15" {
		t.Fatalf("215: slug=%q tag=%q", id.Slug(), id.Tag())
	}
}

func TestParseStemRejectsMalformed(t *testing.T) {
	for _, stem := range []string{"", "42", "1042", "2a5", "215 ", "s215"} {
		if _, err := ParseStem(stem); err == nil {
			t.Fatalf("ParseStem(%q) succeeded, want error", stem)
		}
	}
}

func TestParseRange(t *testing.T) {
	start, end, err := ParseRange("avatar 101-105.doc")
	if err != nil {
		t.Fatalf("ParseRange: %v", err)
	}
	if start != 101 || end != 105 {
		t.Fatalf("ParseRange = %d..%d, want 101..105", start, end)
	}

	if _, _, err := ParseRange("avatar 101.doc"); err == nil {
		t.Fatal("expected error for filename without a range")
	}
	if !HasRange("avatar 318-321.doc") || HasRange("avatar 318.doc") {
		t.Fatal("HasRange misclassified filenames")
	}
}

func TestTitle(t *testing.T) {
	id := ID(101)
	if got := id.Title("The Boy in the Iceberg\nBook One"); got != "S01E01 - The Boy in the Iceberg" {
		t.Fatalf("Title = %q", got)
	}
	// Heading already contained in the tag should not be duplicated.
	if got := id.Title("s01e01\nrest"); got != "S01E01" {
		t.Fatalf("Title with tag heading = %q", got)
	}
	if got := id.Title(""); got != "S01E01" {
		t.Fatalf("Title with empty text = %q", got)
	}
	// Inner whitespace in the heading collapses.
	if got := id.Title("  The   Boy  \n"); got != "S01E01 - The Boy" {
		t.Fatalf("Title with ragged heading = %q", got)
	}
}

func TestUnionSorted(t *testing.T) {
	en := map[ID]string{103: "c", 101: "a"}
	zh := map[ID]string{102: "b", 103: "x", 301: "z"}
	got := Union(en, zh)
	want := []ID{101, 102, 103, 301}
	if len(got) != len(want) {
		t.Fatalf("Union length %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Union[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
