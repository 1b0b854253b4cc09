package textnorm

import (
	"strings"
	"testing"
)

func TestBlockCanonicalizes(t *testing.T) {
	in := "\ufeff\r\n  Title Line\t!\r\n\r\n\r\n\r\n   body text   \r\n\f\nlast\r\n\r\n"
	got := Block(in)
	want := "Title Line    !\n\nbody text\n\nlast"
	if got != want {
		t.Fatalf("Block(%q) = %q, want %q", in, got, want)
	}
}

func TestBlockIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"single",
		"\t\tindented\n\n\n\nmore\r\n",
		"\ufeffbom\fpage two",
	}
	for _, in := range inputs {
		once := Block(in)
		twice := Block(once)
		if once != twice {
			t.Fatalf("Block not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}

func TestDedentIdempotent(t *testing.T) {
	in := "    SCENE ONE\n        (beat)\n\n    SCENE TWO\n"
	once := Dedent(in)
	twice := Dedent(once)
	if once != twice {
		t.Fatalf("Dedent not idempotent: %q vs %q", once, twice)
	}
}

func TestDedentPreservesRelativeIndent(t *testing.T) {
	in := "    KATARA\n        Water. Earth. Fire. Air.\n    SOKKA\n"
	got := Dedent(in)
	want := "KATARA\n    Water. Earth. Fire. Air.\nSOKKA"
	if got != want {
		t.Fatalf("Dedent = %q, want %q", got, want)
	}
}

func TestBlockStripsAllLeadingSpaces(t *testing.T) {
	in := "    KATARA\n        Water. Earth. Fire. Air.\n"
	got := Block(in)
	want := "KATARA\nWater. Earth. Fire. Air."
	if got != want {
		t.Fatalf("Block = %q, want %q", got, want)
	}
}

func TestBlankRunsCollapse(t *testing.T) {
	in := "a\n\n\n\n\nb\n\n\nc"
	got := Block(in)
	if strings.Contains(got, "\n\n\n") {
		t.Fatalf("blank run survived normalization: %q", got)
	}
	if got != "a\n\nb\n\nc" {
		t.Fatalf("Block = %q, want %q", got, "a\n\nb\n\nc")
	}
}

func TestEmptyAndBlankInput(t *testing.T) {
	for _, in := range []string{"", "\n", "   \n\t\n\f\n", "\ufeff"} {
		if got := Block(in); got != "" {
			t.Fatalf("Block(%q) = %q, want empty", in, got)
		}
		if got := Dedent(in); got != "" {
			t.Fatalf("Dedent(%q) = %q, want empty", in, got)
		}
	}
}
