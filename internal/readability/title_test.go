package engine

import "testing"

func TestShortTitleTrimsSiteSuffix(t *testing.T) {
	title := "Big Exclusive Story About Something Important - Example News"
	got := ShortTitle(title, "https://example.com/2026/07/big-story")
	if got == title {
		t.Fatalf("expected ShortTitle to trim the site suffix, got unchanged %q", got)
	}
}

func TestShortTitleNoSeparatorsUnchanged(t *testing.T) {
	title := "A Title With No Separators At All"
	got := ShortTitle(title, "https://example.com/article")
	if got != title {
		t.Fatalf("ShortTitle(%q) = %q, want unchanged", title, got)
	}
}

func TestIsNearDuplicateText(t *testing.T) {
	a := "The quick brown fox jumps over the lazy dog near the old stone bridge."
	b := "The quick brown fox jumps over the lazy dog near the old stone bridge!"
	if !isNearDuplicateText(a, b) {
		t.Fatalf("expected near-identical paragraphs to be flagged duplicate")
	}

	c := "A completely unrelated paragraph discussing something else entirely today."
	if isNearDuplicateText(a, c) {
		t.Fatalf("expected unrelated paragraphs not to be flagged duplicate")
	}

	if isNearDuplicateText("short", "short too") {
		t.Fatalf("expected short strings to be skipped by the minimum-length guard")
	}
}
