package match

import (
	"strings"
	"testing"
)

func TestBuildContextWindow(t *testing.T) {
	got := BuildContext("the quick brown fox", "brown", 3)

	if got != "...ck **brown** fo..." {
		t.Errorf("BuildContext = %q, want %q", got, "...ck **brown** fo...")
	}
}

func TestBuildContextMatchAtStart(t *testing.T) {
	got := BuildContext("brown fox jumps over the lazy dog", "brown", 5)

	if !strings.HasPrefix(got, "**brown**") {
		t.Errorf("expected no leading ellipsis for a match at position 0, got %q", got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("expected trailing ellipsis, got %q", got)
	}
}

func TestBuildContextWholeTextFits(t *testing.T) {
	got := BuildContext("ada lovelace", "lovelace", 50)

	if got != "ada **lovelace**" {
		t.Errorf("BuildContext = %q, want %q", got, "ada **lovelace**")
	}
}

func TestBuildContextCaseInsensitive(t *testing.T) {
	got := BuildContext("Ada Lovelace", "LOVELACE", 50)

	if got != "Ada **Lovelace**" {
		t.Errorf("BuildContext = %q, want %q", got, "Ada **Lovelace**")
	}
}

func TestBuildContextNoMatchFallback(t *testing.T) {
	long := strings.Repeat("x", 30)

	got := BuildContext(long, "zzz", 10)
	if got != strings.Repeat("x", 20)+"..." {
		t.Errorf("expected 2*window head plus ellipsis, got %q", got)
	}

	// Short text is returned whole.
	if got := BuildContext("short", "zzz", 10); got != "short" {
		t.Errorf("expected full text, got %q", got)
	}
}

func TestBuildContextDefaultWindow(t *testing.T) {
	text := strings.Repeat("a", 200) + "needle" + strings.Repeat("b", 200)

	got := BuildContext(text, "needle", 0)
	want := "..." + strings.Repeat("a", DefaultWindow) + "**needle**" + strings.Repeat("b", DefaultWindow) + "..."
	if got != want {
		t.Errorf("default-window snippet mismatch:\n got %q\nwant %q", got, want)
	}
}
