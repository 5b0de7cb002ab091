package telegram

import (
	"strings"
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name   string
		blocks []string
		limit  int
		want   []string
	}{
		{"single page", []string{"ab", "cd"}, 10, []string{"ab\n\ncd"}},
		{"split between blocks", []string{"abcd", "efgh"}, 6, []string{"abcd", "efgh"}},
		{"long block cut", []string{"abcdefg"}, 3, []string{"abc", "def", "g"}},
		{"runes not bytes", []string{"שלום", "עולם"}, 10, []string{"שלום\n\nעולם"}},
		{"empty", nil, 10, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(tt.blocks, "\n\n", tt.limit)
			if len(got) != len(tt.want) {
				t.Fatalf("pages = %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("page %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPaginateRespectsLimit(t *testing.T) {
	blocks := make([]string, 50)
	for i := range blocks {
		blocks[i] = strings.Repeat("א", 300)
	}

	pages := paginate(blocks, "\n\n", maxMessageLength)
	if len(pages) < 2 {
		t.Fatalf("pages = %d, want several", len(pages))
	}
	for i, p := range pages {
		if n := runeLen(p); n > maxMessageLength {
			t.Errorf("page %d has %d runes", i, n)
		}
	}
}

func TestBuildProgressBar(t *testing.T) {
	tests := []struct {
		fraction float64
		want     string
	}{
		{0, "[░░░░]"},
		{0.5, "[██░░]"},
		{1, "[████]"},
		{1.5, "[████]"},
		{-1, "[░░░░]"},
	}
	for _, tt := range tests {
		if got := buildProgressBar(tt.fraction, 4); got != tt.want {
			t.Errorf("buildProgressBar(%v) = %q, want %q", tt.fraction, got, tt.want)
		}
	}
}

func TestOptionLetter(t *testing.T) {
	if optionLetter(0) != "A" || optionLetter(7) != "H" || optionLetter(8) != "9" {
		t.Fatalf("unexpected option labels")
	}
}

func TestEscape(t *testing.T) {
	if got := bold("a<b>&c"); got != "<b>a&lt;b&gt;&amp;c</b>" {
		t.Fatalf("bold = %q", got)
	}
}

func TestSplitHTMLKeepsMarkupValid(t *testing.T) {
	block := bold(strings.Repeat("word & ", 60)) + "\n" + italic(strings.Repeat("note ", 40))

	chunks := splitHTML(block, 50)
	if len(chunks) < 2 {
		t.Fatalf("chunks = %d, want several", len(chunks))
	}

	var plain strings.Builder
	for i, c := range chunks {
		if n := runeLen(c); n > 50 {
			t.Errorf("chunk %d has %d runes", i, n)
		}
		for _, tag := range []string{"b", "i"} {
			if strings.Count(c, "<"+tag+">") != strings.Count(c, "</"+tag+">") {
				t.Errorf("chunk %d has unbalanced <%s>: %q", i, tag, c)
			}
		}
		if strings.Count(c, "&") != strings.Count(c, "&amp;") {
			t.Errorf("chunk %d cuts an entity: %q", i, c)
		}

		text := c
		for _, tag := range []string{"<b>", "</b>", "<i>", "</i>"} {
			text = strings.ReplaceAll(text, tag, "")
		}
		plain.WriteString(text)
	}

	// Cuts fall on whitespace, so no word is broken.
	for _, w := range strings.Fields(plain.String()) {
		if w != "word" && w != "&amp;" && w != "note" {
			t.Fatalf("broken word %q", w)
		}
	}
}

func TestSplitHTMLWithoutWhitespace(t *testing.T) {
	chunks := splitHTML(code(strings.Repeat("x", 30)), 30)
	if len(chunks) != 2 {
		t.Fatalf("chunks = %q", chunks)
	}

	for i, c := range chunks {
		if !strings.HasPrefix(c, "<code>") || !strings.HasSuffix(c, "</code>") {
			t.Errorf("chunk %d = %q", i, c)
		}
		if runeLen(c) > 30 {
			t.Errorf("chunk %d too long: %q", i, c)
		}
	}
}
