package i18n

import "testing"

func TestTranslatorFallback(t *testing.T) {
	tr := New()

	tests := []struct {
		lang, key, want string
	}{
		{"en", "title", "Interactive Video Quiz"},
		{"he", "title", "חידון וידאו אינטראקטיבי"},
		{"fr", "title", "Interactive Video Quiz"},
		{"en", "no-such-key", "no-such-key"},
	}
	for _, tt := range tests {
		if got := tr.T(tt.lang, tt.key); got != tt.want {
			t.Errorf("T(%q, %q) = %q, want %q", tt.lang, tt.key, got, tt.want)
		}
	}
}

func TestTablesHaveSameKeys(t *testing.T) {
	for key := range english {
		if _, ok := hebrew[key]; !ok {
			t.Errorf("hebrew table misses %q", key)
		}
	}
	for key := range hebrew {
		if _, ok := english[key]; !ok {
			t.Errorf("english table misses %q", key)
		}
	}
}

func TestSupportsAndDirection(t *testing.T) {
	tr := New()
	if !tr.Supports("he") || !tr.Supports("en") || tr.Supports("fr") {
		t.Fatalf("unexpected Supports result")
	}
	if !IsRTL("he") || IsRTL("en") {
		t.Fatalf("unexpected IsRTL result")
	}
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(english["summaryText"], 2, 3, 67)
	want := "You answered 2 of 3 correctly (67%). Review below:"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
