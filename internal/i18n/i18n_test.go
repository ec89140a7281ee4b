package i18n

import "testing"

func TestMatchLanguage(t *testing.T) {
	cases := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"en", "en"},
		{"en-US,en;q=0.9", "en"},
		{"kn", "kn"},
		{"kn-IN,kn;q=0.9,en;q=0.5", "kn"},
		{"fr-FR", "en"},
		{"garbage;;;", "en"},
	}
	for _, c := range cases {
		if got := MatchLanguage(c.header); got != c.want {
			t.Fatalf("MatchLanguage(%q) = %q, want %q", c.header, got, c.want)
		}
	}
}

func TestT_KannadaAndFallbacks(t *testing.T) {
	if got := T("kn", "status_resolved"); got != "ಪರಿಹಾರವಾಗಿದೆ" {
		t.Fatalf("kn status_resolved = %q", got)
	}
	// Key present only in English: kn falls back to the English string.
	if got := T("kn", "assist_emergency"); got != T("en", "assist_emergency") {
		t.Fatalf("missing kn key should fall back to English, got %q", got)
	}
	// Unknown key falls back to the key itself.
	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("unknown key should echo, got %q", got)
	}
	// Unknown language behaves like English.
	if got := T("de", "status_open"); got != "Open" {
		t.Fatalf("unknown language should use English, got %q", got)
	}
}

func TestEnglishLabel_StorageKeysStayStable(t *testing.T) {
	want := map[string]string{
		"status_open":        "Open",
		"status_in_progress": "In Progress",
		"status_resolved":    "Resolved",
		"priority_emergency": "Emergency",
		"priority_high":      "High Priority",
		"priority_standard":  "Standard Priority",
	}
	for key, label := range want {
		if got := EnglishLabel(key); got != label {
			t.Fatalf("EnglishLabel(%q) = %q, want %q", key, got, label)
		}
	}
	if got := EnglishLabel("Sanitation"); got != "Sanitation" {
		t.Fatalf("unmapped key must pass through, got %q", got)
	}
}
