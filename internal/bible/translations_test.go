package bible

import "testing"

func TestIsSupportedTranslation(t *testing.T) {
	for _, code := range SupportedTranslations() {
		if !IsSupportedTranslation(code) {
			t.Fatalf("expected %q to be supported", code)
		}
	}
	if IsSupportedTranslation("NIV") {
		t.Fatalf("NIV is not in the provider list and must be rejected")
	}
	if IsSupportedTranslation("web") {
		t.Fatalf("validation is case-sensitive, normalization happens before")
	}
}

func TestNormalizeTranslation(t *testing.T) {
	cases := []struct {
		in       string
		fallback string
		want     string
	}{
		{"kjv", "WEB", "KJV"},
		{"  web ", "KJV", "WEB"},
		{"", "WEB", "WEB"},
		{"   ", "KJV", "KJV"},
		{"NOPE", "WEB", "NOPE"}, // no valida, solo normaliza
	}
	for _, c := range cases {
		if got := NormalizeTranslation(c.in, c.fallback); got != c.want {
			t.Fatalf("NormalizeTranslation(%q, %q) = %q, want %q", c.in, c.fallback, got, c.want)
		}
	}
}

func TestOriginalLanguageSource(t *testing.T) {
	if got := OriginalLanguageSource(1); got != HebrewSource {
		t.Fatalf("Genesis should map to the Hebrew source, got %q", got)
	}
	if got := OriginalLanguageSource(39); got != HebrewSource {
		t.Fatalf("Malachi should map to the Hebrew source, got %q", got)
	}
	if got := OriginalLanguageSource(40); got != GreekSource {
		t.Fatalf("Matthew should map to the Greek source, got %q", got)
	}
	if got := OriginalLanguageSource(66); got != GreekSource {
		t.Fatalf("Revelation should map to the Greek source, got %q", got)
	}
}
