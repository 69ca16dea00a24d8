package bible

import "testing"

func TestLookupBook_AliasVariants(t *testing.T) {
	cases := map[string]int{
		"genesis":       1,
		"gen":           1,
		"song of solomon": 22,
		"song of songs": 22,
		"1 corinthians": 46,
		"1corinthians":  46,
		"1cor":          46,
		"1co":           46,
		"psalm":         19,
		"psalms":        19,
		"revelation":    66,
		"rev":           66,
	}
	for alias, want := range cases {
		got, ok := LookupBook(alias)
		if !ok {
			t.Fatalf("alias %q not found", alias)
		}
		if got != want {
			t.Fatalf("alias %q: got book %d, want %d", alias, got, want)
		}
	}
}

func TestLookupBook_Unknown(t *testing.T) {
	if _, ok := LookupBook("zzz"); ok {
		t.Fatal("expected zzz to be unknown")
	}
}

func TestNormalizeBookAlias(t *testing.T) {
	cases := map[string]string{
		"  1  Corinthians ": "1 corinthians",
		"Song-of-Solomon":   "songofsolomon",
		"GEN.":              "gen",
	}
	for in, want := range cases {
		if got := NormalizeBookAlias(in); got != want {
			t.Fatalf("normalize %q: got %q, want %q", in, got, want)
		}
	}
}

func TestBookNameAndTestament(t *testing.T) {
	if got := BookName(22); got != "Song of Solomon" {
		t.Fatalf("unexpected name for 22: %q", got)
	}
	if !IsOldTestament(39) {
		t.Fatal("malachi should be old testament")
	}
	if IsOldTestament(40) {
		t.Fatal("matthew should be new testament")
	}
}

func TestAliasIndex_CoversAllBooks(t *testing.T) {
	for _, b := range books {
		got, ok := LookupBook(NormalizeBookAlias(b.Name))
		if !ok || got != b.Number {
			t.Fatalf("book %q does not resolve to %d", b.Name, b.Number)
		}
	}
}
