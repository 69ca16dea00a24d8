package bible

import (
	"testing"

	"scripture-llm/internal/domain"
)

func TestParseReference_RangeNewTestament(t *testing.T) {
	ref, err := ParseReference("1 corinthians 4:3-6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.BookNumber != 46 || ref.Chapter != 4 || ref.StartVerse != 3 || ref.EndVerse != 6 {
		t.Fatalf("unexpected parse: %+v", ref)
	}
	if !ref.IsNewTestament || ref.IsOldTestament {
		t.Fatalf("expected new testament flags, got %+v", ref)
	}
}

func TestParseReference_MultiWordBook(t *testing.T) {
	ref, err := ParseReference("song of solomon 2:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.BookNumber != 22 || ref.Chapter != 2 || ref.StartVerse != 1 || ref.EndVerse != 1 {
		t.Fatalf("unexpected parse: %+v", ref)
	}
	if !ref.IsOldTestament {
		t.Fatalf("expected old testament, got %+v", ref)
	}
}

func TestParseReference_NoSpaceBeforeChapter(t *testing.T) {
	ref, err := ParseReference("gen1:1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.BookNumber != 1 || ref.Chapter != 1 || ref.StartVerse != 1 || ref.EndVerse != 1 {
		t.Fatalf("unexpected parse: %+v", ref)
	}
}

func TestParseReference_SingleVerseEqualsRange(t *testing.T) {
	ref, err := ParseReference("John 3:16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.EndVerse != ref.StartVerse {
		t.Fatalf("expected end verse == start verse, got %+v", ref)
	}
	if ref.Display() != "John 3:16" {
		t.Fatalf("unexpected display: %q", ref.Display())
	}
}

func TestParseReference_InvalidFormat(t *testing.T) {
	_, err := ParseReference("nonsense")
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.KindOf(err) != domain.KindInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestParseReference_UnknownBook(t *testing.T) {
	_, err := ParseReference("zzz 1:1")
	if err == nil {
		t.Fatal("expected error")
	}
	if domain.KindOf(err) != domain.KindUnknownBook {
		t.Fatalf("expected unknown_book, got %v", err)
	}
}

func TestParseReference_ReversedRange(t *testing.T) {
	_, err := ParseReference("john 3:16-2")
	if err == nil {
		t.Fatal("expected error for reversed range")
	}
	if domain.KindOf(err) != domain.KindInvalidFormat {
		t.Fatalf("expected invalid_format, got %v", err)
	}
}

func TestParseReference_CaseAndPadding(t *testing.T) {
	ref, err := ParseReference("  ROMANS 8:28-30 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.BookNumber != 45 || ref.EndVerse != 30 {
		t.Fatalf("unexpected parse: %+v", ref)
	}
}
