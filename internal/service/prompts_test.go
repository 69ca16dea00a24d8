package service

import (
	"strings"
	"testing"

	"scripture-llm/internal/domain"
)

func testRef() domain.ParsedReference {
	return domain.ParsedReference{
		BookNumber:     43,
		BookName:       "John",
		Chapter:        3,
		StartVerse:     16,
		EndVerse:       16,
		IsNewTestament: true,
	}
}

func TestBuildInterpretationPrompt_IncludesPassageAndWords(t *testing.T) {
	var b PromptBuilder
	prompt := b.BuildInterpretationPrompt(testRef(), "For God so loved the world", []domain.KeyWord{
		{Original: "ἀγάπη", Transliteration: "agape", Meaning: "love"},
	})
	for _, want := range []string{"John 3:16", "For God so loved the world", "ἀγάπη", "agape"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildKeyWordsPrompt_NamesLanguageByTestament(t *testing.T) {
	var b PromptBuilder
	ot := testRef()
	ot.BookNumber = 19
	ot.BookName = "Psalms"
	ot.IsOldTestament = true
	ot.IsNewTestament = false

	prompt := b.BuildKeyWordsPrompt(ot, "The Lord is my shepherd", "יְהוָה רֹעִי")
	if !strings.Contains(prompt, "Hebrew text:") {
		t.Fatalf("expected Hebrew label for old testament:\n%s", prompt)
	}
	if !strings.Contains(prompt, `"keyWords"`) {
		t.Fatalf("expected keyWords fence instruction:\n%s", prompt)
	}
}

func TestBuildSearchPrompt_AsksForPassagesPayload(t *testing.T) {
	var b PromptBuilder
	prompt := b.BuildSearchPrompt("hope in suffering")
	if !strings.Contains(prompt, "hope in suffering") || !strings.Contains(prompt, `"passages"`) {
		t.Fatalf("unexpected prompt:\n%s", prompt)
	}
}

func TestBuildDailyPrompt_MentionsDay(t *testing.T) {
	var b PromptBuilder
	prompt := b.BuildDailyPrompt("2026-08-28")
	if !strings.Contains(prompt, "2026-08-28") || !strings.Contains(prompt, `"verse"`) {
		t.Fatalf("unexpected prompt:\n%s", prompt)
	}
}
