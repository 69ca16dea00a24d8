package service

import (
	"encoding/json"
	"testing"

	"scripture-llm/internal/domain"
)

func TestExtractStructured_JSONFenceWithTrailerProse(t *testing.T) {
	text := "```json\n{\"keyWords\":[{\"original\":\"x\"}]}\n```\nHere is some context about the passage."
	got := ExtractStructured(text, "keyWords")
	if got.Data == nil {
		t.Fatal("expected a payload")
	}

	var list domain.KeyWordList
	if err := json.Unmarshal(got.Data, &list); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if len(list.KeyWords) != 1 || list.KeyWords[0].Original != "x" {
		t.Fatalf("unexpected key words: %+v", list.KeyWords)
	}
	if got.Residual != "Here is some context about the passage." {
		t.Fatalf("unexpected residual: %q", got.Residual)
	}
}

func TestExtractStructured_NoJSONAtAll(t *testing.T) {
	text := "The passage speaks of love and patience, nothing more."
	got := ExtractStructured(text, "keyWords")
	if got.Data != nil {
		t.Fatalf("expected nil payload, got %s", got.Data)
	}
	if got.Residual != text {
		t.Fatalf("expected residual to equal the full input, got %q", got.Residual)
	}
}

func TestExtractStructured_WrongTagFenceWithExpectedKey(t *testing.T) {
	text := "Intro.\n```javascript\n{\"passages\":[{\"reference\":\"John 3:16\"}]}\n```\nOutro."
	got := ExtractStructured(text, "passages")
	if got.Data == nil {
		t.Fatal("expected a payload from the mistagged fence")
	}
	var list domain.PassageList
	if err := json.Unmarshal(got.Data, &list); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if len(list.Passages) != 1 {
		t.Fatalf("unexpected passages: %+v", list.Passages)
	}
	if got.Residual != "Intro.\nOutro." {
		t.Fatalf("unexpected residual: %q", got.Residual)
	}
}

func TestExtractStructured_PrefersTaggedJSONFence(t *testing.T) {
	text := "```text\nnot json\n```\n```json\n{\"verse\":{\"reference\":\"Ps 23:1\"}}\n```"
	got := ExtractStructured(text, "verse")
	if got.Data == nil {
		t.Fatal("expected a payload")
	}
	var p domain.DailyVersePayload
	if err := json.Unmarshal(got.Data, &p); err != nil || p.Verse == nil {
		t.Fatalf("expected verse payload, err=%v p=%+v", err, p)
	}
}

func TestExtractStructured_UnfencedBraceObject(t *testing.T) {
	text := `Sure! {"crossReferences":[{"reference":"Rom 5:8"}]} Hope that helps.`
	got := ExtractStructured(text, "crossReferences")
	if got.Data == nil {
		t.Fatal("expected a payload")
	}
	var list domain.CrossReferenceList
	if err := json.Unmarshal(got.Data, &list); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if got.Residual != "Sure!\nHope that helps." {
		t.Fatalf("unexpected residual: %q", got.Residual)
	}
}

func TestExtractStructured_WholeResponseIsJSON(t *testing.T) {
	text := `  {"wordStudy":{"word":"agape"}}  `
	got := ExtractStructured(text, "wordStudy")
	if got.Data == nil {
		t.Fatal("expected a payload")
	}
	if got.Residual != "" {
		t.Fatalf("expected empty residual, got %q", got.Residual)
	}
}

func TestExtractStructured_MalformedFenceFallsThrough(t *testing.T) {
	text := "```json\n{\"keyWords\": broken\n```\nNo luck."
	got := ExtractStructured(text, "keyWords")
	if got.Data != nil {
		t.Fatalf("expected nil payload for malformed json, got %s", got.Data)
	}
	if got.Residual != text {
		t.Fatalf("expected full input back, got %q", got.Residual)
	}
}

func TestExtractStructured_IgnoresBracesInsideStrings(t *testing.T) {
	text := `prefix {"passages":[{"reference":"a {weird} one"}]} suffix`
	got := ExtractStructured(text, "passages")
	if got.Data == nil {
		t.Fatal("expected a payload")
	}
	var list domain.PassageList
	if err := json.Unmarshal(got.Data, &list); err != nil {
		t.Fatalf("payload does not decode: %v", err)
	}
	if list.Passages[0].Reference != "a {weird} one" {
		t.Fatalf("unexpected reference: %q", list.Passages[0].Reference)
	}
}

func TestBalancedObjectAt_Unclosed(t *testing.T) {
	if got := balancedObjectAt(`{"a": {"b": 1}`, 0); got != "" {
		t.Fatalf("expected empty result for unclosed object, got %q", got)
	}
}
